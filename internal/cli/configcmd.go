package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/matzehuels/viv/pkg/config"
	"github.com/matzehuels/viv/pkg/errors"
)

// configCommand creates the config command and its subcommands.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write, check or locate the configuration file",
	}

	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configCheckCommand())
	cmd.AddCommand(c.configPathCommand())

	return cmd
}

func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Long: heredoc.Doc(`
			Write the default configuration to path, to the file named by --config,
			or to the default location. Use "-" to print it instead.
		`),
		Example: heredoc.Doc(`
			viv config init
			viv config init ./viv.toml --force
			viv config init - > viv.toml
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var buf bytes.Buffer
			if err := config.Defaults().Encode(&buf); err != nil {
				return err
			}

			if len(args) == 1 && args[0] == "-" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			path, err := c.configFile()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.ErrCodeInvalidInput, "%s already exists; use --force to overwrite", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			printSuccess("Configuration written")
			printFile(path)
			printNextStep("Check it with", "viv config check -c "+path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func (c *CLI) configCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and summarize it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configFile()
			if err != nil {
				return err
			}
			cfg, err := c.loadConfig()
			if err != nil {
				printError("Configuration is invalid")
				return err
			}
			if _, err := cfg.Build(); err != nil {
				printError("Configuration is invalid")
				return err
			}

			if _, err := os.Stat(path); err != nil {
				printInfo("No configuration file at %s; built-in defaults are valid", path)
			} else {
				printSuccess("Configuration is valid")
				printFile(path)
			}
			printKeyValue("Workspaces", strconv.Itoa(len(cfg.Workspaces)))
			printKeyValue("Outputs", strconv.Itoa(len(cfg.Outputs)))
			printKeyValue("Layouts", strconv.Itoa(len(cfg.Layouts)))
			printKeyValue("Bindings", strconv.Itoa(len(cfg.Bindings)))
			printKeyValue("Border", strconv.Itoa(cfg.BorderWidth)+"px")
			return nil
		},
	}
}

func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configFile()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}
