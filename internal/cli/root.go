package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/matzehuels/viv/pkg/buildinfo"
	"github.com/matzehuels/viv/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Persistent flags:
//   - --config (-c): configuration file (default $XDG_CONFIG_HOME/viv/config.toml)
//   - --verbose (-v): debug-level logging
//   - --log-file: also write logs to a size-rotated file
func (c *CLI) RootCommand() *cobra.Command {
	var (
		verbose bool
		logFile string
	)

	root := &cobra.Command{
		Use:   appName,
		Short: "viv computes tiling layouts and runs window manager actions",
		Long: heredoc.Doc(`
			viv is the layout core of a tiling Wayland compositor, driven from the
			command line. It lays out the workspaces described in your configuration,
			runs bindable actions against them and can serve a running host over HTTP.
		`),
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			if logFile != "" {
				c.Logger.SetOutput(teeLogFile(cmd.ErrOrStderr(), logFile))
			}

			hooks := &logHooks{logger: c.Logger}
			observability.SetLayoutHooks(hooks)
			observability.SetDispatchHooks(hooks)
			observability.SetHostHooks(hooks)

			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "configuration file (default $XDG_CONFIG_HOME/viv/config.toml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "also write logs to this file, rotated at 10MB")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.dispatchCommand())
	root.AddCommand(c.statusCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
