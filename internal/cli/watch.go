package cli

import (
	"context"
	stderrors "errors"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/viv/pkg/errors"
	"github.com/matzehuels/viv/pkg/io"
)

// watchCommand creates the watch command.
func (c *CLI) watchCommand() *cobra.Command {
	var opts layoutOptions

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Lay out again whenever the configuration file changes",
		Long: heredoc.Doc(`
			Lay out the configured workspaces, print them, and do it again every
			time the configuration file is saved. An invalid configuration is
			reported and the previous layout is kept. Stop with Ctrl+C.
		`),
		Example: heredoc.Doc(`
			viv watch
			viv watch --config ./viv.toml --workspace main
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			if opts.output != "" {
				return errors.New(errors.ErrCodeInvalidInput, "watch prints to stdout; --output is not supported")
			}
			return c.runWatch(cmd, opts)
		},
	}
	opts.register(cmd)

	return cmd
}

func (c *CLI) runWatch(cmd *cobra.Command, opts layoutOptions) error {
	path, err := c.configFile()
	if err != nil {
		return err
	}
	host, _, err := c.newHost()
	if err != nil {
		return err
	}

	snap, err := selectWorkspaces(host, opts)
	if err != nil {
		return err
	}
	if err := writeSnapshot(cmd, snap, opts); err != nil {
		return err
	}

	ctx := contextOrBackground(cmd.Context())
	eg, egctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := host.Run(egctx); err != nil && !stderrors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		return host.WatchConfig(egctx, path, func(err error) {
			if err != nil {
				printError("Configuration rejected: %v", err)
				return
			}
			var (
				snap   io.Snapshot
				selErr error
			)
			if err := host.Do(egctx, func() { snap, selErr = selectWorkspaces(host, opts) }); err != nil {
				return
			}
			if selErr != nil {
				printError("%v", selErr)
				return
			}
			if opts.format == formatTable {
				printSuccess("Reloaded %s", path)
			}
			if err := writeSnapshot(cmd, snap, opts); err != nil {
				printError("%v", err)
			}
		})
	})

	return eg.Wait()
}
