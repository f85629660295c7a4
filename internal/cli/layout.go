package cli

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/matzehuels/viv/pkg/errors"
	"github.com/matzehuels/viv/pkg/io"
	"github.com/matzehuels/viv/pkg/server"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// layoutOptions holds flags shared by commands that print workspaces.
type layoutOptions struct {
	workspace string
	all       bool
	format    string
	output    string
}

func (o *layoutOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.workspace, "workspace", "w", "", "only print this workspace")
	cmd.Flags().BoolVarP(&o.all, "all", "a", false, "include workspaces that are not on an output")
	cmd.Flags().StringVarP(&o.format, "format", "f", formatTable, "output format: table, json")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "write JSON to this file instead of stdout")
}

func (o *layoutOptions) validate() error {
	switch o.format {
	case formatTable, formatJSON:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want table or json)", o.format)
	}
	if o.output != "" {
		o.format = formatJSON
	}
	return nil
}

// layoutCommand creates the layout command.
func (c *CLI) layoutCommand() *cobra.Command {
	var opts layoutOptions

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Lay out the configured workspaces and print their geometry",
		Long: heredoc.Doc(`
			Lay out the configured workspaces and print their geometry.

			Every workspace shown on an output is laid out with its active layout,
			exactly as the compositor would after a relayout trigger. The current
			geometry is what the surface was told; the target geometry is the
			window rectangle before borders and surface offsets.
		`),
		Example: heredoc.Doc(`
			viv layout
			viv layout --workspace main --format json
			viv layout --all -o layout.json
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			return c.runLayout(cmd, opts)
		},
	}
	opts.register(cmd)

	return cmd
}

func (c *CLI) runLayout(cmd *cobra.Command, opts layoutOptions) error {
	prog := newProgress(loggerFromContext(cmd.Context()))
	host, _, err := c.newHost()
	if err != nil {
		return err
	}

	snap, err := selectWorkspaces(host, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Laid out %d workspaces", len(snap.Workspaces)))

	return writeSnapshot(cmd, snap, opts)
}

// selectWorkspaces captures the workspaces the flags ask for.
func selectWorkspaces(host *server.Server, opts layoutOptions) (io.Snapshot, error) {
	if opts.workspace != "" {
		ws, err := host.Workspace(opts.workspace)
		if err != nil {
			return io.Snapshot{}, err
		}
		return io.Capture(ws), nil
	}

	snap := host.Snapshot()
	if opts.all {
		return snap, nil
	}
	return shownOnly(snap), nil
}

// shownOnly drops workspaces that are not on an output.
func shownOnly(snap io.Snapshot) io.Snapshot {
	shown := make([]io.Workspace, 0, len(snap.Workspaces))
	for _, ws := range snap.Workspaces {
		if ws.Output != "" {
			shown = append(shown, ws)
		}
	}
	snap.Workspaces = shown
	return snap
}

// writeSnapshot prints snap in the requested format.
func writeSnapshot(cmd *cobra.Command, snap io.Snapshot, opts layoutOptions) error {
	if opts.output != "" {
		if err := io.ExportJSON(snap, opts.output); err != nil {
			return fmt.Errorf("write output %s: %w", opts.output, err)
		}
		printSuccess("Layout written")
		printFile(opts.output)
		return nil
	}

	if opts.format == formatJSON {
		return io.WriteJSON(snap, cmd.OutOrStdout())
	}
	if len(snap.Workspaces) == 0 {
		printInfo("No workspaces to show")
		return nil
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), renderSnapshot(snap))
	return err
}

// contextOrBackground guards commands invoked without ExecuteContext.
func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
