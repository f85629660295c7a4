package cli

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/matzehuels/viv/internal/ipc"
	"github.com/matzehuels/viv/pkg/errors"
	"github.com/matzehuels/viv/pkg/io"
	"github.com/matzehuels/viv/pkg/mappable"
)

// dispatchCommand creates the dispatch command.
func (c *CLI) dispatchCommand() *cobra.Command {
	var (
		opts   layoutOptions
		remote string
	)

	actions := make([]string, 0, len(mappable.Actions()))
	for _, a := range mappable.Actions() {
		actions = append(actions, a.String())
	}

	cmd := &cobra.Command{
		Use:   "dispatch [flags] <action> [args...]",
		Short: "Run one action against a workspace",
		Long: heredoc.Docf(`
			Run one action against a workspace and print the workspace afterwards.

			Actions: %s

			Without --remote the action runs against a fresh host built from the
			configuration, which is useful to see what an action does to the layout.
			With --remote it runs against a host started with 'viv serve'.

			Flags must come before the action so that negative increments such as
			-0.05 are read as arguments.
		`, strings.Join(actions, ", ")),
		Example: heredoc.Doc(`
			viv dispatch increment-divide 0.1
			viv dispatch --workspace web swap-out
			viv dispatch --remote 127.0.0.1:7007 exec foot --server
		`),
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: actions,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			b, err := mappable.ParseBinding(args[0], args[1:])
			if err != nil {
				return err
			}
			if remote != "" {
				return c.runRemoteDispatch(cmd, remote, b, args, opts)
			}
			return c.runDispatch(cmd, b, opts)
		},
	}
	cmd.Flags().SetInterspersed(false)
	opts.register(cmd)
	cmd.Flags().StringVar(&remote, "remote", "", "address of a host started with 'viv serve'")

	return cmd
}

func (c *CLI) runDispatch(cmd *cobra.Command, b mappable.Binding, opts layoutOptions) error {
	host, _, err := c.newHost()
	if err != nil {
		return err
	}

	name := opts.workspace
	if name == "" {
		ws := host.Focused()
		if ws == nil {
			return errors.New(errors.ErrCodeWorkspaceNotFound, "no workspace is shown; pass --workspace")
		}
		name = ws.Name
	}

	if err := host.Dispatch(name, b); err != nil {
		return err
	}
	if opts.format == formatTable {
		printSuccess("Dispatched %s", StyleHighlight.Render(b.String()))
	}
	if host.Terminated() {
		printInfo("Host terminated")
		return nil
	}

	// swap-out may have moved the workspace off its output, so print it by name.
	sel := opts
	if !sel.all {
		sel.workspace = name
	}
	snap, err := selectWorkspaces(host, sel)
	if err != nil {
		return err
	}
	return writeSnapshot(cmd, snap, opts)
}

func (c *CLI) runRemoteDispatch(cmd *cobra.Command, addr string, b mappable.Binding, args []string, opts layoutOptions) error {
	ctx := contextOrBackground(cmd.Context())
	client := ipc.NewClient(addr)

	name := opts.workspace
	if name == "" {
		snap, err := client.Workspaces(ctx)
		if err != nil {
			return fmt.Errorf("query %s: %w", addr, err)
		}
		for _, ws := range snap.Workspaces {
			if ws.Output != "" {
				name = ws.Name
				break
			}
		}
		if name == "" {
			return errors.New(errors.ErrCodeWorkspaceNotFound, "no workspace is shown on %s; pass --workspace", addr)
		}
	}

	ws, err := client.Dispatch(ctx, name, args[0], args[1:])
	if err != nil {
		return err
	}
	if opts.format == formatTable {
		printSuccess("Dispatched %s on %s", StyleHighlight.Render(b.String()), addr)
	}
	return writeSnapshot(cmd, io.Snapshot{Workspaces: []io.Workspace{ws}}, opts)
}
