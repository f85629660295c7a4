package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/matzehuels/viv/internal/ipc"
	"github.com/matzehuels/viv/pkg/io"
)

// statusCommand creates the status command.
func (c *CLI) statusCommand() *cobra.Command {
	var (
		opts   layoutOptions
		remote string
		from   string
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the workspaces of a running host or a saved snapshot",
		Long: heredoc.Doc(`
			Show the workspaces of a host started with 'viv serve', or of a snapshot
			written by 'viv layout -o'.
		`),
		Example: heredoc.Doc(`
			viv status
			viv status --remote 127.0.0.1:7007 --format json
			viv status --from layout.json
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}

			var (
				snap io.Snapshot
				err  error
			)
			if from != "" {
				snap, err = io.ImportJSON(from)
			} else {
				snap, err = ipc.NewClient(remote).Workspaces(contextOrBackground(cmd.Context()))
				if err != nil {
					err = fmt.Errorf("query %s: %w", remote, err)
				}
			}
			if err != nil {
				return err
			}

			if opts.workspace != "" {
				ws := snap.Find(opts.workspace)
				if ws == nil {
					return fmt.Errorf("workspace %q not in snapshot", opts.workspace)
				}
				snap.Workspaces = []io.Workspace{*ws}
			} else if !opts.all {
				snap = shownOnly(snap)
			}
			return writeSnapshot(cmd, snap, opts)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVar(&remote, "remote", defaultListenAddr, "address of a host started with 'viv serve'")
	cmd.Flags().StringVar(&from, "from", "", "read a snapshot file instead of querying a host")
	cmd.MarkFlagsMutuallyExclusive("remote", "from")

	return cmd
}
