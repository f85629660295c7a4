package cli

import (
	"net"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/matzehuels/viv/internal/ipc"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		listen string
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a host with an HTTP control endpoint",
		Long: heredoc.Doc(`
			Run a headless host and accept actions over HTTP until interrupted or
			until a terminate action is dispatched.

			Endpoints:
			  GET  /healthz
			  GET  /workspaces
			  GET  /workspaces/{name}
			  POST /workspaces/{name}/actions/{action}   {"args": [...]}
			  POST /workspaces/{name}/layouts/next
			  PUT  /workspaces/{name}/layout              {"name": "..."}
			  POST /outputs/{name}/resize                {"width": 0, "height": 0}

			Use 'viv status' and 'viv dispatch --remote' as clients.
		`),
		Example: heredoc.Doc(`
			viv serve
			viv serve --listen 127.0.0.1:9000 --watch
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			host, _, err := c.newHost()
			if err != nil {
				return err
			}

			cfg := ipc.Config{
				Host:   host,
				Addr:   listen,
				Logger: c.Logger,
				Ready: func(addr net.Addr) {
					printSuccess("Listening on %s", StyleHighlight.Render("http://"+addr.String()))
					printNextStep("Query it with", "viv status --remote "+addr.String())
				},
			}
			if watch {
				if cfg.WatchPath, err = c.configFile(); err != nil {
					return err
				}
			}
			return ipc.Serve(contextOrBackground(cmd.Context()), cfg)
		},
	}
	cmd.Flags().StringVarP(&listen, "listen", "l", defaultListenAddr, "address to listen on")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload when the configuration file changes")

	return cmd
}
