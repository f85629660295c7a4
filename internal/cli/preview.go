package cli

import (
	"sort"
	"strings"

	"github.com/MakeNowJust/heredoc"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/viv/pkg/io"
	"github.com/matzehuels/viv/pkg/server"
)

// previewChrome is the number of lines the preview uses around the canvas.
const previewChrome = 5

var (
	previewKeyStyle    = lipgloss.NewStyle().Foreground(colorCyan)
	previewStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	previewErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Drive the focused workspace with its key bindings in the terminal",
		Long: heredoc.Doc(`
			Draw the workspace shown on the first output and run key bindings
			against it, as the compositor would on a key press.

			Space cycles the active layout. Esc or Ctrl+C leaves the preview; so
			does any binding to the terminate action. Exec bindings really start
			the configured program.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			host, _, err := c.newHost()
			if err != nil {
				return err
			}
			if host.Focused() == nil {
				printInfo("No workspace is shown on any output")
				return nil
			}

			p := tea.NewProgram(
				newPreviewModel(host),
				tea.WithAltScreen(),
				tea.WithContext(contextOrBackground(cmd.Context())),
			)
			_, err = p.Run()
			return err
		},
	}

	return cmd
}

// =============================================================================
// previewModel - Interactive layout preview
// =============================================================================

// previewModel is the bubbletea model for the preview command. It calls the
// host directly from Update, so the host's event loop is not started.
type previewModel struct {
	host   *server.Server
	keys   []string
	width  int
	height int
	status string
	err    error
}

func newPreviewModel(host *server.Server) previewModel {
	keys := make([]string, 0, len(host.Bindings()))
	for k := range host.Bindings() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return previewModel{host: host, keys: keys, width: 80, height: 24}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		m.err = nil
		switch {
		case key == "ctrl+c" || key == "esc":
			return m, tea.Quit
		case msg.Type == tea.KeySpace || key == "space" || key == " ":
			return m.nextLayout(), nil
		}

		matched, err := m.host.HandleKey(key)
		switch {
		case !matched:
			m.status = "no binding for " + key
		case err != nil:
			m.err = err
		default:
			m.status = key + ": " + m.host.Bindings()[key].String()
		}
		if m.host.Terminated() {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m previewModel) nextLayout() previewModel {
	ws := m.host.Focused()
	if ws == nil {
		return m
	}
	l, err := m.host.NextLayout(ws.Name)
	switch {
	case err != nil:
		m.err = err
	case l == nil:
		m.status = ws.Name + " has no layouts"
	default:
		m.status = "layout " + l.Name
	}
	return m
}

func (m previewModel) View() string {
	ws := m.host.Focused()
	if ws == nil {
		return StyleDim.Render("no workspace is shown") + "\n"
	}
	snap := io.CaptureWorkspace(ws)

	var b strings.Builder
	b.WriteString(StyleTitle.Render(snap.Name))
	b.WriteString(" ")
	b.WriteString(StyleDim.Render(snap.Output + " · " + layoutLabel(snap.Layout)))
	b.WriteString("\n")

	b.WriteString(drawWorkspace(snap, ws.Output.Box(), m.width, m.height-previewChrome))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(previewErrorStyle.Render(iconError + " " + m.err.Error()))
	case m.status != "":
		b.WriteString(previewStatusStyle.Render(iconInfo + " " + m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help())
	return b.String()
}

// help lists the bindings, then the keys the preview handles itself.
func (m previewModel) help() string {
	parts := make([]string, 0, len(m.keys)+2)
	for _, k := range m.keys {
		parts = append(parts, previewKeyStyle.Render(k)+" "+StyleDim.Render(m.host.Bindings()[k].String()))
	}
	parts = append(parts,
		previewKeyStyle.Render("space")+" "+StyleDim.Render("next layout"),
		previewKeyStyle.Render("esc")+" "+StyleDim.Render("quit"),
	)
	return lipgloss.NewStyle().Width(max(m.width, 1)).Render(strings.Join(parts, "  "))
}

