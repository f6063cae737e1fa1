package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/netgraph/pkg/observability"
)

// demoCommand creates the demo command that runs the interactive editor.
func (c *CLI) demoCommand() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Draw a graph with the mouse in the terminal",
		Long: `Open a full-screen editor that draws a graph in the terminal.

Right-click places a node. Clicking a node starts an edge that follows the
pointer; clicking a second node (or the same one, for a self-loop) completes
it. Dragging a node moves it with its edges, dragging an edge moves its whole
connected component, and the mouse wheel zooms around the pointer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			// The editor owns the terminal, so graph events are only logged to a file.
			logger := newLogger(io.Discard, LogInfo)
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				logger = newLogger(f, LogDebug)
			}

			model := NewDemoModel(cfg, logger)
			observability.SetGraphHooks(model.stats)
			defer observability.Reset()

			prog := newProgress(loggerFromContext(cmd.Context()))
			p := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
				tea.WithContext(cmd.Context()),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(DemoModel); ok {
				prog.done(fmt.Sprintf("Drew %d nodes and %d edges", len(m.Manager.Nodes()), len(m.Manager.Edges())))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "append debug logs of graph events to this file")

	return cmd
}
