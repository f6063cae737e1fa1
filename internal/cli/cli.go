// Package cli implements the netgraph command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/netgraph/pkg/buildinfo"
	"github.com/matzehuels/netgraph/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "netgraph"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Netgraph draws and edits node-edge graphs interactively",
		Long:         `Netgraph is an interactive graph editor. Nodes are placed by the user, edges are drawn by clicking one node and then another, and parallel edges and self-loops are curved apart so every edge stays visible. Connected components are tracked as the graph grows so whole components can be dragged together.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "configuration file (default $XDG_CONFIG_HOME/netgraph/config.toml)")

	// Register all subcommands
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// resolveConfigPath returns the --config flag value or the XDG default.
func (c *CLI) resolveConfigPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	return config.Path()
}

// loadConfig loads the effective configuration. A missing file yields the
// defaults.
func (c *CLI) loadConfig() (*config.Config, error) {
	path, err := c.resolveConfigPath()
	if err != nil {
		c.Logger.Warn("no configuration directory, using defaults", "err", err)
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("configuration loaded", "path", path)
	return cfg, nil
}
