package cli

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/viv/pkg/config"
	"github.com/matzehuels/viv/pkg/server"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "viv"

	// defaultListenAddr is where `viv serve` listens unless told otherwise.
	defaultListenAddr = "127.0.0.1:7007"
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

	// configPath is the --config flag; empty means the default location.
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

// =============================================================================
// Host Factory
// =============================================================================

// loadConfig reads the configuration named by --config, or the default one.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(c.configPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newHost builds a headless host from the configuration.
func (c *CLI) newHost(opts ...server.Option) (*server.Server, *config.Config, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	host, err := server.New(cfg, append([]server.Option{server.WithLogger(c.Logger)}, opts...)...)
	if err != nil {
		return nil, nil, err
	}
	return host, cfg, nil
}

// configFile returns the path watched by watch and serve --watch.
func (c *CLI) configFile() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	return config.DefaultPath()
}
