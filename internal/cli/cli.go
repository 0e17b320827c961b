package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/toplangs/internal/config"
	"github.com/matzehuels/toplangs/pkg/buildinfo"
	"github.com/matzehuels/toplangs/pkg/errors"
	"github.com/matzehuels/toplangs/pkg/observability"
	"github.com/matzehuels/toplangs/pkg/options"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "toplangs"

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
	Logger     *log.Logger
	configPath string
}

// New creates a new CLI instance with a logger writing to w.
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
		Short:        "toplangs renders most-used-languages cards",
		Long:         `toplangs turns per-language byte sizes into a "Most Used Languages" SVG card, in a stacked-bar list or a compact multi-column layout.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
			observability.SetPipelineHooks(logHooks{logger: c.Logger})
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/toplangs/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads the config file selected by --config, or the default
// path. Only an explicitly requested file must exist.
func (c *CLI) loadConfig() (config.FileConfig, error) {
	path := c.configPath
	if path == "" {
		path = config.DefaultPath()
	} else if _, err := os.Stat(path); err != nil {
		return config.FileConfig{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.FileConfig{}, err
	}
	c.Logger.Debug("Loaded config", "path", path)
	return cfg, nil
}

// baseOptions returns the documented defaults overlaid with the config file.
func (c *CLI) baseOptions() (options.RenderOptions, config.FileConfig, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return options.RenderOptions{}, cfg, err
	}
	return options.Merge(options.Defaults(), cfg.Card), cfg, nil
}
