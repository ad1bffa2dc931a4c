// Package cli implements the transpose command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/transpose/internal/config"
	"github.com/matzehuels/transpose/pkg/buildinfo"
	"github.com/matzehuels/transpose/pkg/cache"
	"github.com/matzehuels/transpose/pkg/observability"
	"github.com/matzehuels/transpose/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "transpose"

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

	verbose    bool
	configPath string
	columns    columnFlags
}

// New creates a CLI that logs to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with all subcommands registered.
// The root command itself transforms its input.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.transformCommand()
	root.Version = buildinfo.Version
	root.SilenceUsage = true
	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/transpose/config.toml)")
	c.columns.register(pf)

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := LogInfo
		if c.verbose {
			level = LogDebug
			h := &logHooks{logger: c.Logger}
			observability.SetPipelineHooks(h)
			observability.SetCacheHooks(h)
		}
		c.SetLogLevel(level)
		configureColor(cmd.ErrOrStderr())
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	root.AddCommand(c.opsCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config and Runner Factory
// =============================================================================

// loadConfig reads --config or the default config file.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.configPath != "" {
		return config.Load(c.configPath)
	}
	return config.LoadDefault()
}

// cacheFlags selects the result cache for a command.
type cacheFlags struct {
	enabled bool
	noCache bool
	refresh bool
	dir     string
	redis   string
}

// newRunner creates a pipeline runner with the cache chosen by flags and
// config. Without either, caching is off.
func (c *CLI) newRunner(f cacheFlags, cfg *config.Config) (*pipeline.Runner, error) {
	ch, err := newCache(f, cfg)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ch, c.Logger), nil
}

func newCache(f cacheFlags, cfg *config.Config) (cache.Cache, error) {
	if f.noCache {
		return cache.NewNullCache(), nil
	}
	redisURL, dir := f.redis, f.dir
	if cfg != nil {
		if redisURL == "" {
			redisURL = cfg.Cache.Redis
		}
		if dir == "" {
			dir = config.ExpandHome(cfg.Cache.Dir)
		}
	}
	switch {
	case redisURL != "":
		return cache.NewRedisCache(redisURL)
	case dir != "":
		return cache.NewFileCache(dir)
	case f.enabled:
		d, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(d)
	}
	return cache.NewNullCache(), nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/transpose/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
