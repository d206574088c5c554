package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/svgkit/pkg/buildinfo"
	"github.com/matzehuels/svgkit/pkg/cache"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "svgkit"

	// cacheTTL bounds how long a rendered scene stays cached.
	cacheTTL = 7 * 24 * time.Hour

	// redisConnectTimeout bounds the initial Redis ping.
	redisConnectTimeout = 5 * time.Second
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

	// out receives documents written to "-" and listings.
	out io.Writer
}

// New creates a new CLI instance with a default logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects document and listing output.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "svgkit builds SVG documents from scene files",
		Long:         `svgkit compiles declarative TOML or YAML scenes into SVG documents, reporting every questionable value as a diagnostic instead of failing.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.kindsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

// cacheOpts selects the render cache backend.
type cacheOpts struct {
	noCache  bool
	redisURL string
}

// openCache returns the configured cache and a backend label for metrics.
// A Redis URL wins over the file cache; an unreachable Redis is an error.
func openCache(ctx context.Context, opts cacheOpts) (cache.Cache, string, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), "none", nil
	case opts.redisURL != "":
		rc, err := cache.NewRedisCache(opts.redisURL)
		if err != nil {
			return nil, "", err
		}
		pingCtx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
		defer cancel()
		if err := cache.RetryWithBackoff(pingCtx, func() error { return rc.Ping(pingCtx) }); err != nil {
			rc.Close()
			return nil, "", err
		}
		return rc, "redis", nil
	}

	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), "none", nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, "", err
	}
	return fc, "file", nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/svgkit/).
func cacheDir() (string, error) {
	return cache.DefaultDir()
}
