// Package cli implements the markup command-line interface.
//
// The commands parse markup documents, render them for a roster of players,
// and inspect their structure. The CLI is built with cobra, styles its
// status output with lipgloss and logs through charmbracelet/log.
//
// # Commands
//
//   - render: Render a document as ANSI, HTML, plain text, JSON or PNG
//   - fmt: Rewrite a document in canonical notation
//   - check: Validate documents without rendering
//   - tree: Show the node tree as DOT, SVG, PNG or PDF
//   - colors: List named and player colors
//   - preview: Page through a rendered document interactively
//   - cache: Manage the render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports pipeline and cache events.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/markup/pkg/cache"
	"github.com/matzehuels/markup/pkg/core/layout"
	"github.com/matzehuels/markup/pkg/core/render"
	"github.com/matzehuels/markup/pkg/errors"
	pkgio "github.com/matzehuels/markup/pkg/io"
	"github.com/matzehuels/markup/pkg/pipeline"
)

const (
	// appName is the application name used for directories and display.
	appName = "markup"

	// envRedisURL selects the Redis cache backend when set.
	envRedisURL = "MARKUP_REDIS_URL"

	// stdinArg reads the document from standard input.
	stdinArg = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	stdin  io.Reader
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), stdin: os.Stdin}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, nil, c.Logger), nil
}

// newCache selects the cache backend: none, Redis (MARKUP_REDIS_URL) or
// the per-user file cache. An unreachable Redis falls back to the file cache.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if url := os.Getenv(envRedisURL); url != "" {
		rc, err := cache.NewRedisCache(ctx, url)
		if err == nil {
			return rc, nil
		}
		c.Logger.Warn("redis cache unavailable, using file cache", "error", err)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/markup/).
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

// readSource reads the document named by arg, or standard input for "-".
func (c *CLI) readSource(arg string) (string, error) {
	if arg == stdinArg {
		data, err := io.ReadAll(c.stdin)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
		return string(data), nil
	}
	if err := errors.ValidatePath(arg); err != nil {
		return "", err
	}
	data, err := os.ReadFile(arg)
	if os.IsNotExist(err) {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "%s not found", arg)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// loadRoster reads the roster file at path. An empty path means no roster.
func loadRoster(path string) ([]layout.Player, error) {
	if path == "" {
		return nil, nil
	}
	return pkgio.ImportRoster(path)
}

// parseFormats parses a comma-separated format list. Empty selects the
// pipeline default.
func parseFormats(s string) ([]render.Format, error) {
	if strings.TrimSpace(s) == "" {
		return []render.Format{pipeline.DefaultFormat}, nil
	}
	var formats []render.Format
	for _, part := range strings.Split(s, ",") {
		f, err := render.ParseFormat(part)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// argOrStdin returns the single positional argument, or "-" if none.
func argOrStdin(args []string) string {
	if len(args) == 0 {
		return stdinArg
	}
	return args[0]
}
