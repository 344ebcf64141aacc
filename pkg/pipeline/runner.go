package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/markup/pkg/cache"
	"github.com/matzehuels/markup/pkg/core/markup"
	"github.com/matzehuels/markup/pkg/core/render"
	"github.com/matzehuels/markup/pkg/core/styled"
	"github.com/matzehuels/markup/pkg/errors"
	"github.com/matzehuels/markup/pkg/observability"
)

// Tree output formats for RenderTree.
const (
	TreeDOT = "dot"
	TreeSVG = "svg"
	TreePNG = "png"
	TreePDF = "pdf"
)

// Runner executes the pipeline with caching.
//
// The Runner holds no per-run state. Multiple goroutines can use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// Converter turns tree SVG into PNG or PDF.
	Converter render.RSVG
}

// NewRunner creates a runner. A nil keyer selects the DefaultKeyer, a nil
// cache disables caching and a nil logger selects log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger, Converter: render.RSVG{Scale: 2}}
}

// Execute runs parse → resolve → render. When every requested format is
// cached for this source and roster, the document is not parsed at all.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:   uuid.NewString(),
		DocHash: cache.Hash([]byte(opts.Source)),
	}
	logger := opts.Logger.With("run", result.RunID[:8])

	if !opts.Refresh {
		if artifacts, ok := r.cached(ctx, result.DocHash, opts); ok {
			result.Artifacts = artifacts
			result.CacheInfo.RenderHit = true
			logger.Debug("served from cache", "formats", opts.Formats)
			return result, nil
		}
	}

	parseStart := time.Now()
	nodes, err := Parse(ctx, opts.Source)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Nodes = nodes
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.NodeCount = CountNodes(nodes)
	logger.Debug("parsed markup", "nodes", result.Stats.NodeCount, "duration", result.Stats.ParseTime)

	resolveStart := time.Now()
	resolved := Resolve(ctx, nodes, opts.Players)
	lines := styled.ToLines(resolved)
	result.Stats.ResolveTime = time.Since(resolveStart)
	result.Stats.LineCount = len(lines)
	result.Stats.Width = styled.Width(lines)
	logger.Debug("resolved layout",
		"lines", result.Stats.LineCount,
		"width", result.Stats.Width,
		"duration", result.Stats.ResolveTime)

	renderStart := time.Now()
	artifacts, err := Render(ctx, resolved, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	logger.Debug("rendered outputs", "formats", opts.Formats, "duration", result.Stats.RenderTime)

	for f, data := range artifacts {
		key := r.Keyer.RenderKey(result.DocHash, opts.RenderKeyOpts(f))
		if err := r.Cache.Set(ctx, key, data, cache.TTLRender); err != nil {
			logger.Warn("cache write failed", "format", f, "error", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "render", len(data))
	}
	return result, nil
}

// cached returns the artifacts for every requested format, or false if any
// is missing.
func (r *Runner) cached(ctx context.Context, docHash string, opts Options) (map[render.Format][]byte, bool) {
	hooks := observability.Cache()
	artifacts := make(map[render.Format][]byte, len(opts.Formats))
	for _, f := range opts.Formats {
		data, hit, err := r.Cache.Get(ctx, r.Keyer.RenderKey(docHash, opts.RenderKeyOpts(f)))
		if err != nil {
			r.Logger.Warn("cache read failed", "error", err)
		}
		if err != nil || !hit {
			hooks.OnCacheMiss(ctx, "render")
			return nil, false
		}
		hooks.OnCacheHit(ctx, "render")
		artifacts[f] = data
	}
	return artifacts, true
}

// RenderTree renders the node tree of src as a Graphviz document in the
// given format (dot, svg, png or pdf). SVG output is cached.
func (r *Runner) RenderTree(ctx context.Context, src, format string) ([]byte, error) {
	switch format {
	case TreeDOT, TreeSVG, TreePNG, TreePDF:
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown tree format %q (valid: dot, svg, png, pdf)", format)
	}
	nodes, err := Parse(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if format == TreeDOT {
		return []byte(markup.ToDOT(nodes)), nil
	}

	svg, err := r.treeSVG(ctx, nodes)
	if err != nil {
		return nil, err
	}
	if format == TreeSVG {
		return svg, nil
	}
	return r.Converter.Convert(ctx, svg, format)
}

func (r *Runner) treeSVG(ctx context.Context, nodes []markup.Node) ([]byte, error) {
	key := r.Keyer.TreeKey(cache.Hash([]byte(markup.Format(nodes))), TreeSVG)
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, "tree")
		return data, nil
	}
	observability.Cache().OnCacheMiss(ctx, "tree")

	svg, err := markup.RenderSVG(ctx, nodes)
	if err != nil {
		return nil, fmt.Errorf("render tree: %w", err)
	}
	if err := r.Cache.Set(ctx, key, svg, cache.TTLSVG); err == nil {
		observability.Cache().OnCacheSet(ctx, "tree", len(svg))
	}
	return svg, nil
}

// Close releases resources held by the runner.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
