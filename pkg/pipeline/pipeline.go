// Package pipeline ties parsing, resolution and rendering of markup
// documents together.
//
// This package implements the complete parse → resolve → render pipeline
// used by every command. By centralizing it, caching and validation behave
// the same regardless of entry point.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: read markup text into a node tree ([Parse])
//  2. Resolve: substitute players and expand layout nodes ([Resolve])
//  3. Render: produce output in one or more formats ([Render])
//
// Each stage emits observability hooks and can be run on its own.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  "{{player 0}} wins",
//	    Players: roster,
//	    Formats: []render.Format{render.FormatANSI},
//	})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(result.Artifacts[render.FormatANSI])
//
// For one-off conversions without caching use [RenderMarkup].
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/markup/pkg/cache"
	"github.com/matzehuels/markup/pkg/core/layout"
	"github.com/matzehuels/markup/pkg/core/markup"
	"github.com/matzehuels/markup/pkg/core/render"
	"github.com/matzehuels/markup/pkg/errors"
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = render.FormatANSI

// Options contains all configuration for a pipeline run.
type Options struct {
	Source  string            `json:"source"`
	Players []layout.Player   `json:"players,omitempty"`
	Formats []render.Format   `json:"formats,omitempty"`
	PNG     render.PNGOptions `json:"png"`
	Refresh bool              `json:"refresh,omitempty"` // Ignore cached renders

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// DocHash is the content hash of the source text.
	DocHash string

	// Nodes is the parsed document. It is nil when every artifact came
	// from the cache.
	Nodes []markup.Node

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[render.Format][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount   int
	LineCount   int
	Width       int
	ParseTime   time.Duration
	ResolveTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache use for a run.
type CacheInfo struct {
	RenderHit bool // All artifacts came from the cache
}

// ValidateAndSetDefaults normalizes formats, validates player names and
// applies defaults. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []render.Format{DefaultFormat}
	}
	seen := make(map[render.Format]bool, len(o.Formats))
	formats := o.Formats[:0:0]
	for _, f := range o.Formats {
		pf, err := render.ParseFormat(string(f))
		if err != nil {
			return err
		}
		if !seen[pf] {
			seen[pf] = true
			formats = append(formats, pf)
		}
	}
	o.Formats = formats

	for i, p := range o.Players {
		if err := errors.ValidatePlayerName(p.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRoster, err, "player %d", i)
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// RenderKeyOpts returns cache key options for rendering in format f.
func (o *Options) RenderKeyOpts(f render.Format) cache.RenderKeyOpts {
	opts := cache.RenderKeyOpts{Format: string(f)}
	for _, p := range o.Players {
		opts.Roster = append(opts.Roster, p.Name+p.Color.Hex())
	}
	if f == render.FormatPNG {
		opts.Scale = o.PNG.Scale
		opts.Padding = o.PNG.Padding
	}
	return opts
}
