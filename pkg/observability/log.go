package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports pipeline and cache events to a logger at debug level.
// It implements both PipelineHooks and CacheHooks.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that write to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnParseStart(_ context.Context, size int) {
	h.logger.Debug("parse started", "bytes", size)
}

func (h *LogHooks) OnParseComplete(_ context.Context, nodeCount int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("parse failed", "error", err, "duration", d)
		return
	}
	h.logger.Debug("parse complete", "nodes", nodeCount, "duration", d)
}

func (h *LogHooks) OnResolveStart(_ context.Context, players int) {
	h.logger.Debug("resolve started", "players", players)
}

func (h *LogHooks) OnResolveComplete(_ context.Context, lines int, d time.Duration) {
	h.logger.Debug("resolve complete", "lines", lines, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("render started", "format", format)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "error", err)
		return
	}
	h.logger.Debug("render complete", "format", format, "bytes", size, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
)
