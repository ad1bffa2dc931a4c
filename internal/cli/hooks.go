package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/transpose/pkg/observability"
)

// logHooks reports pipeline and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.PipelineHooks = (*logHooks)(nil)
	_ observability.CacheHooks    = (*logHooks)(nil)
)

func (h *logHooks) OnParseStart(_ context.Context, source string) {
	h.logger.Debug("parsing", "input", source)
}

func (h *logHooks) OnParseComplete(_ context.Context, source string, rows int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("parse failed", "input", source, "err", err)
		return
	}
	h.logger.Debug("parsed", "input", source, "rows", rows, "took", d)
}

func (h *logHooks) OnTransformStart(_ context.Context, op string, rows, cols int) {
	h.logger.Debug("transforming", "plan", op, "rows", rows, "cols", cols)
}

func (h *logHooks) OnTransformComplete(_ context.Context, op string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("transform failed", "plan", op, "err", err)
		return
	}
	h.logger.Debug("transformed", "plan", op, "took", d)
}

func (h *logHooks) OnFormatStart(context.Context, string) {}

func (h *logHooks) OnFormatComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("format failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("formatted", "format", format, "bytes", size, "took", d)
}

func (h *logHooks) OnCacheHit(_ context.Context, backend string) {
	h.logger.Debug("cache hit", "backend", backend)
}

func (h *logHooks) OnCacheMiss(_ context.Context, backend string) {
	h.logger.Debug("cache miss", "backend", backend)
}

func (h *logHooks) OnCacheSet(_ context.Context, backend string, size int) {
	h.logger.Debug("cached", "backend", backend, "bytes", size)
}
