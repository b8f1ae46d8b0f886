package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// filteringHandler wraps a base slog.Handler and drops records by tag,
// package or file according to the processed Config.
type filteringHandler struct {
	base slog.Handler
	cfg  *Config
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{base: base, cfg: cfg}
}

func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.base.Handle(ctx, r)
	}

	if r.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		if frame.File != "" {
			if !h.cfg.packages.allows(filepath.Base(filepath.Dir(frame.File))) {
				return nil
			}
			if !h.cfg.files.allows(filepath.Base(frame.File)) {
				return nil
			}
		}
	}

	tag, tagged := "", false
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag, tagged = a.Value.String(), true
			return false
		}
		return true
	})
	if tagged && !h.cfg.tags.allows(tag) {
		return nil
	}
	if !tagged && h.cfg.tags.restrictive() {
		return nil
	}

	return h.base.Handle(ctx, r)
}

func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.base.WithAttrs(attrs), h.cfg)
}

func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.base.WithGroup(name), h.cfg)
}
