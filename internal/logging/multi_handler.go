package logging

import (
	"context"
	"errors"
	"log/slog"
)

// MultiHandler fans each record out to every target handler. The root
// command uses it to pair the console handler with the JSON --log-file
// handler; each target applies its own level filter.
type MultiHandler struct {
	targets []slog.Handler
}

var _ slog.Handler = (*MultiHandler)(nil)

// NewMultiHandler creates a MultiHandler over the given targets.
func NewMultiHandler(targets ...slog.Handler) *MultiHandler {
	return &MultiHandler{targets: targets}
}

// Enabled reports whether any target accepts records at level.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, t := range h.targets {
		if t.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle delivers r to every target that accepts its level. All targets
// are attempted; failures are joined into the returned error.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, t := range h.targets {
		if !t.Enabled(ctx, r.Level) {
			continue
		}
		if err := t.Handle(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithAttrs applies attrs to every target.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.rewrap(func(t slog.Handler) slog.Handler { return t.WithAttrs(attrs) })
}

// WithGroup opens the group on every target.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	return h.rewrap(func(t slog.Handler) slog.Handler { return t.WithGroup(name) })
}

func (h *MultiHandler) rewrap(transform func(slog.Handler) slog.Handler) *MultiHandler {
	targets := make([]slog.Handler, len(h.targets))
	for i, t := range h.targets {
		targets[i] = transform(t)
	}
	return NewMultiHandler(targets...)
}
