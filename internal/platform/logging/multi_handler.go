package logging

import (
	"context"
	"errors"
	"log/slog"
)

// MultiHandler fans each record out to several slog handlers. The logger
// uses it to feed the terminal handler and the rolling file sink from a
// single slog.Logger.
type MultiHandler struct {
	sinks []slog.Handler
}

// NewMultiHandler returns a handler that forwards records to every sink.
func NewMultiHandler(sinks ...slog.Handler) *MultiHandler {
	return &MultiHandler{sinks: sinks}
}

// Enabled reports true when at least one sink accepts the level.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, sink := range h.sinks {
		if sink.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

// Handle forwards the record to every sink that accepts its level. Each
// sink receives its own clone so none can mutate the shared record, and
// errors from all sinks are joined rather than short-circuiting.
func (h *MultiHandler) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler interface requires value
	var errs []error

	for _, sink := range h.sinks {
		if !sink.Enabled(ctx, r.Level) {
			continue
		}

		if err := sink.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// WithAttrs returns a MultiHandler whose sinks all carry the attributes.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sinks := make([]slog.Handler, len(h.sinks))
	for i, sink := range h.sinks {
		sinks[i] = sink.WithAttrs(attrs)
	}

	return NewMultiHandler(sinks...)
}

// WithGroup returns a MultiHandler whose sinks all open the group.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	sinks := make([]slog.Handler, len(h.sinks))
	for i, sink := range h.sinks {
		sinks[i] = sink.WithGroup(name)
	}

	return NewMultiHandler(sinks...)
}
