// Package logging wraps slog with the dual-sink handler the rest of
// this module expects: every record is formatted and written to the
// configured sink, and additionally mirrored to stderr when debug mode
// is on or the record is a warning or worse.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

// Handler is a slog.Handler that delegates formatting to a pair of
// ordinary *slog.TextHandler instances — one for the configured sink,
// one for stderr — rather than hand-assembling log lines itself. The
// mutex only guards the debug flag; each wrapped handler already
// serializes its own writes.
type Handler struct {
	sink   slog.Handler
	stderr slog.Handler

	mu    sync.Mutex
	debug bool
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.debugLocked() || h.sink.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{
		sink:   h.sink.WithAttrs(attrs),
		stderr: h.stderr.WithAttrs(attrs),
		debug:  h.debugLocked(),
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		sink:   h.sink.WithGroup(name),
		stderr: h.stderr.WithGroup(name),
		debug:  h.debugLocked(),
	}
}

// Handle writes r to the configured sink, then mirrors it to stderr
// when debug mode is on or the record is a warning or worse — the
// mirror is a second TextHandler.Handle call, not a re-rendered copy
// of the first, so the two sinks can never drift in format.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	err := h.sink.Handle(ctx, r)

	if h.debugLocked() || r.Level >= slog.LevelWarn {
		if serr := h.stderr.Handle(ctx, r); err == nil {
			err = serr
		}
	}
	return err
}

// SetDebug toggles whether non-warning records are also mirrored to stderr.
func (h *Handler) SetDebug(debug bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.debug = debug
}

func (h *Handler) debugLocked() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.debug
}

// New builds a Handler writing to out, with debug mirroring initially
// set to debug. The stderr mirror shares out's handler options except for its writer.
func New(out io.Writer, debug bool) *Handler {
	opts := &slog.HandlerOptions{}
	return &Handler{
		sink:   slog.NewTextHandler(out, opts),
		stderr: slog.NewTextHandler(os.Stderr, opts),
		debug:  debug,
	}
}

// NewLogger is a convenience wrapper returning an *slog.Logger backed
// by New.
func NewLogger(out io.Writer, debug bool) *slog.Logger {
	return slog.New(New(out, debug))
}
