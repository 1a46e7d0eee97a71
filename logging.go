package main

import (
	"context"
	"io"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

//**********************************************************
// logging
//**********************************************************

type LogHandler struct {
	mu    *sync.Mutex
	out   io.Writer
	level slog.Level
	attrs []slog.Attr
}

func NewLogHandler(o io.Writer, level slog.Level) *LogHandler {
	return &LogHandler{
		out:   o,
		level: level,
		mu:    &sync.Mutex{},
	}
}

func (h *LogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandler{out: h.out, level: h.level, mu: h.mu, attrs: append(h.attrs, attrs...)}
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	return h
}

func (h *LogHandler) Handle(ctx context.Context, r slog.Record) error {
	strs := []string{r.Time.Format("2006/01/02 15:04:05"), r.Level.String(), r.Message}

	for _, a := range h.attrs {
		strs = append(strs, a.Key+"="+a.Value.String())
	}
	if r.NumAttrs() != 0 {
		r.Attrs(func(a slog.Attr) bool {
			strs = append(strs, a.Key+"="+a.Value.String())
			return true
		})
	}
	strs = append(strs, "\n")

	b := []byte(strings.Join(strs, " "))

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.out.Write(b)

	return err
}
