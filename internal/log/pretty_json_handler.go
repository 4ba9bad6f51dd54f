package log

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
)

type PrettyJSONHandlerOptions struct {
	slog.HandlerOptions
	PrettyPrint bool
}

// NewPrettyJSONHandler returns a [slog.JSONHandler] that optionally indents every record.
func NewPrettyJSONHandler(w io.Writer, opts *PrettyJSONHandlerOptions) slog.Handler {
	if opts == nil {
		opts = &PrettyJSONHandlerOptions{}
	}

	return &prettyHandler{
		Handler:        slog.NewJSONHandler(w, &opts.HandlerOptions),
		writer:         w,
		prettyPrint:    opts.PrettyPrint,
		handlerOptions: &opts.HandlerOptions,
		decorate:       func(h slog.Handler) slog.Handler { return h },
		mu:             &sync.Mutex{},
	}
}

type prettyHandler struct {
	slog.Handler
	writer         io.Writer
	prettyPrint    bool
	handlerOptions *slog.HandlerOptions
	// decorate replays the attributes and groups added via WithAttrs and WithGroup
	decorate func(slog.Handler) slog.Handler
	mu       *sync.Mutex
}

func (h *prettyHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.prettyPrint {
		return h.Handler.Handle(ctx, r)
	}

	buf := &bytes.Buffer{}

	tempHandler := h.decorate(slog.NewJSONHandler(buf, h.handlerOptions))
	if err := tempHandler.Handle(ctx, r); err != nil {
		return err
	}

	var prettyJSON bytes.Buffer
	if err := json.Indent(&prettyJSON, buf.Bytes(), "", "  "); err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(prettyJSON.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	decorate := h.decorate
	next := *h
	next.Handler = h.Handler.WithAttrs(attrs)
	next.decorate = func(handler slog.Handler) slog.Handler {
		return decorate(handler).WithAttrs(attrs)
	}
	return &next
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	decorate := h.decorate
	next := *h
	next.Handler = h.Handler.WithGroup(name)
	next.decorate = func(handler slog.Handler) slog.Handler {
		return decorate(handler).WithGroup(name)
	}
	return &next
}
