package logging

import (
	"context"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel/trace"
)

// contextHandler adds the module and the active span's identifiers to every
// record. Those attributes stay at the top level even under WithGroup, so
// root is kept ungrouped and the group chain is replayed on top of it.
type contextHandler struct {
	root          slog.Handler
	handler       slog.Handler
	ops           []handlerOp
	defaultModule Module
}

// handlerOp is one WithGroup or WithAttrs call made after the first group.
type handlerOp struct {
	group string
	attrs []slog.Attr
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	attrs := h.correlationAttrs(ctx)
	if len(h.ops) == 0 {
		r.AddAttrs(attrs...)
		return h.handler.Handle(ctx, r)
	}
	if len(attrs) == 0 {
		return h.handler.Handle(ctx, r)
	}

	next := h.root.WithAttrs(attrs)
	for _, op := range h.ops {
		if op.group != "" {
			next = next.WithGroup(op.group)
		} else {
			next = next.WithAttrs(op.attrs)
		}
	}
	return next.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	if len(h.ops) == 0 {
		root := h.root.WithAttrs(attrs)
		return &contextHandler{
			root:          root,
			handler:       root,
			defaultModule: h.defaultModule,
		}
	}
	return &contextHandler{
		root:          h.root,
		handler:       h.handler.WithAttrs(attrs),
		ops:           append(slices.Clip(h.ops), handlerOp{attrs: attrs}),
		defaultModule: h.defaultModule,
	}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &contextHandler{
		root:          h.root,
		handler:       h.handler.WithGroup(name),
		ops:           append(slices.Clip(h.ops), handlerOp{group: name}),
		defaultModule: h.defaultModule,
	}
}

func (h *contextHandler) correlationAttrs(ctx context.Context) []slog.Attr {
	var attrs []slog.Attr

	module := h.defaultModule
	if m, ok := moduleFromContext(ctx); ok {
		module = m
	}
	if module != "" {
		attrs = append(attrs, slog.String("module", string(module)))
	}

	return append(attrs, traceAttrs(ctx)...)
}

func traceAttrs(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}

	return []slog.Attr{
		slog.String("trace_id", sc.TraceID().String()),
		slog.String("span_id", sc.SpanID().String()),
		slog.Bool("trace_sampled", sc.IsSampled()),
	}
}
