package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode log line %q: %v", buf.String(), err)
	}
	return entry
}

func TestNewLogger_ServiceAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Config{
		Service:       ServiceInfo{Name: "attendance", Version: "1.2.3", Revision: "abc1234"},
		Environment:   EnvProd,
		DefaultModule: Module("attendance-calculator"),
	})

	logger.Info("hello", slog.String("key", "value"))

	entry := decodeLine(t, &buf)
	if entry["service.name"] != "attendance" {
		t.Errorf("service.name = %v", entry["service.name"])
	}
	if entry["service.version"] != "1.2.3" {
		t.Errorf("service.version = %v", entry["service.version"])
	}
	if entry["service.revision"] != "abc1234" {
		t.Errorf("service.revision = %v", entry["service.revision"])
	}
	if entry["env"] != "prod" {
		t.Errorf("env = %v", entry["env"])
	}
	if entry["module"] != "attendance-calculator" {
		t.Errorf("module = %v", entry["module"])
	}
	if _, ok := entry["trace_id"]; ok {
		t.Error("trace_id present without an active span")
	}
}

func TestNewLogger_ContextModuleAndTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Config{
		Service:       ServiceInfo{Name: "attendance"},
		Environment:   EnvDev,
		DefaultModule: Module("default"),
	})

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})

	ctx := trace.ContextWithSpanContext(context.Background(), sc)
	ctx = WithModule(ctx, Module("cli"))

	logger.InfoContext(ctx, "traced")

	entry := decodeLine(t, &buf)
	if entry["module"] != "cli" {
		t.Errorf("module = %v, want cli", entry["module"])
	}
	if entry["trace_id"] != "0102030405060708090a0b0c0d0e0f10" {
		t.Errorf("trace_id = %v", entry["trace_id"])
	}
	if entry["span_id"] != "0102030405060708" {
		t.Errorf("span_id = %v", entry["span_id"])
	}
	if entry["trace_sampled"] != true {
		t.Errorf("trace_sampled = %v", entry["trace_sampled"])
	}
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Config{
		Service: ServiceInfo{Name: "attendance"},
		Level:   slog.LevelWarn,
	})

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info log written at warn level: %s", buf.String())
	}

	logger.Warn("kept")
	if buf.Len() == 0 {
		t.Error("warn log not written")
	}
}

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		in      string
		want    Environment
		wantErr bool
	}{
		{in: "dev", want: EnvDev},
		{in: "staging", want: EnvStaging},
		{in: "prod", want: EnvProd},
		{in: "production", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEnvironment(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownEnvironment) {
					t.Errorf("ParseEnvironment(%q) error = %v, want ErrUnknownEnvironment", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEnvironment(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseEnvironment(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewLogger_WithGroupKeepsCorrelationAtTopLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, Config{
		Service:       ServiceInfo{Name: "attendance"},
		Environment:   EnvDev,
		DefaultModule: Module("attendance-calculator"),
	})

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))

	logger.WithGroup("request").With(slog.String("method", "POST")).
		InfoContext(ctx, "grouped", slog.String("path", "/calculate"))

	entry := decodeLine(t, &buf)
	if entry["module"] != "attendance-calculator" {
		t.Errorf("module = %v, want top-level attendance-calculator", entry["module"])
	}
	if entry["trace_id"] != "0102030405060708090a0b0c0d0e0f10" {
		t.Errorf("trace_id = %v, want top-level trace id", entry["trace_id"])
	}
	if entry["span_id"] != "0102030405060708" {
		t.Errorf("span_id = %v, want top-level span id", entry["span_id"])
	}

	group, ok := entry["request"].(map[string]any)
	if !ok {
		t.Fatalf("request group missing: %v", entry)
	}
	if group["method"] != "POST" || group["path"] != "/calculate" {
		t.Errorf("request group = %v", group)
	}
	if _, nested := group["trace_id"]; nested {
		t.Error("trace_id nested inside the request group")
	}
	if _, nested := group["module"]; nested {
		t.Error("module nested inside the request group")
	}
}
