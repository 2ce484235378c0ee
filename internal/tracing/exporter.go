package tracing

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// FileExporter writes spans to a JSONL file, one object per line, so traces
// from a local session can be inspected with jq.
type FileExporter struct {
	file *os.File
	mu   sync.Mutex
}

// NewFileExporter opens (appending) the trace file at path, creating parent
// directories as needed.
func NewFileExporter(path string) (*FileExporter, error) {
	cleanPath := filepath.Clean(path)

	if err := os.MkdirAll(filepath.Dir(cleanPath), 0750); err != nil {
		return nil, fmt.Errorf("create trace directory: %w", err)
	}

	file, err := os.OpenFile(cleanPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600) // #nosec G304 -- path is cleaned above
	if err != nil {
		return nil, fmt.Errorf("open trace file: %w", err)
	}
	return &FileExporter{file: file}, nil
}

// ExportSpans appends spans to the file in JSONL format.
func (e *FileExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	if len(spans) == 0 {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	encoder := json.NewEncoder(e.file)
	for _, span := range spans {
		if err := encoder.Encode(spanToRecord(span)); err != nil {
			return fmt.Errorf("encode span: %w", err)
		}
	}
	return nil
}

// Shutdown closes the trace file.
func (e *FileExporter) Shutdown(_ context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.file != nil {
		err := e.file.Close()
		e.file = nil
		return err
	}
	return nil
}

// SpanRecord is the exported JSON shape.
type SpanRecord struct {
	TraceID      string         `json:"trace_id"`
	SpanID       string         `json:"span_id"`
	ParentSpanID string         `json:"parent_span_id,omitempty"`
	Name         string         `json:"name"`
	StartTime    string         `json:"start_time"`
	DurationMs   float64        `json:"duration_ms"`
	Status       string         `json:"status"`
	StatusMsg    string         `json:"status_message,omitempty"`
	Attributes   map[string]any `json:"attributes,omitempty"`
}

func spanToRecord(span sdktrace.ReadOnlySpan) SpanRecord {
	sc := span.SpanContext()

	parentSpanID := ""
	if span.Parent().IsValid() {
		parentSpanID = span.Parent().SpanID().String()
	}

	status := span.Status()
	statusStr := "UNSET"
	switch status.Code {
	case codes.Ok:
		statusStr = "OK"
	case codes.Error:
		statusStr = "ERROR"
	}

	attrs := make(map[string]any, len(span.Attributes()))
	for _, kv := range span.Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsInterface()
	}

	return SpanRecord{
		TraceID:      sc.TraceID().String(),
		SpanID:       sc.SpanID().String(),
		ParentSpanID: parentSpanID,
		Name:         span.Name(),
		StartTime:    span.StartTime().Format(time.RFC3339Nano),
		DurationMs:   float64(span.EndTime().Sub(span.StartTime()).Microseconds()) / 1000.0,
		Status:       statusStr,
		StatusMsg:    status.Description,
		Attributes:   attrs,
	}
}
