package tracing

import (
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys shared across the codebase.
const (
	AttrHTTPMethod = "http.method"
	AttrHTTPRoute  = "http.route"
	AttrHTTPStatus = "http.status_code"
	AttrUEXPath    = "uex.path"
)

// statusRecorder captures the response code for the span.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// HTTPMiddleware creates one server span per request. A nil tracer returns a
// pass-through.
func HTTPMiddleware(tracer trace.Tracer) func(http.Handler) http.Handler {
	if tracer == nil {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracer.Start(r.Context(), fmt.Sprintf("http %s %s", r.Method, r.URL.Path),
				trace.WithSpanKind(trace.SpanKindServer),
			)
			defer span.End()

			span.SetAttributes(
				attribute.String(AttrHTTPMethod, r.Method),
				attribute.String(AttrHTTPRoute, r.URL.Path),
			)

			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r.WithContext(ctx))

			if rec.status == 0 {
				rec.status = http.StatusOK
			}
			span.SetAttributes(attribute.Int(AttrHTTPStatus, rec.status))
			if rec.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rec.status))
			}
		})
	}
}
