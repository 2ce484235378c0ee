package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corsair-sc/corsair/internal/config"
)

func TestNewProvider_Disabled(t *testing.T) {
	p, err := NewProvider(config.TracingConfig{Enabled: false})
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	require.NotNil(t, p.Tracer())

	// No-op spans must not record.
	_, span := p.Tracer().Start(context.Background(), "test")
	assert.False(t, span.IsRecording())
	span.End()

	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_NoneExporter(t *testing.T) {
	p, err := NewProvider(config.TracingConfig{Enabled: true, Exporter: "none"})
	require.NoError(t, err)
	defer func() { _ = p.Shutdown(context.Background()) }()

	assert.True(t, p.Enabled())

	_, span := p.Tracer().Start(context.Background(), "test")
	assert.True(t, span.IsRecording())
	span.End()
}

func TestNewProvider_FileExporter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traces", "traces.jsonl")
	p, err := NewProvider(config.TracingConfig{
		Enabled:  true,
		Exporter: "file",
		FilePath: path,
	})
	require.NoError(t, err)

	_, span := p.Tracer().Start(context.Background(), "file-test")
	span.End()

	require.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_UnsupportedExporter(t *testing.T) {
	_, err := NewProvider(config.TracingConfig{Enabled: true, Exporter: "jaeger"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported exporter")
}

func TestHTTPMiddleware_NilTracerPassesThrough(t *testing.T) {
	called := false
	handler := HTTPMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.True(t, called)
}

func TestHTTPMiddleware_WrapsHandler(t *testing.T) {
	p, err := NewProvider(config.TracingConfig{Enabled: true, Exporter: "none"})
	require.NoError(t, err)
	defer func() { _ = p.Shutdown(context.Background()) }()

	handler := HTTPMiddleware(p.Tracer())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
