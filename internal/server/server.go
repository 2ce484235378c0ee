// Package server exposes the registry and intel analyzer over a REST API.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/corsair-sc/corsair/internal/domain/items"
	"github.com/corsair-sc/corsair/internal/domain/ships"
	"github.com/corsair-sc/corsair/internal/intel"
	"github.com/corsair-sc/corsair/internal/log"
	"github.com/corsair-sc/corsair/internal/routegraph"
	"github.com/corsair-sc/corsair/internal/tracing"
	"github.com/corsair-sc/corsair/internal/uex"
)

// DataSource is the slice of the UEX client the server needs.
type DataSource interface {
	intel.RouteSource
	Commodities(ctx context.Context) ([]uex.Commodity, error)
}

// State holds the shared dependencies handlers read from. Everything except
// the graph is immutable after construction; the graph is swapped once when
// warm-up finishes.
type State struct {
	Items    *items.Registry
	Fleet    *ships.Registry
	Analyzer *intel.Analyzer
	Data     DataSource

	mu    sync.RWMutex
	graph *routegraph.Graph
}

// Graph returns the current route graph, which may be empty before warm-up.
func (s *State) Graph() *routegraph.Graph {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.graph == nil {
		return routegraph.New()
	}
	return s.graph
}

// SetGraph swaps in a freshly built route graph.
func (s *State) SetGraph(g *routegraph.Graph) {
	s.mu.Lock()
	s.graph = g
	s.mu.Unlock()
}

// Server wraps the HTTP server and its routing table.
type Server struct {
	httpServer *http.Server
	state      *State
}

// Option customizes the server.
type Option func(*options)

type options struct {
	tracer trace.Tracer
}

// WithTracer adds a span per request.
func WithTracer(t trace.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// New builds the server on the given listen address.
func New(addr string, state *State, opts ...Option) *Server {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	if o.tracer != nil {
		r.Use(tracing.HTTPMiddleware(o.tracer))
	}
	r.Use(loggingMiddleware)

	r.Get("/health", handleHealth(state))

	r.Route("/api", func(r chi.Router) {
		r.Route("/routes", func(r chi.Router) {
			r.Get("/hot", handleHotRoutes(state))
			r.Get("/chokepoints", handleChokepoints(state))
		})

		r.Route("/intel", func(r chi.Router) {
			r.Get("/targets/{location}", handleTargets(state))
			r.Get("/cargo/{location}", handleLikelyCargo(state))
			r.Get("/ships", handleShips(state))
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", handleItems(state))
			r.Get("/{id}", handleItem(state))
			r.Get("/locations/{name}", handleItemsAtLocation(state))
			r.Get("/systems/{system}", handleItemsInSystem(state))
			r.Get("/categories/{category}", handleItemsInCategory(state))
		})

		r.Route("/data", func(r chi.Router) {
			r.Get("/terminals", handleTerminals(state))
			r.Get("/commodities", handleCommodities(state))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		state: state,
	}
}

// Handler exposes the routing table, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start blocks serving requests until Stop or a listener error.
func (s *Server) Start() error {
	log.Info(log.CatServer, "listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop drains in-flight requests and shuts down.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

type ctxKey int

const requestIDKey ctxKey = 0

// RequestID returns the request's assigned ID, or "" outside the middleware.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// statusWriter captures the response code for the request log.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)

		log.Info(log.CatServer, "request",
			"id", RequestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
