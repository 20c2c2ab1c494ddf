// Package bridge exposes the store over a local HTTP request/response
// bridge. Every persistence operation is invoked by a stable string
// method name with positional JSON arguments and answered with a
// uniform {success, data, error} envelope; store faults never escape
// as HTTP errors.
package bridge

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skryking/deckhand/internal/store"
)

// envelope is the wire response for every invoke call. Data is present
// on success, Error on failure, never both.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// invokeRequest is the wire request: a method name plus positional
// arguments left raw until the handler knows their types.
type invokeRequest struct {
	Method string            `json:"method"`
	Args   []json.RawMessage `json:"args"`
}

// handlerFunc executes one method. The returned value is placed in the
// envelope's data field; a returned error becomes the envelope's error
// string.
type handlerFunc func(args []json.RawMessage) (any, error)

// Server dispatches invoke requests against a store.
type Server struct {
	store   *store.Store
	log     *slog.Logger
	methods map[string]handlerFunc
	metrics *metrics
}

// NewServer builds a server with every method registered.
func NewServer(st *store.Store, log *slog.Logger) *Server {
	s := &Server{
		store:   st,
		log:     log,
		methods: map[string]handlerFunc{},
		metrics: newMetrics(),
	}
	s.registerShipMethods()
	s.registerLocationMethods()
	s.registerJournalMethods()
	s.registerTransactionMethods()
	s.registerCargoMethods()
	s.registerMissionMethods()
	s.registerScreenshotMethods()
	s.registerSessionMethods()
	s.registerDataMethods()
	return s
}

// register adds one named method. Duplicate registration is a
// programming error and panics at construction time.
func (s *Server) register(name string, fn handlerFunc) {
	if _, dup := s.methods[name]; dup {
		panic("bridge: duplicate method " + name)
	}
	s.methods[name] = fn
}

// Router mounts the bridge endpoints.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/api/invoke", s.handleInvoke)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleInvoke decodes the request, runs the named method, and writes
// the envelope. Every failure past decoding is reported inside the
// envelope with HTTP 200; the presentation layer only ever looks at
// the success flag.
func (s *Server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	var req invokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeEnvelope(w, "", envelope{Success: false, Error: "malformed request: " + err.Error()})
		return
	}
	if req.Method == "" {
		s.writeEnvelope(w, "", envelope{Success: false, Error: "missing method name"})
		return
	}

	fn, ok := s.methods[req.Method]
	if !ok {
		s.metrics.observe(req.Method, "unknown", 0)
		s.writeEnvelope(w, req.Method, envelope{Success: false, Error: "unknown method: " + req.Method})
		return
	}

	start := time.Now()
	data, err := fn(req.Args)
	elapsed := time.Since(start)

	if err != nil {
		s.metrics.observe(req.Method, "error", elapsed)
		s.log.Warn("invoke failed", "method", req.Method, "error", err)
		s.writeEnvelope(w, req.Method, envelope{Success: false, Error: err.Error()})
		return
	}

	s.metrics.observe(req.Method, "ok", elapsed)
	s.log.Debug("invoke", "method", req.Method, "elapsed", elapsed)
	s.writeEnvelope(w, req.Method, envelope{Success: true, Data: data})
}

func (s *Server) writeEnvelope(w http.ResponseWriter, method string, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(env); err != nil {
		s.log.Error("encode envelope", "method", method, "error", err)
	}
}

// decodeArg parses positional argument i into T. A missing or null
// argument yields the zero value, matching how the original call sites
// omitted optional trailing arguments.
func decodeArg[T any](args []json.RawMessage, i int) (T, error) {
	var v T
	if i >= len(args) || len(args[i]) == 0 || string(args[i]) == "null" {
		return v, nil
	}
	if err := json.Unmarshal(args[i], &v); err != nil {
		return v, fmt.Errorf("argument %d: %w", i, err)
	}
	return v, nil
}

// decodeArgInto parses positional argument i over a pre-populated
// value, so fields the caller omits keep their defaults.
func decodeArgInto(args []json.RawMessage, i int, v any) error {
	if i >= len(args) || len(args[i]) == 0 || string(args[i]) == "null" {
		return nil
	}
	if err := json.Unmarshal(args[i], v); err != nil {
		return fmt.Errorf("argument %d: %w", i, err)
	}
	return nil
}
