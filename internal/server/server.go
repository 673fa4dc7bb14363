// Package server exposes the runner over HTTP.
//
// Routes:
//   - GET /health
//   - GET /graph/stats
//   - GET /graph/neighbors/{word}
//   - GET /solve?start=&goal=&strategy=   (strategy defaults to bfs; "all" runs every one)
//   - GET /metrics                        (Prometheus exposition)
//
// Every response except /metrics is JSON. Unknown words and strategies are
// client errors (400); cancelled or aborted searches are reported in the
// body with status 200, like any other outcome.
package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/internal/metrics"
	"github.com/katalvlaran/wordladder/runner"
)

// Server bundles the router and the runner it serves.
type Server struct {
	r       *chi.Mux
	run     *runner.Runner
	log     *logrus.Logger
	timeout time.Duration
}

// New constructs a Server, installs middleware, and registers routes.
// timeout bounds each request, searches included; zero means 10s.
func New(run *runner.Runner, log *logrus.Logger, timeout time.Duration) *Server {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	s := &Server{r: chi.NewRouter(), run: run, log: log, timeout: timeout}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(timeout))
	s.r.Use(s.observe)

	s.r.Get("/health", s.handleHealth)
	s.r.Get("/graph/stats", s.handleStats)
	s.r.Get("/graph/neighbors/{word}", s.handleNeighbors)
	s.r.Get("/solve", s.handleSolve)
	s.r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "not_found", r.URL.Path)
	})

	return s
}

// Handler exposes the router (useful for tests and http.Server).
func (s *Server) Handler() http.Handler { return s.r }

// observe records request duration and count against the route pattern.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := chi.RouteContext(r.Context()).RoutePattern() // pattern, not raw path
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(ww.Status())
		metrics.RequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
		metrics.RequestsTotal.WithLabelValues(r.Method, path, status).Inc()

		s.log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"request_id": chimw.GetReqID(r.Context()),
			"elapsed":    time.Since(start),
		}).Debug("request")
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.run.Graph().Stats())
}

type neighborsRes struct {
	Word      string   `json:"word"`
	Neighbors []string `json:"neighbors"`
}

func (s *Server) handleNeighbors(w http.ResponseWriter, r *http.Request) {
	word := core.Normalize(chi.URLParam(r, "word"))
	g := s.run.Graph()
	if !g.HasWord(word) {
		writeError(w, r, http.StatusNotFound, "unknown_word", word)
		return
	}
	writeJSON(w, http.StatusOK, neighborsRes{Word: word, Neighbors: g.Neighbors(word)})
}

type solveRes struct {
	Records []runner.Record `json:"records"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, goal := core.Normalize(q.Get("start")), core.Normalize(q.Get("goal"))
	if start == "" || goal == "" {
		writeError(w, r, http.StatusBadRequest, "missing_parameter", "start and goal are required")
		return
	}

	name := q.Get("strategy")
	if name == "" {
		name = runner.BFS.String()
	}
	strategies, err := runner.ParseStrategies([]string{name})
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "unknown_strategy", name)
		return
	}

	out := solveRes{Records: make([]runner.Record, 0, len(strategies))}
	for _, st := range strategies {
		rec, err := s.run.Run(r.Context(), st, start, goal)
		switch {
		case errors.Is(err, core.ErrDomain):
			writeError(w, r, http.StatusBadRequest, "unknown_word", err.Error())
			return
		case err != nil:
			s.log.WithError(err).WithField("strategy", st.String()).Error("solve failed")
			writeError(w, r, http.StatusInternalServerError, "search_failed", "")
			return
		}
		out.Records = append(out.Records, rec)
	}
	writeJSON(w, http.StatusOK, out)
}
