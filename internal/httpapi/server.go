// Package httpapi serves maze searches over HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/mazesearch/internal/logging"
	"github.com/katalvlaran/mazesearch/maze"
	"github.com/katalvlaran/mazesearch/report"
	"github.com/katalvlaran/mazesearch/search"
	"github.com/katalvlaran/mazesearch/telemetry"
)

// MaxMazeBytes bounds the request body of the search endpoints.
const MaxMazeBytes = 1 << 20

// MaxHeatmapPixels bounds the image size POST /heatmap will render.
const MaxHeatmapPixels = report.MaxPixels

// Server handles the HTTP endpoints.
type Server struct {
	Recorder *telemetry.Recorder
	Logger   *slog.Logger
}

// AlgorithmInfo is one entry of GET /algorithms.
type AlgorithmInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Optimal bool   `json:"optimal"`
}

// NewHandler builds the router. A nil recorder gets a fresh one and a nil
// logger discards.
func NewHandler(rec *telemetry.Recorder, logger *slog.Logger) http.Handler {
	if rec == nil {
		rec = telemetry.NewRecorder()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{Recorder: rec, Logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.Health)
	r.Get("/algorithms", s.Algorithms)
	r.Post("/search", s.Search)
	r.Post("/heatmap", s.Heatmap)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(rec.Registry(), promhttp.HandlerOpts{}))

	return r
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Algorithms handles GET /algorithms.
func (s *Server) Algorithms(w http.ResponseWriter, r *http.Request) {
	all := search.All()
	out := make([]AlgorithmInfo, len(all))
	for i, a := range all {
		out[i] = AlgorithmInfo{ID: a.String(), Name: a.Name(), Optimal: a.Optimal()}
	}
	writeJSON(w, http.StatusOK, out)
}

// Search handles POST /search. The body is a maze in text form; each
// ?algorithm= selects one algorithm, none selects all. Responds with a
// JSON array of report.Record in request order.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	m, algs, ok := s.decode(w, r)
	if !ok {
		return
	}
	results, err := search.RunAll(r.Context(), m, algs, search.WithLogger(s.Logger))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.Recorder.ObserveAll(results)
	writeJSON(w, http.StatusOK, report.Records(results))
}

// Heatmap handles POST /heatmap?algorithm=<id>[&cell=<px>] and responds
// with the PNG heat-map of that single run.
func (s *Server) Heatmap(w http.ResponseWriter, r *http.Request) {
	m, algs, ok := s.decode(w, r)
	if !ok {
		return
	}
	if len(algs) != 1 {
		writeError(w, http.StatusBadRequest, errors.New("exactly one algorithm is required"))
		return
	}
	cell := report.DefaultCellSize
	if v := r.URL.Query().Get("cell"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 64 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("cell must be an integer in [1,64], got %q", v))
			return
		}
		cell = n
	}
	if px := report.Pixels(m, cell); px > MaxHeatmapPixels {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Errorf("%w: %d pixels at cell=%d, limit %d", report.ErrImageTooLarge, px, cell, MaxHeatmapPixels))
		return
	}

	res, err := search.Run(m, algs[0], search.WithContext(r.Context()), search.WithLogger(s.Logger))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.Recorder.Observe(res)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Path-Cost", strconv.FormatFloat(res.Cost, 'f', -1, 64))
	w.Header().Set("X-Nodes-Expanded", strconv.Itoa(res.Expanded))
	if err := report.WritePNG(w, m, res, cell); err != nil {
		s.Logger.Error("heatmap encode failed", "error", err)
	}
}

// decode reads the maze body and the algorithm query values, answering
// 400 on malformed input.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (*maze.Maze, []search.Algorithm, bool) {
	var algs []search.Algorithm
	for _, id := range r.URL.Query()["algorithm"] {
		a, err := search.ParseAlgorithm(id)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return nil, nil, false
		}
		algs = append(algs, a)
	}

	m, err := maze.Parse(http.MaxBytesReader(w, r.Body, MaxMazeBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return nil, nil, false
		}
		writeError(w, http.StatusBadRequest, err)
		return nil, nil, false
	}

	return m, algs, true
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, search.ErrUnknownAlgorithm), errors.Is(err, maze.ErrMalformedMaze):
		status = http.StatusBadRequest
	case r.Context().Err() != nil:
		// client went away; nobody reads the answer
		status = http.StatusServiceUnavailable
	}
	s.Logger.Warn("search request failed", "status", status, "error", err)
	writeError(w, status, err)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
