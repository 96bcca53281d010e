// Package server exposes chart rendering over HTTP.
//
// Routes:
//
//	GET  /healthz          liveness probe
//	GET  /backends         registered render backends
//	POST /render/{kind}    render a JSON point array
//
// /render accepts the query parameters backend, width, height and title.
package server

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"math"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/dataset"
	"github.com/gogpu/chart/export"
	"github.com/gogpu/chart/internal/config"
	"github.com/gogpu/chart/render"
)

// Server renders charts on request.
type Server struct {
	cfg *config.Config
	log *slog.Logger
}

// New creates a server. A nil logger discards output.
func New(cfg *config.Config, log *slog.Logger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{cfg: cfg, log: log}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.requestLog)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Get("/backends", s.backends)
	r.Post("/render/{kind}", s.render)
	return r
}

// HTTPServer wraps Handler with the configured address and timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadTimeout:       s.cfg.Server.ReadTimeout,
		ReadHeaderTimeout: s.cfg.Server.ReadTimeout,
		WriteTimeout:      s.cfg.Server.WriteTimeout,
	}
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) backends(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"backends": render.Backends()})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request) {
	kind, err := chart.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	q := r.URL.Query()
	backend := q.Get("backend")
	if backend == "" {
		backend = s.cfg.Render.Backend
	}
	format, err := render.FormatOf(backend)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	width, err := s.size(q.Get("width"), s.cfg.Chart.Width, s.cfg.Server.MaxWidth)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	height, err := s.size(q.Get("height"), s.cfg.Chart.Height, s.cfg.Server.MaxHeight)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return
		}
		writeError(w, http.StatusBadRequest, err)
		return
	}
	points, err := dataset.Decode(bytes.NewReader(raw))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	opts := s.cfg.Chart.Options()
	if title := q.Get("title"); title != "" {
		opts = append(opts, chart.WithExport(true, title))
	}
	c := chart.New(kind, points, opts...)
	c.Resize(width, height)

	var buf bytes.Buffer
	if _, err := c.Render(&buf, backend); err != nil {
		s.log.Error("render failed", "kind", kind, "backend", backend, "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	ct := format.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ct)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if title := c.Config().ChartTitle; title != "" {
		disp := mime.FormatMediaType("inline", map[string]string{"filename": export.FileName(title, format.Ext)})
		w.Header().Set("Content-Disposition", disp)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.log.Warn("write response", "err", err)
	}
}

// size parses a dimension parameter. Empty falls back to def; values above
// limit are capped.
func (s *Server) size(raw string, def, limit float64) (float64, error) {
	v := def
	if raw != "" {
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || !(n >= 0) || math.IsInf(n, 0) {
			return 0, errors.New("invalid size " + strconv.Quote(raw))
		}
		v = n
	}
	if limit > 0 && v > limit {
		v = limit
	}
	return v, nil
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
