// Package server exposes the transform engine over HTTP.
//
// Routes:
//
//	GET  /health         liveness probe
//	GET  /version        build information
//	GET  /v1/ops         the eight grid symmetries and their matrices
//	POST /v1/grid        transform a JSON grid
//	POST /v1/text        transform delimited text; options in the query
//	GET  /metrics        Prometheus metrics, when a gatherer is configured
package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/transpose/pkg/buildinfo"
	"github.com/matzehuels/transpose/pkg/errors"
	"github.com/matzehuels/transpose/pkg/grid"
	"github.com/matzehuels/transpose/pkg/grid/symmetry"
	"github.com/matzehuels/transpose/pkg/observability"
	"github.com/matzehuels/transpose/pkg/pipeline"
	"github.com/matzehuels/transpose/pkg/rotate"
)

// maxBody caps request bodies.
const maxBody = 8 << 20

// DefaultMaxSize caps the side length of a grid. Rotations square the grid
// and 45° turns roughly quadruple it, so output grows with the square of
// this value.
const DefaultMaxSize = 1000

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	Runner   *pipeline.Runner
	Logger   *log.Logger
	Gatherer prometheus.Gatherer // nil disables /metrics
	MaxSize  int                 // largest accepted rows or columns; 0 means DefaultMaxSize
}

func (s *Server) maxSize() int {
	if s.MaxSize > 0 {
		return s.MaxSize
	}
	return DefaultMaxSize
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version": buildinfo.Version,
			"commit":  buildinfo.Commit,
			"date":    buildinfo.Date,
		})
	})
	r.Route("/v1", func(r chi.Router) {
		r.Get("/ops", s.handleOps)
		r.Post("/grid", s.handleGrid)
		r.Post("/text", s.handleText)
	})
	if s.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// observe reports every request to the HTTP hooks under its route pattern,
// which is only known once routing has happened.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		hooks := observability.HTTP()
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		hooks.OnRequest(r.Context(), r.Method, route)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, route, status, time.Since(start))
		if s.Logger != nil {
			s.Logger.Debug("request", "method", r.Method, "route", route,
				"status", status, "id", middleware.GetReqID(r.Context()))
		}
	})
}

// =============================================================================
// Handlers
// =============================================================================

type opInfo struct {
	Name    string  `json:"name"`
	Matrix  [][]int `json:"matrix"`
	Inverse string  `json:"inverse"`
}

func (s *Server) handleOps(w http.ResponseWriter, r *http.Request) {
	var out []opInfo
	for _, op := range symmetry.Ops() {
		out = append(out, opInfo{Name: op.String(), Matrix: op.Matrix(), Inverse: op.Inverse().String()})
	}
	writeJSON(w, http.StatusOK, out)
}

// GridRequest is the body of POST /v1/grid.
type GridRequest struct {
	Rows  [][]string `json:"rows"`
	Op    string     `json:"op"`
	Angle int        `json:"angle"`
	Skew  bool       `json:"skew"`
}

// GridResponse is the reply to POST /v1/grid.
type GridResponse struct {
	Rows [][]string `json:"rows"`
	Plan string     `json:"plan"`
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	var req GridRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return
	}
	mode, err := rotate.ParseMode(req.Op)
	if err != nil {
		writeError(w, err)
		return
	}
	rq := rotate.Request{Mode: mode, Angle: req.Angle, Skew: req.Skew}
	if err := rq.Validate(); err != nil {
		writeError(w, err)
		return
	}
	plan, err := rotate.NewPlan(rq)
	if err != nil {
		writeError(w, err)
		return
	}
	g := grid.FromRows(req.Rows...)
	if err := pipeline.CheckSize(g, s.maxSize()); err != nil {
		writeError(w, err)
		return
	}
	out, err := s.Runner.Transform(r.Context(), g, rq)
	if err != nil {
		writeError(w, err)
		return
	}
	rows := [][]string(out)
	if rows == nil {
		rows = [][]string{}
	}
	writeJSON(w, http.StatusOK, GridResponse{Rows: rows, Plan: plan.String()})
}

// handleText runs the full pipeline on the request body. Query parameters
// mirror the command line flags: separator, pattern, width, keepspaces,
// quoted, dquoted, op, rotate, skew, output_separator, format.
func (s *Server) handleText(w http.ResponseWriter, r *http.Request) {
	opts, err := textOptions(r)
	if err != nil {
		writeError(w, err)
		return
	}
	opts.MaxSize = s.maxSize()
	body := http.MaxBytesReader(w, r.Body, maxBody)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if opts.Format == pipeline.FormatJSON {
		w.Header().Set("Content-Type", "application/json")
	}
	// Buffer so a late error still produces a clean error response.
	var buf bytes.Buffer
	if _, err := s.Runner.Run(r.Context(), []pipeline.Input{{Name: "body", R: body}}, &buf, opts); err != nil {
		w.Header().Del("Content-Type")
		writeError(w, err)
		return
	}
	_, _ = w.Write(buf.Bytes())
}

func textOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	var o pipeline.Options
	if q.Has("separator") {
		o.Columns.Separator, o.Columns.SeparatorSet = q.Get("separator"), true
	}
	o.Columns.Pattern = q.Get("pattern")
	o.Columns.Width = q.Get("width")
	o.Columns.KeepSpaces = boolParam(q.Get("keepspaces"))
	o.Columns.Quoted = boolParam(q.Get("quoted"))
	o.Columns.DQuoted = boolParam(q.Get("dquoted"))
	if q.Has("output_separator") {
		o.OutputSeparator, o.OutputSeparatorSet = q.Get("output_separator"), true
	}
	o.Format = q.Get("format")
	o.InputFormat = q.Get("input_format")

	mode, err := rotate.ParseMode(q.Get("op"))
	if err != nil {
		return o, err
	}
	o.Request.Mode = mode
	o.Request.Skew = boolParam(q.Get("skew"))
	if v := q.Get("rotate"); v != "" {
		deg, err := rotate.ParseAngle(v)
		if err != nil {
			return o, err
		}
		o.Request.Mode, o.Request.Angle = rotate.ModeAngle, deg
	}
	return o, nil
}

func boolParam(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}

// =============================================================================
// Responses
// =============================================================================

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusBadRequest
	switch code {
	case "":
		code = errors.ErrCodeInternal
		status = http.StatusInternalServerError
	case errors.ErrCodeInternal:
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, errorBody{Code: code, Message: errors.UserMessage(err)})
}
