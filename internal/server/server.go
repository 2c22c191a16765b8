// Package server exposes the shape generator over HTTP.
//
//	POST /shape/parse  {"command": "..."} -> ParseResponse
//	GET  /health       -> HealthResponse
//	GET  /shapes       -> []ShapeInfo
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"shapegen/internal/config"
	"shapegen/internal/generator"
	"shapegen/internal/logging"
	"shapegen/internal/shape"

	"go.uber.org/zap"
)

// ShapeGenerator is the pipeline the server delegates to.
type ShapeGenerator interface {
	Generate(ctx context.Context, command string) (shape.Shape, error)
}

// Options configures a Server. Zero values take the defaults below.
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxConnections  int
	MaxBodyBytes    int64
	AllowedOrigins  []string
}

// OptionsFromConfig maps the server section of cfg onto Options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.GetReadTimeout(),
		WriteTimeout:    cfg.GetWriteTimeout(),
		ShutdownTimeout: cfg.GetShutdownTimeout(),
		MaxConnections:  cfg.Server.MaxConnections,
		MaxBodyBytes:    cfg.Server.MaxBodyBytes,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
	}
}

func (o *Options) applyDefaults() {
	if o.Addr == "" {
		o.Addr = ":8080"
	}
	if o.ReadTimeout <= 0 {
		o.ReadTimeout = 10 * time.Second
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = 10 * time.Second
	}
	if o.ShutdownTimeout <= 0 {
		o.ShutdownTimeout = 5 * time.Second
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = 1 << 20
	}
}

// Server serves the shape API.
type Server struct {
	gen     ShapeGenerator
	logger  *zap.Logger
	opts    Options
	handler http.Handler
	now     func() time.Time
}

// New builds a Server. A nil logger is replaced with zap.NewNop().
func New(gen ShapeGenerator, logger *zap.Logger, opts Options) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts.applyDefaults()

	s := &Server{
		gen:    gen,
		logger: logger,
		opts:   opts,
		now:    time.Now,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /shape/parse", s.handleParse)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /shapes", s.handleShapes)

	var h http.Handler = mux
	h = s.limitBody(h)
	h = s.cors(h)
	h = s.recoverPanics(h)
	h = s.accessLog(h)
	h = s.requestID(h)
	s.handler = h
	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.WithRequestID(logging.CategoryAPI, generator.RequestIDFrom(ctx))

	var req *ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errResponse(MsgBodyTooLarge))
			return
		}
		log.Debug("malformed body: %v", err)
		writeJSON(w, http.StatusBadRequest, errResponse(MsgMalformedBody))
		return
	}

	if req == nil {
		writeJSON(w, http.StatusBadRequest, errResponse(MsgNullRequest))
		return
	}
	if req.Command == nil || strings.TrimSpace(*req.Command) == "" {
		writeJSON(w, http.StatusBadRequest, errResponse(MsgEmptyCommand))
		return
	}

	sh, err := s.gen.Generate(ctx, *req.Command)
	switch {
	case err == nil:
		log.Debug("generated %s", sh.Type())
		writeJSON(w, http.StatusOK, okResponse(sh))

	case generator.IsInputError(err):
		log.Debug("rejected command: %v", err)
		writeJSON(w, http.StatusBadRequest, errResponse(FailureMessage(err)))

	case errors.Is(err, generator.ErrSynthesis):
		log.Error("calculation failed: %v", err)
		s.logger.Error("shape calculation failed", zap.Error(err), zap.String("request_id", generator.RequestIDFrom(ctx)))
		writeJSON(w, http.StatusInternalServerError, errResponse(FailureMessage(err)))

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Warn("request cancelled: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, errResponse(FailureMessage(err)))

	default:
		log.Error("unexpected error: %v", err)
		s.logger.Error("unexpected parse error", zap.Error(err), zap.String("request_id", generator.RequestIDFrom(ctx)))
		writeJSON(w, http.StatusInternalServerError, errResponse(MsgUnexpected))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "Healthy",
		Timestamp: s.now().UTC().Format(time.RFC3339Nano),
	})
}

func (s *Server) handleShapes(w http.ResponseWriter, r *http.Request) {
	catalogue := Catalogue()
	logging.APIDebug("[req:%s] serving catalogue of %d shapes", generator.RequestIDFrom(r.Context()), len(catalogue))
	writeJSON(w, http.StatusOK, catalogue)
}

// writeJSON encodes v before committing the status, so an unencodable value
// becomes a 500 with MsgUnexpected instead of a 200 with an empty body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.APIError("failed to encode response: %v", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errResponse(MsgUnexpected))
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}
