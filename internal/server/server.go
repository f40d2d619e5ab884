// Package server exposes the generation pipeline over HTTP: grounded
// title and article generation from PDF URLs, plus a pure
// title-cleaning endpoint for externally re-submitted title data.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pratik30111991/chatgpt-automation-vps/internal/pipeline"
	"github.com/pratik30111991/chatgpt-automation-vps/internal/titles"
)

// Generator is the pipeline capability consumed by the HTTP layer.
type Generator interface {
	Titles(ctx context.Context, req pipeline.TitlesRequest) (pipeline.TitlesResult, error)
	Content(ctx context.Context, req pipeline.ContentRequest) (pipeline.ContentResult, error)
	Keyword(ctx context.Context, keyword string) ([]string, error)
}

// Server is the HTTP front of the generation pipeline.
type Server struct {
	gen     Generator
	svcCfg  *ServiceConfig
	limiter *rate.Limiter
	mux     *http.ServeMux
}

// Config holds the server construction parameters.
type Config struct {
	Generator Generator
	// ServiceYAMLPath points at the optional service.yaml; blank skips it.
	ServiceYAMLPath string
}

// New creates and initializes a Server.
func New(cfg Config) (*Server, error) {
	if cfg.Generator == nil {
		return nil, errors.New("generator is required")
	}

	svcCfg := defaultServiceConfig()
	if cfg.ServiceYAMLPath != "" {
		loaded, err := LoadServiceConfig(cfg.ServiceYAMLPath)
		if err != nil {
			return nil, err
		}
		svcCfg = loaded
	}

	s := &Server{
		gen:    cfg.Generator,
		svcCfg: svcCfg,
		mux:    http.NewServeMux(),
	}
	if rps := svcCfg.Server.RateLimit.RPS; rps > 0 {
		burst := svcCfg.Server.RateLimit.Burst
		if burst <= 0 {
			burst = int(rps)
		}
		s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}

	s.registerRoutes()
	return s, nil
}

// ServiceConfigured returns the effective service configuration.
func (s *Server) ServiceConfigured() *ServiceConfig {
	return s.svcCfg
}

// Handler returns the HTTP handler with the full middleware chain.
func (s *Server) Handler() http.Handler {
	h := http.Handler(s.mux)
	h = s.logMiddleware(h)
	if s.limiter != nil {
		h = s.rateLimitMiddleware(h)
	}
	h = s.corsMiddleware(h)
	h = s.recoverMiddleware(h)
	return h
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/pdf/titles", s.handleTitles)
	s.mux.HandleFunc("/pdf/content", s.handleContent)
}

// handleRoot serves the liveness check on GET and title cleaning /
// keyword generation on POST.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found", "")
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{
			"status": fmt.Sprintf("✅ %s running.", s.svcCfg.Service.Name),
		})
	case http.MethodPost:
		s.handleCleanOrKeyword(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": s.svcCfg.Service.Name,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// handleCleanOrKeyword dispatches POST / by body shape: a title field
// means pure normalization (no model call), otherwise a keyword field
// means keyword title generation.
func (s *Server) handleCleanOrKeyword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title   json.RawMessage `json:"title"`
		Keyword string          `json:"keyword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid or empty JSON", "")
		return
	}

	if len(body.Title) > 0 && string(body.Title) != "null" {
		cleaned, ok := normalizeTitleField(body.Title)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid title field", "")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"titles": cleaned})
		return
	}

	keyword := strings.TrimSpace(body.Keyword)
	if keyword == "" {
		writeError(w, http.StatusBadRequest, "Keyword is required when no title provided", "")
		return
	}

	list, err := s.gen.Keyword(r.Context(), keyword)
	if err != nil {
		s.writeGenerationError(w, err, 0)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"titles": list})
}

// normalizeTitleField accepts the title field as either a JSON array of
// strings or a single string of any of the recognized shapes.
func normalizeTitleField(raw json.RawMessage) ([]string, bool) {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return titles.FromList(list), true
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return titles.FromField(one), true
	}
	return nil, false
}

func (s *Server) handleTitles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}

	var body struct {
		PDFURL      string `json:"pdf_url"`
		Instruction string `json:"instruction"`
		MaxChars    int    `json:"max_chars"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid or empty JSON", "")
		return
	}
	if body.PDFURL == "" {
		writeError(w, http.StatusBadRequest, "Missing pdf_url", "")
		return
	}

	res, err := s.gen.Titles(r.Context(), pipeline.TitlesRequest{
		PDFURL:      body.PDFURL,
		Instruction: s.instructionOrDefault(body.Instruction, s.svcCfg.Prompts.TitlesInstruction),
		MaxChars:    body.MaxChars,
	})
	if err != nil {
		s.writeGenerationError(w, err, res.PagesChecked)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"titles":        res.Titles,
		"fileSize":      res.FileSize,
		"pages_checked": res.PagesChecked,
	})
}

func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "")
		return
	}

	var body struct {
		PDFURL      string `json:"pdf_url"`
		Title       string `json:"title"`
		Instruction string `json:"instruction"`
		MaxChars    int    `json:"max_chars"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid or empty JSON", "")
		return
	}
	if body.PDFURL == "" || body.Title == "" {
		writeError(w, http.StatusBadRequest, "Missing pdf_url or title", "")
		return
	}

	res, err := s.gen.Content(r.Context(), pipeline.ContentRequest{
		PDFURL:      body.PDFURL,
		Title:       body.Title,
		Instruction: s.instructionOrDefault(body.Instruction, s.svcCfg.Prompts.ContentInstruction),
		MaxChars:    body.MaxChars,
	})
	if err != nil {
		s.writeGenerationError(w, err, res.PagesChecked)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"title":         res.Title,
		"content":       res.HTML,
		"format":        "html",
		"fileSize":      res.FileSize,
		"pages_checked": res.PagesChecked,
	})
}

// instructionOrDefault prefers the per-request instruction, then the
// service.yaml override, then blank (the prompt package applies its own
// built-in default).
func (s *Server) instructionOrDefault(requested, configured string) string {
	if strings.TrimSpace(requested) != "" {
		return requested
	}
	return configured
}

// writeGenerationError translates pipeline errors into the HTTP error
// taxonomy. Unexpected faults become opaque 500s; no stack traces leak.
func (s *Server) writeGenerationError(w http.ResponseWriter, err error, pagesChecked int) {
	switch {
	case errors.Is(err, pipeline.ErrMissingInput):
		writeError(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, pipeline.ErrExtractionFailed):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":         "No text extracted from PDF",
			"fileSize":      0,
			"pages_checked": pagesChecked,
		})
	case errors.Is(err, pipeline.ErrNoTitles):
		writeError(w, http.StatusBadRequest, "No titles generated from PDF", "")
	default:
		writeError(w, http.StatusInternalServerError, "Server error", err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	body := map[string]any{"error": msg}
	if details != "" {
		body["details"] = details
	}
	writeJSON(w, status, body)
}
