package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sanonone/readlens/pkg/analysis"
	"github.com/sanonone/readlens/pkg/metrics"
)

const (
	pathHealth      = "/health"
	pathHealthz     = "/healthz"
	pathReadability = "/analyze/readability"
	pathKeywords    = "/analyze/keywords"
	pathMetrics     = "/metrics"
)

const serviceName = "readlens text analysis service"

// registerHTTPHandlers sets up the REST routes.
func (s *Server) registerHTTPHandlers(mux *http.ServeMux) {
	if s.cfg.MetricsEnabled {
		mux.Handle(pathMetrics, promhttp.Handler())
	}
	mux.HandleFunc("/", s.router)
}

// router dispatches on path, then checks the method.
func (s *Server) router(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/":
		s.requireMethod(w, r, http.MethodGet, s.handleIndex)
	case pathHealth, pathHealthz:
		s.requireMethod(w, r, http.MethodGet, s.handleHealth)
	case pathReadability:
		s.requireMethod(w, r, http.MethodPost, s.handleReadability)
	case pathKeywords:
		s.requireMethod(w, r, http.MethodPost, s.handleKeywords)
	default:
		s.writeHTTPError(w, http.StatusNotFound, "Endpoint not found")
	}
}

func (s *Server) requireMethod(w http.ResponseWriter, r *http.Request, method string, h http.HandlerFunc) {
	if r.Method != method {
		w.Header().Set("Allow", method)
		s.writeHTTPError(w, http.StatusMethodNotAllowed, "Use the "+method+" method")
		return
	}
	h(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writeHTTPResponse(w, http.StatusOK, IndexResponse{
		Service: serviceName,
		Version: Version,
		Endpoints: map[string]string{
			"health":      pathHealth,
			"readability": pathReadability,
			"keywords":    pathKeywords,
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeHTTPResponse(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Version: Version,
	})
}

func (s *Server) handleReadability(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	report, err := analysis.ScoreReadability(req.Text)
	metrics.ObserveAnalysis(metrics.KindReadability, outcomeOf(err), utf8.RuneCountInString(req.Text))
	if err != nil {
		s.writeAnalysisError(w, r, err)
		return
	}
	metrics.ObserveScore(report.Metrics.ReadabilityScore)

	s.writeHTTPResponse(w, http.StatusOK, analysis.NewServiceReadabilityResponse(report))
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	report, err := analysis.AnalyzeKeywords(req.Text, req.TargetKeywords)
	metrics.ObserveAnalysis(metrics.KindKeywords, outcomeOf(err), utf8.RuneCountInString(req.Text))
	if err != nil {
		s.writeAnalysisError(w, r, err)
		return
	}

	s.writeHTTPResponse(w, http.StatusOK, analysis.NewKeywordResponse(report))
}

// decodeRequest reads the JSON body into an analysis.Request. On failure it
// writes the error response and returns false.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (analysis.Request, bool) {
	var req analysis.Request
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeHTTPError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return req, false
		}
		s.writeHTTPError(w, http.StatusBadRequest, "Invalid JSON body")
		return req, false
	}
	return req, true
}

// writeAnalysisError maps engine errors to status codes: rejections are
// 400, anything else is 500 with the message echoed.
func (s *Server) writeAnalysisError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	if !analysis.IsRejected(err) {
		status = http.StatusInternalServerError
		s.logger.Error("Analysis failed",
			"path", r.URL.Path,
			"request_id", RequestIDFromContext(r.Context()),
			"error", err,
		)
	}
	s.writeHTTPError(w, status, err.Error())
}

func (s *Server) writeHTTPResponse(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("Failed to encode response", "error", err)
	}
}

func (s *Server) writeHTTPError(w http.ResponseWriter, statusCode int, message string) {
	s.writeHTTPResponse(w, statusCode, analysis.ErrorResponse{Success: false, Error: message})
}
