package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sanonone/readlens/internal/config"
	"github.com/sanonone/readlens/pkg/analysis"
)

const readableText = "Our company helps people manage their money. We offer simple tools and good advice. Members save more each month."

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := NewServer(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	for _, path := range []string{"/health", "/healthz"} {
		rec := doRequest(t, s, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
		var health HealthResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
			t.Fatal(err)
		}
		if health.Status != "healthy" || health.Version != Version {
			t.Errorf("%s: unexpected body %+v", path, health)
		}
	}
}

func TestReadabilityEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	body, _ := json.Marshal(analysis.Request{Text: readableText})
	rec := doRequest(t, s, http.MethodPost, "/analyze/readability", string(body))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q", origin)
	}

	var resp analysis.ServiceReadabilityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Metrics.ReadabilityScore != 10 || resp.Metrics.Difficulty != analysis.Easy {
		t.Errorf("unexpected response %+v", resp)
	}
	if !resp.Analysis.IsOptimal || resp.Analysis.SentenceCount != 3 || resp.Analysis.WordCount != 19 {
		t.Errorf("unexpected analysis block %+v", resp.Analysis)
	}
}

func TestReadabilityEndpoint_TooShort(t *testing.T) {
	s := newTestServer(t, nil)

	for _, body := range []string{`{"text":"Too short."}`, `{}`} {
		rec := doRequest(t, s, http.MethodPost, "/analyze/readability", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", body, rec.Code)
		}
		var resp analysis.ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Success || resp.Error != "Text too short for analysis (minimum 50 chars)" {
			t.Errorf("unexpected error body %+v", resp)
		}
	}
}

func TestKeywordsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	body := `{"text":"Growth teams drive growth. Product growth matters.","targetKeywords":["Growth"]}`
	rec := doRequest(t, s, http.MethodPost, "/analyze/keywords", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	var resp analysis.KeywordResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || len(resp.TopKeywords) == 0 || resp.TopKeywords[0].Keyword != "growth" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.TopKeywords[0].Count != 3 || resp.TargetKeywords[0].Count != 3 {
		t.Errorf("unexpected counts %+v / %+v", resp.TopKeywords[0], resp.TargetKeywords[0])
	}
	if len(resp.Recommendations) != 1 || !strings.Contains(resp.Recommendations[0], "'growth' may be overused") {
		t.Errorf("Recommendations = %q", resp.Recommendations)
	}
}

func TestKeywordsEndpoint_Errors(t *testing.T) {
	s := newTestServer(t, nil)

	testCases := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"empty text", `{"text":""}`, http.StatusBadRequest, "No text provided"},
		{"invalid json", `{"text":`, http.StatusBadRequest, "Invalid JSON body"},
		{"wrong keyword type", `{"text":"abc","targetKeywords":[1]}`, http.StatusBadRequest, "Invalid JSON body"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodPost, "/analyze/keywords", tc.body)
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, rec.Code, rec.Body)
			}
			var resp analysis.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Error != tc.message {
				t.Errorf("error = %q, want %q", resp.Error, tc.message)
			}
		})
	}
}

func TestKeywordsEndpoint_EmptyTargetKeyword(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doRequest(t, s, http.MethodPost, "/analyze/keywords", `{"text":"abc def","targetKeywords":[""]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var resp analysis.KeywordResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.TargetKeywords) != 1 || resp.TargetKeywords[0].Count != 8 {
		t.Errorf("empty target should count every position, got %+v", resp.TargetKeywords)
	}
}

func TestWriteAnalysisError(t *testing.T) {
	s := newTestServer(t, nil)

	testCases := []struct {
		err     error
		status  int
		message string
	}{
		{analysis.ErrTextTooShort, http.StatusBadRequest, "Text too short for analysis (minimum 50 chars)"},
		{analysis.ErrEmptyText, http.StatusBadRequest, "No text provided"},
		{analysis.Fault("scoring failed", errors.New("boom")), http.StatusInternalServerError, "scoring failed: boom"},
	}

	for _, tc := range testCases {
		rec := httptest.NewRecorder()
		s.writeAnalysisError(rec, httptest.NewRequest(http.MethodPost, "/analyze/readability", nil), tc.err)
		if rec.Code != tc.status {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.status, rec.Code)
		}
		var resp analysis.ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Success || resp.Error != tc.message {
			t.Errorf("%v: unexpected body %+v", tc.err, resp)
		}
	}
}

func TestBodyTooLarge(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.MaxBodyBytes = 16 })

	rec := doRequest(t, s, http.MethodPost, "/analyze/keywords", `{"text":"this body is longer than sixteen bytes"}`)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
}

func TestRoutingErrors(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doRequest(t, s, http.MethodGet, "/analyze/readability", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
		t.Errorf("Allow = %q", allow)
	}

	rec = doRequest(t, s, http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) { c.CORSOrigin = "https://app.example.com" })

	rec := doRequest(t, s, http.MethodOptions, "/analyze/keywords", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if !strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "POST") {
		t.Errorf("missing POST in allowed methods")
	}
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, nil)

	rec := doRequest(t, s, http.MethodGet, "/health", "")
	generated := rec.Header().Get(RequestIDHeader)
	if generated == "" {
		t.Fatal("expected a generated request id")
	}

	const incoming = "4f1c2a8e-9b7d-4c3e-8a1f-2d6b5e7c9a01"
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got != incoming {
		t.Errorf("request id = %q, want %q", got, incoming)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get(RequestIDHeader); got == "not-a-uuid" {
		t.Errorf("invalid incoming id must be replaced")
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	s := newTestServer(t, nil)
	h := s.RecoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte(`"error":"boom"`)) {
		t.Errorf("unexpected body %s", rec.Body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	doRequest(t, s, http.MethodPost, "/analyze/readability", `{"text":"short"}`)
	body, _ := json.Marshal(analysis.Request{Text: readableText})
	doRequest(t, s, http.MethodPost, "/analyze/readability", string(body))

	rec := doRequest(t, s, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	for _, name := range []string{"readlens_analyses_total", "readlens_readability_score_count"} {
		if !strings.Contains(rec.Body.String(), name) {
			t.Errorf("metrics output missing %s", name)
		}
	}

	disabled := newTestServer(t, func(c *config.Config) { c.MetricsEnabled = false })
	if rec := doRequest(t, disabled, http.MethodGet, "/metrics", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 with metrics disabled, got %d", rec.Code)
	}
}

func TestNewServer_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.HTTPAddr = ""
	if _, err := NewServer(cfg, nil); err == nil {
		t.Fatal("expected error for empty http_addr")
	}
}
