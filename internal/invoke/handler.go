// Package invoke adapts the readability analysis to function invocations:
// API Gateway proxy events and direct JSON events.
package invoke

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sanonone/readlens/pkg/analysis"
	"github.com/sanonone/readlens/pkg/metrics"
)

var responseHeaders = map[string]string{
	"Content-Type":                "application/json",
	"Access-Control-Allow-Origin": "*",
}

// Handler scores the readability of the text carried by an event.
type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger}
}

// Handle accepts either a proxy event whose body holds the request (as a
// JSON string or an embedded object) or the request itself. Failures are
// reported in the response; the returned error is always nil.
func (h *Handler) Handle(ctx context.Context, raw json.RawMessage) (events.APIGatewayProxyResponse, error) {
	req, err := decodeEvent(raw)
	if err != nil {
		h.logger.Warn("Invalid invocation event", "error", err)
		return h.respond(http.StatusBadRequest, analysis.ErrorResponse{Error: "Invalid JSON body"}), nil
	}

	report, err := analysis.ScoreReadability(req.Text)
	return h.readabilityResponse(req.Text, report, err), nil
}

// readabilityResponse maps a scoring outcome to the proxy response:
// 200 with the report, 400 for rejections and 500 for any other error.
func (h *Handler) readabilityResponse(text string, report *analysis.ReadabilityReport, err error) events.APIGatewayProxyResponse {
	chars := utf8.RuneCountInString(text)
	switch {
	case err == nil:
		metrics.ObserveAnalysis(metrics.KindReadability, metrics.OutcomeOK, chars)
		metrics.ObserveScore(report.Metrics.ReadabilityScore)
		return h.respond(http.StatusOK, analysis.NewInvocationReadabilityResponse(report))
	case analysis.IsRejected(err):
		metrics.ObserveAnalysis(metrics.KindReadability, metrics.OutcomeRejected, chars)
		return h.respond(http.StatusBadRequest, analysis.NewErrorResponse(err))
	default:
		metrics.ObserveAnalysis(metrics.KindReadability, metrics.OutcomeFault, chars)
		h.logger.Error("Error in invocation handler", "error", err)
		return h.respond(http.StatusInternalServerError, analysis.NewErrorResponse(err))
	}
}

func (h *Handler) respond(status int, payload any) events.APIGatewayProxyResponse {
	headers := make(map[string]string, len(responseHeaders))
	for k, v := range responseHeaders {
		headers[k] = v
	}

	body, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to encode response", "error", err)
		status = http.StatusInternalServerError
		body = []byte(`{"success":false,"error":"failed to encode response"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(body),
	}
}

// decodeEvent extracts the analysis request from raw.
func decodeEvent(raw json.RawMessage) (analysis.Request, error) {
	var req analysis.Request

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return req, fmt.Errorf("event is not a JSON object: %w", err)
	}

	body, ok := envelope["body"]
	if !ok {
		return req, json.Unmarshal(raw, &req)
	}

	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '"' {
		var s string
		if err := json.Unmarshal(body, &s); err != nil {
			return req, fmt.Errorf("could not read body string: %w", err)
		}
		payload := []byte(s)
		if isBase64Encoded(envelope) {
			decoded, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				return req, fmt.Errorf("could not decode base64 body: %w", err)
			}
			payload = decoded
		}
		if err := json.Unmarshal(payload, &req); err != nil {
			return req, fmt.Errorf("could not parse body: %w", err)
		}
		return req, nil
	}

	if err := json.Unmarshal(body, &req); err != nil {
		return req, fmt.Errorf("could not parse body: %w", err)
	}
	return req, nil
}

func isBase64Encoded(envelope map[string]json.RawMessage) bool {
	var flag bool
	if v, ok := envelope["isBase64Encoded"]; ok {
		_ = json.Unmarshal(v, &flag)
	}
	return flag
}
