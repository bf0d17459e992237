package mcp

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sanonone/readlens/pkg/analysis"
	"github.com/sanonone/readlens/pkg/metrics"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// --- Tool Handlers ---

func (s *Service) AnalyzeReadability(ctx context.Context, req *mcp.CallToolRequest, args ReadabilityArgs) (*mcp.CallToolResult, ReadabilityResult, error) {
	report, err := analysis.ScoreReadability(args.Text)
	s.observe(metrics.KindReadability, args.Text, err)
	if err != nil {
		return nil, ReadabilityResult{}, err
	}
	metrics.ObserveScore(report.Metrics.ReadabilityScore)

	return nil, analysis.NewServiceReadabilityResponse(report), nil
}

func (s *Service) AnalyzeKeywords(ctx context.Context, req *mcp.CallToolRequest, args KeywordsArgs) (*mcp.CallToolResult, KeywordsResult, error) {
	report, err := analysis.AnalyzeKeywords(args.Text, args.TargetKeywords)
	s.observe(metrics.KindKeywords, args.Text, err)
	if err != nil {
		return nil, KeywordsResult{}, err
	}

	resp := analysis.NewKeywordResponse(report)
	result := KeywordsResult{
		Success:         resp.Success,
		TopKeywords:     resp.TopKeywords,
		TargetKeywords:  make([]TargetKeywordEntry, 0, len(resp.TargetKeywords)),
		Statistics:      resp.Statistics,
		Recommendations: resp.Recommendations,
	}
	for _, kw := range resp.TargetKeywords {
		result.TargetKeywords = append(result.TargetKeywords, TargetKeywordEntry{
			Keyword:   kw.Keyword,
			Count:     kw.Count,
			Density:   kw.Density,
			IsOptimal: kw.IsOptimal,
		})
	}
	return nil, result, nil
}

func (s *Service) observe(kind, text string, err error) {
	outcome := metrics.OutcomeOK
	switch {
	case err == nil:
	case analysis.IsRejected(err):
		outcome = metrics.OutcomeRejected
	default:
		outcome = metrics.OutcomeFault
		s.logger.Error("MCP analysis failed", "tool", kind, "error", err)
	}
	metrics.ObserveAnalysis(kind, outcome, utf8.RuneCountInString(text))
}
