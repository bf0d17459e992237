package analysis

// ServiceAnalysis is the readability analysis block returned by the HTTP
// service.
type ServiceAnalysis struct {
	SentenceCount int  `json:"sentenceCount"`
	WordCount     int  `json:"wordCount"`
	IsOptimal     bool `json:"isOptimal"`
}

// InvocationAnalysis is the readability analysis block returned by the
// function handler.
type InvocationAnalysis struct {
	SentenceCount  int `json:"sentenceCount"`
	WordCount      int `json:"wordCount"`
	CharacterCount int `json:"characterCount"`
}

// ServiceReadabilityResponse is the HTTP readability response body.
type ServiceReadabilityResponse struct {
	Success  bool               `json:"success"`
	Metrics  ReadabilityMetrics `json:"metrics"`
	Analysis ServiceAnalysis    `json:"analysis"`
}

// InvocationReadabilityResponse is the function handler response body.
type InvocationReadabilityResponse struct {
	Success  bool               `json:"success"`
	Metrics  ReadabilityMetrics `json:"metrics"`
	Analysis InvocationAnalysis `json:"analysis"`
}

// KeywordResponse is the keyword analysis response body.
type KeywordResponse struct {
	Success bool `json:"success"`
	KeywordReport
}

// ErrorResponse is the body returned for rejected or failed requests.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewServiceReadabilityResponse packages r for the HTTP service.
func NewServiceReadabilityResponse(r *ReadabilityReport) ServiceReadabilityResponse {
	return ServiceReadabilityResponse{
		Success: true,
		Metrics: r.Metrics,
		Analysis: ServiceAnalysis{
			SentenceCount: r.Stats.SentenceCount,
			WordCount:     r.Stats.WordCount,
			IsOptimal:     r.IsOptimal,
		},
	}
}

// NewInvocationReadabilityResponse packages r for the function handler.
func NewInvocationReadabilityResponse(r *ReadabilityReport) InvocationReadabilityResponse {
	return InvocationReadabilityResponse{
		Success: true,
		Metrics: r.Metrics,
		Analysis: InvocationAnalysis{
			SentenceCount:  r.Stats.SentenceCount,
			WordCount:      r.Stats.WordCount,
			CharacterCount: r.Stats.CharacterCount,
		},
	}
}

// NewKeywordResponse packages r for any wrapper.
func NewKeywordResponse(r *KeywordReport) KeywordResponse {
	return KeywordResponse{Success: true, KeywordReport: *r}
}

// NewErrorResponse builds the failure body carrying err's message.
func NewErrorResponse(err error) ErrorResponse {
	return ErrorResponse{Success: false, Error: err.Error()}
}
