package models

// QueryRequest is the body of POST /query. Analysis type and timeframe are
// defaulted when absent and deliberately never validated against their
// vocabularies, matching the dashboard contract.
type QueryRequest struct {
	Question     string   `json:"question"`
	AnalysisType string   `json:"analysis_type"`
	Symbols      []string `json:"symbols"`
	Timeframe    string   `json:"timeframe"`
}

// PortfolioRequest is the body of POST /portfolio.
type PortfolioRequest struct {
	Symbols       []string  `json:"symbols"`
	Weights       []float64 `json:"weights"`
	RiskTolerance string    `json:"risk_tolerance"`
}

// QueryMetadata is echoed back with every successful /query response.
type QueryMetadata struct {
	AnalysisType    string   `json:"analysis_type"`
	SymbolsAnalyzed []string `json:"symbols_analyzed"`
	Timeframe       string   `json:"timeframe"`
	Timestamp       string   `json:"timestamp"`
	QueryID         int      `json:"query_id"`
}

// QueryRecord is the bookkeeping entry kept for /history.
type QueryRecord struct {
	Timestamp      string   `json:"timestamp"`
	Question       string   `json:"question"`
	AnalysisType   string   `json:"analysis_type"`
	Symbols        []string `json:"symbols"`
	ResponseLength int      `json:"response_length"`
}

// Alert is a user-declared price condition. Alerts are recorded only; no
// evaluation against live prices happens anywhere in this service.
type Alert struct {
	Symbol    string  `json:"symbol"`
	Condition string  `json:"condition"`
	Threshold float64 `json:"threshold"`
	Created   string  `json:"created"`
	Active    bool    `json:"active"`
}

// Analysis types accepted by the dashboard. The server defaults to
// comprehensive but does not reject unknown values.
const (
	AnalysisQuick         = "quick"
	AnalysisComprehensive = "comprehensive"
	AnalysisTechnical     = "technical"
	AnalysisRisk          = "risk"
	AnalysisSentiment     = "sentiment"
	AnalysisPortfolio     = "portfolio"
)

// Risk tolerance levels for portfolio analysis.
const (
	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskAggressive   = "aggressive"
)
