package agents

import (
	"github.com/cloudwego/eino/schema"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/models"
)

// Graph node names.
const (
	Coordinator = "coordinator"
	Synthesizer = "synthesizer"

	MarketResearch    = "market_research"
	FinancialData     = "financial_data"
	TechnicalAnalysis = "technical_analysis"
	RiskAssessment    = "risk_assessment"
	MarketSentiment   = "market_sentiment"
	PortfolioStrategy = "portfolio_strategy"
)

// MemberNames lists the six specialist agents in coordination order.
var MemberNames = []string{
	MarketResearch,
	FinancialData,
	TechnicalAnalysis,
	RiskAssessment,
	MarketSentiment,
	PortfolioStrategy,
}

// AnalysisState is the shared orchestration state threaded through the team
// graph for a single run.
type AnalysisState struct {
	Question     string `json:"question"`
	AnalysisType string `json:"analysis_type"`

	Messages []*schema.Message `json:"messages"`

	// Plan is the queue of specialists still to run; the coordinator pops
	// from the front and hands off until it drains, then routes to the
	// synthesizer.
	Plan     []string          `json:"plan"`
	Sections map[string]string `json:"sections"`

	Goto        string `json:"goto"`
	FinalReport string `json:"final_report"`
}

// NewAnalysisState seeds per-run state. The specialist plan depends on the
// analysis type; unknown types get the full comprehensive plan, consistent
// with the service never validating the type vocabulary.
func NewAnalysisState(prompt, analysisType string) *AnalysisState {
	return &AnalysisState{
		Question:     prompt,
		AnalysisType: analysisType,
		Messages: []*schema.Message{
			schema.UserMessage(prompt),
		},
		Plan:     planFor(analysisType),
		Sections: make(map[string]string),
		Goto:     Coordinator,
	}
}

func planFor(analysisType string) []string {
	switch analysisType {
	case models.AnalysisQuick:
		return []string{FinancialData}
	case models.AnalysisTechnical:
		return []string{FinancialData, TechnicalAnalysis}
	case models.AnalysisRisk:
		return []string{MarketResearch, RiskAssessment}
	case models.AnalysisSentiment:
		return []string{MarketResearch, MarketSentiment}
	case models.AnalysisPortfolio:
		return []string{FinancialData, PortfolioStrategy}
	default:
		plan := make([]string, len(MemberNames))
		copy(plan, MemberNames)
		return plan
	}
}
