package server

import (
	"fmt"
	"strings"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/models"
)

// symbolsLine renders the symbol list for a prompt, falling back to a general
// market framing when no symbols were supplied.
func symbolsLine(symbols []string) string {
	if len(symbols) == 0 {
		return "General market analysis"
	}
	return strings.Join(symbols, ", ")
}

// ComposeQueryPrompt builds the enriched question sent to the team. Quick
// analyses get a short three-point brief; every other type gets the full
// eight-section request.
func ComposeQueryPrompt(req models.QueryRequest) string {
	if req.AnalysisType == models.AnalysisQuick {
		return fmt.Sprintf(`Quick Analysis Request: %s
Symbols: %s
Timeframe: %s

Please provide a concise analysis including:
1. Current stock price and basic metrics
2. Brief market overview
3. Key highlights and recommendations
Keep it brief and focused on essential information.`,
			req.Question, symbolsLine(req.Symbols), req.Timeframe)
	}

	return fmt.Sprintf(`Analysis Request: %s
Analysis Type: %s
Symbols: %s
Timeframe: %s

Please provide a comprehensive analysis including:
1. Executive Summary
2. Market Research & News
3. Financial Data Analysis
4. Technical Analysis
5. Risk Assessment
6. Market Sentiment
7. Portfolio Recommendations
8. Actionable Insights`,
		req.Question, req.AnalysisType, symbolsLine(req.Symbols), req.Timeframe)
}

// ComposePortfolioPrompt builds the standalone portfolio strategist prompt.
func ComposePortfolioPrompt(req models.PortfolioRequest) string {
	weights := "Equal weight"
	if len(req.Weights) > 0 {
		weights = fmt.Sprintf("%v", req.Weights)
	}

	return fmt.Sprintf(`Portfolio Analysis Request:
Symbols: %s
Weights: %s
Risk Tolerance: %s

Please provide:
1. Portfolio composition analysis
2. Risk assessment and diversification
3. Expected returns and volatility
4. Rebalancing recommendations
5. Alternative portfolio suggestions`,
		strings.Join(req.Symbols, ", "), weights, req.RiskTolerance)
}
