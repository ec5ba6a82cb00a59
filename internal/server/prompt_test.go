package server

import (
	"strings"
	"testing"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/models"
)

func TestComposeQueryPromptQuick(t *testing.T) {
	prompt := ComposeQueryPrompt(models.QueryRequest{
		Question:     "What about AAPL?",
		AnalysisType: models.AnalysisQuick,
		Symbols:      []string{"AAPL", "MSFT"},
		Timeframe:    "1mo",
	})

	if !strings.HasPrefix(prompt, "Quick Analysis Request: What about AAPL?") {
		t.Fatalf("unexpected prefix:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Symbols: AAPL, MSFT") {
		t.Fatal("missing symbols line")
	}
	if !strings.Contains(prompt, "Keep it brief and focused on essential information.") {
		t.Fatal("missing brevity instruction")
	}
	if strings.Contains(prompt, "Executive Summary") {
		t.Fatal("quick prompt must not carry the comprehensive sections")
	}
}

func TestComposeQueryPromptComprehensiveSections(t *testing.T) {
	prompt := ComposeQueryPrompt(models.QueryRequest{
		Question:     "Outlook for chip makers?",
		AnalysisType: models.AnalysisComprehensive,
		Timeframe:    "1y",
	})

	for _, section := range []string{
		"1. Executive Summary",
		"2. Market Research & News",
		"3. Financial Data Analysis",
		"4. Technical Analysis",
		"5. Risk Assessment",
		"6. Market Sentiment",
		"7. Portfolio Recommendations",
		"8. Actionable Insights",
	} {
		if !strings.Contains(prompt, section) {
			t.Fatalf("missing section %q:\n%s", section, prompt)
		}
	}
	if !strings.Contains(prompt, "Analysis Type: comprehensive") {
		t.Fatal("missing analysis type line")
	}
}

func TestComposeQueryPromptGeneralMarketFallback(t *testing.T) {
	prompt := ComposeQueryPrompt(models.QueryRequest{
		Question:     "How are markets doing?",
		AnalysisType: models.AnalysisRisk,
		Timeframe:    "1y",
	})
	if !strings.Contains(prompt, "Symbols: General market analysis") {
		t.Fatalf("missing fallback:\n%s", prompt)
	}

	// Unknown analysis types still build the full prompt rather than
	// erroring.
	prompt = ComposeQueryPrompt(models.QueryRequest{
		Question:     "q",
		AnalysisType: "bogus",
		Timeframe:    "1y",
	})
	if !strings.Contains(prompt, "Analysis Type: bogus") {
		t.Fatal("unknown type not echoed")
	}
}

func TestComposePortfolioPrompt(t *testing.T) {
	prompt := ComposePortfolioPrompt(models.PortfolioRequest{
		Symbols:       []string{"AAPL", "TSLA"},
		Weights:       []float64{0.6, 0.4},
		RiskTolerance: models.RiskAggressive,
	})
	if !strings.Contains(prompt, "Symbols: AAPL, TSLA") {
		t.Fatal("missing symbols line")
	}
	if !strings.Contains(prompt, "Weights: [0.6 0.4]") {
		t.Fatalf("missing weights line:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Risk Tolerance: aggressive") {
		t.Fatal("missing risk tolerance line")
	}
}

func TestComposePortfolioPromptEqualWeightDefault(t *testing.T) {
	prompt := ComposePortfolioPrompt(models.PortfolioRequest{
		Symbols:       []string{"AAPL"},
		RiskTolerance: models.RiskModerate,
	})
	if !strings.Contains(prompt, "Weights: Equal weight") {
		t.Fatalf("missing equal weight fallback:\n%s", prompt)
	}
}
