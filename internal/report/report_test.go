package report

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/dataflows"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/models"
)

func barsFromCloses(symbol string, closes ...float64) []dataflows.MarketData {
	bars := make([]dataflows.MarketData, len(closes))
	day := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		d := decimal.NewFromFloat(c)
		bars[i] = dataflows.MarketData{
			Symbol: symbol,
			Date:   day.AddDate(0, 0, i),
			Open:   d,
			High:   d.Add(decimal.NewFromInt(1)),
			Low:    d.Sub(decimal.NewFromInt(1)),
			Close:  d,
			Volume: 1000,
		}
	}
	return bars
}

func TestSMA(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5}
	if got := SMA(closes, 5); got != 3 {
		t.Fatalf("SMA(5) = %v, want 3", got)
	}
	if got := SMA(closes, 2); got != 4.5 {
		t.Fatalf("SMA(2) = %v, want 4.5", got)
	}
	// Window larger than series averages everything.
	if got := SMA(closes, 20); got != 3 {
		t.Fatalf("SMA(20) = %v, want 3", got)
	}
	if got := SMA(nil, 20); got != 0 {
		t.Fatalf("SMA(nil) = %v, want 0", got)
	}
}

func TestAnnualizedVolatility(t *testing.T) {
	if _, ok := AnnualizedVolatility([]float64{100, 101}); ok {
		t.Fatal("expected no volatility for two closes")
	}

	// Constant series has zero volatility.
	vol, ok := AnnualizedVolatility([]float64{100, 100, 100, 100})
	if !ok || vol != 0 {
		t.Fatalf("constant series vol = %v, ok = %v", vol, ok)
	}

	// Alternating +/-1% returns: stdev of {0.01, -0.0099...} scaled by sqrt(252).
	vol, ok = AnnualizedVolatility([]float64{100, 101, 100, 101, 100})
	if !ok {
		t.Fatal("expected volatility")
	}
	if vol <= 0 || math.IsNaN(vol) {
		t.Fatalf("vol = %v", vol)
	}
}

func TestSentimentSignals(t *testing.T) {
	news := []dataflows.NewsArticle{
		{Title: "Markets rise on bullish outlook", Content: "growth continues"},
		{Title: "Analysts warn of decline", Content: "bearish signals and risk ahead"},
	}
	positive, negative := SentimentSignals(news)
	if positive != 3 {
		t.Fatalf("positive = %d, want 3", positive)
	}
	if negative != 3 {
		t.Fatalf("negative = %d, want 3", negative)
	}
}

func TestMarketCapWeights(t *testing.T) {
	stocks := []StockData{
		{Symbol: "AAPL", Profile: &dataflows.CompanyProfile{Symbol: "AAPL", MarketCap: 3_000_000_000}},
		{Symbol: "MSFT", Profile: &dataflows.CompanyProfile{Symbol: "MSFT", MarketCap: 1_000_000_000}},
	}
	weights := MarketCapWeights(stocks)
	if weights["AAPL"] != 75 || weights["MSFT"] != 25 {
		t.Fatalf("weights = %v", weights)
	}

	// No market caps at all: everything weighs zero rather than dividing by zero.
	weights = MarketCapWeights([]StockData{{Symbol: "X"}})
	if weights["X"] != 0 {
		t.Fatalf("weight without caps = %v", weights["X"])
	}
}

func TestGenerateTechnicalTrend(t *testing.T) {
	// Steadily rising closes: price above both SMAs.
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	stocks := []StockData{{Symbol: "NVDA", History: barsFromCloses("NVDA", closes...)}}

	out := Generate(models.AnalysisTechnical, stocks, nil)
	if !strings.Contains(out, "# Technical Analysis") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "**Trend**: Bullish (Price above both moving averages)") {
		t.Fatalf("expected bullish trend:\n%s", out)
	}
	if !strings.Contains(out, "20-Day SMA") || !strings.Contains(out, "50-Day SMA") {
		t.Fatal("missing SMA lines")
	}
}

func TestGenerateQuickIncludesProfile(t *testing.T) {
	stocks := []StockData{{
		Symbol:  "AAPL",
		Profile: &dataflows.CompanyProfile{Symbol: "AAPL", Price: 190.5, MarketCap: 3_000_000_000_000, Sector: "Technology"},
	}}
	out := Generate(models.AnalysisQuick, stocks, nil)
	if !strings.Contains(out, "**AAPL**: $190.50") {
		t.Fatalf("missing price line:\n%s", out)
	}
	if !strings.Contains(out, "Market Cap: $3000.00B") {
		t.Fatalf("missing market cap line:\n%s", out)
	}
	if !strings.Contains(out, "Sector: Technology") {
		t.Fatal("missing sector line")
	}
	if !strings.Contains(out, "educational purposes only") {
		t.Fatal("missing disclaimer footer")
	}
}

func TestGenerateSentimentVerdict(t *testing.T) {
	news := []dataflows.NewsArticle{
		{Title: "bullish growth gains", Content: "rise up"},
	}
	out := Generate(models.AnalysisSentiment, nil, news)
	if !strings.Contains(out, "**Overall Sentiment**: Bullish") {
		t.Fatalf("expected bullish verdict:\n%s", out)
	}
}

func TestGeneratePortfolioRiskBlocks(t *testing.T) {
	stocks := []StockData{
		{Symbol: "AAPL", Profile: &dataflows.CompanyProfile{MarketCap: 100, Sector: "Technology", Price: 190}},
	}

	out := GeneratePortfolio(stocks, models.RiskConservative)
	if !strings.Contains(out, "Conservative Risk Profile") {
		t.Fatalf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "blue-chip stocks") {
		t.Fatal("missing conservative recommendations")
	}

	out = GeneratePortfolio(stocks, models.RiskAggressive)
	if !strings.Contains(out, "emerging markets") {
		t.Fatal("missing aggressive recommendations")
	}
}
