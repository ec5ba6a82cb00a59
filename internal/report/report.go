// Package report renders offline markdown analyses from fetched market data,
// without calling any language model. It backs the CLI analyze flow so the
// tool stays useful when no provider credential is available.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/dataflows"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/models"
)

// StockData bundles everything fetched for one symbol.
type StockData struct {
	Symbol  string
	Profile *dataflows.CompanyProfile
	History []dataflows.MarketData
}

// CurrentPrice returns the latest close, or the profile price when no
// history was fetched.
func (s *StockData) CurrentPrice() float64 {
	if len(s.History) > 0 {
		return s.History[len(s.History)-1].Close.InexactFloat64()
	}
	if s.Profile != nil {
		return s.Profile.Price
	}
	return 0
}

// Generate renders the markdown analysis for the given type. Symbol order is
// preserved from the input slice.
func Generate(analysisType string, stocks []StockData, news []dataflows.NewsArticle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Analysis\n\n", titleCase(analysisType))

	switch analysisType {
	case models.AnalysisQuick:
		writeQuick(&b, stocks)
	case models.AnalysisComprehensive:
		writeComprehensive(&b, stocks, news)
	case models.AnalysisTechnical:
		writeTechnical(&b, stocks)
	case models.AnalysisRisk:
		writeRisk(&b, stocks)
	case models.AnalysisSentiment:
		writeSentiment(&b, news)
	case models.AnalysisPortfolio:
		writePortfolioComposition(&b, stocks)
	default:
		writeComprehensive(&b, stocks, news)
	}

	b.WriteString("---\n\n")
	b.WriteString("*This analysis is for educational purposes only. Always consult with financial professionals before making investment decisions.*")
	return b.String()
}

func writeQuick(b *strings.Builder, stocks []StockData) {
	b.WriteString("## Quick Analysis Results\n\n")

	if len(stocks) > 0 {
		b.WriteString("### Current Stock Data\n\n")
		for _, s := range stocks {
			price := s.CurrentPrice()
			if price == 0 {
				continue
			}
			fmt.Fprintf(b, "**%s**: $%.2f\n", s.Symbol, price)
			if s.Profile != nil {
				if s.Profile.MarketCap > 0 {
					fmt.Fprintf(b, "Market Cap: $%.2fB\n", float64(s.Profile.MarketCap)/1e9)
				}
				fmt.Fprintf(b, "Sector: %s\n\n", orNA(s.Profile.Sector))
			} else {
				b.WriteString("Sector: N/A\n\n")
			}
		}
	}

	b.WriteString("### Key Insights\n\n")
	b.WriteString("- Current market conditions appear stable\n")
	b.WriteString("- Consider monitoring key support/resistance levels\n")
	b.WriteString("- Review earnings reports and company news\n\n")
}

func writeComprehensive(b *strings.Builder, stocks []StockData, news []dataflows.NewsArticle) {
	b.WriteString("## Comprehensive Market Analysis\n\n")

	if len(news) > 0 {
		b.WriteString("### Latest Market News\n\n")
		for i, n := range news {
			if i >= 3 {
				break
			}
			fmt.Fprintf(b, "%d. **%s**\n", i+1, n.Title)
			fmt.Fprintf(b, "   %s...\n\n", truncate(n.Content, 200))
		}
	}

	if len(stocks) > 0 {
		b.WriteString("### Stock Analysis\n\n")
		for _, s := range stocks {
			fmt.Fprintf(b, "#### %s Analysis\n\n", s.Symbol)
			if price := s.CurrentPrice(); price > 0 {
				fmt.Fprintf(b, "- **Current Price**: $%.2f\n", price)
			}
			if s.Profile != nil {
				if s.Profile.MarketCap > 0 {
					fmt.Fprintf(b, "- **Market Cap**: $%.2fB\n", float64(s.Profile.MarketCap)/1e9)
				}
				fmt.Fprintf(b, "- **Sector**: %s\n", orNA(s.Profile.Sector))
				fmt.Fprintf(b, "- **Industry**: %s\n\n", orNA(s.Profile.Industry))
			} else {
				b.WriteString("- **Sector**: N/A\n- **Industry**: N/A\n\n")
			}
		}
	}

	b.WriteString("### Recommendations\n\n")
	b.WriteString("1. **Diversification**: Consider spreading investments across sectors\n")
	b.WriteString("2. **Risk Management**: Set stop-loss orders for volatile positions\n")
	b.WriteString("3. **Research**: Stay updated with company earnings and market news\n\n")
}

func writeTechnical(b *strings.Builder, stocks []StockData) {
	b.WriteString("## Technical Analysis\n\n")

	for _, s := range stocks {
		fmt.Fprintf(b, "### %s Technical Indicators\n\n", s.Symbol)
		if len(s.History) < 2 {
			b.WriteString("Not enough price history for indicator calculation.\n\n")
			continue
		}

		closes := closeSeries(s.History)
		last := closes[len(closes)-1]
		prev := closes[len(closes)-2]
		changePct := (last - prev) / prev * 100

		low, high := rangeOf(s.History)
		fmt.Fprintf(b, "- **Current Price**: $%.2f\n", last)
		fmt.Fprintf(b, "- **Daily Change**: %+.2f%%\n", changePct)
		fmt.Fprintf(b, "- **Volume**: %d\n", s.History[len(s.History)-1].Volume)
		fmt.Fprintf(b, "- **52-Week Range**: $%.2f - $%.2f\n\n", low, high)

		sma20 := SMA(closes, 20)
		sma50 := SMA(closes, 50)
		fmt.Fprintf(b, "- **20-Day SMA**: $%.2f\n", sma20)
		fmt.Fprintf(b, "- **50-Day SMA**: $%.2f\n\n", sma50)

		switch {
		case last > sma20 && sma20 > sma50:
			b.WriteString("**Trend**: Bullish (Price above both moving averages)\n\n")
		case last < sma20 && sma20 < sma50:
			b.WriteString("**Trend**: Bearish (Price below both moving averages)\n\n")
		default:
			b.WriteString("**Trend**: Mixed signals\n\n")
		}
	}

	b.WriteString("### Technical Recommendations\n\n")
	b.WriteString("- Monitor key support and resistance levels\n")
	b.WriteString("- Watch for breakout patterns\n")
	b.WriteString("- Consider volume confirmation for moves\n\n")
}

func writeRisk(b *strings.Builder, stocks []StockData) {
	b.WriteString("## Risk Assessment\n\n")

	if len(stocks) > 0 {
		b.WriteString("### Risk Analysis by Stock\n\n")
		for _, s := range stocks {
			fmt.Fprintf(b, "#### %s Risk Profile\n\n", s.Symbol)
			if vol, ok := AnnualizedVolatility(closeSeries(s.History)); ok {
				fmt.Fprintf(b, "- **Volatility**: %.2f%%\n", vol*100)
			}
			sector := "N/A"
			var capB float64
			if s.Profile != nil {
				sector = orNA(s.Profile.Sector)
				capB = float64(s.Profile.MarketCap) / 1e9
			}
			fmt.Fprintf(b, "- **Sector Risk**: %s\n", sector)
			fmt.Fprintf(b, "- **Market Cap**: %.2fB\n\n", capB)
		}
	}

	b.WriteString("### Risk Mitigation Strategies\n\n")
	b.WriteString("1. **Diversification**: Spread investments across sectors\n")
	b.WriteString("2. **Position Sizing**: Limit individual position sizes\n")
	b.WriteString("3. **Stop Losses**: Set automatic stop-loss orders\n")
	b.WriteString("4. **Regular Review**: Monitor positions regularly\n\n")
}

var (
	positiveKeywords = []string{"bullish", "positive", "growth", "gain", "rise", "up"}
	negativeKeywords = []string{"bearish", "negative", "decline", "fall", "down", "risk"}
)

func writeSentiment(b *strings.Builder, news []dataflows.NewsArticle) {
	b.WriteString("## Market Sentiment Analysis\n\n")

	if len(news) > 0 {
		b.WriteString("### News Sentiment\n\n")
		positive, negative := SentimentSignals(news)

		switch {
		case positive > negative:
			b.WriteString("**Overall Sentiment**: Bullish\n\n")
		case negative > positive:
			b.WriteString("**Overall Sentiment**: Bearish\n\n")
		default:
			b.WriteString("**Overall Sentiment**: Neutral\n\n")
		}
		fmt.Fprintf(b, "- Positive signals: %d\n", positive)
		fmt.Fprintf(b, "- Negative signals: %d\n\n", negative)
	}

	b.WriteString("### Sentiment Recommendations\n\n")
	b.WriteString("- Monitor social media sentiment\n")
	b.WriteString("- Watch institutional flows\n")
	b.WriteString("- Consider contrarian opportunities\n\n")
}

func writePortfolioComposition(b *strings.Builder, stocks []StockData) {
	b.WriteString("## Portfolio Analysis\n\n")

	if len(stocks) > 0 {
		b.WriteString("### Portfolio Composition\n\n")
		weights := MarketCapWeights(stocks)
		for _, s := range stocks {
			fmt.Fprintf(b, "- **%s**: %.1f%% of portfolio\n", s.Symbol, weights[s.Symbol])
		}

		b.WriteString("\n### Portfolio Recommendations\n\n")
		b.WriteString("1. **Diversification**: Consider adding different sectors\n")
		b.WriteString("2. **Rebalancing**: Review allocation quarterly\n")
		b.WriteString("3. **Risk Management**: Set appropriate position sizes\n\n")
	}
}

// GeneratePortfolio renders the standalone portfolio report with
// risk-tolerance specific recommendations.
func GeneratePortfolio(stocks []StockData, riskTolerance string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio Analysis - %s Risk Profile\n\n", titleCase(riskTolerance))

	if len(stocks) > 0 {
		b.WriteString("## Portfolio Composition\n\n")
		weights := MarketCapWeights(stocks)
		for _, s := range stocks {
			fmt.Fprintf(&b, "### %s\n", s.Symbol)
			fmt.Fprintf(&b, "- **Weight**: %.1f%%\n", weights[s.Symbol])
			sector := "N/A"
			if s.Profile != nil {
				sector = orNA(s.Profile.Sector)
			}
			fmt.Fprintf(&b, "- **Sector**: %s\n", sector)
			fmt.Fprintf(&b, "- **Current Price**: $%.2f\n\n", s.CurrentPrice())
		}

		b.WriteString("## Recommendations\n\n")
		switch riskTolerance {
		case models.RiskConservative:
			b.WriteString("- **Focus on large-cap, stable companies**\n")
			b.WriteString("- **Consider dividend-paying stocks**\n")
			b.WriteString("- **Maintain 60-70% in blue-chip stocks**\n")
			b.WriteString("- **Add 20-30% in bonds or bond ETFs**\n")
			b.WriteString("- **Keep 10-20% in cash for opportunities**\n\n")
		case models.RiskModerate:
			b.WriteString("- **Balance between growth and value**\n")
			b.WriteString("- **Diversify across sectors**\n")
			b.WriteString("- **Consider 70-80% in stocks**\n")
			b.WriteString("- **Add 15-25% in bonds**\n")
			b.WriteString("- **Keep 5-10% in cash**\n\n")
		default:
			b.WriteString("- **Focus on growth stocks**\n")
			b.WriteString("- **Consider emerging markets**\n")
			b.WriteString("- **Maintain 80-90% in stocks**\n")
			b.WriteString("- **Add 5-15% in bonds**\n")
			b.WriteString("- **Consider alternative investments**\n\n")
		}

		b.WriteString("## Risk Assessment\n\n")
		b.WriteString("- **Diversification**: Good across multiple stocks\n")
		b.WriteString("- **Sector Exposure**: Monitor concentration\n")
		b.WriteString("- **Volatility**: Expected for current allocation\n")
		b.WriteString("- **Liquidity**: Adequate for most positions\n\n")
	}

	b.WriteString("---\n\n")
	b.WriteString("*Portfolio analysis is for educational purposes. Consult with financial advisors for personalized advice.*")
	return b.String()
}

// SMA computes the simple moving average of the last window closes. Shorter
// series average whatever is available.
func SMA(closes []float64, window int) float64 {
	if len(closes) == 0 {
		return 0
	}
	if window > len(closes) {
		window = len(closes)
	}
	var sum float64
	for _, c := range closes[len(closes)-window:] {
		sum += c
	}
	return sum / float64(window)
}

// AnnualizedVolatility computes the standard deviation of daily returns
// scaled by sqrt(252). Returns false when fewer than three closes exist.
func AnnualizedVolatility(closes []float64) (float64, bool) {
	if len(closes) < 3 {
		return 0, false
	}
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		if closes[i-1] == 0 {
			continue
		}
		returns = append(returns, closes[i]/closes[i-1]-1)
	}
	if len(returns) < 2 {
		return 0, false
	}

	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(returns) - 1)

	return math.Sqrt(variance) * math.Sqrt(252), true
}

// SentimentSignals counts positive and negative keyword hits across article
// titles and bodies.
func SentimentSignals(news []dataflows.NewsArticle) (positive, negative int) {
	for _, n := range news {
		text := strings.ToLower(n.Title + " " + n.Content)
		for _, w := range positiveKeywords {
			if strings.Contains(text, w) {
				positive++
			}
		}
		for _, w := range negativeKeywords {
			if strings.Contains(text, w) {
				negative++
			}
		}
	}
	return positive, negative
}

// MarketCapWeights returns each symbol's market-cap share of the portfolio
// as a percentage. Symbols without a market cap weigh zero.
func MarketCapWeights(stocks []StockData) map[string]float64 {
	weights := make(map[string]float64, len(stocks))
	var total float64
	for _, s := range stocks {
		if s.Profile != nil && s.Profile.MarketCap > 0 {
			total += float64(s.Profile.MarketCap)
		}
	}
	for _, s := range stocks {
		if total > 0 && s.Profile != nil {
			weights[s.Symbol] = float64(s.Profile.MarketCap) / total * 100
		} else {
			weights[s.Symbol] = 0
		}
	}
	return weights
}

func closeSeries(history []dataflows.MarketData) []float64 {
	closes := make([]float64, len(history))
	for i, bar := range history {
		closes[i] = bar.Close.InexactFloat64()
	}
	return closes
}

func rangeOf(history []dataflows.MarketData) (low, high float64) {
	for i, bar := range history {
		l := bar.Low.InexactFloat64()
		h := bar.High.InexactFloat64()
		if i == 0 || l < low {
			low = l
		}
		if h > high {
			high = h
		}
	}
	return low, high
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
