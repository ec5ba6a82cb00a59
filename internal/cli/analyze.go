package cli

import (
	"context"
	"fmt"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/config"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/dataflows"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/logger"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/models"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/report"
)

// maxAnalyzeSymbols caps how many symbols are fetched per run.
const maxAnalyzeSymbols = 3

// runAnalyzeCommand fetches data for the requested symbols and renders the
// offline report. Missing arguments are collected interactively.
func runAnalyzeCommand(cfg *config.Config, symbolArgs []string, analysisType, timeframe string) error {
	symbols := make([]string, 0, len(symbolArgs))
	for _, s := range symbolArgs {
		sym := dataflows.NormalizeSymbol(s)
		if err := dataflows.ValidateSymbol(sym); err != nil {
			return err
		}
		symbols = append(symbols, sym)
	}

	var err error
	if len(symbols) == 0 {
		if symbols, err = PromptForSymbols(); err != nil {
			return err
		}
	}
	if analysisType == "" {
		if analysisType, err = PromptForAnalysisType(); err != nil {
			return err
		}
	}

	if len(symbols) > maxAnalyzeSymbols {
		fmt.Println(warnStyle.Render(fmt.Sprintf("Limiting analysis to the first %d symbols", maxAnalyzeSymbols)))
		symbols = symbols[:maxAnalyzeSymbols]
	}

	fmt.Println(titleStyle.Render("Financial Analyst Multi-Agent System"))
	fmt.Println(statusStyle.Render(fmt.Sprintf("Analysis: %s | Timeframe: %s | Symbols: %v", analysisType, timeframe, symbols)))

	ctx := context.Background()
	flows := dataflows.NewClient(cfg)

	stocks := make([]report.StockData, 0, len(symbols))
	for _, symbol := range symbols {
		fmt.Println(statusStyle.Render("Fetching data for " + symbol + "..."))

		stock := report.StockData{Symbol: symbol}
		if profile, err := flows.GetCompanyProfile(ctx, symbol); err != nil {
			logger.Warn("could not fetch company profile", map[string]interface{}{
				"symbol": symbol, "error": err.Error(),
			})
		} else {
			stock.Profile = profile
		}
		if history, err := flows.GetHistory(symbol, timeframe); err != nil {
			logger.Warn("could not fetch price history", map[string]interface{}{
				"symbol": symbol, "error": err.Error(),
			})
		} else {
			for _, bar := range history {
				stock.History = append(stock.History, *bar)
			}
		}
		stocks = append(stocks, stock)
	}

	var news []dataflows.NewsArticle
	if needsNews(analysisType) {
		fmt.Println(statusStyle.Render("Gathering market news..."))
		query := "financial markets"
		if len(symbols) > 0 {
			query = symbols[0] + " stock"
		}
		if articles, err := flows.SearchNews(query, 5); err != nil {
			logger.Warn("news search failed", map[string]interface{}{"error": err.Error()})
		} else {
			for _, a := range articles {
				news = append(news, *a)
			}
		}
	}

	out := report.Generate(analysisType, stocks, news)
	fmt.Println()
	fmt.Println(reportStyle.Render(out))
	return nil
}

func needsNews(analysisType string) bool {
	switch analysisType {
	case models.AnalysisQuick, models.AnalysisTechnical, models.AnalysisRisk, models.AnalysisPortfolio:
		return false
	default:
		return true
	}
}
