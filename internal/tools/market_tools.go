package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	t_utils "github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/dataflows"
)

// QuoteInput is the argument payload for the get_stock_quote tool.
type QuoteInput struct {
	Symbol string `json:"symbol"`
}

// QuoteOutput is the result payload for the get_stock_quote tool.
type QuoteOutput struct {
	Symbol string  `json:"symbol"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
	AsOf   string  `json:"as_of"`
}

// NewQuoteTool creates the tool agents use to fetch the latest price bar.
func NewQuoteTool(data *dataflows.Client) tool.BaseTool {
	return t_utils.NewTool(
		&schema.ToolInfo{
			Name: "get_stock_quote",
			Desc: "Get the latest market price, volume and daily range for a stock symbol",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"symbol": {
					Type:     "string",
					Desc:     "Ticker symbol, e.g. AAPL",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, input QuoteInput) (*QuoteOutput, error) {
			md, err := data.GetQuote(input.Symbol)
			if err != nil {
				return nil, err
			}
			return &QuoteOutput{
				Symbol: md.Symbol,
				Open:   md.Open.InexactFloat64(),
				High:   md.High.InexactFloat64(),
				Low:    md.Low.InexactFloat64(),
				Close:  md.Close.InexactFloat64(),
				Volume: md.Volume,
				AsOf:   md.Date.Format("2006-01-02"),
			}, nil
		},
	)
}

// HistoryInput is the argument payload for the get_price_history tool.
type HistoryInput struct {
	Symbol    string `json:"symbol"`
	Timeframe string `json:"timeframe"`
}

// HistoryBar is a single bar in the get_price_history result.
type HistoryBar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// HistoryOutput is the result payload for the get_price_history tool.
type HistoryOutput struct {
	Symbol    string       `json:"symbol"`
	Timeframe string       `json:"timeframe"`
	Bars      []HistoryBar `json:"bars"`
}

// NewHistoryTool creates the tool agents use to fetch daily price history.
func NewHistoryTool(data *dataflows.Client) tool.BaseTool {
	return t_utils.NewTool(
		&schema.ToolInfo{
			Name: "get_price_history",
			Desc: "Get daily OHLCV price history for a stock symbol over a timeframe",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"symbol": {
					Type:     "string",
					Desc:     "Ticker symbol, e.g. AAPL",
					Required: true,
				},
				"timeframe": {
					Type:     "string",
					Desc:     "Timeframe token: 1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max (default 1y)",
					Required: false,
				},
			}),
		},
		func(ctx context.Context, input HistoryInput) (*HistoryOutput, error) {
			bars, err := data.GetHistory(input.Symbol, input.Timeframe)
			if err != nil {
				return nil, err
			}

			out := &HistoryOutput{
				Symbol:    dataflows.NormalizeSymbol(input.Symbol),
				Timeframe: input.Timeframe,
			}
			for _, bar := range bars {
				out.Bars = append(out.Bars, HistoryBar{
					Date:   bar.Date.Format("2006-01-02"),
					Open:   bar.Open.InexactFloat64(),
					High:   bar.High.InexactFloat64(),
					Low:    bar.Low.InexactFloat64(),
					Close:  bar.Close.InexactFloat64(),
					Volume: bar.Volume,
				})
			}
			return out, nil
		},
	)
}

// CompanyInput is the argument payload for the get_company_info tool.
type CompanyInput struct {
	Symbol string `json:"symbol"`
}

// NewCompanyInfoTool creates the tool agents use for descriptive company data.
func NewCompanyInfoTool(data *dataflows.Client) tool.BaseTool {
	return t_utils.NewTool(
		&schema.ToolInfo{
			Name: "get_company_info",
			Desc: "Get company name, exchange, market cap and quote state for a stock symbol",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"symbol": {
					Type:     "string",
					Desc:     "Ticker symbol, e.g. AAPL",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, input CompanyInput) (*dataflows.CompanyProfile, error) {
			profile, err := data.GetCompanyProfile(ctx, input.Symbol)
			if err != nil {
				return nil, fmt.Errorf("company info for %s: %w", input.Symbol, err)
			}
			return profile, nil
		},
	)
}
