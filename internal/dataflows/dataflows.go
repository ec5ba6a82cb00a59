package dataflows

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/config"
	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/logger"
)

// Client is the single entry point to every market data source the service
// uses: Yahoo for quotes and history, Google News for coverage, and
// optionally Longport for static security info.
type Client struct {
	yahoo    *YahooClient
	news     *NewsClient
	longport *LongportClient
}

// NewClient builds the data client. A Longport connection failure is not
// fatal; the client silently degrades to Yahoo only.
func NewClient(cfg *config.Config) *Client {
	c := &Client{
		yahoo: NewYahooClient(cfg),
		news:  NewNewsClient(cfg),
	}

	if cfg.LongportConfigured() {
		lpc, err := NewLongportClient(cfg)
		if err != nil {
			logger.Warn("longport unavailable, falling back to yahoo", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			c.longport = lpc
		}
	}

	return c
}

// GetQuote returns the latest bar for a symbol.
func (c *Client) GetQuote(symbol string) (*MarketData, error) {
	return c.yahoo.GetQuote(symbol)
}

// GetHistory returns daily bars for a symbol over a timeframe token.
// Longport is preferred when connected; Yahoo serves everything else.
func (c *Client) GetHistory(symbol, timeframe string) ([]*MarketData, error) {
	if c.longport != nil {
		bars, err := c.longportHistory(symbol, timeframe)
		if err == nil {
			return bars, nil
		}
		logger.Warn("longport history failed, falling back to yahoo", map[string]interface{}{
			"symbol": symbol,
			"error":  err.Error(),
		})
	}
	return c.yahoo.GetHistory(symbol, timeframe)
}

func (c *Client) longportHistory(symbol, timeframe string) ([]*MarketData, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	symbol = NormalizeSymbol(symbol)

	now := time.Now()
	count := int(now.Sub(TimeframeWindow(timeframe, now)).Hours()/24) + 1

	sticks, err := c.longport.GetDailySticks(context.Background(), symbol, count)
	if err != nil {
		return nil, err
	}
	if len(sticks) == 0 {
		return nil, fmt.Errorf("no candlesticks returned for %s", symbol)
	}

	bars := make([]*MarketData, 0, len(sticks))
	for _, stick := range sticks {
		open, _ := stick.Open.Float64()
		high, _ := stick.High.Float64()
		low, _ := stick.Low.Float64()
		closePx, _ := stick.Close.Float64()

		bars = append(bars, &MarketData{
			Symbol:    symbol,
			Date:      time.Unix(stick.Timestamp, 0),
			Open:      decimal.NewFromFloat(open),
			High:      decimal.NewFromFloat(high),
			Low:       decimal.NewFromFloat(low),
			Close:     decimal.NewFromFloat(closePx),
			AdjClose:  decimal.NewFromFloat(closePx),
			Volume:    stick.Volume,
			Timestamp: time.Now(),
		})
	}
	return bars, nil
}

// GetCompanyProfile returns descriptive company data, enriched with
// Longport static info when that provider is connected.
func (c *Client) GetCompanyProfile(ctx context.Context, symbol string) (*CompanyProfile, error) {
	profile, err := c.yahoo.GetCompanyProfile(symbol)
	if err != nil {
		return nil, err
	}

	if c.longport != nil {
		infos, err := c.longport.GetStaticInfo(ctx, []string{profile.Symbol})
		if err == nil && len(infos) > 0 && infos[0] != nil {
			if profile.Name == "" {
				profile.Name = infos[0].NameEn
			}
			if profile.Exchange == "" {
				profile.Exchange = infos[0].Exchange
			}
			if profile.Currency == "" {
				profile.Currency = infos[0].Currency
			}
		}
	}

	return profile, nil
}

// SearchNews returns recent news articles for a query.
func (c *Client) SearchNews(query string, maxResults int) ([]*NewsArticle, error) {
	return c.news.SearchNews(query, maxResults)
}
