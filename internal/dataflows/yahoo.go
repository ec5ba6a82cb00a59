package dataflows

import (
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/config"
)

// YahooClient fetches quotes and price history from Yahoo Finance.
type YahooClient struct {
	cache *memoryCache
	retry *RetryConfig
}

// NewYahooClient creates a Yahoo Finance client with a TTL memory cache.
func NewYahooClient(cfg *config.Config) *YahooClient {
	return &YahooClient{
		cache: newMemoryCache(cfg.CacheTTL, cfg.CacheEnabled),
		retry: DefaultRetryConfig(),
	}
}

// GetQuote returns the latest market data bar for a symbol.
func (yf *YahooClient) GetQuote(symbol string) (*MarketData, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	symbol = NormalizeSymbol(symbol)

	key := cacheKey("yahoo", "quote", symbol)
	if cached, ok := yf.cache.get(key); ok {
		return cached.(*MarketData), nil
	}

	var result *MarketData
	err := WithRetry(yf.retry, func() error {
		q, err := quote.Get(symbol)
		if err != nil {
			return fmt.Errorf("get quote for %s: %w", symbol, err)
		}

		result = &MarketData{
			Symbol:    symbol,
			Date:      time.Now(),
			Open:      decimal.NewFromFloat(q.RegularMarketOpen),
			High:      decimal.NewFromFloat(q.RegularMarketDayHigh),
			Low:       decimal.NewFromFloat(q.RegularMarketDayLow),
			Close:     decimal.NewFromFloat(q.RegularMarketPrice),
			AdjClose:  decimal.NewFromFloat(q.RegularMarketPrice),
			Volume:    int64(q.RegularMarketVolume),
			Timestamp: time.Now(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	yf.cache.set(key, result)
	return result, nil
}

// GetHistory returns daily bars for a symbol over a dashboard timeframe
// token ("1d" through "max"; unknown tokens are treated as "1y").
func (yf *YahooClient) GetHistory(symbol, timeframe string) ([]*MarketData, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	symbol = NormalizeSymbol(symbol)

	now := time.Now()
	start := TimeframeWindow(timeframe, now)

	key := cacheKey("yahoo", "history", map[string]string{
		"symbol": symbol,
		"start":  start.Format("2006-01-02"),
		"end":    now.Format("2006-01-02"),
	})
	if cached, ok := yf.cache.get(key); ok {
		return cached.([]*MarketData), nil
	}

	var result []*MarketData
	err := WithRetry(yf.retry, func() error {
		params := &chart.Params{
			Symbol:   symbol,
			Start:    datetime.New(&start),
			End:      datetime.New(&now),
			Interval: datetime.OneDay,
		}

		iter := chart.Get(params)
		result = result[:0]
		for iter.Next() {
			bar := iter.Bar()
			result = append(result, &MarketData{
				Symbol:    symbol,
				Date:      time.Unix(int64(bar.Timestamp), 0),
				Open:      bar.Open,
				High:      bar.High,
				Low:       bar.Low,
				Close:     bar.Close,
				AdjClose:  bar.AdjClose,
				Volume:    int64(bar.Volume),
				Timestamp: time.Now(),
			})
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("get history for %s: %w", symbol, err)
		}
		if len(result) == 0 {
			return fmt.Errorf("no history returned for %s", symbol)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	yf.cache.set(key, result)
	return result, nil
}

// GetCompanyProfile returns the descriptive fields of the Yahoo quote.
func (yf *YahooClient) GetCompanyProfile(symbol string) (*CompanyProfile, error) {
	if err := ValidateSymbol(symbol); err != nil {
		return nil, err
	}
	symbol = NormalizeSymbol(symbol)

	key := cacheKey("yahoo", "profile", symbol)
	if cached, ok := yf.cache.get(key); ok {
		return cached.(*CompanyProfile), nil
	}

	var result *CompanyProfile
	err := WithRetry(yf.retry, func() error {
		q, err := equity.Get(symbol)
		if err != nil {
			return fmt.Errorf("get profile for %s: %w", symbol, err)
		}

		result = &CompanyProfile{
			Symbol:      symbol,
			Name:        q.ShortName,
			Exchange:    q.FullExchangeName,
			Currency:    q.CurrencyID,
			QuoteType:   string(q.QuoteType),
			MarketState: string(q.MarketState),
			MarketCap:   q.MarketCap,
			Price:       q.RegularMarketPrice,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	yf.cache.set(key, result)
	return result, nil
}
