package dataflows

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MarketData represents one bar of stock price data.
type MarketData struct {
	Symbol    string          `json:"symbol"`
	Date      time.Time       `json:"date"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	AdjClose  decimal.Decimal `json:"adj_close"`
	Volume    int64           `json:"volume"`
	Timestamp time.Time       `json:"timestamp"`
}

// CompanyProfile carries the descriptive quote fields Yahoo exposes, merged
// with Longport static info when that provider is configured.
type CompanyProfile struct {
	Symbol      string  `json:"symbol"`
	Name        string  `json:"name"`
	Exchange    string  `json:"exchange"`
	Currency    string  `json:"currency"`
	QuoteType   string  `json:"quote_type"`
	MarketState string  `json:"market_state"`
	MarketCap   int64   `json:"market_cap"`
	Price       float64 `json:"price"`
	Sector      string  `json:"sector,omitempty"`
	Industry    string  `json:"industry,omitempty"`
}

// NewsArticle represents one fetched news item.
type NewsArticle struct {
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
}

var symbolPattern = regexp.MustCompile(`^[A-Z0-9.\-]+$`)

// NormalizeSymbol uppercases and trims a ticker symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// ValidateSymbol rejects empty or malformed ticker symbols.
func ValidateSymbol(symbol string) error {
	s := NormalizeSymbol(symbol)
	if s == "" {
		return fmt.Errorf("symbol cannot be empty")
	}
	if len(s) > 12 {
		return fmt.Errorf("symbol %q too long", s)
	}
	if !symbolPattern.MatchString(s) {
		return fmt.Errorf("symbol %q has invalid characters", s)
	}
	return nil
}

// timeframeDays maps the dashboard timeframe vocabulary to a day window.
// Unknown tokens fall back to one year, mirroring the request default.
var timeframeDays = map[string]int{
	"1d":  1,
	"5d":  5,
	"1mo": 30,
	"3mo": 91,
	"6mo": 182,
	"1y":  365,
	"2y":  730,
	"5y":  1825,
	"10y": 3650,
	"max": 7300,
}

// TimeframeWindow converts a timeframe token into a start time relative to
// now. The "ytd" token is anchored to January 1st of the current year.
func TimeframeWindow(timeframe string, now time.Time) time.Time {
	if timeframe == "ytd" {
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	}
	days, ok := timeframeDays[timeframe]
	if !ok {
		days = timeframeDays["1y"]
	}
	return now.AddDate(0, 0, -days)
}
