package dataflows

import (
	"context"
	"errors"

	lpconfig "github.com/longportapp/openapi-go/config"
	"github.com/longportapp/openapi-go/quote"

	"github.com/DaniaAmin/MultiAgent-Stock-Market-Analysis/internal/config"
)

// LongportClient is an optional quote provider backed by the Longport
// OpenAPI. It is only constructed when all three credentials are configured;
// Yahoo remains the default data source otherwise.
type LongportClient struct {
	quoteCtx *quote.QuoteContext
}

// NewLongportClient connects to Longport using credentials from cfg.
func NewLongportClient(cfg *config.Config) (*LongportClient, error) {
	if !cfg.LongportConfigured() {
		return nil, errors.New("longport API credentials not configured")
	}

	conf, err := lpconfig.New(lpconfig.WithConfigKey(
		cfg.LongportAppKey, cfg.LongportAppSecret, cfg.LongportAccessToken))
	if err != nil {
		return nil, err
	}

	quoteContext, err := quote.NewFromCfg(conf)
	if err != nil {
		return nil, err
	}

	return &LongportClient{quoteCtx: quoteContext}, nil
}

// GetStaticInfo returns descriptive security info for the given symbols.
func (lpc *LongportClient) GetStaticInfo(ctx context.Context, symbols []string) ([]*quote.StaticInfo, error) {
	if lpc.quoteCtx == nil {
		return nil, errors.New("quote context is nil")
	}
	return lpc.quoteCtx.StaticInfo(ctx, symbols)
}

// GetDailySticks returns up to count daily candlesticks for a symbol.
func (lpc *LongportClient) GetDailySticks(ctx context.Context, symbol string, count int) ([]*quote.Candlestick, error) {
	if lpc.quoteCtx == nil {
		return nil, errors.New("quote context is nil")
	}
	return lpc.quoteCtx.Candlesticks(ctx, symbol, quote.PeriodDay, int32(count), quote.AdjustTypeNo)
}
