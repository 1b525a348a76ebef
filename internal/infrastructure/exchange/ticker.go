package exchange

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"spreadwatch/internal/application"
	"spreadwatch/internal/domain"
	"spreadwatch/internal/infrastructure/httpx"
	"spreadwatch/internal/infrastructure/logx"
)

// Ensure TickerClient implements application.QuoteFetcher.
var _ application.QuoteFetcher = (*TickerClient)(nil)

// TickerClient polls the public spot ticker APIs in the roster. Every
// failure mode collapses to a quote with Price 0: the dashboard treats 0 as
// "unavailable" and hides the row.
type TickerClient struct {
	Client *http.Client
}

func NewTickerClient(client *http.Client) *TickerClient {
	return &TickerClient{Client: client}
}

func (t *TickerClient) Fetch(ctx context.Context, name string, sym domain.Symbol) domain.Quote {
	q := domain.Quote{Venue: name}
	v, ok := roster[name]
	if !ok {
		logx.L().Warn("unknown venue in roster", zap.String("venue", name))
		return q
	}
	c := &httpx.Client{HTTP: t.Client}
	price, err := v.fetch(ctx, c, v.pair(string(sym)))
	if err != nil {
		logx.L().Debug("ticker fetch failed",
			zap.String("venue", name),
			zap.String("symbol", string(sym)),
			zap.Error(err),
		)
		return q
	}
	if price < 0 {
		return q
	}
	q.Price = price
	return q
}
