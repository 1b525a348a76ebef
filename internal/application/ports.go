package application

import (
	"context"

	"spreadwatch/internal/domain"
)

// QuoteFetcher returns a venue's last-traded quote for a symbol. It never
// fails: network errors, bad payloads and unknown venues all come back with
// Price 0.
type QuoteFetcher interface {
	Fetch(ctx context.Context, venue string, sym domain.Symbol) domain.Quote
}

// ReferenceFetcher returns the home exchange's contract price, 0 on failure.
type ReferenceFetcher interface {
	FetchReference(ctx context.Context, sym domain.Symbol) float64
}

// AssetCatalog looks a symbol up in the home exchange's asset configuration.
// Returns ErrNoCredentials without touching the network when no API key is
// configured, ErrTokenNotFound when the symbol is absent, and an
// ErrUpstream-wrapped error when the call itself fails.
type AssetCatalog interface {
	Token(ctx context.Context, sym domain.Symbol) (domain.Token, error)
}

// PairFinder queries the DEX aggregator for trading pairs of one contract.
type PairFinder interface {
	PairsByContract(ctx context.Context, contract string) ([]domain.DexPair, error)
}

// Sampler reads the current host/process resource usage.
type Sampler interface {
	Sample(ctx context.Context) domain.SystemSnapshot
}
