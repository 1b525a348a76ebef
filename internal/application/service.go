package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"spreadwatch/internal/domain"
	"spreadwatch/internal/format"
)

// Aggregate is the combined per-request dashboard payload.
type Aggregate struct {
	Mexc            float64
	Prices          map[string]float64
	MexcFormatted   string
	PricesFormatted map[string]string
	DepositOpen     bool
	Sys             domain.SystemSnapshot
}

// Resolution is the outcome of the on-chain contract lookup. Found is false
// when no DEX pair exists for any of the token's networks; DepositOpen is
// valid either way.
type Resolution struct {
	Found       bool
	Chain       string
	Address     string
	URL         string
	DepositOpen bool
}

type DashboardService struct {
	quotes  QuoteFetcher
	ref     ReferenceFetcher
	assets  AssetCatalog
	pairs   PairFinder
	sampler Sampler

	venues          []string
	depositFailOpen bool
}

type Option func(*DashboardService)

// WithVenues overrides the default venue roster.
func WithVenues(venues []string) Option {
	return func(s *DashboardService) { s.venues = venues }
}

// WithDepositFailOpen sets the fallback deposit status used when the signed
// asset-config call cannot be completed.
func WithDepositFailOpen(open bool) Option {
	return func(s *DashboardService) { s.depositFailOpen = open }
}

func NewDashboardService(quotes QuoteFetcher, ref ReferenceFetcher, assets AssetCatalog, pairs PairFinder, sampler Sampler, opts ...Option) *DashboardService {
	s := &DashboardService{
		quotes:          quotes,
		ref:             ref,
		assets:          assets,
		pairs:           pairs,
		sampler:         sampler,
		depositFailOpen: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.venues == nil {
		s.venues = DefaultVenues()
	}
	return s
}

// DefaultVenues is the fixed roster of public ticker APIs polled per request.
func DefaultVenues() []string {
	return []string{"binance", "bybit", "gate", "bitget", "bingx", "okx", "kucoin"}
}

// Aggregate fans out to the reference price, the deposit check, every venue
// ticker and the metrics sampler concurrently, then formats the raw prices.
// The caller's ctx bounds every outbound call, so a dropped client cancels
// the whole fan-out.
func (s *DashboardService) Aggregate(ctx context.Context, sym domain.Symbol) (Aggregate, error) {
	if sym == "" {
		return Aggregate{}, ErrEmptySymbol
	}

	agg := Aggregate{
		Prices:          make(map[string]float64, len(s.venues)),
		PricesFormatted: make(map[string]string, len(s.venues)),
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		agg.Mexc = s.ref.FetchReference(ctx, sym)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		agg.DepositOpen = s.DepositOpen(ctx, sym)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		agg.Sys = s.sampler.Sample(ctx)
	}()

	for _, venue := range s.venues {
		wg.Add(1)
		go func(venue string) {
			defer wg.Done()
			q := s.quotes.Fetch(ctx, venue, sym)
			mu.Lock()
			agg.Prices[q.Venue] = q.Price
			mu.Unlock()
		}(venue)
	}

	wg.Wait()

	agg.MexcFormatted = format.Price(agg.Mexc)
	for venue, price := range agg.Prices {
		agg.PricesFormatted[venue] = format.Price(price)
	}
	return agg, nil
}

// DepositOpen applies the deposit rule to the asset catalog entry. Any
// failure of the signed call falls back to the configured default rather
// than blocking the dashboard.
func (s *DashboardService) DepositOpen(ctx context.Context, sym domain.Symbol) bool {
	tok, err := s.assets.Token(ctx, sym)
	if err != nil {
		return s.depositFailOpen
	}
	return tok.DepositOpen()
}

// Resolve finds the canonical on-chain pair for a symbol: the asset-config
// entry supplies the contract address per network, the DEX aggregator is
// queried per contract, and the pair with the highest 24h volume wins.
// Individual network lookups that fail are skipped; only the asset-config
// call itself is fatal.
func (s *DashboardService) Resolve(ctx context.Context, sym domain.Symbol) (Resolution, error) {
	if sym == "" {
		return Resolution{}, ErrEmptySymbol
	}

	tok, err := s.assets.Token(ctx, sym)
	if err != nil {
		if errors.Is(err, ErrTokenNotFound) {
			return Resolution{}, ErrTokenNotFound
		}
		return Resolution{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(tok.Networks) == 0 {
		return Resolution{}, ErrTokenNotFound
	}

	res := Resolution{DepositOpen: tok.DepositOpen()}

	var candidates []domain.DexPair
	for _, n := range tok.Networks {
		if n.Contract == "" {
			continue
		}
		pairs, err := s.pairs.PairsByContract(ctx, n.Contract)
		if err != nil {
			continue
		}
		candidates = append(candidates, pairs...)
	}

	best, ok := domain.BestPair(candidates)
	if !ok {
		return res, nil
	}
	res.Found = true
	res.Chain = best.ChainID
	res.Address = best.Address
	res.URL = best.URL
	return res, nil
}
