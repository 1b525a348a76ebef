package application

import (
	"context"

	"spreadwatch/internal/domain"
)

type fakeQuotes struct {
	prices map[string]float64
}

func (f *fakeQuotes) Fetch(_ context.Context, venue string, _ domain.Symbol) domain.Quote {
	return domain.Quote{Venue: venue, Price: f.prices[venue]}
}

// blockingQuotes parks every venue fetch until the request context is
// canceled, the way a stalled upstream behaves on a client disconnect.
type blockingQuotes struct{}

func (blockingQuotes) Fetch(ctx context.Context, venue string, _ domain.Symbol) domain.Quote {
	<-ctx.Done()
	return domain.Quote{Venue: venue}
}

type fakeReference struct {
	price float64
}

func (f *fakeReference) FetchReference(context.Context, domain.Symbol) float64 {
	return f.price
}

type fakeCatalog struct {
	tok   domain.Token
	err   error
	calls int
}

func (f *fakeCatalog) Token(context.Context, domain.Symbol) (domain.Token, error) {
	f.calls++
	if f.err != nil {
		return domain.Token{}, f.err
	}
	return f.tok, nil
}

type fakePairs struct {
	byContract map[string][]domain.DexPair
	errs       map[string]error
}

func (f *fakePairs) PairsByContract(_ context.Context, contract string) ([]domain.DexPair, error) {
	if err := f.errs[contract]; err != nil {
		return nil, err
	}
	return f.byContract[contract], nil
}

type fakeSampler struct {
	snap domain.SystemSnapshot
}

func (f *fakeSampler) Sample(context.Context) domain.SystemSnapshot {
	return f.snap
}
