package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"spreadwatch/internal/application"
	"spreadwatch/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestAll_OK(t *testing.T) {
	f := &fakeDashboard{agg: application.Aggregate{
		Mexc:            64000,
		Prices:          map[string]float64{"binance": 64001, "kucoin": 0},
		MexcFormatted:   "       64000.00",
		PricesFormatted: map[string]string{"binance": "       64001.00", "kucoin": "              0"},
		DepositOpen:     true,
		Sys:             domain.SystemSnapshot{IP: "10.0.0.1", CPUPercent: 7.5, RAMPercent: 31.2},
	}}
	h := setup(f)

	req := httptest.NewRequest(http.MethodGet, "/api/all?symbol=btc&token=777", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		OK          bool               `json:"ok"`
		Mexc        float64            `json:"mexc"`
		Prices      map[string]float64 `json:"prices"`
		DepositOpen bool               `json:"depositOpen"`
		Sys         map[string]any     `json:"sys"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.OK)
	require.InDelta(t, 64000, resp.Mexc, 1e-9)
	require.Equal(t, 0.0, resp.Prices["kucoin"])
	require.True(t, resp.DepositOpen)
	require.Len(t, resp.Sys, 3)
	require.Contains(t, resp.Sys, "ip")
	require.Contains(t, resp.Sys, "cpu")
	require.Contains(t, resp.Sys, "ram")
	require.Equal(t, 1, f.aggCalls)
}

func TestAll_EmptySymbol(t *testing.T) {
	f := &fakeDashboard{}
	h := setup(f)

	req := httptest.NewRequest(http.MethodGet, "/api/all?symbol=&token=777", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	// Missing input stays HTTP 200 with ok:false in the body.
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":false}`, rec.Body.String())
	require.Zero(t, f.aggCalls)
}

func TestResolve_Found(t *testing.T) {
	f := &fakeDashboard{res: application.Resolution{
		Found:       true,
		Chain:       "ethereum",
		Address:     "0xaaa",
		URL:         "https://dexscreener.com/ethereum/0xaaa",
		DepositOpen: true,
	}}
	h := setup(f)

	req := httptest.NewRequest(http.MethodGet, "/api/resolve?symbol=PEPE&token=777", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp resolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.OK)
	require.Equal(t, "ethereum", resp.Chain)
	require.Equal(t, "0xaaa", resp.Addr)
	require.True(t, resp.DepositOpen)
	require.Empty(t, resp.Error)
}

func TestResolve_NotFoundVsUpstreamError(t *testing.T) {
	notFound := &fakeDashboard{resErr: application.ErrTokenNotFound}
	h := setup(notFound)
	req := httptest.NewRequest(http.MethodGet, "/api/resolve?symbol=NOPE&token=777", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var resp resolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.OK)
	require.Equal(t, "token not found", resp.Error)

	upstream := &fakeDashboard{resErr: application.ErrUpstream}
	h = setup(upstream)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.OK)
	require.Equal(t, "API error", resp.Error)
}

func TestResolve_NoPairStillCarriesDeposit(t *testing.T) {
	f := &fakeDashboard{res: application.Resolution{Found: false, DepositOpen: true}}
	h := setup(f)

	req := httptest.NewRequest(http.MethodGet, "/api/resolve?symbol=NEW&token=777", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp resolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.OK)
	require.True(t, resp.DepositOpen)
	require.Empty(t, resp.Error)
}

// End-to-end through the real service with stubbed upstream ports.

type e2eQuotes struct{ prices map[string]float64 }

func (f e2eQuotes) Fetch(_ context.Context, venue string, _ domain.Symbol) domain.Quote {
	return domain.Quote{Venue: venue, Price: f.prices[venue]}
}

type e2eReference struct{ price float64 }

func (f e2eReference) FetchReference(context.Context, domain.Symbol) float64 { return f.price }

type e2eCatalog struct{}

func (e2eCatalog) Token(context.Context, domain.Symbol) (domain.Token, error) {
	return domain.Token{}, application.ErrNoCredentials
}

type e2ePairs struct{}

func (e2ePairs) PairsByContract(context.Context, string) ([]domain.DexPair, error) {
	return nil, nil
}

type e2eSampler struct{}

func (e2eSampler) Sample(context.Context) domain.SystemSnapshot {
	return domain.SystemSnapshot{IP: "10.0.0.9", CPUPercent: 3.1, RAMPercent: 27.9}
}

func TestAll_EndToEnd(t *testing.T) {
	prices := map[string]float64{
		"binance": 3100.1, "bybit": 3100.2, "gate": 3100.3, "bitget": 3100.4,
		"bingx": 3100.5, "okx": 3100.6, "kucoin": 3100.7,
	}
	svc := application.NewDashboardService(
		e2eQuotes{prices: prices}, e2eReference{price: 3100}, e2eCatalog{}, e2ePairs{}, e2eSampler{},
	)
	h := NewRouter(NewServer(svc, "777", 3000))

	req := httptest.NewRequest(http.MethodGet, "/api/all?symbol=ETH&token=777", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		OK              bool               `json:"ok"`
		Mexc            float64            `json:"mexc"`
		Prices          map[string]float64 `json:"prices"`
		PricesFormatted map[string]string  `json:"pricesFormatted"`
		DepositOpen     bool               `json:"depositOpen"`
		Sys             map[string]any     `json:"sys"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.OK)
	require.Len(t, resp.Prices, 7)
	for venue, want := range prices {
		require.InDelta(t, want, resp.Prices[venue], 1e-9, "venue %s", venue)
		require.Len(t, resp.PricesFormatted[venue], 15)
	}
	require.True(t, resp.DepositOpen, "no credentials must fail open")
	require.Len(t, resp.Sys, 3)
}
