package dex

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) *http.Response

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r), nil }

func httpClient(body string, code int, gotURL *string) *http.Client {
	return &http.Client{
		Timeout: 2 * time.Second,
		Transport: roundTripFunc(func(r *http.Request) *http.Response {
			if gotURL != nil {
				*gotURL = r.URL.String()
			}
			return &http.Response{
				StatusCode: code,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     make(http.Header),
			}
		}),
	}
}

const sampleTokens = `{
  "schemaVersion": "1.0.0",
  "pairs": [
    {
      "chainId": "ethereum",
      "dexId": "uniswap",
      "url": "https://dexscreener.com/ethereum/0xaaa",
      "pairAddress": "0xaaa",
      "priceUsd": "0.00001234",
      "volume": {"h24": 1500000.5}
    },
    {
      "chainId": "bsc",
      "dexId": "pancakeswap",
      "url": "https://dexscreener.com/bsc/0xbbb",
      "pairAddress": "0xbbb",
      "priceUsd": "0.00001230",
      "volume": {"h24": 300}
    }
  ]
}`

func TestPairsByContract_OK(t *testing.T) {
	t.Parallel()
	var gotURL string
	s := &ScreenerClient{Client: httpClient(sampleTokens, 200, &gotURL)}

	pairs, err := s.PairsByContract(context.Background(), "0x6982508145454ce325ddbe47a25d4ec3d2311933")
	require.NoError(t, err)
	require.Equal(t, "https://api.dexscreener.com/latest/dex/tokens/0x6982508145454ce325ddbe47a25d4ec3d2311933", gotURL)

	require.Len(t, pairs, 2)
	require.Equal(t, "ethereum", pairs[0].ChainID)
	require.Equal(t, "0xaaa", pairs[0].Address)
	require.InDelta(t, 0.00001234, pairs[0].PriceUSD, 1e-12)
	require.InDelta(t, 1500000.5, pairs[0].Volume24h, 1e-9)
}

func TestPairsByContract_NoPairs(t *testing.T) {
	t.Parallel()
	s := &ScreenerClient{Client: httpClient(`{"pairs": null}`, 200, nil)}

	pairs, err := s.PairsByContract(context.Background(), "0xdead")
	require.NoError(t, err)
	require.Empty(t, pairs)
}

func TestPairsByContract_UpstreamError(t *testing.T) {
	t.Parallel()
	s := &ScreenerClient{Client: httpClient("rate limited", 429, nil)}

	_, err := s.PairsByContract(context.Background(), "0xdead")
	require.Error(t, err)
}

func TestPairsByContract_BadPriceKeepsPair(t *testing.T) {
	t.Parallel()
	body := `{"pairs":[{"chainId":"sol","pairAddress":"0xccc","priceUsd":"n/a","volume":{"h24":10}}]}`
	s := &ScreenerClient{Client: httpClient(body, 200, nil)}

	pairs, err := s.PairsByContract(context.Background(), "0xccc")
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	require.Zero(t, pairs[0].PriceUSD)
	require.InDelta(t, 10, pairs[0].Volume24h, 1e-9)
}
