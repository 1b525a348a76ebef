package dex

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"spreadwatch/internal/application"
	"spreadwatch/internal/domain"
	"spreadwatch/internal/infrastructure/httpx"
)

const defaultBaseURL = "https://api.dexscreener.com"

var _ application.PairFinder = (*ScreenerClient)(nil)

// ScreenerClient queries the DexScreener token-lookup endpoint for all
// indexed trading pairs of one contract address.
type ScreenerClient struct {
	BaseURL string
	Client  *http.Client
}

type screenerResponse struct {
	Pairs []struct {
		ChainID     string `json:"chainId"`
		PairAddress string `json:"pairAddress"`
		URL         string `json:"url"`
		PriceUsd    string `json:"priceUsd"`
		Volume      struct {
			H24 float64 `json:"h24"`
		} `json:"volume"`
	} `json:"pairs"`
}

func (s *ScreenerClient) PairsByContract(ctx context.Context, contract string) ([]domain.DexPair, error) {
	base := s.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	u := fmt.Sprintf("%s/latest/dex/tokens/%s", base, contract)

	c := &httpx.Client{HTTP: s.Client}
	var body screenerResponse
	if err := c.GetJSON(ctx, u, &body); err != nil {
		return nil, fmt.Errorf("dexscreener: %w", err)
	}

	pairs := make([]domain.DexPair, 0, len(body.Pairs))
	for _, p := range body.Pairs {
		// priceUsd arrives as a string; a bad value is not worth dropping
		// the pair over, volume alone drives the selection.
		price, _ := strconv.ParseFloat(p.PriceUsd, 64)
		pairs = append(pairs, domain.DexPair{
			ChainID:   p.ChainID,
			Address:   p.PairAddress,
			URL:       p.URL,
			PriceUSD:  price,
			Volume24h: p.Volume.H24,
		})
	}
	return pairs, nil
}
