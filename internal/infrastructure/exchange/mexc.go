package exchange

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"spreadwatch/internal/application"
	"spreadwatch/internal/domain"
	"spreadwatch/internal/infrastructure/httpx"
)

const (
	mexcAPIBase      = "https://api.mexc.com"
	mexcContractBase = "https://contract.mexc.com"

	mexcContractTickerPath = "/api/v1/contract/ticker"
	mexcCapitalConfigPath  = "/api/v3/capital/config/getall"
)

var _ application.ReferenceFetcher = (*MexcClient)(nil)
var _ application.AssetCatalog = (*MexcClient)(nil)

// MexcClient talks to the home exchange: the public futures ticker for the
// reference price, and the signed capital config endpoint for per-network
// deposit flags and contract addresses.
type MexcClient struct {
	APIBase      string
	ContractBase string
	APIKey       string
	APISecret    string
	Client       *http.Client

	// Now is swappable for deterministic signing tests.
	Now func() time.Time
}

func (m *MexcClient) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *MexcClient) apiBase() string {
	if m.APIBase != "" {
		return m.APIBase
	}
	return mexcAPIBase
}

func (m *MexcClient) contractBase() string {
	if m.ContractBase != "" {
		return m.ContractBase
	}
	return mexcContractBase
}

type mexcContractTicker struct {
	Success bool `json:"success"`
	Data    struct {
		LastPrice float64 `json:"lastPrice"`
	} `json:"data"`
}

// FetchReference returns the MEXC futures contract price for {sym}_USDT.
// All other venues' spreads are computed against it. 0 on any failure.
func (m *MexcClient) FetchReference(ctx context.Context, sym domain.Symbol) float64 {
	c := &httpx.Client{HTTP: m.Client}
	u := fmt.Sprintf("%s%s?symbol=%s_USDT", m.contractBase(), mexcContractTickerPath, sym)

	var body mexcContractTicker
	if err := c.GetJSON(ctx, u, &body); err != nil {
		return 0
	}
	if !body.Success || body.Data.LastPrice < 0 {
		return 0
	}
	return body.Data.LastPrice
}

type mexcCoinConfig struct {
	Coin             string `json:"coin"`
	Name             string `json:"name"`
	DepositAllEnable *bool  `json:"depositAllEnable"`
	NetworkList      []struct {
		Network       string `json:"network"`
		Contract      string `json:"contract"`
		DepositEnable bool   `json:"depositEnable"`
	} `json:"networkList"`
}

// Token fetches the signed asset configuration and returns the entry for
// sym. Short-circuits with ErrNoCredentials before any network call when the
// key pair is not configured.
func (m *MexcClient) Token(ctx context.Context, sym domain.Symbol) (domain.Token, error) {
	if m.APIKey == "" || m.APISecret == "" {
		return domain.Token{}, application.ErrNoCredentials
	}

	q := url.Values{}
	q.Set("timestamp", strconv.FormatInt(m.now().UnixMilli(), 10))
	q.Set("signature", Sign(m.APISecret, q))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		m.apiBase()+mexcCapitalConfigPath+"?"+q.Encode(), nil)
	if err != nil {
		return domain.Token{}, fmt.Errorf("mexc: create request: %w", err)
	}
	req.Header.Set("X-MEXC-APIKEY", m.APIKey)

	c := &httpx.Client{HTTP: m.Client}
	var body []mexcCoinConfig
	if err := c.DoJSON(ctx, req, &body); err != nil {
		return domain.Token{}, fmt.Errorf("%w: capital config: %v", application.ErrUpstream, err)
	}

	for _, entry := range body {
		if entry.Coin != string(sym) {
			continue
		}
		tok := domain.Token{
			Symbol:            sym,
			DepositAllEnabled: entry.DepositAllEnable,
		}
		for _, n := range entry.NetworkList {
			tok.Networks = append(tok.Networks, domain.TokenNetwork{
				Network:        n.Network,
				Contract:       n.Contract,
				DepositEnabled: n.DepositEnable,
			})
		}
		return tok, nil
	}
	return domain.Token{}, application.ErrTokenNotFound
}
