package exchange

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"spreadwatch/internal/infrastructure/httpx"
)

type pairStyle int

const (
	pairNoSep      pairStyle = iota // BTCUSDT
	pairDash                        // BTC-USDT
	pairUnderscore                  // BTC_USDT
)

const quoteAsset = "USDT"

// venue describes one public ticker API: how to spell the trading pair, the
// URL to hit and how to dig the last price out of that venue's JSON shape.
type venue struct {
	style   pairStyle
	aliases map[string]string
	fetch   func(ctx context.Context, c *httpx.Client, pair string) (float64, error)
}

func (v venue) pair(base string) string {
	if alias, ok := v.aliases[base]; ok {
		base = alias
	}
	switch v.style {
	case pairDash:
		return base + "-" + quoteAsset
	case pairUnderscore:
		return base + "_" + quoteAsset
	default:
		return base + quoteAsset
	}
}

var roster = map[string]venue{
	"binance": {style: pairNoSep, fetch: fetchBinance},
	"bybit":   {style: pairNoSep, fetch: fetchBybit},
	"gate":    {style: pairUnderscore, fetch: fetchGate},
	"bitget":  {style: pairNoSep, fetch: fetchBitget},
	"bingx":   {style: pairDash, aliases: map[string]string{"BTC": "XBT"}, fetch: fetchBingx},
	"okx":     {style: pairDash, fetch: fetchOKX},
	"kucoin":  {style: pairDash, fetch: fetchKucoin},
}

func fetchBinance(ctx context.Context, c *httpx.Client, pair string) (float64, error) {
	var body struct {
		Price string `json:"price"`
	}
	url := fmt.Sprintf("https://api.binance.com/api/v3/ticker/price?symbol=%s", pair)
	if err := c.GetJSON(ctx, url, &body); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(body.Price, 64)
}

func fetchBybit(ctx context.Context, c *httpx.Client, pair string) (float64, error) {
	var body struct {
		Result struct {
			List []struct {
				LastPrice string `json:"lastPrice"`
			} `json:"list"`
		} `json:"result"`
	}
	url := fmt.Sprintf("https://api.bybit.com/v5/market/tickers?category=spot&symbol=%s", pair)
	if err := c.GetJSON(ctx, url, &body); err != nil {
		return 0, err
	}
	if len(body.Result.List) == 0 {
		return 0, fmt.Errorf("bybit: empty ticker list")
	}
	return strconv.ParseFloat(body.Result.List[0].LastPrice, 64)
}

func fetchGate(ctx context.Context, c *httpx.Client, pair string) (float64, error) {
	var body []struct {
		Last string `json:"last"`
	}
	url := fmt.Sprintf("https://api.gateio.ws/api/v4/spot/tickers?currency_pair=%s", pair)
	if err := c.GetJSON(ctx, url, &body); err != nil {
		return 0, err
	}
	if len(body) == 0 {
		return 0, fmt.Errorf("gate: empty ticker list")
	}
	return strconv.ParseFloat(body[0].Last, 64)
}

func fetchBitget(ctx context.Context, c *httpx.Client, pair string) (float64, error) {
	var body struct {
		Data []struct {
			LastPr string `json:"lastPr"`
		} `json:"data"`
	}
	url := fmt.Sprintf("https://api.bitget.com/api/v2/spot/market/tickers?symbol=%s", pair)
	if err := c.GetJSON(ctx, url, &body); err != nil {
		return 0, err
	}
	if len(body.Data) == 0 {
		return 0, fmt.Errorf("bitget: empty ticker list")
	}
	return strconv.ParseFloat(body.Data[0].LastPr, 64)
}

func fetchBingx(ctx context.Context, c *httpx.Client, pair string) (float64, error) {
	var body struct {
		Data []struct {
			LastPrice float64 `json:"lastPrice"`
		} `json:"data"`
	}
	url := fmt.Sprintf("https://open-api.bingx.com/openApi/spot/v1/ticker/24hr?symbol=%s", pair)
	if err := c.GetJSON(ctx, url, &body); err != nil {
		return 0, err
	}
	if len(body.Data) == 0 {
		return 0, fmt.Errorf("bingx: empty ticker list")
	}
	return body.Data[0].LastPrice, nil
}

func fetchOKX(ctx context.Context, c *httpx.Client, pair string) (float64, error) {
	var body struct {
		Data []struct {
			Last string `json:"last"`
		} `json:"data"`
	}
	url := fmt.Sprintf("https://www.okx.com/api/v5/market/ticker?instId=%s", pair)
	if err := c.GetJSON(ctx, url, &body); err != nil {
		return 0, err
	}
	if len(body.Data) == 0 {
		return 0, fmt.Errorf("okx: empty ticker list")
	}
	return strconv.ParseFloat(body.Data[0].Last, 64)
}

func fetchKucoin(ctx context.Context, c *httpx.Client, pair string) (float64, error) {
	var body struct {
		Data struct {
			Price string `json:"price"`
		} `json:"data"`
	}
	url := fmt.Sprintf("https://api.kucoin.com/api/v1/market/orderbook/level1?symbol=%s", pair)
	if err := c.GetJSON(ctx, url, &body); err != nil {
		return 0, err
	}
	if strings.TrimSpace(body.Data.Price) == "" {
		return 0, fmt.Errorf("kucoin: missing price")
	}
	return strconv.ParseFloat(body.Data.Price, 64)
}
