package domain

// DexPair is an on-chain trading pair indexed by the DEX aggregator.
type DexPair struct {
	ChainID   string
	Address   string
	URL       string
	PriceUSD  float64
	Volume24h float64
}

// BestPair selects the pair with the greatest 24h volume. Comparison is
// strict, so ties resolve to the first pair encountered. Missing volume is
// treated as 0.
func BestPair(pairs []DexPair) (DexPair, bool) {
	if len(pairs) == 0 {
		return DexPair{}, false
	}
	best := pairs[0]
	for _, p := range pairs[1:] {
		if p.Volume24h > best.Volume24h {
			best = p
		}
	}
	return best, true
}
