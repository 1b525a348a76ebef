package domain

// TokenNetwork is one on-chain network a token is deployed on, as reported
// by the home exchange's asset configuration.
type TokenNetwork struct {
	Network        string
	Contract       string
	DepositEnabled bool
}

// Token is the home exchange's view of an asset. DepositAllEnabled is nil
// when the venue omits the overall flag.
type Token struct {
	Symbol            Symbol
	DepositAllEnabled *bool
	Networks          []TokenNetwork
}

// DepositOpen reports whether deposits are currently possible for the token.
// It is false only when the overall flag is explicitly false, or when a
// non-empty network list has no deposit-enabled network.
func (t Token) DepositOpen() bool {
	if t.DepositAllEnabled != nil && !*t.DepositAllEnabled {
		return false
	}
	if len(t.Networks) == 0 {
		return true
	}
	for _, n := range t.Networks {
		if n.DepositEnabled {
			return true
		}
	}
	return false
}
