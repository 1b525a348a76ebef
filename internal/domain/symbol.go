package domain

import "strings"

// Symbol is an uppercase base-asset ticker, e.g. "BTC".
type Symbol string

// NormalizeSymbol trims and upper-cases raw user input. The second return
// value is false for an empty symbol.
func NormalizeSymbol(raw string) (Symbol, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return "", false
	}
	return Symbol(s), true
}
