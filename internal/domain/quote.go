package domain

// Quote is one venue's last-traded price for a symbol. A price of 0 means
// "unavailable", not a real trade.
type Quote struct {
	Venue string
	Price float64
}
