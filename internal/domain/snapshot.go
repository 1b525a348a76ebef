package domain

// SystemSnapshot is an instantaneous host/process resource reading, derived
// per request and never stored.
type SystemSnapshot struct {
	IP         string
	CPUPercent float64
	RAMPercent float64
}
