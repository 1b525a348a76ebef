package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// HTTP
	Port        string
	SecretToken string
	HTTPTimeout time.Duration
	// Home exchange (MEXC) credentials for signed endpoints
	MexcAPIKey    string
	MexcAPISecret string
	// When true, deposit checks fall back to "open" whenever the signed
	// asset-config call cannot be completed.
	DepositFailOpen bool
	// Dashboard client poll interval
	PollInterval time.Duration
	// Resource limits for the metrics snapshot
	CPULimit float64
	RAMLimit string
	PodIP    string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func floatDef(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return def
	}
	return f
}

func boolDef(s string, def bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return b
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:             getEnv("ENV", "local"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Port:            getEnv("PORT", "8080"),
		SecretToken:     getEnv("SECRET_TOKEN", "777"),
		HTTPTimeout:     time.Duration(atoiDef(getEnv("HTTP_TIMEOUT_MS", "10000"), 10000)) * time.Millisecond,
		MexcAPIKey:      getEnv("MEXC_API_KEY", ""),
		MexcAPISecret:   getEnv("MEXC_API_SECRET", ""),
		DepositFailOpen: boolDef(getEnv("DEPOSIT_FAIL_OPEN", "true"), true),
		PollInterval:    time.Duration(atoiDef(getEnv("POLL_INTERVAL_MS", "3000"), 3000)) * time.Millisecond,
		CPULimit:        floatDef(getEnv("CPU_LIMIT", "1"), 1),
		RAMLimit:        getEnv("RAM_LIMIT", "512Mi"),
		PodIP:           getEnv("POD_IP", ""),
	}
}
