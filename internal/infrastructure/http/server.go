package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"spreadwatch/internal/application"
	"spreadwatch/internal/domain"
)

// Dashboard is the application surface the handlers need.
type Dashboard interface {
	Aggregate(ctx context.Context, sym domain.Symbol) (application.Aggregate, error)
	Resolve(ctx context.Context, sym domain.Symbol) (application.Resolution, error)
}

type Server struct {
	svc    Dashboard
	secret string
	pollMs int64
}

func NewServer(svc Dashboard, secret string, pollMs int64) *Server {
	return &Server{svc: svc, secret: secret, pollMs: pollMs}
}

type sysResponse struct {
	IP  string  `json:"ip"`
	CPU float64 `json:"cpu"`
	RAM float64 `json:"ram"`
}

type allResponse struct {
	OK              bool               `json:"ok"`
	Mexc            float64            `json:"mexc"`
	Prices          map[string]float64 `json:"prices"`
	MexcFormatted   string             `json:"mexcFormatted"`
	PricesFormatted map[string]string  `json:"pricesFormatted"`
	DepositOpen     bool               `json:"depositOpen"`
	Sys             sysResponse        `json:"sys"`
}

type resolveResponse struct {
	OK          bool   `json:"ok"`
	Chain       string `json:"chain,omitempty"`
	Addr        string `json:"addr,omitempty"`
	URL         string `json:"url,omitempty"`
	DepositOpen bool   `json:"depositOpen"`
	Error       string `json:"error,omitempty"`
}

func (s *Server) handleAll(w http.ResponseWriter, r *http.Request) {
	sym, ok := domain.NormalizeSymbol(r.URL.Query().Get("symbol"))
	if !ok {
		// Missing input is not an HTTP-level failure, the body carries it.
		writeJSON(w, http.StatusOK, map[string]any{"ok": false})
		return
	}

	agg, err := s.svc.Aggregate(r.Context(), sym)
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]any{"ok": false})
		return
	}

	writeJSON(w, http.StatusOK, allResponse{
		OK:              true,
		Mexc:            agg.Mexc,
		Prices:          agg.Prices,
		MexcFormatted:   agg.MexcFormatted,
		PricesFormatted: agg.PricesFormatted,
		DepositOpen:     agg.DepositOpen,
		Sys: sysResponse{
			IP:  agg.Sys.IP,
			CPU: agg.Sys.CPUPercent,
			RAM: agg.Sys.RAMPercent,
		},
	})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	sym, ok := domain.NormalizeSymbol(r.URL.Query().Get("symbol"))
	if !ok {
		writeJSON(w, http.StatusOK, resolveResponse{OK: false, Error: "symbol is required"})
		return
	}

	res, err := s.svc.Resolve(r.Context(), sym)
	switch {
	case errors.Is(err, application.ErrTokenNotFound):
		writeJSON(w, http.StatusOK, resolveResponse{OK: false, Error: "token not found"})
	case err != nil:
		writeJSON(w, http.StatusOK, resolveResponse{OK: false, Error: "API error"})
	default:
		writeJSON(w, http.StatusOK, resolveResponse{
			OK:          res.Found,
			Chain:       res.Chain,
			Addr:        res.Address,
			URL:         res.URL,
			DepositOpen: res.DepositOpen,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
