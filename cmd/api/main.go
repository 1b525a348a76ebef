package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spreadwatch/internal/application"
	"spreadwatch/internal/config"
	"spreadwatch/internal/infrastructure/dex"
	"spreadwatch/internal/infrastructure/exchange"
	httpserver "spreadwatch/internal/infrastructure/http"
	"spreadwatch/internal/infrastructure/logx"
	"spreadwatch/internal/infrastructure/sysmetrics"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	logger := logx.L()
	cfg := config.Load()
	addr := ":" + cfg.Port

	// One shared upstream client; its timeout is the only bound on a slow
	// venue, siblings in the fan-out are unaffected either way.
	upstream := &http.Client{Timeout: cfg.HTTPTimeout}

	tickers := exchange.NewTickerClient(upstream)
	mexc := &exchange.MexcClient{
		APIKey:    cfg.MexcAPIKey,
		APISecret: cfg.MexcAPISecret,
		Client:    upstream,
	}
	screener := &dex.ScreenerClient{Client: upstream}

	sampler, err := sysmetrics.New(cfg.PodIP, cfg.CPULimit, cfg.RAMLimit)
	if err != nil {
		logger.Fatal("metrics sampler", zap.Error(err))
	}

	svc := application.NewDashboardService(tickers, mexc, mexc, screener, sampler,
		application.WithDepositFailOpen(cfg.DepositFailOpen),
	)
	srv := httpserver.NewServer(svc, cfg.SecretToken, cfg.PollInterval.Milliseconds())
	mux := httpserver.NewRouter(srv)

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		logger.Info("server started", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = server.Shutdown(shutdownCtx)
	logger.Info("server stopped")
}
