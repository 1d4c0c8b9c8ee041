package main

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Taong-grasa/cred-checker-api/internal/aggregate"
	"github.com/Taong-grasa/cred-checker-api/internal/config"
	"github.com/Taong-grasa/cred-checker-api/internal/discovery"
	"github.com/Taong-grasa/cred-checker-api/internal/httpapi"
	"github.com/Taong-grasa/cred-checker-api/internal/page"
	"github.com/Taong-grasa/cred-checker-api/internal/pipeline"
	"github.com/Taong-grasa/cred-checker-api/internal/score"
	"github.com/Taong-grasa/cred-checker-api/internal/trust"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := newLogger(cfg.Env)
	defer log.Sync()

	if cfg.GoogleAPIKey == "" || cfg.GoogleSearchCX == "" {
		log.Warn("google search credentials not set; every query will use the fallback cascade")
	}

	classifier := trust.NewClassifier()
	primary := discovery.NewGoogleSearch(cfg.GoogleAPIKey, cfg.GoogleSearchCX)
	cascade := discovery.DefaultCascade(log)
	gatherer := aggregate.New(primary, cascade, classifier, log)

	fetcher := page.NewFetcher()
	if cfg.FetchTimeoutS > 0 {
		fetcher.Timeout = time.Duration(cfg.FetchTimeoutS) * time.Second
	}

	checker := pipeline.New(gatherer, fetcher, score.NewScorer(classifier), cfg.FetchWorkers, log)
	srv := httpapi.New(checker, log)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()
	log.Info("listening", zap.String("addr", cfg.ListenAddr))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	case sig := <-sigCh:
		log.Info("shutting down", zap.String("signal", sig.String()))
		_ = httpServer.Close()
	}
}

func newLogger(env string) *zap.Logger {
	var log *zap.Logger
	var err error
	if env == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return log
}
