package main

import (
	"context"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := NewAPIConfig(os.Stdout)
	if err != nil {
		os.Exit(1)
	}
	cfg.logger.Debug("configuration loaded")

	if err := cfg.cache.Ping(context.Background()); err != nil {
		cfg.logger.Error("could not connect to Redis", "error", err)
		os.Exit(1)
	}

	scheduler := NewScheduler(cfg, cfg.warmInterval)
	cfg.logger.Info("starting cache warmer",
		"interval", cfg.warmInterval.String(),
		"cities", len(cfg.warmCities),
	)
	scheduler.Start()

	mux := http.NewServeMux()

	mux.HandleFunc("/api/events", cfg.handlerEvents)
	mux.HandleFunc("/api/suggest", cfg.handlerSuggest)
	mux.HandleFunc("/api/geoip", cfg.handlerGeoIP)
	mux.HandleFunc("/healthz", cfg.handlerHealthz)
	mux.Handle("/metrics", promhttp.Handler())

	handler := cfg.requestLogMiddleware(metricsMiddleware(corsMiddleware(mux)))

	server := &http.Server{
		Addr:    ":" + cfg.port,
		Handler: handler,
	}

	cfg.logger.Info("starting server", "port", cfg.port)
	err = server.ListenAndServe()
	if err != nil {
		cfg.logger.Error("server startup failed", "error", err)
		os.Exit(1)
	}
}
