package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

type apiConfig struct {
	resolver        *cityResolver
	fetcher         eventFetcher
	cache           Cache
	geoProviders    []geoProvider
	httpClient      *http.Client
	logger          *slog.Logger
	discoveryURL    string
	upstreamTimeout time.Duration
	warmInterval    time.Duration
	warmCities      []string
	port            string
	devMode         bool
}

// getRequiredEnv retrieves an environment variable by key, erroring if it's not set.
func getRequiredEnv(key string, logger *slog.Logger) (string, error) {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		logger.Error("environment variable must be set", "key", key)
		return "", fmt.Errorf("environment variable %s must be set", key)
	}
	return val, nil
}

// getEnv retrieves an environment variable by key, with a fallback value.
func getEnv(key, fallback string, logger *slog.Logger) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
	return fallback
}

// getEnvAsInt retrieves an environment variable as an integer, with a fallback value.
func getEnvAsInt(key string, fallback int, logger *slog.Logger) int {
	valStr, ok := os.LookupEnv(key)
	if !ok || valStr == "" {
		logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		logger.Warn("invalid integer value for environment variable, using fallback", "key", key, "value", valStr, "error", err)
		return fallback
	}
	return val
}

// NewAPIConfig assembles the application configuration from the environment.
// Logs go to out so tests can silence them. Connectivity (Redis ping) is the
// caller's concern; this function only parses and wires.
func NewAPIConfig(out io.Writer) (*apiConfig, error) {
	devModeStr := os.Getenv("DEV_MODE")
	devMode, err := strconv.ParseBool(devModeStr)
	if err != nil {
		devMode = false
	}

	var logger *slog.Logger
	if devMode {
		logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		logger = slog.New(slog.NewJSONHandler(out, nil))
	}

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment variables")
	}

	redisURL, err := getRequiredEnv("REDIS_URL", logger)
	if err != nil {
		return nil, err
	}
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Error("could not parse Redis URL", "error", err)
		return nil, fmt.Errorf("could not parse Redis URL: %w", err)
	}
	cache := NewRedisCache(redis.NewClient(opt))

	apiKey, err := getRequiredEnv("DISCOVERY_API_KEY", logger)
	if err != nil {
		return nil, err
	}
	discoveryURL := getEnv("DISCOVERY_API_URL", "https://app.ticketmaster.com/discovery/v2/", logger)
	if !strings.HasSuffix(discoveryURL, "/") {
		discoveryURL += "/"
	}

	upstreamTimeoutSec := getEnvAsInt("UPSTREAM_TIMEOUT_SEC", 7, logger)
	warmIntervalMin := getEnvAsInt("WARM_INTERVAL_MIN", 30, logger)
	warmCities := splitCityList(getEnv("WARM_CITIES", "Praha,Brno,Ostrava", logger))

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	cfg := apiConfig{
		resolver:        newCityResolver(cityAliasTable),
		cache:           cache,
		httpClient:      httpClient,
		logger:          logger,
		discoveryURL:    discoveryURL,
		upstreamTimeout: time.Duration(upstreamTimeoutSec) * time.Second,
		warmInterval:    time.Duration(warmIntervalMin) * time.Minute,
		warmCities:      warmCities,
		port:            getEnv("PORT", "8080", logger),
		devMode:         devMode,
	}
	cfg.fetcher = newDiscoveryClient(discoveryURL, apiKey, httpClient, logger)
	cfg.geoProviders = defaultGeoProviders(httpClient)

	return &cfg, nil
}

// splitCityList parses a comma-separated city list from the environment.
func splitCityList(raw string) []string {
	parts := strings.Split(raw, ",")
	cities := make([]string, 0, len(parts))
	for _, part := range parts {
		if city := strings.TrimSpace(part); city != "" {
			cities = append(cities, city)
		}
	}
	return cities
}
