package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// --- Mocks ---

// mockFetcher is a mock for the eventFetcher interface. It records every
// attempt it receives so tests can assert on plan execution order.
type mockFetcher struct {
	FetchEventsFunc func(ctx context.Context, attempt queryAttempt, criteria FilterCriteria) ([]EventRecord, error)
	calls           []queryAttempt
}

func (m *mockFetcher) FetchEvents(ctx context.Context, attempt queryAttempt, criteria FilterCriteria) ([]EventRecord, error) {
	m.calls = append(m.calls, attempt)
	if m.FetchEventsFunc != nil {
		return m.FetchEventsFunc(ctx, attempt, criteria)
	}
	return nil, errors.New("FetchEventsFunc not implemented in mock")
}

// mockCache is a mock for the Cache interface.
type mockCache struct {
	getFunc   func(ctx context.Context, key string) (string, error)
	setFunc   func(ctx context.Context, key string, value any, expiration time.Duration) error
	pingFunc  func(ctx context.Context) error
	flushFunc func(ctx context.Context) error
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return "", redis.Nil
}

func (m *mockCache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, expiration)
	}
	return nil
}

func (m *mockCache) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return nil
}

func (m *mockCache) Flush(ctx context.Context) error {
	if m.flushFunc != nil {
		return m.flushFunc(ctx)
	}
	return nil
}

// mockGeoProvider is a mock for the geoProvider interface.
type mockGeoProvider struct {
	name       string
	LocateFunc func(ctx context.Context, ip string) (GeoLocation, error)
	calls      int
}

func (m *mockGeoProvider) Name() string { return m.name }

func (m *mockGeoProvider) Locate(ctx context.Context, ip string) (GeoLocation, error) {
	m.calls++
	if m.LocateFunc != nil {
		return m.LocateFunc(ctx, ip)
	}
	return GeoLocation{}, errors.New("LocateFunc not implemented in mock")
}

// newTestAPIConfig builds an apiConfig wired to mocks and a discarded logger.
func newTestAPIConfig() (*apiConfig, *mockFetcher, *mockCache) {
	fetcher := &mockFetcher{}
	cache := &mockCache{}
	cfg := &apiConfig{
		resolver:        newCityResolver(cityAliasTable),
		fetcher:         fetcher,
		cache:           cache,
		httpClient:      &http.Client{Timeout: time.Second},
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		upstreamTimeout: time.Second,
		warmInterval:    time.Minute,
		warmCities:      []string{"Praha"},
		port:            "8080",
	}
	return cfg, fetcher, cache
}

// makeEvent builds a minimal EventRecord for filter tests.
func makeEvent(id, title, city, datetime string) EventRecord {
	return EventRecord{
		ID:       id,
		Title:    LocalizedText{"en": title},
		City:     city,
		DateTime: datetime,
		Source:   "ticketmaster",
	}
}
