package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseFilterCriteria(t *testing.T) {
	testCases := []struct {
		name        string
		url         string
		expectError bool
		check       func(t *testing.T, criteria FilterCriteria)
	}{
		{
			name: "Defaults",
			url:  "/api/events",
			check: func(t *testing.T, criteria FilterCriteria) {
				if criteria.Sort != "nearest" {
					t.Errorf("sort: got %q, want nearest", criteria.Sort)
				}
				if criteria.Locale != "en" {
					t.Errorf("locale: got %q, want en", criteria.Locale)
				}
			},
		},
		{
			name: "Full Query",
			url:  "/api/events?city=Praha%207&keyword=jazz&category=music&from=2025-06-01&to=2025-06-30&sort=latest&lang=cs&country=cz&page=1&size=20",
			check: func(t *testing.T, criteria FilterCriteria) {
				if criteria.City != "Praha 7" || criteria.Keyword != "jazz" || criteria.Category != "music" {
					t.Errorf("unexpected criteria: %+v", criteria)
				}
				if criteria.Sort != "latest" || criteria.Locale != "cs" || criteria.CountryCode != "CZ" {
					t.Errorf("unexpected criteria: %+v", criteria)
				}
				if criteria.DateFrom == nil || criteria.DateTo == nil {
					t.Fatal("expected both date bounds to be set")
				}
				if got := criteria.DateTo.Format("2006-01-02T15:04:05"); got != "2025-06-30T23:59:59" {
					t.Errorf("bare to date should extend to end of day, got %q", got)
				}
				if criteria.Page != 1 || criteria.Size != 20 {
					t.Errorf("paging: got page=%d size=%d", criteria.Page, criteria.Size)
				}
			},
		},
		{
			name: "Near Me With Default Radius",
			url:  "/api/events?lat=50.0755&lon=14.4378",
			check: func(t *testing.T, criteria FilterCriteria) {
				if criteria.NearMe == nil {
					t.Fatal("expected NearMe to be set")
				}
				if criteria.NearMe.RadiusKm != 50 {
					t.Errorf("radius: got %f, want the 50 km default", criteria.NearMe.RadiusKm)
				}
			},
		},
		{
			name: "Latitude Without Longitude Ignored",
			url:  "/api/events?lat=50.0755",
			check: func(t *testing.T, criteria FilterCriteria) {
				if criteria.NearMe != nil {
					t.Errorf("expected NearMe to be nil, got %+v", criteria.NearMe)
				}
			},
		},
		{name: "Invalid Sort", url: "/api/events?sort=alphabetical", expectError: true},
		{name: "Invalid From Date", url: "/api/events?from=soon", expectError: true},
		{name: "Invalid Latitude", url: "/api/events?lat=north&lon=14.4", expectError: true},
		{name: "Negative Radius", url: "/api/events?lat=50.0&lon=14.4&radius=-5", expectError: true},
		{name: "Invalid Page", url: "/api/events?page=-1", expectError: true},
		{name: "Oversized Page Size", url: "/api/events?size=1000", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			criteria, err := parseFilterCriteria(req)

			if tc.expectError {
				if err == nil {
					t.Fatal("expected an error, but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, but got: %v", err)
			}
			if tc.check != nil {
				tc.check(t, criteria)
			}
		})
	}
}

func TestHandlerEvents(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cfg, fetcher, _ := newTestAPIConfig()
		fetcher.FetchEventsFunc = func(ctx context.Context, attempt queryAttempt, criteria FilterCriteria) ([]EventRecord, error) {
			return []EventRecord{makeEvent("e1", "Jazz Night", "Prague", "2025-06-15T19:00:00Z")}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/api/events?city=Praha&lang=en", nil)
		rr := httptest.NewRecorder()
		cfg.handlerEvents(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d, want %d (body: %s)", rr.Code, http.StatusOK, rr.Body.String())
		}
		var response EventsResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if response.Query.CanonicalKey != "prague" || !response.Query.Resolved {
			t.Errorf("unexpected query echo: %+v", response.Query)
		}
		if len(response.Events) != 1 || response.Events[0].ID != "e1" {
			t.Errorf("unexpected events: %+v", response.Events)
		}
		if len(response.Attempts) == 0 {
			t.Error("expected attempt results in the response")
		}
	})

	t.Run("Upstream Exhausted Returns Empty List", func(t *testing.T) {
		cfg, fetcher, _ := newTestAPIConfig()
		fetcher.FetchEventsFunc = func(ctx context.Context, attempt queryAttempt, criteria FilterCriteria) ([]EventRecord, error) {
			return nil, errors.New("upstream down")
		}

		req := httptest.NewRequest(http.MethodGet, "/api/events?city=Brno", nil)
		rr := httptest.NewRecorder()
		cfg.handlerEvents(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
		}
		var response EventsResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(response.Events) != 0 {
			t.Errorf("expected an empty event list, got %+v", response.Events)
		}
		for _, attempt := range response.Attempts {
			if attempt.State != "failed" {
				t.Errorf("attempt %+v: expected state failed", attempt)
			}
		}
	})

	t.Run("Bad Parameters", func(t *testing.T) {
		cfg, _, _ := newTestAPIConfig()
		req := httptest.NewRequest(http.MethodGet, "/api/events?sort=alphabetical", nil)
		rr := httptest.NewRecorder()
		cfg.handlerEvents(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
		}
	})

	t.Run("Method Not Allowed", func(t *testing.T) {
		cfg, _, _ := newTestAPIConfig()
		req := httptest.NewRequest(http.MethodPost, "/api/events", nil)
		rr := httptest.NewRecorder()
		cfg.handlerEvents(rr, req)

		if rr.Code != http.StatusMethodNotAllowed {
			t.Errorf("status: got %d, want %d", rr.Code, http.StatusMethodNotAllowed)
		}
	})
}

func TestHandlerSuggest(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cfg, _, _ := newTestAPIConfig()
		req := httptest.NewRequest(http.MethodGet, "/api/suggest?q=praha&lang=cs", nil)
		rr := httptest.NewRecorder()
		cfg.handlerSuggest(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
		}
		var response SuggestResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(response.Suggestions) == 0 || response.Suggestions[0].CanonicalKey != "prague" {
			t.Errorf("unexpected suggestions: %+v", response.Suggestions)
		}
	})

	t.Run("Query Too Short", func(t *testing.T) {
		cfg, _, _ := newTestAPIConfig()
		req := httptest.NewRequest(http.MethodGet, "/api/suggest?q=p", nil)
		rr := httptest.NewRecorder()
		cfg.handlerSuggest(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
		}
	})

	t.Run("Invalid Limit", func(t *testing.T) {
		cfg, _, _ := newTestAPIConfig()
		req := httptest.NewRequest(http.MethodGet, "/api/suggest?q=praha&limit=500", nil)
		rr := httptest.NewRecorder()
		cfg.handlerSuggest(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want %d", rr.Code, http.StatusBadRequest)
		}
	})
}

func TestHandlerGeoIP(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		cfg, _, _ := newTestAPIConfig()
		cfg.geoProviders = []geoProvider{&mockGeoProvider{
			name: "primary",
			LocateFunc: func(ctx context.Context, ip string) (GeoLocation, error) {
				return GeoLocation{Latitude: 50.0755, Longitude: 14.4378, City: "Prague", CountryCode: "CZ", Source: "primary"}, nil
			},
		}}

		req := httptest.NewRequest(http.MethodGet, "/api/geoip", nil)
		req.RemoteAddr = "203.0.113.7:51234"
		rr := httptest.NewRecorder()
		cfg.handlerGeoIP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status: got %d, want %d", rr.Code, http.StatusOK)
		}
		var location GeoLocation
		if err := json.Unmarshal(rr.Body.Bytes(), &location); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if location.City != "Prague" {
			t.Errorf("unexpected location: %+v", location)
		}
	})

	t.Run("Chain Exhausted", func(t *testing.T) {
		cfg, _, _ := newTestAPIConfig()
		cfg.geoProviders = []geoProvider{&mockGeoProvider{
			name: "primary",
			LocateFunc: func(ctx context.Context, ip string) (GeoLocation, error) {
				return GeoLocation{}, errors.New("quota exceeded")
			},
		}}

		req := httptest.NewRequest(http.MethodGet, "/api/geoip", nil)
		rr := httptest.NewRecorder()
		cfg.handlerGeoIP(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Errorf("status: got %d, want %d", rr.Code, http.StatusNotFound)
		}
	})
}

func TestHandlerHealthz(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		cfg, _, _ := newTestAPIConfig()
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rr := httptest.NewRecorder()
		cfg.handlerHealthz(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("status: got %d, want %d", rr.Code, http.StatusOK)
		}
	})

	t.Run("Cache Down", func(t *testing.T) {
		cfg, _, cache := newTestAPIConfig()
		cache.pingFunc = func(ctx context.Context) error {
			return errors.New("connection refused")
		}
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rr := httptest.NewRecorder()
		cfg.handlerHealthz(rr, req)

		if rr.Code != http.StatusServiceUnavailable {
			t.Errorf("status: got %d, want %d", rr.Code, http.StatusServiceUnavailable)
		}
	})
}

func TestClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{name: "Forwarded Single Hop", remoteAddr: "10.0.0.1:443", forwarded: "203.0.113.7", want: "203.0.113.7"},
		{name: "Forwarded Chain Takes First", remoteAddr: "10.0.0.1:443", forwarded: "203.0.113.7, 10.0.0.2", want: "203.0.113.7"},
		{name: "Remote Addr Fallback", remoteAddr: "203.0.113.7:51234", want: "203.0.113.7"},
		{name: "Remote Addr Without Port", remoteAddr: "203.0.113.7", want: "203.0.113.7"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/geoip", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if got := clientIP(req); got != tc.want {
				t.Errorf("clientIP: got %q, want %q", got, tc.want)
			}
		})
	}
}
