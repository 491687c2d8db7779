package main

import (
	"embed"
	"io"
	"log/slog"
	"strings"
	"testing"
)

//go:embed testdata/*.json
var testData embed.FS

func TestParseDiscoveryEvents(t *testing.T) {
	sampleJSON, err := testData.Open("testdata/events_search.json")
	if err != nil {
		t.Fatalf("failed to open test data: %v", err)
	}
	defer sampleJSON.Close()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	events, err := parseDiscoveryEvents(sampleJSON, "en", logger)
	if err != nil {
		t.Fatalf("parseDiscoveryEvents failed with error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	first := events[0]
	if first.ID != "Z698xZb_Z17q3qa" {
		t.Errorf("ID: got %q, want %q", first.ID, "Z698xZb_Z17q3qa")
	}
	if got := first.Title.Get("en"); got != "Jazz Night at Reduta" {
		t.Errorf("Title: got %q, want %q", got, "Jazz Night at Reduta")
	}
	if got := first.Description.Get("en"); got != "An evening of classic jazz standards in the old town." {
		t.Errorf("Description: got %q", got)
	}
	if first.DateTime != "2025-06-15T19:00:00Z" {
		t.Errorf("DateTime: got %q, want the full timestamp over the local date", first.DateTime)
	}
	if first.City != "Prague" {
		t.Errorf("City: got %q, want %q", first.City, "Prague")
	}
	if first.CountryCode != "CZ" {
		t.Errorf("CountryCode: got %q, want %q", first.CountryCode, "CZ")
	}
	if first.Category != "Music" {
		t.Errorf("Category: got %q, want %q", first.Category, "Music")
	}
	if first.Image != "https://s1.ticketm.net/dam/a/jazz-night_TABLET_LANDSCAPE_LARGE_16_9.jpg" {
		t.Errorf("Image: got %q, want the first listed image", first.Image)
	}
	if !first.HasCoords || first.Latitude != 50.0810 || first.Longitude != 14.4150 {
		t.Errorf("coordinates: got (%f, %f, HasCoords=%v)", first.Latitude, first.Longitude, first.HasCoords)
	}
	if first.Source != "ticketmaster" {
		t.Errorf("Source: got %q, want %q", first.Source, "ticketmaster")
	}

	second := events[1]
	if !strings.HasPrefix(second.ID, "synthetic-") {
		t.Errorf("expected a synthetic ID for the event without one, got %q", second.ID)
	}
	if second.DateTime != "2025-07-01" {
		t.Errorf("DateTime: got %q, want the localDate fallback %q", second.DateTime, "2025-07-01")
	}
	if second.HasCoords {
		t.Error("expected HasCoords=false for an unparseable latitude")
	}
	if second.Category != "" {
		t.Errorf("Category: got %q, want empty for missing classifications", second.Category)
	}
}

func TestParseDiscoveryEventsLocaleKeysText(t *testing.T) {
	sampleJSON, err := testData.Open("testdata/events_search.json")
	if err != nil {
		t.Fatalf("failed to open test data: %v", err)
	}
	defer sampleJSON.Close()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	events, err := parseDiscoveryEvents(sampleJSON, "cs", logger)
	if err != nil {
		t.Fatalf("parseDiscoveryEvents failed with error: %v", err)
	}
	if got := events[0].Title.Get("cs"); got != "Jazz Night at Reduta" {
		t.Errorf("expected the title keyed under the request locale, got %q", got)
	}
}

func TestParseDiscoveryEventsEmptyPage(t *testing.T) {
	sampleJSON, err := testData.Open("testdata/events_search_empty.json")
	if err != nil {
		t.Fatalf("failed to open test data: %v", err)
	}
	defer sampleJSON.Close()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	events, err := parseDiscoveryEvents(sampleJSON, "en", logger)
	if err != nil {
		t.Fatalf("expected no error for an eventless page, got %v", err)
	}
	if events == nil || len(events) != 0 {
		t.Fatalf("expected an empty slice, got %v", events)
	}
}

func TestParseDiscoveryEventsInvalidBody(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := parseDiscoveryEvents(strings.NewReader("<html>gateway timeout</html>"), "en", logger)
	if err == nil {
		t.Fatal("expected an error for a non-JSON body, but got nil")
	}
}
