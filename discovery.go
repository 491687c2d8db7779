package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// This file implements the server-side client for the Ticketmaster Discovery
// API. The client is the only place the API key lives; browsers talk to this
// service, never to the upstream directly.

// errRateLimited marks a 429 from the upstream so callers can tell throttling
// apart from other failures in logs. Either way the attempt is skipped.
var errRateLimited = errors.New("upstream rate limit exceeded")

// discoveryClient implements eventFetcher against the Discovery v2 API.
type discoveryClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

func newDiscoveryClient(baseURL, apiKey string, httpClient *http.Client, logger *slog.Logger) *discoveryClient {
	return &discoveryClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
	}
}

// buildEventsURL assembles the events search URL for one attempt. Exactly one
// of city or keyword is set per attempt; the remaining criteria (dates, sort,
// paging, geo radius) apply to every attempt equally.
func (c *discoveryClient) buildEventsURL(attempt queryAttempt, criteria FilterCriteria) (string, error) {
	base, err := url.Parse(c.baseURL + "events.json")
	if err != nil {
		return "", fmt.Errorf("failed to parse discovery base URL: %w", err)
	}

	params := base.Query()
	params.Set("apikey", c.apiKey)
	if attempt.Locale != "" {
		params.Set("locale", attempt.Locale)
	}
	if attempt.City != "" {
		params.Set("city", attempt.City)
	}
	if attempt.Keyword != "" {
		params.Set("keyword", attempt.Keyword)
	} else if attempt.City != "" && criteria.Keyword != "" {
		params.Set("keyword", criteria.Keyword)
	}
	if attempt.CountryCode != "" {
		params.Set("countryCode", attempt.CountryCode)
	}
	if criteria.DateFrom != nil {
		params.Set("startDateTime", criteria.DateFrom.UTC().Format("2006-01-02T15:04:05Z"))
	}
	if criteria.DateTo != nil {
		params.Set("endDateTime", criteria.DateTo.UTC().Format("2006-01-02T15:04:05Z"))
	}
	if criteria.Sort == "latest" {
		params.Set("sort", "date,desc")
	} else {
		params.Set("sort", "date,asc")
	}
	if criteria.NearMe != nil {
		params.Set("latlong", fmt.Sprintf("%.4f,%.4f", criteria.NearMe.Latitude, criteria.NearMe.Longitude))
		// The upstream only accepts whole-number radii. Round up so a
		// fractional radius never under-fetches before the exact distance
		// filter runs locally.
		params.Set("radius", strconv.Itoa(int(math.Ceil(criteria.NearMe.RadiusKm))))
		params.Set("unit", "km")
	}
	if criteria.Page > 0 {
		params.Set("page", strconv.Itoa(criteria.Page))
	}
	size := criteria.Size
	if size <= 0 {
		size = 50
	}
	params.Set("size", strconv.Itoa(size))

	base.RawQuery = params.Encode()
	return base.String(), nil
}

// FetchEvents issues one attempt against the Discovery API. A non-2xx status
// or a malformed body fails the attempt; it is up to the caller to move on to
// the next one.
func (c *discoveryClient) FetchEvents(ctx context.Context, attempt queryAttempt, criteria FilterCriteria) ([]EventRecord, error) {
	requestURL, err := c.buildEventsURL(attempt, criteria)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build discovery request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("discovery request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, errRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("discovery request returned status %s", resp.Status)
	}

	events, err := parseDiscoveryEvents(resp.Body, attempt.Locale, c.logger)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("discovery fetch complete",
		"kind", attempt.Kind, "locale", attempt.Locale,
		"events", len(events), "elapsed", time.Since(start).String())
	return events, nil
}
