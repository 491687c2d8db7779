package main

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// The upstream search engine's city-field matching is unreliable for
// non-English and district-qualified names. The planner therefore builds an
// ordered list of attempts (strict city match, keyword fallback, broad) and
// the executor walks them across a locale-fallback chain, stopping at the
// first attempt that yields events. Everything that can go wrong with a
// single call degrades to "try the next one"; an exhausted plan is an empty
// result, never an error.

type attemptState int

const (
	statePending attemptState = iota
	stateInFlight
	stateSucceeded
	stateFailed
)

func (s attemptState) String() string {
	switch s {
	case statePending:
		return "pending"
	case stateInFlight:
		return "in_flight"
	case stateSucceeded:
		return "succeeded"
	case stateFailed:
		return "failed"
	}
	return "unknown"
}

// queryAttempt describes one upstream call the executor may issue.
type queryAttempt struct {
	Kind        string // "city", "keyword" or "broad"
	City        string
	Keyword     string
	CountryCode string
	Locale      string
	state       attemptState
}

// eventFetcher issues one upstream call for an attempt. The production
// implementation is the Discovery API client; tests substitute their own.
type eventFetcher interface {
	FetchEvents(ctx context.Context, attempt queryAttempt, criteria FilterCriteria) ([]EventRecord, error)
}

// planAttempts builds the ordered attempt list for a resolved city query.
//
// With a city filter: (a) exact city match against the resolved upstream
// name, constrained by the city's own country when known, and (b) a keyword
// attempt reusing the city name, because keyword search sometimes finds
// venues that strict city search misses. A recognized city implies its own
// country scope, so a contradicting explicit country filter is not applied
// on top of it. Without a city filter there is a single broad attempt,
// optionally constrained by an explicitly supplied country code.
func (cfg *apiConfig) planAttempts(q NormalizedCityQuery, criteria FilterCriteria) []queryAttempt {
	if q.UpstreamCityName == "" {
		attempt := queryAttempt{Kind: "broad", CountryCode: criteria.CountryCode}
		if criteria.Keyword != "" {
			attempt.Keyword = criteria.Keyword
		}
		return []queryAttempt{attempt}
	}

	country := q.CountryCode
	if country == "" {
		country = criteria.CountryCode
	}

	return []queryAttempt{
		{Kind: "city", City: q.UpstreamCityName, CountryCode: country},
		{Kind: "keyword", Keyword: q.UpstreamCityName, CountryCode: country},
	}
}

// localeChain returns the deduplicated upstream locale fallback order for a
// requested display locale.
func localeChain(requested string) []string {
	chain := []string{requested, "cs", "en"}
	seen := make(map[string]bool, len(chain))
	out := make([]string, 0, len(chain))
	for _, locale := range chain {
		if locale == "" || seen[locale] {
			continue
		}
		seen[locale] = true
		out = append(out, locale)
	}
	return out
}

// executeAttempts drives the attempt list through its state machine: for
// each locale in the fallback chain, each attempt moves pending → in_flight
// → succeeded/failed. The first non-empty result list short-circuits the
// whole plan. Failed calls (timeouts, 429s, any non-2xx, malformed bodies)
// are logged and skipped, never retried.
func (cfg *apiConfig) executeAttempts(ctx context.Context, attempts []queryAttempt, criteria FilterCriteria) ([]EventRecord, []AttemptResult) {
	planID := uuid.New().String()
	locales := localeChain(criteria.Locale)
	results := make([]AttemptResult, 0, len(attempts)*len(locales))

	for _, locale := range locales {
		for _, attempt := range attempts {
			attempt.Locale = locale
			attempt.state = stateInFlight

			callCtx, cancel := context.WithTimeout(ctx, cfg.upstreamTimeout)
			start := time.Now()
			events, err := cfg.fetcher.FetchEvents(callCtx, attempt, criteria)
			cancel()

			outcome := "empty"
			if err != nil {
				attempt.state = stateFailed
				outcome = "error"
				cfg.logger.Warn("upstream attempt failed",
					"plan_id", planID, "kind", attempt.Kind, "locale", locale, "error", err)
			} else if len(events) > 0 {
				attempt.state = stateSucceeded
				outcome = "success"
			} else {
				attempt.state = stateFailed
				cfg.logger.Debug("upstream attempt returned no events",
					"plan_id", planID, "kind", attempt.Kind, "locale", locale)
			}

			upstreamAttemptsTotal.WithLabelValues(attempt.Kind, locale, outcome).Inc()
			upstreamAttemptDuration.WithLabelValues(attempt.Kind).Observe(time.Since(start).Seconds())

			results = append(results, AttemptResult{
				Kind:   attempt.Kind,
				Locale: locale,
				State:  attempt.state.String(),
				Count:  len(events),
			})

			if attempt.state == stateSucceeded {
				cfg.logger.Debug("upstream attempt succeeded",
					"plan_id", planID, "kind", attempt.Kind, "locale", locale, "events", len(events))
				return events, results
			}
		}
	}

	return nil, results
}
