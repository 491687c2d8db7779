package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTL constants. Event results go stale quickly (on-sale status,
// sold-out shows); suggestion lists only change when the alias table does,
// so they can live far longer.
const eventsCacheTTL = 5 * time.Minute
const suggestCacheTTL = 12 * time.Hour

// eventsCacheKey derives a stable cache key from the resolved query and the
// criteria that influence the upstream call. The canonical key (not the raw
// user spelling) keys the entry, so "Praha 7", "Prague" and "Prag" share one
// cache slot.
func eventsCacheKey(q NormalizedCityQuery, criteria FilterCriteria) string {
	parts := []string{
		"events",
		criteria.Locale,
		criteria.CountryCode,
		q.CanonicalKey,
		normalizeName(criteria.Keyword),
		normalizeName(criteria.Category),
		criteria.Sort,
		fmt.Sprintf("p%d-s%d", criteria.Page, criteria.Size),
	}
	if criteria.DateFrom != nil {
		parts = append(parts, criteria.DateFrom.UTC().Format("2006-01-02T15:04"))
	}
	if criteria.DateTo != nil {
		parts = append(parts, criteria.DateTo.UTC().Format("2006-01-02T15:04"))
	}
	if criteria.NearMe != nil {
		parts = append(parts, fmt.Sprintf("%.3f:%.3f:%.0f", criteria.NearMe.Latitude, criteria.NearMe.Longitude, criteria.NearMe.RadiusKm))
	}
	return strings.Join(parts, ":")
}

// suggestCacheKey keys the typeahead memoization by query, locale and scope.
func suggestCacheKey(query, lang, country string) string {
	return strings.Join([]string{"suggest", lang, country, normalizeName(query)}, ":")
}

// getCachedOrFetchEvents returns the cached upstream result set for a query,
// or executes the attempt plan and caches what it finds. Cache trouble is
// never fatal: a broken Redis degrades to fetching every time.
func (cfg *apiConfig) getCachedOrFetchEvents(ctx context.Context, q NormalizedCityQuery, criteria FilterCriteria) ([]EventRecord, []AttemptResult) {
	cacheKey := eventsCacheKey(q, criteria)

	cachedData, err := cfg.cache.Get(ctx, cacheKey)
	if err == nil {
		var events []EventRecord
		if jsonErr := json.Unmarshal([]byte(cachedData), &events); jsonErr == nil {
			cfg.logger.Debug("cache hit", "key", cacheKey)
			cacheHitsTotal.WithLabelValues("events").Inc()
			return events, nil
		}
		cfg.logger.Warn("invalid cache entry, refetching", "key", cacheKey)
	} else if err != redis.Nil {
		cfg.logger.Warn("error getting from redis", "key", cacheKey, "error", err)
	}
	cacheMissesTotal.WithLabelValues("events").Inc()

	attempts := cfg.planAttempts(q, criteria)
	events, results := cfg.executeAttempts(ctx, attempts, criteria)
	if events == nil {
		events = []EventRecord{}
	}

	if len(events) > 0 {
		if cacheErr := cfg.cache.Set(ctx, cacheKey, events, eventsCacheTTL); cacheErr != nil {
			cfg.logger.Warn("error setting to redis", "key", cacheKey, "error", cacheErr)
		}
	}

	return events, results
}

// getCachedOrComputeSuggestions memoizes suggestion lists per query, locale
// and country scope.
func (cfg *apiConfig) getCachedOrComputeSuggestions(ctx context.Context, query, lang, country string, limit int) []CitySuggestion {
	cacheKey := suggestCacheKey(query, lang, country)

	cachedData, err := cfg.cache.Get(ctx, cacheKey)
	if err == nil {
		var suggestions []CitySuggestion
		if jsonErr := json.Unmarshal([]byte(cachedData), &suggestions); jsonErr == nil {
			cacheHitsTotal.WithLabelValues("suggest").Inc()
			return suggestions
		}
	} else if err != redis.Nil {
		cfg.logger.Warn("error getting from redis", "key", cacheKey, "error", err)
	}
	cacheMissesTotal.WithLabelValues("suggest").Inc()

	suggestions := cfg.resolver.suggest(query, lang, country, limit)

	if cacheErr := cfg.cache.Set(ctx, cacheKey, suggestions, suggestCacheTTL); cacheErr != nil {
		cfg.logger.Warn("error setting to redis", "key", cacheKey, "error", cacheErr)
	}
	return suggestions
}
