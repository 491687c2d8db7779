package main

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// This file contains the main HTTP handlers. Each handler parses its query
// parameters, calls into the resolver/planner/filter pipeline, and writes a
// JSON response. Per the error policy, upstream trouble surfaces to the
// client as an empty event list, never as a 5xx.

// parseFilterCriteria extracts the active query from request parameters.
// Only parameter syntax can fail here (bad dates, bad coordinates); an
// unknown city is not an error.
func parseFilterCriteria(r *http.Request) (FilterCriteria, error) {
	query := r.URL.Query()

	criteria := FilterCriteria{
		City:        strings.TrimSpace(query.Get("city")),
		Keyword:     strings.TrimSpace(query.Get("keyword")),
		Category:    strings.TrimSpace(query.Get("category")),
		CountryCode: strings.ToUpper(strings.TrimSpace(query.Get("country"))),
		Locale:      strings.TrimSpace(query.Get("lang")),
	}
	if criteria.Locale == "" {
		criteria.Locale = "en"
	}

	switch query.Get("sort") {
	case "", "nearest":
		criteria.Sort = "nearest"
	case "latest":
		criteria.Sort = "latest"
	default:
		return FilterCriteria{}, fmt.Errorf("invalid sort %q: must be nearest or latest", query.Get("sort"))
	}

	if fromStr := query.Get("from"); fromStr != "" {
		from, ok := parseEventTime(fromStr)
		if !ok {
			return FilterCriteria{}, fmt.Errorf("invalid from date %q", fromStr)
		}
		criteria.DateFrom = &from
	}
	if toStr := query.Get("to"); toStr != "" {
		to, ok := parseEventTime(toStr)
		if !ok {
			return FilterCriteria{}, fmt.Errorf("invalid to date %q", toStr)
		}
		// A bare date upper bound means "through the end of that day".
		if len(toStr) == len("2006-01-02") {
			to = to.Add(24*time.Hour - time.Second)
		}
		criteria.DateTo = &to
	}

	latStr, lonStr := query.Get("lat"), query.Get("lon")
	if latStr != "" && lonStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return FilterCriteria{}, fmt.Errorf("invalid latitude: %v", err)
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return FilterCriteria{}, fmt.Errorf("invalid longitude: %v", err)
		}
		radius := 50.0
		if radiusStr := query.Get("radius"); radiusStr != "" {
			radius, err = strconv.ParseFloat(radiusStr, 64)
			if err != nil || radius <= 0 {
				return FilterCriteria{}, fmt.Errorf("invalid radius %q", radiusStr)
			}
		}
		criteria.NearMe = &NearMeFilter{Latitude: lat, Longitude: lon, RadiusKm: radius}
	}

	if pageStr := query.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 0 {
			return FilterCriteria{}, fmt.Errorf("invalid page %q", pageStr)
		}
		criteria.Page = page
	}
	if sizeStr := query.Get("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size <= 0 || size > 200 {
			return FilterCriteria{}, fmt.Errorf("invalid size %q", sizeStr)
		}
		criteria.Size = size
	}

	return criteria, nil
}

// handlerEvents runs the full pipeline: resolve the city, plan and execute
// upstream attempts (through the cache), filter, respond.
func (cfg *apiConfig) handlerEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	criteria, err := parseFilterCriteria(r)
	if err != nil {
		cfg.respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	q := cfg.resolver.resolveQuery(criteria.City)
	cfg.logger.Debug("events request",
		"city", criteria.City, "canonical_key", q.CanonicalKey, "resolved", q.Resolved, "locale", criteria.Locale)

	events, attempts := cfg.getCachedOrFetchEvents(ctx, q, criteria)
	filtered := cfg.resolver.applyFilters(events, criteria)

	if attempts == nil {
		attempts = []AttemptResult{}
	}
	cfg.respondWithJSON(w, http.StatusOK, EventsResponse{
		Query:    q,
		Attempts: attempts,
		Events:   filtered,
	})
}

// handlerSuggest serves ranked typeahead candidates for a partial city query.
func (cfg *apiConfig) handlerSuggest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(query) < minSuggestQueryLength {
		cfg.respondWithError(w, http.StatusBadRequest,
			fmt.Sprintf("query must be at least %d characters", minSuggestQueryLength), nil)
		return
	}
	lang := strings.TrimSpace(r.URL.Query().Get("lang"))
	if lang == "" {
		lang = "en"
	}
	country := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("country")))

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 || parsed > 50 {
			cfg.respondWithError(w, http.StatusBadRequest, fmt.Sprintf("invalid limit %q", limitStr), nil)
			return
		}
		limit = parsed
	}

	suggestions := cfg.getCachedOrComputeSuggestions(ctx, query, lang, country, limit)
	cfg.respondWithJSON(w, http.StatusOK, SuggestResponse{
		Query:       query,
		Suggestions: suggestions,
	})
}

// handlerGeoIP resolves the requester's approximate position through the
// provider chain. 404 means the whole chain failed, which the frontend
// treats the same as a declined browser geolocation prompt.
func (cfg *apiConfig) handlerGeoIP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != http.MethodGet {
		cfg.respondWithError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
		return
	}

	location, err := cfg.locateIP(ctx, clientIP(r))
	if err != nil {
		cfg.respondWithError(w, http.StatusNotFound, "could not resolve location", err)
		return
	}
	cfg.respondWithJSON(w, http.StatusOK, location)
}

// handlerHealthz reports liveness and Redis connectivity.
func (cfg *apiConfig) handlerHealthz(w http.ResponseWriter, r *http.Request) {
	if err := cfg.cache.Ping(r.Context()); err != nil {
		cfg.respondWithError(w, http.StatusServiceUnavailable, "cache unavailable", err)
		return
	}
	cfg.respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// clientIP extracts the originating client address, preferring the first
// X-Forwarded-For hop set by the edge.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if first, _, ok := strings.Cut(forwarded, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(forwarded)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
