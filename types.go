package main

import "time"

// LocalizedText holds a value in one or more display languages, keyed by
// language code ("en", "cs", ...). Upstream payloads are inconsistent about
// which languages they carry, so lookups always fall back.
type LocalizedText map[string]string

// Get returns the value for lang, falling back to English and then to any
// available language (smallest key first, so the fallback is deterministic).
func (lt LocalizedText) Get(lang string) string {
	if lt == nil {
		return ""
	}
	if v, ok := lt[lang]; ok && v != "" {
		return v
	}
	if v, ok := lt["en"]; ok && v != "" {
		return v
	}
	var bestKey, bestVal string
	for k, v := range lt {
		if v == "" {
			continue
		}
		if bestKey == "" || k < bestKey {
			bestKey, bestVal = k, v
		}
	}
	return bestVal
}

// EventRecord is the single normalized shape every upstream event is mapped
// into at the system boundary. The filter pipeline only ever sees this type.
type EventRecord struct {
	ID          string        `json:"id"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description,omitempty"`
	DateTime    string        `json:"datetime"`
	City        string        `json:"city"`
	CountryCode string        `json:"country_code,omitempty"`
	Latitude    float64       `json:"latitude,omitempty"`
	Longitude   float64       `json:"longitude,omitempty"`
	HasCoords   bool          `json:"has_coords"`
	Category    string        `json:"category,omitempty"`
	URL         string        `json:"url,omitempty"`
	Image       string        `json:"image,omitempty"`
	Source      string        `json:"source"`
}

// NearMeFilter is a geographic radius constraint around a resolved origin.
type NearMeFilter struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// FilterCriteria is the active query a user is running. NearMe and City are
// mutually exclusive in intent, but the filter tolerates both being set and
// simply applies both constraints.
type FilterCriteria struct {
	City        string
	Keyword     string
	Category    string
	DateFrom    *time.Time
	DateTo      *time.Time
	Sort        string // "nearest" or "latest"
	CountryCode string
	Locale      string
	NearMe      *NearMeFilter
	Page        int
	Size        int
}

// CityAliasEntry describes one city's known multilingual spelling set.
// Aliases are matched after normalization; every alias maps to exactly one
// canonical key (first registration wins on conflicts).
type CityAliasEntry struct {
	CanonicalKey string
	CountryCode  string
	// UpstreamName is the query-friendly exonym sent to the upstream search
	// engine, which matches best on English-leaning names.
	UpstreamName string
	Latitude     float64
	Longitude    float64
	Display      map[string]string
	Aliases      []string
	// Priority biases suggestion ranking towards bigger cities.
	Priority int
}

// NormalizedCityQuery is derived fresh from raw user input on every request.
type NormalizedCityQuery struct {
	Raw              string `json:"raw"`
	Collapsed        string `json:"collapsed"`
	CanonicalKey     string `json:"canonical_key"`
	Resolved         bool   `json:"resolved"`
	UpstreamCityName string `json:"upstream_city_name"`
	CountryCode      string `json:"country_code,omitempty"`
}

// CitySuggestion is one ranked typeahead candidate.
type CitySuggestion struct {
	Label        string  `json:"label"`
	CanonicalKey string  `json:"canonical_key"`
	CountryCode  string  `json:"country_code"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Score        int     `json:"score"`
}

// GeoLocation is a resolved requester position from the IP-geolocation chain.
type GeoLocation struct {
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lon"`
	City        string  `json:"city,omitempty"`
	CountryCode string  `json:"country_code,omitempty"`
	Source      string  `json:"source"`
}

// EventsResponse is the JSON shape served by the events endpoint.
type EventsResponse struct {
	Query    NormalizedCityQuery `json:"query"`
	Attempts []AttemptResult     `json:"attempts"`
	Events   []EventRecord       `json:"events"`
}

// AttemptResult summarizes one executed upstream attempt for the response.
type AttemptResult struct {
	Kind   string `json:"kind"`
	Locale string `json:"locale"`
	State  string `json:"state"`
	Count  int    `json:"count"`
}

// SuggestResponse is the JSON shape served by the suggestion endpoint.
type SuggestResponse struct {
	Query       string           `json:"query"`
	Suggestions []CitySuggestion `json:"suggestions"`
}
