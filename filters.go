package main

import (
	"math"
	"sort"
	"strings"
	"time"
)

// applyFilters runs the full filter pipeline over an event list: category,
// city identity, keyword, date range and geo radius, then deduplication and
// sorting. Every step produces a new slice; input records are never mutated,
// so calling twice with identical inputs yields identical output.
func (r *cityResolver) applyFilters(events []EventRecord, criteria FilterCriteria) []EventRecord {
	filtered := make([]EventRecord, 0, len(events))

	queryKey := ""
	if criteria.City != "" {
		queryKey = r.resolveCanonicalKey(criteria.City)
	}
	categoryKey := normalizeName(criteria.Category)
	keywordKey := normalizeName(criteria.Keyword)

	for _, event := range events {
		if categoryKey != "" && normalizeName(event.Category) != categoryKey {
			continue
		}
		if queryKey != "" && !r.matchesCity(event, queryKey) {
			continue
		}
		if keywordKey != "" && !matchesKeyword(event, keywordKey, criteria.Locale) {
			continue
		}
		if !matchesDateRange(event, criteria.DateFrom, criteria.DateTo) {
			continue
		}
		if criteria.NearMe != nil && !matchesRadius(event, criteria.NearMe) {
			continue
		}
		filtered = append(filtered, event)
	}

	filtered = dedupEvents(filtered)
	sortEvents(filtered, criteria.Sort)
	return filtered
}

// matchesCity resolves the event's reported city through the same alias
// table as the query and compares identity keys: exact equality, or
// substring containment in either direction. The containment fallback
// handles multi-word upstream labels ("hlavni mesto praha") wrapping a short
// query key and vice versa. Events with no usable city are excluded whenever
// a city filter is active.
func (r *cityResolver) matchesCity(event EventRecord, queryKey string) bool {
	if strings.TrimSpace(event.City) == "" {
		return false
	}
	eventKey := r.resolveCanonicalKey(event.City)
	if eventKey == "" {
		return false
	}
	if eventKey == queryKey {
		return true
	}
	return strings.Contains(eventKey, queryKey) || strings.Contains(queryKey, eventKey)
}

// matchesKeyword checks a normalized substring match against the event title
// or description in the active display locale, with LocalizedText handling
// the language fallbacks.
func matchesKeyword(event EventRecord, keywordKey, locale string) bool {
	title := normalizeName(event.Title.Get(locale))
	if strings.Contains(title, keywordKey) {
		return true
	}
	description := normalizeName(event.Description.Get(locale))
	return description != "" && strings.Contains(description, keywordKey)
}

// matchesDateRange applies inclusive bounds on the event datetime. An event
// whose datetime is missing or unparseable is excluded when either bound is
// active, since its position relative to the range is unknowable.
func matchesDateRange(event EventRecord, from, to *time.Time) bool {
	if from == nil && to == nil {
		return true
	}
	ts, ok := parseEventTime(event.DateTime)
	if !ok {
		return false
	}
	if from != nil && ts.Before(*from) {
		return false
	}
	if to != nil && ts.After(*to) {
		return false
	}
	return true
}

// matchesRadius includes events within the haversine distance of the origin,
// boundary inclusive. Events lacking coordinates are excluded while the
// filter is active.
func matchesRadius(event EventRecord, nearMe *NearMeFilter) bool {
	if !event.HasCoords {
		return false
	}
	distance := haversineKm(nearMe.Latitude, nearMe.Longitude, event.Latitude, event.Longitude)
	return distance <= nearMe.RadiusKm
}

// eventTimeLayouts covers the datetime shapes the upstream actually emits,
// from full RFC3339 down to a bare date.
var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseEventTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range eventTimeLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// eventIdentity derives the deduplication key: the upstream ID when present,
// otherwise a composite of URL, title and city.
func eventIdentity(event EventRecord) string {
	if event.ID != "" {
		return event.ID
	}
	return event.URL + "|" + event.Title.Get("en") + "|" + normalizeName(event.City)
}

// dedupEvents removes duplicate identities preserving first-seen order.
func dedupEvents(events []EventRecord) []EventRecord {
	seen := make(map[string]bool, len(events))
	out := make([]EventRecord, 0, len(events))
	for _, event := range events {
		id := eventIdentity(event)
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, event)
	}
	return out
}

// sortEvents orders by datetime: ascending for "nearest", descending for
// "latest". Events with a missing or unparseable datetime always sort last
// under both orders, so broken upstream data never floats to the top of the
// page.
func sortEvents(events []EventRecord, order string) {
	descending := order == "latest"
	sort.SliceStable(events, func(i, j int) bool {
		ti, okI := parseEventTime(events[i].DateTime)
		tj, okJ := parseEventTime(events[j].DateTime)
		if okI != okJ {
			return okI
		}
		if !okI {
			return false
		}
		if descending {
			return ti.After(tj)
		}
		return ti.Before(tj)
	})
}

const earthRadiusKm = 6371

// haversineKm computes the great-circle distance between two points.
func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	rLat1 := lat1 * math.Pi / 180
	rLat2 := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
