package main

import "strings"

// The alias resolver maps a free-text, multilingual city string to a stable
// canonical identity. Events reported under "Praha 7", "Prague", "Prag" and
// "Praga" all have to merge into one city before filtering and deduplication
// make any sense. Unknown cities are not an error: they pass through with
// their normalized-collapsed form as a best-effort key, and matching falls
// back to string comparison. That degraded path is the common case for the
// long tail of smaller cities.

type cityResolver struct {
	entries []CityAliasEntry
	byAlias map[string]*CityAliasEntry
	byKey   map[string]*CityAliasEntry
}

// newCityResolver indexes the alias table. Every alias is registered under
// its normalized form; if two entries claim the same alias, the first
// registration wins so resolution stays deterministic.
func newCityResolver(entries []CityAliasEntry) *cityResolver {
	r := &cityResolver{
		entries: entries,
		byAlias: make(map[string]*CityAliasEntry),
		byKey:   make(map[string]*CityAliasEntry),
	}
	for i := range r.entries {
		entry := &r.entries[i]
		if _, exists := r.byKey[entry.CanonicalKey]; !exists {
			r.byKey[entry.CanonicalKey] = entry
		}
		for _, alias := range entry.Aliases {
			normalized := normalizeName(alias)
			if normalized == "" {
				continue
			}
			if _, exists := r.byAlias[normalized]; !exists {
				r.byAlias[normalized] = entry
			}
		}
		key := normalizeName(entry.CanonicalKey)
		if _, exists := r.byAlias[key]; !exists {
			r.byAlias[key] = entry
		}
	}
	return r
}

// lookup normalizes and district-collapses the input, then consults the
// alias index. The second return reports whether a curated entry matched.
func (r *cityResolver) lookup(input string) (*CityAliasEntry, string) {
	collapsed := collapseToBaseCity(normalizeName(input))
	if collapsed == "" {
		return nil, ""
	}
	if entry, ok := r.byAlias[collapsed]; ok {
		return entry, collapsed
	}
	return nil, collapsed
}

// resolveCanonicalKey returns the canonical identity key for a city string,
// or the normalized-collapsed form itself when no table entry matches.
func (r *cityResolver) resolveCanonicalKey(input string) string {
	entry, collapsed := r.lookup(input)
	if entry != nil {
		return entry.CanonicalKey
	}
	return collapsed
}

// resolveDisplayLabel returns the display form of a canonical key in the
// requested language, falling back to English and then to the key itself.
func (r *cityResolver) resolveDisplayLabel(canonicalKey, lang string) string {
	entry, ok := r.byKey[canonicalKey]
	if !ok {
		return canonicalKey
	}
	if label, ok := entry.Display[lang]; ok && label != "" {
		return label
	}
	if label, ok := entry.Display["en"]; ok && label != "" {
		return label
	}
	return entry.CanonicalKey
}

// resolveUpstreamCityName returns the name to send to the upstream search
// engine: the curated English-leaning exonym for a recognized city, or the
// collapsed raw input otherwise.
func (r *cityResolver) resolveUpstreamCityName(input string) string {
	entry, _ := r.lookup(input)
	if entry != nil && entry.UpstreamName != "" {
		return entry.UpstreamName
	}
	return collapseToBaseCity(strings.TrimSpace(input))
}

// countryForCity infers the ISO country code for a recognized city. Empty
// for unknown cities, which leaves any explicit country filter in force.
func (r *cityResolver) countryForCity(input string) string {
	entry, _ := r.lookup(input)
	if entry != nil {
		return entry.CountryCode
	}
	return ""
}

// resolveQuery derives the full per-request view of a raw city string.
func (r *cityResolver) resolveQuery(raw string) NormalizedCityQuery {
	entry, collapsed := r.lookup(raw)
	q := NormalizedCityQuery{
		Raw:       raw,
		Collapsed: collapsed,
	}
	if entry != nil {
		q.CanonicalKey = entry.CanonicalKey
		q.Resolved = true
		q.UpstreamCityName = entry.UpstreamName
		q.CountryCode = entry.CountryCode
		if q.UpstreamCityName == "" {
			q.UpstreamCityName = entry.CanonicalKey
		}
		return q
	}
	q.CanonicalKey = collapsed
	q.UpstreamCityName = collapseToBaseCity(strings.TrimSpace(raw))
	return q
}
