package main

import (
	"sort"
	"strings"
)

// Suggestion scoring tiers. Exact alias matches outrank prefix matches,
// which outrank bare substring hits; the entry priority breaks ties so
// capitals surface above same-named smaller places.
const (
	scoreExact     = 100
	scorePrefix    = 80
	scoreSubstring = 60
)

const minSuggestQueryLength = 2

// suggest returns ranked typeahead candidates for a partial city query.
// Candidates are clustered by canonical key, so matching three spellings of
// Prague still yields one Prague suggestion, scored by its best alias match.
func (r *cityResolver) suggest(query, lang, country string, limit int) []CitySuggestion {
	normalized := normalizeName(query)
	if len(normalized) < minSuggestQueryLength {
		return []CitySuggestion{}
	}
	if limit <= 0 {
		limit = 10
	}

	best := make(map[string]int)
	for alias, entry := range r.byAlias {
		if country != "" && !strings.EqualFold(entry.CountryCode, country) {
			continue
		}
		var score int
		switch {
		case alias == normalized:
			score = scoreExact
		case strings.HasPrefix(alias, normalized):
			score = scorePrefix
		case strings.Contains(alias, normalized):
			score = scoreSubstring
		default:
			continue
		}
		score += entry.Priority
		if score > best[entry.CanonicalKey] {
			best[entry.CanonicalKey] = score
		}
	}

	suggestions := make([]CitySuggestion, 0, len(best))
	for key, score := range best {
		entry := r.byKey[key]
		suggestions = append(suggestions, CitySuggestion{
			Label:        r.resolveDisplayLabel(key, lang),
			CanonicalKey: key,
			CountryCode:  entry.CountryCode,
			Latitude:     entry.Latitude,
			Longitude:    entry.Longitude,
			Score:        score,
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].Label < suggestions[j].Label
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
