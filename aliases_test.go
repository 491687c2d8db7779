package main

import "testing"

func TestResolveCanonicalKey(t *testing.T) {
	resolver := newCityResolver(cityAliasTable)

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Endonym", input: "Praha", expected: "prague"},
		{name: "English Exonym", input: "Prague", expected: "prague"},
		{name: "German Exonym", input: "Prag", expected: "prague"},
		{name: "Polish Exonym", input: "Praga", expected: "prague"},
		{name: "District Qualified", input: "Praha 7", expected: "prague"},
		{name: "Compound District", input: "Praha 4-Libuš", expected: "prague"},
		{name: "Uppercase With Diacritics", input: "VÍDEŇ", expected: "vienna"},
		{name: "German Endonym", input: "Wien", expected: "vienna"},
		{name: "Stroke L Alias", input: "Wrocław", expected: "wroclaw"},
		{name: "Unknown City Falls Through", input: "Horní Lideč", expected: "horni lidec"},
		{name: "Unknown With District", input: "Horní Lideč 3", expected: "horni lidec"},
		{name: "Empty", input: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolver.resolveCanonicalKey(tc.input)
			if got != tc.expected {
				t.Errorf("resolveCanonicalKey(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestAliasResolutionConsistency(t *testing.T) {
	// Every alias registered in the table must resolve to its own entry's
	// canonical key, regardless of casing.
	resolver := newCityResolver(cityAliasTable)
	for _, entry := range cityAliasTable {
		for _, alias := range entry.Aliases {
			if got := resolver.resolveCanonicalKey(alias); got != entry.CanonicalKey {
				t.Errorf("alias %q resolved to %q, want %q", alias, got, entry.CanonicalKey)
			}
		}
	}
}

func TestAliasConflictFirstRegisteredWins(t *testing.T) {
	entries := []CityAliasEntry{
		{CanonicalKey: "springfield-a", Aliases: []string{"Springfield"}},
		{CanonicalKey: "springfield-b", Aliases: []string{"Springfield"}},
	}
	resolver := newCityResolver(entries)
	if got := resolver.resolveCanonicalKey("Springfield"); got != "springfield-a" {
		t.Errorf("expected conflicting alias to resolve to first entry, got %q", got)
	}
}

func TestResolveDisplayLabel(t *testing.T) {
	resolver := newCityResolver(cityAliasTable)

	testCases := []struct {
		name     string
		key      string
		lang     string
		expected string
	}{
		{name: "Czech Label", key: "vienna", lang: "cs", expected: "Vídeň"},
		{name: "German Label", key: "prague", lang: "de", expected: "Prag"},
		{name: "Missing Language Falls Back To English", key: "kosice", lang: "pl", expected: "Košice"},
		{name: "Unknown Key Passes Through", key: "smallville", lang: "en", expected: "smallville"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolver.resolveDisplayLabel(tc.key, tc.lang)
			if got != tc.expected {
				t.Errorf("resolveDisplayLabel(%q, %q) = %q, want %q", tc.key, tc.lang, got, tc.expected)
			}
		})
	}
}

func TestResolveUpstreamCityName(t *testing.T) {
	resolver := newCityResolver(cityAliasTable)

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Endonym Becomes Exonym", input: "Plzeň", expected: "Pilsen"},
		{name: "District Collapsed First", input: "Praha 7", expected: "Prague"},
		{name: "Unknown City Passes Through Collapsed", input: "Horní Lideč 3", expected: "Horní Lideč"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolver.resolveUpstreamCityName(tc.input)
			if got != tc.expected {
				t.Errorf("resolveUpstreamCityName(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestCountryForCity(t *testing.T) {
	resolver := newCityResolver(cityAliasTable)

	if got := resolver.countryForCity("Brno"); got != "CZ" {
		t.Errorf("countryForCity(Brno) = %q, want CZ", got)
	}
	if got := resolver.countryForCity("Atlantis"); got != "" {
		t.Errorf("countryForCity(Atlantis) = %q, want empty", got)
	}
}

func TestResolveQuery(t *testing.T) {
	resolver := newCityResolver(cityAliasTable)

	t.Run("Resolved City", func(t *testing.T) {
		q := resolver.resolveQuery("Praha 7")
		if !q.Resolved {
			t.Fatal("expected query to be resolved")
		}
		if q.CanonicalKey != "prague" {
			t.Errorf("CanonicalKey = %q, want prague", q.CanonicalKey)
		}
		if q.UpstreamCityName != "Prague" {
			t.Errorf("UpstreamCityName = %q, want Prague", q.UpstreamCityName)
		}
		if q.CountryCode != "CZ" {
			t.Errorf("CountryCode = %q, want CZ", q.CountryCode)
		}
		if q.Collapsed != "praha" {
			t.Errorf("Collapsed = %q, want praha", q.Collapsed)
		}
	})

	t.Run("Unresolved City", func(t *testing.T) {
		q := resolver.resolveQuery("Horní Lideč")
		if q.Resolved {
			t.Fatal("expected query to be unresolved")
		}
		if q.CanonicalKey != "horni lidec" {
			t.Errorf("CanonicalKey = %q, want %q", q.CanonicalKey, "horni lidec")
		}
		if q.UpstreamCityName != "Horní Lideč" {
			t.Errorf("UpstreamCityName = %q, want raw collapsed form", q.UpstreamCityName)
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		q := resolver.resolveQuery("")
		if q.Resolved {
			t.Fatal("expected empty query to be unresolved")
		}
		if q.UpstreamCityName != "" {
			t.Errorf("UpstreamCityName = %q, want empty", q.UpstreamCityName)
		}
	})
}
