package main

// cityAliasTable is the hand-curated multilingual spelling set for the cities
// the site actually markets in. It is deliberately small: the resolver
// degrades gracefully for anything not listed here, so the table only needs
// the cities whose exonyms genuinely diverge across languages.
//
// Aliases are matched after normalization, so diacritics and casing in this
// table are cosmetic.
var cityAliasTable = []CityAliasEntry{
	{
		CanonicalKey: "prague",
		CountryCode:  "CZ",
		UpstreamName: "Prague",
		Latitude:     50.0755,
		Longitude:    14.4378,
		Display:      map[string]string{"en": "Prague", "cs": "Praha", "de": "Prag", "pl": "Praga"},
		Aliases:      []string{"Praha", "Prague", "Prag", "Praga", "Prága"},
		Priority:     100,
	},
	{
		CanonicalKey: "brno",
		CountryCode:  "CZ",
		UpstreamName: "Brno",
		Latitude:     49.1951,
		Longitude:    16.6068,
		Display:      map[string]string{"en": "Brno", "cs": "Brno", "de": "Brünn"},
		Aliases:      []string{"Brno", "Brünn", "Berno"},
		Priority:     70,
	},
	{
		CanonicalKey: "ostrava",
		CountryCode:  "CZ",
		UpstreamName: "Ostrava",
		Latitude:     49.8209,
		Longitude:    18.2625,
		Display:      map[string]string{"en": "Ostrava", "cs": "Ostrava", "de": "Ostrau"},
		Aliases:      []string{"Ostrava", "Ostrau", "Ostrawa"},
		Priority:     60,
	},
	{
		CanonicalKey: "plzen",
		CountryCode:  "CZ",
		UpstreamName: "Pilsen",
		Latitude:     49.7384,
		Longitude:    13.3736,
		Display:      map[string]string{"en": "Pilsen", "cs": "Plzeň", "de": "Pilsen"},
		Aliases:      []string{"Plzeň", "Pilsen", "Plzen", "Pilzno"},
		Priority:     50,
	},
	{
		CanonicalKey: "olomouc",
		CountryCode:  "CZ",
		UpstreamName: "Olomouc",
		Latitude:     49.5938,
		Longitude:    17.2509,
		Display:      map[string]string{"en": "Olomouc", "cs": "Olomouc", "de": "Olmütz"},
		Aliases:      []string{"Olomouc", "Olmütz", "Ołomuniec"},
		Priority:     40,
	},
	{
		CanonicalKey: "vienna",
		CountryCode:  "AT",
		UpstreamName: "Vienna",
		Latitude:     48.2082,
		Longitude:    16.3738,
		Display:      map[string]string{"en": "Vienna", "cs": "Vídeň", "de": "Wien", "pl": "Wiedeń"},
		Aliases:      []string{"Wien", "Vienna", "Vídeň", "Wiedeń", "Bécs", "Vienne", "Viena"},
		Priority:     100,
	},
	{
		CanonicalKey: "bratislava",
		CountryCode:  "SK",
		UpstreamName: "Bratislava",
		Latitude:     48.1486,
		Longitude:    17.1077,
		Display:      map[string]string{"en": "Bratislava", "cs": "Bratislava", "de": "Pressburg"},
		Aliases:      []string{"Bratislava", "Pressburg", "Preßburg", "Pozsony", "Prešporok"},
		Priority:     80,
	},
	{
		CanonicalKey: "kosice",
		CountryCode:  "SK",
		UpstreamName: "Kosice",
		Latitude:     48.7164,
		Longitude:    21.2611,
		Display:      map[string]string{"en": "Košice", "cs": "Košice", "de": "Kaschau"},
		Aliases:      []string{"Košice", "Kosice", "Kaschau", "Kassa"},
		Priority:     50,
	},
	{
		CanonicalKey: "budapest",
		CountryCode:  "HU",
		UpstreamName: "Budapest",
		Latitude:     47.4979,
		Longitude:    19.0402,
		Display:      map[string]string{"en": "Budapest", "cs": "Budapešť", "de": "Budapest", "pl": "Budapeszt"},
		Aliases:      []string{"Budapest", "Budapešť", "Budapeszt", "Budapesta"},
		Priority:     90,
	},
	{
		CanonicalKey: "warsaw",
		CountryCode:  "PL",
		UpstreamName: "Warsaw",
		Latitude:     52.2297,
		Longitude:    21.0122,
		Display:      map[string]string{"en": "Warsaw", "cs": "Varšava", "de": "Warschau", "pl": "Warszawa"},
		Aliases:      []string{"Warszawa", "Warsaw", "Warschau", "Varšava", "Varsovie", "Varsovia"},
		Priority:     90,
	},
	{
		CanonicalKey: "krakow",
		CountryCode:  "PL",
		UpstreamName: "Krakow",
		Latitude:     50.0647,
		Longitude:    19.945,
		Display:      map[string]string{"en": "Krakow", "cs": "Krakov", "de": "Krakau", "pl": "Kraków"},
		Aliases:      []string{"Kraków", "Krakow", "Krakau", "Krakov", "Cracow", "Cracovie"},
		Priority:     80,
	},
	{
		CanonicalKey: "wroclaw",
		CountryCode:  "PL",
		UpstreamName: "Wroclaw",
		Latitude:     51.1079,
		Longitude:    17.0385,
		Display:      map[string]string{"en": "Wroclaw", "cs": "Vratislav", "de": "Breslau", "pl": "Wrocław"},
		Aliases:      []string{"Wrocław", "Wroclaw", "Breslau", "Vratislav"},
		Priority:     60,
	},
	{
		CanonicalKey: "gdansk",
		CountryCode:  "PL",
		UpstreamName: "Gdansk",
		Latitude:     54.352,
		Longitude:    18.6466,
		Display:      map[string]string{"en": "Gdansk", "de": "Danzig", "pl": "Gdańsk"},
		Aliases:      []string{"Gdańsk", "Gdansk", "Danzig", "Gdaňsk"},
		Priority:     50,
	},
	{
		CanonicalKey: "berlin",
		CountryCode:  "DE",
		UpstreamName: "Berlin",
		Latitude:     52.52,
		Longitude:    13.405,
		Display:      map[string]string{"en": "Berlin", "cs": "Berlín", "de": "Berlin", "pl": "Berlin"},
		Aliases:      []string{"Berlin", "Berlín"},
		Priority:     100,
	},
	{
		CanonicalKey: "munich",
		CountryCode:  "DE",
		UpstreamName: "Munich",
		Latitude:     48.1351,
		Longitude:    11.582,
		Display:      map[string]string{"en": "Munich", "cs": "Mnichov", "de": "München", "pl": "Monachium"},
		Aliases:      []string{"München", "Munich", "Muenchen", "Mnichov", "Monachium", "Monaco di Baviera"},
		Priority:     90,
	},
	{
		CanonicalKey: "cologne",
		CountryCode:  "DE",
		UpstreamName: "Cologne",
		Latitude:     50.9375,
		Longitude:    6.9603,
		Display:      map[string]string{"en": "Cologne", "cs": "Kolín nad Rýnem", "de": "Köln", "pl": "Kolonia"},
		Aliases:      []string{"Köln", "Cologne", "Koeln", "Kolonia", "Colonia", "Kolín nad Rýnem"},
		Priority:     70,
	},
	{
		CanonicalKey: "dresden",
		CountryCode:  "DE",
		UpstreamName: "Dresden",
		Latitude:     51.0504,
		Longitude:    13.7373,
		Display:      map[string]string{"en": "Dresden", "cs": "Drážďany", "de": "Dresden", "pl": "Drezno"},
		Aliases:      []string{"Dresden", "Drážďany", "Drezno"},
		Priority:     50,
	},
	{
		CanonicalKey: "frankfurt",
		CountryCode:  "DE",
		UpstreamName: "Frankfurt",
		Latitude:     50.1109,
		Longitude:    8.6821,
		Display:      map[string]string{"en": "Frankfurt", "cs": "Frankfurt nad Mohanem", "de": "Frankfurt am Main"},
		Aliases:      []string{"Frankfurt", "Frankfurt am Main", "Frankfurt nad Mohanem", "Frankfurt a.M."},
		Priority:     70,
	},
	{
		CanonicalKey: "paris",
		CountryCode:  "FR",
		UpstreamName: "Paris",
		Latitude:     48.8566,
		Longitude:    2.3522,
		Display:      map[string]string{"en": "Paris", "cs": "Paříž", "de": "Paris", "pl": "Paryż"},
		Aliases:      []string{"Paris", "Paříž", "Paryż", "Parigi", "París"},
		Priority:     100,
	},
	{
		CanonicalKey: "london",
		CountryCode:  "GB",
		UpstreamName: "London",
		Latitude:     51.5074,
		Longitude:    -0.1278,
		Display:      map[string]string{"en": "London", "cs": "Londýn", "de": "London", "pl": "Londyn"},
		Aliases:      []string{"London", "Londýn", "Londyn", "Londres", "Londra"},
		Priority:     100,
	},
	{
		CanonicalKey: "rome",
		CountryCode:  "IT",
		UpstreamName: "Rome",
		Latitude:     41.9028,
		Longitude:    12.4964,
		Display:      map[string]string{"en": "Rome", "cs": "Řím", "de": "Rom", "pl": "Rzym"},
		Aliases:      []string{"Roma", "Rome", "Rom", "Řím", "Rzym"},
		Priority:     90,
	},
	{
		CanonicalKey: "milan",
		CountryCode:  "IT",
		UpstreamName: "Milan",
		Latitude:     45.4642,
		Longitude:    9.19,
		Display:      map[string]string{"en": "Milan", "cs": "Milán", "de": "Mailand", "pl": "Mediolan"},
		Aliases:      []string{"Milano", "Milan", "Mailand", "Milán", "Mediolan"},
		Priority:     80,
	},
	{
		CanonicalKey: "venice",
		CountryCode:  "IT",
		UpstreamName: "Venice",
		Latitude:     45.4408,
		Longitude:    12.3155,
		Display:      map[string]string{"en": "Venice", "cs": "Benátky", "de": "Venedig", "pl": "Wenecja"},
		Aliases:      []string{"Venezia", "Venice", "Venedig", "Benátky", "Wenecja"},
		Priority:     60,
	},
	{
		CanonicalKey: "zurich",
		CountryCode:  "CH",
		UpstreamName: "Zurich",
		Latitude:     47.3769,
		Longitude:    8.5417,
		Display:      map[string]string{"en": "Zurich", "cs": "Curych", "de": "Zürich"},
		Aliases:      []string{"Zürich", "Zurich", "Curych", "Zurych", "Zurigo"},
		Priority:     70,
	},
	{
		CanonicalKey: "copenhagen",
		CountryCode:  "DK",
		UpstreamName: "Copenhagen",
		Latitude:     55.6761,
		Longitude:    12.5683,
		Display:      map[string]string{"en": "Copenhagen", "cs": "Kodaň", "de": "Kopenhagen", "pl": "Kopenhaga"},
		Aliases:      []string{"København", "Copenhagen", "Kopenhagen", "Kodaň", "Kopenhaga"},
		Priority:     70,
	},
	{
		CanonicalKey: "amsterdam",
		CountryCode:  "NL",
		UpstreamName: "Amsterdam",
		Latitude:     52.3676,
		Longitude:    4.9041,
		Display:      map[string]string{"en": "Amsterdam", "cs": "Amsterodam", "de": "Amsterdam"},
		Aliases:      []string{"Amsterdam", "Amsterodam", "Amsterdám"},
		Priority:     90,
	},
	{
		CanonicalKey: "brussels",
		CountryCode:  "BE",
		UpstreamName: "Brussels",
		Latitude:     50.8503,
		Longitude:    4.3517,
		Display:      map[string]string{"en": "Brussels", "cs": "Brusel", "de": "Brüssel", "pl": "Bruksela"},
		Aliases:      []string{"Bruxelles", "Brussel", "Brussels", "Brüssel", "Brusel", "Bruksela"},
		Priority:     70,
	},
	{
		CanonicalKey: "lisbon",
		CountryCode:  "PT",
		UpstreamName: "Lisbon",
		Latitude:     38.7223,
		Longitude:    -9.1393,
		Display:      map[string]string{"en": "Lisbon", "cs": "Lisabon", "de": "Lissabon", "pl": "Lizbona"},
		Aliases:      []string{"Lisboa", "Lisbon", "Lissabon", "Lisabon", "Lizbona"},
		Priority:     70,
	},
	{
		CanonicalKey: "madrid",
		CountryCode:  "ES",
		UpstreamName: "Madrid",
		Latitude:     40.4168,
		Longitude:    -3.7038,
		Display:      map[string]string{"en": "Madrid", "cs": "Madrid", "de": "Madrid"},
		Aliases:      []string{"Madrid", "Madryt"},
		Priority:     90,
	},
	{
		CanonicalKey: "barcelona",
		CountryCode:  "ES",
		UpstreamName: "Barcelona",
		Latitude:     41.3874,
		Longitude:    2.1686,
		Display:      map[string]string{"en": "Barcelona", "cs": "Barcelona", "de": "Barcelona"},
		Aliases:      []string{"Barcelona", "Barcelone", "Barcellona"},
		Priority:     90,
	},
}
