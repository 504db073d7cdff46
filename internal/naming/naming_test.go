package naming

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"Alien: Covenant": "Alien - Covenant",
		"What If...?":     "What If... -",
		"AC/DC Live":      "AC -DC Live",
		"  padded  ":      "padded",
		`quote"name`:      "quote -name",
		"<>":              "- -", // every illegal char is replaced, then trimmed
	}
	for input, want := range cases {
		require.Equal(t, want, Sanitize(input), "Sanitize(%q)", input)
	}
}

func TestSanitizeEmptyBecomesUnknown(t *testing.T) {
	require.Equal(t, "Unknown", Sanitize(""))
	require.Equal(t, "Unknown", Sanitize("   "))
}

func TestParseFilenameExtractsTitleAndYear(t *testing.T) {
	parsed := ParseFilename("The.Matrix.(1999).1080p.BluRay.x264.mkv")
	require.Equal(t, "The Matrix", parsed.Title)
	require.Equal(t, "1999", parsed.Year)

	parsed = ParseFilename("Inception (2010) [tt1375666] BDRemux.mkv")
	require.Equal(t, "Inception", parsed.Title)
	require.Equal(t, "2010", parsed.Year)
	require.Equal(t, "tt1375666", parsed.IMDBID)
}

func TestParseFilenameLastPlausibleYearWins(t *testing.T) {
	parsed := ParseFilename("Blade Runner (1982) (2007).mkv")
	require.Equal(t, "2007", parsed.Year)
	require.Equal(t, "Blade Runner", parsed.Title)
	require.Empty(t, parsed.AltTitle)
}

func TestParseFilenameImplausibleYearIgnored(t *testing.T) {
	parsed := ParseFilename("Movie (1650).mkv")
	require.Empty(t, parsed.Year)
	require.Equal(t, "Movie", parsed.Title)
}

func TestParseFilenameAlternateTitle(t *testing.T) {
	parsed := ParseFilename("El Laberinto del Fauno (Pan's Labyrinth) (2006).mkv")
	require.Equal(t, "El Laberinto del Fauno", parsed.Title)
	require.Equal(t, "Pan's Labyrinth", parsed.AltTitle)
	require.Equal(t, "2006", parsed.Year)

	// Release tags in parentheses are not titles.
	parsed = ParseFilename("Movie (BluRay) (2006).mkv")
	require.Empty(t, parsed.AltTitle)
}

func TestParseSource(t *testing.T) {
	cases := map[string]string{
		"Movie.2010.BluRay.x264.mkv":      "BluRay",
		"Movie.2010.Blu-Ray.mkv":          "BluRay",
		"Movie.2010.WEB-DL.mkv":           "WEB-DL",
		"Movie.2010.WEBDL.mkv":            "WEB-DL",
		"Movie.2010.WEBRip.mkv":           "WEBRip",
		"Movie.UHD.BDRemux.mkv":           "UHD BDRemux",
		"Movie.2010.BDRemux.mkv":          "BDRemux",
		"Movie.2010.BDRip.mkv":            "BDRip",
		"Movie.2010.MicroHD.mkv":          "MicroHD",
		"Movie.2010.x264.mkv":             "",
	}
	for input, want := range cases {
		require.Equal(t, want, ParseSource(input), "ParseSource(%q)", input)
	}
}

func TestStripCollectionDesignator(t *testing.T) {
	cases := map[string]string{
		"Harry Potter Collection":      "Harry Potter",
		"James Bond - Collection":      "James Bond",
		"El Hobbit - la colección":     "El Hobbit",
		"Avatar (Collection)":          "Avatar",
		"Alien Sammlung":               "Alien",
		"Plain Name":                   "Plain Name",
		"Collection":                   "Collection", // never strip to empty
	}
	for input, want := range cases {
		require.Equal(t, want, StripCollectionDesignator(input), "StripCollectionDesignator(%q)", input)
	}
}

func TestCollectionSuffix(t *testing.T) {
	require.Equal(t, " - Colección", CollectionSuffix("es"))
	require.Equal(t, " - Sammlung", CollectionSuffix("de"))
	require.Equal(t, " - Collection", CollectionSuffix("xx"))
}

func TestNormalizeLanguage(t *testing.T) {
	cases := []struct {
		input  string
		lang   string
		region string
	}{
		{"", "es", ""},
		{"es", "es", ""},
		{"es-ES", "es", "ES"},
		{"es_MX", "es", "MX"},
		{"pt-BR", "pt", "BR"},
		{"spanish", "es", ""},
		{"eng", "en", ""},
		{"bg", "bg", ""},
		{"xyz", "es", ""}, // unknown 3-letter alias falls back
	}
	for _, tc := range cases {
		lang, region := NormalizeLanguage(tc.input)
		require.Equal(t, tc.lang, lang, "lang of %q", tc.input)
		require.Equal(t, tc.region, region, "region of %q", tc.input)
	}
}

func TestDefaultRegion(t *testing.T) {
	cases := []struct {
		lang string
		want string
	}{
		{"es", "ES"},
		{"en", "US"},
		{"pt", "BR"},
		{"AR", "EG"},
		{" nl ", "NL"},
		{"bg", ""}, // no likely region known
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, DefaultRegion(tc.lang), "region of %q", tc.lang)
	}
}
