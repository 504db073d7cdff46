package naming

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Year plausibility window: cinema starts in 1888 and release names may
// reference next year's premieres.
const (
	minPlausibleYear     = 1888
	maxPlausibleYearSkew = 1
)

var (
	imdbIDRE     = regexp.MustCompile(`(?i)\btt\d{7,8}\b`)
	separatorsRE = regexp.MustCompile(`[._]`)
	parensYearRE = regexp.MustCompile(`\(\s*(\d{4})\s*\)`)
	anyParensRE  = regexp.MustCompile(`\([^)]*\)`)
	bracketsRE   = regexp.MustCompile(`\[.*?\]|\(.*?\)`)
)

// releaseTags are technical markers that disqualify parenthesized text
// from being an alternate title.
var releaseTags = []string{"bluray", "web-dl", "bdrip", "microhd", "uhdrip", "bdremux", "webdl"}

// ParsedName holds what could be recovered from a release filename.
type ParsedName struct {
	// Title is the cleaned, searchable movie title.
	Title string

	// Year is the plausible release year, or "" when none was found.
	Year string

	// AltTitle is a secondary title taken from non-year parentheses
	// (often a translated title), or "".
	AltTitle string

	// IMDBID is a lowercase ttNNNNNNN id embedded in the name, or "".
	IMDBID string
}

// ParseFilename extracts a searchable title, year, alternate title and
// IMDb id from a release filename.
func ParseFilename(filename string) ParsedName {
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	name := separatorsRE.ReplaceAllString(stem, " ")
	parsed := ParsedName{IMDBID: strings.ToLower(imdbIDRE.FindString(base))}

	// Prefer the last plausible parenthesized year: release names often
	// contain several (...) groups.
	maxYear := time.Now().Year() + maxPlausibleYearSkew
	yearEnd := -1
	yearStart := -1
	for _, m := range parensYearRE.FindAllStringSubmatchIndex(name, -1) {
		year, err := strconv.Atoi(name[m[2]:m[3]])
		if err != nil || year < minPlausibleYear || year > maxYear {
			continue
		}
		parsed.Year = strconv.Itoa(year)
		yearStart, yearEnd = m[0], m[1]
	}
	if yearEnd >= 0 {
		name = strings.TrimSpace(name[:yearStart])
	}

	parsed.AltTitle = alternateTitle(name, maxYear)

	parsed.Title = strings.TrimSpace(bracketsRE.ReplaceAllString(name, ""))
	return parsed
}

// alternateTitle picks the first non-year parenthesized group as a
// fallback title, unless it is purely numeric or a release tag. Only
// the first candidate is considered.
func alternateTitle(name string, maxYear int) string {
	for _, m := range anyParensRE.FindAllString(name, -1) {
		inner := strings.TrimSpace(m[1 : len(m)-1])
		if year, err := strconv.Atoi(inner); err == nil {
			if year >= minPlausibleYear && year <= maxYear {
				// A year group, not a title candidate.
				continue
			}
		}
		if inner == "" || isNumeric(inner) {
			return ""
		}
		lower := strings.ToLower(inner)
		for _, tag := range releaseTags {
			if strings.Contains(lower, tag) {
				return ""
			}
		}
		return inner
	}
	return ""
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// sourceAliases normalizes release-source spellings found in filenames.
// Order matters: longer, more specific patterns first.
var sourceAliases = []struct {
	needle     string
	normalized string
}{
	{"uhd bdremux", "UHD BDRemux"},
	{"bdremux", "BDRemux"},
	{"bdrip", "BDRip"},
	{"bluray", "BluRay"},
	{"blu-ray", "BluRay"},
	{"microhd", "MicroHD"},
	{"webrip", "WEBRip"},
	{"web-rip", "WEBRip"},
	{"web rip", "WEBRip"},
	{"webdl", "WEB-DL"},
	{"web-dl", "WEB-DL"},
}

// ParseSource extracts a normalized release source (BluRay, WEB-DL, …)
// from a filename, or "" when none is recognizable.
func ParseSource(filename string) string {
	lower := strings.ToLower(separatorsRE.ReplaceAllString(filename, " "))
	for _, alias := range sourceAliases {
		if strings.Contains(lower, alias.needle) {
			return alias.normalized
		}
	}
	return ""
}
