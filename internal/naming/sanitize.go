// Package naming provides filename parsing and sanitization for movie
// library paths: title/year extraction, release-source tags, collection
// name normalization and language handling.
package naming

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// illegalPathChars are rejected by Windows filesystems; each occurrence
// is replaced with " -" to keep names readable.
const illegalPathChars = `<>:"/\|?*`

// Sanitize normalizes a name to NFC and replaces characters that are
// illegal in Windows filenames. An empty result becomes "Unknown".
func Sanitize(name string) string {
	sanitized := norm.NFC.String(name)
	for _, ch := range illegalPathChars {
		sanitized = strings.ReplaceAll(sanitized, string(ch), " -")
	}
	sanitized = strings.TrimSpace(sanitized)
	if sanitized == "" {
		return "Unknown"
	}
	return sanitized
}

// Collection names from metadata catalogs often carry a localized
// "Collection" designator already, sometimes with an article ("la
// colección"). It is stripped so the configured suffix can be
// re-appended consistently.
const (
	collectionDesignators = `(?:collection|colecci[oó]n|sammlung|collezione|cole[cç][aã]o)`
	collectionArticles    = `(?:the|a|an|la|el|los|las|le|les|il|lo|i|gli|die|der|das|o|os|as)`
)

var (
	collectionSuffixRE = regexp.MustCompile(
		`(?i)(?:\s*[-–—:]+\s*|\s+)(?:` + collectionArticles + `\s+)?` + collectionDesignators + `\s*$`)
	collectionParensRE = regexp.MustCompile(
		`(?i)\s*[(\[]\s*(?:` + collectionArticles + `\s+)?` + collectionDesignators + `\s*[)\]]\s*$`)
)

// StripCollectionDesignator removes a trailing collection designator
// ("Foo Collection", "Foo - la colección", "Foo (Collection)") from a
// collection name. If stripping would leave nothing, the input wins.
func StripCollectionDesignator(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return trimmed
	}

	out := strings.TrimSpace(collectionParensRE.ReplaceAllString(trimmed, ""))
	out = strings.TrimSpace(collectionSuffixRE.ReplaceAllString(out, ""))
	out = strings.TrimSpace(strings.TrimRight(out, "-"))

	if out == "" {
		return trimmed
	}
	return out
}

var collectionSuffixes = map[string]string{
	"es": " - Colección",
	"en": " - Collection",
	"fr": " - Collection",
	"de": " - Sammlung",
	"it": " - Collezione",
}

// CollectionSuffix returns the translated " - Collection" suffix for a
// language code.
func CollectionSuffix(lang string) string {
	if suffix, ok := collectionSuffixes[lang]; ok {
		return suffix
	}
	return " - Collection"
}
