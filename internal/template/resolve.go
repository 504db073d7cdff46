package template

import (
	"regexp"
	"strconv"
	"strings"
)

// fieldTokenRE matches NAME or NAME[index] with optional surrounding
// whitespace; the index may be negative.
var fieldTokenRE = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)(?:\[\s*(-?\d+)\s*\])?\s*$`)

// NormalizeFieldName uppercases and trims a field name for lookup.
func NormalizeFieldName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// resolveFieldToken resolves a field token against the values map and
// the allowed-field whitelist. A bracket index selects a single
// character of the resolved value; indexing is a best-effort accessor,
// so an out-of-range index yields an empty string rather than an error.
func resolveFieldToken(token string, values map[string]string, allowed FieldSet) (string, error) {
	m := fieldTokenRE.FindStringSubmatch(token)
	if m == nil {
		return "", newError(ErrSyntax, "invalid template field token %q", token)
	}

	name := NormalizeFieldName(m[1])
	if _, ok := allowed[name]; !ok {
		return "", newError(ErrUnknownField, "unknown template field %q", m[1])
	}

	base := values[name]
	if m[2] == "" {
		return base, nil
	}

	index, err := strconv.Atoi(m[2])
	if err != nil {
		return "", newError(ErrSyntax, "invalid index %q in field token %q", m[2], token)
	}
	if base == "" {
		return "", nil
	}
	return charAt(base, index), nil
}

// charAt returns the character at the given rune index (negative counts
// from the end), or "" when the index is out of range.
func charAt(s string, index int) string {
	runes := []rune(s)
	if index < 0 {
		index += len(runes)
	}
	if index < 0 || index >= len(runes) {
		return ""
	}
	return string(runes[index])
}
