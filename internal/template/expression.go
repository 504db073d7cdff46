package template

import (
	"strings"
	"unicode"
)

// splitExpression splits one raw expression into its field token and
// the ordered list of filter tokens.
//
// The expression is split on first-level '|' characters (pipes inside
// nested braces belong to a filter argument). The part before the first
// pipe is then split on '.' for the dot shorthand: the first dot
// segment is the field token and the rest are filters, applied before
// any pipe-delimited filters.
func splitExpression(expr string) (string, []string, error) {
	parts := splitTopLevel(expr, '|')

	base := strings.TrimSpace(parts[0])
	if base == "" {
		return "", nil, newError(ErrSyntax, "template expression cannot be empty")
	}

	var tokens []string
	for _, part := range strings.Split(base, ".") {
		part = strings.TrimSpace(part)
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	if len(tokens) == 0 {
		return "", nil, newError(ErrSyntax, "template expression cannot be empty")
	}

	field := tokens[0]
	filters := tokens[1:]

	for _, raw := range parts[1:] {
		token := strings.TrimLeftFunc(raw, unicode.IsSpace)
		if token == "" {
			return "", nil, newError(ErrSyntax, "template filter cannot be empty")
		}
		filters = append(filters, token)
	}

	return field, filters, nil
}

// splitTopLevel splits s on sep, ignoring separators inside {…}.
func splitTopLevel(s string, sep rune) []string {
	var parts []string
	depth := 0
	start := 0

	for i, ch := range s {
		switch ch {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}

	return append(parts, s[start:])
}

// parseFilterToken splits a filter token into its canonical name and
// raw colon-delimited arguments. The name is resolved through the alias
// table; unrecognized names are a hard error.
func parseFilterToken(token string) (string, []string, error) {
	if strings.TrimSpace(token) == "" {
		return "", nil, newError(ErrSyntax, "template filter cannot be empty")
	}

	parts := strings.Split(token, ":")
	if parts[0] == "" {
		return "", nil, newError(ErrSyntax, "template filter cannot be empty")
	}

	raw := strings.TrimSpace(parts[0])
	canonical, ok := filterAliases[strings.ToLower(raw)]
	if !ok {
		return "", nil, newError(ErrUnknownFilter, "unknown template filter %q", raw)
	}

	return canonical, parts[1:], nil
}
