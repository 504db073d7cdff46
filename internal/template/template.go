// Package template implements the destination-path expression language
// used to turn movie metadata fields into filesystem paths.
//
// A template mixes literal text with {FIELD} placeholders. A placeholder
// names one allowed field and an optional chain of filters, joined with
// '|' or the '.' shorthand: {title[0].upper} or {SOURCE|ifexists: (%value%)}.
// Templates are validated against a caller-supplied field whitelist
// before any value is touched, and rendered against a flat
// string-to-string values map.
package template

import (
	"strings"
)

// Segment is one literal or expression chunk of a template.
// For expression segments Raw holds the text between the braces.
type Segment struct {
	Expr bool
	Raw  string
}

// FieldSet is the whitelist of allowed field names, keyed by their
// normalized (uppercase) form. It is the sole authority on which
// {FIELD} references are legal; the engine never infers it.
type FieldSet map[string]struct{}

// NewFieldSet builds a FieldSet from field names, normalizing each.
func NewFieldSet(names ...string) FieldSet {
	set := make(FieldSet, len(names))
	for _, name := range names {
		set[NormalizeFieldName(name)] = struct{}{}
	}
	return set
}

// Has reports whether the set allows the given field name.
func (s FieldSet) Has(name string) bool {
	_, ok := s[NormalizeFieldName(name)]
	return ok
}

// Names returns the allowed field names in unspecified order.
func (s FieldSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	return names
}

// Segments splits a template into literal and expression segments.
// A '{' opens an expression; inside one, nested braces must balance
// before the expression closes, so an expression may itself contain
// literal {…} text. A stray '}' outside an expression is literal.
// Concatenating every segment's source text reproduces the template.
func Segments(tmpl string) ([]Segment, error) {
	var segments []Segment
	var text strings.Builder
	inExpr := false
	exprStart := 0
	depth := 0

	for i, ch := range tmpl {
		if !inExpr {
			if ch == '{' {
				if text.Len() > 0 {
					segments = append(segments, Segment{Raw: text.String()})
					text.Reset()
				}
				inExpr = true
				exprStart = i + 1
				depth = 1
			} else {
				text.WriteRune(ch)
			}
			continue
		}

		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				segments = append(segments, Segment{Expr: true, Raw: tmpl[exprStart:i]})
				inExpr = false
			}
		}
	}

	if inExpr {
		return nil, newError(ErrSyntax, "destination template has unbalanced braces")
	}

	if text.Len() > 0 {
		segments = append(segments, Segment{Raw: text.String()})
	}

	return segments, nil
}
