package template

import (
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// maxFallbackDepth bounds nested fallback evaluation. The grammar does
// not forbid a fallback argument from referencing another fallback
// chain, so recursion is capped and exceeding the cap is a syntax error.
const maxFallbackDepth = 8

// filterContext carries the values map and whitelist for filters that
// re-resolve fields (fallback and the rule filters), plus the current
// fallback recursion depth.
type filterContext struct {
	values  map[string]string
	allowed FieldSet
	depth   int
}

type filterFunc func(current string, args []string, ctx filterContext) (string, error)

// filterAliases maps every accepted filter spelling to its canonical
// name. Names not present here are unknown-filter errors.
var filterAliases = map[string]string{
	"upper":      "upper",
	"lower":      "lower",
	"title":      "title",
	"capitalize": "capitalize",
	"initials":   "initials",
	"char":       "char",
	"slice":      "slice",
	"stem":       "stem",
	"fallback":   "fallback",
	"replace":    "replace",
	"trim":       "trim",
	"strip":      "trim",
	"ifexists":   "ifexists",
	"ifcontains": "ifcontains",
	"ifeq":       "ifeq",
	"ifgt":       "ifgt",
	"ifge":       "ifge",
	"iflt":       "iflt",
	"ifle":       "ifle",
}

// FilterDescriptions documents every filter for help output, keyed by
// usage form.
var FilterDescriptions = map[string]string{
	"upper":                        "Transform value to uppercase.",
	"lower":                        "Transform value to lowercase.",
	"title":                        "Title-case the value.",
	"capitalize":                   "Capitalize only the first character.",
	"initials":                     "Take the first character of each word.",
	"char:N":                       "Take the character at index N (negative indexes allowed).",
	"slice:START:END":              "Slice the value (START/END optional, negative allowed).",
	"stem":                         "Remove the final file extension segment.",
	"fallback:ARG":                 "If empty, use ARG as literal text; use ${FIELD} for a variable fallback.",
	"replace:OLD:NEW":              "Replace substring OLD with NEW.",
	"trim":                         "Trim leading/trailing whitespace (alias: strip).",
	"ifexists:THEN[:ELSE]":         "Rule: if the current value exists, render THEN, else ELSE.",
	"ifcontains:NEEDLE:THEN[:ELSE]": "Rule: if the current value contains NEEDLE (case-insensitive).",
	"ifeq:TEXT:THEN[:ELSE]":        "Rule: if the current value equals TEXT.",
	"ifgt:NUMBER:THEN[:ELSE]":      "Rule: if the current numeric value > NUMBER.",
	"ifge:NUMBER:THEN[:ELSE]":      "Rule: if the current numeric value >= NUMBER.",
	"iflt:NUMBER:THEN[:ELSE]":      "Rule: if the current numeric value < NUMBER.",
	"ifle:NUMBER:THEN[:ELSE]":      "Rule: if the current numeric value <= NUMBER.",
}

// filters maps canonical filter names to handlers. Assigned in init to
// avoid an initialization cycle through fallback's recursive evaluation.
var filters map[string]filterFunc

func init() {
	filters = map[string]filterFunc{
		"upper":      filterUpper,
		"lower":      filterLower,
		"title":      filterTitle,
		"capitalize": filterCapitalize,
		"initials":   filterInitials,
		"char":       filterChar,
		"slice":      filterSlice,
		"stem":       filterStem,
		"fallback":   filterFallback,
		"replace":    filterReplace,
		"trim":       filterTrim,
		"ifexists":   filterIfExists,
		"ifcontains": filterIfContains,
		"ifeq":       filterIfEq,
		"ifgt":       numericRule("ifgt", func(a, b float64) bool { return a > b }),
		"ifge":       numericRule("ifge", func(a, b float64) bool { return a >= b }),
		"iflt":       numericRule("iflt", func(a, b float64) bool { return a < b }),
		"ifle":       numericRule("ifle", func(a, b float64) bool { return a <= b }),
	}
}

func applyFilter(current, token string, ctx filterContext) (string, error) {
	name, args, err := parseFilterToken(token)
	if err != nil {
		return "", err
	}
	return filters[name](current, args, ctx)
}

func filterUpper(current string, _ []string, _ filterContext) (string, error) {
	return strings.ToUpper(current), nil
}

func filterLower(current string, _ []string, _ filterContext) (string, error) {
	return strings.ToLower(current), nil
}

// filterTitle uppercases the first letter of every letter run and
// lowercases the rest, so "o'neil 3d" becomes "O'Neil 3D".
func filterTitle(current string, _ []string, _ filterContext) (string, error) {
	var out strings.Builder
	out.Grow(len(current))
	prevLetter := false
	for _, ch := range current {
		if unicode.IsLetter(ch) {
			if prevLetter {
				out.WriteRune(unicode.ToLower(ch))
			} else {
				out.WriteRune(unicode.ToUpper(ch))
			}
			prevLetter = true
			continue
		}
		out.WriteRune(ch)
		prevLetter = false
	}
	return out.String(), nil
}

func filterCapitalize(current string, _ []string, _ filterContext) (string, error) {
	runes := []rune(current)
	if len(runes) == 0 {
		return "", nil
	}
	var out strings.Builder
	out.Grow(len(current))
	out.WriteRune(unicode.ToUpper(runes[0]))
	for _, ch := range runes[1:] {
		out.WriteRune(unicode.ToLower(ch))
	}
	return out.String(), nil
}

// filterInitials concatenates the first character of every word run,
// where a word is a sequence of letters, digits or underscores.
func filterInitials(current string, _ []string, _ filterContext) (string, error) {
	var out strings.Builder
	prevWord := false
	for _, ch := range current {
		isWord := ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
		if isWord && !prevWord {
			out.WriteRune(ch)
		}
		prevWord = isWord
	}
	return out.String(), nil
}

func filterChar(current string, args []string, _ filterContext) (string, error) {
	if len(args) != 1 || args[0] == "" {
		return "", newError(ErrArgument, "filter 'char' expects exactly one integer argument")
	}
	index, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return "", newError(ErrArgument, "filter 'char' received invalid index %q", args[0])
	}
	if current == "" {
		return "", nil
	}
	return charAt(current, index), nil
}

func filterSlice(current string, args []string, _ filterContext) (string, error) {
	if len(args) == 0 || len(args) > 2 {
		return "", newError(ErrArgument, "filter 'slice' expects one or two integer arguments")
	}

	parse := func(raw string) (*int, error) {
		if raw == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, newError(ErrArgument, "filter 'slice' received a non-integer index")
		}
		return &n, nil
	}

	start, err := parse(args[0])
	if err != nil {
		return "", err
	}
	var end *int
	if len(args) == 2 {
		if end, err = parse(args[1]); err != nil {
			return "", err
		}
	}

	return sliceRunes(current, start, end), nil
}

// sliceRunes slices by rune with clamped bounds: negative bounds count
// from the end, out-of-range bounds clamp, and an inverted range is
// empty.
func sliceRunes(s string, start, end *int) string {
	runes := []rune(s)
	n := len(runes)

	clamp := func(bound *int, fallback int) int {
		if bound == nil {
			return fallback
		}
		v := *bound
		if v < 0 {
			v += n
		}
		if v < 0 {
			v = 0
		}
		if v > n {
			v = n
		}
		return v
	}

	lo := clamp(start, 0)
	hi := clamp(end, n)
	if lo >= hi {
		return ""
	}
	return string(runes[lo:hi])
}

func filterStem(current string, args []string, _ filterContext) (string, error) {
	if len(args) > 0 {
		return "", newError(ErrArgument, "filter 'stem' does not take arguments")
	}
	if current == "" {
		return "", nil
	}
	base := filepath.Base(current)
	if i := strings.LastIndex(base, "."); i > 0 && i < len(base)-1 {
		return base[:i], nil
	}
	return base, nil
}

func filterTrim(current string, args []string, _ filterContext) (string, error) {
	if len(args) > 0 {
		return "", newError(ErrArgument, "filter 'trim' does not take arguments")
	}
	return strings.TrimSpace(current), nil
}

func filterReplace(current string, args []string, _ filterContext) (string, error) {
	if len(args) < 2 {
		return "", newError(ErrArgument, "filter 'replace' expects OLD and NEW arguments")
	}
	old := args[0]
	// NEW may itself contain colons; rejoin the remaining parts.
	replacement := strings.Join(args[1:], ":")
	return strings.ReplaceAll(current, old, replacement), nil
}

// filterFallback passes a non-empty value through unchanged. For an
// empty value the rejoined argument is used as literal text, unless it
// has the ${…} variable form, in which case the inner text is evaluated
// as a nested field expression against the same values and whitelist.
func filterFallback(current string, args []string, ctx filterContext) (string, error) {
	if len(args) < 1 {
		return "", newError(ErrArgument, "filter 'fallback' expects an argument")
	}
	if current != "" {
		return current, nil
	}

	raw := strings.TrimSpace(strings.Join(args, ":"))
	if raw == "" {
		return "", nil
	}

	m := fallbackVarRE.FindStringSubmatch(raw)
	if m == nil {
		return raw, nil
	}

	nested := strings.TrimSpace(m[1])
	if nested == "" {
		return "", nil
	}
	if ctx.depth >= maxFallbackDepth {
		return "", newError(ErrSyntax, "fallback nesting deeper than %d levels", maxFallbackDepth)
	}
	return evaluateExpression(nested, ctx.values, ctx.allowed, ctx.depth+1)
}
