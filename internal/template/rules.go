package template

import (
	"regexp"
	"strings"
)

var (
	// %value% (case-insensitive, inner spaces tolerated) stands for the
	// pre-filter current value inside rule text.
	ruleValueRE = regexp.MustCompile(`(?i)%\s*value\s*%`)

	// ${FIELD} or ${FIELD[index]} references inside rule text.
	ruleVarRE = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*(?:\[\s*-?\d+\s*\])?)\}`)

	// Forbidden forms, rejected regardless of which branch is taken.
	forbiddenValueVarRE = regexp.MustCompile(`(?i)\$\{\s*VALUE\s*\}`)
	legacyRuleFieldRE   = regexp.MustCompile(`\$[A-Za-z_][A-Za-z0-9_]*(?:\[\s*-?\d+\s*\])?`)

	// fallback's ${…} variable form, matched against the whole argument.
	fallbackVarRE = regexp.MustCompile(`(?s)^\$\{(.+)\}$`)
)

// validateRuleText rejects legacy or forbidden syntax in THEN/ELSE text
// so malformed templates fail at validation time, not mid-render.
func validateRuleText(text string) error {
	if forbiddenValueVarRE.MatchString(text) {
		return newError(ErrSyntax, "use '%%value%%' for the current conditional value instead of '${VALUE}'")
	}
	if legacyRuleFieldRE.MatchString(text) {
		return newError(ErrSyntax, "use '${FIELD}' syntax inside rule text instead of legacy '$FIELD'")
	}
	return nil
}

// renderRuleText substitutes %value% with the current value and every
// ${FIELD} reference with its resolved value. Resolution failures inside
// a substitution degrade to an empty string: a rule branch may legally
// reference an optional field.
func renderRuleText(text, current string, ctx filterContext) (string, error) {
	if err := validateRuleText(text); err != nil {
		return "", err
	}

	out := ruleValueRE.ReplaceAllLiteralString(text, current)
	out = ruleVarRE.ReplaceAllStringFunc(out, func(match string) string {
		token := ruleVarRE.FindStringSubmatch(match)[1]
		value, err := resolveFieldToken(token, ctx.values, ctx.allowed)
		if err != nil {
			return ""
		}
		return value
	})

	return out, nil
}

// ruleSpec describes the shared argument layout of a conditional filter:
// arguments before thenIdx are the condition's own parameters, then one
// THEN text and an optional ELSE (which rejoins any further colon parts).
type ruleSpec struct {
	name    string
	minArgs int
	thenIdx int
	elseIdx int
}

func evaluateConditionRule(passed bool, args []string, current string, spec ruleSpec, ctx filterContext) (string, error) {
	if len(args) < spec.minArgs {
		return "", newError(ErrArgument, "filter %q expects at least %d argument(s)", spec.name, spec.minArgs)
	}

	thenText := ""
	if len(args) > spec.thenIdx {
		thenText = args[spec.thenIdx]
	}
	elseText := ""
	if len(args) > spec.elseIdx {
		elseText = strings.Join(args[spec.elseIdx:], ":")
	}

	// Both branches are checked even though only one renders; a broken
	// branch must surface at validate time.
	if err := validateRuleText(thenText); err != nil {
		return "", err
	}
	if err := validateRuleText(elseText); err != nil {
		return "", err
	}

	chosen := thenText
	if !passed {
		chosen = elseText
	}
	if chosen == "" {
		return "", nil
	}
	return renderRuleText(chosen, current, ctx)
}

func filterIfExists(current string, args []string, ctx filterContext) (string, error) {
	return evaluateConditionRule(current != "", args, current, ruleSpec{
		name:    "ifexists",
		minArgs: 1,
		thenIdx: 0,
		elseIdx: 1,
	}, ctx)
}

func filterIfContains(current string, args []string, ctx filterContext) (string, error) {
	if len(args) < 2 {
		return "", newError(ErrArgument, "filter 'ifcontains' expects NEEDLE and THEN arguments")
	}
	needle := args[0]
	passed := needle != "" && strings.Contains(strings.ToLower(current), strings.ToLower(needle))
	return evaluateConditionRule(passed, args, current, ruleSpec{
		name:    "ifcontains",
		minArgs: 2,
		thenIdx: 1,
		elseIdx: 2,
	}, ctx)
}

func filterIfEq(current string, args []string, ctx filterContext) (string, error) {
	if len(args) < 2 {
		return "", newError(ErrArgument, "filter 'ifeq' expects VALUE and THEN arguments")
	}
	return evaluateConditionRule(current == args[0], args, current, ruleSpec{
		name:    "ifeq",
		minArgs: 2,
		thenIdx: 1,
		elseIdx: 2,
	}, ctx)
}

// numericRule builds a comparison rule filter. Both the current value
// and the threshold go through numeric coercion; if either fails to
// parse the comparison is false, never an error.
func numericRule(name string, cmp func(a, b float64) bool) filterFunc {
	return func(current string, args []string, ctx filterContext) (string, error) {
		if len(args) < 2 {
			return "", newError(ErrArgument, "filter %q expects NUMBER and THEN arguments", name)
		}

		passed := false
		if a, err := parseNumber(current); err == nil {
			if b, err := parseNumber(args[0]); err == nil {
				passed = cmp(a, b)
			}
		}

		return evaluateConditionRule(passed, args, current, ruleSpec{
			name:    name,
			minArgs: 2,
			thenIdx: 1,
			elseIdx: 2,
		}, ctx)
	}
}
