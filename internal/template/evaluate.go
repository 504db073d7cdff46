package template

import (
	"strings"
)

// Validate checks a template against an allowed-field whitelist without
// real values: every expression is evaluated against a dummy map where
// each allowed field is empty, so structural and reference errors
// surface before any file is touched. Filter results are discarded.
func Validate(tmpl string, allowed FieldSet) error {
	candidate := strings.TrimSpace(tmpl)
	if candidate == "" {
		return newError(ErrSyntax, "destination template cannot be empty")
	}

	segments, err := Segments(candidate)
	if err != nil {
		return err
	}

	dummy := make(map[string]string, len(allowed))
	for name := range allowed {
		dummy[name] = ""
	}

	for _, segment := range segments {
		if !segment.Expr {
			continue
		}
		if strings.TrimSpace(segment.Raw) == "" {
			return newError(ErrSyntax, "destination template has an empty placeholder {}")
		}
		if _, err := evaluateExpression(segment.Raw, dummy, allowed, 0); err != nil {
			return wrapPlaceholder(segment.Raw, err)
		}
	}

	return nil
}

// Render substitutes every placeholder with its resolved, filtered value
// and concatenates the result in document order. Values keys are
// normalized before lookup; a value absent from the map resolves to an
// empty string, which is a caller concern, not a template error.
func Render(tmpl string, values map[string]string, allowed FieldSet) (string, error) {
	normalized := make(map[string]string, len(values))
	for key, value := range values {
		normalized[NormalizeFieldName(key)] = value
	}

	segments, err := Segments(tmpl)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, segment := range segments {
		if !segment.Expr {
			out.WriteString(segment.Raw)
			continue
		}
		if strings.TrimSpace(segment.Raw) == "" {
			return "", newError(ErrSyntax, "destination template has an empty placeholder {}")
		}
		value, err := evaluateExpression(segment.Raw, normalized, allowed, 0)
		if err != nil {
			return "", wrapPlaceholder(segment.Raw, err)
		}
		out.WriteString(value)
	}

	return out.String(), nil
}

// evaluateExpression resolves one expression's field token and applies
// its filter chain left to right. depth tracks fallback recursion.
func evaluateExpression(expr string, values map[string]string, allowed FieldSet, depth int) (string, error) {
	field, filterTokens, err := splitExpression(expr)
	if err != nil {
		return "", err
	}

	value, err := resolveFieldToken(field, values, allowed)
	if err != nil {
		return "", err
	}

	ctx := filterContext{values: values, allowed: allowed, depth: depth}
	for _, token := range filterTokens {
		if value, err = applyFilter(value, token, ctx); err != nil {
			return "", err
		}
	}

	return value, nil
}
