package template

import (
	"errors"
	"strings"
	"testing"
)

func TestSegmentsRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"plain literal text",
		"{TITLE}",
		"{TITLE} ({YEAR})/{TITLE} ({YEAR})",
		"prefix {TITLE|fallback:{literal}} suffix",
		"closing brace } outside is literal",
		"{A}{B}{C}",
	}

	for _, tmpl := range cases {
		segments, err := Segments(tmpl)
		if err != nil {
			t.Fatalf("Segments(%q): %v", tmpl, err)
		}

		var rebuilt strings.Builder
		for _, segment := range segments {
			if segment.Expr {
				rebuilt.WriteString("{" + segment.Raw + "}")
			} else {
				rebuilt.WriteString(segment.Raw)
			}
		}
		if rebuilt.String() != tmpl {
			t.Fatalf("round trip of %q produced %q", tmpl, rebuilt.String())
		}
	}
}

func TestSegmentsNestedBraces(t *testing.T) {
	segments, err := Segments("{COLLECTION_NAME|fallback:{TITLE}}")
	if err != nil {
		t.Fatalf("Segments: %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("expected one segment, got %d", len(segments))
	}
	if !segments[0].Expr {
		t.Fatalf("expected expression segment")
	}
	if segments[0].Raw != "COLLECTION_NAME|fallback:{TITLE}" {
		t.Fatalf("unexpected raw expression %q", segments[0].Raw)
	}
}

func TestSegmentsUnbalanced(t *testing.T) {
	for _, tmpl := range []string{"{TITLE", "{A|fallback:{B}", "literal {"} {
		if _, err := Segments(tmpl); !errors.Is(err, ErrSyntax) {
			t.Fatalf("Segments(%q): expected syntax error, got %v", tmpl, err)
		}
	}
}

func TestValidateRejectsEmptyTemplateAndPlaceholder(t *testing.T) {
	allowed := NewFieldSet("TITLE")

	if err := Validate("", allowed); !errors.Is(err, ErrSyntax) {
		t.Fatalf("empty template: expected syntax error, got %v", err)
	}
	if err := Validate("   ", allowed); !errors.Is(err, ErrSyntax) {
		t.Fatalf("blank template: expected syntax error, got %v", err)
	}
	if err := Validate("{TITLE}/{}", allowed); !errors.Is(err, ErrSyntax) {
		t.Fatalf("empty placeholder: expected syntax error, got %v", err)
	}
}

func TestValidateErrorKinds(t *testing.T) {
	allowed := NewFieldSet("TITLE", "SOURCE")

	if err := Validate("{TITLE}/{UNKNOWN_TAG}", allowed); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected unknown field error, got %v", err)
	}
	if err := Validate("{TITLE|explode}", allowed); !errors.Is(err, ErrUnknownFilter) {
		t.Fatalf("expected unknown filter error, got %v", err)
	}
	if err := Validate("{SOURCE|ifexists:$TITLE - %value%}", allowed); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected syntax error for legacy $FIELD token, got %v", err)
	}
	if err := Validate("{TITLE|char:x}", allowed); !errors.Is(err, ErrArgument) {
		t.Fatalf("expected argument error, got %v", err)
	}
}

func TestValidateWrapsPlaceholderText(t *testing.T) {
	err := Validate("{TITLE}/{ UNKNOWN_TAG }", NewFieldSet("TITLE"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "{UNKNOWN_TAG}") {
		t.Fatalf("expected placeholder in error, got %q", err.Error())
	}
}

func TestRenderDotShorthand(t *testing.T) {
	allowed := NewFieldSet("TITLE")
	values := map[string]string{"TITLE": "Inception"}

	out, err := Render("{title[0].upper}/{title.upper}", values, allowed)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "I/INCEPTION" {
		t.Fatalf("unexpected render result %q", out)
	}
}

func TestRenderLiteralsBetweenPlaceholders(t *testing.T) {
	allowed := NewFieldSet("TITLE", "YEAR")
	values := map[string]string{"TITLE": "Inception", "YEAR": "2010"}

	out, err := Render("{TITLE} ({YEAR})/{TITLE} ({YEAR})", values, allowed)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "Inception (2010)/Inception (2010)" {
		t.Fatalf("unexpected render result %q", out)
	}
}

func TestRenderNormalizesValueKeys(t *testing.T) {
	out, err := Render("{TITLE}", map[string]string{"title": "Heat"}, NewFieldSet("TITLE"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "Heat" {
		t.Fatalf("unexpected render result %q", out)
	}
}

func TestRenderMissingValueResolvesEmpty(t *testing.T) {
	// A value map missing an allowed field is a caller concern, not a
	// template error.
	out, err := Render("[{SOURCE}]", map[string]string{}, NewFieldSet("SOURCE"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out != "[]" {
		t.Fatalf("unexpected render result %q", out)
	}
}

func TestRenderIdempotent(t *testing.T) {
	allowed := NewFieldSet("TITLE", "SOURCE")
	values := map[string]string{"TITLE": "Heat", "SOURCE": "BluRay"}
	tmpl := "{TITLE}{SOURCE|ifexists: (%value%)}"

	first, err := Render(tmpl, values, allowed)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := Render(tmpl, values, allowed)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if first != second {
		t.Fatalf("render is not idempotent: %q vs %q", first, second)
	}
}

// Any template that validates must render without a structural or
// reference error, whatever the values map holds.
func TestValidateRenderParity(t *testing.T) {
	allowed := NewFieldSet("TITLE", "YEAR", "SOURCE", "COLLECTION_NAME", "FPS")
	templates := []string{
		"{TITLE} ({YEAR})",
		"{COLLECTION_NAME|fallback:${TITLE}|char:0|upper}/{TITLE}",
		"{SOURCE|ifexists: (%value%):[none]}",
		"{TITLE} - {FPS|ifge:60:%value%FPS}",
		"{title[0].upper}/{title.upper}",
		"{TITLE|slice:0:12|trim}",
	}
	valueMaps := []map[string]string{
		nil,
		{"TITLE": "Heat", "YEAR": "1995"},
		{"TITLE": "Heat", "SOURCE": "BluRay", "FPS": "23.976", "COLLECTION_NAME": ""},
	}

	for _, tmpl := range templates {
		if err := Validate(tmpl, allowed); err != nil {
			t.Fatalf("Validate(%q): %v", tmpl, err)
		}
		for _, values := range valueMaps {
			if _, err := Render(tmpl, values, allowed); err != nil {
				t.Fatalf("Render(%q, %v): %v", tmpl, values, err)
			}
		}
	}
}

func TestFieldIndexing(t *testing.T) {
	allowed := NewFieldSet("TITLE")
	values := map[string]string{"TITLE": "Heat"}

	cases := map[string]string{
		"{TITLE[0]}":  "H",
		"{TITLE[3]}":  "t",
		"{TITLE[-1]}": "t",
		"{TITLE[-4]}": "H",
		"{TITLE[9]}":  "",
		"{TITLE[-9]}": "",
	}
	for tmpl, want := range cases {
		out, err := Render(tmpl, values, allowed)
		if err != nil {
			t.Fatalf("Render(%q): %v", tmpl, err)
		}
		if out != want {
			t.Fatalf("Render(%q) = %q, want %q", tmpl, out, want)
		}
	}
}

func TestInvalidFieldTokens(t *testing.T) {
	allowed := NewFieldSet("TITLE")
	for _, tmpl := range []string{"{TITLE[x]}", "{TI TLE}", "{9TITLE}", "{TITLE[1}"} {
		if err := Validate(tmpl, allowed); !errors.Is(err, ErrSyntax) {
			t.Fatalf("Validate(%q): expected syntax error, got %v", tmpl, err)
		}
	}
}

func TestEmptyFilterToken(t *testing.T) {
	allowed := NewFieldSet("TITLE")
	if err := Validate("{TITLE|}", allowed); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected syntax error for empty filter, got %v", err)
	}
	if err := Validate("{TITLE| |upper}", allowed); !errors.Is(err, ErrSyntax) {
		t.Fatalf("expected syntax error for blank filter, got %v", err)
	}
}
