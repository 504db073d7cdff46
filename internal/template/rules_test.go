package template

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIfExists(t *testing.T) {
	fields := []string{"SOURCE"}

	out := renderOne(t, "{SOURCE|ifexists: (%value%)}", map[string]string{"SOURCE": "BluRay"}, fields...)
	require.Equal(t, " (BluRay)", out)

	out = renderOne(t, "{SOURCE|ifexists: (%value%)}", map[string]string{"SOURCE": ""}, fields...)
	require.Equal(t, "", out)

	out = renderOne(t, "{SOURCE|ifexists: (%value%)}", map[string]string{}, fields...)
	require.Equal(t, "", out)
}

func TestIfExistsElseBranch(t *testing.T) {
	out := renderOne(t, "{SOURCE|ifexists:%value%:unknown}", map[string]string{"SOURCE": ""}, "SOURCE")
	require.Equal(t, "unknown", out)

	out = renderOne(t, "{SOURCE|ifexists:%value%:unknown}", map[string]string{"SOURCE": "WEB-DL"}, "SOURCE")
	require.Equal(t, "WEB-DL", out)

	_, err := Render("{SOURCE|ifexists}", nil, NewFieldSet("SOURCE"))
	require.ErrorIs(t, err, ErrArgument)
}

func TestIfContains(t *testing.T) {
	fields := []string{"SOURCE"}
	values := map[string]string{"SOURCE": "UHD BDRemux"}

	out := renderOne(t, "{SOURCE|ifcontains:remux:[REMUX]}", values, fields...)
	require.Equal(t, "[REMUX]", out)

	out = renderOne(t, "{SOURCE|ifcontains:webrip:[RIP]:[DISC]}", values, fields...)
	require.Equal(t, "[DISC]", out)

	// An empty needle never matches.
	out = renderOne(t, "{SOURCE|ifcontains::yes:no}", values, fields...)
	require.Equal(t, "no", out)

	_, err := Render("{SOURCE|ifcontains:remux}", values, NewFieldSet(fields...))
	require.ErrorIs(t, err, ErrArgument)
}

func TestIfEq(t *testing.T) {
	fields := []string{"HDR"}

	out := renderOne(t, "{HDR|ifeq:HDR10: [hdr10]}", map[string]string{"HDR": "HDR10"}, fields...)
	require.Equal(t, " [hdr10]", out)

	// Exact equality, unlike ifcontains.
	out = renderOne(t, "{HDR|ifeq:hdr10: [hdr10]}", map[string]string{"HDR": "HDR10"}, fields...)
	require.Equal(t, "", out)
}

func TestNumericRules(t *testing.T) {
	fields := []string{"TITLE", "FPS"}

	out := renderOne(t, "{TITLE} - {FPS|ifge:60:%value%FPS}",
		map[string]string{"TITLE": "X", "FPS": "60.0"}, fields...)
	require.Equal(t, "X - 60.0FPS", out)

	out = renderOne(t, "{TITLE} - {FPS|ifge:60:%value%FPS}",
		map[string]string{"TITLE": "X", "FPS": "23.976"}, fields...)
	require.Equal(t, "X - ", out)

	// Frame rates expressed as fractions coerce too.
	out = renderOne(t, "{FPS|ifgt:59:high:low}", map[string]string{"FPS": "60000/1001"}, "FPS")
	require.Equal(t, "high", out)

	out = renderOne(t, "{FPS|iflt:30:cinema}", map[string]string{"FPS": "23,976"}, "FPS")
	require.Equal(t, "cinema", out)

	out = renderOne(t, "{FPS|ifle:24:cinema}", map[string]string{"FPS": "24"}, "FPS")
	require.Equal(t, "cinema", out)
}

func TestNumericRuleUnparsableComparesFalse(t *testing.T) {
	// Coercion failure on either side is false, never an error.
	out := renderOne(t, "{FPS|ifge:60:hfr:sdr}", map[string]string{"FPS": "unknown"}, "FPS")
	require.Equal(t, "sdr", out)

	out = renderOne(t, "{FPS|ifge:sixty:hfr:sdr}", map[string]string{"FPS": "60"}, "FPS")
	require.Equal(t, "sdr", out)
}

func TestRuleTextFieldSubstitution(t *testing.T) {
	fields := []string{"SOURCE", "TITLE", "YEAR"}
	values := map[string]string{"SOURCE": "BluRay", "TITLE": "Heat", "YEAR": "1995"}

	out := renderOne(t, "{SOURCE|ifexists:${TITLE} (${YEAR}) - %value%}", values, fields...)
	require.Equal(t, "Heat (1995) - BluRay", out)

	// Indexed references work inside rule text.
	out = renderOne(t, "{SOURCE|ifexists:${TITLE[0]}/%value%}", values, fields...)
	require.Equal(t, "H/BluRay", out)
}

func TestRuleTextValueTokenIsCaseInsensitive(t *testing.T) {
	values := map[string]string{"SOURCE": "BluRay"}

	out := renderOne(t, "{SOURCE|ifexists:%VALUE%}", values, "SOURCE")
	require.Equal(t, "BluRay", out)

	out = renderOne(t, "{SOURCE|ifexists:% value %}", values, "SOURCE")
	require.Equal(t, "BluRay", out)
}

func TestRuleTextUnknownFieldDegradesToEmpty(t *testing.T) {
	// Rule-text substitution is lenient: a reference to a field outside
	// the whitelist renders as empty instead of aborting.
	out := renderOne(t, "{SOURCE|ifexists:[${NOPE}%value%]}", map[string]string{"SOURCE": "x"}, "SOURCE")
	require.Equal(t, "[x]", out)
}

func TestRuleTextRejectsForbiddenSyntax(t *testing.T) {
	fields := NewFieldSet("SOURCE", "TITLE")

	err := Validate("{SOURCE|ifexists:${VALUE}}", fields)
	require.ErrorIs(t, err, ErrSyntax)

	err = Validate("{SOURCE|ifexists:${ value }}", fields)
	require.ErrorIs(t, err, ErrSyntax)

	err = Validate("{SOURCE|ifexists:$TITLE - %value%}", fields)
	require.ErrorIs(t, err, ErrSyntax)

	// The untaken branch is checked too.
	err = Validate("{SOURCE|ifexists:ok:$TITLE}", fields)
	require.ErrorIs(t, err, ErrSyntax)
}

func TestRuleElseRejoinsColons(t *testing.T) {
	out := renderOne(t, "{SOURCE|ifexists:%value%:no:source:found}", map[string]string{"SOURCE": ""}, "SOURCE")
	require.Equal(t, "no:source:found", out)
}
