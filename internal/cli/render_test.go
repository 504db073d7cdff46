package cli

import (
	"testing"
)

func TestParseSetFlags(t *testing.T) {
	values, err := parseSetFlags([]string{"TITLE=Inception", "year=2010", "SOURCE=WEB-DL"})
	if err != nil {
		t.Fatalf("parseSetFlags: %v", err)
	}
	if values["TITLE"] != "Inception" {
		t.Errorf("expected TITLE=Inception, got %q", values["TITLE"])
	}
	if values["YEAR"] != "2010" {
		t.Errorf("expected lowercase key to normalize, got %q", values["YEAR"])
	}
	if values["SOURCE"] != "WEB-DL" {
		t.Errorf("expected SOURCE=WEB-DL, got %q", values["SOURCE"])
	}
}

func TestParseSetFlagsValueMayContainEquals(t *testing.T) {
	values, err := parseSetFlags([]string{"TITLE=A=B"})
	if err != nil {
		t.Fatalf("parseSetFlags: %v", err)
	}
	if values["TITLE"] != "A=B" {
		t.Errorf("expected value to keep the second equals, got %q", values["TITLE"])
	}
}

func TestParseSetFlagsRejectsMalformed(t *testing.T) {
	if _, err := parseSetFlags([]string{"TITLE"}); err == nil {
		t.Fatal("expected error for missing value")
	}
	if _, err := parseSetFlags([]string{"NOPE=x"}); err == nil {
		t.Fatal("expected error for unknown field")
	}
}
