package template

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	fractionRE = regexp.MustCompile(`(\d+)\s*/\s*(\d+)`)
	numberRE   = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
)

// parseNumber extracts a float from free-form text. It understands a/b
// fractions (common in probed frame rates like "24000/1001") and
// decimal-comma notation; otherwise the first numeric token wins.
func parseNumber(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, errors.New("empty numeric value")
	}

	if m := fractionRE.FindStringSubmatch(text); m != nil {
		num, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, err
		}
		den, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, err
		}
		if den == 0 {
			return 0, errors.New("division by zero")
		}
		return num / den, nil
	}

	token := numberRE.FindString(text)
	if token == "" {
		return 0, errors.New("no numeric token")
	}
	return strconv.ParseFloat(strings.ReplaceAll(token, ",", "."), 64)
}
