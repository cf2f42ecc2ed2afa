package util

import (
	"strconv"
	"strings"
)

// ParseConcentration extracts the concentration from a fragment of the
// "Substances actives" field, e.g. "80 %" or "400 g/L". The source encodes
// percentages as figures needing a /10 scale and gram-per-liter figures
// pre-scaled by 100; both divisors are part of the file format and must not
// be changed. Returns nil when the fragment carries no number.
func ParseConcentration(fragment string) *float64 {
	digits := DigitString(fragment)
	if digits == "" {
		return nil
	}
	raw, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return nil
	}

	var value float64
	if strings.Contains(fragment, "%") {
		value = raw / 10
	} else {
		// " g/" (with the leading space, not to catch kg) lands here too.
		value = raw / 100
	}
	return FloatPtr(Round(value, 2))
}

// ConcentrationFragment isolates the concentration text of a substance
// description: the part after the first "(" and then after the first ") ",
// e.g. "Cuivre (sous forme de sulfate) 200 g/L" -> "200 g/L".
// Empty when the description has no such structure.
func ConcentrationFragment(substances string) string {
	_, after, found := strings.Cut(substances, "(")
	if !found {
		return ""
	}
	_, fragment, found := strings.Cut(after, ") ")
	if !found {
		return ""
	}
	return fragment
}
