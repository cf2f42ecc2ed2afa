package util

import (
	"math"
	"strconv"
	"strings"
)

func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func ContainsAnyFold(haystack string, needles []string) bool {
	lower := strings.ToLower(haystack)
	for _, needle := range needles {
		if strings.Contains(lower, strings.ToLower(needle)) {
			return true
		}
	}
	return false
}

// DigitString keeps only the decimal digits of the input, in order.
func DigitString(input string) string {
	out := strings.Builder{}
	for _, r := range input {
		if r >= '0' && r <= '9' {
			out.WriteRune(r)
		}
	}
	return out.String()
}

func Round(value float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(value*shift) / shift
}

// ParseFloatLoose parses a numeric field that may use a decimal comma.
// Returns nil when the field is empty or not numeric.
func ParseFloatLoose(input string) *float64 {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", ".")
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func FloatPtr(v float64) *float64 { return &v }

func StringPtr(v string) *string { return &v }
