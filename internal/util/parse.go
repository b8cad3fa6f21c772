package util

import (
	"regexp"
	"strconv"
	"strings"
)

func SafeAtoi(s string) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return i
}

var nonNumericRegex = regexp.MustCompile(`[^\d]`)

// CleanNumericString strips everything but digits, so prize strings such as
// "₹1,00,000" or "INR 50,000+" reduce to their numeric part.
func CleanNumericString(s string) string {
	return nonNumericRegex.ReplaceAllString(s, "")
}

// ParsePrizeAmount converts a display prize string to rupees. Unparsable
// input yields 0.
func ParsePrizeAmount(s string) int {
	return SafeAtoi(CleanNumericString(s))
}
