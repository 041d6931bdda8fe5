package scicalc

import "strconv"

// FormatResult formats a result for display with six fractional digits.
func FormatResult(v float64) string {
	return FormatResultDigits(v, 6)
}

// FormatResultDigits formats a result with a fixed number of fractional
// digits.
func FormatResultDigits(v float64, digits int) string {
	return strconv.FormatFloat(v, 'f', digits, 64)
}

// FormatError formats an evaluation error for display.
func FormatError(err error) string {
	return "Error: " + err.Error()
}
