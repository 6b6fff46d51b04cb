package util

import (
	"math"
	"strconv"
)

// FormatAmount renders a decimal amount with its currency code for terminal
// output, e.g. "1250.50 INR". Not-a-number amounts render as a dash so a bad
// import row never leaks "NaN" into a report.
func FormatAmount(amount float64, currency string) string {
	if math.IsNaN(amount) {
		return "- " + currency
	}
	return strconv.FormatFloat(amount, 'f', 2, 64) + " " + currency
}
