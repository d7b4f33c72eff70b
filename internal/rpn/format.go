package rpn

import (
	"fmt"
	"strings"
)

// FormatValue renders a result as a canonical decimal string: exact
// zero is "0"; anything else prints with 12 digits after the point,
// then trailing zeros and a trailing dot are stripped, and a stripped
// "-0" normalizes to "0".
func FormatValue(v float64) string {
	if v == 0 {
		return "0"
	}
	s := fmt.Sprintf("%.12f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
