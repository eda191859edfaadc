package report

import (
	"math"
	"strconv"
	"strings"
)

const absent = "-"

// FormatDecimal renders one fractional digit with a comma separator.
func FormatDecimal(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return absent
	}
	return strings.Replace(strconv.FormatFloat(v, 'f', 1, 64), ".", ",", 1)
}

// FormatOptional renders nil as the absent placeholder.
func FormatOptional(v *float64) string {
	if v == nil {
		return absent
	}
	return FormatDecimal(*v)
}
