package exporter

import (
	"strconv"
)

// formatFloat renders a float without trailing zero noise; broker amounts
// rarely need more precision than they carry.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatInt renders an int64 for CSV output.
func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}
