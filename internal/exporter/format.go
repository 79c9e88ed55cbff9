package exporter

import (
	"strconv"
)

// formatFloat formats a float64 in its shortest exact decimal form so a
// value read back from a spreadsheet compares equal as text
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatInt formats an int64 value
func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}
