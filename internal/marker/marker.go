// Package marker extracts time-duration markers from free-form task text.
package marker

import (
	"regexp"
	"strconv"
	"strings"
)

// markerRegex matches a numeric magnitude followed by a recognized unit
// suffix. Unit alternatives are ordered longest-first within each family so
// the leftmost-preferring alternation always takes the longest suffix:
// "1.5hours" is a single 1.5-hour marker, never "1.5h" plus stray text.
var markerRegex = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(hours|hour|hrs|hr|h|minutes|minute|mins|min|m)\b`)

// Parse returns the hours contributed by each duration marker found in line,
// in left-to-right order. Matches are non-overlapping. Text that matches no
// marker is ignored rather than treated as an error.
func Parse(line string) []float64 {
	matches := markerRegex.FindAllStringSubmatch(line, -1)
	if len(matches) == 0 {
		return nil
	}

	hours := make([]float64, 0, len(matches))
	for _, m := range matches {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if strings.HasPrefix(strings.ToLower(m[2]), "m") {
			value /= 60
		}
		hours = append(hours, value)
	}
	return hours
}

// Hours returns the total hours from every marker in line, 0 if none match.
func Hours(line string) float64 {
	var total float64
	for _, h := range Parse(line) {
		total += h
	}
	return total
}
