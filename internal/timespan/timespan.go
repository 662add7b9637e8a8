// Package timespan computes cumulative hours over an inclusive date range.
package timespan

import (
	"fmt"
	"strings"
	"time"

	"github.com/awhite/tasktally/internal/model"
)

// CommentMarker tags posted summary comments so reruns update the existing
// comment instead of adding a duplicate.
const CommentMarker = "<!-- range-hours-summary -->"

// Band is the daily-hours band used to estimate totals when the task log has
// no dated entries.
type Band struct {
	Min float64 `yaml:"min"`
	Avg float64 `yaml:"avg"`
	Max float64 `yaml:"max"`
}

// DefaultBand is the 8-9 h/day estimate band.
var DefaultBand = Band{Min: 8.0, Avg: 8.5, Max: 9.0}

// Range is an inclusive date range.
type Range struct {
	Start time.Time
	End   time.Time
}

// ParseRange parses start and end as YYYY-MM-DD and validates their order.
func ParseRange(startStr, endStr string) (Range, error) {
	start, err := time.Parse(model.DateLayout, startStr)
	if err != nil {
		return Range{}, fmt.Errorf("invalid start date format, use YYYY-MM-DD: %w", err)
	}
	end, err := time.Parse(model.DateLayout, endStr)
	if err != nil {
		return Range{}, fmt.Errorf("invalid end date format, use YYYY-MM-DD: %w", err)
	}
	if end.Before(start) {
		return Range{}, fmt.Errorf("end date cannot be before start date")
	}
	return Range{Start: start, End: end}, nil
}

// Days returns each date in the range, start through end inclusive.
func (r Range) Days() []time.Time {
	var days []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func isWorkday(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// CountDays counts the days in the range, Mon-Fri only when workdaysOnly is
// set.
func (r Range) CountDays(workdaysOnly bool) int {
	count := 0
	for _, d := range r.Days() {
		if !workdaysOnly || isWorkday(d) {
			count++
		}
	}
	return count
}

// SumTotals sums exact per-day hours for the dates inside the range.
func (r Range) SumTotals(totals model.DayTotals, workdaysOnly bool) float64 {
	var sum float64
	for _, d := range r.Days() {
		if workdaysOnly && !isWorkday(d) {
			continue
		}
		sum += totals[d.Format(model.DateLayout)]
	}
	return sum
}

// Summary carries everything BuildComment needs to render a range summary.
// ExactTotal is nil when no dated log entries were available and the daily
// band should be used instead.
type Summary struct {
	Range        Range
	WorkdaysOnly bool
	DaysCounted  int
	ExactTotal   *float64
	Band         Band
}

// BuildComment renders the markdown body posted to the GitHub issue. The body
// always starts with CommentMarker so a later run can find and update it.
func BuildComment(s Summary) string {
	var b strings.Builder
	b.WriteString(CommentMarker + "\n\n")

	mode := "All calendar days"
	if s.WorkdaysOnly {
		mode = "Working days (Mon-Fri)"
	}
	fmt.Fprintf(&b, "**%s counted between %s and %s (inclusive).**\n\n",
		mode, s.Range.Start.Format(model.DateLayout), s.Range.End.Format(model.DateLayout))
	fmt.Fprintf(&b, "Total counted days: %d\n\n", s.DaysCounted)

	if s.ExactTotal != nil {
		fmt.Fprintf(&b, "**Exact total hours:** **%.1f hours**\n\n", *s.ExactTotal)
	} else {
		days := float64(s.DaysCounted)
		fmt.Fprintf(&b, "Estimated totals (daily band %.1f to %.1f h/day):\n\n", s.Band.Min, s.Band.Max)
		fmt.Fprintf(&b, "- %.1f h/day → **%.1f hours**\n", s.Band.Min, days*s.Band.Min)
		fmt.Fprintf(&b, "- %.1f h/day → **%.1f hours** (recommended midpoint)\n", s.Band.Avg, days*s.Band.Avg)
		fmt.Fprintf(&b, "- %.1f h/day → **%.1f hours**\n\n", s.Band.Max, days*s.Band.Max)
	}

	b.WriteString("_This comment is auto-updated by TaskTally._\n")
	return b.String()
}
