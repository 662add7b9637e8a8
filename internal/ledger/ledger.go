// Package ledger reads a plain-text task log and aggregates hours per task.
package ledger

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/awhite/tasktally/internal/marker"
	"github.com/awhite/tasktally/internal/model"
)

var isoDateRegex = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)

// Load reads the task file and builds a report: one entry per stripped
// non-empty line, hours summed from that line's duration markers, grand total
// accumulated in file order. A missing or unreadable path is surfaced as an
// error; a line without markers still becomes an entry with zero hours.
func Load(path string) (*model.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read task file '%s': %w", path, err)
	}

	rep := &model.Report{}
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		hours := marker.Hours(line)
		rep.Entries = append(rep.Entries, model.Entry{Text: line, Hours: hours})
		rep.Total += hours
	}
	return rep, nil
}

// LoadDaily reads the task file and sums marker hours per ISO-dated line.
// Lines without a parseable YYYY-MM-DD date or without duration markers are
// skipped.
func LoadDaily(path string) (model.DayTotals, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read task file '%s': %w", path, err)
	}

	totals := make(model.DayTotals)
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		m := isoDateRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if _, err := time.Parse(model.DateLayout, m[1]); err != nil {
			continue
		}
		if hours := marker.Hours(line); hours > 0 {
			totals[m[1]] += hours
		}
	}
	return totals, nil
}
