// Package model defines the core data structures for TaskTally.
package model

// DateLayout is the ISO date layout used for dated log lines.
const DateLayout = "2006-01-02"

// Entry is one non-empty task line paired with its computed hours.
type Entry struct {
	Text  string
	Hours float64
}

// Report is the ordered collection of task entries plus the grand total.
// Entries keep file order; Total is accumulated in the same order.
type Report struct {
	Entries []Entry
	Total   float64
}

// DayTotals maps an ISO date (YYYY-MM-DD) to the hours logged on that day.
type DayTotals map[string]float64
