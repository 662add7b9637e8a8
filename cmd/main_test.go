package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// --- Test Setup ---

func writeTasksFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write tasks file: %v", err)
	}
	return path
}

// executeCommandText captures plain text output from a command.
func executeCommandText(t *testing.T, args ...string) string {
	t.Helper()
	b := new(bytes.Buffer)

	// Set the command's output to our buffer
	rootCmd.SetOut(b)
	rootCmd.SetErr(b)
	rootCmd.SetArgs(args)

	// Reset flags to default values before each run
	rootCmd.Flags().Set("report-dir", "")
	rootCmd.Flags().Set("xlsx", "false")
	rangeCmd.Flags().Set("calendar", "false")
	rangeCmd.Flags().Set("tasks-file", "")
	rangeCmd.Flags().Set("post", "false")

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command execution failed: %v", err)
	}

	return b.String()
}

// --- Test Functions ---

func TestSummarizeCommand(t *testing.T) {
	tasks := writeTasksFile(t, "Wrote docs 2h\nFixed bug 1.5 hours\nMeeting 30m\n")
	dir := filepath.Join(t.TempDir(), "Report")

	t.Run("writes summary.md and prints the total", func(t *testing.T) {
		output := executeCommandText(t, tasks, "--report-dir", dir)

		if !strings.Contains(output, "Report saved to: "+filepath.Join(dir, "summary.md")) {
			t.Errorf("output missing report path:\n%s", output)
		}
		if !strings.Contains(output, "Total hours: 4.0") {
			t.Errorf("output missing total:\n%s", output)
		}

		content, err := os.ReadFile(filepath.Join(dir, "summary.md"))
		if err != nil {
			t.Fatalf("summary.md not written: %v", err)
		}
		if !strings.Contains(string(content), "- Meeting 30m → 0.5h") {
			t.Errorf("summary.md missing task entry:\n%s", content)
		}
		if !strings.Contains(string(content), "**Total Hours:** 4.0h") {
			t.Errorf("summary.md missing grand total:\n%s", content)
		}
	})

	t.Run("marker-free lines report zero hours", func(t *testing.T) {
		noMarker := writeTasksFile(t, "Reviewed PR\n")
		zeroDir := filepath.Join(t.TempDir(), "Report")

		output := executeCommandText(t, noMarker, "--report-dir", zeroDir)
		if !strings.Contains(output, "Total hours: 0.0") {
			t.Errorf("output missing zero total:\n%s", output)
		}

		content, err := os.ReadFile(filepath.Join(zeroDir, "summary.md"))
		if err != nil {
			t.Fatalf("summary.md not written: %v", err)
		}
		if !strings.Contains(string(content), "- Reviewed PR → 0.0h") {
			t.Errorf("summary.md missing zero-hour entry:\n%s", content)
		}
	})

	t.Run("xlsx flag writes the spreadsheet too", func(t *testing.T) {
		xlsxDir := filepath.Join(t.TempDir(), "Report")

		executeCommandText(t, tasks, "--report-dir", xlsxDir, "--xlsx")

		if _, err := os.Stat(filepath.Join(xlsxDir, "summary.xlsx")); err != nil {
			t.Errorf("summary.xlsx not written: %v", err)
		}
	})
}

func TestRangeCommand(t *testing.T) {
	t.Run("estimates from the daily band", func(t *testing.T) {
		output := executeCommandText(t, "range", "--start", "2026-01-05", "--end", "2026-01-11")

		if !strings.Contains(output, "Range hours summary: 2026-01-05 → 2026-01-11") {
			t.Errorf("output missing range header:\n%s", output)
		}
		if !strings.Contains(output, "Total counted days: 5") {
			t.Errorf("output missing workday count:\n%s", output)
		}
		if !strings.Contains(output, "- 8.5 h/day → **42.5 hours** (recommended midpoint)") {
			t.Errorf("output missing midpoint estimate:\n%s", output)
		}
	})

	t.Run("uses exact totals from a dated tasks file", func(t *testing.T) {
		tasks := writeTasksFile(t, "2026-01-05 Worked 9 hours\n2026-01-06 Worked 8h 30m\n")

		output := executeCommandText(t, "range",
			"--start", "2026-01-05", "--end", "2026-01-11", "--tasks-file", tasks)

		if !strings.Contains(output, "**Exact total hours:** **17.5 hours**") {
			t.Errorf("output missing exact total:\n%s", output)
		}
		if strings.Contains(output, "Estimated totals") {
			t.Errorf("exact run should not print estimates:\n%s", output)
		}
	})

	t.Run("calendar flag counts all days", func(t *testing.T) {
		output := executeCommandText(t, "range",
			"--start", "2026-01-05", "--end", "2026-01-11", "--calendar")

		if !strings.Contains(output, "All calendar days") {
			t.Errorf("output missing calendar mode:\n%s", output)
		}
		if !strings.Contains(output, "Total counted days: 7") {
			t.Errorf("output missing calendar count:\n%s", output)
		}
	})
}
