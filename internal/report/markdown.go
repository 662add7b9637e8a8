// Package report renders aggregated task hours to files on disk.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/awhite/tasktally/internal/model"
)

// MarkdownFileName is the report file written into the target directory.
const MarkdownFileName = "summary.md"

// WriteMarkdown renders the report into dir/summary.md, creating the
// directory (and missing parents) if needed, and returns the written path.
// An existing report is overwritten; identical input produces byte-identical
// output.
func WriteMarkdown(rep *model.Report, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create report directory '%s': %w", dir, err)
	}

	var b strings.Builder
	b.WriteString("# Work Report\n\n")
	b.WriteString("## Task Summary\n\n")
	if len(rep.Entries) == 0 {
		b.WriteString("- No tasks provided.\n")
	} else {
		for _, entry := range rep.Entries {
			fmt.Fprintf(&b, "- %s → %.1fh\n", entry.Text, entry.Hours)
		}
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "**Total Hours:** %.1fh\n", rep.Total)

	path := filepath.Join(dir, MarkdownFileName)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("could not write report '%s': %w", path, err)
	}
	return path, nil
}
