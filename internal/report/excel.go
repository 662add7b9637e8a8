package report

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/awhite/tasktally/internal/model"
)

// ExcelFileName is the spreadsheet report written next to summary.md.
const ExcelFileName = "summary.xlsx"

const sheetName = "Work Report"

// WriteExcel renders the report as a spreadsheet into dir/summary.xlsx,
// creating the directory if needed, and returns the written path.
func WriteExcel(rep *model.Report, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create report directory '%s': %w", dir, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeHeader(f); err != nil {
		return "", err
	}

	row := 2
	for _, entry := range rep.Entries {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return "", fmt.Errorf("resolve cell: %w", err)
		}
		values := []interface{}{entry.Text, round1(entry.Hours)}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return "", fmt.Errorf("write row %d: %w", row, err)
		}
		row++
	}

	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return "", fmt.Errorf("resolve cell: %w", err)
	}
	totalRow := []interface{}{"Total", round1(rep.Total)}
	if err := f.SetSheetRow(sheetName, cell, &totalRow); err != nil {
		return "", fmt.Errorf("write total row: %w", err)
	}

	if err := f.SetColWidth(sheetName, "A", "A", 60); err != nil {
		return "", fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", 12); err != nil {
		return "", fmt.Errorf("set column width: %w", err)
	}

	path := filepath.Join(dir, ExcelFileName)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("could not write report '%s': %w", path, err)
	}
	return path, nil
}

func writeHeader(f *excelize.File) error {
	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	headers := []interface{}{"Task", "Hours"}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "B1", style); err != nil {
		return fmt.Errorf("style headers: %w", err)
	}
	return nil
}

// round1 matches the one-decimal formatting of the markdown report.
func round1(h float64) float64 {
	return math.Round(h*10) / 10
}
