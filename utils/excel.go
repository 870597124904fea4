package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// excelEpochOffset is the number of days between the Excel serial epoch
// (1899-12-30, as stored) and the Unix epoch.
const excelEpochOffset = 25569

// ParseExcelDate normalizes a spreadsheet cell into a YYYY-MM-DD string.
// Accepts YYYY-MM-DD, DD/MM/YYYY, DD-MM-YYYY and raw Excel serial numbers.
func ParseExcelDate(cell string) (string, error) {
	value := strings.TrimSpace(cell)
	if value == "" {
		return "", nil
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		if serial < 1 {
			return "", fmt.Errorf("invalid excel date serial %q", cell)
		}
		seconds := math.Round((serial - excelEpochOffset) * 86400)
		return time.Unix(int64(seconds), 0).UTC().Format(DateLayout), nil
	}

	for _, layout := range []string{DateLayout, "02/01/2006", "02-01-2006", "2/1/2006"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("unrecognized date value %q", cell)
}

// NewWorkbook creates a single-sheet workbook with a bold header row.
func NewWorkbook(sheet string, headers []string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	styleID, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, styleID); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// WriteRow writes values into a 1-based worksheet row.
func WriteRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

// SheetRows returns the data rows of the first sheet, header excluded.
func SheetRows(f *excelize.File) ([][]string, error) {
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

// CellAt returns the trimmed cell at index i, or "" when the row is short.
func CellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
