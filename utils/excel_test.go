package utils

import "testing"

func TestParseExcelDate(t *testing.T) {
	tests := []struct {
		name    string
		cell    string
		want    string
		wantErr bool
	}{
		{"iso date", "2024-06-15", "2024-06-15", false},
		{"slash format", "15/06/2024", "2024-06-15", false},
		{"dash format", "15-06-2024", "2024-06-15", false},
		{"single digit day and month", "5/6/2024", "2024-06-05", false},
		{"unix epoch serial", "25569", "1970-01-01", false},
		{"recent serial", "45292", "2024-01-01", false},
		{"empty cell", "", "", false},
		{"padded cell", "  2024-06-15  ", "2024-06-15", false},
		{"serial below range", "0", "", true},
		{"garbage", "next tuesday", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExcelDate(tt.cell)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseExcelDate(%q) error = %v, wantErr %v", tt.cell, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseExcelDate(%q) = %q, want %q", tt.cell, got, tt.want)
			}
		})
	}
}

func TestCellAt(t *testing.T) {
	row := []string{" first ", "second"}
	if got := CellAt(row, 0); got != "first" {
		t.Errorf("CellAt(row, 0) = %q, want %q", got, "first")
	}
	if got := CellAt(row, 5); got != "" {
		t.Errorf("CellAt(row, 5) = %q, want empty", got)
	}
}

func TestWorkbookRoundTrip(t *testing.T) {
	f, err := NewWorkbook("Data", []string{"Name", "Value"})
	if err != nil {
		t.Fatalf("NewWorkbook: %v", err)
	}
	defer f.Close()

	if err := WriteRow(f, "Data", 2, []interface{}{"alpha", 7}); err != nil {
		t.Fatalf("WriteRow: %v", err)
	}
	rows, err := SheetRows(f)
	if err != nil {
		t.Fatalf("SheetRows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d data rows, want 1", len(rows))
	}
	if CellAt(rows[0], 0) != "alpha" || CellAt(rows[0], 1) != "7" {
		t.Errorf("unexpected row contents: %v", rows[0])
	}
}
