package xlsxparser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds a single-sheet workbook from rows and saves it under
// the test's temp directory.
func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	return path
}

// TestParseWorkbook: an XLSX export produces the same table shape as CSV,
// with trimmed headers and values.
func TestParseWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{" Name ", "Document Number", "Amount"},
		{"Acme", "PO1", "(100.00)"},
		{"", "PO1", "50.00"},
	})

	table, err := Parse(path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if table.Headers[0] != "Name" {
		t.Fatalf("headers[0] = %q, want Name (trimmed)", table.Headers[0])
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(table.Rows))
	}
	if table.Rows[0]["Amount"] != "(100.00)" {
		t.Fatalf("Amount = %q, want raw accounting value", table.Rows[0]["Amount"])
	}
	if table.Rows[1]["Name"] != "" {
		t.Fatalf("Name = %q, want empty cell preserved as empty", table.Rows[1]["Name"])
	}
}

// TestParseWorkbookSkipsEmptyRows mirrors the CSV parser's row filtering.
func TestParseWorkbookSkipsEmptyRows(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Name"},
		{""},
		{"Acme"},
	})

	table, err := Parse(path)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(table.Rows) != 1 || table.Rows[0]["Name"] != "Acme" {
		t.Fatalf("unexpected rows %+v", table.Rows)
	}
}

// TestParseReader exercises the upload-stream entry point.
func TestParseReader(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	row1 := []interface{}{"Name"}
	row2 := []interface{}{"Beta"}
	if err := f.SetSheetRow(sheet, "A1", &row1); err != nil {
		t.Fatalf("set row: %v", err)
	}
	if err := f.SetSheetRow(sheet, "A2", &row2); err != nil {
		t.Fatalf("set row: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	table, err := ParseReader(buf)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(table.Rows) != 1 || table.Rows[0]["Name"] != "Beta" {
		t.Fatalf("unexpected table %+v", table)
	}
}
