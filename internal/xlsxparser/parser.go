// =============================================================================
// CSV to Invoice Generator - XLSX Parser Module
// =============================================================================
//
// Purchase-order exports arrive as .xlsx about as often as .csv, so this
// module parses XLSX workbooks into the same Table shape csvparser produces.
// Only the first sheet is read; the first row is the header row.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/csvparser"
)

// Parse reads an XLSX file and returns the parsed table.
func Parse(filePath string) (*csvparser.Table, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return tableFromWorkbook(f)
}

// ParseReader parses XLSX content from a reader (the HTTP shell's upload
// stream). excelize buffers the workbook internally.
func ParseReader(r io.Reader) (*csvparser.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return tableFromWorkbook(f)
}

// tableFromWorkbook extracts the first sheet into a Table.
func tableFromWorkbook(f *excelize.File) (*csvparser.Table, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column_%d", i+1)
		}
		headers[i] = h
	}

	dataRows := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		empty := true
		rowMap := make(map[string]string, len(headers))

		for i, header := range headers {
			value := ""
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			if value != "" {
				empty = false
			}
			rowMap[header] = value
		}

		if empty {
			continue
		}
		dataRows = append(dataRows, rowMap)
	}

	return &csvparser.Table{Headers: headers, Rows: dataRows}, nil
}
