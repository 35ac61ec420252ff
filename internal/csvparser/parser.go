// =============================================================================
// CSV to Invoice Generator - CSV Parser Module
// =============================================================================
//
// This module parses CSV exports into a generic table: a header row plus
// data rows addressed by header name. It tolerates the usual export quirks:
//   - Whitespace around header names (trimmed before matching)
//   - Quoted fields with embedded commas
//   - Rows with fewer columns than the header (missing cells become "")
//   - Fully empty rows (skipped)
//
// The same Table shape is produced by the xlsxparser module, so everything
// downstream is format-agnostic.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// =============================================================================
// TABLE STRUCTURE
// =============================================================================

// Table represents a parsed tabular export.
type Table struct {
	// Headers contains the column headers, whitespace-trimmed, in file order.
	Headers []string

	// Rows contains the data rows as maps of header -> value.
	// Values are whitespace-trimmed. Cells absent from a short row are "".
	Rows []map[string]string
}

// HasHeader reports whether the table contains the given header.
// The argument is trimmed before comparison, matching how headers are stored.
func (t *Table) HasHeader(name string) bool {
	name = strings.TrimSpace(name)
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file and returns the parsed table.
func Parse(filePath string) (*Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(bufio.NewReader(file))
}

// ParseReader parses CSV content from a reader. This is the entry point used
// by the HTTP shell, which hands uploads over without touching the disk.
func ParseReader(r io.Reader) (*Table, error) {
	csvReader := csv.NewReader(r)

	// Exports are not always rectangular.
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true
	csvReader.TrimLeadingSpace = true

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(allRows) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	return buildTable(allRows)
}

// buildTable converts raw rows into a Table: first row becomes the headers,
// the remainder become data rows.
func buildTable(allRows [][]string) (*Table, error) {
	headers := cleanHeaders(allRows[0])

	rows := make([]map[string]string, 0, len(allRows)-1)
	for _, row := range allRows[1:] {
		if isRowEmpty(row) {
			continue
		}

		rowMap := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(row) {
				rowMap[header] = strings.TrimSpace(row[i])
			} else {
				rowMap[header] = ""
			}
		}

		rows = append(rows, rowMap)
	}

	return &Table{Headers: headers, Rows: rows}, nil
}

// cleanHeaders trims header values and names unlabeled columns.
func cleanHeaders(raw []string) []string {
	cleaned := make([]string, len(raw))

	for i, header := range raw {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}

	return cleaned
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
