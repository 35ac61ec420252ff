// =============================================================================
// CSV to Invoice Generator - Row Grouper
// =============================================================================
//
// This module partitions the uploaded rows into invoice groups. There are
// two modes:
//
//   PO MODE:
//     Rows are grouped by the document (purchase order) number, exact string
//     equality on the raw field value. Output order is the order each
//     document number first appears. The group's display name is the first
//     non-blank vendor name in the group; rows whose item field is blank are
//     treated as header-only rows and excluded from the line items, unless
//     that would leave the group empty.
//
//   VENDOR-ONLY MODE:
//     One group per distinct vendor name (duplicates collapsed,
//     first-appearance order). Line items are not taken from the upload at
//     all — the caller fills them in from the synthetic data generator.
//
// VALIDATION:
//   Each mode has a required header set. A missing header is a hard
//   validation failure reported with every missing name; no partial
//   processing occurs.
//
// =============================================================================

package grouper

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/config"
	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/csvparser"
	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/currency"
	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/types"
)

// UnknownCompany is the display name used when every row in a group left
// the vendor name blank.
const UnknownCompany = "Unknown Company"

// =============================================================================
// VALIDATION ERROR
// =============================================================================

// MissingColumnsError reports required headers absent from the upload.
// It is returned before any grouping happens.
type MissingColumnsError struct {
	// Missing lists the absent header names in required order.
	Missing []string
}

// Error implements the error interface.
func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("upload is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// =============================================================================
// MODE DETECTION AND VALIDATION
// =============================================================================

// DetectMode resolves the processing mode for a table. A forced mode from
// the configuration wins; under ModeAuto the presence of the document-number
// column selects PO mode, and its absence selects vendor-only mode.
func DetectMode(table *csvparser.Table, cols config.Columns, configured string) string {
	switch configured {
	case config.ModePO, config.ModeVendor:
		return configured
	}

	if table.HasHeader(cols.DocumentNumber) {
		return config.ModePO
	}
	return config.ModeVendor
}

// ValidateColumns checks the required header set for a mode.
//
// PO mode requires the name, document number, amount, item, quantity, and
// item rate columns; vendor-only mode requires only the name column.
// Returns a *MissingColumnsError listing every absent header, or nil.
func ValidateColumns(table *csvparser.Table, cols config.Columns, mode string) error {
	var required []string
	if mode == config.ModeVendor {
		required = []string{cols.Name}
	} else {
		required = []string{
			cols.Name,
			cols.DocumentNumber,
			cols.Amount,
			cols.Item,
			cols.Quantity,
			cols.ItemRate,
		}
	}

	var missing []string
	for _, name := range required {
		if !table.HasHeader(name) {
			missing = append(missing, strings.TrimSpace(name))
		}
	}

	if len(missing) > 0 {
		return &MissingColumnsError{Missing: missing}
	}
	return nil
}

// =============================================================================
// PO MODE GROUPING
// =============================================================================

// GroupByDocument partitions rows by document number and builds one invoice
// group per distinct value, in first-appearance order.
func GroupByDocument(table *csvparser.Table, cols config.Columns) []types.InvoiceGroup {
	grouped := make(map[string][]map[string]string)
	var order []string

	for _, row := range table.Rows {
		key := row[cols.DocumentNumber]
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], row)
	}

	groups := make([]types.InvoiceGroup, 0, len(order))
	for _, key := range order {
		rows := grouped[key]

		groups = append(groups, types.InvoiceGroup{
			GroupKey:        key,
			DisplayName:     resolveDisplayName(rows, cols),
			Items:           buildLineItems(detailRows(rows, cols), cols),
			ReferenceNumber: key,
		})
	}

	return groups
}

// resolveDisplayName picks the first non-blank vendor name in original row
// order, falling back to UnknownCompany.
func resolveDisplayName(rows []map[string]string, cols config.Columns) string {
	for _, row := range rows {
		if name := strings.TrimSpace(row[cols.Name]); name != "" {
			return name
		}
	}
	return UnknownCompany
}

// detailRows filters a group to rows carrying a real line item (non-blank
// item field). If no row qualifies the full group stands in, so a group
// that held only a header-like row still produces line items.
func detailRows(rows []map[string]string, cols config.Columns) []map[string]string {
	var details []map[string]string
	for _, row := range rows {
		if strings.TrimSpace(row[cols.Item]) != "" {
			details = append(details, row)
		}
	}

	if len(details) == 0 {
		return rows
	}
	return details
}

// buildLineItems converts detail rows into line items. Amount and rate go
// through the lenient currency parser; a quantity that does not parse to a
// positive number defaults to 1.
func buildLineItems(rows []map[string]string, cols config.Columns) []types.LineItem {
	items := make([]types.LineItem, 0, len(rows))

	for _, row := range rows {
		quantity := currency.Parse(row[cols.Quantity])
		if quantity <= 0 {
			quantity = 1
		}

		items = append(items, types.LineItem{
			Description: strings.TrimSpace(row[cols.Item]),
			Quantity:    quantity,
			UnitRate:    currency.Parse(row[cols.ItemRate]),
			Amount:      currency.Parse(row[cols.Amount]),
		})
	}

	return items
}

// =============================================================================
// VENDOR-ONLY MODE GROUPING
// =============================================================================

// GroupByVendor builds one group per distinct non-blank vendor name, in
// first-appearance order. Items are left nil; the caller synthesizes them.
func GroupByVendor(table *csvparser.Table, cols config.Columns) []types.InvoiceGroup {
	seen := make(map[string]bool)
	var groups []types.InvoiceGroup

	for _, row := range table.Rows {
		name := strings.TrimSpace(row[cols.Name])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		groups = append(groups, types.InvoiceGroup{
			GroupKey:    name,
			DisplayName: name,
			Synthetic:   true,
		})
	}

	return groups
}
