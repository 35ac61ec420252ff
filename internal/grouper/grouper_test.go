package grouper

import (
	"strings"
	"testing"

	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/config"
	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/csvparser"
)

var cols = config.Default().Columns

// poTable builds a PO-mode table from (name, doc, item, amount) tuples.
func poTable(rows ...[4]string) *csvparser.Table {
	t := &csvparser.Table{
		Headers: []string{cols.Name, cols.DocumentNumber, cols.Amount, cols.Item, cols.Quantity, cols.ItemRate},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, map[string]string{
			cols.Name:           r[0],
			cols.DocumentNumber: r[1],
			cols.Item:           r[2],
			cols.Amount:         r[3],
		})
	}
	return t
}

// =============================================================================
// MODE DETECTION AND VALIDATION
// =============================================================================

func TestDetectMode(t *testing.T) {
	po := poTable([4]string{"Acme", "PO1", "Widget", "1"})
	vendors := &csvparser.Table{Headers: []string{cols.Name}}

	if got := DetectMode(po, cols, config.ModeAuto); got != config.ModePO {
		t.Fatalf("DetectMode(po table) = %q, want po", got)
	}
	if got := DetectMode(vendors, cols, config.ModeAuto); got != config.ModeVendor {
		t.Fatalf("DetectMode(vendor table) = %q, want vendor", got)
	}
	// A forced mode wins over detection.
	if got := DetectMode(po, cols, config.ModeVendor); got != config.ModeVendor {
		t.Fatalf("DetectMode(forced vendor) = %q, want vendor", got)
	}
}

func TestValidateColumnsPO(t *testing.T) {
	table := &csvparser.Table{Headers: []string{cols.Name, cols.DocumentNumber, cols.Item, cols.Quantity, cols.ItemRate}}

	err := ValidateColumns(table, cols, config.ModePO)
	if err == nil {
		t.Fatalf("expected missing-columns error")
	}

	mce, ok := err.(*MissingColumnsError)
	if !ok {
		t.Fatalf("error type = %T, want *MissingColumnsError", err)
	}
	if len(mce.Missing) != 1 || mce.Missing[0] != "Amount" {
		t.Fatalf("Missing = %v, want [Amount]", mce.Missing)
	}
	if !strings.Contains(err.Error(), "Amount") {
		t.Fatalf("error message %q does not name the missing column", err.Error())
	}
}

func TestValidateColumnsVendorMode(t *testing.T) {
	// Vendor-only mode requires only the name column.
	table := &csvparser.Table{Headers: []string{cols.Name}}
	if err := ValidateColumns(table, cols, config.ModeVendor); err != nil {
		t.Fatalf("vendor-mode validation failed: %v", err)
	}

	if err := ValidateColumns(&csvparser.Table{Headers: []string{"Other"}}, cols, config.ModeVendor); err == nil {
		t.Fatalf("expected missing Name error")
	}
}

func TestValidateColumnsListsAllMissing(t *testing.T) {
	table := &csvparser.Table{Headers: []string{cols.Name}}

	err := ValidateColumns(table, cols, config.ModePO)
	mce, ok := err.(*MissingColumnsError)
	if !ok {
		t.Fatalf("error type = %T, want *MissingColumnsError", err)
	}
	if len(mce.Missing) != 5 {
		t.Fatalf("Missing = %v, want all five absent columns", mce.Missing)
	}
}

// =============================================================================
// PO MODE GROUPING
// =============================================================================

// TestGroupByDocumentDistinct: N distinct document numbers produce exactly
// N groups, in first-appearance order.
func TestGroupByDocumentDistinct(t *testing.T) {
	table := poTable(
		[4]string{"Acme", "PO2", "Widget", "10"},
		[4]string{"Beta", "PO1", "Gadget", "20"},
		[4]string{"Acme", "PO2", "Sprocket", "30"},
		[4]string{"Gamma", "PO3", "Gizmo", "40"},
	)

	groups := GroupByDocument(table, cols)
	if len(groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(groups))
	}

	wantOrder := []string{"PO2", "PO1", "PO3"}
	for i, key := range wantOrder {
		if groups[i].GroupKey != key {
			t.Fatalf("group[%d] = %q, want %q (first-appearance order)", i, groups[i].GroupKey, key)
		}
		if groups[i].ReferenceNumber != key {
			t.Fatalf("group[%d] reference = %q, want %q", i, groups[i].ReferenceNumber, key)
		}
		if groups[i].Synthetic {
			t.Fatalf("PO-mode group marked synthetic")
		}
	}

	if len(groups[0].Items) != 2 {
		t.Fatalf("PO2 items = %d, want 2", len(groups[0].Items))
	}
}

// TestGroupDisplayName: first non-blank name in original row order wins;
// all-blank groups fall back to "Unknown Company".
func TestGroupDisplayName(t *testing.T) {
	table := poTable(
		[4]string{"", "PO1", "Widget", "10"},
		[4]string{"Acme", "PO1", "Gadget", "20"},
		[4]string{"Other Name", "PO1", "Gizmo", "30"},
		[4]string{"", "PO2", "Widget", "10"},
	)

	groups := GroupByDocument(table, cols)
	if groups[0].DisplayName != "Acme" {
		t.Fatalf("PO1 display name = %q, want Acme", groups[0].DisplayName)
	}
	if groups[1].DisplayName != UnknownCompany {
		t.Fatalf("PO2 display name = %q, want %q", groups[1].DisplayName, UnknownCompany)
	}
}

// TestGroupDetailFallback: a group holding only header-like rows (blank
// item field) still produces line items from the full row set.
func TestGroupDetailFallback(t *testing.T) {
	table := poTable(
		[4]string{"Acme", "PO1", "", "100"},
		[4]string{"Acme", "PO1", "  ", "200"},
	)

	groups := GroupByDocument(table, cols)
	if len(groups[0].Items) != 2 {
		t.Fatalf("items = %d, want full group as fallback", len(groups[0].Items))
	}
}

// TestGroupDetailFilter: header-only rows are excluded when real detail
// rows exist.
func TestGroupDetailFilter(t *testing.T) {
	table := poTable(
		[4]string{"Acme", "PO1", "", "999"},
		[4]string{"Acme", "PO1", "Widget", "(100.00)"},
	)

	groups := GroupByDocument(table, cols)
	if len(groups[0].Items) != 1 {
		t.Fatalf("items = %d, want header row filtered out", len(groups[0].Items))
	}
	if groups[0].Items[0].Amount != -100 {
		t.Fatalf("amount = %v, want -100 (parsed accounting negative)", groups[0].Items[0].Amount)
	}
}

// TestGroupLineItemFields checks lenient parsing of quantity and rate.
func TestGroupLineItemFields(t *testing.T) {
	table := poTable([4]string{"Acme", "PO1", "Widget", "$1,234.56"})
	table.Rows[0][cols.Quantity] = "3"
	table.Rows[0][cols.ItemRate] = "411.52"

	item := GroupByDocument(table, cols)[0].Items[0]
	if item.Quantity != 3 {
		t.Fatalf("quantity = %v, want 3", item.Quantity)
	}
	if item.UnitRate != 411.52 {
		t.Fatalf("rate = %v, want 411.52", item.UnitRate)
	}
	if item.Amount != 1234.56 {
		t.Fatalf("amount = %v, want 1234.56", item.Amount)
	}

	// Unparseable or missing quantity defaults to 1.
	table.Rows[0][cols.Quantity] = "n/a"
	if got := GroupByDocument(table, cols)[0].Items[0].Quantity; got != 1 {
		t.Fatalf("quantity = %v, want default 1", got)
	}
}

// =============================================================================
// VENDOR-ONLY MODE GROUPING
// =============================================================================

// TestGroupByVendor: duplicates collapse, blanks are skipped, order is
// first appearance, and items are left for the synthesizer.
func TestGroupByVendor(t *testing.T) {
	table := &csvparser.Table{
		Headers: []string{cols.Name},
		Rows: []map[string]string{
			{cols.Name: "Acme"},
			{cols.Name: "Acme"},
			{cols.Name: ""},
			{cols.Name: "Beta"},
			{cols.Name: "Acme"},
		},
	}

	groups := GroupByVendor(table, cols)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2 (deduplicated)", len(groups))
	}
	if groups[0].DisplayName != "Acme" || groups[1].DisplayName != "Beta" {
		t.Fatalf("unexpected order: %q, %q", groups[0].DisplayName, groups[1].DisplayName)
	}
	for _, g := range groups {
		if !g.Synthetic {
			t.Fatalf("vendor group %q not marked synthetic", g.GroupKey)
		}
		if len(g.Items) != 0 {
			t.Fatalf("vendor group %q has upload items", g.GroupKey)
		}
		if g.ReferenceNumber != "" {
			t.Fatalf("vendor group %q has a reference before synthesis", g.GroupKey)
		}
	}
}
