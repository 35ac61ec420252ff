// =============================================================================
// CSV to Invoice Generator - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - grouper
//   - synthdata
//   - pdfrender
//   - generator
//
// =============================================================================

package types

// =============================================================================
// INVOICE TYPES
// =============================================================================

// LineItem represents a single line on a generated invoice.
//
// Amount is the authoritative display total for the line. Quantity and
// UnitRate are informational: for line items taken from a purchase-order
// export they are carried as-is and are NOT required to multiply to Amount.
// Synthetic line items do preserve Amount == Quantity * UnitRate exactly.
type LineItem struct {
	// Description is the item text. For purchase-order data this is never
	// rendered (the renderer shows positional labels instead), but it is
	// kept for synthetic items and for debugging.
	Description string

	// Quantity is a positive count. Rows without a usable quantity get 1.
	Quantity float64

	// UnitRate is the per-unit rate, informational only.
	UnitRate float64

	// Amount is the signed line total.
	Amount float64
}

// InvoiceGroup represents one output invoice: all rows sharing a document
// number in PO mode, or a single distinct vendor in vendor-only mode.
//
// A group is constructed once from the uploaded rows (or synthesized
// wholesale in vendor-only mode), consumed exactly once by the renderer,
// and never mutated after construction.
type InvoiceGroup struct {
	// GroupKey is the raw grouping value: the document number in PO mode,
	// the vendor name in vendor-only mode.
	GroupKey string

	// DisplayName is the resolved company/vendor name shown on the invoice.
	// Falls back to "Unknown Company" when every row left the name blank.
	DisplayName string

	// Items are the ordered line items for this invoice.
	Items []LineItem

	// ReferenceNumber is the PO number when one exists. Empty means an
	// invoice number is synthesized before rendering.
	ReferenceNumber string

	// Date is the invoice date as MM/DD/YYYY. Empty means a date is
	// synthesized before rendering.
	Date string

	// Synthetic marks groups whose line items were generated rather than
	// taken from the upload. The renderer shows real descriptions for
	// synthetic items and positional "Item N" labels otherwise.
	Synthetic bool
}

// RenderedDocument is one finished invoice, immutable once produced.
type RenderedDocument struct {
	// Filename is the name the document gets inside the output archive.
	Filename string

	// Bytes is the opaque document content (PDF).
	Bytes []byte
}

// =============================================================================
// RENDERER CAPABILITY
// =============================================================================

// Renderer lays out a one-or-more-page invoice for a group and returns the
// document bytes. The concrete implementation lives in pdfrender; the
// pipeline only depends on this interface.
type Renderer interface {
	Render(group InvoiceGroup) ([]byte, error)
}
