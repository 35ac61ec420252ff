// =============================================================================
// CSV to Invoice Generator - PDF Renderer
// =============================================================================
//
// This module lays out one invoice PDF per group: a centered company header,
// the PO or invoice reference, the invoice date, and a rule-separated table
// of line items followed by a running total.
//
// LABELING RULE:
//   Line items taken from purchase-order data are rendered as positional
//   placeholders ("Item 1", "Item 2", ...) and the real item text is never
//   shown. Synthetic items render their own description. Downstream
//   consumers depend on the positional-only labels for PO data, so this is
//   load-bearing, not cosmetic.
//
// PAGINATION:
//   Render state is an explicit cursor threaded through the draw calls.
//   When vertical space runs out a new page starts and the cursor resets;
//   content is never clipped.
//
// =============================================================================

package pdfrender

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/currency"
	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/types"
)

// =============================================================================
// LAYOUT CONSTANTS
// =============================================================================

// Layout metrics in points on a Letter page (612 x 792).
const (
	marginX       = 50.0 // left/right text margin
	topY          = 50.0 // baseline of the first line on a page
	bottomMargin  = 50.0 // minimum distance kept from the page bottom
	lineHeight    = 20.0 // vertical advance per line item
	headerGap     = 25.0 // gap between the table header rule and the items
	fontName      = "Helvetica"
)

// =============================================================================
// RENDERER
// =============================================================================

// Renderer renders invoice groups to PDF. The zero value is ready to use;
// it is stateless and safe for concurrent use.
type Renderer struct{}

// New returns a PDF renderer.
func New() *Renderer {
	return &Renderer{}
}

// cursor is the explicit render state: the current baseline.
type cursor struct {
	y float64
}

// Render lays out the invoice for a group and returns the PDF bytes.
func (r *Renderer) Render(group types.InvoiceGroup) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()
	cur := cursor{y: topY}

	// =========================================================================
	// HEADER
	// =========================================================================

	pdf.SetFont(fontName, "B", 24)
	title := group.DisplayName
	pdf.Text((pageWidth-pdf.GetStringWidth(title))/2, cur.y, title)

	pdf.SetFont(fontName, "", 12)
	pdf.Text(marginX, topY+50, "INVOICE / PO REFERENCE")

	pdf.SetFont(fontName, "B", 14)
	pdf.Text(marginX, topY+70, referenceLine(group))

	pdf.SetFont(fontName, "", 12)
	pdf.Text(marginX, topY+90, "Date: "+group.Date)

	// =========================================================================
	// TABLE HEADER
	// =========================================================================

	cur.y = topY + 120
	pdf.SetFont(fontName, "B", 12)
	pdf.Text(marginX, cur.y, "Item Description")
	drawRight(pdf, pageWidth-marginX, cur.y, "Amount")
	pdf.Line(marginX, cur.y+5, pageWidth-marginX, cur.y+5)
	cur.y += headerGap

	// =========================================================================
	// LINE ITEMS
	// =========================================================================

	pdf.SetFont(fontName, "", 12)
	total := 0.0

	for i, item := range group.Items {
		if cur.y > pageHeight-bottomMargin {
			pdf.AddPage()
			cur = cursor{y: topY}
			pdf.SetFont(fontName, "", 12)
		}

		label := item.Description
		if !group.Synthetic {
			// PO-mode item text is never shown; only the ordinal position.
			label = fmt.Sprintf("Item %d", i+1)
		}

		pdf.Text(marginX, cur.y, label)
		drawRight(pdf, pageWidth-marginX, cur.y, currency.FormatAmount(item.Amount))

		total += item.Amount
		cur.y += lineHeight
	}

	// =========================================================================
	// TOTAL
	// =========================================================================

	if cur.y > pageHeight-bottomMargin-lineHeight {
		pdf.AddPage()
		cur = cursor{y: topY}
	}

	pdf.Line(marginX, cur.y-10, pageWidth-marginX, cur.y-10)
	cur.y += lineHeight

	pdf.SetFont(fontName, "B", 12)
	pdf.Text(pageWidth-200, cur.y, "Total:")
	drawRight(pdf, pageWidth-marginX, cur.y, currency.FormatTotal(total))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// referenceLine formats the PO/invoice reference for the header block.
func referenceLine(group types.InvoiceGroup) string {
	if group.Synthetic {
		return "Invoice #: " + group.ReferenceNumber
	}
	return "PO #: " + group.ReferenceNumber
}

// drawRight draws text with its right edge at x.
func drawRight(pdf *gofpdf.Fpdf, x, y float64, text string) {
	pdf.Text(x-pdf.GetStringWidth(text), y, text)
}
