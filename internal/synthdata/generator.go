// =============================================================================
// CSV to Invoice Generator - Synthetic Data Generator
// =============================================================================
//
// Vendor-only uploads carry names but no purchase-order lines, so this
// module fabricates plausible invoice content for testing and demo
// environments:
//   - 1 to 5 line items per invoice, descriptions drawn from a fixed
//     catalog of generic service/product labels
//   - A total amount in [100.00, 5000.00] rounded to two decimals, an
//     integer quantity in [1, 10], and a unit rate derived as amount/quantity
//     so amount == quantity * rate holds exactly in this mode
//   - An invoice date uniformly inside the previous full calendar year
//   - An INV-xxxxx invoice number when no PO reference exists
//
// =============================================================================

package synthdata

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/ginjaninja78/CSV-to-invoice-generation/internal/types"
)

// catalog holds the generic labels synthetic line items draw from.
var catalog = []string{
	"Professional Services",
	"Consulting Hours",
	"Software License",
	"Hardware Components",
	"Maintenance Contract",
	"Shipping & Handling",
	"Installation Services",
	"Training Session",
	"Support Retainer",
	"Equipment Rental",
}

// =============================================================================
// GENERATOR
// =============================================================================

// Generator produces randomized invoice content. It is not safe for
// concurrent use; each pipeline run owns its own instance.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// New creates a Generator seeded from the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded creates a Generator with a fixed seed, for reproducible runs.
func NewSeeded(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// =============================================================================
// LINE ITEMS
// =============================================================================

// LineItems produces between 1 and 5 randomized line items.
func (g *Generator) LineItems() []types.LineItem {
	count := 1 + g.rng.Intn(5)

	items := make([]types.LineItem, count)
	for i := range items {
		items[i] = g.lineItem()
	}
	return items
}

// lineItem produces a single randomized line item. The amount is picked
// first and the rate derived from it, so the amount/quantity/rate invariant
// holds exactly.
func (g *Generator) lineItem() types.LineItem {
	amount := 100.0 + g.rng.Float64()*(5000.0-100.0)
	amount = math.Round(amount*100) / 100

	quantity := float64(1 + g.rng.Intn(10))

	return types.LineItem{
		Description: catalog[g.rng.Intn(len(catalog))],
		Quantity:    quantity,
		UnitRate:    amount / quantity,
		Amount:      amount,
	}
}

// =============================================================================
// DATES AND NUMBERS
// =============================================================================

// InvoiceDate returns a uniformly random calendar date within the previous
// full calendar year, formatted MM/DD/YYYY.
func (g *Generator) InvoiceDate() string {
	year := g.now().Year() - 1

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)

	date := start.AddDate(0, 0, g.rng.Intn(days))
	return date.Format("01/02/2006")
}

// InvoiceNumber returns a synthesized reference of the form INV-xxxxx,
// with a random 5-digit integer in [10000, 99999].
func (g *Generator) InvoiceNumber() string {
	return fmt.Sprintf("INV-%d", 10000+g.rng.Intn(90000))
}
