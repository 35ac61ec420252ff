// =============================================================================
// CSV to Invoice Generator - Currency Parsing and Formatting
// =============================================================================
//
// This module converts the heterogeneous amount representations found in
// accounting exports into signed floats, and formats floats back into the
// accounting convention used on the invoices:
//   - "1,234.56"    : positive amount
//   - "(1,234.56)"  : negative amount (parenthesized absolute value)
//
// PARSING POLICY:
//   Parsing is deliberately lenient. Source exports are inconsistent
//   (quoted fields, currency symbols, thousands separators, parenthesized
//   negatives) and a malformed value silently becomes zero rather than
//   aborting the run. Callers that need strictness must validate upstream.
//
// =============================================================================

package currency

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// =============================================================================
// PARSING
// =============================================================================

// Parse converts a currency string into a signed float.
//
// Handled forms include `$(1,234.56)`, `'1,000'`, `"40.5"`, `1500.00` and
// plain numbers. The steps, in order:
//  1. Trim surrounding whitespace.
//  2. Strip one layer of matching surrounding quotes ("..." or '...').
//  3. A parenthesized value is negative; strip the parentheses.
//  4. Remove thousands separators (,) and currency symbols ($).
//  5. Parse the remainder as a float and apply the sign.
//
// Any failure along the way yields 0.0; Parse never returns an error.
// Parse is idempotent on its own formatted output: re-parsing the result of
// FormatAmount reproduces the original magnitude and sign.
func Parse(value string) float64 {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0.0
	}

	// Strip one layer of matching surrounding quotes.
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}

	// Accounting negatives are written as "(123.45)".
	negative := false
	if len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')' {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	// Remove thousands separators and currency symbols.
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "$", "")

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}

	if negative {
		return -val
	}
	return val
}

// ParseOptional is Parse for values that may be absent entirely.
// A nil pointer is the missing case and yields 0.0.
func ParseOptional(value *string) float64 {
	if value == nil {
		return 0.0
	}
	return Parse(*value)
}

// =============================================================================
// FORMATTING
// =============================================================================

// FormatAmount formats a line-item amount using the accounting convention:
// thousands-grouped with two decimal places, negative values rendered as
// the parenthesized absolute value with no sign.
//
// Examples:
//   FormatAmount(1234.5)  -> "1,234.50"
//   FormatAmount(-40000)  -> "(40,000.00)"
func FormatAmount(value float64) string {
	formatted := humanize.FormatFloat("#,###.##", abs(value))
	if value < 0 {
		return "(" + formatted + ")"
	}
	return formatted
}

// FormatTotal formats the invoice total line. Non-negative totals carry a
// leading dollar sign; negative totals use the parenthesized form with no
// currency symbol, matching FormatAmount.
func FormatTotal(value float64) string {
	if value < 0 {
		return FormatAmount(value)
	}
	return "$" + FormatAmount(value)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
