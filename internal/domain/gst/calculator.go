// Package gst implements the Indian GST split for invoice totals
// (domain service, no I/O).
package gst

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Line is one candidate invoice line with its price and rate snapshots.
type Line struct {
	Quantity  int64
	UnitPrice decimal.Decimal
	Rate      decimal.Decimal // percent, any non-negative value
}

// Total returns the line amount before tax: UnitPrice * Quantity.
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Tax returns the GST amount for the line: Total * Rate / 100.
func (l Line) Tax() decimal.Decimal {
	return l.Total().Mul(l.Rate).Div(hundred)
}

// Totals is the computed money breakdown of an invoice.
// Invariant: Subtotal + CGST + SGST + IGST == Total, and at most one of
// {CGST+SGST} or {IGST} is non-zero.
type Totals struct {
	Subtotal decimal.Decimal
	CGST     decimal.Decimal
	SGST     decimal.Decimal
	IGST     decimal.Decimal
	Total    decimal.Decimal
}

// Compute sums the lines and splits the accumulated tax by jurisdiction:
// same-state sales split it evenly into CGST and SGST, inter-state sales
// carry it all as IGST. Amounts stay exact; rounding is presentation-only.
func Compute(lines []Line, interState bool) Totals {
	subtotal := decimal.Zero
	tax := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Total())
		tax = tax.Add(l.Tax())
	}

	t := Totals{
		Subtotal: subtotal,
		CGST:     decimal.Zero,
		SGST:     decimal.Zero,
		IGST:     decimal.Zero,
	}
	if interState {
		t.IGST = tax
	} else {
		half := tax.Div(decimal.NewFromInt(2))
		t.CGST = half
		t.SGST = half
	}
	t.Total = t.Subtotal.Add(t.CGST).Add(t.SGST).Add(t.IGST)
	return t
}
