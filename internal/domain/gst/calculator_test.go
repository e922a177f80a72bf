package gst_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventrack/inventrack-api/internal/domain/gst"
)

func line(qty int64, price float64, rate int64) gst.Line {
	return gst.Line{
		Quantity:  qty,
		UnitPrice: decimal.NewFromFloat(price),
		Rate:      decimal.NewFromInt(rate),
	}
}

// Reference vector: 2 x 100 @ 18% same-state must produce
// subtotal=200, cgst=18, sgst=18, igst=0, total=236.
func TestCompute_SameStateVector(t *testing.T) {
	totals := gst.Compute([]gst.Line{line(2, 100, 18)}, false)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(200)), "subtotal: %s", totals.Subtotal)
	assert.True(t, totals.CGST.Equal(decimal.NewFromInt(18)), "cgst: %s", totals.CGST)
	assert.True(t, totals.SGST.Equal(decimal.NewFromInt(18)), "sgst: %s", totals.SGST)
	assert.True(t, totals.IGST.IsZero(), "igst must be zero for same-state")
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(236)), "total: %s", totals.Total)
}

func TestCompute_InterStateVector(t *testing.T) {
	totals := gst.Compute([]gst.Line{line(2, 100, 18)}, true)

	assert.True(t, totals.IGST.Equal(decimal.NewFromInt(36)), "igst: %s", totals.IGST)
	assert.True(t, totals.CGST.IsZero(), "cgst must be zero for inter-state")
	assert.True(t, totals.SGST.IsZero(), "sgst must be zero for inter-state")
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(236)), "total: %s", totals.Total)
}

// The components must always sum to the total, for either jurisdiction and
// for mixed rates, including ones that split into fractional paise.
func TestCompute_ComponentsSumToTotal(t *testing.T) {
	lines := []gst.Line{
		line(3, 45000, 18),
		line(2, 250.50, 12),
		line(1, 99.99, 5),
		line(7, 19, 28),
	}
	for _, interState := range []bool{false, true} {
		totals := gst.Compute(lines, interState)
		sum := totals.Subtotal.Add(totals.CGST).Add(totals.SGST).Add(totals.IGST)
		require.True(t, sum.Equal(totals.Total),
			"subtotal+cgst+sgst+igst must equal total (interState=%v): %s != %s",
			interState, sum, totals.Total)
	}
}

// Exactly one branch of the split is non-zero whenever tax is due; never both.
func TestCompute_JurisdictionExclusive(t *testing.T) {
	lines := []gst.Line{line(4, 800, 18), line(1, 250, 12)}

	same := gst.Compute(lines, false)
	assert.True(t, same.CGST.IsPositive() && same.SGST.IsPositive(), "same-state must populate cgst+sgst")
	assert.True(t, same.IGST.IsZero(), "same-state must not populate igst")
	assert.True(t, same.CGST.Equal(same.SGST), "cgst and sgst are each half the tax")

	inter := gst.Compute(lines, true)
	assert.True(t, inter.IGST.IsPositive(), "inter-state must populate igst")
	assert.True(t, inter.CGST.IsZero() && inter.SGST.IsZero(), "inter-state must not populate cgst/sgst")

	assert.True(t, same.Total.Equal(inter.Total), "total is jurisdiction-independent")
}

func TestCompute_ZeroRate(t *testing.T) {
	totals := gst.Compute([]gst.Line{line(5, 100, 0)}, false)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(500)))
	assert.True(t, totals.CGST.IsZero() && totals.SGST.IsZero() && totals.IGST.IsZero(),
		"zero rate yields no tax in either branch")
	assert.True(t, totals.Total.Equal(totals.Subtotal))
}

func TestCompute_NoLines(t *testing.T) {
	totals := gst.Compute(nil, false)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Total.IsZero())
}

// An odd tax amount must still split exactly: half of 0.01 is 0.005 on each
// side, and the halves recombine without loss.
func TestCompute_OddPaisaSplitsExactly(t *testing.T) {
	totals := gst.Compute([]gst.Line{line(1, 0.10, 10)}, false) // tax = 0.01

	assert.True(t, totals.CGST.Equal(decimal.RequireFromString("0.005")), "cgst: %s", totals.CGST)
	assert.True(t, totals.CGST.Add(totals.SGST).Equal(decimal.RequireFromString("0.01")),
		"halves must recombine to the full tax")
}
