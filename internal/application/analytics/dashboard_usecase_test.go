package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventrack/inventrack-api/internal/application/analytics"
	"github.com/inventrack/inventrack-api/internal/domain/entity"
	"github.com/inventrack/inventrack-api/internal/infrastructure/ledger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: a small ledger with mixed statuses and dates
// ──────────────────────────────────────────────────────────────────────────────

var now = time.Date(2026, time.August, 30, 15, 0, 0, 0, time.UTC)

func seedLedger(t *testing.T) *ledger.Store {
	t.Helper()
	store, err := ledger.Open(t.TempDir())
	require.NoError(t, err)

	products := []*entity.Product{
		{ID: "p1", Name: "Laptop", Category: "Electronics", SKU: "LAP-001", Price: decimal.NewFromInt(45000), GSTRate: decimal.NewFromInt(18), Stock: 25, MinStockLevel: 5, Unit: "piece"},
		{ID: "p2", Name: "Paper", Category: "Stationery", SKU: "PAP-001", Price: decimal.NewFromInt(250), GSTRate: decimal.NewFromInt(12), Stock: 2, MinStockLevel: 50, Unit: "ream"},
	}
	for _, p := range products {
		p.CreatedAt = now
		p.UpdatedAt = now
		require.NoError(t, store.Products().Create(p))
	}

	require.NoError(t, store.Customers().Create(&entity.Customer{
		ID: "c1", Name: "Rajesh Kumar", Phone: "+91 98765 43210", State: "Maharashtra", CreatedAt: now,
	}))

	invoices := []*entity.Invoice{
		// Paid today: 1 laptop.
		invoiceWith("inv-1", "INV26080001", entity.InvoiceStatusPaid, now.Add(-2*time.Hour),
			item("p1", "Laptop", 1, 45000), dec(45000), dec(4050), dec(4050), dec(0)),
		// Paid two days ago: 10 reams.
		invoiceWith("inv-2", "INV26080002", entity.InvoiceStatusPaid, now.AddDate(0, 0, -2),
			item("p2", "Paper", 10, 2500), dec(2500), dec(150), dec(150), dec(0)),
		// Pending today: excluded from paid metrics, counted in report totals.
		invoiceWith("inv-3", "INV26080003", entity.InvoiceStatusPending, now.Add(-time.Hour),
			item("p2", "Paper", 4, 1000), dec(1000), dec(60), dec(60), dec(0)),
		// Paid last month.
		invoiceWith("inv-4", "INV26070001", entity.InvoiceStatusPaid, now.AddDate(0, -1, 0),
			item("p1", "Laptop", 1, 45000), dec(45000), dec(0), dec(0), dec(8100)),
	}
	for _, inv := range invoices {
		require.NoError(t, store.Invoices().Create(inv))
	}
	return store
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func item(productID, name string, qty, total int64) entity.InvoiceItem {
	return entity.InvoiceItem{
		ProductID:   productID,
		ProductName: name,
		Quantity:    qty,
		Price:       decimal.NewFromInt(total).Div(decimal.NewFromInt(qty)),
		GSTRate:     decimal.NewFromInt(18),
		Total:       decimal.NewFromInt(total),
	}
}

func invoiceWith(id, number, status string, createdAt time.Time, it entity.InvoiceItem, subtotal, cgst, sgst, igst decimal.Decimal) *entity.Invoice {
	return &entity.Invoice{
		ID:            id,
		InvoiceNumber: number,
		CustomerID:    "c1",
		CustomerName:  "Rajesh Kumar",
		Items:         []entity.InvoiceItem{it},
		Subtotal:      subtotal,
		CGST:          cgst,
		SGST:          sgst,
		IGST:          igst,
		TotalAmount:   subtotal.Add(cgst).Add(sgst).Add(igst),
		PaymentMethod: entity.PaymentMethodCash,
		Status:        status,
		CreatedAt:     createdAt,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Summary
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummary(t *testing.T) {
	store := seedLedger(t)
	uc := analytics.NewDashboardUseCase(store.Analytics())

	out, err := uc.GetSummary(now)
	require.NoError(t, err)

	// Paid only: 53100 + 2800 + 53100.
	assert.True(t, out.TotalRevenue.Equal(dec(109000)), "total revenue, got %s", out.TotalRevenue)
	assert.Equal(t, 3, out.TotalInvoices)

	// Today: only inv-1 (inv-3 is pending).
	assert.True(t, out.TodayRevenue.Equal(dec(53100)), "today revenue, got %s", out.TodayRevenue)
	assert.Equal(t, 1, out.TodayInvoices)

	// GST across paid invoices: 8100 + 300 + 8100.
	assert.True(t, out.TotalGSTCollected.Equal(dec(16500)), "gst, got %s", out.TotalGSTCollected)

	assert.Equal(t, 2, out.TotalProducts)
	assert.Equal(t, 1, out.LowStockProducts)
	assert.Equal(t, 1, out.TotalCustomers)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sales report
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSalesReport_TotalsIncludeEveryStatus(t *testing.T) {
	store := seedLedger(t)
	uc := analytics.NewDashboardUseCase(store.Analytics())

	out, err := uc.GetSalesReport(now, 7)
	require.NoError(t, err)

	// All four invoices: 53100 + 2800 + 1120 + 53100.
	assert.True(t, out.TotalRevenue.Equal(dec(110120)), "total revenue, got %s", out.TotalRevenue)
	assert.Equal(t, 4, out.TotalInvoices)
	assert.True(t, out.AvgInvoiceValue.Equal(dec(27530)), "avg, got %s", out.AvgInvoiceValue)
}

func TestGetSalesReport_DailySeries(t *testing.T) {
	store := seedLedger(t)
	uc := analytics.NewDashboardUseCase(store.Analytics())

	out, err := uc.GetSalesReport(now, 7)
	require.NoError(t, err)

	require.Len(t, out.Daily, 7, "one bucket per day")
	assert.Equal(t, now.AddDate(0, 0, -6).Format("2006-01-02"), out.Daily[0].Date, "oldest first")
	assert.Equal(t, now.Format("2006-01-02"), out.Daily[6].Date)

	// Today's bucket: inv-1 (paid) and inv-3 (pending) both land in it.
	today := out.Daily[6]
	assert.Equal(t, 2, today.Invoices)
	assert.True(t, today.Revenue.Equal(dec(54220)), "today bucket revenue, got %s", today.Revenue)
}

func TestGetSalesReport_CategoryAndTopProducts(t *testing.T) {
	store := seedLedger(t)
	uc := analytics.NewDashboardUseCase(store.Analytics())

	out, err := uc.GetSalesReport(now, 7)
	require.NoError(t, err)

	require.Len(t, out.ByCategory, 2)
	assert.Equal(t, "Electronics", out.ByCategory[0].Category, "highest revenue first")
	assert.True(t, out.ByCategory[0].Revenue.Equal(dec(90000)), "electronics revenue, got %s", out.ByCategory[0].Revenue)
	assert.Equal(t, "Stationery", out.ByCategory[1].Category)
	assert.True(t, out.ByCategory[1].Revenue.Equal(dec(3500)), "stationery revenue, got %s", out.ByCategory[1].Revenue)

	require.NotEmpty(t, out.TopProducts)
	assert.Equal(t, "p1", out.TopProducts[0].ProductID)
	assert.EqualValues(t, 2, out.TopProducts[0].Quantity)
	assert.True(t, out.TopProducts[0].Revenue.Equal(dec(90000)))
}

func TestGetSalesReport_MonthlySeries(t *testing.T) {
	store := seedLedger(t)
	uc := analytics.NewDashboardUseCase(store.Analytics())

	out, err := uc.GetSalesReport(now, 7)
	require.NoError(t, err)

	require.Len(t, out.Monthly, 2)
	assert.Equal(t, "2026-07", out.Monthly[0].Month, "months ascend")
	assert.Equal(t, "2026-08", out.Monthly[1].Month)
	assert.True(t, out.Monthly[1].Revenue.Equal(dec(57020)), "august revenue, got %s", out.Monthly[1].Revenue)
}

func TestGetSalesReport_EmptyLedger(t *testing.T) {
	store, err := ledger.Open(t.TempDir())
	require.NoError(t, err)
	uc := analytics.NewDashboardUseCase(store.Analytics())

	out, err := uc.GetSalesReport(now, 7)
	require.NoError(t, err)
	assert.True(t, out.AvgInvoiceValue.IsZero())
	assert.Equal(t, 0, out.TotalInvoices)
	assert.Len(t, out.Daily, 7)
	assert.Empty(t, out.ByCategory)
	assert.Empty(t, out.TopProducts)
}
