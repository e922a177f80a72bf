package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesMetrics aggregates paid invoices over a date range.
type SalesMetrics struct {
	Revenue  decimal.Decimal
	GST      decimal.Decimal
	Invoices int
}

// ReportTotals aggregates every invoice regardless of status (the reports
// view counts pending and cancelled invoices too).
type ReportTotals struct {
	Revenue  decimal.Decimal
	GST      decimal.Decimal
	Invoices int
}

// DaySales is one bucket of the per-day sales series.
type DaySales struct {
	Date     string // YYYY-MM-DD
	Revenue  decimal.Decimal
	Invoices int
	GST      decimal.Decimal
}

// CategorySales is revenue attributed to a product category.
type CategorySales struct {
	Category string
	Revenue  decimal.Decimal
}

// MonthRevenue is revenue bucketed by calendar month.
type MonthRevenue struct {
	Month   string // YYYY-MM
	Revenue decimal.Decimal
}

// ProductSales is quantity and revenue sold for one product.
type ProductSales struct {
	ProductID string
	Name      string
	Quantity  int64
	Revenue   decimal.Decimal
}

// Counts are the entity tallies shown on the dashboard.
type Counts struct {
	Products  int
	LowStock  int
	Customers int
}

// AnalyticsRepository read-only aggregation queries over the ledger.
type AnalyticsRepository interface {
	// SalesMetrics covers paid invoices created in [from, to].
	SalesMetrics(from, to time.Time) (SalesMetrics, error)
	ReportTotals() (ReportTotals, error)
	// DailySales returns one bucket per day for the last days days,
	// oldest first, ending at the day of now.
	DailySales(now time.Time, days int) ([]DaySales, error)
	SalesByCategory() ([]CategorySales, error)
	MonthlyRevenue() ([]MonthRevenue, error)
	TopProducts(limit int) ([]ProductSales, error)
	Counts() (Counts, error)
}
