package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse headline numbers for the dashboard. Revenue and
// GST figures cover paid invoices only.
type DashboardStatsResponse struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TodayRevenue      decimal.Decimal `json:"today_revenue"`
	TotalInvoices     int             `json:"total_invoices"`
	TodayInvoices     int             `json:"today_invoices"`
	TotalProducts     int             `json:"total_products"`
	LowStockProducts  int             `json:"low_stock_products"`
	TotalCustomers    int             `json:"total_customers"`
	TotalGSTCollected decimal.Decimal `json:"total_gst_collected"`
}

// DaySalesDTO one bucket of the daily sales series.
type DaySalesDTO struct {
	Date     string          `json:"date"`
	Revenue  decimal.Decimal `json:"revenue"`
	Invoices int             `json:"invoices"`
	GST      decimal.Decimal `json:"gst_collected"`
}

// CategorySalesDTO revenue for one product category.
type CategorySalesDTO struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// MonthRevenueDTO revenue for one calendar month.
type MonthRevenueDTO struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// TopProductDTO quantity and revenue sold for one product.
type TopProductDTO struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// SalesReportResponse full report: totals over every invoice plus the
// series the reports view charts.
type SalesReportResponse struct {
	TotalRevenue    decimal.Decimal    `json:"total_revenue"`
	TotalGST        decimal.Decimal    `json:"total_gst"`
	TotalInvoices   int                `json:"total_invoices"`
	AvgInvoiceValue decimal.Decimal    `json:"avg_invoice_value"`
	Daily           []DaySalesDTO      `json:"daily"`
	ByCategory      []CategorySalesDTO `json:"by_category"`
	Monthly         []MonthRevenueDTO  `json:"monthly"`
	TopProducts     []TopProductDTO    `json:"top_products"`
}
