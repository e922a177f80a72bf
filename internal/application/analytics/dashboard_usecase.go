package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/inventrack/inventrack-api/internal/application/dto"
	"github.com/inventrack/inventrack-api/internal/domain/repository"
)

// DashboardUseCase aggregates ledger data for the dashboard and reports
// views. Read-only.
type DashboardUseCase struct {
	repo repository.AnalyticsRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(repo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetSummary returns the dashboard headline numbers. Revenue and GST cover
// paid invoices only; "today" is the local calendar day of now.
func (uc *DashboardUseCase) GetSummary(now time.Time) (*dto.DashboardStatsResponse, error) {
	var zero time.Time

	allTime, err := uc.repo.SalesMetrics(zero, now)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := uc.repo.SalesMetrics(dayStart, now)
	if err != nil {
		return nil, err
	}

	counts, err := uc.repo.Counts()
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalRevenue:      allTime.Revenue.Round(2),
		TodayRevenue:      today.Revenue.Round(2),
		TotalInvoices:     allTime.Invoices,
		TodayInvoices:     today.Invoices,
		TotalProducts:     counts.Products,
		LowStockProducts:  counts.LowStock,
		TotalCustomers:    counts.Customers,
		TotalGSTCollected: allTime.GST.Round(2),
	}, nil
}

// GetSalesReport returns the full report for the last days days of daily
// series plus the all-time breakdowns. days defaults to 7 when non-positive.
func (uc *DashboardUseCase) GetSalesReport(now time.Time, days int) (*dto.SalesReportResponse, error) {
	if days <= 0 {
		days = 7
	}

	totals, err := uc.repo.ReportTotals()
	if err != nil {
		return nil, err
	}

	daily, err := uc.repo.DailySales(now, days)
	if err != nil {
		return nil, err
	}

	byCategory, err := uc.repo.SalesByCategory()
	if err != nil {
		return nil, err
	}

	monthly, err := uc.repo.MonthlyRevenue()
	if err != nil {
		return nil, err
	}

	top, err := uc.repo.TopProducts(5)
	if err != nil {
		return nil, err
	}

	avg := decimal.Zero
	if totals.Invoices > 0 {
		avg = totals.Revenue.Div(decimal.NewFromInt(int64(totals.Invoices)))
	}

	resp := &dto.SalesReportResponse{
		TotalRevenue:    totals.Revenue.Round(2),
		TotalGST:        totals.GST.Round(2),
		TotalInvoices:   totals.Invoices,
		AvgInvoiceValue: avg.Round(2),
		Daily:           make([]dto.DaySalesDTO, 0, len(daily)),
		ByCategory:      make([]dto.CategorySalesDTO, 0, len(byCategory)),
		Monthly:         make([]dto.MonthRevenueDTO, 0, len(monthly)),
		TopProducts:     make([]dto.TopProductDTO, 0, len(top)),
	}
	for _, d := range daily {
		resp.Daily = append(resp.Daily, dto.DaySalesDTO{
			Date:     d.Date,
			Revenue:  d.Revenue.Round(2),
			Invoices: d.Invoices,
			GST:      d.GST.Round(2),
		})
	}
	for _, c := range byCategory {
		resp.ByCategory = append(resp.ByCategory, dto.CategorySalesDTO{
			Category: c.Category,
			Revenue:  c.Revenue.Round(2),
		})
	}
	for _, m := range monthly {
		resp.Monthly = append(resp.Monthly, dto.MonthRevenueDTO{
			Month:   m.Month,
			Revenue: m.Revenue.Round(2),
		})
	}
	for _, p := range top {
		resp.TopProducts = append(resp.TopProducts, dto.TopProductDTO{
			ProductID: p.ProductID,
			Name:      p.Name,
			Quantity:  p.Quantity,
			Revenue:   p.Revenue.Round(2),
		})
	}
	return resp, nil
}
