package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/inventrack/inventrack-api/internal/domain/entity"
	"github.com/inventrack/inventrack-api/internal/domain/repository"
)

// storeAnalytics computes the dashboard and report aggregations with a
// single pass over the in-memory ledger. All queries are read-only.
type storeAnalytics struct{ s *Store }

func invoiceGST(inv *entity.Invoice) decimal.Decimal {
	return inv.CGST.Add(inv.SGST).Add(inv.IGST)
}

// SalesMetrics aggregates paid invoices created in [from, to].
func (a storeAnalytics) SalesMetrics(from, to time.Time) (repository.SalesMetrics, error) {
	out := repository.SalesMetrics{Revenue: decimal.Zero, GST: decimal.Zero}
	err := a.s.view(func(st *state) error {
		for _, inv := range st.invoices {
			if inv.Status != entity.InvoiceStatusPaid {
				continue
			}
			if inv.CreatedAt.Before(from) || inv.CreatedAt.After(to) {
				continue
			}
			out.Revenue = out.Revenue.Add(inv.TotalAmount)
			out.GST = out.GST.Add(invoiceGST(inv))
			out.Invoices++
		}
		return nil
	})
	return out, err
}

// ReportTotals aggregates every invoice regardless of status.
func (a storeAnalytics) ReportTotals() (repository.ReportTotals, error) {
	out := repository.ReportTotals{Revenue: decimal.Zero, GST: decimal.Zero}
	err := a.s.view(func(st *state) error {
		for _, inv := range st.invoices {
			out.Revenue = out.Revenue.Add(inv.TotalAmount)
			out.GST = out.GST.Add(invoiceGST(inv))
			out.Invoices++
		}
		return nil
	})
	return out, err
}

func (a storeAnalytics) DailySales(now time.Time, days int) ([]repository.DaySales, error) {
	if days <= 0 {
		days = 7
	}
	buckets := make([]repository.DaySales, days)
	index := make(map[string]*repository.DaySales, days)
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -(days - 1 - i)).Format("2006-01-02")
		buckets[i] = repository.DaySales{Date: date, Revenue: decimal.Zero, GST: decimal.Zero}
		index[date] = &buckets[i]
	}
	err := a.s.view(func(st *state) error {
		for _, inv := range st.invoices {
			b, ok := index[inv.CreatedAt.Format("2006-01-02")]
			if !ok {
				continue
			}
			b.Revenue = b.Revenue.Add(inv.TotalAmount)
			b.GST = b.GST.Add(invoiceGST(inv))
			b.Invoices++
		}
		return nil
	})
	return buckets, err
}

// SalesByCategory attributes line revenue to the referenced product's
// category. Lines whose product has been deleted are skipped; their revenue
// has no category to land in.
func (a storeAnalytics) SalesByCategory() ([]repository.CategorySales, error) {
	totals := make(map[string]decimal.Decimal)
	err := a.s.view(func(st *state) error {
		for _, inv := range st.invoices {
			for _, item := range inv.Items {
				p := st.productByID(item.ProductID)
				if p == nil {
					continue
				}
				cur, ok := totals[p.Category]
				if !ok {
					cur = decimal.Zero
				}
				totals[p.Category] = cur.Add(item.Total)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]repository.CategorySales, 0, len(totals))
	for category, revenue := range totals {
		out = append(out, repository.CategorySales{Category: category, Revenue: revenue})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Revenue.Equal(out[j].Revenue) {
			return out[i].Revenue.GreaterThan(out[j].Revenue)
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

func (a storeAnalytics) MonthlyRevenue() ([]repository.MonthRevenue, error) {
	totals := make(map[string]decimal.Decimal)
	err := a.s.view(func(st *state) error {
		for _, inv := range st.invoices {
			month := inv.CreatedAt.Format("2006-01")
			cur, ok := totals[month]
			if !ok {
				cur = decimal.Zero
			}
			totals[month] = cur.Add(inv.TotalAmount)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]repository.MonthRevenue, 0, len(totals))
	for month, revenue := range totals {
		out = append(out, repository.MonthRevenue{Month: month, Revenue: revenue})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

func (a storeAnalytics) TopProducts(limit int) ([]repository.ProductSales, error) {
	if limit <= 0 {
		limit = 5
	}
	agg := make(map[string]*repository.ProductSales)
	err := a.s.view(func(st *state) error {
		for _, inv := range st.invoices {
			for _, item := range inv.Items {
				cur, ok := agg[item.ProductID]
				if !ok {
					cur = &repository.ProductSales{
						ProductID: item.ProductID,
						Name:      item.ProductName,
						Revenue:   decimal.Zero,
					}
					agg[item.ProductID] = cur
				}
				cur.Quantity += item.Quantity
				cur.Revenue = cur.Revenue.Add(item.Total)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]repository.ProductSales, 0, len(agg))
	for _, ps := range agg {
		out = append(out, *ps)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Revenue.Equal(out[j].Revenue) {
			return out[i].Revenue.GreaterThan(out[j].Revenue)
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (a storeAnalytics) Counts() (repository.Counts, error) {
	var out repository.Counts
	err := a.s.view(func(st *state) error {
		out.Products = len(st.products)
		out.Customers = len(st.customers)
		for _, p := range st.products {
			if p.LowStock() {
				out.LowStock++
			}
		}
		return nil
	})
	return out, err
}
