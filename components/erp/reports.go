package erp

import (
	"context"
	"sort"
)

// Report names accepted by Export.
const (
	ReportSales      = "sales"
	ReportRevenue    = "revenue"
	ReportRegions    = "regions"
	ReportProducts   = "products"
	ReportComparison = "comparison"
)

// Report windows offered by the reports page.
var ReportWindows = []int{3, 6, 12}

const (
	defaultTopProducts  = 5
	defaultRecentOrders = 5
)

// ReportRequest selects the window and region of the sales report.
type ReportRequest struct {
	Months int    `json:"months,omitempty"`
	Region string `json:"region,omitempty"`
}

// ReportTotals aggregates the revenue window.
type ReportTotals struct {
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	Margin  float64 `json:"margin"`
	Sales   float64 `json:"sales"`
}

// SalesReport is the payload of the reports page.
type SalesReport struct {
	Months      int                 `json:"months"`
	Region      string              `json:"region"`
	Revenue     []RevenuePoint      `json:"revenue"`
	Regions     []RegionSales       `json:"regions"`
	Comparisons []MonthlyComparison `json:"comparisons"`
	TopProducts []Product           `json:"top_products"`
	Totals      ReportTotals        `json:"totals"`
}

// KPIs returns the headline metric cards.
func (s *Service) KPIs(ctx context.Context) []KPI {
	return append([]KPI(nil), s.reports.KPIs...)
}

// RevenueWindow returns the trailing months of the revenue series. Values
// outside 1..len clamp to the whole series.
func (s *Service) RevenueWindow(ctx context.Context, months int) []RevenuePoint {
	return trailing(s.reports.Revenue, months)
}

// SalesSeries returns monthly sales against target.
func (s *Service) SalesSeries(ctx context.Context) []SalesPoint {
	return append([]SalesPoint(nil), s.reports.Sales...)
}

// CategoryShares returns the sales distribution by category.
func (s *Service) CategoryShares(ctx context.Context) []CategoryShare {
	return append([]CategoryShare(nil), s.reports.Categories...)
}

// Growth returns monthly users and revenue.
func (s *Service) Growth(ctx context.Context) []GrowthPoint {
	return append([]GrowthPoint(nil), s.reports.Growth...)
}

// SalesByRegion returns regional sales. An empty or "all" region returns every region.
func (s *Service) SalesByRegion(ctx context.Context, region string) []RegionSales {
	out := make([]RegionSales, 0, len(s.reports.Regions))
	for _, r := range s.reports.Regions {
		if region == "" || region == "all" || r.Code == region {
			out = append(out, r)
		}
	}
	return out
}

// MonthlyComparison returns current against previous period metrics.
func (s *Service) MonthlyComparison(ctx context.Context) []MonthlyComparison {
	return append([]MonthlyComparison(nil), s.reports.Comparisons...)
}

// TopProducts returns the n best selling products by revenue. Ties keep inventory order.
func (s *Service) TopProducts(ctx context.Context, n int) []Product {
	if n <= 0 {
		n = defaultTopProducts
	}
	products := s.products.store.All()
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Revenue > products[j].Revenue
	})
	if len(products) > n {
		products = products[:n]
	}
	return products
}

// RecentOrders returns the first n orders.
func (s *Service) RecentOrders(ctx context.Context, n int) []Order {
	if n <= 0 {
		n = defaultRecentOrders
	}
	orders := s.orders.store.All()
	if len(orders) > n {
		orders = orders[:n]
	}
	return orders
}

// Report assembles the sales report for a window and region.
func (s *Service) Report(ctx context.Context, req ReportRequest) SalesReport {
	revenue := s.RevenueWindow(ctx, req.Months)
	region := req.Region
	if region == "" {
		region = "all"
	}
	report := SalesReport{
		Months:      len(revenue),
		Region:      region,
		Revenue:     revenue,
		Regions:     s.SalesByRegion(ctx, region),
		Comparisons: s.MonthlyComparison(ctx),
		TopProducts: s.TopProducts(ctx, defaultTopProducts),
	}
	for _, p := range revenue {
		report.Totals.Revenue += p.Revenue
		report.Totals.Profit += p.Profit
	}
	if report.Totals.Revenue > 0 {
		report.Totals.Margin = report.Totals.Profit / report.Totals.Revenue * 100
	}
	for _, r := range report.Regions {
		report.Totals.Sales += r.Sales
	}
	return report
}

func trailing[T any](series []T, n int) []T {
	if n <= 0 || n > len(series) {
		n = len(series)
	}
	return append([]T(nil), series[len(series)-n:]...)
}
