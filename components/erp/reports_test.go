package erp

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func months(points []RevenuePoint) []string {
	out := make([]string, 0, len(points))
	for _, p := range points {
		out = append(out, p.Month)
	}
	return out
}

func TestRevenueWindow(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()
	assert.Equal(t, []string{"Oct", "Nov", "Dec"}, months(svc.RevenueWindow(ctx, 3)))
	assert.Len(t, svc.RevenueWindow(ctx, 6), 6)
	assert.Len(t, svc.RevenueWindow(ctx, 12), 12)
	assert.Len(t, svc.RevenueWindow(ctx, 40), 12, "oversized windows clamp to the series")
	assert.Len(t, svc.RevenueWindow(ctx, 0), 12)
}

func TestSalesByRegion(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()
	assert.Len(t, svc.SalesByRegion(ctx, "all"), 4)
	assert.Len(t, svc.SalesByRegion(ctx, ""), 4)
	eu := svc.SalesByRegion(ctx, "eu")
	require.Len(t, eu, 1)
	assert.Equal(t, "Europe", eu[0].Region)
	assert.Empty(t, svc.SalesByRegion(ctx, "mars"))
}

func TestTopProductsByRevenue(t *testing.T) {
	svc := newTestService(t, Options{})
	top := svc.TopProducts(context.Background(), 0)
	names := make([]string, 0, len(top))
	for _, p := range top {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Smart Watch", "Wireless Headphones", "Ergonomic Chair", "Standing Desk", "Mechanical Keyboard"}, names)
	assert.Len(t, svc.TopProducts(context.Background(), 2), 2)
}

func TestRecentOrdersTakesFirstOrders(t *testing.T) {
	svc := newTestService(t, Options{})
	assert.Equal(t, []string{"ORD-7352", "ORD-7351", "ORD-7350", "ORD-7349", "ORD-7348"}, orderIDs(svc.RecentOrders(context.Background(), 0)))
	assert.Len(t, svc.RecentOrders(context.Background(), 100), 12)
}

func TestReportTotals(t *testing.T) {
	svc := newTestService(t, Options{})
	report := svc.Report(context.Background(), ReportRequest{Months: 3, Region: "na"})
	assert.Equal(t, 3, report.Months)
	assert.Equal(t, "na", report.Region)
	assert.Equal(t, 382000.0, report.Totals.Revenue)
	assert.Equal(t, 125500.0, report.Totals.Profit)
	assert.InDelta(t, 32.85, report.Totals.Margin, 0.01)
	assert.Equal(t, 485000.0, report.Totals.Sales)
	assert.Len(t, report.TopProducts, 5)

	all := svc.Report(context.Background(), ReportRequest{})
	assert.Equal(t, 12, all.Months)
	assert.Equal(t, "all", all.Region)
}

func TestKPIsTrend(t *testing.T) {
	svc := newTestService(t, Options{})
	kpis := svc.KPIs(context.Background())
	require.Len(t, kpis, 4)
	assert.Equal(t, "up", kpis[0].Trend())
	assert.Equal(t, "down", kpis[3].Trend())
	assert.Equal(t, "flat", KPI{}.Trend())
}

func TestMonthlyComparisonChange(t *testing.T) {
	assert.InDelta(t, 9.52, MonthlyComparison{Current: 138000, Previous: 126000}.Change(), 0.01)
	assert.Equal(t, 0.0, MonthlyComparison{Current: 5}.Change())
}

func TestExportCSV(t *testing.T) {
	hook := NewBroadcastHook()
	events, cancel := hook.Subscribe()
	defer cancel()
	svc := newTestService(t, Options{NotificationHook: hook})

	result, err := svc.Export(context.Background(), ExportRequest{Report: ReportRevenue, Format: "CSV", Months: 3})
	require.NoError(t, err)
	assert.Equal(t, "revenue-report.csv", result.Filename)
	assert.Equal(t, "text/csv", result.ContentType)

	rows, err := csv.NewReader(bytes.NewReader(result.Data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Month", "Revenue", "Profit"},
		{"Oct", "$118000.00", "$38700.00"},
		{"Nov", "$126000.00", "$41200.00"},
		{"Dec", "$138000.00", "$45600.00"},
	}, rows)

	n := nextNotification(t, events)
	assert.Equal(t, "Report exported as CSV", n.Title)
}

func TestExportPDF(t *testing.T) {
	svc := newTestService(t, Options{})
	result, err := svc.Export(context.Background(), ExportRequest{Report: ReportProducts, Format: FormatPDF})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, bytes.HasPrefix(result.Data, []byte("%PDF")))
}

func TestExportRejectsUnknownReportAndFormat(t *testing.T) {
	svc := newTestService(t, Options{})
	_, err := svc.Export(context.Background(), ExportRequest{Report: "payroll", Format: FormatCSV})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	_, err = svc.Export(context.Background(), ExportRequest{Report: ReportSales, Format: "xlsx"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestReportTables(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()
	for _, report := range []string{ReportSales, ReportRevenue, ReportRegions, ReportProducts, ReportComparison} {
		table, err := svc.ReportTable(ctx, ExportRequest{Report: report})
		require.NoError(t, err, report)
		assert.NotEmpty(t, table.Title, report)
		for _, row := range table.Rows {
			assert.Len(t, row, len(table.Header), report)
		}
	}
	comparison, err := svc.ReportTable(ctx, ExportRequest{Report: ReportComparison})
	require.NoError(t, err)
	assert.Equal(t, []string{"Revenue", "138000", "126000", "+9.5%"}, comparison.Rows[0])
}
