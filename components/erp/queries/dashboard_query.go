package queries

import (
	"context"

	gocommand "github.com/goliatone/go-command"
	erp "github.com/goliatone/go-erp-dashboard/components/erp"
)

type dashboardService interface {
	Dashboard(ctx context.Context, viewer erp.ViewerContext) (erp.DashboardPayload, error)
}

// DashboardQuery resolves every widget of the dashboard layout.
type DashboardQuery struct {
	service dashboardService
}

// NewDashboardQuery builds the query.
func NewDashboardQuery(service dashboardService) *DashboardQuery {
	return &DashboardQuery{service: service}
}

var _ gocommand.Querier[erp.ViewerContext, erp.DashboardPayload] = (*DashboardQuery)(nil)

// Query resolves the dashboard for the viewer.
func (q *DashboardQuery) Query(ctx context.Context, viewer erp.ViewerContext) (erp.DashboardPayload, error) {
	return q.service.Dashboard(ctx, viewer)
}

// WidgetInput identifies a widget instance for a viewer.
type WidgetInput struct {
	Viewer   erp.ViewerContext
	WidgetID string
}

type widgetService interface {
	Widget(ctx context.Context, id string, viewer erp.ViewerContext) (erp.ResolvedWidget, error)
}

// WidgetQuery resolves a single widget, used for refreshes.
type WidgetQuery struct {
	service widgetService
}

// NewWidgetQuery builds the query.
func NewWidgetQuery(service widgetService) *WidgetQuery {
	return &WidgetQuery{service: service}
}

var _ gocommand.Querier[WidgetInput, erp.ResolvedWidget] = (*WidgetQuery)(nil)

// Query resolves the widget.
func (q *WidgetQuery) Query(ctx context.Context, input WidgetInput) (erp.ResolvedWidget, error) {
	return q.service.Widget(ctx, input.WidgetID, input.Viewer)
}

type reportService interface {
	Report(ctx context.Context, req erp.ReportRequest) erp.SalesReport
}

// ReportQuery builds the sales report.
type ReportQuery struct {
	service reportService
}

// NewReportQuery builds the query.
func NewReportQuery(service reportService) *ReportQuery {
	return &ReportQuery{service: service}
}

var _ gocommand.Querier[erp.ReportRequest, erp.SalesReport] = (*ReportQuery)(nil)

// Query returns the report for the requested window and region.
func (q *ReportQuery) Query(ctx context.Context, req erp.ReportRequest) (erp.SalesReport, error) {
	return q.service.Report(ctx, req), nil
}
