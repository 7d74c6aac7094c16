package erp

import (
	"context"
	"fmt"
)

// Dashboard areas in render order.
const (
	AreaOverview = "erp.dashboard.overview"
	AreaCharts   = "erp.dashboard.charts"
	AreaTables   = "erp.dashboard.tables"
)

var defaultAreas = []string{AreaOverview, AreaCharts, AreaTables}

// DefaultLayout is the widget placement of the overview page.
func DefaultLayout() []Widget {
	return []Widget{
		{ID: "kpis", DefinitionID: WidgetKPICards, Area: AreaOverview},
		{ID: "revenue", DefinitionID: WidgetRevenueChart, Area: AreaCharts, Configuration: map[string]any{"months": 12}},
		{ID: "sales", DefinitionID: WidgetSalesChart, Area: AreaCharts},
		{ID: "categories", DefinitionID: WidgetCategoryChart, Area: AreaCharts},
		{ID: "growth", DefinitionID: WidgetGrowthChart, Area: AreaCharts},
		{ID: "regions", DefinitionID: WidgetRegionSales, Area: AreaCharts},
		{ID: "recent-orders", DefinitionID: WidgetRecentOrders, Area: AreaTables, Configuration: map[string]any{"limit": 5}},
	}
}

// ResolvedWidget is a widget with its definition and fetched data.
type ResolvedWidget struct {
	Widget     Widget           `json:"widget"`
	Definition WidgetDefinition `json:"definition"`
	Data       WidgetData       `json:"data,omitempty"`
	Error      string           `json:"error,omitempty"`
}

// DashboardArea groups the widgets of one area.
type DashboardArea struct {
	Code    string           `json:"code"`
	Widgets []ResolvedWidget `json:"widgets"`
}

// DashboardPayload is the resolved overview page.
type DashboardPayload struct {
	Viewer ViewerContext   `json:"viewer"`
	Areas  []DashboardArea `json:"areas"`
}

// Area returns the area with the given code.
func (p DashboardPayload) Area(code string) (DashboardArea, bool) {
	for _, area := range p.Areas {
		if area.Code == code {
			return area, true
		}
	}
	return DashboardArea{}, false
}

// Dashboard resolves every widget of the layout. A failing provider marks its
// widget with an error and does not fail the page.
func (s *Service) Dashboard(ctx context.Context, viewer ViewerContext) (DashboardPayload, error) {
	layout := s.opts.Layout
	if layout == nil {
		layout = DefaultLayout()
	}
	byArea := make(map[string][]ResolvedWidget, len(defaultAreas))
	areas := append([]string(nil), defaultAreas...)
	for _, w := range layout {
		if !contains(areas, w.Area) {
			areas = append(areas, w.Area)
		}
		resolved, err := s.resolveWidget(ctx, w, viewer)
		if err != nil {
			return DashboardPayload{}, err
		}
		byArea[w.Area] = append(byArea[w.Area], resolved)
	}

	payload := DashboardPayload{Viewer: viewer}
	for _, code := range areas {
		widgets := byArea[code]
		if len(widgets) == 0 {
			continue
		}
		payload.Areas = append(payload.Areas, DashboardArea{Code: code, Widgets: widgets})
	}
	return payload, nil
}

// Widget resolves a single widget of the layout by id.
func (s *Service) Widget(ctx context.Context, id string, viewer ViewerContext) (ResolvedWidget, error) {
	layout := s.opts.Layout
	if layout == nil {
		layout = DefaultLayout()
	}
	for _, w := range layout {
		if w.ID == id {
			return s.resolveWidget(ctx, w, viewer)
		}
	}
	return ResolvedWidget{}, fmt.Errorf("%w: widget %q", ErrRecordNotFound, id)
}

func (s *Service) resolveWidget(ctx context.Context, w Widget, viewer ViewerContext) (ResolvedWidget, error) {
	def, ok := s.opts.Providers.Definition(w.DefinitionID)
	if !ok {
		return ResolvedWidget{}, fmt.Errorf("erp: widget definition %s not found", w.DefinitionID)
	}
	if err := s.opts.Validator.Validate(def.Code, def.Schema, w.Configuration); err != nil {
		return ResolvedWidget{}, fmt.Errorf("erp: configuration for widget %s: %w", w.ID, err)
	}
	resolved := ResolvedWidget{Widget: w, Definition: def}
	provider, ok := s.opts.Providers.Provider(def.Code)
	if !ok || provider == nil {
		return resolved, nil
	}
	data, err := provider.Fetch(ctx, WidgetContext{Widget: w, Viewer: viewer, Source: s})
	if err != nil {
		s.recordTelemetry(ctx, "erp.widget.provider_error", map[string]any{
			"definition_id": def.Code,
			"widget_id":     w.ID,
			"error":         err.Error(),
		})
		resolved.Error = err.Error()
		return resolved, nil
	}
	resolved.Data = data
	return resolved, nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
