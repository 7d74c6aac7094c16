package erp

import (
	"context"
	"encoding/json"
	"fmt"
)

func defaultProvider(code string, r *EChartsProvider) Provider {
	switch code {
	case WidgetKPICards:
		return ProviderFunc(kpiCards)
	case WidgetRevenueChart:
		return chartProvider(r, revenueChart)
	case WidgetSalesChart:
		return chartProvider(r, salesChart)
	case WidgetCategoryChart:
		return chartProvider(r, categoryChart)
	case WidgetGrowthChart:
		return chartProvider(r, growthChart)
	case WidgetRegionSales:
		return chartProvider(r, regionChart)
	case WidgetRecentOrders:
		return ProviderFunc(recentOrders)
	default:
		return nil
	}
}

// chartProvider builds a provider that turns report data into a rendered chart.
func chartProvider(r *EChartsProvider, build func(ctx context.Context, meta WidgetContext) ChartSpec) Provider {
	return ProviderFunc(func(ctx context.Context, meta WidgetContext) (WidgetData, error) {
		if meta.Source == nil {
			return nil, fmt.Errorf("erp: widget %s has no report source", meta.Widget.DefinitionID)
		}
		spec := build(ctx, meta)
		if title := stringValue(meta.Widget.Configuration["title"], ""); title != "" {
			spec.Title = title
		}
		spec.Theme = stringValue(meta.Widget.Configuration["theme"], "")
		return r.Render(meta.Widget.ID, spec, meta.Viewer)
	})
}

func kpiCards(ctx context.Context, meta WidgetContext) (WidgetData, error) {
	if meta.Source == nil {
		return nil, fmt.Errorf("erp: widget %s has no report source", meta.Widget.DefinitionID)
	}
	kpis := meta.Source.KPIs(ctx)
	cards := make([]map[string]any, 0, len(kpis))
	for _, k := range kpis {
		cards = append(cards, map[string]any{
			"code":   k.Code,
			"label":  k.Label,
			"value":  k.Value,
			"change": k.Change,
			"period": k.Period,
			"format": k.Format,
			"trend":  k.Trend(),
		})
	}
	return WidgetData{"cards": cards}, nil
}

func recentOrders(ctx context.Context, meta WidgetContext) (WidgetData, error) {
	if meta.Source == nil {
		return nil, fmt.Errorf("erp: widget %s has no report source", meta.Widget.DefinitionID)
	}
	limit := intValue(meta.Widget.Configuration["limit"], defaultRecentOrders)
	orders := meta.Source.RecentOrders(ctx, limit)
	rows := make([]map[string]any, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, map[string]any{
			"id":       o.ID,
			"customer": o.Customer,
			"date":     o.Date,
			"total":    o.Total,
			"status":   o.Status,
			"label":    StatusLabel(o.Status),
			"tone":     ToneFor(EntityOrders, o.Status),
		})
	}
	return WidgetData{
		"title":  stringValue(meta.Widget.Configuration["title"], "Recent Orders"),
		"orders": rows,
	}, nil
}

func revenueChart(ctx context.Context, meta WidgetContext) ChartSpec {
	points := meta.Source.RevenueWindow(ctx, intValue(meta.Widget.Configuration["months"], 0))
	spec := ChartSpec{
		Type:     ChartLine,
		Title:    "Revenue Overview",
		Subtitle: "Monthly revenue and profit",
		Series:   []ChartSeries{{Name: "Revenue"}, {Name: "Profit"}},
	}
	for _, p := range points {
		spec.Labels = append(spec.Labels, p.Month)
		spec.Series[0].Values = append(spec.Series[0].Values, p.Revenue)
		spec.Series[1].Values = append(spec.Series[1].Values, p.Profit)
	}
	return spec
}

func salesChart(ctx context.Context, meta WidgetContext) ChartSpec {
	spec := ChartSpec{
		Type:     ChartBar,
		Title:    "Sales vs Target",
		Subtitle: "Orders per month",
		Series:   []ChartSeries{{Name: "Sales"}, {Name: "Target"}},
	}
	for _, p := range meta.Source.SalesSeries(ctx) {
		spec.Labels = append(spec.Labels, p.Month)
		spec.Series[0].Values = append(spec.Series[0].Values, p.Sales)
		spec.Series[1].Values = append(spec.Series[1].Values, p.Target)
	}
	return spec
}

func categoryChart(ctx context.Context, meta WidgetContext) ChartSpec {
	spec := ChartSpec{
		Type:   ChartPie,
		Title:  "Sales by Category",
		Series: []ChartSeries{{Name: "Share"}},
	}
	for _, c := range meta.Source.CategoryShares(ctx) {
		spec.Labels = append(spec.Labels, c.Name)
		spec.Series[0].Values = append(spec.Series[0].Values, c.Value)
	}
	return spec
}

func growthChart(ctx context.Context, meta WidgetContext) ChartSpec {
	spec := ChartSpec{
		Type:   ChartLine,
		Title:  "Growth",
		Series: []ChartSeries{{Name: "Users"}, {Name: "Revenue"}},
	}
	for _, p := range meta.Source.Growth(ctx) {
		spec.Labels = append(spec.Labels, p.Month)
		spec.Series[0].Values = append(spec.Series[0].Values, p.Users)
		spec.Series[1].Values = append(spec.Series[1].Values, p.Revenue)
	}
	return spec
}

func regionChart(ctx context.Context, meta WidgetContext) ChartSpec {
	spec := ChartSpec{
		Type:   ChartBar,
		Title:  "Sales by Region",
		Series: []ChartSeries{{Name: "Sales"}},
	}
	for _, r := range meta.Source.SalesByRegion(ctx, stringValue(meta.Widget.Configuration["region"], "all")) {
		spec.Labels = append(spec.Labels, r.Region)
		spec.Series[0].Values = append(spec.Series[0].Values, r.Sales)
	}
	return spec
}

func stringValue(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

func intValue(v any, fallback int) int {
	switch val := v.(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return int(n)
		}
	}
	return fallback
}
