package erp

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Widget definition codes.
const (
	WidgetKPICards      = "erp.widget.kpi_cards"
	WidgetRevenueChart  = "erp.widget.revenue_chart"
	WidgetSalesChart    = "erp.widget.sales_chart"
	WidgetCategoryChart = "erp.widget.category_chart"
	WidgetGrowthChart   = "erp.widget.growth_chart"
	WidgetRecentOrders  = "erp.widget.recent_orders"
	WidgetRegionSales   = "erp.widget.region_sales"
)

// WidgetDefinition describes a widget type and its configuration schema.
type WidgetDefinition struct {
	Code        string         `json:"code" yaml:"code"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Schema      map[string]any `json:"schema,omitempty" yaml:"schema,omitempty"`
	Category    string         `json:"category,omitempty" yaml:"category,omitempty"`
}

// Widget places a configured widget in a dashboard area.
type Widget struct {
	ID            string         `json:"id" yaml:"id"`
	DefinitionID  string         `json:"definition" yaml:"definition"`
	Area          string         `json:"area" yaml:"area"`
	Configuration map[string]any `json:"configuration,omitempty" yaml:"configuration,omitempty"`
}

// ReportSource is the read side of the service used by widget providers.
type ReportSource interface {
	KPIs(ctx context.Context) []KPI
	RevenueWindow(ctx context.Context, months int) []RevenuePoint
	SalesSeries(ctx context.Context) []SalesPoint
	CategoryShares(ctx context.Context) []CategoryShare
	Growth(ctx context.Context) []GrowthPoint
	SalesByRegion(ctx context.Context, region string) []RegionSales
	RecentOrders(ctx context.Context, n int) []Order
}

// WidgetContext contains the metadata needed by providers.
type WidgetContext struct {
	Widget Widget
	Viewer ViewerContext
	Source ReportSource
}

// WidgetData is an opaque payload passed to templates.
type WidgetData map[string]any

// Provider fetches data required to render a widget.
type Provider interface {
	Fetch(ctx context.Context, meta WidgetContext) (WidgetData, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, meta WidgetContext) (WidgetData, error)

// Fetch calls f.
func (f ProviderFunc) Fetch(ctx context.Context, meta WidgetContext) (WidgetData, error) {
	return f(ctx, meta)
}

// ProviderRegistry stores widget definitions and their providers.
type ProviderRegistry interface {
	RegisterDefinition(def WidgetDefinition) error
	RegisterProvider(code string, provider Provider) error
	Definition(code string) (WidgetDefinition, bool)
	Provider(code string) (Provider, bool)
	Definitions() []WidgetDefinition
}

// Registry implements ProviderRegistry.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]WidgetDefinition
	providers   map[string]Provider
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		definitions: map[string]WidgetDefinition{},
		providers:   map[string]Provider{},
	}
}

// DefaultRegistry builds a registry holding the built-in ERP widgets. Chart
// widgets render through an EChartsProvider built with options.
func DefaultRegistry(options ...EChartsProviderOption) *Registry {
	reg := NewRegistry()
	charts := NewEChartsProvider(options...)
	for _, def := range DefaultWidgetDefinitions() {
		_ = reg.RegisterDefinition(def)
		if provider := defaultProvider(def.Code, charts); provider != nil {
			_ = reg.RegisterProvider(def.Code, provider)
		}
	}
	return reg
}

// RegisterDefinition stores widget metadata.
func (r *Registry) RegisterDefinition(def WidgetDefinition) error {
	if def.Code == "" {
		return fmt.Errorf("erp: widget definition code is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.definitions[def.Code] = def
	return nil
}

// RegisterProvider associates a provider implementation with a definition.
func (r *Registry) RegisterProvider(code string, provider Provider) error {
	if code == "" {
		return fmt.Errorf("erp: widget definition code is required to register provider")
	}
	if provider == nil {
		return fmt.Errorf("erp: provider cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.definitions[code]; !ok {
		return fmt.Errorf("erp: widget definition %s not found", code)
	}
	r.providers[code] = provider
	return nil
}

// Definition fetches a widget definition by code.
func (r *Registry) Definition(code string) (WidgetDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[code]
	return def, ok
}

// Provider fetches a widget provider by code.
func (r *Registry) Provider(code string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	provider, ok := r.providers[code]
	return provider, ok
}

// Definitions returns all registered definitions ordered by code.
func (r *Registry) Definitions() []WidgetDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]WidgetDefinition, 0, len(r.definitions))
	for _, def := range r.definitions {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Code < defs[j].Code })
	return defs
}

// DefaultWidgetDefinitions lists the built-in widget definitions.
func DefaultWidgetDefinitions() []WidgetDefinition {
	chartSchema := func(extra map[string]any) map[string]any {
		props := map[string]any{
			"title": map[string]any{"type": "string"},
			"theme": map[string]any{"type": "string"},
		}
		for k, v := range extra {
			props[k] = v
		}
		return map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties":           props,
		}
	}
	return []WidgetDefinition{
		{
			Code:        WidgetKPICards,
			Name:        "KPI Cards",
			Description: "Headline revenue, sales, customer and order metrics",
			Category:    "overview",
			Schema:      chartSchema(nil),
		},
		{
			Code:        WidgetRevenueChart,
			Name:        "Revenue Overview",
			Description: "Monthly revenue and profit",
			Category:    "charts",
			Schema: chartSchema(map[string]any{
				"months": map[string]any{"type": "integer", "minimum": 1, "maximum": 12},
			}),
		},
		{
			Code:        WidgetSalesChart,
			Name:        "Sales vs Target",
			Description: "Monthly sales against target",
			Category:    "charts",
			Schema:      chartSchema(nil),
		},
		{
			Code:        WidgetCategoryChart,
			Name:        "Sales by Category",
			Description: "Share of sales per product category",
			Category:    "charts",
			Schema:      chartSchema(nil),
		},
		{
			Code:        WidgetGrowthChart,
			Name:        "Growth",
			Description: "Users and revenue over time",
			Category:    "charts",
			Schema:      chartSchema(nil),
		},
		{
			Code:        WidgetRecentOrders,
			Name:        "Recent Orders",
			Description: "Latest orders with their status",
			Category:    "tables",
			Schema: chartSchema(map[string]any{
				"limit": map[string]any{"type": "integer", "minimum": 1, "maximum": 20},
			}),
		},
		{
			Code:        WidgetRegionSales,
			Name:        "Sales by Region",
			Description: "Regional sales totals",
			Category:    "charts",
			Schema: chartSchema(map[string]any{
				"region": map[string]any{"type": "string"},
			}),
		},
	}
}
