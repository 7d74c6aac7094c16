package erp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardResolvesDefaultLayout(t *testing.T) {
	svc := newTestService(t, Options{})
	payload, err := svc.Dashboard(context.Background(), ViewerContext{UserID: "u1"})
	require.NoError(t, err)

	codes := make([]string, 0, len(payload.Areas))
	for _, area := range payload.Areas {
		codes = append(codes, area.Code)
	}
	assert.Equal(t, []string{AreaOverview, AreaCharts, AreaTables}, codes)

	overview, ok := payload.Area(AreaOverview)
	require.True(t, ok)
	require.Len(t, overview.Widgets, 1)
	cards, ok := overview.Widgets[0].Data["cards"].([]map[string]any)
	require.True(t, ok)
	assert.Len(t, cards, 4)
	assert.Equal(t, "up", cards[0]["trend"])

	charts, ok := payload.Area(AreaCharts)
	require.True(t, ok)
	require.Len(t, charts.Widgets, 5)
	for _, w := range charts.Widgets {
		assert.Empty(t, w.Error, w.Widget.ID)
		assert.NotEmpty(t, w.Data["chart_html"], w.Widget.ID)
	}

	tables, ok := payload.Area(AreaTables)
	require.True(t, ok)
	rows, ok := tables.Widgets[0].Data["orders"].([]map[string]any)
	require.True(t, ok)
	assert.Len(t, rows, 5)
	assert.Equal(t, ToneSuccess, rows[0]["tone"])
}

func TestDashboardRevenueWidgetHonorsMonths(t *testing.T) {
	svc := newTestService(t, Options{Layout: []Widget{
		{ID: "rev", DefinitionID: WidgetRevenueChart, Area: AreaCharts, Configuration: map[string]any{"months": 3, "title": "Quarter"}},
	}})
	w, err := svc.Widget(context.Background(), "rev", ViewerContext{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Oct", "Nov", "Dec"}, w.Data["labels"])
	assert.Equal(t, "Quarter", w.Data["title"])

	_, err = svc.Widget(context.Background(), "missing", ViewerContext{})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDashboardRejectsInvalidConfiguration(t *testing.T) {
	svc := newTestService(t, Options{Layout: []Widget{
		{ID: "rev", DefinitionID: WidgetRevenueChart, Area: AreaCharts, Configuration: map[string]any{"months": 40}},
	}})
	_, err := svc.Dashboard(context.Background(), ViewerContext{})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestDashboardUnknownDefinition(t *testing.T) {
	svc := newTestService(t, Options{Layout: []Widget{{ID: "x", DefinitionID: "erp.widget.nope", Area: AreaCharts}}})
	_, err := svc.Dashboard(context.Background(), ViewerContext{})
	assert.Error(t, err)
}

func TestDashboardRecordsProviderErrors(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterDefinition(WidgetDefinition{Code: "erp.widget.broken", Name: "Broken"}))
	require.NoError(t, reg.RegisterProvider("erp.widget.broken", ProviderFunc(func(context.Context, WidgetContext) (WidgetData, error) {
		return nil, errors.New("upstream unavailable")
	})))
	telemetry := &recordingTelemetry{}
	svc := newTestService(t, Options{
		Providers: reg,
		Telemetry: telemetry,
		Layout:    []Widget{{ID: "b", DefinitionID: "erp.widget.broken", Area: "custom.area"}},
	})

	payload, err := svc.Dashboard(context.Background(), ViewerContext{})
	require.NoError(t, err)
	require.Len(t, payload.Areas, 1)
	assert.Equal(t, "custom.area", payload.Areas[0].Code)
	assert.Equal(t, "upstream unavailable", payload.Areas[0].Widgets[0].Error)
	assert.Equal(t, []string{"erp.widget.provider_error"}, telemetry.names())
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	assert.Error(t, reg.RegisterDefinition(WidgetDefinition{}))
	assert.Error(t, reg.RegisterProvider("erp.widget.none", ProviderFunc(kpiCards)))
	require.NoError(t, reg.RegisterDefinition(WidgetDefinition{Code: "b"}))
	require.NoError(t, reg.RegisterDefinition(WidgetDefinition{Code: "a"}))
	assert.Error(t, reg.RegisterProvider("a", nil))

	defs := reg.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "a", defs[0].Code)

	defaults := DefaultRegistry()
	for _, def := range DefaultWidgetDefinitions() {
		_, ok := defaults.Provider(def.Code)
		assert.True(t, ok, def.Code)
	}
}

func TestProvidersRequireSource(t *testing.T) {
	_, err := kpiCards(context.Background(), WidgetContext{})
	assert.Error(t, err)
	_, err = recentOrders(context.Background(), WidgetContext{})
	assert.Error(t, err)
	_, err = chartProvider(NewEChartsProvider(), revenueChart).Fetch(context.Background(), WidgetContext{})
	assert.Error(t, err)
}

func TestIntValue(t *testing.T) {
	assert.Equal(t, 3, intValue(3, 1))
	assert.Equal(t, 3, intValue(float64(3), 1))
	assert.Equal(t, 1, intValue("3", 1))
	assert.Equal(t, 1, intValue(nil, 1))
}
