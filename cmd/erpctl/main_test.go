package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	erp "github.com/goliatone/go-erp-dashboard/components/erp"
)

func testGlobals(out *bytes.Buffer) *Globals {
	return &Globals{LogLevel: "error", Out: out}
}

func TestListCommandPrintsTable(t *testing.T) {
	var out bytes.Buffer
	cmd := &listCmd{Entity: "products", Filter: map[string]string{"Category": "Furniture"}, Page: 1}
	require.NoError(t, cmd.Run(testGlobals(&out)))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "Ergonomic Chair")
	assert.Equal(t, "Showing 1 to 3 of 3 results (page 1 of 1)", lines[4])
}

func TestListCommandJSON(t *testing.T) {
	var out bytes.Buffer
	cmd := &listCmd{Entity: "orders", Filter: map[string]string{"status": "pending"}, JSON: true}
	require.NoError(t, cmd.Run(testGlobals(&out)))
	assert.Contains(t, out.String(), `"total": 2`)
}

func TestShowAndStatsCommands(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&showCmd{Entity: "employees", ID: "EMP-001"}).Run(testGlobals(&out)))
	assert.Contains(t, out.String(), `"id": "EMP-001"`)

	out.Reset()
	require.NoError(t, (&statsCmd{Entity: "customers"}).Run(testGlobals(&out)))
	assert.Contains(t, out.String(), "$56555.85")

	assert.Error(t, (&showCmd{Entity: "customers", ID: "CUS-999"}).Run(testGlobals(&out)))
}

func TestExportCommandWritesFile(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "revenue.csv")
	cmd := &exportCmd{Report: "revenue", Format: "csv", Months: 3, Out: path}
	require.NoError(t, cmd.Run(testGlobals(&out)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "Month,Revenue,Profit", lines[0])
	assert.Len(t, lines, 4)
	assert.Contains(t, out.String(), path)
}

func TestLoadsDatasetFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataset.yaml")
	require.NoError(t, os.WriteFile(path, []byte("customers:\n  - id: CUS-900\n    name: Only One\n    email: one@example.com\n    status: active\n"), 0o600))
	var out bytes.Buffer
	g := testGlobals(&out)
	g.Dataset = path
	require.NoError(t, (&listCmd{Entity: "customers", JSON: true}).Run(g))
	assert.Contains(t, out.String(), `"total": 1`)
}

func TestNormalizeFilters(t *testing.T) {
	assert.Nil(t, normalizeFilters(nil))
	assert.Equal(t, map[string]string{"payment_method": "card", "status": "active"}, normalizeFilters(map[string]string{
		"paymentMethod": "card",
		" status ":      "active",
	}))
}

func TestWidgetsCommand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&widgetsCmd{}).Run(testGlobals(&out)))
	assert.Contains(t, out.String(), "erp.widget.revenue_chart")

	out.Reset()
	path := filepath.Join(t.TempDir(), "widgets.yaml")
	require.NoError(t, (&widgetsCmd{Out: path}).Run(testGlobals(&out)))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "version: 1\n"))
	assert.Contains(t, string(data), "code: erp.widget.kpi_cards")
}

func TestServiceUsesEChartsCDNWithoutTouchingEnv(t *testing.T) {
	t.Setenv(erp.EnvEChartsCDN, "")
	g := &Globals{LogLevel: "error", EChartsCDN: "https://cdn.example.com/echarts"}
	svc, err := g.service(g.logger(), nil)
	require.NoError(t, err)

	w, err := svc.Widget(context.Background(), "revenue", erp.ViewerContext{})
	require.NoError(t, err)
	assert.Contains(t, w.Data["chart_html"], "https://cdn.example.com/echarts/")
	assert.Empty(t, os.Getenv(erp.EnvEChartsCDN))
}
