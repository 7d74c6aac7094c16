package erp

import (
	"context"
	"embed"
	"fmt"
	"io"
	"net/url"
	"strconv"

	template "github.com/goliatone/go-template"
)

// Template names.
const (
	TemplateList      = "list"
	TemplateDashboard = "dashboard"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// Renderer describes the template renderer contract needed by the controller.
type Renderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
}

// NewTemplateRenderer creates a go-template renderer backed by the embedded templates.
func NewTemplateRenderer() (Renderer, error) {
	return template.NewRenderer(
		template.WithFS(embeddedTemplates),
		template.WithBaseDir("templates"),
		template.WithExtension(".html"),
	)
}

var moneyColumns = map[string]bool{
	"total":       true,
	"total_spent": true,
	"price":       true,
	"salary":      true,
	"revenue":     true,
}

var entityTitles = map[string]string{
	EntityCustomers: "Customers",
	EntityEmployees: "Employees",
	EntityProducts:  "Inventory",
	EntityOrders:    "Orders",
}

// Controller renders HTML pages from service results.
type Controller struct {
	service  *Service
	renderer Renderer
}

// NewController wires the service and renderer into a controller.
func NewController(service *Service, renderer Renderer) *Controller {
	return &Controller{service: service, renderer: renderer}
}

// RenderList writes the list page of an entity to out.
func (c *Controller) RenderList(ctx context.Context, entity string, req ListRequest, out io.Writer) error {
	resp, err := c.service.List(ctx, entity, req)
	if err != nil {
		return err
	}
	if _, err := c.renderer.Render(TemplateList, ListView(resp), out); err != nil {
		return fmt.Errorf("erp: render %s list: %w", entity, err)
	}
	return nil
}

// RenderDashboard writes the overview page to out.
func (c *Controller) RenderDashboard(ctx context.Context, viewer ViewerContext, out io.Writer) error {
	payload, err := c.service.Dashboard(ctx, viewer)
	if err != nil {
		return err
	}
	if _, err := c.renderer.Render(TemplateDashboard, DashboardView(payload), out); err != nil {
		return fmt.Errorf("erp: render dashboard: %w", err)
	}
	return nil
}

// ListView flattens a list response into template data.
func ListView(resp ListResponse) map[string]any {
	rows := make([]map[string]any, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		cells := make([]string, 0, len(resp.Columns))
		for _, col := range resp.Columns {
			cells = append(cells, FormatCell(col, row.Fields[col]))
		}
		rows = append(rows, map[string]any{
			"id":    row.ID,
			"tone":  string(row.Tone),
			"cells": cells,
		})
	}
	selected := resp.Filters[resp.FilterField]
	options := make([]map[string]any, 0, len(resp.FilterOptions))
	for _, opt := range resp.FilterOptions {
		options = append(options, map[string]any{
			"value":    opt,
			"label":    StatusLabel(opt),
			"selected": opt == selected,
		})
	}
	stats := make([]map[string]any, 0, len(resp.Stats))
	for _, s := range resp.Stats {
		value := number(s.Value)
		if s.Format == "currency" {
			value = money(s.Value)
		}
		stats = append(stats, map[string]any{"code": s.Code, "label": s.Label, "value": value})
	}
	columns := make([]string, 0, len(resp.Columns))
	for _, col := range resp.Columns {
		columns = append(columns, StatusLabel(col))
	}
	title := entityTitles[resp.Entity]
	if title == "" {
		title = StatusLabel(resp.Entity)
	}
	return map[string]any{
		"title":          title,
		"entity":         resp.Entity,
		"columns":        columns,
		"rows":           rows,
		"stats":          stats,
		"search":         resp.Search,
		"filter_field":   resp.FilterField,
		"filter_options": options,
		"page":           resp.Page,
		"total_pages":    resp.TotalPages,
		"total":          resp.Total,
		"from":           resp.From,
		"to":             resp.To,
		"has_previous":   resp.HasPrevious,
		"has_next":       resp.HasNext,
		"previous_page":  resp.Page - 1,
		"next_page":      resp.Page + 1,
		"query":          pageQuery(resp),
	}
}

// DashboardView flattens a dashboard payload into template data.
func DashboardView(p DashboardPayload) map[string]any {
	areas := make([]map[string]any, 0, len(p.Areas))
	for _, area := range p.Areas {
		widgets := make([]map[string]any, 0, len(area.Widgets))
		for _, w := range area.Widgets {
			view := map[string]any{
				"id":         w.Widget.ID,
				"definition": w.Definition.Code,
				"name":       w.Definition.Name,
				"error":      w.Error,
			}
			for k, v := range w.Data {
				view[k] = v
			}
			widgets = append(widgets, view)
		}
		areas = append(areas, map[string]any{"code": area.Code, "widgets": widgets})
	}
	return map[string]any{
		"title": "Dashboard",
		"areas": areas,
	}
}

// FormatCell renders a field value for display.
func FormatCell(column string, value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		if column == "status" {
			return StatusLabel(v)
		}
		return v
	case float64:
		if moneyColumns[column] {
			return money(v)
		}
		return number(v)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}

func pageQuery(resp ListResponse) string {
	values := url.Values{}
	if resp.Search != "" {
		values.Set("search", resp.Search)
	}
	for k, v := range resp.Filters {
		values.Set("filter."+k, v)
	}
	if len(values) == 0 {
		return ""
	}
	return "&" + values.Encode()
}
