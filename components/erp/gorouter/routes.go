package gorouter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	router "github.com/goliatone/go-router"

	erp "github.com/goliatone/go-erp-dashboard/components/erp"
	"github.com/goliatone/go-erp-dashboard/components/erp/commands"
	"github.com/goliatone/go-erp-dashboard/components/erp/httpapi"
	"github.com/goliatone/go-erp-dashboard/components/erp/queries"
)

// ViewerResolver converts a router.Context into an erp.ViewerContext.
type ViewerResolver func(router.Context) erp.ViewerContext

// Config wires go-router with the ERP pages, JSON API and notification socket.
type Config[T any] struct {
	Router         router.Router[T]
	Controller     *erp.Controller
	API            *httpapi.Handlers
	Broadcast      *erp.BroadcastHook
	ViewerResolver ViewerResolver
	BasePath       string
	Routes         RouteConfig
}

// RouteConfig customizes the relative paths used for ERP endpoints.
type RouteConfig struct {
	Dashboard string
	List      string
	API       string
	WebSocket string
}

// Register mounts ERP routes (HTML, JSON, WebSocket) on a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	routes := defaultRouteConfig(cfg.Routes)
	base := cfg.BasePath
	if base == "" {
		base = "/erp"
	}
	viewerResolver := cfg.ViewerResolver
	if viewerResolver == nil {
		viewerResolver = defaultViewerResolver
	}

	group := cfg.Router.Group(base)

	group.Get(routes.Dashboard, router.WrapHandler(func(ctx router.Context) error {
		var buf bytes.Buffer
		if err := cfg.Controller.RenderDashboard(ctx.Context(), viewerResolver(ctx), &buf); err != nil {
			return respondError(ctx, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	}))

	if cfg.API != nil {
		registerAPI(group.Group(routes.API), cfg.API, viewerResolver)
	}

	if cfg.Broadcast != nil {
		registerWebSocket(group, cfg.Broadcast, routes.WebSocket)
	}

	group.Get(routes.List, router.WrapHandler(func(ctx router.Context) error {
		entity := ctx.Param("entity")
		req, err := httpapi.ParseListRequest(entity, queryGetter(ctx))
		if err != nil {
			return respondError(ctx, err)
		}
		var buf bytes.Buffer
		if err := cfg.Controller.RenderList(ctx.Context(), entity, req, &buf); err != nil {
			return respondError(ctx, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	}))

	return nil
}

func registerAPI[T any](r router.Router[T], api *httpapi.Handlers, resolver ViewerResolver) {
	r.Get("/dashboard", router.WrapHandler(func(ctx router.Context) error {
		payload, err := api.Dashboard.Query(ctx.Context(), resolver(ctx))
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, payload)
	}))

	r.Get("/reports", router.WrapHandler(func(ctx router.Context) error {
		req := erp.ReportRequest{Region: ctx.Query("region")}
		if raw := ctx.Query("months"); raw != "" {
			months, err := strconv.Atoi(raw)
			if err != nil {
				return respondError(ctx, fmt.Errorf("%w: months must be an integer", erp.ErrInvalidRequest))
			}
			req.Months = months
		}
		report, err := api.Report.Query(ctx.Context(), req)
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, report)
	}))

	r.Post("/reports/export", router.WrapHandler(func(ctx router.Context) error {
		var payload erp.ExportRequest
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		var result erp.ExportResult
		if err := api.Export.Execute(ctx.Context(), commands.ExportReportInput{Request: payload, Result: &result}); err != nil {
			return respondError(ctx, err)
		}
		ctx.SetHeader("Content-Type", result.ContentType)
		ctx.SetHeader("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
		return ctx.Send(result.Data)
	}))

	r.Post("/customers", router.WrapHandler(func(ctx router.Context) error {
		var payload erp.Customer
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		var created erp.Customer
		if err := api.AddCustomer.Execute(ctx.Context(), commands.AddCustomerInput{Customer: payload, Result: &created}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusCreated, created)
	}))

	r.Post("/employees", router.WrapHandler(func(ctx router.Context) error {
		var payload erp.Employee
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		var created erp.Employee
		if err := api.AddEmployee.Execute(ctx.Context(), commands.AddEmployeeInput{Employee: payload, Result: &created}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusCreated, created)
	}))

	r.Post("/products", router.WrapHandler(func(ctx router.Context) error {
		var payload erp.Product
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		var saved erp.Product
		if err := api.SaveProduct.Execute(ctx.Context(), commands.SaveProductInput{Product: payload, Result: &saved}); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, saved)
	}))

	r.Post("/orders/:id/status", router.WrapHandler(func(ctx router.Context) error {
		var payload struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		var order erp.Order
		input := commands.UpdateOrderStatusInput{OrderID: ctx.Param("id"), Status: payload.Status, Result: &order}
		if err := api.OrderStatus.Execute(ctx.Context(), input); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, order)
	}))

	r.Get("/settings", router.WrapHandler(func(ctx router.Context) error {
		settings, err := api.Settings.Query(ctx.Context(), resolver(ctx))
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, settings)
	}))

	r.Post("/settings", router.WrapHandler(func(ctx router.Context) error {
		var payload erp.Settings
		if err := json.Unmarshal(ctx.Body(), &payload); err != nil {
			return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		var saved erp.Settings
		input := commands.SaveSettingsInput{Viewer: resolver(ctx), Settings: payload, Result: &saved}
		if err := api.SaveSettings.Execute(ctx.Context(), input); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, saved)
	}))

	r.Get("/:entity", router.WrapHandler(func(ctx router.Context) error {
		entity := ctx.Param("entity")
		req, err := httpapi.ParseListRequest(entity, queryGetter(ctx))
		if err != nil {
			return respondError(ctx, err)
		}
		resp, err := api.List.Query(ctx.Context(), queries.ListInput{Entity: entity, Request: req})
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, resp)
	}))

	r.Get("/:entity/stats", router.WrapHandler(func(ctx router.Context) error {
		entity := ctx.Param("entity")
		stats, err := api.Stats.Query(ctx.Context(), entity)
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]any{"entity": entity, "stats": stats})
	}))

	r.Get("/:entity/:id", router.WrapHandler(func(ctx router.Context) error {
		record, err := api.Record.Query(ctx.Context(), queries.RecordInput{Entity: ctx.Param("entity"), ID: ctx.Param("id")})
		if err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, record)
	}))

	r.Delete("/:entity/:id", router.WrapHandler(func(ctx router.Context) error {
		input := commands.DeleteRecordInput{Entity: ctx.Param("entity"), ID: ctx.Param("id")}
		if err := api.Delete.Execute(ctx.Context(), input); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "deleted"})
	}))
}

func registerWebSocket[T any](r router.Router[T], hook *erp.BroadcastHook, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		events, cancel := hook.Subscribe()
		defer cancel()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

func queryGetter(ctx router.Context) func(string) string {
	return func(name string) string {
		return ctx.Query(name)
	}
}

func defaultViewerResolver(ctx router.Context) erp.ViewerContext {
	var viewer erp.ViewerContext
	if v, ok := ctx.Locals("user_id").(string); ok {
		viewer.UserID = v
	}
	if locale, ok := ctx.Locals("locale").(string); ok && locale != "" {
		viewer.Locale = locale
	} else {
		viewer.Locale = parseAcceptLanguage(ctx.Header("Accept-Language"))
	}
	return viewer
}

func parseAcceptLanguage(header string) string {
	for _, token := range strings.Split(header, ",") {
		token = strings.TrimSpace(token)
		if idx := strings.Index(token, ";"); idx >= 0 {
			token = token[:idx]
		}
		if token != "" {
			return strings.ToLower(token)
		}
	}
	return ""
}

func respondError(ctx router.Context, err error) error {
	return ctx.JSON(httpapi.StatusFor(err), map[string]string{"error": err.Error()})
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.Dashboard == "" {
		routes.Dashboard = "/dashboard"
	}
	if routes.List == "" {
		routes.List = "/:entity"
	}
	if routes.API == "" {
		routes.API = "/api"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = "/ws"
	}
	return routes
}
