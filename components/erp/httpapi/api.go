package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	gocommand "github.com/goliatone/go-command"
	erp "github.com/goliatone/go-erp-dashboard/components/erp"
	"github.com/goliatone/go-erp-dashboard/components/erp/commands"
	"github.com/goliatone/go-erp-dashboard/components/erp/queries"
)

// Handlers exposes HTTP endpoints backed by shared commands and queries.
type Handlers struct {
	List      gocommand.Querier[queries.ListInput, erp.ListResponse]
	Record    gocommand.Querier[queries.RecordInput, any]
	Stats     gocommand.Querier[string, []erp.Stat]
	Dashboard gocommand.Querier[erp.ViewerContext, erp.DashboardPayload]
	Report    gocommand.Querier[erp.ReportRequest, erp.SalesReport]
	Settings  gocommand.Querier[erp.ViewerContext, erp.Settings]

	AddCustomer  gocommand.Commander[commands.AddCustomerInput]
	AddEmployee  gocommand.Commander[commands.AddEmployeeInput]
	SaveProduct  gocommand.Commander[commands.SaveProductInput]
	OrderStatus  gocommand.Commander[commands.UpdateOrderStatusInput]
	Delete       gocommand.Commander[commands.DeleteRecordInput]
	Export       gocommand.Commander[commands.ExportReportInput]
	SaveSettings gocommand.Commander[commands.SaveSettingsInput]

	Events http.HandlerFunc
}

// NewHandlers wires every endpoint to the service.
func NewHandlers(service *erp.Service, broadcast *erp.BroadcastHook, telemetry commands.Telemetry) *Handlers {
	h := &Handlers{
		List:         queries.NewListQuery(service),
		Record:       queries.NewRecordQuery(service),
		Stats:        queries.NewStatsQuery(service),
		Dashboard:    queries.NewDashboardQuery(service),
		Report:       queries.NewReportQuery(service),
		Settings:     queries.NewSettingsQuery(service),
		AddCustomer:  commands.NewAddCustomerCommand(service, telemetry),
		AddEmployee:  commands.NewAddEmployeeCommand(service, telemetry),
		SaveProduct:  commands.NewSaveProductCommand(service, telemetry),
		OrderStatus:  commands.NewUpdateOrderStatusCommand(service, telemetry),
		Delete:       commands.NewDeleteRecordCommand(service, telemetry),
		Export:       commands.NewExportReportCommand(service, telemetry),
		SaveSettings: commands.NewSaveSettingsCommand(service, telemetry),
	}
	if broadcast != nil {
		h.Events = broadcast.ServeSSE
	}
	return h
}

// Mux mounts the handlers under prefix using method-aware patterns.
func (h *Handlers) Mux(prefix string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+prefix+"/dashboard", h.HandleDashboard)
	mux.HandleFunc("GET "+prefix+"/reports", h.HandleReport)
	mux.HandleFunc("POST "+prefix+"/reports/export", h.HandleExport)
	mux.HandleFunc("POST "+prefix+"/customers", h.HandleAddCustomer)
	mux.HandleFunc("POST "+prefix+"/employees", h.HandleAddEmployee)
	mux.HandleFunc("POST "+prefix+"/products", h.HandleSaveProduct)
	mux.HandleFunc("GET "+prefix+"/settings", h.HandleSettings)
	mux.HandleFunc("POST "+prefix+"/settings", h.HandleSaveSettings)
	mux.HandleFunc("POST "+prefix+"/orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		h.HandleOrderStatus(w, r, r.PathValue("id"))
	})
	mux.HandleFunc("GET "+prefix+"/{entity}", func(w http.ResponseWriter, r *http.Request) {
		h.HandleList(w, r, r.PathValue("entity"))
	})
	mux.HandleFunc("GET "+prefix+"/{entity}/stats", func(w http.ResponseWriter, r *http.Request) {
		h.HandleStats(w, r, r.PathValue("entity"))
	})
	mux.HandleFunc("GET "+prefix+"/{entity}/{id}", func(w http.ResponseWriter, r *http.Request) {
		h.HandleRecord(w, r, r.PathValue("entity"), r.PathValue("id"))
	})
	mux.HandleFunc("DELETE "+prefix+"/{entity}/{id}", func(w http.ResponseWriter, r *http.Request) {
		h.HandleDelete(w, r, r.PathValue("entity"), r.PathValue("id"))
	})
	if h.Events != nil {
		mux.HandleFunc("GET "+prefix+"/events", h.Events)
	}
	return mux
}

func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request, entity string) {
	req, err := ParseListRequest(entity, r.URL.Query().Get)
	if err != nil {
		writeError(w, err)
		return
	}
	resp, err := h.List.Query(r.Context(), queries.ListInput{Entity: entity, Request: req})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) HandleRecord(w http.ResponseWriter, r *http.Request, entity, id string) {
	record, err := h.Record.Query(r.Context(), queries.RecordInput{Entity: entity, ID: id})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handlers) HandleStats(w http.ResponseWriter, r *http.Request, entity string) {
	stats, err := h.Stats.Query(r.Context(), entity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entity": entity, "stats": stats})
}

func (h *Handlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	payload, err := h.Dashboard.Query(r.Context(), viewerFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *Handlers) HandleReport(w http.ResponseWriter, r *http.Request) {
	months, err := intParam(r.URL.Query().Get, "months")
	if err != nil {
		writeError(w, err)
		return
	}
	report, err := h.Report.Query(r.Context(), erp.ReportRequest{Months: months, Region: r.URL.Query().Get("region")})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	var payload erp.ExportRequest
	if !decode(w, r, &payload) {
		return
	}
	var result erp.ExportResult
	if err := h.Export.Execute(r.Context(), commands.ExportReportInput{Request: payload, Result: &result}); err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Data)
}

func (h *Handlers) HandleAddCustomer(w http.ResponseWriter, r *http.Request) {
	var payload erp.Customer
	if !decode(w, r, &payload) {
		return
	}
	var created erp.Customer
	if err := h.AddCustomer.Execute(r.Context(), commands.AddCustomerInput{Customer: payload, Result: &created}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) HandleAddEmployee(w http.ResponseWriter, r *http.Request) {
	var payload erp.Employee
	if !decode(w, r, &payload) {
		return
	}
	var created erp.Employee
	if err := h.AddEmployee.Execute(r.Context(), commands.AddEmployeeInput{Employee: payload, Result: &created}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) HandleSaveProduct(w http.ResponseWriter, r *http.Request) {
	var payload erp.Product
	if !decode(w, r, &payload) {
		return
	}
	var saved erp.Product
	if err := h.SaveProduct.Execute(r.Context(), commands.SaveProductInput{Product: payload, Result: &saved}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *Handlers) HandleOrderStatus(w http.ResponseWriter, r *http.Request, id string) {
	var payload struct {
		Status string `json:"status"`
	}
	if !decode(w, r, &payload) {
		return
	}
	var order erp.Order
	if err := h.OrderStatus.Execute(r.Context(), commands.UpdateOrderStatusInput{OrderID: id, Status: payload.Status, Result: &order}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handlers) HandleSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Settings.Query(r.Context(), viewerFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handlers) HandleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var payload erp.Settings
	if !decode(w, r, &payload) {
		return
	}
	var saved erp.Settings
	input := commands.SaveSettingsInput{Viewer: viewerFrom(r), Settings: payload, Result: &saved}
	if err := h.SaveSettings.Execute(r.Context(), input); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *Handlers) HandleDelete(w http.ResponseWriter, r *http.Request, entity, id string) {
	if err := h.Delete.Execute(r.Context(), commands.DeleteRecordInput{Entity: entity, ID: id}); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// viewerFrom reads the viewer from the X-User-ID and Accept-Language headers.
func viewerFrom(r *http.Request) erp.ViewerContext {
	return erp.ViewerContext{UserID: r.Header.Get("X-User-ID"), Locale: r.Header.Get("Accept-Language")}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, StatusFor(err), map[string]string{"error": err.Error()})
}
