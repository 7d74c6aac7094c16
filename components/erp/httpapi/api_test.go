package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	erp "github.com/goliatone/go-erp-dashboard/components/erp"
	"github.com/goliatone/go-erp-dashboard/components/erp/commands"
)

type stubCommander[T any] struct {
	last  T
	calls int
	err   error
}

func (s *stubCommander[T]) Execute(ctx context.Context, msg T) error {
	s.last = msg
	s.calls++
	return s.err
}

func newTestMux(t *testing.T) http.Handler {
	t.Helper()
	service := erp.NewService(erp.Options{})
	return NewHandlers(service, erp.NewBroadcastHook(), nil).Mux("/api")
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestListEndpointFiltersAndPaginates(t *testing.T) {
	mux := newTestMux(t)
	rec := serve(mux, http.MethodGet, "/api/customers?filter.status=pending", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["total"])

	rec = serve(mux, http.MethodGet, "/api/orders?page=3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, float64(3), body["page"])
	assert.Equal(t, false, body["has_next"])
}

func TestListEndpointErrors(t *testing.T) {
	mux := newTestMux(t)
	assert.Equal(t, http.StatusBadRequest, serve(mux, http.MethodGet, "/api/customers?page=two", "").Code)
	assert.Equal(t, http.StatusBadRequest, serve(mux, http.MethodGet, "/api/products?page_size=500", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(mux, http.MethodGet, "/api/invoices", "").Code)
}

func TestRecordAndStatsEndpoints(t *testing.T) {
	mux := newTestMux(t)
	rec := serve(mux, http.MethodGet, "/api/customers/CUS-001", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CUS-001", decodeBody(t, rec)["id"])

	assert.Equal(t, http.StatusNotFound, serve(mux, http.MethodGet, "/api/customers/CUS-999", "").Code)

	rec = serve(mux, http.MethodGet, "/api/products/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, erp.EntityProducts, decodeBody(t, rec)["entity"])
}

func TestMutationEndpoints(t *testing.T) {
	mux := newTestMux(t)
	rec := serve(mux, http.MethodPost, "/api/customers", `{"name":"Ada Lovelace","email":"ada@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody(t, rec)
	assert.True(t, strings.HasPrefix(created["id"].(string), "CUS-"))

	rec = serve(mux, http.MethodGet, "/api/customers", "")
	assert.Equal(t, float64(11), decodeBody(t, rec)["total"])

	assert.Equal(t, http.StatusBadRequest, serve(mux, http.MethodPost, "/api/customers", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(mux, http.MethodPost, "/api/customers", `not json`).Code)

	rec = serve(mux, http.MethodPost, "/api/orders/ORD-7351/status", `{"status":"shipped"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, erp.OrderShipped, decodeBody(t, rec)["status"])
	assert.Equal(t, http.StatusBadRequest, serve(mux, http.MethodPost, "/api/orders/ORD-7351/status", `{"status":"lost"}`).Code)

	rec = serve(mux, http.MethodPost, "/api/products", `{"id":"PRD-001","name":"Desk Lamp","price":25,"stock":4}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, erp.ProductLowStock, decodeBody(t, rec)["status"])
	assert.Equal(t, http.StatusMethodNotAllowed, serve(mux, http.MethodPut, "/api/products", `{"name":"x"}`).Code)

	assert.Equal(t, http.StatusNoContent, serve(mux, http.MethodDelete, "/api/products/PRD-001", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(mux, http.MethodDelete, "/api/products/PRD-001", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(mux, http.MethodDelete, "/api/orders/ORD-7351", "").Code)
}

func TestSettingsEndpoints(t *testing.T) {
	mux := newTestMux(t)
	get := func(user string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
		req.Header.Set("X-User-ID", user)
		req.Header.Set("Accept-Language", "es")
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		return rec
	}
	rec := get("u1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "es", decodeBody(t, rec)["language"])

	req := httptest.NewRequest(http.MethodPost, "/api/settings", strings.NewReader(`{"marketing_emails":true,"currency":"jpy"}`))
	req.Header.Set("X-User-ID", "u1")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	saved := decodeBody(t, rec)
	assert.Equal(t, "jpy", saved["currency"])
	assert.Equal(t, true, saved["marketing_emails"])

	assert.Equal(t, "jpy", decodeBody(t, get("u1"))["currency"])
	assert.Equal(t, "usd", decodeBody(t, get("u2"))["currency"])

	assert.Equal(t, http.StatusBadRequest, serve(mux, http.MethodPost, "/api/settings", `{"currency":"jpy"}`).Code, "anonymous viewers cannot save")
}

func TestExportEndpoint(t *testing.T) {
	mux := newTestMux(t)
	rec := serve(mux, http.MethodPost, "/api/reports/export", `{"report":"sales","format":"csv"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "sales-report.csv")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Month,Sales,Target"))

	rec = serve(mux, http.MethodPost, "/api/reports/export", `{"report":"sales","format":"xlsx"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportAndDashboardEndpoints(t *testing.T) {
	mux := newTestMux(t)
	rec := serve(mux, http.MethodGet, "/api/reports?months=3&region=eu", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(3), body["months"])
	assert.Equal(t, "eu", body["region"])

	rec = serve(mux, http.MethodGet, "/api/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeBody(t, rec)["areas"])
}

func TestHandleDeletePropagatesCommandErrors(t *testing.T) {
	del := &stubCommander[commands.DeleteRecordInput]{err: fmt.Errorf("wrapped: %w", erp.ErrRecordNotFound)}
	api := &Handlers{Delete: del}
	rec := httptest.NewRecorder()
	api.HandleDelete(rec, httptest.NewRequest(http.MethodDelete, "/customers/CUS-001", nil), erp.EntityCustomers, "CUS-001")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CUS-001", del.last.ID)
	assert.Equal(t, 1, del.calls)
}

func TestParseListRequest(t *testing.T) {
	values := url.Values{}
	values.Set("search", "  chair ")
	values.Set("page", "2")
	values.Set("filter.category", "Furniture")
	values.Set("filter.status", "all")
	values.Set("filter.price", "100")
	req, err := ParseListRequest(erp.EntityProducts, values.Get)
	require.NoError(t, err)
	assert.Equal(t, "  chair ", req.Search)
	assert.Equal(t, 2, req.Page)
	assert.Equal(t, map[string]string{"category": "Furniture"}, req.Filters)

	values.Set("page_size", "many")
	_, err = ParseListRequest(erp.EntityProducts, values.Get)
	assert.ErrorIs(t, err, erp.ErrInvalidRequest)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusOK, StatusFor(nil))
	assert.Equal(t, http.StatusNotFound, StatusFor(erp.ErrUnknownEntity))
	assert.Equal(t, http.StatusConflict, StatusFor(erp.ErrDuplicateRecord))
	assert.Equal(t, http.StatusBadRequest, StatusFor(erp.ErrInvalidStatus))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(errors.New("boom")))
}
