package erp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextNotification(t *testing.T, ch <-chan Notification) Notification {
	t.Helper()
	select {
	case n := <-ch:
		return n
	default:
		t.Fatalf("expected notification to be delivered")
		return Notification{}
	}
}

func TestAddCustomerFillsDefaultsAndNotifies(t *testing.T) {
	hook := NewBroadcastHook()
	events, cancel := hook.Subscribe()
	defer cancel()
	svc := newTestService(t, Options{NotificationHook: hook})

	c, err := svc.AddCustomer(context.Background(), Customer{Name: " Arlene McCoy ", Email: "arlene@example.com"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(c.ID, "CUS-"))
	assert.Equal(t, "Arlene McCoy", c.Name)
	assert.Equal(t, CustomerActive, c.Status)
	assert.Equal(t, "2024-06-15", c.JoinDate)

	result, err := svc.Customers(context.Background(), ListRequest{Page: 3, PageSize: 5})
	require.NoError(t, err)
	require.Len(t, result.Page.Items, 1, "inserted records are appended")
	assert.Equal(t, c.ID, result.Page.Items[0].ID)
	assert.Equal(t, 7, result.Overall.CountOf(CustomerActive))

	n := nextNotification(t, events)
	assert.Equal(t, LevelSuccess, n.Level)
	assert.Equal(t, "Customer added", n.Title)
	assert.Equal(t, c.ID, n.RecordID)
	assert.Equal(t, fixedNow, n.At)
}

func TestAddCustomerValidation(t *testing.T) {
	svc := newTestService(t, Options{})
	_, err := svc.AddCustomer(context.Background(), Customer{Name: "No Email"})
	assert.ErrorIs(t, err, ErrInvalidRecord)

	_, err = svc.AddCustomer(context.Background(), Customer{Name: "Bad", Email: "bad@example.com", Status: "vip"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.AddCustomer(context.Background(), Customer{ID: "CUS-001", Name: "Dup", Email: "dup@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateRecord)
}

func TestDeleteCustomer(t *testing.T) {
	svc := newTestService(t, Options{})
	require.NoError(t, svc.DeleteCustomer(context.Background(), "CUS-003"))
	_, err := svc.Record(context.Background(), EntityCustomers, "CUS-003")
	assert.ErrorIs(t, err, ErrRecordNotFound)

	result, err := svc.Customers(context.Background(), ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 9, result.Page.Total)
	assert.Equal(t, "CUS-004", result.Page.Items[2].ID, "remaining records keep their order")

	assert.ErrorIs(t, svc.DeleteCustomer(context.Background(), "CUS-003"), ErrRecordNotFound)
}

func TestAddEmployee(t *testing.T) {
	svc := newTestService(t, Options{})
	e, err := svc.AddEmployee(context.Background(), Employee{Name: "Eleanor Pena", Role: "Recruiter", Department: "Human Resources"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(e.ID, "EMP-"))
	assert.Equal(t, EmployeeActive, e.Status)

	stats, err := svc.Stats(context.Background(), EntityEmployees)
	require.NoError(t, err)
	assert.Equal(t, float64(9), stats[0].Value)

	_, err = svc.AddEmployee(context.Background(), Employee{Name: "No Department"})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestSaveProductInsertsAndReplaces(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()

	created, err := svc.SaveProduct(ctx, Product{Name: "Monitor Arm", Category: "Accessories", Price: 59, Stock: 4})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "PRD-"))
	assert.Equal(t, ProductLowStock, created.Status)

	updated, err := svc.SaveProduct(ctx, Product{ID: "PRD-004", Name: "USB-C Hub", SKU: "AC-UH-044", Category: "Accessories", Price: 39.99, Stock: 50})
	require.NoError(t, err)
	assert.Equal(t, ProductInStock, updated.Status)

	result, err := svc.Products(ctx, ListRequest{PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 13, result.Page.Total)
	assert.Equal(t, "PRD-004", result.Page.Items[3].ID, "replace keeps position")
	assert.Equal(t, 50, result.Page.Items[3].Stock)
	assert.Equal(t, 1, result.Overall.CountOf(ProductOutOfStock))

	_, err = svc.SaveProduct(ctx, Product{Name: "Broken", Stock: -1})
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestSaveProductWithUnknownIDInserts(t *testing.T) {
	svc := newTestService(t, Options{})
	p, err := svc.SaveProduct(context.Background(), Product{ID: "PRD-100", Name: "Pen", Stock: 0})
	require.NoError(t, err)
	assert.Equal(t, ProductOutOfStock, p.Status)
	_, err = svc.Record(context.Background(), EntityProducts, "PRD-100")
	assert.NoError(t, err)
}

func TestDeleteProduct(t *testing.T) {
	svc := newTestService(t, Options{})
	require.NoError(t, svc.DeleteProduct(context.Background(), "PRD-001"))
	assert.ErrorIs(t, svc.DeleteProduct(context.Background(), "PRD-001"), ErrRecordNotFound)
}

func TestUpdateOrderStatus(t *testing.T) {
	hook := NewBroadcastHook()
	events, cancel := hook.Subscribe()
	defer cancel()
	svc := newTestService(t, Options{NotificationHook: hook})
	ctx := context.Background()

	o, err := svc.UpdateOrderStatus(ctx, "ORD-7349", OrderShipped)
	require.NoError(t, err)
	assert.Equal(t, OrderShipped, o.Status)

	pending, err := svc.Orders(ctx, ListRequest{Filters: map[string]string{"status": OrderPending}})
	require.NoError(t, err)
	assert.Equal(t, []string{"ORD-7345"}, orderIDs(pending.Page.Items))

	n := nextNotification(t, events)
	assert.Equal(t, "Order updated", n.Title)
	assert.Equal(t, "Order ORD-7349 is now Shipped.", n.Description)

	_, err = svc.UpdateOrderStatus(ctx, "ORD-7349", "lost")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	_, err = svc.UpdateOrderStatus(ctx, "ORD-0000", OrderShipped)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

type failingHook struct{}

func (failingHook) Notify(context.Context, Notification) error { return errors.New("hook down") }

func TestNotificationFailureDoesNotFailMutation(t *testing.T) {
	telemetry := &recordingTelemetry{}
	svc := newTestService(t, Options{NotificationHook: failingHook{}, Telemetry: telemetry})
	_, err := svc.UpdateOrderStatus(context.Background(), "ORD-7351", OrderCompleted)
	require.NoError(t, err)
	assert.Contains(t, telemetry.names(), "erp.notification.error")
	assert.Contains(t, telemetry.names(), "erp.record.update")
}

func TestMutationsDoNotDisturbEarlierSnapshots(t *testing.T) {
	svc := newTestService(t, Options{})
	before, err := svc.Orders(context.Background(), ListRequest{})
	require.NoError(t, err)
	_, err = svc.UpdateOrderStatus(context.Background(), "ORD-7352", OrderCancelled)
	require.NoError(t, err)
	assert.Equal(t, OrderCompleted, before.Page.Items[0].Status)
}

func TestStockStatus(t *testing.T) {
	assert.Equal(t, ProductOutOfStock, StockStatus(0))
	assert.Equal(t, ProductLowStock, StockStatus(LowStockThreshold-1))
	assert.Equal(t, ProductInStock, StockStatus(LowStockThreshold))
}

func TestMutationsPurgeRenderedCharts(t *testing.T) {
	cache := NewChartCache(time.Minute)
	telemetry := &recordingTelemetry{}
	svc := newTestService(t, Options{ChartCache: cache, Telemetry: telemetry})
	ctx := context.Background()

	_, err := svc.Dashboard(ctx, ViewerContext{})
	require.NoError(t, err)
	rendered := cache.Len()
	require.Positive(t, rendered)

	_, err = svc.UpdateOrderStatus(ctx, "ORD-7349", OrderCompleted)
	require.NoError(t, err)
	assert.Equal(t, 0, cache.Len())

	var dropped any
	for _, e := range telemetry.events {
		if e.name == "erp.record.update" {
			dropped = e.payload["charts_dropped"]
		}
	}
	assert.Equal(t, rendered, dropped)
}
