package erp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goliatone/go-erp-dashboard/components/records"
)

var (
	// ErrUnknownEntity is returned for entity names the service does not serve.
	ErrUnknownEntity = errors.New("erp: unknown entity")
	// ErrRecordNotFound is returned when an id does not resolve to a record.
	ErrRecordNotFound = errors.New("erp: record not found")
	// ErrDuplicateRecord is returned when inserting an id that already exists.
	ErrDuplicateRecord = errors.New("erp: duplicate record")
	// ErrInvalidRecord is returned when a record is missing required fields.
	ErrInvalidRecord = errors.New("erp: invalid record")
	// ErrInvalidStatus is returned for status codes outside the entity's set.
	ErrInvalidStatus = errors.New("erp: invalid status")
)

// Options configures the ERP Service. Every collaborator has a safe default.
type Options struct {
	Dataset           *Dataset
	Telemetry         Telemetry
	NotificationHook  NotificationHook
	Validator         PayloadValidator
	DisableValidation bool
	Settings          SettingsStore
	Providers         ProviderRegistry
	// Charts configures the chart renderer of the default registry. It is
	// ignored when Providers is set.
	Charts     []EChartsProviderOption
	ChartCache *ChartCache
	Layout     []Widget
	PageSizes  map[string]int
	Now        func() time.Time
}

// Service serves list, detail, mutation and report operations over an
// in-memory dataset.
type Service struct {
	opts      Options
	customers *collection[Customer]
	employees *collection[Employee]
	products  *collection[Product]
	orders    *collection[Order]
	entities  map[string]listable
	reports   Dataset
}

// NewService builds a Service instance with safe defaults.
func NewService(opts Options) *Service {
	ds := DefaultDataset()
	if opts.Dataset != nil {
		ds = *opts.Dataset
	}
	opts.Telemetry = normalizeTelemetry(opts.Telemetry)
	opts.NotificationHook = normalizeNotificationHook(opts.NotificationHook)
	if opts.Validator == nil {
		if opts.DisableValidation {
			opts.Validator = noopValidator{}
		} else {
			opts.Validator = NewJSONSchemaValidator()
		}
	}
	if opts.Settings == nil {
		opts.Settings = NewInMemorySettingsStore()
	}
	if opts.ChartCache == nil {
		opts.ChartCache = NewChartCache(defaultChartTTL)
	}
	if opts.Providers == nil {
		charts := append([]EChartsProviderOption{WithChartCache(opts.ChartCache)}, opts.Charts...)
		opts.Providers = DefaultRegistry(charts...)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Service{
		opts:      opts,
		customers: newCollection(CustomerSchema, ds.Customers, customerStats),
		employees: newCollection(EmployeeSchema, ds.Employees, employeeStats),
		products:  newCollection(ProductSchema, ds.Products, productStats),
		orders:    newCollection(OrderSchema, ds.Orders, orderStats),
		reports:   ds,
	}
	s.entities = map[string]listable{
		EntityCustomers: s.customers,
		EntityEmployees: s.employees,
		EntityProducts:  s.products,
		EntityOrders:    s.orders,
	}
	return s
}

// PageSize returns the page size used when a request does not set one.
func (s *Service) PageSize(entity string) int {
	if size, ok := s.opts.PageSizes[entity]; ok && size > 0 {
		return size
	}
	if c, ok := s.entities[entity]; ok {
		return c.pageSize()
	}
	return 0
}

// Customers lists customers.
func (s *Service) Customers(ctx context.Context, req ListRequest) (ListResult[Customer], error) {
	if err := s.validateList(ctx, EntityCustomers, req); err != nil {
		return ListResult[Customer]{}, err
	}
	return s.customers.list(req, s.PageSize(EntityCustomers)), nil
}

// Employees lists employees.
func (s *Service) Employees(ctx context.Context, req ListRequest) (ListResult[Employee], error) {
	if err := s.validateList(ctx, EntityEmployees, req); err != nil {
		return ListResult[Employee]{}, err
	}
	return s.employees.list(req, s.PageSize(EntityEmployees)), nil
}

// Products lists inventory items.
func (s *Service) Products(ctx context.Context, req ListRequest) (ListResult[Product], error) {
	if err := s.validateList(ctx, EntityProducts, req); err != nil {
		return ListResult[Product]{}, err
	}
	return s.products.list(req, s.PageSize(EntityProducts)), nil
}

// Orders lists orders.
func (s *Service) Orders(ctx context.Context, req ListRequest) (ListResult[Order], error) {
	if err := s.validateList(ctx, EntityOrders, req); err != nil {
		return ListResult[Order]{}, err
	}
	return s.orders.list(req, s.PageSize(EntityOrders)), nil
}

// List resolves a list page for the named entity.
func (s *Service) List(ctx context.Context, entity string, req ListRequest) (ListResponse, error) {
	c, err := s.entity(entity)
	if err != nil {
		return ListResponse{}, err
	}
	if err := s.validateList(ctx, entity, req); err != nil {
		return ListResponse{}, err
	}
	resp := c.response(req, s.PageSize(entity))
	s.recordTelemetry(ctx, "erp.list", map[string]any{
		"entity": entity,
		"page":   resp.Page,
		"total":  resp.Total,
		"search": req.Search,
	})
	return resp, nil
}

// Record returns a single record of the named entity.
func (s *Service) Record(ctx context.Context, entity, id string) (any, error) {
	c, err := s.entity(entity)
	if err != nil {
		return nil, err
	}
	return c.lookup(id)
}

// RecordFields returns a single record as a field map.
func (s *Service) RecordFields(ctx context.Context, entity, id string) (map[string]any, error) {
	c, err := s.entity(entity)
	if err != nil {
		return nil, err
	}
	return c.fields(id)
}

// Stats returns the headline numbers of an entity over its full collection.
func (s *Service) Stats(ctx context.Context, entity string) ([]Stat, error) {
	c, err := s.entity(entity)
	if err != nil {
		return nil, err
	}
	return c.response(ListRequest{}, s.PageSize(entity)).Stats, nil
}

func (s *Service) entity(name string) (listable, error) {
	c, ok := s.entities[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, name)
	}
	return c, nil
}

func (s *Service) validateList(ctx context.Context, entity string, req ListRequest) error {
	if err := s.opts.Validator.Validate("erp.list_request", listRequestSchema, req); err != nil {
		s.recordTelemetry(ctx, "erp.list.invalid", map[string]any{
			"entity": entity,
			"error":  err.Error(),
		})
		return err
	}
	return nil
}

func (s *Service) recordTelemetry(ctx context.Context, event string, payload map[string]any) {
	s.opts.Telemetry.Record(ctx, event, payload)
}

// notify stamps and delivers n. Delivery failures are recorded, not returned.
func (s *Service) notify(ctx context.Context, n Notification) {
	n.At = s.opts.Now().UTC()
	if err := s.opts.NotificationHook.Notify(ctx, n); err != nil {
		s.recordTelemetry(ctx, "erp.notification.error", map[string]any{
			"title": n.Title,
			"error": err.Error(),
		})
	}
}

func customerStats(all []Customer, overall records.Summary) []Stat {
	return []Stat{
		{Code: "total", Label: "Total Customers", Value: float64(overall.Count)},
		{Code: CustomerActive, Label: "Active", Value: float64(overall.CountOf(CustomerActive))},
		{Code: CustomerPending, Label: "Pending", Value: float64(overall.CountOf(CustomerPending))},
		{Code: "total_spent", Label: "Total Spent", Value: overall.Sum, Format: "currency"},
	}
}

func employeeStats(all []Employee, overall records.Summary) []Stat {
	return []Stat{
		{Code: "total", Label: "Total Employees", Value: float64(overall.Count)},
		{Code: EmployeeActive, Label: "Active", Value: float64(overall.CountOf(EmployeeActive))},
		{Code: EmployeeOnLeave, Label: "On Leave", Value: float64(overall.CountOf(EmployeeOnLeave))},
		{Code: "departments", Label: "Departments", Value: float64(len(EmployeeSchema.Distinct(all, "department")))},
	}
}

func productStats(all []Product, overall records.Summary) []Stat {
	return []Stat{
		{Code: "total", Label: "Total Products", Value: float64(overall.Count)},
		{Code: ProductInStock, Label: "In Stock", Value: float64(overall.CountOf(ProductInStock))},
		{Code: ProductLowStock, Label: "Low Stock", Value: float64(overall.CountOf(ProductLowStock))},
		{Code: ProductOutOfStock, Label: "Out of Stock", Value: float64(overall.CountOf(ProductOutOfStock))},
		{Code: "total_value", Label: "Total Value", Value: overall.Sum, Format: "currency"},
	}
}

func orderStats(all []Order, overall records.Summary) []Stat {
	stats := []Stat{{Code: "all", Label: "All Orders", Value: float64(overall.Count)}}
	for _, status := range orderStatuses {
		stats = append(stats, Stat{Code: status, Label: StatusLabel(status), Value: float64(overall.CountOf(status))})
	}
	return stats
}
