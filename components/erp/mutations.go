package erp

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// LowStockThreshold is the stock level below which a product is low on stock.
const LowStockThreshold = 20

// StockStatus derives a product status from its stock level.
func StockStatus(stock int) string {
	switch {
	case stock <= 0:
		return ProductOutOfStock
	case stock < LowStockThreshold:
		return ProductLowStock
	default:
		return ProductInStock
	}
}

func newID(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.New().String()[:8])
}

// AddCustomer inserts a customer. Missing ids, statuses and join dates are filled in.
func (s *Service) AddCustomer(ctx context.Context, c Customer) (Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	if c.Name == "" || c.Email == "" {
		return Customer{}, fmt.Errorf("%w: customer name and email are required", ErrInvalidRecord)
	}
	if c.ID == "" {
		c.ID = newID("CUS")
	}
	if c.Status == "" {
		c.Status = CustomerActive
	}
	if !isKnownStatus(EntityCustomers, c.Status) {
		return Customer{}, fmt.Errorf("%w: %q", ErrInvalidStatus, c.Status)
	}
	if c.JoinDate == "" {
		c.JoinDate = s.today()
	}
	if err := s.customers.insert(c); err != nil {
		return Customer{}, err
	}
	s.recordMutation(ctx, "erp.record.create", EntityCustomers, c.ID)
	s.notify(ctx, newNotification(LevelSuccess, "Customer added", c.Name+" has been added to your customers.", EntityCustomers, c.ID))
	return c, nil
}

// DeleteCustomer removes a customer.
func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	c, err := s.customers.get(id)
	if err != nil {
		return err
	}
	if err := s.customers.remove(id); err != nil {
		return err
	}
	s.recordMutation(ctx, "erp.record.delete", EntityCustomers, id)
	s.notify(ctx, newNotification(LevelSuccess, "Customer deleted", c.Name+" has been removed.", EntityCustomers, id))
	return nil
}

// AddEmployee inserts an employee.
func (s *Service) AddEmployee(ctx context.Context, e Employee) (Employee, error) {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" || strings.TrimSpace(e.Department) == "" {
		return Employee{}, fmt.Errorf("%w: employee name and department are required", ErrInvalidRecord)
	}
	if e.ID == "" {
		e.ID = newID("EMP")
	}
	if e.Status == "" {
		e.Status = EmployeeActive
	}
	if !isKnownStatus(EntityEmployees, e.Status) {
		return Employee{}, fmt.Errorf("%w: %q", ErrInvalidStatus, e.Status)
	}
	if e.JoinDate == "" {
		e.JoinDate = s.today()
	}
	if err := s.employees.insert(e); err != nil {
		return Employee{}, err
	}
	s.recordMutation(ctx, "erp.record.create", EntityEmployees, e.ID)
	s.notify(ctx, newNotification(LevelSuccess, "Employee added", e.Name+" has joined "+e.Department+".", EntityEmployees, e.ID))
	return e, nil
}

// SaveProduct replaces an existing product or inserts a new one. An empty
// status is derived from the stock level.
func (s *Service) SaveProduct(ctx context.Context, p Product) (Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return Product{}, fmt.Errorf("%w: product name is required", ErrInvalidRecord)
	}
	if p.Price < 0 || p.Stock < 0 {
		return Product{}, fmt.Errorf("%w: price and stock must not be negative", ErrInvalidRecord)
	}
	if p.Status == "" {
		p.Status = StockStatus(p.Stock)
	}
	if !isKnownStatus(EntityProducts, p.Status) {
		return Product{}, fmt.Errorf("%w: %q", ErrInvalidStatus, p.Status)
	}

	if p.ID != "" {
		if _, err := s.products.get(p.ID); err == nil {
			if err := s.products.replace(p); err != nil {
				return Product{}, err
			}
			s.recordMutation(ctx, "erp.record.update", EntityProducts, p.ID)
			s.notify(ctx, newNotification(LevelSuccess, "Product updated", p.Name+" has been updated.", EntityProducts, p.ID))
			return p, nil
		}
	} else {
		p.ID = newID("PRD")
	}
	if err := s.products.insert(p); err != nil {
		return Product{}, err
	}
	s.recordMutation(ctx, "erp.record.create", EntityProducts, p.ID)
	s.notify(ctx, newNotification(LevelSuccess, "Product added", p.Name+" has been added to inventory.", EntityProducts, p.ID))
	return p, nil
}

// DeleteProduct removes a product from inventory.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	p, err := s.products.get(id)
	if err != nil {
		return err
	}
	if err := s.products.remove(id); err != nil {
		return err
	}
	s.recordMutation(ctx, "erp.record.delete", EntityProducts, id)
	s.notify(ctx, newNotification(LevelSuccess, "Product deleted", p.Name+" has been removed from inventory.", EntityProducts, id))
	return nil
}

// UpdateOrderStatus moves an order to one of the five order statuses.
func (s *Service) UpdateOrderStatus(ctx context.Context, id, status string) (Order, error) {
	if !isKnownStatus(EntityOrders, status) {
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	o, err := s.orders.get(id)
	if err != nil {
		return Order{}, err
	}
	o.Status = status
	if err := s.orders.replace(o); err != nil {
		return Order{}, err
	}
	s.recordMutation(ctx, "erp.record.update", EntityOrders, id)
	s.notify(ctx, newNotification(LevelSuccess, "Order updated", fmt.Sprintf("Order %s is now %s.", id, StatusLabel(status)), EntityOrders, id))
	return o, nil
}

// recordMutation runs after a store publishes a new snapshot. Rendered charts
// from the previous snapshot are dropped.
func (s *Service) recordMutation(ctx context.Context, event, entity, id string) {
	dropped := s.opts.ChartCache.Purge()
	s.recordTelemetry(ctx, event, map[string]any{
		"entity":         entity,
		"id":             id,
		"charts_dropped": dropped,
	})
}

func (s *Service) today() string {
	return s.opts.Now().Format("2006-01-02")
}
