package erp

import "context"

// Entity names used by transports and the CLI.
const (
	EntityCustomers = "customers"
	EntityEmployees = "employees"
	EntityProducts  = "products"
	EntityOrders    = "orders"
)

// Customer statuses.
const (
	CustomerActive   = "active"
	CustomerInactive = "inactive"
	CustomerPending  = "pending"
)

// Employee statuses.
const (
	EmployeeActive     = "active"
	EmployeeOnLeave    = "on_leave"
	EmployeeTerminated = "terminated"
)

// Product stock statuses.
const (
	ProductInStock    = "in_stock"
	ProductLowStock   = "low_stock"
	ProductOutOfStock = "out_of_stock"
)

// Order statuses.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

var (
	customerStatuses = []string{CustomerActive, CustomerInactive, CustomerPending}
	employeeStatuses = []string{EmployeeActive, EmployeeOnLeave, EmployeeTerminated}
	productStatuses  = []string{ProductInStock, ProductLowStock, ProductOutOfStock}
	orderStatuses    = []string{OrderPending, OrderProcessing, OrderShipped, OrderCompleted, OrderCancelled}
)

// Customer is a customer account.
type Customer struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Email       string  `json:"email" yaml:"email"`
	Phone       string  `json:"phone,omitempty" yaml:"phone,omitempty"`
	Status      string  `json:"status" yaml:"status"`
	TotalOrders int     `json:"total_orders" yaml:"total_orders"`
	TotalSpent  float64 `json:"total_spent" yaml:"total_spent"`
	JoinDate    string  `json:"join_date,omitempty" yaml:"join_date,omitempty"`
	Avatar      string  `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// Employee is a team member.
type Employee struct {
	ID         string  `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Email      string  `json:"email" yaml:"email"`
	Role       string  `json:"role" yaml:"role"`
	Department string  `json:"department" yaml:"department"`
	Status     string  `json:"status" yaml:"status"`
	Salary     float64 `json:"salary" yaml:"salary"`
	JoinDate   string  `json:"join_date,omitempty" yaml:"join_date,omitempty"`
	Avatar     string  `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// Product is an inventory item.
type Product struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	SKU      string  `json:"sku" yaml:"sku"`
	Category string  `json:"category" yaml:"category"`
	Price    float64 `json:"price" yaml:"price"`
	Stock    int     `json:"stock" yaml:"stock"`
	Status   string  `json:"status" yaml:"status"`
	Sales    int     `json:"sales" yaml:"sales"`
	Revenue  float64 `json:"revenue" yaml:"revenue"`
}

// StockValue is the inventory value of the product (price times stock).
func (p Product) StockValue() float64 {
	return p.Price * float64(p.Stock)
}

// Order is a customer order.
type Order struct {
	ID            string  `json:"id" yaml:"id"`
	Customer      string  `json:"customer" yaml:"customer"`
	Email         string  `json:"email,omitempty" yaml:"email,omitempty"`
	Date          string  `json:"date" yaml:"date"`
	Total         float64 `json:"total" yaml:"total"`
	Status        string  `json:"status" yaml:"status"`
	Items         int     `json:"items" yaml:"items"`
	PaymentMethod string  `json:"payment_method" yaml:"payment_method"`
}

// KPI is a headline metric card.
type KPI struct {
	Code   string  `json:"code" yaml:"code"`
	Label  string  `json:"label" yaml:"label"`
	Value  float64 `json:"value" yaml:"value"`
	Change float64 `json:"change" yaml:"change"`
	Period string  `json:"period" yaml:"period"`
	Format string  `json:"format,omitempty" yaml:"format,omitempty"`
}

// Trend reports whether the KPI moved up, down or stayed flat.
func (k KPI) Trend() string {
	switch {
	case k.Change > 0:
		return "up"
	case k.Change < 0:
		return "down"
	default:
		return "flat"
	}
}

// RevenuePoint is one month of revenue and profit.
type RevenuePoint struct {
	Month   string  `json:"month" yaml:"month"`
	Revenue float64 `json:"revenue" yaml:"revenue"`
	Profit  float64 `json:"profit" yaml:"profit"`
}

// SalesPoint is one month of order volume against its target.
type SalesPoint struct {
	Month  string  `json:"month" yaml:"month"`
	Sales  float64 `json:"sales" yaml:"sales"`
	Target float64 `json:"target" yaml:"target"`
}

// CategoryShare is the sales share of a product category.
type CategoryShare struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// GrowthPoint tracks users and revenue per month.
type GrowthPoint struct {
	Month   string  `json:"month" yaml:"month"`
	Users   float64 `json:"users" yaml:"users"`
	Revenue float64 `json:"revenue" yaml:"revenue"`
}

// RegionSales is the sales total of a region.
type RegionSales struct {
	Code   string  `json:"code" yaml:"code"`
	Region string  `json:"region" yaml:"region"`
	Sales  float64 `json:"sales" yaml:"sales"`
}

// MonthlyComparison compares a metric with the previous period.
type MonthlyComparison struct {
	Label    string  `json:"label" yaml:"label"`
	Current  float64 `json:"current" yaml:"current"`
	Previous float64 `json:"previous" yaml:"previous"`
}

// Change returns the percentage change against the previous period.
func (m MonthlyComparison) Change() float64 {
	if m.Previous == 0 {
		return 0
	}
	return (m.Current - m.Previous) / m.Previous * 100
}

// ViewerContext identifies who is looking at the dashboard.
type ViewerContext struct {
	UserID string `json:"user_id,omitempty"`
	Locale string `json:"locale,omitempty"`
}

// NotificationHook receives user-facing notifications for completed actions.
type NotificationHook interface {
	Notify(ctx context.Context, n Notification) error
}
