package erp

import "github.com/goliatone/go-erp-dashboard/components/records"

// CustomerSchema searches name and email and filters on status.
var CustomerSchema = records.Schema[Customer]{
	Entity: EntityCustomers,
	ID:     func(c Customer) string { return c.ID },
	Text: map[string]func(Customer) string{
		"id":        func(c Customer) string { return c.ID },
		"name":      func(c Customer) string { return c.Name },
		"email":     func(c Customer) string { return c.Email },
		"phone":     func(c Customer) string { return c.Phone },
		"status":    func(c Customer) string { return c.Status },
		"join_date": func(c Customer) string { return c.JoinDate },
	},
	Numeric: map[string]func(Customer) float64{
		"total_orders": func(c Customer) float64 { return float64(c.TotalOrders) },
		"total_spent":  func(c Customer) float64 { return c.TotalSpent },
	},
	Searchable: []string{"name", "email"},
}

// EmployeeSchema searches name and role and filters on department.
var EmployeeSchema = records.Schema[Employee]{
	Entity: EntityEmployees,
	ID:     func(e Employee) string { return e.ID },
	Text: map[string]func(Employee) string{
		"id":         func(e Employee) string { return e.ID },
		"name":       func(e Employee) string { return e.Name },
		"email":      func(e Employee) string { return e.Email },
		"role":       func(e Employee) string { return e.Role },
		"department": func(e Employee) string { return e.Department },
		"status":     func(e Employee) string { return e.Status },
		"join_date":  func(e Employee) string { return e.JoinDate },
	},
	Numeric: map[string]func(Employee) float64{
		"salary": func(e Employee) float64 { return e.Salary },
	},
	Searchable: []string{"name", "role"},
}

// ProductSchema searches name and filters on category.
var ProductSchema = records.Schema[Product]{
	Entity: EntityProducts,
	ID:     func(p Product) string { return p.ID },
	Text: map[string]func(Product) string{
		"id":       func(p Product) string { return p.ID },
		"name":     func(p Product) string { return p.Name },
		"sku":      func(p Product) string { return p.SKU },
		"category": func(p Product) string { return p.Category },
		"status":   func(p Product) string { return p.Status },
	},
	Numeric: map[string]func(Product) float64{
		"price":   func(p Product) float64 { return p.Price },
		"stock":   func(p Product) float64 { return float64(p.Stock) },
		"sales":   func(p Product) float64 { return float64(p.Sales) },
		"revenue": func(p Product) float64 { return p.Revenue },
		"value":   Product.StockValue,
	},
	Searchable: []string{"name"},
}

// OrderSchema searches the order id and customer name and filters on status.
var OrderSchema = records.Schema[Order]{
	Entity: EntityOrders,
	ID:     func(o Order) string { return o.ID },
	Text: map[string]func(Order) string{
		"id":             func(o Order) string { return o.ID },
		"customer":       func(o Order) string { return o.Customer },
		"email":          func(o Order) string { return o.Email },
		"date":           func(o Order) string { return o.Date },
		"status":         func(o Order) string { return o.Status },
		"payment_method": func(o Order) string { return o.PaymentMethod },
	},
	Numeric: map[string]func(Order) float64{
		"total": func(o Order) float64 { return o.Total },
		"items": func(o Order) float64 { return float64(o.Items) },
	},
	Searchable: []string{"id", "customer"},
}

// entitySpec describes how list pages of an entity are configured.
type entitySpec struct {
	filterField string
	groupBy     string
	sumField    string
	seed        []string
	pageSize    int
	columns     []string
}

var entitySpecs = map[string]entitySpec{
	EntityCustomers: {
		filterField: "status",
		groupBy:     "status",
		sumField:    "total_spent",
		seed:        customerStatuses,
		pageSize:    5,
		columns:     []string{"id", "name", "email", "phone", "status", "total_orders", "total_spent", "join_date"},
	},
	EntityEmployees: {
		filterField: "department",
		groupBy:     "status",
		sumField:    "salary",
		seed:        employeeStatuses,
		pageSize:    10,
		columns:     []string{"id", "name", "email", "role", "department", "status", "join_date"},
	},
	EntityProducts: {
		filterField: "category",
		groupBy:     "status",
		sumField:    "value",
		seed:        productStatuses,
		pageSize:    6,
		columns:     []string{"id", "name", "sku", "category", "price", "stock", "status", "sales"},
	},
	EntityOrders: {
		filterField: "status",
		groupBy:     "status",
		sumField:    "total",
		seed:        orderStatuses,
		pageSize:    5,
		columns:     []string{"id", "customer", "date", "total", "status", "items", "payment_method"},
	},
}

// Entities lists the entity names in display order.
func Entities() []string {
	return []string{EntityCustomers, EntityEmployees, EntityProducts, EntityOrders}
}

// FilterField returns the field used by the entity's filter dropdown.
func FilterField(entity string) (string, bool) {
	spec, ok := entitySpecs[entity]
	return spec.filterField, ok
}

// StatusValues returns the known status codes of an entity.
func StatusValues(entity string) []string {
	spec, ok := entitySpecs[entity]
	if !ok {
		return nil
	}
	return append([]string(nil), spec.seed...)
}

func isKnownStatus(entity, status string) bool {
	for _, s := range entitySpecs[entity].seed {
		if s == status {
			return true
		}
	}
	return false
}
