package goadmin

import (
	"context"
	"errors"
	"fmt"

	erppkg "github.com/goliatone/go-erp-dashboard/pkg/erp"
)

// MenuBuilder ensures ERP entries exist within the admin navigation.
type MenuBuilder interface {
	EnsureMenuItem(ctx context.Context, menuCode string, item MenuItem) error
}

// MenuItem captures navigation link metadata.
type MenuItem struct {
	Label    string
	Route    string
	Icon     string
	Position int
}

// Config wires the ERP service into an admin shell.
type Config struct {
	MenuCode    string
	MenuBuilder MenuBuilder
	Service     *erppkg.Service
	Items       []MenuItem
}

// Admin exposes helpers for go-admin style applications.
type Admin struct {
	cfg Config
}

// DefaultMenuItems lists the sidebar entries of the ERP.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Label: "Dashboard", Route: "erp.dashboard", Icon: "layout-dashboard", Position: 10},
		{Label: "Customers", Route: "erp.customers", Icon: "users", Position: 20},
		{Label: "Employees", Route: "erp.employees", Icon: "user-cog", Position: 30},
		{Label: "Inventory", Route: "erp.products", Icon: "package", Position: 40},
		{Label: "Orders", Route: "erp.orders", Icon: "shopping-cart", Position: 50},
		{Label: "Reports", Route: "erp.reports", Icon: "bar-chart", Position: 60},
		{Label: "Settings", Route: "erp.settings", Icon: "settings", Position: 70},
	}
}

// New creates an Admin helper that can seed ERP menus.
func New(cfg Config) (*Admin, error) {
	if cfg.Service == nil {
		return nil, errors.New("goadmin: erp service is required")
	}
	if cfg.MenuCode == "" {
		cfg.MenuCode = "admin.main"
	}
	if len(cfg.Items) == 0 {
		cfg.Items = DefaultMenuItems()
	}
	return &Admin{cfg: cfg}, nil
}

// Service returns the configured ERP service.
func (a *Admin) Service() *erppkg.Service {
	return a.cfg.Service
}

// Bootstrap seeds one menu entry per ERP page.
func (a *Admin) Bootstrap(ctx context.Context) error {
	if a.cfg.MenuBuilder == nil {
		return nil
	}
	for _, item := range a.cfg.Items {
		if err := a.cfg.MenuBuilder.EnsureMenuItem(ctx, a.cfg.MenuCode, item); err != nil {
			return fmt.Errorf("goadmin: ensure menu item %s: %w", item.Route, err)
		}
	}
	return nil
}
