package erp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDataset is returned when a fixture file cannot be used.
var ErrInvalidDataset = errors.New("erp: invalid dataset")

// Dataset holds every collection and report series the dashboard serves.
type Dataset struct {
	Customers   []Customer          `yaml:"customers" json:"customers"`
	Employees   []Employee          `yaml:"employees" json:"employees"`
	Products    []Product           `yaml:"products" json:"products"`
	Orders      []Order             `yaml:"orders" json:"orders"`
	KPIs        []KPI               `yaml:"kpis" json:"kpis"`
	Revenue     []RevenuePoint      `yaml:"revenue" json:"revenue"`
	Sales       []SalesPoint        `yaml:"sales" json:"sales"`
	Categories  []CategoryShare     `yaml:"categories" json:"categories"`
	Growth      []GrowthPoint       `yaml:"growth" json:"growth"`
	Regions     []RegionSales       `yaml:"regions" json:"regions"`
	Comparisons []MonthlyComparison `yaml:"comparisons" json:"comparisons"`
}

// DefaultDataset returns a fresh copy of the built-in fixtures.
func DefaultDataset() Dataset {
	return Dataset{
		Customers:   append([]Customer(nil), defaultCustomers...),
		Employees:   append([]Employee(nil), defaultEmployees...),
		Products:    append([]Product(nil), defaultProducts...),
		Orders:      append([]Order(nil), defaultOrders...),
		KPIs:        append([]KPI(nil), defaultKPIs...),
		Revenue:     append([]RevenuePoint(nil), defaultRevenue...),
		Sales:       append([]SalesPoint(nil), defaultSales...),
		Categories:  append([]CategoryShare(nil), defaultCategories...),
		Growth:      append([]GrowthPoint(nil), defaultGrowth...),
		Regions:     append([]RegionSales(nil), defaultRegions...),
		Comparisons: append([]MonthlyComparison(nil), defaultComparisons...),
	}
}

// LoadDataset reads a fixture file from disk. Files ending in .json or
// .jsonc are parsed as JSON with comments, anything else as YAML.
func LoadDataset(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("erp: open dataset %s: %w", path, err)
	}
	defer f.Close()
	decode := DecodeDataset
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		decode = DecodeDatasetJSON
	}
	ds, err := decode(f)
	if err != nil {
		return Dataset{}, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// DecodeDataset parses a YAML dataset and validates record identity.
func DecodeDataset(r io.Reader) (Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil && !errors.Is(err, io.EOF) {
		return Dataset{}, fmt.Errorf("erp: decode dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// DecodeDatasetJSON parses a JSONC dataset. Unknown fields are rejected.
func DecodeDatasetJSON(r io.Reader) (Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Dataset{}, fmt.Errorf("erp: read dataset: %w", err)
	}
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Dataset{}, fmt.Errorf("%w: invalid JSONC: %w", ErrInvalidDataset, err)
	}
	var ds Dataset
	dec := json.NewDecoder(bytes.NewReader(standardized))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ds); err != nil && !errors.Is(err, io.EOF) {
		return Dataset{}, fmt.Errorf("erp: decode dataset: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return Dataset{}, err
	}
	return ds, nil
}

// Validate checks that every record carries a unique id and a known status.
func (d Dataset) Validate() error {
	if err := checkCollection(EntityCustomers, d.Customers, CustomerSchema.ID, func(c Customer) string { return c.Status }); err != nil {
		return err
	}
	if err := checkCollection(EntityEmployees, d.Employees, EmployeeSchema.ID, func(e Employee) string { return e.Status }); err != nil {
		return err
	}
	if err := checkCollection(EntityProducts, d.Products, ProductSchema.ID, func(p Product) string { return p.Status }); err != nil {
		return err
	}
	return checkCollection(EntityOrders, d.Orders, OrderSchema.ID, func(o Order) string { return o.Status })
}

func checkCollection[T any](entity string, items []T, id, status func(T) string) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		key := id(item)
		if key == "" {
			return fmt.Errorf("%w: %s[%d] has no id", ErrInvalidDataset, entity, i)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s id %q is duplicated", ErrInvalidDataset, entity, key)
		}
		seen[key] = struct{}{}
		if !isKnownStatus(entity, status(item)) {
			return fmt.Errorf("%w: %s %s has unknown status %q", ErrInvalidDataset, entity, key, status(item))
		}
	}
	return nil
}
