package erp

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-erp-dashboard/components/records"
)

// ListRequest is the caller-owned view state of a list page.
type ListRequest struct {
	Search   string            `json:"search,omitempty"`
	Filters  map[string]string `json:"filters,omitempty"`
	Page     int               `json:"page,omitempty"`
	PageSize int               `json:"page_size,omitempty"`
}

// ViewState converts the request into pipeline input, falling back to the
// entity's page size.
func (r ListRequest) ViewState(defaultSize int) records.ViewState {
	size := r.PageSize
	if size <= 0 {
		size = defaultSize
	}
	return records.ViewState{
		Criteria: records.Criteria{Search: r.Search, Fields: r.Filters},
		Window:   records.PageWindow{Index: r.Page, Size: size},
	}
}

// Stat is a headline number shown above a list.
type Stat struct {
	Code   string  `json:"code"`
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Format string  `json:"format,omitempty"`
}

// ListResult is a typed list page with its counters.
type ListResult[T any] struct {
	Page     records.Page[T] `json:"page"`
	Overall  records.Summary `json:"overall"`
	Filtered records.Summary `json:"filtered"`
	Stats    []Stat          `json:"stats"`
}

// Row is a display-ready record.
type Row struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
	Tone   Tone           `json:"tone"`
}

// ListResponse is the entity-agnostic list page served by transports.
type ListResponse struct {
	Entity        string            `json:"entity"`
	Items         any               `json:"items"`
	Rows          []Row             `json:"-"`
	Columns       []string          `json:"columns"`
	Page          int               `json:"page"`
	PageSize      int               `json:"page_size"`
	TotalPages    int               `json:"total_pages"`
	Total         int               `json:"total"`
	From          int               `json:"from"`
	To            int               `json:"to"`
	HasPrevious   bool              `json:"has_previous"`
	HasNext       bool              `json:"has_next"`
	Search        string            `json:"search,omitempty"`
	Filters       map[string]string `json:"filters,omitempty"`
	FilterField   string            `json:"filter_field"`
	FilterOptions []string          `json:"filter_options"`
	Counts        map[string]int    `json:"counts"`
	Stats         []Stat            `json:"stats"`
}

// collection binds a snapshot store to the schema and list settings of one entity.
type collection[T any] struct {
	schema records.Schema[T]
	store  *records.SnapshotStore[T]
	spec   entitySpec
	stats  func(all []T, overall records.Summary) []Stat
}

func newCollection[T any](schema records.Schema[T], items []T, stats func([]T, records.Summary) []Stat) *collection[T] {
	return &collection[T]{
		schema: schema,
		store:  records.NewSnapshotStore(schema.ID, items),
		spec:   entitySpecs[schema.Entity],
		stats:  stats,
	}
}

func (c *collection[T]) summaryOptions() records.SummaryOptions {
	return records.SummaryOptions{GroupBy: c.spec.groupBy, SumField: c.spec.sumField, Seed: c.spec.seed}
}

func (c *collection[T]) list(req ListRequest, defaultSize int) ListResult[T] {
	run := records.Run[T](c.store, c.schema, req.ViewState(defaultSize), c.summaryOptions())
	result := ListResult[T]{
		Page:     run.Page,
		Overall:  run.Overall,
		Filtered: run.Filtered,
	}
	if c.stats != nil {
		result.Stats = c.stats(run.Snapshot, run.Overall)
	}
	return result
}

func (c *collection[T]) response(req ListRequest, defaultSize int) ListResponse {
	result := c.list(req, defaultSize)
	page := result.Page
	from, to := page.Range()
	rows := make([]Row, 0, len(page.Items))
	for _, item := range page.Items {
		status, _ := c.schema.TextValue(item, "status")
		rows = append(rows, Row{
			ID:     c.schema.ID(item),
			Fields: c.schema.Fields(item),
			Tone:   ToneFor(c.schema.Entity, status),
		})
	}
	return ListResponse{
		Entity:        c.schema.Entity,
		Items:         page.Items,
		Rows:          rows,
		Columns:       append([]string(nil), c.spec.columns...),
		Page:          page.Index,
		PageSize:      page.Size,
		TotalPages:    page.TotalPages,
		Total:         page.Total,
		From:          from,
		To:            to,
		HasPrevious:   page.HasPrevious(),
		HasNext:       page.HasNext(),
		Search:        req.Search,
		Filters:       req.Filters,
		FilterField:   c.spec.filterField,
		FilterOptions: c.filterOptions(),
		Counts:        result.Overall.Counts,
		Stats:         result.Stats,
	}
}

func (c *collection[T]) filterOptions() []string {
	if c.spec.filterField == c.spec.groupBy {
		return append([]string(nil), c.spec.seed...)
	}
	return c.schema.Distinct(c.store.All(), c.spec.filterField)
}

func (c *collection[T]) get(id string) (T, error) {
	item, ok := c.store.Get(id)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s %q", ErrRecordNotFound, c.schema.Entity, id)
	}
	return item, nil
}

func (c *collection[T]) insert(item T) error {
	if err := c.store.Insert(item); err != nil {
		return c.wrap(err, c.schema.ID(item))
	}
	return nil
}

func (c *collection[T]) replace(item T) error {
	id := c.schema.ID(item)
	if err := c.store.Replace(id, item); err != nil {
		return c.wrap(err, id)
	}
	return nil
}

func (c *collection[T]) remove(id string) error {
	if err := c.store.Remove(id); err != nil {
		return c.wrap(err, id)
	}
	return nil
}

func (c *collection[T]) wrap(err error, id string) error {
	switch {
	case errors.Is(err, records.ErrRecordNotFound):
		return fmt.Errorf("%w: %s %q", ErrRecordNotFound, c.schema.Entity, id)
	case errors.Is(err, records.ErrDuplicateRecord):
		return fmt.Errorf("%w: %s %q", ErrDuplicateRecord, c.schema.Entity, id)
	default:
		return fmt.Errorf("erp: %s: %w", c.schema.Entity, err)
	}
}

// listable erases the record type so transports can address entities by name.
type listable interface {
	response(req ListRequest, defaultSize int) ListResponse
	lookup(id string) (any, error)
	fields(id string) (map[string]any, error)
	pageSize() int
}

func (c *collection[T]) lookup(id string) (any, error) {
	return c.get(id)
}

func (c *collection[T]) fields(id string) (map[string]any, error) {
	item, err := c.get(id)
	if err != nil {
		return nil, err
	}
	return c.schema.Fields(item), nil
}

func (c *collection[T]) pageSize() int {
	return c.spec.pageSize
}
