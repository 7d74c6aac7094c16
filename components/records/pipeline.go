// Package records implements the list pipeline shared by every collection in
// the dashboard: filter by search text and exact field values, slice into a
// page, and derive summary counters.
package records

// ViewState is the caller-owned state of a list view. It is passed by value
// on every query.
type ViewState struct {
	Criteria Criteria   `json:"criteria"`
	Window   PageWindow `json:"window"`
}

// SummaryOptions selects how counters are derived for a list result.
type SummaryOptions struct {
	GroupBy  string
	SumField string
	Seed     []string
}

// Result is the output of one pipeline run.
type Result[T any] struct {
	Page     Page[T] `json:"page"`
	Overall  Summary `json:"overall"`
	Filtered Summary `json:"filtered"`
	// Snapshot is the full collection the run was computed from.
	Snapshot []T `json:"-"`
}

// Run reads the store once and applies filter, paginate and summarize to
// that single snapshot.
func Run[T any](store Store[T], schema Schema[T], view ViewState, opts SummaryOptions) Result[T] {
	all := store.All()
	filtered := schema.Filter(all, view.Criteria)
	return Result[T]{
		Page:     Paginate(filtered, view.Window),
		Overall:  schema.Summarize(all, opts.GroupBy, opts.SumField).Seed(opts.Seed...),
		Filtered: schema.Summarize(filtered, opts.GroupBy, opts.SumField).Seed(opts.Seed...),
		Snapshot: all,
	}
}
