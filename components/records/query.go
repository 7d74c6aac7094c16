package records

import (
	"sort"
	"strings"
)

// AnyValue is the filter sentinel meaning "no constraint on this field".
const AnyValue = "all"

// Criteria combines a free-text search with exact-match field filters.
type Criteria struct {
	Search string            `json:"search,omitempty" yaml:"search,omitempty"`
	Fields map[string]string `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// With returns a copy of the criteria with an extra field filter.
func (c Criteria) With(field, value string) Criteria {
	fields := make(map[string]string, len(c.Fields)+1)
	for k, v := range c.Fields {
		fields[k] = v
	}
	fields[field] = value
	return Criteria{Search: c.Search, Fields: fields}
}

// Active returns the field filters that impose a constraint.
func (c Criteria) Active() map[string]string {
	active := map[string]string{}
	for field, value := range c.Fields {
		if isAny(value) {
			continue
		}
		active[field] = value
	}
	return active
}

// IsZero reports whether the criteria constrain nothing.
func (c Criteria) IsZero() bool {
	return c.Search == "" && len(c.Active()) == 0
}

func isAny(value string) bool {
	return value == "" || value == AnyValue
}

func normalizeSearch(search string) string {
	return strings.ToLower(search)
}

// Filter returns the records that satisfy every active constraint, in their
// original relative order. Filters on undeclared fields are ignored.
func (s Schema[T]) Filter(records []T, criteria Criteria) []T {
	search := normalizeSearch(criteria.Search)
	filters := s.activeFilters(criteria)
	out := make([]T, 0, len(records))
	for _, record := range records {
		if search != "" && !s.matchesSearch(record, search) {
			continue
		}
		if !s.matchesFields(record, filters) {
			continue
		}
		out = append(out, record)
	}
	return out
}

// Matches reports whether a single record satisfies the criteria.
func (s Schema[T]) Matches(record T, criteria Criteria) bool {
	search := normalizeSearch(criteria.Search)
	if search != "" && !s.matchesSearch(record, search) {
		return false
	}
	return s.matchesFields(record, s.activeFilters(criteria))
}

type fieldFilter struct {
	field string
	value string
}

func (s Schema[T]) activeFilters(criteria Criteria) []fieldFilter {
	active := criteria.Active()
	filters := make([]fieldFilter, 0, len(active))
	for field, value := range active {
		if !s.HasText(field) {
			continue
		}
		filters = append(filters, fieldFilter{field: field, value: value})
	}
	sort.Slice(filters, func(i, j int) bool { return filters[i].field < filters[j].field })
	return filters
}

func (s Schema[T]) matchesSearch(record T, search string) bool {
	for _, field := range s.Searchable {
		value, ok := s.TextValue(record, field)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(value), search) {
			return true
		}
	}
	return false
}

func (s Schema[T]) matchesFields(record T, filters []fieldFilter) bool {
	for _, f := range filters {
		value, _ := s.TextValue(record, f.field)
		if value != f.value {
			return false
		}
	}
	return true
}
