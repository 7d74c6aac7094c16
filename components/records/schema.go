package records

// Schema declares how the pipeline reads a record type: its identity, the
// string fields usable for filters and grouping, numeric fields usable for
// sums, and the free-text search fields.
type Schema[T any] struct {
	Entity     string
	ID         func(T) string
	Text       map[string]func(T) string
	Numeric    map[string]func(T) float64
	Searchable []string
}

// TextValue reads a string field. The second result is false for fields the
// schema does not declare.
func (s Schema[T]) TextValue(record T, field string) (string, bool) {
	get, ok := s.Text[field]
	if !ok || get == nil {
		return "", false
	}
	return get(record), true
}

// NumericValue reads a numeric field.
func (s Schema[T]) NumericValue(record T, field string) (float64, bool) {
	get, ok := s.Numeric[field]
	if !ok || get == nil {
		return 0, false
	}
	return get(record), true
}

// HasText reports whether field is a declared string field.
func (s Schema[T]) HasText(field string) bool {
	get, ok := s.Text[field]
	return ok && get != nil
}

// HasNumeric reports whether field is a declared numeric field.
func (s Schema[T]) HasNumeric(field string) bool {
	get, ok := s.Numeric[field]
	return ok && get != nil
}

// Fields returns every declared field value of a record keyed by field name,
// numeric fields included. Transports use it to build generic payloads.
func (s Schema[T]) Fields(record T) map[string]any {
	out := make(map[string]any, len(s.Text)+len(s.Numeric))
	for name, get := range s.Text {
		if get != nil {
			out[name] = get(record)
		}
	}
	for name, get := range s.Numeric {
		if get != nil {
			out[name] = get(record)
		}
	}
	return out
}
