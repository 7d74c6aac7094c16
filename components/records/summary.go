package records

// Summary holds counters grouped by a field plus an optional numeric sum.
type Summary struct {
	GroupBy  string         `json:"group_by,omitempty"`
	Counts   map[string]int `json:"counts"`
	Count    int            `json:"count"`
	SumField string         `json:"sum_field,omitempty"`
	Sum      float64        `json:"sum"`
}

// Summarize counts records per distinct groupBy value and, when sumField is
// set, sums that numeric field. Values absent from the input get no counter.
func (s Schema[T]) Summarize(records []T, groupBy, sumField string) Summary {
	summary := Summary{
		GroupBy:  groupBy,
		Counts:   map[string]int{},
		Count:    len(records),
		SumField: sumField,
	}
	groupGet := s.Text[groupBy]
	sumGet := s.Numeric[sumField]
	for _, record := range records {
		if groupGet != nil {
			summary.Counts[groupGet(record)]++
		}
		if sumGet != nil {
			summary.Sum += sumGet(record)
		}
	}
	return summary
}

// Sum adds a numeric field across records. Undeclared fields sum to 0.
func (s Schema[T]) Sum(records []T, field string) float64 {
	get := s.Numeric[field]
	if get == nil {
		return 0
	}
	total := 0.0
	for _, record := range records {
		total += get(record)
	}
	return total
}

// Distinct lists the values of field in first-seen order.
func (s Schema[T]) Distinct(records []T, field string) []string {
	get := s.Text[field]
	if get == nil {
		return []string{}
	}
	seen := map[string]struct{}{}
	out := []string{}
	for _, record := range records {
		value := get(record)
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}

// Seed returns a copy of the summary where every label has a counter,
// defaulting to zero.
func (s Summary) Seed(labels ...string) Summary {
	counts := make(map[string]int, len(s.Counts)+len(labels))
	for k, v := range s.Counts {
		counts[k] = v
	}
	for _, label := range labels {
		if _, ok := counts[label]; !ok {
			counts[label] = 0
		}
	}
	s.Counts = counts
	return s
}

// CountOf returns the counter for label (zero when absent).
func (s Summary) CountOf(label string) int {
	return s.Counts[label]
}
