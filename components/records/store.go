package records

import (
	"errors"
	"sync"
	"sync/atomic"
)

var (
	// ErrRecordNotFound is returned when a mutation targets an unknown id.
	ErrRecordNotFound = errors.New("records: record not found")
	// ErrDuplicateRecord is returned when inserting an id that already exists.
	ErrDuplicateRecord = errors.New("records: duplicate record id")
	errMissingID       = errors.New("records: record id is required")
)

// Store exposes an ordered, read-only view over a record collection.
type Store[T any] interface {
	All() []T
}

// SnapshotStore holds an immutable snapshot of records. Writers publish a new
// snapshot atomically, so readers always see one consistent collection.
type SnapshotStore[T any] struct {
	id       func(T) string
	snapshot atomic.Pointer[[]T]
	writeMu  sync.Mutex
}

// NewSnapshotStore builds a store from the provided records. The id accessor
// is used by the mutation helpers; it may be nil for read-only stores.
func NewSnapshotStore[T any](id func(T) string, items []T) *SnapshotStore[T] {
	s := &SnapshotStore[T]{id: id}
	initial := append([]T(nil), items...)
	s.snapshot.Store(&initial)
	return s
}

// All returns the records in insertion order.
func (s *SnapshotStore[T]) All() []T {
	current := s.snapshot.Load()
	if current == nil {
		return []T{}
	}
	return append([]T(nil), (*current)...)
}

// Len reports the number of records in the current snapshot.
func (s *SnapshotStore[T]) Len() int {
	if current := s.snapshot.Load(); current != nil {
		return len(*current)
	}
	return 0
}

// Get returns the record with the given id.
func (s *SnapshotStore[T]) Get(id string) (T, bool) {
	var zero T
	if s.id == nil {
		return zero, false
	}
	current := s.snapshot.Load()
	if current == nil {
		return zero, false
	}
	for _, item := range *current {
		if s.id(item) == id {
			return item, true
		}
	}
	return zero, false
}

// Insert appends a record and publishes the new snapshot.
func (s *SnapshotStore[T]) Insert(item T) error {
	return s.publish(func(current []T) ([]T, error) {
		id, err := s.identify(item)
		if err != nil {
			return nil, err
		}
		if indexOf(current, s.id, id) >= 0 {
			return nil, ErrDuplicateRecord
		}
		next := make([]T, len(current), len(current)+1)
		copy(next, current)
		return append(next, item), nil
	})
}

// Replace swaps the record stored under id, keeping its position.
func (s *SnapshotStore[T]) Replace(id string, item T) error {
	return s.publish(func(current []T) ([]T, error) {
		if _, err := s.identify(item); err != nil {
			return nil, err
		}
		idx := indexOf(current, s.id, id)
		if idx < 0 {
			return nil, ErrRecordNotFound
		}
		next := append([]T(nil), current...)
		next[idx] = item
		return next, nil
	})
}

// Remove deletes the record stored under id.
func (s *SnapshotStore[T]) Remove(id string) error {
	return s.publish(func(current []T) ([]T, error) {
		if s.id == nil {
			return nil, errMissingID
		}
		idx := indexOf(current, s.id, id)
		if idx < 0 {
			return nil, ErrRecordNotFound
		}
		next := make([]T, 0, len(current)-1)
		next = append(next, current[:idx]...)
		return append(next, current[idx+1:]...), nil
	})
}

func (s *SnapshotStore[T]) publish(mutate func(current []T) ([]T, error)) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	var current []T
	if ptr := s.snapshot.Load(); ptr != nil {
		current = *ptr
	}
	next, err := mutate(current)
	if err != nil {
		return err
	}
	s.snapshot.Store(&next)
	return nil
}

func (s *SnapshotStore[T]) identify(item T) (string, error) {
	if s.id == nil {
		return "", errMissingID
	}
	id := s.id(item)
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}

func indexOf[T any](items []T, id func(T) string, target string) int {
	if id == nil {
		return -1
	}
	for i, item := range items {
		if id(item) == target {
			return i
		}
	}
	return -1
}
