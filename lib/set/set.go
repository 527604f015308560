package set

import "encoding/json"

// Ordered is a set that remembers the order in which values were first added.
// Duplicate adds are ignored, so the first-seen position of a value is kept.
// It serialises to JSON as a list in insertion order.
//
// The zero value is not usable, use NewOrdered.
type Ordered[T comparable] struct {
	index  map[T]struct{}
	values []T
}

func NewOrdered[T comparable](values ...T) *Ordered[T] {
	s := &Ordered[T]{
		index:  make(map[T]struct{}, len(values)),
		values: make([]T, 0, len(values)),
	}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not already present.
func (s *Ordered[T]) Add(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.values = append(s.values, v)
	return true
}

func (s *Ordered[T]) Contains(v T) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[v]
	return ok
}

func (s *Ordered[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Values returns a copy of the elements in insertion order.
func (s *Ordered[T]) Values() []T {
	if s == nil {
		return []T{}
	}
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}

// Each calls fn for every element in insertion order without copying.
func (s *Ordered[T]) Each(fn func(T)) {
	if s == nil {
		return
	}
	for _, v := range s.values {
		fn(v)
	}
}

func (s *Ordered[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

func (s *Ordered[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	s.index = make(map[T]struct{}, len(values))
	s.values = make([]T, 0, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return nil
}
