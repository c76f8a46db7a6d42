// Package selection defines the tile selection model and its compact display form.
package selection

import "sort"

// Set holds the currently active tile indices.
// The zero value is an empty set ready to use.
type Set struct {
	values map[int]struct{}
}

// NewSet constructs a Set containing the given values.
func NewSet(values ...int) *Set {
	s := new(Set{values: make(map[int]struct{}, len(values))})
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add marks n as selected.
func (s *Set) Add(n int) {
	if s.values == nil {
		s.values = make(map[int]struct{})
	}
	s.values[n] = struct{}{}
}

// Remove unmarks n. Removing an absent value is a no-op.
func (s *Set) Remove(n int) {
	delete(s.values, n)
}

// Toggle flips the state of n and reports whether it is selected afterwards.
func (s *Set) Toggle(n int) bool {
	if s.Contains(n) {
		s.Remove(n)
		return false
	}
	s.Add(n)
	return true
}

// Contains reports whether n is selected.
func (s *Set) Contains(n int) bool {
	if s == nil {
		return false
	}
	_, ok := s.values[n]
	return ok
}

// Len returns the number of selected values.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Clear removes every value.
func (s *Set) Clear() {
	clear(s.values)
}

// Sorted returns the selected values in ascending order.
func (s *Set) Sorted() []int {
	if s.Len() == 0 {
		return nil
	}
	out := make([]int, 0, len(s.values))
	for v := range s.values {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
