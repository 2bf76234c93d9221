package common

// Set is an insertion-ordered set
type Set[T comparable] struct {
	elements map[T]struct{}
	order    []T
}

// NewSet creates a new set
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{
		elements: make(map[T]struct{}),
	}
}

// Add inserts an element into the set and reports whether it was not already present
func (s *Set[T]) Add(value T) bool {
	if _, found := s.elements[value]; found {
		return false
	}
	s.elements[value] = struct{}{}
	s.order = append(s.order, value)
	return true
}

// Contains checks if an element is in the set
func (s *Set[T]) Contains(value T) bool {
	_, found := s.elements[value]
	return found
}

// Size returns the number of elements in the set
func (s *Set[T]) Size() int {
	return len(s.elements)
}

// List returns all elements in insertion order
func (s *Set[T]) List() []T {
	list := make([]T, len(s.order))
	copy(list, s.order)
	return list
}
