package utils

// OrderedSet is an insertion-ordered set. Items keep the position of their
// first insertion; later duplicates are ignored.
type OrderedSet[T comparable] struct {
	items []T
	index map[T]struct{}
}

// NewOrderedSet creates a set pre-populated with items
func NewOrderedSet[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{index: make(map[T]struct{}, len(items))}
	s.Add(items...)
	return s
}

// Add appends each item not already present
func (s *OrderedSet[T]) Add(items ...T) {
	if s.index == nil {
		s.index = make(map[T]struct{})
	}
	for _, item := range items {
		if _, ok := s.index[item]; ok {
			continue
		}
		s.index[item] = struct{}{}
		s.items = append(s.items, item)
	}
}

// Contains reports whether item has been added
func (s *OrderedSet[T]) Contains(item T) bool {
	_, ok := s.index[item]
	return ok
}

// Remove deletes item, keeping the relative order of the rest
func (s *OrderedSet[T]) Remove(item T) {
	if _, ok := s.index[item]; !ok {
		return
	}
	delete(s.index, item)
	for i, v := range s.items {
		if v == item {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Len returns the number of items
func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the items in insertion order
func (s *OrderedSet[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
