package main

import "iter"

// system is the growing collection of derived theorems: an ordered set
// where duplicates collapse to the first occurrence and never move.
type system[T any] struct {
	key   func(T) string
	seen  map[string]struct{}
	order []T
}

func newSystem[T any](key func(T) string) *system[T] {
	return &system[T]{key: key, seen: map[string]struct{}{}}
}

func (s *system[T]) contains(t T) bool {
	_, ok := s.seen[s.key(t)]
	return ok
}

// add appends t unless it is already present. Re-adding is a no-op and
// returns false.
func (s *system[T]) add(t T) bool {
	k := s.key(t)
	if _, ok := s.seen[k]; ok {
		return false
	}
	s.seen[k] = struct{}{}
	s.order = append(s.order, t)
	return true
}

func (s *system[T]) size() int {
	return len(s.order)
}

// all iterates in insertion order. The sequence is live: theorems added
// while iterating are visited once the iteration reaches them.
func (s *system[T]) all() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < len(s.order); i++ {
			if !yield(s.order[i]) {
				return
			}
		}
	}
}
