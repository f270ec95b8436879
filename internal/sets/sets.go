// Package sets provides a minimal generic set with the algebra the schedule
// resolver needs.
package sets

import (
	"cmp"
	"slices"
)

// Set is an unordered collection of comparable values.
type Set[T comparable] map[T]struct{}

// New builds a set from the given values.
func New[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v into the set.
func (s Set[T]) Add(v T) { s[v] = struct{}{} }

// Has reports whether v is a member.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of members.
func (s Set[T]) Len() int { return len(s) }

// Union returns a new set with the members of both a and b.
func Union[T comparable](a, b Set[T]) Set[T] {
	out := make(Set[T], len(a)+len(b))
	for v := range a {
		out.Add(v)
	}
	for v := range b {
		out.Add(v)
	}
	return out
}

// Difference returns the members of a that are not in b.
func Difference[T comparable](a, b Set[T]) Set[T] {
	out := make(Set[T])
	for v := range a {
		if !b.Has(v) {
			out.Add(v)
		}
	}
	return out
}

// Intersection returns the members present in both a and b.
func Intersection[T comparable](a, b Set[T]) Set[T] {
	out := make(Set[T])
	for v := range a {
		if b.Has(v) {
			out.Add(v)
		}
	}
	return out
}

// Sorted returns the members in ascending order, for deterministic output.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	out := make([]T, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}
