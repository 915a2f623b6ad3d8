package seqs

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "github.com/npillmayer/seqs/list"

// FromSlice creates a sequence holding the elements of a slice in order.
// The slice is not retained; amortized-constant appends make a dedicated
// bulk builder unnecessary.
func FromSlice[T any](items []T) Seq[T] {
	s := Seq[T]{}
	for _, x := range items {
		s = s.Append(x)
	}
	return s
}

// ToSlice returns the complete sequence as a Go slice. This may be an
// expensive operation, as it will allocate room for all elements of the
// sequence and collect them into a single contiguous slice.
func (s Seq[T]) ToSlice() []T {
	out := make([]T, 0, s.Len())
	s.Each(func(x T) bool {
		out = append(out, x)
		return true
	})
	return out
}

// ToList converts the sequence into a persistent cons list, preserving
// element order. Built on EachReverse, so each element is consed exactly
// once.
func (s Seq[T]) ToList() *list.List[T] {
	var l *list.List[T]
	s.EachReverse(func(x T) bool {
		l = l.Cons(x)
		return true
	})
	return l
}

// FromList creates a sequence holding the elements of a cons list in order.
func FromList[T any](l *list.List[T]) Seq[T] {
	s := Seq[T]{}
	l.Each(func(x T) bool {
		s = s.Append(x)
		return true
	})
	return s
}

// Map applies fn to every element of s, returning the sequence of results
// in order.
func Map[T, U any](s Seq[T], fn func(T) U) Seq[U] {
	out := Seq[U]{}
	s.Each(func(x T) bool {
		out = out.Append(fn(x))
		return true
	})
	return out
}
