// Package list implements a persistent singly-linked cons list.
//
// Lists are the lightweight sibling of package seqs' finger-tree sequences:
// constant-time prepend and head access, linear everything else. They serve
// as the bulk-conversion target for sequences and as a general scratch
// container.
//
// A nil *List is the empty list; all methods are safe to call on it.
package list

import (
	"fmt"
	"strings"
)

// List is a persistent cons list. Cons never mutates an existing list, so
// any number of lists may share a common tail.
type List[T any] struct {
	head  T
	rest  *List[T]
	count int
}

// Of creates a list holding the given items in order.
func Of[T any](items ...T) *List[T] {
	var l *List[T]
	for i := len(items) - 1; i >= 0; i-- {
		l = l.Cons(items[i])
	}
	return l
}

// Cons returns a new list with x prepended.
func (l *List[T]) Cons(x T) *List[T] {
	return &List[T]{head: x, rest: l, count: l.Len() + 1}
}

// Len returns the number of items in the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.count
}

// IsEmpty reports whether the list has no items.
func (l *List[T]) IsEmpty() bool {
	return l == nil
}

// Head returns the first item. The boolean is false for an empty list.
func (l *List[T]) Head() (T, bool) {
	if l == nil {
		var zero T
		return zero, false
	}
	return l.head, true
}

// Tail returns the list without its first item, nil for an empty list.
func (l *List[T]) Tail() *List[T] {
	if l == nil {
		return nil
	}
	return l.rest
}

// Each visits all items in order. Iteration stops early if the callback
// returns false.
func (l *List[T]) Each(fn func(x T) bool) {
	for ; l != nil; l = l.rest {
		if !fn(l.head) {
			return
		}
	}
}

// String renders the list in parenthesized form, mainly for debugging.
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	first := true
	l.Each(func(x T) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v", x)
		return true
	})
	b.WriteByte(')')
	return b.String()
}
