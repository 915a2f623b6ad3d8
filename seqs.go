package seqs

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"
)

// Seq stores immutable elements in a persistent 2-3 finger tree.
//
// A sequence created by
//
//	Seq[int]{}
//
// is a valid object and behaves like the empty sequence.
//
// Methods that take or return positions use zero-based element indices.
// All methods leave their receiver untouched and return new sequence
// values, sharing untouched sub-trees with the receiver.
type Seq[T any] struct {
	tree seqTree[T] // nil means empty sequence
}

// seqTree is the top-level variant of a sequence: nil for empty, a
// singleTree for one element, a deepTree otherwise.
type seqTree[T any] interface {
	length() int
}

type singleTree[T any] struct {
	item T
}

type deepTree[T any] struct {
	// size is the cached total element count, never stale.
	size int
	pre  []T      // digit, 1–4 raw elements
	mid  spine[T] // leaf nodes of raw elements; nil means empty
	suf  []T      // digit, 1–4 raw elements
}

func (t *singleTree[T]) length() int { return 1 }
func (t *deepTree[T]) length() int   { return t.size }

// SeqOf creates a sequence holding the given elements in order.
func SeqOf[T any](items ...T) Seq[T] {
	return FromSlice(items)
}

// Len returns the number of elements in the sequence.
func (s Seq[T]) Len() int {
	if s.tree == nil {
		return 0
	}
	return s.tree.length()
}

// IsEmpty reports whether the sequence has no elements.
func (s Seq[T]) IsEmpty() bool {
	return s.tree == nil
}

// NonEmpty reports whether the sequence has at least one element.
func (s Seq[T]) NonEmpty() bool {
	return s.tree != nil
}

// --- Construction at the ends ----------------------------------------------

// Prepend pushes an element onto the front of the sequence in amortized
// constant time.
func (s Seq[T]) Prepend(x T) Seq[T] {
	switch t := s.tree.(type) {
	case nil:
		return Seq[T]{tree: &singleTree[T]{item: x}}
	case *singleTree[T]:
		return Seq[T]{tree: &deepTree[T]{size: 2, pre: []T{x}, suf: []T{t.item}}}
	case *deepTree[T]:
		if len(t.pre) < 4 {
			return Seq[T]{tree: &deepTree[T]{
				size: t.size + 1,
				pre:  consDigit(x, t.pre),
				mid:  t.mid,
				suf:  t.suf,
			}}
		}
		// Digit overflow: pack the last three prefix elements into one leaf
		// triple and push it one level down.
		overflow := leaf3(t.pre[1], t.pre[2], t.pre[3])
		return Seq[T]{tree: &deepTree[T]{
			size: t.size + 1,
			pre:  []T{x, t.pre[0]},
			mid:  spinePushFront(t.mid, overflow),
			suf:  t.suf,
		}}
	}
	assert(false, "unknown sequence variant")
	return Seq[T]{}
}

// Append pushes an element onto the back of the sequence in amortized
// constant time; mirror of Prepend.
func (s Seq[T]) Append(x T) Seq[T] {
	switch t := s.tree.(type) {
	case nil:
		return Seq[T]{tree: &singleTree[T]{item: x}}
	case *singleTree[T]:
		return Seq[T]{tree: &deepTree[T]{size: 2, pre: []T{t.item}, suf: []T{x}}}
	case *deepTree[T]:
		if len(t.suf) < 4 {
			return Seq[T]{tree: &deepTree[T]{
				size: t.size + 1,
				pre:  t.pre,
				mid:  t.mid,
				suf:  snocDigit(t.suf, x),
			}}
		}
		overflow := leaf3(t.suf[0], t.suf[1], t.suf[2])
		return Seq[T]{tree: &deepTree[T]{
			size: t.size + 1,
			pre:  t.pre,
			mid:  spinePushBack(t.mid, overflow),
			suf:  []T{t.suf[3], x},
		}}
	}
	assert(false, "unknown sequence variant")
	return Seq[T]{}
}

// --- Views -----------------------------------------------------------------

// PopFront removes the first element, returning it together with the
// remainder of the sequence. The boolean is false for an empty sequence.
func (s Seq[T]) PopFront() (T, Seq[T], bool) {
	var zero T
	switch t := s.tree.(type) {
	case nil:
		return zero, Seq[T]{}, false
	case *singleTree[T]:
		return t.item, Seq[T]{}, true
	case *deepTree[T]:
		x := t.pre[0]
		if len(t.pre) > 1 {
			rest := &deepTree[T]{
				size: t.size - 1,
				pre:  t.pre[1:],
				mid:  t.mid,
				suf:  t.suf,
			}
			return x, Seq[T]{tree: rest}, true
		}
		// Prefix exhausted: explode one leaf node from the spine into a
		// fresh prefix digit, or collapse onto the suffix.
		if n, deeper, ok := spinePopFront[T](t.mid); ok {
			assert(n.leafs != nil, "first spine level must hold leaf nodes")
			rest := &deepTree[T]{
				size: t.size - 1,
				pre:  n.leafs,
				mid:  deeper,
				suf:  t.suf,
			}
			return x, Seq[T]{tree: rest}, true
		}
		return x, seqFromDigit(t.suf), true
	}
	assert(false, "unknown sequence variant")
	return zero, Seq[T]{}, false
}

// PopBack removes the last element; mirror of PopFront.
func (s Seq[T]) PopBack() (T, Seq[T], bool) {
	var zero T
	switch t := s.tree.(type) {
	case nil:
		return zero, Seq[T]{}, false
	case *singleTree[T]:
		return t.item, Seq[T]{}, true
	case *deepTree[T]:
		x := t.suf[len(t.suf)-1]
		if len(t.suf) > 1 {
			rest := &deepTree[T]{
				size: t.size - 1,
				pre:  t.pre,
				mid:  t.mid,
				suf:  t.suf[:len(t.suf)-1],
			}
			return x, Seq[T]{tree: rest}, true
		}
		if n, deeper, ok := spinePopBack[T](t.mid); ok {
			assert(n.leafs != nil, "first spine level must hold leaf nodes")
			rest := &deepTree[T]{
				size: t.size - 1,
				pre:  t.pre,
				mid:  deeper,
				suf:  n.leafs,
			}
			return x, Seq[T]{tree: rest}, true
		}
		return x, seqFromDigit(t.pre), true
	}
	assert(false, "unknown sequence variant")
	return zero, Seq[T]{}, false
}

// Head returns the first element of the sequence.
func (s Seq[T]) Head() (T, error) {
	x, _, ok := s.PopFront()
	if !ok {
		return x, ErrEmptySeq
	}
	return x, nil
}

// Last returns the last element of the sequence.
func (s Seq[T]) Last() (T, error) {
	x, _, ok := s.PopBack()
	if !ok {
		return x, ErrEmptySeq
	}
	return x, nil
}

// Tail returns the sequence without its first element.
func (s Seq[T]) Tail() (Seq[T], error) {
	_, rest, ok := s.PopFront()
	if !ok {
		return Seq[T]{}, ErrEmptySeq
	}
	return rest, nil
}

// --- Reconstruction helpers ------------------------------------------------

// seqFromDigit converts 0–4 raw elements into a sequence.
func seqFromDigit[T any](d []T) Seq[T] {
	switch len(d) {
	case 0:
		return Seq[T]{}
	case 1:
		return Seq[T]{tree: &singleTree[T]{item: d[0]}}
	default:
		k := (len(d) + 1) / 2
		return Seq[T]{tree: &deepTree[T]{size: len(d), pre: d[:k], suf: d[k:]}}
	}
}

// deepL builds a sequence from a possibly-empty prefix digit, refilling an
// empty prefix from the spine like PopFront's underflow case does.
func deepL[T any](pre []T, mid spine[T], suf []T) Seq[T] {
	if len(pre) == 0 {
		n, deeper, ok := spinePopFront[T](mid)
		if !ok {
			return seqFromDigit(suf)
		}
		assert(n.leafs != nil, "first spine level must hold leaf nodes")
		pre = n.leafs
		mid = deeper
	}
	return Seq[T]{tree: &deepTree[T]{
		size: len(pre) + spineLen[T](mid) + len(suf),
		pre:  pre,
		mid:  mid,
		suf:  suf,
	}}
}

// deepR builds a sequence from a possibly-empty suffix digit; mirror of deepL.
func deepR[T any](pre []T, mid spine[T], suf []T) Seq[T] {
	if len(suf) == 0 {
		n, deeper, ok := spinePopBack[T](mid)
		if !ok {
			return seqFromDigit(pre)
		}
		assert(n.leafs != nil, "first spine level must hold leaf nodes")
		suf = n.leafs
		mid = deeper
	}
	return Seq[T]{tree: &deepTree[T]{
		size: len(pre) + spineLen[T](mid) + len(suf),
		pre:  pre,
		mid:  mid,
		suf:  suf,
	}}
}

// String returns a compact rendering of the sequence, mainly for debugging
// and test output. This is an expensive operation for long sequences.
func (s Seq[T]) String() string {
	var b strings.Builder
	b.WriteString("⟨")
	first := true
	s.Each(func(x T) bool {
		if !first {
			b.WriteString(" ")
		}
		first = false
		fmt.Fprintf(&b, "%v", x)
		return true
	})
	b.WriteString("⟩")
	return b.String()
}
