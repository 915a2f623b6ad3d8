package seqs

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// Each visits all elements in logical order.
//
// Iteration stops early if the callback returns false. The walk allocates
// nothing and builds no intermediate list.
func (s Seq[T]) Each(fn func(x T) bool) {
	if s.tree == nil || fn == nil {
		return
	}
	eachTree(s.tree, fn)
}

// EachReverse visits all elements in reverse logical order.
//
// Iteration stops early if the callback returns false.
func (s Seq[T]) EachReverse(fn func(x T) bool) {
	if s.tree == nil || fn == nil {
		return
	}
	eachTreeReverse(s.tree, fn)
}

// All returns an iterator over all elements in logical order.
func (s Seq[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.Each(yield)
	}
}

// Backward returns an iterator over all elements in reverse logical order.
func (s Seq[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.EachReverse(yield)
	}
}

func eachTree[T any](t seqTree[T], fn func(T) bool) bool {
	switch t := t.(type) {
	case *singleTree[T]:
		return fn(t.item)
	case *deepTree[T]:
		for _, x := range t.pre {
			if !fn(x) {
				return false
			}
		}
		if !eachSpine(t.mid, fn) {
			return false
		}
		for _, x := range t.suf {
			if !fn(x) {
				return false
			}
		}
		return true
	}
	assert(false, "unknown sequence variant")
	return false
}

func eachTreeReverse[T any](t seqTree[T], fn func(T) bool) bool {
	switch t := t.(type) {
	case *singleTree[T]:
		return fn(t.item)
	case *deepTree[T]:
		for i := len(t.suf) - 1; i >= 0; i-- {
			if !fn(t.suf[i]) {
				return false
			}
		}
		if !eachSpineReverse(t.mid, fn) {
			return false
		}
		for i := len(t.pre) - 1; i >= 0; i-- {
			if !fn(t.pre[i]) {
				return false
			}
		}
		return true
	}
	assert(false, "unknown sequence variant")
	return false
}

func eachSpine[T any](sp spine[T], fn func(T) bool) bool {
	switch t := sp.(type) {
	case nil:
		return true
	case *spineSingle[T]:
		return eachNode(t.node, fn)
	case *spineDeep[T]:
		for _, n := range t.pre {
			if !eachNode(n, fn) {
				return false
			}
		}
		if !eachSpine(t.mid, fn) {
			return false
		}
		for _, n := range t.suf {
			if !eachNode(n, fn) {
				return false
			}
		}
		return true
	}
	assert(false, "unknown spine variant")
	return false
}

func eachSpineReverse[T any](sp spine[T], fn func(T) bool) bool {
	switch t := sp.(type) {
	case nil:
		return true
	case *spineSingle[T]:
		return eachNodeReverse(t.node, fn)
	case *spineDeep[T]:
		for i := len(t.suf) - 1; i >= 0; i-- {
			if !eachNodeReverse(t.suf[i], fn) {
				return false
			}
		}
		if !eachSpineReverse(t.mid, fn) {
			return false
		}
		for i := len(t.pre) - 1; i >= 0; i-- {
			if !eachNodeReverse(t.pre[i], fn) {
				return false
			}
		}
		return true
	}
	assert(false, "unknown spine variant")
	return false
}

func eachNode[T any](n *node23[T], fn func(T) bool) bool {
	if n.leafs != nil {
		for _, x := range n.leafs {
			if !fn(x) {
				return false
			}
		}
		return true
	}
	for _, k := range n.kids {
		if !eachNode(k, fn) {
			return false
		}
	}
	return true
}

func eachNodeReverse[T any](n *node23[T], fn func(T) bool) bool {
	if n.leafs != nil {
		for i := len(n.leafs) - 1; i >= 0; i-- {
			if !fn(n.leafs[i]) {
				return false
			}
		}
		return true
	}
	for i := len(n.kids) - 1; i >= 0; i-- {
		if !eachNodeReverse(n.kids[i], fn) {
			return false
		}
	}
	return true
}
