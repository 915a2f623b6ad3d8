package seqs

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// node23 is a balanced grouping of 2 or 3 elements, or of 2 or 3 deeper
// nodes, with a cached element count. Exactly one of leafs/kids is non-nil.
//
// Spelling out leaf nodes and inner nodes in a single type — rather than
// nesting a type parameter per tree level — keeps the spine an ordinary
// recursive type (see spine.go).
type node23[T any] struct {
	// size is the total count of leaf elements below this node.
	size  int
	leafs []T          // 2 or 3 raw elements, nil for inner nodes
	kids  []*node23[T] // 2 or 3 child nodes, nil for leaf nodes
}

func leaf2[T any](a, b T) *node23[T] {
	return &node23[T]{size: 2, leafs: []T{a, b}}
}

func leaf3[T any](a, b, c T) *node23[T] {
	return &node23[T]{size: 3, leafs: []T{a, b, c}}
}

// inner creates an internal node over 2 or 3 child nodes, caching the summed
// size at construction time.
func inner[T any](kids ...*node23[T]) *node23[T] {
	assert(len(kids) == 2 || len(kids) == 3, "inner node arity must be 2 or 3")
	total := 0
	for _, k := range kids {
		total += k.size
	}
	return &node23[T]{size: total, kids: kids}
}

// --- Digits ----------------------------------------------------------------

// A digit is an ordered group of 1 to 4 items, represented as a slice.
// Digit slices are never appended to in place; growing a digit always
// allocates, so sub-slicing a digit is safe for structural sharing.

// consDigit returns a fresh digit with x prepended.
func consDigit[E any](x E, d []E) []E {
	nd := make([]E, 0, len(d)+1)
	nd = append(nd, x)
	return append(nd, d...)
}

// snocDigit returns a fresh digit with x appended.
func snocDigit[E any](d []E, x E) []E {
	nd := make([]E, len(d), len(d)+1)
	copy(nd, d)
	return append(nd, x)
}

// withItem returns a fresh digit with the item at position i replaced by v.
func withItem[E any](d []E, i int, v E) []E {
	nd := make([]E, len(d))
	copy(nd, d)
	nd[i] = v
	return nd
}

// nodeDigitSize sums the cached sizes of a digit of nodes.
func nodeDigitSize[T any](d []*node23[T]) int {
	total := 0
	for _, n := range d {
		total += n.size
	}
	return total
}

// nodeDigitAt descends into the digit member containing element index i.
func nodeDigitAt[T any](d []*node23[T], i int) T {
	for _, n := range d {
		if i < n.size {
			return nodeAt(n, i)
		}
		i -= n.size
	}
	assert(false, "digit index routing exceeded digit size")
	var zero T
	return zero
}

// nodeDigitWith path-copies the digit member containing element index i.
func nodeDigitWith[T any](d []*node23[T], i int, v T) []*node23[T] {
	nd := make([]*node23[T], len(d))
	copy(nd, d)
	for k, n := range nd {
		if i < n.size {
			nd[k] = nodeWith(n, i, v)
			return nd
		}
		i -= n.size
	}
	assert(false, "digit update routing exceeded digit size")
	return nil
}

// splitNodeDigit locates the digit member containing element index i and
// returns the members before it, the member, the index local to the member,
// and the members after it.
func splitNodeDigit[T any](d []*node23[T], i int) ([]*node23[T], *node23[T], int, []*node23[T]) {
	for k, n := range d {
		if i < n.size {
			return d[:k], n, i, d[k+1:]
		}
		i -= n.size
	}
	assert(false, "digit split routing exceeded digit size")
	return nil, nil, 0, nil
}

// --- Node access -----------------------------------------------------------

// nodeAt returns the leaf element at index i below n.
func nodeAt[T any](n *node23[T], i int) T {
	if n.leafs != nil {
		return n.leafs[i]
	}
	for _, k := range n.kids {
		if i < k.size {
			return nodeAt(k, i)
		}
		i -= k.size
	}
	assert(false, "node index routing exceeded node size")
	var zero T
	return zero
}

// nodeWith rebuilds the path from n to leaf element i, substituting v.
// All untouched siblings are shared; cached sizes are unchanged.
func nodeWith[T any](n *node23[T], i int, v T) *node23[T] {
	if n.leafs != nil {
		return &node23[T]{size: n.size, leafs: withItem(n.leafs, i, v)}
	}
	kids := make([]*node23[T], len(n.kids))
	copy(kids, n.kids)
	for k, c := range kids {
		if i < c.size {
			kids[k] = nodeWith(c, i, v)
			return &node23[T]{size: n.size, kids: kids}
		}
		i -= c.size
	}
	assert(false, "node update routing exceeded node size")
	return nil
}

// --- Rebalancing -----------------------------------------------------------

// packLeaves regroups 2–8 raw elements gathered during concatenation into
// leaf nodes: groups of 3, except that a remainder of exactly 2 or 4 becomes
// one or two groups of 2.
func packLeaves[T any](items []T) []*node23[T] {
	assert(len(items) >= 2, "cannot pack fewer than 2 elements into nodes")
	var nodes []*node23[T]
	for len(items) > 0 {
		switch len(items) {
		case 2:
			nodes = append(nodes, leaf2(items[0], items[1]))
			items = nil
		case 4:
			nodes = append(nodes, leaf2(items[0], items[1]), leaf2(items[2], items[3]))
			items = nil
		default:
			nodes = append(nodes, leaf3(items[0], items[1], items[2]))
			items = items[3:]
		}
	}
	return nodes
}

// packNodes regroups 2–12 nodes gathered during spine concatenation into
// nodes one level deeper. Same grouping rule as packLeaves, one level up.
func packNodes[T any](items []*node23[T]) []*node23[T] {
	assert(len(items) >= 2, "cannot pack fewer than 2 nodes")
	var nodes []*node23[T]
	for len(items) > 0 {
		switch len(items) {
		case 2:
			nodes = append(nodes, inner(items[0], items[1]))
			items = nil
		case 4:
			nodes = append(nodes, inner(items[0], items[1]), inner(items[2], items[3]))
			items = nil
		default:
			nodes = append(nodes, inner(items[0], items[1], items[2]))
			items = items[3:]
		}
	}
	return nodes
}
