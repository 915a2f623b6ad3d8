package seqs

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// The spine is the recursive middle of a sequence: a finger tree whose
// elements are node23 values one level deeper than the sequence's own
// prefix and suffix digits. Because node23 nests itself, every spine level
// is the same Go type and no polymorphic recursion is needed.
//
// A nil spine is the empty spine.

type spine[T any] interface {
	length() int
}

type spineSingle[T any] struct {
	node *node23[T]
}

type spineDeep[T any] struct {
	// size is the total count of leaf elements at this level and below.
	size int
	pre  []*node23[T] // digit, 1–4 nodes
	mid  spine[T]     // nodes one level deeper; nil means empty
	suf  []*node23[T] // digit, 1–4 nodes
}

func (s *spineSingle[T]) length() int { return s.node.size }
func (s *spineDeep[T]) length() int   { return s.size }

// spineLen returns the element count of a spine, 0 for nil.
func spineLen[T any](sp spine[T]) int {
	if sp == nil {
		return 0
	}
	return sp.length()
}

// spineDeepOf constructs a deep spine, caching the size from its parts.
func spineDeepOf[T any](pre []*node23[T], mid spine[T], suf []*node23[T]) *spineDeep[T] {
	assert(len(pre) >= 1 && len(suf) >= 1, "deep spine digits must be non-empty")
	return &spineDeep[T]{
		size: nodeDigitSize(pre) + spineLen[T](mid) + nodeDigitSize(suf),
		pre:  pre,
		mid:  mid,
		suf:  suf,
	}
}

// spineFromDigit converts 0–4 nodes into a spine.
func spineFromDigit[T any](d []*node23[T]) spine[T] {
	switch len(d) {
	case 0:
		return nil
	case 1:
		return &spineSingle[T]{node: d[0]}
	default:
		k := (len(d) + 1) / 2
		return spineDeepOf(d[:k], nil, d[k:])
	}
}

// --- Growing ---------------------------------------------------------------

// spinePushFront prepends a node. Amortized O(1): a full prefix digit
// overflows one node triple into the next level, which happens on at most
// every other push at that level.
func spinePushFront[T any](sp spine[T], n *node23[T]) spine[T] {
	switch t := sp.(type) {
	case nil:
		return &spineSingle[T]{node: n}
	case *spineSingle[T]:
		return spineDeepOf([]*node23[T]{n}, nil, []*node23[T]{t.node})
	case *spineDeep[T]:
		if len(t.pre) < 4 {
			return &spineDeep[T]{
				size: t.size + n.size,
				pre:  consDigit(n, t.pre),
				mid:  t.mid,
				suf:  t.suf,
			}
		}
		overflow := inner(t.pre[1], t.pre[2], t.pre[3])
		return &spineDeep[T]{
			size: t.size + n.size,
			pre:  []*node23[T]{n, t.pre[0]},
			mid:  spinePushFront(t.mid, overflow),
			suf:  t.suf,
		}
	}
	assert(false, "unknown spine variant")
	return nil
}

// spinePushBack appends a node; mirror of spinePushFront.
func spinePushBack[T any](sp spine[T], n *node23[T]) spine[T] {
	switch t := sp.(type) {
	case nil:
		return &spineSingle[T]{node: n}
	case *spineSingle[T]:
		return spineDeepOf([]*node23[T]{t.node}, nil, []*node23[T]{n})
	case *spineDeep[T]:
		if len(t.suf) < 4 {
			return &spineDeep[T]{
				size: t.size + n.size,
				pre:  t.pre,
				mid:  t.mid,
				suf:  snocDigit(t.suf, n),
			}
		}
		overflow := inner(t.suf[0], t.suf[1], t.suf[2])
		return &spineDeep[T]{
			size: t.size + n.size,
			pre:  t.pre,
			mid:  spinePushBack(t.mid, overflow),
			suf:  []*node23[T]{t.suf[3], n},
		}
	}
	assert(false, "unknown spine variant")
	return nil
}

// --- Shrinking -------------------------------------------------------------

// spinePopFront removes the first node. Returns false for an empty spine.
func spinePopFront[T any](sp spine[T]) (*node23[T], spine[T], bool) {
	switch t := sp.(type) {
	case nil:
		return nil, nil, false
	case *spineSingle[T]:
		return t.node, nil, true
	case *spineDeep[T]:
		n := t.pre[0]
		if len(t.pre) > 1 {
			rest := &spineDeep[T]{
				size: t.size - n.size,
				pre:  t.pre[1:],
				mid:  t.mid,
				suf:  t.suf,
			}
			return n, rest, true
		}
		// Prefix exhausted: explode one node from the deeper spine into a
		// fresh prefix digit, or collapse onto the suffix.
		if m, deeper, ok := spinePopFront[T](t.mid); ok {
			assert(m.kids != nil, "spine node must be an inner node")
			rest := &spineDeep[T]{
				size: t.size - n.size,
				pre:  m.kids,
				mid:  deeper,
				suf:  t.suf,
			}
			return n, rest, true
		}
		return n, spineFromDigit(t.suf), true
	}
	assert(false, "unknown spine variant")
	return nil, nil, false
}

// spinePopBack removes the last node; mirror of spinePopFront.
func spinePopBack[T any](sp spine[T]) (*node23[T], spine[T], bool) {
	switch t := sp.(type) {
	case nil:
		return nil, nil, false
	case *spineSingle[T]:
		return t.node, nil, true
	case *spineDeep[T]:
		n := t.suf[len(t.suf)-1]
		if len(t.suf) > 1 {
			rest := &spineDeep[T]{
				size: t.size - n.size,
				pre:  t.pre,
				mid:  t.mid,
				suf:  t.suf[:len(t.suf)-1],
			}
			return n, rest, true
		}
		if m, deeper, ok := spinePopBack[T](t.mid); ok {
			assert(m.kids != nil, "spine node must be an inner node")
			rest := &spineDeep[T]{
				size: t.size - n.size,
				pre:  t.pre,
				mid:  deeper,
				suf:  m.kids,
			}
			return n, rest, true
		}
		return n, spineFromDigit(t.pre), true
	}
	assert(false, "unknown spine variant")
	return nil, nil, false
}

// --- Reconstruction with possibly-empty digits -----------------------------

// spineDeepL builds a spine from a possibly-empty prefix digit. An empty
// prefix is refilled by popping one node from the deeper spine, exactly as
// in spinePopFront's underflow case.
func spineDeepL[T any](pre []*node23[T], mid spine[T], suf []*node23[T]) spine[T] {
	if len(pre) == 0 {
		m, deeper, ok := spinePopFront[T](mid)
		if !ok {
			return spineFromDigit(suf)
		}
		assert(m.kids != nil, "spine node must be an inner node")
		pre = m.kids
		mid = deeper
	}
	return spineDeepOf(pre, mid, suf)
}

// spineDeepR builds a spine from a possibly-empty suffix digit; mirror of
// spineDeepL.
func spineDeepR[T any](pre []*node23[T], mid spine[T], suf []*node23[T]) spine[T] {
	if len(suf) == 0 {
		m, deeper, ok := spinePopBack[T](mid)
		if !ok {
			return spineFromDigit(pre)
		}
		assert(m.kids != nil, "spine node must be an inner node")
		suf = m.kids
		mid = deeper
	}
	return spineDeepOf(pre, mid, suf)
}
