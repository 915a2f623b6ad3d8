package seqs

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Concat concatenates sequences and returns a new sequence. Concatenating
// two sequences costs O(log min(m,n)); neither input is modified.
func Concat[T any](s Seq[T], others ...Seq[T]) Seq[T] {
	for _, o := range others {
		s = concat2(s, o)
	}
	return s
}

func concat2[T any](a, b Seq[T]) Seq[T] {
	ta, aok := a.tree.(*deepTree[T])
	tb, bok := b.tree.(*deepTree[T])
	if !aok {
		if a.tree == nil {
			return b
		}
		return b.Prepend(a.tree.(*singleTree[T]).item)
	}
	if !bok {
		if b.tree == nil {
			return a
		}
		return a.Append(b.tree.(*singleTree[T]).item)
	}
	// Keep a's prefix and b's suffix. The two inner digits — up to 8 raw
	// elements — are regrouped into leaf nodes and spliced between the
	// two spines.
	gather := make([]T, 0, len(ta.suf)+len(tb.pre))
	gather = append(gather, ta.suf...)
	gather = append(gather, tb.pre...)
	mid := spineConcat(ta.mid, packLeaves(gather), tb.mid)
	return Seq[T]{tree: &deepTree[T]{
		size: ta.size + tb.size,
		pre:  ta.pre,
		mid:  mid,
		suf:  tb.suf,
	}}
}

// spineConcat merges two spines around a list of stray nodes, recursing one
// level deeper with the inner digits regrouped by packNodes.
func spineConcat[T any](l spine[T], ns []*node23[T], r spine[T]) spine[T] {
	if l == nil {
		for i := len(ns) - 1; i >= 0; i-- {
			r = spinePushFront(r, ns[i])
		}
		return r
	}
	if r == nil {
		for _, n := range ns {
			l = spinePushBack(l, n)
		}
		return l
	}
	if ls, ok := l.(*spineSingle[T]); ok {
		return spinePushFront(spineConcat(nil, ns, r), ls.node)
	}
	if rs, ok := r.(*spineSingle[T]); ok {
		return spinePushBack(spineConcat(l, ns, nil), rs.node)
	}
	ld := l.(*spineDeep[T])
	rd := r.(*spineDeep[T])
	gather := make([]*node23[T], 0, len(ld.suf)+len(ns)+len(rd.pre))
	gather = append(gather, ld.suf...)
	gather = append(gather, ns...)
	gather = append(gather, rd.pre...)
	mid := spineConcat(ld.mid, packNodes(gather), rd.mid)
	return &spineDeep[T]{
		size: ld.size + nodeDigitSize(ns) + rd.size,
		pre:  ld.pre,
		mid:  mid,
		suf:  rd.suf,
	}
}

// --- Splitting -------------------------------------------------------------

// Split splits a sequence into two new sequences right before position i.
// Split(S,i) => split S into S1 and S2, with S1=e0,…,ei-1 and S2=ei,…,en.
// A negative i is out of bounds; an i at or past the end yields (S, empty).
func Split[T any](s Seq[T], i int) (Seq[T], Seq[T], error) {
	if i < 0 {
		return Seq[T]{}, Seq[T]{}, ErrIndexOutOfBounds
	}
	if i >= s.Len() {
		return s, Seq[T]{}, nil
	}
	left, x, right := splitOut(s, i)
	return left, right.Prepend(x), nil
}

// Insert inserts an element into s at index i, resulting in a new sequence.
// An i at or past the end appends.
func Insert[T any](s Seq[T], v T, i int) (Seq[T], error) {
	left, right, err := Split(s, i)
	if err != nil {
		return Seq[T]{}, err
	}
	return Concat(left, right.Prepend(v)), nil
}

// splitOut cuts out the element at index i, reassembling the elements before
// and after it into two full sequences. Callers guarantee 0 ≤ i < Len.
func splitOut[T any](s Seq[T], i int) (Seq[T], T, Seq[T]) {
	var zero T
	switch t := s.tree.(type) {
	case *singleTree[T]:
		return Seq[T]{}, t.item, Seq[T]{}
	case *deepTree[T]:
		if i < len(t.pre) {
			before, x, after := splitDigit(t.pre, i)
			return seqFromDigit(before), x, deepL(after, t.mid, t.suf)
		}
		i -= len(t.pre)
		if m := spineLen[T](t.mid); i < m {
			lsp, n, j, rsp := spineSplit[T](t.mid, i)
			assert(n.leafs != nil, "first spine level must hold leaf nodes")
			before, x, after := splitDigit(n.leafs, j)
			return deepR(t.pre, lsp, before), x, deepL(after, rsp, t.suf)
		} else {
			before, x, after := splitDigit(t.suf, i-m)
			return deepR(t.pre, t.mid, before), x, seqFromDigit(after)
		}
	}
	assert(false, "split descent into empty sequence")
	return Seq[T]{}, zero, Seq[T]{}
}

// splitDigit cuts a digit of raw elements around position i.
func splitDigit[T any](d []T, i int) ([]T, T, []T) {
	return d[:i], d[i], d[i+1:]
}

// spineSplit splits a spine around the node containing element index i.
// It returns the left spine, the node, the element index local to that
// node, and the right spine.
func spineSplit[T any](sp spine[T], i int) (spine[T], *node23[T], int, spine[T]) {
	switch t := sp.(type) {
	case *spineSingle[T]:
		return nil, t.node, i, nil
	case *spineDeep[T]:
		if p := nodeDigitSize(t.pre); i < p {
			before, n, j, after := splitNodeDigit(t.pre, i)
			return spineFromDigit(before), n, j, spineDeepL(after, t.mid, t.suf)
		} else {
			i -= p
		}
		if m := spineLen[T](t.mid); i < m {
			lsp, mnode, j, rsp := spineSplit[T](t.mid, i)
			assert(mnode.kids != nil, "deeper spine levels must hold inner nodes")
			before, n, j2, after := splitNodeDigit(mnode.kids, j)
			left := spineDeepR(t.pre, lsp, before)
			right := spineDeepL(after, rsp, t.suf)
			return left, n, j2, right
		} else {
			before, n, j, after := splitNodeDigit(t.suf, i-m)
			return spineDeepR(t.pre, t.mid, before), n, j, spineFromDigit(after)
		}
	}
	assert(false, "split descent into empty spine")
	return nil, nil, 0, nil
}

// Reverse returns a sequence with the elements in reverse order.
func (s Seq[T]) Reverse() Seq[T] {
	r := Seq[T]{}
	s.Each(func(x T) bool {
		r = r.Prepend(x)
		return true
	})
	return r
}
