package seqs

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// At returns the element at index i. The descent compares i against
// cumulative cached sizes, so no sub-tree is ever scanned.
func (s Seq[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= s.Len() {
		return zero, ErrIndexOutOfBounds
	}
	switch t := s.tree.(type) {
	case *singleTree[T]:
		return t.item, nil
	case *deepTree[T]:
		if i < len(t.pre) {
			return t.pre[i], nil
		}
		i -= len(t.pre)
		if m := spineLen[T](t.mid); i < m {
			return spineAt[T](t.mid, i), nil
		} else {
			return t.suf[i-m], nil
		}
	}
	assert(false, "bounds check passed on empty sequence")
	return zero, nil
}

// Update returns a sequence with the element at index i replaced by v.
// Only the O(log n) nodes on the path to the element are rebuilt; all
// other sub-trees are shared with the receiver. Cached sizes do not change.
func (s Seq[T]) Update(i int, v T) (Seq[T], error) {
	if i < 0 || i >= s.Len() {
		return Seq[T]{}, ErrIndexOutOfBounds
	}
	switch t := s.tree.(type) {
	case *singleTree[T]:
		return Seq[T]{tree: &singleTree[T]{item: v}}, nil
	case *deepTree[T]:
		if i < len(t.pre) {
			return Seq[T]{tree: &deepTree[T]{
				size: t.size,
				pre:  withItem(t.pre, i, v),
				mid:  t.mid,
				suf:  t.suf,
			}}, nil
		}
		i -= len(t.pre)
		if m := spineLen[T](t.mid); i < m {
			return Seq[T]{tree: &deepTree[T]{
				size: t.size,
				pre:  t.pre,
				mid:  spineWith(t.mid, i, v),
				suf:  t.suf,
			}}, nil
		} else {
			return Seq[T]{tree: &deepTree[T]{
				size: t.size,
				pre:  t.pre,
				mid:  t.mid,
				suf:  withItem(t.suf, i-m, v),
			}}, nil
		}
	}
	assert(false, "bounds check passed on empty sequence")
	return Seq[T]{}, nil
}

// spineAt descends into the spine level holding element index i.
func spineAt[T any](sp spine[T], i int) T {
	switch t := sp.(type) {
	case *spineSingle[T]:
		return nodeAt(t.node, i)
	case *spineDeep[T]:
		if p := nodeDigitSize(t.pre); i < p {
			return nodeDigitAt(t.pre, i)
		} else {
			i -= p
		}
		if m := spineLen[T](t.mid); i < m {
			return spineAt[T](t.mid, i)
		} else {
			return nodeDigitAt(t.suf, i-m)
		}
	}
	assert(false, "index descent into empty spine")
	var zero T
	return zero
}

// spineWith path-copies the spine level holding element index i.
func spineWith[T any](sp spine[T], i int, v T) spine[T] {
	switch t := sp.(type) {
	case *spineSingle[T]:
		return &spineSingle[T]{node: nodeWith(t.node, i, v)}
	case *spineDeep[T]:
		if p := nodeDigitSize(t.pre); i < p {
			return &spineDeep[T]{size: t.size, pre: nodeDigitWith(t.pre, i, v), mid: t.mid, suf: t.suf}
		} else {
			i -= p
		}
		if m := spineLen[T](t.mid); i < m {
			return &spineDeep[T]{size: t.size, pre: t.pre, mid: spineWith(t.mid, i, v), suf: t.suf}
		} else {
			return &spineDeep[T]{size: t.size, pre: t.pre, mid: t.mid, suf: nodeDigitWith(t.suf, i-m, v)}
		}
	}
	assert(false, "update descent into empty spine")
	return nil
}
