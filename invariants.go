package seqs

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Check validates structural sequence invariants: digit arities of 1–4,
// node arities of exactly 2 or 3, uniform node depth per spine level, and
// cached sizes matching true element counts everywhere.
//
// This checker is intentionally strict and should be used in tests while the
// implementation is evolving.
func (s Seq[T]) Check() error {
	switch t := s.tree.(type) {
	case nil:
		return nil
	case *singleTree[T]:
		return nil
	case *deepTree[T]:
		if err := checkDigitArity(len(t.pre), "prefix"); err != nil {
			return err
		}
		if err := checkDigitArity(len(t.suf), "suffix"); err != nil {
			return err
		}
		mcount, err := checkSpine[T](t.mid, 1)
		if err != nil {
			return err
		}
		total := len(t.pre) + mcount + len(t.suf)
		if total != t.size {
			return fmt.Errorf("%w: cached size %d, true count %d", ErrInvalidStructure, t.size, total)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown sequence variant", ErrInvalidStructure)
}

func checkDigitArity(n int, which string) error {
	if n < 1 || n > 4 {
		return fmt.Errorf("%w: %s digit arity %d outside [1,4]", ErrInvalidStructure, which, n)
	}
	return nil
}

// checkSpine validates one spine level, whose nodes must all have the given
// depth, and returns the level's true element count.
func checkSpine[T any](sp spine[T], depth int) (int, error) {
	switch t := sp.(type) {
	case nil:
		return 0, nil
	case *spineSingle[T]:
		return checkNode(t.node, depth)
	case *spineDeep[T]:
		if err := checkDigitArity(len(t.pre), "spine prefix"); err != nil {
			return 0, err
		}
		if err := checkDigitArity(len(t.suf), "spine suffix"); err != nil {
			return 0, err
		}
		total := 0
		for _, n := range t.pre {
			cnt, err := checkNode(n, depth)
			if err != nil {
				return 0, err
			}
			total += cnt
		}
		mcount, err := checkSpine[T](t.mid, depth+1)
		if err != nil {
			return 0, err
		}
		total += mcount
		for _, n := range t.suf {
			cnt, err := checkNode(n, depth)
			if err != nil {
				return 0, err
			}
			total += cnt
		}
		if total != t.size {
			return 0, fmt.Errorf("%w: spine cached size %d, true count %d", ErrInvalidStructure, t.size, total)
		}
		return total, nil
	}
	return 0, fmt.Errorf("%w: unknown spine variant", ErrInvalidStructure)
}

// checkNode validates a node of the expected depth (1 for leaf nodes) and
// returns its true element count.
func checkNode[T any](n *node23[T], depth int) (int, error) {
	if n == nil {
		return 0, fmt.Errorf("%w: nil node", ErrInvalidStructure)
	}
	if depth == 1 {
		if n.kids != nil || n.leafs == nil {
			return 0, fmt.Errorf("%w: node at leaf depth must hold raw elements", ErrInvalidStructure)
		}
		if len(n.leafs) < 2 || len(n.leafs) > 3 {
			return 0, fmt.Errorf("%w: leaf node arity %d outside [2,3]", ErrInvalidStructure, len(n.leafs))
		}
		if n.size != len(n.leafs) {
			return 0, fmt.Errorf("%w: leaf node cached size %d, true count %d", ErrInvalidStructure, n.size, len(n.leafs))
		}
		return n.size, nil
	}
	if n.leafs != nil || n.kids == nil {
		return 0, fmt.Errorf("%w: node above leaf depth must hold child nodes", ErrInvalidStructure)
	}
	if len(n.kids) < 2 || len(n.kids) > 3 {
		return 0, fmt.Errorf("%w: inner node arity %d outside [2,3]", ErrInvalidStructure, len(n.kids))
	}
	total := 0
	for _, k := range n.kids {
		cnt, err := checkNode(k, depth-1)
		if err != nil {
			return 0, err
		}
		total += cnt
	}
	if total != n.size {
		return 0, fmt.Errorf("%w: inner node cached size %d, true count %d", ErrInvalidStructure, n.size, total)
	}
	return total, nil
}
