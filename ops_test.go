package seqs

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConcatIdentity(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := FromSlice(ints(20))
	expectElements(t, Concat(Seq[int]{}, s), ints(20))
	expectElements(t, Concat(s, Seq[int]{}), ints(20))
	expectElements(t, Concat(Seq[int]{}, Seq[int]{}), nil)
}

func TestConcatSizes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for m := 0; m <= 33; m++ {
		for n := 0; n <= 33; n++ {
			a := FromSlice(ints(m))
			b := Map(FromSlice(ints(n)), func(x int) int { return m + x })
			c := Concat(a, b)
			expectElements(t, c, ints(m+n))
		}
	}
}

func TestConcatAssociativity(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	a := SeqOf(0, 1, 2, 3, 4)
	b := SeqOf(5, 6)
	c := SeqOf(7, 8, 9, 10, 11, 12, 13)
	left := Concat(Concat(a, b), c)
	right := Concat(a, Concat(b, c))
	expectElements(t, left, ints(14))
	expectElements(t, right, ints(14))
}

func TestRepeatedSmallConcat(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// Build a 100-element sequence out of small pieces: 1 element, then
	// piece after piece of 7, and compare against the same 100 elements
	// built via repeated appends.
	s := SeqOf(0)
	next := 1
	for next < 100 {
		piece := Seq[int]{}
		for i := 0; i < 7 && next+i < 100; i++ {
			piece = piece.Append(next + i)
		}
		next += piece.Len()
		s = Concat(s, piece)
		if err := s.Check(); err != nil {
			t.Fatalf("structure check failed at length %d: %v", s.Len(), err)
		}
	}
	expectElements(t, s, ints(100))
}

func TestSplitThenConcatReconstructs(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for n := 0; n <= 65; n++ {
		s := FromSlice(ints(n))
		for i := 0; i <= n+1; i++ {
			left, right, err := Split(s, i)
			if err != nil {
				t.Fatalf("n=%d i=%d: %v", n, i, err)
			}
			if i >= n {
				if left.Len() != n || right.Len() != 0 {
					t.Fatalf("n=%d i=%d: split past the end must keep everything left", n, i)
				}
			} else if left.Len() != i || right.Len() != n-i {
				t.Fatalf("n=%d i=%d: expected halves %d/%d, have %d/%d",
					n, i, i, n-i, left.Len(), right.Len())
			}
			if err := left.Check(); err != nil {
				t.Fatalf("n=%d i=%d: left half: %v", n, i, err)
			}
			if err := right.Check(); err != nil {
				t.Fatalf("n=%d i=%d: right half: %v", n, i, err)
			}
			expectElements(t, Concat(left, right), ints(n))
		}
		expectElements(t, s, ints(n)) // input untouched
	}
}

func TestInsert(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := SeqOf(0, 1, 3, 4)
	u, err := Insert(s, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	expectElements(t, u, []int{0, 1, 2, 3, 4})
	expectElements(t, s, []int{0, 1, 3, 4})
	//
	past, err := Insert(s, 9, 99) // past the end appends
	if err != nil {
		t.Fatal(err)
	}
	expectElements(t, past, []int{0, 1, 3, 4, 9})
	if _, err := Insert(s, 9, -1); err != ErrIndexOutOfBounds {
		t.Errorf("expected ErrIndexOutOfBounds, have %v", err)
	}
}

func TestAtAllIndexes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := FromSlice(ints(130))
	for i := 0; i < 130; i++ {
		x, err := s.At(i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if x != i {
			t.Fatalf("expected element %d at index %d, have %d", i, i, x)
		}
	}
	if _, err := s.At(130); err != ErrIndexOutOfBounds {
		t.Errorf("expected ErrIndexOutOfBounds, have %v", err)
	}
	if _, err := s.At(-1); err != ErrIndexOutOfBounds {
		t.Errorf("expected ErrIndexOutOfBounds, have %v", err)
	}
}

func TestUpdateAllIndexes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := FromSlice(ints(80))
	for i := 0; i < 80; i++ {
		u, err := s.Update(i, 1000+i)
		if err != nil {
			t.Fatalf("Update(%d): %v", i, err)
		}
		if err := u.Check(); err != nil {
			t.Fatalf("Update(%d): %v", i, err)
		}
		for j := 0; j < 80; j++ {
			want := j
			if j == i {
				want = 1000 + i
			}
			if x, _ := u.At(j); x != want {
				t.Fatalf("after Update(%d): expected %d at %d, have %d", i, want, j, x)
			}
		}
	}
	expectElements(t, s, ints(80)) // original untouched throughout
	if _, err := s.Update(80, 0); err != ErrIndexOutOfBounds {
		t.Errorf("expected ErrIndexOutOfBounds, have %v", err)
	}
}

func TestReverse(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := FromSlice(ints(50))
	r := s.Reverse()
	if err := r.Check(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 50; i++ {
		if x, _ := r.At(i); x != 49-i {
			t.Fatalf("expected %d at index %d of reversal, have %d", 49-i, i, x)
		}
	}
	expectElements(t, r.Reverse(), ints(50))
}

func TestPackingRuleAgreement(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// packLeaves and packNodes must follow the identical grouping rule:
	// groups of 3, with a remainder of 2 or 4 split into groups of 2.
	wantGroups := map[int][]int{
		2: {2}, 3: {3}, 4: {2, 2}, 5: {3, 2}, 6: {3, 3},
		7: {3, 2, 2}, 8: {3, 3, 2}, 9: {3, 3, 3}, 10: {3, 3, 2, 2},
		11: {3, 3, 3, 2}, 12: {3, 3, 3, 3},
	}
	for k, want := range wantGroups {
		leaves := packLeaves(make([]int, k))
		if len(leaves) != len(want) {
			t.Fatalf("packLeaves(%d): expected %d groups, have %d", k, len(want), len(leaves))
		}
		for g, n := range leaves {
			if len(n.leafs) != want[g] {
				t.Errorf("packLeaves(%d): group %d has arity %d, expected %d", k, g, len(n.leafs), want[g])
			}
		}
		kids := make([]*node23[int], k)
		for i := range kids {
			kids[i] = leaf2(0, 0)
		}
		inners := packNodes(kids)
		if len(inners) != len(want) {
			t.Fatalf("packNodes(%d): expected %d groups, have %d", k, len(want), len(inners))
		}
		for g, n := range inners {
			if len(n.kids) != want[g] {
				t.Errorf("packNodes(%d): group %d has arity %d, expected %d", k, g, len(n.kids), want[g])
			}
		}
	}
}
