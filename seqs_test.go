package seqs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func expectElements(t *testing.T, s Seq[int], want []int) {
	t.Helper()
	if err := s.Check(); err != nil {
		t.Fatalf("structure check failed: %v", err)
	}
	if s.Len() != len(want) {
		t.Fatalf("expected length %d, have %d", len(want), s.Len())
	}
	got := s.ToSlice()
	for i, x := range want {
		if got[i] != x {
			t.Fatalf("expected element %d at %d, have %d (seq = %s)", x, i, got[i], s)
		}
	}
}

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestEmptySeq(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var s Seq[int]
	if !s.IsEmpty() || s.NonEmpty() {
		t.Errorf("zero value should be the empty sequence")
	}
	if s.Len() != 0 {
		t.Errorf("expected length 0, have %d", s.Len())
	}
	if _, err := s.Head(); err != ErrEmptySeq {
		t.Errorf("expected ErrEmptySeq from Head, have %v", err)
	}
	if _, err := s.Last(); err != ErrEmptySeq {
		t.Errorf("expected ErrEmptySeq from Last, have %v", err)
	}
	if _, err := s.Tail(); err != ErrEmptySeq {
		t.Errorf("expected ErrEmptySeq from Tail, have %v", err)
	}
	if _, err := s.At(0); err != ErrIndexOutOfBounds {
		t.Errorf("expected ErrIndexOutOfBounds from At, have %v", err)
	}
}

func TestAppendGrowth(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := Seq[int]{}
	for i := 0; i < 150; i++ {
		s = s.Append(i)
		if err := s.Check(); err != nil {
			t.Fatalf("structure check failed after %d appends: %v", i+1, err)
		}
	}
	expectElements(t, s, ints(150))
}

func TestPrependGrowth(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := Seq[int]{}
	for i := 149; i >= 0; i-- {
		s = s.Prepend(i)
		if err := s.Check(); err != nil {
			t.Fatalf("structure check failed with %d elements: %v", s.Len(), err)
		}
	}
	expectElements(t, s, ints(150))
}

func TestPopFrontRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := FromSlice(ints(100))
	for i := 0; i < 100; i++ {
		x, rest, ok := s.PopFront()
		if !ok {
			t.Fatalf("unexpected empty view after %d pops", i)
		}
		if x != i {
			t.Fatalf("expected element %d, have %d", i, x)
		}
		if err := rest.Check(); err != nil {
			t.Fatalf("structure check failed after pop %d: %v", i, err)
		}
		s = rest
	}
	if _, _, ok := s.PopFront(); ok {
		t.Errorf("expected empty view after popping all elements")
	}
}

func TestPopBackRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := FromSlice(ints(100))
	for i := 99; i >= 0; i-- {
		x, rest, ok := s.PopBack()
		if !ok {
			t.Fatalf("unexpected empty view at element %d", i)
		}
		if x != i {
			t.Fatalf("expected element %d, have %d", i, x)
		}
		s = rest
	}
	if !s.IsEmpty() {
		t.Errorf("expected empty sequence after popping all elements")
	}
}

func TestConsThenUncons(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for n := 0; n <= 40; n++ {
		s := FromSlice(ints(n))
		x, rest, ok := s.Prepend(-1).PopFront()
		if !ok || x != -1 {
			t.Fatalf("n=%d: expected to pop -1 back off, have %d (ok=%v)", n, x, ok)
		}
		expectElements(t, rest, ints(n))
		y, rest2, ok := s.Append(-2).PopBack()
		if !ok || y != -2 {
			t.Fatalf("n=%d: expected to pop -2 back off, have %d (ok=%v)", n, y, ok)
		}
		expectElements(t, rest2, ints(n))
	}
}

func TestPersistence(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := SeqOf(1, 2, 3)
	u, err := s.Update(0, 9)
	if err != nil {
		t.Fatal(err)
	}
	expectElements(t, u, []int{9, 2, 3})
	expectElements(t, s, []int{1, 2, 3}) // original unchanged
	//
	v := s.Prepend(0).Append(4)
	expectElements(t, v, []int{0, 1, 2, 3, 4})
	expectElements(t, s, []int{1, 2, 3})
}

func TestSpecScenario(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := SeqOf(1, 2, 3)
	if s.Len() != 3 {
		t.Errorf("expected length 3, have %d", s.Len())
	}
	if x, _ := s.At(1); x != 2 {
		t.Errorf("expected element 2 at index 1, have %d", x)
	}
	left, right, err := Split(s, 1)
	if err != nil {
		t.Fatal(err)
	}
	expectElements(t, left, []int{1})
	expectElements(t, right, []int{2, 3})
	if _, _, err := Split(s, -1); err != ErrIndexOutOfBounds {
		t.Errorf("expected ErrIndexOutOfBounds from negative split, have %v", err)
	}
}

func TestSeqString(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := SeqOf("a", "b", "c")
	if s.String() != "⟨a b c⟩" {
		t.Errorf("unexpected rendering %q", s.String())
	}
}

func TestSeq2Dot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := FromSlice(ints(30))
	var buf bytes.Buffer
	Seq2Dot(s, &buf)
	dot := buf.String()
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Errorf("expected DOT output, have %q", dot)
	}
	if !strings.Contains(dot, "deep n=30") {
		t.Errorf("expected deep root in DOT output")
	}
}
