package list

import "testing"

func TestEmptyList(t *testing.T) {
	var l *List[int]
	if !l.IsEmpty() || l.Len() != 0 {
		t.Errorf("nil list should be empty")
	}
	if _, ok := l.Head(); ok {
		t.Errorf("expected no head on empty list")
	}
	if l.Tail() != nil {
		t.Errorf("expected nil tail on empty list")
	}
	if l.String() != "()" {
		t.Errorf("unexpected rendering %q", l.String())
	}
}

func TestConsAndSharing(t *testing.T) {
	l := Of(2, 3)
	m := l.Cons(1)
	n := l.Cons(0)
	if m.Len() != 3 || n.Len() != 3 || l.Len() != 2 {
		t.Fatalf("unexpected lengths %d/%d/%d", m.Len(), n.Len(), l.Len())
	}
	if m.Tail() != l || n.Tail() != l {
		t.Errorf("expected both lists to share the common tail")
	}
	if m.String() != "(1 2 3)" {
		t.Errorf("unexpected rendering %q", m.String())
	}
}

func TestEach(t *testing.T) {
	l := Of(0, 1, 2, 3, 4)
	next := 0
	l.Each(func(x int) bool {
		if x != next {
			t.Fatalf("expected item %d, have %d", next, x)
		}
		next++
		return true
	})
	if next != 5 {
		t.Errorf("expected 5 visits, have %d", next)
	}
	visited := 0
	l.Each(func(x int) bool {
		visited++
		return x < 2
	})
	if visited != 3 {
		t.Errorf("expected early break after 3 visits, have %d", visited)
	}
}

func TestOption(t *testing.T) {
	if v := None[int]().OrElse(7); v != 7 {
		t.Errorf("expected fallback 7, have %d", v)
	}
	if v, ok := Some(3).Get(); !ok || v != 3 {
		t.Errorf("expected Some(3), have %d (ok=%v)", v, ok)
	}
	if o := HeadOption(Of(5, 6)); o.IsNone() {
		t.Errorf("expected head option on non-empty list")
	} else if v, _ := o.Get(); v != 5 {
		t.Errorf("expected head 5, have %d", v)
	}
	if !HeadOption[int](nil).IsNone() {
		t.Errorf("expected empty head option on empty list")
	}
}
