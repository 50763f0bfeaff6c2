package reassoc

import "testing"

func TestSpanExtend(t *testing.T) {
	s := Span{4, 7}
	if x := s.Extend(Span{1, 5}); x != (Span{1, 7}) {
		t.Errorf("expected (1…7), have %v", x)
	}
	if x := s.Extend(Span{}); x != s {
		t.Errorf("null span should be neutral, have %v", x)
	}
	if x := (Span{}).Extend(s); x != s {
		t.Errorf("null span should be neutral, have %v", x)
	}
	if s.Len() != 3 {
		t.Errorf("expected length 3, have %d", s.Len())
	}
	if s.String() != "(4…7)" {
		t.Errorf("unexpected span string %s", s)
	}
}
