package expr

import (
	"testing"

	"github.com/npillmayer/reassoc"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEqualIgnoresSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reassoc.expr")
	defer teardown()
	//
	a := Binary("+", &Identifier{Name: "a", Span: reassoc.Span{0, 1}}, Num("1"))
	b := Binary("+", Ident("a"), &Literal{Raw: "1", Span: reassoc.Span{4, 5}})
	b.Span = reassoc.Span{0, 5}
	if !Equal(a, b) {
		t.Errorf("expected %s and %s to be equal", ListString(a), ListString(b))
	}
}

func TestEqualDistinguishes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reassoc.expr")
	defer teardown()
	//
	pairs := []struct {
		a, b Expr
	}{
		{Ident("a"), Ident("b")},
		{Ident("a"), Num("1")},
		{Num("1"), Str("1")},
		{Binary("+", Ident("a"), Ident("b")), Binary("-", Ident("a"), Ident("b"))},
		{Binary("+", Ident("a"), Ident("b")), Binary("+", Ident("b"), Ident("a"))},
		{Group(Ident("a")), Group(Ident("a"), Ident("b"))},
		{CallOf(Ident("f"), Ident("a")), CallOf(Ident("g"), Ident("a"))},
		{CallOf(Ident("f"), Ident("a")), CallWith(Ident("f"), LabeledArg("x", Ident("a")))},
		{Assign(Ident("x"), Ident("y")), Assign(Ident("y"), Ident("x"))},
		{OpaqueOf("a[i]"), OpaqueOf("a[j]")},
		{Prefix("-", Ident("a")), Prefix("!", Ident("a"))},
		{Ident("a"), nil},
	}
	for i, p := range pairs {
		if Equal(p.a, p.b) {
			t.Errorf("#%d: expected %s ≠ %s", i, ListString(p.a), ListString(p.b))
		}
	}
	if !Equal(nil, nil) {
		t.Errorf("expected nil trees to be equal")
	}
}

func TestOpaquePayloadIgnored(t *testing.T) {
	a := &Opaque{Text: "a[i]", Payload: 1}
	b := &Opaque{Text: "a[i]", Payload: "something else"}
	if !Equal(a, b) {
		t.Errorf("opaque payloads should not be compared")
	}
}

func TestClone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reassoc.expr")
	defer teardown()
	//
	orig := CallWith(Ident("f"),
		LabeledArg("x", Binary("*", Ident("a"), Group(Prefix("-", Num("2"))))),
		Arg(Assign(Ident("y"), Str(`"s"`))))
	c := Clone(orig).(*Call)
	if !Equal(orig, c) {
		t.Fatalf("clone differs: %s vs %s", ListString(orig), ListString(c))
	}
	if c == orig || c.Callee == orig.Callee || c.Args[0].Value == orig.Args[0].Value {
		t.Errorf("clone shares nodes with original")
	}
	c.Args[0].Label = "z"
	if orig.Args[0].Label != "x" {
		t.Errorf("modifying the clone modified the original")
	}
}

func TestInspectOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reassoc.expr")
	defer teardown()
	//
	e := CallOf(Ident("f"), Binary("+", Ident("a"), Ident("b")), Ident("c"))
	var visited []string
	Inspect(e, func(node Expr) bool {
		visited = append(visited, node.Kind().String()+":"+node.String())
		return true
	})
	expected := []string{"call:f(a + b, c)", "identifier:f", "binary:a + b",
		"identifier:a", "identifier:b", "identifier:c"}
	if len(visited) != len(expected) {
		t.Fatalf("expected %d nodes visited, have %d: %v", len(expected), len(visited), visited)
	}
	for i := range expected {
		if visited[i] != expected[i] {
			t.Errorf("#%d: expected %q, have %q", i, expected[i], visited[i])
		}
	}
}

func TestInspectSkip(t *testing.T) {
	e := Group(Binary("+", Ident("a"), Ident("b")), Ident("c"))
	n := 0
	Inspect(e, func(node Expr) bool {
		n++
		return node.Kind() != BinaryKind
	})
	if n != 3 { // group, binary, c
		t.Errorf("expected 3 visits, have %d", n)
	}
}

func TestOperators(t *testing.T) {
	e := Assign(Ident("x"), Binary("*", Prefix("-", Ident("a")), Binary("+", Ident("b"), Ident("c"))))
	ops := Operators(e)
	values := ops.Values()
	expected := []string{"*", "+", "-"}
	if len(values) != len(expected) {
		t.Fatalf("expected operators %v, have %v", expected, values)
	}
	for i, v := range values {
		if v.(string) != expected[i] {
			t.Errorf("expected operators %v, have %v", expected, values)
		}
	}
}

func TestCountAndDepth(t *testing.T) {
	e := Binary("+", Ident("a"), Binary("*", Ident("b"), Ident("c")))
	if n := Count(e); n != 5 {
		t.Errorf("expected 5 nodes, have %d", n)
	}
	if d := Depth(e); d != 3 {
		t.Errorf("expected depth 3, have %d", d)
	}
	if Depth(nil) != 0 || Count(nil) != 0 {
		t.Errorf("expected empty tree to have depth and count 0")
	}
}

func TestStrings(t *testing.T) {
	e := Assign(Ident("x"), CallWith(Ident("fastmath.Sum"),
		Arg(Ident("x")), LabeledArg("by", Prefix("-", Group(Binary("/", Ident("a"), Num("2")))))))
	if s := e.String(); s != "x = fastmath.Sum(x, by: -(a / 2))" {
		t.Errorf("unexpected infix form: %s", s)
	}
	if s := ListString(e); s != "(#assign x (#call fastmath.Sum x by:(#prefix - (#group (/ a 2)))))" {
		t.Errorf("unexpected s-expression: %s", s)
	}
	if s := ListString(OpaqueOf("a[1]")); s != "#<a[1]>" {
		t.Errorf("unexpected s-expression for opaque node: %s", s)
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reassoc.expr")
	defer teardown()
	//
	a := CallWith(Ident("f"), LabeledArg("x", Binary("+", Ident("a"), Num("1"))))
	b := Clone(a)
	c := CallWith(Ident("f"), Arg(Binary("+", Ident("a"), Num("1"))))
	ha, err := Fingerprint(a)
	if err != nil {
		t.Fatal(err)
	}
	hb, _ := Fingerprint(b)
	hc, _ := Fingerprint(c)
	if ha != hb {
		t.Errorf("equal trees should have equal fingerprints")
	}
	if ha == hc {
		t.Errorf("labels should change the fingerprint")
	}
	hn, _ := Fingerprint(Num("1"))
	hs, _ := Fingerprint(Str("1"))
	if hn == hs {
		t.Errorf("literal type should change the fingerprint")
	}
}

func TestIsCompoundAssignment(t *testing.T) {
	for _, op := range []string{"+=", "-=", "*=", "/=", "<<="} {
		if !IsCompoundAssignment(op) {
			t.Errorf("expected %q to be a compound assignment", op)
		}
	}
	for _, op := range []string{"=", "==", "!=", "<=", ">=", "+", "-"} {
		if IsCompoundAssignment(op) {
			t.Errorf("expected %q not to be a compound assignment", op)
		}
	}
}

func TestTypedNilNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reassoc.expr")
	defer teardown()
	//
	var id *Identifier
	var call *Call
	if !IsNil(id) || !IsNil(call) || !IsNil(nil) || IsNil(Ident("a")) {
		t.Errorf("IsNil misclassifies nodes")
	}
	if !Equal(id, nil) || !Equal(nil, call) || !Equal(id, call) {
		t.Errorf("expected nil pointers to compare equal to nil")
	}
	if Equal(id, Ident("a")) || Equal(Ident("a"), call) {
		t.Errorf("expected nil pointer to differ from identifier")
	}
	if Clone(id) != nil {
		t.Errorf("expected clone of nil pointer to be nil")
	}
	if n := Count(id); n != 0 {
		t.Errorf("expected nil pointer to have no nodes, have %d", n)
	}
	e := Binary("+", Ident("a"), id)
	if s := ListString(e); s != "(+ a nil)" {
		t.Errorf("unexpected s-expression %s", s)
	}
	if Depth(e) != 2 || Count(e) != 2 {
		t.Errorf("expected nil pointer child to be skipped, depth=%d, count=%d", Depth(e), Count(e))
	}
}
