package gohost

import (
	"errors"
	"go/parser"
	"strings"
	"testing"

	"github.com/npillmayer/reassoc/expr"
	"github.com/npillmayer/reassoc/rewrite"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const dotProduct = `package demo

import "example.com/numeric/fastmath"

func dot(x, y []float64) float64 {
	var s float64
	for i := range x {
		s = fastmath.Relaxed(s + x[i]*y[i])
	}
	return s
}

func poly(a, b, c, t float64) float64 {
	return fastmath.Relaxed((a*t+b)*t - c)
}
`

func TestRewriteSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reassoc.gohost")
	defer teardown()
	//
	out, count, err := RewriteSource("dot.go", []byte(dotProduct), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("expected 2 rewritten calls, have %d", count)
	}
	src := string(out)
	t.Logf("\n%s", src)
	for _, expected := range []string{
		"s = fastmath.Sum(s, fastmath.Product(x[i], y[i]))",
		"return fastmath.Sum(fastmath.Product((fastmath.Sum(fastmath.Product(a, t), b)), t), -c)",
		`import "example.com/numeric/fastmath"`,
	} {
		if !strings.Contains(src, expected) {
			t.Errorf("expected output to contain %q", expected)
		}
	}
	if strings.Contains(src, "Relaxed") {
		t.Errorf("marker calls left in output")
	}
}

const noArithmetic = `package demo

import (
	"fmt"

	"example.com/numeric/fastmath"
)

func ratio(a, b float64) {
	fmt.Println(fastmath.Relaxed(a / b))
}
`

func TestUnusedImportRemoved(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reassoc.gohost")
	defer teardown()
	//
	out, count, err := RewriteSource("ratio.go", []byte(noArithmetic), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	src := string(out)
	if count != 1 || !strings.Contains(src, "fmt.Println(a / b)") {
		t.Errorf("expected marker call to be replaced by 'a / b', have\n%s", src)
	}
	if strings.Contains(src, "fastmath") {
		t.Errorf("expected fastmath import to be removed, have\n%s", src)
	}
}

const emptyMarker = `package demo

import "example.com/numeric/fastmath"

var z = fastmath.Relaxed()
`

func TestMissingOperand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reassoc.gohost")
	defer teardown()
	//
	_, _, err := RewriteSource("empty.go", []byte(emptyMarker), DefaultConfig())
	if err == nil {
		t.Fatalf("expected an error for an empty marker call")
	}
	if !errors.Is(err, rewrite.ErrMissingOperand) {
		t.Errorf("expected MissingOperand, have %v", err)
	}
	if !strings.Contains(err.Error(), "empty.go:5:9") {
		t.Errorf("expected error to carry the source position, have %q", err.Error())
	}
}

const twoOperands = `package demo

import "example.com/numeric/fastmath"

var z = fastmath.Relaxed(a+b, c*d)
`

func TestSurplusArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reassoc.gohost")
	defer teardown()
	//
	out, _, err := RewriteSource("surplus.go", []byte(twoOperands), DefaultConfig())
	if err == nil {
		t.Fatalf("expected an error for a marker call with two arguments, have\n%s", out)
	}
	if !errors.Is(err, ErrSurplusArguments) {
		t.Errorf("expected ErrSurplusArguments, have %v", err)
	}
	if !strings.Contains(err.Error(), "surplus.go:5:9") {
		t.Errorf("expected error to carry the source position, have %q", err.Error())
	}
	if out != nil {
		t.Errorf("expected no output for a failed rewrite")
	}
}

func TestCustomNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reassoc.gohost")
	defer teardown()
	//
	src := "package p\n\nfunc f(a, b float64) float64 { return relax(a - b) }\n"
	cfg := Config{Marker: "relax", SumFn: "vec.Add", ProductFn: "vec.Mul"}
	out, count, err := RewriteSource("p.go", []byte(src), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 || !strings.Contains(string(out), "return vec.Add(a, -b)") {
		t.Errorf("unexpected output\n%s", out)
	}
}

func TestConversionRoundTrip(t *testing.T) {
	for _, src := range []string{
		"a + b*c",
		"-(x.y - 3.5)",
		`f(a, "s", 'c', 0x1F, 2i)`,
		"m[k] + s[1:2]",
		"g(xs...)",
	} {
		x, err := parser.ParseExpr(src)
		if err != nil {
			t.Fatal(err)
		}
		e := FromGo(x)
		back, err := ToGo(e)
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if !expr.Equal(FromGo(back), e) {
			t.Errorf("%q: round trip changed the tree to %s", src, expr.ListString(FromGo(back)))
		}
	}
}

func TestFromGoKinds(t *testing.T) {
	x, _ := parser.ParseExpr(`pkg.F(a[0], "s") + -b`)
	e := FromGo(x)
	expected := "(+ (#call pkg.F #<a[0]> \"s\") (#prefix - b))"
	if s := expr.ListString(e); s != expected {
		t.Errorf("expected %s, have %s", expected, s)
	}
	lit := e.(*expr.BinaryOp).Left.(*expr.Call).Args[1].Value.(*expr.Literal)
	if lit.Type != expr.Text {
		t.Errorf("expected string literal to be of type Text")
	}
}

func TestToGoErrors(t *testing.T) {
	bad := []expr.Expr{
		expr.Assign(expr.Ident("x"), expr.Ident("y")),
		expr.Group(expr.Ident("a"), expr.Ident("b")),
		expr.Binary("<=>", expr.Ident("a"), expr.Ident("b")),
		expr.CallWith(expr.Ident("f"), expr.LabeledArg("x", expr.Ident("a"))),
		expr.Binary("+=", expr.Ident("a"), expr.Ident("b")),
	}
	for _, e := range bad {
		if _, err := ToGo(e); err == nil {
			t.Errorf("expected %s to have no Go form", e)
		}
	}
}
