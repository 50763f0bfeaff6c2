package main

import (
	"testing"

	"github.com/npillmayer/reassoc/rewrite"
	"github.com/npillmayer/reassoc/syntax"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSplitCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reassoc.trelax")
	defer teardown()
	//
	cmd, arg := splitCommand(":tree  a + b ")
	if cmd != ":tree" || arg != "a + b" {
		t.Errorf("expected (:tree, a + b), got (%s, %s)", cmd, arg)
	}
	cmd, arg = splitCommand(":quit")
	if cmd != ":quit" || arg != "" {
		t.Errorf("expected (:quit, ''), got (%s, %s)", cmd, arg)
	}
}

func TestLeveledList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reassoc.trelax")
	defer teardown()
	//
	e, err := syntax.Parse("x - y")
	if err != nil {
		t.Fatal(err)
	}
	e = rewrite.Rewrite(e)
	ll := leveledElem(e, nil, 0)
	expected := []struct {
		level int
		text  string
	}{
		{0, "call"},
		{1, "identifier fastmath.Sum"},
		{1, "identifier x"},
		{1, "prefix -"},
		{2, "identifier y"},
	}
	if len(ll) != len(expected) {
		t.Fatalf("expected %d list items, got %d: %v", len(expected), len(ll), ll)
	}
	for i, item := range ll {
		if item.Level != expected[i].level || item.Text != expected[i].text {
			t.Errorf("item #%d: expected %v, got %v", i, expected[i], item)
		}
	}
}

func TestEvalCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reassoc.trelax")
	defer teardown()
	//
	intp := &Intp{rw: rewrite.New()}
	if _, err := intp.Eval("a * (b + c)"); err != nil {
		t.Fatal(err)
	}
	if intp.last == nil || syntax.Format(intp.last) != "fastmath.Product(a, (fastmath.Sum(b, c)))" {
		t.Errorf("unexpected last result %v", intp.last)
	}
	if _, err := intp.Execute(":sexpr", ""); err != nil {
		t.Errorf("expected :sexpr to work on last result, got %v", err)
	}
	if _, err := intp.Eval(":bogus"); err == nil {
		t.Errorf("expected unknown command to fail")
	}
	if _, err := intp.Eval("#relaxed()"); err == nil {
		t.Errorf("expected empty invocation to fail")
	}
	if quit, _ := intp.Eval(":quit"); !quit {
		t.Errorf("expected :quit to quit")
	}
}
