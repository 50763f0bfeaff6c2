package expr

import (
	"golang.org/x/exp/slices"
)

// IsNil is a predicate: is e nil, either as an interface or as a nil pointer
// of one of the node types?
func IsNil(e Expr) bool {
	switch x := e.(type) {
	case nil:
		return true
	case *Identifier:
		return x == nil
	case *Literal:
		return x == nil
	case *BinaryOp:
		return x == nil
	case *PrefixOp:
		return x == nil
	case *Grouping:
		return x == nil
	case *Call:
		return x == nil
	case *Assignment:
		return x == nil
	case *Opaque:
		return x == nil
	}
	return false
}

// Equal compares two trees structurally. Trees are equal if their node kinds,
// operator symbols, labels and leaf contents are equal, recursively.
// Spans and opaque payloads are ignored. Two nil trees are equal, where a nil
// pointer of a node type counts as nil (see IsNil).
func Equal(a, b Expr) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Identifier:
		return x.Name == b.(*Identifier).Name
	case *Literal:
		y := b.(*Literal)
		return x.Type == y.Type && x.Raw == y.Raw
	case *BinaryOp:
		y := b.(*BinaryOp)
		return x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *PrefixOp:
		y := b.(*PrefixOp)
		return x.Op == y.Op && Equal(x.Operand, y.Operand)
	case *Grouping:
		return slices.EqualFunc(x.Elements, b.(*Grouping).Elements, Equal)
	case *Call:
		y := b.(*Call)
		return Equal(x.Callee, y.Callee) && slices.EqualFunc(x.Args, y.Args, equalArg)
	case *Assignment:
		y := b.(*Assignment)
		return Equal(x.Target, y.Target) && Equal(x.Value, y.Value)
	case *Opaque:
		return x.Text == b.(*Opaque).Text
	}
	tracer().Errorf("unknown node type %T in comparison", a)
	return false
}

func equalArg(a, b Argument) bool {
	return a.Label == b.Label && Equal(a.Value, b.Value)
}

// Clone returns a deep copy of a tree. The copy shares no node with the
// original, but opaque payloads are copied by reference. Nil nodes clone to nil.
func Clone(e Expr) Expr {
	if IsNil(e) {
		return nil
	}
	switch x := e.(type) {
	case *Identifier:
		c := *x
		return &c
	case *Literal:
		c := *x
		return &c
	case *BinaryOp:
		return &BinaryOp{Op: x.Op, Left: Clone(x.Left), Right: Clone(x.Right), Span: x.Span}
	case *PrefixOp:
		return &PrefixOp{Op: x.Op, Operand: Clone(x.Operand), Span: x.Span}
	case *Grouping:
		return &Grouping{Elements: cloneAll(x.Elements), Span: x.Span}
	case *Call:
		args := make([]Argument, len(x.Args))
		for i, a := range x.Args {
			args[i] = Argument{Label: a.Label, Value: Clone(a.Value)}
		}
		return &Call{Callee: Clone(x.Callee), Args: args, Span: x.Span}
	case *Assignment:
		return &Assignment{Target: Clone(x.Target), Value: Clone(x.Value), Span: x.Span}
	case *Opaque:
		c := *x
		return &c
	}
	tracer().Errorf("unknown node type %T, cannot clone", e)
	return e
}

func cloneAll(l []Expr) []Expr {
	if l == nil {
		return nil
	}
	c := make([]Expr, len(l))
	for i, e := range l {
		c[i] = Clone(e)
	}
	return c
}
