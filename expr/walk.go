package expr

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/emirpasic/gods/utils"
)

// Children returns the direct children of a node, in order. For calls the
// callee comes first, followed by the argument values. Leafs return nil.
//
// The slice is freshly allocated; the children are not copied.
func Children(e Expr) []Expr {
	if IsNil(e) {
		return nil
	}
	switch x := e.(type) {
	case *BinaryOp:
		return []Expr{x.Left, x.Right}
	case *PrefixOp:
		return []Expr{x.Operand}
	case *Grouping:
		ch := make([]Expr, len(x.Elements))
		copy(ch, x.Elements)
		return ch
	case *Call:
		ch := make([]Expr, 0, len(x.Args)+1)
		ch = append(ch, x.Callee)
		for _, a := range x.Args {
			ch = append(ch, a.Value)
		}
		return ch
	case *Assignment:
		return []Expr{x.Target, x.Value}
	}
	return nil
}

// Inspect traverses a tree in pre-order (depth first, left to right). It calls
// f for every node; if f returns false, the children of the node are skipped.
//
// Inspect does not recurse, therefore the depth of trees is not limited by
// the goroutine stack.
func Inspect(e Expr, f func(Expr) bool) {
	if IsNil(e) {
		return
	}
	stack := arraystack.New()
	stack.Push(e)
	for !stack.Empty() {
		top, _ := stack.Pop()
		node := top.(Expr)
		if !f(node) {
			continue
		}
		ch := Children(node)
		for i := len(ch) - 1; i >= 0; i-- { // push right to left ⇒ pop left to right
			if !IsNil(ch[i]) {
				stack.Push(ch[i])
			}
		}
	}
}

// Operators collects the operator symbols of all binary and prefix operations
// in a tree. The result is a set of strings, sorted lexicographically.
func Operators(e Expr) *treeset.Set {
	ops := treeset.NewWith(utils.StringComparator)
	Inspect(e, func(node Expr) bool {
		switch x := node.(type) {
		case *BinaryOp:
			ops.Add(x.Op)
		case *PrefixOp:
			ops.Add(x.Op)
		}
		return true
	})
	return ops
}

// Count returns the number of nodes in a tree.
func Count(e Expr) int {
	n := 0
	Inspect(e, func(Expr) bool {
		n++
		return true
	})
	return n
}

// Depth returns the height of a tree. A leaf has depth 1, nil has depth 0.
func Depth(e Expr) int {
	if IsNil(e) {
		return 0
	}
	d := 0
	for _, ch := range Children(e) {
		if cd := Depth(ch); cd > d {
			d = cd
		}
	}
	return d + 1
}
