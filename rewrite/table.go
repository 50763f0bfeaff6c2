package rewrite

import (
	"fmt"

	"github.com/npillmayer/reassoc/expr"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Rule is a function
//
//     rewriter × binary-op ↦ expression
//
// i.e., a rewrite rule for a binary operation. Rules are responsible for
// rewriting the operands themselves, by calling rw.Rewrite.
type Rule func(rw *Rewriter, op *expr.BinaryOp) expr.Expr

// Combine builds a replacement from an operator's operands, which have already
// been rewritten.
type Combine func(rw *Rewriter, left, right expr.Expr) expr.Expr

// Table maps operator symbols to rewrite rules. Operators not present in a
// table are kept (see KeepOperator).
type Table map[string]Rule

// DefaultTable returns a fresh copy of the default rule table:
//
//    a + b    ⇒   sum(a, b)
//    a - b    ⇒   sum(a, -b)
//    a * b    ⇒   product(a, b)
//    x += b   ⇒   x = sum(x, b)
//    x -= b   ⇒   x = sum(x, -b)
//    x *= b   ⇒   x = product(x, b)
//
func DefaultTable() Table {
	return Table{
		"+":  BinaryRule(Sum),
		"-":  BinaryRule(Difference),
		"*":  BinaryRule(Product),
		"+=": CompoundRule(Sum),
		"-=": CompoundRule(Difference),
		"*=": CompoundRule(Product),
	}
}

// Add adds or replaces the rule for an operator symbol. Returns the table
// (for chaining).
func (t Table) Add(op string, rule Rule) Table {
	if rule == nil {
		panic(fmt.Sprintf("rule for operator %q is nil", op))
	}
	t[op] = rule
	return t
}

// Clone returns a copy of t, which may be modified independently.
func (t Table) Clone() Table {
	return maps.Clone(t)
}

// Operators returns the operator symbols of a table, sorted.
func (t Table) Operators() []string {
	ops := maps.Keys(t)
	slices.Sort(ops)
	return ops
}

// --- Rules -----------------------------------------------------------------

// BinaryRule creates a rule replacing an operation by the result of c, applied
// to the rewritten operands.
func BinaryRule(c Combine) Rule {
	return func(rw *Rewriter, op *expr.BinaryOp) expr.Expr {
		left := rw.Rewrite(op.Left)
		right := rw.Rewrite(op.Right)
		return withSpan(c(rw, left, right), op)
	}
}

// CompoundRule creates a rule for a compound assignment 'x op= y', which is
// replaced by the assignment 'x = c(x, y)'.
//
// The target x is rewritten once. The assignment receives the rewritten
// target, while c receives a deep copy of it: the two occurrences are equal,
// but do not share nodes.
func CompoundRule(c Combine) Rule {
	return func(rw *Rewriter, op *expr.BinaryOp) expr.Expr {
		target := rw.Rewrite(op.Left)
		right := rw.Rewrite(op.Right)
		value := withSpan(c(rw, expr.Clone(target), right), op)
		return &expr.Assignment{Target: target, Value: value, Span: op.Span}
	}
}

// KeepOperator is the rule for operators not found in the rule table. It keeps
// the operator and rewrites its operands.
func KeepOperator(rw *Rewriter, op *expr.BinaryOp) expr.Expr {
	return &expr.BinaryOp{
		Op:    op.Op,
		Left:  rw.Rewrite(op.Left),
		Right: rw.Rewrite(op.Right),
		Span:  op.Span,
	}
}

// Sum combines operands into a call of the relaxed sum.
func Sum(rw *Rewriter, left, right expr.Expr) expr.Expr {
	return rw.call(rw.sumFn, left, right)
}

// Difference combines operands into a call of the relaxed sum, negating the
// right operand.
func Difference(rw *Rewriter, left, right expr.Expr) expr.Expr {
	return rw.call(rw.sumFn, left, Negate(right))
}

// Product combines operands into a call of the relaxed product.
func Product(rw *Rewriter, left, right expr.Expr) expr.Expr {
	return rw.call(rw.productFn, left, right)
}

func withSpan(e expr.Expr, op *expr.BinaryOp) expr.Expr {
	if c, ok := e.(*expr.Call); ok && c.Span.IsNull() {
		positioned := *c
		positioned.Span = op.Span
		return &positioned
	}
	return e
}
