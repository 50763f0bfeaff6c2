package rewrite

import (
	"github.com/npillmayer/reassoc"
	"github.com/npillmayer/reassoc/expr"
)

// NeedsGrouping is a predicate: does e have to be enclosed in parentheses
// before a prefix operator may be applied to it?
//
// Identifiers, literals, groupings and calls delimit themselves and are safe.
// Everything else is wrapped, without consulting operator precedences. This
// may wrap more than necessary, but never less.
func NeedsGrouping(e expr.Expr) bool {
	switch e.(type) {
	case *expr.Identifier, *expr.Literal, *expr.Grouping, *expr.Call:
		return false
	}
	return true
}

// Negate returns -e, wrapping e into a grouping if required by NeedsGrouping.
func Negate(e expr.Expr) expr.Expr {
	var span = spanOf(e)
	if NeedsGrouping(e) {
		e = &expr.Grouping{Elements: []expr.Expr{e}, Span: span}
	}
	return &expr.PrefixOp{Op: "-", Operand: e, Span: span}
}

func spanOf(e expr.Expr) (span reassoc.Span) {
	if e != nil {
		span = e.Pos()
	}
	return
}
