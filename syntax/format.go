package syntax

import (
	"strings"

	"github.com/npillmayer/reassoc/expr"
)

// Format renders an expression tree as source text. Unlike expr.Expr.String,
// Format knows about operator precedences: where the shape of a tree is not
// expressed by groupings, it inserts parentheses. For trees created by Parse,
// Format and String produce the same text.
//
//    Binary("*", Binary("+", a, b), c)    ⇒    (a + b) * c
//
// Operators without a known precedence are parenthesized whenever they appear
// as an operand.
func Format(e expr.Expr) string {
	var b strings.Builder
	format(&b, e, 0)
	return b.String()
}

func format(b *strings.Builder, e expr.Expr, ctx int) {
	switch x := e.(type) {
	case nil:
		b.WriteString("<nil>")
	case *expr.BinaryOp:
		info := binaryOps[x.Op] // unknown operators yield precedence 0
		l, r := info.prec+1, info.prec+1
		if info.assoc == leftAssoc {
			l = info.prec
		} else {
			r = info.prec
		}
		parens(b, info.prec < ctx, func() {
			format(b, x.Left, l)
			b.WriteString(" " + x.Op + " ")
			format(b, x.Right, r)
		})
	case *expr.Assignment:
		parens(b, ctx > 1, func() {
			format(b, x.Target, 2)
			b.WriteString(" = ")
			format(b, x.Value, 1)
		})
	case *expr.PrefixOp:
		parens(b, prefixPrec < ctx, func() {
			b.WriteString(x.Op)
			format(b, x.Operand, prefixPrec)
		})
	case *expr.Call:
		format(b, x.Callee, postfixPrec)
		b.WriteByte('(')
		for i, a := range x.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			if a.Label != "" {
				b.WriteString(a.Label + ": ")
			}
			format(b, a.Value, 0)
		}
		b.WriteByte(')')
	case *expr.Grouping:
		b.WriteByte('(')
		for i, el := range x.Elements {
			if i > 0 {
				b.WriteString(", ")
			}
			format(b, el, 0)
		}
		b.WriteByte(')')
	default: // leafs and opaque nodes
		b.WriteString(e.String())
	}
}

func parens(b *strings.Builder, wrap bool, content func()) {
	if wrap {
		b.WriteByte('(')
	}
	content()
	if wrap {
		b.WriteByte(')')
	}
}
