package expr

import (
	"strings"
)

// String methods render nodes in infix source form. No parentheses are
// inserted: the tree is rendered as is, groupings being the only source of
// parentheses.

func (x *Identifier) String() string { return x.Name }
func (x *Literal) String() string    { return x.Raw }
func (x *Opaque) String() string     { return x.Text }

func (x *BinaryOp) String() string {
	return str(x.Left) + " " + x.Op + " " + str(x.Right)
}

func (x *PrefixOp) String() string {
	return x.Op + str(x.Operand)
}

func (x *Grouping) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, el := range x.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(str(el))
	}
	b.WriteByte(')')
	return b.String()
}

func (x *Call) String() string {
	var b strings.Builder
	b.WriteString(str(x.Callee))
	b.WriteByte('(')
	for i, a := range x.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		if a.Label != "" {
			b.WriteString(a.Label)
			b.WriteString(": ")
		}
		b.WriteString(str(a.Value))
	}
	b.WriteByte(')')
	return b.String()
}

func (x *Assignment) String() string {
	return str(x.Target) + " = " + str(x.Value)
}

func str(e Expr) string {
	if IsNil(e) {
		return "<nil>"
	}
	return e.String()
}

// --- S-expressions ---------------------------------------------------------

// ListString renders a tree as an s-expression, which makes its structure
// visible. Binary operations print as '(op left right)'; all other composite
// nodes are headed by a tag:
//
//    -(a + b)       ⇒   (#prefix - (#group (+ a b)))
//    f(x: 1, y)     ⇒   (#call f x:1 y)
//    x = y          ⇒   (#assign x y)
//
// Opaque nodes print as '#<text>'.
func ListString(e Expr) string {
	var b strings.Builder
	writeList(&b, e)
	return b.String()
}

func writeList(b *strings.Builder, e Expr) {
	if IsNil(e) {
		b.WriteString("nil")
		return
	}
	switch x := e.(type) {
	case *Identifier:
		b.WriteString(x.Name)
	case *Literal:
		b.WriteString(x.Raw)
	case *BinaryOp:
		b.WriteString("(" + x.Op + " ")
		writeList(b, x.Left)
		b.WriteByte(' ')
		writeList(b, x.Right)
		b.WriteByte(')')
	case *PrefixOp:
		b.WriteString("(#prefix " + x.Op + " ")
		writeList(b, x.Operand)
		b.WriteByte(')')
	case *Grouping:
		b.WriteString("(#group")
		for _, el := range x.Elements {
			b.WriteByte(' ')
			writeList(b, el)
		}
		b.WriteByte(')')
	case *Call:
		b.WriteString("(#call ")
		writeList(b, x.Callee)
		for _, a := range x.Args {
			b.WriteByte(' ')
			if a.Label != "" {
				b.WriteString(a.Label + ":")
			}
			writeList(b, a.Value)
		}
		b.WriteByte(')')
	case *Assignment:
		b.WriteString("(#assign ")
		writeList(b, x.Target)
		b.WriteByte(' ')
		writeList(b, x.Value)
		b.WriteByte(')')
	case *Opaque:
		b.WriteString("#<" + x.Text + ">")
	}
}
