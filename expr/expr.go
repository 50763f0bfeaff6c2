package expr

import (
	"github.com/npillmayer/reassoc"
)

// Kind is the variant tag of an expression node.
type Kind int8

// Node kinds. Kinds are ordered by the tree model, not by precedence.
const (
	NoKind Kind = iota
	IdentifierKind
	LiteralKind
	BinaryKind
	PrefixKind
	GroupingKind
	CallKind
	AssignmentKind
	OpaqueKind
)

var kindNames = [...]string{"<none>", "identifier", "literal", "binary", "prefix",
	"grouping", "call", "assignment", "opaque"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "<unknown>"
	}
	return kindNames[k]
}

// Expr is the type of all nodes of an expression tree. The set of implementing
// types is closed; it consists of
//
//    *Identifier  *Literal  *BinaryOp  *PrefixOp
//    *Grouping    *Call     *Assignment  *Opaque
//
type Expr interface {
	Kind() Kind
	Pos() reassoc.Span
	String() string
	isExpr()
}

// Identifier is a name, possibly qualified ("math.Sqrt"). The name is opaque
// to the tree model.
type Identifier struct {
	Name string
	Span reassoc.Span
}

// LitType tells numeric literals from text literals.
type LitType int8

// Literal types
const (
	Number LitType = iota
	Text
)

// Literal is a constant. The raw payload is kept as it appeared in the input,
// including quotes for text literals. It is never converted to a value.
type Literal struct {
	Raw  string
	Type LitType
	Span reassoc.Span
}

// BinaryOp is an infix operation. Op may be any symbol, including symbols
// no rule knows about.
type BinaryOp struct {
	Op    string
	Left  Expr
	Right Expr
	Span  reassoc.Span
}

// PrefixOp is a unary prefix operation, e.g. a negation.
type PrefixOp struct {
	Op      string
	Operand Expr
	Span    reassoc.Span
}

// Grouping is a parenthesized expression or a tuple. It holds one or more
// elements.
type Grouping struct {
	Elements []Expr
	Span     reassoc.Span
}

// Argument is an argument of a call, optionally labeled.
type Argument struct {
	Label string // may be empty
	Value Expr
}

// Call is a function call. The callee is an expression in its own right,
// usually an Identifier.
type Call struct {
	Callee Expr
	Args   []Argument
	Span   reassoc.Span
}

// Assignment is a plain assignment 'target = value'.
type Assignment struct {
	Target Expr
	Value  Expr
	Span   reassoc.Span
}

// Opaque stands in for any construct the tree model does not represent, e.g.
// a subscript or a closure. Text is the construct's source form. Payload is
// free for hosts to transport their own representation; it is not compared and
// not copied deeply.
type Opaque struct {
	Text    string
	Payload interface{}
	Span    reassoc.Span
}

func (*Identifier) isExpr() {}
func (*Literal) isExpr()    {}
func (*BinaryOp) isExpr()   {}
func (*PrefixOp) isExpr()   {}
func (*Grouping) isExpr()   {}
func (*Call) isExpr()       {}
func (*Assignment) isExpr() {}
func (*Opaque) isExpr()     {}

func (*Identifier) Kind() Kind { return IdentifierKind }
func (*Literal) Kind() Kind    { return LiteralKind }
func (*BinaryOp) Kind() Kind   { return BinaryKind }
func (*PrefixOp) Kind() Kind   { return PrefixKind }
func (*Grouping) Kind() Kind   { return GroupingKind }
func (*Call) Kind() Kind       { return CallKind }
func (*Assignment) Kind() Kind { return AssignmentKind }
func (*Opaque) Kind() Kind     { return OpaqueKind }

func (x *Identifier) Pos() reassoc.Span { return x.Span }
func (x *Literal) Pos() reassoc.Span    { return x.Span }
func (x *BinaryOp) Pos() reassoc.Span   { return x.Span }
func (x *PrefixOp) Pos() reassoc.Span   { return x.Span }
func (x *Grouping) Pos() reassoc.Span   { return x.Span }
func (x *Call) Pos() reassoc.Span       { return x.Span }
func (x *Assignment) Pos() reassoc.Span { return x.Span }
func (x *Opaque) Pos() reassoc.Span     { return x.Span }

// --- Constructors ----------------------------------------------------------

// Ident creates an identifier node.
func Ident(name string) *Identifier {
	return &Identifier{Name: name}
}

// Num creates a numeric literal node.
func Num(raw string) *Literal {
	return &Literal{Raw: raw, Type: Number}
}

// Str creates a text literal node. raw should include the quotes.
func Str(raw string) *Literal {
	return &Literal{Raw: raw, Type: Text}
}

// Binary creates a binary operation node.
func Binary(op string, left, right Expr) *BinaryOp {
	return &BinaryOp{Op: op, Left: left, Right: right}
}

// Prefix creates a prefix operation node.
func Prefix(op string, operand Expr) *PrefixOp {
	return &PrefixOp{Op: op, Operand: operand}
}

// Group creates a grouping of one or more elements.
func Group(elements ...Expr) *Grouping {
	return &Grouping{Elements: elements}
}

// Arg creates an unlabeled call argument.
func Arg(value Expr) Argument {
	return Argument{Value: value}
}

// LabeledArg creates a labeled call argument.
func LabeledArg(label string, value Expr) Argument {
	return Argument{Label: label, Value: value}
}

// CallOf creates a call node with unlabeled arguments.
func CallOf(callee Expr, args ...Expr) *Call {
	c := &Call{Callee: callee, Args: make([]Argument, len(args))}
	for i, a := range args {
		c.Args[i] = Argument{Value: a}
	}
	return c
}

// CallWith creates a call node from arguments, which may carry labels.
func CallWith(callee Expr, args ...Argument) *Call {
	return &Call{Callee: callee, Args: args}
}

// Assign creates an assignment node.
func Assign(target, value Expr) *Assignment {
	return &Assignment{Target: target, Value: value}
}

// OpaqueOf creates an opaque node from source text.
func OpaqueOf(text string) *Opaque {
	return &Opaque{Text: text}
}

// IsCompoundAssignment is a predicate: is op an operator of the form 'op='?
// The plain assignment operator '=' and the comparison operators '==', '!=',
// '<=' and '>=' do not count.
func IsCompoundAssignment(op string) bool {
	n := len(op)
	if n < 2 || op[n-1] != '=' {
		return false
	}
	switch op {
	case "==", "!=", "<=", ">=", "===", "!==":
		return false
	}
	return true
}
