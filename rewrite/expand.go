package rewrite

import (
	"github.com/npillmayer/reassoc"
	"github.com/npillmayer/reassoc/expr"
)

// Invocation is the payload a host hands over for expansion: the arguments of
// a macro-like construct, e.g. of '#relaxed(a + b)'.
type Invocation struct {
	Name      string       // name of the construct, for diagnostics only
	Arguments []expr.Expr  // expression arguments, as parsed by the host
	Span      reassoc.Span // input position of the construct
}

// ErrorKind categorizes expansion errors.
type ErrorKind int8

// There is a single kind of error.
const (
	NoError        ErrorKind = iota
	MissingOperand           // invocation without an expression argument
)

const missingOperandMessage = "relaxed expression requires an operand"

// ExpansionError is the error type of Expand.
type ExpansionError struct {
	Kind ErrorKind
	Name string       // name of the failing invocation, may be empty
	Span reassoc.Span // position of the failing invocation
}

// ErrMissingOperand may be used for checks with errors.Is.
var ErrMissingOperand = &ExpansionError{Kind: MissingOperand}

func (e *ExpansionError) Error() string {
	return missingOperandMessage
}

// Is reports errors of equal kind as matching.
func (e *ExpansionError) Is(target error) bool {
	t, ok := target.(*ExpansionError)
	return ok && t.Kind == e.Kind
}

// Expand expands an invocation with the default configuration.
func Expand(inv Invocation) (expr.Expr, error) {
	return defaultRewriter.Expand(inv)
}

// Expand checks an invocation for its expression argument and returns the
// rewritten expression. If the invocation carries no argument, Expand returns
// an ExpansionError of kind MissingOperand and no tree.
//
// Invocations are expected to carry exactly one argument. Surplus arguments
// are ignored.
func (rw *Rewriter) Expand(inv Invocation) (expr.Expr, error) {
	e, err := rw.expand(inv)
	if err != nil {
		tracer().Errorf("%s@%v: %s", inv.Name, inv.Span, missingOperandMessage)
		return nil, err
	}
	if len(inv.Arguments) > 1 {
		tracer().Infof("%s@%v: ignoring %d surplus argument(s)", inv.Name, inv.Span,
			len(inv.Arguments)-1)
	}
	tracer().Debugf("%s expanded to %s", inv.Name, e)
	return e, nil
}

// expand is Expand without tracing, safe to call from worker goroutines.
func (rw *Rewriter) expand(inv Invocation) (expr.Expr, error) {
	if len(inv.Arguments) == 0 || expr.IsNil(inv.Arguments[0]) {
		return nil, &ExpansionError{Kind: MissingOperand, Name: inv.Name, Span: inv.Span}
	}
	return rw.Rewrite(inv.Arguments[0]), nil
}
