package rewrite

import (
	"runtime"

	"github.com/npillmayer/reassoc/expr"
)

// Default names of the relaxed arithmetic functions.
const (
	DefaultSumFunction     = "fastmath.Sum"
	DefaultProductFunction = "fastmath.Product"
)

// Rewriter rewrites expression trees according to a rule table. Create one
// with New.
//
// A Rewriter holds configuration only. It is safe for concurrent use by
// multiple goroutines, provided its rule table is not modified.
type Rewriter struct {
	sumFn     string // qualified name of the relaxed sum
	productFn string // qualified name of the relaxed product
	table     Table  // rewrite rules per operator symbol
	nested    bool   // descend into assignments and prefix operations (default)
	workers   int    // parallelism of batch rewriting
}

// Option configures a rewriter.
type Option func(rw *Rewriter)

// New creates a rewriter. Without options, it uses the default rule table and
// the default function names.
func New(opts ...Option) *Rewriter {
	rw := &Rewriter{
		sumFn:     DefaultSumFunction,
		productFn: DefaultProductFunction,
		table:     DefaultTable(),
		nested:    true,
		workers:   runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(rw)
	}
	return rw
}

// WithSumFunction sets the qualified name of the relaxed sum.
func WithSumFunction(name string) Option {
	return func(rw *Rewriter) {
		if name != "" {
			rw.sumFn = name
		}
	}
}

// WithProductFunction sets the qualified name of the relaxed product.
func WithProductFunction(name string) Option {
	return func(rw *Rewriter) {
		if name != "" {
			rw.productFn = name
		}
	}
}

// WithTable replaces the default rule table.
func WithTable(t Table) Option {
	return func(rw *Rewriter) {
		if t != nil {
			rw.table = t
		}
	}
}

// RewriteNested sets or clears option RewriteNested: descend into the
// sub-expressions of assignments and prefix operations. The option is set by
// default; if cleared, these nodes are passed through unchanged, including any
// compound assignments below them.
func RewriteNested(b bool) Option {
	return func(rw *Rewriter) {
		rw.nested = b
	}
}

// WithWorkers limits the number of goroutines used by RewriteAll and ExpandAll.
func WithWorkers(n int) Option {
	return func(rw *Rewriter) {
		if n > 0 {
			rw.workers = n
		}
	}
}

// SumFunction returns the qualified name of the relaxed sum.
func (rw *Rewriter) SumFunction() string {
	return rw.sumFn
}

// ProductFunction returns the qualified name of the relaxed product.
func (rw *Rewriter) ProductFunction() string {
	return rw.productFn
}

// Table returns the rule table of rw.
func (rw *Rewriter) Table() Table {
	return rw.table
}

// --- The rewrite engine ----------------------------------------------------

var defaultRewriter = New()

// Rewrite rewrites a tree with the default configuration.
func Rewrite(e expr.Expr) expr.Expr {
	return defaultRewriter.Rewrite(e)
}

// Rewrite returns a rewritten copy of e. The input tree is left untouched.
//
// Binary operations are handed to the rule registered for their operator
// symbol. Groupings and call arguments are rewritten element by element,
// keeping count and order. Callees are not rewritten. Assignments and prefix
// operations are rebuilt from their rewritten sub-expressions, unless option
// RewriteNested has been cleared. Everything else is returned as is.
//
// Rewrite does not trace, as it may run on many goroutines (see RewriteAll).
func (rw *Rewriter) Rewrite(e expr.Expr) expr.Expr {
	if expr.IsNil(e) {
		return nil
	}
	switch x := e.(type) {
	case *expr.BinaryOp:
		rule, ok := rw.table[x.Op]
		if !ok {
			rule = KeepOperator
		}
		return rule(rw, x)
	case *expr.Grouping:
		elements := make([]expr.Expr, len(x.Elements))
		for i, el := range x.Elements {
			elements[i] = rw.Rewrite(el)
		}
		return &expr.Grouping{Elements: elements, Span: x.Span}
	case *expr.Call:
		args := make([]expr.Argument, len(x.Args))
		for i, a := range x.Args {
			args[i] = expr.Argument{Label: a.Label, Value: rw.Rewrite(a.Value)}
		}
		return &expr.Call{Callee: x.Callee, Args: args, Span: x.Span}
	case *expr.Assignment:
		if rw.nested {
			return &expr.Assignment{
				Target: rw.Rewrite(x.Target),
				Value:  rw.Rewrite(x.Value),
				Span:   x.Span,
			}
		}
	case *expr.PrefixOp:
		if rw.nested {
			return &expr.PrefixOp{Op: x.Op, Operand: rw.Rewrite(x.Operand), Span: x.Span}
		}
	}
	return e // identifiers, literals, opaque nodes and everything else
}

// call creates a call of a relaxed function.
func (rw *Rewriter) call(fn string, args ...expr.Expr) *expr.Call {
	return expr.CallOf(expr.Ident(fn), args...)
}
