/*
Package rewrite replaces arithmetic operators in expression trees by calls to
relaxed arithmetic functions.

A relaxed sum or product is a function of a numeric library which is allowed to
reassociate its operands, i.e. to evaluate `a + (b + c)` instead of `(a + b) + c`,
or to use fused multiply-add instructions. Ordinary operators have to be
evaluated strictly left to right, which prevents vectorization of many inner
loops. Package rewrite turns

    a - b * c     into    fastmath.Sum(a, -fastmath.Product(b, c))
    x *= y        into    x = fastmath.Product(x, y)

The names of the two functions are configurable. The functions themselves are
never called; the rewriter only constructs calls to them.

Rewriting is driven by a table of rules, one rule per operator symbol. The
default table covers '+', '-', '*' and their compound assignment forms.
Operators without a rule are kept, but their operands are rewritten.

Rewriting is purely syntactic and never fails. Trees are not modified in
place: each rewrite returns a new tree and leaves its input intact. A Rewriter
carries configuration only and may be shared between goroutines; RewriteAll
uses this to rewrite many trees in parallel.

Hosts hand over their input wrapped in an Invocation. Expand checks that
the invocation carries an expression and rewrites it. This is the only place
where an error (MissingOperand) may occur.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rewrite

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reassoc.rewrite'.
func tracer() tracing.Trace {
	return tracing.Select("reassoc.rewrite")
}
