/*
Package syntax reads and writes expression text.

The scanner is built with lexmachine, the parser is a straightforward
precedence climbing parser. Accepted input looks like the expression part of
C-like languages:

    x += a * (b - c)
    f(x: 1.5e3, y - 2, "text")
    total = price * qty[i] - discount

Parenthesized expressions are kept as groupings, so parsing followed by
formatting reproduces the input (modulo white space). Constructs the tree
model does not represent, like subscripts, are kept as opaque nodes.

ParseInvocation parses macro-style text such as '#relaxed(a + b)' into a
rewrite.Invocation, ready to be expanded.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reassoc.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("reassoc.syntax")
}
