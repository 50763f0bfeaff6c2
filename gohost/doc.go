/*
Package gohost applies relaxed-arithmetic rewriting to Go source code.

Go has no macros. Instead, gohost looks for calls of a marker function, by
default `fastmath.Relaxed`, and replaces each of them by the rewritten form of
its argument:

    s = fastmath.Relaxed(s + x[i]*y[i])

becomes

    s = fastmath.Sum(s, fastmath.Product(x[i], y[i]))

The marker function itself is expected to be the identity function, so code
compiles and runs with or without the rewriting step.

Go assignments are statements, not expressions; therefore compound assignments
never appear inside a marker call and the corresponding rules are not exercised
by this host. Go expressions the tree model does not represent (index
expressions, composite literals, closures, …) travel through the rewriter as
opaque nodes and are re-inserted unchanged.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gohost

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reassoc.gohost'.
func tracer() tracing.Trace {
	return tracing.Select("reassoc.gohost")
}
