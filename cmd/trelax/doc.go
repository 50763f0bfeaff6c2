/*
Command trelax provides an interactive command line tool (T.RELAX) for
experiments with relaxed-arithmetic rewriting. Users enter expressions and
T.RELAX prints their rewritten form:

    trelax> x += a * b + c
      >>  x = fastmath.Sum(x, fastmath.Sum(fastmath.Product(a, b), c))

Commands start with a colon; enter ':help' for a list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reassoc.trelax'
func tracer() tracing.Trace {
	return tracing.Select("reassoc.trelax")
}
