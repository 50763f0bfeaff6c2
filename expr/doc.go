/*
Package expr implements the expression trees the rewriter operates on.

Trees are made from a closed set of node types: identifiers, literals, binary
and prefix operations, groupings, calls, assignments, and opaque nodes for
everything else. Clients cannot add node types; code switching over nodes
may therefore rely on the set being complete.

Trees are treated as immutable values. Nothing in this module changes a node
after construction, and clients are expected to follow the same discipline:
transformations build new nodes from old children. Every node owns its
children exclusively; use Clone if a sub-tree has to appear twice.

Two trees are equal if they have the same shape, the same operator symbols
and the same leaf contents. Spans, i.e. input positions, are not compared.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reassoc.expr'.
func tracer() tracing.Trace {
	return tracing.Select("reassoc.expr")
}
