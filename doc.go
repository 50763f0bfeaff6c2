/*
Package reassoc rewrites arithmetic expression trees for relaxed floating-point
evaluation.

Compilers have to evaluate `a + b + c` strictly as `(a + b) + c`. Numeric
libraries may offer a "relaxed" sum and product, which are allowed to
reassociate their operands or use fused operations. Package reassoc translates
expressions written with ordinary operators into calls of these functions:

    x += a * b + c      ⇒      x = fastmath.Sum(x, fastmath.Sum(fastmath.Product(a, b), c))

Package structure is as follows:

■ expr: Package expr implements the expression tree, a closed set of node types.

■ rewrite: Package rewrite implements the operator rewriting, driven by a table of rules.

■ syntax: Package syntax scans and parses expression text and formats trees back to text.

■ gohost: Package gohost applies the rewriter to marker calls within Go source files.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package reassoc
