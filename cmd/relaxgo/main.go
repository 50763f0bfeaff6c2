/*
Command relaxgo rewrites marked expressions in Go source files to calls of
relaxed-arithmetic functions.

    relaxgo [flags] file.go ...

Every call of the marker function (default 'fastmath.Relaxed') is replaced
by the rewritten form of its first argument. Without flag -w the result is
printed to stdout.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/reassoc/gohost"
	"github.com/npillmayer/reassoc/rewrite"
	"github.com/pterm/pterm"
	"github.com/pkg/errors"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// tracer traces with key 'reassoc.relaxgo'
func tracer() tracing.Trace {
	return tracing.Select("reassoc.relaxgo")
}

func main() {
	gtrace.SyntaxTracer = gologadapter.New()
	write := flag.Bool("w", false, "Write result to source file instead of stdout")
	marker := flag.String("marker", gohost.DefaultMarker, "Qualified name of the marker function")
	sumFn := flag.String("sum", rewrite.DefaultSumFunction, "Qualified name of the relaxed sum")
	prodFn := flag.String("product", rewrite.DefaultProductFunction, "Qualified name of the relaxed product")
	nested := flag.Bool("nested", true, "Rewrite within assignments and prefix operations")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()
	level := tracing.TraceLevelFromString(*tlevel)
	tracer().SetTraceLevel(level)
	tracing.Select("reassoc.gohost").SetTraceLevel(level)
	tracing.Select("reassoc.rewrite").SetTraceLevel(level)
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: relaxgo [flags] file.go ...")
		flag.PrintDefaults()
		os.Exit(2)
	}
	cfg := gohost.Config{
		Marker:    *marker,
		SumFn:     *sumFn,
		ProductFn: *prodFn,
		Nested:    *nested,
	}
	failed := 0
	for _, filename := range flag.Args() {
		n, err := processFile(filename, cfg, *write)
		if err != nil {
			pterm.Error.Println(err.Error())
			failed++
			continue
		}
		if *write {
			pterm.Success.Printf("%s: %d expression(s) rewritten\n", filename, n)
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// processFile rewrites a single file. It returns the number of rewritten
// marker calls. A file without marker calls is left untouched.
func processFile(filename string, cfg gohost.Config, write bool) (int, error) {
	info, err := os.Stat(filename)
	if err != nil {
		return 0, err
	}
	src, err := os.ReadFile(filename)
	if err != nil {
		return 0, errors.Wrap(err, "reading source")
	}
	out, n, err := gohost.RewriteSource(filename, src, cfg)
	if err != nil {
		return 0, err
	}
	tracer().Infof("%s: %d marker call(s)", filename, n)
	if !write {
		_, err = os.Stdout.Write(out)
		return n, err
	}
	if n == 0 {
		return 0, nil
	}
	if err = os.WriteFile(filename, out, info.Mode().Perm()); err != nil {
		return 0, errors.Wrapf(err, "writing %s", filename)
	}
	return n, nil
}
