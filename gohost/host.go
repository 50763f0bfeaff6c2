package gohost

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"github.com/npillmayer/reassoc"
	"github.com/npillmayer/reassoc/expr"
	"github.com/npillmayer/reassoc/rewrite"
	"github.com/pkg/errors"
	"golang.org/x/tools/go/ast/astutil"
)

// Default marker function.
const DefaultMarker = "fastmath.Relaxed"

// ErrSurplusArguments is the cause of errors for marker calls with more than
// one argument. Rewriting such a call would drop source code.
var ErrSurplusArguments = errors.New("marker call takes a single expression")

// Config configures the rewriting of Go source files.
type Config struct {
	Marker    string // qualified name of the marker function, "pkg.Func"
	SumFn     string // qualified name of the relaxed sum
	ProductFn string // qualified name of the relaxed product
	Nested    bool   // descend into prefix operations, see rewrite.RewriteNested
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Marker:    DefaultMarker,
		SumFn:     rewrite.DefaultSumFunction,
		ProductFn: rewrite.DefaultProductFunction,
		Nested:    true,
	}
}

func (cfg Config) rewriter() *rewrite.Rewriter {
	return rewrite.New(
		rewrite.WithSumFunction(cfg.SumFn),
		rewrite.WithProductFunction(cfg.ProductFn),
		rewrite.RewriteNested(cfg.Nested),
	)
}

// RewriteFile replaces all marker calls within a parsed Go file. It returns the
// number of replaced calls.
//
// A marker call without an argument is reported as an error, carrying the
// source position and a rewrite.ExpansionError of kind MissingOperand as its
// cause. A marker call with more than one argument is reported with cause
// ErrSurplusArguments. Processing stops at the first error, leaving the file partially
// rewritten.
//
// If the import of the marker's package is no longer used after rewriting, it
// is removed.
func RewriteFile(fset *token.FileSet, file *ast.File, cfg Config) (int, error) {
	if cfg.Marker == "" {
		cfg.Marker = DefaultMarker
	}
	rw := cfg.rewriter()
	count := 0
	var err error
	astutil.Apply(file, nil, func(c *astutil.Cursor) bool {
		call, ok := c.Node().(*ast.CallExpr)
		if !ok {
			return true
		}
		if name, ok := qualifiedName(call.Fun); !ok || name != cfg.Marker {
			return true
		}
		pos := fset.Position(call.Pos())
		if len(call.Args) > 1 {
			err = errors.Wrapf(ErrSurplusArguments, "%s: %s called with %d arguments",
				pos, cfg.Marker, len(call.Args))
			return false
		}
		inv := rewrite.Invocation{
			Name: cfg.Marker,
			Span: reassoc.Span{uint64(call.Pos()), uint64(call.End())},
		}
		for _, a := range call.Args {
			inv.Arguments = append(inv.Arguments, FromGo(a))
		}
		var e expr.Expr
		if e, err = rw.Expand(inv); err != nil {
			err = errors.Wrapf(err, "%s", pos)
			return false
		}
		var x ast.Expr
		if x, err = ToGo(e); err != nil {
			err = errors.Wrapf(err, "%s", pos)
			return false
		}
		tracer().Debugf("%s: %s ⇒ %s", pos, expr.ListString(inv.Arguments[0]), e)
		c.Replace(x)
		count++
		return true
	})
	if count > 0 {
		removeUnusedImport(fset, file, cfg.Marker)
	}
	return count, err
}

// removeUnusedImport deletes the import of the marker's package if no longer
// referenced.
func removeUnusedImport(fset *token.FileSet, file *ast.File, marker string) {
	dot := strings.LastIndex(marker, ".")
	if dot < 0 {
		return // marker is not qualified, no import involved
	}
	pkgName := marker[:dot]
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		name := path[strings.LastIndex(path, "/")+1:]
		if imp.Name != nil {
			name = imp.Name.Name
		}
		if name == pkgName && !astutil.UsesImport(file, path) {
			tracer().Infof("removing unused import %q", path)
			astutil.DeleteImport(fset, file, path)
			return
		}
	}
}

// RewriteSource parses Go source, rewrites all marker calls and returns the
// formatted result, together with the number of replaced calls.
func RewriteSource(filename string, src []byte, cfg Config) ([]byte, int, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "cannot parse %s", filename)
	}
	count, err := RewriteFile(fset, file, cfg)
	if err != nil {
		return nil, count, err
	}
	var buf bytes.Buffer
	if err = format.Node(&buf, fset, file); err != nil {
		return nil, count, errors.Wrapf(err, "cannot format %s", filename)
	}
	tracer().Infof("%s: %d marker call(s) rewritten", filename, count)
	return buf.Bytes(), count, nil
}
