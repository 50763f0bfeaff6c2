package gohost

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"

	"github.com/npillmayer/reassoc"
	"github.com/npillmayer/reassoc/expr"
	"github.com/pkg/errors"
)

// FromGo converts a Go expression into an expression tree. Go constructs
// without a counterpart in the tree model become opaque nodes, carrying the
// original Go node as payload.
func FromGo(x ast.Expr) expr.Expr {
	span := reassoc.Span{uint64(x.Pos()), uint64(x.End())}
	switch x := x.(type) {
	case *ast.Ident:
		return &expr.Identifier{Name: x.Name, Span: span}
	case *ast.BasicLit:
		lit := &expr.Literal{Raw: x.Value, Type: expr.Number, Span: span}
		if x.Kind == token.STRING || x.Kind == token.CHAR {
			lit.Type = expr.Text
		}
		return lit
	case *ast.SelectorExpr:
		if name, ok := qualifiedName(x); ok {
			return &expr.Identifier{Name: name, Span: span}
		}
	case *ast.BinaryExpr:
		return &expr.BinaryOp{Op: x.Op.String(), Left: FromGo(x.X), Right: FromGo(x.Y), Span: span}
	case *ast.UnaryExpr:
		return &expr.PrefixOp{Op: x.Op.String(), Operand: FromGo(x.X), Span: span}
	case *ast.ParenExpr:
		return &expr.Grouping{Elements: []expr.Expr{FromGo(x.X)}, Span: span}
	case *ast.CallExpr:
		if x.Ellipsis.IsValid() { // f(xs...) has no counterpart
			break
		}
		call := &expr.Call{Callee: FromGo(x.Fun), Args: make([]expr.Argument, len(x.Args)), Span: span}
		for i, a := range x.Args {
			call.Args[i] = expr.Argument{Value: FromGo(a)}
		}
		return call
	}
	return &expr.Opaque{Text: types.ExprString(x), Payload: x, Span: span}
}

// qualifiedName returns "a.b.c" for selector chains of identifiers.
func qualifiedName(x ast.Expr) (string, bool) {
	switch x := x.(type) {
	case *ast.Ident:
		return x.Name, true
	case *ast.SelectorExpr:
		if prefix, ok := qualifiedName(x.X); ok {
			return prefix + "." + x.Sel.Name, true
		}
	}
	return "", false
}

var binaryTokens = map[string]token.Token{}
var unaryTokens = map[string]token.Token{}

func init() {
	for _, t := range []token.Token{token.ADD, token.SUB, token.MUL, token.QUO, token.REM,
		token.AND, token.OR, token.XOR, token.SHL, token.SHR, token.AND_NOT,
		token.LAND, token.LOR, token.EQL, token.NEQ, token.LSS, token.LEQ, token.GTR, token.GEQ} {
		binaryTokens[t.String()] = t
	}
	for _, t := range []token.Token{token.ADD, token.SUB, token.NOT, token.XOR, token.AND, token.ARROW} {
		unaryTokens[t.String()] = t
	}
}

// ToGo converts an expression tree into a Go expression. Trees which have no
// Go form, e.g. assignments or tuples, result in an error.
func ToGo(e expr.Expr) (ast.Expr, error) {
	switch x := e.(type) {
	case nil:
		return nil, errors.New("cannot convert empty expression")
	case *expr.Identifier:
		return identToGo(x.Name), nil
	case *expr.Literal:
		return &ast.BasicLit{Kind: literalKind(x), Value: x.Raw}, nil
	case *expr.BinaryOp:
		tok, ok := binaryTokens[x.Op]
		if !ok {
			return nil, errors.Errorf("operator %q has no Go expression form", x.Op)
		}
		l, err := ToGo(x.Left)
		if err != nil {
			return nil, err
		}
		r, err := ToGo(x.Right)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{X: l, Op: tok, Y: r}, nil
	case *expr.PrefixOp:
		tok, ok := unaryTokens[x.Op]
		if !ok {
			return nil, errors.Errorf("prefix operator %q has no Go expression form", x.Op)
		}
		operand, err := ToGo(x.Operand)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: tok, X: operand}, nil
	case *expr.Grouping:
		if len(x.Elements) != 1 {
			return nil, errors.Errorf("tuple %s has no Go expression form", x)
		}
		inner, err := ToGo(x.Elements[0])
		if err != nil {
			return nil, err
		}
		return &ast.ParenExpr{X: inner}, nil
	case *expr.Call:
		fun, err := ToGo(x.Callee)
		if err != nil {
			return nil, err
		}
		call := &ast.CallExpr{Fun: fun, Args: make([]ast.Expr, len(x.Args))}
		for i, a := range x.Args {
			if a.Label != "" {
				return nil, errors.Errorf("labeled argument %s has no Go form", a.Label)
			}
			if call.Args[i], err = ToGo(a.Value); err != nil {
				return nil, err
			}
		}
		return call, nil
	case *expr.Assignment:
		return nil, errors.Errorf("assignment %s is not a Go expression", x)
	case *expr.Opaque:
		if node, ok := x.Payload.(ast.Expr); ok {
			return node, nil
		}
		node, err := parser.ParseExpr(x.Text)
		return node, errors.Wrapf(err, "cannot convert %q", x.Text)
	}
	return nil, errors.Errorf("unknown node type %T", e)
}

func identToGo(name string) ast.Expr {
	parts := strings.Split(name, ".")
	var x ast.Expr = ast.NewIdent(parts[0])
	for _, sel := range parts[1:] {
		x = &ast.SelectorExpr{X: x, Sel: ast.NewIdent(sel)}
	}
	return x
}

func literalKind(lit *expr.Literal) token.Token {
	raw := lit.Raw
	if lit.Type == expr.Text {
		if strings.HasPrefix(raw, "'") {
			return token.CHAR
		}
		return token.STRING
	}
	switch {
	case strings.HasSuffix(raw, "i"):
		return token.IMAG
	case strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X"):
		if strings.ContainsAny(raw, "pP") {
			return token.FLOAT
		}
		return token.INT
	case strings.ContainsAny(raw, ".eE"):
		return token.FLOAT
	}
	return token.INT
}
