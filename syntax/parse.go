package syntax

import (
	"fmt"

	"github.com/npillmayer/reassoc"
	"github.com/npillmayer/reassoc/expr"
	"github.com/npillmayer/reassoc/rewrite"
	"github.com/pkg/errors"
)

// --- Grammar ---------------------------------------------------------------
//
// Expr      ::=  Prefix  { binop Expr }     // precedence climbing, see binaryOps
// Prefix    ::=  ( '-' | '+' | '!' ) Prefix  |  Postfix
// Postfix   ::=  Primary { '(' Args ')'  |  '[' Expr ']' }
// Primary   ::=  ident  |  number  |  string  |  '(' Expr { ',' Expr } ')'
// Args      ::=  [ Arg { ',' Arg } ]
// Arg       ::=  [ ident ':' ] Expr
//
// Invocation ::=  macro [ '(' Args ')' ]
//

type assoc int8

const (
	leftAssoc assoc = iota
	rightAssoc
)

type opInfo struct {
	prec  int
	assoc assoc
}

// binaryOps holds the binary operators and their precedences.
var binaryOps = map[string]opInfo{
	"=": {1, rightAssoc}, "+=": {1, rightAssoc}, "-=": {1, rightAssoc},
	"*=": {1, rightAssoc}, "/=": {1, rightAssoc}, "%=": {1, rightAssoc},
	"||": {2, leftAssoc},
	"&&": {3, leftAssoc},
	"==": {4, leftAssoc}, "!=": {4, leftAssoc}, "<": {4, leftAssoc},
	">": {4, leftAssoc}, "<=": {4, leftAssoc}, ">=": {4, leftAssoc},
	"+": {5, leftAssoc}, "-": {5, leftAssoc},
	"*": {6, leftAssoc}, "/": {6, leftAssoc}, "%": {6, leftAssoc},
}

const (
	prefixPrec  = 7
	postfixPrec = 8
)

var prefixOps = map[string]bool{"-": true, "+": true, "!": true}

// SyntaxError is an error for malformed input, located by a span.
type SyntaxError struct {
	Span reassoc.Span
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %v: %s", e.Span, e.Msg)
}

// --- Parser ----------------------------------------------------------------

type parser struct {
	input  string
	tokens []Token
	pos    int
	err    error // first error; parsing stops when set
}

func newParser(input string) (*parser, error) {
	scan, err := NewScanner(input)
	if err != nil {
		return nil, err
	}
	p := &parser{input: input}
	scan.SetErrorHandler(func(e error) {
		if p.err == nil {
			p.err = errors.WithStack(e)
		}
	})
	for {
		t := scan.NextToken()
		p.tokens = append(p.tokens, t)
		if t.kind == EOF {
			break
		}
	}
	return p, p.err
}

// Parse parses an expression. It returns the expression tree, or an error in
// case of failure. Errors carry a *SyntaxError as their cause.
func Parse(input string) (expr.Expr, error) {
	p, err := newParser(input)
	if err != nil {
		return nil, err
	}
	e := p.parseExpr(1)
	p.expectEOF()
	if p.err != nil {
		return nil, p.err
	}
	tracer().Debugf("parsed %q as %s", input, expr.ListString(e))
	return e, nil
}

// ParseInvocation parses macro-style input like '#relaxed(a + b)' into an
// invocation. The arguments are parsed, but not rewritten; argument labels
// are dropped. '#relaxed' and '#relaxed()' result in invocations without
// arguments.
func ParseInvocation(input string) (rewrite.Invocation, error) {
	inv := rewrite.Invocation{}
	p, err := newParser(input)
	if err != nil {
		return inv, err
	}
	t := p.current()
	if t.kind != Macro {
		p.fail(t.span, "expected macro invocation, found %v", t)
		return inv, p.err
	}
	p.next()
	inv.Name, inv.Span = t.lexeme[1:], t.span
	if p.current().is("(") {
		args, end := p.parseArgs()
		for _, a := range args {
			inv.Arguments = append(inv.Arguments, a.Value)
		}
		inv.Span = inv.Span.Extend(end)
	}
	p.expectEOF()
	if p.err != nil {
		return rewrite.Invocation{}, p.err
	}
	return inv, nil
}

func (p *parser) current() Token {
	return p.peek(0)
}

func (p *parser) peek(n int) Token {
	if p.pos+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos+n]
}

func (p *parser) next() Token {
	t := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) fail(span reassoc.Span, format string, args ...interface{}) {
	if p.err == nil {
		p.err = errors.WithStack(&SyntaxError{Span: span, Msg: fmt.Sprintf(format, args...)})
	}
}

func (p *parser) expect(lexeme string) Token {
	t := p.current()
	if !t.is(lexeme) {
		p.fail(t.span, "expected %q, found %v", lexeme, t)
		return t
	}
	return p.next()
}

func (p *parser) expectEOF() {
	if t := p.current(); t.kind != EOF {
		p.fail(t.span, "unexpected %v", t)
	}
}

func (p *parser) parseExpr(minPrec int) expr.Expr {
	left := p.parsePrefix()
	for p.err == nil {
		t := p.current()
		if t.kind != Operator {
			break
		}
		info, ok := binaryOps[t.lexeme]
		if !ok || info.prec < minPrec {
			break
		}
		p.next()
		nextPrec := info.prec + 1
		if info.assoc == rightAssoc {
			nextPrec = info.prec
		}
		right := p.parseExpr(nextPrec)
		if p.err != nil {
			return nil
		}
		span := left.Pos().Extend(right.Pos())
		if t.lexeme == "=" {
			left = &expr.Assignment{Target: left, Value: right, Span: span}
		} else {
			left = &expr.BinaryOp{Op: t.lexeme, Left: left, Right: right, Span: span}
		}
	}
	if p.err != nil {
		return nil
	}
	return left
}

func (p *parser) parsePrefix() expr.Expr {
	t := p.current()
	if t.kind == Operator && prefixOps[t.lexeme] {
		p.next()
		operand := p.parsePrefix()
		if p.err != nil {
			return nil
		}
		return &expr.PrefixOp{Op: t.lexeme, Operand: operand, Span: t.span.Extend(operand.Pos())}
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() expr.Expr {
	e := p.parsePrimary()
	for p.err == nil {
		t := p.current()
		switch {
		case t.is("("):
			args, end := p.parseArgs()
			e = &expr.Call{Callee: e, Args: args, Span: e.Pos().Extend(end)}
		case t.is("["):
			p.next()
			p.parseExpr(1) // validated, but kept as text only
			end := p.expect("]")
			span := e.Pos().Extend(end.span)
			e = &expr.Opaque{Text: p.input[span.From():span.To()], Span: span}
		default:
			return e
		}
	}
	return nil
}

func (p *parser) parsePrimary() expr.Expr {
	t := p.next()
	switch t.kind {
	case Ident:
		return &expr.Identifier{Name: t.lexeme, Span: t.span}
	case Number:
		return &expr.Literal{Raw: t.lexeme, Type: expr.Number, Span: t.span}
	case String:
		return &expr.Literal{Raw: t.lexeme, Type: expr.Text, Span: t.span}
	case Punct:
		if t.lexeme == "(" {
			return p.parseGrouping(t)
		}
	}
	p.fail(t.span, "unexpected %v", t)
	return nil
}

func (p *parser) parseGrouping(open Token) expr.Expr {
	g := &expr.Grouping{}
	if p.current().is(")") {
		p.fail(p.current().span, "empty parentheses")
		return nil
	}
	for p.err == nil {
		g.Elements = append(g.Elements, p.parseExpr(1))
		if !p.current().is(",") {
			break
		}
		p.next()
	}
	end := p.expect(")")
	g.Span = open.span.Extend(end.span)
	if p.err != nil {
		return nil
	}
	return g
}

// parseArgs parses a parenthesized argument list, starting at '('. It returns
// the arguments and the span of the closing parenthesis.
func (p *parser) parseArgs() ([]expr.Argument, reassoc.Span) {
	p.expect("(")
	args := []expr.Argument{}
	if p.current().is(")") {
		return args, p.next().span
	}
	for p.err == nil {
		var arg expr.Argument
		if p.current().kind == Ident && p.peek(1).is(":") {
			arg.Label = p.next().lexeme
			p.next()
		}
		arg.Value = p.parseExpr(1)
		args = append(args, arg)
		if !p.current().is(",") {
			break
		}
		p.next()
	}
	end := p.expect(")")
	return args, end.span
}
