package syntax

import (
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/reassoc"
	"github.com/pkg/errors"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token categories.
const (
	EOF reassoc.TokType = iota - 1
	Ident
	Number
	String
	Macro
	Operator
	Punct
)

var tokTypeNames = map[reassoc.TokType]string{
	EOF: "EOF", Ident: "identifier", Number: "number", String: "string",
	Macro: "macro", Operator: "operator", Punct: "punctuation",
}

// TokTypeString returns a printable name for a token category.
func TokTypeString(t reassoc.TokType) string {
	if s, ok := tokTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("<%d>", t)
}

// Operators, longest first within each group. lexmachine prefers the longest
// match, the order only matters for documentation.
var operators = []string{
	"+=", "-=", "*=", "/=", "%=",
	"==", "!=", "<=", ">=", "&&", "||",
	"+", "-", "*", "/", "%", "=", "<", ">", "!",
}

// The tokens representing literal one-char lexemes
var punctuation = []string{"(", ")", "[", "]", ",", ":"}

var lexer *lexmachine.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time creation of the lexer

// Lexer returns the DFA-based lexer for expression text. It is created once
// and shared; lexmachine lexers may produce any number of independent scanners.
func Lexer() (*lexmachine.Lexer, error) {
	initOnce.Do(func() {
		tracer().Infof("Creating lexer")
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`( |\t|\n|\r)+`), skip)
		lx.Add([]byte(`\#([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken(Macro))
		lx.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*(\.([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*)*`),
			makeToken(Ident))
		lx.Add([]byte(`[0-9]+(\.[0-9]+)?((e|E)(\+|\-)?[0-9]+)?`), makeToken(Number))
		lx.Add([]byte(`\"[^"]*\"`), makeToken(String))
		for _, op := range operators {
			lx.Add([]byte(escape(op)), makeToken(Operator))
		}
		for _, p := range punctuation {
			lx.Add([]byte(escape(p)), makeToken(Punct))
		}
		if err := lx.Compile(); err != nil {
			tracer().Errorf("Error compiling DFA: %v", err)
			lexerErr = errors.Wrap(err, "cannot compile lexer")
			return
		}
		lexer = lx
	})
	return lexer, lexerErr
}

func escape(lit string) string {
	return "\\" + strings.Join(strings.Split(lit, ""), "\\")
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(typ reassoc.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

// --- Tokens ----------------------------------------------------------------

// Token is the token type produced by Scanner. It implements reassoc.Token.
type Token struct {
	kind   reassoc.TokType
	lexeme string
	span   reassoc.Span
}

var _ reassoc.Token = Token{}

func (t Token) TokType() reassoc.TokType {
	return t.kind
}

func (t Token) Lexeme() string {
	return t.lexeme
}

func (t Token) Span() reassoc.Span {
	return t.span
}

func (t Token) String() string {
	if t.kind == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", TokTypeString(t.kind), t.lexeme)
}

// is is a predicate: is t an operator or punctuation with the given lexeme?
func (t Token) is(lexeme string) bool {
	return (t.kind == Operator || t.kind == Punct) && t.lexeme == lexeme
}

// --- Scanner ---------------------------------------------------------------

// Scanner splits expression text into tokens.
type Scanner struct {
	scanner *lexmachine.Scanner
	Error   func(error) // error handler, called for unrecognized input
	end     uint64
}

// NewScanner creates a scanner for an input string.
func NewScanner(input string) (*Scanner, error) {
	lx, err := Lexer()
	if err != nil {
		return nil, err
	}
	s, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, errors.Wrap(err, "cannot create scanner")
	}
	return &Scanner{scanner: s, Error: logError, end: uint64(len(input))}, nil
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// SetErrorHandler sets an error handler for the scanner.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// NextToken returns the next token of the input. At the end of the input, it
// returns a token of category EOF. Unrecognized input is reported to the error
// handler and skipped.
func (s *Scanner) NextToken() Token {
	tok, err, eof := s.scanner.Next()
	for err != nil {
		if ui, is := err.(*machines.UnconsumedInput); is {
			resume := ui.FailTC
			if resume <= ui.StartTC { // always make progress
				resume = ui.StartTC + 1
			}
			if resume > len(ui.Text) {
				resume = len(ui.Text)
			}
			s.Error(&SyntaxError{
				Span: reassoc.Span{uint64(ui.StartTC), uint64(resume)},
				Msg:  fmt.Sprintf("unrecognized input %q", string(ui.Text[ui.StartTC:resume])),
			})
			s.scanner.TC = resume
		} else {
			s.Error(err)
			return Token{kind: EOF, span: reassoc.Span{s.end, s.end}}
		}
		tok, err, eof = s.scanner.Next()
	}
	if eof {
		return Token{kind: EOF, span: reassoc.Span{s.end, s.end}}
	}
	t := tok.(*lexmachine.Token)
	token := Token{
		kind:   reassoc.TokType(t.Type),
		lexeme: string(t.Lexeme),
		span:   reassoc.Span{uint64(t.TC), uint64(t.TC + len(t.Lexeme))},
	}
	tracer().Debugf("token %v at %v", token, token.span)
	return token
}
