package reassoc

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to scanners to define them.
type TokType int

// Tokens represent input tokens of expression text. They are produced by a scanner
// and end up as leafs or operator symbols of expression trees.
//
// An example would be a token for a floating point numer:
//
//    TokType = Number      // identifier for this kind of tokens (scanner specific)
//    Lexeme  = "3.1316"    // lexeme how it appreared in the input stream
//    Span    = 67…73       // occured from position 67 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. Expression nodes
// keep track of the input positions they stem from. A span denotes a start position
// and the position just behind the end.
//
// Spans are formatting metadata only: they never take part in comparing trees.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other. A null span
// is neutral.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other.IsNull() {
		return s
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
