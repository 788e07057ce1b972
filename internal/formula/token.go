package formula

import (
	"errors"
	"strconv"
	"strings"
)

const (
	// InternalSigil starts a reference to the formula's own variable.
	InternalSigil = '$'
	// ExternalSigil starts a reference to another variable.
	ExternalSigil = '#'
)

// ErrMalformedReference is returned for a sigil that is not followed by the
// digits the grammar requires.
var ErrMalformedReference = errors.New("malformed reference")

// TokenKind tags the variant held by a Token.
type TokenKind uint8

const (
	Literal TokenKind = iota
	InternalRef
	ExternalRef
)

// String returns a readable name for the kind.
func (k TokenKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case InternalRef:
		return "internal"
	case ExternalRef:
		return "external"
	default:
		return "unknown"
	}
}

// Token is one segment of a tokenized formula.
type Token struct {
	Kind TokenKind
	// Text is the exact source text of the segment.
	Text string
	// ID is the referenced variable id of an ExternalRef.
	ID string
	// Lag is the number of periods back the reference points to. For an
	// ExternalRef without an explicit lag it is 0.
	Lag int
	// Malformed is set for a reference whose sigil is missing its digits.
	Malformed bool
}

// IsReference reports whether the token is an internal or external reference.
func (t Token) IsReference() bool {
	return t.Kind != Literal
}

// Err returns ErrMalformedReference for malformed references and nil otherwise.
func (t Token) Err() error {
	if t.Malformed {
		return &ReferenceError{Text: t.Text, Err: ErrMalformedReference}
	}
	return nil
}

// ReferenceError reports a problem with a specific reference token.
type ReferenceError struct {
	Text string
	Err  error
}

func (e *ReferenceError) Error() string {
	return strconv.Quote(e.Text) + ": " + e.Err.Error()
}

func (e *ReferenceError) Unwrap() error {
	return e.Err
}

// Tokens is the ordered result of Tokenize.
type Tokens []Token

// Segments returns the source text of every token in order.
func (ts Tokens) Segments() []string {
	segments := make([]string, len(ts))
	for i, t := range ts {
		segments[i] = t.Text
	}
	return segments
}

// ReferencePositions returns the indexes of all reference tokens.
func (ts Tokens) ReferencePositions() []int {
	positions := make([]int, 0, len(ts))
	for i, t := range ts {
		if t.IsReference() {
			positions = append(positions, i)
		}
	}
	return positions
}

// String reassembles the formula text.
func (ts Tokens) String() string {
	var sb strings.Builder
	for _, t := range ts {
		sb.WriteString(t.Text)
	}
	return sb.String()
}
