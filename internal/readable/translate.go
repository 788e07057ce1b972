package readable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/finsheet/internal/formula"
)

// ToHumanReadable rewrites a storage formula into display syntax. currentID
// is the id of the variable owning the formula.
func ToHumanReadable(storage, currentID string, l *Lookup) (string, error) {
	var sb strings.Builder
	for _, tok := range formula.Tokenize(storage) {
		if err := tok.Err(); err != nil {
			return "", err
		}

		id := tok.ID
		switch tok.Kind {
		case formula.Literal:
			sb.WriteString(tok.Text)
			continue
		case formula.InternalRef:
			id = currentID
		}

		name, ok := l.Name(id)
		if !ok {
			return "", &UnknownIDError{ID: id}
		}
		fmt.Fprintf(&sb, "%s[%d]", name, tok.Lag)
	}
	return sb.String(), nil
}

// FromHumanReadable rewrites a display formula into storage syntax. A name
// resolving to currentID becomes an internal reference; any other name
// becomes an external one, with the lag omitted when it is 0.
func FromHumanReadable(display, currentID string, l *Lookup) (string, error) {
	p := &parser{input: display, currentID: currentID, lookup: l}
	return p.parse()
}

type parser struct {
	input     string
	currentID string
	lookup    *Lookup

	pos int
	out strings.Builder
	// bareExternal is set right after emitting "#id" without a lag, where a
	// following "$n" would be read back as that reference's lag.
	bareExternal bool
	// afterRef is set right after emitting any reference, where a following
	// digit would be read back as part of its id or lag.
	afterRef bool
}

func (p *parser) parse() (string, error) {
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch {
		case isSpace(c):
			p.pos++
		case isOperator(c):
			p.emitLiteral(c)
			p.pos++
		case isNumberChar(c):
			if err := p.number(); err != nil {
				return "", err
			}
		case c == '[' || c == ']':
			return "", p.errorf(p.pos, "unexpected %q", c)
		default:
			if err := p.reference(); err != nil {
				return "", err
			}
		}
	}
	return p.out.String(), nil
}

func (p *parser) number() error {
	if p.afterRef {
		return p.errorf(p.pos, "number directly after a reference")
	}
	for p.pos < len(p.input) && isNumberChar(p.input[p.pos]) {
		p.emitLiteral(p.input[p.pos])
		p.pos++
	}

	next := p.skipSpace()
	if next < len(p.input) && isNameStart(p.input[next]) {
		return p.errorf(next, "name must not start with a digit")
	}
	return nil
}

func (p *parser) reference() error {
	start := p.pos
	for p.pos < len(p.input) && !isOperator(p.input[p.pos]) && p.input[p.pos] != '[' && p.input[p.pos] != ']' {
		p.pos++
	}
	name := strings.TrimSpace(p.input[start:p.pos])

	lag := 0
	if p.pos < len(p.input) && p.input[p.pos] == '[' {
		open := p.pos
		end := strings.IndexByte(p.input[open:], ']')
		if end < 0 {
			return p.errorf(open, "unclosed '['")
		}
		raw := strings.TrimSpace(p.input[open+1 : open+end])
		n, err := parseLag(raw)
		if err != nil {
			return p.errorf(open+1, "invalid lag %q", raw)
		}
		lag = n
		p.pos = open + end + 1
	}

	id, ok := p.lookup.ID(name)
	if !ok {
		return p.errorf(start, "unknown name %q", name)
	}

	if id == p.currentID {
		if p.bareExternal {
			return p.errorf(start, "reference to %q directly after a reference without lag", name)
		}
		p.out.WriteString(string(formula.InternalSigil) + strconv.Itoa(lag))
		p.bareExternal = false
	} else {
		p.out.WriteString(string(formula.ExternalSigil) + id)
		if lag > 0 {
			p.out.WriteString(string(formula.InternalSigil) + strconv.Itoa(lag))
		}
		p.bareExternal = lag == 0
	}
	p.afterRef = true
	return nil
}

func (p *parser) emitLiteral(c byte) {
	p.out.WriteByte(c)
	p.bareExternal = false
	p.afterRef = false
}

// skipSpace returns the offset of the next non-space byte without consuming
// it.
func (p *parser) skipSpace() int {
	i := p.pos
	for i < len(p.input) && isSpace(p.input[i]) {
		i++
	}
	return i
}

func (p *parser) errorf(pos int, format string, args ...any) error {
	return &ParseError{Input: p.input, Pos: pos, Reason: fmt.Sprintf(format, args...)}
}

func parseLag(raw string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("empty lag")
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, fmt.Errorf("lag %q is not a non-negative integer", raw)
		}
	}
	return strconv.Atoi(raw)
}

func isOperator(c byte) bool {
	return strings.IndexByte("+-*/()", c) >= 0
}

func isNumberChar(c byte) bool {
	return c == '.' || (c >= '0' && c <= '9')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isNameStart(c byte) bool {
	return !isSpace(c) && !isOperator(c) && !isNumberChar(c) && c != '[' && c != ']'
}
