package formula

import "strconv"

// Tokenize splits a formula into literal and reference tokens, scanning left
// to right. It never fails: malformed references are returned as tokens with
// Malformed set so that callers decide how to surface them.
func Tokenize(formula string) Tokens {
	tokens := make(Tokens, 0, 4)
	for i := 0; i < len(formula); {
		var tok Token
		switch formula[i] {
		case InternalSigil:
			tok, i = scanInternal(formula, i)
		case ExternalSigil:
			tok, i = scanExternal(formula, i)
		default:
			start := i
			for i < len(formula) && !isSigil(formula[i]) {
				i++
			}
			tok = Token{Kind: Literal, Text: formula[start:i]}
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// ExternalIDs returns the ids of every well-formed external reference in the
// formula, deduplicated, in order of first appearance. Lags are ignored.
func ExternalIDs(formula string) []string {
	var ids []string
	seen := make(map[string]struct{})
	for _, tok := range Tokenize(formula) {
		if tok.Kind != ExternalRef || tok.Malformed {
			continue
		}
		if _, ok := seen[tok.ID]; ok {
			continue
		}
		seen[tok.ID] = struct{}{}
		ids = append(ids, tok.ID)
	}
	return ids
}

func scanInternal(formula string, start int) (Token, int) {
	digits, end := scanDigits(formula, start+1)
	tok := Token{Kind: InternalRef, Text: formula[start:end]}
	tok.Lag, tok.Malformed = parseLag(digits)
	return tok, end
}

func scanExternal(formula string, start int) (Token, int) {
	id, end := scanDigits(formula, start+1)
	tok := Token{Kind: ExternalRef, ID: id, Malformed: id == ""}

	// The lag suffix is only consumed when its '$' is followed by a digit;
	// otherwise the '$' starts a token of its own.
	if end+1 < len(formula) && formula[end] == InternalSigil && isDigit(formula[end+1]) {
		var lag string
		lag, end = scanDigits(formula, end+1)
		var bad bool
		tok.Lag, bad = parseLag(lag)
		tok.Malformed = tok.Malformed || bad
	}
	tok.Text = formula[start:end]
	return tok, end
}

func scanDigits(s string, i int) (string, int) {
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[start:i], i
}

func parseLag(digits string) (int, bool) {
	if digits == "" {
		return 0, true
	}
	lag, err := strconv.Atoi(digits)
	if err != nil {
		return 0, true
	}
	return lag, false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSigil(c byte) bool {
	return c == InternalSigil || c == ExternalSigil
}
