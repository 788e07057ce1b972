package formula

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_Segments(t *testing.T) {
	testCases := []struct {
		name              string
		formula           string
		expectedSegments  []string
		expectedPositions []int
	}{
		{
			name:              "multiple references",
			formula:           "$123+#345*(1+#567)",
			expectedSegments:  []string{"$123", "+", "#345", "*(1+", "#567", ")"},
			expectedPositions: []int{0, 2, 4},
		},
		{
			name:              "empty input",
			formula:           "",
			expectedSegments:  []string{},
			expectedPositions: []int{},
		},
		{
			name:              "no references",
			formula:           "100*100",
			expectedSegments:  []string{"100*100"},
			expectedPositions: []int{},
		},
		{
			name:              "external reference with lag",
			formula:           "$1*(1+#2$3)",
			expectedSegments:  []string{"$1", "*(1+", "#2$3", ")"},
			expectedPositions: []int{0, 2},
		},
		{
			name:              "adjacent references",
			formula:           "#1#2$1",
			expectedSegments:  []string{"#1", "#2$1"},
			expectedPositions: []int{0, 1},
		},
		{
			name:              "bare sigils",
			formula:           "$+#",
			expectedSegments:  []string{"$", "+", "#"},
			expectedPositions: []int{0, 2},
		},
		{
			name:              "lag sigil without digits stays separate",
			formula:           "#4$+1",
			expectedSegments:  []string{"#4", "$", "+1"},
			expectedPositions: []int{0, 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := Tokenize(tc.formula)
			assert.Equal(t, tc.expectedSegments, tokens.Segments())
			assert.Equal(t, tc.expectedPositions, tokens.ReferencePositions())
			assert.Equal(t, tc.formula, tokens.String())
		})
	}
}

func TestTokenize_TokenFields(t *testing.T) {
	tokens := Tokenize("$12-#34$5+#6")
	require.Len(t, tokens, 5)

	assert.Equal(t, Token{Kind: InternalRef, Text: "$12", Lag: 12}, tokens[0])
	assert.Equal(t, Token{Kind: Literal, Text: "-"}, tokens[1])
	assert.Equal(t, Token{Kind: ExternalRef, Text: "#34$5", ID: "34", Lag: 5}, tokens[2])
	assert.Equal(t, Token{Kind: Literal, Text: "+"}, tokens[3])
	assert.Equal(t, Token{Kind: ExternalRef, Text: "#6", ID: "6"}, tokens[4])
}

func TestTokenize_Malformed(t *testing.T) {
	t.Run("internal sigil without digits", func(t *testing.T) {
		tokens := Tokenize("1+$")
		require.Len(t, tokens, 2)
		assert.True(t, tokens[1].Malformed)
		assert.True(t, errors.Is(tokens[1].Err(), ErrMalformedReference))
	})

	t.Run("external sigil without digits", func(t *testing.T) {
		tokens := Tokenize("#*2")
		require.Len(t, tokens, 2)
		assert.Equal(t, ExternalRef, tokens[0].Kind)
		assert.True(t, tokens[0].Malformed)
		assert.ErrorIs(t, tokens[0].Err(), ErrMalformedReference)
	})

	t.Run("lag too large", func(t *testing.T) {
		tokens := Tokenize("$99999999999999999999999")
		require.Len(t, tokens, 1)
		assert.True(t, tokens[0].Malformed)
	})

	t.Run("well formed has no error", func(t *testing.T) {
		assert.NoError(t, Tokenize("#1")[0].Err())
	})
}

func TestTokenize_RoundTrip(t *testing.T) {
	formulas := []string{
		"",
		"1",
		"$1+1",
		"#1",
		"#1$2*(#3-$4)/100",
		"$$##",
		"Hello $ world #",
		"(#10$0+#11$12)*0.5",
		"– #REF!",
	}
	for _, f := range formulas {
		t.Run(f, func(t *testing.T) {
			assert.Equal(t, f, Tokenize(f).String())
		})
	}
}

func TestExternalIDs(t *testing.T) {
	testCases := []struct {
		name     string
		formula  string
		expected []string
	}{
		{name: "none", formula: "$1*2", expected: nil},
		{name: "single", formula: "#123456*2", expected: []string{"123456"}},
		{name: "lag ignored", formula: "#1$3+#2", expected: []string{"1", "2"}},
		{name: "deduplicated", formula: "#2+#1$1+#2$4", expected: []string{"2", "1"}},
		{name: "malformed skipped", formula: "#+#7", expected: []string{"7"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExternalIDs(tc.formula))
		})
	}
}

func TestTokenKind_String(t *testing.T) {
	assert.Equal(t, "literal", Literal.String())
	assert.Equal(t, "internal", InternalRef.String())
	assert.Equal(t, "external", ExternalRef.String())
	assert.Equal(t, "unknown", TokenKind(9).String())
}
