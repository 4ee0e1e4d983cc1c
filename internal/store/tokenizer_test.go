package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_LowercasesAndSplits(t *testing.T) {
	// Given: mixed-case text with punctuation
	text := "Urgent Meeting, tomorrow!"

	// When: tokenizing
	tokens := Tokenize(text)

	// Then: lowercase tokens, punctuation discarded
	require.Len(t, tokens, 3)
	assert.Equal(t, []string{"urgent", "meeting", "tomorrow"}, tokens)
}

func TestTokenize_Separators(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect []string
	}{
		{
			name:   "whitespace runs",
			input:  "hello   world",
			expect: []string{"hello", "world"},
		},
		{
			name:   "punctuation",
			input:  "re: project (final)",
			expect: []string{"re", "project", "final"},
		},
		{
			name:   "underscore is a separator",
			input:  "snake_case",
			expect: []string{"snake", "case"},
		},
		{
			name:   "digits stay inside tokens",
			input:  "room 42b",
			expect: []string{"room", "42b"},
		},
		{
			name:   "email address splits into parts",
			input:  "ana@mail.com",
			expect: []string{"ana", "mail", "com"},
		},
		{
			name:   "only separators",
			input:  "... --- !!!",
			expect: nil,
		},
		{
			name:   "empty input",
			input:  "",
			expect: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Tokenize(tt.input))
		})
	}
}

func TestTokenize_Deterministic(t *testing.T) {
	text := "The quick brown fox; the quick brown fox"
	assert.Equal(t, Tokenize(text), Tokenize(text))
}

func TestTokenize_RepeatedWordsKept(t *testing.T) {
	// The tokenizer does not dedup; the term index does.
	tokens := Tokenize("go go go")
	assert.Equal(t, []string{"go", "go", "go"}, tokens)
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "hello", NormalizeToken("HeLLo"))
	assert.Equal(t, "", NormalizeToken(""))
}
