package store

import (
	"regexp"
	"strings"
)

// tokenRegex matches maximal alphanumeric runs. Underscores, punctuation
// and whitespace are separators and are never indexed.
var tokenRegex = regexp.MustCompile(`[a-z0-9]+`)

// Tokenize splits text into normalized search tokens.
// The input is lowercased first; every maximal run of ASCII alphanumeric
// characters becomes one token. No stop-word removal, no stemming.
// Deterministic and side-effect free.
func Tokenize(text string) []string {
	return tokenRegex.FindAllString(strings.ToLower(text), -1)
}

// NormalizeToken applies the ingestion-time normalization to a query
// token so that lookups match what was indexed.
func NormalizeToken(token string) string {
	return strings.ToLower(token)
}
