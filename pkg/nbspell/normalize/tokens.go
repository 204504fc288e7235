package normalize

import "strings"

// Tokens splits s on runs of whitespace.
func Tokens(s string) []string {
	return strings.Fields(s)
}

// Words strips punctuation from s and splits the result into tokens.
func Words(s string) []string {
	return Tokens(Punctuation(s))
}
