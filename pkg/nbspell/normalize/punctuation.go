// Package normalize turns notebook cell text into spell-checkable tokens.
package normalize

import "strings"

// ASCIIPunctuation is the set of characters removed by Punctuation.
const ASCIIPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var punctuationTable = func() [128]bool {
	var t [128]bool
	for i := 0; i < len(ASCIIPunctuation); i++ {
		t[ASCIIPunctuation[i]] = true
	}
	return t
}()

// IsPunctuation reports whether r belongs to the ASCII punctuation set.
func IsPunctuation(r rune) bool {
	return r >= 0 && r < 128 && punctuationTable[r]
}

// Punctuation returns s with every ASCII punctuation character removed.
// All other bytes, including whitespace, non-ASCII text and invalid UTF-8,
// are kept as they are. UTF-8 continuation bytes are never ASCII, so the
// byte-wise filter cannot split a multibyte character.
func Punctuation(s string) string {
	if strings.IndexFunc(s, IsPunctuation) < 0 {
		return s
	}
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 128 && punctuationTable[c] {
			continue
		}
		b = append(b, c)
	}
	return string(b)
}
