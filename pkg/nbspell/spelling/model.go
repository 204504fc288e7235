// Package spelling provides the word-frequency dictionary used to classify
// tokens as known or unknown.
package spelling

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/ukaji3/nbspell-go/pkg/nbspell/normalize"
)

// longestSlack is how many runes a token may exceed the longest dictionary
// word by before it is no longer checked.
const longestSlack = 3

// Options configures a Model.
type Options struct {
	// CaseSensitive disables case folding on load and lookup.
	CaseSensitive bool
}

// Model is a word-frequency dictionary. It is not safe for concurrent
// mutation; lookups on a fully loaded model may run concurrently only when
// CaseSensitive is set, since the case folder keeps internal state.
type Model struct {
	caseSensitive bool
	fold          cases.Caser
	freq          map[string]int
	longest       int
}

// New creates an empty model.
func New(opts Options) *Model {
	return &Model{
		caseSensitive: opts.CaseSensitive,
		fold:          cases.Fold(),
		freq:          make(map[string]int),
	}
}

// key normalizes a word into its dictionary form.
func (m *Model) key(word string) string {
	w := norm.NFC.String(word)
	if m.caseSensitive {
		return w
	}
	return m.fold.String(w)
}

// Add increases the frequency of word by count.
func (m *Model) Add(word string, count int) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}
	if count < 1 {
		count = 1
	}
	k := m.key(word)
	m.freq[k] += count
	if n := utf8.RuneCountInString(k); n > m.longest {
		m.longest = n
	}
}

// Load bulk-loads words, each counted once.
func (m *Model) Load(words ...string) {
	for _, w := range words {
		m.Add(w, 1)
	}
}

// Len returns the number of distinct dictionary entries.
func (m *Model) Len() int {
	return len(m.freq)
}

// Longest returns the rune length of the longest dictionary entry.
func (m *Model) Longest() int {
	return m.longest
}

// Frequency returns how often word was loaded (0 when unknown).
func (m *Model) Frequency(word string) int {
	return m.freq[m.key(word)]
}

// Known reports whether word is in the dictionary.
func (m *Model) Known(word string) bool {
	_, ok := m.freq[m.key(word)]
	return ok
}

// ShouldCheck reports whether word is eligible for a dictionary lookup.
// Single punctuation characters, numbers, "nan" and tokens much longer than
// any dictionary word are never reported.
func (m *Model) ShouldCheck(word string) bool {
	if word == "" {
		return false
	}
	if len(word) == 1 && normalize.IsPunctuation(rune(word[0])) {
		return false
	}
	if utf8.RuneCountInString(word) > m.longest+longestSlack {
		return false
	}
	if strings.EqualFold(word, "nan") {
		return false
	}
	if _, err := strconv.ParseFloat(word, 64); err == nil {
		return false
	}
	return true
}

// Unknown returns the words that are eligible for checking and absent from
// the dictionary. Words keep their original form; duplicates are dropped and
// first-seen order is preserved.
func (m *Model) Unknown(words []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		if !m.ShouldCheck(w) || m.Known(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}
