package spelling

import (
	"sort"
	"strings"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// Candidates returns up to limit dictionary words close to word. Words one
// edit away are preferred; words two edits away are only considered when
// none is one edit away. Results are ordered by frequency, then lexically.
// A limit of zero or less returns every candidate.
func (m *Model) Candidates(word string, limit int) []string {
	if word == "" || m.Len() == 0 {
		return nil
	}
	k := m.key(word)
	if _, ok := m.freq[k]; ok {
		return []string{k}
	}

	first := edits1(k)
	found := m.known(first)
	if len(found) == 0 {
		second := make(map[string]struct{})
		for e := range first {
			for e2 := range edits1(e) {
				second[e2] = struct{}{}
			}
		}
		found = m.known(second)
	}

	sort.Slice(found, func(i, j int) bool {
		fi, fj := m.freq[found[i]], m.freq[found[j]]
		if fi != fj {
			return fi > fj
		}
		return found[i] < found[j]
	})
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}
	return found
}

// Correction returns the most likely correction for word, or word itself
// when nothing close is known.
func (m *Model) Correction(word string) string {
	c := m.Candidates(word, 1)
	if len(c) == 0 {
		return word
	}
	return c[0]
}

func (m *Model) known(words map[string]struct{}) []string {
	var out []string
	for w := range words {
		if _, ok := m.freq[w]; ok {
			out = append(out, w)
		}
	}
	return out
}

// edits1 returns every string one deletion, transposition, replacement or
// insertion away from word.
func edits1(word string) map[string]struct{} {
	runes := []rune(word)
	out := make(map[string]struct{})
	var b strings.Builder
	emit := func(parts ...[]rune) {
		b.Reset()
		for _, p := range parts {
			b.WriteString(string(p))
		}
		out[b.String()] = struct{}{}
	}
	for i := 0; i <= len(runes); i++ {
		left, right := runes[:i], runes[i:]
		if len(right) > 0 {
			emit(left, right[1:])
		}
		if len(right) > 1 {
			emit(left, []rune{right[1], right[0]}, right[2:])
		}
		for _, c := range letters {
			if len(right) > 0 {
				emit(left, []rune{c}, right[1:])
			}
			emit(left, []rune{c}, right)
		}
	}
	return out
}
