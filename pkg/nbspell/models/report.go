package models

import (
	"encoding/json"
	"sort"
)

// WordSet is a deduplicated, unordered set of words.
type WordSet map[string]struct{}

// NewWordSet builds a set from the given words.
func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	s.Add(words...)
	return s
}

// Add inserts words into the set.
func (s WordSet) Add(words ...string) {
	for _, w := range words {
		s[w] = struct{}{}
	}
}

// Has reports whether word is in the set.
func (s WordSet) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Sorted returns the words in lexical order.
func (s WordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted array.
func (s WordSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array of words.
func (s *WordSet) UnmarshalJSON(data []byte) error {
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return err
	}
	*s = NewWordSet(words...)
	return nil
}

// Report maps notebook paths to the unknown words found in them.
type Report struct {
	// ID identifies the run that produced the report.
	ID string `json:"id,omitempty"`
	// Root is the directory that was scanned.
	Root string `json:"root,omitempty"`
	// NotebooksChecked counts the notebooks that were opened.
	NotebooksChecked int `json:"notebooks_checked"`
	// Misspelled maps a notebook path to its unknown words.
	// A path is present only when at least one word was found.
	Misspelled map[string]WordSet `json:"misspelled"`
	// Suggestions maps an unknown word to candidate corrections (optional).
	Suggestions map[string][]string `json:"suggestions,omitempty"`
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{Misspelled: make(map[string]WordSet)}
}

// Add records unknown words for path. Empty word lists leave the report untouched.
func (r *Report) Add(path string, words ...string) {
	if len(words) == 0 {
		return
	}
	if r.Misspelled == nil {
		r.Misspelled = make(map[string]WordSet)
	}
	set, ok := r.Misspelled[path]
	if !ok {
		set = make(WordSet)
		r.Misspelled[path] = set
	}
	set.Add(words...)
}

// Merge folds other into r.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.NotebooksChecked += other.NotebooksChecked
	for path, words := range other.Misspelled {
		r.Add(path, words.Sorted()...)
	}
	for word, candidates := range other.Suggestions {
		r.Suggest(word, candidates)
	}
}

// Suggest records candidate corrections for word.
func (r *Report) Suggest(word string, candidates []string) {
	if r.Suggestions == nil {
		r.Suggestions = make(map[string][]string)
	}
	r.Suggestions[word] = candidates
}

// Empty reports whether no misspelled words were recorded.
func (r *Report) Empty() bool {
	return r == nil || len(r.Misspelled) == 0
}

// Paths returns the offending notebook paths in lexical order.
func (r *Report) Paths() []string {
	paths := make([]string, 0, len(r.Misspelled))
	for p := range r.Misspelled {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Words returns the sorted unknown words recorded for path.
func (r *Report) Words(path string) []string {
	return r.Misspelled[path].Sorted()
}

// WordCount returns the number of (path, word) pairs in the report.
func (r *Report) WordCount() int {
	n := 0
	for _, words := range r.Misspelled {
		n += len(words)
	}
	return n
}
