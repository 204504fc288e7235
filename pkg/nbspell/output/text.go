package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ukaji3/nbspell-go/pkg/nbspell/models"
)

var (
	pathColors       = text.Colors{text.Bold}
	wordColors       = text.Colors{text.FgRed}
	suggestionColors = text.Colors{text.FgGreen}
)

// WriteText prints one line per offending notebook in path order:
//
//	Misspelled words in <path>: <word1>, <word2>, ...
//
// Words are sorted. With suggestions enabled, every word is followed by an
// indented "<word> -> <candidate>, ..." line when candidates exist.
func WriteText(w io.Writer, r *models.Report, opts Options) error {
	if r.Empty() {
		return nil
	}
	bw := bufio.NewWriter(w)
	for _, path := range r.Paths() {
		words := r.Words(path)
		shown := make([]string, len(words))
		for i, word := range words {
			shown[i] = colorize(opts.Color, wordColors, word)
		}
		fmt.Fprintf(bw, "Misspelled words in %s: %s\n",
			colorize(opts.Color, pathColors, path), strings.Join(shown, ", "))

		if !opts.Suggestions {
			continue
		}
		for _, word := range words {
			candidates := r.Suggestions[word]
			if len(candidates) == 0 {
				continue
			}
			fmt.Fprintf(bw, "  %s -> %s\n", word,
				colorize(opts.Color, suggestionColors, strings.Join(candidates, ", ")))
		}
	}
	return bw.Flush()
}

func colorize(enabled bool, colors text.Colors, s string) string {
	if !enabled {
		return s
	}
	return colors.Sprint(s)
}
