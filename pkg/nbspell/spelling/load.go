package spelling

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Format identifies a dictionary file layout.
type Format string

const (
	// FormatAuto picks the format from the file name.
	FormatAuto Format = ""
	// FormatWordList is one word per line; blank lines and # comments are skipped.
	FormatWordList Format = "words"
	// FormatHunspell is a hunspell .dic file: an entry count line followed by
	// word/FLAGS entries.
	FormatHunspell Format = "hunspell"
	// FormatFrequency is a JSON object mapping words to counts.
	FormatFrequency Format = "frequency"
)

// DetectFormat guesses the format of a dictionary file from its name.
// A trailing .gz is ignored.
func DetectFormat(path string) Format {
	name := strings.ToLower(strings.TrimSuffix(strings.ToLower(path), ".gz"))
	switch filepath.Ext(name) {
	case ".dic":
		return FormatHunspell
	case ".json":
		return FormatFrequency
	default:
		return FormatWordList
	}
}

// LoadFile loads a dictionary file into the model. Files ending in .gz are
// decompressed first.
func (m *Model) LoadFile(path string, format Format) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("decompress dictionary %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	if format == FormatAuto {
		format = DetectFormat(path)
	}
	if err := m.LoadReader(r, format); err != nil {
		return fmt.Errorf("load dictionary %s: %w", path, err)
	}
	return nil
}

// LoadReader loads dictionary entries in the given format.
func (m *Model) LoadReader(r io.Reader, format Format) error {
	switch format {
	case FormatWordList, FormatAuto:
		return m.loadWordList(r)
	case FormatHunspell:
		return m.loadHunspell(r)
	case FormatFrequency:
		return m.loadFrequency(r)
	default:
		return fmt.Errorf("unsupported dictionary format %q", format)
	}
}

func (m *Model) loadWordList(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.Add(strings.Fields(line)[0], 1)
	}
	return scanner.Err()
}

func (m *Model) loadHunspell(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			first = false
			if _, err := strconv.Atoi(line); err == nil {
				continue
			}
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// Morphological fields follow a tab or space.
		entry := strings.Fields(line)[0]
		if i := strings.IndexByte(entry, '/'); i >= 0 {
			entry = entry[:i]
		}
		m.Add(entry, 1)
	}
	return scanner.Err()
}

func (m *Model) loadFrequency(r io.Reader) error {
	var counts map[string]int
	if err := json.NewDecoder(r).Decode(&counts); err != nil {
		return fmt.Errorf("decode word frequency: %w", err)
	}
	for word, count := range counts {
		m.Add(word, count)
	}
	return nil
}
