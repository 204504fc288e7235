package spelling

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/klauspost/compress/gzip"
)

// en.json.gz maps lowercase English words to corpus frequencies.
//
//go:embed en.json.gz
var builtinFrequencies []byte

// LoadBuiltin loads the embedded English word-frequency dictionary.
func (m *Model) LoadBuiltin() error {
	zr, err := gzip.NewReader(bytes.NewReader(builtinFrequencies))
	if err != nil {
		return fmt.Errorf("decompress builtin dictionary: %w", err)
	}
	defer zr.Close()

	if err := m.loadFrequency(zr); err != nil {
		return fmt.Errorf("load builtin dictionary: %w", err)
	}
	return nil
}

// NewEnglish returns a model preloaded with the embedded English dictionary.
func NewEnglish(opts Options) (*Model, error) {
	m := New(opts)
	if err := m.LoadBuiltin(); err != nil {
		return nil, err
	}
	return m, nil
}
