package nbspell

import (
	"errors"
	"fmt"

	"github.com/ukaji3/nbspell-go/pkg/nbspell/parser"
)

// ErrNotFound indicates the scan root does not exist.
var ErrNotFound = errors.New("path not found")

// ErrInvalidNotebook indicates a notebook file could not be decoded.
var ErrInvalidNotebook = parser.ErrInvalidNotebook

// CheckError represents a failure while checking one file.
type CheckError struct {
	Path  string
	Stage string // "dictionary", "read", "parse", "walk"
	Err   error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("check error in %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *CheckError) Unwrap() error {
	return e.Err
}

// NewCheckError creates a new CheckError.
func NewCheckError(path, stage string, err error) *CheckError {
	return &CheckError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
