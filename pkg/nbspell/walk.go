package nbspell

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ukaji3/nbspell-go/pkg/nbspell/models"
)

// CheckDirectory checks every notebook below root and merges the results.
// Files are visited in lexical order. The first notebook that cannot be read
// or parsed aborts the walk. Unreadable directories are skipped.
// A root that names a single notebook file is checked on its own.
func (c *Checker) CheckDirectory(root string) (*models.Report, error) {
	if root == "" {
		root = "."
	}
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, root)
		}
		return nil, NewCheckError(root, "walk", err)
	}

	report := models.NewReport()
	report.ID = uuid.NewString()
	report.Root = root

	if !info.IsDir() {
		if !c.isNotebook(info.Name()) {
			return report, nil
		}
		result, err := c.CheckNotebook(root)
		if err != nil {
			return nil, err
		}
		report.Merge(result)
		return report, nil
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if d != nil && d.IsDir() && path != root {
				c.logger.Warn("skipping unreadable directory",
					slog.String("path", path),
					slog.String("error", walkErr.Error()),
				)
				return fs.SkipDir
			}
			return NewCheckError(path, "walk", walkErr)
		}
		if path != root && c.excluded(root, path, d.Name()) {
			c.logger.Debug("excluded", slog.String("path", path))
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !c.isNotebook(d.Name()) {
			return nil
		}

		result, err := c.CheckNotebook(path)
		if err != nil {
			return err
		}
		report.Merge(result)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("spell check finished",
		slog.String("root", root),
		slog.Int("notebooks", report.NotebooksChecked),
		slog.Int("notebooks_with_errors", len(report.Misspelled)),
		slog.Int("misspelled_words", report.WordCount()),
	)
	return report, nil
}

func (c *Checker) isNotebook(name string) bool {
	return strings.HasSuffix(name, c.opts.NotebookExtension())
}

// excluded reports whether file matches one of the exclude patterns, by base
// name or by slash-separated path relative to root.
func (c *Checker) excluded(root, file, name string) bool {
	if len(c.opts.Exclude) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, file)
	if err != nil {
		rel = file
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range c.opts.Exclude {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
		if ok, _ := path.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// Check runs a directory check rooted at opts.Root.
func Check(opts Options) (*models.Report, error) {
	c, err := New(opts)
	if err != nil {
		return nil, err
	}
	return c.CheckDirectory(opts.Root)
}
