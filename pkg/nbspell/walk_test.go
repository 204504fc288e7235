package nbspell

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDirectoryReportsOnlyMisspelledNotebooks(t *testing.T) {
	root := t.TempDir()
	bad := writeNotebook(t, filepath.Join(root, "bad.ipynb"), markdown("Helllo wrold"))
	writeNotebook(t, filepath.Join(root, "good.ipynb"), markdown("Hello world"))

	opts := DefaultOptions()
	opts.Root = root
	report, err := Check(opts)
	require.NoError(t, err)

	assert.Equal(t, []string{bad}, report.Paths())
	assert.Equal(t, 2, report.NotebooksChecked)
	assert.Equal(t, root, report.Root)
	assert.NotEmpty(t, report.ID)
}

func TestCheckDirectoryRecursesAndFiltersByExtension(t *testing.T) {
	root := t.TempDir()
	nested := writeNotebook(t, filepath.Join(root, "a", "b", "deep.ipynb"), markdown("A tpyo"))
	writeNotebook(t, filepath.Join(root, "a", "top.ipynb"), markdown("All good"))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.md"), []byte("Helllo wrold"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "data.json"), []byte("{"), 0o644))

	c, err := New(DefaultOptions())
	require.NoError(t, err)
	report, err := c.CheckDirectory(root)
	require.NoError(t, err)

	assert.Equal(t, []string{nested}, report.Paths())
	assert.Equal(t, []string{"tpyo"}, report.Words(nested))
	assert.Equal(t, 2, report.NotebooksChecked)
}

func TestCheckDirectoryWithoutNotebooks(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("Helllo"), 0o644))

	c, err := New(DefaultOptions())
	require.NoError(t, err)
	report, err := c.CheckDirectory(root)
	require.NoError(t, err)

	assert.True(t, report.Empty())
	assert.Zero(t, report.NotebooksChecked)
}

func TestCheckDirectoryAbortsOnInvalidNotebook(t *testing.T) {
	root := t.TempDir()
	writeNotebook(t, filepath.Join(root, "a.ipynb"), markdown("Helllo"))
	broken := filepath.Join(root, "b.ipynb")
	require.NoError(t, os.WriteFile(broken, []byte(`{"cells": []}`), 0o644))
	writeNotebook(t, filepath.Join(root, "c.ipynb"), markdown("wrold"))

	c, err := New(DefaultOptions())
	require.NoError(t, err)
	report, err := c.CheckDirectory(root)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrInvalidNotebook)
	var checkErr *CheckError
	require.True(t, errors.As(err, &checkErr))
	assert.Equal(t, broken, checkErr.Path)
}

func TestCheckDirectoryExclude(t *testing.T) {
	root := t.TempDir()
	writeNotebook(t, filepath.Join(root, ".ipynb_checkpoints", "nb-checkpoint.ipynb"), markdown("Helllo"))
	writeNotebook(t, filepath.Join(root, "drafts", "draft.ipynb"), markdown("wrold"))
	writeNotebook(t, filepath.Join(root, "scratch.ipynb"), markdown("tpyo"))
	kept := writeNotebook(t, filepath.Join(root, "final.ipynb"), markdown("mispeled"))

	opts := DefaultOptions()
	opts.Exclude = []string{".ipynb_checkpoints", "drafts/*", "scratch*"}
	c, err := New(opts)
	require.NoError(t, err)
	report, err := c.CheckDirectory(root)
	require.NoError(t, err)

	assert.Equal(t, []string{kept}, report.Paths())
	assert.Equal(t, 1, report.NotebooksChecked)
}

func TestCheckDirectoryMissingRoot(t *testing.T) {
	c, err := New(DefaultOptions())
	require.NoError(t, err)

	_, err = c.CheckDirectory(filepath.Join(t.TempDir(), "absent"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCheckDirectorySingleFileRoot(t *testing.T) {
	dir := t.TempDir()
	path := writeNotebook(t, filepath.Join(dir, "one.ipynb"), markdown("wrold"))
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("wrold"), 0o644))

	c, err := New(DefaultOptions())
	require.NoError(t, err)

	report, err := c.CheckDirectory(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, report.Paths())

	report, err = c.CheckDirectory(other)
	require.NoError(t, err)
	assert.True(t, report.Empty())
	assert.Zero(t, report.NotebooksChecked)
}

func TestCheckDirectoryCustomExtension(t *testing.T) {
	root := t.TempDir()
	path := writeNotebook(t, filepath.Join(root, "nb.json"), markdown("wrold"))
	writeNotebook(t, filepath.Join(root, "nb.ipynb"), markdown("Helllo"))

	opts := DefaultOptions()
	opts.Extension = ".json"
	c, err := New(opts)
	require.NoError(t, err)

	report, err := c.CheckDirectory(root)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, report.Paths())
}

func TestCheckDirectoryLogsSummary(t *testing.T) {
	root := t.TempDir()
	writeNotebook(t, filepath.Join(root, "nb.ipynb"), markdown("wrold"))

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c, err := New(opts)
	require.NoError(t, err)

	_, err = c.CheckDirectory(root)
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, "spelling model ready")
	assert.Contains(t, logs, "notebook checked")
	assert.Contains(t, logs, "spell check finished")
	assert.Contains(t, logs, "misspelled_words=1")
}
