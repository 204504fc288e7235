package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/nbspell-go/pkg/nbspell/models"
)

func sampleReport() *models.Report {
	r := models.NewReport()
	r.ID = "run-1"
	r.Root = "docs"
	r.NotebooksChecked = 3
	r.Add("docs/b.ipynb", "teh")
	r.Add("docs/a.ipynb", "wrold", "Helllo")
	return r
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleReport(), Options{}))

	expected := "Misspelled words in docs/a.ipynb: Helllo, wrold\n" +
		"Misspelled words in docs/b.ipynb: teh\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteTextEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, models.NewReport(), Options{Format: FormatText}))
	assert.Empty(t, buf.String())

	require.NoError(t, Write(&buf, models.NewReport(), Options{Format: FormatTable}))
	assert.Empty(t, buf.String())
}

func TestWriteTextSuggestions(t *testing.T) {
	r := sampleReport()
	r.Suggest("wrold", []string{"world"})
	r.Suggest("teh", []string{"the", "ten"})

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r, Options{Suggestions: true}))

	expected := "Misspelled words in docs/a.ipynb: Helllo, wrold\n" +
		"  wrold -> world\n" +
		"Misspelled words in docs/b.ipynb: teh\n" +
		"  teh -> the, ten\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteTextColor(t *testing.T) {
	text.EnableColors()

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleReport(), Options{Color: true}))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Misspelled words in ")
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleReport(), false)
	require.NoError(t, err)

	var decoded struct {
		ID               string              `json:"id"`
		Root             string              `json:"root"`
		NotebooksChecked int                 `json:"notebooks_checked"`
		Misspelled       map[string][]string `json:"misspelled"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "run-1", decoded.ID)
	assert.Equal(t, 3, decoded.NotebooksChecked)
	assert.Equal(t, []string{"Helllo", "wrold"}, decoded.Misspelled["docs/a.ipynb"])
	assert.Equal(t, []string{"teh"}, decoded.Misspelled["docs/b.ipynb"])

	pretty, err := ToJSON(sampleReport(), true)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(pretty), "\n  \"id\""))
}

func TestRenderTable(t *testing.T) {
	r := sampleReport()
	r.Suggest("teh", []string{"the"})

	out := RenderTable(r, true)
	for _, want := range []string{"Notebook", "Word", "Suggestions", "docs/a.ipynb", "Helllo", "wrold", "teh", "the", "3 misspelled word(s) in 2 notebook(s)"} {
		assert.Contains(t, out, want)
	}
}

func TestWriteXLSX(t *testing.T) {
	r := sampleReport()
	r.Suggest("teh", []string{"the"})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r, Options{Format: FormatXLSX}))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{MisspellingsSheet, SummarySheet}, f.GetSheetList())

	rows, err := f.GetRows(MisspellingsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Notebook", "Word", "Suggestions"}, rows[0])
	assert.Equal(t, []string{"docs/a.ipynb", "Helllo"}, rows[1])
	assert.Equal(t, []string{"docs/a.ipynb", "wrold"}, rows[2])
	assert.Equal(t, []string{"docs/b.ipynb", "teh", "the"}, rows[3])

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	require.Len(t, summary, 5)
	assert.Equal(t, []string{"Run ID", "run-1"}, summary[0])
	assert.Equal(t, []string{"Misspelled words", "3"}, summary[4])
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{" JSON ", FormatJSON, false},
		{"table", FormatTable, false},
		{"xlsx", FormatXLSX, false},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, got)
	}
	assert.True(t, FormatXLSX.Binary())
	assert.False(t, FormatJSON.Binary())
}

func TestShouldColorizeNonTerminal(t *testing.T) {
	assert.False(t, ShouldColorize(&bytes.Buffer{}))
}
