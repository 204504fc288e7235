package nbspell

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

type testCell struct {
	kind   string
	source string
}

func markdown(source string) testCell { return testCell{kind: "markdown", source: source} }
func code(source string) testCell     { return testCell{kind: "code", source: source} }

// writeNotebook stores a minimal nbformat 4 document at path.
func writeNotebook(t *testing.T, path string, cells ...testCell) string {
	t.Helper()

	raw := make([]map[string]interface{}, 0, len(cells))
	for _, c := range cells {
		cell := map[string]interface{}{
			"cell_type": c.kind,
			"metadata":  map[string]interface{}{},
			"source":    c.source,
		}
		if c.kind == "code" {
			cell["outputs"] = []interface{}{}
			cell["execution_count"] = nil
		}
		raw = append(raw, cell)
	}
	doc := map[string]interface{}{
		"cells":          raw,
		"metadata":       map[string]interface{}{},
		"nbformat":       4,
		"nbformat_minor": 5,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal notebook: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create notebook dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write notebook: %v", err)
	}
	return path
}
