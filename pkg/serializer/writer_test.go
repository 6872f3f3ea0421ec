package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type testTable struct {
	rows [][]string
}

func (t testTable) TableHeader() []string { return []string{"LINE", "UNIT"} }
func (t testTable) TableRows() [][]string { return t.rows }

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{
		{Name: "flour", Value: 2},
		{Name: "sugar", Value: 1},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result) != 2 || result[0] != data[0] {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeJSONNoHTMLEscape(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(FormatJSON, &buf).Serialize(context.Background(), "salt & pepper"); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "salt & pepper") {
		t.Errorf("expected unescaped ampersand, got %s", buf.String())
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := []testConfig{
		{Name: "flour", Value: 2},
		{Name: "sugar", Value: 1},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if len(result) != 2 || result[1] != data[1] {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := map[string]any{
		"name": "flour",
		"measurement": []map[string]any{
			{"quantity": 2, "unit": "cup"},
		},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"FIELD", "VALUE", "name", "flour", "measurement.[0].unit", "cup"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriter_SerializeTabular(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := testTable{rows: [][]string{
		{"1 cup water", "cup"},
		{"2 tbsp honey", "tablespoon"},
	}}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "LINE") || !strings.HasPrefix(lines[1], "----") {
		t.Errorf("unexpected header:\n%s", buf.String())
	}
	if !strings.HasSuffix(lines[3], "tablespoon") {
		t.Errorf("unexpected row %q", lines[3])
	}

	buf.Reset()
	if err := writer.Serialize(context.Background(), testTable{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "<empty>" {
		t.Errorf("expected <empty>, got %q", buf.String())
	}
}

func TestWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)
	if writer.format != FormatJSON {
		t.Errorf("expected JSON, got %s", writer.format)
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	w, err := NewFileWriterOrStdout(FormatJSON, path)
	if err != nil {
		t.Fatalf("NewFileWriterOrStdout failed: %v", err)
	}
	if err := w.Serialize(context.Background(), testConfig{Name: "salt", Value: 1}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(b), `"salt"`) {
		t.Errorf("unexpected file content: %s", b)
	}

	w, err = NewFileWriterOrStdout(FormatYAML, "  ")
	if err != nil {
		t.Fatalf("stdout writer failed: %v", err)
	}
	if w.output != os.Stdout {
		t.Error("expected stdout for empty path")
	}

	if _, err := NewFileWriterOrStdout(FormatJSON, filepath.Join(t.TempDir(), "missing", "out.json")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) != 3 {
		t.Fatalf("expected 3 formats, got %v", formats)
	}
	for _, f := range formats {
		if Format(f).IsUnknown() {
			t.Errorf("format %s reported unknown", f)
		}
	}
}
