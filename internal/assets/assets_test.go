package assets

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteDefaultConfigIfMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "minigrep")

	// First call should create config.yaml with embedded contents
	p, err := WriteDefaultConfigIfMissing(dir)
	if err != nil {
		t.Fatalf("WriteDefaultConfigIfMissing: %v", err)
	}
	if p != filepath.Join(dir, DefaultConfigName) {
		t.Fatalf("unexpected path %s", p)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(b) == 0 {
		t.Fatalf("empty config.yaml written")
	}
	if string(b) != string(defaultConfig) {
		t.Fatalf("unexpected contents written")
	}

	// If file exists, it must not overwrite
	if err := os.WriteFile(p, []byte("modified"), 0o644); err != nil {
		t.Fatalf("pre-write: %v", err)
	}
	if _, err := WriteDefaultConfigIfMissing(dir); err != nil {
		t.Fatalf("second call: %v", err)
	}
	b2, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read2: %v", err)
	}
	if string(b2) != "modified" {
		t.Fatalf("existing file was overwritten")
	}
}

func TestWriteDefaultConfigIfMissing_EmptyDir(t *testing.T) {
	if _, err := WriteDefaultConfigIfMissing(""); err == nil {
		t.Fatalf("expected error for empty dir")
	}
}

func TestWriteDefaultConfigFileIfMissing_NamedFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "mine.yml")
	if err := WriteDefaultConfigFileIfMissing(p); err != nil {
		t.Fatalf("WriteDefaultConfigFileIfMissing: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != string(defaultConfig) {
		t.Fatalf("unexpected contents written")
	}
	if err := WriteDefaultConfigFileIfMissing(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestSchemaIsJSON(t *testing.T) {
	var v map[string]any
	if err := json.Unmarshal(Schema(), &v); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
}
