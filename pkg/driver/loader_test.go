package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.json")
	src := `{"body": {"type": "Block", "line": 1, "exprs": [
		{"type": "Literal", "value": 42, "line": 1}
	]}}`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	script, err := LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if got := len(script.Body.Exprs); got != 1 {
		t.Fatalf("decoded %d exprs, want 1", got)
	}
}

func TestLoadScriptMissingFile(t *testing.T) {
	if _, err := LoadScript(filepath.Join(t.TempDir(), "main.json")); !os.IsNotExist(err) {
		t.Fatalf("error = %v, want a not-exist error", err)
	}
}

func TestLoadScriptBadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	_, err := LoadScript(path)
	if err == nil {
		t.Fatal("LoadScript succeeded on malformed input")
	}
	if !strings.Contains(err.Error(), "load "+path) {
		t.Fatalf("error = %q, want it to name the file", err)
	}
}
