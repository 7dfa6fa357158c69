package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/portfolio-tui/internal/content"
)

func TestLoadContentDefaultsToBuiltIn(t *testing.T) {
	got, err := LoadContent("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := content.Default()
	if got.Name != want.Name {
		t.Fatalf("expected built-in portfolio %q, got %q", want.Name, got.Name)
	}
}

func TestLoadContentWrapsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("name: [unterminated"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadContent(path); err == nil {
		t.Fatalf("expected error for malformed content")
	}
	if _, err := LoadContent(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing content")
	}
}
