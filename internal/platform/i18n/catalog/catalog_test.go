package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("es") {
		t.Fatal("expected locale es")
	}

	if got := len(bundle.LocaleMessages("en")); got == 0 {
		t.Fatal("expected en messages")
	}
	if got := len(bundle.LocaleMessages("es")); got == 0 {
		t.Fatal("expected es messages")
	}
}

func TestLocalesCoverTheSameKeys(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	en := bundle.LocaleMessages("en")
	es := bundle.LocaleMessages("es")
	for key := range en {
		if _, ok := es[key]; !ok {
			t.Fatalf("key %q missing from es catalog", key)
		}
	}
	for key := range es {
		if _, ok := en[key]; !ok {
			t.Fatalf("key %q missing from en catalog", key)
		}
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en/core.yaml"), `locale: "es"
namespace: "core"
messages:
  "a.key": "a"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en/core.yaml"), `locale: "en"
namespace: "core"
messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en/web.yaml"), `locale: "en"
namespace: "web"
messages:
  "a.key": "b"
`)

	_, err := LoadFromFS(os.DirFS(tempDir))
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestMessagesFallsBackToBaseLocale(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	messages := bundle.Messages("fr")
	if len(messages) == 0 {
		t.Fatal("expected base locale fallback messages")
	}
	if messages["hero.greeting"] != "Hello!" {
		t.Fatalf("fallback greeting = %q, want %q", messages["hero.greeting"], "Hello!")
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
