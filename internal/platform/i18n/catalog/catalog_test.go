package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for _, locale := range []string{BaseLocale, "ko-KR"} {
		if !bundle.HasLocale(locale) {
			t.Fatalf("expected locale %s", locale)
		}
		if got := len(bundle.NamespaceMessages(locale, "team")); got == 0 {
			t.Fatalf("expected %s team namespace messages", locale)
		}
	}
}

func TestEmbeddedLocalesDefineSameKeys(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	base := bundle.LocaleMessages(BaseLocale)
	for _, locale := range bundle.Locales() {
		messages := bundle.LocaleMessages(locale)
		for key := range base {
			if _, ok := messages[key]; !ok {
				t.Errorf("locale %s missing key %q", locale, key)
			}
		}
		for key := range messages {
			if _, ok := base[key]; !ok {
				t.Errorf("locale %s defines key %q absent from %s", locale, key, BaseLocale)
			}
		}
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	got, ok := Default().Message("fr-FR", "team.translated_pages")
	if !ok || got != "Translated pages" {
		t.Fatalf("Message(fr-FR) = %q, %t; want base locale text", got, ok)
	}
	got, ok = Default().Message("ko-KR", "team.translated_pages")
	if !ok || got != "번역한 페이지" {
		t.Fatalf("Message(ko-KR) = %q, %t", got, ok)
	}
	if _, ok := Default().Message("en-US", " "); ok {
		t.Fatal("expected blank key lookup to fail")
	}
}

func TestRegisterMakesPrinterAwareOfBaseLanguage(t *testing.T) {
	p := message.NewPrinter(language.Korean)
	if got := p.Sprintf("team.translated_pages"); got != "번역한 페이지" {
		t.Fatalf("Sprintf(ko) = %q, want %q", got, "번역한 페이지")
	}
}

func TestLoadFromFSRejectsKeyOutsideNamespace(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/team.toml"), `locale = "en-US"
namespace = "team"

[messages]
"core.bad" = "nope"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected namespace prefix error")
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/team.toml"), `locale = "ko-KR"
namespace = "team"

[messages]
"team.a" = "a"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/ko-KR/team.toml"), `locale = "ko-KR"
namespace = "team"

[messages]
"team.a" = "a"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestLoadFromFSRejectsMalformedTOML(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/team.toml"), `locale = "en-US`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected parse error")
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
}
