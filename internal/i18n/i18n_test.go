package i18n

import (
	"testing"
	"testing/fstest"
)

func TestEmbeddedManagerDetectsAndFallsBack(t *testing.T) {
	t.Parallel()

	manager, err := NewEmbeddedManager("de")
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if manager.DefaultLanguage() != LangEN {
		t.Fatalf("expected unsupported default to fall back to en, got %q", manager.DefaultLanguage())
	}
	if got := manager.DetectFromAcceptLanguage("fr-FR,ru-RU;q=0.8,en;q=0.5"); got != LangRU {
		t.Fatalf("expected ru from Accept-Language, got %q", got)
	}
	if got := manager.NormalizeLanguage("RU_ru"); got != LangRU {
		t.Fatalf("expected ru, got %q", got)
	}
	if got := manager.Translate(LangRU, "interactions.empty"); got == "interactions.empty" {
		t.Fatal("expected ru translation for interactions.empty")
	}
	if got := manager.Translate(LangEN, "missing.key"); got != "missing.key" {
		t.Fatalf("expected missing key to echo, got %q", got)
	}
	if got := manager.Translatef(LangEN, "interactions.count", 2, 9); got != "2 of 9 shown" {
		t.Fatalf("unexpected formatted message %q", got)
	}
}

func TestMessagesOverlayDefaultLanguage(t *testing.T) {
	t.Parallel()

	locales := fstest.MapFS{
		"en.json": {Data: []byte(`{"a":"A","b":"B"}`)},
		"ru.json": {Data: []byte(`{"a":"А"}`)},
	}
	manager, err := NewManager(LangEN, locales)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	messages := manager.Messages(LangRU)
	if messages["a"] != "А" || messages["b"] != "B" {
		t.Fatalf("expected ru overlay on en defaults, got %v", messages)
	}
}

func TestNewManagerRequiresEnglish(t *testing.T) {
	t.Parallel()

	locales := fstest.MapFS{"ru.json": {Data: []byte(`{"a":"А"}`)}}
	if _, err := NewManager(LangRU, locales); err == nil {
		t.Fatal("expected missing en locale to fail")
	}
}
