package catalog

import (
	"testing"
)

func TestDefaultBundleLocales(t *testing.T) {
	bundle := Default()
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("pt-BR") {
		t.Fatal("expected locale pt-BR")
	}
	if bundle.HasLocale("xx-YY") {
		t.Fatal("unexpected locale xx-YY")
	}
}

func TestNewBundleRequiresBaseLocale(t *testing.T) {
	if _, err := NewBundle(map[string]map[string]string{"pt-BR": {"a": "b"}}); err == nil {
		t.Fatal("expected error without base locale")
	}
	if _, err := NewBundle(map[string]map[string]string{BaseLocale: {"a": "a"}}); err != nil {
		t.Fatalf("new bundle: %v", err)
	}
}

func TestRegisterRejectsMalformedLocale(t *testing.T) {
	bundle, err := NewBundle(map[string]map[string]string{
		BaseLocale:  {"a": "a"},
		"not a tag": {"a": "b"},
	})
	if err != nil {
		t.Fatalf("new bundle: %v", err)
	}
	if err := bundle.Register(); err == nil {
		t.Fatal("expected error for malformed locale")
	}
}

func TestPrinterTranslates(t *testing.T) {
	if got := Printer("pt-BR").Sprintf(KeyChoicePrompt, 5); got != "Escolha um número entre 0 e 5: " {
		t.Fatalf("pt-BR prompt = %q", got)
	}
	if got := Printer("en-US").Sprintf(KeyChoicePrompt, 5); got != "Select a number between 0 and 5: " {
		t.Fatalf("en-US prompt = %q", got)
	}
}

func TestPrinterFallsBackToBase(t *testing.T) {
	if got := Printer("xx-YY").Sprintf(KeyGoodbye); got != "Thank you for playing!" {
		t.Fatalf("fallback = %q", got)
	}
	if got := Printer("").Sprintf(KeyTie); got != "It's a tie!" {
		t.Fatalf("empty locale = %q", got)
	}
}
