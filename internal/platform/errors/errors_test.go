package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := WithMetadata(CodeChoiceOutOfRange, "choice 9 out of range", map[string]string{"Max": "5"})
	if !stderrors.Is(err, Sentinel(CodeChoiceOutOfRange)) {
		t.Fatal("expected code match")
	}
	if stderrors.Is(err, Sentinel(CodeChoiceNotInteger)) {
		t.Fatal("expected different codes not to match")
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := fmt.Errorf("read failed")
	err := Wrap(CodeEntropyUnavailable, "read random bytes", cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if got := err.Error(); got != "read random bytes: read failed" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestGetCodeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("round 1: %w", New(CodeDiceTooFew, "too few dice"))
	if got := GetCode(err); got != CodeDiceTooFew {
		t.Fatalf("GetCode = %s, want %s", got, CodeDiceTooFew)
	}
	if got := GetCode(fmt.Errorf("plain")); got != CodeUnknown {
		t.Fatalf("GetCode = %s, want %s", got, CodeUnknown)
	}
}

func TestCodeClassification(t *testing.T) {
	tests := []struct {
		code          Code
		recoverable   bool
		configuration bool
	}{
		{CodeChoiceOutOfRange, true, false},
		{CodeChoiceNotInteger, true, false},
		{CodeDiceInvalidSpec, false, true},
		{CodeDiceTooFew, false, true},
		{CodeEntropyUnavailable, false, false},
		{CodeProtocolInvalidTransition, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Recoverable(); got != tt.recoverable {
				t.Errorf("Recoverable() = %t, want %t", got, tt.recoverable)
			}
			if got := tt.code.Configuration(); got != tt.configuration {
				t.Errorf("Configuration() = %t, want %t", got, tt.configuration)
			}
		})
	}
}

func TestIsRecoverable(t *testing.T) {
	if IsRecoverable(nil) {
		t.Fatal("nil error is not recoverable")
	}
	if !IsRecoverable(New(CodeChoiceNotInteger, "bad input")) {
		t.Fatal("expected choice error to be recoverable")
	}
	if IsRecoverable(New(CodeEntropyUnavailable, "no entropy")) {
		t.Fatal("expected entropy error to be fatal")
	}
}

func TestLocalize(t *testing.T) {
	err := fmt.Errorf("round: %w", WithMetadata(CodeChoiceOutOfRange, "choice out of range", map[string]string{"Max": "5"}))
	if got := Localize(err, "en-US"); got != "Please enter a valid number between 0 and 5." {
		t.Fatalf("Localize en-US = %q", got)
	}
	if got := Localize(err, "pt-BR"); got != "Digite um número válido entre 0 e 5." {
		t.Fatalf("Localize pt-BR = %q", got)
	}
	if got := Localize(fmt.Errorf("plain failure"), "en-US"); got != "plain failure" {
		t.Fatalf("Localize plain = %q", got)
	}
	if got := Localize(nil, "en-US"); got != "" {
		t.Fatalf("Localize nil = %q", got)
	}
}

func TestUsage(t *testing.T) {
	err := WithMetadata(CodeDiceTooFew, "too few dice", map[string]string{"Usage": "Usage: fairdice a b c"})
	if got := Usage(err); got != "Usage: fairdice a b c" {
		t.Fatalf("Usage = %q", got)
	}
	if got := Usage(fmt.Errorf("plain")); got != "" {
		t.Fatalf("Usage plain = %q", got)
	}
}
