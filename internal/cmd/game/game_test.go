package game

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
	"github.com/louisbranch/fairdice/internal/storage/sqlite"
)

var classicDice = []string{"2,2,4,4,9,9", "1,1,6,6,8,8", "3,3,5,5,7,7"}

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("fairdice", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Locale != "en-US" {
		t.Fatalf("expected default locale en-US, got %q", cfg.Locale)
	}
	if cfg.DBPath != "" || cfg.SimulateTrials != 0 || len(cfg.Dice) != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParseConfigEnvAndOverrides(t *testing.T) {
	t.Setenv("FAIRDICE_LOCALE", "pt-BR")
	t.Setenv("FAIRDICE_SIMULATE_TRIALS", "500")

	fs := flag.NewFlagSet("fairdice", flag.ContinueOnError)
	args := append([]string{"-db", "rounds.db"}, classicDice...)
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Locale != "pt-BR" || cfg.SimulateTrials != 500 {
		t.Fatalf("expected env values, got %+v", cfg)
	}
	if cfg.DBPath != "rounds.db" {
		t.Fatalf("expected db override, got %q", cfg.DBPath)
	}
	if len(cfg.Dice) != 3 || cfg.Dice[0] != classicDice[0] {
		t.Fatalf("expected positional dice, got %v", cfg.Dice)
	}
}

func TestParseConfigRejectsBadEnv(t *testing.T) {
	t.Setenv("FAIRDICE_SIMULATE_TRIALS", "many")
	fs := flag.NewFlagSet("fairdice", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error for malformed trials")
	}
}

func TestRunRejectsDiceConfiguration(t *testing.T) {
	tests := []struct {
		name string
		dice []string
		code apperrors.Code
	}{
		{name: "too few", dice: classicDice[:2], code: apperrors.CodeDiceTooFew},
		{name: "bad die", dice: []string{"1,2,3", "1,1,1,1,1,1", "2,2,2,2,2,2"}, code: apperrors.CodeDiceInvalidSpec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Run(context.Background(), Config{Dice: tt.dice}, strings.NewReader(""), &bytes.Buffer{})
			if apperrors.GetCode(err) != tt.code {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
			if apperrors.Usage(err) == "" {
				t.Fatal("expected usage hint on configuration error")
			}
		})
	}
}

func TestRunExitsFromMenu(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Config{Dice: classicDice}, strings.NewReader("help\nexit\n"), &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "D1   0.33  0.56  0.44") {
		t.Fatalf("expected probability table, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Thank you for playing!") {
		t.Fatalf("expected goodbye, got:\n%s", out.String())
	}
}

func TestRunArchivesRounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rounds.db")
	var out bytes.Buffer
	cfg := Config{Dice: classicDice, DBPath: path, Locale: "en-US"}
	if err := Run(context.Background(), cfg, strings.NewReader("1\n0\n0\nn\n"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	store, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	rounds, err := store.ListRounds(context.Background(), 10)
	if err != nil {
		t.Fatalf("list rounds: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("expected 2 archived rounds, got %d", len(rounds))
	}
	for _, round := range rounds {
		if err := round.Transcript.Verify(); err != nil {
			t.Fatalf("round %s should verify: %v", round.ID, err)
		}
		if !strings.Contains(out.String(), "Round archived as "+round.ID) {
			t.Fatalf("expected round id %s in output", round.ID)
		}
	}
}
