package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	DBPath string `env:"CMD_TEST_DB_PATH" envDefault:"rounds.db"`
	Locale string `env:"CMD_TEST_LOCALE" envDefault:"en-US"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("FAIRDICE_CMD_TEST_DB_PATH", "env.db")
	t.Setenv("FAIRDICE_CMD_TEST_LOCALE", "pt-BR")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfgRef.DBPath, "db", cfgRef.DBPath, "db")
	fs.StringVar(&cfgRef.Locale, "locale", cfgRef.Locale, "locale")

	if err := ParseArgs(fs, []string{"-db", "flag.db", "1,2,3,4,5,6"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.DBPath != "flag.db" {
		t.Fatalf("expected flag value for db, got %q", cfgRef.DBPath)
	}
	if cfgRef.Locale != "pt-BR" {
		t.Fatalf("expected env locale, got %q", cfgRef.Locale)
	}
	if got := fs.Args(); len(got) != 1 || got[0] != "1,2,3,4,5,6" {
		t.Fatalf("expected positional dice spec, got %v", got)
	}
}

func TestParseConfigFromArgsReadsEnvAndFlags(t *testing.T) {
	t.Setenv("FAIRDICE_CMD_TEST_DB_PATH", "configarg.db")
	t.Setenv("FAIRDICE_CMD_TEST_LOCALE", "pt-BR")

	cfgRef := testConfig{}
	fs := flag.NewFlagSet("configargs", flag.ContinueOnError)
	fs.StringVar(&cfgRef.DBPath, "db", "", "db")
	fs.StringVar(&cfgRef.Locale, "locale", "", "locale")
	if err := ParseConfigFromArgs(&cfgRef, fs, []string{"-db", "flag.db"}); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfgRef.DBPath != "flag.db" {
		t.Fatalf("expected parsed flag db, got %q", cfgRef.DBPath)
	}
	if cfgRef.Locale != "pt-BR" {
		t.Fatalf("expected env locale, got %q", cfgRef.Locale)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(nil, "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(nil, ServiceGame, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryRunsAndPropagatesErrors(t *testing.T) {
	t.Setenv("FAIRDICE_OTEL_ENDPOINT", "")

	called := false
	if err := RunWithTelemetry(context.Background(), ServiceGame, func(context.Context) error {
		called = true
		return nil
	}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !called {
		t.Fatal("expected run function to be called")
	}

	want := errors.New("round aborted")
	err := RunWithTelemetry(context.Background(), ServiceVerify, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("RunWithTelemetry error = %v, want %v", err, want)
	}
}
