// Package verify checks revealed rounds after the fact, either from the round
// archive or from values copied off a game transcript.
package verify

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/louisbranch/fairdice/internal/core/commit"
	"github.com/louisbranch/fairdice/internal/core/fairness"
	entrypoint "github.com/louisbranch/fairdice/internal/platform/cmd"
	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
	"github.com/louisbranch/fairdice/internal/platform/i18n/catalog"
	"github.com/louisbranch/fairdice/internal/storage"
	"github.com/louisbranch/fairdice/internal/storage/sqlite"
	"golang.org/x/text/message"
)

// Config holds configuration for round verification.
type Config struct {
	DBPath string `env:"DB_PATH"`
	Locale string `env:"LOCALE" envDefault:"en-US"`

	RoundID    string
	List       bool
	Limit      int
	Key        string
	Commitment string
	Number     int
	Choice     int
	Result     int
	Range      int

	// HasNumber, HasChoice and HasResult record which integer flags were
	// given, since any integer is a meaningful value.
	HasNumber bool
	HasChoice bool
	HasResult bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Range: 6, Limit: 20}
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite round archive")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Message locale (en-US, pt-BR)")
	fs.StringVar(&cfg.RoundID, "round", "", "archived round ID to verify")
	fs.BoolVar(&cfg.List, "list", false, "list archived rounds")
	fs.IntVar(&cfg.Limit, "limit", cfg.Limit, "rounds shown by -list")
	fs.StringVar(&cfg.Key, "key", "", "disclosed computer key (hex)")
	fs.StringVar(&cfg.Commitment, "commitment", "", "HMAC shown before the choice (hex)")
	fs.IntVar(&cfg.Number, "number", cfg.Number, "disclosed computer number")
	fs.IntVar(&cfg.Choice, "choice", cfg.Choice, "user number (optional, checks the result too)")
	fs.IntVar(&cfg.Result, "result", cfg.Result, "round total (required with -choice)")
	fs.IntVar(&cfg.Range, "range", cfg.Range, "exclusive upper bound of the round numbers")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "number":
			cfg.HasNumber = true
		case "choice":
			cfg.HasChoice = true
		case "result":
			cfg.HasResult = true
		}
	})
	return cfg, nil
}

// Run verifies the requested round and writes the verdict to out. A failed
// verification is returned as an error.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceVerify, func(ctx context.Context) error {
		p := catalog.Printer(cfg.Locale)
		switch {
		case cfg.List:
			store, err := openStore(cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()
			return List(ctx, store, cfg.Limit, out, p)
		case strings.TrimSpace(cfg.RoundID) != "":
			store, err := openStore(cfg.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := Round(ctx, store, cfg.RoundID); err != nil {
				return err
			}
			p.Fprintf(out, catalog.KeyVerifyOK, cfg.RoundID)
			_, err = fmt.Fprintln(out)
			return err
		default:
			full, err := Manual(cfg)
			if err != nil {
				return err
			}
			key := catalog.KeyVerifyManualOK
			if full {
				key = catalog.KeyVerifyFullOK
			}
			p.Fprintf(out, key)
			_, err = fmt.Fprintln(out)
			return err
		}
	})
}

// Round loads an archived round and verifies its transcript.
func Round(ctx context.Context, store storage.RoundStore, roundID string) error {
	round, err := store.GetRound(ctx, roundID)
	if err != nil {
		return err
	}
	return round.Transcript.Verify()
}

// Manual verifies values typed from a transcript. With a choice it checks the
// full transcript and reports true; otherwise it checks the commitment only.
func Manual(cfg Config) (bool, error) {
	key, err := hex.DecodeString(strings.TrimSpace(cfg.Key))
	if err != nil || len(key) == 0 {
		return false, fmt.Errorf("-key must be a non-empty hex string")
	}
	if strings.TrimSpace(cfg.Commitment) == "" {
		return false, fmt.Errorf("-commitment is required")
	}
	if !cfg.HasNumber {
		return false, fmt.Errorf("-number is required")
	}

	if !cfg.HasChoice {
		if err := fairness.CheckNumber(cfg.Number, cfg.Range); err != nil {
			return false, err
		}
		if err := commit.Verify(key, strconv.Itoa(cfg.Number), cfg.Commitment); err != nil {
			return false, err
		}
		return false, nil
	}
	if !cfg.HasResult {
		return false, fmt.Errorf("-result is required with -choice")
	}
	transcript := fairness.Transcript{
		Range:      cfg.Range,
		Commitment: cfg.Commitment,
		Number:     cfg.Number,
		Choice:     cfg.Choice,
		Result:     cfg.Result,
		SystemKey:  key,
	}
	if err := transcript.Verify(); err != nil {
		return false, err
	}
	return true, nil
}

// List writes the most recent archived rounds as a table.
func List(ctx context.Context, store storage.RoundStore, limit int, out io.Writer, p *message.Printer) error {
	rounds, err := store.ListRounds(ctx, limit)
	if err != nil {
		return err
	}
	if len(rounds) == 0 {
		_, err := fmt.Fprintln(out, p.Sprintf(catalog.KeyNoRounds))
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLABEL\tRESULT\tVERIFIED\tCREATED")
	for _, round := range rounds {
		status := "ok"
		if err := round.Transcript.Verify(); err != nil {
			status = string(apperrors.GetCode(err))
		}
		fmt.Fprintf(tw, "%s\t%s\t%d/%d\t%s\t%s\n",
			round.ID,
			round.Label,
			round.Transcript.Result,
			round.Transcript.Range,
			status,
			round.CreatedAt.Format(time.RFC3339),
		)
	}
	return tw.Flush()
}

func openStore(path string) (*sqlite.Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("-db or FAIRDICE_DB_PATH is required")
	}
	return sqlite.Open(path)
}
