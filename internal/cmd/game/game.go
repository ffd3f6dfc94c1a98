// Package game parses fairdice command flags and runs the interactive game.
package game

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/louisbranch/fairdice/internal/core/dice"
	"github.com/louisbranch/fairdice/internal/game"
	entrypoint "github.com/louisbranch/fairdice/internal/platform/cmd"
	"github.com/louisbranch/fairdice/internal/platform/id"
	"github.com/louisbranch/fairdice/internal/random"
	"github.com/louisbranch/fairdice/internal/storage/sqlite"
)

// Config holds fairdice command configuration.
type Config struct {
	DBPath         string `env:"DB_PATH"`
	Locale         string `env:"LOCALE" envDefault:"en-US"`
	SimulateTrials int    `env:"SIMULATE_TRIALS"`

	// Dice holds the positional dice specifications.
	Dice []string
}

// ParseConfig parses environment and flags into a Config. Positional
// arguments are the dice specifications.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite path for archiving revealed rounds (empty disables the archive)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Message locale (en-US, pt-BR)")
	fs.IntVar(&cfg.SimulateTrials, "simulate", cfg.SimulateTrials, "Rolls per pair for a simulated table under 'help' (0 disables)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Dice = fs.Args()
	return cfg, nil
}

// Run validates the dice and plays the game on in and out. Dice errors are
// returned before any telemetry or storage is set up.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	set, err := dice.ParseSet(cfg.Dice)
	if err != nil {
		return err
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGame, func(ctx context.Context) error {
		opts := game.Options{
			Locale:         cfg.Locale,
			SimulateTrials: cfg.SimulateTrials,
			Logger:         log.Default(),
		}
		if path := strings.TrimSpace(cfg.DBPath); path != "" {
			store, err := sqlite.Open(path)
			if err != nil {
				return fmt.Errorf("open round archive: %w", err)
			}
			defer func() {
				if err := store.Close(); err != nil {
					log.Printf("close round archive: %v", err)
				}
			}()
			log.Printf("archiving rounds to %s", path)
			opts.Archive = store
			opts.NewID = id.NewID
		}
		return game.New(set, random.NewSource(nil), in, out, opts).Run(ctx)
	})
}
