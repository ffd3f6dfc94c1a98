// Package audit runs a chi-square goodness-of-fit test over the secure
// random source's bounded draws.
package audit

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	entrypoint "github.com/louisbranch/fairdice/internal/platform/cmd"
	"github.com/louisbranch/fairdice/internal/platform/i18n/catalog"
	"github.com/louisbranch/fairdice/internal/random"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrNonUniform reports that the draws failed the goodness-of-fit test.
var ErrNonUniform = errors.New("draws are not uniform at the requested significance")

// Config holds configuration for an entropy audit.
type Config struct {
	Samples int     `env:"AUDIT_SAMPLES" envDefault:"60000"`
	Range   int     `env:"AUDIT_RANGE" envDefault:"6"`
	Alpha   float64 `env:"AUDIT_ALPHA" envDefault:"0.001"`
	Locale  string  `env:"LOCALE" envDefault:"en-US"`
}

// Report is the outcome of one audit.
type Report struct {
	Samples   int
	Range     int
	Counts    []int
	ChiSquare float64
	PValue    float64
}

// Uniform reports whether the p-value clears alpha.
func (r Report) Uniform(alpha float64) bool {
	return r.PValue >= alpha
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "number of draws")
	fs.IntVar(&cfg.Range, "range", cfg.Range, "exclusive upper bound of each draw")
	fs.Float64Var(&cfg.Alpha, "alpha", cfg.Alpha, "significance level")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Message locale (en-US, pt-BR)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run draws from reader (crypto/rand when nil), writes a summary to out and
// returns ErrNonUniform when the test fails.
func Run(ctx context.Context, cfg Config, out io.Writer, reader io.Reader) error {
	if out == nil {
		return errors.New("output is required")
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAudit, func(ctx context.Context) error {
		report, err := Sample(ctx, random.NewSource(reader), cfg.Samples, cfg.Range)
		if err != nil {
			return err
		}
		p := catalog.Printer(cfg.Locale)
		p.Fprintf(out, catalog.KeyAuditSummary, report.Samples, report.Range, report.ChiSquare, report.PValue)
		fmt.Fprintln(out)
		if !report.Uniform(cfg.Alpha) {
			p.Fprintf(out, catalog.KeyAuditFail)
			fmt.Fprintln(out)
			return ErrNonUniform
		}
		p.Fprintf(out, catalog.KeyAuditPass)
		_, err = fmt.Fprintln(out)
		return err
	})
}

// Sample draws samples values in [0, n) from src and scores them against the
// uniform distribution.
func Sample(ctx context.Context, src *random.Source, samples, n int) (Report, error) {
	if samples <= 0 {
		return Report{}, fmt.Errorf("samples must be positive, got %d", samples)
	}
	if n < 2 {
		return Report{}, fmt.Errorf("range must be at least 2, got %d", n)
	}
	if samples < 5*n {
		return Report{}, fmt.Errorf("need at least %d samples for range %d", 5*n, n)
	}

	counts := make([]int, n)
	for i := 0; i < samples; i++ {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return Report{}, err
			}
		}
		v, err := src.Intn(n)
		if err != nil {
			return Report{}, err
		}
		counts[v]++
	}

	observed := make([]float64, n)
	expected := make([]float64, n)
	for i, c := range counts {
		observed[i] = float64(c)
		expected[i] = float64(samples) / float64(n)
	}
	chi := stat.ChiSquare(observed, expected)
	dist := distuv.ChiSquared{K: float64(n - 1)}
	return Report{
		Samples:   samples,
		Range:     n,
		Counts:    counts,
		ChiSquare: chi,
		PValue:    dist.Survival(chi),
	}, nil
}
