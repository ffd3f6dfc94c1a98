package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/fairdice/internal/core/dice"
	"github.com/louisbranch/fairdice/internal/core/fairness"
	"github.com/louisbranch/fairdice/internal/core/probability"
	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
	"github.com/louisbranch/fairdice/internal/platform/i18n/catalog"
	"github.com/louisbranch/fairdice/internal/platform/otel"
	"github.com/louisbranch/fairdice/internal/storage"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/text/message"
)

// Range is the fair-number range of one roll: one value per face.
const Range = dice.FacesPerDie

const (
	commandExit = "exit"
	commandHelp = "help"
)

// Source supplies secret keys and uniform integers.
type Source interface {
	Key() ([]byte, error)
	Intn(n int) (int, error)
}

// Archive stores revealed rounds.
type Archive interface {
	PutRound(ctx context.Context, round storage.Round) error
}

// Options tune a game. The zero value plays without an archive in en-US.
type Options struct {
	Locale         string
	Archive        Archive
	NewID          func() (string, error)
	Logger         *log.Logger
	SimulateTrials int
	Now            func() time.Time
}

// Outcome is the result of one played round.
type Outcome struct {
	UserDie    int
	SystemDie  int
	UserFace   int
	SystemFace int
}

// Winner returns 1 when the user wins, -1 when the system wins and 0 on a tie.
func (o Outcome) Winner() int {
	switch {
	case o.UserFace > o.SystemFace:
		return 1
	case o.UserFace < o.SystemFace:
		return -1
	default:
		return 0
	}
}

// Game plays rounds over one dice set.
type Game struct {
	set     dice.Set
	src     Source
	table   probability.Table
	printer *message.Printer
	locale  string
	opts    Options
	in      *lineReader
	out     io.Writer
}

// New builds a game reading commands from in and writing transcripts to out.
func New(set dice.Set, src Source, in io.Reader, out io.Writer, opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Game{
		set:     set,
		src:     src,
		table:   probability.Compute(set),
		printer: catalog.Printer(opts.Locale),
		locale:  opts.Locale,
		opts:    opts,
		in:      newLineReader(in),
		out:     out,
	}
}

// Run plays until the user exits, declines another round or input ends.
// Entropy failures and context cancellation end the game with an error.
func (g *Game) Run(ctx context.Context) error {
	defer g.in.stop()
	g.say(catalog.KeyWelcome)
	for {
		g.printMenu()
		line, err := g.in.next(ctx)
		if errors.Is(err, io.EOF) {
			g.say(catalog.KeyGoodbye)
			return nil
		}
		if err != nil {
			return err
		}

		switch choice := strings.ToLower(line); choice {
		case commandExit:
			g.say(catalog.KeyGoodbye)
			return nil
		case commandHelp:
			if err := g.printHelp(); err != nil {
				return err
			}
			continue
		}

		index, ok := g.menuIndex(line)
		if !ok {
			g.say(catalog.KeyInvalidMenu)
			continue
		}
		if _, err := g.PlayRound(ctx, index); err != nil {
			return err
		}

		g.prompt(catalog.KeyPlayAgain)
		again, err := g.in.next(ctx)
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if strings.ToLower(again) != "y" {
			g.fprint("\n")
			g.say(catalog.KeyGoodbye)
			return nil
		}
	}
}

// PlayRound plays one round with the user holding the die at userIndex.
func (g *Game) PlayRound(ctx context.Context, userIndex int) (Outcome, error) {
	ctx, span := otel.Tracer("fairdice/game").Start(ctx, "game.round")
	defer span.End()

	userDie, err := g.set.Die(userIndex)
	if err != nil {
		return Outcome{}, err
	}
	systemIndex, err := g.set.Pick(g.src, userIndex)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Outcome{}, err
	}
	systemDie, err := g.set.Die(systemIndex)
	if err != nil {
		return Outcome{}, err
	}
	span.SetAttributes(
		attribute.Int("fairdice.user_die", userIndex),
		attribute.Int("fairdice.system_die", systemIndex),
	)

	g.say(catalog.KeyUserDie, userDie.String())
	g.say(catalog.KeySystemDie, systemDie.String())

	userFace, err := g.fairRoll(ctx, "user", g.printer.Sprintf(catalog.KeyYou), userDie)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Outcome{}, err
	}
	g.say(catalog.KeyUserRoll, userFace)

	systemFace, err := g.fairRoll(ctx, "system", g.printer.Sprintf(catalog.KeyComputer), systemDie)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Outcome{}, err
	}
	g.say(catalog.KeySystemRoll, systemFace)

	outcome := Outcome{UserDie: userIndex, SystemDie: systemIndex, UserFace: userFace, SystemFace: systemFace}
	g.say(catalog.KeyFinalResult)
	switch outcome.Winner() {
	case 1:
		g.say(catalog.KeyUserWins)
	case -1:
		g.say(catalog.KeySystemWins)
	default:
		g.say(catalog.KeyTie)
	}
	span.SetAttributes(attribute.Int("fairdice.winner", outcome.Winner()))
	return outcome, nil
}

// fairRoll runs one commit-reveal round over the die's faces and returns the
// face selected by the combined result.
func (g *Game) fairRoll(ctx context.Context, label, who string, die dice.Die) (int, error) {
	ctx, span := otel.Tracer("fairdice/game").Start(ctx, "game.fair_roll")
	defer span.End()

	protocol, err := fairness.New(g.src, Range)
	if err != nil {
		return 0, err
	}
	g.say(catalog.KeyRollingFor, who)
	g.say(catalog.KeyCommitment, protocol.Commitment())

	for {
		g.prompt(catalog.KeyChoicePrompt, Range-1)
		line, err := g.in.next(ctx)
		if err != nil {
			return 0, err
		}
		err = protocol.ChooseInput(line)
		if err == nil {
			break
		}
		if !apperrors.IsRecoverable(err) {
			return 0, err
		}
		g.fprint(apperrors.Localize(err, g.locale) + "\n")
	}

	transcript, err := protocol.Reveal()
	if err != nil {
		return 0, err
	}
	g.say(catalog.KeyChoiceResult, transcript.Choice, transcript.Result)
	g.say(catalog.KeyCommittedNumber, transcript.Number)
	g.say(catalog.KeyCounterpartKey, transcript.CounterpartKeyHex())
	g.say(catalog.KeySystemKey, transcript.SystemKeyHex())
	span.SetAttributes(attribute.String("fairdice.commitment", transcript.Commitment))

	if err := g.archive(ctx, label, transcript); err != nil {
		return 0, err
	}
	return die.Face(transcript.Result), nil
}

func (g *Game) archive(ctx context.Context, label string, transcript fairness.Transcript) error {
	if g.opts.Archive == nil || g.opts.NewID == nil {
		return nil
	}
	roundID, err := g.opts.NewID()
	if err != nil {
		return fmt.Errorf("new round id: %w", err)
	}
	round := storage.Round{
		ID:         roundID,
		Label:      label,
		Transcript: transcript,
		CreatedAt:  g.opts.Now().UTC(),
	}
	if err := g.opts.Archive.PutRound(ctx, round); err != nil {
		return fmt.Errorf("archive round: %w", err)
	}
	g.opts.Logger.Printf("archived %s round %s", label, roundID)
	g.say(catalog.KeyRoundID, roundID)
	return nil
}

func (g *Game) menuIndex(line string) (int, bool) {
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > g.set.Len() {
		return 0, false
	}
	return n - 1, true
}

func (g *Game) printMenu() {
	g.fprint("\n")
	g.say(catalog.KeyAvailableDice)
	for i, die := range g.set.Dice() {
		g.say(catalog.KeyDieLine, i+1, die.String())
	}
	g.prompt(catalog.KeyMenuPrompt)
}

func (g *Game) printHelp() error {
	g.say(catalog.KeyTableTitle)
	if err := WriteTable(g.out, g.printer, g.table); err != nil {
		return err
	}
	if cycle := g.table.Cycle(); cycle != nil {
		g.say(catalog.KeyNonTransitive, FormatCycle(cycle))
	} else {
		g.say(catalog.KeyTransitive)
	}
	if g.opts.SimulateTrials <= 0 {
		return nil
	}
	simulated, err := probability.Simulate(g.set, g.src, g.opts.SimulateTrials)
	if err != nil {
		return err
	}
	g.say(catalog.KeySimulatedTitle, g.opts.SimulateTrials)
	return WriteTable(g.out, g.printer, simulated)
}

func (g *Game) say(key string, args ...any) {
	g.printer.Fprintf(g.out, key, args...)
	g.fprint("\n")
}

func (g *Game) prompt(key string, args ...any) {
	g.printer.Fprintf(g.out, key, args...)
}

func (g *Game) fprint(s string) {
	_, _ = io.WriteString(g.out, s)
}
