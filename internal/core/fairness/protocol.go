package fairness

import (
	"strconv"
	"strings"

	"github.com/louisbranch/fairdice/internal/core/commit"
	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
)

// Source supplies the keys and the committed number.
type Source interface {
	Key() ([]byte, error)
	Intn(n int) (int, error)
}

// Protocol holds the state of one commit-reveal round.
type Protocol struct {
	n              int
	state          State
	systemKey      []byte
	counterpartKey []byte
	number         int
	commitment     string
	choice         int
}

// New draws the round secrets from src and commits to the system number.
// The returned protocol is in StateCommitted.
func New(src Source, n int) (*Protocol, error) {
	if n <= 0 {
		return nil, apperrors.WithMetadata(apperrors.CodeProtocolInvalidRange, "range must be positive", map[string]string{
			"Range": strconv.Itoa(n),
		})
	}
	p := &Protocol{n: n, state: StateInitialized}

	systemKey, err := src.Key()
	if err != nil {
		return nil, err
	}
	counterpartKey, err := src.Key()
	if err != nil {
		return nil, err
	}
	number, err := src.Intn(n)
	if err != nil {
		return nil, err
	}

	p.systemKey = systemKey
	p.counterpartKey = counterpartKey
	p.number = number
	p.commitment = commit.DigestHex(systemKey, strconv.Itoa(number))
	p.state = StateCommitted
	return p, nil
}

// Range returns n, the exclusive upper bound of every number in the round.
func (p *Protocol) Range() int {
	return p.n
}

// State returns the current protocol step.
func (p *Protocol) State() State {
	return p.state
}

// Commitment returns the hex digest that binds the system number.
func (p *Protocol) Commitment() string {
	return p.commitment
}

// Choose records the counterpart's number. Out-of-range values are rejected
// with a recoverable error and leave the protocol in StateCommitted.
func (p *Protocol) Choose(choice int) error {
	if p.state != StateCommitted {
		return p.invalidTransition("choose")
	}
	if err := checkRange(choice, p.n); err != nil {
		return err
	}
	p.choice = choice
	p.state = StateChosen
	return nil
}

// ChooseInput parses a line of counterpart input and records it.
func (p *Protocol) ChooseInput(input string) error {
	if p.state != StateCommitted {
		return p.invalidTransition("choose")
	}
	choice, err := ParseChoice(input, p.n)
	if err != nil {
		return err
	}
	return p.Choose(choice)
}

// Reveal combines both numbers and discloses everything needed to verify
// the commitment. It is valid exactly once, after Choose.
func (p *Protocol) Reveal() (Transcript, error) {
	if p.state != StateChosen {
		return Transcript{}, p.invalidTransition("reveal")
	}
	p.state = StateRevealed
	return Transcript{
		Range:          p.n,
		Commitment:     p.commitment,
		Number:         p.number,
		Choice:         p.choice,
		Result:         Combine(p.number, p.choice, p.n),
		SystemKey:      cloneBytes(p.systemKey),
		CounterpartKey: cloneBytes(p.counterpartKey),
	}, nil
}

func (p *Protocol) invalidTransition(operation string) error {
	return apperrors.WithMetadata(apperrors.CodeProtocolInvalidTransition, "cannot "+operation+" in state "+p.state.String(), map[string]string{
		"Operation": operation,
		"State":     p.state.String(),
	})
}

// Combine returns (number + choice) mod n for number and choice in [0, n).
// It never forms number + choice, so it holds for n up to math.MaxInt.
func Combine(number, choice, n int) int {
	if choice >= n-number {
		return choice - (n - number)
	}
	return number + choice
}

// ParseChoice parses counterpart input as an integer in [0, n).
func ParseChoice(input string, n int) (int, error) {
	trimmed := strings.TrimSpace(input)
	choice, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, apperrors.WrapWithMetadata(apperrors.CodeChoiceNotInteger, "choice is not an integer", map[string]string{
			"Input": trimmed,
		}, err)
	}
	if err := checkRange(choice, n); err != nil {
		return 0, err
	}
	return choice, nil
}

func checkRange(choice, n int) error {
	if choice < 0 || choice >= n {
		return apperrors.WithMetadata(apperrors.CodeChoiceOutOfRange, "choice out of range", map[string]string{
			"Choice": strconv.Itoa(choice),
			"Max":    strconv.Itoa(n - 1),
		})
	}
	return nil
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
