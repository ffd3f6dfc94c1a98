package dice

import (
	"strconv"

	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
)

// Set is the ordered collection of dice offered in a game. Dice are
// addressed by their zero-based position.
type Set struct {
	dice []Die
}

// NewSet validates that at least MinDice dice are present.
func NewSet(dice []Die) (Set, error) {
	if len(dice) < MinDice {
		return Set{}, tooFew(len(dice))
	}
	out := make([]Die, len(dice))
	copy(out, dice)
	return Set{dice: out}, nil
}

// ParseSet parses one specification per die, as given on the command line.
func ParseSet(specs []string) (Set, error) {
	if len(specs) < MinDice {
		return Set{}, tooFew(len(specs))
	}
	dice := make([]Die, 0, len(specs))
	for _, spec := range specs {
		d, err := ParseDie(spec)
		if err != nil {
			return Set{}, err
		}
		dice = append(dice, d)
	}
	return NewSet(dice)
}

func tooFew(count int) error {
	return apperrors.WithMetadata(apperrors.CodeDiceTooFew, "too few dice", map[string]string{
		"Min":   strconv.Itoa(MinDice),
		"Count": strconv.Itoa(count),
		"Usage": Usage,
	})
}

// Len returns the number of dice.
func (s Set) Len() int {
	return len(s.dice)
}

// Die returns the die at index i.
func (s Set) Die(i int) (Die, error) {
	if i < 0 || i >= len(s.dice) {
		return Die{}, apperrors.WithMetadata(apperrors.CodeDiceIndex, "die index out of range", map[string]string{
			"Index": strconv.Itoa(i),
		})
	}
	return s.dice[i], nil
}

// Dice returns a copy of the dice in order.
func (s Set) Dice() []Die {
	out := make([]Die, len(s.dice))
	copy(out, s.dice)
	return out
}

// Sample rolls die i once using src.
func (s Set) Sample(i int, src Intner) (int, error) {
	d, err := s.Die(i)
	if err != nil {
		return 0, err
	}
	return d.Roll(src)
}

// Pick chooses uniformly among the dice other than exclude. A negative
// exclude considers every die.
func (s Set) Pick(src Intner, exclude int) (int, error) {
	candidates := make([]int, 0, len(s.dice))
	for i := range s.dice {
		if i != exclude {
			candidates = append(candidates, i)
		}
	}
	k, err := src.Intn(len(candidates))
	if err != nil {
		return 0, err
	}
	return candidates[k], nil
}
