// Package dice models custom six-faced dice and the set a game is played with.
package dice

import (
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
)

// FacesPerDie is the number of faces on every die.
const FacesPerDie = 6

// MinDice is the smallest set that can show non-transitive behaviour.
const MinDice = 3

// Usage is the hint shown next to configuration errors.
const Usage = "Usage: fairdice 2,2,4,4,9,9 6,8,1,1,8,6 7,5,3,7,5,3"

// Intner draws a uniform integer in [0, n).
type Intner interface {
	Intn(n int) (int, error)
}

// Die is an immutable sequence of FacesPerDie non-negative faces.
type Die struct {
	faces [FacesPerDie]int
}

// NewDie validates faces and returns the die they describe.
func NewDie(faces []int) (Die, error) {
	if len(faces) != FacesPerDie {
		return Die{}, invalidSpec(formatFaces(faces))
	}
	var d Die
	for i, face := range faces {
		if face < 0 {
			return Die{}, invalidSpec(formatFaces(faces))
		}
		d.faces[i] = face
	}
	return d, nil
}

// MustDie is NewDie for literals known to be valid.
func MustDie(faces ...int) Die {
	d, err := NewDie(faces)
	if err != nil {
		panic(err)
	}
	return d
}

// Face returns the face at index i.
func (d Die) Face(i int) int {
	return d.faces[i]
}

// Faces returns a copy of the faces in order.
func (d Die) Faces() []int {
	out := make([]int, FacesPerDie)
	copy(out, d.faces[:])
	return out
}

// Roll returns a face chosen uniformly by src.
func (d Die) Roll(src Intner) (int, error) {
	i, err := src.Intn(FacesPerDie)
	if err != nil {
		return 0, err
	}
	return d.faces[i], nil
}

// String renders the die as its comma-separated specification.
func (d Die) String() string {
	return formatFaces(d.faces[:])
}

// ParseDie parses a comma-separated specification such as "2,2,4,4,9,9".
func ParseDie(spec string) (Die, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != FacesPerDie {
		return Die{}, invalidSpec(spec)
	}
	faces := make([]int, 0, FacesPerDie)
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || strings.ContainsAny(part, "+-") {
			return Die{}, invalidSpec(spec)
		}
		value, err := strconv.Atoi(part)
		if err != nil {
			return Die{}, apperrors.WrapWithMetadata(apperrors.CodeDiceInvalidSpec, "invalid dice spec "+strconv.Quote(spec), specMetadata(spec), err)
		}
		faces = append(faces, value)
	}
	return NewDie(faces)
}

func invalidSpec(spec string) error {
	return apperrors.WithMetadata(apperrors.CodeDiceInvalidSpec, "invalid dice spec "+strconv.Quote(spec), specMetadata(spec))
}

func specMetadata(spec string) map[string]string {
	return map[string]string{"Spec": spec, "Usage": Usage}
}

func formatFaces(faces []int) string {
	parts := make([]string, len(faces))
	for i, face := range faces {
		parts[i] = strconv.Itoa(face)
	}
	return strings.Join(parts, ",")
}
