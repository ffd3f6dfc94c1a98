// Package id generates identifiers for archived rounds.
//
// IDs are random v4 UUIDs rendered as 26 lowercase, unpadded base32
// characters so they stay short enough to type into the verifier.
package id

import (
	"encoding/base32"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewID returns a new random identifier.
func NewID() (string, error) {
	return NewIDFromReader(nil)
}

// NewIDFromReader returns an identifier built from bytes read from reader.
// A nil reader uses crypto/rand.
func NewIDFromReader(reader io.Reader) (string, error) {
	var (
		u   uuid.UUID
		err error
	)
	if reader == nil {
		u, err = uuid.NewRandom()
	} else {
		u, err = uuid.NewRandomFromReader(reader)
	}
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return strings.ToLower(encoding.EncodeToString(u[:])), nil
}
