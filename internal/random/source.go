// Package random provides the cryptographic random source used by the game.
//
// Every draw reads fresh bytes from the underlying reader; nothing is cached
// between calls. Read failures surface as ENTROPY_UNAVAILABLE errors and are
// never replaced by a weaker generator.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
)

// KeySize is the length in bytes of protocol keys.
const KeySize = 32

// Source draws bytes and unbiased integers from an entropy reader.
type Source struct {
	reader io.Reader
}

// NewSource returns a Source reading from reader. A nil reader selects
// crypto/rand, which is what every command uses outside of tests.
func NewSource(reader io.Reader) *Source {
	if reader == nil {
		reader = crand.Reader
	}
	return &Source{reader: reader}
}

// Bytes returns n freshly read bytes.
func (s *Source) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("byte count must be non-negative, got %d", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.reader, buf); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeEntropyUnavailable, "read random bytes", err)
	}
	return buf, nil
}

// Key returns a fresh KeySize-byte key.
func (s *Source) Key() ([]byte, error) {
	return s.Bytes(KeySize)
}

// Uint32 returns a uniformly distributed 32-bit value.
func (s *Source) Uint32() (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(s.reader, b[:]); err != nil {
		return 0, apperrors.Wrap(apperrors.CodeEntropyUnavailable, "read random bytes", err)
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// Intn returns an exactly uniform integer in [0, n) for 0 < n <= 2^32.
//
// Draws at or above the largest multiple of n that fits in 32 bits are
// discarded and redrawn, so every residue has the same number of preimages.
func (s *Source) Intn(n int) (int, error) {
	if n <= 0 || uint64(n) > math.MaxUint32+1 {
		return 0, fmt.Errorf("random range must be in (0, 2^32], got %d", n)
	}
	limit := RejectionLimit(uint64(n))
	for {
		v, err := s.Uint32()
		if err != nil {
			return 0, err
		}
		if uint64(v) < limit {
			return int(uint64(v) % uint64(n)), nil
		}
	}
}

// RejectionLimit returns floor(2^32/n)*n, the exclusive upper bound of
// accepted 32-bit draws for range n.
func RejectionLimit(n uint64) uint64 {
	const space = uint64(1) << 32
	return space - space%n
}
