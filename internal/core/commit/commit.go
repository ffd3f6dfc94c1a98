// Package commit computes and checks keyed commitments.
//
// A commitment is the lowercase hex HMAC-SHA3-256 of a message under a secret
// key. Publishing it binds the committer to the message without revealing it;
// disclosing the key later lets anyone recompute and compare.
package commit

import (
	"crypto/hmac"
	"encoding/hex"
	"strings"

	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
	"golang.org/x/crypto/sha3"
)

// DigestSize is the length in bytes of a raw digest.
const DigestSize = 32

// DigestHex returns the hex-encoded HMAC-SHA3-256 of message under key.
func DigestHex(key []byte, message string) string {
	mac := hmac.New(sha3.New256, key)
	_, _ = mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the digest of message under key and compares it with
// digest in constant time. Hex case is ignored.
func Verify(key []byte, message, digest string) error {
	expected := DigestHex(key, message)
	got := strings.ToLower(strings.TrimSpace(digest))
	if !hmac.Equal([]byte(expected), []byte(got)) {
		return apperrors.New(apperrors.CodeCommitmentMismatch, "commitment mismatch")
	}
	return nil
}
