package fairness

import (
	"encoding/hex"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	"github.com/louisbranch/fairdice/internal/core/commit"
	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
)

// Transcript is everything disclosed at the end of a round.
type Transcript struct {
	Range          int    `cbor:"1,keyasint"`
	Commitment     string `cbor:"2,keyasint"`
	Number         int    `cbor:"3,keyasint"`
	Choice         int    `cbor:"4,keyasint"`
	Result         int    `cbor:"5,keyasint"`
	SystemKey      []byte `cbor:"6,keyasint"`
	CounterpartKey []byte `cbor:"7,keyasint"`
}

// SystemKeyHex returns the system key in hex.
func (t Transcript) SystemKeyHex() string {
	return hex.EncodeToString(t.SystemKey)
}

// CounterpartKeyHex returns the counterpart key in hex.
func (t Transcript) CounterpartKeyHex() string {
	return hex.EncodeToString(t.CounterpartKey)
}

// Verify recomputes the commitment from the disclosed key and number, and
// checks that the result combines the two numbers.
func (t Transcript) Verify() error {
	if t.Range <= 0 {
		return apperrors.WithMetadata(apperrors.CodeProtocolInvalidRange, "range must be positive", map[string]string{
			"Range": strconv.Itoa(t.Range),
		})
	}
	if err := CheckNumber(t.Number, t.Range); err != nil {
		return err
	}
	if err := commit.Verify(t.SystemKey, strconv.Itoa(t.Number), t.Commitment); err != nil {
		return err
	}
	if err := checkRange(t.Choice, t.Range); err != nil {
		return err
	}
	if Combine(t.Number, t.Choice, t.Range) != t.Result {
		return apperrors.New(apperrors.CodeResultMismatch, "result does not combine disclosed numbers")
	}
	return nil
}

// CheckNumber reports a committed number outside [0, n).
func CheckNumber(number, n int) error {
	if n <= 0 {
		return apperrors.WithMetadata(apperrors.CodeProtocolInvalidRange, "range must be positive", map[string]string{
			"Range": strconv.Itoa(n),
		})
	}
	if number < 0 || number >= n {
		return apperrors.New(apperrors.CodeResultMismatch, "committed number out of range")
	}
	return nil
}

// Marshal encodes the transcript as CBOR.
func (t Transcript) Marshal() ([]byte, error) {
	return cbor.Marshal(t)
}

// UnmarshalTranscript decodes a CBOR transcript.
func UnmarshalTranscript(data []byte) (Transcript, error) {
	var t Transcript
	if err := cbor.Unmarshal(data, &t); err != nil {
		return Transcript{}, err
	}
	return t, nil
}
