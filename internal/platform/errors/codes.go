// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Dice configuration errors
	CodeDiceInvalidSpec Code = "DICE_INVALID_SPEC"
	CodeDiceTooFew      Code = "DICE_TOO_FEW"
	CodeDiceIndex       Code = "DICE_INDEX_OUT_OF_RANGE"

	// Counterpart choice errors
	CodeChoiceOutOfRange Code = "CHOICE_OUT_OF_RANGE"
	CodeChoiceNotInteger Code = "CHOICE_NOT_INTEGER"

	// Protocol errors
	CodeProtocolInvalidRange      Code = "PROTOCOL_INVALID_RANGE"
	CodeProtocolInvalidTransition Code = "PROTOCOL_INVALID_TRANSITION"
	CodeCommitmentMismatch        Code = "COMMITMENT_MISMATCH"
	CodeResultMismatch            Code = "RESULT_MISMATCH"

	// Random source errors
	CodeEntropyUnavailable Code = "ENTROPY_UNAVAILABLE"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// Recoverable reports whether an error with this code can be handled by
// asking the counterpart again. Everything else aborts the current command.
func (c Code) Recoverable() bool {
	switch c {
	case CodeChoiceOutOfRange,
		CodeChoiceNotInteger:
		return true
	default:
		return false
	}
}

// Configuration reports whether the code describes a setup mistake that
// should be reported together with usage help.
func (c Code) Configuration() bool {
	switch c {
	case CodeDiceInvalidSpec,
		CodeDiceTooFew:
		return true
	default:
		return false
	}
}
