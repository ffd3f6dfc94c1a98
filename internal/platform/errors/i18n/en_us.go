package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeDiceInvalidSpec           = "DICE_INVALID_SPEC"
	CodeDiceTooFew                = "DICE_TOO_FEW"
	CodeDiceIndex                 = "DICE_INDEX_OUT_OF_RANGE"
	CodeChoiceOutOfRange          = "CHOICE_OUT_OF_RANGE"
	CodeChoiceNotInteger          = "CHOICE_NOT_INTEGER"
	CodeProtocolInvalidRange      = "PROTOCOL_INVALID_RANGE"
	CodeProtocolInvalidTransition = "PROTOCOL_INVALID_TRANSITION"
	CodeCommitmentMismatch        = "COMMITMENT_MISMATCH"
	CodeResultMismatch            = "RESULT_MISMATCH"
	CodeEntropyUnavailable        = "ENTROPY_UNAVAILABLE"
	CodeNotFound                  = "NOT_FOUND"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Dice configuration
		CodeDiceInvalidSpec: "Each dice configuration must contain 6 non-negative integers, got {{.Spec}}",
		CodeDiceTooFew:      "At least {{.Min}} dice configurations are required, got {{.Count}}",
		CodeDiceIndex:       "Die {{.Index}} does not exist",

		// Counterpart choice
		CodeChoiceOutOfRange: "Please enter a valid number between 0 and {{.Max}}.",
		CodeChoiceNotInteger: "Invalid input. Please enter an integer.",

		// Protocol
		CodeProtocolInvalidRange:      "The fair number range must be positive, got {{.Range}}",
		CodeProtocolInvalidTransition: "Cannot {{.Operation}} while the protocol is {{.State}}",
		CodeCommitmentMismatch:        "The disclosed key and number do not match the commitment",
		CodeResultMismatch:            "The disclosed result does not match the committed and chosen numbers",

		// Randomness
		CodeEntropyUnavailable: "The secure random source is unavailable",

		// Storage
		CodeNotFound: "Round {{.ID}} was not found",
	},
}
