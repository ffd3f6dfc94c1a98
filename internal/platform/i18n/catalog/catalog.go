// Package catalog registers the game's user-facing messages with
// golang.org/x/text/message and hands out printers per locale.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// BaseLocale is the canonical source locale for catalogs.
	BaseLocale = "en-US"
)

// Message keys. The key doubles as the en-US format string.
const (
	KeyWelcome         = "Welcome to the Generalized Dice Game!"
	KeyAvailableDice   = "Available dice:"
	KeyDieLine         = "%d. %s"
	KeyMenuPrompt      = "Select a dice by number (or type 'help' for probabilities, 'exit' to quit): "
	KeyInvalidMenu     = "Invalid choice. Please select a valid dice or type 'help' or 'exit'."
	KeyGoodbye         = "Thank you for playing!"
	KeyUserDie         = "You selected dice: %s"
	KeySystemDie       = "Computer selected dice: %s"
	KeyRollingFor      = "Rolling for %s..."
	KeyCommitment      = "HMAC: %s"
	KeyChoicePrompt    = "Select a number between 0 and %d: "
	KeyChoiceResult    = "Your number: %d, total: %d"
	KeyCommittedNumber = "Computer number: %d"
	KeySystemKey       = "Computer key: %s"
	KeyCounterpartKey  = "User key: %s"
	KeyRoundID         = "Round archived as %s"
	KeyUserRoll        = "Your roll: %d"
	KeySystemRoll      = "Computer's roll: %d"
	KeyYou             = "you"
	KeyComputer        = "the computer"
	KeyFinalResult     = "Final result:"
	KeyUserWins        = "You win!"
	KeySystemWins      = "Computer wins!"
	KeyTie             = "It's a tie!"
	KeyPlayAgain       = "Play again? (y/n): "
	KeyTableTitle      = "Probability Table (Winning Probabilities for Each Dice Pair):"
	KeyNonTransitive   = "Non-transitive cycle: %s"
	KeyTransitive      = "No non-transitive cycle in this set."
	KeySimulatedTitle  = "Simulated Table (%d rolls per pair):"
	KeyVerifyOK        = "Round %s verified: commitment and result match."
	KeyVerifyManualOK  = "Commitment verified."
	KeyVerifyFullOK    = "Transcript verified: commitment and result match."
	KeyNoRounds        = "No archived rounds."
	KeyAuditSummary    = "%d draws over [0, %d): chi-square %.3f, p-value %.4f"
	KeyAuditPass       = "Entropy source looks uniform."
	KeyAuditFail       = "Entropy source failed the uniformity check."
)

// Bundle holds message translations keyed by locale.
type Bundle struct {
	locales map[string]map[string]string
}

var defaultBundle = mustRegister(&Bundle{locales: map[string]map[string]string{
	BaseLocale: identity(),
	"pt-BR":    ptBR,
}})

// Default returns the process-wide bundle.
func Default() *Bundle {
	return defaultBundle
}

// NewBundle builds a bundle from locale message maps. The base locale must
// be present.
func NewBundle(locales map[string]map[string]string) (*Bundle, error) {
	if _, ok := locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	b := &Bundle{locales: map[string]map[string]string{}}
	for locale, messages := range locales {
		b.locales[locale] = copyMap(messages)
	}
	return b, nil
}

// Register registers all catalog messages with x/text/message.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		tags := []language.Tag{tag}
		if base, _ := tag.Base(); base.String() != "" && base.String() != "und" {
			baseTag, err := language.Parse(base.String())
			if err == nil && baseTag.String() != tag.String() {
				tags = append(tags, baseTag)
			}
		}
		messages := b.locales[locale]
		keys := make([]string, 0, len(messages))
		for key := range messages {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			for _, registerTag := range tags {
				if err := message.SetString(registerTag, key, messages[key]); err != nil {
					return fmt.Errorf("register %q for %s: %w", key, registerTag, err)
				}
			}
		}
	}
	return nil
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns all available locale identifiers.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Printer returns a message printer for locale, falling back to the base
// locale when it is unknown or malformed.
func Printer(locale string) *message.Printer {
	locale = strings.TrimSpace(locale)
	if !defaultBundle.HasLocale(locale) {
		locale = BaseLocale
	}
	return message.NewPrinter(language.MustParse(locale))
}

func identity() map[string]string {
	keys := []string{
		KeyWelcome, KeyAvailableDice, KeyDieLine, KeyMenuPrompt, KeyInvalidMenu,
		KeyGoodbye, KeyUserDie, KeySystemDie, KeyRollingFor, KeyCommitment,
		KeyChoicePrompt, KeyChoiceResult, KeyCommittedNumber, KeySystemKey, KeyCounterpartKey,
		KeyRoundID, KeyUserRoll, KeySystemRoll, KeyYou, KeyComputer, KeyFinalResult, KeyUserWins,
		KeySystemWins, KeyTie, KeyPlayAgain, KeyTableTitle, KeyNonTransitive,
		KeyTransitive, KeySimulatedTitle, KeyVerifyOK, KeyVerifyManualOK, KeyVerifyFullOK, KeyNoRounds,
		KeyAuditSummary, KeyAuditPass, KeyAuditFail,
	}
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		out[key] = key
	}
	return out
}

func copyMap(source map[string]string) map[string]string {
	out := make(map[string]string, len(source))
	for key, value := range source {
		out[key] = value
	}
	return out
}

func mustRegister(b *Bundle) *Bundle {
	if err := b.Register(); err != nil {
		panic(err)
	}
	return b
}
