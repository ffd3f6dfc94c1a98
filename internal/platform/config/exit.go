package config

import (
	"fmt"
	"io"
	"os"

	apperrors "github.com/louisbranch/fairdice/internal/platform/errors"
)

// Exitf writes a formatted error message to stderr and exits with code 1.
// It provides a consistent fatal-exit pattern for CLI entry points.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// ExitErr reports err in locale on stderr and exits with code 1.
func ExitErr(locale string, err error) {
	WriteErr(os.Stderr, locale, err)
	os.Exit(1)
}

// WriteErr writes the localized message for err followed by its usage hint,
// when the error carries one.
func WriteErr(w io.Writer, locale string, err error) {
	fmt.Fprintln(w, apperrors.Localize(err, locale))
	if usage := apperrors.Usage(err); usage != "" {
		fmt.Fprintln(w, usage)
	}
}
