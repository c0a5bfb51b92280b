// Package model defines the domain types for the cardinfo CLI.
//
// All types in this package are immutable values. They are created by the
// card package and rendered by the cli package.
package model

import (
	"fmt"
	"strings"
)

// CardRecord is the structured result of parsing a raw card string.
// Fields are assigned positionally from the raw string in the fixed order
// number, month, year, cvv.
type CardRecord struct {
	// Number is the card number.
	Number uint64 `json:"number"`

	// Expiration holds the expiration month and year exactly as parsed.
	// No calendar validation is applied.
	Expiration Expiration `json:"expiration"`

	// CVV is the card verification value.
	CVV uint64 `json:"cvv"`
}

// Expiration is the month/year pair of a CardRecord.
type Expiration struct {
	Month uint64 `json:"month"`
	Year  uint64 `json:"year"`
}

// String renders the expiration as it appears on a card face: MM/YY.
// Values wider than two digits are printed in full.
func (e Expiration) String() string {
	return fmt.Sprintf("%02d/%02d", e.Month, e.Year)
}

// String returns a multi-line, human-readable representation of the record
// used for text output.
//
// Format:
//
//	Number:     1234567
//	Expiration: 04/25
//	CVV:        123
func (c CardRecord) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-11s %d\n", "Number:", c.Number)
	fmt.Fprintf(&b, "%-11s %s\n", "Expiration:", c.Expiration)
	fmt.Fprintf(&b, "%-11s %d", "CVV:", c.CVV)
	return b.String()
}

// ExitCode defines the process exit codes of the CLI.
// Scripts can use them to tell bad input apart from internal failures.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an internal or otherwise unclassified error.
	ExitGeneralError ExitCode = 1

	// ExitInvalidInput indicates the failure is attributable to the
	// caller-supplied data (unknown name, malformed card string).
	ExitInvalidInput ExitCode = 2
)
