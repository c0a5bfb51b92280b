// Package model defines the domain types and value objects for the
// cardinfo CLI.
//
// This package contains pure data structures with no external dependencies.
// A CardRecord is only ever produced by a successful parse and carries no
// reference back to the raw string it came from.
//
// The package also defines exit codes (ExitCode) and the classified error
// type (Error) that every failure is reported through, so that the CLI can
// render a safe message for the user and a full diagnostic for the log.
package model
