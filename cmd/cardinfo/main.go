// Package main is the entry point for the cardinfo CLI.
//
// This binary looks up a name in a directory of raw card strings and
// parses the match into a structured record. It delegates all functionality
// to the internal/cli package, which defines the cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags.
// During development, they default to "dev", "none", and "unknown".
package main

import (
	"github.com/mmr-tortoise/cardinfo/internal/cli"
)

// version, commit, and date are set at build time via ldflags
// (-X main.version=...). They are shown by --version.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
