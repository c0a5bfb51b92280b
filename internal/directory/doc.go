// Package directory holds the immutable name → raw card string mapping
// that card lookups resolve against.
//
// A Directory is created once at startup, either from the built-in entries
// (Default) or from a file (Load), and is never mutated afterwards. It is
// safe to share without locking.
//
// Directory files may be YAML (gopkg.in/yaml.v3) or JSONC (JSON with
// Comments, via github.com/tidwall/jsonc). Both use a single top-level
// "cards" key.
package directory
