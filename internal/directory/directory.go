package directory

import "sort"

// Directory is an immutable mapping from a user name to its raw card string.
// The zero value is an empty directory.
type Directory struct {
	entries map[string]string
}

// New creates a Directory from entries. The map is copied, so later changes
// to entries do not affect the Directory.
func New(entries map[string]string) Directory {
	copied := make(map[string]string, len(entries))
	for name, raw := range entries {
		copied[name] = raw
	}
	return Directory{entries: copied}
}

// Default returns the built-in directory.
//
// The sample rows are deliberately inconsistent: only Amy's string is
// four numeric tokens. Tim's contains a month name and Bob's has three
// tokens, so both fail to parse.
func Default() Directory {
	return New(map[string]string{
		"Amy": "1234567 04 25 123",
		"Tim": "1234567 Dec 08 123",
		"Bob": "1234567 0616 123",
	})
}

// Get returns the raw card string registered for name.
// Names are matched exactly (case-sensitive).
func (d Directory) Get(name string) (string, bool) {
	raw, ok := d.entries[name]
	return raw, ok
}

// Names returns all registered names in ascending order.
func (d Directory) Names() []string {
	names := make([]string, 0, len(d.entries))
	for name := range d.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of entries.
func (d Directory) Len() int {
	return len(d.entries)
}
