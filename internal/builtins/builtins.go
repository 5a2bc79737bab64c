// Package builtins enumerates the predeclared identifiers of the Go runtime and
// groups them by their uppercase initial.
package builtins

import (
	"go/types"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PrivatePrefix marks names that are internal by convention and never listed.
const PrivatePrefix = "_"

// Source supplies the raw candidate names.
type Source func() []string

// Universe lists the identifiers declared in the Go universe scope
// (append, bool, len, nil, true, ...).
func Universe() []string {
	return types.Universe.Names()
}

// Static returns a Source that always yields the given names.
func Static(names ...string) Source {
	fixed := slices.Clone(names)
	return func() []string {
		return slices.Clone(fixed)
	}
}

// FilterSort drops private and empty names, removes duplicates and sorts the
// rest by byte order. The input slice is not modified.
func FilterSort(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || strings.HasPrefix(name, PrivatePrefix) {
			continue
		}
		out = append(out, name)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// List returns the filtered, sorted names of src. A nil src means Universe.
func List(src Source) []string {
	if src == nil {
		src = Universe
	}
	return FilterSort(src())
}

// Count returns len(List(src)).
func Count(src Source) int {
	return len(List(src))
}

var upper = cases.Upper(language.Und)

// Key returns the group key of name: its first character, uppercased.
// For a name that is not valid UTF-8 the key is the raw first byte; such a key
// does not survive JSON encoding, which replaces it with U+FFFD. Go's
// predeclared identifiers are all ASCII.
func Key(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError && size <= 1 {
		return name[:size]
	}
	return upper.String(name[:size])
}
