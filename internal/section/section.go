// Package section splits raw input on the explicit paragraph-break
// marker into ordered sections.
package section

import "strings"

// Marker is the literal two-character break sequence: a backslash
// followed by the letter p. It is distinct from markdown's blank-line
// paragraph semantics.
const Marker = `\p`

// Split divides input on every occurrence of Marker. Empty sections are
// preserved so ordinals keep determining document order; the caller
// decides what an empty section contributes.
func Split(input string) []string {
	return strings.Split(input, Marker)
}
