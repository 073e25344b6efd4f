// Package inline parses a block's raw text for emphasis and code
// markers, producing ordered styled runs.
package inline

import (
	"regexp"
	"strings"

	"github.com/dgallion1/mdocx/internal/document"
)

// spanPattern matches well-formed inline spans in priority order:
// double-asterisk (bold), single-asterisk (italic), backtick (monospace).
// Anything it does not match, including unterminated delimiters, falls
// through as plain text.
var spanPattern = regexp.MustCompile("\\*\\*[^*]+\\*\\*|\\*[^*]+\\*|`[^`]+`")

// Parse splits text into styled runs. A literal newline becomes a hard
// break run between the adjacent lines' runs, so multi-line block text
// stays one paragraph with manual breaks.
func Parse(text string) []document.Run {
	var runs []document.Run
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			runs = append(runs, document.Run{Break: true})
		}
		runs = append(runs, parseLine(line)...)
	}
	return runs
}

func parseLine(line string) []document.Run {
	var runs []document.Run
	pos := 0
	for _, loc := range spanPattern.FindAllStringIndex(line, -1) {
		if loc[0] > pos {
			runs = append(runs, document.Run{Text: line[pos:loc[0]]})
		}
		runs = append(runs, styledRun(line[loc[0]:loc[1]]))
		pos = loc[1]
	}
	if pos < len(line) {
		runs = append(runs, document.Run{Text: line[pos:]})
	}
	return runs
}

func styledRun(span string) document.Run {
	switch {
	case strings.HasPrefix(span, "**"):
		return document.Run{Text: span[2 : len(span)-2], Bold: true}
	case strings.HasPrefix(span, "*"):
		return document.Run{Text: span[1 : len(span)-1], Italic: true}
	default:
		return document.Run{Text: span[1 : len(span)-1], Mono: true}
	}
}
