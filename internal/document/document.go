// Package document defines the structured document model the translator
// produces and the renderer consumes: an ordered sequence of blocks, each
// holding styled runs.
package document

import "github.com/dgallion1/mdocx/internal/numbering"

// StyleDefaults are the document-wide font settings. Runs inherit them
// unless a flag (monospace) overrides family and size. Sizes are in
// half-points, per OOXML convention.
type StyleDefaults struct {
	FontFamily string
	FontSize   int
	MonoFamily string
	MonoSize   int
}

// Run is one contiguous styled text fragment inside a block. A Run with
// Break set carries no text and represents a hard line break between the
// surrounding runs of the same block.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Mono   bool
	Break  bool
}

// Spacing is a paragraph spacing profile in twips.
type Spacing struct {
	Before int
	After  int
}

// ParagraphSpacing is the standard profile for body text blocks.
var ParagraphSpacing = Spacing{Before: 120, After: 120}

// Block is one structural unit of the output document.
type Block interface {
	block()
}

// Heading is a section heading, level 1 through 6.
type Heading struct {
	Level int
	Text  string
}

// TextBlock is a body paragraph.
type TextBlock struct {
	Runs    []Run
	Spacing Spacing
}

// ListItem is a single item of an ordered or unordered list.
// NumberingRef is empty for unordered items. First marks the first item
// of its list, which renders with reduced leading spacing.
type ListItem struct {
	Runs         []Run
	Ordered      bool
	NumberingRef string
	Level        int
	First        bool
}

// Quote is one quoted paragraph from inside a blockquote.
type Quote struct {
	Runs []Run
}

// Code is a code block; its runs are monospace.
type Code struct {
	Runs []Run
}

// Rule is a horizontal rule.
type Rule struct{}

// Cell is one table cell's run sequence.
type Cell struct {
	Runs []Run
}

// Table holds a header row and ordered body rows.
type Table struct {
	Header []Cell
	Rows   [][]Cell
}

// Spacer is an empty block standing in for a collapsed blank-line run or
// an inter-section gap.
type Spacer struct{}

func (Heading) block()   {}
func (TextBlock) block() {}
func (ListItem) block()  {}
func (Quote) block()     {}
func (Code) block()      {}
func (Rule) block()      {}
func (Table) block()     {}
func (Spacer) block()    {}

// Document is the core's output: the ordered block sequence plus every
// numbering definition allocated while translating it.
type Document struct {
	Blocks    []Block
	Numbering []numbering.Definition
	Style     StyleDefaults
}
