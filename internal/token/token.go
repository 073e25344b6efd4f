// Package token defines the typed units the markdown tokenizer produces
// and the block translator consumes. Tokens are read-only once built.
package token

// Kind tags a token variant.
type Kind int

const (
	KindHeading Kind = iota
	KindParagraph
	KindList
	KindBlockquote
	KindCode
	KindTable
	KindRule
	KindBlank
	KindOther
)

var kindNames = [...]string{
	"heading",
	"paragraph",
	"list",
	"blockquote",
	"code",
	"table",
	"rule",
	"blank",
	"other",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Token is one tagged unit of tokenized markdown. Only the fields backing
// its Kind are populated; Text and item/cell texts are raw source so
// inline markers survive for the inline formatter.
type Token struct {
	Kind  Kind
	Depth int    // heading level, 1-6
	Text  string // heading, paragraph, code

	Ordered bool     // list
	Items   []string // list item texts, in order

	Nested []Token // blockquote contents

	Header []string   // table header cell texts
	Rows   [][]string // table body cell texts, row-major

	Name string // source node kind, for diagnostics on KindOther
}
