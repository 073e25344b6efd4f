// Package translate is the state machine at the center of the pipeline:
// it walks one section's token stream and emits styled blocks, collapsing
// blank runs and allocating numbering identities for ordered lists.
package translate

import (
	"log/slog"

	"github.com/dgallion1/mdocx/internal/document"
	"github.com/dgallion1/mdocx/internal/inline"
	"github.com/dgallion1/mdocx/internal/numbering"
	"github.com/dgallion1/mdocx/internal/token"
)

// Translator turns token streams into block sequences. One Translator
// serves one document; every ordered list it meets draws a fresh identity
// from the shared registry, so ordinals never continue across lists.
type Translator struct {
	reg *numbering.Registry
	log *slog.Logger
}

func New(reg *numbering.Registry, log *slog.Logger) *Translator {
	return &Translator{reg: reg, log: log}
}

// state is the loop state threaded through step. blankRun counts
// consecutive blank tokens since the last non-blank one; a run of any
// length emits exactly one spacer, on its first token.
type state struct {
	lastKind token.Kind
	blankRun int
}

// Section consumes toks strictly left to right, single pass, and returns
// the section's blocks in order.
func (t *Translator) Section(toks []token.Token) []document.Block {
	var blocks []document.Block
	st := state{lastKind: -1}
	for _, tok := range toks {
		var emitted []document.Block
		st, emitted = t.step(st, tok)
		blocks = append(blocks, emitted...)
	}
	return blocks
}

func (t *Translator) step(st state, tok token.Token) (state, []document.Block) {
	if tok.Kind == token.KindBlank {
		st.blankRun++
		st.lastKind = token.KindBlank
		if st.blankRun == 1 {
			return st, []document.Block{document.Spacer{}}
		}
		return st, nil
	}

	// Any non-blank token ends the current blank run.
	st.blankRun = 0
	st.lastKind = tok.Kind

	switch tok.Kind {
	case token.KindHeading:
		return st, []document.Block{document.Heading{Level: tok.Depth, Text: tok.Text}}
	case token.KindParagraph:
		return st, []document.Block{document.TextBlock{
			Runs:    inline.Parse(tok.Text),
			Spacing: document.ParagraphSpacing,
		}}
	case token.KindList:
		return st, t.list(tok)
	case token.KindBlockquote:
		return st, t.quote(tok)
	case token.KindCode:
		return st, []document.Block{document.Code{Runs: codeRuns(tok.Text)}}
	case token.KindRule:
		return st, []document.Block{document.Rule{}}
	case token.KindTable:
		return st, []document.Block{table(tok)}
	default:
		t.log.Warn("skipping unsupported markdown token", "kind", tok.Name)
		return st, nil
	}
}

func (t *Translator) list(tok token.Token) []document.Block {
	var ref string
	if tok.Ordered {
		ref = t.reg.Allocate().Reference
	}
	blocks := make([]document.Block, 0, len(tok.Items))
	for i, item := range tok.Items {
		blocks = append(blocks, document.ListItem{
			Runs:         inline.Parse(item),
			Ordered:      tok.Ordered,
			NumberingRef: ref,
			First:        i == 0,
		})
	}
	return blocks
}

// quote renders only the paragraph tokens nested in a blockquote. Other
// nested kinds are skipped; nested quote layout is not supported.
func (t *Translator) quote(tok token.Token) []document.Block {
	var blocks []document.Block
	for _, nested := range tok.Nested {
		if nested.Kind != token.KindParagraph {
			if nested.Kind != token.KindBlank {
				t.log.Debug("skipping non-paragraph token inside blockquote", "kind", nested.Kind.String())
			}
			continue
		}
		blocks = append(blocks, document.Quote{Runs: inline.Parse(nested.Text)})
	}
	return blocks
}

func codeRuns(text string) []document.Run {
	runs := inline.Parse(text)
	for i := range runs {
		runs[i].Mono = true
	}
	return runs
}

func table(tok token.Token) document.Table {
	var tbl document.Table
	for _, cell := range tok.Header {
		tbl.Header = append(tbl.Header, document.Cell{Runs: inline.Parse(cell)})
	}
	for _, row := range tok.Rows {
		cells := make([]document.Cell, 0, len(row))
		for _, cell := range row {
			cells = append(cells, document.Cell{Runs: inline.Parse(cell)})
		}
		tbl.Rows = append(tbl.Rows, cells)
	}
	return tbl
}
