// Package convert runs the full markdown-to-document pipeline: split on
// the break marker, tokenize and translate each section, and assemble the
// final block sequence.
package convert

import (
	"log/slog"
	"strings"

	"github.com/dgallion1/mdocx/internal/document"
	"github.com/dgallion1/mdocx/internal/markdown"
	"github.com/dgallion1/mdocx/internal/numbering"
	"github.com/dgallion1/mdocx/internal/section"
	"github.com/dgallion1/mdocx/internal/translate"
)

// Converter is the core's entry point. Each Convert call builds its own
// registry and translator state, so one Converter may serve concurrent
// independent conversions.
type Converter struct {
	style document.StyleDefaults
	log   *slog.Logger
}

func New(style document.StyleDefaults, log *slog.Logger) *Converter {
	return &Converter{style: style, log: log}
}

// Convert splits input on the paragraph-break marker and concatenates
// each section's blocks in section order, with one spacer between
// adjacent contributions. An empty or whitespace-only section contributes
// no tokens; past the first contribution it stands for exactly one
// spacer, so no spacer ever opens the document.
func (c *Converter) Convert(input string) *document.Document {
	reg := numbering.NewRegistry()
	tr := translate.New(reg, c.log)

	doc := &document.Document{Style: c.style}
	for _, sec := range section.Split(input) {
		trimmed := strings.TrimSpace(sec)
		if trimmed == "" {
			if len(doc.Blocks) > 0 {
				doc.Blocks = append(doc.Blocks, document.Spacer{})
			}
			continue
		}
		if len(doc.Blocks) > 0 {
			doc.Blocks = append(doc.Blocks, document.Spacer{})
		}
		toks := markdown.Tokenize([]byte(trimmed))
		doc.Blocks = append(doc.Blocks, tr.Section(toks)...)
	}
	doc.Numbering = reg.Definitions()
	return doc
}
