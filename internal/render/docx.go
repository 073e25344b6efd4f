// Package render serializes the assembled document model into .docx
// bytes using go-docx.
//
// go-docx does not author numbering.xml, so ordered items carry their
// ordinal as a literal text prefix computed from the item's numbering
// reference; distinct references keep distinct counters.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/dgallion1/mdocx/internal/document"
	"github.com/dgallion1/mdocx/internal/numbering"
)

const (
	codeShade   = "F2F2F2"
	headerShade = "D9D9D9"
	quoteColor  = "595959"
	ruleColor   = "BFBFBF"
)

// runStyle is the styling a block imposes on all of its runs, on top of
// each run's own flags.
type runStyle struct {
	bold   bool
	italic bool
	shade  string
	color  string
}

// DocxBytes renders doc into a byte buffer holding a complete .docx
// file.
func DocxBytes(doc *document.Document) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	defs := make(map[string]numbering.Definition, len(doc.Numbering))
	for _, def := range doc.Numbering {
		defs[def.Reference] = def
	}
	ordinals := make(map[string]int)

	for _, block := range doc.Blocks {
		switch b := block.(type) {
		case document.Heading:
			p := w.AddParagraph().Style(headingStyle(b.Level))
			p.AddText(b.Text)
		case document.TextBlock:
			writeRuns(w.AddParagraph(), b.Runs, doc.Style, runStyle{})
		case document.ListItem:
			p := w.AddParagraph()
			prefix := p.AddText(listPrefix(b, defs, ordinals))
			applyDefaults(prefix, doc.Style)
			writeRuns(p, b.Runs, doc.Style, runStyle{})
		case document.Quote:
			writeRuns(w.AddParagraph(), b.Runs, doc.Style, runStyle{italic: true, color: quoteColor})
		case document.Code:
			writeRuns(w.AddParagraph(), b.Runs, doc.Style, runStyle{shade: codeShade})
		case document.Rule:
			w.AddParagraph().AddText(strings.Repeat("_", 40)).Color(ruleColor)
		case document.Table:
			writeTable(w, b, doc.Style)
		case document.Spacer:
			w.AddParagraph()
		default:
			return nil, fmt.Errorf("unknown block type %T", block)
		}
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serialize docx: %w", err)
	}
	return buf.Bytes(), nil
}

func headingStyle(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return fmt.Sprintf("Heading%d", level)
}

// listPrefix materializes the next ordinal for an ordered item from its
// numbering definition's level text, or a bullet for unordered items.
func listPrefix(b document.ListItem, defs map[string]numbering.Definition, ordinals map[string]int) string {
	if !b.Ordered {
		return "• "
	}
	ordinals[b.NumberingRef]++
	levelText := "%1."
	if def, ok := defs[b.NumberingRef]; ok {
		levelText = def.LevelText
	}
	return strings.ReplaceAll(levelText, "%1", strconv.Itoa(ordinals[b.NumberingRef])) + " "
}

// writeRuns appends runs to p. Break runs become w:br elements attached
// to the preceding run, keeping multi-line text one paragraph.
func writeRuns(p *docx.Paragraph, runs []document.Run, style document.StyleDefaults, base runStyle) {
	var last *docx.Run
	for _, r := range runs {
		if r.Break {
			if last == nil {
				last = p.AddText("")
				applyDefaults(last, style)
			}
			last.Children = append(last.Children, &docx.BarterRabbet{})
			continue
		}

		run := p.AddText(r.Text)
		if r.Mono {
			run.Font(style.MonoFamily, "", style.MonoFamily, "")
			run.Size(strconv.Itoa(style.MonoSize))
		} else {
			applyDefaults(run, style)
		}
		if r.Bold || base.bold {
			run.Bold()
		}
		if r.Italic || base.italic {
			run.Italic()
		}
		if base.shade != "" {
			run.Shade("clear", "auto", base.shade)
		}
		if base.color != "" {
			run.Color(base.color)
		}
		last = run
	}
}

func applyDefaults(run *docx.Run, style document.StyleDefaults) {
	run.Font(style.FontFamily, "", style.FontFamily, "")
	run.Size(strconv.Itoa(style.FontSize))
}

func writeTable(w *docx.Docx, b document.Table, style document.StyleDefaults) {
	cols := len(b.Header)
	for _, row := range b.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return
	}

	tbl := w.AddTable(len(b.Rows)+1, cols, 0, nil)
	for j, cell := range b.Header {
		p := tbl.TableRows[0].TableCells[j].AddParagraph()
		writeRuns(p, cell.Runs, style, runStyle{bold: true, shade: headerShade})
	}
	for i, row := range b.Rows {
		for j, cell := range row {
			if j >= cols {
				break
			}
			p := tbl.TableRows[i+1].TableCells[j].AddParagraph()
			writeRuns(p, cell.Runs, style, runStyle{})
		}
	}
}
