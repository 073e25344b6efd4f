// Package markdown adapts goldmark's AST into the token stream the block
// translator consumes.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/dgallion1/mdocx/internal/token"
)

// Tokenize parses one section of markdown into ordered tokens. A block
// node preceded by blank lines yields one blank token before its own;
// collapsing blank runs is the translator's job, not ours.
func Tokenize(src []byte) []token.Token {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(src))
	return tokenizeChildren(doc, src)
}

func tokenizeChildren(parent ast.Node, src []byte) []token.Token {
	var toks []token.Token
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if n.HasBlankPreviousLines() && n.PreviousSibling() != nil {
			toks = append(toks, token.Token{Kind: token.KindBlank})
		}
		toks = append(toks, tokenizeNode(n, src))
	}
	return toks
}

func tokenizeNode(n ast.Node, src []byte) token.Token {
	switch node := n.(type) {
	case *ast.Heading:
		return token.Token{Kind: token.KindHeading, Depth: node.Level, Text: rawText(node, src)}
	case *ast.Paragraph:
		return token.Token{Kind: token.KindParagraph, Text: rawText(node, src)}
	case *ast.TextBlock:
		return token.Token{Kind: token.KindParagraph, Text: rawText(node, src)}
	case *ast.List:
		return tokenizeList(node, src)
	case *ast.Blockquote:
		return token.Token{Kind: token.KindBlockquote, Nested: tokenizeChildren(node, src)}
	case *ast.FencedCodeBlock:
		return token.Token{Kind: token.KindCode, Text: rawText(node, src)}
	case *ast.CodeBlock:
		return token.Token{Kind: token.KindCode, Text: rawText(node, src)}
	case *ast.ThematicBreak:
		return token.Token{Kind: token.KindRule}
	case *extast.Table:
		return tokenizeTable(node, src)
	default:
		return token.Token{Kind: token.KindOther, Name: n.Kind().String()}
	}
}

func tokenizeList(list *ast.List, src []byte) token.Token {
	tok := token.Token{Kind: token.KindList, Ordered: list.IsOrdered()}
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var parts []string
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if t := rawText(c, src); t != "" {
				parts = append(parts, t)
			}
		}
		tok.Items = append(tok.Items, strings.Join(parts, "\n"))
	}
	return tok
}

func tokenizeTable(tbl *extast.Table, src []byte) token.Token {
	tok := token.Token{Kind: token.KindTable}
	for r := tbl.FirstChild(); r != nil; r = r.NextSibling() {
		var cells []string
		for c := r.FirstChild(); c != nil; c = c.NextSibling() {
			cells = append(cells, rawText(c, src))
		}
		switch r.(type) {
		case *extast.TableHeader:
			tok.Header = cells
		case *extast.TableRow:
			tok.Rows = append(tok.Rows, cells)
		}
	}
	return tok
}

// rawText reassembles a block node's source lines, keeping interior
// newlines so inline markers reach the inline formatter untouched.
func rawText(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return strings.TrimRight(b.String(), "\n")
}
