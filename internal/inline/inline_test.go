package inline

import (
	"reflect"
	"testing"

	"github.com/dgallion1/mdocx/internal/document"
)

func TestParse_StyledSpans(t *testing.T) {
	runs := Parse("Hello **world**, *emphasis* and `code`.")

	want := []document.Run{
		{Text: "Hello "},
		{Text: "world", Bold: true},
		{Text: ", "},
		{Text: "emphasis", Italic: true},
		{Text: " and "},
		{Text: "code", Mono: true},
		{Text: "."},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Errorf("expected %+v, got %+v", want, runs)
	}
}

func TestParse_SpanOrderAndFlags(t *testing.T) {
	// Exactly three styled runs in source order, one flag each.
	runs := Parse("**b** *i* `c`")

	var styled []document.Run
	for _, r := range runs {
		if r.Bold || r.Italic || r.Mono {
			styled = append(styled, r)
		}
	}
	if len(styled) != 3 {
		t.Fatalf("expected 3 styled runs, got %d: %+v", len(styled), runs)
	}
	if !styled[0].Bold || styled[0].Italic || styled[0].Mono {
		t.Errorf("first styled run should be bold only: %+v", styled[0])
	}
	if !styled[1].Italic || styled[1].Bold || styled[1].Mono {
		t.Errorf("second styled run should be italic only: %+v", styled[1])
	}
	if !styled[2].Mono || styled[2].Bold || styled[2].Italic {
		t.Errorf("third styled run should be mono only: %+v", styled[2])
	}
}

func TestParse_NoEmptyRuns(t *testing.T) {
	// Adjacent delimiters leave no zero-length plain runs between them.
	runs := Parse("**a**`b`*c*")
	for i, r := range runs {
		if !r.Break && r.Text == "" {
			t.Errorf("run %d is empty: %+v", i, runs)
		}
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d: %+v", len(runs), runs)
	}
}

func TestParse_MalformedDelimiters(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated bold", "**foo"},
		{"unterminated italic", "*foo"},
		{"unterminated code", "`foo"},
		{"bare asterisks", "a ** b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := Parse(tt.input)
			if len(runs) != 1 {
				t.Fatalf("expected 1 plain run, got %+v", runs)
			}
			r := runs[0]
			if r.Bold || r.Italic || r.Mono {
				t.Errorf("malformed input should stay plain: %+v", r)
			}
			if r.Text != tt.input {
				t.Errorf("expected text %q, got %q", tt.input, r.Text)
			}
		})
	}
}

func TestParse_HardBreaks(t *testing.T) {
	runs := Parse("line one\nline **two**")

	want := []document.Run{
		{Text: "line one"},
		{Break: true},
		{Text: "line "},
		{Text: "two", Bold: true},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Errorf("expected %+v, got %+v", want, runs)
	}
}

func TestParse_BlankLineStillBreaks(t *testing.T) {
	// An empty line contributes no runs but the breaks remain.
	runs := Parse("a\n\nb")
	breaks := 0
	for _, r := range runs {
		if r.Break {
			breaks++
		}
	}
	if breaks != 2 {
		t.Errorf("expected 2 break runs, got %d: %+v", breaks, runs)
	}
}

func TestParse_BoldWinsOverItalic(t *testing.T) {
	runs := Parse("**bold**")
	if len(runs) != 1 || !runs[0].Bold || runs[0].Italic {
		t.Fatalf("double-asterisk span should be bold, got %+v", runs)
	}
	if runs[0].Text != "bold" {
		t.Errorf("expected delimiters stripped, got %q", runs[0].Text)
	}
}
