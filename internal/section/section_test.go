package section

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"no marker", "hello world", []string{"hello world"}},
		{"one marker", `a\pb`, []string{"a", "b"}},
		{"marker at start", `\pa`, []string{"", "a"}},
		{"marker at end", `a\p`, []string{"a", ""}},
		{"adjacent markers", `a\p\pb`, []string{"a", "", "b"}},
		{"empty input", "", []string{""}},
		{"only marker", `\p`, []string{"", ""}},
		{"backslash without p survives", `a\qb`, []string{`a\qb`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitPreservesOrder(t *testing.T) {
	got := Split(`first\psecond\pthird`)
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
