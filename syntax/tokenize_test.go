package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/cyld/grammar"
)

func TestTokenize(t *testing.T) {
	g := grammar.Default()

	tests := []struct {
		name   string
		source string
		want   []Token
	}{
		{
			name:   "empty",
			source: "",
			want:   nil,
		},
		{
			name:   "multi-character operator",
			source: "x == y",
			want: []Token{
				{Value: "x", Kind: KindIdentifier, Line: 1, Column: 1, Length: 1},
				{Value: "==", Kind: KindOperator, Line: 1, Column: 3, Length: 2},
				{Value: "y", Kind: KindIdentifier, Line: 1, Column: 6, Length: 1},
			},
		},
		{
			name:   "arrow and modulo",
			source: "a%b->c",
			want: []Token{
				{Value: "a", Kind: KindIdentifier, Line: 1, Column: 1, Length: 1},
				{Value: "%", Kind: KindOperator, Line: 1, Column: 2, Length: 1},
				{Value: "b", Kind: KindIdentifier, Line: 1, Column: 3, Length: 1},
				{Value: "->", Kind: KindOperator, Line: 1, Column: 4, Length: 2},
				{Value: "c", Kind: KindIdentifier, Line: 1, Column: 6, Length: 1},
			},
		},
		{
			name:   "declaration with string",
			source: `let s = "hi there";`,
			want: []Token{
				{Value: "let", Kind: KindKeyword, Line: 1, Column: 1, Length: 3},
				{Value: "s", Kind: KindIdentifier, Line: 1, Column: 5, Length: 1},
				{Value: "=", Kind: KindOperator, Line: 1, Column: 7, Length: 1},
				{Value: `"hi there"`, Kind: KindString, Line: 1, Column: 9, Length: 10},
				{Value: ";", Kind: KindPunctuation, Line: 1, Column: 19, Length: 1},
			},
		},
		{
			name:   "single quotes and brackets",
			source: "f(['x'], 42)",
			want: []Token{
				{Value: "f", Kind: KindIdentifier, Line: 1, Column: 1, Length: 1},
				{Value: "(", Kind: KindBracket, Line: 1, Column: 2, Length: 1},
				{Value: "[", Kind: KindBracket, Line: 1, Column: 3, Length: 1},
				{Value: "'x'", Kind: KindString, Line: 1, Column: 4, Length: 3},
				{Value: "]", Kind: KindBracket, Line: 1, Column: 7, Length: 1},
				{Value: ",", Kind: KindPunctuation, Line: 1, Column: 8, Length: 1},
				{Value: "42", Kind: KindNumber, Line: 1, Column: 10, Length: 2},
				{Value: ")", Kind: KindBracket, Line: 1, Column: 12, Length: 1},
			},
		},
		{
			name:   "unterminated quote",
			source: `"abc`,
			want: []Token{
				{Value: `"`, Kind: KindUnknown, Line: 1, Column: 1, Length: 1},
				{Value: "abc", Kind: KindIdentifier, Line: 1, Column: 2, Length: 3},
			},
		},
		{
			name:   "lines and carriage returns",
			source: "a;\r\n\n  b",
			want: []Token{
				{Value: "a", Kind: KindIdentifier, Line: 1, Column: 1, Length: 1},
				{Value: ";", Kind: KindPunctuation, Line: 1, Column: 2, Length: 1},
				{Value: "b", Kind: KindIdentifier, Line: 3, Column: 3, Length: 1},
			},
		},
		{
			name:   "columns count runes",
			source: "é = 1x",
			want: []Token{
				{Value: "é", Kind: KindUnknown, Line: 1, Column: 1, Length: 1},
				{Value: "=", Kind: KindOperator, Line: 1, Column: 3, Length: 1},
				{Value: "1x", Kind: KindUnknown, Line: 1, Column: 5, Length: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.source, g)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.source, diff)
			}
		})
	}
}

func TestTokenize_NilGrammar(t *testing.T) {
	got := Tokenize("fn x == 1", nil)
	want := []Token{
		{Value: "fn", Kind: KindIdentifier, Line: 1, Column: 1, Length: 2},
		{Value: "x", Kind: KindIdentifier, Line: 1, Column: 4, Length: 1},
		{Value: "=", Kind: KindUnknown, Line: 1, Column: 6, Length: 1},
		{Value: "=", Kind: KindUnknown, Line: 1, Column: 7, Length: 1},
		{Value: "1", Kind: KindNumber, Line: 1, Column: 9, Length: 1},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_WordOperator(t *testing.T) {
	g := &grammar.Grammar{Operators: []grammar.Operator{
		{Symbol: "and", Arity: grammar.ArityBinary},
		{Symbol: "<=>", Arity: grammar.ArityBinary},
	}}

	got := Tokenize("a and band <=> c", g)
	kinds := make([]Kind, len(got))

	for i, tok := range got {
		kinds[i] = tok.Kind
	}

	want := []Kind{KindIdentifier, KindOperator, KindIdentifier, KindOperator, KindIdentifier}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_KeywordBeforeOperator(t *testing.T) {
	g := &grammar.Grammar{
		Keywords:  []grammar.Keyword{{Value: "is", Type: "Other"}},
		Operators: []grammar.Operator{{Symbol: "is", Arity: grammar.ArityBinary}},
	}

	got := Tokenize("is", g)
	if len(got) != 1 || got[0].Kind != KindKeyword {
		t.Errorf("Tokenize(is) = %+v, want one keyword", got)
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindKeyword, "keyword"},
		{KindIdentifier, "identifier"},
		{KindOperator, "operator"},
		{KindNumber, "number"},
		{KindString, "string"},
		{KindBracket, "bracket"},
		{KindPunctuation, "punctuation"},
		{KindUnknown, "unknown"},
		{Kind(-1), "Kind(-1)"},
		{Kind(99), "Kind(99)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
