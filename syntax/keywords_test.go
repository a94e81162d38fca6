package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/cyld/grammar"
)

func TestCheckKeywords_Suggestions(t *testing.T) {
	keywords := func(values ...string) *grammar.Grammar {
		g := &grammar.Grammar{}
		for _, v := range values {
			g.Keywords = append(g.Keywords, grammar.Keyword{Value: v, Type: "Other"})
		}

		return g
	}

	tests := []struct {
		name    string
		g       *grammar.Grammar
		source  string
		want    [][]string
		message string
	}{
		{
			name:    "misspelled return",
			g:       grammar.Default(),
			source:  "retrun x;",
			want:    [][]string{{"return"}},
			message: "Did you mean: return?",
		},
		{
			name:   "no similar keyword",
			g:      grammar.Default(),
			source: "value",
		},
		{
			name:    "ranked by similarity",
			g:       keywords("letter", "let", "lets", "lex"),
			source:  "lett",
			want:    [][]string{{"let", "lets", "letter"}},
			message: "Did you mean: let, lets, letter?",
		},
		{
			name:    "capped at three",
			g:       keywords("ab1", "ab2", "ab3", "ab4"),
			source:  "ab",
			want:    [][]string{{"ab1", "ab2", "ab3"}},
			message: "Did you mean: ab1, ab2, ab3?",
		},
		{
			name:   "keywords themselves are not suggested against",
			g:      keywords("let", "lets"),
			source: "let lets",
		},
		{
			name:   "duplicate keywords listed once",
			g:      keywords("while", "while"),
			source: "whle",
			want:   [][]string{{"while"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := CheckKeywords(Tokenize(tt.source, tt.g), tt.g)

			var candidates [][]string
			for _, s := range got {
				candidates = append(candidates, s.Candidates)

				if s.Kind != IssueKeywordSuggestion {
					t.Errorf("suggestion kind = %q", s.Kind)
				}
			}

			if diff := cmp.Diff(tt.want, candidates); diff != "" {
				t.Errorf("candidates mismatch (-want +got):\n%s", diff)
			}

			if tt.message != "" && (len(got) == 0 || got[0].Message != tt.message) {
				t.Errorf("message = %+v, want %q", got, tt.message)
			}
		})
	}
}

func TestCheckKeywords_FunctionName(t *testing.T) {
	g := grammar.Default()

	tests := []struct {
		name   string
		source string
		want   []Issue
	}{
		{
			name:   "named function",
			source: "fn main() {}",
		},
		{
			name:   "number after fn",
			source: "fn 5() {}",
			want: []Issue{{
				Kind:     IssueInvalidFunctionName,
				Message:  "Function declaration must be followed by a name",
				Severity: SeverityError,
				Line:     1, Column: 1, Length: 2,
			}},
		},
		{
			name:   "fn at end of input",
			source: "x;\n  fn",
			want: []Issue{{
				Kind:     IssueInvalidFunctionName,
				Message:  "Function declaration must be followed by a name",
				Severity: SeverityError,
				Line:     2, Column: 3, Length: 2,
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := CheckKeywords(Tokenize(tt.source, g), g)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("issues mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckKeywords_CategoryFromTag(t *testing.T) {
	g := &grammar.Grammar{Keywords: []grammar.Keyword{
		{Value: "func", Type: "function_declaration"},
	}}

	got, _ := CheckKeywords(Tokenize("func (", g), g)
	if len(got) != 1 || got[0].Kind != IssueInvalidFunctionName {
		t.Errorf("CheckKeywords() = %+v, want one invalid_function_name", got)
	}
}

func TestChecker_ContextRules(t *testing.T) {
	g := grammar.Default()
	structName := ContextRule{
		Next:     KindIdentifier,
		Kind:     "invalid_struct_name",
		Severity: SeverityError,
		Message:  "Structure declaration must be followed by a name",
	}

	t.Run("added rule", func(t *testing.T) {
		r := Check("struct { }", g, WithContextRule(grammar.CategoryStructDeclaration, structName))

		want := []Issue{{
			Kind:     "invalid_struct_name",
			Message:  structName.Message,
			Severity: SeverityError,
			Line:     1, Column: 1, Length: 6,
		}}
		if diff := cmp.Diff(want, r.Issues); diff != "" {
			t.Errorf("issues mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("removed rule", func(t *testing.T) {
		r := Check("fn 5() {}", g, WithoutContextRule(grammar.CategoryFunctionDeclaration))
		if !r.Valid || len(r.Issues) != 0 {
			t.Errorf("Check() = %+v, want no issues", r)
		}
	})

	t.Run("default rules unaffected", func(t *testing.T) {
		_ = NewChecker(g, WithoutContextRule(grammar.CategoryFunctionDeclaration))

		if _, ok := DefaultContextRules()[grammar.CategoryFunctionDeclaration]; !ok {
			t.Error("option mutated the default rule set")
		}

		if r := Check("fn 5() {}", g); r.Valid {
			t.Error("default checker lost the function name rule")
		}
	})
}
