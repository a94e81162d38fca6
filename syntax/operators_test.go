package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/cyld/grammar"
)

func TestCheckOperators(t *testing.T) {
	plus := &grammar.Grammar{Operators: []grammar.Operator{
		{Symbol: "+", Arity: grammar.ArityBinary, Precedence: 6},
	}}

	tests := []struct {
		name   string
		g      *grammar.Grammar
		source string
		want   []string
	}{
		{"leading binary", plus, "+ x", []string{"Binary operator + requires operands on both sides"}},
		{"binary with operands", plus, "x + y", nil},
		{"trailing binary", plus, "x +", []string{"Binary operator + requires operands on both sides"}},
		{"parenthesized left operand", plus, "(a) + 'b'", nil},
		{"bracket right operand", plus, "a + (b)", []string{"Binary operator + requires operands on both sides"}},
		{"unary with operand", grammar.Default(), "!done", nil},
		{"unary without operand", grammar.Default(), "x = !;", []string{
			"Binary operator = requires operands on both sides",
			"Unary operator ! requires an operand",
		}},
		{"chained unary", grammar.Default(), "!~x", []string{"Unary operator ! requires an operand"}},
		{"member access", grammar.Default(), "a.b", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckOperators(Tokenize(tt.source, tt.g), tt.g)

			var messages []string
			for _, i := range got {
				messages = append(messages, i.Message)

				if i.Kind != IssueInvalidOperatorUsage || i.Severity != SeverityError {
					t.Errorf("unexpected issue %+v", i)
				}
			}

			if diff := cmp.Diff(tt.want, messages); diff != "" {
				t.Errorf("messages mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckOperators_Position(t *testing.T) {
	g := grammar.Default()

	got := CheckOperators(Tokenize("let x = 1 &&", g), g)
	want := []Issue{{
		Kind:     IssueInvalidOperatorUsage,
		Message:  "Binary operator && requires operands on both sides",
		Severity: SeverityError,
		Line:     1, Column: 11, Length: 2,
	}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckOperators_TernaryNotChecked(t *testing.T) {
	g := &grammar.Grammar{Operators: []grammar.Operator{
		{Symbol: "?", Arity: grammar.ArityTernary},
	}}

	if got := CheckOperators(Tokenize("? ?", g), g); len(got) != 0 {
		t.Errorf("CheckOperators() = %+v, want none", got)
	}
}

func TestCheckOperators_FirstEntryWins(t *testing.T) {
	g := &grammar.Grammar{Operators: []grammar.Operator{
		{Symbol: "-", Arity: grammar.ArityBinary, Precedence: 6},
		{Symbol: "-", Arity: grammar.ArityUnary, Precedence: 8},
	}}

	got := CheckOperators(Tokenize("-x", g), g)
	if len(got) != 1 || got[0].Message != "Binary operator - requires operands on both sides" {
		t.Errorf("CheckOperators() = %+v", got)
	}
}
