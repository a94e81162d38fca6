package grammar

import (
	"slices"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	g := Default()

	if g.Name != "Cyl" || g.Version != "0.1.0" {
		t.Errorf("metadata = %q %q, want Cyl 0.1.0", g.Name, g.Version)
	}

	counts := []struct {
		name string
		got  int
		want int
	}{
		{"keywords", len(g.Keywords), 22},
		{"operators", len(g.Operators), 23},
		{"syntaxRules", len(g.SyntaxRules), 4},
		{"types", len(g.Types), 8},
	}

	for _, c := range counts {
		if c.got != c.want {
			t.Errorf("len(%s) = %d, want %d", c.name, c.got, c.want)
		}
	}
}

func TestDefault_ReturnsFreshValue(t *testing.T) {
	a := Default()
	a.Keywords[0].Value = "func"
	a.SyntaxRules[0].Examples[0] = "changed"

	b := Default()
	if b.Keywords[0].Value != "fn" {
		t.Errorf("Default shares keyword storage: %q", b.Keywords[0].Value)
	}

	if b.SyntaxRules[0].Examples[0] == "changed" {
		t.Error("Default shares example storage")
	}
}

func TestGrammar_Lookup(t *testing.T) {
	g := Default()

	k, ok := g.Keyword("return")
	if !ok || k.Category() != CategoryReturnStatement {
		t.Errorf("Keyword(return) = %+v, %v", k, ok)
	}

	if _, ok := g.Keyword("retrun"); ok {
		t.Error("Keyword(retrun) found")
	}

	o, ok := g.Operator("!")
	if !ok || o.Arity != ArityUnary {
		t.Errorf("Operator(!) = %+v, %v", o, ok)
	}

	var nilGrammar *Grammar
	if _, ok := nilGrammar.Operator("+"); ok {
		t.Error("nil grammar reported an operator")
	}
}

func TestGrammar_Operator_FirstEntryWins(t *testing.T) {
	g := &Grammar{Operators: []Operator{
		{Symbol: "-", Arity: ArityBinary, Precedence: 6},
		{Symbol: "-", Arity: ArityUnary, Precedence: 8},
	}}

	o, _ := g.Operator("-")
	if o.Arity != ArityBinary {
		t.Errorf("Operator(-).Arity = %v, want binary", o.Arity)
	}
}

func TestGrammar_KeywordTypes(t *testing.T) {
	g := &Grammar{Keywords: []Keyword{
		{Value: "let", Type: "DeclareStatement"},
		{Value: "fn", Type: "FunctionDeclaration"},
		{Value: "const", Type: "DeclareStatement"},
	}}

	got := slices.Collect(g.KeywordTypes())
	want := []string{"DeclareStatement", "FunctionDeclaration"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("KeywordTypes() mismatch (-want +got):\n%s", diff)
	}
}

func TestGrammar_Clone(t *testing.T) {
	g := Default()
	c := g.Clone()

	if diff := cmp.Diff(g, c); diff != "" {
		t.Fatalf("Clone() mismatch (-want +got):\n%s", diff)
	}

	c.Operators[0].Symbol = "plus"
	if g.Operators[0].Symbol != "+" {
		t.Error("Clone shares operator storage")
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		tag  string
		want Category
	}{
		{"FunctionDeclaration", CategoryFunctionDeclaration},
		{"function_declaration", CategoryFunctionDeclaration},
		{"if-statement", CategoryIfStatement},
		{"DeclareStatement", CategoryDeclareStatement},
		{" ReturnStatement ", CategoryReturnStatement},
		{"Whatever", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := ParseCategory(tt.tag); got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestCategory_String(t *testing.T) {
	for _, c := range Categories() {
		if got := ParseCategory(c.String()); got != c {
			t.Errorf("ParseCategory(%q) = %v, want %v", c.String(), got, c)
		}
	}

	if got := Category(-1).String(); got != "Other" {
		t.Errorf("Category(-1).String() = %q", got)
	}
}

func TestEnums_UnmarshalText(t *testing.T) {
	var op Operator

	err := yaml.Unmarshal([]byte("symbol: \"?\"\ntype: Ternary\nassociativity: NONE\n"), &op)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if op.Arity != ArityTernary || op.Associativity != AssocNone {
		t.Errorf("got %+v", op)
	}

	if err := yaml.Unmarshal([]byte("symbol: x\ntype: quaternary\n"), &op); err == nil {
		t.Error("expected an error for unknown arity")
	}

	var td TypeDef
	if err := yaml.Unmarshal([]byte("name: T\nkind: opaque\n"), &td); err == nil {
		t.Error("expected an error for unknown type kind")
	}
}
