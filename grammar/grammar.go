package grammar

import (
	"iter"
	"slices"
	"strings"
)

// Grammar describes the lexical and structural vocabulary of a language.
//
// A nil slice and an empty slice are equivalent for every consumer except
// [Validate], which reports absent operator and syntax-rule sections.
type Grammar struct {
	Name        string       `json:"name"        yaml:"name"`
	Version     string       `json:"version"     yaml:"version"`
	Keywords    []Keyword    `json:"keywords"    yaml:"keywords"`
	Operators   []Operator   `json:"operators"   yaml:"operators"`
	SyntaxRules []SyntaxRule `json:"syntaxRules" yaml:"syntaxRules"`
	Types       []TypeDef    `json:"types"       yaml:"types"`
}

// Keyword is a reserved word of the language.
type Keyword struct {
	Value       string `json:"value"                 yaml:"value"`
	Type        string `json:"type"                  yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Category returns the closed category variant named by the keyword's type
// tag.
func (k Keyword) Category() Category { return ParseCategory(k.Type) }

// Operator is an operator symbol with its parsing properties.
type Operator struct {
	Symbol        string        `json:"symbol"        yaml:"symbol"`
	Arity         Arity         `json:"type"          yaml:"type"`
	Precedence    int           `json:"precedence"    yaml:"precedence"`
	Associativity Associativity `json:"associativity" yaml:"associativity"`
	Description   string        `json:"description"   yaml:"description"`
}

// SyntaxRule documents one construct of the language.
type SyntaxRule struct {
	Name        string   `json:"name"               yaml:"name"`
	Pattern     string   `json:"pattern"            yaml:"pattern"`
	Description string   `json:"description"        yaml:"description"`
	Examples    []string `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// TypeDef is a built-in type of the language.
type TypeDef struct {
	Name        string         `json:"name"                 yaml:"name"`
	Kind        TypeKind       `json:"kind"                 yaml:"kind"`
	Description string         `json:"description"          yaml:"description"`
	Properties  []TypeProperty `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// TypeProperty is a named member of a composite type.
type TypeProperty struct {
	Name        string `json:"name"                  yaml:"name"`
	Type        string `json:"type"                  yaml:"type"`
	Optional    bool   `json:"optional,omitempty"    yaml:"optional,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Keyword returns the first keyword whose value is s.
func (g *Grammar) Keyword(s string) (Keyword, bool) {
	if g == nil {
		return Keyword{}, false
	}

	i := slices.IndexFunc(g.Keywords, func(k Keyword) bool { return k.Value == s })
	if i < 0 {
		return Keyword{}, false
	}

	return g.Keywords[i], true
}

// Operator returns the first operator whose symbol is s.
// Later entries with a duplicate symbol are shadowed.
func (g *Grammar) Operator(s string) (Operator, bool) {
	if g == nil {
		return Operator{}, false
	}

	i := slices.IndexFunc(g.Operators, func(o Operator) bool { return o.Symbol == s })
	if i < 0 {
		return Operator{}, false
	}

	return g.Operators[i], true
}

// KeywordTypes returns an iterator over the distinct keyword type tags in
// order of first appearance.
func (g *Grammar) KeywordTypes() iter.Seq[string] {
	return func(yield func(string) bool) {
		if g == nil {
			return
		}

		seen := make(map[string]struct{}, len(g.Keywords))
		for _, k := range g.Keywords {
			if _, ok := seen[k.Type]; ok {
				continue
			}

			seen[k.Type] = struct{}{}

			if !yield(k.Type) {
				return
			}
		}
	}
}

// OperatorsByArity returns an iterator over the operators with arity a.
func (g *Grammar) OperatorsByArity(a Arity) iter.Seq[Operator] {
	return func(yield func(Operator) bool) {
		if g == nil {
			return
		}

		for _, o := range g.Operators {
			if o.Arity == a && !yield(o) {
				return
			}
		}
	}
}

// Clone returns a deep copy of g.
func (g *Grammar) Clone() *Grammar {
	if g == nil {
		return nil
	}

	c := *g
	c.Keywords = slices.Clone(g.Keywords)
	c.Operators = slices.Clone(g.Operators)
	c.SyntaxRules = slices.Clone(g.SyntaxRules)

	for i := range c.SyntaxRules {
		c.SyntaxRules[i].Examples = slices.Clone(c.SyntaxRules[i].Examples)
	}

	c.Types = slices.Clone(g.Types)
	for i := range c.Types {
		c.Types[i].Properties = slices.Clone(c.Types[i].Properties)
	}

	return &c
}

// Arity is the number of operands an operator takes.
type Arity string

const (
	ArityBinary  Arity = "binary"
	ArityUnary   Arity = "unary"
	ArityTernary Arity = "ternary"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Arity) UnmarshalText(text []byte) error {
	switch v := Arity(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case ArityBinary, ArityUnary, ArityTernary:
		*a = v

		return nil
	default:
		return ErrInvalidEnum.With(enumAttrs("arity", text)...)
	}
}

// Associativity is the grouping direction of operators with equal
// precedence.
type Associativity string

const (
	AssocLeft  Associativity = "left"
	AssocRight Associativity = "right"
	AssocNone  Associativity = "none"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Associativity) UnmarshalText(text []byte) error {
	switch v := Associativity(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case AssocLeft, AssocRight, AssocNone:
		*a = v

		return nil
	default:
		return ErrInvalidEnum.With(enumAttrs("associativity", text)...)
	}
}

// TypeKind classifies a built-in type.
type TypeKind string

const (
	KindPrimitive TypeKind = "primitive"
	KindComposite TypeKind = "composite"
	KindGeneric   TypeKind = "generic"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *TypeKind) UnmarshalText(text []byte) error {
	switch v := TypeKind(strings.ToLower(strings.TrimSpace(string(text)))); v {
	case KindPrimitive, KindComposite, KindGeneric:
		*k = v

		return nil
	default:
		return ErrInvalidEnum.With(enumAttrs("kind", text)...)
	}
}
