package astgen

import (
	"bytes"
	"embed"
	"strings"
	"text/template"

	"github.com/iancoleman/strcase"

	"github.com/ardnew/cyld/grammar"
	"github.com/ardnew/cyld/pkg"
)

// ErrRender is returned when a template fails to execute.
var ErrRender = pkg.MakeErrorf("failed to render AST definitions")

// Output file names used by the generate command.
const (
	RustFileName       = "generated_ast.rs"
	TypeScriptFileName = "generated_ast.ts"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("astgen").
		Funcs(template.FuncMap{
			"snake":    strcase.ToSnake,
			"rustType": rustType,
			"tsField":  tsField,
			"tsString": tsString,
		}).
		ParseFS(templateFS, "templates/*.tmpl"),
)

// commonNodeTypes are appended to the node-type enumeration after the
// keyword types.
var commonNodeTypes = []string{
	"Identifier", "IntLiteral", "FloatLiteral", "StringLiteral",
	"BoolLiteral", "CharLiteral", "ArrayLiteral", "ObjectLiteral",
	"BinaryExpression", "UnaryExpression", "CallExpression",
	"MemberExpression", "IndexExpression", "AssignmentExpression",
}

// Generator renders AST definitions for a grammar.
type Generator struct {
	Grammar *grammar.Grammar
}

// Rust returns a Rust module declaring the AST types.
func (g Generator) Rust() (string, error) {
	return g.render("rust.tmpl")
}

// TypeScript returns a TypeScript module declaring the AST types.
func (g Generator) TypeScript() (string, error) {
	return g.render("typescript.tmpl")
}

func (g Generator) render(name string) (string, error) {
	var buf bytes.Buffer

	if err := templates.ExecuteTemplate(&buf, name, g.model()); err != nil {
		return "", ErrRender.Wrap(err)
	}

	return buf.String(), nil
}

type model struct {
	Language   string
	Version    string
	NodeTypes  []string
	Statements []statement
	Binary     []operator
	Unary      []operator
}

type statement struct {
	Type        string
	Variant     string
	Description string
	Fields      []field
}

type operator struct {
	Name   string
	Symbol string
}

func (g Generator) model() model {
	gr := g.Grammar
	if gr == nil {
		gr = &grammar.Grammar{}
	}

	m := model{Language: pkg.Language, Version: gr.Version}

	seenType := make(map[string]bool)
	seenVariant := make(map[string]bool)

	for _, k := range gr.Keywords {
		name := TypeName(k.Type)
		if name == "" || seenType[name] {
			continue
		}

		seenType[name] = true
		m.NodeTypes = append(m.NodeTypes, name)

		// ExpressionStatement is always declared by the templates.
		if !isStatement(name) || name == "ExpressionStatement" {
			continue
		}

		variant := variantName(name)
		if seenVariant[variant] {
			continue
		}

		seenVariant[variant] = true
		m.Statements = append(m.Statements, statement{
			Type:        name,
			Variant:     variant,
			Description: k.Description,
			Fields:      statementFields[name],
		})
	}

	for _, name := range commonNodeTypes {
		if !seenType[name] {
			seenType[name] = true
			m.NodeTypes = append(m.NodeTypes, name)
		}
	}

	m.Binary = operators(gr, grammar.ArityBinary)
	m.Unary = operators(gr, grammar.ArityUnary)

	return m
}

// operators lists the operators of one arity, dropping symbols whose
// variant name is already taken.
func operators(g *grammar.Grammar, arity grammar.Arity) []operator {
	var ops []operator

	seen := make(map[string]bool)

	for o := range g.OperatorsByArity(arity) {
		name := OperatorName(o.Symbol)
		if seen[name] {
			continue
		}

		seen[name] = true
		ops = append(ops, operator{Name: name, Symbol: o.Symbol})
	}

	return ops
}

func tsString(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}
