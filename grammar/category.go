package grammar

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// Category is the closed set of keyword categories understood by the
// syntax checker. It is derived from a keyword's free-form type tag.
type Category int

const (
	CategoryOther Category = iota
	CategoryFunctionDeclaration
	CategoryAsyncFunctionDeclaration
	CategoryIfStatement
	CategoryElseStatement
	CategoryImportStatement
	CategoryReturnStatement
	CategoryStructDeclaration
	CategoryEnumDeclaration
	CategoryMatchStatement
	CategoryForStatement
	CategoryWhileStatement
	CategoryBreakStatement
	CategoryContinueStatement
	CategoryTryStatement
	CategoryCatchStatement
	CategoryThrowStatement
	CategoryAwaitExpression
	CategoryVoidType
	CategoryDeclareStatement
	CategoryMutabilityModifier

	categoryCount
)

var categoryName = [categoryCount]string{
	CategoryOther:                    "Other",
	CategoryFunctionDeclaration:      "FunctionDeclaration",
	CategoryAsyncFunctionDeclaration: "AsyncFunctionDeclaration",
	CategoryIfStatement:              "IfStatement",
	CategoryElseStatement:            "ElseStatement",
	CategoryImportStatement:          "ImportStatement",
	CategoryReturnStatement:          "ReturnStatement",
	CategoryStructDeclaration:        "StructDeclaration",
	CategoryEnumDeclaration:          "EnumDeclaration",
	CategoryMatchStatement:           "MatchStatement",
	CategoryForStatement:             "ForStatement",
	CategoryWhileStatement:           "WhileStatement",
	CategoryBreakStatement:           "BreakStatement",
	CategoryContinueStatement:        "ContinueStatement",
	CategoryTryStatement:             "TryStatement",
	CategoryCatchStatement:           "CatchStatement",
	CategoryThrowStatement:           "ThrowStatement",
	CategoryAwaitExpression:          "AwaitExpression",
	CategoryVoidType:                 "VoidType",
	CategoryDeclareStatement:         "DeclareStatement",
	CategoryMutabilityModifier:       "MutabilityModifier",
}

var categoryByName = func() map[string]Category {
	m := make(map[string]Category, categoryCount)
	for c, name := range categoryName {
		m[name] = Category(c)
	}

	return m
}()

// String returns the canonical type tag of the category.
func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return categoryName[CategoryOther]
	}

	return categoryName[c]
}

// ParseCategory maps a keyword type tag onto its category.
// Tags are compared in CamelCase form, so "if_statement", "if-statement"
// and "IfStatement" name the same category. Unknown tags are
// [CategoryOther].
func ParseCategory(tag string) Category {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return CategoryOther
	}

	if c, ok := categoryByName[tag]; ok {
		return c
	}

	if c, ok := categoryByName[strcase.ToCamel(tag)]; ok {
		return c
	}

	return CategoryOther
}

// Categories returns every defined category in declaration order.
func Categories() []Category {
	cs := make([]Category, categoryCount)
	for i := range cs {
		cs[i] = Category(i)
	}

	return cs
}
