package astgen

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

var operatorName = map[string]string{
	"+":  "Add",
	"-":  "Subtract",
	"*":  "Multiply",
	"/":  "Divide",
	"%":  "Modulo",
	"==": "Equal",
	"!=": "NotEqual",
	"<":  "Less",
	"<=": "LessEqual",
	">":  "Greater",
	">=": "GreaterEqual",
	"&&": "And",
	"||": "Or",
	"!":  "Not",
	"&":  "BitwiseAnd",
	"|":  "BitwiseOr",
	"^":  "BitwiseXor",
	"<<": "LeftShift",
	">>": "RightShift",
	"~":  "BitwiseNot",
	"=":  "Assign",
	"->": "Arrow",
	".":  "Dot",
}

// OperatorName returns the enumeration variant name for an operator symbol.
// Symbols without a conventional name are named after the code point of
// their first rune, or CamelCased when they are words.
func OperatorName(symbol string) string {
	if name, ok := operatorName[symbol]; ok {
		return name
	}

	if ident := TypeName(symbol); ident != "" && isIdentifier(ident) {
		return ident
	}

	r, _ := utf8.DecodeRuneInString(symbol)

	return "Op" + strconv.Itoa(int(r))
}

// TypeName normalizes a keyword type tag into a CamelCase type name.
func TypeName(tag string) string {
	return strcase.ToCamel(strings.TrimSpace(tag))
}

// isStatement reports whether a keyword type names a statement or
// declaration node.
func isStatement(typeName string) bool {
	return strings.Contains(typeName, "Statement") ||
		strings.Contains(typeName, "Declaration")
}

// variantName strips the node suffix from a statement type name.
func variantName(typeName string) string {
	v := strings.Replace(typeName, "Statement", "", 1)
	v = strings.Replace(v, "Declaration", "", 1)

	if v == "" {
		return typeName
	}

	return v
}

func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}

	return s != ""
}
