// Package grammar defines the data model of a Cyl language grammar.
//
// A [Grammar] lists the language's keywords, operators, syntax rules and
// built-in types. It is plain data: the syntax checker reads it, the AST
// generators render it, and [Validate] reports internal inconsistencies.
//
// Grammars are stored as YAML documents. [Decode] checks a document against
// the embedded JSON schema before unmarshaling it, and [Encode] writes the
// same shape back out. [Default] returns the built-in Cyl grammar used when
// no document is available.
package grammar
