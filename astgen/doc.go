// Package astgen renders boilerplate AST type definitions from a grammar.
//
// A [Generator] produces a Rust module and a TypeScript module declaring a
// node-type enumeration, statement and expression types, and operator
// enumerations derived from the grammar's keywords and operators. Output is
// rendered from embedded text templates.
package astgen
