// Package syntax performs a lightweight structural check of Cyl source text
// against a [grammar.Grammar].
//
// Source text is split into classified [Token] values by a [Scanner]. Four
// independent passes then read the token sequence:
//
//   - [CheckBrackets] verifies that brackets are balanced and properly nested.
//   - [CheckKeywords] suggests keywords for likely misspellings and applies
//     per-category [ContextRule] requirements.
//   - [CheckOperators] verifies that operators have operands.
//   - [CheckTermination] warns when a statement is left without a semicolon.
//
// [Check] and [Checker.Check] run all passes and merge their findings into
// a [Result] in that fixed order. None of these functions return errors:
// every input, including empty text and a nil grammar, produces a result.
//
// The checks are heuristics over a flat token stream. No syntax tree is
// built.
package syntax
