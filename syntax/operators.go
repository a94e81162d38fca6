package syntax

import "github.com/ardnew/cyld/grammar"

// CheckOperators reports operators that lack the operands their arity
// requires. Binary operators need an operand on both sides and unary
// operators need one after; ternary operators are not checked. When the
// grammar lists a symbol more than once, the first entry decides.
func CheckOperators(tokens []Token, g *grammar.Grammar) []Issue {
	return makeVocabulary(g).checkOperators(tokens)
}

func (v vocabulary) checkOperators(tokens []Token) []Issue {
	var issues []Issue

	for i, t := range tokens {
		if t.Kind != KindOperator {
			continue
		}

		before := i > 0 && tokens[i-1].operand()
		after := i+1 < len(tokens) && tokens[i+1].operand()

		switch v.arity[t.Value] {
		case grammar.ArityBinary:
			if !before || !after {
				issues = append(issues, issueAt(t, IssueInvalidOperatorUsage, SeverityError,
					"Binary operator "+t.Value+" requires operands on both sides"))
			}

		case grammar.ArityUnary:
			if !after {
				issues = append(issues, issueAt(t, IssueInvalidOperatorUsage, SeverityError,
					"Unary operator "+t.Value+" requires an operand"))
			}
		}
	}

	return issues
}
