package syntax

import "github.com/ardnew/cyld/grammar"

// statementStart lists the keyword categories that open a statement
// expected to end with a semicolon.
var statementStart = map[grammar.Category]bool{
	grammar.CategoryDeclareStatement: true,
	grammar.CategoryReturnStatement:  true,
	grammar.CategoryIfStatement:      true,
	grammar.CategoryWhileStatement:   true,
	grammar.CategoryForStatement:     true,
}

// CheckTermination warns when the token stream ends inside a statement.
//
// A statement keyword starts waiting for a terminator; a semicolon or a
// block delimiter ends the wait. At most one warning is produced, at the
// most recent statement keyword still waiting when the stream ends.
func CheckTermination(tokens []Token, g *grammar.Grammar) []Issue {
	return makeVocabulary(g).checkTermination(tokens)
}

func (v vocabulary) checkTermination(tokens []Token) []Issue {
	var (
		awaiting bool
		start    Token
	)

	for _, t := range tokens {
		if c, ok := v.category(t); ok && statementStart[c] {
			awaiting, start = true, t

			continue
		}

		switch t.Value {
		case ";", "{", "}":
			awaiting = false
		}
	}

	if !awaiting {
		return nil
	}

	return []Issue{issueAt(start, IssueMissingSemicolon, SeverityWarning,
		"Statement should be terminated with semicolon")}
}
