package syntax

import "fmt"

var closerOf = map[string]string{
	"(": ")",
	"[": "]",
	"{": "}",
}

func isCloser(value string) bool {
	return value == ")" || value == "]" || value == "}"
}

// CheckBrackets reports brackets that are closed without being opened,
// closed by the wrong kind, or never closed.
//
// Unclosed brackets are reported at the opening token, outermost first.
func CheckBrackets(tokens []Token) []Issue {
	type open struct {
		token  Token
		closer string
	}

	var (
		issues []Issue
		stack  []open
	)

	for _, t := range tokens {
		if closer, ok := closerOf[t.Value]; ok {
			stack = append(stack, open{token: t, closer: closer})

			continue
		}

		if !isCloser(t.Value) {
			continue
		}

		if len(stack) == 0 {
			issues = append(issues, issueAt(t, IssueUnmatchedBracket, SeverityError,
				"Unmatched closing bracket: "+t.Value))

			continue
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.closer != t.Value {
			issues = append(issues, issueAt(t, IssueMismatchedBracket, SeverityError,
				fmt.Sprintf("Expected %s, found %s", top.closer, t.Value)))
		}
	}

	for _, o := range stack {
		issues = append(issues, issueAt(o.token, IssueUnclosedBracket, SeverityError,
			"Unclosed bracket: "+o.token.Value))
	}

	return issues
}
