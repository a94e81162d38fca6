package syntax

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/ardnew/cyld/grammar"
)

const (
	// SuggestionThreshold is the similarity a keyword must exceed to be
	// suggested for an identifier.
	SuggestionThreshold = 0.6

	// MaxSuggestions caps the candidates listed for one identifier.
	MaxSuggestions = 3
)

// ContextRule requires the token after a keyword of some category to be of
// a particular kind.
type ContextRule struct {
	Next     Kind
	Kind     IssueKind
	Severity Severity
	Message  string
}

// DefaultContextRules returns the rules applied by [CheckKeywords].
// A function declaration keyword must be followed by its name.
func DefaultContextRules() map[grammar.Category]ContextRule {
	return map[grammar.Category]ContextRule{
		grammar.CategoryFunctionDeclaration: {
			Next:     KindIdentifier,
			Kind:     IssueInvalidFunctionName,
			Severity: SeverityError,
			Message:  "Function declaration must be followed by a name",
		},
	}
}

// CheckKeywords suggests keywords for identifiers that look like
// misspellings of one, and applies [DefaultContextRules] to every keyword.
func CheckKeywords(tokens []Token, g *grammar.Grammar) ([]Issue, []Suggestion) {
	v := makeVocabulary(g)

	return v.checkKeywords(tokens, DefaultContextRules())
}

// vocabulary holds the grammar lookups shared by the passes.
type vocabulary struct {
	keywords   []string
	categories map[string]grammar.Category
	arity      map[string]grammar.Arity
}

func makeVocabulary(g *grammar.Grammar) vocabulary {
	v := vocabulary{
		categories: make(map[string]grammar.Category),
		arity:      make(map[string]grammar.Arity),
	}

	if g == nil {
		return v
	}

	for _, k := range g.Keywords {
		if _, dup := v.categories[k.Value]; dup {
			continue
		}

		v.keywords = append(v.keywords, k.Value)
		v.categories[k.Value] = k.Category()
	}

	for _, o := range g.Operators {
		if _, dup := v.arity[o.Symbol]; !dup {
			v.arity[o.Symbol] = o.Arity
		}
	}

	return v
}

func (v vocabulary) category(t Token) (grammar.Category, bool) {
	if t.Kind != KindKeyword {
		return grammar.CategoryOther, false
	}

	c, ok := v.categories[t.Value]

	return c, ok
}

func (v vocabulary) checkKeywords(
	tokens []Token,
	rules map[grammar.Category]ContextRule,
) ([]Issue, []Suggestion) {
	var (
		issues      []Issue
		suggestions []Suggestion
	)

	for i, t := range tokens {
		if t.Kind == KindIdentifier {
			if similar := v.similarKeywords(t.Value); len(similar) > 0 {
				suggestions = append(suggestions, Suggestion{
					Kind:       IssueKeywordSuggestion,
					Message:    "Did you mean: " + strings.Join(similar, ", ") + "?",
					Line:       t.Line,
					Column:     t.Column,
					Length:     t.Length,
					Candidates: similar,
				})
			}
		}

		c, ok := v.category(t)
		if !ok {
			continue
		}

		rule, ok := rules[c]
		if !ok {
			continue
		}

		// A keyword at the end of the stream has no next token to satisfy
		// its rule.
		if i+1 < len(tokens) && tokens[i+1].Kind == rule.Next {
			continue
		}

		issues = append(issues, issueAt(t, rule.Kind, rule.Severity, rule.Message))
	}

	return issues, suggestions
}

// similarKeywords returns up to [MaxSuggestions] keywords whose similarity
// to word exceeds [SuggestionThreshold], most similar first. Ties keep
// grammar order.
func (v vocabulary) similarKeywords(word string) []string {
	type scored struct {
		keyword string
		score   float64
	}

	var candidates []scored

	for _, k := range v.keywords {
		if s := Similarity(word, k); s > SuggestionThreshold {
			candidates = append(candidates, scored{keyword: k, score: s})
		}
	}

	slices.SortStableFunc(candidates, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	if len(candidates) > MaxSuggestions {
		candidates = candidates[:MaxSuggestions]
	}

	similar := make([]string, len(candidates))
	for i, c := range candidates {
		similar[i] = c.keyword
	}

	return similar
}

func cloneRules(rules map[grammar.Category]ContextRule) map[grammar.Category]ContextRule {
	if rules == nil {
		return DefaultContextRules()
	}

	return maps.Clone(rules)
}
