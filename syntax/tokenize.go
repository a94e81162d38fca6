package syntax

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/ardnew/cyld/grammar"
)

// Lexeme alternatives in priority order. Grammar operator spellings are
// inserted between the quoted spans and the fixed single characters so
// that multi-character operators are matched whole.
const (
	lexWord   = `\w+`
	lexQuoted = `"[^"\n]*"|'[^'\n]*'`
	lexSingle = `[{}()\[\];.,=<>!&|+\-*/]`
	lexOther  = `\S`
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	numberPattern     = regexp.MustCompile(`^[0-9]+$`)
	wordPattern       = regexp.MustCompile(`^\w+$`)
)

// Scanner splits source text into tokens classified against a grammar.
// A Scanner is immutable and safe for concurrent use.
type Scanner struct {
	lexeme    *regexp.Regexp
	keywords  map[string]struct{}
	operators map[string]struct{}
}

// NewScanner compiles the lexeme expression and classification tables for
// g. A nil grammar behaves as one with no keywords and no operators.
func NewScanner(g *grammar.Grammar) *Scanner {
	s := &Scanner{
		keywords:  make(map[string]struct{}),
		operators: make(map[string]struct{}),
	}

	var symbols []string

	if g != nil {
		for _, k := range g.Keywords {
			s.keywords[k.Value] = struct{}{}
		}

		for _, o := range g.Operators {
			if o.Symbol == "" {
				continue
			}

			if _, dup := s.operators[o.Symbol]; dup {
				continue
			}

			s.operators[o.Symbol] = struct{}{}

			if !wordPattern.MatchString(o.Symbol) {
				symbols = append(symbols, o.Symbol)
			}
		}
	}

	// Longest spelling first, so "==" is preferred over "=".
	slices.SortStableFunc(symbols, func(a, b string) int {
		return cmp.Compare(utf8.RuneCountInString(b), utf8.RuneCountInString(a))
	})

	alt := make([]string, 0, len(symbols)+4)
	alt = append(alt, lexWord, lexQuoted)

	for _, sym := range symbols {
		alt = append(alt, regexp.QuoteMeta(sym))
	}

	alt = append(alt, lexSingle, lexOther)
	s.lexeme = regexp.MustCompile(strings.Join(alt, "|"))

	return s
}

// Tokenize splits source into tokens using a [Scanner] built for g.
func Tokenize(source string, g *grammar.Grammar) []Token {
	return NewScanner(g).Tokenize(source)
}

// Tokenize splits source into tokens.
//
// Lines are separated by '\n'. Whitespace, including a trailing '\r', only
// separates lexemes. A quote with no closing partner on the same line
// becomes a single [KindUnknown] token and scanning resumes after it.
// Tokens are returned in strictly increasing (line, column) order.
func (s *Scanner) Tokenize(source string) []Token {
	var tokens []Token

	for i, line := range strings.Split(source, "\n") {
		col, last := 1, 0

		for _, loc := range s.lexeme.FindAllStringIndex(line, -1) {
			col += utf8.RuneCountInString(line[last:loc[0]])
			value := line[loc[0]:loc[1]]
			length := utf8.RuneCountInString(value)

			tokens = append(tokens, Token{
				Value:  value,
				Kind:   s.classify(value),
				Line:   i + 1,
				Column: col,
				Length: length,
			})

			col += length
			last = loc[1]
		}
	}

	return tokens
}

// classify assigns the kind of a lexeme. The grammar tables are consulted
// before any pattern, so a keyword or operator spelled like an identifier
// is never an identifier.
func (s *Scanner) classify(value string) Kind {
	if _, ok := s.keywords[value]; ok {
		return KindKeyword
	}

	if _, ok := s.operators[value]; ok {
		return KindOperator
	}

	switch {
	case identifierPattern.MatchString(value):
		return KindIdentifier

	case numberPattern.MatchString(value):
		return KindNumber

	case quoted(value):
		return KindString
	}

	switch value {
	case "(", ")", "{", "}", "[", "]":
		return KindBracket

	case ";", ",", ".":
		return KindPunctuation
	}

	return KindUnknown
}

func quoted(value string) bool {
	if len(value) < 2 {
		return false
	}

	q := value[0]

	return (q == '"' || q == '\'') && value[len(value)-1] == q
}
