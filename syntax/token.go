package syntax

//go:generate go tool stringer --linecomment --type Kind --output token_string.go

// Kind classifies a [Token].
type Kind int

const (
	KindKeyword     Kind = iota // keyword
	KindIdentifier              // identifier
	KindOperator                // operator
	KindNumber                  // number
	KindString                  // string
	KindBracket                 // bracket
	KindPunctuation             // punctuation
	KindUnknown                 // unknown
)

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Token is a classified lexeme and its position in the source.
// Line and Column are 1-based; Column and Length count runes.
type Token struct {
	Value  string `json:"value"  yaml:"value"  cbor:"value"`
	Kind   Kind   `json:"type"   yaml:"type"   cbor:"type"`
	Line   int    `json:"line"   yaml:"line"   cbor:"line"`
	Column int    `json:"column" yaml:"column" cbor:"column"`
	Length int    `json:"length" yaml:"length" cbor:"length"`
}

// operand reports whether t can stand on either side of an operator.
// A closing parenthesis stands for the value of a parenthesized expression.
func (t Token) operand() bool {
	switch t.Kind {
	case KindIdentifier, KindNumber, KindString:
		return true
	default:
		return t.Value == ")"
	}
}
