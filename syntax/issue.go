package syntax

// Severity is the seriousness of an [Issue].
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// IssueKind identifies the rule that produced a finding.
type IssueKind string

const (
	IssueUnmatchedBracket     IssueKind = "unmatched_bracket"
	IssueMismatchedBracket    IssueKind = "mismatched_bracket"
	IssueUnclosedBracket      IssueKind = "unclosed_bracket"
	IssueInvalidFunctionName  IssueKind = "invalid_function_name"
	IssueInvalidOperatorUsage IssueKind = "invalid_operator_usage"
	IssueMissingSemicolon     IssueKind = "missing_semicolon"
	IssueKeywordSuggestion    IssueKind = "keyword_suggestion"
)

// Issue is a structural error or warning at a source position.
type Issue struct {
	Kind     IssueKind `json:"type"     yaml:"type"     cbor:"type"`
	Message  string    `json:"message"  yaml:"message"  cbor:"message"`
	Severity Severity  `json:"severity" yaml:"severity" cbor:"severity"`
	Line     int       `json:"line"     yaml:"line"     cbor:"line"`
	Column   int       `json:"column"   yaml:"column"   cbor:"column"`
	Length   int       `json:"length"   yaml:"length"   cbor:"length"`
}

// Suggestion is advisory output. It never affects [Result.Valid].
type Suggestion struct {
	Kind       IssueKind `json:"type"        yaml:"type"        cbor:"type"`
	Message    string    `json:"message"     yaml:"message"     cbor:"message"`
	Line       int       `json:"line"        yaml:"line"        cbor:"line"`
	Column     int       `json:"column"      yaml:"column"      cbor:"column"`
	Length     int       `json:"length"      yaml:"length"      cbor:"length"`
	Candidates []string  `json:"suggestions" yaml:"suggestions" cbor:"suggestions"`
}

// Result is the merged outcome of every check pass.
// Valid is true iff no issue has [SeverityError].
type Result struct {
	Valid       bool         `json:"isValid"     yaml:"isValid"     cbor:"isValid"`
	Issues      []Issue      `json:"issues"      yaml:"issues"      cbor:"issues"`
	Suggestions []Suggestion `json:"suggestions" yaml:"suggestions" cbor:"suggestions"`
}

// Errors returns the number of issues with [SeverityError].
func (r Result) Errors() int { return r.count(SeverityError) }

// Warnings returns the number of issues with [SeverityWarning].
func (r Result) Warnings() int { return r.count(SeverityWarning) }

func (r Result) count(s Severity) int {
	n := 0

	for _, i := range r.Issues {
		if i.Severity == s {
			n++
		}
	}

	return n
}

func issueAt(t Token, kind IssueKind, sev Severity, msg string) Issue {
	return Issue{
		Kind:     kind,
		Message:  msg,
		Severity: sev,
		Line:     t.Line,
		Column:   t.Column,
		Length:   t.Length,
	}
}
