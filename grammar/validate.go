package grammar

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Severity is the seriousness of a grammar validation finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// FindingKind identifies the check that produced a [Finding].
type FindingKind string

const (
	FindingInvalidMetadata         FindingKind = "invalid_metadata"
	FindingInvalidVersion          FindingKind = "invalid_version"
	FindingMissingKeywords         FindingKind = "missing_keywords"
	FindingDuplicateKeyword        FindingKind = "duplicate_keyword"
	FindingMissingOperators        FindingKind = "missing_operators"
	FindingPrecedenceConflict      FindingKind = "precedence_conflict"
	FindingMissingSyntaxRules      FindingKind = "missing_syntax_rules"
	FindingInvalidRule             FindingKind = "invalid_rule"
	FindingUnreachableRule         FindingKind = "unreachable_rule"
	FindingKeywordOperatorConflict FindingKind = "keyword_operator_conflict"
)

// Finding is one problem detected by [Validate].
type Finding struct {
	Kind     FindingKind `json:"type"               yaml:"type"               cbor:"type"`
	Message  string      `json:"message"            yaml:"message"            cbor:"message"`
	Severity Severity    `json:"severity"           yaml:"severity"           cbor:"severity"`
	Location string      `json:"location,omitempty" yaml:"location,omitempty" cbor:"location,omitempty"`
}

// ValidationResult is the outcome of [Validate].
// Valid is true iff Errors is empty; warnings never invalidate a grammar.
type ValidationResult struct {
	Valid    bool      `json:"isValid"  yaml:"isValid"  cbor:"isValid"`
	Errors   []Finding `json:"errors"   yaml:"errors"   cbor:"errors"`
	Warnings []Finding `json:"warnings" yaml:"warnings" cbor:"warnings"`
}

// unreachableMarker flags a syntax rule pattern as unreachable.
const unreachableMarker = "UNREACHABLE"

// Validate checks the internal consistency of g.
//
// Operators and syntax rules are reported missing only when their section
// is absent (nil); an empty section is accepted. Keywords must be present
// and non-empty.
func Validate(g *Grammar) ValidationResult {
	if g == nil {
		g = &Grammar{}
	}

	var v validation

	v.metadata(g)
	v.keywords(g)
	v.operators(g)
	v.syntaxRules(g)
	v.conflicts(g)

	return ValidationResult{
		Valid:    len(v.errors) == 0,
		Errors:   v.errors,
		Warnings: v.warnings,
	}
}

type validation struct {
	errors   []Finding
	warnings []Finding
}

func (v *validation) fail(kind FindingKind, loc, format string, args ...any) {
	v.errors = append(v.errors, Finding{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityError,
		Location: loc,
	})
}

func (v *validation) warn(kind FindingKind, loc, format string, args ...any) {
	v.warnings = append(v.warnings, Finding{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityWarning,
		Location: loc,
	})
}

func (v *validation) metadata(g *Grammar) {
	if strings.TrimSpace(g.Name) == "" {
		v.fail(FindingInvalidMetadata, "name", "Grammar name is not defined")
	}

	switch version := strings.TrimSpace(g.Version); {
	case version == "":
		v.fail(FindingInvalidMetadata, "version", "Grammar version is not defined")

	case !semver.IsValid(canonicalVersion(version)):
		v.warn(FindingInvalidVersion, "version",
			"Grammar version is not a semantic version: %s", version)
	}
}

// canonicalVersion prefixes the "v" required by [semver.IsValid].
func canonicalVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}

	return "v" + version
}

func (v *validation) keywords(g *Grammar) {
	if len(g.Keywords) == 0 {
		v.fail(FindingMissingKeywords, "", "No keywords defined in grammar")

		return
	}

	seen := make(map[string]struct{}, len(g.Keywords))
	for _, k := range g.Keywords {
		if _, dup := seen[k.Value]; dup {
			v.fail(FindingDuplicateKeyword, k.Value, "Duplicate keyword: %s", k.Value)
		}

		seen[k.Value] = struct{}{}
	}
}

func (v *validation) operators(g *Grammar) {
	if g.Operators == nil {
		v.fail(FindingMissingOperators, "", "No operators defined in grammar")

		return
	}

	// One finding per precedence level, in order of first appearance.
	assoc := make(map[int]map[Associativity]struct{})
	order := make([]int, 0, len(g.Operators))

	for _, o := range g.Operators {
		set, ok := assoc[o.Precedence]
		if !ok {
			set = make(map[Associativity]struct{})
			assoc[o.Precedence] = set
			order = append(order, o.Precedence)
		}

		set[o.Associativity] = struct{}{}
	}

	for _, prec := range order {
		if len(assoc[prec]) > 1 {
			v.fail(FindingPrecedenceConflict, fmt.Sprint(prec),
				"Conflicting associativity for precedence %d", prec)
		}
	}
}

func (v *validation) syntaxRules(g *Grammar) {
	if g.SyntaxRules == nil {
		v.fail(FindingMissingSyntaxRules, "", "No syntax rules defined in grammar")

		return
	}

	for _, r := range g.SyntaxRules {
		if r.Name == "" || r.Pattern == "" {
			name := r.Name
			if name == "" {
				name = "unnamed"
			}

			v.fail(FindingInvalidRule, r.Name, "Invalid syntax rule: %s", name)
		}

		if strings.Contains(r.Pattern, unreachableMarker) {
			v.warn(FindingUnreachableRule, r.Name,
				"Potentially unreachable rule: %s", r.Name)
		}
	}
}

func (v *validation) conflicts(g *Grammar) {
	symbols := make(map[string]struct{}, len(g.Operators))
	for _, o := range g.Operators {
		symbols[o.Symbol] = struct{}{}
	}

	reported := make(map[string]struct{})

	for _, k := range g.Keywords {
		if _, ok := symbols[k.Value]; !ok {
			continue
		}

		if _, ok := reported[k.Value]; ok {
			continue
		}

		reported[k.Value] = struct{}{}

		v.fail(FindingKeywordOperatorConflict, k.Value,
			"Conflict between keyword and operator: %s", k.Value)
	}
}
