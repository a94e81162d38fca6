package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ardnew/cyld/syntax"
)

// FileResult is the check result of one named input.
type FileResult struct {
	File          string `json:"file" yaml:"file" cbor:"file"`
	syntax.Result `yaml:",inline"`
}

// WriteResult renders the check result of the input called name.
func WriteResult(
	w io.Writer,
	name string,
	result syntax.Result,
	format Format,
	opts ...Option,
) error {
	return WriteResults(w, []FileResult{{File: name, Result: result}}, format, opts...)
}

// WriteResults renders the check results of several inputs. Structured
// formats encode the results as a single list.
func WriteResults(
	w io.Writer,
	results []FileResult,
	format Format,
	opts ...Option,
) error {
	c := makeConfig(opts...)

	if format.structured() {
		if results == nil {
			results = []FileResult{}
		}

		return encode(w, results, format, c)
	}

	p := newPrinter(w)

	for i, r := range results {
		if i > 0 {
			p.println()
		}

		p.textResult(r)
	}

	return p.close()
}

func (p *printer) textResult(r FileResult) {
	heading := "Syntax Check Results for " + r.File + ":"

	p.println(p.title.Render(heading))
	p.println(p.rule.Render(strings.Repeat("=", len([]rune(heading)))))

	if r.Valid {
		p.println(p.pass.Render("✓ Syntax is valid!"))
	} else {
		p.println(p.fail.Render("✗ Syntax errors found!"))
	}

	if len(r.Issues) > 0 {
		p.println()
		p.println(p.label.Render("Issues:"))

		for _, issue := range r.Issues {
			icon := p.fail.Render("✗")
			if issue.Severity == syntax.SeverityWarning {
				icon = p.warn.Render("!")
			}

			p.printf("  %s Line %d:%d - %s\n",
				icon, issue.Line, issue.Column, issue.Message)
		}
	}

	if len(r.Suggestions) > 0 {
		p.println()
		p.println(p.label.Render("Suggestions:"))

		for _, s := range r.Suggestions {
			p.printf("  %s Line %d:%d - %s\n",
				p.value.Render("?"), s.Line, s.Column, s.Message)
		}
	}
}

// WriteTokens renders the token stream of a source.
func WriteTokens(
	w io.Writer,
	tokens []syntax.Token,
	format Format,
	opts ...Option,
) error {
	if format.structured() {
		if tokens == nil {
			tokens = []syntax.Token{}
		}

		return encode(w, tokens, format, makeConfig(opts...))
	}

	p := newPrinter(w)

	for _, t := range tokens {
		p.printf("%s %s %s\n",
			p.detail.Render(pad(fmt.Sprintf("%d:%d", t.Line, t.Column), 8)),
			p.arity.Render(pad(t.Kind.String(), 12)),
			p.name.Render(t.Value))
	}

	return p.close()
}
