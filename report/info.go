package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/cyld/grammar"
	"github.com/ardnew/cyld/pkg"
)

const noDescription = "No description"

// WriteInfo renders a text listing of g: a summary followed by its
// keywords, operators by descending precedence, syntax rules and types.
//
// A non-empty filter restricts each section to the entries whose name
// fuzzy matches filter, ranked best first.
func WriteInfo(w io.Writer, g *grammar.Grammar, filter string) error {
	if g == nil {
		g = &grammar.Grammar{}
	}

	p := newPrinter(w)

	p.infoSummary(g)
	p.infoKeywords(g, filter)
	p.infoOperators(g, filter)
	p.infoRules(g, filter)
	p.infoTypes(g, filter)

	return p.close()
}

// rank returns the indices of names to list. Without a filter every index
// is returned in order.
func rank(filter string, names []string) []int {
	if strings.TrimSpace(filter) == "" {
		idx := make([]int, len(names))
		for i := range idx {
			idx[i] = i
		}

		return idx
	}

	matches := fuzzy.Find(filter, names)

	idx := make([]int, len(matches))
	for i, m := range matches {
		idx[i] = m.Index
	}

	return idx
}

func describe(s string) string {
	if s == "" {
		return noDescription
	}

	return s
}

func (p *printer) section(title string, n int) bool {
	p.println(p.label.Render(title + ":"))

	if n == 0 {
		p.println(p.detail.Render("  (none)"))
		p.println()

		return false
	}

	return true
}

func (p *printer) infoSummary(g *grammar.Grammar) {
	name := g.Name
	if name == "" {
		name = pkg.Language
	}

	title := name + " Language Design Tool"

	p.println(p.title.Render(title))
	p.println(p.rule.Render(strings.Repeat("=", len([]rune(title)))))
	p.println()
	p.println(p.label.Render("Language Information:"))
	p.printf("  Name: %s\n", p.name.Render(g.Name))
	p.printf("  Version: %s\n", p.name.Render(g.Version))

	for _, c := range []struct {
		label string
		n     int
	}{
		{"Keywords", len(g.Keywords)},
		{"Operators", len(g.Operators)},
		{"Syntax Rules", len(g.SyntaxRules)},
		{"Types", len(g.Types)},
	} {
		p.printf("  %s: %s\n", c.label, p.value.Render(strconv.Itoa(c.n)))
	}

	p.println()
}

func (p *printer) infoKeywords(g *grammar.Grammar, filter string) {
	names := make([]string, len(g.Keywords))
	for i, k := range g.Keywords {
		names[i] = k.Value
	}

	idx := rank(filter, names)
	if !p.section("Keywords", len(idx)) {
		return
	}

	for _, i := range idx {
		k := g.Keywords[i]
		p.printf("  %s - %s\n",
			p.name.Render(pad(k.Value, 12)),
			p.detail.Render(describe(k.Description)))
	}

	p.println()
}

func (p *printer) infoOperators(g *grammar.Grammar, filter string) {
	ops := slices.Clone(g.Operators)
	if filter == "" {
		slices.SortStableFunc(ops, func(a, b grammar.Operator) int {
			return cmp.Compare(b.Precedence, a.Precedence)
		})
	}

	names := make([]string, len(ops))
	for i, o := range ops {
		names[i] = o.Symbol
	}

	idx := rank(filter, names)
	if !p.section("Operators", len(idx)) {
		return
	}

	for _, i := range idx {
		o := ops[i]
		p.printf("  %s %s %s %s - %s\n",
			p.name.Render(pad(o.Symbol, 4)),
			p.prec.Render(pad(fmt.Sprintf("(%d)", o.Precedence), 4)),
			p.arity.Render(pad("["+string(o.Arity)+"]", 8)),
			p.assoc.Render(pad("{"+string(o.Associativity)+"}", 8)),
			p.detail.Render(describe(o.Description)))
	}

	p.println()
}

func (p *printer) infoRules(g *grammar.Grammar, filter string) {
	names := make([]string, len(g.SyntaxRules))
	for i, r := range g.SyntaxRules {
		names[i] = r.Name
	}

	idx := rank(filter, names)
	if !p.section("Syntax Rules", len(idx)) {
		return
	}

	for _, i := range idx {
		r := g.SyntaxRules[i]
		p.printf("  %s:\n", p.name.Render(r.Name))
		p.printf("    Pattern: %s\n", p.value.Render(r.Pattern))

		if len(r.Examples) > 0 {
			p.println("    Examples:")

			for _, ex := range r.Examples {
				p.printf("      %s\n", p.detail.Render(ex))
			}
		}

		p.println()
	}
}

func (p *printer) infoTypes(g *grammar.Grammar, filter string) {
	names := make([]string, len(g.Types))
	for i, t := range g.Types {
		names[i] = t.Name
	}

	idx := rank(filter, names)
	if !p.section("Types", len(idx)) {
		return
	}

	for _, i := range idx {
		t := g.Types[i]
		p.printf("  %s %s - %s\n",
			p.name.Render(pad(t.Name, 12)),
			p.arity.Render(pad(string(t.Kind), 10)),
			p.detail.Render(describe(t.Description)))
	}

	p.println()
}
