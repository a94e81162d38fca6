package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/cyld/pkg"
)

// styles holds the lipgloss styles of the text layout, bound to a renderer
// for the output writer.
type styles struct {
	title, rule, label  lipgloss.Style
	pass, fail, warn    lipgloss.Style
	name, value, detail lipgloss.Style
	prec, arity, assoc  lipgloss.Style
}

func makeStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return styles{
		title:  fg("6").Bold(true),
		rule:   fg("6"),
		label:  fg("15").Bold(true),
		pass:   fg("2"),
		fail:   fg("1"),
		warn:   fg("3"),
		name:   fg("2"),
		value:  fg("3"),
		detail: fg("8"),
		prec:   fg("4"),
		arity:  fg("5"),
		assoc:  fg("6"),
	}
}

// printer writes styled lines and keeps the first write error.
type printer struct {
	styles

	w   io.Writer
	err error
}

func newPrinter(w io.Writer) *printer {
	return &printer{styles: makeStyles(w), w: w}
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(args ...any) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintln(p.w, args...)
}

func (p *printer) close() error {
	if p.err != nil {
		return pkg.ErrWriteOutput.Wrap(p.err)
	}

	return nil
}

// pad right-pads s with spaces to width runes before it is styled.
func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}
