package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// prettyStyles holds the lipgloss styles used by the pretty text handler.
// Styles are bound to a renderer for the handler's writer, so colors are
// dropped automatically when the writer is not a terminal.
type prettyStyles struct {
	key, str, num, yes, no, dur, tim lipgloss.Style
	trace, debug, info, warn, err    lipgloss.Style
}

func makePrettyStyles(w io.Writer) prettyStyles {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return prettyStyles{
		key:   fg("8"),
		str:   fg("6"),
		num:   fg("3"),
		yes:   fg("2"),
		no:    fg("1"),
		dur:   fg("5"),
		tim:   fg("4"),
		trace: fg("8"),
		debug: fg("4"),
		info:  fg("2"),
		warn:  fg("3").Bold(true),
		err:   fg("1").Bold(true),
	}
}

func (s prettyStyles) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return s.err
	case l >= slog.LevelWarn:
		return s.warn
	case l >= slog.LevelInfo:
		return s.info
	case l >= slog.LevelDebug:
		return s.debug
	default:
		return s.trace
	}
}

// prettyTextHandler implements a colorized key=value handler.
type prettyTextHandler struct {
	opts   slog.HandlerOptions
	styles prettyStyles
	mu     *sync.Mutex
	w      io.Writer
	attrs  []byte // preformatted attributes from WithAttrs
	group  string // dotted group prefix from WithGroup
}

func newPrettyTextHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
) *prettyTextHandler {
	return &prettyTextHandler{
		opts:   *opts,
		styles: makePrettyStyles(w),
		mu:     &sync.Mutex{},
		w:      w,
	}
}

func (h *prettyTextHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *prettyTextHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeBuiltin(buf, slog.Time(slog.TimeKey, r.Time))
	}

	h.writeLevel(buf, r.Level)

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			h.writeBuiltin(buf, slog.String(
				slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line),
			))
		}
	}

	h.writeBuiltin(buf, slog.String(slog.MessageKey, r.Message))

	if len(h.attrs) > 0 {
		buf.WriteByte(' ')
		buf.Write(h.attrs)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.group, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyTextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	buf := bytes.NewBuffer(bytes.Clone(h.attrs))
	for _, a := range attrs {
		h.writeAttr(buf, h.group, a)
	}

	clone := *h
	clone.attrs = buf.Bytes()

	return &clone
}

func (h *prettyTextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.group = h.group + name + "."

	return &clone
}

// writeBuiltin writes one of the record's built-in fields, honoring
// ReplaceAttr the same way the standard handlers do.
func (h *prettyTextHandler) writeBuiltin(buf *bytes.Buffer, a slog.Attr) {
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}

	if a.Equal(slog.Attr{}) {
		return
	}

	h.writeAttr(buf, "", a)
}

// writeLevel writes the record level styled by severity. The styling is
// chosen from the original level even if ReplaceAttr renames it.
func (h *prettyTextHandler) writeLevel(buf *bytes.Buffer, level slog.Level) {
	a := slog.Any(slog.LevelKey, level)
	if h.opts.ReplaceAttr != nil {
		a = h.opts.ReplaceAttr(nil, a)
	}

	if a.Equal(slog.Attr{}) {
		return
	}

	h.writeKey(buf, a.Key)
	buf.WriteString(h.styles.level(level).Render(a.Value.Resolve().String()))
}

func (h *prettyTextHandler) writeKey(buf *bytes.Buffer, key string) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(h.styles.key.Render(key))
	buf.WriteByte('=')
}

func (h *prettyTextHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, prefix, ga)
		}

		return
	}

	if a.Key == "" {
		return
	}

	h.writeKey(buf, prefix+a.Key)
	h.writeValue(buf, a.Value)
}

func (h *prettyTextHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	s := h.styles

	switch v.Kind() {
	case slog.KindString:
		buf.WriteString(s.str.Render(v.String()))

	case slog.KindInt64:
		buf.WriteString(s.num.Render(strconv.FormatInt(v.Int64(), 10)))

	case slog.KindUint64:
		buf.WriteString(s.num.Render(strconv.FormatUint(v.Uint64(), 10)))

	case slog.KindFloat64:
		buf.WriteString(s.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64)))

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(s.yes.Render("true"))
		} else {
			buf.WriteString(s.no.Render("false"))
		}

	case slog.KindDuration:
		buf.WriteString(s.dur.Render(v.Duration().String()))

	case slog.KindTime:
		buf.WriteString(s.tim.Render(v.Time().String()))

	default:
		buf.WriteString(s.str.Render(v.String()))
	}
}

// indentWriter re-indents each JSON record written by [slog.JSONHandler].
// The JSON handler serializes writes, so no locking is needed here.
type indentWriter struct {
	w io.Writer
}

func (iw *indentWriter) Write(p []byte) (int, error) {
	var buf bytes.Buffer

	err := json.Indent(&buf, bytes.TrimSpace(p), "", "  ")
	if err != nil {
		return iw.w.Write(p)
	}

	buf.WriteByte('\n')

	_, err = iw.w.Write(buf.Bytes())
	if err != nil {
		return 0, err
	}

	return len(p), nil
}
