package report

import (
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/ardnew/cyld/pkg"
)

// Format selects the encoding of rendered output.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// DefaultFormat is used when no format is given.
const DefaultFormat = FormatText

var formats = []Format{FormatText, FormatJSON, FormatYAML, FormatCBOR}

// Formats returns an iterator over all supported format names.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, f := range formats {
			if !yield(string(f)) {
				return
			}
		}
	}
}

// ParseFormat parses a format name, ignoring case and surrounding space.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return DefaultFormat, nil
	}

	if !slices.Contains(formats, f) {
		return "", pkg.ErrInvalidFormat.Wrapf(
			"%q (valid: %s)", s, strings.Join(slices.Collect(Formats()), ", "),
		)
	}

	return f, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}

	*f = v

	return nil
}

// LogValue implements [slog.LogValuer].
func (f Format) LogValue() slog.Value { return slog.StringValue(string(f)) }

// structured reports whether f is encoded rather than rendered as text.
// The zero Format is text.
func (f Format) structured() bool {
	return f != "" && f != FormatText
}
