package report

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/cyld/pkg"
)

// encode writes v in one of the structured formats.
func encode(w io.Writer, v any, format Format, c config) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", strings.Repeat(" ", c.indent))

		if err := enc.Encode(v); err != nil {
			return pkg.ErrJSONMarshal.Wrap(err)
		}

	case FormatYAML:
		enc := yaml.NewEncoder(w, yaml.Indent(c.indent), yaml.IndentSequence(true))
		if err := enc.Encode(v); err != nil {
			return pkg.ErrYAMLMarshal.Wrap(err)
		}

		if err := enc.Close(); err != nil {
			return pkg.ErrYAMLMarshal.Wrap(err)
		}

	case FormatCBOR:
		data, err := cbor.Marshal(v)
		if err != nil {
			return pkg.ErrCBORMarshal.Wrap(err)
		}

		if _, err := w.Write(data); err != nil {
			return pkg.ErrWriteOutput.Wrap(err)
		}

	default:
		return pkg.ErrInvalidFormat.Wrapf("%q", string(format))
	}

	return nil
}
