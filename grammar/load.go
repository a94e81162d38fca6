package grammar

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/ardnew/mung"
	"github.com/goccy/go-yaml"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// DefaultFileName is the grammar document name searched for by [Locate].
const DefaultFileName = "syntax.yaml"

// schemaURL identifies the embedded schema resource inside the compiler.
const schemaURL = "schema://grammar.schema.json"

//go:embed grammar.schema.json
var schemaJSON []byte

// Schema returns the JSON schema that grammar documents must satisfy.
func Schema() []byte { return bytes.Clone(schemaJSON) }

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, err
	}

	return compiler.Compile(schemaURL)
})

// Decode reads a YAML grammar document from r.
//
// The document is converted to JSON and checked against [Schema] before it
// is unmarshaled, so malformed sections are reported with the schema
// location that rejected them.
func Decode(r io.Reader) (*Grammar, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadGrammar.Wrap(err)
	}

	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var g Grammar
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, ErrDecodeGrammar.Wrap(err)
	}

	return &g, nil
}

func validateDocument(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return ErrSchema.Wrap(err)
	}

	doc, err := yaml.YAMLToJSON(data)
	if err != nil {
		return ErrDecodeGrammar.Wrap(err)
	}

	// The validator expects numbers decoded as json.Number.
	var v any

	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber()

	if err := dec.Decode(&v); err != nil {
		return ErrDecodeGrammar.Wrap(err)
	}

	if err := schema.Validate(v); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			// The root error only says the document is invalid; the first
			// leaf names the offending value.
			for len(ve.Causes) > 0 {
				ve = ve.Causes[0]
			}

			return ErrSchema.Wrap(err).With(
				slog.String("location", ve.InstanceLocation),
			)
		}

		return ErrSchema.Wrap(err)
	}

	return nil
}

// Load reads the grammar document at path.
func Load(ctx context.Context, path string) (*Grammar, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrReadGrammar.Wrap(err)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrGrammarNotFound.With(slog.String("path", path))
		}

		return nil, ErrReadGrammar.Wrap(err).With(slog.String("path", path))
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		var ge *Error
		if errors.As(err, &ge) {
			return nil, ge.With(slog.String("path", path))
		}

		return nil, err
	}

	return g, nil
}

// LoadOrDefault reads the grammar document at path, falling back to
// [Default] when path is empty or names a file that does not exist.
// Any other failure is returned.
func LoadOrDefault(ctx context.Context, path string) (*Grammar, error) {
	if path == "" {
		return Default(), nil
	}

	g, err := Load(ctx, path)
	if errors.Is(err, ErrGrammarNotFound) {
		return Default(), nil
	}

	return g, err
}

// Encode writes g to w as a YAML document with the given indent width.
// Absent sections are written as empty sequences.
func Encode(w io.Writer, g *Grammar, indent int) error {
	if g == nil {
		g = &Grammar{}
	}

	if indent <= 0 {
		indent = 2
	}

	out := g.Clone()
	if out.Keywords == nil {
		out.Keywords = []Keyword{}
	}

	if out.Operators == nil {
		out.Operators = []Operator{}
	}

	if out.SyntaxRules == nil {
		out.SyntaxRules = []SyntaxRule{}
	}

	if out.Types == nil {
		out.Types = []TypeDef{}
	}

	enc := yaml.NewEncoder(w, yaml.Indent(indent), yaml.IndentSequence(true))
	if err := enc.Encode(out); err != nil {
		return ErrEncodeGrammar.Wrap(err)
	}

	return enc.Close()
}

// Save writes g to the file at path, creating parent directories as needed.
func Save(ctx context.Context, g *Grammar, path string) error {
	if err := ctx.Err(); err != nil {
		return ErrWriteGrammar.Wrap(err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, g, 2); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ErrWriteGrammar.Wrap(err).With(slog.String("path", path))
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return ErrWriteGrammar.Wrap(err).With(slog.String("path", path))
	}

	return nil
}

// SearchPath composes a list of directories separated by
// [os.PathListSeparator], with dirs placed ahead of the entries already in
// searchPath.
func SearchPath(searchPath string, dirs ...string) string {
	return mung.Make(
		mung.WithSubjectItems(searchPath),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(dirs...),
	).String()
}

// Locate returns the first regular file named name in the directories of
// [SearchPath](searchPath, dirs...).
// If name is absolute or contains a directory component, it is returned
// as-is when it exists.
func Locate(name, searchPath string, dirs ...string) (string, error) {
	if name == "" {
		name = DefaultFileName
	}

	if filepath.IsAbs(name) || filepath.Base(name) != name {
		if isRegular(name) {
			return name, nil
		}

		return "", ErrGrammarNotFound.With(slog.String("path", name))
	}

	for _, dir := range filepath.SplitList(SearchPath(searchPath, dirs...)) {
		if dir == "" {
			continue
		}

		if path := filepath.Join(dir, name); isRegular(path) {
			return path, nil
		}
	}

	return "", ErrGrammarNotFound.With(
		slog.String("name", name),
		slog.String("search", searchPath),
	)
}

func isRegular(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.Mode().IsRegular()
}
