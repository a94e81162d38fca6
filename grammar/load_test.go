package grammar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Default(), 2); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode_AbsentSectionsAreEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, &Grammar{Name: "Empty", Version: "0.0.1"}, 0); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	for _, key := range []string{"keywords: []", "operators: []", "syntaxRules: []", "types: []"} {
		if !strings.Contains(buf.String(), key) {
			t.Errorf("expected %q in:\n%s", key, buf.String())
		}
	}
}

func TestDecode_AbsentSectionsAreNil(t *testing.T) {
	g, err := Decode(strings.NewReader("name: Tiny\nversion: 0.1.0\nkeywords:\n  - value: fn\n    type: FunctionDeclaration\n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if g.Operators != nil || g.SyntaxRules != nil {
		t.Errorf("absent sections decoded as %v, %v", g.Operators, g.SyntaxRules)
	}

	r := Validate(g)
	if diff := cmp.Diff(
		[]FindingKind{FindingMissingOperators, FindingMissingSyntaxRules},
		kinds(r.Errors),
	); diff != "" {
		t.Errorf("error kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_SchemaRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "unknown arity",
			doc: `name: Bad
version: 0.1.0
operators:
  - symbol: "+"
    type: quaternary
    precedence: 1
    associativity: left
`,
		},
		{
			name: "keyword without type",
			doc: `name: Bad
version: 0.1.0
keywords:
  - value: fn
`,
		},
		{
			name: "non-integer precedence",
			doc: `name: Bad
version: 0.1.0
operators:
  - symbol: "+"
    type: binary
    precedence: high
    associativity: left
`,
		},
		{
			name: "fractional precedence",
			doc: `name: Bad
version: 0.1.0
operators:
  - symbol: "+"
    type: binary
    precedence: 1.5
    associativity: left
`,
		},
		{
			name: "scalar document",
			doc:  "just a string\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			if !errors.Is(err, ErrSchema) {
				t.Errorf("Decode() error = %v, want ErrSchema", err)
			}
		})
	}
}

func TestDecode_SchemaLocation(t *testing.T) {
	doc := `name: Bad
version: 0.1.0
keywords:
  - value: fn
    type: FunctionDeclaration
operators:
  - symbol: "+"
    type: binary
    precedence: 1
    associativity: left
  - symbol: "-"
    type: binary
    precedence: 1
    associativity: sideways
`

	_, err := Decode(strings.NewReader(doc))

	var ge *Error
	if !errors.As(err, &ge) {
		t.Fatalf("Decode() error = %v, want *Error", err)
	}

	var location string

	for _, a := range ge.Attrs() {
		if a.Key == "location" {
			location = a.Value.String()
		}
	}

	if location != "/operators/1/associativity" {
		t.Errorf("location = %q, want /operators/1/associativity", location)
	}
}

func TestDecode_IntegerPrecedence(t *testing.T) {
	g, err := Decode(strings.NewReader(`name: Ok
version: 0.1.0
operators:
  - symbol: "**"
    type: binary
    precedence: 12
    associativity: right
`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if len(g.Operators) != 1 || g.Operators[0].Precedence != 12 {
		t.Errorf("operators = %+v", g.Operators)
	}
}

func TestSchema(t *testing.T) {
	a := Schema()

	var doc map[string]any
	if err := json.Unmarshal(a, &doc); err != nil {
		t.Fatalf("schema is not JSON: %v", err)
	}

	if _, ok := doc["$defs"]; !ok {
		t.Errorf("schema has no $defs: %v", doc)
	}

	// Callers get their own copy.
	a[0] = 'x'
	if b := Schema(); b[0] != '{' {
		t.Errorf("Schema() shares its buffer: %q", b[:1])
	}
}

func TestDecode_MalformedYAML(t *testing.T) {
	_, err := Decode(strings.NewReader("name: [unterminated\n"))
	if !errors.Is(err, ErrDecodeGrammar) {
		t.Errorf("Decode() error = %v, want ErrDecodeGrammar", err)
	}
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "specs", DefaultFileName)

	g := Default()
	g.Version = "0.2.0"

	if err := Save(ctx, g, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(ctx, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if diff := cmp.Diff(g, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_NotFound(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := Load(ctx, path); !errors.Is(err, ErrGrammarNotFound) {
		t.Errorf("Load() error = %v, want ErrGrammarNotFound", err)
	}

	g, err := LoadOrDefault(ctx, path)
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}

	if diff := cmp.Diff(Default(), g); diff != "" {
		t.Errorf("LoadOrDefault() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOrDefault_PropagatesSchemaErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("keywords: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadOrDefault(context.Background(), path)
	if !errors.Is(err, ErrSchema) {
		t.Errorf("LoadOrDefault() error = %v, want ErrSchema", err)
	}
}

func TestLocate(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	want := filepath.Join(second, DefaultFileName)

	if err := Save(context.Background(), Default(), want); err != nil {
		t.Fatal(err)
	}

	t.Run("search path", func(t *testing.T) {
		searchPath := first + string(os.PathListSeparator) + second

		got, err := Locate("", searchPath)
		if err != nil {
			t.Fatalf("Locate: %v", err)
		}

		if got != want {
			t.Errorf("Locate() = %q, want %q", got, want)
		}
	})

	t.Run("prefixed dirs", func(t *testing.T) {
		got, err := Locate(DefaultFileName, first, second)
		if err != nil {
			t.Fatalf("Locate: %v", err)
		}

		if got != want {
			t.Errorf("Locate() = %q, want %q", got, want)
		}
	})

	t.Run("explicit path", func(t *testing.T) {
		got, err := Locate(want, "")
		if err != nil || got != want {
			t.Errorf("Locate(%q) = %q, %v", want, got, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := Locate("other.yaml", first)
		if !errors.Is(err, ErrGrammarNotFound) {
			t.Errorf("Locate() error = %v, want ErrGrammarNotFound", err)
		}
	})
}

func TestError_Is(t *testing.T) {
	err := ErrSchema.Wrap(errors.New("boom"))

	if !errors.Is(err, ErrSchema) {
		t.Error("wrapped error does not match its sentinel")
	}

	if errors.Is(err, ErrDecodeGrammar) {
		t.Error("wrapped error matches an unrelated sentinel")
	}

	if got := err.Error(); got != "grammar does not match schema: boom" {
		t.Errorf("Error() = %q", got)
	}
}
