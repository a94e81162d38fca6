package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/cyld/grammar"
	"github.com/ardnew/cyld/pkg"
	"github.com/ardnew/cyld/syntax"
)

func sampleResult() syntax.Result {
	return syntax.Check("fn 5() {}\nretrun x", grammar.Default())
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", DefaultFormat, false},
		{"text", FormatText, false},
		{" JSON ", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"CBOR", FormatCBOR, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}

			if tt.wantErr && !errors.Is(err, pkg.ErrInvalidFormat) {
				t.Errorf("error = %v, want ErrInvalidFormat", err)
			}

			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriteResult_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteResult(&buf, "main.cyl", sampleResult(), FormatText); err != nil {
		t.Fatalf("WriteResult() error = %v", err)
	}

	out := buf.String()

	for _, want := range []string{
		"Syntax Check Results for main.cyl:\n",
		"==================================\n",
		"✗ Syntax errors found!\n",
		"\nIssues:\n",
		"  ✗ Line 1:1 - Function declaration must be followed by a name\n",
		"\nSuggestions:\n",
		"  ? Line 2:1 - Did you mean: return?\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteResult_TextValid(t *testing.T) {
	t.Parallel()

	r := syntax.Check("fn add(a, b) { return a + b; }", grammar.Default())

	var buf bytes.Buffer
	if err := WriteResult(&buf, "ok.cyl", r, FormatText); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "✓ Syntax is valid!") {
		t.Errorf("output missing validity line:\n%s", out)
	}

	if strings.Contains(out, "Issues:") || strings.Contains(out, "Suggestions:") {
		t.Errorf("unexpected sections:\n%s", out)
	}
}

func TestWriteResults_Structured(t *testing.T) {
	t.Parallel()

	want := []FileResult{{File: "main.cyl", Result: sampleResult()}}

	decoders := map[Format]func([]byte, any) error{
		FormatJSON: json.Unmarshal,
		FormatYAML: yaml.Unmarshal,
		FormatCBOR: cbor.Unmarshal,
	}

	for format, decode := range decoders {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := WriteResults(&buf, want, format); err != nil {
				t.Fatalf("WriteResults() error = %v", err)
			}

			var got []FileResult
			if err := decode(buf.Bytes(), &got); err != nil {
				t.Fatalf("decode error = %v\n%s", err, buf.Bytes())
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteResult_JSONFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteResult(&buf, "main.cyl", sampleResult(), FormatJSON); err != nil {
		t.Fatal(err)
	}

	var doc []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}

	if len(doc) != 1 {
		t.Fatalf("got %d documents, want 1", len(doc))
	}

	for _, key := range []string{"file", "isValid", "issues", "suggestions"} {
		if _, ok := doc[0][key]; !ok {
			t.Errorf("missing key %q in %v", key, doc[0])
		}
	}
}

func TestWriteResults_InvalidFormat(t *testing.T) {
	t.Parallel()

	err := WriteResults(&bytes.Buffer{}, nil, Format("xml"))
	if !errors.Is(err, pkg.ErrInvalidFormat) {
		t.Errorf("error = %v, want ErrInvalidFormat", err)
	}
}

func TestWriteResult_ZeroFormat(t *testing.T) {
	t.Parallel()

	r := syntax.Check("let x = 1;", grammar.Default())

	var zero, text bytes.Buffer
	if err := WriteResult(&zero, "a.cyl", r, ""); err != nil {
		t.Fatal(err)
	}

	if err := WriteResult(&text, "a.cyl", r, FormatText); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(text.String(), zero.String()); diff != "" {
		t.Errorf("zero format mismatch (-text +zero):\n%s", diff)
	}
}

func TestWriteValidation(t *testing.T) {
	t.Parallel()

	g := grammar.Default()
	g.Version = "one"
	g.Keywords = append(g.Keywords, g.Keywords[0])

	result := grammar.Validate(g)

	var text bytes.Buffer
	if err := WriteValidation(&text, result, FormatText); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"✗ Grammar validation failed!\n",
		"   Error: Duplicate keyword: fn\n",
		"   Warning: ",
	} {
		if !strings.Contains(text.String(), want) {
			t.Errorf("text output missing %q:\n%s", want, text.String())
		}
	}

	var js bytes.Buffer
	if err := WriteValidation(&js, grammar.Validate(grammar.Default()), FormatJSON, WithIndent(4)); err != nil {
		t.Fatal(err)
	}

	want := "{\n    \"isValid\": true,\n    \"errors\": [],\n    \"warnings\": []\n}\n"
	if diff := cmp.Diff(want, js.String()); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteInfo(&buf, grammar.Default(), ""); err != nil {
		t.Fatal(err)
	}

	out := buf.String()

	for _, want := range []string{
		"Cyl Language Design Tool\n",
		"  Name: Cyl\n",
		"  Keywords: 22\n",
		"  Operators: 23\n",
		"  fn           - Function declaration\n",
		"  .    (10) [binary] {left}   - Member access\n",
		"  FunctionDeclaration:\n",
		"    Pattern: [async] fn <identifier>",
		"      let x = 5;\n",
		"  Array<T>     generic    - Dynamic array type\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// Operators are listed by descending precedence.
	dot := strings.Index(out, "  .    (10)")
	assign := strings.Index(out, "  =    (1)")

	if dot < 0 || assign < 0 || dot > assign {
		t.Errorf("operator order: '.' at %d, '=' at %d", dot, assign)
	}
}

func TestWriteInfo_Filter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteInfo(&buf, grammar.Default(), "ret"); err != nil {
		t.Fatal(err)
	}

	out := buf.String()

	if !strings.Contains(out, "  return       - Return from function\n") {
		t.Errorf("filtered output missing return:\n%s", out)
	}

	if strings.Contains(out, "  fn           -") {
		t.Errorf("filtered output contains fn:\n%s", out)
	}

	if !strings.Contains(out, "Operators:\n  (none)\n") {
		t.Errorf("filtered operators not empty:\n%s", out)
	}
}

func TestWriteInfo_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteInfo(&buf, nil, ""); err != nil {
		t.Fatal(err)
	}

	if n := strings.Count(buf.String(), "  (none)"); n != 4 {
		t.Errorf("got %d empty sections, want 4:\n%s", n, buf.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_Error(t *testing.T) {
	t.Parallel()

	err := WriteInfo(failWriter{}, grammar.Default(), "")
	if !errors.Is(err, pkg.ErrWriteOutput) {
		t.Errorf("error = %v, want ErrWriteOutput", err)
	}
}
