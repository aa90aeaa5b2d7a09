package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/cstea/cst"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func encode(t *testing.T, name, source string, opts ...Option) string {
	t.Helper()
	var buf bytes.Buffer
	enc, err := NewEncoder(name, &buf, opts...)
	if err != nil {
		t.Fatal(err)
	}
	if err := enc.Encode(source, cst.Parse(source)); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
	return buf.String()
}

func TestNewEncoderRejectsUnknownFormat(t *testing.T) {
	if _, err := NewEncoder("xml", &bytes.Buffer{}); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestTextEncoder(t *testing.T) {
	got := encode(t, "text", "(a)")
	want := `SOURCE_FILE@0..3
  LIST@0..3
    L_PAREN@0..1 "("
    IDENT@1..2 "a"
    R_PAREN@2..3 ")"
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("text mismatch (-want +got):\n%s", diff)
	}
}

func TestTextEncoderDiagnostics(t *testing.T) {
	got := encode(t, "text", "(a\n  b]", WithName("demo.tea"))
	want := "demo.tea:2:4: mismatched closing delimiter: expected `)`, found `]`\n" +
		"demo.tea:1:1: unclosed delimiter `(`\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestTextEncoderColor(t *testing.T) {
	got := encode(t, "text", "x", WithColor(true))
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI escapes, got %q", got)
	}
	plain := encode(t, "text", "x")
	if strings.Contains(plain, "\x1b[") {
		t.Errorf("expected no ANSI escapes, got %q", plain)
	}
}

func TestJSONEncoder(t *testing.T) {
	got := encode(t, "json", "x", WithName("x.tea"), WithPositions())

	var doc document
	if err := json.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, got)
	}
	want := document{
		Name: "x.tea",
		Root: &element{
			Kind: "SOURCE_FILE", Start: 0, End: 1,
			From: &cst.Position{Line: 1, Column: 1}, To: &cst.Position{Line: 1, Column: 2},
			Children: []*element{{
				Kind: "IDENT", Start: 0, End: 1, Text: "x",
				From: &cst.Position{Line: 1, Column: 1}, To: &cst.Position{Line: 1, Column: 2},
			}},
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("json mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONEncoderErrors(t *testing.T) {
	got := encode(t, "json", "a+b")
	var doc document
	if err := json.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Root != nil {
		t.Error("expected no root")
	}
	want := []diagnostic{{
		Start: 1, End: 2,
		From:    cst.Position{Line: 1, Column: 2},
		To:      cst.Position{Line: 1, Column: 3},
		Message: "unexpected character '+'",
	}}
	if diff := cmp.Diff(want, doc.Errors); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestYAMLEncoder(t *testing.T) {
	got := encode(t, "yaml", "[1]")
	var doc document
	if err := yaml.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, got)
	}
	if doc.Root == nil || doc.Root.Kind != "SOURCE_FILE" {
		t.Fatalf("unexpected root: %+v", doc.Root)
	}
	vector := doc.Root.Children[0]
	if vector.Kind != "VECTOR" || len(vector.Children) != 3 {
		t.Errorf("unexpected vector: %+v", vector)
	}
	if vector.Children[1].Text != "1" {
		t.Errorf("element text = %q, want 1", vector.Children[1].Text)
	}
}

func TestLineEncoder(t *testing.T) {
	got := encode(t, "line", "(a\n b)")
	want := strings.Join([]string{
		"0\tSOURCE_FILE\t0\t6\t1:1\t",
		"1\tLIST\t0\t6\t1:1\t",
		"2\tL_PAREN\t0\t1\t1:1\t\"(\"",
		"2\tIDENT\t1\t2\t1:2\t\"a\"",
		"2\tWHITESPACE\t2\t4\t1:3\t\"\\n \"",
		"2\tIDENT\t4\t5\t2:2\t\"b\"",
		"2\tR_PAREN\t5\t6\t2:3\t\")\"",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("line mismatch (-want +got):\n%s", diff)
	}
}
