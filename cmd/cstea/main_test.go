package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type run struct {
	fs     afero.Fs
	env    map[string]string
	stdin  string
	stdout bytes.Buffer
	stderr bytes.Buffer
	tty    bool
}

func newRun(t *testing.T, files map[string]string) *run {
	t.Helper()
	r := &run{fs: afero.NewMemMapFs(), env: map[string]string{}}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(r.fs, name, []byte(content), 0o644))
	}
	return r
}

func (r *run) exec(args ...string) error {
	lookup := func(key string) (string, bool) {
		v, ok := r.env[key]
		return v, ok
	}
	root := newRootCommand(r.fs, lookup, strings.NewReader(r.stdin), &r.stdout, &r.stderr, r.tty)
	root.cmd.SetArgs(args)
	return root.cmd.Execute()
}

func TestParseText(t *testing.T) {
	r := newRun(t, map[string]string{"ok.cst": "(a b)"})
	require.NoError(t, r.exec("parse", "ok.cst"))

	want := `SOURCE_FILE@0..5
  LIST@0..5
    L_PAREN@0..1 "("
    IDENT@1..2 "a"
    WHITESPACE@2..3 " "
    IDENT@3..4 "b"
    R_PAREN@4..5 ")"
`
	assert.Equal(t, want, r.stdout.String())
}

func TestParseReportsDiagnostics(t *testing.T) {
	r := newRun(t, map[string]string{"bad.cst": "a+b\n(c"})
	err := r.exec("parse", "bad.cst")
	require.ErrorIs(t, err, errSyntax)

	assert.Equal(t,
		"bad.cst:1:2: unexpected character '+'\nbad.cst:2:1: unclosed delimiter `(`\n",
		r.stdout.String())
}

func TestParseStdin(t *testing.T) {
	r := newRun(t, nil)
	r.stdin = "a+b"
	require.ErrorIs(t, r.exec("parse", "-"), errSyntax)
	assert.Equal(t, "<stdin>:1:2: unexpected character '+'\n", r.stdout.String())
}

func TestParseJSON(t *testing.T) {
	r := newRun(t, map[string]string{"ok.cst": "x"})
	require.NoError(t, r.exec("parse", "--format", "json", "--positions", "ok.cst"))

	out := r.stdout.String()
	assert.Equal(t, "ok.cst", gjson.Get(out, "name").String())
	assert.Equal(t, "SOURCE_FILE", gjson.Get(out, "root.kind").String())
	assert.Equal(t, "IDENT", gjson.Get(out, "root.children.0.kind").String())
	assert.Equal(t, "x", gjson.Get(out, "root.children.0.text").String())
	assert.Equal(t, int64(2), gjson.Get(out, "root.children.0.to.column").Int())
}

func TestParseFormatFromConfigFileAndEnv(t *testing.T) {
	r := newRun(t, map[string]string{
		"ok.cst":     "x",
		"cstea.json": `{"format": "json"}`,
	})
	require.NoError(t, r.exec("parse", "ok.cst"))
	assert.True(t, gjson.Valid(r.stdout.String()), r.stdout.String())

	r.stdout.Reset()
	r.env["CSTEA_FORMAT"] = "yaml"
	require.NoError(t, r.exec("parse", "ok.cst"))
	assert.True(t, strings.HasPrefix(r.stdout.String(), "name: ok.cst\n"), r.stdout.String())
}

func TestParseUnknownFormat(t *testing.T) {
	r := newRun(t, map[string]string{"ok.cst": "x"})
	err := r.exec("parse", "--format", "xml", "ok.cst")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestParseMissingFile(t *testing.T) {
	r := newRun(t, nil)
	err := r.exec("parse", "nope.cst")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errSyntax)
	assert.Contains(t, err.Error(), "read file")
}

func TestDump(t *testing.T) {
	r := newRun(t, map[string]string{"bad.cst": "a+b"})
	require.NoError(t, r.exec("dump", "bad.cst"))

	want := `SOURCE_FILE@0..3
  IDENT@0..1 "a"
  ERROR@1..2
    ERROR_TOKEN@1..2 "+"
  IDENT@2..3 "b"
error 1..2: unexpected character '+'
`
	assert.Equal(t, want, r.stdout.String())
}

func TestDumpColor(t *testing.T) {
	r := newRun(t, map[string]string{"ok.cst": "x"})
	r.tty = true
	require.NoError(t, r.exec("dump", "ok.cst"))
	assert.Contains(t, r.stdout.String(), "\x1b[")

	r.stdout.Reset()
	require.NoError(t, r.exec("dump", "--color=false", "ok.cst"))
	assert.NotContains(t, r.stdout.String(), "\x1b[")
}

func TestPos(t *testing.T) {
	r := newRun(t, map[string]string{"two.cst": "a\nbc"})
	require.NoError(t, r.exec("pos", "two.cst", "0", "1", "3", "99"))
	assert.Equal(t, "0 1:1\n1 1:2\n3 2:2\n99 2:3\n", r.stdout.String())

	err := r.exec("pos", "two.cst", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid offset")
}

func TestVersion(t *testing.T) {
	r := newRun(t, nil)
	require.NoError(t, r.exec("version"))
	assert.Equal(t, "cstea "+version+"\n", r.stdout.String())
}

func TestInvalidEnvironment(t *testing.T) {
	r := newRun(t, nil)
	r.env["CSTEA_MAX_TREES"] = "lots"
	require.Error(t, r.exec("version"))
}
