package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Heliodex/lingodec/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdata = "../../internal/fixture/testdata"

func newDecompiler(t *testing.T) *translate.Decompiler {
	dc, err := translate.NewDecompiler(8)
	require.NoError(t, err)
	return dc
}

func TestDecompile(t *testing.T) {
	var out bytes.Buffer
	err := decompile(&out, newDecompiler(t), filepath.Join(testdata, "ifelse.hujson"), options{check: true})
	require.NoError(t, err)
	assert.Equal(t, "on pick a\n  if a = 1 then\n    x = \"one\"\n  else\n    x = a\n  end if\nend\n", out.String())
}

func TestDecompileSummary(t *testing.T) {
	var out bytes.Buffer
	err := decompile(&out, newDecompiler(t), filepath.Join(testdata, "nested.hujson"), options{summary: true, check: true})
	require.NoError(t, err)
	assert.Equal(t, "on nest a\n  if a then / else\nend\n", out.String())
}

func TestDisasmAndDump(t *testing.T) {
	var out bytes.Buffer
	err := decompile(&out, newDecompiler(t), filepath.Join(testdata, "straight.hujson"), options{disasm: true, dumpAST: true})
	require.NoError(t, err)

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "[  0] getparam 0\n"), s)
	assert.Contains(t, s, "[ 14] ret\non calc a, b\n")
	assert.Contains(t, s, "HandlerNode calc\n    BlockNode\n")
}

func TestCheckMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrong.hujson")
	err := os.WriteFile(path, []byte(`{
		"handler": {"name": "h"},
		"code": ["01"],
		"source": ["on somethingElse", "end"],
	}`), 0o644)
	require.NoError(t, err)

	var out bytes.Buffer
	err = decompile(&out, newDecompiler(t), path, options{check: true})
	assert.True(t, errors.Is(err, ErrMismatch), "%v", err)
	assert.Equal(t, "on h\nend\n", out.String())
}

func TestTruncatedInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.hujson")
	require.NoError(t, os.WriteFile(path, []byte(`{"handler": {"name": "h"}, "code": ["41"]}`), 0o644))

	err := decompile(&bytes.Buffer{}, newDecompiler(t), path, options{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "short.hujson")
}

func TestApp(t *testing.T) {
	app := newApp()
	assert.Equal(t, "lingodec", app.Name)
	assert.Len(t, app.Flags, 6)
}
