package csyntax

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfacet/csyntax/ast"
	"github.com/cfacet/csyntax/source"
)

func TestFlavorString(t *testing.T) {
	assert.Equal(t, "StdC11", FlavorStandard.String())
	assert.Equal(t, "GnuC11", FlavorGNU.String())
	assert.Equal(t, "ClangC11", FlavorClang.String())
	assert.Equal(t, "StdC11", Flavor(42).String())
}

func TestFlavorEnv(t *testing.T) {
	std := FlavorStandard.newEnv()
	assert.False(t, std.ExtensionsGNU)
	assert.False(t, std.ExtensionsClang)

	gnu := FlavorGNU.newEnv()
	assert.True(t, gnu.ExtensionsGNU)
	assert.False(t, gnu.ExtensionsClang)

	clang := FlavorClang.newEnv()
	assert.True(t, clang.ExtensionsGNU)
	assert.True(t, clang.ExtensionsClang)
}

func TestConfigHonorsCPPEnv(t *testing.T) {
	t.Setenv("CPP", "")
	gcc := NewGCCConfig()
	assert.Equal(t, "gcc", gcc.CPPCommand)
	assert.Equal(t, []string{"-E"}, gcc.CPPOptions)
	assert.Equal(t, FlavorGNU, gcc.Flavor)

	clang := NewClangConfig()
	assert.Equal(t, "clang", clang.CPPCommand)
	assert.Equal(t, []string{"-E"}, clang.CPPOptions)
	assert.Equal(t, FlavorClang, clang.Flavor)

	t.Setenv("CPP", "mycpp")
	assert.Equal(t, "mycpp", NewGCCConfig().CPPCommand)
	assert.Equal(t, "mycpp", NewClangConfig().CPPCommand)
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv("CPP", "")
	cfg := DefaultConfig()
	if runtime.GOOS == "darwin" {
		assert.Equal(t, "clang", cfg.CPPCommand)
		assert.Equal(t, FlavorClang, cfg.Flavor)
	} else {
		assert.Equal(t, "gcc", cfg.CPPCommand)
		assert.Equal(t, FlavorGNU, cfg.Flavor)
	}
	assert.Equal(t, []string{"-E"}, cfg.CPPOptions)
}

func TestParsePreprocessed(t *testing.T) {
	const text = "int x;\n"
	res, err := ParsePreprocessed(Config{}, text)
	require.NoError(t, err)
	assert.Equal(t, text, res.Source)
	require.Len(t, res.Unit.Decls, 1)
	assert.IsType(t, (*ast.Declaration)(nil), res.Unit.Decls[0])
}

func TestParsePreprocessedHonorsFlavor(t *testing.T) {
	// typeof is a GNU keyword; standard C sees an unknown identifier.
	const text = "typeof (1) x;\n"

	res, err := ParsePreprocessed(Config{Flavor: FlavorGNU}, text)
	require.NoError(t, err)
	assert.Len(t, res.Unit.Decls, 1)

	_, err = ParsePreprocessed(Config{Flavor: FlavorStandard}, text)
	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 0, serr.Offset)
	assert.Contains(t, serr.Expected, "declaration")
}

func TestParsePreprocessedIsStateless(t *testing.T) {
	cfg := Config{}
	_, err := ParsePreprocessed(cfg, "typedef int tick;\n")
	require.NoError(t, err)

	// The typedef must not leak into the next call.
	_, err = ParsePreprocessed(cfg, "tick x;\n")
	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 0, serr.Offset)
}

func TestSyntaxErrorFields(t *testing.T) {
	_, err := ParsePreprocessed(Config{}, "int x")
	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)

	assert.Equal(t, "int x", serr.Source)
	assert.Equal(t, 5, serr.Offset)
	assert.Equal(t, 1, serr.Line)
	assert.Equal(t, 6, serr.Column)
	assert.Equal(t, []string{",", ";", "="}, serr.Expected)
	assert.Equal(t, `unexpected token at "<input>" line 1 column 6, expected ',', ';', '='`, serr.Error())
}

func TestSyntaxErrorResolvesLineMarkers(t *testing.T) {
	const text = "# 1 \"main.c\"\n# 1 \"inc.h\" 1\nint bad bad;\n"
	_, err := ParsePreprocessed(Config{}, text)
	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)

	// Raw position counts physical lines of the preprocessed text.
	assert.Equal(t, 35, serr.Offset)
	assert.Equal(t, 3, serr.Line)
	assert.Equal(t, 9, serr.Column)

	loc, chain := serr.ResolveLocation()
	assert.Equal(t, source.Location{File: "inc.h", Line: 1}, loc)
	assert.Equal(t, []source.Location{{File: "main.c", Line: 1}}, chain)

	assert.Equal(t,
		"unexpected token at \"inc.h\" line 1 column 9, expected ',', ';', '='\n"+
			"  included from main.c:1",
		serr.Error())
}

func TestExpectedTokens(t *testing.T) {
	serr := &SyntaxError{Expected: []string{";", "}"}}
	assert.Equal(t, `';', '}'`, serr.ExpectedTokens())

	assert.Empty(t, (&SyntaxError{}).ExpectedTokens())
}

func TestSnippet(t *testing.T) {
	serr := &SyntaxError{Source: "int x = ;\n", Offset: 8}
	assert.Equal(t, "int x = ;\n        ^", serr.Snippet())

	// Tabs expand to four-column stops so the caret stays aligned.
	serr = &SyntaxError{Source: "\tint x = ;\n", Offset: 9}
	assert.Equal(t, "    int x = ;\n            ^", serr.Snippet())

	// Errors at end of input point one past the last token.
	serr = &SyntaxError{Source: "int x", Offset: 5}
	assert.Equal(t, "int x\n     ^", serr.Snippet())
}

func TestPreprocessorError(t *testing.T) {
	inner := errors.New("boom")
	perr := &PreprocessorError{Err: inner}
	assert.Equal(t, "preprocessor error: boom", perr.Error())
	assert.ErrorIs(t, perr, inner)
}

func TestParsePreprocessorNotFound(t *testing.T) {
	cfg := Config{CPPCommand: filepath.Join(t.TempDir(), "no-such-cpp")}
	_, err := Parse(context.Background(), cfg, "whatever.c")

	var perr *PreprocessorError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var serr *SyntaxError
	assert.False(t, errors.As(err, &serr))
}

func TestParsePreprocessorFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a unix shell")
	}

	t.Run("StderrBecomesMessage", func(t *testing.T) {
		cfg := Config{
			CPPCommand: "sh",
			CPPOptions: []string{"-c", `echo "x.c:1: catastrophe" >&2; exit 1`},
		}
		_, err := Parse(context.Background(), cfg, "ignored.c")
		var perr *PreprocessorError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "preprocessor error: x.c:1: catastrophe\n", err.Error())
	})

	t.Run("SilentExit", func(t *testing.T) {
		cfg := Config{CPPCommand: "false"}
		_, err := Parse(context.Background(), cfg, "ignored.c")
		var perr *PreprocessorError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "preprocessor error: exit status 1", err.Error())
	})
}

func TestParseRunsPreprocessor(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a unix cat")
	}

	const text = "typedef unsigned long size_type;\n\nsize_type len(const char *s);\n"
	path := filepath.Join(t.TempDir(), "x.c")
	require.NoError(t, os.WriteFile(path, []byte(text), 0600))

	cfg := Config{CPPCommand: "cat", Flavor: FlavorStandard}
	res, err := Parse(context.Background(), cfg, path)
	require.NoError(t, err)
	assert.Equal(t, text, res.Source)
	assert.Len(t, res.Unit.Decls, 2)
}

func TestDriverParseFilesEmpty(t *testing.T) {
	d := &Driver{Config: Config{CPPCommand: "cat"}}
	results, err := d.ParseFiles(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, results)
}

func TestDriverCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := &Driver{Config: Config{CPPCommand: "cat"}}
	_, err := d.ParseFiles(ctx, "a.c", "b.c")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDriverParseFiles(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a unix cat")
	}

	dir := t.TempDir()
	write := func(name, text string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(text), 0600))
		return path
	}
	a := write("a.c", "int a;\n")
	b := write("b.c", "int b(void) { return 1; }\n")
	c := write("c.c", "typedef int tick; tick c;\n")

	d := &Driver{Config: Config{CPPCommand: "cat", Flavor: FlavorGNU}}
	ctx := context.Background()

	results, err := d.ParseFiles(ctx, a, b, c)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "int a;\n", results[0].Source)
	assert.Equal(t, "int b(void) { return 1; }\n", results[1].Source)
	assert.IsType(t, (*ast.FunctionDef)(nil), results[1].Unit.Decls[0])

	// Parallelism is a throughput knob, not a semantic one.
	serial := &Driver{Config: d.Config, MaxParallelism: 1}
	again, err := serial.ParseFiles(ctx, a, b, c)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(results, again))

	// Each file gets a fresh environment; c.c's typedef is invisible
	// to its neighbors.
	leak := write("leak.c", "tick leaked;\n")
	_, err = d.ParseFiles(ctx, c, leak)
	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "tick leaked;\n", serr.Source)

	// The first failure in input order wins and suppresses results.
	bad := write("bad.c", "int bad\n")
	results, err = d.ParseFiles(ctx, a, bad, b)
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "int bad\n", serr.Source)
	assert.Nil(t, results)
}

func TestFlavorsAgreeOnStandardSource(t *testing.T) {
	const text = "int f(int n) { return n * 2; }\n"

	std, err := ParsePreprocessed(Config{Flavor: FlavorStandard}, text)
	require.NoError(t, err)
	gnu, err := ParsePreprocessed(Config{Flavor: FlavorGNU}, text)
	require.NoError(t, err)
	clang, err := ParsePreprocessed(Config{Flavor: FlavorClang}, text)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(std.Unit, gnu.Unit))
	assert.Empty(t, cmp.Diff(std.Unit, clang.Unit))
}
