package parser

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cfacet/csyntax/ast"
	"github.com/cfacet/csyntax/env"
	"github.com/cfacet/csyntax/internal/corpora"
	"github.com/cfacet/csyntax/internal/testutil"
)

func mustParse(t *testing.T, e *env.Env, src string) *ast.TranslationUnit {
	t.Helper()
	unit, err := Parse(src, e)
	require.Nil(t, err, "unexpected syntax error: %v", err)
	return unit
}

func TestParseEmptyInput(t *testing.T) {
	unit, err := Parse("", env.NewStandard())
	require.Nil(t, err)
	require.NotNil(t, unit)
	assert.Empty(t, unit.Decls)
}

func TestParseFunctionDef(t *testing.T) {
	unit := mustParse(t, env.NewStandard(), "int main(void) { return 0; }\n")
	require.Len(t, unit.Decls, 1)

	fd, ok := unit.Decls[0].(*ast.FunctionDef)
	require.True(t, ok, "expected function definition, got %T", unit.Decls[0])
	require.NotNil(t, fd.Declarator.Name)
	assert.Equal(t, "main", fd.Declarator.Name.Name)

	require.Len(t, fd.Declarator.Derived, 1)
	fn, ok := fd.Declarator.Derived[0].(*ast.FunctionDeclarator)
	require.True(t, ok, "expected prototype, got %T", fd.Declarator.Derived[0])
	require.Len(t, fn.Params, 1)
	assert.Nil(t, fn.Params[0].Declarator, "(void) keeps an unnamed parameter")

	require.Len(t, fd.Body.Items, 1)
	ret, ok := fd.Body.Items[0].(*ast.ReturnStmt)
	require.True(t, ok, "expected return, got %T", fd.Body.Items[0])
	lit, ok := ret.Result.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.Equal(t, "0", lit.Text)
}

func TestTypedefResolution(t *testing.T) {
	t.Run("declared before use", func(t *testing.T) {
		unit := mustParse(t, env.NewStandard(), "typedef int T;\nT x;\n")
		require.Len(t, unit.Decls, 2)
		decl := unit.Decls[1].(*ast.Declaration)
		require.Len(t, decl.Specifiers, 1)
		tn, ok := decl.Specifiers[0].(*ast.TypedefName)
		require.True(t, ok, "expected typedef name, got %T", decl.Specifiers[0])
		assert.Equal(t, "T", tn.Name)
	})

	t.Run("use before declaration fails", func(t *testing.T) {
		unit, err := Parse("T x;\ntypedef int T;\n", env.NewStandard())
		require.NotNil(t, err)
		assert.Nil(t, unit)
		assert.Equal(t, 0, err.Offset)
		assert.Contains(t, err.Expected, "declaration")
	})

	t.Run("typedef visible in same declaration", func(t *testing.T) {
		// The second c is a declarator and shadows the typedef from
		// that point on.
		mustParse(t, env.NewStandard(), "typedef char c;\nc c = 'x';\n")

		_, err := Parse("typedef char c;\nc c = 'x';\nc d;\n", env.NewStandard())
		require.NotNil(t, err, "c no longer names a type after being shadowed")
	})

	t.Run("specifier slot takes one type", func(t *testing.T) {
		// After "unsigned" fills the type slot, T reads as the
		// declared name even though it names a type.
		unit := mustParse(t, env.NewStandard(), "typedef int T;\nunsigned T;\n")
		decl := unit.Decls[1].(*ast.Declaration)
		require.Len(t, decl.Declarators, 1)
		assert.Equal(t, "T", decl.Declarators[0].Declarator.Name.Name)
	})
}

func TestTypedefShadowing(t *testing.T) {
	t.Run("parameter shadows for the body", func(t *testing.T) {
		mustParse(t, env.NewStandard(), "typedef int T;\nint f(int T) { return T + 1; }\n")
	})

	t.Run("prototype shadow lasts to the closing paren", func(t *testing.T) {
		_, err := Parse("typedef int T;\nint g(int T, T u);\n", env.NewStandard())
		require.NotNil(t, err, "T stopped being a type name after the first parameter")

		mustParse(t, env.NewStandard(), "typedef int T;\nint g(int x, T u);\n")
		mustParse(t, env.NewStandard(), "typedef int T;\nint h(int T);\nT back;\n")
	})

	t.Run("for scope ends with the loop", func(t *testing.T) {
		src := "typedef int T;\n" +
			"int f(void) { for (int T = 0; T < 3; ++T) ; return sizeof(T); }\n"
		unit := mustParse(t, env.NewStandard(), src)
		fd := unit.Decls[1].(*ast.FunctionDef)
		ret := fd.Body.Items[1].(*ast.ReturnStmt)
		sz, ok := ret.Result.(*ast.SizeofExpr)
		require.True(t, ok)
		assert.NotNil(t, sz.Type, "T names a type again after the loop")
	})
}

func TestEnumConstantReplacesTypedef(t *testing.T) {
	_, err := Parse("typedef int T;\nenum e { T };\nT x;\n", env.NewStandard())
	require.NotNil(t, err, "T names an enumeration constant now, not a type")

	unit := mustParse(t, env.NewStandard(), "enum e { A, B = A + 1 };\nint x = B;\n")
	decl := unit.Decls[1].(*ast.Declaration)
	id, ok := decl.Declarators[0].Init.(*ast.Ident)
	require.True(t, ok)
	assert.Equal(t, "B", id.Name)
}

func TestDeclaratorBinding(t *testing.T) {
	// f is a function taking a, returning a pointer to a function
	// taking b, returning int.
	unit := mustParse(t, env.NewStandard(), "int (*f(int a))(int b);\n")
	decl := unit.Decls[0].(*ast.Declaration)
	outer := decl.Declarators[0].Declarator

	assert.Nil(t, outer.Name)
	require.NotNil(t, outer.Inner)
	assert.Equal(t, "f", outer.Inner.Name.Name)

	require.Len(t, outer.Inner.Derived, 2)
	inner, ok := outer.Inner.Derived[0].(*ast.FunctionDeclarator)
	require.True(t, ok, "tightest layer is the parameter list of f")
	require.Len(t, inner.Params, 1)
	assert.Equal(t, "a", inner.Params[0].Declarator.Name.Name)
	_, ok = outer.Inner.Derived[1].(*ast.PointerDeclarator)
	require.True(t, ok)

	require.Len(t, outer.Derived, 1)
	ret, ok := outer.Derived[0].(*ast.FunctionDeclarator)
	require.True(t, ok)
	require.Len(t, ret.Params, 1)
	assert.Equal(t, "b", ret.Params[0].Declarator.Name.Name)
}

func TestSizeofForms(t *testing.T) {
	e := env.NewStandard()
	unit := mustParse(t, e, "typedef int T;\n"+
		"int a = sizeof(int);\n"+
		"int b = sizeof(a);\n"+
		"int c = sizeof(T) * 2;\n")

	byName := func(i int) ast.Expr {
		return unit.Decls[i].(*ast.Declaration).Declarators[0].Init
	}

	sz := byName(1).(*ast.SizeofExpr)
	assert.NotNil(t, sz.Type)
	assert.Nil(t, sz.X)

	sz = byName(2).(*ast.SizeofExpr)
	assert.Nil(t, sz.Type)
	_, ok := sz.X.(*ast.ParenExpr)
	assert.True(t, ok, "a is not a type, so the operand is an expression")

	bin, ok := byName(3).(*ast.BinaryExpr)
	require.True(t, ok, "sizeof(T) ends at the closing paren; * 2 multiplies it")
	assert.Equal(t, "*", bin.Op)
	sz, ok = bin.X.(*ast.SizeofExpr)
	require.True(t, ok)
	assert.NotNil(t, sz.Type)
}

func TestCastVsCall(t *testing.T) {
	unit := mustParse(t, env.NewStandard(), "typedef int T;\nint x = (T)(1);\n")
	cast, ok := unit.Decls[1].(*ast.Declaration).Declarators[0].Init.(*ast.CastExpr)
	require.True(t, ok, "a parenthesized type name begins a cast")
	_, ok = cast.X.(*ast.ParenExpr)
	assert.True(t, ok)

	unit = mustParse(t, env.NewStandard(), "int f(int a) { return (f)(1); }\n")
	fd := unit.Decls[0].(*ast.FunctionDef)
	ret := fd.Body.Items[0].(*ast.ReturnStmt)
	call, ok := ret.Result.(*ast.CallExpr)
	require.True(t, ok, "(f) is not a type name, so this is a call")
	paren, ok := call.Fun.(*ast.ParenExpr)
	require.True(t, ok)
	assert.Equal(t, "f", paren.X.(*ast.Ident).Name)
}

func TestStringConcatenation(t *testing.T) {
	unit := mustParse(t, env.NewStandard(), `char *s = "a" "b" L"c";`+"\n")
	lit, ok := unit.Decls[0].(*ast.Declaration).Declarators[0].Init.(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, []string{`"a"`, `"b"`, `L"c"`}, lit.Parts)
}

func TestDanglingElse(t *testing.T) {
	src := "int f(int a) { if (a) if (a) return 1; else return 2; return 3; }\n"
	unit := mustParse(t, env.NewStandard(), src)
	fd := unit.Decls[0].(*ast.FunctionDef)

	outer, ok := fd.Body.Items[0].(*ast.IfStmt)
	require.True(t, ok)
	assert.Nil(t, outer.Else, "else binds to the nearest if")
	inner, ok := outer.Then.(*ast.IfStmt)
	require.True(t, ok)
	assert.NotNil(t, inner.Else)
}

func TestStaticAssertPositions(t *testing.T) {
	src := `_Static_assert(1, "ok");` + "\n" +
		`struct s { int x; _Static_assert(2, "in s"); };` + "\n" +
		`int f(void) { _Static_assert(3, "in f"); return 0; }` + "\n"
	unit := mustParse(t, env.NewStandard(), src)
	require.Len(t, unit.Decls, 3)

	_, ok := unit.Decls[0].(*ast.StaticAssert)
	assert.True(t, ok, "file scope")

	spec := unit.Decls[1].(*ast.Declaration).Specifiers[0].(*ast.StructOrUnionSpecifier)
	require.Len(t, spec.Fields, 2)
	_, ok = spec.Fields[1].(*ast.StaticAssert)
	assert.True(t, ok, "struct body")

	fd := unit.Decls[2].(*ast.FunctionDef)
	_, ok = fd.Body.Items[0].(*ast.StaticAssert)
	assert.True(t, ok, "block item")
}

func TestCommaDisambiguation(t *testing.T) {
	unit := mustParse(t, env.NewStandard(), "int g(int a, int b) { return g(1, (2, 3)); }\n")
	fd := unit.Decls[0].(*ast.FunctionDef)
	call := fd.Body.Items[0].(*ast.ReturnStmt).Result.(*ast.CallExpr)
	require.Len(t, call.Args, 2, "the parenthesized comma expression is one argument")
	paren, ok := call.Args[1].(*ast.ParenExpr)
	require.True(t, ok)
	comma, ok := paren.X.(*ast.CommaExpr)
	require.True(t, ok)
	assert.Len(t, comma.Exprs, 2)
}

func TestNodeSpans(t *testing.T) {
	src := "int x = 42;\n"
	unit := mustParse(t, env.NewStandard(), src)

	assert.Equal(t, ast.Span{Start: 0, End: len(src)}, unit.Span(), "the root covers the whole text")

	decl := unit.Decls[0].(*ast.Declaration)
	assert.Equal(t, ast.Span{Start: 0, End: 11}, decl.Span(), "a declaration ends after its semicolon")

	id := decl.Declarators[0]
	assert.Equal(t, "x", src[id.Declarator.Loc.Start:id.Declarator.Loc.End])
	assert.Equal(t, ast.Span{Start: 4, End: 10}, id.Span(), "an init-declarator runs through its initializer")

	lit := id.Init.(*ast.IntegerLiteral)
	assert.Equal(t, "42", src[lit.Loc.Start:lit.Loc.End])
	assert.Equal(t, 2, lit.Span().Len())
}

func TestSyntaxErrorExpectations(t *testing.T) {
	t.Run("missing semicolon at end of input", func(t *testing.T) {
		_, err := Parse("int x", env.NewStandard())
		require.NotNil(t, err)
		assert.Equal(t, 5, err.Offset)
		assert.Equal(t, 1, err.Line)
		assert.Equal(t, 6, err.Column)
		assert.Equal(t, []string{",", ";", "="}, err.Expected)
		assert.Equal(t, "unexpected token at line 1 column 6, expected ',', ';', '='", err.Error())
	})

	t.Run("missing semicolon before brace", func(t *testing.T) {
		_, err := Parse("int f(void) { return 0 }\n", env.NewStandard())
		require.NotNil(t, err)
		pos := strings.IndexByte("int f(void) { return 0 }", '}')
		assert.Equal(t, pos, err.Offset)
		assert.Contains(t, err.Expected, ";")
		assert.Contains(t, err.Expected, "+")
		assert.Contains(t, err.Expected, "?")
	})

	t.Run("furthest failure wins", func(t *testing.T) {
		// The error points at the second declaration's bad token, not
		// at any earlier backtracked probe.
		_, err := Parse("int a;\nint b = ;\n", env.NewStandard())
		require.NotNil(t, err)
		assert.Equal(t, 2, err.Line)
		assert.Equal(t, 9, err.Column)
		assert.Contains(t, err.Expected, "expression")
	})
}

func TestDialects(t *testing.T) {
	data, err := os.ReadFile("testdata/dialects.yaml")
	require.NoError(t, err)

	var cases []struct {
		Name   string `yaml:"name"`
		Source string `yaml:"source"`
		Std    bool   `yaml:"std"`
		GNU    bool   `yaml:"gnu"`
		Clang  bool   `yaml:"clang"`
	}
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			flavors := []struct {
				name string
				env  *env.Env
				ok   bool
			}{
				{"std", env.NewStandard(), tc.Std},
				{"gnu", env.NewGNU(), tc.GNU},
				{"clang", env.NewClang(), tc.Clang},
			}
			for _, f := range flavors {
				unit, perr := Parse(tc.Source, f.env)
				if f.ok {
					assert.Nil(t, perr, "%s: unexpected error: %v", f.name, perr)
					assert.NotNil(t, unit, f.name)
				} else {
					assert.NotNil(t, perr, "%s: expected a syntax error", f.name)
					assert.Nil(t, unit, f.name)
				}
			}
		})
	}
}

const (
	pragmaStd   = "//pragma:std"
	pragmaClang = "//pragma:clang"
)

func TestCorpus(t *testing.T) {
	corpus := corpora.Corpus{
		Root:      "testdata/corpus",
		Refresh:   "CSYNTAX_REFRESH",
		Extension: "c",
		Outputs:   []string{"ast", "err"},
		Test: func(t *testing.T, path, text string) []string {
			e := env.NewGNU()
			switch {
			case strings.Contains(text, pragmaStd):
				e = env.NewStandard()
			case strings.Contains(text, pragmaClang):
				e = env.NewClang()
			}
			unit, err := Parse(text, e)
			if err != nil {
				return []string{"", err.Error() + "\n"}
			}
			return []string{testutil.Dump(unit), ""}
		},
	}
	corpus.Run(t)
}
