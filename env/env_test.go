package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupInnermostWins(t *testing.T) {
	e := NewStandard()
	e.Declare("T", Typename)
	require.True(t, e.IsTypedefName("T"))

	e.PushScope()
	e.Declare("T", Identifier)
	assert.False(t, e.IsTypedefName("T"), "inner declaration should shadow the typedef")
	sym, ok := e.Lookup("T")
	require.True(t, ok)
	assert.Equal(t, Identifier, sym)

	e.PopScope()
	assert.True(t, e.IsTypedefName("T"), "typedef should be visible again after the scope ends")
}

func TestLookupUndeclared(t *testing.T) {
	e := NewStandard()
	_, ok := e.Lookup("missing")
	assert.False(t, ok)
	assert.False(t, e.IsTypedefName("missing"))
	assert.False(t, e.IsEnumConstant("missing"))
}

func TestDeclareOverwritesInScope(t *testing.T) {
	e := NewStandard()
	e.Declare("x", Identifier)
	e.Declare("x", EnumConstant)
	sym, ok := e.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, EnumConstant, sym)
	assert.True(t, e.IsEnumConstant("x"))
}

func TestScopesDropDeclarations(t *testing.T) {
	e := NewStandard()
	e.PushScope()
	e.Declare("local", Identifier)
	_, ok := e.Lookup("local")
	require.True(t, ok)
	e.PopScope()
	_, ok = e.Lookup("local")
	assert.False(t, ok, "names die with their scope")
}

func TestPopFileScopePanics(t *testing.T) {
	e := NewStandard()
	require.Panics(t, func() { e.PopScope() })
}

func TestReservedWordsByFlavor(t *testing.T) {
	std := NewStandard()
	gnu := NewGNU()
	clang := NewClang()

	cases := []struct {
		word            string
		std, gnu, clang bool
	}{
		{"while", true, true, true},
		{"_Static_assert", true, true, true},
		{"typeof", false, true, true},
		{"__attribute__", false, true, true},
		{"__asm__", false, true, true},
		{"__label__", false, true, true},
		{"__block", false, false, true},
		{"_Nonnull", false, false, true},
		{"_Null_unspecified", false, false, true},
		{"radius", false, false, false},
		{"__builtin_va_list", false, false, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.std, std.IsReservedWord(tc.word), "standard: %q", tc.word)
		assert.Equal(t, tc.gnu, gnu.IsReservedWord(tc.word), "gnu: %q", tc.word)
		assert.Equal(t, tc.clang, clang.IsReservedWord(tc.word), "clang: %q", tc.word)
	}
}

func TestExtensionKeywords(t *testing.T) {
	std := NewStandard()
	gnu := NewGNU()
	clang := NewClang()

	assert.False(t, std.IsExtensionKeyword("typeof"))
	assert.True(t, gnu.IsExtensionKeyword("typeof"))
	assert.True(t, clang.IsExtensionKeyword("typeof"), "clang reserves the GNU keywords too")

	assert.False(t, gnu.IsExtensionKeyword("__block"))
	assert.True(t, clang.IsExtensionKeyword("__block"))

	// Core keywords are reserved but not extensions.
	assert.False(t, gnu.IsExtensionKeyword("while"))
}

func TestBuiltinVaList(t *testing.T) {
	assert.False(t, NewStandard().IsTypedefName("__builtin_va_list"))
	assert.True(t, NewGNU().IsTypedefName("__builtin_va_list"))
	assert.True(t, NewClang().IsTypedefName("__builtin_va_list"))
}

func TestExtensionFlags(t *testing.T) {
	std := NewStandard()
	assert.False(t, std.ExtensionsGNU)
	assert.False(t, std.ExtensionsClang)

	gnu := NewGNU()
	assert.True(t, gnu.ExtensionsGNU)
	assert.False(t, gnu.ExtensionsClang)

	clang := NewClang()
	assert.True(t, clang.ExtensionsGNU)
	assert.True(t, clang.ExtensionsClang)
}

func TestSymbolString(t *testing.T) {
	assert.Equal(t, "identifier", Identifier.String())
	assert.Equal(t, "typename", Typename.String())
	assert.Equal(t, "enum constant", EnumConstant.String())
}
