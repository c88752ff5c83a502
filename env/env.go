// Package env implements the scoped symbol environment that makes the C
// grammar parseable.
//
// C cannot be parsed context-free: at many points the grammar forks on
// whether an identifier currently names a type. The environment answers that
// single question. The parser pushes a scope when it enters a function body,
// block, or parameter list, records every declared name with its
// classification, and consults IsTypedefName wherever the grammar is
// ambiguous. Lookups resolve to the innermost scope holding the name, so
// redeclaring a typedef name as an ordinary identifier shadows it for the
// rest of that scope.
//
// An Env belongs to exactly one parse at a time. It performs no internal
// locking; concurrent mutation from several goroutines is a bug in the
// caller and is detected on a best-effort basis.
package env

import (
	"fmt"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// Symbol classifies what a declared name refers to.
type Symbol int

const (
	// Identifier is an ordinary identifier: a variable, function, or
	// parameter name.
	Identifier Symbol = iota
	// Typename is a name introduced by a typedef declaration.
	Typename
	// EnumConstant is an enumeration constant.
	EnumConstant
)

func (s Symbol) String() string {
	switch s {
	case Identifier:
		return "identifier"
	case Typename:
		return "typename"
	case EnumConstant:
		return "enum constant"
	default:
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
}

// Env tracks the names visible at the current point of a parse and the
// keyword set of the chosen language flavor. The zero value is not usable;
// construct with NewStandard, NewGNU, or NewClang.
type Env struct {
	// ExtensionsGNU enables GNU C grammar productions (statement
	// expressions, typeof, attributes, asm, case ranges). Set by both
	// NewGNU and NewClang.
	ExtensionsGNU bool
	// ExtensionsClang enables Clang grammar productions (nullability
	// qualifiers, blocks).
	ExtensionsClang bool

	scopes     []map[string]Symbol
	extensions map[string]bool

	// Goroutine id of an in-flight mutation, 0 when idle. Catches two
	// parses sharing one Env; sequential hand-off between goroutines
	// stays legal.
	mutator atomic.Int64
}

// NewStandard returns an environment for strict C11 with a single file
// scope and no extension keywords.
func NewStandard() *Env {
	return &Env{
		scopes:     []map[string]Symbol{make(map[string]Symbol)},
		extensions: noExtensions,
	}
}

// NewGNU returns an environment for C11 with GNU extensions. The GNU
// builtin type __builtin_va_list is pre-declared at file scope.
func NewGNU() *Env {
	e := NewStandard()
	e.ExtensionsGNU = true
	e.extensions = gnuKeywords
	e.declareBuiltins()
	return e
}

// NewClang returns an environment for C11 with Clang extensions. Clang
// implements nearly all of GNU C, so this enables the GNU productions
// and keywords as well, plus the Clang-only ones.
func NewClang() *Env {
	e := NewStandard()
	e.ExtensionsGNU = true
	e.ExtensionsClang = true
	e.extensions = clangGNUKeywords
	e.declareBuiltins()
	return e
}

func (e *Env) declareBuiltins() {
	e.Declare("__builtin_va_list", Typename)
}

// PushScope enters a nested scope. Every caller must pair it with PopScope
// on all exit paths.
func (e *Env) PushScope() {
	e.beginMutate()
	defer e.endMutate()
	e.scopes = append(e.scopes, make(map[string]Symbol))
}

// PopScope leaves the innermost scope, dropping all names declared in it.
// Popping the file scope is a caller bug and panics.
func (e *Env) PopScope() {
	e.beginMutate()
	defer e.endMutate()
	if len(e.scopes) == 1 {
		panic("env: popped file scope")
	}
	e.scopes = e.scopes[:len(e.scopes)-1]
}

// Declare records name with the given classification in the innermost
// scope. Redeclaring a name within one scope overwrites the previous
// classification; whether that was legal C is not this package's concern.
func (e *Env) Declare(name string, sym Symbol) {
	e.beginMutate()
	defer e.endMutate()
	e.scopes[len(e.scopes)-1][name] = sym
}

// Lookup reports the classification of name in the innermost scope that
// binds it.
func (e *Env) Lookup(name string) (Symbol, bool) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if sym, ok := e.scopes[i][name]; ok {
			return sym, true
		}
	}
	return 0, false
}

// IsTypedefName reports whether name currently refers to a typedef. This is
// the query the grammar consults at every type-vs-expression fork.
func (e *Env) IsTypedefName(name string) bool {
	sym, ok := e.Lookup(name)
	return ok && sym == Typename
}

// IsEnumConstant reports whether name currently refers to an enumeration
// constant.
func (e *Env) IsEnumConstant(name string) bool {
	sym, ok := e.Lookup(name)
	return ok && sym == EnumConstant
}

// IsReservedWord reports whether word may not be used as an identifier
// under the environment's flavor: a core C11 keyword or an active extension
// keyword.
func (e *Env) IsReservedWord(word string) bool {
	return coreKeywords[word] || e.extensions[word]
}

// IsExtensionKeyword reports whether word is a keyword contributed by the
// environment's flavor on top of core C11.
func (e *Env) IsExtensionKeyword(word string) bool {
	return e.extensions[word]
}

func (e *Env) beginMutate() {
	gid := goid.Get()
	if !e.mutator.CompareAndSwap(0, gid) {
		panic(fmt.Sprintf("env: concurrent mutation from goroutines %d and %d; each parse needs its own Env",
			e.mutator.Load(), gid))
	}
}

func (e *Env) endMutate() {
	e.mutator.Store(0)
}

var noExtensions = map[string]bool{}

var coreKeywords = wordSet(
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if",
	"inline", "int", "long", "register", "restrict", "return", "short",
	"signed", "sizeof", "static", "struct", "switch", "typedef", "union",
	"unsigned", "void", "volatile", "while",
	"_Alignas", "_Alignof", "_Atomic", "_Bool", "_Complex", "_Generic",
	"_Imaginary", "_Noreturn", "_Static_assert", "_Thread_local",
)

var gnuKeywords = wordSet(
	"asm", "__asm", "__asm__",
	"typeof", "__typeof", "__typeof__",
	"__attribute", "__attribute__",
	"__alignof", "__alignof__",
	"__builtin_offsetof", "__builtin_va_arg",
	"__const", "__extension__",
	"__inline", "__inline__",
	"__label__",
	"__restrict", "__restrict__",
	"__signed", "__signed__",
	"__thread",
	"__volatile", "__volatile__",
)

var clangKeywords = wordSet(
	"__block",
	"_Nonnull", "_Nullable", "_Null_unspecified",
)

// The Clang flavor reserves the GNU keywords too.
var clangGNUKeywords = union(gnuKeywords, clangKeywords)

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func union(sets ...map[string]bool) map[string]bool {
	merged := make(map[string]bool)
	for _, set := range sets {
		for w := range set {
			merged[w] = true
		}
	}
	return merged
}
