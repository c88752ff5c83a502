package csyntax

import (
	"runtime"

	xenv "github.com/xyproto/env/v2"

	"github.com/cfacet/csyntax/env"
)

// Flavor selects the dialect accepted by the parser: which words are
// reserved and which grammar extensions are legal.
type Flavor int

const (
	// FlavorStandard accepts strict standard C11.
	FlavorStandard Flavor = iota
	// FlavorGNU accepts C11 plus the GNU extensions (statement
	// expressions, typeof, __attribute__, inline assembly, case
	// ranges, and the rest).
	FlavorGNU
	// FlavorClang accepts C11 plus the GNU extensions plus the Clang
	// additions (blocks and nullability qualifiers).
	FlavorClang
)

func (f Flavor) String() string {
	switch f {
	case FlavorGNU:
		return "GnuC11"
	case FlavorClang:
		return "ClangC11"
	default:
		return "StdC11"
	}
}

// newEnv builds a fresh symbol table for the flavor.
func (f Flavor) newEnv() *env.Env {
	switch f {
	case FlavorGNU:
		return env.NewGNU()
	case FlavorClang:
		return env.NewClang()
	default:
		return env.NewStandard()
	}
}

// Config controls how a file is preprocessed and which dialect the
// parser accepts.
type Config struct {
	// CPPCommand is the preprocessor executable to invoke.
	CPPCommand string
	// CPPOptions are passed to CPPCommand, before the source path.
	CPPOptions []string
	// Flavor selects the accepted dialect.
	Flavor Flavor
}

// NewGCCConfig returns a configuration that preprocesses with gcc and
// parses GNU C11. The CPP environment variable, when set, overrides
// the executable name.
func NewGCCConfig() Config {
	return Config{
		CPPCommand: xenv.Str("CPP", "gcc"),
		CPPOptions: []string{"-E"},
		Flavor:     FlavorGNU,
	}
}

// NewClangConfig returns a configuration that preprocesses with clang
// and parses Clang C11. The CPP environment variable, when set,
// overrides the executable name.
func NewClangConfig() Config {
	return Config{
		CPPCommand: xenv.Str("CPP", "clang"),
		CPPOptions: []string{"-E"},
		Flavor:     FlavorClang,
	}
}

// DefaultConfig returns the configuration for the platform's usual
// compiler: clang on darwin, gcc everywhere else.
func DefaultConfig() Config {
	if runtime.GOOS == "darwin" {
		return NewClangConfig()
	}
	return NewGCCConfig()
}
