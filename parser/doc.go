// Package parser contains the logic for parsing preprocessed C source
// text into an AST (abstract syntax tree). The lexer splits the text
// into tokens, skipping comments and preprocessor line markers, and the
// parser consumes the tokens with a recursive-descent grammar, building
// ast.Node values as it goes.
//
// The grammar is C11. GNU and Clang extensions (typeof, __attribute__,
// statement expressions, case ranges, blocks, and so on) are parsed
// only when the env.Env passed to Parse enables the corresponding
// extension keywords; with a standard environment those words are
// ordinary identifiers.
//
// C cannot be parsed from its grammar alone: "T * x;" is a declaration
// when T names a type and an expression otherwise. The parser resolves
// this the way C compilers do, by asking the environment whether an
// identifier is currently a typedef name and registering every
// declarator it parses as soon as the declarator ends, so that later
// tokens of the same declaration already see the new name. The caller's
// env.Env is therefore mutated during the parse; see that package for
// scope behavior.
//
// Parse reports at most one error. The parser tracks the furthest byte
// offset any grammar rule reached and the set of token descriptions
// that were acceptable there, so the resulting *SyntaxError names the
// failing token and everything that could have appeared in its place.
// Positions in the error are line and column in the parsed text itself;
// resolving them through line markers to original files is the
// explicit job of the source package.
package parser
