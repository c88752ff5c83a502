// Package ast defines types for modeling the AST (Abstract Syntax
// Tree) of a preprocessed C translation unit.
//
// All nodes of the tree implement the Node interface, which reports the
// span of preprocessed text the node was parsed from. Spans are byte
// offsets into the text handed to the parser; they are never resolved
// to file and line here. Mapping an offset back through the
// preprocessor's line markers is the source package's job and happens
// only when a diagnostic is rendered.
//
// The major node categories are marker interfaces in the manner of
// go/ast: Expr for expressions, Stmt for statements, ExternalDecl for
// file-scope declarations, DeclSpecifier for declaration specifiers,
// and DerivedDeclarator for the pointer, array, and function layers
// wrapped around a declared name. The root of the tree for a parsed
// translation unit is a *TranslationUnit.
//
// The tree records syntactic shape, not meaning. Constants keep their
// original spelling, string literals keep their quoted pieces, and
// specifier lists are stored in source order without validation, so a
// declaration like "long long signed x;" is representable even though
// a semantic pass may later reject it. Nodes whose syntax exists only
// under the GNU or Clang dialects (statement expressions, case ranges,
// block pointers, and so on) are ordinary node types here; the parser
// simply never produces them when the dialect does not allow them.
//
// Nodes are plain structs with exported fields. User code may construct
// them directly, for example to build test fixtures, but the parser is
// the usual source of trees and never mutates one after returning it.
package ast
