package ast

// Span identifies a contiguous range of the preprocessed text from
// which a node was parsed. Start is the byte offset of the node's first
// character and End is the offset just past its last character, so
// text[Start:End] is the node's source. Offsets count bytes, not runes.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Span returns the range of preprocessed text the node covers.
	Span() Span
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// ExternalDecl is implemented by nodes that may appear at file scope:
// *FunctionDef, *Declaration, *StaticAssert, *AsmStmt, and *EmptyDecl.
type ExternalDecl interface {
	Node
	externalDeclNode()
}

// DeclSpecifier is implemented by the nodes that may appear in a
// declaration's specifier list: storage classes, type specifiers, type
// qualifiers, function specifiers, alignment specifiers, and attribute
// specifiers.
type DeclSpecifier interface {
	Node
	declSpecifierNode()
}

// DerivedDeclarator is implemented by the pointer, array, and function
// layers that a declarator wraps around its declared name.
type DerivedDeclarator interface {
	Node
	derivedDeclaratorNode()
}

// StructDeclaration is implemented by the nodes that may appear inside
// a struct or union body: *FieldDecl and *StaticAssert.
type StructDeclaration interface {
	Node
	structDeclarationNode()
}

// Designator is implemented by the designators of a designated
// initializer: *IndexDesignator, *MemberDesignator, and
// *RangeDesignator.
type Designator interface {
	Node
	designatorNode()
}

// Ident is an identifier, such as a variable or member name.
type Ident struct {
	Loc  Span
	Name string
}

func (x *Ident) Span() Span { return x.Loc }

func (*Ident) exprNode() {}
