package ast

// TranslationUnit is the root of the tree for a parsed file. Its span
// covers the entire preprocessed text, including any trailing newline.
type TranslationUnit struct {
	Loc   Span
	Decls []ExternalDecl
}

// FunctionDef is a function definition. Decls holds the parameter
// declarations of an old-style (K&R) definition and is empty for a
// prototype-style definition.
type FunctionDef struct {
	Loc        Span
	Specifiers []DeclSpecifier
	Declarator *Declarator
	Decls      []*Declaration
	Body       *CompoundStmt
}

// Declaration is a declaration, at file scope or inside a block. A
// declaration with no declarators, such as "struct s { int x; };",
// has a nil Declarators slice.
type Declaration struct {
	Loc         Span
	Specifiers  []DeclSpecifier
	Declarators []*InitDeclarator
}

// InitDeclarator is one declarator of a declaration together with its
// optional initializer. AsmLabel and Attributes record GNU asm labels
// and __attribute__ lists trailing the declarator; both are nil/empty
// in the standard dialect. Init is nil when no initializer is present
// and is either an ordinary expression or an *InitializerList.
type InitDeclarator struct {
	Loc        Span
	Declarator *Declarator
	AsmLabel   *StringLiteral
	Attributes []*Attribute
	Init       Expr
}

// StaticAssert is a _Static_assert declaration. It may appear at file
// scope, as a block item, or inside a struct or union body.
type StaticAssert struct {
	Loc       Span
	Condition Expr
	Message   *StringLiteral
}

// EmptyDecl is a stray semicolon at file scope. The standard dialect
// rejects it; the GNU and Clang dialects accept it.
type EmptyDecl struct {
	Loc Span
}

// StorageClass is a storage-class specifier: typedef, extern, static,
// _Thread_local (or __thread), auto, register, or the Clang __block
// qualifier.
type StorageClass struct {
	Loc     Span
	Keyword string
}

// TypeSpecifier is a plain keyword type specifier: void, char, short,
// int, long, float, double, signed, unsigned, _Bool, _Complex, or one
// of their GNU spellings such as __signed__.
type TypeSpecifier struct {
	Loc     Span
	Keyword string
}

// TypedefName is a use of a previously declared typedef name in type
// specifier position.
type TypedefName struct {
	Loc  Span
	Name string
}

// TypeQualifier is a type qualifier: const, restrict, volatile,
// _Atomic, a GNU spelling such as __const, or a Clang nullability
// qualifier such as _Nonnull.
type TypeQualifier struct {
	Loc     Span
	Keyword string
}

// FunctionSpecifier is inline or _Noreturn, or a GNU spelling such as
// __inline__.
type FunctionSpecifier struct {
	Loc     Span
	Keyword string
}

// StructOrUnionSpecifier is a struct or union specifier. HasBody
// distinguishes a definition with an empty member list from a mere
// reference, since Fields is empty in both cases.
type StructOrUnionSpecifier struct {
	Loc        Span
	IsUnion    bool
	Attributes []*Attribute
	Name       *Ident
	Fields     []StructDeclaration
	HasBody    bool
}

// FieldDecl is one member declaration inside a struct or union body.
// An anonymous struct or union member has an empty Declarators slice.
type FieldDecl struct {
	Loc         Span
	Specifiers  []DeclSpecifier
	Declarators []*FieldDeclarator
}

// FieldDeclarator is one declarator of a member declaration. For an
// unnamed bit-field such as "int : 3;" Declarator is nil and BitWidth
// is set; for a plain member BitWidth is nil.
type FieldDeclarator struct {
	Loc        Span
	Declarator *Declarator
	BitWidth   Expr
}

// EnumSpecifier is an enum specifier. As with struct specifiers,
// HasBody distinguishes "enum e {}" from "enum e".
type EnumSpecifier struct {
	Loc         Span
	Attributes  []*Attribute
	Name        *Ident
	Enumerators []*Enumerator
	HasBody     bool
}

// Enumerator is one enumeration constant, with its optional value.
type Enumerator struct {
	Loc   Span
	Name  *Ident
	Value Expr
}

// AtomicTypeSpecifier is the type specifier form _Atomic(type-name).
type AtomicTypeSpecifier struct {
	Loc  Span
	Type *TypeName
}

// TypeofSpecifier is the GNU typeof specifier. Exactly one of Expr and
// Type is set, depending on whether the operand parsed as an
// expression or as a type name.
type TypeofSpecifier struct {
	Loc  Span
	Expr Expr
	Type *TypeName
}

// AlignmentSpecifier is an _Alignas specifier. Exactly one of Type and
// Expr is set.
type AlignmentSpecifier struct {
	Loc  Span
	Type *TypeName
	Expr Expr
}

// AttributeSpecifier is one GNU __attribute__((...)) list appearing in
// declaration specifier position.
type AttributeSpecifier struct {
	Loc        Span
	Attributes []*Attribute
}

// Attribute is a single attribute inside an __attribute__ list, such
// as aligned(8) or packed. Args is nil when the attribute has no
// argument list and non-nil (possibly empty) when parentheses are
// present.
type Attribute struct {
	Loc  Span
	Name string
	Args []Expr
}

// Declarator declares a name, or with a nil Name describes a type
// abstractly, as in a parameter list or a type name.
//
// Inner is the parenthesized declarator of the form "(declarator)" and
// is nil otherwise. Derived lists the pointer, array, and function
// layers in the order they bind to the name, tightest first: for
// "*x[5]" it holds the array layer and then the pointer layer.
type Declarator struct {
	Loc        Span
	Name       *Ident
	Inner      *Declarator
	Derived    []DerivedDeclarator
	Attributes []*Attribute
}

// PointerDeclarator is one "*" layer of a declarator, with its
// qualifiers and attributes.
type PointerDeclarator struct {
	Loc        Span
	Qualifiers []DeclSpecifier
}

// BlockPointerDeclarator is one Clang "^" block pointer layer of a
// declarator.
type BlockPointerDeclarator struct {
	Loc        Span
	Qualifiers []DeclSpecifier
}

// ArrayDeclarator is one "[...]" layer of a declarator. Static records
// the static keyword and Star the "[*]" form, both of which occur only
// in parameter declarations. Size is nil for an incomplete array.
type ArrayDeclarator struct {
	Loc        Span
	Qualifiers []DeclSpecifier
	Static     bool
	Star       bool
	Size       Expr
}

// FunctionDeclarator is one "(...)" prototype parameter list layer of
// a declarator. A "(void)" prototype keeps its single unnamed void
// parameter; a bare "()" is not a prototype and parses as a
// KRFunctionDeclarator with no names.
type FunctionDeclarator struct {
	Loc      Span
	Params   []*ParamDecl
	Variadic bool
}

// KRFunctionDeclarator is an old-style "(a, b, c)" identifier list
// layer of a declarator. An empty Names slice is the "()" form.
type KRFunctionDeclarator struct {
	Loc   Span
	Names []*Ident
}

// ParamDecl is one parameter declaration. Declarator is nil when the
// parameter is just a specifier list, as in "int f(int);".
type ParamDecl struct {
	Loc        Span
	Specifiers []DeclSpecifier
	Declarator *Declarator
}

// TypeName is a type name as written in a cast, sizeof, _Alignas,
// _Atomic(...), or a compound literal. Declarator is nil or abstract,
// never named.
type TypeName struct {
	Loc        Span
	Specifiers []DeclSpecifier
	Declarator *Declarator
}

// InitializerList is a braced initializer. It implements Expr so that
// it can appear wherever an initializer is expected, including nested
// inside another list, but it is not an expression in any other
// position.
type InitializerList struct {
	Loc   Span
	Items []*InitItem
}

// InitItem is one item of an InitializerList, with its optional
// designators.
type InitItem struct {
	Loc         Span
	Designators []Designator
	Init        Expr
}

// IndexDesignator is the array designator "[index]".
type IndexDesignator struct {
	Loc   Span
	Index Expr
}

// MemberDesignator is the member designator ".name".
type MemberDesignator struct {
	Loc    Span
	Member *Ident
}

// RangeDesignator is the GNU array range designator "[from ... to]".
type RangeDesignator struct {
	Loc  Span
	From Expr
	To   Expr
}

func (x *TranslationUnit) Span() Span        { return x.Loc }
func (x *FunctionDef) Span() Span            { return x.Loc }
func (x *Declaration) Span() Span            { return x.Loc }
func (x *InitDeclarator) Span() Span         { return x.Loc }
func (x *StaticAssert) Span() Span           { return x.Loc }
func (x *EmptyDecl) Span() Span              { return x.Loc }
func (x *StorageClass) Span() Span           { return x.Loc }
func (x *TypeSpecifier) Span() Span          { return x.Loc }
func (x *TypedefName) Span() Span            { return x.Loc }
func (x *TypeQualifier) Span() Span          { return x.Loc }
func (x *FunctionSpecifier) Span() Span      { return x.Loc }
func (x *StructOrUnionSpecifier) Span() Span { return x.Loc }
func (x *FieldDecl) Span() Span              { return x.Loc }
func (x *FieldDeclarator) Span() Span        { return x.Loc }
func (x *EnumSpecifier) Span() Span          { return x.Loc }
func (x *Enumerator) Span() Span             { return x.Loc }
func (x *AtomicTypeSpecifier) Span() Span    { return x.Loc }
func (x *TypeofSpecifier) Span() Span        { return x.Loc }
func (x *AlignmentSpecifier) Span() Span     { return x.Loc }
func (x *AttributeSpecifier) Span() Span     { return x.Loc }
func (x *Attribute) Span() Span              { return x.Loc }
func (x *Declarator) Span() Span             { return x.Loc }
func (x *PointerDeclarator) Span() Span      { return x.Loc }
func (x *BlockPointerDeclarator) Span() Span { return x.Loc }
func (x *ArrayDeclarator) Span() Span        { return x.Loc }
func (x *FunctionDeclarator) Span() Span     { return x.Loc }
func (x *KRFunctionDeclarator) Span() Span   { return x.Loc }
func (x *ParamDecl) Span() Span              { return x.Loc }
func (x *TypeName) Span() Span               { return x.Loc }
func (x *InitializerList) Span() Span        { return x.Loc }
func (x *InitItem) Span() Span               { return x.Loc }
func (x *IndexDesignator) Span() Span        { return x.Loc }
func (x *MemberDesignator) Span() Span       { return x.Loc }
func (x *RangeDesignator) Span() Span        { return x.Loc }

func (*FunctionDef) externalDeclNode()  {}
func (*Declaration) externalDeclNode()  {}
func (*StaticAssert) externalDeclNode() {}
func (*EmptyDecl) externalDeclNode()    {}

func (*StorageClass) declSpecifierNode()           {}
func (*TypeSpecifier) declSpecifierNode()          {}
func (*TypedefName) declSpecifierNode()            {}
func (*TypeQualifier) declSpecifierNode()          {}
func (*FunctionSpecifier) declSpecifierNode()      {}
func (*StructOrUnionSpecifier) declSpecifierNode() {}
func (*EnumSpecifier) declSpecifierNode()          {}
func (*AtomicTypeSpecifier) declSpecifierNode()    {}
func (*TypeofSpecifier) declSpecifierNode()        {}
func (*AlignmentSpecifier) declSpecifierNode()     {}
func (*AttributeSpecifier) declSpecifierNode()     {}

func (*PointerDeclarator) derivedDeclaratorNode()      {}
func (*BlockPointerDeclarator) derivedDeclaratorNode() {}
func (*ArrayDeclarator) derivedDeclaratorNode()        {}
func (*FunctionDeclarator) derivedDeclaratorNode()     {}
func (*KRFunctionDeclarator) derivedDeclaratorNode()   {}

func (*FieldDecl) structDeclarationNode()    {}
func (*StaticAssert) structDeclarationNode() {}

func (*IndexDesignator) designatorNode()  {}
func (*MemberDesignator) designatorNode() {}
func (*RangeDesignator) designatorNode()  {}

func (*InitializerList) exprNode() {}

func (*StaticAssert) stmtNode() {}
