package ast

// IntegerLiteral is an integer constant. Text is the original
// spelling, including any base prefix and suffixes.
type IntegerLiteral struct {
	Loc  Span
	Text string
}

// FloatLiteral is a floating constant. Text is the original spelling.
type FloatLiteral struct {
	Loc  Span
	Text string
}

// CharLiteral is a character constant. Text is the original spelling,
// including quotes and any L, u, or U prefix; escape sequences are not
// decoded.
type CharLiteral struct {
	Loc  Span
	Text string
}

// StringLiteral is a string literal. Adjacent literals are concatenated
// during parsing into a single node; Parts holds each original piece,
// quotes and prefix included.
type StringLiteral struct {
	Loc   Span
	Parts []string
}

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	Loc Span
	X   Expr
}

// GenericSelection is a _Generic selection expression.
type GenericSelection struct {
	Loc     Span
	Control Expr
	Assocs  []*GenericAssoc
}

// GenericAssoc is one association of a _Generic selection. A nil Type
// is the default association.
type GenericAssoc struct {
	Loc  Span
	Type *TypeName
	Expr Expr
}

// IndexExpr is a subscript expression x[index].
type IndexExpr struct {
	Loc   Span
	X     Expr
	Index Expr
}

// CallExpr is a function call.
type CallExpr struct {
	Loc  Span
	Fun  Expr
	Args []Expr
}

// SelectorExpr is a member access, x.sel or x->sel depending on Arrow.
type SelectorExpr struct {
	Loc   Span
	X     Expr
	Sel   *Ident
	Arrow bool
}

// UnaryExpr is a unary operation. Op is the operator's spelling; for
// "++" and "--", Postfix reports whether the operator followed its
// operand.
type UnaryExpr struct {
	Loc     Span
	Op      string
	X       Expr
	Postfix bool
}

// CompoundLiteral is a compound literal (type-name){...}.
type CompoundLiteral struct {
	Loc  Span
	Type *TypeName
	Init *InitializerList
}

// SizeofExpr is a sizeof expression. Exactly one of X and Type is set,
// depending on whether the operand was an expression or a
// parenthesized type name.
type SizeofExpr struct {
	Loc  Span
	X    Expr
	Type *TypeName
}

// AlignofExpr is an _Alignof expression. The standard form takes only
// a type name; the GNU __alignof__ form also accepts an expression, in
// which case X is set instead of Type.
type AlignofExpr struct {
	Loc  Span
	X    Expr
	Type *TypeName
}

// CastExpr is a cast expression (type-name)x.
type CastExpr struct {
	Loc  Span
	Type *TypeName
	X    Expr
}

// BinaryExpr is a binary operation. Op is the operator's spelling.
type BinaryExpr struct {
	Loc Span
	Op  string
	X   Expr
	Y   Expr
}

// CondExpr is a conditional expression cond ? then : else. A nil Then
// is the GNU "cond ?: else" form, which reuses the condition's value.
type CondExpr struct {
	Loc  Span
	Cond Expr
	Then Expr
	Else Expr
}

// AssignExpr is an assignment expression. Op is "=" or one of the
// compound forms such as "+=".
type AssignExpr struct {
	Loc Span
	Op  string
	L   Expr
	R   Expr
}

// CommaExpr is a comma expression. Exprs holds the operands in order
// and always has at least two elements.
type CommaExpr struct {
	Loc   Span
	Exprs []Expr
}

// StmtExpr is a GNU statement expression ({ ... }).
type StmtExpr struct {
	Loc  Span
	Body *CompoundStmt
}

// VaArgExpr is the GNU __builtin_va_arg(list, type) expression.
type VaArgExpr struct {
	Loc  Span
	List Expr
	Type *TypeName
}

// OffsetofExpr is the GNU __builtin_offsetof(type, member) expression.
// Designators holds the member designator as a leading member access
// followed by any further member and index designators.
type OffsetofExpr struct {
	Loc         Span
	Type        *TypeName
	Designators []Designator
}

// BlockExpr is a Clang block literal ^(params){...}. Params is nil
// when the literal omits its parameter list.
type BlockExpr struct {
	Loc    Span
	Params []*ParamDecl
	Body   *CompoundStmt
}

func (x *IntegerLiteral) Span() Span   { return x.Loc }
func (x *FloatLiteral) Span() Span     { return x.Loc }
func (x *CharLiteral) Span() Span      { return x.Loc }
func (x *StringLiteral) Span() Span    { return x.Loc }
func (x *ParenExpr) Span() Span        { return x.Loc }
func (x *GenericSelection) Span() Span { return x.Loc }
func (x *GenericAssoc) Span() Span     { return x.Loc }
func (x *IndexExpr) Span() Span        { return x.Loc }
func (x *CallExpr) Span() Span         { return x.Loc }
func (x *SelectorExpr) Span() Span     { return x.Loc }
func (x *UnaryExpr) Span() Span        { return x.Loc }
func (x *CompoundLiteral) Span() Span  { return x.Loc }
func (x *SizeofExpr) Span() Span       { return x.Loc }
func (x *AlignofExpr) Span() Span      { return x.Loc }
func (x *CastExpr) Span() Span         { return x.Loc }
func (x *BinaryExpr) Span() Span       { return x.Loc }
func (x *CondExpr) Span() Span         { return x.Loc }
func (x *AssignExpr) Span() Span       { return x.Loc }
func (x *CommaExpr) Span() Span        { return x.Loc }
func (x *StmtExpr) Span() Span         { return x.Loc }
func (x *VaArgExpr) Span() Span        { return x.Loc }
func (x *OffsetofExpr) Span() Span     { return x.Loc }
func (x *BlockExpr) Span() Span        { return x.Loc }

func (*IntegerLiteral) exprNode()   {}
func (*FloatLiteral) exprNode()     {}
func (*CharLiteral) exprNode()      {}
func (*StringLiteral) exprNode()    {}
func (*ParenExpr) exprNode()        {}
func (*GenericSelection) exprNode() {}
func (*IndexExpr) exprNode()        {}
func (*CallExpr) exprNode()         {}
func (*SelectorExpr) exprNode()     {}
func (*UnaryExpr) exprNode()        {}
func (*CompoundLiteral) exprNode()  {}
func (*SizeofExpr) exprNode()       {}
func (*AlignofExpr) exprNode()      {}
func (*CastExpr) exprNode()         {}
func (*BinaryExpr) exprNode()       {}
func (*CondExpr) exprNode()         {}
func (*AssignExpr) exprNode()       {}
func (*CommaExpr) exprNode()        {}
func (*StmtExpr) exprNode()         {}
func (*VaArgExpr) exprNode()        {}
func (*OffsetofExpr) exprNode()     {}
func (*BlockExpr) exprNode()        {}
