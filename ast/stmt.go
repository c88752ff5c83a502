package ast

// LabeledStmt is a statement with an ordinary label, "name: stmt".
type LabeledStmt struct {
	Loc   Span
	Label *Ident
	Stmt  Stmt
}

// CaseStmt is a case label. A non-nil To is the GNU range form
// "case Value ... To:".
type CaseStmt struct {
	Loc   Span
	Value Expr
	To    Expr
	Stmt  Stmt
}

// DefaultStmt is a default label.
type DefaultStmt struct {
	Loc  Span
	Stmt Stmt
}

// CompoundStmt is a braced block. Declarations appear in Items wrapped
// in *DeclStmt, so block items keep their source order.
type CompoundStmt struct {
	Loc   Span
	Items []Stmt
}

// DeclStmt is a declaration in statement position.
type DeclStmt struct {
	Loc  Span
	Decl *Declaration
}

// LabelDeclStmt is a GNU __label__ declaration at the top of a block.
type LabelDeclStmt struct {
	Loc    Span
	Labels []*Ident
}

// EmptyStmt is a lone semicolon.
type EmptyStmt struct {
	Loc Span
}

// ExprStmt is an expression in statement position.
type ExprStmt struct {
	Loc Span
	X   Expr
}

// IfStmt is an if statement, with a nil Else when no else branch is
// present.
type IfStmt struct {
	Loc  Span
	Cond Expr
	Then Stmt
	Else Stmt
}

// SwitchStmt is a switch statement.
type SwitchStmt struct {
	Loc  Span
	Cond Expr
	Body Stmt
}

// WhileStmt is a while loop.
type WhileStmt struct {
	Loc  Span
	Cond Expr
	Body Stmt
}

// DoWhileStmt is a do-while loop.
type DoWhileStmt struct {
	Loc  Span
	Body Stmt
	Cond Expr
}

// ForStmt is a for loop. Init is a *DeclStmt or *ExprStmt, or nil when
// the first clause is empty; Cond and Post are nil when their clauses
// are empty.
type ForStmt struct {
	Loc  Span
	Init Stmt
	Cond Expr
	Post Expr
	Body Stmt
}

// GotoStmt is a goto statement.
type GotoStmt struct {
	Loc   Span
	Label *Ident
}

// ContinueStmt is a continue statement.
type ContinueStmt struct {
	Loc Span
}

// BreakStmt is a break statement.
type BreakStmt struct {
	Loc Span
}

// ReturnStmt is a return statement, with a nil Result for a bare
// return.
type ReturnStmt struct {
	Loc    Span
	Result Expr
}

// AsmStmt is a GNU inline assembly statement. The basic form has only
// a Template; the extended form adds operands and clobbers. A
// file-scope "asm(...)" is the same node in ExternalDecl position.
// Qualifiers holds any volatile or inline keywords between asm and the
// opening parenthesis.
type AsmStmt struct {
	Loc        Span
	Qualifiers []string
	Template   *StringLiteral
	Outputs    []*AsmOperand
	Inputs     []*AsmOperand
	Clobbers   []*StringLiteral
}

// AsmOperand is one input or output operand of an extended asm
// statement, "[name] constraint (expr)" with an optional name.
type AsmOperand struct {
	Loc        Span
	Name       *Ident
	Constraint *StringLiteral
	Expr       Expr
}

func (x *LabeledStmt) Span() Span   { return x.Loc }
func (x *CaseStmt) Span() Span      { return x.Loc }
func (x *DefaultStmt) Span() Span   { return x.Loc }
func (x *CompoundStmt) Span() Span  { return x.Loc }
func (x *DeclStmt) Span() Span      { return x.Loc }
func (x *LabelDeclStmt) Span() Span { return x.Loc }
func (x *EmptyStmt) Span() Span     { return x.Loc }
func (x *ExprStmt) Span() Span      { return x.Loc }
func (x *IfStmt) Span() Span        { return x.Loc }
func (x *SwitchStmt) Span() Span    { return x.Loc }
func (x *WhileStmt) Span() Span     { return x.Loc }
func (x *DoWhileStmt) Span() Span   { return x.Loc }
func (x *ForStmt) Span() Span       { return x.Loc }
func (x *GotoStmt) Span() Span      { return x.Loc }
func (x *ContinueStmt) Span() Span  { return x.Loc }
func (x *BreakStmt) Span() Span     { return x.Loc }
func (x *ReturnStmt) Span() Span    { return x.Loc }
func (x *AsmStmt) Span() Span       { return x.Loc }
func (x *AsmOperand) Span() Span    { return x.Loc }

func (*LabeledStmt) stmtNode()   {}
func (*CaseStmt) stmtNode()      {}
func (*DefaultStmt) stmtNode()   {}
func (*CompoundStmt) stmtNode()  {}
func (*DeclStmt) stmtNode()      {}
func (*LabelDeclStmt) stmtNode() {}
func (*EmptyStmt) stmtNode()     {}
func (*ExprStmt) stmtNode()      {}
func (*IfStmt) stmtNode()        {}
func (*SwitchStmt) stmtNode()    {}
func (*WhileStmt) stmtNode()     {}
func (*DoWhileStmt) stmtNode()   {}
func (*ForStmt) stmtNode()       {}
func (*GotoStmt) stmtNode()      {}
func (*ContinueStmt) stmtNode()  {}
func (*BreakStmt) stmtNode()     {}
func (*ReturnStmt) stmtNode()    {}
func (*AsmStmt) stmtNode()       {}

func (*AsmStmt) externalDeclNode() {}
