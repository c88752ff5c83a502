package parser

import (
	"github.com/cfacet/csyntax/ast"
)

// block-item = declaration | statement | static-assert-declaration
//
// An identifier followed by ":" is always a label, even when it names a
// typedef; otherwise a token that can begin declaration specifiers
// selects the declaration arm.
func (p *parser) parseBlockItem() ast.Stmt {
	if t := p.cur(); t.kind == tokIdent && !p.env.IsReservedWord(t.text) && p.laIsPunct(1, ":") {
		return p.parseLabeledStmt()
	}
	if p.atKeyword("_Static_assert") {
		return p.parseStaticAssert()
	}
	if p.startsDeclSpecs() {
		start := p.cur().offset
		return &ast.DeclStmt{Decl: p.parseDeclaration(), Loc: p.spanFrom(start)}
	}
	return p.parseStmt()
}

// statement = labeled-statement | compound-statement | expression-statement
//           | selection-statement | iteration-statement | jump-statement
//           | asm-statement
func (p *parser) parseStmt() ast.Stmt {
	t := p.cur()
	if t.kind == tokIdent {
		if !p.env.IsReservedWord(t.text) {
			if p.laIsPunct(1, ":") {
				return p.parseLabeledStmt()
			}
			return p.parseExprStmt()
		}
		switch t.text {
		case "case":
			return p.parseCaseStmt()
		case "default":
			return p.parseDefaultStmt()
		case "if":
			return p.parseIfStmt()
		case "switch":
			return p.parseSwitchStmt()
		case "while":
			return p.parseWhileStmt()
		case "do":
			return p.parseDoWhileStmt()
		case "for":
			return p.parseForStmt()
		case "goto":
			return p.parseGotoStmt()
		case "continue":
			p.advance()
			p.expectPunct(";")
			return &ast.ContinueStmt{Loc: p.spanFrom(t.offset)}
		case "break":
			p.advance()
			p.expectPunct(";")
			return &ast.BreakStmt{Loc: p.spanFrom(t.offset)}
		case "return":
			return p.parseReturnStmt()
		case "asm", "__asm", "__asm__":
			return p.parseAsmStmt()
		}
		// Reserved words that begin expressions (sizeof, _Generic,
		// __extension__, the builtins) fall through.
		return p.parseExprStmt()
	}
	if p.atPunct("{") {
		return p.parseCompoundStmt(true)
	}
	if p.atPunct(";") {
		t := p.advance()
		return &ast.EmptyStmt{Loc: tokenSpan(t)}
	}
	return p.parseExprStmt()
}

// compound-statement = "{" label-declaration* block-item* "}"
//
// newScope is false for the block of a function definition or a block
// literal, whose enclosing construct already pushed the scope that the
// parameters were declared into.
func (p *parser) parseCompoundStmt(newScope bool) *ast.CompoundStmt {
	start := p.cur().offset
	p.expectPunct("{")
	if newScope {
		p.env.PushScope()
		defer p.env.PopScope()
	}
	body := &ast.CompoundStmt{}
	for p.gnu() && p.atAnyKeyword("__label__") != "" {
		body.Items = append(body.Items, p.parseLabelDeclStmt())
	}
	for {
		if p.eatPunct("}") {
			break
		}
		if p.cur().kind == tokEOF {
			p.bail()
		}
		body.Items = append(body.Items, p.parseBlockItem())
	}
	body.Loc = p.spanFrom(start)
	return body
}

// label-declaration = "__label__" identifier ("," identifier)* ";"
func (p *parser) parseLabelDeclStmt() *ast.LabelDeclStmt {
	start := p.cur().offset
	p.advance() // __label__
	l := &ast.LabelDeclStmt{}
	for {
		l.Labels = append(l.Labels, p.parseIdent())
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct(";")
	l.Loc = p.spanFrom(start)
	return l
}

// labeled-statement = identifier ":" statement
func (p *parser) parseLabeledStmt() *ast.LabeledStmt {
	start := p.cur().offset
	label := p.parseIdent()
	p.expectPunct(":")
	s := &ast.LabeledStmt{Label: label, Stmt: p.parseStmt()}
	s.Loc = p.spanFrom(start)
	return s
}

// case-statement = "case" constant-expression ("..." constant-expression)? ":" statement
//
// The range form is GNU.
func (p *parser) parseCaseStmt() *ast.CaseStmt {
	start := p.cur().offset
	p.advance() // case
	c := &ast.CaseStmt{Value: p.parseCondExpr()}
	if p.gnu() && p.eatPunct("...") {
		c.To = p.parseCondExpr()
	}
	p.expectPunct(":")
	c.Stmt = p.parseStmt()
	c.Loc = p.spanFrom(start)
	return c
}

func (p *parser) parseDefaultStmt() *ast.DefaultStmt {
	start := p.cur().offset
	p.advance() // default
	p.expectPunct(":")
	d := &ast.DefaultStmt{Stmt: p.parseStmt()}
	d.Loc = p.spanFrom(start)
	return d
}

func (p *parser) parseExprStmt() *ast.ExprStmt {
	start := p.cur().offset
	x := p.parseExpr()
	p.expectPunct(";")
	return &ast.ExprStmt{Loc: p.spanFrom(start), X: x}
}

// selection-statement = "if" "(" expression ")" statement ("else" statement)?
func (p *parser) parseIfStmt() *ast.IfStmt {
	start := p.cur().offset
	p.advance() // if
	p.expectPunct("(")
	s := &ast.IfStmt{Cond: p.parseExpr()}
	p.expectPunct(")")
	s.Then = p.parseStmt()
	if p.eatKeyword("else") {
		s.Else = p.parseStmt()
	}
	s.Loc = p.spanFrom(start)
	return s
}

func (p *parser) parseSwitchStmt() *ast.SwitchStmt {
	start := p.cur().offset
	p.advance() // switch
	p.expectPunct("(")
	s := &ast.SwitchStmt{Cond: p.parseExpr()}
	p.expectPunct(")")
	s.Body = p.parseStmt()
	s.Loc = p.spanFrom(start)
	return s
}

func (p *parser) parseWhileStmt() *ast.WhileStmt {
	start := p.cur().offset
	p.advance() // while
	p.expectPunct("(")
	s := &ast.WhileStmt{Cond: p.parseExpr()}
	p.expectPunct(")")
	s.Body = p.parseStmt()
	s.Loc = p.spanFrom(start)
	return s
}

func (p *parser) parseDoWhileStmt() *ast.DoWhileStmt {
	start := p.cur().offset
	p.advance() // do
	s := &ast.DoWhileStmt{Body: p.parseStmt()}
	p.expectKeyword("while")
	p.expectPunct("(")
	s.Cond = p.parseExpr()
	p.expectPunct(")")
	p.expectPunct(";")
	s.Loc = p.spanFrom(start)
	return s
}

// iteration-statement = "for" "(" (declaration | expression? ";") expression? ";" expression? ")" statement
//
// The whole statement, including a declaration in the first clause,
// sits in one fresh scope that ends with the loop body.
func (p *parser) parseForStmt() *ast.ForStmt {
	start := p.cur().offset
	p.advance() // for
	f := &ast.ForStmt{}
	p.expectPunct("(")
	p.env.PushScope()
	defer p.env.PopScope()
	switch {
	case p.eatPunct(";"):
		// no init clause
	case p.startsDeclSpecs():
		dstart := p.cur().offset
		f.Init = &ast.DeclStmt{Decl: p.parseDeclaration(), Loc: p.spanFrom(dstart)}
	default:
		estart := p.cur().offset
		x := p.parseExpr()
		p.expectPunct(";")
		f.Init = &ast.ExprStmt{Loc: p.spanFrom(estart), X: x}
	}
	if !p.atPunct(";") {
		f.Cond = p.parseExpr()
	}
	p.expectPunct(";")
	if !p.atPunct(")") {
		f.Post = p.parseExpr()
	}
	p.expectPunct(")")
	f.Body = p.parseStmt()
	f.Loc = p.spanFrom(start)
	return f
}

func (p *parser) parseGotoStmt() *ast.GotoStmt {
	start := p.cur().offset
	p.advance() // goto
	s := &ast.GotoStmt{Label: p.parseIdent()}
	p.expectPunct(";")
	s.Loc = p.spanFrom(start)
	return s
}

func (p *parser) parseReturnStmt() *ast.ReturnStmt {
	start := p.cur().offset
	p.advance() // return
	s := &ast.ReturnStmt{}
	if !p.atPunct(";") {
		s.Result = p.parseExpr()
	}
	p.expectPunct(";")
	s.Loc = p.spanFrom(start)
	return s
}

// asm-statement = asm-keyword asm-qualifier* "(" string-literal
//                 (":" asm-operands? (":" asm-operands? (":" asm-clobbers?)?)?)? ")" ";"
func (p *parser) parseAsmStmt() *ast.AsmStmt {
	start := p.cur().offset
	p.advance() // asm keyword
	a := &ast.AsmStmt{}
	for {
		kw := p.atAnyKeyword("volatile", "__volatile", "__volatile__",
			"inline", "__inline", "__inline__")
		if kw == "" {
			break
		}
		p.advance()
		a.Qualifiers = append(a.Qualifiers, kw)
	}
	p.expectPunct("(")
	a.Template = p.parseStringLiteralNode()
	if p.eatPunct(":") {
		a.Outputs = p.parseAsmOperands()
		if p.eatPunct(":") {
			a.Inputs = p.parseAsmOperands()
			if p.eatPunct(":") && !p.atPunct(")") {
				for {
					a.Clobbers = append(a.Clobbers, p.parseStringLiteralNode())
					if !p.eatPunct(",") {
						break
					}
				}
			}
		}
	}
	p.expectPunct(")")
	p.expectPunct(";")
	a.Loc = p.spanFrom(start)
	return a
}

func (p *parser) parseAsmOperands() []*ast.AsmOperand {
	if p.atPunct(":") || p.atPunct(")") {
		return nil
	}
	var ops []*ast.AsmOperand
	for {
		ops = append(ops, p.parseAsmOperand())
		if !p.eatPunct(",") {
			break
		}
	}
	return ops
}

// asm-operand = ("[" identifier "]")? string-literal "(" expression ")"
func (p *parser) parseAsmOperand() *ast.AsmOperand {
	start := p.cur().offset
	op := &ast.AsmOperand{}
	if p.eatPunct("[") {
		op.Name = p.parseIdent()
		p.expectPunct("]")
	}
	op.Constraint = p.parseStringLiteralNode()
	p.expectPunct("(")
	op.Expr = p.parseExpr()
	p.expectPunct(")")
	op.Loc = p.spanFrom(start)
	return op
}

// file-scope-asm = asm-keyword "(" string-literal ")" ";"
//
// Only the basic form is allowed outside functions.
func (p *parser) parseFileScopeAsm() *ast.AsmStmt {
	start := p.cur().offset
	p.advance() // asm keyword
	a := &ast.AsmStmt{}
	p.expectPunct("(")
	a.Template = p.parseStringLiteralNode()
	p.expectPunct(")")
	p.expectPunct(";")
	a.Loc = p.spanFrom(start)
	return a
}

// asm-label = asm-keyword "(" string-literal ")"
func (p *parser) parseAsmLabel() *ast.StringLiteral {
	p.advance() // asm keyword
	p.expectPunct("(")
	lit := p.parseStringLiteralNode()
	p.expectPunct(")")
	return lit
}
