package parser

import (
	"github.com/cfacet/csyntax/ast"
)

// expression = assignment-expression ("," assignment-expression)*
func (p *parser) parseExpr() ast.Expr {
	start := p.cur().offset
	x := p.parseAssignExpr()
	if !p.eatPunct(",") {
		return x
	}
	exprs := []ast.Expr{x, p.parseAssignExpr()}
	for p.eatPunct(",") {
		exprs = append(exprs, p.parseAssignExpr())
	}
	return &ast.CommaExpr{Loc: p.spanFrom(start), Exprs: exprs}
}

var assignOps = []string{"=", "*=", "/=", "%=", "+=", "-=", "<<=", ">>=", "&=", "^=", "|="}

// assignment-expression = conditional-expression
//                       | unary-expression assignment-operator assignment-expression
//
// The left operand is parsed as a full conditional expression; whether
// it is something assignable is not a parsing question.
func (p *parser) parseAssignExpr() ast.Expr {
	start := p.cur().offset
	x := p.parseCondExpr()
	if t := p.cur(); t.kind == tokPunct {
		for _, op := range assignOps {
			if t.text == op {
				p.advance()
				r := p.parseAssignExpr()
				return &ast.AssignExpr{Loc: p.spanFrom(start), Op: op, L: x, R: r}
			}
		}
	}
	for _, op := range assignOps {
		p.fail(op)
	}
	return x
}

// conditional-expression = binary-expression ("?" expression? ":" conditional-expression)?
//
// The missing-middle "a ?: b" form is GNU.
func (p *parser) parseCondExpr() ast.Expr {
	start := p.cur().offset
	x := p.parseBinaryExpr(1)
	if !p.eatPunct("?") {
		return x
	}
	c := &ast.CondExpr{Cond: x}
	if p.gnu() && p.atPunct(":") {
		p.advance()
	} else {
		c.Then = p.parseExpr()
		p.expectPunct(":")
	}
	c.Else = p.parseCondExpr()
	c.Loc = p.spanFrom(start)
	return c
}

var binaryPrec = map[string]int{
	"*": 10, "/": 10, "%": 10,
	"+": 9, "-": 9,
	"<<": 8, ">>": 8,
	"<": 7, ">": 7, "<=": 7, ">=": 7,
	"==": 6, "!=": 6,
	"&":  5,
	"^":  4,
	"|":  3,
	"&&": 2,
	"||": 1,
}

// parseBinaryExpr climbs the precedence levels of the C binary
// operators, all of which associate left. When the loop stops, every
// operator that could have extended the expression is recorded as
// expected at the stopping token.
func (p *parser) parseBinaryExpr(minPrec int) ast.Expr {
	start := p.cur().offset
	x := p.parseCastExpr()
	for {
		t := p.cur()
		var prec int
		if t.kind == tokPunct {
			prec = binaryPrec[t.text]
		}
		if prec < minPrec || prec == 0 {
			for op, opPrec := range binaryPrec {
				if opPrec >= minPrec {
					p.fail(op)
				}
			}
			return x
		}
		p.advance()
		y := p.parseBinaryExpr(prec + 1)
		x = &ast.BinaryExpr{Loc: p.spanFrom(start), Op: t.text, X: x, Y: y}
	}
}

// cast-expression = unary-expression | "(" type-name ")" cast-expression
//
// "(" begins a cast exactly when the token after it can begin a type
// name; a braced initializer after the closing ")" turns the whole
// thing into a compound literal instead, which is a postfix expression
// and takes suffixes.
func (p *parser) parseCastExpr() ast.Expr {
	if p.atPunct("(") && p.startsTypeName(p.la(1)) {
		start := p.cur().offset
		p.advance()
		tn := p.parseTypeName()
		p.expectPunct(")")
		if p.atPunct("{") {
			lit := &ast.CompoundLiteral{Type: tn, Init: p.parseInitializerList()}
			lit.Loc = p.spanFrom(start)
			return p.parsePostfixSuffixes(start, lit)
		}
		x := p.parseCastExpr()
		return &ast.CastExpr{Loc: p.spanFrom(start), Type: tn, X: x}
	}
	return p.parseUnaryExpr()
}

// unary-expression = postfix-expression
//                  | ("++" | "--") unary-expression
//                  | ("&" | "*" | "+" | "-" | "~" | "!") cast-expression
//                  | "sizeof" unary-expression | "sizeof" "(" type-name ")"
//                  | alignof-expression | builtin-expression
//                  | "^" block-literal                       (Clang)
//                  | "__extension__" cast-expression         (GNU)
func (p *parser) parseUnaryExpr() ast.Expr {
	t := p.cur()
	start := t.offset
	if t.kind == tokPunct {
		switch t.text {
		case "++", "--":
			p.advance()
			x := p.parseUnaryExpr()
			return &ast.UnaryExpr{Loc: p.spanFrom(start), Op: t.text, X: x}
		case "&", "*", "+", "-", "~", "!":
			p.advance()
			x := p.parseCastExpr()
			return &ast.UnaryExpr{Loc: p.spanFrom(start), Op: t.text, X: x}
		case "^":
			if p.clang() {
				return p.parseBlockExpr()
			}
		}
		return p.parsePostfixExpr()
	}
	if t.kind == tokIdent && p.env.IsReservedWord(t.text) {
		switch t.text {
		case "sizeof":
			return p.parseSizeofExpr()
		case "_Alignof", "__alignof", "__alignof__":
			return p.parseAlignofExpr()
		case "__builtin_va_arg":
			return p.parseVaArgExpr()
		case "__builtin_offsetof":
			return p.parseOffsetofExpr()
		case "__extension__":
			p.advance()
			return p.parseCastExpr()
		}
	}
	return p.parsePostfixExpr()
}

// sizeof-expression = "sizeof" unary-expression | "sizeof" "(" type-name ")"
//
// "sizeof (T)(x)" does not continue as a call or cast: once "(" after
// sizeof reads as a type name, the operand is that type, complete.
func (p *parser) parseSizeofExpr() ast.Expr {
	start := p.cur().offset
	p.advance() // sizeof
	if p.atPunct("(") && p.startsTypeName(p.la(1)) {
		lstart := p.cur().offset
		p.advance()
		tn := p.parseTypeName()
		p.expectPunct(")")
		if p.atPunct("{") {
			lit := &ast.CompoundLiteral{Type: tn, Init: p.parseInitializerList()}
			lit.Loc = p.spanFrom(lstart)
			x := p.parsePostfixSuffixes(lstart, lit)
			return &ast.SizeofExpr{Loc: p.spanFrom(start), X: x}
		}
		return &ast.SizeofExpr{Loc: p.spanFrom(start), Type: tn}
	}
	x := p.parseUnaryExpr()
	return &ast.SizeofExpr{Loc: p.spanFrom(start), X: x}
}

// alignof-expression = "_Alignof" "(" type-name ")"
//                    | ("__alignof" | "__alignof__") ("(" (type-name | expression) ")" | unary-expression)
//
// Only the GNU spellings take an expression operand.
func (p *parser) parseAlignofExpr() ast.Expr {
	start := p.cur().offset
	kw := p.advance()
	if kw.text != "_Alignof" && !p.atPunct("(") {
		x := p.parseUnaryExpr()
		return &ast.AlignofExpr{Loc: p.spanFrom(start), X: x}
	}
	p.expectPunct("(")
	a := &ast.AlignofExpr{}
	switch {
	case p.startsTypeName(p.cur()):
		a.Type = p.parseTypeName()
	case kw.text != "_Alignof" || p.gnu():
		a.X = p.parseExpr()
	default:
		p.fail("type name")
		p.bail()
	}
	p.expectPunct(")")
	a.Loc = p.spanFrom(start)
	return a
}

// va-arg-expression = "__builtin_va_arg" "(" assignment-expression "," type-name ")"
func (p *parser) parseVaArgExpr() ast.Expr {
	start := p.cur().offset
	p.advance()
	p.expectPunct("(")
	v := &ast.VaArgExpr{List: p.parseAssignExpr()}
	p.expectPunct(",")
	v.Type = p.parseTypeName()
	p.expectPunct(")")
	v.Loc = p.spanFrom(start)
	return v
}

// offsetof-expression = "__builtin_offsetof" "(" type-name "," offsetof-designator ")"
// offsetof-designator = identifier (("." identifier) | ("[" expression "]"))*
func (p *parser) parseOffsetofExpr() ast.Expr {
	start := p.cur().offset
	p.advance()
	p.expectPunct("(")
	o := &ast.OffsetofExpr{Type: p.parseTypeName()}
	p.expectPunct(",")
	mstart := p.cur().offset
	first := &ast.MemberDesignator{Member: p.parseIdent()}
	first.Loc = p.spanFrom(mstart)
	o.Designators = append(o.Designators, first)
	for {
		if p.atPunct(".") {
			dstart := p.cur().offset
			p.advance()
			o.Designators = append(o.Designators, &ast.MemberDesignator{
				Loc: p.spanFrom(dstart), Member: p.parseIdent(),
			})
			continue
		}
		if p.atPunct("[") {
			dstart := p.cur().offset
			p.advance()
			idx := p.parseExpr()
			p.expectPunct("]")
			o.Designators = append(o.Designators, &ast.IndexDesignator{
				Loc: p.spanFrom(dstart), Index: idx,
			})
			continue
		}
		break
	}
	p.expectPunct(")")
	o.Loc = p.spanFrom(start)
	return o
}

// block-literal = "^" ("(" parameter-declaration ("," parameter-declaration)* ")")? compound-statement
//
// The parameters and body share one scope, like a function definition.
func (p *parser) parseBlockExpr() ast.Expr {
	start := p.cur().offset
	p.advance() // ^
	b := &ast.BlockExpr{}
	p.env.PushScope()
	defer p.env.PopScope()
	if p.atPunct("(") {
		p.advance()
		if !p.atPunct(")") {
			for {
				b.Params = append(b.Params, p.parseParamDecl())
				if !p.eatPunct(",") {
					break
				}
			}
		}
		p.expectPunct(")")
	}
	b.Body = p.parseCompoundStmt(false)
	b.Loc = p.spanFrom(start)
	return b
}

// postfix-expression = primary-expression postfix-suffix*
func (p *parser) parsePostfixExpr() ast.Expr {
	start := p.cur().offset
	return p.parsePostfixSuffixes(start, p.parsePrimaryExpr())
}

// postfix-suffix = "[" expression "]" | "(" argument-list? ")"
//                | ("." | "->") identifier | "++" | "--"
func (p *parser) parsePostfixSuffixes(start int, x ast.Expr) ast.Expr {
	for {
		switch {
		case p.atPunct("["):
			p.advance()
			idx := p.parseExpr()
			p.expectPunct("]")
			x = &ast.IndexExpr{Loc: p.spanFrom(start), X: x, Index: idx}
		case p.atPunct("("):
			p.advance()
			call := &ast.CallExpr{Fun: x}
			if !p.atPunct(")") {
				for {
					call.Args = append(call.Args, p.parseAssignExpr())
					if !p.eatPunct(",") {
						break
					}
				}
			}
			p.expectPunct(")")
			call.Loc = p.spanFrom(start)
			x = call
		case p.atPunct("."), p.atPunct("->"):
			t := p.advance()
			sel := p.parseIdent()
			x = &ast.SelectorExpr{Loc: p.spanFrom(start), X: x, Sel: sel, Arrow: t.text == "->"}
		case p.atPunct("++"), p.atPunct("--"):
			t := p.advance()
			x = &ast.UnaryExpr{Loc: p.spanFrom(start), Op: t.text, X: x, Postfix: true}
		default:
			for _, s := range [...]string{"[", "(", ".", "->", "++", "--"} {
				p.fail(s)
			}
			return x
		}
	}
}

// primary-expression = identifier | constant | string-literal
//                    | "(" expression ")" | generic-selection
//                    | "(" compound-statement ")"     (GNU)
//
// An identifier that currently names a type is not an expression; the
// aggregate description "expression" stands in for the whole set of
// primary forms when none of them matches.
func (p *parser) parsePrimaryExpr() ast.Expr {
	t := p.cur()
	start := t.offset
	switch t.kind {
	case tokInt:
		p.advance()
		return &ast.IntegerLiteral{Loc: tokenSpan(t), Text: t.text}
	case tokFloat:
		p.advance()
		return &ast.FloatLiteral{Loc: tokenSpan(t), Text: t.text}
	case tokChar:
		p.advance()
		return &ast.CharLiteral{Loc: tokenSpan(t), Text: t.text}
	case tokString:
		return p.parseStringLiteralNode()
	case tokPunct:
		if t.text == "(" {
			p.advance()
			if p.gnu() && p.atPunct("{") {
				body := p.parseCompoundStmt(true)
				p.expectPunct(")")
				return &ast.StmtExpr{Loc: p.spanFrom(start), Body: body}
			}
			x := p.parseExpr()
			p.expectPunct(")")
			return &ast.ParenExpr{Loc: p.spanFrom(start), X: x}
		}
	case tokIdent:
		if t.text == "_Generic" {
			return p.parseGenericSelection()
		}
		if !p.env.IsReservedWord(t.text) && !p.env.IsTypedefName(t.text) {
			p.advance()
			return &ast.Ident{Loc: tokenSpan(t), Name: t.text}
		}
	}
	p.fail("expression")
	p.bail()
	return nil
}

// string-literal = encoded-string+
//
// Adjacent string tokens concatenate into one literal node, one part
// per token, with prefixes and quotes preserved.
func (p *parser) parseStringLiteralNode() *ast.StringLiteral {
	t := p.cur()
	if t.kind != tokString {
		p.fail("string literal")
		p.bail()
	}
	lit := &ast.StringLiteral{}
	for p.cur().kind == tokString {
		lit.Parts = append(lit.Parts, p.cur().text)
		p.advance()
	}
	lit.Loc = p.spanFrom(t.offset)
	return lit
}

// generic-selection = "_Generic" "(" assignment-expression "," generic-association ("," generic-association)* ")"
func (p *parser) parseGenericSelection() ast.Expr {
	start := p.cur().offset
	p.advance() // _Generic
	p.expectPunct("(")
	g := &ast.GenericSelection{Control: p.parseAssignExpr()}
	p.expectPunct(",")
	for {
		g.Assocs = append(g.Assocs, p.parseGenericAssoc())
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct(")")
	g.Loc = p.spanFrom(start)
	return g
}

// generic-association = ("default" | type-name) ":" assignment-expression
func (p *parser) parseGenericAssoc() *ast.GenericAssoc {
	start := p.cur().offset
	a := &ast.GenericAssoc{}
	if !p.eatKeyword("default") {
		a.Type = p.parseTypeName()
	}
	p.expectPunct(":")
	a.Expr = p.parseAssignExpr()
	a.Loc = p.spanFrom(start)
	return a
}
