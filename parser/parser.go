package parser

import (
	"github.com/tidwall/btree"

	"github.com/cfacet/csyntax/ast"
	"github.com/cfacet/csyntax/env"
)

// Parse parses preprocessed C text into a translation unit. The
// environment supplies the dialect (which words are reserved, which
// extensions are legal) and the typedef table; it is mutated during the
// parse as declarations introduce names, so a fresh environment should
// be used for each input. e must not be nil.
//
// On failure the returned error describes the furthest offset the
// grammar reached and every token that would have been accepted there.
func Parse(text string, e *env.Env) (*ast.TranslationUnit, *SyntaxError) {
	toks, err := lex(text)
	if err != nil {
		return nil, err
	}
	p := &parser{text: text, toks: toks, env: e, failPos: -1}
	return p.parse()
}

// bailout aborts the parse once the failure point has been recorded.
// It deliberately carries no data; the parser state has everything.
type bailout struct{}

type parser struct {
	text string
	toks []token
	pos  int
	env  *env.Env

	// lastEnd is the end offset of the most recently consumed token,
	// used to close the span of each finished production.
	lastEnd int

	// Furthest-failure tracking. Every probe that rejects a token
	// records what it wanted at that token's offset; only the record
	// for the maximal offset survives. failPos is -1 until the first
	// probe fails.
	failPos  int
	expected btree.Set[string]
}

func (p *parser) parse() (unit *ast.TranslationUnit, err *SyntaxError) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			unit, err = nil, p.syntaxError()
		}
	}()
	return p.parseTranslationUnit(), nil
}

// fail records that desc was acceptable at the current token. Failures
// short of the furthest point are discarded; a failure beyond it starts
// a new expectation set.
func (p *parser) fail(desc string) {
	off := p.cur().offset
	if off < p.failPos {
		return
	}
	if off > p.failPos {
		p.failPos = off
		p.expected = btree.Set[string]{}
	}
	p.expected.Insert(desc)
}

func (p *parser) bail() {
	panic(bailout{})
}

func (p *parser) syntaxError() *SyntaxError {
	off := p.failPos
	if off < 0 {
		off = p.cur().offset
	}
	expected := make([]string, 0, p.expected.Len())
	p.expected.Scan(func(desc string) bool {
		expected = append(expected, desc)
		return true
	})
	return newSyntaxError(p.text, off, expected...)
}

func (p *parser) cur() token { return p.toks[p.pos] }

// la peeks n tokens ahead; past the end it keeps returning EOF.
func (p *parser) la(n int) token {
	if i := p.pos + n; i < len(p.toks) {
		return p.toks[i]
	}
	return p.toks[len(p.toks)-1]
}

func (p *parser) laIsPunct(n int, s string) bool {
	t := p.la(n)
	return t.kind == tokPunct && t.text == s
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.lastEnd = t.end()
		p.pos++
	}
	return t
}

func tokenSpan(t token) ast.Span {
	return ast.Span{Start: t.offset, End: t.end()}
}

// spanFrom closes a production that began at start, ending it after
// the last token consumed so far.
func (p *parser) spanFrom(start int) ast.Span {
	return ast.Span{Start: start, End: p.lastEnd}
}

func (p *parser) atPunct(s string) bool {
	t := p.cur()
	return t.kind == tokPunct && t.text == s
}

func (p *parser) eatPunct(s string) bool {
	if p.atPunct(s) {
		p.advance()
		return true
	}
	p.fail(s)
	return false
}

func (p *parser) expectPunct(s string) token {
	if !p.atPunct(s) {
		p.fail(s)
		p.bail()
	}
	return p.advance()
}

// atKeyword matches the token text only. For extension keywords the
// caller gates on the dialect first; in an environment where the word
// is not reserved it must be left alone as an ordinary identifier.
func (p *parser) atKeyword(kw string) bool {
	t := p.cur()
	return t.kind == tokIdent && t.text == kw
}

func (p *parser) eatKeyword(kw string) bool {
	if p.atKeyword(kw) {
		p.advance()
		return true
	}
	p.fail(kw)
	return false
}

func (p *parser) expectKeyword(kw string) token {
	if !p.atKeyword(kw) {
		p.fail(kw)
		p.bail()
	}
	return p.advance()
}

// atAnyKeyword reports which of kws the current token is, or "".
func (p *parser) atAnyKeyword(kws ...string) string {
	t := p.cur()
	if t.kind != tokIdent {
		return ""
	}
	for _, kw := range kws {
		if t.text == kw {
			return kw
		}
	}
	return ""
}

func (p *parser) atAsmKeyword() bool {
	return p.atAnyKeyword("asm", "__asm", "__asm__") != ""
}

func (p *parser) atIdent() bool {
	t := p.cur()
	return t.kind == tokIdent && !p.env.IsReservedWord(t.text)
}

// parseIdent accepts any identifier not reserved in the current
// dialect, typedef names included; contexts that must reject typedef
// names check before calling.
func (p *parser) parseIdent() *ast.Ident {
	if !p.atIdent() {
		p.fail("identifier")
		p.bail()
	}
	t := p.advance()
	return &ast.Ident{Loc: tokenSpan(t), Name: t.text}
}

func (p *parser) gnu() bool   { return p.env.ExtensionsGNU }
func (p *parser) clang() bool { return p.env.ExtensionsClang }

// translation-unit = external-declaration*
func (p *parser) parseTranslationUnit() *ast.TranslationUnit {
	unit := &ast.TranslationUnit{Loc: ast.Span{Start: 0, End: len(p.text)}}
	for p.cur().kind != tokEOF {
		unit.Decls = append(unit.Decls, p.parseExternalDecl())
	}
	return unit
}

// external-declaration = function-definition | declaration
//
// GNU C additionally allows a stray ";" and a file-scope basic asm
// statement here.
func (p *parser) parseExternalDecl() ast.ExternalDecl {
	switch {
	case p.atPunct(";"):
		if p.gnu() {
			t := p.advance()
			return &ast.EmptyDecl{Loc: tokenSpan(t)}
		}
	case p.atKeyword("_Static_assert"):
		return p.parseStaticAssert()
	case p.gnu() && p.atAsmKeyword():
		return p.parseFileScopeAsm()
	}
	return p.parseDeclarationOrFunctionDef()
}

// Declarations and function definitions share their specifiers and
// first declarator; what follows the declarator decides. A "{" or the
// start of a K&R parameter declaration list means a definition,
// anything else continues an init-declarator list.
func (p *parser) parseDeclarationOrFunctionDef() ast.ExternalDecl {
	start := p.cur().offset
	specs := p.parseDeclSpecs(specFull)
	if len(specs) == 0 {
		p.fail("declaration")
		p.bail()
	}
	if p.atPunct(";") {
		p.advance()
		return &ast.Declaration{Loc: p.spanFrom(start), Specifiers: specs}
	}
	first := p.parseDeclarator(declConcrete)
	if p.atPunct("{") || p.startsDeclSpecs() {
		return p.parseFunctionDefRest(start, specs, first)
	}
	decl := &ast.Declaration{Specifiers: specs}
	decl.Declarators = append(decl.Declarators, p.parseInitDeclaratorRest(specs, first))
	for p.eatPunct(",") {
		decl.Declarators = append(decl.Declarators, p.parseInitDeclarator(specs))
	}
	p.expectPunct(";")
	decl.Loc = p.spanFrom(start)
	return decl
}

// function-definition = declaration-specifiers declarator declaration* compound-statement
//
// The declaration* slot is the K&R parameter declaration list. One
// scope covers the parameters, the K&R declarations, and the body, so
// a parameter shadows a file-scope typedef name for the whole body and
// the shadowing ends at the closing brace.
func (p *parser) parseFunctionDefRest(start int, specs []ast.DeclSpecifier, declarator *ast.Declarator) *ast.FunctionDef {
	p.declareName(specs, declarator)
	fd := &ast.FunctionDef{Specifiers: specs, Declarator: declarator}
	p.env.PushScope()
	defer p.env.PopScope()
	p.declareParams(declarator)
	for !p.atPunct("{") {
		fd.Decls = append(fd.Decls, p.parseDeclaration())
	}
	fd.Body = p.parseCompoundStmt(false)
	fd.Loc = p.spanFrom(start)
	return fd
}

// declareParams reintroduces the definition's parameter names in the
// scope just pushed for the body. The list that applies is the function
// layer binding tightest to the defined name: innermost declarator
// level first, each level's layers in binding order.
func (p *parser) declareParams(d *ast.Declarator) {
	var chain []*ast.Declarator
	for cur := d; cur != nil; cur = cur.Inner {
		chain = append(chain, cur)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		for _, layer := range chain[i].Derived {
			switch fn := layer.(type) {
			case *ast.FunctionDeclarator:
				for _, pd := range fn.Params {
					if name := declaratorName(pd.Declarator); name != nil {
						p.env.Declare(name.Name, env.Identifier)
					}
				}
				return
			case *ast.KRFunctionDeclarator:
				for _, name := range fn.Names {
					p.env.Declare(name.Name, env.Identifier)
				}
				return
			}
		}
	}
}

// declareName registers the declarator's name with the classification
// its specifiers imply. This happens as soon as the declarator is
// parsed, before any initializer or later declarator of the same
// declaration, which is what lets "typedef int T; T x, *p;" see T as a
// type on the very line that still uses it.
func (p *parser) declareName(specs []ast.DeclSpecifier, d *ast.Declarator) {
	name := declaratorName(d)
	if name == nil {
		return
	}
	sym := env.Identifier
	if isTypedef(specs) {
		sym = env.Typename
	}
	p.env.Declare(name.Name, sym)
}

func isTypedef(specs []ast.DeclSpecifier) bool {
	for _, s := range specs {
		if sc, ok := s.(*ast.StorageClass); ok && sc.Keyword == "typedef" {
			return true
		}
	}
	return false
}

// declaratorName digs through grouping parentheses to the declared
// identifier; nil for abstract declarators.
func declaratorName(d *ast.Declarator) *ast.Ident {
	for ; d != nil; d = d.Inner {
		if d.Name != nil {
			return d.Name
		}
	}
	return nil
}
