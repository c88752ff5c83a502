package parser

import (
	"github.com/cfacet/csyntax/ast"
	"github.com/cfacet/csyntax/env"
)

type specContext int8

const (
	// specFull allows every declaration specifier.
	specFull specContext = iota
	// specQual allows only specifier-qualifier-list entries, as in
	// struct members and type names: no storage classes, no function
	// specifiers.
	specQual
)

// declaration = declaration-specifiers init-declarator-list? ";"
func (p *parser) parseDeclaration() *ast.Declaration {
	start := p.cur().offset
	specs := p.parseDeclSpecs(specFull)
	if len(specs) == 0 {
		p.fail("declaration")
		p.bail()
	}
	decl := &ast.Declaration{Specifiers: specs}
	if !p.atPunct(";") {
		for {
			decl.Declarators = append(decl.Declarators, p.parseInitDeclarator(specs))
			if !p.eatPunct(",") {
				break
			}
		}
	}
	p.expectPunct(";")
	decl.Loc = p.spanFrom(start)
	return decl
}

func (p *parser) parseInitDeclarator(specs []ast.DeclSpecifier) *ast.InitDeclarator {
	return p.parseInitDeclaratorRest(specs, p.parseDeclarator(declConcrete))
}

// init-declarator = declarator asm-label? attribute* ("=" initializer)?
//
// The declared name is registered before the initializer is parsed, so
// "typedef char c; c c = 'x';" works: the second c is the declarator
// and shadows the typedef from that point on, including inside its own
// initializer.
func (p *parser) parseInitDeclaratorRest(specs []ast.DeclSpecifier, declarator *ast.Declarator) *ast.InitDeclarator {
	p.declareName(specs, declarator)
	d := &ast.InitDeclarator{Declarator: declarator}
	if p.gnu() && p.atAsmKeyword() {
		d.AsmLabel = p.parseAsmLabel()
	}
	d.Attributes = p.parseAttributes()
	if p.eatPunct("=") {
		d.Init = p.parseInitializer()
	}
	d.Loc = p.spanFrom(declarator.Loc.Start)
	return d
}

// declaration-specifiers = (storage-class-specifier | type-specifier
//   | type-qualifier | function-specifier | alignment-specifier
//   | attribute-specifier)+
//
// An identifier can fill the type specifier slot only while that slot
// is empty: after any type specifier, an identifier ends the list even
// when it names a type, so "typedef int T; unsigned T;" reads T as a
// declarator, not as a second type specifier.
func (p *parser) parseDeclSpecs(ctx specContext) []ast.DeclSpecifier {
	var specs []ast.DeclSpecifier
	sawType := false
	for {
		spec := p.parseDeclSpec(ctx, &sawType)
		if spec == nil {
			return specs
		}
		specs = append(specs, spec)
	}
}

func (p *parser) parseDeclSpec(ctx specContext, sawType *bool) ast.DeclSpecifier {
	t := p.cur()
	if t.kind != tokIdent {
		return nil
	}
	if !p.env.IsReservedWord(t.text) {
		if *sawType || !p.env.IsTypedefName(t.text) {
			return nil
		}
		p.advance()
		*sawType = true
		return &ast.TypedefName{Loc: tokenSpan(t), Name: t.text}
	}
	// The word is reserved, so the dialect owning it is active; no
	// further extension gating is needed below.
	switch t.text {
	case "typedef", "extern", "static", "auto", "register",
		"_Thread_local", "__thread", "__block":
		if ctx != specFull {
			return nil
		}
		p.advance()
		return &ast.StorageClass{Loc: tokenSpan(t), Keyword: t.text}
	case "void", "char", "short", "int", "long", "float", "double",
		"signed", "unsigned", "_Bool", "_Complex", "_Imaginary",
		"__signed", "__signed__":
		p.advance()
		*sawType = true
		return &ast.TypeSpecifier{Loc: tokenSpan(t), Keyword: t.text}
	case "const", "restrict", "volatile",
		"__const", "__restrict", "__restrict__", "__volatile", "__volatile__",
		"_Nonnull", "_Nullable", "_Null_unspecified":
		p.advance()
		return &ast.TypeQualifier{Loc: tokenSpan(t), Keyword: t.text}
	case "inline", "_Noreturn", "__inline", "__inline__":
		if ctx != specFull {
			return nil
		}
		p.advance()
		return &ast.FunctionSpecifier{Loc: tokenSpan(t), Keyword: t.text}
	case "_Atomic":
		// _Atomic "(" is the type specifier form, anything else the
		// qualifier.
		if p.laIsPunct(1, "(") {
			return p.parseAtomicTypeSpec(sawType)
		}
		p.advance()
		return &ast.TypeQualifier{Loc: tokenSpan(t), Keyword: t.text}
	case "_Alignas":
		return p.parseAlignmentSpec()
	case "struct", "union":
		*sawType = true
		return p.parseStructOrUnionSpec()
	case "enum":
		*sawType = true
		return p.parseEnumSpec()
	case "typeof", "__typeof", "__typeof__":
		*sawType = true
		return p.parseTypeofSpec()
	case "__attribute", "__attribute__":
		return p.parseAttributeSpecifier()
	case "__extension__":
		p.advance()
		return p.parseDeclSpec(ctx, sawType)
	}
	return nil
}

// atomic-type-specifier = "_Atomic" "(" type-name ")"
func (p *parser) parseAtomicTypeSpec(sawType *bool) *ast.AtomicTypeSpecifier {
	start := p.cur().offset
	p.advance() // _Atomic
	p.expectPunct("(")
	spec := &ast.AtomicTypeSpecifier{Type: p.parseTypeName()}
	p.expectPunct(")")
	*sawType = true
	spec.Loc = p.spanFrom(start)
	return spec
}

// alignment-specifier = "_Alignas" "(" (type-name | constant-expression) ")"
func (p *parser) parseAlignmentSpec() *ast.AlignmentSpecifier {
	start := p.cur().offset
	p.advance() // _Alignas
	p.expectPunct("(")
	spec := &ast.AlignmentSpecifier{}
	if p.startsTypeName(p.cur()) {
		spec.Type = p.parseTypeName()
	} else {
		spec.Expr = p.parseCondExpr()
	}
	p.expectPunct(")")
	spec.Loc = p.spanFrom(start)
	return spec
}

// typeof-specifier = ("typeof" | "__typeof" | "__typeof__") "(" (type-name | expression) ")"
func (p *parser) parseTypeofSpec() *ast.TypeofSpecifier {
	start := p.cur().offset
	p.advance()
	p.expectPunct("(")
	spec := &ast.TypeofSpecifier{}
	if p.startsTypeName(p.cur()) {
		spec.Type = p.parseTypeName()
	} else {
		spec.Expr = p.parseExpr()
	}
	p.expectPunct(")")
	spec.Loc = p.spanFrom(start)
	return spec
}

// struct-or-union-specifier = ("struct" | "union") attribute* identifier? "{" struct-declaration* "}"
//                           | ("struct" | "union") attribute* identifier
//
// An empty body is a GNU extension; the standard dialect wants at
// least one member.
func (p *parser) parseStructOrUnionSpec() *ast.StructOrUnionSpecifier {
	start := p.cur().offset
	t := p.advance() // struct or union
	spec := &ast.StructOrUnionSpecifier{IsUnion: t.text == "union"}
	spec.Attributes = p.parseAttributes()
	if p.atIdent() {
		spec.Name = p.parseIdent()
	}
	switch {
	case p.atPunct("{"):
		p.advance()
		spec.HasBody = true
		for !p.atPunct("}") {
			spec.Fields = append(spec.Fields, p.parseStructDeclaration())
		}
		if len(spec.Fields) == 0 && !p.gnu() {
			p.fail("declaration")
			p.bail()
		}
		p.advance() // }
	case spec.Name == nil:
		p.fail("identifier")
		p.fail("{")
		p.bail()
	}
	spec.Loc = p.spanFrom(start)
	return spec
}

// struct-declaration = specifier-qualifier-list struct-declarator-list? ";"
//                    | static-assert-declaration
func (p *parser) parseStructDeclaration() ast.StructDeclaration {
	if p.atKeyword("_Static_assert") {
		return p.parseStaticAssert()
	}
	start := p.cur().offset
	specs := p.parseDeclSpecs(specQual)
	if len(specs) == 0 {
		p.fail("declaration")
		p.bail()
	}
	f := &ast.FieldDecl{Specifiers: specs}
	if !p.atPunct(";") {
		for {
			f.Declarators = append(f.Declarators, p.parseFieldDeclarator())
			if !p.eatPunct(",") {
				break
			}
		}
	}
	p.expectPunct(";")
	f.Loc = p.spanFrom(start)
	return f
}

// struct-declarator = declarator | declarator? ":" constant-expression
func (p *parser) parseFieldDeclarator() *ast.FieldDeclarator {
	start := p.cur().offset
	fd := &ast.FieldDeclarator{}
	if !p.atPunct(":") {
		fd.Declarator = p.parseDeclarator(declConcrete)
	}
	if p.eatPunct(":") {
		fd.BitWidth = p.parseCondExpr()
	}
	fd.Loc = p.spanFrom(start)
	return fd
}

// enum-specifier = "enum" attribute* identifier? "{" enumerator ("," enumerator)* ","? "}"
//                | "enum" attribute* identifier
func (p *parser) parseEnumSpec() *ast.EnumSpecifier {
	start := p.cur().offset
	p.advance() // enum
	spec := &ast.EnumSpecifier{}
	spec.Attributes = p.parseAttributes()
	if p.atIdent() {
		spec.Name = p.parseIdent()
	}
	switch {
	case p.atPunct("{"):
		p.advance()
		spec.HasBody = true
		for {
			spec.Enumerators = append(spec.Enumerators, p.parseEnumerator())
			if !p.eatPunct(",") {
				break
			}
			if p.atPunct("}") {
				break // trailing comma
			}
		}
		p.expectPunct("}")
	case spec.Name == nil:
		p.fail("identifier")
		p.fail("{")
		p.bail()
	}
	spec.Loc = p.spanFrom(start)
	return spec
}

// enumerator = enumeration-constant ("=" constant-expression)?
//
// The constant is registered once its enumerator is complete, so a
// later enumerator's value can use it, while its own value expression
// still sees any outer binding of the same name.
func (p *parser) parseEnumerator() *ast.Enumerator {
	start := p.cur().offset
	e := &ast.Enumerator{Name: p.parseIdent()}
	if p.eatPunct("=") {
		e.Value = p.parseCondExpr()
	}
	p.env.Declare(e.Name.Name, env.EnumConstant)
	e.Loc = p.spanFrom(start)
	return e
}

// parseAttributes collects zero or more __attribute__((...)) specifiers
// into one flat attribute list. Outside the GNU dialects it matches
// nothing.
func (p *parser) parseAttributes() []*ast.Attribute {
	if !p.gnu() {
		return nil
	}
	var attrs []*ast.Attribute
	for p.atAnyKeyword("__attribute", "__attribute__") != "" {
		attrs = append(attrs, p.parseAttributeSpecifier().Attributes...)
	}
	return attrs
}

// attribute-specifier = attribute-keyword "(" "(" attribute-list? ")" ")"
func (p *parser) parseAttributeSpecifier() *ast.AttributeSpecifier {
	start := p.cur().offset
	p.advance() // __attribute__ or __attribute
	spec := &ast.AttributeSpecifier{}
	p.expectPunct("(")
	p.expectPunct("(")
	if !p.atPunct(")") {
		for {
			if a := p.parseAttribute(); a != nil {
				spec.Attributes = append(spec.Attributes, a)
			}
			if !p.eatPunct(",") {
				break
			}
		}
	}
	p.expectPunct(")")
	p.expectPunct(")")
	spec.Loc = p.spanFrom(start)
	return spec
}

// attribute = word ("(" expression-list? ")")?
//
// The word may be any identifier or keyword; const and aligned(8) are
// both attribute names. Empty list entries are allowed.
func (p *parser) parseAttribute() *ast.Attribute {
	t := p.cur()
	if t.kind == tokPunct && (t.text == "," || t.text == ")") {
		return nil
	}
	if t.kind != tokIdent {
		p.fail("identifier")
		p.bail()
	}
	p.advance()
	a := &ast.Attribute{Name: t.text}
	if p.eatPunct("(") {
		a.Args = []ast.Expr{}
		if !p.atPunct(")") {
			for {
				a.Args = append(a.Args, p.parseAssignExpr())
				if !p.eatPunct(",") {
					break
				}
			}
		}
		p.expectPunct(")")
	}
	a.Loc = p.spanFrom(t.offset)
	return a
}

type declaratorMode int8

const (
	// declConcrete requires a declared name.
	declConcrete declaratorMode = iota
	// declAbstract forbids one.
	declAbstract
	// declEither accepts both, as parameter declarations do.
	declEither
)

// declarator = pointer* direct-declarator attribute*
//
// Pointer layers bind loosest: the rightmost "*" binds closest to the
// name, so the collected pointers are appended after the direct
// declarator's own suffix layers, in reverse.
func (p *parser) parseDeclarator(mode declaratorMode) *ast.Declarator {
	start := p.cur().offset
	pointers := p.parsePointers()
	d := p.parseDirectDeclarator(mode)
	for i := len(pointers) - 1; i >= 0; i-- {
		d.Derived = append(d.Derived, pointers[i])
	}
	d.Attributes = p.parseAttributes()
	d.Loc = p.spanFrom(start)
	return d
}

// pointer = ("*" | "^") (type-qualifier | attribute)*
//
// "^" is the Clang block pointer and parses only in that dialect.
func (p *parser) parsePointers() []ast.DerivedDeclarator {
	var layers []ast.DerivedDeclarator
	for {
		start := p.cur().offset
		switch {
		case p.atPunct("*"):
			p.advance()
			layers = append(layers, &ast.PointerDeclarator{
				Qualifiers: p.parseQualifiers(),
				Loc:        p.spanFrom(start),
			})
		case p.clang() && p.atPunct("^"):
			p.advance()
			layers = append(layers, &ast.BlockPointerDeclarator{
				Qualifiers: p.parseQualifiers(),
				Loc:        p.spanFrom(start),
			})
		default:
			return layers
		}
	}
}

// parseQualifiers matches the type-qualifier-list of a pointer or array
// declarator. A bare _Atomic is always a qualifier here; the specifier
// form cannot appear in this position.
func (p *parser) parseQualifiers() []ast.DeclSpecifier {
	var quals []ast.DeclSpecifier
	for {
		t := p.cur()
		if t.kind != tokIdent || !p.env.IsReservedWord(t.text) {
			return quals
		}
		switch t.text {
		case "const", "restrict", "volatile", "_Atomic",
			"__const", "__restrict", "__restrict__", "__volatile", "__volatile__",
			"_Nonnull", "_Nullable", "_Null_unspecified":
			p.advance()
			quals = append(quals, &ast.TypeQualifier{Loc: tokenSpan(t), Keyword: t.text})
		case "__attribute", "__attribute__":
			quals = append(quals, p.parseAttributeSpecifier())
		default:
			return quals
		}
	}
}

// direct-declarator = identifier declarator-suffix*
//                   | "(" declarator ")" declarator-suffix*
//                   | declarator-suffix*
func (p *parser) parseDirectDeclarator(mode declaratorMode) *ast.Declarator {
	start := p.cur().offset
	d := &ast.Declarator{}
	switch {
	case mode != declAbstract && p.atIdent():
		d.Name = p.parseIdent()
	case p.atPunct("("):
		if p.innerDeclaratorAhead(mode) {
			p.advance()
			d.Inner = p.parseDeclarator(mode)
			p.expectPunct(")")
		} else if mode == declConcrete {
			// The "(" opens a parameter list, leaving nothing to
			// name the declaration.
			p.fail("identifier")
			p.bail()
		}
	default:
		if mode == declConcrete {
			p.fail("identifier")
			p.fail("(")
			p.bail()
		}
	}
	d.Derived = p.parseDeclaratorSuffixes()
	d.Loc = p.spanFrom(start)
	return d
}

// innerDeclaratorAhead decides whether a "(" at the head of a direct
// declarator groups a nested declarator or opens a parameter list. A
// parameter list follows when the next token could begin declaration
// specifiers or ends the list at once; a plain identifier means a
// nested declarator except in abstract position.
func (p *parser) innerDeclaratorAhead(mode declaratorMode) bool {
	next := p.la(1)
	switch next.kind {
	case tokPunct:
		switch next.text {
		case "*", "(", "[":
			return true
		case "^":
			return p.clang()
		}
		return false
	case tokIdent:
		if p.startsDeclSpecsTok(next) {
			return false
		}
		return mode != declAbstract && !p.env.IsReservedWord(next.text)
	}
	return false
}

func (p *parser) parseDeclaratorSuffixes() []ast.DerivedDeclarator {
	var layers []ast.DerivedDeclarator
	for {
		switch {
		case p.atPunct("["):
			layers = append(layers, p.parseArrayDeclarator())
		case p.atPunct("("):
			layers = append(layers, p.parseFunctionDeclarator())
		default:
			return layers
		}
	}
}

// array-declarator = "[" "static"? type-qualifier* "static"? (assignment-expression | "*")? "]"
func (p *parser) parseArrayDeclarator() *ast.ArrayDeclarator {
	start := p.cur().offset
	p.advance() // [
	a := &ast.ArrayDeclarator{}
	if p.eatKeyword("static") {
		a.Static = true
	}
	a.Qualifiers = p.parseQualifiers()
	if !a.Static && p.eatKeyword("static") {
		a.Static = true
	}
	switch {
	case p.atPunct("*") && p.laIsPunct(1, "]"):
		p.advance()
		a.Star = true
	case !p.atPunct("]"):
		a.Size = p.parseAssignExpr()
	}
	p.expectPunct("]")
	a.Loc = p.spanFrom(start)
	return a
}

// function-declarator = "(" parameter-declaration ("," parameter-declaration)* ("," "...")? ")"
//                     | "(" identifier ("," identifier)* ")"
//                     | "(" ")"
//
// A first token that is neither a reserved word nor a typedef name
// selects the old-style identifier list.
func (p *parser) parseFunctionDeclarator() ast.DerivedDeclarator {
	start := p.cur().offset
	p.advance() // (
	if p.atPunct(")") {
		p.advance()
		return &ast.KRFunctionDeclarator{Loc: p.spanFrom(start)}
	}
	if t := p.cur(); t.kind == tokIdent && !p.env.IsReservedWord(t.text) && !p.env.IsTypedefName(t.text) {
		kr := &ast.KRFunctionDeclarator{}
		for {
			kr.Names = append(kr.Names, p.parseIdent())
			if !p.eatPunct(",") {
				break
			}
		}
		p.expectPunct(")")
		kr.Loc = p.spanFrom(start)
		return kr
	}
	// Prototype parameters live in their own scope: a parameter that
	// shadows a typedef name stays shadowed for the parameters after
	// it, and the shadowing ends at ")".
	fn := &ast.FunctionDeclarator{}
	p.env.PushScope()
	defer p.env.PopScope()
	for {
		if len(fn.Params) > 0 && p.eatPunct("...") {
			fn.Variadic = true
			break
		}
		fn.Params = append(fn.Params, p.parseParamDecl())
		if !p.eatPunct(",") {
			break
		}
	}
	p.expectPunct(")")
	fn.Loc = p.spanFrom(start)
	return fn
}

// parameter-declaration = declaration-specifiers (declarator | abstract-declarator)?
//
// Parameter names are declared as soon as they parse, which is what
// lets a later parameter's array bound refer to an earlier parameter,
// as in "void f(int n, int a[n])".
func (p *parser) parseParamDecl() *ast.ParamDecl {
	start := p.cur().offset
	specs := p.parseDeclSpecs(specFull)
	if len(specs) == 0 {
		p.fail("declaration")
		p.bail()
	}
	pd := &ast.ParamDecl{Specifiers: specs}
	if p.startsDeclarator() {
		pd.Declarator = p.parseDeclarator(declEither)
		if name := declaratorName(pd.Declarator); name != nil {
			p.env.Declare(name.Name, env.Identifier)
		}
	}
	pd.Loc = p.spanFrom(start)
	return pd
}

// type-name = specifier-qualifier-list abstract-declarator?
func (p *parser) parseTypeName() *ast.TypeName {
	start := p.cur().offset
	specs := p.parseDeclSpecs(specQual)
	if len(specs) == 0 {
		p.fail("type name")
		p.bail()
	}
	tn := &ast.TypeName{Specifiers: specs}
	if p.atPunct("*") || p.atPunct("(") || p.atPunct("[") || (p.clang() && p.atPunct("^")) {
		tn.Declarator = p.parseDeclarator(declAbstract)
	}
	tn.Loc = p.spanFrom(start)
	return tn
}

// initializer = assignment-expression | initializer-list
func (p *parser) parseInitializer() ast.Expr {
	if p.atPunct("{") {
		return p.parseInitializerList()
	}
	return p.parseAssignExpr()
}

// initializer-list = "{" (initializer-item ("," initializer-item)* ","?)? "}"
//
// Empty braces are a GNU extension.
func (p *parser) parseInitializerList() *ast.InitializerList {
	start := p.cur().offset
	p.expectPunct("{")
	list := &ast.InitializerList{}
	for !p.atPunct("}") {
		list.Items = append(list.Items, p.parseInitItem())
		if !p.eatPunct(",") {
			break
		}
	}
	if len(list.Items) == 0 && !p.gnu() {
		p.fail("expression")
		p.bail()
	}
	p.expectPunct("}")
	list.Loc = p.spanFrom(start)
	return list
}

// initializer-item = designation? initializer
// designation = (("[" constant-expression ("..." constant-expression)? "]") | ("." identifier))+ "="
func (p *parser) parseInitItem() *ast.InitItem {
	start := p.cur().offset
	item := &ast.InitItem{}
	for {
		if p.atPunct("[") {
			dstart := p.cur().offset
			p.advance()
			from := p.parseCondExpr()
			if p.gnu() && p.eatPunct("...") {
				to := p.parseCondExpr()
				p.expectPunct("]")
				item.Designators = append(item.Designators, &ast.RangeDesignator{
					Loc: p.spanFrom(dstart), From: from, To: to,
				})
			} else {
				p.expectPunct("]")
				item.Designators = append(item.Designators, &ast.IndexDesignator{
					Loc: p.spanFrom(dstart), Index: from,
				})
			}
			continue
		}
		if p.atPunct(".") {
			dstart := p.cur().offset
			p.advance()
			item.Designators = append(item.Designators, &ast.MemberDesignator{
				Loc: p.spanFrom(dstart), Member: p.parseIdent(),
			})
			continue
		}
		break
	}
	if len(item.Designators) > 0 {
		p.expectPunct("=")
	}
	item.Init = p.parseInitializer()
	item.Loc = p.spanFrom(start)
	return item
}

// static-assert-declaration = "_Static_assert" "(" constant-expression "," string-literal ")" ";"
func (p *parser) parseStaticAssert() *ast.StaticAssert {
	start := p.cur().offset
	p.advance() // _Static_assert
	p.expectPunct("(")
	sa := &ast.StaticAssert{Condition: p.parseCondExpr()}
	p.expectPunct(",")
	sa.Message = p.parseStringLiteralNode()
	p.expectPunct(")")
	p.expectPunct(";")
	sa.Loc = p.spanFrom(start)
	return sa
}

// startsDeclSpecs reports whether the tokens at the cursor begin a
// declaration. GNU __extension__ prefixes are transparent.
func (p *parser) startsDeclSpecs() bool {
	i := 0
	for p.gnu() && p.la(i).kind == tokIdent && p.la(i).text == "__extension__" {
		i++
	}
	return p.startsDeclSpecsTok(p.la(i))
}

func (p *parser) startsDeclSpecsTok(t token) bool {
	if t.kind != tokIdent {
		return false
	}
	if !p.env.IsReservedWord(t.text) {
		return p.env.IsTypedefName(t.text)
	}
	switch t.text {
	case "typedef", "extern", "static", "auto", "register",
		"_Thread_local", "__thread", "__block",
		"void", "char", "short", "int", "long", "float", "double",
		"signed", "unsigned", "_Bool", "_Complex", "_Imaginary",
		"__signed", "__signed__",
		"const", "restrict", "volatile",
		"__const", "__restrict", "__restrict__", "__volatile", "__volatile__",
		"_Nonnull", "_Nullable", "_Null_unspecified",
		"inline", "_Noreturn", "__inline", "__inline__",
		"_Atomic", "_Alignas", "struct", "union", "enum",
		"typeof", "__typeof", "__typeof__",
		"__attribute", "__attribute__", "__extension__":
		return true
	}
	return false
}

// startsTypeName reports whether t can begin a type name. Unlike
// startsDeclSpecsTok it excludes storage classes and function
// specifiers, so "(static" never looks like a cast.
func (p *parser) startsTypeName(t token) bool {
	if t.kind != tokIdent {
		return false
	}
	if !p.env.IsReservedWord(t.text) {
		return p.env.IsTypedefName(t.text)
	}
	switch t.text {
	case "void", "char", "short", "int", "long", "float", "double",
		"signed", "unsigned", "_Bool", "_Complex", "_Imaginary",
		"__signed", "__signed__",
		"const", "restrict", "volatile",
		"__const", "__restrict", "__restrict__", "__volatile", "__volatile__",
		"_Nonnull", "_Nullable", "_Null_unspecified",
		"_Atomic", "struct", "union", "enum",
		"typeof", "__typeof", "__typeof__":
		return true
	}
	return false
}

func (p *parser) startsDeclarator() bool {
	t := p.cur()
	if t.kind == tokPunct {
		switch t.text {
		case "*", "(", "[":
			return true
		case "^":
			return p.clang()
		}
		return false
	}
	return t.kind == tokIdent && !p.env.IsReservedWord(t.text)
}
