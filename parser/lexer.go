package parser

import "strings"

type tokenKind int8

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokFloat
	tokChar
	tokString
	tokPunct
	// tokInvalid is a byte no C token can begin with. The lexer passes
	// it through so the grammar fails at its offset with the full set
	// of expectations for that position.
	tokInvalid
)

// token is one lexical token of the input. Keywords are not
// distinguished from identifiers here; whether a word is reserved
// depends on the environment's dialect and is the parser's business.
type token struct {
	kind   tokenKind
	offset int
	text   string
}

func (t token) end() int { return t.offset + len(t.text) }

// lexer splits preprocessed C text into tokens. Comments are
// whitespace. A '#' that begins a line starts a preprocessor directive
// (in practice a line marker or a leftover #pragma) and the rest of
// that line is treated as whitespace too; byte offsets inside skipped
// text still resolve normally through the source package.
type lexer struct {
	input string
	pos   int
	// atLineStart reports that nothing but whitespace and comments has
	// been seen since the last newline.
	atLineStart bool
}

// lex tokenizes the whole input up front. The returned slice always
// ends with a tokEOF token whose offset is len(input).
func lex(input string) ([]token, *SyntaxError) {
	l := &lexer{input: input, atLineStart: true}
	var toks []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.kind == tokEOF {
			return toks, nil
		}
	}
}

func (l *lexer) next() (token, *SyntaxError) {
	if err := l.skipSpace(); err != nil {
		return token{}, err
	}
	start := l.pos
	if start >= len(l.input) {
		return token{kind: tokEOF, offset: start}, nil
	}
	l.atLineStart = false
	c := l.input[start]
	switch {
	case isIdentStart(c):
		l.pos++
		for l.pos < len(l.input) && isIdentCont(l.input[l.pos]) {
			l.pos++
		}
		word := l.input[start:l.pos]
		// A quote directly after L, u, U, or u8 makes the word an
		// encoding prefix of the literal, not an identifier.
		if l.pos < len(l.input) {
			switch next := l.input[l.pos]; {
			case next == '"' && stringPrefixes[word]:
				return l.lexQuoted(start, '"', tokString)
			case next == '\'' && charPrefixes[word]:
				return l.lexQuoted(start, '\'', tokChar)
			}
		}
		return token{kind: tokIdent, offset: start, text: word}, nil
	case isDigit(c), c == '.' && l.pos+1 < len(l.input) && isDigit(l.input[l.pos+1]):
		return l.lexNumber(start), nil
	case c == '"':
		return l.lexQuoted(start, '"', tokString)
	case c == '\'':
		return l.lexQuoted(start, '\'', tokChar)
	default:
		if text := l.lexPunct(); text != "" {
			return token{kind: tokPunct, offset: start, text: text}, nil
		}
		l.pos++
		return token{kind: tokInvalid, offset: start, text: l.input[start:l.pos]}, nil
	}
}

func (l *lexer) skipSpace() *SyntaxError {
	for l.pos < len(l.input) {
		switch c := l.input[l.pos]; c {
		case ' ', '\t', '\r', '\v', '\f':
			l.pos++
		case '\n':
			l.pos++
			l.atLineStart = true
		case '#':
			if !l.atLineStart {
				return nil
			}
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.pos++
			}
		case '/':
			if l.pos+1 >= len(l.input) {
				return nil
			}
			switch l.input[l.pos+1] {
			case '/':
				for l.pos < len(l.input) && l.input[l.pos] != '\n' {
					l.pos++
				}
			case '*':
				end := strings.Index(l.input[l.pos+2:], "*/")
				if end < 0 {
					return newSyntaxError(l.input, len(l.input), "*/")
				}
				if strings.Contains(l.input[l.pos:l.pos+2+end], "\n") {
					l.atLineStart = true
				}
				l.pos += 2 + end + 2
			default:
				return nil
			}
		default:
			return nil
		}
	}
	return nil
}

// lexNumber scans a preprocessing number: a digit, or '.' digit, then
// any run of identifier characters and dots, where a sign is also
// consumed directly after an exponent letter. This is deliberately
// looser than the C constant grammar, matching how compilers tokenize;
// "08" or "1.2.3" lex as single tokens and are rejected later, if
// ever, by semantic analysis.
func (l *lexer) lexNumber(start int) token {
	l.pos++
loop:
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case isIdentCont(c) || c == '.':
			l.pos++
		case (c == '+' || c == '-') && isExponentLetter(l.input[l.pos-1]):
			l.pos++
		default:
			break loop
		}
	}
	text := l.input[start:l.pos]
	return token{kind: classifyNumber(text), offset: start, text: text}
}

func classifyNumber(text string) tokenKind {
	if len(text) > 1 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		// Hex constants are floating only with a binary exponent, so
		// 0xe5 stays an integer.
		if strings.ContainsAny(text, "pP") {
			return tokFloat
		}
		return tokInt
	}
	if strings.ContainsAny(text, ".eE") {
		return tokFloat
	}
	return tokInt
}

// lexQuoted scans a string literal or character constant, starting at
// the opening quote (start may be earlier when an encoding prefix was
// consumed). A backslash escapes the next byte. The literal must close
// on the same line.
func (l *lexer) lexQuoted(start int, quote byte, kind tokenKind) (token, *SyntaxError) {
	l.pos++
	for {
		if l.pos >= len(l.input) || l.input[l.pos] == '\n' {
			return token{}, newSyntaxError(l.input, l.pos, string(quote))
		}
		switch l.input[l.pos] {
		case quote:
			l.pos++
			return token{kind: kind, offset: start, text: l.input[start:l.pos]}, nil
		case '\\':
			l.pos += 2
			if l.pos > len(l.input) {
				return token{}, newSyntaxError(l.input, len(l.input), string(quote))
			}
		default:
			l.pos++
		}
	}
}

var punct3 = []string{"<<=", ">>=", "..."}

var punct2 = []string{
	"->", "++", "--", "<<", ">>", "<=", ">=", "==", "!=", "&&", "||",
	"+=", "-=", "*=", "/=", "%=", "&=", "^=", "|=",
}

const punct1 = "[](){}.,;:?~!%^&*-+=<>|/"

func (l *lexer) lexPunct() string {
	rest := l.input[l.pos:]
	for _, p := range punct3 {
		if strings.HasPrefix(rest, p) {
			l.pos += len(p)
			return p
		}
	}
	for _, p := range punct2 {
		if strings.HasPrefix(rest, p) {
			l.pos += len(p)
			return p
		}
	}
	if strings.IndexByte(punct1, rest[0]) >= 0 {
		l.pos++
		return rest[:1]
	}
	return ""
}

var stringPrefixes = map[string]bool{"L": true, "u": true, "U": true, "u8": true}

var charPrefixes = map[string]bool{"L": true, "u": true, "U": true}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool { return isIdentStart(c) || isDigit(c) }

func isExponentLetter(c byte) bool {
	return c == 'e' || c == 'E' || c == 'p' || c == 'P'
}
