package parser

import (
	"fmt"
	"strings"

	"github.com/cfacet/csyntax/source"
)

// SyntaxError describes the furthest point the parser managed to reach
// before no grammar rule could continue.
type SyntaxError struct {
	// Offset is the byte offset of the token that could not be matched
	// (len of the text when the input ended too early).
	Offset int
	// Line and Column are the 1-based position of Offset counted over
	// the parsed text's physical lines. Preprocessor line markers are
	// not applied here; callers that want positions in the original
	// files resolve Offset with the source package.
	Line   int
	Column int
	// Expected holds a sorted, deduplicated description of every token
	// the grammar would have accepted at Offset. Entries are literal
	// token spellings ("}", "else") or token class names
	// ("identifier", "expression", "type name").
	Expected []string
}

func (e *SyntaxError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "unexpected token at line %d column %d", e.Line, e.Column)
	for i, tok := range e.Expected {
		if i == 0 {
			sb.WriteString(", expected ")
		} else {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "'%s'", tok)
	}
	return sb.String()
}

func newSyntaxError(text string, offset int, expected ...string) *SyntaxError {
	pos := source.PositionForOffset(text, offset)
	return &SyntaxError{
		Offset:   offset,
		Line:     pos.Line,
		Column:   pos.Column,
		Expected: expected,
	}
}
