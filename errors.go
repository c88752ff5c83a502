package csyntax

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/cfacet/csyntax/source"
)

// SyntaxError reports that the parser could not complete a parse. It
// carries the furthest offset the grammar reached and every token that
// would have been accepted there, together with the full preprocessed
// text so that positions in the original files can be recovered
// without re-parsing.
type SyntaxError struct {
	// Source is the preprocessed text that failed to parse.
	Source string
	// Line and Column are the 1-based position of Offset counted over
	// Source's physical lines, ignoring line markers. For positions in
	// the original files use ResolveLocation.
	Line   int
	Column int
	// Offset is the byte offset in Source of the token that could not
	// be matched.
	Offset int
	// Expected lists the tokens acceptable at Offset, sorted and
	// deduplicated.
	Expected []string
}

// ExpectedTokens renders the expected-token list as a quoted,
// comma-separated string, such as `';', '}'`.
func (e *SyntaxError) ExpectedTokens() string {
	var sb strings.Builder
	for i, tok := range e.Expected {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "'%s'", tok)
	}
	return sb.String()
}

// ResolveLocation maps Offset back through the line markers in Source
// to a file and line of the original input. The second return value is
// the include chain for that file, innermost includer first; it is
// empty when the error is in the main file.
func (e *SyntaxError) ResolveLocation() (source.Location, []source.Location) {
	return source.LocationForOffset(e.Source, e.Offset)
}

// Error renders the diagnostic with the resolved file and line and the
// raw column, followed by one "included from" line per entry in the
// include chain.
func (e *SyntaxError) Error() string {
	loc, chain := e.ResolveLocation()
	var sb strings.Builder
	fmt.Fprintf(&sb, "unexpected token at %q line %d column %d", loc.File, loc.Line, e.Column)
	if len(e.Expected) > 0 {
		sb.WriteString(", expected ")
		sb.WriteString(e.ExpectedTokens())
	}
	for _, inc := range chain {
		fmt.Fprintf(&sb, "\n  included from %s:%d", inc.File, inc.Line)
	}
	return sb.String()
}

// tabstopWidth is the rendered width of a tab stop in Snippet output.
const tabstopWidth = 4

// Snippet returns the line of preprocessed text containing the error
// with a caret underneath marking the offending token. Tabs are
// expanded so the caret lines up; widths are measured in terminal
// columns, not bytes.
func (e *SyntaxError) Snippet() string {
	start := strings.LastIndexByte(e.Source[:e.Offset], '\n') + 1
	end := len(e.Source)
	if i := strings.IndexByte(e.Source[e.Offset:], '\n'); i >= 0 {
		end = e.Offset + i
	}
	line := e.Source[start:end]

	var sb strings.Builder
	caret := stringWidth(0, line[:e.Offset-start], &sb)
	stringWidth(caret, line[e.Offset-start:], &sb)
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", caret))
	sb.WriteByte('^')
	return sb.String()
}

// stringWidth returns the rendered width of text when placed at the
// given column, expanding tabs to tabstopWidth-column stops. When out
// is non-nil the expanded text is also written to it.
func stringWidth(column int, text string, out *strings.Builder) int {
	for text != "" {
		next := text
		i := strings.IndexByte(text, '\t')
		if i >= 0 {
			next, text = text[:i], text[i+1:]
		} else {
			text = ""
		}
		column += uniseg.StringWidth(next)
		if out != nil {
			out.WriteString(next)
		}
		if i >= 0 {
			tab := tabstopWidth - column%tabstopWidth
			column += tab
			if out != nil {
				out.WriteString(strings.Repeat(" ", tab))
			}
		}
	}
	return column
}

// PreprocessorError reports that the external preprocessor could not
// be run, exited non-zero, or produced undecodable output. Err holds
// the captured stderr text when the command ran and failed, or the
// underlying exec error when it could not run at all.
type PreprocessorError struct {
	Err error
}

func (e *PreprocessorError) Error() string {
	return "preprocessor error: " + e.Err.Error()
}

func (e *PreprocessorError) Unwrap() error {
	return e.Err
}
