// Package source maps byte offsets in preprocessed C text back to locations
// in the original source files.
//
// Preprocessors flatten the include tree into a single text stream, leaving
// behind line-marker directives of the form
//
//	# <line> "<file>" <flags...>
//
// whenever the file or line context changes. This package re-reads those
// markers to recover, for any byte offset, the original file and line the
// offset came from, along with the chain of inclusion points that brought
// that file into the stream. Lookups are total: malformed markers are treated
// as ordinary text and never produce an error, so positions degrade to best
// effort rather than failing.
package source

import (
	"strings"
)

// UnknownFile is the file name reported for text that carries no line-marker
// directives, such as source handed directly to the parser without running a
// preprocessor.
const UnknownFile = "<input>"

// Location is a resolved position in an original source file.
type Location struct {
	// Name of the source file, as reported by the preprocessor.
	File string
	// 1-based line number within File.
	Line int
}

// Position is a naive line/column pair computed from the text alone, counting
// real newlines and ignoring line-marker directives. Inside preprocessed text
// it does not correspond to the original source; it exists so that raw parser
// diagnostics and resolved locations are derived from the same arithmetic.
type Position struct {
	// 1-based line number, counting newlines from the start of the text.
	Line int
	// 1-based column, in bytes since the last newline. Not reset by
	// line-marker directives.
	Column int
}

// PositionForOffset computes the naive position of offset within text.
// Offsets outside [0, len(text)] are clamped.
func PositionForOffset(text string, offset int) Position {
	offset = clampOffset(text, offset)
	before := text[:offset]
	line := 1 + strings.Count(before, "\n")
	column := offset - strings.LastIndexByte(before, '\n')
	return Position{Line: line, Column: column}
}

// LocationForOffset resolves offset to its original-file location and the
// include chain active at that point. The chain lists the inclusion points
// outward: the first entry is the position in the file that directly included
// the resolved file, the last is the position in the outermost file.
//
// If no line marker precedes offset, the whole text is treated as a single
// file named UnknownFile starting at line 1.
func LocationForOffset(text string, offset int) (Location, []Location) {
	offset = clampOffset(text, offset)

	loc := Location{File: UnknownFile, Line: 1}
	var stack []Location

	for start := 0; start < len(text); {
		end := strings.IndexByte(text[start:], '\n')
		if end < 0 {
			end = len(text)
		} else {
			end += start
		}
		if offset <= end {
			// Target is on this line; the marker on it, if any, has
			// not taken effect yet.
			break
		}

		if m, ok := parseLineMarker(text[start:end]); ok {
			if m.push {
				// The marker stands where the include directive stood,
				// so loc is the inclusion point in the including file.
				stack = append(stack, loc)
			}
			if m.pop && len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			if m.file != "" {
				loc.File = m.file
			}
			loc.Line = m.line
		} else {
			loc.Line++
		}
		start = end + 1
	}

	// Innermost includer first.
	chain := make([]Location, 0, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		chain = append(chain, stack[i])
	}
	return loc, chain
}

func clampOffset(text string, offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(text) {
		return len(text)
	}
	return offset
}

// lineMarker is one parsed `# <line> "<file>" <flags...>` directive. The file
// may be empty when the marker restates only the line number. Flag 1 records
// the start of an included file, flag 2 the return to the including file;
// flags 3 and 4 (system header, extern "C") carry no location information.
type lineMarker struct {
	line int
	file string
	push bool
	pop  bool
}

// parseLineMarker interprets a single line of text as a line-marker
// directive. Lines that do not match the directive syntax exactly, including
// other preprocessor residue such as #pragma, report ok == false and are
// counted as ordinary text by the caller.
func parseLineMarker(line string) (m lineMarker, ok bool) {
	rest, ok := strings.CutPrefix(strings.TrimLeft(line, " \t"), "#")
	if !ok {
		return lineMarker{}, false
	}
	rest = strings.TrimLeft(rest, " \t")
	// GNU cpp writes "# 7", but "#line 7" can survive too.
	rest, _ = strings.CutPrefix(rest, "line")
	rest = strings.TrimLeft(rest, " \t")

	digits := len(rest)
	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			digits = i
			break
		}
	}
	if digits == 0 {
		return lineMarker{}, false
	}
	for _, c := range []byte(rest[:digits]) {
		m.line = m.line*10 + int(c-'0')
	}
	rest = strings.TrimLeft(rest[digits:], " \t")

	if strings.HasPrefix(rest, `"`) {
		var file string
		file, rest, ok = scanQuoted(rest)
		if !ok {
			return lineMarker{}, false
		}
		m.file = file
	}

	for _, f := range strings.Fields(rest) {
		switch f {
		case "1":
			m.push = true
		case "2":
			m.pop = true
		case "3", "4":
			// system header / implicit extern "C"; irrelevant here
		default:
			return lineMarker{}, false
		}
	}
	return m, true
}

// scanQuoted consumes a leading double-quoted string, honoring backslash
// escapes the way cpp writes them into marker file names.
func scanQuoted(s string) (content, rest string, ok bool) {
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '"':
			return b.String(), s[i+1:], true
		case '\\':
			if i+1 == len(s) {
				return "", "", false
			}
			i++
			b.WriteByte(s[i])
		default:
			b.WriteByte(s[i])
		}
	}
	return "", "", false
}
