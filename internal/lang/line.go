package lang

import "strings"

// LineKind tags a classified source line.
type LineKind int

const (
	LineOther  LineKind = iota // anything the grammar ignores
	LineGame                   // game <Identifier> { ... }
	LineObject                 // object <Identifier> { ... }
	LineImport                 // import "<path>"
	LineUI                     // ui <Identifier> { ... }
	LineAudio                  // audio { ... }
)

// Line is one classified, whitespace-trimmed source line.
type Line struct {
	Kind LineKind
	Arg  string // second token: object name, asset ref (quotes stripped), block name
	Rest string // raw remainder after the keyword, kept for future grammar extensions
	Raw  string
}

// classify tags a trimmed, non-empty line. Keywords match only as the leading
// whitespace-delimited token, never as a substring.
func classify(trimmed string) Line {
	l := Line{Kind: LineOther, Raw: trimmed}

	keyword, rest, _ := strings.Cut(trimmed, " ")
	switch keyword {
	case "game":
		l.Kind = LineGame
	case "object":
		l.Kind = LineObject
	case "import":
		l.Kind = LineImport
	case "ui":
		l.Kind = LineUI
	case "audio":
		l.Kind = LineAudio
	default:
		return l
	}
	if l.Kind != LineAudio && rest == "" {
		// Keyword with no argument; the reduced grammar has nothing to bind.
		l.Kind = LineOther
		return l
	}

	l.Rest = strings.TrimSpace(rest)
	if fields := strings.Fields(rest); len(fields) > 0 {
		l.Arg = strings.Trim(fields[0], `"`)
	}
	return l
}
