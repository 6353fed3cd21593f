// Package lang implements the Nex scene language: a line-oriented grammar with
// a small fixed vocabulary. Each trimmed line is classified into a tagged kind
// and the parser switches on the kind, so extending the grammar means adding a
// classifier case rather than another prefix check.
package lang

import (
	"fmt"
	"strings"

	"github.com/nexgo/runtime/internal/scene"
)

// SyntaxError reports source text the parser rejected.
type SyntaxError struct {
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.Reason)
}

// Parse builds a scene graph from source text.
//
// The mandatory marker keyword "game" must appear somewhere in the text;
// otherwise Parse fails with *SyntaxError. Object declarations always get the
// default transform; inline attributes written on the same line are carried
// on Line.Rest but deliberately not interpreted, a limit of the reduced
// grammar.
func Parse(text string) (*scene.Graph, error) {
	if !strings.Contains(text, "game") {
		return nil, &SyntaxError{Reason: `source must declare a "game" block`}
	}

	g := scene.NewGraph()
	for _, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		line := classify(trimmed)
		switch line.Kind {
		case LineGame:
			if g.Name == "" {
				g.Name = line.Arg
			}
		case LineObject:
			g.Objects = append(g.Objects, scene.NewObject(line.Arg))
		case LineImport:
			g.Assets = append(g.Assets, line.Arg)
		case LineUI:
			g.UI = append(g.UI, scene.UINode{Raw: line.Raw})
		case LineAudio, LineOther:
			// Accepted but not structured by the reduced grammar.
		}
	}
	return g, nil
}
