// SPDX-License-Identifier: MIT
//
// File: palette.go
// Role: State → colour mapping.

package render

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

// Colour is a display colour with its ANSI foreground code.
type Colour struct {
	Name string
	ANSI int
}

// Paint wraps s in the colour's ANSI escape sequence.
func (c Colour) Paint(s string) string {
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", c.ANSI, s)
}

// Standard colours.
var (
	White   = Colour{Name: "white", ANSI: 37}
	Red     = Colour{Name: "red", ANSI: 31}
	Green   = Colour{Name: "green", ANSI: 32}
	Yellow  = Colour{Name: "yellow", ANSI: 33}
	Blue    = Colour{Name: "blue", ANSI: 34}
	Magenta = Colour{Name: "magenta", ANSI: 35}
	Cyan    = Colour{Name: "cyan", ANSI: 36}
)

// Palette maps states to colours. Unmapped states render White.
type Palette struct {
	Nodes map[core.NodeState]Colour
	Edges map[core.EdgeState]Colour
}

// DefaultPalette returns the classic visualiser colours.
func DefaultPalette() Palette {
	return Palette{
		Nodes: map[core.NodeState]Colour{
			core.NodeStart:        Cyan,
			core.NodeCurrent:      Yellow,
			core.NodeUndiscovered: White,
			core.NodeDiscovered:   Red,
			core.NodeDone:         Blue,
			core.NodeTarget:       Green,
			core.NodeNearest:      Magenta,
		},
		Edges: map[core.EdgeState]Colour{
			core.EdgeUndiscovered: White,
			core.EdgeDiscovered:   Red,
			core.EdgeSelected:     Green,
		},
	}
}

// Node returns the colour of a node state.
func (p Palette) Node(s core.NodeState) Colour {
	if c, ok := p.Nodes[s]; ok {
		return c
	}
	return White
}

// Edge returns the colour of an edge state.
func (p Palette) Edge(s core.EdgeState) Colour {
	if c, ok := p.Edges[s]; ok {
		return c
	}
	return White
}
