// SPDX-License-Identifier: MIT
//
// File: frame.go
// Role: Text formatting of one snapshot.

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/algoviz/core"
)

// Option configures Frame and Loop.
type Option func(*options)

type options struct {
	palette Palette
	color   bool
	labels  map[string]string
}

func newOptions(opts ...Option) options {
	o := options{palette: DefaultPalette()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPalette replaces the default palette.
func WithPalette(p Palette) Option {
	return func(o *options) { o.palette = p }
}

// WithColor enables ANSI colouring of state names.
func WithColor(on bool) Option {
	return func(o *options) { o.color = on }
}

// WithLabels shows labels[id] instead of node IDs where present.
func WithLabels(labels map[string]string) Option {
	return func(o *options) { o.labels = labels }
}

func (o options) name(id string) string {
	if l, ok := o.labels[id]; ok && l != "" {
		return l
	}
	return id
}

func (o options) state(name string, c Colour) string {
	if o.color {
		return c.Paint(name)
	}
	return name
}

func distance(d int64) string {
	if d == core.Infinity {
		return "∞"
	}
	return strconv.FormatInt(d, 10)
}

// Frame formats s: a header line, one line per node, one line per edge, all
// in insertion order. The toggled entity is marked with '*'.
func Frame(s core.Snapshot, opts ...Option) string {
	o := newOptions(opts...)
	var b strings.Builder

	start := "-"
	if s.Start != "" {
		start = o.name(s.Start)
	}
	fmt.Fprintf(&b, "nodes=%d edges=%d start=%s\n", len(s.Nodes), len(s.Edges), start)

	for _, n := range s.Nodes {
		mark := " "
		if n.Toggled {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %-8s %-12s dist=%-3s weight=%s",
			mark, o.name(n.ID), o.state(n.State.String(), o.palette.Node(n.State)),
			distance(n.Distance), distance(n.PathWeight))
		if n.Parent != "" {
			fmt.Fprintf(&b, " parent=%s", o.name(n.Parent))
		}
		b.WriteByte('\n')
	}

	arrow := "--"
	if s.Directed {
		arrow = "->"
	}
	for _, e := range s.Edges {
		mark := " "
		if e.Toggled {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %-8s %s %s %s w=%d %s\n",
			mark, e.ID, o.name(e.From), arrow, o.name(e.To), e.Weight,
			o.state(e.State.String(), o.palette.Edge(e.State)))
	}
	return b.String()
}
