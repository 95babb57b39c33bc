// SPDX-License-Identifier: MIT
//
// File: scenario.go
// Role: Scenario types, YAML decoding, validation, and replay into a core.Graph.

package scenario

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoviz/algorithms"
	"github.com/katalvlaran/algoviz/core"
)

// Sentinel errors.
var (
	// ErrUnknownNode indicates an edge or start referring to an undeclared name.
	ErrUnknownNode = errors.New("scenario: unknown node")

	// ErrDuplicateNode indicates two nodes declared with the same name.
	ErrDuplicateNode = errors.New("scenario: duplicate node name")

	// ErrEmptyName indicates a node declared without a name.
	ErrEmptyName = errors.New("scenario: node name is empty")
)

// Node is one node declaration. X and Y are the canvas anchor.
type Node struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Edge is one edge declaration between two named nodes.
type Edge struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// Scenario is a complete editing script.
type Scenario struct {
	Directed bool `yaml:"directed"`
	// Radius overrides core.DefaultNodeRadius when positive.
	Radius float64 `yaml:"radius,omitempty"`
	// Start names the start node; empty keeps the first declared node.
	Start string `yaml:"start,omitempty"`
	// Algorithm is the suggested traversal; zero when absent.
	Algorithm algorithms.Algorithm `yaml:"algorithm,omitempty"`
	Nodes     []Node               `yaml:"nodes"`
	Edges     []Edge               `yaml:"edges"`
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scenario %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %s", path)
	}
	return s, nil
}

// Parse decodes a YAML scenario and validates it. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode yaml")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that names are unique and non-empty and that every edge
// and the start refer to declared nodes.
func (s *Scenario) Validate() error {
	names := make(map[string]struct{}, len(s.Nodes))
	for i, n := range s.Nodes {
		if n.Name == "" {
			return errors.Wrapf(ErrEmptyName, "node #%d", i)
		}
		if _, dup := names[n.Name]; dup {
			return errors.Wrapf(ErrDuplicateNode, "%q", n.Name)
		}
		names[n.Name] = struct{}{}
	}
	for i, e := range s.Edges {
		for _, end := range [2]string{e.From, e.To} {
			if _, ok := names[end]; !ok {
				return errors.Wrapf(ErrUnknownNode, "edge #%d (%s→%s): %q", i, e.From, e.To, end)
			}
		}
	}
	if s.Start != "" {
		if _, ok := names[s.Start]; !ok {
			return errors.Wrapf(ErrUnknownNode, "start %q", s.Start)
		}
	}
	return nil
}

// Build replays the scenario into a new graph and returns it together with
// the name → node ID mapping. opts are applied after the scenario's own
// directed and radius settings. Core rejections (overlap, duplicate edge,
// self-loop, negative weight) are wrapped and returned.
func (s *Scenario) Build(opts ...core.GraphOption) (*core.Graph, map[string]string, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}

	gopts := []core.GraphOption{core.WithDirected(s.Directed)}
	if s.Radius > 0 {
		gopts = append(gopts, core.WithNodeRadius(s.Radius))
	}
	g := core.NewGraph(append(gopts, opts...)...)

	ids := make(map[string]string, len(s.Nodes))
	for _, n := range s.Nodes {
		id, err := g.AddNode(core.Point{X: n.X, Y: n.Y})
		if err != nil {
			return nil, nil, errors.Wrapf(err, "node %q at (%g,%g)", n.Name, n.X, n.Y)
		}
		ids[n.Name] = id
	}
	for _, e := range s.Edges {
		if _, err := g.AddEdge(ids[e.From], ids[e.To], e.Weight); err != nil {
			return nil, nil, errors.Wrapf(err, "edge %s→%s", e.From, e.To)
		}
	}
	if s.Start != "" {
		if err := g.SetStartNode(ids[s.Start]); err != nil {
			return nil, nil, errors.Wrapf(err, "start %q", s.Start)
		}
	}
	return g, ids, nil
}

// Labels inverts a name → ID mapping returned by Build.
func Labels(ids map[string]string) map[string]string {
	out := make(map[string]string, len(ids))
	for name, id := range ids {
		out[id] = name
	}
	return out
}
