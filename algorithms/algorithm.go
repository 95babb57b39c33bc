package algorithms

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned for names or values outside the enumeration.
var ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

// Algorithm names one animated traversal.
type Algorithm int

const (
	BFS Algorithm = iota + 1
	DFS
	Dijkstra
)

var names = map[Algorithm]string{
	BFS:      "bfs",
	DFS:      "dfs",
	Dijkstra: "dijkstra",
}

// All lists every algorithm in menu order.
func All() []Algorithm { return []Algorithm{BFS, DFS, Dijkstra} }

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	if n, ok := names[a]; ok {
		return n
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool {
	_, ok := names[a]
	return ok
}

// Parse maps a case-insensitive name to an Algorithm.
func Parse(s string) (Algorithm, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for a, n := range names {
		if n == want {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
