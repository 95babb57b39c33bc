// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/algorithms"
	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/config"
)

const triangle = `
algorithm: dijkstra
start: A
nodes:
  - {name: A, x: 0,   y: 0}
  - {name: B, x: 100, y: 0}
  - {name: C, x: 200, y: 0}
edges:
  - {from: A, to: B, weight: 1}
  - {from: B, to: C, weight: 5}
  - {from: A, to: C, weight: 3}
`

// fast keeps command tests quick.
var fast = []string{"--pacing", "1ms", "--frame-rate", "1000"}

func execute(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, context.Background(), "version")
	require.NoError(t, err)
	assert.Equal(t, "algoviz dev\n", out)
}

func TestDemo_Finishes(t *testing.T) {
	out, _, err := execute(t, context.Background(),
		append([]string{"demo", "--shape", "path", "-n", "3"}, fast...)...)
	require.NoError(t, err)

	// current, discover, finish, discover, finish, finish.
	assert.Contains(t, out, "bfs finished in 6 steps")
	assert.Contains(t, out, "step 6 ──")
	assert.Contains(t, out, "node_0 -- node_1 w=1 discovered")
}

func TestDemo_ShapesAndAlgorithms(t *testing.T) {
	for _, shape := range shapes {
		for _, algo := range algorithms.All() {
			t.Run(shape+"/"+algo.String(), func(t *testing.T) {
				out, _, err := execute(t, context.Background(), append([]string{
					"demo", "--shape", shape, "-n", "4", "-a", algo.String(), "--max-weight", "9",
				}, fast...)...)
				require.NoError(t, err)
				assert.Contains(t, out, algo.String()+" finished")
			})
		}
	}
}

func TestDemo_Errors(t *testing.T) {
	ctx := context.Background()

	_, _, err := execute(t, ctx, "demo", "--shape", "hexagon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown shape "hexagon"`)

	_, _, err = execute(t, ctx, "demo", "-a", "astar")
	require.ErrorIs(t, err, algorithms.ErrUnknownAlgorithm)

	_, _, err = execute(t, ctx, "demo", "--shape", "cycle", "-n", "2")
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, _, err = execute(t, ctx, "demo", "--pacing", "0s")
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestRun_Scenario(t *testing.T) {
	path := writeFile(t, "triangle.yaml", triangle)

	out, _, err := execute(t, context.Background(), append([]string{"run", "--scenario", path}, fast...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "nodes=3 edges=3 start=A")
	assert.Contains(t, out, "A -- C w=3 discovered")
	assert.Contains(t, out, "dijkstra finished")

	out, _, err = execute(t, context.Background(), append([]string{"run", "-s", path, "-a", "dfs"}, fast...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "dfs finished")
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()

	_, _, err := execute(t, ctx, "run")
	require.Error(t, err)

	_, _, err = execute(t, ctx, "run", "--scenario", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, ctx, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"),
		"--scenario", writeFile(t, "s.yaml", triangle))
	require.Error(t, err)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, _, err := execute(t, ctx, "demo", "--shape", "wheel", "-n", "6", "--pacing", "1h")
	require.NoError(t, err)
	assert.Contains(t, out, "cancelled")
	assert.NotContains(t, out, "finished")
}

func TestLogging_JSONDebug(t *testing.T) {
	_, logs, err := execute(t, context.Background(), append([]string{
		"demo", "--shape", "path", "-n", "2", "--log-format", "json", "--log-level", "debug",
	}, fast...)...)
	require.NoError(t, err)
	assert.Contains(t, logs, `"msg":"run started"`)
	assert.Contains(t, logs, `"msg":"step"`)
	assert.Contains(t, logs, `"msg":"run ended"`)
	assert.Contains(t, logs, `"algorithm":"bfs"`)
}

func TestConfigFile_FlagsWin(t *testing.T) {
	cfg := writeFile(t, "algoviz.yaml", "pacing: 1h\nframeRate: 1000\nlogLevel: error\n")

	// The file's hour-long pacing is overridden on the command line.
	out, logs, err := execute(t, context.Background(),
		"demo", "--config", cfg, "--shape", "path", "-n", "2", "--pacing", "1ms")
	require.NoError(t, err)
	assert.Contains(t, out, "bfs finished")
	assert.Empty(t, logs)
}
