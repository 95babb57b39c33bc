package bfs_test

import (
	"testing"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 2000
	pairs := make([][2]int, 0, N-1)
	for i := 0; i+1 < N; i++ {
		pairs = append(pairs, [2]int{i, i + 1})
	}
	g, _ := newGraph(b, false, N, 1, pairs...)

	b.ReportAllocs()
	b.SetBytes(int64(2*N - 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Reset()
		_, _ = bfs.BFS(g)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth D (~2^D−1 nodes).
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10
	nodeCount := (1 << depth) - 1
	pairs := make([][2]int, 0, nodeCount-1)
	for i := 0; 2*i+2 < nodeCount; i++ {
		pairs = append(pairs, [2]int{i, 2*i + 1}, [2]int{i, 2*i + 2})
	}
	g, _ := newGraph(b, false, nodeCount, 1, pairs...)

	b.ReportAllocs()
	b.SetBytes(int64(2*nodeCount - 1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Reset()
		_, _ = bfs.BFS(g, bfs.WithOnStep(func(core.Step) error { return nil }))
	}
}
