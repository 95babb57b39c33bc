// SPDX-License-Identifier: MIT
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/algoviz/builder"
)

func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.EqualValues(t, 9, builder.ConstantWeightFn(9)(rng))

	uniform := builder.UniformWeightFn(3, 6)
	assert.Equal(t, builder.DefaultEdgeWeight, uniform(nil))
	seen := map[int64]bool{}
	for i := 0; i < 500; i++ {
		w := uniform(rng)
		assert.True(t, w >= 3 && w <= 6, "uniform out of range: %d", w)
		seen[w] = true
	}
	assert.Len(t, seen, 4)
	assert.EqualValues(t, 4, builder.UniformWeightFn(4, 4)(rng))

	normal := builder.NormalWeightFn(2, 5)
	assert.Equal(t, builder.DefaultEdgeWeight, normal(nil))
	for i := 0; i < 500; i++ {
		assert.GreaterOrEqual(t, normal(rng), int64(0))
	}
}
