package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/reachgraph/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic on
// parameters their contracts reject.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"ConstantWeightFn_NaN", func() builder.WeightFn { return builder.ConstantWeightFn(math.NaN()) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"NormalWeightFn_stddevNegative", func() builder.WeightFn { return builder.NormalWeightFn(0, -0.1) }},
		{"ExponentialWeightFn_zeroRate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
		{"ExponentialWeightFn_negativeRate", func() builder.WeightFn { return builder.ExponentialWeightFn(-1) }},
		{"WithWeightFn_nil", func() builder.WeightFn { builder.WithWeightFn(nil); return nil }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestWeightFnBehavior covers nil-RNG fallbacks and sample ranges. Every
// generator must yield weights usable by Dijkstra, i.e. never negative.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	const seed = 42
	fresh := func() *rand.Rand { return rand.New(rand.NewSource(seed)) }

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(fresh()))

	c := builder.ConstantWeightFn(7)
	assert.Equal(t, 7.0, c(nil))
	assert.Equal(t, 7.0, c(fresh()))

	flat := builder.UniformWeightFn(3, 3)
	assert.Equal(t, builder.DefaultEdgeWeight, flat(nil))
	assert.Equal(t, 3.0, flat(fresh()))

	uni := builder.UniformWeightFn(2, 5)
	rng := fresh()
	for i := 0; i < 100; i++ {
		w := uni(rng)
		assert.GreaterOrEqual(t, w, 2.0)
		assert.Less(t, w, 5.0)
	}

	norm := builder.NormalWeightFn(1, 10)
	assert.Equal(t, builder.DefaultEdgeWeight, norm(nil))
	rng = fresh()
	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, norm(rng), 0.0)
	}

	exp := builder.ExponentialWeightFn(1.5)
	assert.Equal(t, builder.DefaultEdgeWeight, exp(nil))
	rng = fresh()
	for i := 0; i < 100; i++ {
		w := exp(rng)
		assert.GreaterOrEqual(t, w, 0.0)
		assert.Equal(t, math.Round(w), w, "integer costs")
	}

	// Same seed, same sequence.
	a, b := fresh(), fresh()
	for i := 0; i < 10; i++ {
		assert.Equal(t, uni(a), uni(b))
	}
}
