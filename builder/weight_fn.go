package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every arc when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn draws the weight of the next arc a constructor emits.
//
// Generators never return negative or NaN values, so any graph they build is
// a valid input for dijkstra. A nil rng makes every random generator fall
// back to DefaultEdgeWeight, which keeps unseeded builds deterministic.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn ignores rng and returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 { return DefaultEdgeWeight }

// ConstantWeightFn returns value for every arc. Panics if value is negative or NaN.
func ConstantWeightFn(value float64) WeightFn {
	mustWeight("ConstantWeightFn", "value", value)

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn samples U[min, max). min == max yields min.
// Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max float64) WeightFn {
	mustWeight("UniformWeightFn", "min", min)
	if !(max >= min) {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%g, max=%g", min, max))
	}
	span := max - min

	return seeded(func(rng *rand.Rand) float64 {
		return min + rng.Float64()*span
	})
}

// NormalWeightFn samples N(mean, stddev) rounded to an integer cost and
// clipped at 0, which gives plenty of equal-cost ties for path tests.
// Panics if stddev is negative.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if !(stddev >= 0) {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %g", stddev))
	}

	return seeded(func(rng *rand.Rand) float64 {
		return math.Max(0, math.Round(rng.NormFloat64()*stddev+mean))
	})
}

// ExponentialWeightFn samples Exp(rate) rounded to an integer cost: mostly
// cheap arcs with a long tail of expensive ones. Panics unless rate > 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if !(rate > 0) {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %g", rate))
	}

	return seeded(func(rng *rand.Rand) float64 {
		return math.Round(rng.ExpFloat64() / rate)
	})
}

// seeded wraps draw with the nil-rng fallback.
func seeded(draw func(*rand.Rand) float64) WeightFn {
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return draw(rng)
	}
}

func mustWeight(fn, param string, w float64) {
	if w < 0 || math.IsNaN(w) {
		panic(fmt.Sprintf("%s: %s must be a non-negative number, got %g", fn, param, w))
	}
}

// WithConstantWeight sets every arc to w.
func WithConstantWeight(w float64) BuilderOption { return WithWeightFn(ConstantWeightFn(w)) }

// WithUniformWeight draws arc weights from U[min, max).
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight draws integer arc weights from N(mean, stddev), clipped at 0.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight draws integer arc weights from Exp(rate).
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
