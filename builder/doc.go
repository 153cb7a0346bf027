// Package builder provides deterministic fixture constructors that assemble
// core.Graph values out of core.Vertex links: paths, cycles, stars, grids,
// wheels, complete and complete bipartite graphs, and seeded random sparse
// graphs.
//
// The package offers the following key components:
//
//   - BuildGraph[V]: creates vertices through the constructors, then indexes
//     them in a core.Graph (so every vertex validates on insertion).
//   - BuilderOption: functional options resolved into an immutable builderConfig.
//     – WithIDScheme:   index → vertex name ("0","1",… by default).
//     – WithSeed/WithRand: RNG for RandomSparse and random weights.
//     – WithWeightFn and the WeightFn family (Constant, Uniform, Normal, Exponential).
//     – WithBidirectional: emit the reverse arc for every edge.
//
// Guarantees:
//
//   - Same inputs, options, seed and constructor order ⇒ identical graphs,
//     including neighbor insertion order.
//   - Option constructors panic on meaningless input; constructors never panic
//     and return sentinel errors wrapped with the method name.
package builder
