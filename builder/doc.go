// Package builder generates deterministic test and demo graphs on the
// index-based core.Graph.
//
// Constructors (Path, Cycle, Star, Complete, Grid, RandomSparse) are
// composed by BuildGraph; each appends its own block of nodes. Edge weights
// come from a WeightFn (constant, uniform or normal; negative weights are
// allowed), and randomness flows only from WithSeed/WithRand, so the same
// inputs always produce the same graph.
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(-2, 10)},
//		builder.RandomSparse(8, 0.3))
package builder
