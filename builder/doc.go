// Package builder provides deterministic fixture generators for dense APSP
// inputs. Every constructor writes direct edges into a fresh *store.Graph, so
// the result is ready for blockfw.Run or store.FloydWarshall.
//
// The package offers:
//
//   - Build(n, opts, cons...): allocate an n-vertex graph and apply
//     constructors in order; later edges overwrite earlier ones.
//   - Topologies: Chain, Cycle, Complete, Grid(rows, cols), RandomDense(p).
//   - Configuration (BuilderOption): WithSeed / WithRand for stochastic
//     constructors, WithWeightFn / WithConstantWeight / WithUniformWeight for
//     edge weights.
//
// Guarantees:
//
//   - Same n, options, seed and constructor order ⇒ bit-identical graphs.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource) and never panic.
package builder
