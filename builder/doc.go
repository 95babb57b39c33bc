// Package builder produces laid-out fixture graphs for the traversal
// visualiser: every node gets a canvas position chosen so that node regions
// never overlap, and every edge is added through the public core mutators, so
// a built graph satisfies the same invariants as one edited by hand.
//
// The package offers:
//
//   - One orchestrator: BuildGraph(gopts, bopts, constructors...).
//   - Topology constructors with a fixed layout each:
//     – Cycle(n), Complete(n), RandomSparse(n, p): nodes on a ring.
//     – Star(n), Wheel(n): hub at the ring centre, leaves on the ring.
//     – Path(n): nodes on a horizontal line.
//     – Grid(rows, cols): row-major lattice.
//   - Layout options: WithSpacing (distance between adjacent nodes) and
//     WithOrigin (top-left anchor of the first constructor).
//   - Weight options: WithWeightFn, WithConstantWeight, WithUniformWeight,
//     and the WeightFn helpers they wrap.
//   - Randomness: WithSeed / WithRand, used by RandomSparse and random
//     weight functions.
//
// Guarantees:
//
//   - Determinism: equal inputs, options and seed give identical graphs,
//     including node and edge insertion order (and therefore traversal order).
//   - The first node added by the first constructor is the start node; for
//     Star and Wheel that is the hub.
//   - Constructors composed in one BuildGraph call are placed side by side,
//     left to right, separated by one spacing.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with the method name.
package builder
