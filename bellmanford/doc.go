// Package bellmanford implements a stepwise Bellman–Ford relaxation engine:
// single-source shortest paths over a directed graph with signed integer
// weights, executed one edge examination at a time so that every intermediate
// state can be observed, animated, saved and restored.
//
// Overview:
//
//   - Reset(nodeCount, edges, source) builds a fresh State: the source at 0,
//     every other node Unreachable, history = [that vector].
//   - Step(state) examines exactly one edge and returns the next State. Edges are
//     visited in insertion order, cyclically; only strict improvements are applied.
//   - Serialize/Deserialize convert a State to and from a Record, the layout of
//     the save/load file. Deserialize fails closed with ErrMalformedState.
//
// Pass budget:
//
//	pass 0 .. N-2   relaxation passes (N-1 passes suffice without negative cycles)
//	pass N-1        verification pass: an improving edge ⇒ NegativeCycleDetected
//	wrap to pass N  ⇒ Completed
//
// State machine:
//
//	Running --(step)--> Running
//	Running --(step: passes exhausted)--> Completed
//	Running --(step: improving edge on pass N-1)--> NegativeCycleDetected
//	Completed / NegativeCycleDetected --(step)--> unchanged
//
// Reset is the only way back to Running. Graphs with zero or one node start
// Completed; a graph without edges completes on its first Step.
//
// Complexity:
//
//   - Step: O(1), or O(V) when a distance changes (the history snapshot).
//   - A full run: O(V·E) steps, O(V·E) time plus O(V) per relaxation.
//   - Space: O(V·H + E) where H ≤ 1 + number of relaxations.
//
// Determinism: results depend only on the input graph, the source and the
// number of steps taken, never on timing. The engine performs no I/O and has
// no internal concurrency; a State is a value and may be handed between
// goroutines freely.
//
// Unreachable is a tagged Distance (the zero value), never a magic integer.
// Reset and Deserialize reject edge sets where nodeCount·|E|·max|w| overflows
// int64 (ErrWeightRange), so every sum a run forms is exact.
package bellmanford
