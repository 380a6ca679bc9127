// Package bellmanford is a step-by-step Bellman–Ford shortest-path engine
// with negative-cycle detection, a cancellable animation player and
// persistent sessions.
//
// What lives where:
//
//	core/        — thread-safe, index-based directed Graph with signed int64 weights
//	bellmanford/ — the pure step engine: Reset, Step, Run, Serialize/Deserialize
//	snapshot/    — JSON encoding of engine state, validated against a JSON Schema
//	player/      — timer-driven Play/Pause/StepOnce over the engine, one step per tick
//	dijkstra/    — oracle for graphs without negative weights
//	bfs/, dfs/   — reachability and negative-cycle fallout (unbounded nodes)
//	builder/     — deterministic graph generators (path, cycle, grid, random, …)
//	graphfile/   — YAML graph definitions with form-style edge validation
//	report/      — table, Markdown and JSON reports of a run
//	store/       — session persistence: files, libSQL, MySQL or Redis
//	config/      — layered configuration (defaults, YAML/TOML file, env)
//	logging/     — slog setup shared by every component
//	cmd/bellmanford — the CLI tying it together
//
// Quick start:
//
//	g := core.NewGraph(core.WithNodes(4))
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(1, 2, -3)
//	s, _ := bellmanford.ResetGraph(g, 0)
//	for !s.Status().Terminal() {
//		s = bellmanford.Step(s)
//		fmt.Println(s.Action())
//	}
//
// Every engine call is a pure function of its input State; a State is never
// mutated after it is returned, so snapshots can be kept, compared, saved and
// resumed freely.
package bellmanford
