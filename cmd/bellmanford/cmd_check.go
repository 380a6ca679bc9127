package main

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bellmanford/bellmanford"
	"github.com/katalvlaran/bellmanford/builder"
	"github.com/katalvlaran/bellmanford/core"
	"github.com/katalvlaran/bellmanford/logging"
)

var checkFlags struct {
	graphs    int
	nodes     int
	density   float64
	maxWeight int64
	seed      int64
	workers   int
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Cross-check the step engine against Dijkstra on random non-negative graphs",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.IntVar(&checkFlags.graphs, "graphs", 500, "Random graphs to check")
	f.IntVar(&checkFlags.nodes, "nodes", 8, "Maximum nodes per graph")
	f.Float64Var(&checkFlags.density, "density", 0.3, "Probability of each ordered edge")
	f.Int64Var(&checkFlags.maxWeight, "max-weight", 20, "Largest edge weight")
	f.Int64Var(&checkFlags.seed, "seed", 1, "Random seed; graph i uses seed+i")
	f.IntVar(&checkFlags.workers, "workers", 0, "Worker pool size (default from config)")
}

// checkJob is one generated graph.
type checkJob struct {
	index int
	graph *core.Graph
	err   error
}

func runCheck(cmd *cobra.Command, _ []string) error {
	if checkFlags.graphs < 1 || checkFlags.nodes < 1 || checkFlags.maxWeight < 0 {
		return errors.New("--graphs and --nodes must be positive and --max-weight non-negative")
	}
	if checkFlags.density < 0 || checkFlags.density > 1 {
		return fmt.Errorf("--density must be within [0,1], got %g", checkFlags.density)
	}
	workers := cfg.Check.Workers
	if checkFlags.workers > 0 {
		workers = checkFlags.workers
	}
	log := logging.New("check")

	var (
		wg     sync.WaitGroup
		passed atomic.Int64
		jobs   = make([]*checkJob, checkFlags.graphs)
	)
	pool, err := ants.NewPoolWithFunc(workers, func(arg any) {
		defer wg.Done()
		job := arg.(*checkJob)
		if job.err != nil {
			return
		}
		start, err := bellmanford.ResetGraph(job.graph, 0)
		if err != nil {
			job.err = err
			return
		}
		if _, job.err = verify(job.graph, 0, bellmanford.Run(start, 0)); job.err == nil {
			passed.Add(1)
		}
	})
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	for i := range jobs {
		g, err := randomGraph(checkFlags.seed + int64(i))
		jobs[i] = &checkJob{index: i, graph: g, err: err}
		wg.Add(1)
		if err := pool.Invoke(jobs[i]); err != nil {
			wg.Done()
			return fmt.Errorf("submit graph %d: %w", i, err)
		}
	}
	wg.Wait()

	out := cmd.OutOrStdout()
	var failed []error
	for _, job := range jobs {
		if job.err != nil {
			failed = append(failed, fmt.Errorf("graph %d (seed %d): %w", job.index, checkFlags.seed+int64(job.index), job.err))
		}
	}
	log.Info("check finished", "graphs", len(jobs), "passed", passed.Load(), "workers", workers)
	fmt.Fprintf(out, "%d/%d graphs match dijkstra\n", passed.Load(), len(jobs))

	return errors.Join(failed...)
}

// randomGraph builds a graph with 1..nodes nodes and weights in [0, max-weight].
func randomGraph(seed int64) (*core.Graph, error) {
	rng := rand.New(rand.NewSource(seed))
	n := 1 + rng.Intn(checkFlags.nodes)

	return builder.BuildGraph(nil,
		[]builder.BuilderOption{
			builder.WithRand(rng),
			builder.WithUniformWeight(0, checkFlags.maxWeight),
			builder.WithSelfLoops(),
		},
		builder.RandomSparse(n, checkFlags.density))
}
