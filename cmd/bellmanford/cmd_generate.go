package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bellmanford/builder"
	"github.com/katalvlaran/bellmanford/core"
	"github.com/katalvlaran/bellmanford/graphfile"
)

var generateFlags struct {
	topology  string
	nodes     int
	density   float64
	weights   string
	minWeight int64
	maxWeight int64
	mean      float64
	stddev    float64
	seed      int64
	source    int
	name      string
	output    string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a generated graph file",
	Long: "generate builds a graph from a named topology with seeded random weights\n" +
		"and writes it in the format run and new read. Topologies: " + strings.Join(builder.Topologies, ", ") + ".",
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&generateFlags.topology, "topology", "t", builder.TopologyRandom, "Graph shape")
	f.IntVarP(&generateFlags.nodes, "nodes", "n", 6, "Number of nodes")
	f.Float64Var(&generateFlags.density, "density", 0.3, "Edge probability for the random topology")
	f.StringVar(&generateFlags.weights, "weights", weightsUniform, "Weight distribution: uniform or normal")
	f.Int64Var(&generateFlags.minWeight, "min-weight", -2, "Smallest edge weight (uniform)")
	f.Int64Var(&generateFlags.maxWeight, "max-weight", 10, "Largest edge weight (uniform)")
	f.Float64Var(&generateFlags.mean, "mean", 3, "Mean edge weight (normal)")
	f.Float64Var(&generateFlags.stddev, "stddev", 2, "Weight standard deviation (normal)")
	f.Int64Var(&generateFlags.seed, "seed", 1, "Random seed")
	f.IntVar(&generateFlags.source, "source", 0, "Source node written to the file")
	f.StringVar(&generateFlags.name, "name", "", "Graph name (default: topology-nodes-seed)")
	f.StringVarP(&generateFlags.output, "output", "o", "", "Output file (default: stdout)")
}

// Weight distributions accepted by --weights.
const (
	weightsUniform = "uniform"
	weightsNormal  = "normal"
)

func weightOption() (builder.BuilderOption, error) {
	switch generateFlags.weights {
	case weightsUniform:
		if generateFlags.maxWeight < generateFlags.minWeight {
			return nil, fmt.Errorf("--max-weight %d is below --min-weight %d", generateFlags.maxWeight, generateFlags.minWeight)
		}
		return builder.WithUniformWeight(generateFlags.minWeight, generateFlags.maxWeight), nil
	case weightsNormal:
		if generateFlags.stddev < 0 {
			return nil, fmt.Errorf("--stddev %g is negative", generateFlags.stddev)
		}
		return builder.WithNormalWeight(generateFlags.mean, generateFlags.stddev), nil
	default:
		return nil, fmt.Errorf("unknown --weights %q (want %s or %s)", generateFlags.weights, weightsUniform, weightsNormal)
	}
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	weights, err := weightOption()
	if err != nil {
		return err
	}
	con, err := builder.ByName(generateFlags.topology, generateFlags.nodes, generateFlags.density)
	if err != nil {
		return err
	}
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithMaxNodes(cfg.MaxNodes)},
		[]builder.BuilderOption{
			builder.WithSeed(generateFlags.seed),
			weights,
		},
		con)
	if err != nil {
		return err
	}
	if generateFlags.source < 0 || generateFlags.source >= g.NodeCount() {
		return fmt.Errorf("--source %d is outside [0,%d)", generateFlags.source, g.NodeCount())
	}

	name := generateFlags.name
	if name == "" {
		name = fmt.Sprintf("%s-%d-%d", generateFlags.topology, generateFlags.nodes, generateFlags.seed)
	}
	data, err := graphfile.FromGraph(name, g, generateFlags.source).Marshal()
	if err != nil {
		return err
	}
	if generateFlags.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(generateFlags.output, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d nodes, %d edges)\n", generateFlags.output, g.NodeCount(), g.EdgeCount())

	return nil
}
