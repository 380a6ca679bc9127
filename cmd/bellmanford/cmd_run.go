package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bellmanford/bellmanford"
	"github.com/katalvlaran/bellmanford/core"
	"github.com/katalvlaran/bellmanford/graphfile"
	"github.com/katalvlaran/bellmanford/logging"
	"github.com/katalvlaran/bellmanford/player"
	"github.com/katalvlaran/bellmanford/report"
	"github.com/katalvlaran/bellmanford/store"
)

var runFlags struct {
	delay    time.Duration
	verify   bool
	save     bool
	quiet    bool
	format   string
	parallel int
}

var runCmd = &cobra.Command{
	Use:   "run <graph.yaml>...",
	Short: "Play graph files to completion, printing every step and a report",
	Long: "Play each graph file from its source node until the run completes or a\n" +
		"negative cycle is detected. Several files are played concurrently; a single\n" +
		"file streams its steps as they happen.",
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	f := runCmd.Flags()
	f.DurationVar(&runFlags.delay, "delay", 0, "Pause between steps (default from config)")
	f.BoolVar(&runFlags.verify, "verify", false, "Cross-check final distances against BFS reachability and, without negative weights, Dijkstra")
	f.BoolVar(&runFlags.save, "save", false, "Save each final state as a session")
	f.BoolVarP(&runFlags.quiet, "quiet", "q", false, "Print only the report")
	f.StringVarP(&runFlags.format, "format", "f", string(report.FormatTable), "Report format: table, markdown, json")
	f.IntVarP(&runFlags.parallel, "parallel", "p", 4, "Graph files played at once")
}

// playback is the outcome of one graph file.
type playback struct {
	def   graphfile.Definition
	graph *core.Graph
	final bellmanford.State
	steps bytes.Buffer // step lines when not streamed
}

func runRun(cmd *cobra.Command, args []string) error {
	if err := checkFormat(runFlags.format); err != nil {
		return err
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	delay := cfg.Delay
	if cmd.Flags().Changed("delay") {
		delay = runFlags.delay
	}

	var sessions store.Store
	if runFlags.save {
		s, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close()
		sessions = s
	}

	results := make([]*playback, len(args))
	stream := len(args) == 1 && !runFlags.quiet
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, runFlags.parallel))
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			res := &playback{}
			var w io.Writer = &res.steps
			if stream {
				w = out
			} else if runFlags.quiet {
				w = io.Discard
			}
			if err := play(gctx, path, delay, w, res); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		if !stream {
			fmt.Fprintf(out, "== %s\n", res.def.Name)
			_, _ = out.Write(res.steps.Bytes())
		}
		if err := report.Write(out, report.FromState(res.def.Name, res.final), report.Format(runFlags.format)); err != nil {
			return err
		}
		if runFlags.verify {
			msg, err := verify(res.graph, res.def.Source, res.final)
			if err != nil {
				return fmt.Errorf("%s: %w", res.def.Name, err)
			}
			fmt.Fprintf(out, "verify: %s\n", msg)
		}
		if sessions != nil {
			sess := &store.Session{Name: res.def.Name, State: res.final}
			if err := sessions.Save(ctx, sess); err != nil {
				return err
			}
			fmt.Fprintf(out, "saved session %s\n", sess.ID)
		}
	}

	return nil
}

// play loads path and steps it to a terminal state, writing one line per step to w.
func play(ctx context.Context, path string, delay time.Duration, w io.Writer, res *playback) error {
	def, err := graphfile.Load(path)
	if err != nil {
		return err
	}
	g, err := def.Build(cfg.MaxNodes)
	if err != nil {
		return err
	}
	start, err := bellmanford.ResetGraph(g, def.Source)
	if err != nil {
		return err
	}
	res.def, res.graph = def, g

	fmt.Fprintf(w, "%4d  %s\n", 0, start.Action())
	p := player.New(start,
		player.WithDelay(delay),
		player.WithLogger(logging.New("player").With(slog.String("graph", def.Name))),
		player.WithObserver(func(ev player.Event) {
			fmt.Fprintf(w, "%4d  %s\n", ev.Seq, ev.State.Action())
		}),
	)
	if p.Play() {
		if err := p.Wait(ctx); err != nil {
			return err
		}
	}
	res.final = p.State()

	return nil
}

func checkFormat(f string) error {
	switch report.Format(f) {
	case report.FormatTable, report.FormatMarkdown, report.FormatJSON:
		return nil
	}

	return fmt.Errorf("%w: %q", report.ErrUnknownFormat, f)
}
