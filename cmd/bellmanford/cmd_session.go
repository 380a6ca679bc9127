package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/itchyny/gojq"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bellmanford/bellmanford"
	"github.com/katalvlaran/bellmanford/graphfile"
	"github.com/katalvlaran/bellmanford/report"
	"github.com/katalvlaran/bellmanford/snapshot"
	"github.com/katalvlaran/bellmanford/store"
)

var newFlags struct {
	name string
}

var newCmd = &cobra.Command{
	Use:   "new <graph.yaml>",
	Short: "Create a session positioned at the initial state of a graph file",
	Args:  cobra.ExactArgs(1),
	RunE:  runNew,
}

var stepFlags struct {
	count int
}

var stepCmd = &cobra.Command{
	Use:   "step <session-id>",
	Short: "Advance a saved session and save it again",
	Args:  cobra.ExactArgs(1),
	RunE:  runStep,
}

var showFlags struct {
	query string
}

var showCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Print a session's saved state as JSON, optionally filtered by a jq query",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var reportFlags struct {
	format string
}

var reportCmd = &cobra.Command{
	Use:   "report <session-id>",
	Short: "Render edges, distances and distance history of a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List saved sessions",
	Args:  cobra.NoArgs,
	RunE:  runSessions,
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>...",
	Short: "Delete saved sessions",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSessionsDelete,
}

func init() {
	newCmd.Flags().StringVar(&newFlags.name, "name", "", "Session name (default: graph name)")
	stepCmd.Flags().IntVarP(&stepFlags.count, "count", "n", 1, "Steps to take (0 = until terminal)")
	showCmd.Flags().StringVar(&showFlags.query, "query", "", "jq expression applied to the state document")
	reportCmd.Flags().StringVarP(&reportFlags.format, "format", "f", string(report.FormatTable), "Report format: table, markdown, json")
	sessionsCmd.AddCommand(sessionsDeleteCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	def, err := graphfile.Load(args[0])
	if err != nil {
		return err
	}
	g, err := def.Build(cfg.MaxNodes)
	if err != nil {
		return err
	}
	st, err := bellmanford.ResetGraph(g, def.Source)
	if err != nil {
		return err
	}

	s, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer s.Close()

	name := newFlags.name
	if name == "" {
		name = def.Name
	}
	sess := &store.Session{Name: name, State: st}
	if err := s.Save(cmd.Context(), sess); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), sess.ID)

	return nil
}

func runStep(cmd *cobra.Command, args []string) error {
	if stepFlags.count < 0 {
		return fmt.Errorf("--count must be non-negative, got %d", stepFlags.count)
	}
	ctx := cmd.Context()
	s, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	sess, err := s.Load(ctx, args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	st := sess.State
	for i := 0; (stepFlags.count == 0 || i < stepFlags.count) && !st.Status().Terminal(); i++ {
		st = bellmanford.Step(st)
		fmt.Fprintf(out, "%s\n", st.Action())
	}
	if st.Status().Terminal() {
		fmt.Fprintf(out, "status: %s\n", st.Status())
	}
	sess.State = st

	return s.Save(ctx, sess)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	sess, err := s.Load(ctx, args[0])
	if err != nil {
		return err
	}
	doc, err := snapshot.Encode(sess.State)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if showFlags.query == "" {
		_, err = fmt.Fprintf(out, "%s\n", doc)
		return err
	}

	results, err := query(showFlags.query, doc)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	for _, v := range results {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}

	return nil
}

// query runs a sandboxed jq expression over a JSON document.
func query(expr string, doc []byte) ([]any, error) {
	q, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("jq parse error in %q: %w", expr, err)
	}
	code, err := gojq.Compile(q, gojq.WithEnvironLoader(func() []string { return nil }))
	if err != nil {
		return nil, fmt.Errorf("jq compile error in %q: %w", expr, err)
	}
	var input any
	if err := json.Unmarshal(doc, &input); err != nil {
		return nil, err
	}

	var results []any
	iter := code.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			if herr, isHalt := err.(*gojq.HaltError); isHalt && herr.Value() == nil {
				break
			}
			return nil, fmt.Errorf("jq: %w", err)
		}
		results = append(results, v)
	}

	return results, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	if err := checkFormat(reportFlags.format); err != nil {
		return err
	}
	ctx := cmd.Context()
	s, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	sess, err := s.Load(ctx, args[0])
	if err != nil {
		return err
	}

	return report.Write(cmd.OutOrStdout(), report.FromState(sess.Name, sess.State), report.Format(reportFlags.format))
}

func runSessions(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	list, err := s.List(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(list) == 0 {
		fmt.Fprintln(out, "No saved sessions.")
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Status", "Nodes", "Edges", "Updated"})
	for _, sum := range list {
		t.AppendRow(table.Row{sum.ID, sum.Name, sum.Status, sum.Nodes, sum.Edges, sum.UpdatedAt.Local().Format(time.DateTime)})
	}
	fmt.Fprintln(out, t.Render())

	return nil
}

func runSessionsDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	for _, id := range args {
		if err := s.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", id)
	}

	return nil
}
