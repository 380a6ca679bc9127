// SPDX-License-Identifier: MIT

// Package report renders read-only summaries of a relaxation run: the edge
// list, final distances, the distance history and the negative-cycle flag
// together with the nodes that cycle makes unbounded.
//
// A Report is a detached copy; building one never touches the engine and
// later steps never change an existing Report.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/bellmanford/bellmanford"
)

// Format selects a Write encoding.
type Format string

// Supported formats.
const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ErrUnknownFormat is returned by Write for an unsupported Format.
var ErrUnknownFormat = fmt.Errorf("report: unknown format")

// Report is the export collaborator's input.
type Report struct {
	Title         string                   `json:"title,omitempty"`
	Source        int                      `json:"sourceNode"`
	Status        string                   `json:"status"`
	NegativeCycle bool                     `json:"negativeCycle"`
	Iteration     int                      `json:"iteration"`
	Affected      []int                    `json:"affectedNodes,omitempty"`
	Edges         []bellmanford.Edge       `json:"edges"`
	Distances     []bellmanford.Distance   `json:"distances"`
	History       [][]bellmanford.Distance `json:"distanceHistory"`
}

// FromState captures s.
func FromState(title string, s bellmanford.State) Report {
	return Report{
		Title:         title,
		Source:        s.Source(),
		Status:        s.Status().String(),
		NegativeCycle: s.Status() == bellmanford.NegativeCycleDetected,
		Iteration:     s.Iteration(),
		Affected:      bellmanford.AffectedNodes(s),
		Edges:         s.Edges(),
		Distances:     s.Distances(),
		History:       s.History(),
	}
}

// Write renders r to w in format f.
func Write(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatTable, "":
		return WriteTable(w, r)
	case FormatMarkdown:
		return WriteMarkdown(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WriteTable renders r as box-drawn text tables.
func WriteTable(w io.Writer, r Report) error {
	_, err := fmt.Fprint(w, r.summary(), "\n",
		r.edgeTable().Render(), "\n",
		r.distanceTable().Render(), "\n",
		r.historyTable().Render(), "\n")

	return err
}

// WriteMarkdown renders r as GitHub-flavoured Markdown tables.
func WriteMarkdown(w io.Writer, r Report) error {
	heading := "# Bellman-Ford report"
	if r.Title != "" {
		heading += ": " + r.Title
	}
	_, err := fmt.Fprint(w, heading, "\n\n", r.summary(), "\n\n",
		"## Edges\n\n", r.edgeTable().RenderMarkdown(), "\n\n",
		"## Distances\n\n", r.distanceTable().RenderMarkdown(), "\n\n",
		"## Distance history\n\n", r.historyTable().RenderMarkdown(), "\n")

	return err
}

// WriteJSON renders r as indented JSON; unreachable distances are "inf".
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

func (r Report) summary() string {
	s := fmt.Sprintf("Source: %d  Status: %s  Iterations: %d", r.Source, r.Status, r.Iteration)
	if r.NegativeCycle {
		s += "  WARNING: negative cycle reachable from the source; distances are not final"
		if len(r.Affected) > 0 {
			s += fmt.Sprintf("\nUnbounded nodes: %v", r.Affected)
		}
	}

	return s
}

func (r Report) edgeTable() table.Writer {
	t := newTable("Edges")
	t.AppendHeader(table.Row{"#", "From", "To", "Weight"})
	for i, e := range r.Edges {
		t.AppendRow(table.Row{i, e.From, e.To, e.Weight})
	}

	return t
}

func (r Report) distanceTable() table.Writer {
	t := newTable("Distances")
	t.AppendHeader(table.Row{"Node", "Distance"})
	for v, d := range r.Distances {
		t.AppendRow(table.Row{v, d.String()})
	}

	return t
}

func (r Report) historyTable() table.Writer {
	t := newTable("Distance history")
	header := table.Row{"Step"}
	for v := range r.Distances {
		header = append(header, "Node "+strconv.Itoa(v))
	}
	t.AppendHeader(header)
	for i, snap := range r.History {
		row := table.Row{i}
		for _, d := range snap {
			row = append(row, d.String())
		}
		t.AppendRow(row)
	}

	return t
}

func newTable(title string) table.Writer {
	t := table.NewWriter()
	t.SetTitle(title)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault

	return t
}
