// SPDX-License-Identifier: MIT

// Package graphfile reads graph definitions from YAML:
//
//	name: house
//	nodes: 4
//	source: 0
//	edges:
//	  - {from: 0, to: 1, weight: 4}
//	  - {from: 1, to: 2, weight: -3}
//
// Edge fields go through core.Graph.AddEdgeText, so a file is held to the
// same rules as interactive input: every field present, integers only, no
// out-of-range indices, no duplicate (from,to) pairs.
package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bellmanford/core"
)

// ErrInvalid wraps syntax errors in a definition.
var ErrInvalid = errors.New("graphfile: invalid definition")

// Definition is one graph and its start node.
type Definition struct {
	Name   string `yaml:"name,omitempty"`
	Nodes  int    `yaml:"nodes"`
	Source int    `yaml:"source"`
	Edges  []Edge `yaml:"edges"`
}

// Edge keeps the raw text of each field until Build.
type Edge struct {
	From   Field `yaml:"from"`
	To     Field `yaml:"to"`
	Weight Field `yaml:"weight"`
}

// Field is a scalar kept verbatim; a missing or null field is empty.
type Field string

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Field) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: edge field must be a scalar", n.Line)
	}
	if n.Tag == "!!null" {
		*f = ""
		return nil
	}
	*f = Field(n.Value)

	return nil
}

// MarshalYAML implements yaml.Marshaler; integers are written unquoted.
func (f Field) MarshalYAML() (any, error) {
	if n, err := strconv.ParseInt(string(f), 10, 64); err == nil {
		return n, nil
	}

	return string(f), nil
}

// Load reads and parses the file at path.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("graphfile: %w", err)
	}
	def, err := Parse(data)
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	if def.Name == "" {
		def.Name = path
	}

	return def, nil
}

// Parse decodes a single YAML definition. Unknown keys are rejected.
func Parse(data []byte) (Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return Definition{}, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return Definition{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if def.Nodes < 0 {
		return Definition{}, fmt.Errorf("%w: nodes must be non-negative, got %d", ErrInvalid, def.Nodes)
	}

	return def, nil
}

// Build creates the graph, enforcing maxNodes when positive.
// Edge errors wrap core.ErrInvalidEdge and name the offending entry.
func (d Definition) Build(maxNodes int) (*core.Graph, error) {
	if maxNodes > 0 && d.Nodes > maxNodes {
		return nil, fmt.Errorf("%w: %d nodes, limit %d", core.ErrNodeLimit, d.Nodes, maxNodes)
	}
	g := core.NewGraph(core.WithNodes(d.Nodes), core.WithMaxNodes(maxNodes))
	for i, e := range d.Edges {
		if err := g.AddEdgeText(string(e.From), string(e.To), string(e.Weight)); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return g, nil
}

// Marshal renders d as YAML.
func (d Definition) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// FromGraph captures g as a Definition.
func FromGraph(name string, g *core.Graph, source int) Definition {
	d := Definition{Name: name, Nodes: g.NodeCount(), Source: source}
	for _, e := range g.Edges() {
		d.Edges = append(d.Edges, Edge{
			From:   Field(fmt.Sprint(e.From)),
			To:     Field(fmt.Sprint(e.To)),
			Weight: Field(fmt.Sprint(e.Weight)),
		})
	}

	return d
}
