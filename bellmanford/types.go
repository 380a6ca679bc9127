// SPDX-License-Identifier: MIT

package bellmanford

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"

	"github.com/katalvlaran/bellmanford/core"
)

// Sentinel errors returned by the relaxation engine.
var (
	// ErrSourceOutOfRange indicates a source index outside [0, nodeCount).
	ErrSourceOutOfRange = errors.New("bellmanford: source node out of range")

	// ErrMalformedState indicates a Record that cannot describe a reachable
	// engine state: missing fields, inconsistent lengths or out-of-range indices.
	ErrMalformedState = errors.New("bellmanford: malformed state")

	// ErrWeightRange indicates edge weights large enough that a path sum the
	// engine might form could leave the int64 range.
	ErrWeightRange = fmt.Errorf("%w: weights exceed the exact int64 range", core.ErrInvalidEdge)
)

// unreachableText is the JSON form of Unreachable.
const unreachableText = "inf"

// Distance is a best-known path length: either a finite int64 or Unreachable.
// The zero value is Unreachable.
type Distance struct {
	value  int64
	finite bool
}

// Unreachable is the "no path found yet" distance; it compares as +∞.
var Unreachable = Distance{}

// Finite returns the finite distance v.
func Finite(v int64) Distance { return Distance{value: v, finite: true} }

// Value returns the finite value and true, or (0, false) for Unreachable.
func (d Distance) Value() (int64, bool) { return d.value, d.finite }

// Reachable reports whether d is finite.
func (d Distance) Reachable() bool { return d.finite }

// Less reports d < o with Unreachable as +∞.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.finite:
		return false
	case !o.finite:
		return true
	default:
		return d.value < o.value
	}
}

// Plus returns d + w. Unreachable stays Unreachable.
// The sum must fit in int64; States built by Reset or Deserialize guarantee
// that for every edge weight (see checkWeightRange).
func (d Distance) Plus(w int64) Distance {
	if !d.finite {
		return Unreachable
	}

	return Finite(d.value + w)
}

// absU returns |v| as a uint64, exact for math.MinInt64.
func absU(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}

	return uint64(v)
}

// walkBound returns nodeCount·|E|·max|w|, the largest magnitude any distance
// can reach: each finite distance is the length of a walk of at most one edge
// per step, and a run takes at most nodeCount·|E| steps. ok is false when the
// product does not fit in int64.
func walkBound(nodeCount int, edges []Edge) (bound uint64, ok bool) {
	maxW := maxAbsWeight(edges)
	hi, steps := bits.Mul64(uint64(nodeCount), uint64(len(edges)))
	if hi != 0 {
		return 0, false
	}
	hi, bound = bits.Mul64(steps, maxW)
	if hi != 0 || bound > math.MaxInt64 {
		return 0, false
	}

	return bound, true
}

// checkWeightRange rejects edge sets whose walk bound overflows int64.
func checkWeightRange(nodeCount int, edges []Edge) error {
	if _, ok := walkBound(nodeCount, edges); !ok {
		return fmt.Errorf("%w: %d nodes × %d edges with weights up to ±%d",
			ErrWeightRange, nodeCount, len(edges), maxAbsWeight(edges))
	}

	return nil
}

func maxAbsWeight(edges []Edge) uint64 {
	var m uint64
	for _, e := range edges {
		if a := absU(e.Weight); a > m {
			m = a
		}
	}

	return m
}

// String renders finite values in decimal and Unreachable as "∞".
func (d Distance) String() string {
	if !d.finite {
		return "∞"
	}

	return strconv.FormatInt(d.value, 10)
}

// MarshalJSON encodes a finite distance as a number and Unreachable as "inf".
func (d Distance) MarshalJSON() ([]byte, error) {
	if !d.finite {
		return []byte(`"` + unreachableText + `"`), nil
	}

	return []byte(strconv.FormatInt(d.value, 10)), nil
}

// UnmarshalJSON accepts an integer or the string "inf".
func (d *Distance) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != unreachableText {
			return fmt.Errorf("bellmanford: distance %q is neither an integer nor %q", s, unreachableText)
		}
		*d = Unreachable

		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("bellmanford: distance %s: %w", data, err)
	}
	*d = Finite(v)

	return nil
}

// Status is the engine's lifecycle position.
type Status int

const (
	// Running means more steps remain.
	Running Status = iota

	// Completed means all N-1 relaxation passes and the verification pass finished
	// without finding an improving edge.
	Completed

	// NegativeCycleDetected means an edge still improved a distance during the
	// verification pass. It is an outcome, not an error.
	NegativeCycleDetected
)

var statusNames = [...]string{
	Running:               "running",
	Completed:             "completed",
	NegativeCycleDetected: "negative-cycle",
}

// String returns the persisted name of s.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}

	return statusNames[s]
}

// Terminal reports whether further steps are no-ops.
func (s Status) Terminal() bool { return s != Running }

// ParseStatus is the inverse of Status.String.
func ParseStatus(name string) (Status, error) {
	for i, n := range statusNames {
		if n == name {
			return Status(i), nil
		}
	}

	return Running, fmt.Errorf("%w: unknown status %q", ErrMalformedState, name)
}

// Edge is re-exported so engine callers need not import core for literals.
type Edge = core.Edge

// Action texts reported after each transition.
const (
	actionInit      = "Initializing source node distance to 0"
	actionCompleted = "Algorithm completed!"
	actionNoEdges   = "No edges to relax"
)

func actionRelax(e Edge) string {
	return fmt.Sprintf("Relaxing edge %d → %d with weight %d", e.From, e.To, e.Weight)
}

func actionCheck(e Edge) string {
	return fmt.Sprintf("Checking edge %d → %d (no update needed)", e.From, e.To)
}

func actionCycle(e Edge) string {
	return fmt.Sprintf("Negative cycle detected at edge %d → %d", e.From, e.To)
}
