package circuit

import (
	"fmt"
	"strings"
)

// Assignment maps declared input names to boolean values.
type Assignment map[string]bool

// Circuit represents a combinational logic circuit: the declared input names,
// the gates wired to each other by name, and one designated output node.
type Circuit struct {
	Inputs []string // Declared input names, in declaration order
	Gates  []Gate   // Gates in declaration order
	Output string   // Node whose value the circuit computes

	gates map[string]*Gate // id -> gate, built once by New
}

// New assembles a circuit from its parts. Gate ids must be pairwise distinct;
// the gate graph is not checked for cycles here, resolution fails fast with a
// CycleError when one is actually reached.
func New(inputs []string, gates []Gate, output string) (*Circuit, error) {
	c := &Circuit{
		Inputs: inputs,
		Gates:  gates,
		Output: output,
		gates:  make(map[string]*Gate, len(gates)),
	}
	for i := range c.Gates {
		g := &c.Gates[i]
		if _, exists := c.gates[g.ID]; exists {
			return nil, &DuplicateGateError{ID: g.ID}
		}
		c.gates[g.ID] = g
	}
	return c, nil
}

// GetGate returns a gate by id, or nil when no gate has that id.
func (c *Circuit) GetGate(id string) *Gate {
	return c.gates[id]
}

// Stats counts the work done by a single resolution pass.
type Stats struct {
	GateEvals int // Gates evaluated; each gate at most once per pass
	MemoHits  int // Node lookups answered from the memo map
}

// Add accumulates another pass's counters.
func (s *Stats) Add(other Stats) {
	s.GateEvals += other.GateEvals
	s.MemoHits += other.MemoHits
}

// resolution carries the mutable state of one top-level evaluation: the memo
// map seeded from the input assignment, the set of gates currently being
// resolved (the cycle guard), and the work counters. It never outlives the
// call that created it, so concurrent evaluations of the same circuit do not
// share state.
type resolution struct {
	values  map[string]bool
	pending map[string]struct{}
	stats   Stats
}

func newResolution(assign Assignment) *resolution {
	r := &resolution{
		values:  make(map[string]bool, len(assign)),
		pending: make(map[string]struct{}),
	}
	for name, value := range assign {
		r.values[name] = value
	}
	return r
}

// Evaluate resolves the circuit's designated output node under one input
// assignment. The assignment must cover every input the output node
// transitively depends on; a missing name surfaces as an UnknownNodeError.
func (c *Circuit) Evaluate(assign Assignment) (bool, error) {
	value, _, err := c.EvaluateWithStats(assign)
	return value, err
}

// EvaluateWithStats is Evaluate plus the resolution counters for the pass.
func (c *Circuit) EvaluateWithStats(assign Assignment) (bool, Stats, error) {
	r := newResolution(assign)
	value, err := c.resolve(r, c.Output)
	return value, r.stats, err
}

// resolve computes the value of a single node, depth-first through its input
// references in declaration order. Every resolved gate value is memoized in
// the resolution context, so a gate feeding several others is evaluated once.
func (c *Circuit) resolve(r *resolution, id string) (bool, error) {
	if value, ok := r.values[id]; ok {
		r.stats.MemoHits++
		return value, nil
	}

	g := c.gates[id]
	if g == nil {
		return false, &UnknownNodeError{ID: id}
	}
	if _, busy := r.pending[id]; busy {
		return false, &CycleError{ID: id}
	}
	r.pending[id] = struct{}{}

	values := make([]bool, len(g.Inputs))
	for i, ref := range g.Inputs {
		value, err := c.resolve(r, ref)
		if err != nil {
			return false, err
		}
		values[i] = value
	}
	delete(r.pending, id)

	value, err := Evaluate(g.Kind, values)
	if err != nil {
		return false, err
	}
	r.values[id] = value
	r.stats.GateEvals++
	return value, nil
}

// String returns a string representation of the circuit structure.
func (c *Circuit) String() string {
	var builder strings.Builder

	builder.WriteString("Inputs: ")
	builder.WriteString(strings.Join(c.Inputs, " "))

	builder.WriteString("\nGates: ")
	for i := range c.Gates {
		builder.WriteString(fmt.Sprintf("%s ", c.Gates[i].String()))
	}

	builder.WriteString(fmt.Sprintf("\nOutput: %s", c.Output))
	return builder.String()
}
