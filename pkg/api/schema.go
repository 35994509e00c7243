package api

import (
	"errors"
	"fmt"

	"github.com/fyerfyer/synlogic/pkg/circuit"
)

// errInputsNotUnique rejects circuit descriptions that declare the same
// input name twice; the text is the response detail.
var errInputsNotUnique = errors.New("Inputs must be unique")

// GateSpec is the wire form of one gate in a circuit description.
type GateSpec struct {
	ID     string   `json:"id"`
	Type   string   `json:"type"`
	Inputs []string `json:"inputs"`
}

// LogicRequest describes a circuit: declared input names, the gates, and the
// id of the node whose value the circuit computes.
type LogicRequest struct {
	Inputs     []string   `json:"inputs"`
	Gates      []GateSpec `json:"gates"`
	OutputGate string     `json:"output_gate"`
}

// Build validates the description and assembles the engine circuit: input
// names must be pairwise distinct, every gate type must parse, and gate ids
// must be unique.
func (r *LogicRequest) Build() (*circuit.Circuit, error) {
	seen := make(map[string]bool, len(r.Inputs))
	for _, name := range r.Inputs {
		if seen[name] {
			return nil, errInputsNotUnique
		}
		seen[name] = true
	}

	gates := make([]circuit.Gate, len(r.Gates))
	for i, spec := range r.Gates {
		kind, err := circuit.ParseKind(spec.Type)
		if err != nil {
			return nil, err
		}
		gates[i] = circuit.Gate{ID: spec.ID, Kind: kind, Inputs: spec.Inputs}
	}

	return circuit.New(r.Inputs, gates, r.OutputGate)
}

// EvaluateRequest is a circuit description plus one concrete assignment of
// 0/1 values to the declared inputs.
type EvaluateRequest struct {
	LogicRequest
	Assignment map[string]int `json:"assignment"`
}

// BuildAssignment checks that the assignment covers every declared input
// with a 0 or 1 value. Extra keys are dropped rather than passed through, so
// a request cannot pre-seed values for interior gates.
func (r *EvaluateRequest) BuildAssignment() (circuit.Assignment, error) {
	assign := make(circuit.Assignment, len(r.Inputs))
	for _, name := range r.Inputs {
		value, ok := r.Assignment[name]
		if !ok {
			return nil, fmt.Errorf("Assignment is missing a value for input: %s", name)
		}
		if value != 0 && value != 1 {
			return nil, fmt.Errorf("Assignment value for %s must be 0 or 1", name)
		}
		assign[name] = value == 1
	}
	return assign, nil
}

// PromoterRequest asks for promoter suggestions matching a set of input
// signals and a requested output reporter.
type PromoterRequest struct {
	Signals []string `json:"signals"`
	Output  string   `json:"output"`
}

// ConstructRequest is a circuit description plus the output reporter to
// export a construct map for.
type ConstructRequest struct {
	LogicRequest
	Output string `json:"output"`
}
