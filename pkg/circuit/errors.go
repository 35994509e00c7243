package circuit

import (
	"errors"
	"fmt"
)

// Error message texts surface verbatim as response details at the service
// boundary; treat them as part of the wire contract.
var (
	// ErrNoInputs is reported when a truth table is requested for a circuit
	// that declares no inputs.
	ErrNoInputs = errors.New("At least one input is required to compute a truth table")

	// ErrMissingInput is reported when an OUTPUT or BUFFER gate is evaluated
	// with an empty input list.
	ErrMissingInput = errors.New("Output gate requires at least one inbound connection")
)

// UnsupportedKindError reports a gate type outside the recognized set.
type UnsupportedKindError struct {
	Name string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("Unsupported gate type: %s", e.Name)
}

// ArityError reports a kind-specific arity violation, such as a NOT gate
// wired to anything other than exactly one input.
type ArityError struct {
	Kind Kind
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s gate expects a single input", e.Kind)
}

// TooManyInputsError reports a truth-table request over more inputs than
// the driver can enumerate: past maxTableInputs the 2^n row count no longer
// fits in an int.
type TooManyInputsError struct {
	Count int
}

func (e *TooManyInputsError) Error() string {
	return fmt.Sprintf("Truth table over %d inputs cannot be enumerated", e.Count)
}

// UnknownNodeError reports a node reference that is neither a declared
// circuit input nor a known gate id.
type UnknownNodeError struct {
	ID string
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("Unknown gate or input: %s", e.ID)
}

// CycleError reports a gate that was reached again while its own value was
// still being resolved, i.e. the gate graph is not a DAG.
type CycleError struct {
	ID string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("Cyclic dependency detected at gate: %s", e.ID)
}

// DuplicateGateError reports two gates declared with the same id.
type DuplicateGateError struct {
	ID string
}

func (e *DuplicateGateError) Error() string {
	return fmt.Sprintf("Duplicate gate id: %s", e.ID)
}
