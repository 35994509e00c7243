package circuit

import (
	"fmt"
	"strings"
)

// Kind represents the logic function of a gate
type Kind int

const (
	AND Kind = iota
	OR
	NOT
	NAND
	NOR
	XOR
	OUTPUT
	BUFFER
)

// String returns the canonical upper-case name of the gate kind
func (k Kind) String() string {
	switch k {
	case AND:
		return "AND"
	case OR:
		return "OR"
	case NOT:
		return "NOT"
	case NAND:
		return "NAND"
	case NOR:
		return "NOR"
	case XOR:
		return "XOR"
	case OUTPUT:
		return "OUTPUT"
	case BUFFER:
		return "BUFFER"
	default:
		return "UNKNOWN"
	}
}

// ParseKind resolves a gate type name case-insensitively against the
// recognized set. No whitespace trimming and no aliases: anything but the
// eight canonical names fails with an UnsupportedKindError carrying the
// upper-cased form.
func ParseKind(s string) (Kind, error) {
	name := strings.ToUpper(s)
	switch name {
	case "AND":
		return AND, nil
	case "OR":
		return OR, nil
	case "NOT":
		return NOT, nil
	case "NAND":
		return NAND, nil
	case "NOR":
		return NOR, nil
	case "XOR":
		return XOR, nil
	case "OUTPUT":
		return OUTPUT, nil
	case "BUFFER":
		return BUFFER, nil
	default:
		return 0, &UnsupportedKindError{Name: name}
	}
}

// Gate represents one named logic element in the circuit graph. Inputs holds
// ordered references to other gates or declared circuit inputs; the order is
// significant for OUTPUT and BUFFER gates, which forward their last input.
type Gate struct {
	ID     string   // Unique identifier within the circuit
	Kind   Kind     // Logic function
	Inputs []string // Inbound node references, in declaration order
}

// String returns a string representation of the gate
func (g *Gate) String() string {
	return fmt.Sprintf("%s(%s)", g.ID, g.Kind.String())
}

// Evaluate computes a single gate's output for already-resolved input values.
// It is pure: no state is read or retained between calls.
func Evaluate(kind Kind, values []bool) (bool, error) {
	switch kind {
	case AND:
		return evaluateAND(values), nil
	case OR:
		return evaluateOR(values), nil
	case NOT:
		if len(values) != 1 {
			return false, &ArityError{Kind: NOT, Got: len(values)}
		}
		return !values[0], nil
	case NAND:
		return !evaluateAND(values), nil
	case NOR:
		return !evaluateOR(values), nil
	case XOR:
		return evaluateXOR(values), nil
	case OUTPUT, BUFFER:
		return evaluatePass(values)
	default:
		return false, &UnsupportedKindError{Name: kind.String()}
	}
}

// evaluateAND is true iff every value is true; a vacuous AND is true.
func evaluateAND(values []bool) bool {
	for _, v := range values {
		if !v {
			return false // Short-circuit for AND gate
		}
	}
	return true
}

// evaluateOR is true iff at least one value is true; a vacuous OR is false.
func evaluateOR(values []bool) bool {
	for _, v := range values {
		if v {
			return true // Short-circuit for OR gate
		}
	}
	return false
}

// evaluateXOR is true iff an odd number of values are true.
func evaluateXOR(values []bool) bool {
	odd := false
	for _, v := range values {
		if v {
			odd = !odd
		}
	}
	return odd
}

// evaluatePass forwards the last inbound value. OUTPUT and BUFFER gates must
// have at least one inbound connection.
func evaluatePass(values []bool) (bool, error) {
	if len(values) == 0 {
		return false, ErrMissingInput
	}
	return values[len(values)-1], nil
}
