package circuit_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/synlogic/pkg/circuit"
)

// TestParseKind tests kind parsing for all recognized names
func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want circuit.Kind
	}{
		{"AND", circuit.AND},
		{"and", circuit.AND},
		{"Or", circuit.OR},
		{"NOT", circuit.NOT},
		{"nand", circuit.NAND},
		{"NOR", circuit.NOR},
		{"xor", circuit.XOR},
		{"output", circuit.OUTPUT},
		{"Buffer", circuit.BUFFER},
	}
	for _, tc := range cases {
		kind, err := circuit.ParseKind(tc.in)
		require.NoError(t, err, "ParseKind(%q)", tc.in)
		assert.Equal(t, tc.want, kind, "ParseKind(%q)", tc.in)
	}
}

// TestParseKindRejectsUnknown tests that aliases and junk are not accepted
func TestParseKindRejectsUnknown(t *testing.T) {
	for _, in := range []string{"", "XNOR", "BUF", "INV", "ANDD", " AND", "AND ", "A ND"} {
		_, err := circuit.ParseKind(in)
		require.Error(t, err, "ParseKind(%q)", in)

		var unsupported *circuit.UnsupportedKindError
		require.ErrorAs(t, err, &unsupported, "ParseKind(%q)", in)
	}

	_, err := circuit.ParseKind("xnor")
	require.EqualError(t, err, "Unsupported gate type: XNOR")
}

// TestKindString tests the canonical names round-trip through ParseKind
func TestKindString(t *testing.T) {
	kinds := []circuit.Kind{
		circuit.AND, circuit.OR, circuit.NOT, circuit.NAND,
		circuit.NOR, circuit.XOR, circuit.OUTPUT, circuit.BUFFER,
	}
	for _, kind := range kinds {
		parsed, err := circuit.ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	assert.Equal(t, "UNKNOWN", circuit.Kind(99).String())
}

// TestGateString tests the gate's string representation
func TestGateString(t *testing.T) {
	gate := &circuit.Gate{ID: "g1", Kind: circuit.AND, Inputs: []string{"a", "b"}}
	assert.Equal(t, "g1(AND)", gate.String())
}

// TestEvaluate tests the two-valued semantics of every gate kind
func TestEvaluate(t *testing.T) {
	cases := []struct {
		name   string
		kind   circuit.Kind
		values []bool
		want   bool
	}{
		{"and both true", circuit.AND, []bool{true, true}, true},
		{"and one false", circuit.AND, []bool{true, false}, false},
		{"and single false", circuit.AND, []bool{false}, false},
		{"and empty is true", circuit.AND, nil, true},
		{"or both false", circuit.OR, []bool{false, false}, false},
		{"or one true", circuit.OR, []bool{false, true}, true},
		{"or empty is false", circuit.OR, nil, false},
		{"not true", circuit.NOT, []bool{true}, false},
		{"not false", circuit.NOT, []bool{false}, true},
		{"nand both true", circuit.NAND, []bool{true, true}, false},
		{"nand one false", circuit.NAND, []bool{true, false}, true},
		{"nand empty", circuit.NAND, nil, false},
		{"nor both false", circuit.NOR, []bool{false, false}, true},
		{"nor one true", circuit.NOR, []bool{true, false}, false},
		{"nor empty", circuit.NOR, nil, true},
		{"xor disagree", circuit.XOR, []bool{true, false}, true},
		{"xor agree", circuit.XOR, []bool{true, true}, false},
		{"xor odd parity", circuit.XOR, []bool{true, true, true}, true},
		{"xor empty", circuit.XOR, nil, false},
		{"output forwards last", circuit.OUTPUT, []bool{false, true}, true},
		{"output single", circuit.OUTPUT, []bool{false}, false},
		{"buffer forwards last", circuit.BUFFER, []bool{true, false}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := circuit.Evaluate(tc.kind, tc.values)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestEvaluateNotArity tests that NOT insists on exactly one input
func TestEvaluateNotArity(t *testing.T) {
	for _, values := range [][]bool{nil, {true, false}, {true, true, true}} {
		_, err := circuit.Evaluate(circuit.NOT, values)
		require.Error(t, err)

		var arity *circuit.ArityError
		require.ErrorAs(t, err, &arity)
		assert.Equal(t, circuit.NOT, arity.Kind)
		assert.Equal(t, len(values), arity.Got)
		assert.EqualError(t, err, "NOT gate expects a single input")
	}
}

// TestEvaluatePassRequiresInput tests that OUTPUT and BUFFER reject empty
// input lists
func TestEvaluatePassRequiresInput(t *testing.T) {
	for _, kind := range []circuit.Kind{circuit.OUTPUT, circuit.BUFFER} {
		_, err := circuit.Evaluate(kind, nil)
		require.ErrorIs(t, err, circuit.ErrMissingInput)
		assert.EqualError(t, err, "Output gate requires at least one inbound connection")
	}
}

// TestEvaluateUnknownKind tests that an out-of-range kind value fails
func TestEvaluateUnknownKind(t *testing.T) {
	_, err := circuit.Evaluate(circuit.Kind(99), []bool{true})
	var unsupported *circuit.UnsupportedKindError
	require.ErrorAs(t, err, &unsupported)
}

// TestEvaluateProperties checks algebraic identities of the gate semantics
// over random input vectors
func TestEvaluateProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	mustEval := func(kind circuit.Kind, values []bool) bool {
		v, err := circuit.Evaluate(kind, values)
		if err != nil {
			t.Fatalf("Evaluate(%s, %v): %v", kind, values, err)
		}
		return v
	}

	properties.Property("AND is the universal conjunction", prop.ForAll(
		func(values []bool) bool {
			want := true
			for _, v := range values {
				want = want && v
			}
			return mustEval(circuit.AND, values) == want
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("OR is the existential disjunction", prop.ForAll(
		func(values []bool) bool {
			want := false
			for _, v := range values {
				want = want || v
			}
			return mustEval(circuit.OR, values) == want
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("NAND negates AND and NOR negates OR", prop.ForAll(
		func(values []bool) bool {
			return mustEval(circuit.NAND, values) == !mustEval(circuit.AND, values) &&
				mustEval(circuit.NOR, values) == !mustEval(circuit.OR, values)
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("XOR matches odd parity", prop.ForAll(
		func(values []bool) bool {
			ones := 0
			for _, v := range values {
				if v {
					ones++
				}
			}
			return mustEval(circuit.XOR, values) == (ones%2 == 1)
		},
		gen.SliceOf(gen.Bool()),
	))

	properties.Property("OUTPUT forwards its last input", prop.ForAll(
		func(rest []bool, last bool) bool {
			values := append(append([]bool{}, rest...), last)
			return mustEval(circuit.OUTPUT, values) == last &&
				mustEval(circuit.BUFFER, values) == last
		},
		gen.SliceOf(gen.Bool()),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
