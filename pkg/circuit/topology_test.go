package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyerfyer/synlogic/pkg/circuit"
)

// TestTopologyLevels tests levelization of a layered circuit
func TestTopologyLevels(t *testing.T) {
	c := createDiamondCircuit(t)

	topo := circuit.NewTopology(c)
	require.NoError(t, topo.Analyze())

	assert.Equal(t, 0, topo.Levels["a"])
	assert.Equal(t, 0, topo.Levels["b"])
	assert.Equal(t, 1, topo.Levels["g1"])
	assert.Equal(t, 2, topo.Levels["g2"])
	assert.Equal(t, 3, topo.Levels["g3"])
	assert.Equal(t, 3, topo.MaxLevel)
}

// TestTopologyFanout tests fanout counting and fanout point listing
func TestTopologyFanout(t *testing.T) {
	c := createDiamondCircuit(t)

	topo := circuit.NewTopology(c)
	require.NoError(t, topo.Analyze())

	assert.Equal(t, 1, topo.Fanout["a"])
	assert.Equal(t, 1, topo.Fanout["b"])
	assert.Equal(t, 2, topo.Fanout["g1"])
	assert.Equal(t, []string{"g1"}, topo.FanoutPoints())
}

// TestTopologyFanoutPointsSorted tests that fanout points come back in name
// order
func TestTopologyFanoutPointsSorted(t *testing.T) {
	c, err := circuit.New(
		[]string{"a"},
		[]circuit.Gate{
			{ID: "g1", Kind: circuit.NOT, Inputs: []string{"a"}},
			{ID: "g2", Kind: circuit.BUFFER, Inputs: []string{"a"}},
			{ID: "g3", Kind: circuit.AND, Inputs: []string{"g1", "g2"}},
			{ID: "g4", Kind: circuit.OR, Inputs: []string{"g2", "g1"}},
		},
		"g3",
	)
	require.NoError(t, err)

	topo := circuit.NewTopology(c)
	require.NoError(t, topo.Analyze())

	assert.Equal(t, []string{"a", "g1", "g2"}, topo.FanoutPoints())
}

// TestTopologyZeroInputGate tests that a constant gate levelizes alongside
// the inputs
func TestTopologyZeroInputGate(t *testing.T) {
	c, err := circuit.New(
		[]string{"a"},
		[]circuit.Gate{
			{ID: "one", Kind: circuit.AND},
			{ID: "g1", Kind: circuit.AND, Inputs: []string{"a", "one"}},
		},
		"g1",
	)
	require.NoError(t, err)

	topo := circuit.NewTopology(c)
	require.NoError(t, topo.Analyze())

	assert.Equal(t, 0, topo.Levels["one"])
	assert.Equal(t, 1, topo.Levels["g1"])
}

// TestTopologyCycle tests that a cyclic graph cannot be levelized
func TestTopologyCycle(t *testing.T) {
	c, err := circuit.New(
		[]string{"a"},
		[]circuit.Gate{
			{ID: "g1", Kind: circuit.AND, Inputs: []string{"a", "g2"}},
			{ID: "g2", Kind: circuit.OR, Inputs: []string{"g1"}},
		},
		"g1",
	)
	require.NoError(t, err)

	topo := circuit.NewTopology(c)
	err = topo.Analyze()

	var cycle *circuit.CycleError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, "g1", cycle.ID)
}

// TestTopologyUnknownReference tests that a dangling reference is reported
// as unknown rather than cyclic
func TestTopologyUnknownReference(t *testing.T) {
	c, err := circuit.New(
		[]string{"a"},
		[]circuit.Gate{{ID: "g1", Kind: circuit.AND, Inputs: []string{"a", "ghost"}}},
		"g1",
	)
	require.NoError(t, err)

	topo := circuit.NewTopology(c)
	err = topo.Analyze()

	var unknown *circuit.UnknownNodeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ghost", unknown.ID)
}

// TestTopologyUnknownReferenceBehindStuckGate tests that a dangling
// reference wins over the cycle diagnosis even when another gate, earlier
// in declaration order, is stuck downstream of it
func TestTopologyUnknownReferenceBehindStuckGate(t *testing.T) {
	c, err := circuit.New(
		[]string{"a"},
		[]circuit.Gate{
			{ID: "g2", Kind: circuit.BUFFER, Inputs: []string{"g1"}},
			{ID: "g1", Kind: circuit.AND, Inputs: []string{"a", "ghost"}},
		},
		"g2",
	)
	require.NoError(t, err)

	topo := circuit.NewTopology(c)
	err = topo.Analyze()

	var unknown *circuit.UnknownNodeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ghost", unknown.ID)
}
