package circuit

import (
	"sort"
)

// Topology contains structural information about a circuit: node levels,
// overall depth, and fanout counts. It is advisory only; resolution never
// consults it.
type Topology struct {
	Circuit  *Circuit
	Levels   map[string]int // Node id -> level; declared inputs are level 0
	MaxLevel int            // Deepest assigned level
	Fanout   map[string]int // Node id -> number of gate inputs consuming it
}

// NewTopology creates a new topology analyzer for the given circuit
func NewTopology(c *Circuit) *Topology {
	return &Topology{
		Circuit: c,
		Levels:  make(map[string]int),
		Fanout:  make(map[string]int),
	}
}

// Analyze computes fanout counts and node levels. Gates that cannot be
// levelized indicate a broken graph: a reference to an undeclared node is
// reported as an UnknownNodeError, anything else as a CycleError naming the
// first gate (in declaration order) stuck behind the cycle.
func (t *Topology) Analyze() error {
	t.computeFanout()
	return t.computeLevels()
}

// computeLevels assigns a level to every node. Declared inputs sit at level 0
// and a gate sits one above its deepest input reference. Gates are swept
// repeatedly until no further level can be assigned.
func (t *Topology) computeLevels() error {
	for _, name := range t.Circuit.Inputs {
		t.Levels[name] = 0
	}

	changed := true
	for changed {
		changed = false

		for i := range t.Circuit.Gates {
			g := &t.Circuit.Gates[i]
			if _, hasLevel := t.Levels[g.ID]; hasLevel {
				continue
			}

			level, ready := t.gateLevel(g)
			if !ready {
				continue
			}

			t.Levels[g.ID] = level
			if level > t.MaxLevel {
				t.MaxLevel = level
			}
			changed = true
		}
	}

	var stuck []*Gate
	for i := range t.Circuit.Gates {
		g := &t.Circuit.Gates[i]
		if _, hasLevel := t.Levels[g.ID]; !hasLevel {
			stuck = append(stuck, g)
		}
	}
	if len(stuck) == 0 {
		return nil
	}

	// An unknown reference anywhere in the stuck set is reported before
	// concluding a cycle; a gate can be stuck merely because it sits behind
	// the gate with the dangling reference.
	for _, g := range stuck {
		for _, ref := range g.Inputs {
			if !t.knownNode(ref) {
				return &UnknownNodeError{ID: ref}
			}
		}
	}
	return &CycleError{ID: stuck[0].ID}
}

// gateLevel returns one past the gate's deepest input level, or false while
// some input reference still has no level. A gate with no inputs levelizes
// at 0.
func (t *Topology) gateLevel(g *Gate) (int, bool) {
	maxInputLevel := -1
	for _, ref := range g.Inputs {
		level, exists := t.Levels[ref]
		if !exists {
			return 0, false
		}
		if level > maxInputLevel {
			maxInputLevel = level
		}
	}
	return maxInputLevel + 1, true
}

// knownNode reports whether ref names a declared input or a gate.
func (t *Topology) knownNode(ref string) bool {
	if _, ok := t.Levels[ref]; ok {
		return true
	}
	return t.Circuit.GetGate(ref) != nil
}

// computeFanout counts, for every referenced node, how many gate inputs
// consume it.
func (t *Topology) computeFanout() {
	for i := range t.Circuit.Gates {
		for _, ref := range t.Circuit.Gates[i].Inputs {
			t.Fanout[ref]++
		}
	}
}

// FanoutPoints lists the nodes feeding more than one gate input, sorted by
// name. These are the nodes where memoization pays off during resolution.
func (t *Topology) FanoutPoints() []string {
	points := make([]string, 0)
	for id, count := range t.Fanout {
		if count > 1 {
			points = append(points, id)
		}
	}
	sort.Strings(points)
	return points
}
