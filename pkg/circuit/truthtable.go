package circuit

import "math/bits"

// maxTableInputs is the largest input count whose 2^n row count still fits
// in an int.
const maxTableInputs = bits.UintSize - 2

// Row is one truth-table entry: a complete assignment over the declared
// inputs and the resolved circuit output for it.
type Row struct {
	Assignment Assignment
	Output     bool
}

// Table holds one row per input assignment, in enumeration order.
type Table []Row

// TruthTable enumerates all 2^n assignments over the declared inputs and
// resolves the output for each. Rows follow binary counting order with the
// first declared input as the most significant bit, so the all-false row
// comes first and the all-true row last. Any failing row aborts the whole
// computation; no partial table is returned. Circuits with more than
// maxTableInputs inputs are rejected with a TooManyInputsError before any
// row is resolved.
func (c *Circuit) TruthTable() (Table, error) {
	table, _, err := c.TruthTableWithStats()
	return table, err
}

// TruthTableWithStats is TruthTable plus the resolution counters aggregated
// across all rows.
func (c *Circuit) TruthTableWithStats() (Table, Stats, error) {
	n := len(c.Inputs)
	if n == 0 {
		return nil, Stats{}, ErrNoInputs
	}
	if n > maxTableInputs {
		return nil, Stats{}, &TooManyInputsError{Count: n}
	}

	var total Stats
	table := make(Table, 0, 1<<n)
	for i := 0; i < 1<<n; i++ {
		assign := make(Assignment, n)
		for j, name := range c.Inputs {
			assign[name] = (i>>(n-1-j))&1 == 1
		}

		value, stats, err := c.EvaluateWithStats(assign)
		if err != nil {
			return nil, Stats{}, err
		}
		total.Add(stats)
		table = append(table, Row{Assignment: assign, Output: value})
	}
	return table, total, nil
}
