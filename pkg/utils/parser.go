package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/fyerfyer/synlogic/pkg/circuit"
)

// Regular expressions for parsing netlist format
var (
	inputRegex  = regexp.MustCompile(`^INPUT\((\w+)\)$`)
	outputRegex = regexp.MustCompile(`^OUTPUT\((\w+)\)$`)
	gateRegex   = regexp.MustCompile(`^(\w+)\s*=\s*(\w+)\((.*)\)$`)
)

// ParseNetlistFile reads a circuit description in netlist format and returns
// the assembled circuit.
func ParseNetlistFile(filename string) (*circuit.Circuit, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	c, err := ParseNetlist(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}

// ParseNetlist reads a netlist: INPUT(name) declarations, gate definitions of
// the form "id = KIND(ref, ref, ...)", and exactly one OUTPUT(name)
// declaration naming the node the circuit computes. Blank lines and lines
// starting with # are skipped; anything else that does not match is an error.
func ParseNetlist(r io.Reader) (*circuit.Circuit, error) {
	var (
		inputs    []string
		gates     []circuit.Gate
		gateLines []int // Source line of each gate, for post-scan errors
		output    string
	)
	declared := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if matches := inputRegex.FindStringSubmatch(line); matches != nil {
			name := matches[1]
			if declared[name] {
				return nil, fmt.Errorf("line %d: duplicate input declared: %s", lineNo, name)
			}
			declared[name] = true
			inputs = append(inputs, name)
			continue
		}

		if matches := outputRegex.FindStringSubmatch(line); matches != nil {
			if output != "" {
				return nil, fmt.Errorf("line %d: netlist declares more than one OUTPUT", lineNo)
			}
			output = matches[1]
			continue
		}

		if matches := gateRegex.FindStringSubmatch(line); matches != nil {
			kind, err := circuit.ParseKind(matches[2])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			gates = append(gates, circuit.Gate{
				ID:     matches[1],
				Kind:   kind,
				Inputs: splitRefs(matches[3]),
			})
			gateLines = append(gateLines, lineNo)
			continue
		}

		return nil, fmt.Errorf("line %d: unrecognized netlist line: %q", lineNo, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading netlist: %w", err)
	}

	if output == "" {
		return nil, fmt.Errorf("netlist declares no OUTPUT")
	}
	// Checked after the scan so the collision is caught regardless of
	// whether the INPUT line or the gate line comes first.
	for i := range gates {
		if declared[gates[i].ID] {
			return nil, fmt.Errorf("line %d: gate id collides with declared input: %s", gateLines[i], gates[i].ID)
		}
	}

	return circuit.New(inputs, gates, output)
}

// splitRefs splits a gate's comma-separated reference list. An empty list is
// legal; AND and OR accept zero inputs.
func splitRefs(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	refs := make([]string, len(parts))
	for i, p := range parts {
		refs[i] = strings.TrimSpace(p)
	}
	return refs
}

// WriteTableFile writes a truth table to a file as text columns.
func WriteTableFile(filename string, c *circuit.Circuit, table circuit.Table) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return WriteTable(file, c, table)
}

// WriteTable renders a truth table as space-separated text columns: the
// declared inputs in order, then the output, one row per assignment.
func WriteTable(w io.Writer, c *circuit.Circuit, table circuit.Table) error {
	writer := bufio.NewWriter(w)

	// Write header
	writer.WriteString("# Truth table\n")
	writer.WriteString("# Format: ")
	for _, name := range c.Inputs {
		writer.WriteString(name + " ")
	}
	writer.WriteString("output\n")

	for _, row := range table {
		for _, name := range c.Inputs {
			writer.WriteString(formatBit(row.Assignment[name]) + " ")
		}
		writer.WriteString(formatBit(row.Output))
		writer.WriteString("\n")
	}

	return writer.Flush()
}

// formatBit renders a boolean as "0" or "1".
func formatBit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
