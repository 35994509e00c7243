package parts

import (
	"fmt"

	"github.com/fyerfyer/synlogic/pkg/circuit"
)

// Module is one entry of a construct map: a circuit element paired with a
// placeholder sequence template for downstream sequence design.
type Module struct {
	Module           string `json:"module"`
	Type             string `json:"type"`
	SequenceTemplate string `json:"sequence_template"`
}

// Construct is an exported construct map: promoter picks for the circuit
// inputs plus one module per gate and a trailing output module.
type Construct struct {
	Promoters []Suggestion `json:"promoters"`
	Modules   []Module     `json:"modules"`
}

// BuildConstruct assembles a construct map for a circuit targeting the given
// output reporter. Gates are emitted in declaration order. The sequence
// templates are placeholders only; no real sequence synthesis happens here.
func BuildConstruct(inputs []string, output string, gates []circuit.Gate) Construct {
	modules := make([]Module, 0, len(gates)+1)
	for i := range gates {
		g := &gates[i]
		modules = append(modules, Module{
			Module:           g.ID,
			Type:             g.Kind.String(),
			SequenceTemplate: fmt.Sprintf("// placeholder sequence for %s gate", g.Kind),
		})
	}
	modules = append(modules, Module{
		Module:           "output",
		Type:             output,
		SequenceTemplate: fmt.Sprintf("ATG... // coding sequence for %s", output),
	})

	return Construct{
		Promoters: SuggestPromoters(inputs, output),
		Modules:   modules,
	}
}
