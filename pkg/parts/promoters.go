// Package parts maps circuit signals onto characterized biological parts:
// promoter suggestions for named input signals, and placeholder construct
// maps handed to downstream sequence design tooling.
package parts

import (
	"sort"
	"strings"
)

// Suggestion pairs an input signal with a promoter and states how well the
// promoter matches the requested output reporter.
type Suggestion struct {
	Signal     string `json:"signal"`
	Promoter   string `json:"promoter"`
	Compatible string `json:"compatible"`
	Notes      string `json:"notes"`
}

// promoterEntry is one record of the static promoter library.
type promoterEntry struct {
	promoter          string
	compatibleOutputs []string
	notes             string
}

// promoterLibrary is the curated signal -> promoter table, keyed by
// lower-case signal name.
var promoterLibrary = map[string]promoterEntry{
	"nitrate": {
		promoter:          "PnarG",
		compatibleOutputs: []string{"GFP", "IL-10"},
		notes:             "Well-characterised nitrate responsive promoter",
	},
	"tetrathionate": {
		promoter:          "PttrSR",
		compatibleOutputs: []string{"GFP"},
		notes:             "Best paired with fluorescent reporters",
	},
	"lactate": {
		promoter:          "PlacI",
		compatibleOutputs: []string{"IL-10", "LacZ"},
		notes:             "Repressible promoter supporting inversion logic",
	},
}

// SuggestPromoters returns one suggestion per recognized signal, in the order
// the signals were given; signals absent from the library are skipped.
// Compatible is "yes" when the requested output is a characterised pairing
// for the promoter and "partial" otherwise.
func SuggestPromoters(signals []string, output string) []Suggestion {
	suggestions := make([]Suggestion, 0, len(signals))
	for _, signal := range signals {
		entry, ok := promoterLibrary[strings.ToLower(signal)]
		if !ok {
			continue
		}

		compatible := "partial"
		for _, candidate := range entry.compatibleOutputs {
			if candidate == output {
				compatible = "yes"
				break
			}
		}

		suggestions = append(suggestions, Suggestion{
			Signal:     signal,
			Promoter:   entry.promoter,
			Compatible: compatible,
			Notes:      entry.notes,
		})
	}
	return suggestions
}

// KnownSignals lists the signals the promoter library covers, sorted by
// name. The list is rebuilt on each call; the library itself stays immutable.
func KnownSignals() []string {
	signals := make([]string, 0, len(promoterLibrary))
	for signal := range promoterLibrary {
		signals = append(signals, signal)
	}
	sort.Strings(signals)
	return signals
}
