package api

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/fyerfyer/synlogic/pkg/circuit"
	"github.com/fyerfyer/synlogic/pkg/parts"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLogicTable computes the full truth table for the submitted circuit.
func (s *Server) handleLogicTable(w http.ResponseWriter, r *http.Request) {
	var req LogicRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if len(req.Inputs) > s.cfg.MaxInputs {
		detail := fmt.Sprintf("Truth table over %d inputs exceeds the limit of %d", len(req.Inputs), s.cfg.MaxInputs)
		writeError(w, http.StatusBadRequest, detail)
		return
	}

	c, err := req.Build()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	table, stats, err := c.TruthTableWithStats()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	zerolog.Ctx(r.Context()).Debug().
		Int("inputs", len(c.Inputs)).
		Int("gates", len(c.Gates)).
		Int("rows", len(table)).
		Int("gate_evals", stats.GateEvals).
		Int("memo_hits", stats.MemoHits).
		Msg("truth table computed")

	writeJSON(w, http.StatusOK, map[string]any{"truth_table": tableRows(c, table)})
}

// handleEvaluate resolves the circuit output for a single input assignment.
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	c, err := req.Build()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	assign, err := req.BuildAssignment()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	value, err := c.Evaluate(assign)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"output": toBit(value)})
}

// handlePromoterCompatibility suggests promoters for the given signals.
// When nothing matches, the 404 carries the signals the library does cover
// so the caller can correct the request.
func (s *Server) handlePromoterCompatibility(w http.ResponseWriter, r *http.Request) {
	var req PromoterRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	suggestions := parts.SuggestPromoters(req.Signals, req.Output)
	if len(suggestions) == 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"detail":        "No promoter data found for the provided signals",
			"known_signals": parts.KnownSignals(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

// handleConstructExport builds a placeholder construct map for the circuit.
// The description passes the same validation as the logic endpoints, so a
// construct can only be exported for a well-formed circuit.
func (s *Server) handleConstructExport(w http.ResponseWriter, r *http.Request) {
	var req ConstructRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	c, err := req.Build()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	construct := parts.BuildConstruct(c.Inputs, req.Output, c.Gates)
	writeJSON(w, http.StatusOK, map[string]any{"construct": construct})
}

// tableRows flattens a truth table into the wire shape: one object per row
// holding every input and the output as 0/1 integers.
func tableRows(c *circuit.Circuit, table circuit.Table) []map[string]int {
	rows := make([]map[string]int, len(table))
	for i, row := range table {
		obj := make(map[string]int, len(row.Assignment)+1)
		for name, value := range row.Assignment {
			obj[name] = toBit(value)
		}
		obj["output"] = toBit(row.Output)
		rows[i] = obj
	}
	return rows
}

// toBit renders a boolean as the wire integer 0 or 1.
func toBit(v bool) int {
	if v {
		return 1
	}
	return 0
}
