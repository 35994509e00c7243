package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/fyerfyer/synlogic/pkg/circuit"
	"github.com/fyerfyer/synlogic/pkg/logger"
	"github.com/fyerfyer/synlogic/pkg/utils"
)

func main() {
	// Parse command-line arguments
	circuitFile := flag.String("circuit", "", "Circuit file in netlist format")
	outputFile := flag.String("output", "", "Output file for the truth table (default: stdout)")
	verbose := flag.Bool("verbose", false, "Verbose output")
	flag.Parse()

	if *verbose {
		logger.SetLevel(zerolog.DebugLevel)
	}
	log := logger.Component("truthtab")

	if *circuitFile == "" {
		log.Error().Msg("circuit file is required")
		flag.Usage()
		os.Exit(1)
	}

	// Parse circuit file
	log.Info().Str("file", *circuitFile).Msg("parsing circuit")
	c, err := utils.ParseNetlistFile(*circuitFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse circuit")
	}

	// Topology is advisory for the engine but a hard gate here: a netlist
	// with a cycle or a dangling reference is a broken file.
	topo := circuit.NewTopology(c)
	if err := topo.Analyze(); err != nil {
		log.Fatal().Err(err).Msg("invalid circuit structure")
	}
	log.Info().
		Int("inputs", len(c.Inputs)).
		Int("gates", len(c.Gates)).
		Int("depth", topo.MaxLevel).
		Int("fanout_points", len(topo.FanoutPoints())).
		Msg("circuit parsed")

	start := time.Now()
	table, stats, err := c.TruthTableWithStats()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to compute truth table")
	}

	if *outputFile != "" {
		err = utils.WriteTableFile(*outputFile, c, table)
	} else {
		err = utils.WriteTable(os.Stdout, c, table)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to write truth table")
	}

	// Print summary
	log.Info().
		Int("rows", len(table)).
		Int("gate_evals", stats.GateEvals).
		Int("memo_hits", stats.MemoHits).
		Dur("elapsed", time.Since(start)).
		Msg("truth table complete")
}
