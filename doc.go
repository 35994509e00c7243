// Package synlogic provides the evaluation engine and HTTP service behind the
// SynLogic circuit designer: boolean logic-gate circuits described as named
// DAGs, evaluated against input assignments and expanded into full truth
// tables, with promoter-part suggestions for mapping circuit inputs onto
// biological sensing parts.
//
// The core engine lives in pkg/circuit and has no service dependencies; the
// HTTP boundary in pkg/api exposes truth tables, single evaluations, promoter
// lookups, and construct export.
package synlogic

import "github.com/blang/semver/v4"

// Version of the SynLogic service and engine.
var Version = semver.MustParse("0.1.0")
