// Package starkpack provides the prover-side trace storage for a STARK
// proof system: row-major trace matrices, their low-degree extensions over
// the KoalaBear field and its degree-4 extension, and the evaluation frames
// consumed by transition constraint evaluation.
//
// The trace/ package holds the trace LDE store, matrix/ the row-major
// segment storage, and air/ the evaluation frame shared with the constraint
// evaluator.
package starkpack

import "github.com/blang/semver/v4"

var Version = semver.MustParse("0.1.0")
