// Package trace stores the low-degree extension of an execution trace and
// serves evaluation frames to the constraint evaluator.
//
// The main trace segment is committed to before any verifier randomness is
// drawn and lives over the base field; auxiliary segments are built after
// randomness is sampled and live over the degree-4 extension. All segments
// are stored extended, i.e. as evaluations over a domain blowup times larger
// than the original trace.
package trace

import (
	"fmt"

	"github.com/consensys/gnark-crypto/field/koalabear"
	"github.com/consensys/gnark-crypto/field/koalabear/extensions"

	"github.com/cwkang1998/starkpack-winterfell/air"
	"github.com/cwkang1998/starkpack-winterfell/logger"
	"github.com/cwkang1998/starkpack-winterfell/matrix"
)

// LDE holds the extended execution trace: one main segment over the base
// field and zero or more auxiliary segments over the extension field, all
// with the same number of rows.
//
// An LDE is built single-threaded (New, then AppendAuxSegment calls) and
// read-only afterwards; once reads start, all methods are safe for
// concurrent use. Matrices returned by MainSegment and AuxSegment alias the
// store and become stale if another auxiliary segment is appended.
type LDE struct {
	mainSegment *matrix.RowMatrix[koalabear.Element]
	auxSegments []*matrix.RowMatrix[extensions.E4]
	blowup      int
}

// New creates a trace LDE from the already-extended main segment. The store
// takes ownership of the matrix.
func New(mainSegment *matrix.RowMatrix[koalabear.Element], blowup int) *LDE {
	log := logger.Logger()
	log.Debug().
		Int("rows", mainSegment.NumRows()).
		Int("cols", mainSegment.NumCols()).
		Int("blowup", blowup).
		Msg("new trace LDE")
	return &LDE{
		mainSegment: mainSegment,
		blowup:      blowup,
	}
}

// AppendAuxSegment adds the provided extended auxiliary segment to the
// store. The segment must have the same number of rows as the main segment;
// a mismatch is a bug in the prover pipeline and panics.
func (t *LDE) AppendAuxSegment(segment *matrix.RowMatrix[extensions.E4]) {
	if segment.NumRows() != t.mainSegment.NumRows() {
		panic(fmt.Sprintf("trace: auxiliary segment has %d rows, main segment has %d", segment.NumRows(), t.mainSegment.NumRows()))
	}
	log := logger.Logger()
	log.Debug().
		Int("segment", len(t.auxSegments)).
		Int("cols", segment.NumCols()).
		Msg("append auxiliary segment")
	t.auxSegments = append(t.auxSegments, segment)
}

// MainTraceWidth returns the number of columns in the main trace segment.
func (t *LDE) MainTraceWidth() int {
	return t.mainSegment.NumCols()
}

// AuxTraceWidth returns the total number of columns across all auxiliary
// trace segments.
func (t *LDE) AuxTraceWidth() int {
	w := 0
	for _, s := range t.auxSegments {
		w += s.NumCols()
	}
	return w
}

// Len returns the number of rows in the extended trace, i.e. the size of
// the extended evaluation domain.
func (t *LDE) Len() int {
	return t.mainSegment.NumRows()
}

// Blowup returns the factor by which the original trace was extended.
func (t *LDE) Blowup() int {
	return t.blowup
}

// NumAuxSegments returns the number of auxiliary segments appended so far.
func (t *LDE) NumAuxSegments() int {
	return len(t.auxSegments)
}

// MainSegment returns the matrix holding the main trace segment. The matrix
// must not be modified.
func (t *LDE) MainSegment() *matrix.RowMatrix[koalabear.Element] {
	return t.mainSegment
}

// AuxSegment returns the matrix holding the i-th auxiliary trace segment.
// The matrix must not be modified.
func (t *LDE) AuxSegment(i int) *matrix.RowMatrix[extensions.E4] {
	if i < 0 || i >= len(t.auxSegments) {
		panic(fmt.Sprintf("trace: auxiliary segment index %d out of range [0, %d)", i, len(t.auxSegments)))
	}
	return t.auxSegments[i]
}

// nextStep maps a step of the extended domain to the step one original trace
// row ahead. At the end of the trace the next state wraps around to the
// first step; the modulus is the extended length because steps are extended
// domain positions.
func (t *LDE) nextStep(step int) int {
	return (step + t.blowup) % t.Len()
}

// ReadMainFrameInto copies the current and next rows of the main trace
// segment at the given step of the extended domain into the frame.
func (t *LDE) ReadMainFrameInto(step int, frame *air.EvaluationFrame[koalabear.Element]) {
	frame.SetData(
		t.mainSegment.Row(step),
		t.mainSegment.Row(t.nextStep(step)),
	)
}

// ReadAuxSegmentFrameInto copies the current and next rows of the i-th
// auxiliary trace segment at the given step of the extended domain into the
// frame.
func (t *LDE) ReadAuxSegmentFrameInto(i, step int, frame *air.EvaluationFrame[extensions.E4]) {
	segment := t.AuxSegment(i)
	frame.SetData(
		segment.Row(step),
		segment.Row(t.nextStep(step)),
	)
}

// ReadAuxFrameInto is a convenience for the common single-segment case; it
// panics unless exactly one auxiliary segment is present.
func (t *LDE) ReadAuxFrameInto(step int, frame *air.EvaluationFrame[extensions.E4]) {
	if len(t.auxSegments) != 1 {
		panic(fmt.Sprintf("trace: expected exactly one auxiliary segment, got %d", len(t.auxSegments)))
	}
	t.ReadAuxSegmentFrameInto(0, step, frame)
}
