package trace

import (
	"github.com/consensys/gnark-crypto/field/koalabear"
	"github.com/consensys/gnark-crypto/field/koalabear/extensions"

	"github.com/cwkang1998/starkpack-winterfell/air"
	"github.com/cwkang1998/starkpack-winterfell/internal/parallel"
)

// ForEachMainFrame calls fn with the main trace frame at every step of the
// extended domain. Steps are split into chunks processed by parallel
// workers; each worker reuses a single frame, so fn must not retain the
// frame or its rows past its return. The store must not be mutated while
// iteration runs.
func (t *LDE) ForEachMainFrame(fn func(step int, frame *air.EvaluationFrame[koalabear.Element])) {
	parallel.Execute(t.Len(), func(start, end int) {
		frame := air.NewEvaluationFrame[koalabear.Element](t.MainTraceWidth())
		for step := start; step < end; step++ {
			t.ReadMainFrameInto(step, frame)
			fn(step, frame)
		}
	})
}

// ForEachAuxFrame calls fn with the i-th auxiliary segment's frame at every
// step of the extended domain, under the same reuse rules as
// ForEachMainFrame.
func (t *LDE) ForEachAuxFrame(i int, fn func(step int, frame *air.EvaluationFrame[extensions.E4])) {
	segment := t.AuxSegment(i)
	parallel.Execute(t.Len(), func(start, end int) {
		frame := air.NewEvaluationFrame[extensions.E4](segment.NumCols())
		for step := start; step < end; step++ {
			t.ReadAuxSegmentFrameInto(i, step, frame)
			fn(step, frame)
		}
	})
}
