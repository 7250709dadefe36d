// Package air defines the algebraic intermediate representation types shared
// between the trace store and the constraint evaluator.
package air

import "fmt"

// EvaluationFrame holds two consecutive rows of a trace segment, the window
// a transition constraint is evaluated against. The backing storage is
// allocated once and reused across reads; frame reads copy row data in
// rather than allocating.
type EvaluationFrame[E any] struct {
	current []E
	next    []E
}

// NewEvaluationFrame returns a frame for rows of the given width.
func NewEvaluationFrame[E any](width int) *EvaluationFrame[E] {
	return &EvaluationFrame[E]{
		current: make([]E, width),
		next:    make([]E, width),
	}
}

// SetData copies the provided rows into the frame's current and next slots.
// Both rows must match the frame width.
func (f *EvaluationFrame[E]) SetData(current, next []E) {
	if len(current) != len(f.current) || len(next) != len(f.next) {
		panic(fmt.Sprintf("air: rows of width %d and %d do not fit a frame of width %d", len(current), len(next), len(f.current)))
	}
	copy(f.current, current)
	copy(f.next, next)
}

// Current returns the current row of the frame. The returned slice aliases
// the frame storage and is overwritten by the next SetData call.
func (f *EvaluationFrame[E]) Current() []E {
	return f.current
}

// Next returns the next row of the frame. The returned slice aliases the
// frame storage and is overwritten by the next SetData call.
func (f *EvaluationFrame[E]) Next() []E {
	return f.next
}
