package lazypool

import (
	"iter"
	"slices"

	"github.com/oliverbestmann/lazypool/internal/assert"
)

// Len returns the number of instances the pool currently owns.
func (p *Pool[T]) Len() int {
	return len(p.instances)
}

// Cursor returns the index the next take operation will examine first.
// It is zero while the pool is empty.
func (p *Pool[T]) Cursor() int {
	return p.cursor
}

// SetCursor moves the scan cursor to the given index, wrapped modulo Len.
// Moving the cursor on an empty pool is a no-op.
func (p *Pool[T]) SetCursor(index int) {
	assert.NonNegative(index, "cursor")

	if len(p.instances) == 0 {
		return
	}

	p.cursor = index % len(p.instances)
}

// GrowStep returns the number of instances appended per growth step.
func (p *Pool[T]) GrowStep() int {
	return p.growStep
}

// SetGrowStep changes the step used by future growth.
func (p *Pool[T]) SetGrowStep(step int) {
	assert.Positive(step, "grow step")
	p.growStep = step
}

// At returns the instance at the given index in insertion order.
func (p *Pool[T]) At(index int) T {
	assert.InRange(index, 0, len(p.instances)-1, "index")
	return p.instances[index]
}

// All iterates over the backing sequence in insertion order.
func (p *Pool[T]) All() iter.Seq[T] {
	return slices.Values(p.instances)
}

// TrimTo drops every instance past the first n and re-wraps the cursor into
// the new range. This is a manual tuning hook for callers that pre grew the
// pool too far; no pool operation ever shrinks the pool on its own.
func (p *Pool[T]) TrimTo(n int) {
	assert.InRange(n, 0, len(p.instances), "trim length")

	// drop references so trimmed instances can be collected
	clear(p.instances[n:])
	p.instances = p.instances[:n]

	if n == 0 {
		p.cursor = 0
	} else {
		p.cursor = p.cursor % n
	}
}
