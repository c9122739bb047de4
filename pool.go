package lazypool

import (
	"fmt"

	"github.com/oliverbestmann/lazypool/internal/assert"
)

// Pool recycles instances of T. It owns the backing sequence of instances,
// but never their state: the caller's domain logic decides when an instance
// becomes available again, the pool only asks.
//
// All operations run synchronously on the calling goroutine. A Pool performs
// no locking of its own; callers sharing one across goroutines must
// serialize whole calls, scan and growth included.
type Pool[T any] struct {
	noCopy noCopy

	instances   []T
	growStep    int
	factory     func() T
	isAvailable func(T) bool
	grower      Grower
	cursor      int
	stats       Stats
}

// New creates a Pool pre filled with initialSize instances produced by
// factory. growStep is the number of instances appended per demand
// triggered growth and must be at least one.
//
// The factory must produce an instance that isAvailable reports as
// available; the pool assumes this but does not verify it.
func New[T any](initialSize, growStep int, factory func() T, isAvailable func(T) bool) *Pool[T] {
	return NewWithGrower(initialSize, growStep, factory, isAvailable, StepGrower{})
}

// NewWithGrower is New with a custom growth policy. Every demand triggered
// growth is routed through the given Grower; explicit Grow and GrowBySteps
// calls are not.
func NewWithGrower[T any](initialSize, growStep int, factory func() T, isAvailable func(T) bool, grower Grower) *Pool[T] {
	assert.NonNegative(initialSize, "initial size")
	assert.Positive(growStep, "grow step")
	assert.NonNil(factory, "factory")
	assert.NonNil(isAvailable, "availability predicate")
	assert.NonNil(grower, "grower")

	pool := &Pool[T]{
		instances:   make([]T, 0, initialSize),
		growStep:    growStep,
		factory:     factory,
		isAvailable: isAvailable,
		grower:      grower,
	}

	// the initial fill is a plain append, it is not quantized to growStep
	pool.appendNew(initialSize)

	return pool
}

// Grow appends exactly count fresh instances to the pool and returns the
// pool for chaining. Growing never moves or drops existing instances.
func (p *Pool[T]) Grow(count int) *Pool[T] {
	assert.NonNegative(count, "grow count")
	p.appendNew(count)
	return p
}

// GrowBySteps grows the pool by the given number of full grow steps.
func (p *Pool[T]) GrowBySteps(steps int) *Pool[T] {
	assert.NonNegative(steps, "grow steps")
	p.appendNew(steps * p.growStep)
	return p
}

// TakeOne returns the first available instance found by a single wrapping
// scan starting at the cursor. The cursor advances by one for every
// instance examined, so it ends up one past the returned instance.
//
// If the scan finds nothing the pool grows by one step and the first
// instance of the fresh block is returned.
//
// The returned instance is not marked as taken in any way. The caller's
// domain logic must flip the state backing the availability predicate, or
// the next take will hand out the same instance again.
func (p *Pool[T]) TakeOne() T {
	p.stats.Takes += 1

	for range p.instances {
		instance := p.instances[p.cursor]
		p.cursor = (p.cursor + 1) % len(p.instances)
		p.stats.Scanned += 1

		if p.isAvailable(instance) {
			return instance
		}
	}

	// nothing available, hand out the first instance of a fresh block
	first := p.coverDeficit(1)
	p.cursor = (first + 1) % len(p.instances)

	return p.instances[first]
}

// TakeMany takes count available instances, growing on demand, and returns
// them in a freshly allocated slice of exactly count elements.
func (p *Pool[T]) TakeMany(count int) []T {
	assert.NonNegative(count, "take count")
	return p.TakeAndFill(make([]T, count), count)
}

// TakeAndFill resets every slot of buffer to the zero value of T, then
// fills slots 0 to fillCount-1 with available instances in discovery order.
//
// A single wrapping scan from the cursor runs first, advancing the cursor
// as TakeOne does. If the pass ends short of fillCount, the pool grows by
// as many whole steps as the deficit needs and the remaining slots are
// filled from the start of the fresh block. Slots at fillCount and beyond
// keep the zero value.
//
// The buffer is written in place and returned for convenience; the caller
// keeps ownership.
func (p *Pool[T]) TakeAndFill(buffer []T, fillCount int) []T {
	assert.InRange(fillCount, 0, len(buffer), "fill count")

	p.stats.Takes += 1

	clear(buffer)

	matched := 0

	for range p.instances {
		if matched == fillCount {
			return buffer
		}

		instance := p.instances[p.cursor]
		p.cursor = (p.cursor + 1) % len(p.instances)
		p.stats.Scanned += 1

		if p.isAvailable(instance) {
			buffer[matched] = instance
			matched += 1
		}
	}

	if matched == fillCount {
		return buffer
	}

	// the pass came up short, cover the deficit from a fresh block
	deficit := fillCount - matched
	first := p.coverDeficit(deficit)

	for idx := range deficit {
		buffer[matched+idx] = p.instances[first+idx]
	}

	p.cursor = (first + deficit) % len(p.instances)

	return buffer
}

// coverDeficit appends whatever the growth policy decides covers the given
// deficit and returns the index of the first fresh instance.
func (p *Pool[T]) coverDeficit(deficit int) int {
	count := p.grower.GrowthFor(deficit, p.growStep)
	if count < deficit {
		panic(fmt.Sprintf("grower returned %d instances for a deficit of %d", count, deficit))
	}

	first := len(p.instances)
	p.appendNew(count)
	p.stats.Grown += 1

	return first
}

func (p *Pool[T]) appendNew(count int) {
	for range count {
		p.instances = append(p.instances, p.factory())
	}

	p.stats.Created += count
}
