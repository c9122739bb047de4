package lazypool

// Stats are passive counters kept by a Pool. They are bookkeeping only and
// never feed back into pool behavior.
type Stats struct {
	// Created is the total number of factory invocations, initial fill
	// included.
	Created int

	// Takes counts calls to TakeOne, TakeMany and TakeAndFill.
	Takes int

	// Scanned counts instances examined by take scans. It does not include
	// instances handed out straight from a fresh block.
	Scanned int

	// Grown counts demand triggered growth events. Explicit Grow and
	// GrowBySteps calls are not included.
	Grown int
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool[T]) Stats() Stats {
	return p.stats
}
