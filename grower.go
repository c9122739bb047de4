package lazypool

// A Grower decides how many instances a demand triggered growth appends to
// cover a deficit. step is the pool's current grow step. Implementations
// must return at least deficit; returning less panics the take operation
// that triggered the growth.
type Grower interface {
	GrowthFor(deficit, step int) int
}

// StepGrower is the default growth policy. It rounds the deficit up to
// whole grow steps, so the pool always grows by a multiple of its step,
// even when that overshoots the deficit.
type StepGrower struct{}

func (StepGrower) GrowthFor(deficit, step int) int {
	steps := (deficit + step - 1) / step
	return steps * step
}

// GrowerFunc adapts a plain function to the Grower interface.
type GrowerFunc func(deficit, step int) int

func (fn GrowerFunc) GrowthFor(deficit, step int) int {
	return fn(deficit, step)
}
