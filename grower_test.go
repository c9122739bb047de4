package lazypool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStepGrower(t *testing.T) {
	require.Equal(t, 4, StepGrower{}.GrowthFor(1, 4))
	require.Equal(t, 4, StepGrower{}.GrowthFor(4, 4))
	require.Equal(t, 8, StepGrower{}.GrowthFor(5, 4))
	require.Equal(t, 3, StepGrower{}.GrowthFor(3, 1))
}

func TestCustomGrower(t *testing.T) {
	f := &fixture{}

	var deficits []int
	var steps []int

	// grow by exactly the deficit, without step quantization
	exact := GrowerFunc(func(deficit, step int) int {
		deficits = append(deficits, deficit)
		steps = append(steps, step)
		return deficit
	})

	pool := NewWithGrower(2, 4, f.factory, f.isAvailable, exact)

	// both instances are available, the scan covers two of the five slots
	pool.TakeAndFill(make([]*resource, 5), 5)

	require.Equal(t, []int{3}, deficits, "the grower sees the deficit left after the scan")
	require.Equal(t, []int{4}, steps)
	require.Equal(t, 5, pool.Len(), "the exact grower skips the step overshoot")
}

func TestGrowerReturningTooFewPanics(t *testing.T) {
	f := &fixture{}

	broken := GrowerFunc(func(deficit, step int) int {
		return deficit - 1
	})

	pool := NewWithGrower(0, 2, f.factory, f.isAvailable, broken)

	require.Panics(t, func() { pool.TakeOne() })
}
