package lazypool_test

import (
	"fmt"

	"github.com/oliverbestmann/lazypool"
)

type Bullet struct {
	X, Y   float64
	Active bool
}

func Example() {
	// the pool asks the predicate on every take, it keeps no availability
	// bookkeeping of its own
	pool := lazypool.New(2, 2,
		func() *Bullet { return &Bullet{} },
		func(b *Bullet) bool { return !b.Active })

	bullet := pool.TakeOne()
	bullet.Active = true // taking does not flip this, the caller does

	pool.TakeOne().Active = true
	fmt.Println(pool.Len())

	// with every instance busy, the next take grows the pool by one step
	pool.TakeOne().Active = true
	fmt.Println(pool.Len())

	pool.TakeOne().Active = true

	// once the caller releases an instance, takes find it again
	bullet.Active = false
	fmt.Println(pool.TakeOne() == bullet)

	// Output:
	// 2
	// 4
	// true
}
