// Package lazypool provides a generic object pool that recycles mutable
// instances instead of allocating new ones.
//
// The pool keeps no availability bookkeeping of its own. Whether an instance
// can be handed out is decided lazily, on every take, by a predicate the
// caller supplies at construction. The predicate must be backed by state the
// caller's own code mutates: the pool observes availability, it never flips
// it.
//
// A rotating cursor remembers where the previous scan stopped, so repeated
// takes amortize to constant time when instances are returned to
// availability promptly. When a full scan finds nothing the pool grows by a
// fixed step and hands out a fresh instance.
//
// A Pool is not safe for concurrent use.
package lazypool
