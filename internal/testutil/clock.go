// Package testutil provides deterministic substitutes for the order
// engine's injectable collaborators: the wall clock and the order
// reference generator.
package testutil

import (
	"fmt"
	"sync"
	"time"
)

// FixedClock returns a clock function that yields base on the first
// call and advances by step on each subsequent call.
//
// Thread-safety: the returned function is safe for concurrent use via
// an internal mutex, though the engine calls it from one goroutine.
func FixedClock(base time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	next := base
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := next
		next = next.Add(step)
		return t
	}
}

// SequentialReferences generates order references "ref-1", "ref-2", ...
// for tests that assert on output.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type SequentialReferences struct {
	mu sync.Mutex
	n  int
}

// NewReference returns the next reference in the sequence.
func (g *SequentialReferences) NewReference() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("ref-%d", g.n)
}
