// Package bench collects the external collaborators named but not
// specified by the radix package's contract: a mutex that serializes
// tuning-knob mutation against concurrent sorts, and generators that build
// test input arrays. Neither lives inside package radix itself.
package bench

import (
	"fmt"
	"sync"

	"github.com/havrylenko/parasort/radix"
)

// Guard serializes calls into package radix behind a single mutex, so that
// a tuning-knob change and a sort never interleave unpredictably from this
// caller's point of view. radix itself makes no such guarantee (it reads
// each tunable once per decision point, per its own contract) — Guard is
// the collaborator callers reach for when they need one.
//
// The zero value is ready to use.
type Guard struct {
	mu sync.Mutex
}

// SetInsertionThreshold acquires the guard and forwards to
// radix.SetInsertionThreshold.
func (g *Guard) SetInsertionThreshold(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	radix.SetInsertionThreshold(n)
}

// SetMergeThreshold acquires the guard and forwards to
// radix.SetMergeThreshold.
func (g *Guard) SetMergeThreshold(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	radix.SetMergeThreshold(n)
}

// SetThreadWorkload acquires the guard and forwards to
// radix.SetThreadWorkload.
func (g *Guard) SetThreadWorkload(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	radix.SetThreadWorkload(n)
}

// Sort acquires the guard and sorts a in place. Unlike radix.Sort, a panic
// raised by a failed worker is recovered and returned as an error instead
// of propagating to the caller.
func (g *Guard) Sort(a []int32) (err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	defer recoverInto(&err)
	radix.Sort(a)
	return nil
}

// SortRange acquires the guard and sorts a[from:to] in place, recovering
// any worker panic into a returned error alongside SortRange's own
// validation errors.
func (g *Guard) SortRange(a []int32, from, to int) (err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	defer recoverInto(&err)
	return radix.SortRange(a, from, to)
}

func recoverInto(err *error) {
	if p := recover(); p != nil {
		*err = fmt.Errorf("bench: recovered from sort panic: %v", p)
	}
}
