// Package internal holds helpers shared by packages parallel and radix that
// are not part of their public API.
package internal

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// ComputeNofBatches divides the size of the range (high - low) by n. If n is 0,
// a default is used that takes runtime.GOMAXPROCS(0) into account.
func ComputeNofBatches(low, high, n int) (batches int) {
	switch size := high - low; {
	case size > 0:
		switch {
		case n == 0:
			batches = 2 * runtime.GOMAXPROCS(0)
		case n > 0:
			batches = n
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
		if batches > size {
			batches = size
		}
	case size == 0:
		batches = 1
	default:
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	return
}

// RuntimeFault is the value WrapPanic produces from a recovered panic: a
// stack-annotated error describing a worker that failed instead of
// returning normally.
type RuntimeFault struct {
	error
}

// RuntimeError marks RuntimeFault as a runtime.Error-compatible fault for
// callers that switch on that interface.
func (RuntimeFault) RuntimeError() {}

// WrapPanic turns a recovered panic value into an error carrying a stack
// trace, for re-raising across a goroutine join boundary. Returns nil for a
// nil panic value (the common case of an unwound, non-panicking goroutine).
func WrapPanic(p interface{}) interface{} {
	if p == nil {
		return nil
	}
	if err, isError := p.(error); isError {
		wrapped := errors.WithStack(err)
		if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
			return RuntimeFault{wrapped}
		}
		return wrapped
	}
	return errors.WithStack(errors.Errorf("%v", p))
}
