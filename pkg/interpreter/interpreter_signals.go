package interpreter

import "smalljs/interpreter-go/pkg/runtime"

// returnSignal carries a non-local return value up the Go call stack. It is
// ordinary control flow shaped as an error so it rides the same propagation
// path as diagnostics, and it is caught exclusively at the function
// invocation boundary; blocks and ifs pass it through untouched. It is never
// part of the Failure taxonomy.
type returnSignal struct {
	value runtime.Value
}

func (r returnSignal) Error() string {
	return "return"
}
