package interpreter

import (
	"errors"
	"fmt"
)

// FailureKind classifies fatal runtime diagnostics. The language has no catch
// construct, so every Failure aborts the script.
type FailureKind string

const (
	FailureType              FailureKind = "TypeError"
	FailureUndefinedVariable FailureKind = "UndefinedVariableError"
	FailureArity             FailureKind = "ArityError"
	FailureArithmetic        FailureKind = "ArithmeticError"
)

// Failure is a fatal runtime diagnostic carrying the originating 1-based
// source line. Failures raised inside builtins surface with Line 0 and get
// stamped with the call site's line as they cross the evaluator (attachLine).
type Failure struct {
	Kind FailureKind
	Line int
	Msg  string
}

func (f *Failure) Error() string {
	if f.Line > 0 {
		return fmt.Sprintf("%s at line %d: %s", f.Kind, f.Line, f.Msg)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Msg)
}

func newTypeError(line int, format string, args ...any) error {
	return &Failure{Kind: FailureType, Line: line, Msg: fmt.Sprintf(format, args...)}
}

func newUndefinedVariableError(line int, name string) error {
	return &Failure{Kind: FailureUndefinedVariable, Line: line, Msg: fmt.Sprintf("undefined variable %s", name)}
}

func newArityError(line int, format string, args ...any) error {
	return &Failure{Kind: FailureArity, Line: line, Msg: fmt.Sprintf(format, args...)}
}

func newArithmeticError(line int, format string, args ...any) error {
	return &Failure{Kind: FailureArithmetic, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// attachLine stamps line onto a Failure that surfaced without a location.
// Return signals and already-located failures pass through untouched.
func attachLine(err error, line int) error {
	var failure *Failure
	if errors.As(err, &failure) && failure.Line == 0 {
		failure.Line = line
	}
	return err
}
