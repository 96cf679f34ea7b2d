package interpreter

import (
	"fmt"
	"strings"

	"smalljs/interpreter-go/pkg/runtime"
)

// newGlobalEnv builds the root environment: the globalThis self-reference,
// the print builtin wired to the interpreter's output sink, and the operator
// functions. Built once per interpreter; no process-wide mutable state.
func (i *Interpreter) newGlobalEnv() *runtime.JSObject {
	env := runtime.NewEnv(nil)
	env.Register("globalThis", env)

	env.Register("print", runtime.NewFunction("print", func(_ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		parts := make([]string, len(args))
		for idx, arg := range args {
			parts[idx] = runtime.Stringify(arg)
		}
		fmt.Fprintln(i.out, strings.Join(parts, " "))
		return runtime.Undefined, nil
	}))

	registerArithmetic(env, "+", func(a, b int64) (int64, error) { return a + b, nil })
	registerArithmetic(env, "-", func(a, b int64) (int64, error) { return a - b, nil })
	registerArithmetic(env, "*", func(a, b int64) (int64, error) { return a * b, nil })
	registerArithmetic(env, "/", func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, newArithmeticError(0, "division by zero")
		}
		return a / b, nil
	})
	registerArithmetic(env, "%", func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, newArithmeticError(0, "modulo by zero")
		}
		return a % b, nil
	})

	registerEquality(env, "==", false)
	registerEquality(env, "!=", true)

	registerOrdering(env, "<", func(c int) bool { return c < 0 })
	registerOrdering(env, "<=", func(c int) bool { return c <= 0 })
	registerOrdering(env, ">", func(c int) bool { return c > 0 })
	registerOrdering(env, ">=", func(c int) bool { return c >= 0 })

	return env
}

func registerArithmetic(env *runtime.JSObject, name string, op func(a, b int64) (int64, error)) {
	env.Register(name, runtime.NewFunction(name, func(_ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		a, b, err := integerOperands(name, args)
		if err != nil {
			return nil, err
		}
		result, err := op(a, b)
		if err != nil {
			return nil, err
		}
		return runtime.IntegerValue{Val: result}, nil
	}))
}

// registerEquality installs value equality: integers and strings compare by
// value, objects by identity, undefined equals only undefined.
func registerEquality(env *runtime.JSObject, name string, negate bool) {
	env.Register(name, runtime.NewFunction(name, func(_ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		if err := wantOperands(name, args); err != nil {
			return nil, err
		}
		return boolValue(valueEquals(args[0], args[1]) != negate), nil
	}))
}

// registerOrdering installs a total-order comparison over integers and over
// strings, encoding the boolean result as integer 1/0.
func registerOrdering(env *runtime.JSObject, name string, accept func(c int) bool) {
	env.Register(name, runtime.NewFunction(name, func(_ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		if err := wantOperands(name, args); err != nil {
			return nil, err
		}
		c, err := compareValues(name, args[0], args[1])
		if err != nil {
			return nil, err
		}
		return boolValue(accept(c)), nil
	}))
}

func wantOperands(name string, args []runtime.Value) error {
	if len(args) != 2 {
		return newArityError(0, "wrong number of arguments for %s: got %d, want 2", name, len(args))
	}
	return nil
}

func integerOperands(name string, args []runtime.Value) (int64, int64, error) {
	if err := wantOperands(name, args); err != nil {
		return 0, 0, err
	}
	a, ok := args[0].(runtime.IntegerValue)
	if !ok {
		return 0, 0, newTypeError(0, "%s expects integers, got %s", name, runtime.Stringify(args[0]))
	}
	b, ok := args[1].(runtime.IntegerValue)
	if !ok {
		return 0, 0, newTypeError(0, "%s expects integers, got %s", name, runtime.Stringify(args[1]))
	}
	return a.Val, b.Val, nil
}

func valueEquals(a, b runtime.Value) bool {
	switch left := a.(type) {
	case runtime.UndefinedValue:
		_, ok := b.(runtime.UndefinedValue)
		return ok
	case runtime.IntegerValue:
		right, ok := b.(runtime.IntegerValue)
		return ok && left.Val == right.Val
	case runtime.StringValue:
		right, ok := b.(runtime.StringValue)
		return ok && left.Val == right.Val
	case *runtime.JSObject:
		right, ok := b.(*runtime.JSObject)
		return ok && left == right
	default:
		return false
	}
}

func compareValues(name string, a, b runtime.Value) (int, error) {
	switch left := a.(type) {
	case runtime.IntegerValue:
		if right, ok := b.(runtime.IntegerValue); ok {
			switch {
			case left.Val < right.Val:
				return -1, nil
			case left.Val > right.Val:
				return 1, nil
			default:
				return 0, nil
			}
		}
	case runtime.StringValue:
		if right, ok := b.(runtime.StringValue); ok {
			return strings.Compare(left.Val, right.Val), nil
		}
	}
	return 0, newTypeError(0, "%s cannot compare %s and %s", name, runtime.Stringify(a), runtime.Stringify(b))
}

func boolValue(b bool) runtime.Value {
	if b {
		return runtime.IntegerValue{Val: 1}
	}
	return runtime.IntegerValue{Val: 0}
}
