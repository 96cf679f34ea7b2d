package interpreter

import (
	"errors"

	"smalljs/interpreter-go/pkg/ast"
	"smalljs/interpreter-go/pkg/runtime"
)

// evaluateFun builds a closure over the defining environment. Top-level
// functions are registered under their name immediately, which is what makes
// recursion among top-level functions work. The registration happens at
// evaluation time, so only statements after the Fun node can see the name.
func (i *Interpreter) evaluateFun(node *ast.Fun, env *runtime.JSObject) *runtime.JSObject {
	fun := runtime.NewFunction(node.Name, func(receiver runtime.Value, args []runtime.Value) (runtime.Value, error) {
		if len(args) != len(node.Parameters) {
			// Arity is checked before any body side effect. The call site
			// stamps its line onto the failure.
			return nil, newArityError(0, "wrong number of arguments for %s: got %d, want %d",
				functionLabel(node.Name), len(args), len(node.Parameters))
		}
		callEnv := runtime.NewEnv(env)
		callEnv.Register("this", receiver)
		for idx, param := range node.Parameters {
			callEnv.Register(param, args[idx])
		}
		if _, err := i.evaluateExpression(node.Body, callEnv); err != nil {
			var ret returnSignal
			if errors.As(err, &ret) {
				return ret.value, nil
			}
			return nil, err
		}
		return runtime.Undefined, nil
	})
	if node.TopLevel {
		env.Register(node.Name, fun)
	}
	return fun
}

func functionLabel(name string) string {
	if name == "" {
		return "anonymous function"
	}
	return name
}
