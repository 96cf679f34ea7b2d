package interpreter

import (
	"errors"
	"io"

	"smalljs/interpreter-go/pkg/ast"
	"smalljs/interpreter-go/pkg/runtime"
)

// Interpreter executes parsed smalljs scripts against a global environment.
// It is single-threaded and purely recursive; the only non-local control
// transfer is the return signal.
type Interpreter struct {
	out    io.Writer
	global *runtime.JSObject
}

// New builds an interpreter whose print builtin writes to out. The global
// environment with all builtins is constructed once, up front.
func New(out io.Writer) *Interpreter {
	i := &Interpreter{out: out}
	i.global = i.newGlobalEnv()
	return i
}

// Interpret executes script, writing print output to out. Failures surface
// as *Failure diagnostics carrying a message and source line.
func Interpret(script *ast.Script, out io.Writer) error {
	return New(out).Interpret(script)
}

// Interpret executes the script body in the interpreter's global environment.
func (i *Interpreter) Interpret(script *ast.Script) error {
	if script == nil || script.Body == nil {
		return nil
	}
	_, err := i.evaluateExpression(script.Body, i.global)
	if err != nil {
		var ret returnSignal
		if errors.As(err, &ret) {
			// A return with no enclosing invocation frame is a script bug,
			// not control flow the host should ever observe.
			return newTypeError(script.Body.Line(), "return outside of a function")
		}
		return err
	}
	return nil
}

// GlobalEnv exposes the root environment (globalThis) for embedding hosts.
func (i *Interpreter) GlobalEnv() *runtime.JSObject { return i.global }

func (i *Interpreter) evaluateExpression(node ast.Expr, env *runtime.JSObject) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.Block:
		return i.evaluateBlock(n, env)

	case *ast.Literal:
		switch v := n.Value.(type) {
		case int64:
			return runtime.IntegerValue{Val: v}, nil
		case string:
			return runtime.StringValue{Val: v}, nil
		case nil:
			return runtime.Undefined, nil
		default:
			return nil, newTypeError(n.Line(), "unsupported literal %v", n.Value)
		}

	case *ast.Call:
		qualifier, err := i.evaluateExpression(n.Qualifier, env)
		if err != nil {
			return nil, err
		}
		function, ok := qualifier.(*runtime.JSObject)
		if !ok || !function.Callable() {
			return nil, newTypeError(n.Line(), "%s is not a function", runtime.Stringify(qualifier))
		}
		args, err := i.evaluateArgs(n.Args, env)
		if err != nil {
			return nil, err
		}
		result, err := function.Invoke(runtime.Undefined, args)
		if err != nil {
			return nil, attachLine(err, n.Line())
		}
		return result, nil

	case *ast.Identifier:
		value, ok := env.Lookup(n.Name)
		if !ok {
			return nil, newUndefinedVariableError(n.Line(), n.Name)
		}
		return value, nil

	case *ast.VarAssignment:
		if !n.Declaration {
			if _, ok := env.Lookup(n.Name); !ok {
				return nil, newUndefinedVariableError(n.Line(), n.Name)
			}
		}
		value, err := i.evaluateExpression(n.Expr, env)
		if err != nil {
			return nil, err
		}
		// Flat function scoping: the binding lands in the current call's
		// environment even when the name was declared further out.
		env.Register(n.Name, value)
		return value, nil

	case *ast.Fun:
		return i.evaluateFun(n, env), nil

	case *ast.Return:
		value := runtime.Value(runtime.Undefined)
		if n.Expr != nil {
			result, err := i.evaluateExpression(n.Expr, env)
			if err != nil {
				return nil, err
			}
			value = result
		}
		return nil, returnSignal{value: value}

	case *ast.If:
		cond, err := i.evaluateExpression(n.Condition, env)
		if err != nil {
			return nil, err
		}
		// The condition domain is restricted: undefined picks the false
		// branch, integer 1 the true branch, any other integer the false
		// branch, and anything else selects no branch at all.
		switch v := cond.(type) {
		case runtime.UndefinedValue:
			err = i.evaluateBranch(n.FalseBlock, env)
		case runtime.IntegerValue:
			if v.Val == 1 {
				err = i.evaluateBranch(n.TrueBlock, env)
			} else {
				err = i.evaluateBranch(n.FalseBlock, env)
			}
		}
		if err != nil {
			return nil, err
		}
		return runtime.Undefined, nil

	case *ast.ObjectLiteral:
		obj := runtime.NewObject(nil)
		for _, field := range n.Fields {
			value, err := i.evaluateExpression(field.Value, env)
			if err != nil {
				return nil, err
			}
			obj.Register(field.Name, value)
		}
		return obj, nil

	case *ast.FieldAccess:
		obj, err := i.evaluateReceiver(n.Receiver, env, n.Line())
		if err != nil {
			return nil, err
		}
		return obj.LookupOrUndefined(n.Name), nil

	case *ast.FieldAssignment:
		obj, err := i.evaluateReceiver(n.Receiver, env, n.Line())
		if err != nil {
			return nil, err
		}
		value, err := i.evaluateExpression(n.Expr, env)
		if err != nil {
			return nil, err
		}
		obj.Register(n.Name, value)
		return value, nil

	case *ast.MethodCall:
		obj, err := i.evaluateReceiver(n.Receiver, env, n.Line())
		if err != nil {
			return nil, err
		}
		method, ok := obj.LookupOrUndefined(n.Name).(*runtime.JSObject)
		if !ok || !method.Callable() {
			return nil, newTypeError(n.Line(), "%s is not a function", n.Name)
		}
		args, err := i.evaluateArgs(n.Args, env)
		if err != nil {
			return nil, err
		}
		result, err := method.Invoke(obj, args)
		if err != nil {
			return nil, attachLine(err, n.Line())
		}
		return result, nil

	default:
		return nil, newTypeError(node.Line(), "unsupported expression type %T", node)
	}
}

// evaluateBlock runs the declaration pre-pass, then the statements in order
// for their side effects. A block's value is always undefined.
func (i *Interpreter) evaluateBlock(block *ast.Block, env *runtime.JSObject) (runtime.Value, error) {
	declare(block, env)
	for _, expr := range block.Exprs {
		if _, err := i.evaluateExpression(expr, env); err != nil {
			return nil, err
		}
	}
	return runtime.Undefined, nil
}

func (i *Interpreter) evaluateBranch(block *ast.Block, env *runtime.JSObject) error {
	if block == nil {
		return nil
	}
	_, err := i.evaluateBlock(block, env)
	return err
}

// evaluateArgs evaluates call arguments left to right.
func (i *Interpreter) evaluateArgs(exprs []ast.Expr, env *runtime.JSObject) ([]runtime.Value, error) {
	args := make([]runtime.Value, 0, len(exprs))
	for _, expr := range exprs {
		value, err := i.evaluateExpression(expr, env)
		if err != nil {
			return nil, err
		}
		args = append(args, value)
	}
	return args, nil
}

// evaluateReceiver evaluates an expression that must yield an object.
func (i *Interpreter) evaluateReceiver(expr ast.Expr, env *runtime.JSObject, line int) (*runtime.JSObject, error) {
	value, err := i.evaluateExpression(expr, env)
	if err != nil {
		return nil, err
	}
	obj, ok := value.(*runtime.JSObject)
	if !ok {
		return nil, newTypeError(line, "%s is not an object", runtime.Stringify(value))
	}
	return obj, nil
}
