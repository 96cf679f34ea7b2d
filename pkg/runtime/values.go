// Package runtime provides the smalljs value model: the dynamic value union,
// callable objects, and the environment chain the evaluator executes against.
package runtime

import "fmt"

// Kind identifies the runtime value category.
type Kind int

const (
	KindUndefined Kind = iota
	KindInteger
	KindString
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. The union is closed:
// undefined, integer, string, or object reference. There is no boolean kind;
// the language encodes truth as the integers 1 and 0.
type Value interface {
	Kind() Kind
}

// UndefinedValue is the absence-of-a-value value.
type UndefinedValue struct{}

func (UndefinedValue) Kind() Kind { return KindUndefined }

// Undefined is the singleton shared by all undefined results.
var Undefined = UndefinedValue{}

type IntegerValue struct {
	Val int64
}

func (v IntegerValue) Kind() Kind { return KindInteger }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

// Invoker is the invocation behaviour of a callable object:
// (receiver, argument list) → value. The receiver is Undefined for plain
// calls and the method's object for method calls.
type Invoker func(receiver Value, args []Value) (Value, error)

// JSObject is a mapping from property name to value, preserving insertion
// order, with an optional prototype link and an optional invocation
// behaviour. Environments are JSObjects too: the prototype link doubles as
// the parent scope, so identifier lookup and prototype lookup share one walk.
type JSObject struct {
	proto   *JSObject
	fields  map[string]Value
	keys    []string
	name    string
	invoker Invoker
}

func (o *JSObject) Kind() Kind { return KindObject }

// NewObject constructs an object with an optional prototype.
func NewObject(proto *JSObject) *JSObject {
	return &JSObject{proto: proto, fields: make(map[string]Value)}
}

// NewFunction constructs a callable object from a name and an invocation
// behaviour.
func NewFunction(name string, invoker Invoker) *JSObject {
	obj := NewObject(nil)
	obj.name = name
	obj.invoker = invoker
	return obj
}

// NewEnv constructs a fresh environment linked to an optional parent scope.
func NewEnv(parent *JSObject) *JSObject {
	return NewObject(parent)
}

// Name returns the function name, or "" for non-functions.
func (o *JSObject) Name() string { return o.name }

// Parent returns the prototype / enclosing scope, or nil.
func (o *JSObject) Parent() *JSObject { return o.proto }

// Callable reports whether the object carries an invocation behaviour.
func (o *JSObject) Callable() bool { return o.invoker != nil }

// Invoke runs the object's invocation behaviour.
func (o *JSObject) Invoke(receiver Value, args []Value) (Value, error) {
	if o.invoker == nil {
		return nil, fmt.Errorf("%s is not invocable", Stringify(o))
	}
	return o.invoker(receiver, args)
}

// Register creates or updates the binding for name on this object. It always
// writes the local table, never a prototype, which is what gives assignments
// their current-frame semantics.
func (o *JSObject) Register(name string, value Value) {
	if _, ok := o.fields[name]; !ok {
		o.keys = append(o.keys, name)
	}
	o.fields[name] = value
}

// Lookup resolves name against this object and its prototype chain. The
// second result distinguishes "not found" from "found with value undefined";
// identifier resolution depends on that distinction.
func (o *JSObject) Lookup(name string) (Value, bool) {
	for obj := o; obj != nil; obj = obj.proto {
		if value, ok := obj.fields[name]; ok {
			return value, true
		}
	}
	return Undefined, false
}

// LookupOrUndefined collapses a lookup miss into Undefined; field access uses
// this variant.
func (o *JSObject) LookupOrUndefined(name string) Value {
	value, _ := o.Lookup(name)
	return value
}

// FieldNames returns the object's own property names in insertion order.
func (o *JSObject) FieldNames() []string {
	names := make([]string, len(o.keys))
	copy(names, o.keys)
	return names
}
