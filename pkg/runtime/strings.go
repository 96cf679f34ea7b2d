package runtime

import (
	"strconv"
	"strings"
)

// Stringify renders a value the way the print builtin does: strings are raw,
// integers decimal, functions show their name, plain objects list their own
// fields in insertion order. Self-referencing objects (the global environment
// binds itself under globalThis) render as "..." on revisit.
func Stringify(v Value) string {
	var b strings.Builder
	writeValue(&b, v, make(map[*JSObject]bool))
	return b.String()
}

func writeValue(b *strings.Builder, v Value, seen map[*JSObject]bool) {
	switch val := v.(type) {
	case UndefinedValue:
		b.WriteString("undefined")
	case IntegerValue:
		b.WriteString(strconv.FormatInt(val.Val, 10))
	case StringValue:
		b.WriteString(val.Val)
	case *JSObject:
		writeObject(b, val, seen)
	default:
		b.WriteString("undefined")
	}
}

func writeObject(b *strings.Builder, obj *JSObject, seen map[*JSObject]bool) {
	if obj.Callable() {
		if obj.name != "" {
			b.WriteString("function ")
			b.WriteString(obj.name)
		} else {
			b.WriteString("function")
		}
		return
	}
	if seen[obj] {
		b.WriteString("...")
		return
	}
	seen[obj] = true
	b.WriteString("{ ")
	for i, key := range obj.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(key)
		b.WriteString(": ")
		writeValue(b, obj.fields[key], seen)
	}
	b.WriteString(" }")
	delete(seen, obj)
}
