// Package ast defines the expression nodes consumed by the smalljs evaluator.
// Nodes are produced externally (parser or exporter tooling) and decoded from
// the JSON interchange format in decode.go; the evaluator never mutates them.
package ast

// Expr is the closed set of smalljs expression nodes. Every node carries the
// 1-based source line it originated from, used for runtime diagnostics.
type Expr interface {
	Line() int
	exprNode()
}

// Script wraps the single top-level block of a parsed program.
type Script struct {
	Body *Block
}

// Block is a sequence of expressions evaluated for their side effects.
type Block struct {
	Exprs  []Expr
	LineNo int
}

// Literal carries an embedded constant: int64 or string.
type Literal struct {
	Value  any
	LineNo int
}

// Call applies a qualifier expression to arguments with no receiver.
type Call struct {
	Qualifier Expr
	Args      []Expr
	LineNo    int
}

// Identifier reads a name from the lexical scope chain.
type Identifier struct {
	Name   string
	LineNo int
}

// VarAssignment binds Name in the current environment. Declaration marks the
// `var`-introducing form; non-declaring assignments require the name to
// already resolve somewhere in the scope chain.
type VarAssignment struct {
	Name        string
	Expr        Expr
	Declaration bool
	LineNo      int
}

// Fun is a function literal. TopLevel functions are registered under their
// name in the defining environment as soon as the node is evaluated, which is
// what makes top-level recursion and mutual recursion work.
type Fun struct {
	Name       string
	Parameters []string
	TopLevel   bool
	Body       *Block
	LineNo     int
}

// Return transfers control to the nearest enclosing invocation frame.
// Expr may be nil for a bare return.
type Return struct {
	Expr   Expr
	LineNo int
}

// If evaluates exactly one branch for side effects and yields undefined.
type If struct {
	Condition  Expr
	TrueBlock  *Block
	FalseBlock *Block
	LineNo     int
}

// ObjectField is one initializer of an ObjectLiteral. Field order is
// declaration order and is preserved at runtime.
type ObjectField struct {
	Name  string
	Value Expr
}

// ObjectLiteral creates a fresh prototype-less object.
type ObjectLiteral struct {
	Fields []ObjectField
	LineNo int
}

// FieldAccess reads a property; a miss yields undefined rather than an error.
type FieldAccess struct {
	Receiver Expr
	Name     string
	LineNo   int
}

// FieldAssignment creates or overwrites a property on the receiver object.
type FieldAssignment struct {
	Receiver Expr
	Name     string
	Expr     Expr
	LineNo   int
}

// MethodCall invokes a property of the receiver with the receiver bound as
// `this`.
type MethodCall struct {
	Receiver Expr
	Name     string
	Args     []Expr
	LineNo   int
}

func (b *Block) Line() int           { return b.LineNo }
func (l *Literal) Line() int         { return l.LineNo }
func (c *Call) Line() int            { return c.LineNo }
func (i *Identifier) Line() int      { return i.LineNo }
func (v *VarAssignment) Line() int   { return v.LineNo }
func (f *Fun) Line() int             { return f.LineNo }
func (r *Return) Line() int          { return r.LineNo }
func (i *If) Line() int              { return i.LineNo }
func (o *ObjectLiteral) Line() int   { return o.LineNo }
func (f *FieldAccess) Line() int     { return f.LineNo }
func (f *FieldAssignment) Line() int { return f.LineNo }
func (m *MethodCall) Line() int      { return m.LineNo }

func (*Block) exprNode()           {}
func (*Literal) exprNode()         {}
func (*Call) exprNode()            {}
func (*Identifier) exprNode()      {}
func (*VarAssignment) exprNode()   {}
func (*Fun) exprNode()             {}
func (*Return) exprNode()          {}
func (*If) exprNode()              {}
func (*ObjectLiteral) exprNode()   {}
func (*FieldAccess) exprNode()     {}
func (*FieldAssignment) exprNode() {}
func (*MethodCall) exprNode()      {}
