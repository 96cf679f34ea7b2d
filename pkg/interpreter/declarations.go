package interpreter

import (
	"smalljs/interpreter-go/pkg/ast"
	"smalljs/interpreter-go/pkg/runtime"
)

// declare is the pre-pass run once per executed block: it registers every
// name introduced by a declaring assignment as undefined in env before the
// block's statements run. It descends into nested blocks and both branches of
// an If, never into Fun bodies; those run their own pre-pass at call time.
func declare(block *ast.Block, env *runtime.JSObject) {
	for _, expr := range block.Exprs {
		declareExpr(expr, env)
	}
}

func declareExpr(expr ast.Expr, env *runtime.JSObject) {
	switch n := expr.(type) {
	case *ast.Block:
		declare(n, env)
	case *ast.VarAssignment:
		if n.Declaration {
			env.Register(n.Name, runtime.Undefined)
		}
	case *ast.If:
		if n.TrueBlock != nil {
			declare(n.TrueBlock, env)
		}
		if n.FalseBlock != nil {
			declare(n.FalseBlock, env)
		}
	}
}
