// Package interpreter executes parsed smalljs scripts by walking the AST.
// It implements lexical scoping with closures, the declaration pre-pass,
// non-local return, and the global builtin environment. The AST producer and
// the embedding driver live outside this package.
package interpreter
