package parser

import (
	"github.com/Brainrotlang/brainrot/ast"
)

// The FunctionTable maps function names to their definitions. A program has
// one flat namespace of functions; there is no overloading.
type FunctionTable map[string]*ast.FunctionDef

func NewFunctionTable() FunctionTable {
	return make(FunctionTable)
}

// Add registers a function definition. If the name is already taken the
// first definition wins and Add reports the collision, so that the caller
// can warn without halting.
func (ft FunctionTable) Add(fn *ast.FunctionDef) bool {
	if _, exists := ft[fn.Name]; exists {
		return false
	}
	ft[fn.Name] = fn
	return true
}

func (ft FunctionTable) Get(name string) (*ast.FunctionDef, bool) {
	fn, ok := ft[name]
	return fn, ok
}
