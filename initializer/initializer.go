// The initializer turns source code into everything the evaluator needs to
// run it: the top-level statements, the function table, and any diagnostics
// picked up on the way.
package initializer

import (
	"os"

	"github.com/Brainrotlang/brainrot/ast"
	"github.com/Brainrotlang/brainrot/lexer"
	"github.com/Brainrotlang/brainrot/object"
	"github.com/Brainrotlang/brainrot/parser"
)

type Program struct {
	Statements *ast.StatementList
	Functions  parser.FunctionTable

	// Function definitions that lost to an earlier definition of the same
	// name. The analyzer warns about them.
	Redefined []*ast.FunctionDef

	Errors object.Errors
}

func Parse(sourceName, sourceCode string) *Program {
	l := lexer.NewLexer(sourceName, sourceCode)
	p := parser.New(l)
	statements, functions := p.ParseProgram()
	return &Program{
		Statements: statements,
		Functions:  functions,
		Redefined:  p.Redefined,
		Errors:     p.Errors,
	}
}

func ParseFile(path string) (*Program, error) {
	sourceCode, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(sourceCode)), nil
}
