package main

import (
	"fmt"
	"os"

	"github.com/Brainrotlang/brainrot/analyzer"
	"github.com/Brainrotlang/brainrot/ast"
	"github.com/Brainrotlang/brainrot/evaluator"
	"github.com/Brainrotlang/brainrot/initializer"
	"github.com/Brainrotlang/brainrot/object"
	"github.com/Brainrotlang/brainrot/repl"
	"github.com/Brainrotlang/brainrot/text"
	"github.com/Brainrotlang/brainrot/token"
)

func main() {
	if len(os.Args) > 1 {
		os.Exit(runFile(os.Args[1]))
	}
	fmt.Print(text.Logo())
	repl.Start()
}

// runFile runs a program from a file: top-level statements first, then its
// skibidi main function.
func runFile(path string) int {
	program, err := initializer.ParseFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, text.ERROR+err.Error())
		return 1
	}
	if len(program.Errors) > 0 {
		for _, parseErr := range program.Errors {
			fmt.Fprintln(os.Stderr, text.ERROR+parseErr.Message+text.DescribePos(parseErr.Token)+".")
		}
		return 1
	}
	for _, warning := range analyzer.Analyze(program) {
		fmt.Fprintln(os.Stderr, text.WARNING+warning.Message+text.DescribePos(warning.Token)+".")
	}

	env := object.NewEnvironment()
	c := evaluator.NewContext(program.Functions, os.Stdout, os.Stderr, os.Stdin)
	if runErr := evaluator.ExecProgram(program.Statements, env, c); runErr != nil {
		fmt.Fprintln(os.Stderr, runErr.Inspect(object.ViewStdOut))
		return 1
	}

	mainFn, ok := program.Functions.Get("main")
	if !ok {
		missing := object.CreateErr("init/main/missing", token.Token{Source: path})
		fmt.Fprintln(os.Stderr, text.ERROR+missing.Message+".")
		return 1
	}
	call := &ast.CallExpression{Token: mainFn.Token, Name: "main"}
	if result := evaluator.Eval(call, env, c); result.Type() == object.ERROR_OBJ {
		fmt.Fprintln(os.Stderr, result.Inspect(object.ViewStdOut))
		return 1
	}
	return 0
}
