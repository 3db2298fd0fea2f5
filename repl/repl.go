package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lmorg/readline"

	"github.com/Brainrotlang/brainrot/ast"
	"github.com/Brainrotlang/brainrot/evaluator"
	"github.com/Brainrotlang/brainrot/initializer"
	"github.com/Brainrotlang/brainrot/object"
	"github.com/Brainrotlang/brainrot/parser"
	"github.com/Brainrotlang/brainrot/text"
)

// A Repl keeps one environment and one function table alive across lines,
// so that a variable declared on one line is still there on the next.
type Repl struct {
	env *object.Environment
	c   *evaluator.Context
	out io.Writer
}

func New(out, errOut io.Writer, in io.Reader) *Repl {
	c := evaluator.NewContext(parser.NewFunctionTable(), out, errOut, in)
	return &Repl{env: object.NewEnvironment(), c: c, out: out}
}

func Start() {
	r := New(os.Stdout, os.Stderr, os.Stdin)
	rline := readline.NewInstance()
	rline.SetPrompt(text.PROMPT)
	for {
		line, err := rline.Readline()
		if err != nil {
			fmt.Println(text.ERROR, err)
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if r.Do(line) {
			break
		}
	}
}

// Do runs one line of input. It answers true when the user wants out.
func (r *Repl) Do(line string) bool {
	switch line {
	case "quit":
		return true
	case "vars":
		io.WriteString(r.out, r.env.StringDumpVariables())
		return false
	}

	// The semicolon can be left off at the prompt.
	if !strings.HasSuffix(line, ";") && !strings.HasSuffix(line, "}") {
		line = line + ";"
	}

	program := initializer.Parse("", line)
	if len(program.Errors) > 0 {
		for _, err := range program.Errors {
			fmt.Fprintln(r.out, text.ERROR+err.Message+text.DescribePos(err.Token)+".")
		}
		return false
	}

	for name, fn := range program.Functions {
		if !r.c.Functions.Add(fn) {
			fmt.Fprintln(r.out, text.WARNING+"function "+text.Emph(name)+
				" is already defined; the first definition wins.")
		}
	}
	for _, fn := range program.Redefined {
		fmt.Fprintln(r.out, text.WARNING+"function "+text.Emph(fn.Name)+
			" is already defined; the first definition wins.")
	}

	for _, stmt := range program.Statements.Statements {
		// A bare expression at the prompt has its value echoed back.
		if exprStmt, ok := stmt.(*ast.ExpressionStatement); ok {
			result := evaluator.Eval(exprStmt.Expr, r.env, r.c)
			if err, isErr := result.(*object.Error); isErr {
				fmt.Fprintln(r.out, err.Inspect(object.ViewStdOut))
				return false
			}
			if result.Type() != object.NO_OBJ {
				fmt.Fprintln(r.out, result.Inspect(object.ViewLiteral))
			}
			continue
		}
		single := &ast.StatementList{Token: stmt.GetToken(), Statements: []ast.Node{stmt}}
		if err := evaluator.ExecProgram(single, r.env, r.c); err != nil {
			fmt.Fprintln(r.out, err.Inspect(object.ViewStdOut))
			return false
		}
	}
	return false
}
