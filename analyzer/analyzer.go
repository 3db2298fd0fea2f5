// The analyzer walks a parsed program before it runs and warns about
// things that are probably mistakes but don't stop the show: a variable
// used before it is declared, an assignment to a deadass variable, a bruh
// with nothing to break out of, a division by a literal zero, and calls
// that can't work. Warnings never prevent execution.
package analyzer

import (
	"github.com/Brainrotlang/brainrot/ast"
	"github.com/Brainrotlang/brainrot/initializer"
	"github.com/Brainrotlang/brainrot/object"
	"github.com/Brainrotlang/brainrot/stack"
	"github.com/Brainrotlang/brainrot/token"
)

// The builtins take a free-form argument list, so their calls are not
// arity-checked.
var builtinNames = map[string]bool{
	"yapping": true, "yappin": true, "baka": true,
	"ragequit": true, "chill": true, "slorp": true,
}

type analyzer struct {
	program  *initializer.Program
	warnings object.Errors

	// A stack of the scopes the walk is currently inside, innermost last.
	// Each scope maps declared names to their constness; a scope opened
	// for a function body blocks lookup into the scopes before it.
	scopes []scope

	// What loops and ohio blocks the walk is inside, for placing bruh.
	nesting *stack.Stack[string]
}

type scope struct {
	names    map[string]bool // name -> is deadass
	boundary bool
}

// Analyze inspects a parsed program and reports its misgivings.
func Analyze(program *initializer.Program) object.Errors {
	a := &analyzer{program: program, nesting: stack.NewStack[string]()}
	a.pushScope(false)
	for _, redefinition := range program.Redefined {
		a.warn("analysis/func/redefined", redefinition.Token, redefinition.Name)
	}
	a.walkStatements(program.Statements.Statements)
	for _, fn := range program.Functions {
		a.walkFunction(fn)
	}
	return a.warnings
}

func (a *analyzer) warn(warningID string, tok token.Token, args ...any) {
	a.warnings = object.Throw(warningID, a.warnings, tok, args...)
}

func (a *analyzer) pushScope(boundary bool) {
	a.scopes = append(a.scopes, scope{names: map[string]bool{}, boundary: boundary})
}

func (a *analyzer) popScope() {
	a.scopes = a.scopes[:len(a.scopes)-1]
}

func (a *analyzer) declare(name string, isConst bool) {
	a.scopes[len(a.scopes)-1].names[name] = isConst
}

func (a *analyzer) lookup(name string) (isConst, found bool) {
	for i := len(a.scopes) - 1; i >= 0; i-- {
		if isConst, found := a.scopes[i].names[name]; found {
			return isConst, true
		}
		if a.scopes[i].boundary {
			return false, false
		}
	}
	return false, false
}

func (a *analyzer) walkFunction(fn *ast.FunctionDef) {
	a.pushScope(true)
	for _, param := range fn.Params {
		a.declare(param.VarName, param.Mods.IsConst)
	}
	a.walkStatements(fn.Body.Statements)
	a.popScope()
}

func (a *analyzer) walkStatements(stmts []ast.Node) {
	for _, stmt := range stmts {
		a.walkStatement(stmt)
	}
}

func (a *analyzer) walkStatement(stmt ast.Node) {
	switch stmt := stmt.(type) {
	case *ast.StatementList:
		a.pushScope(false)
		a.walkStatements(stmt.Statements)
		a.popScope()
	case *ast.Declaration:
		if stmt.Init != nil {
			a.walkExpression(stmt.Init)
		}
		for _, elem := range stmt.ArrayInit {
			a.walkExpression(elem)
		}
		a.declare(stmt.Name, stmt.Mods.IsConst)
	case *ast.Assignment:
		a.walkAssignmentTarget(stmt.Target)
		a.walkExpression(stmt.Value)
	case *ast.ExpressionStatement:
		a.walkExpression(stmt.Expr)
	case *ast.PrintStatement:
		a.walkExpression(stmt.Expr)
	case *ast.ErrorPrintStatement:
		a.walkExpression(stmt.Expr)
	case *ast.IfStatement:
		a.walkExpression(stmt.Condition)
		a.walkStatement(stmt.Then)
		if stmt.Else != nil {
			a.walkStatement(stmt.Else)
		}
	case *ast.ForStatement:
		a.pushScope(false)
		a.nesting.Push("flex")
		if stmt.Init != nil {
			a.walkStatement(stmt.Init)
		}
		if stmt.Cond != nil {
			a.walkExpression(stmt.Cond)
		}
		if stmt.Incr != nil {
			a.walkStatement(stmt.Incr)
		}
		a.walkStatement(stmt.Body)
		a.nesting.Pop()
		a.popScope()
	case *ast.WhileStatement:
		a.walkExpression(stmt.Cond)
		a.nesting.Push("goon")
		a.walkStatement(stmt.Body)
		a.nesting.Pop()
	case *ast.DoWhileStatement:
		a.nesting.Push("mewing")
		a.walkStatement(stmt.Body)
		a.nesting.Pop()
		a.walkExpression(stmt.Cond)
	case *ast.SwitchStatement:
		a.walkExpression(stmt.Subject)
		a.nesting.Push("ohio")
		a.pushScope(false)
		for _, switchCase := range stmt.Cases {
			if switchCase.Value != nil {
				a.walkExpression(switchCase.Value)
			}
			a.walkStatements(switchCase.Body.Statements)
		}
		a.popScope()
		a.nesting.Pop()
	case *ast.BreakStatement:
		if a.nesting.IsEmpty() {
			a.warn("analysis/break", stmt.Token)
		}
	case *ast.ReturnStatement:
		if stmt.Value != nil {
			a.walkExpression(stmt.Value)
		}
	}
}

func (a *analyzer) walkAssignmentTarget(target ast.Node) {
	switch target := target.(type) {
	case *ast.Identifier:
		isConst, found := a.lookup(target.Value)
		if !found {
			a.warn("analysis/ident/undefined", target.Token, target.Value)
			return
		}
		if isConst {
			a.warn("analysis/const", target.Token, target.Value)
		}
	case *ast.ArrayAccess:
		isConst, found := a.lookup(target.Name)
		if !found {
			a.warn("analysis/ident/undefined", target.Token, target.Name)
		} else if isConst {
			a.warn("analysis/const", target.Token, target.Name)
		}
		for _, index := range target.Indices {
			a.walkExpression(index)
		}
	}
}

func (a *analyzer) walkExpression(expr ast.Node) {
	switch expr := expr.(type) {
	case *ast.Identifier:
		if _, found := a.lookup(expr.Value); !found {
			a.warn("analysis/ident/undefined", expr.Token, expr.Value)
		}
	case *ast.PrefixExpression:
		if expr.Operator == "++" || expr.Operator == "--" {
			a.walkAssignmentTarget(expr.Right)
			return
		}
		a.walkExpression(expr.Right)
	case *ast.PostfixExpression:
		a.walkAssignmentTarget(expr.Left)
	case *ast.InfixExpression:
		a.walkExpression(expr.Left)
		a.walkExpression(expr.Right)
		if expr.Operator == "/" || expr.Operator == "%" {
			if literal, ok := expr.Right.(*ast.IntegerLiteral); ok && literal.Value == 0 {
				a.warn("analysis/div/zero", expr.Token)
			}
		}
	case *ast.ArrayAccess:
		if _, found := a.lookup(expr.Name); !found {
			a.warn("analysis/ident/undefined", expr.Token, expr.Name)
		}
		for _, index := range expr.Indices {
			a.walkExpression(index)
		}
	case *ast.CallExpression:
		for _, arg := range expr.Arguments {
			a.walkExpression(arg)
		}
		if builtinNames[expr.Name] {
			return
		}
		fn, ok := a.program.Functions.Get(expr.Name)
		if !ok {
			a.warn("analysis/func/undefined", expr.Token, expr.Name)
			return
		}
		if len(expr.Arguments) != len(fn.Params) {
			a.warn("analysis/args/number", expr.Token, expr.Name,
				len(fn.Params), len(expr.Arguments))
		}
	case *ast.SizeofExpression:
		a.walkExpression(expr.Operand)
	}
}
