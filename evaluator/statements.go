package evaluator

import (
	"io"

	"github.com/Brainrotlang/brainrot/ast"
	"github.com/Brainrotlang/brainrot/object"
)

// A Signal is how break and return travel up through the statement
// executor to the construct that wants them: bruh stops at the innermost
// enclosing loop or ohio block, bussin unwinds all the way out of the
// function body.
type Signal int

const (
	SignalNone Signal = iota
	SignalBreak
	SignalReturn
)

// ExecProgram runs the top-level statements of a program in the given
// (global) environment. It stops at the first unrecoverable error.
func ExecProgram(program *ast.StatementList, env *object.Environment, c *Context) *object.Error {
	_, err := execStatements(program.Statements, env, c)
	return err
}

func execStatements(stmts []ast.Node, env *object.Environment, c *Context) (Signal, *object.Error) {
	for _, stmt := range stmts {
		signal, err := execStatement(stmt, env, c)
		if err != nil {
			return SignalNone, err
		}
		if signal != SignalNone {
			return signal, nil
		}
	}
	return SignalNone, nil
}

func execStatement(stmt ast.Node, env *object.Environment, c *Context) (Signal, *object.Error) {
	switch stmt := stmt.(type) {
	case *ast.StatementList:
		return execStatements(stmt.Statements, object.NewScope(env), c)
	case *ast.Declaration:
		return SignalNone, execDeclaration(stmt, env, c)
	case *ast.Assignment:
		return SignalNone, execAssignment(stmt, env, c)
	case *ast.ExpressionStatement:
		result := Eval(stmt.Expr, env, c)
		if err, ok := result.(*object.Error); ok {
			return SignalNone, err
		}
		return SignalNone, nil
	case *ast.PrintStatement:
		result := Eval(stmt.Expr, env, c)
		if err, ok := result.(*object.Error); ok {
			return SignalNone, err
		}
		io.WriteString(c.Out, result.Inspect(object.ViewStdOut)+"\n")
		return SignalNone, nil
	case *ast.ErrorPrintStatement:
		result := Eval(stmt.Expr, env, c)
		if err, ok := result.(*object.Error); ok {
			return SignalNone, err
		}
		io.WriteString(c.ErrOut, result.Inspect(object.ViewStdOut)+"\n")
		return SignalNone, nil
	case *ast.IfStatement:
		return execIfStatement(stmt, env, c)
	case *ast.ForStatement:
		return execForStatement(stmt, env, c)
	case *ast.WhileStatement:
		return execWhileStatement(stmt, env, c)
	case *ast.DoWhileStatement:
		return execDoWhileStatement(stmt, env, c)
	case *ast.SwitchStatement:
		return execSwitchStatement(stmt, env, c)
	case *ast.BreakStatement:
		return SignalBreak, nil
	case *ast.ReturnStatement:
		if stmt.Value != nil {
			value := EvalAs(stmt.Value, env, c, c.ReturnChannel.Expecting)
			if err, ok := value.(*object.Error); ok {
				return SignalNone, err
			}
			c.ReturnChannel.HasValue = true
			c.ReturnChannel.Value = value
		}
		return SignalReturn, nil
	}
	return SignalNone, c.Throw("eval/statement/unknown", stmt.GetToken())
}

func execDeclaration(stmt *ast.Declaration, env *object.Environment, c *Context) *object.Error {
	var value object.Object
	if len(stmt.Dims) > 0 {
		arr := object.NewArray(stmt.VarType, stmt.Dims)
		if stmt.ArrayInit != nil {
			if len(stmt.ArrayInit) != arr.Length() {
				return c.Throw("eval/array/elements", stmt.Token,
					len(stmt.ArrayInit), arr.Length())
			}
			for i, elemNode := range stmt.ArrayInit {
				elem := EvalAs(elemNode, env, c, stmt.VarType)
				if err, ok := elem.(*object.Error); ok {
					return err
				}
				arr.Elements[i] = elem
			}
		}
		value = arr
	} else if stmt.Init != nil {
		value = evalForTarget(stmt.Init, env, c, stmt.VarType, stmt.Mods)
		if err, ok := value.(*object.Error); ok {
			return err
		}
	} else {
		value = object.ZeroValue(stmt.VarType)
	}
	if !env.Declare(stmt.Name, object.Storage{Obj: value, VarType: stmt.VarType, Mods: stmt.Mods}) {
		return c.Throw("eval/scope/redeclared", stmt.Token, stmt.Name)
	}
	return nil
}

// evalForTarget evaluates a value destined for a particular variable,
// switching on unsigned arithmetic while it does so if the variable is nut.
func evalForTarget(node ast.Node, env *object.Environment, c *Context,
	varType object.ObjectType, mods object.Modifiers) object.Object {
	if mods.IsUnsigned {
		saved := c.unsignedArith
		c.unsignedArith = true
		defer func() { c.unsignedArith = saved }()
	}
	return EvalAs(node, env, c, varType)
}

func execAssignment(stmt *ast.Assignment, env *object.Environment, c *Context) *object.Error {
	switch target := stmt.Target.(type) {
	case *ast.Identifier:
		storage, ok := env.Get(target.Value)
		if !ok {
			return c.Throw("eval/ident/undefined", target.Token, target.Value)
		}
		if storage.Mods.IsConst {
			return c.Throw("eval/const", stmt.Token, target.Value)
		}
		if _, isArray := storage.Obj.(*object.Array); isArray {
			return c.Throw("eval/target", stmt.Token)
		}
		value := evalForTarget(stmt.Value, env, c, storage.VarType, storage.Mods)
		if err, ok := value.(*object.Error); ok {
			return err
		}
		storage.Obj = value
		return nil
	case *ast.ArrayAccess:
		storage, _ := env.Get(target.Name)
		if storage != nil && storage.Mods.IsConst {
			return c.Throw("eval/const", stmt.Token, target.Name)
		}
		arr, offset, err := resolveArrayElement(target, env, c)
		if err != nil {
			return err
		}
		value := evalForTarget(stmt.Value, env, c, arr.ElemType, storage.Mods)
		if errObj, ok := value.(*object.Error); ok {
			return errObj
		}
		arr.Elements[offset] = value
		return nil
	}
	return c.Throw("eval/target", stmt.Token)
}

func execIfStatement(stmt *ast.IfStatement, env *object.Environment, c *Context) (Signal, *object.Error) {
	cond := EvalAs(stmt.Condition, env, c, object.BOOLEAN_OBJ)
	if err, ok := cond.(*object.Error); ok {
		return SignalNone, err
	}
	if cond.(*object.Boolean).Value {
		return execStatement(stmt.Then, env, c)
	}
	if stmt.Else != nil {
		return execStatement(stmt.Else, env, c)
	}
	return SignalNone, nil
}

// A flex loop gets a scope of its own for the loop variable, and each
// iteration gets a child scope in which the condition, the body, and the
// increment all run, so that declarations in the body are fresh every
// time around but still visible to the increment.
func execForStatement(stmt *ast.ForStatement, env *object.Environment, c *Context) (Signal, *object.Error) {
	loopEnv := object.NewScope(env)
	if stmt.Init != nil {
		if _, err := execStatement(stmt.Init, loopEnv, c); err != nil {
			return SignalNone, err
		}
	}
	for {
		iterEnv := object.NewScope(loopEnv)
		if stmt.Cond != nil {
			cond := EvalAs(stmt.Cond, iterEnv, c, object.BOOLEAN_OBJ)
			if err, ok := cond.(*object.Error); ok {
				return SignalNone, err
			}
			if !cond.(*object.Boolean).Value {
				return SignalNone, nil
			}
		}
		signal, err := execStatements(stmt.Body.(*ast.StatementList).Statements, iterEnv, c)
		if err != nil {
			return SignalNone, err
		}
		if signal == SignalBreak {
			return SignalNone, nil
		}
		if signal == SignalReturn {
			return SignalReturn, nil
		}
		if stmt.Incr != nil {
			if _, err := execStatement(stmt.Incr, iterEnv, c); err != nil {
				return SignalNone, err
			}
		}
	}
}

func execWhileStatement(stmt *ast.WhileStatement, env *object.Environment, c *Context) (Signal, *object.Error) {
	for {
		cond := EvalAs(stmt.Cond, env, c, object.BOOLEAN_OBJ)
		if err, ok := cond.(*object.Error); ok {
			return SignalNone, err
		}
		if !cond.(*object.Boolean).Value {
			return SignalNone, nil
		}
		signal, err := execStatement(stmt.Body, env, c)
		if err != nil {
			return SignalNone, err
		}
		if signal == SignalBreak {
			return SignalNone, nil
		}
		if signal == SignalReturn {
			return SignalReturn, nil
		}
	}
}

func execDoWhileStatement(stmt *ast.DoWhileStatement, env *object.Environment, c *Context) (Signal, *object.Error) {
	for {
		signal, err := execStatement(stmt.Body, env, c)
		if err != nil {
			return SignalNone, err
		}
		if signal == SignalBreak {
			return SignalNone, nil
		}
		if signal == SignalReturn {
			return SignalReturn, nil
		}
		cond := EvalAs(stmt.Cond, env, c, object.BOOLEAN_OBJ)
		if err, ok := cond.(*object.Error); ok {
			return SignalNone, err
		}
		if !cond.(*object.Boolean).Value {
			return SignalNone, nil
		}
	}
}

// An ohio statement evaluates its subject once, at int width, then scans
// its cases in order. After the first match, execution falls through from
// case to case until a bruh or the end of the block; a based case matches
// unconditionally when the scan reaches it.
func execSwitchStatement(stmt *ast.SwitchStatement, env *object.Environment, c *Context) (Signal, *object.Error) {
	subject := EvalAs(stmt.Subject, env, c, object.INTEGER_OBJ)
	if err, ok := subject.(*object.Error); ok {
		return SignalNone, err
	}
	subjectValue := subject.(*object.Integer).Value

	switchEnv := object.NewScope(env)
	matched := false
	for _, switchCase := range stmt.Cases {
		if !matched {
			if switchCase.Value == nil {
				matched = true
			} else {
				caseValue := EvalAs(switchCase.Value, switchEnv, c, object.INTEGER_OBJ)
				if err, ok := caseValue.(*object.Error); ok {
					return SignalNone, err
				}
				matched = caseValue.(*object.Integer).Value == subjectValue
			}
		}
		if matched {
			signal, err := execStatements(switchCase.Body.Statements, switchEnv, c)
			if err != nil {
				return SignalNone, err
			}
			if signal == SignalBreak {
				return SignalNone, nil
			}
			if signal == SignalReturn {
				return SignalReturn, nil
			}
		}
	}
	return SignalNone, nil
}
