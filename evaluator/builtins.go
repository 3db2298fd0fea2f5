package evaluator

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Brainrotlang/brainrot/ast"
	"github.com/Brainrotlang/brainrot/object"
)

// The built-in functions. They are dispatched by name before the function
// table is consulted, so a user function can't shadow them.
var builtins map[string]func(*ast.CallExpression, *object.Environment, *Context) object.Object

func init() {
	builtins = map[string]func(*ast.CallExpression, *object.Environment, *Context) object.Object{
		"yapping":  builtinYapping,
		"yappin":   builtinYappin,
		"baka":     builtinBaka,
		"ragequit": builtinRagequit,
		"chill":    builtinChill,
		"slorp":    builtinSlorp,
	}
}

// yapping prints a formatted line to stdout, with a newline supplied for
// free.
func builtinYapping(node *ast.CallExpression, env *object.Environment, c *Context) object.Object {
	if len(node.Arguments) == 0 {
		io.WriteString(c.Out, "\n")
		return object.NONE
	}
	text, err := formatCall(node, env, c, "yapping")
	if err != nil {
		return err
	}
	io.WriteString(c.Out, text+"\n")
	return object.NONE
}

// yappin is yapping without the newline.
func builtinYappin(node *ast.CallExpression, env *object.Environment, c *Context) object.Object {
	if len(node.Arguments) == 0 {
		return object.NONE
	}
	text, err := formatCall(node, env, c, "yappin")
	if err != nil {
		return err
	}
	io.WriteString(c.Out, text)
	return object.NONE
}

// baka is yappin aimed at stderr.
func builtinBaka(node *ast.CallExpression, env *object.Environment, c *Context) object.Object {
	if len(node.Arguments) == 0 {
		io.WriteString(c.ErrOut, "\n")
		return object.NONE
	}
	text, err := formatCall(node, env, c, "baka")
	if err != nil {
		return err
	}
	io.WriteString(c.ErrOut, text)
	return object.NONE
}

func builtinRagequit(node *ast.CallExpression, env *object.Environment, c *Context) object.Object {
	if len(node.Arguments) != 1 {
		return c.Throw("builtin/ragequit/arg", node.Token)
	}
	code := Eval(node.Arguments[0], env, c)
	if isError(code) {
		return code
	}
	switch code.Type() {
	case object.SHORT_OBJ, object.INTEGER_OBJ:
	default:
		return c.Throw("builtin/ragequit/arg", node.Token)
	}
	c.Exit(int(toInt32(code)))
	return object.NONE
}

func builtinChill(node *ast.CallExpression, env *object.Environment, c *Context) object.Object {
	if len(node.Arguments) != 1 {
		return c.Throw("builtin/chill/arg", node.Token, "no argument")
	}
	seconds := Eval(node.Arguments[0], env, c)
	if isError(seconds) {
		return seconds
	}
	v, ok := toFloat64(seconds)
	if !ok || v < 0 {
		return c.Throw("builtin/chill/arg", node.Token, seconds.Inspect(object.ViewLiteral))
	}
	c.Sleep(time.Duration(v * float64(time.Second)))
	return object.NONE
}

// slorp reads a value from stdin into a variable, the kind of value being
// decided by the variable's declared type.
func builtinSlorp(node *ast.CallExpression, env *object.Environment, c *Context) object.Object {
	if len(node.Arguments) != 1 {
		return c.Throw("builtin/slorp/ident", node.Token)
	}
	ident, ok := node.Arguments[0].(*ast.Identifier)
	if !ok {
		return c.Throw("builtin/slorp/ident", node.Token)
	}
	storage, found := env.Get(ident.Value)
	if !found {
		return c.Throw("eval/ident/undefined", ident.Token, ident.Value)
	}
	if storage.Mods.IsConst {
		return c.Throw("eval/const", ident.Token, ident.Value)
	}
	// The VarType of an array variable is its element type, so the switch
	// below would happily replace the whole array with one scalar.
	if _, isArray := storage.Obj.(*object.Array); isArray {
		return c.Throw("builtin/slorp/array", ident.Token, ident.Value)
	}

	switch storage.VarType {
	case object.SHORT_OBJ:
		var v int16
		if _, err := fmt.Fscan(c.In, &v); err != nil {
			return c.Throw("builtin/slorp/read", node.Token, storage.VarType.String())
		}
		storage.Obj = &object.Short{Value: v}
	case object.INTEGER_OBJ:
		var v int32
		if _, err := fmt.Fscan(c.In, &v); err != nil {
			return c.Throw("builtin/slorp/read", node.Token, storage.VarType.String())
		}
		storage.Obj = &object.Integer{Value: v}
	case object.FLOAT_OBJ:
		var v float32
		if _, err := fmt.Fscan(c.In, &v); err != nil {
			return c.Throw("builtin/slorp/read", node.Token, storage.VarType.String())
		}
		storage.Obj = &object.Float{Value: v}
	case object.DOUBLE_OBJ:
		var v float64
		if _, err := fmt.Fscan(c.In, &v); err != nil {
			return c.Throw("builtin/slorp/read", node.Token, storage.VarType.String())
		}
		storage.Obj = &object.Double{Value: v}
	case object.STRING_OBJ:
		var v string
		if _, err := fmt.Fscan(c.In, &v); err != nil {
			return c.Throw("builtin/slorp/read", node.Token, storage.VarType.String())
		}
		storage.Obj = &object.String{Value: v}
	case object.CHAR_OBJ:
		v, err := readNonSpaceByte(c)
		if err != nil {
			return c.Throw("builtin/slorp/read", node.Token, storage.VarType.String())
		}
		storage.Obj = &object.Char{Value: v}
	case object.BOOLEAN_OBJ:
		var v string
		if _, err := fmt.Fscan(c.In, &v); err != nil || (v != "W" && v != "L") {
			return c.Throw("builtin/slorp/read", node.Token, storage.VarType.String())
		}
		storage.Obj = object.MakeBool(v == "W")
	default:
		return c.Throw("builtin/slorp/read", node.Token, storage.VarType.String())
	}
	return object.NONE
}

func readNonSpaceByte(c *Context) (byte, error) {
	for {
		b, err := c.In.ReadByte()
		if err != nil {
			return 0, err
		}
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			return b, nil
		}
	}
}

// formatCall renders a printf-style call. The first argument must be a
// string literal; the rest are evaluated and substituted for the
// conversion specifiers.
func formatCall(node *ast.CallExpression, env *object.Environment, c *Context, name string) (string, *object.Error) {
	formatNode, ok := node.Arguments[0].(*ast.StringLiteral)
	if !ok {
		return "", c.Throw("builtin/format/first", node.Token, name)
	}

	args := make([]object.Object, 0, len(node.Arguments)-1)
	for _, argNode := range node.Arguments[1:] {
		arg := Eval(argNode, env, c)
		if err, isErr := arg.(*object.Error); isErr {
			return "", err
		}
		args = append(args, arg)
	}

	return formatString(formatNode.Value, args, node, c, name)
}

// formatString interprets the C conversion specifiers of the format
// string, translating each one into the Go verb that does the same job.
// The i and u conversions become d, length modifiers like l and h are
// dropped, and the b conversion, which has no C ancestor, prints a cap
// value as W or L.
func formatString(format string, args []object.Object, node *ast.CallExpression, c *Context, name string) (string, *object.Error) {
	var out strings.Builder
	argIndex := 0
	nextArg := func() (object.Object, bool) {
		if argIndex >= len(args) {
			return nil, false
		}
		arg := args[argIndex]
		argIndex = argIndex + 1
		return arg, true
	}

	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			out.WriteByte(ch)
			continue
		}
		i++
		if i >= len(format) {
			return "", c.Throw("builtin/format/spec", node.Token, name)
		}
		// Flags, width, precision.
		flags := ""
		for i < len(format) && strings.ContainsRune("-+ #0123456789.", rune(format[i])) {
			flags = flags + string(format[i])
			i++
		}
		// Length modifiers carry no meaning here.
		for i < len(format) && (format[i] == 'l' || format[i] == 'h') {
			i++
		}
		if i >= len(format) {
			return "", c.Throw("builtin/format/spec", node.Token, name)
		}

		verb := format[i]
		if verb == '%' {
			out.WriteByte('%')
			continue
		}
		arg, haveArg := nextArg()
		if !haveArg {
			return "", c.Throw("builtin/format/args", node.Token, name)
		}

		switch verb {
		case 'd', 'i':
			v, ok := toFloat64(arg)
			if !ok {
				return "", c.Throw("eval/type/convert", node.Token,
					arg.Type().String(), object.INTEGER_OBJ.String())
			}
			fmt.Fprintf(&out, "%"+flags+"d", int64(v))
		case 'u':
			if !object.IsNumeric(arg.Type()) {
				return "", c.Throw("eval/type/convert", node.Token,
					arg.Type().String(), object.INTEGER_OBJ.String())
			}
			fmt.Fprintf(&out, "%"+flags+"d", uint32(toInt32(arg)))
		case 'o', 'x', 'X':
			if !object.IsNumeric(arg.Type()) {
				return "", c.Throw("eval/type/convert", node.Token,
					arg.Type().String(), object.INTEGER_OBJ.String())
			}
			fmt.Fprintf(&out, "%"+flags+string(verb), uint32(toInt32(arg)))
		case 'f', 'F', 'e', 'E', 'g', 'G':
			v, ok := toFloat64(arg)
			if !ok {
				return "", c.Throw("eval/type/convert", node.Token,
					arg.Type().String(), object.DOUBLE_OBJ.String())
			}
			goVerb := verb
			if goVerb == 'F' {
				goVerb = 'f'
			}
			fmt.Fprintf(&out, "%"+flags+string(goVerb), v)
		case 'a', 'A':
			v, ok := toFloat64(arg)
			if !ok {
				return "", c.Throw("eval/type/convert", node.Token,
					arg.Type().String(), object.DOUBLE_OBJ.String())
			}
			goVerb := byte('x')
			if verb == 'A' {
				goVerb = 'X'
			}
			fmt.Fprintf(&out, "%"+flags+string(goVerb), v)
		case 'c':
			v, ok := toFloat64(arg)
			if !ok {
				return "", c.Throw("eval/type/convert", node.Token,
					arg.Type().String(), object.CHAR_OBJ.String())
			}
			fmt.Fprintf(&out, "%"+flags+"c", rune(int32(v)))
		case 's':
			str, isString := arg.(*object.String)
			if !isString {
				return "", c.Throw("builtin/format/string", node.Token)
			}
			fmt.Fprintf(&out, "%"+flags+"s", str.Value)
		case 'b':
			v, ok := toFloat64(arg)
			if !ok {
				return "", c.Throw("eval/type/convert", node.Token,
					arg.Type().String(), object.BOOLEAN_OBJ.String())
			}
			display := "L"
			if v != 0 {
				display = "W"
			}
			fmt.Fprintf(&out, "%"+flags+"s", display)
		default:
			return "", c.Throw("builtin/format/spec", node.Token, name)
		}
	}
	return out.String(), nil
}
