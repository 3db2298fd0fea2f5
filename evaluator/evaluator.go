package evaluator

import (
	"bufio"
	"io"
	"math"
	"os"
	"time"

	"github.com/Brainrotlang/brainrot/ast"
	"github.com/Brainrotlang/brainrot/object"
	"github.com/Brainrotlang/brainrot/parser"
	"github.com/Brainrotlang/brainrot/token"
)

// The ReturnChannel carries a function's return value from the bussin
// statement that produced it out to the call that wants it. Each call gets
// a fresh channel; the old one is put back when the call finishes.
type ReturnChannel struct {
	Expecting object.ObjectType
	HasValue  bool
	Value     object.Object
}

// A Context is everything the evaluator needs besides the environment: the
// function table, the streams to read and write, and the hooks through
// which ragequit and chill touch the outside world. The hooks are swapped
// out in tests.
type Context struct {
	Functions parser.FunctionTable
	Out       io.Writer
	ErrOut    io.Writer
	In        *bufio.Reader

	ReturnChannel ReturnChannel

	Exit  func(code int)
	Sleep func(d time.Duration)

	// Set while evaluating a value bound for a nut variable, in which case
	// modulo at int width is done on the bit pattern reinterpreted as
	// unsigned.
	unsignedArith bool
}

func NewContext(functions parser.FunctionTable, out, errOut io.Writer, in io.Reader) *Context {
	return &Context{
		Functions:     functions,
		Out:           out,
		ErrOut:        errOut,
		In:            bufio.NewReader(in),
		ReturnChannel: ReturnChannel{Expecting: object.NO_OBJ},
		Exit:          os.Exit,
		Sleep:         time.Sleep,
	}
}

func (c *Context) Throw(errorID string, tok token.Token, args ...any) *object.Error {
	return object.CreateErr(errorID, tok, args...)
}

func isError(obj object.Object) bool {
	return obj != nil && obj.Type() == object.ERROR_OBJ
}

// Eval evaluates an expression at its natural type.
func Eval(node ast.Node, env *object.Environment, c *Context) object.Object {
	switch node := node.(type) {
	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}
	case *ast.ShortLiteral:
		return &object.Short{Value: node.Value}
	case *ast.FloatLiteral:
		return &object.Float{Value: node.Value}
	case *ast.DoubleLiteral:
		return &object.Double{Value: node.Value}
	case *ast.CharLiteral:
		return &object.Char{Value: node.Value}
	case *ast.BooleanLiteral:
		return object.MakeBool(node.Value)
	case *ast.StringLiteral:
		return &object.String{Value: node.Value}
	case *ast.Identifier:
		return evalIdentifier(node, env, c)
	case *ast.PrefixExpression:
		return evalPrefixExpression(node, env, c)
	case *ast.PostfixExpression:
		return evalPostfixExpression(node, env, c)
	case *ast.InfixExpression:
		return evalInfixExpression(node, env, c)
	case *ast.ArrayAccess:
		return evalArrayAccess(node, env, c)
	case *ast.CallExpression:
		return evalCallExpression(node, env, c)
	case *ast.SizeofExpression:
		return evalSizeofExpression(node, env, c)
	}
	return c.Throw("eval/node/unknown", node.GetToken())
}

// EvalAs evaluates an expression and converts the result to the given
// type, as when the expression initializes or is assigned to a variable of
// that type.
func EvalAs(node ast.Node, env *object.Environment, c *Context, target object.ObjectType) object.Object {
	result := Eval(node, env, c)
	if isError(result) {
		return result
	}
	return Convert(result, target, node.GetToken(), c)
}

// Convert coerces a value to the given type with C conversion rules:
// numeric values convert to any numeric type, truncating where they must;
// any numeric value converts to cap by comparison with zero; lit converts
// to nothing and nothing converts to lit.
func Convert(obj object.Object, target object.ObjectType, tok token.Token, c *Context) object.Object {
	if obj.Type() == target {
		return obj
	}
	// Truncation happens at int64 width first: a float-to-int conversion
	// that overflows doesn't wrap in Go, but an int64-to-int16 one does,
	// which is the C behavior being imitated.
	switch target {
	case object.SHORT_OBJ:
		if v, ok := toFloat64(obj); ok {
			return &object.Short{Value: int16(int64(v))}
		}
	case object.INTEGER_OBJ:
		if v, ok := toFloat64(obj); ok {
			return &object.Integer{Value: int32(int64(v))}
		}
	case object.FLOAT_OBJ:
		if v, ok := toFloat64(obj); ok {
			return &object.Float{Value: float32(v)}
		}
	case object.DOUBLE_OBJ:
		if v, ok := toFloat64(obj); ok {
			return &object.Double{Value: v}
		}
	case object.CHAR_OBJ:
		if v, ok := toFloat64(obj); ok {
			return &object.Char{Value: byte(int64(v))}
		}
	case object.BOOLEAN_OBJ:
		if v, ok := toFloat64(obj); ok {
			return object.MakeBool(v != 0)
		}
	}
	return c.Throw("eval/type/convert", tok, obj.Type().String(), target.String())
}

// toFloat64 widens any numeric value to a float64 without loss; int32 and
// smaller fit exactly. It refuses strings and arrays.
func toFloat64(obj object.Object) (float64, bool) {
	switch obj := obj.(type) {
	case *object.Short:
		return float64(obj.Value), true
	case *object.Integer:
		return float64(obj.Value), true
	case *object.Float:
		return float64(obj.Value), true
	case *object.Double:
		return obj.Value, true
	case *object.Char:
		return float64(obj.Value), true
	case *object.Boolean:
		if obj.Value {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func toInt32(obj object.Object) int32 {
	v, _ := toFloat64(obj)
	return int32(int64(v))
}

func evalIdentifier(node *ast.Identifier, env *object.Environment, c *Context) object.Object {
	storage, ok := env.Get(node.Value)
	if !ok {
		if node.Checked && !node.Valid {
			// Already reported; keep going with a harmless stand-in.
			return object.ZeroValue(object.INTEGER_OBJ)
		}
		node.Checked = true
		node.Valid = false
		return c.Throw("eval/ident/undefined", node.Token, node.Value)
	}
	node.Checked = true
	node.Valid = true
	return storage.Obj
}

func evalPrefixExpression(node *ast.PrefixExpression, env *object.Environment, c *Context) object.Object {
	switch node.Operator {
	case "-":
		right := Eval(node.Right, env, c)
		if isError(right) {
			return right
		}
		switch right := right.(type) {
		case *object.Short:
			return &object.Short{Value: -right.Value}
		case *object.Integer:
			return &object.Integer{Value: -right.Value}
		case *object.Float:
			return &object.Float{Value: -right.Value}
		case *object.Double:
			return &object.Double{Value: -right.Value}
		case *object.Char:
			return &object.Integer{Value: -int32(right.Value)}
		case *object.Boolean:
			return c.Throw("eval/bool/arith", node.Token, "-")
		case *object.String:
			return c.Throw("eval/string/arith", node.Token, "-")
		}
		return c.Throw("eval/op/type", node.Token, "-", right.Type().String())
	case "!":
		right := Eval(node.Right, env, c)
		if isError(right) {
			return right
		}
		v, ok := toFloat64(right)
		if !ok {
			return c.Throw("eval/op/type", node.Token, "!", right.Type().String())
		}
		if v == 0 {
			return &object.Integer{Value: 1}
		}
		return &object.Integer{Value: 0}
	case "++", "--":
		_, newVal, err := evalIncDec(node.Right, node.Operator, node.Token, env, c)
		if err != nil {
			return err
		}
		return newVal
	}
	return c.Throw("eval/op/unknown", node.Token, node.Operator)
}

func evalPostfixExpression(node *ast.PostfixExpression, env *object.Environment, c *Context) object.Object {
	oldVal, _, err := evalIncDec(node.Left, node.Operator, node.Token, env, c)
	if err != nil {
		return err
	}
	return oldVal
}

// evalIncDec implements ++ and -- on a variable or an array element,
// writing the stepped value back exactly once and handing both the old and
// the new value to the caller, which picks one depending on whether the
// operator was prefix or postfix.
func evalIncDec(operand ast.Node, operator string, tok token.Token, env *object.Environment, c *Context) (object.Object, object.Object, *object.Error) {
	step := int32(1)
	if operator == "--" {
		step = -1
	}
	switch operand := operand.(type) {
	case *ast.Identifier:
		storage, ok := env.Get(operand.Value)
		if !ok {
			return nil, nil, c.Throw("eval/ident/undefined", operand.Token, operand.Value)
		}
		if storage.Mods.IsConst {
			return nil, nil, c.Throw("eval/const", tok, operand.Value)
		}
		oldVal := storage.Obj
		newVal := steppedValue(oldVal, step, storage.VarType)
		if newVal == nil {
			return nil, nil, c.Throw("eval/op/type", tok, operator, oldVal.Type().String())
		}
		storage.Obj = newVal
		return oldVal, newVal, nil
	case *ast.ArrayAccess:
		arr, offset, err := resolveArrayElement(operand, env, c)
		if err != nil {
			return nil, nil, err
		}
		oldVal := arr.Elements[offset]
		newVal := steppedValue(oldVal, step, arr.ElemType)
		if newVal == nil {
			return nil, nil, c.Throw("eval/op/type", tok, operator, oldVal.Type().String())
		}
		arr.Elements[offset] = newVal
		return oldVal, newVal, nil
	}
	return nil, nil, c.Throw("eval/unary/target", tok, operator)
}

func steppedValue(obj object.Object, step int32, varType object.ObjectType) object.Object {
	switch obj := obj.(type) {
	case *object.Short:
		return &object.Short{Value: obj.Value + int16(step)}
	case *object.Integer:
		return &object.Integer{Value: obj.Value + step}
	case *object.Float:
		return &object.Float{Value: obj.Value + float32(step)}
	case *object.Double:
		return &object.Double{Value: obj.Value + float64(step)}
	case *object.Char:
		return &object.Char{Value: byte(int32(obj.Value) + step)}
	}
	return nil
}

func evalInfixExpression(node *ast.InfixExpression, env *object.Environment, c *Context) object.Object {
	if node.Operator == "&&" || node.Operator == "||" {
		return evalLogicalExpression(node, env, c)
	}

	left := Eval(node.Left, env, c)
	if isError(left) {
		return left
	}
	right := Eval(node.Right, env, c)
	if isError(right) {
		return right
	}

	if left.Type() == object.STRING_OBJ || right.Type() == object.STRING_OBJ {
		if node.Operator == "==" || node.Operator == "!=" {
			if left.Type() != right.Type() {
				return c.Throw("eval/op/type", node.Token, node.Operator, right.Type().String())
			}
			return equalityResult(object.Equals(left, right), node.Operator, object.INTEGER_OBJ)
		}
		return c.Throw("eval/string/arith", node.Token, node.Operator)
	}
	if isArithmetic(node.Operator) &&
		(left.Type() == object.BOOLEAN_OBJ || right.Type() == object.BOOLEAN_OBJ) {
		return c.Throw("eval/bool/arith", node.Token, node.Operator)
	}

	promoted, ok := object.Promote(left.Type(), right.Type())
	if !ok {
		return c.Throw("eval/op/type", node.Token, node.Operator, right.Type().String())
	}

	switch promoted {
	case object.SHORT_OBJ:
		return evalShortInfix(node, toShort(left), toShort(right), c)
	case object.INTEGER_OBJ:
		return evalIntegerInfix(node, toInt32(left), toInt32(right), c)
	case object.FLOAT_OBJ:
		return evalFloatInfix(node, left, right, c)
	case object.DOUBLE_OBJ:
		return evalDoubleInfix(node, left, right, c)
	}
	return c.Throw("eval/op/type", node.Token, node.Operator, promoted.String())
}

// Logical operators short-circuit: the right operand is only evaluated if
// the left one has not already decided the answer.
func evalLogicalExpression(node *ast.InfixExpression, env *object.Environment, c *Context) object.Object {
	left := Eval(node.Left, env, c)
	if isError(left) {
		return left
	}
	lv, ok := toFloat64(left)
	if !ok {
		return c.Throw("eval/op/type", node.Token, node.Operator, left.Type().String())
	}
	if node.Operator == "&&" && lv == 0 {
		return &object.Integer{Value: 0}
	}
	if node.Operator == "||" && lv != 0 {
		return &object.Integer{Value: 1}
	}
	right := Eval(node.Right, env, c)
	if isError(right) {
		return right
	}
	rv, ok := toFloat64(right)
	if !ok {
		return c.Throw("eval/op/type", node.Token, node.Operator, right.Type().String())
	}
	if rv != 0 {
		return &object.Integer{Value: 1}
	}
	return &object.Integer{Value: 0}
}

func isArithmetic(operator string) bool {
	return operator == "+" || operator == "-" || operator == "*" ||
		operator == "/" || operator == "%"
}

func toShort(obj object.Object) int16 {
	v, _ := toFloat64(obj)
	return int16(v)
}

func equalityResult(equal bool, operator string, resultType object.ObjectType) object.Object {
	truth := equal == (operator == "==")
	value := int32(0)
	if truth {
		value = 1
	}
	switch resultType {
	case object.SHORT_OBJ:
		return &object.Short{Value: int16(value)}
	case object.FLOAT_OBJ:
		return &object.Float{Value: float32(value)}
	case object.DOUBLE_OBJ:
		return &object.Double{Value: float64(value)}
	}
	return &object.Integer{Value: value}
}

// comparisonResult renders a comparison's truth as 0 or 1 at the promoted
// type of its operands.
func comparisonResult(truth bool, resultType object.ObjectType) object.Object {
	return equalityResult(truth, "==", resultType)
}

func evalIntegerInfix(node *ast.InfixExpression, left, right int32, c *Context) object.Object {
	switch node.Operator {
	case "+":
		return &object.Integer{Value: left + right}
	case "-":
		return &object.Integer{Value: left - right}
	case "*":
		return &object.Integer{Value: left * right}
	case "/":
		if right == 0 {
			c.reportAndContinue("eval/div/int", node.Token)
			return &object.Integer{Value: 0}
		}
		return &object.Integer{Value: left / right}
	case "%":
		if right == 0 {
			c.reportAndContinue("eval/div/mod", node.Token)
			return &object.Integer{Value: 0}
		}
		if c.unsignedArith {
			return &object.Integer{Value: int32(uint32(left) % uint32(right))}
		}
		return &object.Integer{Value: left % right}
	case "<":
		return comparisonResult(left < right, object.INTEGER_OBJ)
	case ">":
		return comparisonResult(left > right, object.INTEGER_OBJ)
	case "<=":
		return comparisonResult(left <= right, object.INTEGER_OBJ)
	case ">=":
		return comparisonResult(left >= right, object.INTEGER_OBJ)
	case "==":
		return comparisonResult(left == right, object.INTEGER_OBJ)
	case "!=":
		return comparisonResult(left != right, object.INTEGER_OBJ)
	}
	return c.Throw("eval/op/unknown", node.Token, node.Operator)
}

func evalShortInfix(node *ast.InfixExpression, left, right int16, c *Context) object.Object {
	switch node.Operator {
	case "+":
		return &object.Short{Value: left + right}
	case "-":
		return &object.Short{Value: left - right}
	case "*":
		return &object.Short{Value: left * right}
	case "/":
		if right == 0 {
			c.reportAndContinue("eval/div/int", node.Token)
			return &object.Short{Value: 0}
		}
		return &object.Short{Value: left / right}
	case "%":
		if right == 0 {
			c.reportAndContinue("eval/div/mod", node.Token)
			return &object.Short{Value: 0}
		}
		return &object.Short{Value: left % right}
	case "<":
		return comparisonResult(left < right, object.SHORT_OBJ)
	case ">":
		return comparisonResult(left > right, object.SHORT_OBJ)
	case "<=":
		return comparisonResult(left <= right, object.SHORT_OBJ)
	case ">=":
		return comparisonResult(left >= right, object.SHORT_OBJ)
	case "==":
		return comparisonResult(left == right, object.SHORT_OBJ)
	case "!=":
		return comparisonResult(left != right, object.SHORT_OBJ)
	}
	return c.Throw("eval/op/unknown", node.Token, node.Operator)
}

func evalFloatInfix(node *ast.InfixExpression, leftObj, rightObj object.Object, c *Context) object.Object {
	lv, _ := toFloat64(leftObj)
	rv, _ := toFloat64(rightObj)
	left, right := float32(lv), float32(rv)
	switch node.Operator {
	case "+":
		return &object.Float{Value: left + right}
	case "-":
		return &object.Float{Value: left - right}
	case "*":
		return &object.Float{Value: left * right}
	case "/":
		return &object.Float{Value: left / right}
	case "%":
		return &object.Float{Value: float32(math.Mod(float64(left), float64(right)))}
	case "<":
		return comparisonResult(left < right, object.FLOAT_OBJ)
	case ">":
		return comparisonResult(left > right, object.FLOAT_OBJ)
	case "<=":
		return comparisonResult(left <= right, object.FLOAT_OBJ)
	case ">=":
		return comparisonResult(left >= right, object.FLOAT_OBJ)
	case "==":
		return comparisonResult(left == right, object.FLOAT_OBJ)
	case "!=":
		return comparisonResult(left != right, object.FLOAT_OBJ)
	}
	return c.Throw("eval/op/unknown", node.Token, node.Operator)
}

func evalDoubleInfix(node *ast.InfixExpression, leftObj, rightObj object.Object, c *Context) object.Object {
	left, _ := toFloat64(leftObj)
	right, _ := toFloat64(rightObj)
	switch node.Operator {
	case "+":
		return &object.Double{Value: left + right}
	case "-":
		return &object.Double{Value: left - right}
	case "*":
		return &object.Double{Value: left * right}
	case "/":
		return &object.Double{Value: left / right}
	case "%":
		return &object.Double{Value: math.Mod(left, right)}
	case "<":
		return comparisonResult(left < right, object.DOUBLE_OBJ)
	case ">":
		return comparisonResult(left > right, object.DOUBLE_OBJ)
	case "<=":
		return comparisonResult(left <= right, object.DOUBLE_OBJ)
	case ">=":
		return comparisonResult(left >= right, object.DOUBLE_OBJ)
	case "==":
		return comparisonResult(left == right, object.DOUBLE_OBJ)
	case "!=":
		return comparisonResult(left != right, object.DOUBLE_OBJ)
	}
	return c.Throw("eval/op/unknown", node.Token, node.Operator)
}

// Integer division and modulo by zero are recoverable: the error is
// reported and the operation yields zero, which is also what the analyzer
// warns about when it can see the zero coming.
func (c *Context) reportAndContinue(errorID string, tok token.Token) {
	err := object.CreateErr(errorID, tok)
	io.WriteString(c.ErrOut, err.Inspect(object.ViewStdOut)+"\n")
}

// resolveArrayElement turns an array access into the array's storage and a
// linear offset into it, bounds-checking every index on the way.
func resolveArrayElement(node *ast.ArrayAccess, env *object.Environment, c *Context) (*object.Array, int, *object.Error) {
	storage, ok := env.Get(node.Name)
	if !ok {
		return nil, 0, c.Throw("eval/ident/undefined", node.Token, node.Name)
	}
	arr, ok := storage.Obj.(*object.Array)
	if !ok {
		return nil, 0, c.Throw("eval/array/type", node.Token, node.Name)
	}
	if len(node.Indices) != len(arr.Dims) {
		return nil, 0, c.Throw("eval/array/dims", node.Token, node.Name,
			len(arr.Dims), len(node.Indices))
	}
	indices := make([]int, len(node.Indices))
	for i, indexNode := range node.Indices {
		indexObj := Eval(indexNode, env, c)
		if err, ok := indexObj.(*object.Error); ok {
			return nil, 0, err
		}
		switch indexObj.Type() {
		case object.SHORT_OBJ, object.INTEGER_OBJ, object.CHAR_OBJ:
		default:
			return nil, 0, c.Throw("eval/array/index", indexNode.GetToken())
		}
		index := int(toInt32(indexObj))
		if index < 0 || index >= arr.Dims[i] {
			return nil, 0, c.Throw("eval/array/bounds", indexNode.GetToken(),
				index, i, arr.Dims[i])
		}
		indices[i] = index
	}
	return arr, arr.Offset(indices), nil
}

func evalArrayAccess(node *ast.ArrayAccess, env *object.Environment, c *Context) object.Object {
	arr, offset, err := resolveArrayElement(node, env, c)
	if err != nil {
		return err
	}
	return arr.Elements[offset]
}

func evalCallExpression(node *ast.CallExpression, env *object.Environment, c *Context) object.Object {
	if builtin, ok := builtins[node.Name]; ok {
		return builtin(node, env, c)
	}
	fn, ok := c.Functions.Get(node.Name)
	if !ok {
		return c.Throw("eval/func/undefined", node.Token, node.Name)
	}
	if len(node.Arguments) != len(fn.Params) {
		return c.Throw("eval/args/number", node.Token, node.Name,
			len(fn.Params), len(node.Arguments))
	}

	// The arguments are evaluated in the caller's environment, each one
	// converted to its parameter's declared type.
	args := make([]object.Object, len(node.Arguments))
	for i, argNode := range node.Arguments {
		arg := EvalAs(argNode, env, c, fn.Params[i].VarType)
		if isError(arg) {
			return arg
		}
		args[i] = arg
	}

	fnEnv := object.NewFunctionScope(rootOf(env))
	for i, param := range fn.Params {
		if !fnEnv.Declare(param.VarName, object.Storage{
			Obj: args[i], VarType: param.VarType, Mods: param.Mods}) {
			return c.Throw("eval/scope/redeclared", node.Token, param.VarName)
		}
	}

	saved := c.ReturnChannel
	c.ReturnChannel = ReturnChannel{Expecting: fn.ReturnType}
	_, err := execStatements(fn.Body.Statements, fnEnv, c)
	result := c.ReturnChannel
	c.ReturnChannel = saved
	if err != nil {
		return err
	}
	if result.HasValue {
		return result.Value
	}
	if fn.ReturnType != object.NO_OBJ {
		// Fell off the end of a value-returning function.
		return object.ZeroValue(fn.ReturnType)
	}
	return object.NONE
}

func rootOf(env *object.Environment) *object.Environment {
	for env.Ext != nil {
		env = env.Ext
	}
	return env
}

func evalSizeofExpression(node *ast.SizeofExpression, env *object.Environment, c *Context) object.Object {
	// aura on an array name gives the size of the whole array.
	if ident, ok := node.Operand.(*ast.Identifier); ok {
		if storage, found := env.Get(ident.Value); found {
			if arr, isArray := storage.Obj.(*object.Array); isArray {
				elemSize, _ := object.SizeOf(arr.ElemType)
				return &object.Integer{Value: int32(elemSize * arr.Length())}
			}
		}
	}
	t, err := staticType(node.Operand, env, c)
	if err != nil {
		return err
	}
	size, ok := object.SizeOf(t)
	if !ok {
		return c.Throw("eval/sizeof/type", node.Token, t.String())
	}
	return &object.Integer{Value: int32(size)}
}

// staticType works out the type an expression would evaluate to without
// evaluating it, so that aura(f(x)) doesn't call f.
func staticType(node ast.Node, env *object.Environment, c *Context) (object.ObjectType, *object.Error) {
	switch node := node.(type) {
	case *ast.IntegerLiteral:
		return object.INTEGER_OBJ, nil
	case *ast.ShortLiteral:
		return object.SHORT_OBJ, nil
	case *ast.FloatLiteral:
		return object.FLOAT_OBJ, nil
	case *ast.DoubleLiteral:
		return object.DOUBLE_OBJ, nil
	case *ast.CharLiteral:
		return object.CHAR_OBJ, nil
	case *ast.BooleanLiteral:
		return object.BOOLEAN_OBJ, nil
	case *ast.StringLiteral:
		return object.STRING_OBJ, nil
	case *ast.Identifier:
		storage, ok := env.Get(node.Value)
		if !ok {
			return "", c.Throw("eval/ident/undefined", node.Token, node.Value)
		}
		return storage.VarType, nil
	case *ast.ArrayAccess:
		storage, ok := env.Get(node.Name)
		if !ok {
			return "", c.Throw("eval/ident/undefined", node.Token, node.Name)
		}
		return storage.VarType, nil
	case *ast.CallExpression:
		fn, ok := c.Functions.Get(node.Name)
		if !ok {
			return "", c.Throw("eval/func/undefined", node.Token, node.Name)
		}
		return fn.ReturnType, nil
	case *ast.PrefixExpression:
		if node.Operator == "!" {
			return object.INTEGER_OBJ, nil
		}
		return staticType(node.Right, env, c)
	case *ast.PostfixExpression:
		return staticType(node.Left, env, c)
	case *ast.InfixExpression:
		if node.Operator == "&&" || node.Operator == "||" {
			return object.INTEGER_OBJ, nil
		}
		leftType, err := staticType(node.Left, env, c)
		if err != nil {
			return "", err
		}
		rightType, err := staticType(node.Right, env, c)
		if err != nil {
			return "", err
		}
		promoted, ok := object.Promote(leftType, rightType)
		if !ok {
			return "", c.Throw("eval/op/type", node.Token, node.Operator, rightType.String())
		}
		return promoted, nil
	case *ast.SizeofExpression:
		return object.INTEGER_OBJ, nil
	}
	return "", c.Throw("eval/node/unknown", node.GetToken())
}
