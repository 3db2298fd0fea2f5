package object

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestPromotion(t *testing.T) {
	tests := []struct {
		left     ObjectType
		right    ObjectType
		expected ObjectType
	}{
		{SHORT_OBJ, SHORT_OBJ, SHORT_OBJ},
		{SHORT_OBJ, INTEGER_OBJ, INTEGER_OBJ},
		{INTEGER_OBJ, FLOAT_OBJ, FLOAT_OBJ},
		{FLOAT_OBJ, DOUBLE_OBJ, DOUBLE_OBJ},
		{SHORT_OBJ, DOUBLE_OBJ, DOUBLE_OBJ},
		{CHAR_OBJ, SHORT_OBJ, INTEGER_OBJ},
		{CHAR_OBJ, CHAR_OBJ, INTEGER_OBJ},
		{BOOLEAN_OBJ, INTEGER_OBJ, INTEGER_OBJ},
		{DOUBLE_OBJ, INTEGER_OBJ, DOUBLE_OBJ},
	}
	for _, tt := range tests {
		promoted, ok := Promote(tt.left, tt.right)
		be.True(t, ok)
		be.Equal(t, promoted, tt.expected)
	}

	_, ok := Promote(STRING_OBJ, INTEGER_OBJ)
	be.Equal(t, ok, false)
	_, ok = Promote(INTEGER_OBJ, ARRAY_OBJ)
	be.Equal(t, ok, false)
}

func TestSizeOf(t *testing.T) {
	tests := []struct {
		t        ObjectType
		expected int
	}{
		{SHORT_OBJ, 2},
		{INTEGER_OBJ, 4},
		{FLOAT_OBJ, 4},
		{DOUBLE_OBJ, 8},
		{BOOLEAN_OBJ, 1},
		{CHAR_OBJ, 1},
	}
	for _, tt := range tests {
		size, ok := SizeOf(tt.t)
		be.True(t, ok)
		be.Equal(t, size, tt.expected)
	}
	_, ok := SizeOf(STRING_OBJ)
	be.Equal(t, ok, false)
}

func TestArrayOffset(t *testing.T) {
	arr := NewArray(INTEGER_OBJ, []int{2, 3, 4})
	be.Equal(t, arr.Length(), 24)

	// Row-major: the last index varies fastest.
	be.Equal(t, arr.Offset([]int{0, 0, 0}), 0)
	be.Equal(t, arr.Offset([]int{0, 0, 1}), 1)
	be.Equal(t, arr.Offset([]int{0, 1, 0}), 4)
	be.Equal(t, arr.Offset([]int{1, 0, 0}), 12)
	be.Equal(t, arr.Offset([]int{1, 2, 3}), 23)

	for _, elem := range arr.Elements {
		be.Equal(t, elem.(*Integer).Value, 0)
	}
}

func TestInspect(t *testing.T) {
	be.Equal(t, TRUE.Inspect(ViewStdOut), "W")
	be.Equal(t, FALSE.Inspect(ViewStdOut), "L")
	be.Equal(t, (&Char{Value: 'a'}).Inspect(ViewStdOut), "a")
	be.Equal(t, (&Char{Value: 'a'}).Inspect(ViewLiteral), "'a'")
	be.Equal(t, (&String{Value: "hi"}).Inspect(ViewStdOut), "hi")
	be.Equal(t, (&String{Value: "hi\n"}).Inspect(ViewLiteral), "\"hi\\n\"")
	be.Equal(t, (&Float{Value: 2.5}).Inspect(ViewStdOut), "2.5")
}

func TestObjectTypeString(t *testing.T) {
	// The constants are typed, so String is callable straight off them.
	be.Equal(t, INTEGER_OBJ.String(), "int")
	be.Equal(t, DOUBLE_OBJ.String(), "double")
	be.Equal(t, (&Short{}).Type().String(), "short")
}

func TestEnvironmentShadowing(t *testing.T) {
	global := NewEnvironment()
	global.Declare("x", Storage{Obj: &Integer{Value: 1}, VarType: INTEGER_OBJ})

	inner := NewScope(global)
	be.True(t, inner.Declare("x", Storage{Obj: &Integer{Value: 2}, VarType: INTEGER_OBJ}))

	storage, ok := inner.Get("x")
	be.True(t, ok)
	be.Equal(t, storage.Obj.(*Integer).Value, 2)

	storage, ok = global.Get("x")
	be.True(t, ok)
	be.Equal(t, storage.Obj.(*Integer).Value, 1)
}

func TestEnvironmentRedeclaration(t *testing.T) {
	env := NewEnvironment()
	be.True(t, env.Declare("x", Storage{Obj: &Integer{Value: 1}, VarType: INTEGER_OBJ}))
	be.Equal(t, env.Declare("x", Storage{Obj: &Integer{Value: 2}, VarType: INTEGER_OBJ}), false)
}

func TestFunctionBoundary(t *testing.T) {
	global := NewEnvironment()
	global.Declare("g", Storage{Obj: &Integer{Value: 10}, VarType: INTEGER_OBJ})

	fnScope := NewFunctionScope(global)
	fnScope.Declare("param", Storage{Obj: &Integer{Value: 1}, VarType: INTEGER_OBJ})

	// The boundary hides globals from the function body...
	_, ok := fnScope.Get("g")
	be.Equal(t, ok, false)

	// ...even from a block nested inside it.
	block := NewScope(fnScope)
	_, ok = block.Get("g")
	be.Equal(t, ok, false)

	// But the function's own names are visible from the block.
	storage, ok := block.Get("param")
	be.True(t, ok)
	be.Equal(t, storage.Obj.(*Integer).Value, 1)
}

func TestAssignStatus(t *testing.T) {
	env := NewEnvironment()
	env.Declare("x", Storage{Obj: &Integer{Value: 1}, VarType: INTEGER_OBJ})
	env.Declare("K", Storage{Obj: &Integer{Value: 1}, VarType: INTEGER_OBJ,
		Mods: Modifiers{IsConst: true}})

	be.Equal(t, env.Assign("x", &Integer{Value: 2}), AssignOk)
	be.Equal(t, env.Assign("K", &Integer{Value: 2}), AssignConst)
	be.Equal(t, env.Assign("nope", &Integer{Value: 2}), AssignUndefined)

	inner := NewScope(env)
	be.Equal(t, inner.Assign("K", &Integer{Value: 2}), AssignConst)
}
