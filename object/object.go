package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Brainrotlang/brainrot/text"
	"github.com/Brainrotlang/brainrot/token"
)

type View int

const (
	ViewStdOut = iota
	ViewLiteral
)

type ObjectType string

const (
	ERROR_OBJ ObjectType = "error"
	NO_OBJ    ObjectType = "none" // the "return type" of a skibidi function

	SHORT_OBJ   ObjectType = "short"
	INTEGER_OBJ ObjectType = "int"
	FLOAT_OBJ   ObjectType = "float"
	DOUBLE_OBJ  ObjectType = "double"
	BOOLEAN_OBJ ObjectType = "bool"
	CHAR_OBJ    ObjectType = "char"
	STRING_OBJ  ObjectType = "string"
	ARRAY_OBJ   ObjectType = "array"
)

// An array can have at most this many dimensions.
const MaxDimensions = 8

type Object interface {
	Type() ObjectType
	Inspect(view View) string
}

type Short struct {
	Value int16
}

func (s *Short) Type() ObjectType          { return SHORT_OBJ }
func (s *Short) Inspect(view View) string { return fmt.Sprintf("%d", s.Value) }

type Integer struct {
	Value int32
}

func (i *Integer) Type() ObjectType          { return INTEGER_OBJ }
func (i *Integer) Inspect(view View) string { return fmt.Sprintf("%d", i.Value) }

type Float struct {
	Value float32
}

func (f *Float) Type() ObjectType { return FLOAT_OBJ }
func (f *Float) Inspect(view View) string {
	return strconv.FormatFloat(float64(f.Value), 'g', -1, 32)
}

type Double struct {
	Value float64
}

func (d *Double) Type() ObjectType { return DOUBLE_OBJ }
func (d *Double) Inspect(view View) string {
	return strconv.FormatFloat(d.Value, 'g', -1, 64)
}

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect(view View) string {
	if b.Value {
		return "W"
	}
	return "L"
}

type Char struct {
	Value byte
}

func (c *Char) Type() ObjectType { return CHAR_OBJ }
func (c *Char) Inspect(view View) string {
	if view == ViewStdOut {
		return string(c.Value)
	}
	return "'" + string(c.Value) + "'"
}

type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect(view View) string {
	if view == ViewStdOut {
		return s.Value
	}
	return text.ToEscapedText(s.Value)
}

// Array is the storage for a declared array variable: a flat, row-major
// buffer of Length() elements, all of type ElemType.
type Array struct {
	ElemType ObjectType
	Dims     []int
	Elements []Object
}

func NewArray(elemType ObjectType, dims []int) *Array {
	length := 1
	for _, d := range dims {
		length = length * d
	}
	elements := make([]Object, length)
	for i := range elements {
		elements[i] = ZeroValue(elemType)
	}
	return &Array{ElemType: elemType, Dims: dims, Elements: elements}
}

func (a *Array) Type() ObjectType { return ARRAY_OBJ }

func (a *Array) Length() int { return len(a.Elements) }

// Offset turns one index per dimension into a linear offset into Elements.
// The indices must already have been bounds-checked and must be exactly
// len(Dims) long.
func (a *Array) Offset(indices []int) int {
	offset := 0
	stride := 1
	for j := len(a.Dims) - 1; j >= 0; j-- {
		offset = offset + indices[j]*stride
		stride = stride * a.Dims[j]
	}
	return offset
}

func (a *Array) Inspect(view View) string {
	elements := []string{}
	for _, e := range a.Elements {
		elements = append(elements, e.Inspect(ViewLiteral))
	}
	dims := ""
	for _, d := range a.Dims {
		dims = dims + "[" + strconv.Itoa(d) + "]"
	}
	return a.ElemType.String() + dims + "{" + strings.Join(elements, ", ") + "}"
}

func (t ObjectType) String() string { return string(t) }

type Error struct {
	ErrorId string
	Message string
	Token   token.Token
	Trace   []token.Token
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect(view View) string {
	if view == ViewStdOut {
		return text.RT_ERROR + e.Message + text.DescribePos(e.Token) + "."
	}
	return "error " + text.ToEscapedText(e.Message)
}

// None is what a skibidi function call and a statement evaluate to.
type None struct{}

func (n *None) Type() ObjectType         { return NO_OBJ }
func (n *None) Inspect(view View) string { return "none" }

var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
	NONE  = &None{}
)

func MakeBool(input bool) *Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

// ZeroValue is what a declared variable holds before its initializer runs,
// and what freshly created array elements hold.
func ZeroValue(t ObjectType) Object {
	switch t {
	case SHORT_OBJ:
		return &Short{Value: 0}
	case INTEGER_OBJ:
		return &Integer{Value: 0}
	case FLOAT_OBJ:
		return &Float{Value: 0}
	case DOUBLE_OBJ:
		return &Double{Value: 0}
	case BOOLEAN_OBJ:
		return FALSE
	case CHAR_OBJ:
		return &Char{Value: 0}
	case STRING_OBJ:
		return &String{Value: ""}
	}
	return nil
}

// The promotion lattice, narrowest to widest. Char and bool take part in
// arithmetic at int width.
var promotionRank = map[ObjectType]int{
	SHORT_OBJ:   0,
	CHAR_OBJ:    1,
	BOOLEAN_OBJ: 1,
	INTEGER_OBJ: 1,
	FLOAT_OBJ:   2,
	DOUBLE_OBJ:  3,
}

// ArithmeticType maps a type to the type it computes at: char and bool
// compute as int, everything else as itself. The second value is false for
// non-numeric types (string, array).
func ArithmeticType(t ObjectType) (ObjectType, bool) {
	switch t {
	case SHORT_OBJ, INTEGER_OBJ, FLOAT_OBJ, DOUBLE_OBJ:
		return t, true
	case CHAR_OBJ, BOOLEAN_OBJ:
		return INTEGER_OBJ, true
	}
	return t, false
}

// Promote picks the common type for a binary operation: the wider of the
// two operand types under the lattice short < int < float < double.
func Promote(a, b ObjectType) (ObjectType, bool) {
	ta, ok := ArithmeticType(a)
	if !ok {
		return a, false
	}
	tb, ok := ArithmeticType(b)
	if !ok {
		return b, false
	}
	if promotionRank[ta] >= promotionRank[tb] {
		return ta, true
	}
	return tb, true
}

func IsNumeric(t ObjectType) bool {
	_, ok := ArithmeticType(t)
	return ok
}

// SizeOf gives the byte width used by the aura (sizeof) operator. The
// unsigned modifier changes signedness, not width, so it plays no part here.
func SizeOf(t ObjectType) (int, bool) {
	switch t {
	case SHORT_OBJ:
		return 2, true
	case INTEGER_OBJ:
		return 4, true
	case FLOAT_OBJ:
		return 4, true
	case DOUBLE_OBJ:
		return 8, true
	case BOOLEAN_OBJ:
		return 1, true
	case CHAR_OBJ:
		return 1, true
	}
	return 0, false
}

func Equals(lhs, rhs Object) bool {
	if lhs.Type() != rhs.Type() {
		return false
	}
	switch lhs := lhs.(type) {
	case *Short:
		return lhs.Value == rhs.(*Short).Value
	case *Integer:
		return lhs.Value == rhs.(*Integer).Value
	case *Float:
		return lhs.Value == rhs.(*Float).Value
	case *Double:
		return lhs.Value == rhs.(*Double).Value
	case *Boolean:
		return lhs.Value == rhs.(*Boolean).Value
	case *Char:
		return lhs.Value == rhs.(*Char).Value
	case *String:
		return lhs.Value == rhs.(*String).Value
	}
	return false
}
