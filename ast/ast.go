package ast

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/Brainrotlang/brainrot/object"
	"github.com/Brainrotlang/brainrot/signature"
	"github.com/Brainrotlang/brainrot/token"
)

// The base Node interface
type Node interface {
	GetToken() token.Token
	TokenLiteral() string
	String() string
}

// ---- Expressions ----

type Identifier struct {
	Token token.Token
	Value string

	// Whether this node has been resolved against the scope chain before,
	// and what the answer was. The memo is node-local: it stops a node that
	// is re-evaluated in a loop from re-walking (and re-reporting) a lookup
	// that already happened.
	Checked bool
	Valid   bool
}

func (i *Identifier) GetToken() token.Token { return i.Token }
func (i *Identifier) TokenLiteral() string  { return i.Token.Literal }
func (i *Identifier) String() string        { return i.Value }

type IntegerLiteral struct {
	Token token.Token
	Value int32
}

func (il *IntegerLiteral) GetToken() token.Token { return il.Token }
func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Literal }
func (il *IntegerLiteral) String() string        { return il.Token.Literal }

type ShortLiteral struct {
	Token token.Token
	Value int16
}

func (sl *ShortLiteral) GetToken() token.Token { return sl.Token }
func (sl *ShortLiteral) TokenLiteral() string  { return sl.Token.Literal }
func (sl *ShortLiteral) String() string        { return sl.Token.Literal }

type FloatLiteral struct {
	Token token.Token
	Value float32
}

func (fl *FloatLiteral) GetToken() token.Token { return fl.Token }
func (fl *FloatLiteral) TokenLiteral() string  { return fl.Token.Literal }
func (fl *FloatLiteral) String() string        { return fl.Token.Literal }

type DoubleLiteral struct {
	Token token.Token
	Value float64
}

func (dl *DoubleLiteral) GetToken() token.Token { return dl.Token }
func (dl *DoubleLiteral) TokenLiteral() string  { return dl.Token.Literal }
func (dl *DoubleLiteral) String() string        { return dl.Token.Literal }

type CharLiteral struct {
	Token token.Token
	Value byte
}

func (cl *CharLiteral) GetToken() token.Token { return cl.Token }
func (cl *CharLiteral) TokenLiteral() string  { return cl.Token.Literal }
func (cl *CharLiteral) String() string        { return "'" + string(cl.Value) + "'" }

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (bl *BooleanLiteral) GetToken() token.Token { return bl.Token }
func (bl *BooleanLiteral) TokenLiteral() string  { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string        { return bl.Token.Literal }

type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) GetToken() token.Token { return sl.Token }
func (sl *StringLiteral) TokenLiteral() string  { return sl.Token.Literal }
func (sl *StringLiteral) String() string        { return strconv.Quote(sl.Value) }

type PrefixExpression struct {
	Token    token.Token
	Operator string // "-", "!", "++", "--"
	Right    Node
}

func (pe *PrefixExpression) GetToken() token.Token { return pe.Token }
func (pe *PrefixExpression) TokenLiteral() string  { return pe.Token.Literal }
func (pe *PrefixExpression) String() string {
	return "(" + pe.Operator + pe.Right.String() + ")"
}

type PostfixExpression struct {
	Token    token.Token
	Operator string // "++", "--"
	Left     Node
}

func (pe *PostfixExpression) GetToken() token.Token { return pe.Token }
func (pe *PostfixExpression) TokenLiteral() string  { return pe.Token.Literal }
func (pe *PostfixExpression) String() string {
	return "(" + pe.Left.String() + pe.Operator + ")"
}

type InfixExpression struct {
	Token    token.Token
	Left     Node
	Operator string
	Right    Node
}

func (ie *InfixExpression) GetToken() token.Token { return ie.Token }
func (ie *InfixExpression) TokenLiteral() string  { return ie.Token.Literal }
func (ie *InfixExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ie.Left.String())
	out.WriteString(" " + ie.Operator + " ")
	out.WriteString(ie.Right.String())
	out.WriteString(")")
	return out.String()
}

type ArrayAccess struct {
	Token   token.Token // the name of the array
	Name    string
	Indices []Node
}

func (aa *ArrayAccess) GetToken() token.Token { return aa.Token }
func (aa *ArrayAccess) TokenLiteral() string  { return aa.Token.Literal }
func (aa *ArrayAccess) String() string {
	var out bytes.Buffer
	out.WriteString(aa.Name)
	for _, ix := range aa.Indices {
		out.WriteString("[" + ix.String() + "]")
	}
	return out.String()
}

type CallExpression struct {
	Token     token.Token // the name of the function
	Name      string
	Arguments []Node
}

func (ce *CallExpression) GetToken() token.Token { return ce.Token }
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Literal }
func (ce *CallExpression) String() string {
	args := []string{}
	for _, a := range ce.Arguments {
		args = append(args, a.String())
	}
	return ce.Name + "(" + strings.Join(args, ", ") + ")"
}

type SizeofExpression struct {
	Token   token.Token
	Operand Node
}

func (se *SizeofExpression) GetToken() token.Token { return se.Token }
func (se *SizeofExpression) TokenLiteral() string  { return se.Token.Literal }
func (se *SizeofExpression) String() string        { return "aura(" + se.Operand.String() + ")" }

// ---- Statements ----

type StatementList struct {
	Token      token.Token
	Statements []Node
}

func (sl *StatementList) GetToken() token.Token { return sl.Token }
func (sl *StatementList) TokenLiteral() string  { return sl.Token.Literal }
func (sl *StatementList) String() string {
	var out bytes.Buffer
	for _, s := range sl.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// A Declaration creates a new variable in the current scope. Dims is empty
// for a scalar; ArrayInit holds the elements of a brace initializer.
type Declaration struct {
	Token     token.Token
	Name      string
	VarType   object.ObjectType
	Mods      object.Modifiers
	Dims      []int
	Init      Node
	ArrayInit []Node
}

func (d *Declaration) GetToken() token.Token { return d.Token }
func (d *Declaration) TokenLiteral() string  { return d.Token.Literal }
func (d *Declaration) String() string {
	var out bytes.Buffer
	out.WriteString(d.VarType.String() + " " + d.Name)
	for _, dim := range d.Dims {
		out.WriteString("[" + strconv.Itoa(dim) + "]")
	}
	if d.Init != nil {
		out.WriteString(" = " + d.Init.String())
	}
	out.WriteString(";")
	return out.String()
}

// An Assignment's Target is an *Identifier or an *ArrayAccess.
type Assignment struct {
	Token  token.Token
	Target Node
	Value  Node
}

func (a *Assignment) GetToken() token.Token { return a.Token }
func (a *Assignment) TokenLiteral() string  { return a.Token.Literal }
func (a *Assignment) String() string {
	return a.Target.String() + " = " + a.Value.String() + ";"
}

type ExpressionStatement struct {
	Token token.Token
	Expr  Node
}

func (es *ExpressionStatement) GetToken() token.Token { return es.Token }
func (es *ExpressionStatement) TokenLiteral() string  { return es.Token.Literal }
func (es *ExpressionStatement) String() string        { return es.Expr.String() + ";" }

type IfStatement struct {
	Token     token.Token
	Condition Node
	Then      Node
	Else      Node // may be nil
}

func (is *IfStatement) GetToken() token.Token { return is.Token }
func (is *IfStatement) TokenLiteral() string  { return is.Token.Literal }
func (is *IfStatement) String() string {
	result := "edgy (" + is.Condition.String() + ") {" + is.Then.String() + "}"
	if is.Else != nil {
		result = result + " amogus {" + is.Else.String() + "}"
	}
	return result
}

type ForStatement struct {
	Token token.Token
	Init  Node // may be nil
	Cond  Node // may be nil
	Incr  Node // may be nil
	Body  Node
}

func (fs *ForStatement) GetToken() token.Token { return fs.Token }
func (fs *ForStatement) TokenLiteral() string  { return fs.Token.Literal }
func (fs *ForStatement) String() string {
	var out bytes.Buffer
	out.WriteString("flex (")
	if fs.Init != nil {
		out.WriteString(fs.Init.String())
	}
	out.WriteString(" ")
	if fs.Cond != nil {
		out.WriteString(fs.Cond.String())
	}
	out.WriteString("; ")
	if fs.Incr != nil {
		out.WriteString(fs.Incr.String())
	}
	out.WriteString(") {" + fs.Body.String() + "}")
	return out.String()
}

type WhileStatement struct {
	Token token.Token
	Cond  Node
	Body  Node
}

func (ws *WhileStatement) GetToken() token.Token { return ws.Token }
func (ws *WhileStatement) TokenLiteral() string  { return ws.Token.Literal }
func (ws *WhileStatement) String() string {
	return "goon (" + ws.Cond.String() + ") {" + ws.Body.String() + "}"
}

type DoWhileStatement struct {
	Token token.Token
	Body  Node
	Cond  Node
}

func (dw *DoWhileStatement) GetToken() token.Token { return dw.Token }
func (dw *DoWhileStatement) TokenLiteral() string  { return dw.Token.Literal }
func (dw *DoWhileStatement) String() string {
	return "mewing {" + dw.Body.String() + "} goon (" + dw.Cond.String() + ");"
}

// A Case with a nil Value is the based (default) case.
type Case struct {
	Token token.Token
	Value Node
	Body  *StatementList
}

type SwitchStatement struct {
	Token   token.Token
	Subject Node
	Cases   []*Case
}

func (ss *SwitchStatement) GetToken() token.Token { return ss.Token }
func (ss *SwitchStatement) TokenLiteral() string  { return ss.Token.Literal }
func (ss *SwitchStatement) String() string {
	var out bytes.Buffer
	out.WriteString("ohio (" + ss.Subject.String() + ") {")
	for _, c := range ss.Cases {
		if c.Value == nil {
			out.WriteString("based: ")
		} else {
			out.WriteString("sigma rule " + c.Value.String() + ": ")
		}
		out.WriteString(c.Body.String())
	}
	out.WriteString("}")
	return out.String()
}

type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) GetToken() token.Token { return bs.Token }
func (bs *BreakStatement) TokenLiteral() string  { return bs.Token.Literal }
func (bs *BreakStatement) String() string        { return "bruh;" }

type ReturnStatement struct {
	Token token.Token
	Value Node // may be nil
}

func (rs *ReturnStatement) GetToken() token.Token { return rs.Token }
func (rs *ReturnStatement) TokenLiteral() string  { return rs.Token.Literal }
func (rs *ReturnStatement) String() string {
	if rs.Value == nil {
		return "bussin;"
	}
	return "bussin " + rs.Value.String() + ";"
}

type FunctionDef struct {
	Token      token.Token
	Name       string
	ReturnType object.ObjectType // NO_OBJ for a skibidi function
	Params     signature.Signature
	Body       *StatementList
}

func (fd *FunctionDef) GetToken() token.Token { return fd.Token }
func (fd *FunctionDef) TokenLiteral() string  { return fd.Token.Literal }
func (fd *FunctionDef) String() string {
	return fd.ReturnType.String() + " " + fd.Name + " " + fd.Params.String() +
		" {" + fd.Body.String() + "}"
}

// PrintStatement and ErrorPrintStatement print one expression and a newline
// to stdout/stderr. They survive from an older shape of the language where
// printing was a statement rather than the yapping/baka built-ins; the
// executor still honors them.
type PrintStatement struct {
	Token token.Token
	Expr  Node
}

func (ps *PrintStatement) GetToken() token.Token { return ps.Token }
func (ps *PrintStatement) TokenLiteral() string  { return ps.Token.Literal }
func (ps *PrintStatement) String() string        { return "yap(" + ps.Expr.String() + ");" }

type ErrorPrintStatement struct {
	Token token.Token
	Expr  Node
}

func (es *ErrorPrintStatement) GetToken() token.Token { return es.Token }
func (es *ErrorPrintStatement) TokenLiteral() string  { return es.Token.Literal }
func (es *ErrorPrintStatement) String() string        { return "yap_err(" + es.Expr.String() + ");" }
