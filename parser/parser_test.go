package parser

import (
	"testing"

	"github.com/Brainrotlang/brainrot/ast"
	"github.com/Brainrotlang/brainrot/lexer"
	"github.com/Brainrotlang/brainrot/object"
)

func parseProgram(t *testing.T, input string) (*ast.StatementList, FunctionTable) {
	t.Helper()
	p := New(lexer.NewLexer("test", input))
	program, functions := p.ParseProgram()
	if len(p.Errors) != 0 {
		t.Fatalf("parser produced %d error(s), first was %q", len(p.Errors), p.Errors[0].Message)
	}
	return program, functions
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"x = 1 + 2 * 3;", "x = (1 + (2 * 3));"},
		{"x = (1 + 2) * 3;", "x = ((1 + 2) * 3);"},
		{"x = a % b + c;", "x = ((a % b) + c);"},
		{"x = -a * b;", "x = ((-a) * b);"},
		{"x = !a == b;", "x = ((!a) == b);"},
		{"x = a < b == c > d;", "x = ((a < b) == (c > d));"},
		{"x = a && b || c && d;", "x = ((a && b) || (c && d));"},
		{"x = a == b && c != d;", "x = ((a == b) && (c != d));"},
		{"x = a + b <= c;", "x = ((a + b) <= c);"},
		{"x = i++ + 2;", "x = ((i++) + 2);"},
		{"x = ++i * 2;", "x = ((++i) * 2);"},
		{"x = f(1, 2 + 3);", "x = f(1, (2 + 3));"},
		{"x = m[1][i + 1];", "x = m[1][(i + 1)];"},
		{"x = aura(y) % 2;", "x = (aura(y) % 2);"},
	}
	for _, tt := range tests {
		program, _ := parseProgram(t, tt.input)
		if len(program.Statements) != 1 {
			t.Fatalf("input %q gave %d statements", tt.input, len(program.Statements))
		}
		if got := program.Statements[0].String(); got != tt.expected {
			t.Errorf("input %q parsed as %q, wanted %q", tt.input, got, tt.expected)
		}
	}
}

func TestDeclarations(t *testing.T) {
	input := `deadass rizz LIMIT = 100;
nut rizz u;
smol s = 1;
gyatt m[2][3];
rizz v[3] = {1, 2, 3};
`
	program, _ := parseProgram(t, input)
	if len(program.Statements) != 5 {
		t.Fatalf("got %d statements, wanted 5", len(program.Statements))
	}

	limit := program.Statements[0].(*ast.Declaration)
	if !limit.Mods.IsConst || limit.VarType != object.INTEGER_OBJ || limit.Name != "LIMIT" {
		t.Errorf("bad const declaration: %s", limit.String())
	}
	u := program.Statements[1].(*ast.Declaration)
	if !u.Mods.IsUnsigned || u.Init != nil {
		t.Errorf("bad unsigned declaration: %s", u.String())
	}
	s := program.Statements[2].(*ast.Declaration)
	if s.VarType != object.SHORT_OBJ {
		t.Errorf("bad smol declaration: %s", s.String())
	}
	m := program.Statements[3].(*ast.Declaration)
	if m.VarType != object.FLOAT_OBJ || len(m.Dims) != 2 || m.Dims[0] != 2 || m.Dims[1] != 3 {
		t.Errorf("bad array declaration: %s", m.String())
	}
	v := program.Statements[4].(*ast.Declaration)
	if len(v.Dims) != 1 || len(v.ArrayInit) != 3 {
		t.Errorf("bad array initializer: %s", v.String())
	}
}

func TestFunctionDefinitions(t *testing.T) {
	input := `rizz add(rizz a, rizz b) {
	bussin a + b;
}
skibidi main() {
	rizz x = add(1, 2);
}
`
	program, functions := parseProgram(t, input)
	if len(program.Statements) != 0 {
		t.Fatalf("function definitions leaked into the statement list: %s", program.String())
	}
	add, ok := functions.Get("add")
	if !ok {
		t.Fatal("add not in function table")
	}
	if add.ReturnType != object.INTEGER_OBJ || len(add.Params) != 2 {
		t.Errorf("bad definition of add: %s", add.String())
	}
	if add.Params[0].VarName != "a" || add.Params[1].VarType != object.INTEGER_OBJ {
		t.Errorf("bad parameters of add: %s", add.Params.String())
	}
	main, ok := functions.Get("main")
	if !ok {
		t.Fatal("main not in function table")
	}
	if main.ReturnType != object.NO_OBJ {
		t.Errorf("main should have no return type, has %s", main.ReturnType)
	}
}

func TestFunctionRedefinition(t *testing.T) {
	input := `rizz f() { bussin 1; }
rizz f() { bussin 2; }
`
	p := New(lexer.NewLexer("test", input))
	_, functions := p.ParseProgram()
	if len(p.Errors) != 0 {
		t.Fatalf("unexpected parse error: %q", p.Errors[0].Message)
	}
	f, _ := functions.Get("f")
	if f.Body.Statements[0].(*ast.ReturnStatement).Value.(*ast.IntegerLiteral).Value != 1 {
		t.Error("second definition of f displaced the first")
	}
	if len(p.Redefined) != 1 {
		t.Errorf("got %d redefinitions, wanted 1", len(p.Redefined))
	}
}

func TestControlFlow(t *testing.T) {
	input := `edgy (x < 10) { x = x + 1; } amogus edgy (x < 20) { x = 0; } amogus { x = 1; }
flex (rizz i = 0; i < 3; i++) { bruh; }
goon (W) { bruh; }
mewing { x++; } goon (x < 5);
ohio (x) {
	sigma rule 1:
		x = 10;
	sigma rule 2:
		x = 20;
		bruh;
	based:
		x = 30;
}
`
	program, _ := parseProgram(t, input)
	if len(program.Statements) != 5 {
		t.Fatalf("got %d statements, wanted 5", len(program.Statements))
	}

	ifStmt := program.Statements[0].(*ast.IfStatement)
	elseIf, ok := ifStmt.Else.(*ast.IfStatement)
	if !ok || elseIf.Else == nil {
		t.Errorf("amogus edgy chain parsed wrong: %s", ifStmt.String())
	}

	forStmt := program.Statements[1].(*ast.ForStatement)
	if _, ok := forStmt.Init.(*ast.Declaration); !ok {
		t.Errorf("flex init is not a declaration: %s", forStmt.String())
	}
	if _, ok := forStmt.Incr.(*ast.ExpressionStatement); !ok {
		t.Errorf("flex incr parsed wrong: %s", forStmt.String())
	}

	if _, ok := program.Statements[2].(*ast.WhileStatement); !ok {
		t.Errorf("goon parsed wrong")
	}
	if _, ok := program.Statements[3].(*ast.DoWhileStatement); !ok {
		t.Errorf("mewing parsed wrong")
	}

	switchStmt := program.Statements[4].(*ast.SwitchStatement)
	if len(switchStmt.Cases) != 3 {
		t.Fatalf("got %d cases, wanted 3", len(switchStmt.Cases))
	}
	if switchStmt.Cases[2].Value != nil {
		t.Error("based case should have no value")
	}
	if len(switchStmt.Cases[1].Body.Statements) != 2 {
		t.Errorf("second sigma rule body has %d statements, wanted 2",
			len(switchStmt.Cases[1].Body.Statements))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input   string
		errorId string
	}{
		{"rizz x = ;", "parse/prefix"},
		{"rizz x 5;", "parse/expect"},
		{"rizz a[0];", "parse/array/dim"},
		{"rizz a[n];", "parse/array/dim"},
		{"skibidi x;", "parse/type"},
		{"ohio (x) { x = 1; }", "parse/case"},
		{"skibidi main() { bussin 5; }", "parse/return/void"},
		{"skibidi main() { rizz g() { bussin 1; } }", "parse/func/nested"},
		{"skibidi main() { 5 = x; }", "parse/target"},
		{"rizz a[1][1][1][1][1][1][1][1][1];", "parse/array/dims"},
		{"amogus { rizz x = 1; }", "parse/statement"},
	}
	for _, tt := range tests {
		p := New(lexer.NewLexer("test", tt.input))
		p.ParseProgram()
		if len(p.Errors) == 0 {
			t.Errorf("input %q produced no error, wanted %s", tt.input, tt.errorId)
			continue
		}
		if p.Errors[0].ErrorId != tt.errorId {
			t.Errorf("input %q produced error %s, wanted %s", tt.input, p.Errors[0].ErrorId, tt.errorId)
		}
	}
}
