package evaluator

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/nalgeon/be"

	"github.com/Brainrotlang/brainrot/ast"
	"github.com/Brainrotlang/brainrot/initializer"
	"github.com/Brainrotlang/brainrot/object"
)

type exitCall struct{ code int }

// run parses and executes a program, returning what it wrote to stdout and
// stderr. Top-level statements run first; if the program defines main, it
// is then called, the way the interpreter's driver does it.
func run(t *testing.T, input string) (stdout, stderr string) {
	t.Helper()
	stdout, stderr, err := runMaybe(t, input, "")
	if err != nil {
		t.Fatalf("unexpected runtime error: %s", err.Message)
	}
	return stdout, stderr
}

func runError(t *testing.T, input string) *object.Error {
	t.Helper()
	_, _, err := runMaybe(t, input, "")
	if err == nil {
		t.Fatal("expected a runtime error, got none")
	}
	return err
}

func runMaybe(t *testing.T, input, stdin string) (stdout, stderr string, runErr *object.Error) {
	t.Helper()
	program := initializer.Parse("test", input)
	if len(program.Errors) != 0 {
		t.Fatalf("parse error: %s", program.Errors[0].Message)
	}
	var out, errOut bytes.Buffer
	c := NewContext(program.Functions, &out, &errOut, strings.NewReader(stdin))
	c.Exit = func(code int) { panic(exitCall{code}) }
	c.Sleep = func(d time.Duration) {}
	env := object.NewEnvironment()

	defer func() {
		stdout, stderr = out.String(), errOut.String()
		if r := recover(); r != nil {
			if _, ok := r.(exitCall); !ok {
				panic(r)
			}
		}
	}()

	if err := ExecProgram(program.Statements, env, c); err != nil {
		return out.String(), errOut.String(), err
	}
	if mainFn, ok := program.Functions.Get("main"); ok {
		call := &ast.CallExpression{Token: mainFn.Token, Name: "main"}
		if result := Eval(call, env, c); isError(result) {
			return out.String(), errOut.String(), result.(*object.Error)
		}
	}
	return out.String(), errOut.String(), nil
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`yapping("%d", 5 / 2);`, "2\n"},
		{`yapping("%d", 7 % 3);`, "1\n"},
		{`yapping("%d", -7 % 3);`, "-1\n"},
		{`yapping("%d", 2 + 3 * 4);`, "14\n"},
		{`yapping("%g", 5.0 / 2);`, "2.5\n"},
		{`cooked d = 5 / 2; yapping("%g", d);`, "2\n"},
		{`yapping("%g", 1 + 0.5f);`, "1.5\n"},
		{`yapping("%d", 'a' + 1);`, "98\n"},
		{`yapping("%d", -'a');`, "-97\n"},
		{`smol a = 10; smol b = 3; yapping("%d", a / b);`, "3\n"},
		{`yapping("%g", 7.5 % 2.0);`, "1.5\n"},
	}
	for _, tt := range tests {
		stdout, _ := run(t, tt.input)
		be.Equal(t, stdout, tt.expected)
	}
}

func TestComparisonsYieldPromotedZeroOrOne(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`yapping("%d", 1 < 2);`, "1\n"},
		{`yapping("%d", 2 < 1);`, "0\n"},
		{`yapping("%g", 1.5 < 2.5);`, "1\n"},
		{`yapping("%d", 3 == 3);`, "1\n"},
		{`yapping("%d", W == L);`, "0\n"},
		{`yapping("%d", "a" == "a");`, "1\n"},
		{`yapping("%d", "a" != "b");`, "1\n"},
	}
	for _, tt := range tests {
		stdout, _ := run(t, tt.input)
		be.Equal(t, stdout, tt.expected)
	}
}

func TestDivisionByZeroRecovers(t *testing.T) {
	stdout, stderr := run(t, `rizz x = 5 / 0;
yapping("%d", x);
yapping("%d", 7 % 0);
yapping("still going");
`)
	be.Equal(t, stdout, "0\n0\nstill going\n")
	be.True(t, strings.Contains(stderr, "division by zero"))
	be.True(t, strings.Contains(stderr, "modulo by zero"))
}

func TestFloatDivisionByZero(t *testing.T) {
	stdout, stderr := run(t, `yapping("%g", 1.0 / 0.0);`)
	be.Equal(t, stdout, "+Inf\n")
	be.Equal(t, stderr, "")
}

func TestUnsignedModulo(t *testing.T) {
	stdout, _ := run(t, `nut rizz u = -1 % 7;
yapping("%d", u);
rizz s = -1 % 7;
yapping("%d", s);
`)
	be.Equal(t, stdout, "3\n-1\n")
}

func TestShortCircuit(t *testing.T) {
	stdout, _ := run(t, `rizz probe() {
	yapping("probed");
	bussin 1;
}
rizz a = 0 && probe();
rizz b = 1 || probe();
rizz d = 1 && probe();
yapping("%d %d %d", a, b, d);
`)
	be.Equal(t, stdout, "probed\n0 1 1\n")
}

func TestIncrementDecrement(t *testing.T) {
	stdout, _ := run(t, `rizz i = 3;
yapping("%d", i++);
yapping("%d", i);
yapping("%d", ++i);
yapping("%d", i--);
yapping("%d", --i);
smol s = 4;
yapping("%d", s++);
yapping("%d", s);
`)
	be.Equal(t, stdout, "3\n4\n5\n5\n3\n4\n5\n")
}

func TestIncrementArrayElement(t *testing.T) {
	stdout, _ := run(t, `rizz a[3];
a[1] = 10;
a[1]++;
yapping("%d %d %d", a[0], a[1], a[2]);
`)
	be.Equal(t, stdout, "0 11 0\n")
}

func TestArrays(t *testing.T) {
	stdout, _ := run(t, `rizz m[2][3];
m[1][2] = 42;
m[0][1] = 7;
yapping("%d %d %d %d", m[0][0], m[0][1], m[1][2], m[1][0]);
rizz v[3] = {1, 2, 3};
yapping("%d", v[0] + v[1] + v[2]);
`)
	be.Equal(t, stdout, "0 7 42 0\n6\n")
}

func TestArrayErrors(t *testing.T) {
	tests := []struct {
		input   string
		errorId string
	}{
		{`rizz a[3]; a[3] = 1;`, "eval/array/bounds"},
		{`rizz a[3]; rizz x = a[-1];`, "eval/array/bounds"},
		{`rizz m[2][3]; m[1] = 1;`, "eval/array/dims"},
		{`rizz m[2][3]; rizz x = m[0][1][2];`, "eval/array/dims"},
		{`rizz x = 1; rizz y = x[0];`, "eval/array/type"},
		{`rizz a[2] = {1, 2, 3};`, "eval/array/elements"},
		{`rizz a[2]; rizz x = a[1.5];`, "eval/array/index"},
	}
	for _, tt := range tests {
		err := runError(t, tt.input)
		be.Equal(t, err.ErrorId, tt.errorId)
	}
}

func TestFunctions(t *testing.T) {
	stdout, _ := run(t, `rizz double(rizz x) {
	x = x * 2;
	bussin x;
}
rizz x = 21;
yapping("%d", double(x));
yapping("%d", x);
`)
	be.Equal(t, stdout, "42\n21\n")
}

func TestDuplicateParameterNames(t *testing.T) {
	err := runError(t, `rizz f(rizz x, rizz x) {
	bussin x;
}
rizz y = f(1, 2);
`)
	be.Equal(t, err.ErrorId, "eval/scope/redeclared")
}

func TestGlobalsInvisibleInFunctions(t *testing.T) {
	err := runError(t, `rizz g = 10;
rizz f() {
	bussin g;
}
rizz x = f();
`)
	be.Equal(t, err.ErrorId, "eval/ident/undefined")
}

func TestArgumentConversion(t *testing.T) {
	stdout, _ := run(t, `rizz truncate(rizz x) {
	bussin x;
}
yapping("%d", truncate(3.9));
`)
	be.Equal(t, stdout, "3\n")
}

func TestReturnUnwindsNestedLoops(t *testing.T) {
	stdout, _ := run(t, `rizz find() {
	flex (rizz i = 0; i < 10; i++) {
		goon (W) {
			bussin 7;
		}
	}
	bussin 0;
}
yapping("%d", find());
`)
	be.Equal(t, stdout, "7\n")
}

func TestVoidFunctionAndMain(t *testing.T) {
	stdout, _ := run(t, `skibidi shout(lit s) {
	yapping("%s!", s);
}
skibidi main() {
	shout("hello");
}
`)
	be.Equal(t, stdout, "hello!\n")
}

func TestFunctionRedefinitionFirstWins(t *testing.T) {
	stdout, _ := run(t, `rizz f() { bussin 1; }
rizz f() { bussin 2; }
yapping("%d", f());
`)
	be.Equal(t, stdout, "1\n")
}

func TestBreakInnermostOnly(t *testing.T) {
	stdout, _ := run(t, `rizz count = 0;
flex (rizz i = 0; i < 3; i++) {
	goon (W) {
		bruh;
	}
	count++;
}
yapping("%d", count);
`)
	be.Equal(t, stdout, "3\n")
}

func TestWhileAndDoWhile(t *testing.T) {
	stdout, _ := run(t, `rizz x = 0;
goon (x < 3) {
	x++;
}
yapping("%d", x);
rizz y = 10;
mewing {
	y++;
} goon (y < 5);
yapping("%d", y);
`)
	be.Equal(t, stdout, "3\n11\n")
}

func TestForLoopScope(t *testing.T) {
	stdout, _ := run(t, `flex (rizz i = 0; i < 3; i++) {
	rizz x = i * 10;
	yappin("%d ", x);
}
yapping("");
`)
	be.Equal(t, stdout, "0 10 20 \n")
}

func TestForIncrementSeesBodyDeclarations(t *testing.T) {
	// The increment runs in the same per-iteration scope as the body.
	stdout, _ := run(t, `rizz total = 0;
flex (rizz i = 0; i < 10; i = i + step) {
	rizz step = 3;
	total = total + 1;
}
yapping("%d", total);
`)
	be.Equal(t, stdout, "4\n")
}

func TestShadowingAndRestore(t *testing.T) {
	stdout, _ := run(t, `rizz x = 1;
edgy (W) {
	rizz x = 2;
	yapping("%d", x);
}
yapping("%d", x);
`)
	be.Equal(t, stdout, "2\n1\n")
}

func TestSwitchFallThrough(t *testing.T) {
	stdout, _ := run(t, `rizz x = 1;
rizz total = 0;
ohio (x) {
	sigma rule 1:
		total = total + 1;
	sigma rule 2:
		total = total + 10;
		bruh;
	based:
		total = total + 100;
}
yapping("%d", total);
`)
	be.Equal(t, stdout, "11\n")
}

func TestSwitchDefault(t *testing.T) {
	stdout, _ := run(t, `rizz x = 9;
ohio (x) {
	sigma rule 1:
		yapping("one");
		bruh;
	based:
		yapping("other");
}
`)
	be.Equal(t, stdout, "other\n")
}

func TestConstRejectedAtAnyDepth(t *testing.T) {
	tests := []string{
		`deadass rizz K = 1; K = 2;`,
		`deadass rizz K = 1; edgy (W) { K = 2; }`,
		`deadass rizz K = 1; flex (rizz i = 0; i < 1; i++) { edgy (W) { K = 2; } }`,
		`deadass rizz K = 1; K++;`,
	}
	for _, input := range tests {
		err := runError(t, input)
		be.Equal(t, err.ErrorId, "eval/const")
	}
}

func TestRedeclarationInSameScope(t *testing.T) {
	err := runError(t, `rizz x = 1; rizz x = 2;`)
	be.Equal(t, err.ErrorId, "eval/scope/redeclared")
}

func TestTypeErrors(t *testing.T) {
	tests := []struct {
		input   string
		errorId string
	}{
		{`rizz x = "hi" + 1;`, "eval/string/arith"},
		{`rizz x = W + 1;`, "eval/bool/arith"},
		{`rizz x = -W;`, "eval/bool/arith"},
		{`rizz x = "hi";`, "eval/type/convert"},
		{`lit s = 5;`, "eval/type/convert"},
		{`rizz x = y + 1;`, "eval/ident/undefined"},
		{`rizz x = nope();`, "eval/func/undefined"},
		{`rizz f(rizz a) { bussin a; } rizz x = f(1, 2);`, "eval/args/number"},
	}
	for _, tt := range tests {
		err := runError(t, tt.input)
		be.Equal(t, err.ErrorId, tt.errorId)
	}
}

func TestConversionOnAssignment(t *testing.T) {
	stdout, _ := run(t, `rizz x = 3.9;
yapping("%d", x);
buss c = 65;
yapping("%c", c);
cap ok = 5;
yapping("%b", ok);
smol s = 70000;
yapping("%d", s);
`)
	be.Equal(t, stdout, "3\nA\nW\n4464\n")
}

func TestSizeof(t *testing.T) {
	stdout, _ := run(t, `rizz x = 0;
smol s = 0;
cooked d = 0.0;
rizz a[10];
yapping("%d %d %d %d", aura(x), aura(s), aura(d), aura(a));
yapping("%d", aura(1 + 2.5));
`)
	be.Equal(t, stdout, "4 2 8 40\n8\n")
}

func TestSizeofDoesNotEvaluate(t *testing.T) {
	stdout, _ := run(t, `rizz probe() {
	yapping("probed");
	bussin 1;
}
yapping("%d", aura(probe()));
`)
	be.Equal(t, stdout, "4\n")
}

func TestFormatSpecifiers(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`yapping("%d and %i", 1, 2);`, "1 and 2\n"},
		{`yapping("%u", -1);`, "4294967295\n"},
		{`yapping("%x %X %o", 255, 255, 8);`, "ff FF 10\n"},
		{`yapping("%f", 1.5);`, "1.500000\n"},
		{`yapping("%.2f", 1.567);`, "1.57\n"},
		{`yapping("%5d|", 42);`, "   42|\n"},
		{`yapping("%e", 1500.0);`, "1.500000e+03\n"},
		{`yapping("%c", 'x');`, "x\n"},
		{`yapping("%s w %s", "a", "b");`, "a w b\n"},
		{`yapping("%b %b", W, L);`, "W L\n"},
		{`yapping("100%%");`, "100%\n"},
		{`yapping("%ld", 5);`, "5\n"},
		{`yappin("no newline");`, "no newline"},
	}
	for _, tt := range tests {
		stdout, _ := run(t, tt.input)
		be.Equal(t, stdout, tt.expected)
	}
}

func TestFormatErrors(t *testing.T) {
	tests := []struct {
		input   string
		errorId string
	}{
		{`rizz x = 1; yapping(x);`, "builtin/format/first"},
		{`yapping("%q", 1);`, "builtin/format/spec"},
		{`yapping("%d %d", 1);`, "builtin/format/args"},
		{`yapping("%s", 5);`, "builtin/format/string"},
	}
	for _, tt := range tests {
		err := runError(t, tt.input)
		be.Equal(t, err.ErrorId, tt.errorId)
	}
}

func TestBaka(t *testing.T) {
	stdout, stderr := run(t, `baka("bad thing %d\n", 13);
yapping("fine");
`)
	be.Equal(t, stdout, "fine\n")
	be.Equal(t, stderr, "bad thing 13\n")
}

func TestRagequit(t *testing.T) {
	program := initializer.Parse("test", `yapping("before");
ragequit(3);
yapping("after");
`)
	be.Equal(t, len(program.Errors), 0)
	var out, errOut bytes.Buffer
	c := NewContext(program.Functions, &out, &errOut, strings.NewReader(""))
	exitCode := -1
	c.Exit = func(code int) { panic(exitCall{code}) }
	func() {
		defer func() {
			if r := recover(); r != nil {
				exitCode = r.(exitCall).code
			}
		}()
		ExecProgram(program.Statements, object.NewEnvironment(), c)
	}()
	be.Equal(t, exitCode, 3)
	be.Equal(t, out.String(), "before\n")
}

func TestChill(t *testing.T) {
	program := initializer.Parse("test", `chill(2);`)
	be.Equal(t, len(program.Errors), 0)
	var out, errOut bytes.Buffer
	c := NewContext(program.Functions, &out, &errOut, strings.NewReader(""))
	var slept time.Duration
	c.Sleep = func(d time.Duration) { slept = d }
	err := ExecProgram(program.Statements, object.NewEnvironment(), c)
	be.Equal(t, err, nil)
	be.Equal(t, slept, 2*time.Second)
}

func TestChillRejectsNegative(t *testing.T) {
	err := runError(t, `chill(-1);`)
	be.Equal(t, err.ErrorId, "builtin/chill/arg")
}

func TestSlorp(t *testing.T) {
	stdout, _, err := runMaybe(t, `rizz n;
cooked d;
lit word;
buss c;
slorp(n);
slorp(d);
slorp(word);
slorp(c);
yapping("%d %g %s %c", n, d, word, c);
`, "42 2.5 hello x")
	be.Equal(t, err, nil)
	be.Equal(t, stdout, "42 2.5 hello x\n")
}

func TestSlorpErrors(t *testing.T) {
	tests := []struct {
		input   string
		stdin   string
		errorId string
	}{
		{`slorp(5);`, "", "builtin/slorp/ident"},
		{`rizz n; slorp(n);`, "notanumber", "builtin/slorp/read"},
		{`deadass rizz K = 1; slorp(K);`, "5", "eval/const"},
		{`rizz a[3]; slorp(a);`, "7", "builtin/slorp/array"},
	}
	for _, tt := range tests {
		_, _, err := runMaybe(t, tt.input, tt.stdin)
		if err == nil {
			t.Fatalf("input %q produced no error", tt.input)
		}
		be.Equal(t, err.ErrorId, tt.errorId)
	}
}

func TestPrintStatementNodes(t *testing.T) {
	// The executor still honors the old print statement nodes, though the
	// parser now lowers all printing to yapping and friends.
	var out, errOut bytes.Buffer
	c := NewContext(nil, &out, &errOut, strings.NewReader(""))
	env := object.NewEnvironment()
	program := &ast.StatementList{Statements: []ast.Node{
		&ast.PrintStatement{Expr: &ast.IntegerLiteral{Value: 42}},
		&ast.ErrorPrintStatement{Expr: &ast.StringLiteral{Value: "oops"}},
	}}
	err := ExecProgram(program, env, c)
	be.Equal(t, err, nil)
	be.Equal(t, out.String(), "42\n")
	be.Equal(t, errOut.String(), "oops\n")
}

func TestIdentifierMemo(t *testing.T) {
	// The node caches whether its lookup succeeded, so a loop doesn't
	// re-resolve on every pass.
	program := initializer.Parse("test", `rizz x = 1;
flex (rizz i = 0; i < 100; i++) {
	x = x + i;
}
yapping("%d", x);
`)
	be.Equal(t, len(program.Errors), 0)
	var out, errOut bytes.Buffer
	c := NewContext(program.Functions, &out, &errOut, strings.NewReader(""))
	err := ExecProgram(program.Statements, object.NewEnvironment(), c)
	be.Equal(t, err, nil)
	be.Equal(t, out.String(), "4951\n")
}
