package analyzer

import (
	"testing"

	"github.com/nalgeon/be"

	"github.com/Brainrotlang/brainrot/initializer"
)

func analyze(t *testing.T, input string) []string {
	t.Helper()
	program := initializer.Parse("test", input)
	if len(program.Errors) != 0 {
		t.Fatalf("parse error: %s", program.Errors[0].Message)
	}
	warnings := Analyze(program)
	ids := make([]string, len(warnings))
	for i, w := range warnings {
		ids[i] = w.ErrorId
	}
	return ids
}

func TestCleanProgram(t *testing.T) {
	ids := analyze(t, `rizz add(rizz a, rizz b) {
	bussin a + b;
}
rizz x = 1;
flex (rizz i = 0; i < 3; i++) {
	x = x + add(i, 1);
	edgy (x > 2) {
		bruh;
	}
}
yapping("%d", x);
`)
	be.Equal(t, len(ids), 0)
}

func TestWarnings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`x = 1;`, "analysis/ident/undefined"},
		{`rizz x = y;`, "analysis/ident/undefined"},
		{`deadass rizz K = 1; K = 2;`, "analysis/const"},
		{`deadass rizz K = 1; K++;`, "analysis/const"},
		{`bruh;`, "analysis/break"},
		{`edgy (W) { bruh; }`, "analysis/break"},
		{`rizz x = 1 / 0;`, "analysis/div/zero"},
		{`rizz x = 1 % 0;`, "analysis/div/zero"},
		{`rizz x = f();`, "analysis/func/undefined"},
		{`rizz f(rizz a) { bussin a; } rizz x = f(1, 2);`, "analysis/args/number"},
		{`rizz f() { bussin 1; } rizz f() { bussin 2; }`, "analysis/func/redefined"},
		{`rizz g = 1; rizz f() { bussin g; }`, "analysis/ident/undefined"},
	}
	for _, tt := range tests {
		ids := analyze(t, tt.input)
		if len(ids) == 0 {
			t.Errorf("input %q produced no warning, wanted %s", tt.input, tt.expected)
			continue
		}
		be.Equal(t, ids[0], tt.expected)
	}
}

func TestBreakInsideLoopIsFine(t *testing.T) {
	tests := []string{
		`goon (W) { bruh; }`,
		`mewing { bruh; } goon (W);`,
		`flex (;;) { bruh; }`,
		`rizz x = 1; ohio (x) { based: bruh; }`,
		`goon (W) { edgy (W) { bruh; } }`,
	}
	for _, input := range tests {
		ids := analyze(t, input)
		be.Equal(t, len(ids), 0)
	}
}

func TestScopedLookup(t *testing.T) {
	// A name declared in a block is not visible after it.
	ids := analyze(t, `edgy (W) { rizz x = 1; }
yapping("%d", x);
`)
	be.Equal(t, len(ids), 1)
	be.Equal(t, ids[0], "analysis/ident/undefined")
}
