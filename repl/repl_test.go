package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nalgeon/be"
)

func replSession(t *testing.T, lines ...string) string {
	t.Helper()
	var out, errOut bytes.Buffer
	r := New(&out, &errOut, strings.NewReader(""))
	for _, line := range lines {
		if r.Do(line) {
			break
		}
	}
	return out.String()
}

func TestStatePersistsAcrossLines(t *testing.T) {
	output := replSession(t,
		"rizz x = 5",
		"x = x + 1",
		`yapping("%d", x)`,
	)
	be.Equal(t, output, "6\n")
}

func TestExpressionEcho(t *testing.T) {
	output := replSession(t, "1 + 2 * 3")
	be.Equal(t, output, "7\n")
}

func TestFunctionsAtThePrompt(t *testing.T) {
	output := replSession(t,
		"rizz double(rizz n) { bussin n * 2; }",
		"double(21)",
	)
	be.Equal(t, output, "42\n")
}

func TestQuit(t *testing.T) {
	var out, errOut bytes.Buffer
	r := New(&out, &errOut, strings.NewReader(""))
	be.True(t, r.Do("quit"))
	be.Equal(t, r.Do("rizz x = 1"), false)
}

func TestErrorsDoNotKillTheSession(t *testing.T) {
	output := replSession(t,
		"rizz x = nope",
		"rizz x = 1",
		`yapping("%d", x)`,
	)
	be.True(t, strings.Contains(output, "undefined variable"))
	be.True(t, strings.Contains(output, "1\n"))
}

func TestVars(t *testing.T) {
	output := replSession(t,
		"rizz x = 5",
		"vars",
	)
	be.True(t, strings.Contains(output, "x = 5"))
}
