package text

import (
	"strconv"
	"strings"

	"github.com/Brainrotlang/brainrot/token"
)

const (
	VERSION = "0.1.0"
	BULLET  = " ▪ "
	PROMPT  = "→ "
)

var (
	RESET  = "\033[0m"
	RED    = "\033[31m"
	GREEN  = "\033[32m"
	YELLOW = "\033[33m"
	CYAN   = "\033[36m"

	ERROR    = Red("error") + ": "
	RT_ERROR = Red("runtime error") + ": "
	WARNING  = Yellow("warning") + ": "
	OK       = Green("ok")
)

func Emph(s string) string {
	return CYAN + "'" + s + "'" + RESET
}

func Red(s string) string {
	return RED + s + RESET
}

func Green(s string) string {
	return GREEN + s + RESET
}

func Yellow(s string) string {
	return YELLOW + s + RESET
}

func Cyan(s string) string {
	return CYAN + s + RESET
}

func Logo() string {
	var padding string
	if len(VERSION)%2 == 0 {
		padding = ","
	}
	titleText := " Brainrot" + padding + " version " + VERSION + " "
	brain := Red("🧠")
	leftMargin := "  "
	bar := strings.Repeat("═", len(titleText)/2)
	logoString := "\n" +
		leftMargin + "╔" + bar + brain + bar + "╗\n" +
		leftMargin + "║" + titleText + "║\n" +
		leftMargin + "╚" + bar + brain + bar + "╝\n\n"
	return logoString
}

// DescribePos renders the position of a token for use in diagnostics.
func DescribePos(tok token.Token) string {
	result := strconv.Itoa(tok.Line) + ":" + strconv.Itoa(tok.ChStart)
	if tok.ChStart != tok.ChEnd {
		result = result + "-" + strconv.Itoa(tok.ChEnd)
	}
	result = " at line " + Yellow(result)
	prettySource := tok.Source
	if prettySource == "" {
		prettySource = "REPL input"
	} else {
		prettySource = Emph(prettySource)
	}
	return result + " of " + prettySource
}

func ToEscapedText(s string) string {
	result := "\""
	for _, ch := range s {
		switch ch {
		case '\n':
			result = result + "\\n"
		case '\r':
			result = result + "\\r"
		case '\t':
			result = result + "\\t"
		case '"':
			result = result + "\\\""
		default:
			result = result + string(ch)
		}
	}
	return result + "\""
}
