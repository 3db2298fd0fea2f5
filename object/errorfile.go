package object

import (
	"fmt"

	"github.com/Brainrotlang/brainrot/text"
	"github.com/Brainrotlang/brainrot/token"
)

// A map from error identifiers to functions that supply the corresponding
// error messages.
//
// Errors in the map are in alphabetical order of their identifiers.
//
// Major categories are builtin, eval, init, lex, and parse. Two otherwise
// identical errors thrown in different places in the Go code must be given
// different identifiers, if only by suffixing /a, /b, etc.

type ErrorCreator struct {
	Message func(tok token.Token, args ...any) string
}

type Errors []*Error

var ErrorCreatorMap = map[string]ErrorCreator{

	"analysis/args/number": {
		Message: func(tok token.Token, args ...any) string {
			return "function " + text.Emph(args[0].(string)) + " takes " +
				fmt.Sprint(args[1]) + " argument(s) but is given " + fmt.Sprint(args[2])
		},
	},

	"analysis/break": {
		Message: func(tok token.Token, args ...any) string {
			return text.Emph("bruh") + " outside of any loop or ohio block"
		},
	},

	"analysis/const": {
		Message: func(tok token.Token, args ...any) string {
			return "assignment to deadass variable " + text.Emph(args[0].(string))
		},
	},

	"analysis/div/zero": {
		Message: func(tok token.Token, args ...any) string {
			return "division by a literal zero"
		},
	},

	"analysis/func/redefined": {
		Message: func(tok token.Token, args ...any) string {
			return "function " + text.Emph(args[0].(string)) + " is defined twice; the first definition wins"
		},
	},

	"analysis/func/undefined": {
		Message: func(tok token.Token, args ...any) string {
			return "call to undefined function " + text.Emph(args[0].(string))
		},
	},

	"analysis/ident/undefined": {
		Message: func(tok token.Token, args ...any) string {
			return "variable " + text.Emph(args[0].(string)) + " is used before being declared"
		},
	},

	"builtin/chill/arg": {
		Message: func(tok token.Token, args ...any) string {
			return "chill expects a non-negative number of seconds, got " + text.Emph(fmt.Sprint(args[0]))
		},
	},

	"builtin/format/args": {
		Message: func(tok token.Token, args ...any) string {
			return "not enough arguments for the format string of " + text.Emph(args[0].(string))
		},
	},

	"builtin/format/first": {
		Message: func(tok token.Token, args ...any) string {
			return "the first argument to " + text.Emph(args[0].(string)) + " must be a string literal"
		},
	},

	"builtin/format/spec": {
		Message: func(tok token.Token, args ...any) string {
			return "invalid conversion specifier in format string of " + text.Emph(args[0].(string))
		},
	},

	"builtin/format/string": {
		Message: func(tok token.Token, args ...any) string {
			return "argument of %s conversion is not a string"
		},
	},

	"builtin/ragequit/arg": {
		Message: func(tok token.Token, args ...any) string {
			return "ragequit expects an integer exit code"
		},
	},

	"builtin/slorp/array": {
		Message: func(tok token.Token, args ...any) string {
			return "slorp can't read into the array " + text.Emph(args[0].(string))
		},
	},

	"builtin/slorp/ident": {
		Message: func(tok token.Token, args ...any) string {
			return "slorp needs a variable to read into"
		},
	},

	"builtin/slorp/read": {
		Message: func(tok token.Token, args ...any) string {
			return "could not read a value of type " + text.Emph(args[0].(string)) + " from input"
		},
	},

	"eval/args/number": {
		Message: func(tok token.Token, args ...any) string {
			return "function " + text.Emph(args[0].(string)) + " takes " +
				fmt.Sprint(args[1]) + " argument(s) but was given " + fmt.Sprint(args[2])
		},
	},

	"eval/array/bounds": {
		Message: func(tok token.Token, args ...any) string {
			return "array index " + fmt.Sprint(args[0]) + " out of bounds for dimension " +
				fmt.Sprint(args[1]) + " of length " + fmt.Sprint(args[2])
		},
	},

	"eval/array/dims": {
		Message: func(tok token.Token, args ...any) string {
			return "array " + text.Emph(args[0].(string)) + " has " + fmt.Sprint(args[1]) +
				" dimension(s) but was accessed with " + fmt.Sprint(args[2]) + " index/indices"
		},
	},

	"eval/array/elements": {
		Message: func(tok token.Token, args ...any) string {
			return "array initializer has " + fmt.Sprint(args[0]) +
				" element(s) but the array has length " + fmt.Sprint(args[1])
		},
	},

	"eval/array/index": {
		Message: func(tok token.Token, args ...any) string {
			return "array index must be an integer type"
		},
	},

	"eval/array/type": {
		Message: func(tok token.Token, args ...any) string {
			return text.Emph(args[0].(string)) + " is not an array"
		},
	},

	"eval/bool/arith": {
		Message: func(tok token.Token, args ...any) string {
			return "a cap value is not a valid operand of " + text.Emph(args[0].(string))
		},
	},

	"eval/const": {
		Message: func(tok token.Token, args ...any) string {
			return "cannot assign to deadass variable " + text.Emph(args[0].(string))
		},
	},

	"eval/div/int": {
		Message: func(tok token.Token, args ...any) string {
			return "division by zero"
		},
	},

	"eval/div/mod": {
		Message: func(tok token.Token, args ...any) string {
			return "modulo by zero"
		},
	},

	"eval/func/undefined": {
		Message: func(tok token.Token, args ...any) string {
			return "undefined function " + text.Emph(args[0].(string))
		},
	},

	"eval/ident/undefined": {
		Message: func(tok token.Token, args ...any) string {
			return "undefined variable " + text.Emph(args[0].(string))
		},
	},

	"eval/node/unknown": {
		Message: func(tok token.Token, args ...any) string {
			return "don't know how to evaluate this"
		},
	},

	"eval/op/type": {
		Message: func(tok token.Token, args ...any) string {
			return "invalid operand type " + text.Emph(args[1].(string)) +
				" for operator " + text.Emph(args[0].(string))
		},
	},

	"eval/op/unknown": {
		Message: func(tok token.Token, args ...any) string {
			return "unknown operator " + text.Emph(args[0].(string))
		},
	},

	"eval/scope/redeclared": {
		Message: func(tok token.Token, args ...any) string {
			return "variable " + text.Emph(args[0].(string)) + " already declared in this scope"
		},
	},

	"eval/sizeof/type": {
		Message: func(tok token.Token, args ...any) string {
			return "aura cannot be applied to a value of type " + text.Emph(args[0].(string))
		},
	},

	"eval/statement/unknown": {
		Message: func(tok token.Token, args ...any) string {
			return "don't know how to execute this statement"
		},
	},

	"eval/string/arith": {
		Message: func(tok token.Token, args ...any) string {
			return "a lit value is not a valid operand of " + text.Emph(args[0].(string))
		},
	},

	"eval/target": {
		Message: func(tok token.Token, args ...any) string {
			return "cannot assign to this expression"
		},
	},

	"eval/type/convert": {
		Message: func(tok token.Token, args ...any) string {
			return "cannot use a value of type " + text.Emph(args[0].(string)) +
				" where " + text.Emph(args[1].(string)) + " is needed"
		},
	},

	"eval/unary/target": {
		Message: func(tok token.Token, args ...any) string {
			return text.Emph(args[0].(string)) + " needs a variable to operate on"
		},
	},

	"init/main/missing": {
		Message: func(tok token.Token, args ...any) string {
			return "program has no " + text.Emph("skibidi main") + " function"
		},
	},

	"lex/char": {
		Message: func(tok token.Token, args ...any) string {
			return "malformed character literal"
		},
	},

	"lex/illegal": {
		Message: func(tok token.Token, args ...any) string {
			return "illegal character " + text.Emph(tok.Literal)
		},
	},

	"lex/sigma": {
		Message: func(tok token.Token, args ...any) string {
			return text.Emph("sigma") + " must be followed by " + text.Emph("rule")
		},
	},

	"lex/string/unterminated": {
		Message: func(tok token.Token, args ...any) string {
			return "unterminated string literal"
		},
	},

	"parse/array/dim": {
		Message: func(tok token.Token, args ...any) string {
			return "array dimension must be a positive integer literal"
		},
	},

	"parse/array/dims": {
		Message: func(tok token.Token, args ...any) string {
			return "array has too many dimensions (the most allowed is " + fmt.Sprint(MaxDimensions) + ")"
		},
	},

	"parse/case": {
		Message: func(tok token.Token, args ...any) string {
			return "expected " + text.Emph("sigma rule") + " or " + text.Emph("based") + " inside ohio block"
		},
	},

	"parse/expect": {
		Message: func(tok token.Token, args ...any) string {
			return "expected " + text.Emph(fmt.Sprint(args[0])) + ", got " + text.Emph(fmt.Sprint(args[1]))
		},
	},

	"parse/float": {
		Message: func(tok token.Token, args ...any) string {
			return "couldn't parse " + text.Emph(tok.Literal) + " as a number"
		},
	},

	"parse/func/nested": {
		Message: func(tok token.Token, args ...any) string {
			return "functions can only be defined at the top level"
		},
	},

	"parse/int": {
		Message: func(tok token.Token, args ...any) string {
			return "couldn't parse " + text.Emph(tok.Literal) + " as an integer"
		},
	},

	"parse/prefix": {
		Message: func(tok token.Token, args ...any) string {
			return "can't begin an expression with " + text.Emph(tok.Literal)
		},
	},

	"parse/return/void": {
		Message: func(tok token.Token, args ...any) string {
			return "a skibidi function can't bussin a value"
		},
	},

	"parse/statement": {
		Message: func(tok token.Token, args ...any) string {
			return "unexpected " + text.Emph(tok.Literal) + " at start of statement"
		},
	},

	"parse/target": {
		Message: func(tok token.Token, args ...any) string {
			return "the left side of " + text.Emph("=") + " must be a variable or an array element"
		},
	},

	"parse/type": {
		Message: func(tok token.Token, args ...any) string {
			return "expected a type, got " + text.Emph(tok.Literal)
		},
	},
}

func CreateErr(ident string, tok token.Token, args ...any) *Error {
	creator, ok := ErrorCreatorMap[ident]
	if !ok {
		return &Error{ErrorId: ident, Message: "oopsie, unhandled error " + text.Emph(ident), Token: tok}
	}
	return &Error{ErrorId: ident, Message: creator.Message(tok, args...), Token: tok}
}

func Throw(ident string, errors Errors, tok token.Token, args ...any) Errors {
	return append(errors, CreateErr(ident, tok, args...))
}
