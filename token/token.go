package token

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers + literals
	IDENT      = "IDENT"  // counter, main, x, y, ...
	INT_LIT    = "INT"    // 1343456
	FLOAT_LIT  = "FLOAT"  // 1.23f
	DOUBLE_LIT = "DOUBLE" // 1.23
	CHAR_LIT   = "CHAR"   // 'a'
	STRING_LIT = "STRING" // "foo"

	// Operators
	ASSIGN   = "="
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	PERCENT  = "%"
	BANG     = "!"
	INC      = "++"
	DEC      = "--"

	LT     = "<"
	GT     = ">"
	LT_EQ  = "<="
	GT_EQ  = ">="
	EQ     = "=="
	NOT_EQ = "!="
	AND    = "&&"
	OR     = "||"

	// Delimiters
	COMMA     = ","
	SEMICOLON = ";"
	COLON     = ":"
	LPAREN    = "("
	RPAREN    = ")"
	LBRACE    = "{"
	RBRACE    = "}"
	LBRACK    = "["
	RBRACK    = "]"

	// Type keywords
	SKIBIDI = "skibidi" // void / main
	RIZZ    = "rizz"    // int
	SMOL    = "smol"    // short
	GYATT   = "gyatt"   // float
	COOKED  = "cooked"  // double
	CAP     = "cap"     // bool
	BUSS    = "buss"    // char
	LIT     = "lit"     // string

	// Modifier keywords
	DEADASS = "deadass" // const
	NUT     = "nut"     // unsigned
	SCHIZO  = "schizo"  // volatile

	// Control-flow keywords
	EDGY   = "edgy"       // if
	AMOGUS = "amogus"     // else
	FLEX   = "flex"       // for
	GOON   = "goon"       // while
	MEWING = "mewing"     // do
	OHIO   = "ohio"       // switch
	SIGMA  = "sigma rule" // case
	BASED  = "based"      // default
	BRUH   = "bruh"       // break
	BUSSIN = "bussin"     // return
	AURA   = "aura"       // sizeof

	TRUE  = "W"
	FALSE = "L"
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	ChStart int
	ChEnd   int
	Source  string
}

var keywords = map[string]TokenType{
	"skibidi": SKIBIDI,
	"rizz":    RIZZ,
	"smol":    SMOL,
	"gyatt":   GYATT,
	"cooked":  COOKED,
	"cap":     CAP,
	"buss":    BUSS,
	"lit":     LIT,
	"deadass": DEADASS,
	"nut":     NUT,
	"schizo":  SCHIZO,
	"edgy":    EDGY,
	"amogus":  AMOGUS,
	"flex":    FLEX,
	"goon":    GOON,
	"mewing":  MEWING,
	"ohio":    OHIO,
	"based":   BASED,
	"bruh":    BRUH,
	"bussin":  BUSSIN,
	"aura":    AURA,
	"W":       TRUE,
	"L":       FALSE,
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// TokenTypeIsType reports whether t begins a declaration, i.e. whether it
// names one of the variable types of the language.
func TokenTypeIsType(t TokenType) bool {
	return t == RIZZ || t == SMOL || t == GYATT || t == COOKED ||
		t == CAP || t == BUSS || t == LIT || t == SKIBIDI
}

// TokenTypeIsModifier reports whether t is one of the declaration modifiers
// (const, unsigned, volatile).
func TokenTypeIsModifier(t TokenType) bool {
	return t == DEADASS || t == NUT || t == SCHIZO
}
