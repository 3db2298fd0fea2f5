package lexer

import (
	"strings"

	"github.com/Brainrotlang/brainrot/object"
	"github.com/Brainrotlang/brainrot/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	char         int // column of the current char, 1-based
	source       string

	Errors object.Errors
}

func NewLexer(source, input string) *Lexer {
	l := &Lexer{input: input, line: 1, char: 0, source: source}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	if l.ch == '\n' {
		l.line = l.line + 1
		l.char = 0
	} else {
		l.char = l.char + 1
	}
	l.position = l.readPosition
	l.readPosition = l.readPosition + 1
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	var tok token.Token

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			tok = l.makeTwoCharToken(token.EQ)
		} else {
			tok = l.makeToken(token.ASSIGN, string(l.ch))
		}
	case '+':
		if l.peekChar() == '+' {
			tok = l.makeTwoCharToken(token.INC)
		} else {
			tok = l.makeToken(token.PLUS, string(l.ch))
		}
	case '-':
		if l.peekChar() == '-' {
			tok = l.makeTwoCharToken(token.DEC)
		} else {
			tok = l.makeToken(token.MINUS, string(l.ch))
		}
	case '*':
		tok = l.makeToken(token.ASTERISK, string(l.ch))
	case '/':
		tok = l.makeToken(token.SLASH, string(l.ch))
	case '%':
		tok = l.makeToken(token.PERCENT, string(l.ch))
	case '!':
		if l.peekChar() == '=' {
			tok = l.makeTwoCharToken(token.NOT_EQ)
		} else {
			tok = l.makeToken(token.BANG, string(l.ch))
		}
	case '<':
		if l.peekChar() == '=' {
			tok = l.makeTwoCharToken(token.LT_EQ)
		} else {
			tok = l.makeToken(token.LT, string(l.ch))
		}
	case '>':
		if l.peekChar() == '=' {
			tok = l.makeTwoCharToken(token.GT_EQ)
		} else {
			tok = l.makeToken(token.GT, string(l.ch))
		}
	case '&':
		if l.peekChar() == '&' {
			tok = l.makeTwoCharToken(token.AND)
		} else {
			tok = l.makeToken(token.ILLEGAL, string(l.ch))
			l.Errors = object.Throw("lex/illegal", l.Errors, tok)
		}
	case '|':
		if l.peekChar() == '|' {
			tok = l.makeTwoCharToken(token.OR)
		} else {
			tok = l.makeToken(token.ILLEGAL, string(l.ch))
			l.Errors = object.Throw("lex/illegal", l.Errors, tok)
		}
	case ',':
		tok = l.makeToken(token.COMMA, string(l.ch))
	case ';':
		tok = l.makeToken(token.SEMICOLON, string(l.ch))
	case ':':
		tok = l.makeToken(token.COLON, string(l.ch))
	case '(':
		tok = l.makeToken(token.LPAREN, string(l.ch))
	case ')':
		tok = l.makeToken(token.RPAREN, string(l.ch))
	case '{':
		tok = l.makeToken(token.LBRACE, string(l.ch))
	case '}':
		tok = l.makeToken(token.RBRACE, string(l.ch))
	case '[':
		tok = l.makeToken(token.LBRACK, string(l.ch))
	case ']':
		tok = l.makeToken(token.RBRACK, string(l.ch))
	case '"':
		return l.readString()
	case '\'':
		return l.readCharLiteral()
	case 0:
		tok = l.makeToken(token.EOF, "")
	default:
		if isLetter(l.ch) {
			return l.readIdentifier()
		}
		if isDigit(l.ch) {
			return l.readNumber()
		}
		tok = l.makeToken(token.ILLEGAL, string(l.ch))
		l.Errors = object.Throw("lex/illegal", l.Errors, tok)
	}
	l.readChar()
	return tok
}

func (l *Lexer) makeToken(tokenType token.TokenType, literal string) token.Token {
	return token.Token{Type: tokenType, Literal: literal,
		Line: l.line, ChStart: l.char, ChEnd: l.char + len(literal), Source: l.source}
}

func (l *Lexer) makeTwoCharToken(tokenType token.TokenType) token.Token {
	start := l.char
	ch := l.ch
	l.readChar()
	return token.Token{Type: tokenType, Literal: string(ch) + string(l.ch),
		Line: l.line, ChStart: start, ChEnd: start + 2, Source: l.source}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			for !(l.ch == '*' && l.peekChar() == '/') && l.ch != 0 {
				l.readChar()
			}
			l.readChar()
			l.readChar()
			continue
		}
		return
	}
}

// readIdentifier reads a run of letters/digits and classifies it as a
// keyword or a plain identifier. The two-word keyword "sigma rule" is
// stitched together here so that the parser only ever sees one token.
func (l *Lexer) readIdentifier() token.Token {
	start := l.char
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	word := l.input[position:l.position]
	if word == "sigma" {
		return l.readSigmaRule(start)
	}
	tok := token.Token{Type: token.LookupIdent(word), Literal: word,
		Line: l.line, ChStart: start, ChEnd: start + len(word), Source: l.source}
	return tok
}

func (l *Lexer) readSigmaRule(start int) token.Token {
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}
	position := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	tok := token.Token{Type: token.SIGMA, Literal: "sigma rule",
		Line: l.line, ChStart: start, ChEnd: l.char, Source: l.source}
	if l.input[position:l.position] != "rule" {
		tok.Type = token.ILLEGAL
		l.Errors = object.Throw("lex/sigma", l.Errors, tok)
	}
	return tok
}

// readNumber reads an integer, a double, or (with an f suffix) a float.
func (l *Lexer) readNumber() token.Token {
	start := l.char
	position := l.position
	isFloating := false
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		isFloating = true
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	literal := l.input[position:l.position]
	tokenType := token.TokenType(token.INT_LIT)
	if l.ch == 'f' || l.ch == 'F' {
		l.readChar()
		tokenType = token.FLOAT_LIT
	} else if isFloating {
		tokenType = token.DOUBLE_LIT
	}
	return token.Token{Type: tokenType, Literal: literal,
		Line: l.line, ChStart: start, ChEnd: start + len(literal), Source: l.source}
}

// readString reads a double-quoted string, resolving escapes. The token's
// Literal is the decoded text.
func (l *Lexer) readString() token.Token {
	start := l.char
	l.readChar()
	var out strings.Builder
	for l.ch != '"' {
		if l.ch == 0 || l.ch == '\n' {
			tok := token.Token{Type: token.ILLEGAL, Literal: out.String(),
				Line: l.line, ChStart: start, ChEnd: l.char, Source: l.source}
			l.Errors = object.Throw("lex/string/unterminated", l.Errors, tok)
			return tok
		}
		if l.ch == '\\' {
			l.readChar()
			out.WriteByte(unescape(l.ch))
		} else {
			out.WriteByte(l.ch)
		}
		l.readChar()
	}
	l.readChar()
	return token.Token{Type: token.STRING_LIT, Literal: out.String(),
		Line: l.line, ChStart: start, ChEnd: l.char, Source: l.source}
}

// readCharLiteral reads a single-quoted character, which may be an escape
// sequence. The token's Literal is the one decoded character.
func (l *Lexer) readCharLiteral() token.Token {
	start := l.char
	l.readChar()
	var ch byte
	switch l.ch {
	case 0, '\n', '\'':
		return l.badCharLiteral(start)
	case '\\':
		l.readChar()
		ch = unescape(l.ch)
	default:
		ch = l.ch
	}
	l.readChar()
	if l.ch != '\'' {
		return l.badCharLiteral(start)
	}
	l.readChar()
	return token.Token{Type: token.CHAR_LIT, Literal: string(ch),
		Line: l.line, ChStart: start, ChEnd: l.char, Source: l.source}
}

func (l *Lexer) badCharLiteral(start int) token.Token {
	for l.ch != '\'' && l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
	if l.ch == '\'' {
		l.readChar()
	}
	tok := token.Token{Type: token.ILLEGAL, Literal: "'",
		Line: l.line, ChStart: start, ChEnd: l.char, Source: l.source}
	l.Errors = object.Throw("lex/char", l.Errors, tok)
	return tok
}

func unescape(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	case '\\':
		return '\\'
	case '\'':
		return '\''
	case '"':
		return '"'
	}
	return ch
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
