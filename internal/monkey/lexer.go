package monkey

import (
	"fmt"
	"strconv"
	"strings"
)

// Lexer turns the input source into tokens, one at a time. The lexer never
// fails: anything it cannot make sense of becomes an ILLEGAL token and the
// parser decides what to do with it.
type Lexer struct {
	start   int
	current int
	source  []rune
}

// NewLexer creates a new lexer over the given source
func NewLexer(source string) *Lexer {
	lexer := new(Lexer)
	lexer.source = []rune(source)
	return lexer
}

// Tokenize scans the whole source and returns every token, the trailing EOF
// included.
func Tokenize(source string) []Token {
	lexer := NewLexer(source)
	var tokens []Token
	for {
		tok := lexer.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

// NextToken scans and returns the next token. Once the input is exhausted,
// every call returns an EOF token.
func (lexer *Lexer) NextToken() Token {
	lexer.skipWhitespace()
	lexer.start = lexer.current
	if !lexer.hasNext() {
		return Token{EOF, ""}
	}

	switch r := lexer.advance(); r {
	// Single character tokens
	case '+':
		return lexer.token(PLUS)
	case '-':
		return lexer.token(MINUS)
	case '*':
		return lexer.token(STAR)
	case '/':
		return lexer.token(SLASH)
	case '<':
		return lexer.token(LESS)
	case '>':
		return lexer.token(GREATER)
	case ',':
		return lexer.token(COMMA)
	case ';':
		return lexer.token(SEMICOLON)
	case ':':
		return lexer.token(COLON)
	case '(':
		return lexer.token(LEFT_PAREN)
	case ')':
		return lexer.token(RIGHT_PAREN)
	case '{':
		return lexer.token(LEFT_BRACE)
	case '}':
		return lexer.token(RIGHT_BRACE)
	case '[':
		return lexer.token(LEFT_BRACKET)
	case ']':
		return lexer.token(RIGHT_BRACKET)
	// Double character tokens
	case '=':
		if lexer.match('=') {
			return lexer.token(EQUAL_EQUAL)
		}
		return lexer.token(EQUAL)
	case '!':
		if lexer.match('=') {
			return lexer.token(BANG_EQUAL)
		}
		return lexer.token(BANG)
	// Literals
	case '"':
		return lexer.scanString()
	default:
		if isDigit(r) {
			return lexer.scanNumber()
		}
		if isBeginIdent(r) {
			return lexer.scanIdentifier()
		}
		return newIllegalToken(fmt.Sprintf("unexpected character %q", r))
	}
}

func (lexer *Lexer) scanString() Token {
	var sb strings.Builder
	for lexer.hasNext() {
		switch r := lexer.advance(); r {
		case '"':
			return Token{STRING, sb.String()}
		case '\\':
			if !lexer.hasNext() {
				return newIllegalToken("unterminated string")
			}
			sb.WriteRune(unescape(lexer.advance()))
		default:
			sb.WriteRune(r)
		}
	}
	return newIllegalToken("unterminated string")
}

func (lexer *Lexer) scanNumber() Token {
	for isDigit(lexer.peek()) {
		lexer.advance()
	}
	lexeme := lexer.lexeme()
	if _, err := strconv.ParseInt(lexeme, 10, 64); err != nil {
		return newIllegalToken(err.Error())
	}
	return Token{INT, lexeme}
}

func (lexer *Lexer) scanIdentifier() Token {
	for isAlphanumeric(lexer.peek()) {
		lexer.advance()
	}
	return lexer.token(lookupIdent(lexer.lexeme()))
}

func (lexer *Lexer) skipWhitespace() {
	for {
		switch lexer.peek() {
		case ' ', '\t', '\r', '\n':
			lexer.advance()
		default:
			return
		}
	}
}

// token creates a token of the given type whose literal is the lexeme from
// `start` to `current`
func (lexer *Lexer) token(typ TokenType) Token {
	return Token{typ, lexer.lexeme()}
}

func (lexer *Lexer) lexeme() string {
	return string(lexer.source[lexer.start:lexer.current])
}

// hasNext returns true if the lexer has not read pass the source length
func (lexer *Lexer) hasNext() bool {
	return lexer.current < len(lexer.source)
}

// advance consumes and returns the rune at the current position
func (lexer *Lexer) advance() rune {
	r := lexer.source[lexer.current]
	lexer.current++
	return r
}

// match checks if the rune at the current position is equal to the given rune,
// if they are equal, consumes the rune at the current position.
func (lexer *Lexer) match(expected rune) bool {
	if !lexer.hasNext() || lexer.source[lexer.current] != expected {
		return false
	}
	lexer.current++
	return true
}

// peek returns the rune at the current position, but does not consume it
func (lexer *Lexer) peek() rune {
	if !lexer.hasNext() {
		return '\x00'
	}
	return lexer.source[lexer.current]
}

func unescape(r rune) rune {
	switch r {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	}
	return r
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return isBeginIdent(r) || isDigit(r)
}

func isBeginIdent(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}
