// Package lexer implements the hand-rolled, look-ahead-driven tokenizer for
// the SPACE language (spec.md §4.1). It performs a single forward pass over
// the source buffer, producing a token vector terminated by an EOF token.
package lexer

import (
	"fmt"
	"strings"

	"github.com/lukaslampl/space-lang-go/pkg/token"
)

// LexerError records one lexical failure. Lexer errors are fatal (spec.md
// §7): the first one encountered still lets the lexer finish producing a
// best-effort token vector (useful for tooling), but a driver must treat a
// non-empty Errors() as a hard stop before handing tokens to the syntax
// analyzer.
type LexerError struct {
	Message string
	Pos     token.Position
}

func (e LexerError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// Option configures a Lexer at construction time, mirroring the functional
// options pattern the teacher repo uses for its own Lexer.
type Option func(*Lexer)

// WithFile attaches a file name to the lexer, used only for diagnostics.
func WithFile(name string) Option {
	return func(l *Lexer) { l.file = name }
}

// Lexer performs a one-byte (occasionally two-byte) look-ahead scan over
// ASCII source text. Only the ASCII subset is lexically significant
// (spec.md §6.2); a non-ASCII byte outside a string literal is a lexer
// error.
type Lexer struct {
	src  string
	file string

	pos     int // index of ch
	readPos int // index of next byte
	ch      byte

	line   int
	column int

	tokens []token.Token
	errors []LexerError

	// prevKind tracks the kind of the most recently emitted significant
	// token, used to decide whether a leading '-' before a digit is a
	// signed-literal prefix or the binary minus operator (Open Question 1).
	prevKind    token.Kind
	havePrev    bool
}

// New constructs a Lexer over src and applies opts.
func New(src string, opts ...Option) *Lexer {
	l := &Lexer{src: src, line: 1, column: 0}
	for _, opt := range opts {
		opt(l)
	}
	l.readChar()
	return l
}

// Errors returns all lexical errors accumulated during tokenization.
func (l *Lexer) Errors() []LexerError { return l.errors }

func (l *Lexer) addError(msg string, pos token.Position) {
	l.errors = append(l.errors, LexerError{Message: msg, Pos: pos})
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.src) {
		l.ch = 0
		l.pos = l.readPos
		l.column++
		return
	}
	l.ch = l.src[l.readPos]
	l.pos = l.readPos
	l.readPos++
	l.column++
	if l.ch >= 0x80 {
		l.addError("unexpected non-ASCII byte in source", l.currentPos())
	}
}

func (l *Lexer) peek() byte {
	if l.readPos >= len(l.src) {
		return 0
	}
	return l.src[l.readPos]
}

func (l *Lexer) peekAt(n int) byte {
	idx := l.readPos + n - 1
	if idx >= len(l.src) {
		return 0
	}
	return l.src[idx]
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{Line: l.line, Column: l.column, Offset: l.pos}
}

// Tokenize runs the lexer to completion and returns the full token vector,
// always terminated by a single EOF token (spec.md §4.1 "Final token").
func (l *Lexer) Tokenize() []token.Token {
	for {
		tok := l.next()
		l.tokens = append(l.tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return l.tokens
}

func (l *Lexer) emit(tok token.Token) token.Token {
	l.prevKind = tok.Kind
	l.havePrev = true
	return tok
}

// next scans and returns exactly one token, skipping whitespace and
// comments first.
func (l *Lexer) next() token.Token {
	l.skipWhitespaceAndComments()

	pos := l.currentPos()

	if l.ch == 0 {
		return token.New(token.EOF, "", token.Position{Line: l.line, Column: -1, Offset: -1})
	}

	switch {
	case l.ch == '"' || l.ch == '\'':
		return l.emit(l.readString(pos))
	case isDigit(l.ch):
		return l.emit(l.readNumber(pos))
	case l.ch == '-' && isDigit(l.peek()) && l.signAdmitsValue():
		return l.emit(l.readNumber(pos))
	case isIdentStart(l.ch):
		return l.emit(l.readIdentifier(pos))
	case l.ch == '*' && l.startsPointerRun():
		return l.emit(l.readPointer(pos))
	case l.ch == '&':
		return l.emit(l.readAmpersand(pos))
	default:
		return l.emit(l.readOperator(pos))
	}
}

// signAdmitsValue reports whether the previous semantic position admits a
// value, i.e. whether a leading '-' here should be read as part of a signed
// numeric literal rather than the binary minus operator (Open Question 1,
// grounded in original_source/src/lexer.c).
func (l *Lexer) signAdmitsValue() bool {
	if !l.havePrev {
		return true
	}
	switch l.prevKind {
	case token.IDENT, token.NUMBER, token.FLOAT, token.STRING, token.CHARARRAY,
		token.RParen, token.RBracket, token.KwTrue, token.KwFalse, token.KwNull, token.KwThis:
		return false
	default:
		return true
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == '\n':
			l.line++
			l.column = 0
			l.readChar()
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\v' || l.ch == '\r' || l.ch == '\f':
			l.readChar()
		case l.ch == '/' && l.peek() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		case l.ch == '/' && l.peek() == '*':
			l.skipBlockComment()
		default:
			return
		}
	}
}

func (l *Lexer) skipBlockComment() {
	startLine := l.line
	startPos := l.currentPos()
	l.readChar() // '/'
	l.readChar() // '*'
	for {
		if l.ch == 0 {
			l.addError("unterminated block comment", startPos)
			_ = startLine
			return
		}
		if l.ch == '*' && l.peek() == '/' {
			l.readChar()
			l.readChar()
			return
		}
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		l.readChar()
	}
}

func (l *Lexer) readString(pos token.Position) token.Token {
	quote := l.ch
	var sb strings.Builder
	sb.WriteByte(l.ch)
	l.readChar()
	for {
		if l.ch == 0 || l.ch == '\n' {
			l.addError("unterminated string literal", pos)
			return token.New(token.ILLEGAL, sb.String(), pos)
		}
		if l.ch == '\\' {
			sb.WriteByte(l.ch)
			l.readChar()
			if l.ch == 0 {
				l.addError("unterminated string literal", pos)
				return token.New(token.ILLEGAL, sb.String(), pos)
			}
			sb.WriteByte(l.ch)
			l.readChar()
			continue
		}
		if l.ch == quote {
			sb.WriteByte(l.ch)
			l.readChar()
			break
		}
		sb.WriteByte(l.ch)
		l.readChar()
	}
	if quote == '\'' {
		return token.New(token.CHARARRAY, sb.String(), pos)
	}
	return token.New(token.STRING, sb.String(), pos)
}

func (l *Lexer) readNumber(pos token.Position) token.Token {
	var sb strings.Builder
	if l.ch == '-' {
		sb.WriteByte(l.ch)
		l.readChar()
	}
	for isDigit(l.ch) {
		sb.WriteByte(l.ch)
		l.readChar()
	}
	isFloat := false
	if l.ch == '.' && isDigit(l.peek()) {
		isFloat = true
		sb.WriteByte(l.ch)
		l.readChar()
		for isDigit(l.ch) {
			sb.WriteByte(l.ch)
			l.readChar()
		}
	}
	if isFloat {
		return token.New(token.FLOAT, sb.String(), pos)
	}
	return token.New(token.NUMBER, sb.String(), pos)
}

func (l *Lexer) readIdentifier(pos token.Position) token.Token {
	var sb strings.Builder
	for isIdentStart(l.ch) || isDigit(l.ch) {
		sb.WriteByte(l.ch)
		l.readChar()
	}
	lexeme := sb.String()
	if kind, ok := token.IsKeyword(lexeme); ok {
		return token.New(kind, lexeme, pos)
	}
	return token.New(token.IDENT, lexeme, pos)
}

// startsPointerRun reports whether the '*' at the current position begins a
// pointer token: a run of '*' immediately (no whitespace) followed by a
// non-whitespace, non-digit, non-operator byte (spec.md §3.2/§4.1 item 4).
// A bare '*' followed by whitespace is the multiply operator, never a
// pointer (original_source/src/lexer.c disambiguation, carried per
// SPEC_FULL.md).
func (l *Lexer) startsPointerRun() bool {
	n := 1
	for l.peekAt(n) == '*' {
		n++
	}
	after := l.peekAt(n)
	if after == 0 {
		return false
	}
	if isSpace(after) || isDigit(after) || isOperatorByte(after) {
		return false
	}
	return true
}

func (l *Lexer) readPointer(pos token.Position) token.Token {
	var sb strings.Builder
	for l.ch == '*' {
		sb.WriteByte(l.ch)
		l.readChar()
	}
	return token.New(token.Pointer, sb.String(), pos)
}

// readAmpersand handles '&', including the reference-to-pointer form
// "&(*...)" (spec.md §4.1 item 4). A missing closing ')' is a lexer error.
func (l *Lexer) readAmpersand(pos token.Position) token.Token {
	l.readChar() // consume '&'
	if l.ch != '(' || l.peek() != '*' {
		return token.New(token.Reference, "&", pos)
	}
	var sb strings.Builder
	sb.WriteString("&(")
	l.readChar() // '('
	for l.ch == '*' {
		sb.WriteByte(l.ch)
		l.readChar()
	}
	for isIdentStart(l.ch) || isDigit(l.ch) {
		sb.WriteByte(l.ch)
		l.readChar()
	}
	if l.ch != ')' {
		l.addError("unterminated pointer reference", pos)
		return token.New(token.ILLEGAL, sb.String(), pos)
	}
	sb.WriteByte(l.ch)
	l.readChar()
	return token.New(token.ReferenceToPointer, sb.String(), pos)
}

func (l *Lexer) readOperator(pos token.Position) token.Token {
	first := l.ch
	second := l.peek()
	if kind, ok := token.DoubleOperators[[2]byte{first, second}]; ok {
		text := string([]byte{first, second})
		l.readChar()
		l.readChar()
		return token.New(kind, text, pos)
	}

	kind, ok := singleOperators[first]
	l.readChar()
	if !ok {
		l.addError(fmt.Sprintf("unexpected symbol %q", first), pos)
		return token.New(token.ILLEGAL, string(first), pos)
	}
	return token.New(kind, string(first), pos)
}

var singleOperators = map[byte]token.Kind{
	'+': token.Plus, '-': token.Minus, '*': token.Star, '/': token.Slash,
	'%': token.Percent, '.': token.Dot, ',': token.Comma, ';': token.Semicolon,
	':': token.Colon, '?': token.Question, '(': token.LParen, ')': token.RParen,
	'{': token.LBrace, '}': token.RBrace, '[': token.LBracket, ']': token.RBracket,
	'=': token.Assign, '<': token.Less, '>': token.Greater, '!': token.Bang,
	'&': token.Amp, '$': token.Dollar,
}

func isOperatorByte(b byte) bool {
	_, ok := singleOperators[b]
	return ok
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\v' || b == '\r' || b == '\f' || b == '\n'
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
