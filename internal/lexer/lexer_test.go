package lexer

import (
	"testing"

	"github.com/lukaslampl/space-lang-go/pkg/token"
	"github.com/stretchr/testify/assert"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenize_SimpleDeclaration(t *testing.T) {
	l := New(`var x = 1 + 2 * 3;`)
	tokens := l.Tokenize()

	assert.Empty(t, l.Errors())
	assert.Equal(t, []token.Kind{
		token.KwVar, token.IDENT, token.Assign, token.NUMBER, token.Plus,
		token.NUMBER, token.Star, token.NUMBER, token.Semicolon, token.EOF,
	}, kinds(tokens))
}

func TestTokenize_StringVsCharArray(t *testing.T) {
	l := New(`"hi" 'c'`)
	tokens := l.Tokenize()

	assert.Empty(t, l.Errors())
	assert.Equal(t, token.STRING, tokens[0].Kind)
	assert.Equal(t, `"hi"`, tokens[0].Text)
	assert.Equal(t, token.CHARARRAY, tokens[1].Kind)
	assert.Equal(t, `'c'`, tokens[1].Text)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	l.Tokenize()

	if assert.Len(t, l.Errors(), 1) {
		assert.Contains(t, l.Errors()[0].Message, "unterminated string")
	}
}

func TestTokenize_SignedNumberInOperandPosition(t *testing.T) {
	l := New(`var x = -5;`)
	tokens := l.Tokenize()

	assert.Empty(t, l.Errors())
	assert.Equal(t, token.NUMBER, tokens[3].Kind)
	assert.Equal(t, "-5", tokens[3].Text)
}

func TestTokenize_MinusIsOperatorAfterOperand(t *testing.T) {
	l := New(`x - 5`)
	tokens := l.Tokenize()

	assert.Empty(t, l.Errors())
	assert.Equal(t, []token.Kind{token.IDENT, token.Minus, token.NUMBER, token.EOF}, kinds(tokens))
}

func TestTokenize_FloatLiteral(t *testing.T) {
	l := New(`3.14`)
	tokens := l.Tokenize()

	assert.Empty(t, l.Errors())
	assert.Equal(t, token.FLOAT, tokens[0].Kind)
	assert.Equal(t, "3.14", tokens[0].Text)
}

func TestTokenize_PointerVsMultiply(t *testing.T) {
	l := New(`*x a * b`)
	tokens := l.Tokenize()

	assert.Empty(t, l.Errors())
	assert.Equal(t, token.Pointer, tokens[0].Kind)
	assert.Equal(t, token.Star, tokens[3].Kind)
}

func TestTokenize_ReferenceToPointer(t *testing.T) {
	l := New(`&(*p)`)
	tokens := l.Tokenize()

	assert.Empty(t, l.Errors())
	assert.Equal(t, token.ReferenceToPointer, tokens[0].Kind)
	assert.Equal(t, "&(*p)", tokens[0].Text)
}

func TestTokenize_DoubleOperators(t *testing.T) {
	l := New(`a == b != c <= d >= e -> f => g`)
	tokens := l.Tokenize()

	assert.Empty(t, l.Errors())
	assert.Equal(t, token.EqEq, tokens[1].Kind)
	assert.Equal(t, token.NotEq, tokens[3].Kind)
	assert.Equal(t, token.LessEq, tokens[5].Kind)
	assert.Equal(t, token.GreaterEq, tokens[7].Kind)
	assert.Equal(t, token.ClassAccessor, tokens[9].Kind)
	assert.Equal(t, token.ClassCreator, tokens[11].Kind)
}

func TestTokenize_UnexpectedSymbol(t *testing.T) {
	l := New("`")
	l.Tokenize()

	if assert.Len(t, l.Errors(), 1) {
		assert.Contains(t, l.Errors()[0].Message, "unexpected symbol")
	}
}

func TestTokenize_EmptySourceYieldsOnlyEOF(t *testing.T) {
	l := New("")
	tokens := l.Tokenize()

	assert.Empty(t, l.Errors())
	assert.Len(t, tokens, 1)
	assert.Equal(t, token.EOF, tokens[0].Kind)
}

func TestTokenize_BlockCommentSkipped(t *testing.T) {
	l := New("/* comment */ x")
	tokens := l.Tokenize()

	assert.Empty(t, l.Errors())
	assert.Equal(t, []token.Kind{token.IDENT, token.EOF}, kinds(tokens))
}

func TestTokenize_UnterminatedBlockComment(t *testing.T) {
	l := New("/* never closes")
	l.Tokenize()

	if assert.Len(t, l.Errors(), 1) {
		assert.Contains(t, l.Errors()[0].Message, "unterminated block comment")
	}
}

func TestTokenize_KeywordsAreCaseSensitive(t *testing.T) {
	l := New(`If IF if`)
	tokens := l.Tokenize()

	assert.Empty(t, l.Errors())
	assert.Equal(t, token.IDENT, tokens[0].Kind)
	assert.Equal(t, token.IDENT, tokens[1].Kind)
	assert.Equal(t, token.KwIf, tokens[2].Kind)
}
