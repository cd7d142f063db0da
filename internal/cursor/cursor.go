// Package cursor provides the shared token-walking primitive both
// recursive-descent passes (internal/syntax and internal/parser) embed.
// Sharing it keeps "advance by exactly the consumed count" (spec.md §5
// "Ordering guarantees") in one place without merging the two phases: each
// phase still owns an independent Cursor over its own read of the token
// vector, so neither can leak state into the other (spec.md §9 "Recursive
// descent without a value stack").
package cursor

import "github.com/lukaslampl/space-lang-go/pkg/token"

// Cursor walks a fixed token vector forward; Restore rewinds it to a
// position saved earlier, for speculative trials.
type Cursor struct {
	Tokens []token.Token
	Pos    int
}

// New wraps tokens; tokens must end with an EOF token (lexer.Tokenize's
// contract).
func New(tokens []token.Token) *Cursor {
	return &Cursor{Tokens: tokens}
}

// Peek returns the current token without consuming it.
func (c *Cursor) Peek() token.Token {
	return c.PeekAt(0)
}

// PeekAt returns the token n positions ahead of the cursor without
// consuming anything. Requests past the end saturate at the trailing EOF
// token.
func (c *Cursor) PeekAt(n int) token.Token {
	idx := c.Pos + n
	if idx >= len(c.Tokens) {
		return c.Tokens[len(c.Tokens)-1]
	}
	return c.Tokens[idx]
}

// Advance consumes and returns the current token.
func (c *Cursor) Advance() token.Token {
	tok := c.Peek()
	if c.Pos < len(c.Tokens)-1 {
		c.Pos++
	}
	return tok
}

// Check reports whether the current token has kind k, without consuming.
func (c *Cursor) Check(k token.Kind) bool {
	return c.Peek().Kind == k
}

// Match consumes and returns true if the current token has kind k.
func (c *Cursor) Match(k token.Kind) bool {
	if c.Check(k) {
		c.Advance()
		return true
	}
	return false
}

// AtEnd reports whether the cursor has reached the EOF token.
func (c *Cursor) AtEnd() bool {
	return c.Peek().Kind == token.EOF
}

// Save returns the current position so a speculative trial can rewind.
func (c *Cursor) Save() int { return c.Pos }

// Restore rewinds the cursor to a position obtained from Save.
func (c *Cursor) Restore(pos int) { c.Pos = pos }
