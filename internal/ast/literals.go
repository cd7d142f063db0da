package ast

import "github.com/lukaslampl/space-lang-go/pkg/token"

// Identifier is a bare name reference.
type Identifier struct {
	Position token.Position
	Name     string
}

func (i *Identifier) Pos() token.Position { return i.Position }
func (i *Identifier) exprNode()           {}

// NumberLiteral preserves the exact lexeme of an integer literal, per
// spec.md §3.3's "canonical string value" requirement.
type NumberLiteral struct {
	Position token.Position
	Text     string
}

func (n *NumberLiteral) Pos() token.Position { return n.Position }
func (n *NumberLiteral) exprNode()           {}

// FloatLiteral preserves the exact lexeme of a float literal.
type FloatLiteral struct {
	Position token.Position
	Text     string
}

func (f *FloatLiteral) Pos() token.Position { return f.Position }
func (f *FloatLiteral) exprNode()           {}

// StringLiteral is a double-quoted string literal, lexeme included with
// quotes (byte-identical preservation, spec.md §3.2).
type StringLiteral struct {
	Position token.Position
	Text     string
}

func (s *StringLiteral) Pos() token.Position { return s.Position }
func (s *StringLiteral) exprNode()           {}

// CharArrayLiteral is a single-quoted character-array literal.
type CharArrayLiteral struct {
	Position token.Position
	Text     string
}

func (c *CharArrayLiteral) Pos() token.Position { return c.Position }
func (c *CharArrayLiteral) exprNode()           {}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	Position token.Position
	Value    bool
}

func (b *BoolLiteral) Pos() token.Position { return b.Position }
func (b *BoolLiteral) exprNode()           {}

// NullLiteral is the reserved `null` marker.
type NullLiteral struct {
	Position token.Position
}

func (n *NullLiteral) Pos() token.Position { return n.Position }
func (n *NullLiteral) exprNode()           {}
