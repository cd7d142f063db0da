package ast

import "github.com/lukaslampl/space-lang-go/pkg/token"

// ElseIfClause is one `else if (cond) { ... }` arm.
type ElseIfClause struct {
	Position token.Position
	Cond     Expression
	Body     *BlockStatement
}

func (e *ElseIfClause) Pos() token.Position { return e.Position }

// IfStatement covers `if`, its `else if` chain, and a trailing `else`.
type IfStatement struct {
	Position token.Position
	Cond     Expression
	Body     *BlockStatement
	ElseIfs  []*ElseIfClause
	Else     *BlockStatement // nil when absent
}

func (i *IfStatement) Pos() token.Position { return i.Position }
func (i *IfStatement) stmtNode()           {}

// WhileStatement is `while (cond) { ... }`.
type WhileStatement struct {
	Position token.Position
	Cond     Expression
	Body     *BlockStatement
}

func (w *WhileStatement) Pos() token.Position { return w.Position }
func (w *WhileStatement) stmtNode()           {}

// DoStatement is `do { ... } while (cond);`.
type DoStatement struct {
	Position token.Position
	Cond     Expression
	Body     *BlockStatement
}

func (d *DoStatement) Pos() token.Position { return d.Position }
func (d *DoStatement) stmtNode()           {}

// ForStatement is `for (init; cond; step) { ... }`.
type ForStatement struct {
	Position token.Position
	Init     *VarStatement
	Cond     Expression
	Step     Expression
	Body     *BlockStatement
}

func (f *ForStatement) Pos() token.Position { return f.Position }
func (f *ForStatement) stmtNode()           {}

// IsClause is one `is value: runnable` arm of a CheckStatement.
type IsClause struct {
	Position token.Position
	Value    Expression
	Body     *BlockStatement
}

func (i *IsClause) Pos() token.Position { return i.Position }

// CheckStatement is the pattern-dispatch construct `check (x) { is v: ... }`.
type CheckStatement struct {
	Position token.Position
	Subject  *Identifier
	Cases    []*IsClause
}

func (c *CheckStatement) Pos() token.Position { return c.Position }
func (c *CheckStatement) stmtNode()           {}

// CatchClause binds an exception name and type to a handler body. Both
// fields are first-class (Open Question 2 decision, SPEC_FULL.md).
type CatchClause struct {
	Position token.Position
	Name     *Identifier
	Type     *TypeAnnotation
	Body     *BlockStatement
}

func (c *CatchClause) Pos() token.Position { return c.Position }

// TryStatement is `try { ... } catch (T e) { ... }`.
type TryStatement struct {
	Position token.Position
	Body     *BlockStatement
	Catch    *CatchClause
}

func (t *TryStatement) Pos() token.Position { return t.Position }
func (t *TryStatement) stmtNode()           {}
