package ast

import "github.com/lukaslampl/space-lang-go/pkg/token"

// ExpressionStatement wraps a bare expression used as a statement (a
// function-call statement, a class-access statement, or an assignment).
type ExpressionStatement struct {
	Position token.Position
	Expr     Expression
}

func (e *ExpressionStatement) Pos() token.Position { return e.Position }
func (e *ExpressionStatement) stmtNode()           {}

// VarStatement is a plain (non-array, non-conditional, non-class-instance)
// variable or constant declaration.
type VarStatement struct {
	Position   token.Position
	Name       string
	Visibility Visibility
	Const      bool
	Type       *TypeAnnotation
	Value      Expression // nil when declared without an initializer
}

func (v *VarStatement) Pos() token.Position { return v.Position }
func (v *VarStatement) stmtNode()           {}

// ArrayVarStatement is an array-kind variable declaration: `var a[3] = { ... };`.
type ArrayVarStatement struct {
	Position   token.Position
	Name       string
	Visibility Visibility
	Const      bool
	Type       *TypeAnnotation
	Dims       []Expression // one entry per "[ ]" dimension; nil entry = unsized
	Init       Expression   // *ArrayLiteral, *NullLiteral, or *StringLiteral
}

func (a *ArrayVarStatement) Pos() token.Position { return a.Position }
func (a *ArrayVarStatement) stmtNode()           {}

// CondVarStatement is a conditional-kind variable declaration whose rvalue
// is a ternary expression: `var y = a == 1 ? 2 : 3;`.
type CondVarStatement struct {
	Position   token.Position
	Name       string
	Visibility Visibility
	Type       *TypeAnnotation
	Value      *TernaryExpression
}

func (c *CondVarStatement) Pos() token.Position { return c.Position }
func (c *CondVarStatement) stmtNode()           {}

// ClassInstanceStatement is `var|const IDENT = new Class(args);`.
type ClassInstanceStatement struct {
	Position   token.Position
	Name       string
	Visibility Visibility
	Const      bool
	Type       *TypeAnnotation
	Value      *NewClassInstanceExpression
}

func (c *ClassInstanceStatement) Pos() token.Position { return c.Position }
func (c *ClassInstanceStatement) stmtNode()           {}

// ReturnStatement is `return [expr];`.
type ReturnStatement struct {
	Position token.Position
	Value    Expression // nil for a bare `return;`
}

func (r *ReturnStatement) Pos() token.Position { return r.Position }
func (r *ReturnStatement) stmtNode()           {}

// BreakStatement is the leaf `break;` statement.
type BreakStatement struct {
	Position token.Position
}

func (b *BreakStatement) Pos() token.Position { return b.Position }
func (b *BreakStatement) stmtNode()           {}

// ContinueStatement is the leaf `continue;` statement.
type ContinueStatement struct {
	Position token.Position
}

func (c *ContinueStatement) Pos() token.Position { return c.Position }
func (c *ContinueStatement) stmtNode()           {}

// IncludeStatement is `include "path";`.
type IncludeStatement struct {
	Position token.Position
	Path     string
}

func (i *IncludeStatement) Pos() token.Position { return i.Position }
func (i *IncludeStatement) stmtNode()           {}

// ExportStatement is `export "path";`.
type ExportStatement struct {
	Position token.Position
	Path     string
}

func (e *ExportStatement) Pos() token.Position { return e.Position }
func (e *ExportStatement) stmtNode()           {}
