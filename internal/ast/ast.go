// Package ast defines the abstract syntax tree produced by the parse-tree
// generator (spec.md §3.3, §4.3).
//
// Unlike the original C implementation's single tagged Node struct with
// generic left/right/details slots, each grammar construct here is its own
// Go type implementing Expression or Statement. This is the sum-type
// redesign spec.md §9 calls for: it eliminates invalid states such as a
// Break node carrying a spurious left child, while the shapes in the §4.3
// table still map directly onto named struct fields (documented per type).
package ast

import (
	"github.com/lukaslampl/space-lang-go/pkg/token"
)

// Node is implemented by every AST node.
type Node interface {
	Pos() token.Position
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	exprNode()
}

// Statement is a node that performs an action.
type Statement interface {
	Node
	stmtNode()
}

// Visibility is one of the three modifiers spec.md §3.4 defines; the zero
// value Global matches "default absent modifier".
type Visibility int

const (
	Global Visibility = iota
	Secure
	Private
)

func (v Visibility) String() string {
	switch v {
	case Secure:
		return "secure"
	case Private:
		return "private"
	default:
		return "global"
	}
}

// TypeAnnotation names a declared type (spec.md §3.4): one of the eight
// primitives, or a custom (class/enum) type name.
type TypeAnnotation struct {
	Position token.Position
	Name     string
	Custom   bool
}

func (t *TypeAnnotation) Pos() token.Position { return t.Position }

// Program is the root of every parsed source file.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// BlockStatement is the "Runnable" construct from the Glossary: a sequence
// of statements, optionally brace-delimited.
type BlockStatement struct {
	Position   token.Position
	Statements []Statement
}

func (b *BlockStatement) Pos() token.Position { return b.Position }
func (b *BlockStatement) stmtNode()           {}
