package ast

import "github.com/lukaslampl/space-lang-go/pkg/token"

// Param is one formal parameter: `pointer | reference | IDENT (dims)? (: type)?`.
type Param struct {
	Position  token.Position
	Name      string
	Dims      []Expression // non-nil when the parameter is array-shaped
	Type      *TypeAnnotation
	Pointer   bool
	Reference bool
}

func (p *Param) Pos() token.Position { return p.Position }

// FunctionDeclaration is `[visibility]? function (:ret)? name(params) block`.
type FunctionDeclaration struct {
	Position   token.Position
	Name       string
	Visibility Visibility
	RetType    *TypeAnnotation
	Params     []*Param
	Body       *BlockStatement
}

func (f *FunctionDeclaration) Pos() token.Position { return f.Position }
func (f *FunctionDeclaration) stmtNode()           {}

// ConstructorDeclaration is `this::constructor(params) block`.
type ConstructorDeclaration struct {
	Position token.Position
	Params   []*Param
	Body     *BlockStatement
}

func (c *ConstructorDeclaration) Pos() token.Position { return c.Position }
func (c *ConstructorDeclaration) stmtNode()           {}

// ClassDeclaration is `[visibility]? class name (extends base)? (with I,...)? => block`.
type ClassDeclaration struct {
	Position   token.Position
	Name       string
	Visibility Visibility
	Extends    *Identifier
	Implements []*Identifier
	Body       *BlockStatement
}

func (c *ClassDeclaration) Pos() token.Position { return c.Position }
func (c *ClassDeclaration) stmtNode()           {}

// EnumMember is one `IDENT (: integer)?` entry of an enum body.
type EnumMember struct {
	Position token.Position
	Name     string
	Value    *NumberLiteral // nil when the member has no explicit value
}

func (e *EnumMember) Pos() token.Position { return e.Position }

// EnumDeclaration is `enum IDENT { entry, entry, ... }`.
type EnumDeclaration struct {
	Position token.Position
	Name     string
	Members  []*EnumMember
}

func (e *EnumDeclaration) Pos() token.Position { return e.Position }
func (e *EnumDeclaration) stmtNode()           {}
