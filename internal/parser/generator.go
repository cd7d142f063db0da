// Package parser implements the parse-tree generator from spec.md §4.3: a
// second recursive-descent pass over a token vector already accepted by
// internal/syntax, building an AST with operator precedence, associativity,
// and member/access chains resolved. It does not re-validate syntax;
// behavior on invalid input is unspecified (spec.md §4.3 "Contract").
package parser

import (
	"fmt"

	"github.com/lukaslampl/space-lang-go/internal/ast"
	"github.com/lukaslampl/space-lang-go/internal/cursor"
	"github.com/lukaslampl/space-lang-go/pkg/token"
)

// Generator builds an AST from a token vector. It owns an independent
// Cursor from any syntax.Analyzer that may have validated the same tokens
// (spec.md §5 "Shared resources": the token vector is read-only and shared).
type Generator struct {
	cur *cursor.Cursor
}

// New constructs a Generator over tokens.
func New(tokens []token.Token) *Generator {
	return &Generator{cur: cursor.New(tokens)}
}

// Generate builds the Program root by repeatedly parsing top-level
// statements until EOF.
func (g *Generator) Generate() (*ast.Program, error) {
	prog := &ast.Program{}
	for !g.cur.AtEnd() {
		stmt, err := g.statement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

func (g *Generator) unexpected(what string) error {
	tok := g.cur.Peek()
	return fmt.Errorf("parse-tree generator: unexpected %s %q at %s, expected %s", tok.Kind, tok.Text, tok.Pos, what)
}

func (g *Generator) expect(k token.Kind, what string) (token.Token, error) {
	if !g.cur.Check(k) {
		return token.Token{}, g.unexpected(what)
	}
	return g.cur.Advance(), nil
}

func visibilityOf(k token.Kind) ast.Visibility {
	switch k {
	case token.KwSecure:
		return ast.Secure
	case token.KwPrivate:
		return ast.Private
	default:
		return ast.Global
	}
}

func (g *Generator) varType() (*ast.TypeAnnotation, error) {
	tok := g.cur.Peek()
	switch tok.Kind {
	case token.KwInt, token.KwDouble, token.KwFloat, token.KwChar,
		token.KwString, token.KwBoolean, token.KwShort, token.KwLong:
		g.cur.Advance()
		return &ast.TypeAnnotation{Position: tok.Pos, Name: tok.Text, Custom: false}, nil
	case token.IDENT:
		g.cur.Advance()
		return &ast.TypeAnnotation{Position: tok.Pos, Name: tok.Text, Custom: true}, nil
	default:
		return nil, g.unexpected("type name")
	}
}
