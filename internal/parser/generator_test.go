package parser_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/lukaslampl/space-lang-go/internal/ast"
	"github.com/lukaslampl/space-lang-go/internal/lexer"
	"github.com/lukaslampl/space-lang-go/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, src string) *ast.Program {
	t.Helper()
	l := lexer.New(src)
	tokens := l.Tokenize()
	require.Empty(t, l.Errors())
	gen := parser.New(tokens)
	prog, err := gen.Generate()
	require.NoError(t, err)
	return prog
}

func TestGenerate_ArithmeticPrecedence(t *testing.T) {
	prog := generate(t, `var x = 1 + 2 * 3;`)
	require.Len(t, prog.Statements, 1)
	snaps.MatchSnapshot(t, ast.Print(prog))
}

func TestGenerate_AssignmentIsRightAssociative(t *testing.T) {
	prog := generate(t, `a = b = 1;`)
	stmt, ok := prog.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	outer, ok := stmt.Expr.(*ast.AssignmentExpression)
	require.True(t, ok)
	_, ok = outer.Value.(*ast.AssignmentExpression)
	assert.True(t, ok, "assignment should nest on the value side, not the target")
}

func TestGenerate_FunctionDeclaration(t *testing.T) {
	prog := generate(t, `function : int add(x: int, y: int) { return x + y; }`)
	snaps.MatchSnapshot(t, ast.Print(prog))
}

func TestGenerate_ClassWithConstructor(t *testing.T) {
	prog := generate(t, `class Dog extends Animal => {
  this::constructor(name) {
    var n = name;
  }
}`)
	snaps.MatchSnapshot(t, ast.Print(prog))
}

func TestGenerate_WhileLoop(t *testing.T) {
	prog := generate(t, `while (x < 10) { x++; }`)
	stmt, ok := prog.Statements[0].(*ast.WhileStatement)
	require.True(t, ok)
	assert.IsType(t, &ast.ConditionExpression{}, stmt.Cond)
}

func TestGenerate_PointerAndReference(t *testing.T) {
	prog := generate(t, `var p = *x; var r = &y;`)
	varP := prog.Statements[0].(*ast.VarStatement)
	assert.IsType(t, &ast.PointerExpression{}, varP.Value)
	varR := prog.Statements[1].(*ast.VarStatement)
	assert.IsType(t, &ast.ReferenceExpression{}, varR.Value)
}

func TestGenerate_EnumDeclaration(t *testing.T) {
	prog := generate(t, `enum Color { Red: 1, Green: 2, Blue: 3 }`)
	decl, ok := prog.Statements[0].(*ast.EnumDeclaration)
	require.True(t, ok)
	require.Len(t, decl.Members, 3)
	assert.Equal(t, "Red", decl.Members[0].Name)
	assert.Equal(t, "1", decl.Members[0].Value.Text)
}
