package ast_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/lukaslampl/space-lang-go/internal/ast"
	"github.com/lukaslampl/space-lang-go/internal/lexer"
	"github.com/lukaslampl/space-lang-go/internal/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	l := lexer.New(src)
	tokens := l.Tokenize()
	if len(l.Errors()) > 0 {
		t.Fatalf("unexpected lexer errors: %v", l.Errors())
	}
	gen := parser.New(tokens)
	prog, err := gen.Generate()
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return prog
}

func TestPrint_SimpleVariable(t *testing.T) {
	prog := mustParse(t, `var x = 1 + 2 * 3;`)
	snaps.MatchSnapshot(t, ast.Print(prog))
}

func TestPrint_Ternary(t *testing.T) {
	prog := mustParse(t, `var y = a == 1 ? 2 : 3;`)
	snaps.MatchSnapshot(t, ast.Print(prog))
}

func TestPrint_Function(t *testing.T) {
	prog := mustParse(t, `function : int add(x: int, y: int) { return x + y; }`)
	snaps.MatchSnapshot(t, ast.Print(prog))
}

func TestPrint_ClassWithInheritance(t *testing.T) {
	prog := mustParse(t, `class Dog extends Animal => {
  this::constructor(name) {
    var name = name;
  }
}`)
	snaps.MatchSnapshot(t, ast.Print(prog))
}

func TestPrint_CheckIs(t *testing.T) {
	prog := mustParse(t, `check (x) {
  is 1: { return 1; }
  is 2: { return 2; }
}`)
	snaps.MatchSnapshot(t, ast.Print(prog))
}

func TestPrint_ArrayDeclaration(t *testing.T) {
	prog := mustParse(t, `var a[3] = {1, 2, 3};`)
	snaps.MatchSnapshot(t, ast.Print(prog))
}

func TestPrint_MemberAndClassAccessChain(t *testing.T) {
	prog := mustParse(t, `a.b[c].d->e();`)
	snaps.MatchSnapshot(t, ast.Print(prog))
}

func TestPrint_TryCatch(t *testing.T) {
	prog := mustParse(t, `try {
  risky();
} catch (Exception e) {
  handle(e);
}`)
	snaps.MatchSnapshot(t, ast.Print(prog))
}
