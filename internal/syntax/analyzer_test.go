package syntax_test

import (
	"testing"

	"github.com/lukaslampl/space-lang-go/internal/lexer"
	"github.com/lukaslampl/space-lang-go/internal/syntax"
	"github.com/stretchr/testify/assert"
)

func analyze(t *testing.T, src string) (*syntax.Analyzer, int) {
	t.Helper()
	l := lexer.New(src)
	tokens := l.Tokenize()
	if len(l.Errors()) > 0 {
		t.Fatalf("unexpected lexer errors: %v", l.Errors())
	}
	a := syntax.New(tokens)
	return a, a.Analyze()
}

func TestAnalyze_SimpleVariable(t *testing.T) {
	_, errCount := analyze(t, `var x = 1 + 2 * 3;`)
	assert.Zero(t, errCount)
}

func TestAnalyze_Ternary(t *testing.T) {
	_, errCount := analyze(t, `var y = a == 1 ? 2 : 3;`)
	assert.Zero(t, errCount)
}

func TestAnalyze_Function(t *testing.T) {
	_, errCount := analyze(t, `function : int add(x: int, y: int) { return x + y; }`)
	assert.Zero(t, errCount)
}

func TestAnalyze_ClassWithInheritance(t *testing.T) {
	_, errCount := analyze(t, `class Dog extends Animal with Speaks => {
  this::constructor(name) {
    var n = name;
  }
}`)
	assert.Zero(t, errCount)
}

func TestAnalyze_CheckIs(t *testing.T) {
	_, errCount := analyze(t, `check (x) {
  is 1: { return 1; }
  is 2: { return 2; }
}`)
	assert.Zero(t, errCount)
}

func TestAnalyze_ForLoop(t *testing.T) {
	_, errCount := analyze(t, `for (var i = 0; i < 10; i++) { x(); }`)
	assert.Zero(t, errCount)
}

func TestAnalyze_TryCatch(t *testing.T) {
	_, errCount := analyze(t, `try {
  risky();
} catch (Exception e) {
  handle(e);
}`)
	assert.Zero(t, errCount)
}

func TestAnalyze_EmptySource(t *testing.T) {
	a, errCount := analyze(t, ``)
	assert.Zero(t, errCount)
	assert.Empty(t, a.Diagnostics())
}

func TestAnalyze_SyntaxErrorRecovery(t *testing.T) {
	a, errCount := analyze(t, `var x = ; var y = 2;`)
	assert.Equal(t, 1, errCount)
	if assert.Len(t, a.Diagnostics(), 1) {
		assert.Equal(t, "expression", a.Diagnostics()[0].Expected)
	}
}

func TestAnalyze_UnmatchedBrace(t *testing.T) {
	_, errCount := analyze(t, `function foo() { return 1;`)
	assert.Greater(t, errCount, 0)
}

func TestAnalyze_MissingSemicolon(t *testing.T) {
	_, errCount := analyze(t, `var x = 1`)
	assert.Greater(t, errCount, 0)
}

func TestAnalyze_DeeplyNestedParens(t *testing.T) {
	src := "var x = " + nestedParens(100) + "1" + closeParens(100) + ";"
	_, errCount := analyze(t, src)
	assert.Zero(t, errCount)
}

func nestedParens(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += "("
	}
	return s
}

func closeParens(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += ")"
	}
	return s
}
