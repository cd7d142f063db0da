package semantic_test

import (
	"testing"

	"github.com/lukaslampl/space-lang-go/internal/lexer"
	"github.com/lukaslampl/space-lang-go/internal/parser"
	"github.com/lukaslampl/space-lang-go/internal/semantic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, src string) (*semantic.Analyzer, int) {
	t.Helper()
	l := lexer.New(src)
	tokens := l.Tokenize()
	require.Empty(t, l.Errors())
	gen := parser.New(tokens)
	prog, err := gen.Generate()
	require.NoError(t, err)
	a := semantic.New()
	return a, a.Analyze(prog)
}

func TestAnalyze_SimpleVariableEntersSymbolTable(t *testing.T) {
	a, errCount := analyze(t, `var x = 1 + 2 * 3;`)
	assert.Zero(t, errCount)

	entry, ok := a.Root().Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "global", entry.Visibility)
	assert.Equal(t, "1", entry.Value)
	assert.True(t, entry.Custom)
}

func TestAnalyze_RedeclarationInSameScope(t *testing.T) {
	_, errCount := analyze(t, `var x = 1; var x = 2;`)
	assert.Equal(t, 1, errCount)
}

func TestAnalyze_ShadowingAcrossScopesIsForbidden(t *testing.T) {
	_, errCount := analyze(t, `var x = 1;
function foo() {
  var x = 2;
}`)
	assert.Equal(t, 1, errCount)
}

func TestAnalyze_FunctionParamsScopedToBody(t *testing.T) {
	a, errCount := analyze(t, `function : int add(x: int, y: int) { return x + y; }`)
	assert.Zero(t, errCount)

	fnEntry, ok := a.Root().Lookup("add")
	require.True(t, ok)
	assert.Equal(t, semantic.ScopeMain, fnEntry.ScopeKind)

	_, ok = a.Root().Symbols()["x"]
	assert.False(t, ok, "parameter x must not leak into the enclosing scope")

	fnScope := a.Root().Children[0]
	_, ok = fnScope.Symbols()["x"]
	assert.False(t, ok, "parameters live in Params, not the ordinary symbol map")
	_, ok = fnScope.Params["x"]
	assert.True(t, ok, "parameter x should be recorded in the function scope's param table")
}

func TestAnalyze_ClassBodyOwnScope(t *testing.T) {
	a, errCount := analyze(t, `class Dog extends Animal => {
  this::constructor(name) {
    var n = name;
  }
}`)
	assert.Zero(t, errCount)

	_, ok := a.Root().Lookup("Dog")
	assert.True(t, ok)
}

func TestAnalyze_EnumMembersScopedUnderEnum(t *testing.T) {
	a, errCount := analyze(t, `enum Color { Red: 1, Green: 2 }`)
	assert.Zero(t, errCount)

	_, ok := a.Root().Symbols()["Red"]
	assert.False(t, ok, "enum members live in the enum's own scope, not the enclosing one")
}

func TestAnalyze_ArrayDeclarationWithInitializer(t *testing.T) {
	_, errCount := analyze(t, `var x[3] = {1, 2, 3};`)
	assert.Zero(t, errCount)
}

func TestAnalyze_EmptyProgramYieldsEmptyRootTable(t *testing.T) {
	a, errCount := analyze(t, ``)
	assert.Zero(t, errCount)
	assert.Empty(t, a.Root().Symbols())
}
