package semantic

import (
	"fmt"

	"github.com/lukaslampl/space-lang-go/internal/ast"
	"github.com/lukaslampl/space-lang-go/internal/diag"
	"github.com/lukaslampl/space-lang-go/pkg/token"
)

// Analyzer walks an *ast.Program and builds its symbol-table tree
// (spec.md §4.4 "Contract").
type Analyzer struct {
	root        *Table
	diagnostics []diag.Diagnostic
}

// New constructs an Analyzer with an empty root ("main") scope.
func New() *Analyzer {
	return &Analyzer{root: NewTable(ScopeMain, "main", token.Position{Line: 1, Column: 1}, nil)}
}

// Root returns the top-level symbol table built by Analyze.
func (a *Analyzer) Root() *Table { return a.root }

// Diagnostics returns every semantic diagnostic collected by Analyze.
func (a *Analyzer) Diagnostics() []diag.Diagnostic { return a.diagnostics }

// Analyze walks prog's top-level statements, populating the root table and
// descending into nested scopes. It returns the number of errors found.
func (a *Analyzer) Analyze(prog *ast.Program) int {
	before := len(a.diagnostics)
	for _, stmt := range prog.Statements {
		a.statement(stmt, a.root)
	}
	return len(a.diagnostics) - before
}

func (a *Analyzer) redeclared(name string, pos token.Position) {
	a.diagnostics = append(a.diagnostics, diag.Diagnostic{
		Class:   diag.ClassSemantic,
		Message: fmt.Sprintf("%q is already defined in this scope", name),
		Pos:     pos,
	})
}

func (a *Analyzer) insertOrReport(scope *Table, entry *Entry) {
	if scope.Resolves(entry.Name) {
		a.redeclared(entry.Name, entry.Pos)
		return
	}
	scope.Insert(entry)
}

// statement dispatches on concrete AST node type, inserting symbol entries
// and/or recursing into nested scopes as appropriate (spec.md §4.4
// "Procedure" plus "Nested scopes are created on demand").
func (a *Analyzer) statement(stmt ast.Statement, scope *Table) {
	switch n := stmt.(type) {
	case *ast.VarStatement:
		a.insertOrReport(scope, varEntry(n.Name, n.Visibility.String(), n.Const, n.Type, VarNormal, scope.Kind, n.Value, n.Position))
	case *ast.ArrayVarStatement:
		entry := varEntry(n.Name, n.Visibility.String(), n.Const, n.Type, VarArray, scope.Kind, n.Init, n.Position)
		entry.Dimension = len(n.Dims)
		a.insertOrReport(scope, entry)
	case *ast.CondVarStatement:
		a.insertOrReport(scope, varEntry(n.Name, n.Visibility.String(), false, n.Type, VarConditional, scope.Kind, n.Value, n.Position))
	case *ast.ClassInstanceStatement:
		a.insertOrReport(scope, varEntry(n.Name, n.Visibility.String(), n.Const, n.Type, VarClassInstance, scope.Kind, n.Value, n.Position))

	case *ast.FunctionDeclaration:
		a.insertOrReport(scope, &Entry{
			Name: n.Name, Visibility: n.Visibility.String(), Kind: VarNormal,
			ScopeKind: scope.Kind, Pos: n.Position,
		})
		fnScope := NewTable(ScopeFunction, n.Name, n.Position, scope)
		for _, p := range n.Params {
			fnScope.InsertParam(paramEntry(p))
		}
		a.block(n.Body, fnScope)

	case *ast.ConstructorDeclaration:
		ctorScope := NewTable(ScopeConstructor, "constructor", n.Position, scope)
		for _, p := range n.Params {
			ctorScope.InsertParam(paramEntry(p))
		}
		a.block(n.Body, ctorScope)

	case *ast.ClassDeclaration:
		a.insertOrReport(scope, &Entry{
			Name: n.Name, Visibility: n.Visibility.String(), Kind: VarNormal,
			ScopeKind: scope.Kind, Pos: n.Position,
		})
		classScope := NewTable(ScopeClass, n.Name, n.Position, scope)
		a.block(n.Body, classScope)

	case *ast.EnumDeclaration:
		a.insertOrReport(scope, &Entry{Name: n.Name, Kind: VarNormal, ScopeKind: scope.Kind, Pos: n.Position})
		enumScope := NewTable(ScopeEnum, n.Name, n.Position, scope)
		for _, m := range n.Members {
			// Each enumerator opens its own scope per original_source's
			// ENUMERATOR scope kind, even though it carries no bindings of
			// its own beyond the entry recorded on the enum's scope.
			NewTable(ScopeEnumerator, m.Name, m.Position, enumScope)
			value := ""
			if m.Value != nil {
				value = m.Value.Text
			}
			a.insertOrReport(enumScope, &Entry{
				Name: m.Name, Value: value, Kind: VarNormal,
				ScopeKind: ScopeEnumerator, Pos: m.Position,
			})
		}

	case *ast.IfStatement:
		a.block(n.Body, NewTable(ScopeIf, "if", n.Position, scope))
		for _, ei := range n.ElseIfs {
			a.block(ei.Body, NewTable(ScopeIf, "else if", ei.Position, scope))
		}
		if n.Else != nil {
			a.block(n.Else, NewTable(ScopeIf, "else", n.Position, scope))
		}

	case *ast.WhileStatement:
		a.block(n.Body, NewTable(ScopeWhile, "while", n.Position, scope))

	case *ast.DoStatement:
		a.block(n.Body, NewTable(ScopeDo, "do", n.Position, scope))

	case *ast.ForStatement:
		forScope := NewTable(ScopeFor, "for", n.Position, scope)
		if n.Init != nil {
			a.insertOrReport(forScope, varEntry(n.Init.Name, n.Init.Visibility.String(), n.Init.Const, n.Init.Type, VarNormal, ScopeFor, n.Init.Value, n.Init.Position))
		}
		a.block(n.Body, forScope)

	case *ast.TryStatement:
		a.block(n.Body, NewTable(ScopeMain, "try", n.Position, scope))
		if n.Catch != nil {
			catchScope := NewTable(ScopeMain, "catch", n.Catch.Position, scope)
			typeName, custom := "", false
			if n.Catch.Type != nil {
				typeName, custom = n.Catch.Type.Name, n.Catch.Type.Custom
			}
			a.insertOrReport(catchScope, &Entry{
				Name: n.Catch.Name.Name, Type: typeName, Custom: custom,
				Kind: VarNormal, ScopeKind: ScopeMain, Pos: n.Catch.Position,
			})
			a.block(n.Catch.Body, catchScope)
		}

	case *ast.CheckStatement:
		checkScope := NewTable(ScopeCheck, "check", n.Position, scope)
		for _, isClause := range n.Cases {
			a.block(isClause.Body, NewTable(ScopeIs, "is", isClause.Position, checkScope))
		}

	case *ast.BlockStatement:
		a.block(n, NewTable(scope.Kind, scope.Name, n.Position, scope))

	case *ast.ExpressionStatement:
		a.checkCallScope(n.Expr, scope)

	default:
		// Leaf statements (Return/Break/Continue/Include/Export) never
		// introduce bindings or nested scopes.
	}
}

// checkCallScope opens a transient function_call scope for a bare call
// statement, matching the original ScopeType vocabulary's distinction
// between a declared function and a call site (spec.md §4.4 scope kinds).
func (a *Analyzer) checkCallScope(expr ast.Expression, scope *Table) {
	if call, ok := expr.(*ast.FunctionCallExpression); ok {
		NewTable(ScopeFunctionCall, call.Name, call.Position, scope)
	}
}

func (a *Analyzer) block(b *ast.BlockStatement, scope *Table) {
	if b == nil {
		return
	}
	for _, stmt := range b.Statements {
		a.statement(stmt, scope)
	}
}

func paramEntry(p *ast.Param) *Entry {
	typeName, custom := "", false
	if p.Type != nil {
		typeName, custom = p.Type.Name, p.Type.Custom
	}
	kind := VarNormal
	if len(p.Dims) > 0 {
		kind = VarArray
	}
	return &Entry{
		Name: p.Name, Type: typeName, Custom: custom, Kind: kind,
		Dimension: len(p.Dims), ScopeKind: ScopeVariable, Pos: p.Position,
	}
}

// varEntry derives a symbol entry from a declarator's name, visibility,
// const flag, type annotation, and rvalue (spec.md §4.4 "Procedure", steps
// 1-4: name from the declaration, value from the right-hand side's lexeme
// when resolvable, type from the annotation or `custom` if absent).
func varEntry(name, visibility string, isConst bool, typ *ast.TypeAnnotation, kind VarKind, scopeKind ScopeKind, rhs ast.Expression, pos token.Position) *Entry {
	entry := &Entry{
		Name: name, Visibility: visibility, Const: isConst,
		Kind: kind, ScopeKind: scopeKind, Pos: pos, Custom: true,
	}
	if typ != nil {
		entry.Type = typ.Name
		entry.Custom = typ.Custom
	}
	entry.Value = literalText(rhs)
	return entry
}

// literalText derives the symbol's value slot from the RHS's own lexeme
// (spec.md §4.4 step 2; original_source's SA_add_variable_to_table takes
// varNode->rightNode->value unconditionally). The parse-tree generator
// builds a tree rather than the original's single-node-per-construct
// shape, so for a non-leaf RHS this descends to the node that carries the
// construct's own operand token — its leftmost child — rather than
// returning empty, matching the original's "root's lexeme" behavior for
// compound expressions such as `1 + 2 * 3`.
func literalText(expr ast.Expression) string {
	switch v := expr.(type) {
	case *ast.NumberLiteral:
		return v.Text
	case *ast.FloatLiteral:
		return v.Text
	case *ast.StringLiteral:
		return v.Text
	case *ast.CharArrayLiteral:
		return v.Text
	case *ast.BoolLiteral:
		if v.Value {
			return "true"
		}
		return "false"
	case *ast.NullLiteral:
		return "null"
	case *ast.Identifier:
		return v.Name
	case *ast.BinaryExpression:
		return literalText(v.Left)
	case *ast.ConditionExpression:
		return literalText(v.Left)
	case *ast.LogicalExpression:
		return literalText(v.Left)
	case *ast.TernaryExpression:
		return literalText(v.Cond)
	case *ast.AssignmentExpression:
		return literalText(v.Target)
	case *ast.IncDecExpression:
		return literalText(v.Operand)
	case *ast.PointerExpression:
		return literalText(v.Operand)
	case *ast.ReferenceExpression:
		return literalText(v.Operand)
	case *ast.ReferenceToPointerExpression:
		return literalText(v.Operand)
	case *ast.MemberAccessExpression:
		return literalText(v.Left)
	case *ast.ClassAccessExpression:
		return literalText(v.Left)
	case *ast.ArrayAccessExpression:
		return literalText(v.Target)
	case *ast.FunctionCallExpression:
		return v.Name
	case *ast.NewClassInstanceExpression:
		return v.ClassName
	case *ast.ArrayLiteral:
		if len(v.Elements) > 0 {
			return literalText(v.Elements[0])
		}
		return ""
	default:
		return ""
	}
}
