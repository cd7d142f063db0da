package parser

import (
	"github.com/lukaslampl/space-lang-go/internal/ast"
	"github.com/lukaslampl/space-lang-go/pkg/token"
)

func (g *Generator) statement() (ast.Statement, error) {
	tok := g.cur.Peek()
	switch tok.Kind {
	case token.KwVar, token.KwConst:
		return g.variableDecl(ast.Global)
	case token.KwGlobal, token.KwSecure, token.KwPrivate:
		return g.modifiedDecl()
	case token.KwIf:
		return g.ifStmt()
	case token.KwWhile:
		return g.whileStmt()
	case token.KwDo:
		return g.doStmt()
	case token.KwFor:
		return g.forStmt()
	case token.KwTry:
		return g.tryStmt()
	case token.KwCheck:
		return g.checkStmt()
	case token.KwInclude:
		return g.includeStmt()
	case token.KwExport:
		return g.exportStmt()
	case token.KwEnum:
		return g.enumDecl()
	case token.KwFunction:
		return g.functionDecl(ast.Global)
	case token.KwClass:
		return g.classDecl(ast.Global)
	case token.KwThis:
		if g.cur.PeekAt(1).Kind == token.Colon {
			return g.constructorDecl()
		}
		return g.expressionStatement()
	case token.KwBreak:
		return g.breakStmt()
	case token.KwReturn:
		return g.returnStmt()
	case token.KwContinue:
		return g.continueStmt()
	case token.LBrace:
		return g.block()
	default:
		return g.nonKeywordStatement()
	}
}

func (g *Generator) runnable() (*ast.BlockStatement, error) {
	if g.cur.Check(token.LBrace) {
		return g.block()
	}
	pos := g.cur.Peek().Pos
	stmt, err := g.statement()
	if err != nil {
		return nil, err
	}
	return &ast.BlockStatement{Position: pos, Statements: []ast.Statement{stmt}}, nil
}

func (g *Generator) block() (*ast.BlockStatement, error) {
	open, err := g.expect(token.LBrace, "{")
	if err != nil {
		return nil, err
	}
	block := &ast.BlockStatement{Position: open.Pos}
	for !g.cur.Check(token.RBrace) && !g.cur.AtEnd() {
		stmt, err := g.statement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}
	if _, err := g.expect(token.RBrace, "}"); err != nil {
		return nil, err
	}
	return block, nil
}

func (g *Generator) modifiedDecl() (ast.Statement, error) {
	visTok := g.cur.Advance()
	vis := visibilityOf(visTok.Kind)
	switch g.cur.Peek().Kind {
	case token.KwVar, token.KwConst:
		return g.variableDecl(vis)
	case token.KwFunction:
		return g.functionDecl(vis)
	case token.KwClass:
		return g.classDecl(vis)
	default:
		return nil, g.unexpected("var, const, function, or class after visibility modifier")
	}
}

// variableDecl builds one of VarStatement, ArrayVarStatement,
// CondVarStatement, or ClassInstanceStatement depending on the declarator
// shape (spec.md §4.3 table).
func (g *Generator) variableDecl(vis ast.Visibility) (ast.Statement, error) {
	declTok := g.cur.Advance() // var/const
	isConst := declTok.Kind == token.KwConst

	var typ *ast.TypeAnnotation
	if g.cur.Match(token.Colon) {
		t, err := g.varType()
		if err != nil {
			return nil, err
		}
		typ = t
	}

	nameTok, err := g.expect(token.IDENT, "identifier")
	if err != nil {
		return nil, err
	}

	switch {
	case g.cur.Check(token.LBracket):
		return g.arrayVarTail(declTok.Pos, nameTok.Text, vis, isConst, typ)
	case g.cur.Match(token.Assign):
		return g.variableRHSTail(declTok.Pos, nameTok.Text, vis, isConst, typ)
	default:
		if _, err := g.expect(token.Semicolon, ";"); err != nil {
			return nil, err
		}
		return &ast.VarStatement{Position: declTok.Pos, Name: nameTok.Text, Visibility: vis, Const: isConst, Type: typ}, nil
	}
}

func (g *Generator) arrayVarTail(pos token.Position, name string, vis ast.Visibility, isConst bool, typ *ast.TypeAnnotation) (ast.Statement, error) {
	var dims []ast.Expression
	for g.cur.Match(token.LBracket) {
		var dim ast.Expression
		if !g.cur.Check(token.RBracket) {
			e, err := g.expression()
			if err != nil {
				return nil, err
			}
			dim = e
		}
		if _, err := g.expect(token.RBracket, "]"); err != nil {
			return nil, err
		}
		dims = append(dims, dim)
	}
	node := &ast.ArrayVarStatement{Position: pos, Name: name, Visibility: vis, Const: isConst, Type: typ, Dims: dims}
	if g.cur.Match(token.Assign) {
		init, err := g.arrayRHS()
		if err != nil {
			return nil, err
		}
		node.Init = init
	}
	if _, err := g.expect(token.Semicolon, ";"); err != nil {
		return nil, err
	}
	return node, nil
}

func (g *Generator) arrayRHS() (ast.Expression, error) {
	tok := g.cur.Peek()
	switch {
	case tok.Kind == token.LBrace:
		return g.arrayLiteral(1)
	case tok.Kind == token.KwNull:
		g.cur.Advance()
		return &ast.NullLiteral{Position: tok.Pos}, nil
	case tok.Kind == token.STRING:
		g.cur.Advance()
		return &ast.StringLiteral{Position: tok.Pos, Text: tok.Text}, nil
	default:
		return nil, g.unexpected("array literal, null, or string")
	}
}

func (g *Generator) arrayLiteral(depth int) (*ast.ArrayLiteral, error) {
	open, err := g.expect(token.LBrace, "{")
	if err != nil {
		return nil, err
	}
	lit := &ast.ArrayLiteral{Position: open.Pos, Depth: depth}
	for !g.cur.Check(token.RBrace) && !g.cur.AtEnd() {
		var elem ast.Expression
		if g.cur.Check(token.LBrace) {
			nested, err := g.arrayLiteral(depth + 1)
			if err != nil {
				return nil, err
			}
			elem = nested
		} else {
			e, err := g.expression()
			if err != nil {
				return nil, err
			}
			elem = e
		}
		lit.Elements = append(lit.Elements, elem)
		if !g.cur.Match(token.Comma) {
			break
		}
	}
	if _, err := g.expect(token.RBrace, "}"); err != nil {
		return nil, err
	}
	return lit, nil
}

// variableRHSTail builds a CondVarStatement, ClassInstanceStatement, or
// plain VarStatement depending on what follows '='.
func (g *Generator) variableRHSTail(pos token.Position, name string, vis ast.Visibility, isConst bool, typ *ast.TypeAnnotation) (ast.Statement, error) {
	if g.cur.Check(token.KwNew) {
		inst, err := g.newClassInstance()
		if err != nil {
			return nil, err
		}
		if _, err := g.expect(token.Semicolon, ";"); err != nil {
			return nil, err
		}
		return &ast.ClassInstanceStatement{Position: pos, Name: name, Visibility: vis, Const: isConst, Type: typ, Value: inst}, nil
	}

	if g.predictsTernary() {
		tern, err := g.ternary()
		if err != nil {
			return nil, err
		}
		if _, err := g.expect(token.Semicolon, ";"); err != nil {
			return nil, err
		}
		return &ast.CondVarStatement{Position: pos, Name: name, Visibility: vis, Type: typ, Value: tern}, nil
	}

	value, err := g.expression()
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.Semicolon, ";"); err != nil {
		return nil, err
	}
	return &ast.VarStatement{Position: pos, Name: name, Visibility: vis, Const: isConst, Type: typ, Value: value}, nil
}

func (g *Generator) newClassInstance() (*ast.NewClassInstanceExpression, error) {
	newTok, err := g.expect(token.KwNew, "new")
	if err != nil {
		return nil, err
	}
	nameTok, err := g.expect(token.IDENT, "class name")
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.LParen, "("); err != nil {
		return nil, err
	}
	args, err := g.argumentList()
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.RParen, ")"); err != nil {
		return nil, err
	}
	return &ast.NewClassInstanceExpression{Position: newTok.Pos, ClassName: nameTok.Text, Args: args}, nil
}

func (g *Generator) functionDecl(vis ast.Visibility) (*ast.FunctionDeclaration, error) {
	fnTok, err := g.expect(token.KwFunction, "function")
	if err != nil {
		return nil, err
	}
	var ret *ast.TypeAnnotation
	if g.cur.Match(token.Colon) {
		t, err := g.varType()
		if err != nil {
			return nil, err
		}
		ret = t
	}
	nameTok, err := g.expect(token.IDENT, "function name")
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.LParen, "("); err != nil {
		return nil, err
	}
	params, err := g.paramList()
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.RParen, ")"); err != nil {
		return nil, err
	}
	body, err := g.block()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclaration{Position: fnTok.Pos, Name: nameTok.Text, Visibility: vis, RetType: ret, Params: params, Body: body}, nil
}

func (g *Generator) paramList() ([]*ast.Param, error) {
	var params []*ast.Param
	if g.cur.Check(token.RParen) {
		return params, nil
	}
	for {
		p, err := g.param()
		if err != nil {
			return nil, err
		}
		params = append(params, p)
		if !g.cur.Match(token.Comma) {
			break
		}
	}
	return params, nil
}

func (g *Generator) param() (*ast.Param, error) {
	tok := g.cur.Peek()
	p := &ast.Param{Position: tok.Pos}
	switch tok.Kind {
	case token.Pointer:
		g.cur.Advance()
		p.Pointer = true
	case token.Reference, token.ReferenceToPointer:
		g.cur.Advance()
		p.Reference = true
	case token.IDENT:
		g.cur.Advance()
		p.Name = tok.Text
		for g.cur.Match(token.LBracket) {
			if _, err := g.expect(token.RBracket, "]"); err != nil {
				return nil, err
			}
			p.Dims = append(p.Dims, nil)
		}
	default:
		return nil, g.unexpected("parameter")
	}
	if g.cur.Match(token.Colon) {
		t, err := g.varType()
		if err != nil {
			return nil, err
		}
		p.Type = t
	}
	return p, nil
}

func (g *Generator) argumentList() ([]ast.Expression, error) {
	var args []ast.Expression
	if g.cur.Check(token.RParen) {
		return args, nil
	}
	for {
		e, err := g.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, e)
		if !g.cur.Match(token.Comma) {
			break
		}
	}
	return args, nil
}

func (g *Generator) classDecl(vis ast.Visibility) (*ast.ClassDeclaration, error) {
	classTok, err := g.expect(token.KwClass, "class")
	if err != nil {
		return nil, err
	}
	nameTok, err := g.expect(token.IDENT, "class name")
	if err != nil {
		return nil, err
	}
	decl := &ast.ClassDeclaration{Position: classTok.Pos, Name: nameTok.Text, Visibility: vis}
	if g.cur.Match(token.KwExtends) {
		baseTok, err := g.expect(token.IDENT, "base class name")
		if err != nil {
			return nil, err
		}
		decl.Extends = &ast.Identifier{Position: baseTok.Pos, Name: baseTok.Text}
	}
	if g.cur.Match(token.KwWith) {
		for {
			ifaceTok, err := g.expect(token.IDENT, "interface name")
			if err != nil {
				return nil, err
			}
			decl.Implements = append(decl.Implements, &ast.Identifier{Position: ifaceTok.Pos, Name: ifaceTok.Text})
			if !g.cur.Match(token.Comma) {
				break
			}
		}
	}
	if _, err := g.expect(token.ClassCreator, "=>"); err != nil {
		return nil, err
	}
	body, err := g.block()
	if err != nil {
		return nil, err
	}
	decl.Body = body
	return decl, nil
}

func (g *Generator) constructorDecl() (*ast.ConstructorDeclaration, error) {
	thisTok, err := g.expect(token.KwThis, "this")
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.Colon, ":"); err != nil {
		return nil, err
	}
	if _, err := g.expect(token.Colon, ":"); err != nil {
		return nil, err
	}
	if _, err := g.expect(token.KwConstructor, "constructor"); err != nil {
		return nil, err
	}
	if _, err := g.expect(token.LParen, "("); err != nil {
		return nil, err
	}
	params, err := g.paramList()
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.RParen, ")"); err != nil {
		return nil, err
	}
	body, err := g.block()
	if err != nil {
		return nil, err
	}
	return &ast.ConstructorDeclaration{Position: thisTok.Pos, Params: params, Body: body}, nil
}

func (g *Generator) ifStmt() (*ast.IfStatement, error) {
	ifTok, err := g.expect(token.KwIf, "if")
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.LParen, "("); err != nil {
		return nil, err
	}
	cond, err := g.chainedCondition()
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.RParen, ")"); err != nil {
		return nil, err
	}
	body, err := g.runnable()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStatement{Position: ifTok.Pos, Cond: cond, Body: body}

	for g.cur.Check(token.KwElse) && g.cur.PeekAt(1).Kind == token.KwIf {
		elseIfTok := g.cur.Advance()
		g.cur.Advance() // if
		if _, err := g.expect(token.LParen, "("); err != nil {
			return nil, err
		}
		c, err := g.chainedCondition()
		if err != nil {
			return nil, err
		}
		if _, err := g.expect(token.RParen, ")"); err != nil {
			return nil, err
		}
		b, err := g.runnable()
		if err != nil {
			return nil, err
		}
		stmt.ElseIfs = append(stmt.ElseIfs, &ast.ElseIfClause{Position: elseIfTok.Pos, Cond: c, Body: b})
	}

	if g.cur.Match(token.KwElse) {
		b, err := g.runnable()
		if err != nil {
			return nil, err
		}
		stmt.Else = b
	}
	return stmt, nil
}

func (g *Generator) whileStmt() (*ast.WhileStatement, error) {
	whileTok, err := g.expect(token.KwWhile, "while")
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.LParen, "("); err != nil {
		return nil, err
	}
	cond, err := g.chainedCondition()
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.RParen, ")"); err != nil {
		return nil, err
	}
	body, err := g.runnable()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Position: whileTok.Pos, Cond: cond, Body: body}, nil
}

func (g *Generator) doStmt() (*ast.DoStatement, error) {
	doTok, err := g.expect(token.KwDo, "do")
	if err != nil {
		return nil, err
	}
	body, err := g.runnable()
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.KwWhile, "while"); err != nil {
		return nil, err
	}
	if _, err := g.expect(token.LParen, "("); err != nil {
		return nil, err
	}
	cond, err := g.chainedCondition()
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.RParen, ")"); err != nil {
		return nil, err
	}
	if _, err := g.expect(token.Semicolon, ";"); err != nil {
		return nil, err
	}
	return &ast.DoStatement{Position: doTok.Pos, Cond: cond, Body: body}, nil
}

func (g *Generator) forStmt() (*ast.ForStatement, error) {
	forTok, err := g.expect(token.KwFor, "for")
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.LParen, "("); err != nil {
		return nil, err
	}
	initStmt, err := g.variableDecl(ast.Global)
	if err != nil {
		return nil, err
	}
	init, ok := initStmt.(*ast.VarStatement)
	if !ok {
		return nil, g.unexpected("simple variable declaration in for-init")
	}
	cond, err := g.chainedCondition()
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.Semicolon, ";"); err != nil {
		return nil, err
	}
	step, err := g.expression()
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.RParen, ")"); err != nil {
		return nil, err
	}
	body, err := g.runnable()
	if err != nil {
		return nil, err
	}
	return &ast.ForStatement{Position: forTok.Pos, Init: init, Cond: cond, Step: step, Body: body}, nil
}

func (g *Generator) tryStmt() (*ast.TryStatement, error) {
	tryTok, err := g.expect(token.KwTry, "try")
	if err != nil {
		return nil, err
	}
	body, err := g.block()
	if err != nil {
		return nil, err
	}
	catchTok, err := g.expect(token.KwCatch, "catch")
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.LParen, "("); err != nil {
		return nil, err
	}
	typ, err := g.varType()
	if err != nil {
		return nil, err
	}
	nameTok, err := g.expect(token.IDENT, "exception variable name")
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.RParen, ")"); err != nil {
		return nil, err
	}
	catchBody, err := g.block()
	if err != nil {
		return nil, err
	}
	catch := &ast.CatchClause{
		Position: catchTok.Pos,
		// The exception name is the clause's primary label; the type is
		// attached beneath it (Open Question 2 decision, SPEC_FULL.md).
		Name: &ast.Identifier{Position: nameTok.Pos, Name: nameTok.Text},
		Type: typ,
		Body: catchBody,
	}
	return &ast.TryStatement{Position: tryTok.Pos, Body: body, Catch: catch}, nil
}

func (g *Generator) checkStmt() (*ast.CheckStatement, error) {
	checkTok, err := g.expect(token.KwCheck, "check")
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.LParen, "("); err != nil {
		return nil, err
	}
	subjTok, err := g.expect(token.IDENT, "identifier")
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.RParen, ")"); err != nil {
		return nil, err
	}
	if _, err := g.expect(token.LBrace, "{"); err != nil {
		return nil, err
	}
	stmt := &ast.CheckStatement{Position: checkTok.Pos, Subject: &ast.Identifier{Position: subjTok.Pos, Name: subjTok.Text}}
	for g.cur.Check(token.KwIs) {
		c, err := g.isClause()
		if err != nil {
			return nil, err
		}
		stmt.Cases = append(stmt.Cases, c)
	}
	if _, err := g.expect(token.RBrace, "}"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (g *Generator) isClause() (*ast.IsClause, error) {
	isTok, err := g.expect(token.KwIs, "is")
	if err != nil {
		return nil, err
	}
	value, err := g.isValue()
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.Colon, ":"); err != nil {
		return nil, err
	}
	body, err := g.runnable()
	if err != nil {
		return nil, err
	}
	return &ast.IsClause{Position: isTok.Pos, Value: value, Body: body}, nil
}

func (g *Generator) isValue() (ast.Expression, error) {
	tok := g.cur.Peek()
	switch tok.Kind {
	case token.NUMBER:
		g.cur.Advance()
		return &ast.NumberLiteral{Position: tok.Pos, Text: tok.Text}, nil
	case token.FLOAT:
		g.cur.Advance()
		return &ast.FloatLiteral{Position: tok.Pos, Text: tok.Text}, nil
	case token.STRING:
		g.cur.Advance()
		return &ast.StringLiteral{Position: tok.Pos, Text: tok.Text}, nil
	case token.CHARARRAY:
		g.cur.Advance()
		return &ast.CharArrayLiteral{Position: tok.Pos, Text: tok.Text}, nil
	case token.KwTrue, token.KwFalse:
		g.cur.Advance()
		return &ast.BoolLiteral{Position: tok.Pos, Value: tok.Kind == token.KwTrue}, nil
	case token.IDENT:
		g.cur.Advance()
		return &ast.Identifier{Position: tok.Pos, Name: tok.Text}, nil
	default:
		return nil, g.unexpected("literal or identifier")
	}
}

func (g *Generator) enumDecl() (*ast.EnumDeclaration, error) {
	enumTok, err := g.expect(token.KwEnum, "enum")
	if err != nil {
		return nil, err
	}
	nameTok, err := g.expect(token.IDENT, "enum name")
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.LBrace, "{"); err != nil {
		return nil, err
	}
	decl := &ast.EnumDeclaration{Position: enumTok.Pos, Name: nameTok.Text}
	for {
		m, err := g.enumEntry()
		if err != nil {
			return nil, err
		}
		decl.Members = append(decl.Members, m)
		if !g.cur.Match(token.Comma) {
			break
		}
	}
	if _, err := g.expect(token.RBrace, "}"); err != nil {
		return nil, err
	}
	return decl, nil
}

func (g *Generator) enumEntry() (*ast.EnumMember, error) {
	nameTok, err := g.expect(token.IDENT, "enum member name")
	if err != nil {
		return nil, err
	}
	m := &ast.EnumMember{Position: nameTok.Pos, Name: nameTok.Text}
	if g.cur.Match(token.Colon) {
		valTok, err := g.expect(token.NUMBER, "integer literal")
		if err != nil {
			return nil, err
		}
		m.Value = &ast.NumberLiteral{Position: valTok.Pos, Text: valTok.Text}
	}
	return m, nil
}

func (g *Generator) includeStmt() (*ast.IncludeStatement, error) {
	incTok, err := g.expect(token.KwInclude, "include")
	if err != nil {
		return nil, err
	}
	pathTok, err := g.expect(token.STRING, "string literal")
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.Semicolon, ";"); err != nil {
		return nil, err
	}
	return &ast.IncludeStatement{Position: incTok.Pos, Path: pathTok.Text}, nil
}

func (g *Generator) exportStmt() (*ast.ExportStatement, error) {
	expTok, err := g.expect(token.KwExport, "export")
	if err != nil {
		return nil, err
	}
	pathTok, err := g.expect(token.STRING, "string literal")
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.Semicolon, ";"); err != nil {
		return nil, err
	}
	return &ast.ExportStatement{Position: expTok.Pos, Path: pathTok.Text}, nil
}

func (g *Generator) breakStmt() (*ast.BreakStatement, error) {
	tok, err := g.expect(token.KwBreak, "break")
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.Semicolon, ";"); err != nil {
		return nil, err
	}
	return &ast.BreakStatement{Position: tok.Pos}, nil
}

func (g *Generator) continueStmt() (*ast.ContinueStatement, error) {
	tok, err := g.expect(token.KwContinue, "continue")
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.Semicolon, ";"); err != nil {
		return nil, err
	}
	return &ast.ContinueStatement{Position: tok.Pos}, nil
}

func (g *Generator) returnStmt() (*ast.ReturnStatement, error) {
	tok, err := g.expect(token.KwReturn, "return")
	if err != nil {
		return nil, err
	}
	stmt := &ast.ReturnStatement{Position: tok.Pos}
	if !g.cur.Check(token.Semicolon) {
		if g.cur.Check(token.KwNew) {
			inst, err := g.newClassInstance()
			if err != nil {
				return nil, err
			}
			stmt.Value = inst
		} else if g.predictsTernary() {
			tern, err := g.ternary()
			if err != nil {
				return nil, err
			}
			stmt.Value = tern
		} else {
			value, err := g.expression()
			if err != nil {
				return nil, err
			}
			stmt.Value = value
		}
	}
	if _, err := g.expect(token.Semicolon, ";"); err != nil {
		return nil, err
	}
	return stmt, nil
}

// nonKeywordStatement covers expression statements, class-access
// statements, and function-call statements: all three are just an
// expression followed by ';' once postfix chains fold '.' and '->' access
// into the tree (internal/syntax keeps these as separate grammar rules;
// here the precedence climb already builds one shape for all of them).
func (g *Generator) nonKeywordStatement() (ast.Statement, error) {
	return g.expressionStatement()
}

func (g *Generator) expressionStatement() (*ast.ExpressionStatement, error) {
	pos := g.cur.Peek().Pos
	expr, err := g.expression()
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.Semicolon, ";"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Position: pos, Expr: expr}, nil
}
