package syntax

import "github.com/lukaslampl/space-lang-go/pkg/token"

// statement dispatches on the leading keyword, falling back to the
// non-keyword dispatcher for expression/class-access/function-call forms
// (spec.md §4.2 "Top nonterminal runnable").
func (a *Analyzer) statement() Report {
	tok := a.cur.Peek()
	if isVisibility(tok.Kind) {
		return a.modifiedDecl()
	}
	switch tok.Kind {
	case token.KwVar, token.KwConst:
		return a.variableDecl()
	case token.KwIf:
		return a.ifStmt()
	case token.KwWhile:
		return a.whileStmt()
	case token.KwDo:
		return a.doStmt()
	case token.KwFor:
		return a.forStmt()
	case token.KwTry:
		return a.tryStmt()
	case token.KwCheck:
		return a.checkStmt()
	case token.KwInclude:
		return a.includeStmt()
	case token.KwExport:
		return a.exportStmt()
	case token.KwEnum:
		return a.enumDecl()
	case token.KwFunction:
		return a.functionDecl()
	case token.KwClass:
		return a.classDecl()
	case token.KwThis:
		return a.thisStatement()
	case token.KwBreak:
		return a.breakStmt()
	case token.KwReturn:
		return a.returnStmt()
	case token.KwContinue:
		return a.continueStmt()
	case token.LBrace:
		return a.block()
	default:
		return a.nonKeywordStatement()
	}
}

// runnable is a sequence of statements, optionally brace-delimited
// (Glossary: "Runnable").
func (a *Analyzer) runnable() Report {
	if a.cur.Check(token.LBrace) {
		return a.block()
	}
	return a.statement()
}

func (a *Analyzer) block() Report {
	start := a.cur.Save()
	if rep := a.expect(token.LBrace, "{"); rep.Err {
		return rep
	}
	a.braceDepth++
	for !a.cur.Check(token.RBrace) && !a.cur.AtEnd() {
		from := a.cur.Save()
		rep := a.statement()
		if rep.Err {
			// Surface and recover inline so the rest of the block still
			// gets checked; this call does not itself return an error.
			a.reportFailure(rep)
			a.recover()
			if a.cur.Pos == from {
				a.cur.Advance()
			}
			continue
		}
	}
	a.braceDepth--
	if rep := a.expect(token.RBrace, "missing closing brace '}'"); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) modifiedDecl() Report {
	start := a.cur.Save()
	a.cur.Advance() // visibility keyword
	switch a.cur.Peek().Kind {
	case token.KwVar, token.KwConst:
		return a.variableDecl()
	case token.KwFunction:
		return a.functionDecl()
	case token.KwClass:
		return a.classDecl()
	default:
		tok := a.cur.Peek()
		a.cur.Restore(start)
		return fail(tok, "var, const, function, or class after visibility modifier")
	}
}

// variableDecl validates:
//
//	("var"|"const") (":" varType)? IDENT (arrayDecl | "=" rhs | ";")
func (a *Analyzer) variableDecl() Report {
	start := a.cur.Save()
	isConst := a.cur.Check(token.KwConst)
	a.cur.Advance() // var/const

	if a.cur.Match(token.Colon) {
		if rep := a.varType(); rep.Err {
			return rep
		}
	}

	if rep := a.expect(token.IDENT, "identifier"); rep.Err {
		return rep
	}

	switch {
	case a.cur.Check(token.LBracket):
		for a.cur.Match(token.LBracket) {
			if !a.cur.Check(token.RBracket) {
				if rep := a.expression(); rep.Err {
					return rep
				}
			}
			if rep := a.expect(token.RBracket, "]"); rep.Err {
				return rep
			}
		}
		if a.cur.Match(token.Assign) {
			if rep := a.arrayRHS(); rep.Err {
				return rep
			}
		}
		if rep := a.expect(token.Semicolon, ";"); rep.Err {
			return rep
		}
	case a.cur.Match(token.Assign):
		if rep := a.variableRHS(); rep.Err {
			return rep
		}
		if rep := a.expect(token.Semicolon, ";"); rep.Err {
			return rep
		}
	case a.cur.Match(token.Semicolon):
		if isConst {
			tok := a.cur.Peek()
			a.cur.Restore(start)
			return fail(tok, "initializer required for const declaration")
		}
	default:
		tok := a.cur.Peek()
		return fail(tok, "'[', '=', or ';' after variable name")
	}

	return ok(a.cur.Pos - start)
}

// variableRHS is one of: conditional assignment (ternary), class instance
// (`new IDENT(args)`), or a plain expression.
func (a *Analyzer) variableRHS() Report {
	if a.cur.Check(token.KwNew) {
		return a.newClassInstance()
	}
	return a.conditionalOrExpression()
}

func (a *Analyzer) arrayRHS() Report {
	switch {
	case a.cur.Check(token.LBrace):
		return a.arrayLiteral()
	case a.cur.Check(token.KwNull):
		a.cur.Advance()
		return ok(1)
	case a.cur.Check(token.STRING):
		a.cur.Advance()
		return ok(1)
	default:
		tok := a.cur.Peek()
		return fail(tok, "array literal, null, or string")
	}
}

func (a *Analyzer) arrayLiteral() Report {
	start := a.cur.Save()
	if rep := a.expect(token.LBrace, "{"); rep.Err {
		return rep
	}
	for !a.cur.Check(token.RBrace) && !a.cur.AtEnd() {
		var rep Report
		if a.cur.Check(token.LBrace) {
			rep = a.arrayLiteral()
		} else {
			rep = a.expression()
		}
		if rep.Err {
			return rep
		}
		if !a.cur.Match(token.Comma) {
			break
		}
	}
	if rep := a.expect(token.RBrace, "}"); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) newClassInstance() Report {
	start := a.cur.Save()
	if rep := a.expect(token.KwNew, "new"); rep.Err {
		return rep
	}
	if rep := a.expect(token.IDENT, "class name"); rep.Err {
		return rep
	}
	if rep := a.expect(token.LParen, "("); rep.Err {
		return rep
	}
	if rep := a.argumentList(); rep.Err {
		return rep
	}
	if rep := a.expect(token.RParen, ")"); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

// conditionalOrExpression predicts a ternary by scanning for a top-level
// '?' before falling back to a plain expression.
func (a *Analyzer) conditionalOrExpression() Report {
	if a.predictsTernary() {
		return a.ternary()
	}
	return a.expression()
}

func (a *Analyzer) ternary() Report {
	start := a.cur.Save()
	if rep := a.chainedCondition(); rep.Err {
		return rep
	}
	if rep := a.expect(token.Question, "?"); rep.Err {
		return rep
	}
	if rep := a.expression(); rep.Err {
		return rep
	}
	if rep := a.expect(token.Colon, ":"); rep.Err {
		return rep
	}
	if rep := a.expression(); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

// predictsTernary scans forward (bounded by a statement terminator) for a
// top-level '?' while tracking bracket depth, without consuming tokens.
func (a *Analyzer) predictsTernary() bool {
	depth := 0
	for n := 0; ; n++ {
		tok := a.cur.PeekAt(n)
		switch tok.Kind {
		case token.EOF, token.Semicolon:
			return false
		case token.LParen, token.LBracket:
			depth++
		case token.RParen, token.RBracket:
			if depth == 0 {
				return false
			}
			depth--
		case token.Question:
			if depth == 0 {
				return true
			}
		case token.LBrace, token.RBrace:
			return false
		}
	}
}

func (a *Analyzer) varType() Report {
	tok := a.cur.Peek()
	switch tok.Kind {
	case token.KwInt, token.KwDouble, token.KwFloat, token.KwChar,
		token.KwString, token.KwBoolean, token.KwShort, token.KwLong, token.IDENT:
		a.cur.Advance()
		return ok(1)
	default:
		return fail(tok, "type name")
	}
}

func (a *Analyzer) functionDecl() Report {
	start := a.cur.Save()
	if rep := a.expect(token.KwFunction, "function"); rep.Err {
		return rep
	}
	if a.cur.Match(token.Colon) {
		if rep := a.varType(); rep.Err {
			return rep
		}
	}
	if rep := a.expect(token.IDENT, "function name"); rep.Err {
		return rep
	}
	if rep := a.expect(token.LParen, "("); rep.Err {
		return rep
	}
	if rep := a.paramList(); rep.Err {
		return rep
	}
	if rep := a.expect(token.RParen, ")"); rep.Err {
		return rep
	}
	if rep := a.block(); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) paramList() Report {
	start := a.cur.Save()
	if a.cur.Check(token.RParen) {
		return ok(0)
	}
	for {
		if rep := a.param(); rep.Err {
			return rep
		}
		if !a.cur.Match(token.Comma) {
			break
		}
	}
	return ok(a.cur.Pos - start)
}

// param validates `pointer | reference | IDENT (arrayDims)? (":" varType)?`.
func (a *Analyzer) param() Report {
	start := a.cur.Save()
	switch a.cur.Peek().Kind {
	case token.Pointer, token.Reference, token.ReferenceToPointer:
		a.cur.Advance()
	case token.IDENT:
		a.cur.Advance()
		for a.cur.Match(token.LBracket) {
			if rep := a.expect(token.RBracket, "]"); rep.Err {
				return rep
			}
		}
	default:
		tok := a.cur.Peek()
		return fail(tok, "parameter")
	}
	if a.cur.Match(token.Colon) {
		if rep := a.varType(); rep.Err {
			return rep
		}
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) argumentList() Report {
	start := a.cur.Save()
	if a.cur.Check(token.RParen) {
		return ok(0)
	}
	for {
		if rep := a.expression(); rep.Err {
			return rep
		}
		if !a.cur.Match(token.Comma) {
			break
		}
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) classDecl() Report {
	start := a.cur.Save()
	if rep := a.expect(token.KwClass, "class"); rep.Err {
		return rep
	}
	if rep := a.expect(token.IDENT, "class name"); rep.Err {
		return rep
	}
	if a.cur.Match(token.KwExtends) {
		if rep := a.expect(token.IDENT, "base class name"); rep.Err {
			return rep
		}
	}
	if a.cur.Match(token.KwWith) {
		if rep := a.expect(token.IDENT, "interface name"); rep.Err {
			return rep
		}
		for a.cur.Match(token.Comma) {
			if rep := a.expect(token.IDENT, "interface name"); rep.Err {
				return rep
			}
		}
	}
	if rep := a.expect(token.ClassCreator, "=>"); rep.Err {
		return rep
	}
	if rep := a.block(); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

// thisStatement validates `this::constructor(params) block`, or falls back
// to `this`-led member access used as a statement.
func (a *Analyzer) thisStatement() Report {
	if a.cur.PeekAt(1).Kind == token.Colon {
		return a.try(a.constructorDecl)
	}
	return a.expressionStatement()
}

func (a *Analyzer) constructorDecl() Report {
	start := a.cur.Save()
	if rep := a.expect(token.KwThis, "this"); rep.Err {
		return rep
	}
	if rep := a.expect(token.Colon, ":"); rep.Err {
		return rep
	}
	if rep := a.expect(token.Colon, ":"); rep.Err {
		return rep
	}
	if rep := a.expect(token.KwConstructor, "constructor"); rep.Err {
		return rep
	}
	if rep := a.expect(token.LParen, "("); rep.Err {
		return rep
	}
	if rep := a.paramList(); rep.Err {
		return rep
	}
	if rep := a.expect(token.RParen, ")"); rep.Err {
		return rep
	}
	if rep := a.block(); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) ifStmt() Report {
	start := a.cur.Save()
	if rep := a.expect(token.KwIf, "if"); rep.Err {
		return rep
	}
	if rep := a.expect(token.LParen, "("); rep.Err {
		return rep
	}
	if rep := a.chainedCondition(); rep.Err {
		return rep
	}
	if rep := a.expect(token.RParen, ")"); rep.Err {
		return rep
	}
	if rep := a.runnable(); rep.Err {
		return rep
	}
	for a.cur.Check(token.KwElse) && a.cur.PeekAt(1).Kind == token.KwIf {
		a.cur.Advance() // else
		a.cur.Advance() // if
		if rep := a.expect(token.LParen, "("); rep.Err {
			return rep
		}
		if rep := a.chainedCondition(); rep.Err {
			return rep
		}
		if rep := a.expect(token.RParen, ")"); rep.Err {
			return rep
		}
		if rep := a.runnable(); rep.Err {
			return rep
		}
	}
	if a.cur.Match(token.KwElse) {
		if rep := a.runnable(); rep.Err {
			return rep
		}
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) whileStmt() Report {
	start := a.cur.Save()
	if rep := a.expect(token.KwWhile, "while"); rep.Err {
		return rep
	}
	if rep := a.expect(token.LParen, "("); rep.Err {
		return rep
	}
	if rep := a.chainedCondition(); rep.Err {
		return rep
	}
	if rep := a.expect(token.RParen, ")"); rep.Err {
		return rep
	}
	if rep := a.runnable(); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) doStmt() Report {
	start := a.cur.Save()
	if rep := a.expect(token.KwDo, "do"); rep.Err {
		return rep
	}
	if rep := a.runnable(); rep.Err {
		return rep
	}
	if rep := a.expect(token.KwWhile, "while"); rep.Err {
		return rep
	}
	if rep := a.expect(token.LParen, "("); rep.Err {
		return rep
	}
	if rep := a.chainedCondition(); rep.Err {
		return rep
	}
	if rep := a.expect(token.RParen, ")"); rep.Err {
		return rep
	}
	if rep := a.expect(token.Semicolon, ";"); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

// forStmt validates `"for" "(" variable chained-condition ";" expression ")" block`.
func (a *Analyzer) forStmt() Report {
	start := a.cur.Save()
	if rep := a.expect(token.KwFor, "for"); rep.Err {
		return rep
	}
	if rep := a.expect(token.LParen, "("); rep.Err {
		return rep
	}
	if rep := a.variableDecl(); rep.Err {
		return rep
	}
	if rep := a.chainedCondition(); rep.Err {
		return rep
	}
	if rep := a.expect(token.Semicolon, ";"); rep.Err {
		return rep
	}
	if rep := a.expression(); rep.Err {
		return rep
	}
	if rep := a.expect(token.RParen, ")"); rep.Err {
		return rep
	}
	if rep := a.runnable(); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) tryStmt() Report {
	start := a.cur.Save()
	if rep := a.expect(token.KwTry, "try"); rep.Err {
		return rep
	}
	if rep := a.block(); rep.Err {
		return rep
	}
	if rep := a.expect(token.KwCatch, "catch"); rep.Err {
		return rep
	}
	if rep := a.expect(token.LParen, "("); rep.Err {
		return rep
	}
	if rep := a.varType(); rep.Err {
		return rep
	}
	if rep := a.expect(token.IDENT, "exception variable name"); rep.Err {
		return rep
	}
	if rep := a.expect(token.RParen, ")"); rep.Err {
		return rep
	}
	if rep := a.block(); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

// checkStmt validates `"check" "(" IDENT ")" "{" is-stmt* "}"`.
func (a *Analyzer) checkStmt() Report {
	start := a.cur.Save()
	if rep := a.expect(token.KwCheck, "check"); rep.Err {
		return rep
	}
	if rep := a.expect(token.LParen, "("); rep.Err {
		return rep
	}
	if rep := a.expect(token.IDENT, "identifier"); rep.Err {
		return rep
	}
	if rep := a.expect(token.RParen, ")"); rep.Err {
		return rep
	}
	if rep := a.expect(token.LBrace, "{"); rep.Err {
		return rep
	}
	for a.cur.Check(token.KwIs) {
		if rep := a.isStmt(); rep.Err {
			return rep
		}
	}
	if rep := a.expect(token.RBrace, "}"); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) isStmt() Report {
	start := a.cur.Save()
	if rep := a.expect(token.KwIs, "is"); rep.Err {
		return rep
	}
	if rep := a.isValue(); rep.Err {
		return rep
	}
	if rep := a.expect(token.Colon, ":"); rep.Err {
		return rep
	}
	if rep := a.runnable(); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) isValue() Report {
	tok := a.cur.Peek()
	switch tok.Kind {
	case token.NUMBER, token.FLOAT, token.STRING, token.CHARARRAY,
		token.KwTrue, token.KwFalse, token.IDENT:
		a.cur.Advance()
		return ok(1)
	default:
		return fail(tok, "literal or identifier")
	}
}

func (a *Analyzer) enumDecl() Report {
	start := a.cur.Save()
	if rep := a.expect(token.KwEnum, "enum"); rep.Err {
		return rep
	}
	if rep := a.expect(token.IDENT, "enum name"); rep.Err {
		return rep
	}
	if rep := a.expect(token.LBrace, "{"); rep.Err {
		return rep
	}
	for {
		if rep := a.enumEntry(); rep.Err {
			return rep
		}
		if !a.cur.Match(token.Comma) {
			break
		}
	}
	if rep := a.expect(token.RBrace, "}"); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) enumEntry() Report {
	start := a.cur.Save()
	if rep := a.expect(token.IDENT, "enum member name"); rep.Err {
		return rep
	}
	if a.cur.Match(token.Colon) {
		if rep := a.expect(token.NUMBER, "integer literal"); rep.Err {
			return rep
		}
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) includeStmt() Report {
	start := a.cur.Save()
	if rep := a.expect(token.KwInclude, "include"); rep.Err {
		return rep
	}
	if rep := a.expect(token.STRING, "string literal"); rep.Err {
		return rep
	}
	if rep := a.expect(token.Semicolon, ";"); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) exportStmt() Report {
	start := a.cur.Save()
	if rep := a.expect(token.KwExport, "export"); rep.Err {
		return rep
	}
	if rep := a.expect(token.STRING, "string literal"); rep.Err {
		return rep
	}
	if rep := a.expect(token.Semicolon, ";"); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) breakStmt() Report {
	start := a.cur.Save()
	if rep := a.expect(token.KwBreak, "break"); rep.Err {
		return rep
	}
	if rep := a.expect(token.Semicolon, ";"); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) continueStmt() Report {
	start := a.cur.Save()
	if rep := a.expect(token.KwContinue, "continue"); rep.Err {
		return rep
	}
	if rep := a.expect(token.Semicolon, ";"); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) returnStmt() Report {
	start := a.cur.Save()
	if rep := a.expect(token.KwReturn, "return"); rep.Err {
		return rep
	}
	if !a.cur.Check(token.Semicolon) {
		if rep := a.conditionalOrExpression(); rep.Err {
			return rep
		}
	}
	if rep := a.expect(token.Semicolon, ";"); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

// nonKeywordStatement tries, in order: expression statement, class-object
// access, and function-call statement. There is no separate trial for a
// null-assigned class instance; input none of the three accepts is rejected
// with "statement" as the expected description.
func (a *Analyzer) nonKeywordStatement() Report {
	start := a.cur.Save()

	if rep := a.try(a.expressionStatement); !rep.Err {
		return rep
	}
	if rep := a.try(a.classAccessStatement); !rep.Err {
		return rep
	}
	if rep := a.try(a.functionCallStatement); !rep.Err {
		return rep
	}

	tok := a.cur.Peek()
	a.cur.Restore(start)
	return fail(tok, "statement")
}

func (a *Analyzer) expressionStatement() Report {
	start := a.cur.Save()
	if rep := a.expression(); rep.Err {
		return rep
	}
	if rep := a.expect(token.Semicolon, ";"); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) classAccessStatement() Report {
	start := a.cur.Save()
	if rep := a.expect(token.IDENT, "identifier"); rep.Err {
		return rep
	}
	if rep := a.expect(token.ClassAccessor, "->"); rep.Err {
		return rep
	}
	if rep := a.identifierChain(); rep.Err {
		return rep
	}
	if rep := a.expect(token.Semicolon, ";"); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) functionCallStatement() Report {
	start := a.cur.Save()
	if rep := a.expect(token.IDENT, "identifier"); rep.Err {
		return rep
	}
	if rep := a.expect(token.LParen, "("); rep.Err {
		return rep
	}
	if rep := a.argumentList(); rep.Err {
		return rep
	}
	if rep := a.expect(token.RParen, ")"); rep.Err {
		return rep
	}
	if rep := a.expect(token.Semicolon, ";"); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}
