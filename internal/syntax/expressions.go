package syntax

import "github.com/lukaslampl/space-lang-go/pkg/token"

// chainedCondition validates a ChainedCondition: a logical combination of
// simple conditions joined by `and`/`or`, optionally parenthesized
// (Glossary: "Chained condition").
func (a *Analyzer) chainedCondition() Report {
	start := a.cur.Save()
	if rep := a.conditionTerm(); rep.Err {
		return rep
	}
	for a.cur.Check(token.KwAnd) || a.cur.Check(token.KwOr) {
		a.cur.Advance()
		if rep := a.conditionTerm(); rep.Err {
			return rep
		}
	}
	return ok(a.cur.Pos - start)
}

// conditionTerm distinguishes a parenthesized logical group from a simple
// condition, tracking the open-bracket count implicitly via recursion
// (spec.md §4.2 "Condition prediction").
func (a *Analyzer) conditionTerm() Report {
	if a.cur.Check(token.LParen) {
		start := a.cur.Save()
		a.cur.Advance()
		if rep := a.chainedCondition(); rep.Err {
			return rep
		}
		if rep := a.expect(token.RParen, ")"); rep.Err {
			return rep
		}
		return ok(a.cur.Pos - start)
	}
	return a.condition()
}

// condition validates `expr relop expr`.
func (a *Analyzer) condition() Report {
	start := a.cur.Save()
	if rep := a.additive(); rep.Err {
		return rep
	}
	switch a.cur.Peek().Kind {
	case token.EqEq, token.NotEq, token.Less, token.LessEq, token.Greater, token.GreaterEq:
		a.cur.Advance()
	default:
		tok := a.cur.Peek()
		a.cur.Restore(start)
		return fail(tok, "relational operator")
	}
	if rep := a.additive(); rep.Err {
		return rep
	}
	return ok(a.cur.Pos - start)
}

// expression is the assignment-precedence entry point (spec.md §4.2's
// precedence table, row 6): additive, optionally followed by one
// right-associative assignment or a postfix ++/--.
func (a *Analyzer) expression() Report {
	start := a.cur.Save()
	if rep := a.additive(); rep.Err {
		return rep
	}
	switch a.cur.Peek().Kind {
	case token.Assign, token.PlusEq, token.MinusEq, token.StarEq, token.SlashEq:
		a.cur.Advance()
		if rep := a.expression(); rep.Err {
			return rep
		}
	case token.Inc, token.Dec:
		a.cur.Advance()
	}
	return ok(a.cur.Pos - start)
}

// additive is `* / %`-precedence multiplicative terms joined by `+`/`-`,
// left-associative.
func (a *Analyzer) additive() Report {
	start := a.cur.Save()
	if rep := a.multiplicative(); rep.Err {
		return rep
	}
	for a.cur.Check(token.Plus) || a.cur.Check(token.Minus) {
		a.cur.Advance()
		if rep := a.multiplicative(); rep.Err {
			return rep
		}
	}
	return ok(a.cur.Pos - start)
}

func (a *Analyzer) multiplicative() Report {
	start := a.cur.Save()
	if rep := a.unary(); rep.Err {
		return rep
	}
	for a.cur.Check(token.Star) || a.cur.Check(token.Slash) || a.cur.Check(token.Percent) {
		a.cur.Advance()
		if rep := a.unary(); rep.Err {
			return rep
		}
	}
	return ok(a.cur.Pos - start)
}

// unary validates a prefix ++/--, a pointer/reference/reference-to-pointer
// construct, a leading unary minus (already fused into a NUMBER/FLOAT token
// by the lexer when in operand position, so nothing extra to do here), or
// falls through to postfix.
func (a *Analyzer) unary() Report {
	start := a.cur.Save()
	switch a.cur.Peek().Kind {
	case token.Inc, token.Dec:
		a.cur.Advance()
		if rep := a.unary(); rep.Err {
			return rep
		}
		return ok(a.cur.Pos - start)
	case token.Pointer, token.Reference, token.ReferenceToPointer:
		a.cur.Advance()
		if rep := a.unary(); rep.Err {
			return rep
		}
		return ok(a.cur.Pos - start)
	default:
		return a.postfix()
	}
}

// postfix validates a primary term followed by any run of array-index,
// member-access ('.'), class-access ('->'), or postfix ++/-- suffixes —
// the "identifier form" from spec.md §4.2.
func (a *Analyzer) postfix() Report {
	start := a.cur.Save()
	if rep := a.primary(); rep.Err {
		return rep
	}
	for {
		switch a.cur.Peek().Kind {
		case token.LBracket:
			a.cur.Advance()
			if rep := a.expression(); rep.Err {
				return rep
			}
			if rep := a.expect(token.RBracket, "]"); rep.Err {
				return rep
			}
		case token.Dot, token.ClassAccessor:
			a.cur.Advance()
			if rep := a.chainAtom(); rep.Err {
				return rep
			}
		case token.Inc, token.Dec:
			a.cur.Advance()
		default:
			return ok(a.cur.Pos - start)
		}
	}
}

// primary validates one atomic term: a literal, a parenthesized
// subexpression (which resets precedence), `new IDENT(args)`, or an
// identifier possibly immediately called as a function.
func (a *Analyzer) primary() Report {
	tok := a.cur.Peek()
	switch tok.Kind {
	case token.NUMBER, token.FLOAT, token.STRING, token.CHARARRAY,
		token.KwTrue, token.KwFalse, token.KwNull, token.KwThis:
		a.cur.Advance()
		return ok(1)
	case token.LParen:
		start := a.cur.Save()
		a.cur.Advance()
		if rep := a.expression(); rep.Err {
			return rep
		}
		if rep := a.expect(token.RParen, ")"); rep.Err {
			return rep
		}
		return ok(a.cur.Pos - start)
	case token.KwNew:
		return a.newClassInstance()
	case token.IDENT:
		return a.chainAtom()
	default:
		return fail(tok, "expression")
	}
}

// chainAtom validates a single identifier, immediately followed by a call
// argument list if the next token is '('.
func (a *Analyzer) chainAtom() Report {
	start := a.cur.Save()
	if rep := a.expect(token.IDENT, "identifier"); rep.Err {
		return rep
	}
	if a.cur.Match(token.LParen) {
		if rep := a.argumentList(); rep.Err {
			return rep
		}
		if rep := a.expect(token.RParen, ")"); rep.Err {
			return rep
		}
	}
	return ok(a.cur.Pos - start)
}

// identifierChain validates a dotted/arrow identifier chain used as a
// standalone statement (class-access statement target).
func (a *Analyzer) identifierChain() Report {
	start := a.cur.Save()
	if rep := a.chainAtom(); rep.Err {
		return rep
	}
	for {
		switch a.cur.Peek().Kind {
		case token.Dot, token.ClassAccessor:
			a.cur.Advance()
			if rep := a.chainAtom(); rep.Err {
				return rep
			}
		case token.LBracket:
			a.cur.Advance()
			if rep := a.expression(); rep.Err {
				return rep
			}
			if rep := a.expect(token.RBracket, "]"); rep.Err {
				return rep
			}
		default:
			return ok(a.cur.Pos - start)
		}
	}
}
