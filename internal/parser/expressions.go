package parser

import (
	"github.com/lukaslampl/space-lang-go/internal/ast"
	"github.com/lukaslampl/space-lang-go/pkg/token"
)

// chainedCondition builds a left-associative LogicalExpression tree out of
// conditionTerm operands joined by `and`/`or`.
func (g *Generator) chainedCondition() (ast.Expression, error) {
	left, err := g.conditionTerm()
	if err != nil {
		return nil, err
	}
	for g.cur.Check(token.KwAnd) || g.cur.Check(token.KwOr) {
		opTok := g.cur.Advance()
		right, err := g.conditionTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.LogicalExpression{Position: opTok.Pos, Op: opTok.Kind, Left: left, Right: right}
	}
	return left, nil
}

func (g *Generator) conditionTerm() (ast.Expression, error) {
	if g.cur.Check(token.LParen) {
		g.cur.Advance()
		inner, err := g.chainedCondition()
		if err != nil {
			return nil, err
		}
		if _, err := g.expect(token.RParen, ")"); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return g.condition()
}

func (g *Generator) condition() (ast.Expression, error) {
	left, err := g.additive()
	if err != nil {
		return nil, err
	}
	opTok := g.cur.Peek()
	switch opTok.Kind {
	case token.EqEq, token.NotEq, token.Less, token.LessEq, token.Greater, token.GreaterEq:
		g.cur.Advance()
	default:
		return nil, g.unexpected("relational operator")
	}
	right, err := g.additive()
	if err != nil {
		return nil, err
	}
	return &ast.ConditionExpression{Position: opTok.Pos, Op: opTok.Kind, OpText: opTok.Text, Left: left, Right: right}, nil
}

// expression is the assignment-precedence entry point: an additive term,
// optionally followed by one right-associative assignment operator or a
// trailing postfix ++/--.
func (g *Generator) expression() (ast.Expression, error) {
	left, err := g.additive()
	if err != nil {
		return nil, err
	}
	switch g.cur.Peek().Kind {
	case token.Assign, token.PlusEq, token.MinusEq, token.StarEq, token.SlashEq:
		opTok := g.cur.Advance()
		value, err := g.expression()
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentExpression{Position: opTok.Pos, Op: opTok.Kind, OpText: opTok.Text, Target: left, Value: value}, nil
	case token.Inc, token.Dec:
		opTok := g.cur.Advance()
		return &ast.IncDecExpression{Position: opTok.Pos, Op: opTok.Kind, Prefix: false, Operand: left}, nil
	}
	return left, nil
}

func (g *Generator) additive() (ast.Expression, error) {
	left, err := g.multiplicative()
	if err != nil {
		return nil, err
	}
	for g.cur.Check(token.Plus) || g.cur.Check(token.Minus) {
		opTok := g.cur.Advance()
		right, err := g.multiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Position: opTok.Pos, Op: opTok.Kind, OpText: opTok.Text, Left: left, Right: right}
	}
	return left, nil
}

func (g *Generator) multiplicative() (ast.Expression, error) {
	left, err := g.unary()
	if err != nil {
		return nil, err
	}
	for g.cur.Check(token.Star) || g.cur.Check(token.Slash) || g.cur.Check(token.Percent) {
		opTok := g.cur.Advance()
		right, err := g.unary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Position: opTok.Pos, Op: opTok.Kind, OpText: opTok.Text, Left: left, Right: right}
	}
	return left, nil
}

// unary builds a prefix ++/--, a pointer/reference/reference-to-pointer
// wrapper, or falls through to postfix. A leading unary minus on a numeric
// literal is already fused by the lexer into the NUMBER/FLOAT token itself
// when in operand position, so there is nothing to wrap here.
func (g *Generator) unary() (ast.Expression, error) {
	tok := g.cur.Peek()
	switch tok.Kind {
	case token.Inc, token.Dec:
		g.cur.Advance()
		operand, err := g.unary()
		if err != nil {
			return nil, err
		}
		return &ast.IncDecExpression{Position: tok.Pos, Op: tok.Kind, Prefix: true, Operand: operand}, nil
	case token.Pointer:
		g.cur.Advance()
		operand, err := g.unary()
		if err != nil {
			return nil, err
		}
		return &ast.PointerExpression{Position: tok.Pos, Stars: len(tok.Text), Operand: operand}, nil
	case token.Reference:
		g.cur.Advance()
		operand, err := g.unary()
		if err != nil {
			return nil, err
		}
		return &ast.ReferenceExpression{Position: tok.Pos, Operand: operand}, nil
	case token.ReferenceToPointer:
		g.cur.Advance()
		operand, err := g.unary()
		if err != nil {
			return nil, err
		}
		return &ast.ReferenceToPointerExpression{Position: tok.Pos, Operand: operand}, nil
	default:
		return g.postfix()
	}
}

// postfix builds a primary term followed by any run of array-index,
// member-access ('.'), class-access ('->'), or postfix ++/-- suffixes.
func (g *Generator) postfix() (ast.Expression, error) {
	expr, err := g.primary()
	if err != nil {
		return nil, err
	}
	for {
		tok := g.cur.Peek()
		switch tok.Kind {
		case token.LBracket:
			g.cur.Advance()
			index, err := g.expression()
			if err != nil {
				return nil, err
			}
			if _, err := g.expect(token.RBracket, "]"); err != nil {
				return nil, err
			}
			expr = &ast.ArrayAccessExpression{Position: tok.Pos, Target: expr, Index: index}
		case token.Dot:
			g.cur.Advance()
			right, err := g.chainAtom()
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberAccessExpression{Position: tok.Pos, Left: expr, Right: right}
		case token.ClassAccessor:
			g.cur.Advance()
			right, err := g.chainAtom()
			if err != nil {
				return nil, err
			}
			expr = &ast.ClassAccessExpression{Position: tok.Pos, Left: expr, Right: right}
		case token.Inc, token.Dec:
			g.cur.Advance()
			expr = &ast.IncDecExpression{Position: tok.Pos, Op: tok.Kind, Prefix: false, Operand: expr}
		default:
			return expr, nil
		}
	}
}

// primary builds one atomic term: a literal, a parenthesized
// subexpression, `new IDENT(args)`, or an identifier possibly immediately
// called as a function.
func (g *Generator) primary() (ast.Expression, error) {
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
	case token.KwNull:
		g.cur.Advance()
		return &ast.NullLiteral{Position: tok.Pos}, nil
	case token.KwThis:
		g.cur.Advance()
		return &ast.Identifier{Position: tok.Pos, Name: tok.Text}, nil
	case token.LParen:
		g.cur.Advance()
		inner, err := g.expression()
		if err != nil {
			return nil, err
		}
		if _, err := g.expect(token.RParen, ")"); err != nil {
			return nil, err
		}
		return inner, nil
	case token.KwNew:
		return g.newClassInstance()
	case token.IDENT:
		return g.chainAtom()
	default:
		return nil, g.unexpected("expression")
	}
}

// chainAtom builds a single identifier, folding an immediately following
// '(' argument list into a FunctionCallExpression.
func (g *Generator) chainAtom() (ast.Expression, error) {
	nameTok, err := g.expect(token.IDENT, "identifier")
	if err != nil {
		return nil, err
	}
	if g.cur.Match(token.LParen) {
		args, err := g.argumentList()
		if err != nil {
			return nil, err
		}
		if _, err := g.expect(token.RParen, ")"); err != nil {
			return nil, err
		}
		return &ast.FunctionCallExpression{Position: nameTok.Pos, Name: nameTok.Text, Args: args}, nil
	}
	return &ast.Identifier{Position: nameTok.Pos, Name: nameTok.Text}, nil
}

// ternary builds `chainedCondition ? expression : expression`.
func (g *Generator) ternary() (*ast.TernaryExpression, error) {
	cond, err := g.chainedCondition()
	if err != nil {
		return nil, err
	}
	qTok, err := g.expect(token.Question, "?")
	if err != nil {
		return nil, err
	}
	trueVal, err := g.expression()
	if err != nil {
		return nil, err
	}
	if _, err := g.expect(token.Colon, ":"); err != nil {
		return nil, err
	}
	falseVal, err := g.expression()
	if err != nil {
		return nil, err
	}
	return &ast.TernaryExpression{Position: qTok.Pos, Cond: cond, True: trueVal, False: falseVal}, nil
}

// predictsTernary scans forward (bounded by a statement terminator) for a
// top-level '?' while tracking bracket depth, without consuming tokens —
// the same lookahead internal/syntax uses to decide between a ternary
// rvalue and a plain expression.
func (g *Generator) predictsTernary() bool {
	depth := 0
	for n := 0; ; n++ {
		tok := g.cur.PeekAt(n)
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
