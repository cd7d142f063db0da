package ast

import "github.com/lukaslampl/space-lang-go/pkg/token"

// BinaryExpression is a left-associative arithmetic operation (+ - * / %),
// built by the precedence-climbing strategy in spec.md §4.3.
type BinaryExpression struct {
	Position token.Position
	Op       token.Kind
	OpText   string
	Left     Expression
	Right    Expression
}

func (b *BinaryExpression) Pos() token.Position { return b.Position }
func (b *BinaryExpression) exprNode()           {}

// ConditionExpression is a single relational comparison (== != < <= > >=),
// the leaf of a ChainedCondition (Glossary).
type ConditionExpression struct {
	Position token.Position
	Op       token.Kind
	OpText   string
	Left     Expression
	Right    Expression
}

func (c *ConditionExpression) Pos() token.Position { return c.Position }
func (c *ConditionExpression) exprNode()           {}

// LogicalExpression combines two conditions with `and`/`or`.
type LogicalExpression struct {
	Position token.Position
	Op       token.Kind // KwAnd or KwOr
	Left     Expression
	Right    Expression
}

func (l *LogicalExpression) Pos() token.Position { return l.Position }
func (l *LogicalExpression) exprNode()           {}

// TernaryExpression is the conditional-assignment rvalue `cond ? a : b`.
type TernaryExpression struct {
	Position token.Position
	Cond     Expression
	True     Expression
	False    Expression
}

func (t *TernaryExpression) Pos() token.Position { return t.Position }
func (t *TernaryExpression) exprNode()           {}

// AssignmentExpression is `=`, `+=`, `-=`, `*=`, or `/=` applied to a
// resolvable target (identifier, member access, or array access).
type AssignmentExpression struct {
	Position token.Position
	Op       token.Kind
	OpText   string
	Target   Expression
	Value    Expression
}

func (a *AssignmentExpression) Pos() token.Position { return a.Position }
func (a *AssignmentExpression) exprNode()           {}

// IncDecExpression is `++`/`--` applied prefix or postfix to an operand
// (spec.md §4.3 "SimpleIncDec").
type IncDecExpression struct {
	Position token.Position
	Op       token.Kind
	Prefix   bool
	Operand  Expression
}

func (i *IncDecExpression) Pos() token.Position { return i.Position }
func (i *IncDecExpression) exprNode()           {}

// MemberAccessExpression is a `.`-joined pair in a dotted identifier chain.
type MemberAccessExpression struct {
	Position token.Position
	Left     Expression
	Right    Expression
}

func (m *MemberAccessExpression) Pos() token.Position { return m.Position }
func (m *MemberAccessExpression) exprNode()           {}

// ClassAccessExpression is an `->`-joined pair (Glossary: "Class access").
type ClassAccessExpression struct {
	Position token.Position
	Left     Expression
	Right    Expression
}

func (c *ClassAccessExpression) Pos() token.Position { return c.Position }
func (c *ClassAccessExpression) exprNode()           {}

// ArrayAccessExpression is one `[index]` step of a possibly multi-dimension
// access chain; additional dimensions nest by wrapping this node as the
// next step's Target (spec.md §4.3's ArrayAccess shape).
type ArrayAccessExpression struct {
	Position token.Position
	Target   Expression
	Index    Expression
}

func (a *ArrayAccessExpression) Pos() token.Position { return a.Position }
func (a *ArrayAccessExpression) exprNode()           {}

// FunctionCallExpression is `name(args...)`.
type FunctionCallExpression struct {
	Position token.Position
	Name     string
	Args     []Expression
}

func (f *FunctionCallExpression) Pos() token.Position { return f.Position }
func (f *FunctionCallExpression) exprNode()           {}

// PointerExpression wraps an operand preceded by a run of `*` (spec.md
// §3.2's pointer construct).
type PointerExpression struct {
	Position token.Position
	Stars    int
	Operand  Expression
}

func (p *PointerExpression) Pos() token.Position { return p.Position }
func (p *PointerExpression) exprNode()           {}

// ReferenceExpression wraps an operand preceded by a lone `&`.
type ReferenceExpression struct {
	Position token.Position
	Operand  Expression
}

func (r *ReferenceExpression) Pos() token.Position { return r.Position }
func (r *ReferenceExpression) exprNode()           {}

// ReferenceToPointerExpression wraps an operand read from an `&(*...)` token.
type ReferenceToPointerExpression struct {
	Position token.Position
	Operand  Expression
}

func (r *ReferenceToPointerExpression) Pos() token.Position { return r.Position }
func (r *ReferenceToPointerExpression) exprNode()           {}

// NewClassInstanceExpression is `new IDENT ( args )`, used as an rvalue in
// variable/class-instance declarations.
type NewClassInstanceExpression struct {
	Position  token.Position
	ClassName string
	Args      []Expression
}

func (n *NewClassInstanceExpression) Pos() token.Position { return n.Position }
func (n *NewClassInstanceExpression) exprNode()           {}

// ArrayLiteral is an array-assignment literal `{ elements }`; nested
// literals represent additional dimensions (spec.md §4.3's "d:<depth>" tag,
// carried here as the Depth field instead of a synthetic value string).
type ArrayLiteral struct {
	Position token.Position
	Depth    int
	Elements []Expression
}

func (a *ArrayLiteral) Pos() token.Position { return a.Position }
func (a *ArrayLiteral) exprNode()           {}
