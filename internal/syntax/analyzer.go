// Package syntax implements the predictive, recursive-descent validator
// from spec.md §4.2: it checks a token vector against the SPACE grammar and
// reports precise, recoverable diagnostics, without building any tree.
package syntax

import (
	"fmt"

	"github.com/lukaslampl/space-lang-go/internal/cursor"
	"github.com/lukaslampl/space-lang-go/internal/diag"
	"github.com/lukaslampl/space-lang-go/pkg/token"
)

// Report is returned by every grammar-rule function: on acceptance,
// Consumed carries the token count advanced; on rejection, Err is set
// together with the offending token and the expected description, and the
// cursor is generally left where the rule stopped (only try rewinds it to
// where the rule started) (spec.md §7 "Propagation").
type Report struct {
	Err      bool
	Consumed int
	Token    token.Token
	Expected string
}

func ok(n int) Report { return Report{Consumed: n} }

func fail(tok token.Token, expected string) Report {
	return Report{Err: true, Token: tok, Expected: expected}
}

// Analyzer is the syntax-analysis phase. It owns its own Cursor over the
// token vector (spec.md §4.2 "Method"); it never mutates the vector.
type Analyzer struct {
	cur         *cursor.Cursor
	diagnostics []diag.Diagnostic
	braceDepth  int // nesting depth of blocks being validated; recover() counts braces with its own local depth and does not read it
}

// New constructs an Analyzer over tokens.
func New(tokens []token.Token) *Analyzer {
	return &Analyzer{cur: cursor.New(tokens)}
}

// Diagnostics returns every syntax diagnostic collected by Analyze.
func (a *Analyzer) Diagnostics() []diag.Diagnostic { return a.diagnostics }

// Analyze validates the whole token vector and returns the number of
// errors found. On error it recovers (panic mode) and continues, so a
// single run can report multiple independent errors (spec.md §4.2
// "Contract").
func (a *Analyzer) Analyze() int {
	for !a.cur.AtEnd() {
		from := a.cur.Save()
		rep := a.statement()
		if rep.Err {
			a.reportFailure(rep)
			a.recover()
			if a.cur.Pos == from {
				// Recovery stopped on the token the failed statement began
				// with; step past it so the loop makes progress.
				a.cur.Advance()
			}
			continue
		}
		if rep.Consumed == 0 {
			// Defensive: a rule that accepts without consuming would spin
			// forever; treat it as an internal invariant violation.
			a.diagnostics = append(a.diagnostics, diag.Diagnostic{
				Class:   diag.ClassInternal,
				Message: "grammar rule accepted without consuming any token",
				Pos:     a.cur.Peek().Pos,
			})
			a.cur.Advance()
		}
	}
	// Count every syntax diagnostic, including those block() reports and
	// recovers from inline without returning an error.
	errCount := 0
	for _, d := range a.diagnostics {
		if d.Class == diag.ClassSyntax {
			errCount++
		}
	}
	return errCount
}

func (a *Analyzer) reportFailure(rep Report) {
	msg := fmt.Sprintf("unexpected %s %q", rep.Token.Kind, rep.Token.Text)
	a.diagnostics = append(a.diagnostics, diag.Diagnostic{
		Class:    diag.ClassSyntax,
		Message:  msg,
		Pos:      rep.Token.Pos,
		Expected: rep.Expected,
	})
}

// try runs fn speculatively: on rejection it rewinds the cursor so the
// non-keyword dispatcher's ordered trials never consume tokens for a rule
// that ultimately doesn't match (spec.md §4.2 "Non-keyword dispatcher").
func (a *Analyzer) try(fn func() Report) Report {
	start := a.cur.Save()
	rep := fn()
	if rep.Err {
		a.cur.Restore(start)
	}
	return rep
}

// expect consumes one token of kind k or fails without advancing.
func (a *Analyzer) expect(k token.Kind, expected string) Report {
	tok := a.cur.Peek()
	if tok.Kind != k {
		return fail(tok, expected)
	}
	a.cur.Advance()
	return ok(1)
}

// recover implements panic-mode error recovery (spec.md §4.2): skip tokens
// while tracking brace depth until a structural anchor is reached — the
// matching '}' if we're inside a braced construct, otherwise the next ';',
// '}', or statement-starting keyword. include/export/enum are additional
// anchors beyond spec.md's literal list (SPEC_FULL.md, grounded in
// original_source/src/syntaxAnalyzer.c).
func (a *Analyzer) recover() {
	depth := 0
	for !a.cur.AtEnd() {
		tok := a.cur.Peek()
		if depth == 0 {
			switch tok.Kind {
			case token.Semicolon:
				a.cur.Advance()
				return
			case token.RBrace:
				return
			default:
				if isStatementStart(tok.Kind) {
					return
				}
			}
		}
		switch tok.Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			if depth == 0 {
				return
			}
			depth--
			if depth == 0 {
				a.cur.Advance()
				return
			}
		}
		a.cur.Advance()
	}
}

func isStatementStart(k token.Kind) bool {
	switch k {
	case token.KwVar, token.KwConst, token.KwIf, token.KwElse, token.KwWhile,
		token.KwDo, token.KwFor, token.KwTry, token.KwCatch, token.KwCheck,
		token.KwInclude, token.KwExport, token.KwEnum, token.KwFunction,
		token.KwClass, token.KwThis, token.KwBreak, token.KwReturn,
		token.KwContinue, token.KwGlobal, token.KwSecure, token.KwPrivate:
		return true
	default:
		return false
	}
}

func isVisibility(k token.Kind) bool {
	return k == token.KwGlobal || k == token.KwSecure || k == token.KwPrivate
}
