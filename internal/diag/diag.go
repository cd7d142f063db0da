// Package diag renders compiler diagnostics and threads the "diagnostic
// context" (source bytes, file name, token slice, optional AST root) through
// the four phases, replacing the original implementation's module-level
// globals (spec.md §9 "Global mutable state").
package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/lukaslampl/space-lang-go/pkg/token"
)

// Class names the taxonomy bucket a diagnostic belongs to (spec.md §7).
type Class string

const (
	ClassIO       Class = "IO error"
	ClassLexer    Class = "Lexer error"
	ClassSyntax   Class = "Syntax error"
	ClassSemantic Class = "Semantic error"
	ClassInternal Class = "Internal error"
)

// Diagnostic is one reportable failure: class, message, and the source
// position it anchors to (spec.md §6.4).
type Diagnostic struct {
	Class   Class
	Message string
	Pos     token.Position
	Expected string // populated for syntax mismatches; empty otherwise
}

// Context is the explicit value threaded through the lexer, syntax
// analyzer, parse-tree generator, and semantic analyzer so none of them
// needs package-level mutable state to render a diagnostic.
type Context struct {
	Source string
	File   string
	Tokens []token.Token
	Color  bool
}

// NewContext builds a Context for source read from file (file may be empty
// for inline/stdin input, per §6.1).
func NewContext(source, file string) *Context {
	return &Context{Source: source, File: file}
}

func (c *Context) sourceLine(line int) string {
	lines := strings.Split(c.Source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// Render formats d as the three-part diagnostic block spec.md §6.4
// describes: a header line, a "<line> : <col> | <source>" location line,
// and a caret line using '~' for preceding context and '^' under the
// offending token.
func (c *Context) Render(d Diagnostic) string {
	var sb strings.Builder

	header := fmt.Sprintf("%s: %s", d.Class, d.Message)
	if c.File != "" {
		header = fmt.Sprintf("%s (%s)", header, c.File)
	}
	if c.Color {
		header = color.New(color.FgRed, color.Bold).Sprint(header)
	}
	sb.WriteString(header)
	sb.WriteString("\n")

	line := c.sourceLine(d.Pos.Line)
	prefix := fmt.Sprintf("%d : %d | ", d.Pos.Line, d.Pos.Column)
	sb.WriteString(prefix)
	sb.WriteString(line)
	sb.WriteString("\n")

	col := d.Pos.Column - 1
	if col < 0 {
		col = 0
	}
	length := d.Pos.Length
	if length < 1 {
		length = 1
	}
	caret := strings.Repeat(" ", len(prefix)) + strings.Repeat("~", col) + strings.Repeat("^", length)
	if c.Color {
		caret = color.New(color.FgYellow).Sprint(caret)
	}
	sb.WriteString(caret)
	sb.WriteString("\n")

	if d.Expected != "" {
		sb.WriteString(fmt.Sprintf("expected: %s\n", d.Expected))
	}

	return sb.String()
}

// Emit renders and writes d to w.
func (c *Context) Emit(w io.Writer, d Diagnostic) {
	fmt.Fprint(w, c.Render(d))
}

// EmitAll renders and writes every diagnostic in ds, in order.
func (c *Context) EmitAll(w io.Writer, ds []Diagnostic) {
	for _, d := range ds {
		c.Emit(w, d)
	}
}
