package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/lukaslampl/space-lang-go/internal/ast"
	"github.com/lukaslampl/space-lang-go/internal/diag"
	"github.com/lukaslampl/space-lang-go/internal/lexer"
	"github.com/lukaslampl/space-lang-go/internal/parser"
	"github.com/lukaslampl/space-lang-go/internal/syntax"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively parse one statement at a time",
	Long: `repl reads one line at a time, runs it through the lexer, syntax
analyzer, and parse-tree generator, and prints the resulting AST or
diagnostics. It holds no state across lines (each line is parsed as its
own standalone program).`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	rl, err := readline.New("space> ")
	if err != nil {
		return fmt.Errorf("failed to start repl: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		evalLine(line)
	}
}

func evalLine(line string) {
	ctx := diag.NewContext(line, "<repl>")
	ctx.Color = colorOutput

	l := lexer.New(line)
	tokens := l.Tokenize()
	ctx.Tokens = tokens
	if errs := l.Errors(); len(errs) > 0 {
		for _, e := range errs {
			ctx.Emit(os.Stderr, diag.Diagnostic{Class: diag.ClassLexer, Message: e.Message, Pos: e.Pos})
		}
		return
	}

	sa := syntax.New(tokens)
	if errCount := sa.Analyze(); errCount > 0 {
		ctx.EmitAll(os.Stderr, sa.Diagnostics())
		return
	}

	gen := parser.New(tokens)
	prog, err := gen.Generate()
	if err != nil {
		ctx.Emit(os.Stderr, diag.Diagnostic{Class: diag.ClassInternal, Message: err.Error()})
		return
	}
	for _, stmt := range prog.Statements {
		fmt.Println(ast.Print(stmt))
	}
}
