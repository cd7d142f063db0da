package cmd

import (
	"fmt"
	"os"

	"github.com/lukaslampl/space-lang-go/internal/diag"
	"github.com/lukaslampl/space-lang-go/internal/lexer"
	"github.com/lukaslampl/space-lang-go/internal/syntax"
	"github.com/spf13/cobra"
)

var syntaxCmd = &cobra.Command{
	Use:   "syntax <file>",
	Short: "Validate a SPACE source file's grammar without building a tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runSyntax,
}

func init() {
	rootCmd.AddCommand(syntaxCmd)
}

func runSyntax(cmd *cobra.Command, args []string) error {
	src, file, err := readSource(args)
	if err != nil {
		exitWithError("%s", err)
	}

	ctx := diag.NewContext(src, file)
	ctx.Color = colorOutput

	l := lexer.New(src, lexer.WithFile(file))
	tokens := l.Tokenize()
	ctx.Tokens = tokens
	if errs := l.Errors(); len(errs) > 0 {
		for _, e := range errs {
			ctx.Emit(os.Stderr, diag.Diagnostic{Class: diag.ClassLexer, Message: e.Message, Pos: e.Pos})
		}
		return fmt.Errorf("%d lexer error(s)", len(errs))
	}

	a := syntax.New(tokens)
	errCount := a.Analyze()
	ctx.EmitAll(os.Stderr, a.Diagnostics())
	if errCount > 0 {
		return fmt.Errorf("%d syntax error(s)", errCount)
	}
	fmt.Println("OK")
	return nil
}
