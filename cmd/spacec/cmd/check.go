package cmd

import (
	"fmt"
	"os"

	"github.com/lukaslampl/space-lang-go/internal/diag"
	"github.com/lukaslampl/space-lang-go/internal/lexer"
	"github.com/lukaslampl/space-lang-go/internal/parser"
	"github.com/lukaslampl/space-lang-go/internal/semantic"
	"github.com/lukaslampl/space-lang-go/internal/syntax"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run the full pipeline and report semantic diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
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

	sa := syntax.New(tokens)
	if errCount := sa.Analyze(); errCount > 0 {
		ctx.EmitAll(os.Stderr, sa.Diagnostics())
		return fmt.Errorf("%d syntax error(s)", errCount)
	}

	gen := parser.New(tokens)
	prog, err := gen.Generate()
	if err != nil {
		ctx.Emit(os.Stderr, diag.Diagnostic{Class: diag.ClassInternal, Message: err.Error()})
		return err
	}

	semA := semantic.New()
	if errCount := semA.Analyze(prog); errCount > 0 {
		ctx.EmitAll(os.Stderr, semA.Diagnostics())
		return fmt.Errorf("%d semantic error(s)", errCount)
	}

	fmt.Println("OK")
	return nil
}
