package cmd

import (
	"fmt"
	"os"

	"github.com/lukaslampl/space-lang-go/internal/diag"
	"github.com/lukaslampl/space-lang-go/internal/lexer"
	"github.com/spf13/cobra"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a SPACE source file and print the resulting tokens",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show each token's line:column")
}

func runLex(cmd *cobra.Command, args []string) error {
	src, file, err := readSource(args)
	if err != nil {
		exitWithError("%s", err)
	}

	l := lexer.New(src, lexer.WithFile(file))
	tokens := l.Tokenize()

	for _, tok := range tokens {
		if showPos {
			fmt.Printf("%-22s %-12q @%s\n", tok.Kind, tok.Text, tok.Pos)
		} else {
			fmt.Printf("%-22s %q\n", tok.Kind, tok.Text)
		}
	}

	if errs := l.Errors(); len(errs) > 0 {
		ctx := diag.NewContext(src, file)
		ctx.Color = colorOutput
		for _, e := range errs {
			ctx.Emit(os.Stderr, diag.Diagnostic{Class: diag.ClassLexer, Message: e.Message, Pos: e.Pos})
		}
		return fmt.Errorf("%d lexer error(s)", len(errs))
	}
	return nil
}
