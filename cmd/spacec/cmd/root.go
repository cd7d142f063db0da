package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var colorOutput bool

var rootCmd = &cobra.Command{
	Use:   "spacec",
	Short: "SPACE language front-end compiler",
	Long: `spacec drives the four-phase SPACE language front end:

  lexer -> syntax analyzer -> parse-tree generator -> semantic analyzer

Each subcommand runs the pipeline up to (and including) one phase and
reports that phase's diagnostics.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&colorOutput, "color", "c", true, "colorize diagnostic output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

func readSource(args []string) (src, file string, err error) {
	if len(args) != 1 {
		return "", "", fmt.Errorf("expected exactly one source file argument")
	}
	file = args[0]
	content, err := os.ReadFile(file)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file %s: %w", file, err)
	}
	return string(content), file, nil
}
