package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/spf13/cobra"
)

var tokenizeExpr string

var tokenizeCmd = &cobra.Command{
	Use:     "tokenize [file]",
	Aliases: []string{"lex"},
	Short:   "Scan a Lox program and print its token stream",
	Long: `Tokenize a Lox program and print the resulting tokens, one per
line, as "KIND 'lexeme'". Useful for debugging the lexer.

If no file is given, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	tokenizeCmd.Flags().StringVarP(&tokenizeExpr, "eval", "e", "", "tokenize inline source instead of reading from a file")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	source, err := readSource(tokenizeExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(source)
	tokens, errs := l.Scan()
	for _, tok := range tokens {
		fmt.Printf("%s '%s'\n", tok.Kind, tok.Lexeme)
	}

	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[line %d] scan error: %s\n", e.Line, e.Message)
		}
		os.Exit(65)
	}
	return nil
}

// readSource resolves the CLI's common "inline expr, file argument, or
// stdin" input precedence, shared by tokenize and parse.
func readSource(inline string, args []string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("cannot read %s: %w", args[0], err)
		}
		return string(content), nil
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("cannot read stdin: %w", err)
	}
	return string(content), nil
}
