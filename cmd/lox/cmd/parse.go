package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var (
	parseExpr   string
	parseFormat string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Lox program and dump its AST",
	Long: `Parse a Lox program and print its Abstract Syntax Tree.

--format controls the dump shape:
  text (default) — a fully-parenthesized Lisp-like tree
  yaml           — a structured YAML document
  json           — a structured JSON document`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse inline source instead of reading from a file")
	parseCmd.Flags().StringVar(&parseFormat, "format", "text", "output format: text, yaml, or json")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := readSource(parseExpr, args)
	if err != nil {
		return err
	}

	l := lexer.New(source)
	tokens, lexErrs := l.Scan()
	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintf(os.Stderr, "[line %d] scan error: %s\n", e.Line, e.Message)
		}
		os.Exit(65)
	}

	p := parser.New(tokens)
	stmts := p.ParseProgram()
	if len(p.Errors()) > 0 {
		fmt.Fprint(os.Stderr, errors.FormatAll(p.Errors()))
		os.Exit(65)
	}

	switch parseFormat {
	case "yaml":
		doc, err := yaml.Marshal(ast.Dump(stmts))
		if err != nil {
			return err
		}
		fmt.Print(string(doc))
	case "json":
		doc, err := ast.DumpJSON(ast.Dump(stmts))
		if err != nil {
			return err
		}
		fmt.Println(doc)
	default:
		fmt.Print(ast.Print(stmts))
	}
	return nil
}
