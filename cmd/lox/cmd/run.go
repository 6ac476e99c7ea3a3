package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cwbudde/go-lox/internal/errors"
	"github.com/cwbudde/go-lox/internal/interp"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/parser"
	"github.com/cwbudde/go-lox/internal/resolver"
	"github.com/spf13/cobra"
)

var (
	evalExpr        string
	jsonDiagnostics bool
	traceExec       bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lox program, or start the REPL with no arguments",
	Long: `Execute a Lox program from a file or inline source.

Examples:
  lox run script.lox
  lox run -e "print 1 + 2;"
  lox run                  # REPL: reads from stdin until EOF`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading from a file")
	runCmd.Flags().BoolVar(&jsonDiagnostics, "json", false, "emit diagnostics as JSON instead of plain text")
	runCmd.Flags().BoolVar(&traceExec, "trace", false, "trace execution to stderr")
}

// runRun implements spec §6.2's CLI surface: a bare invocation (or "lox"
// with no file) opens the REPL, a single path argument executes that
// file, and more than one path argument prints usage and exits
// successfully rather than erroring.
func runRun(c *cobra.Command, args []string) error {
	if len(args) > 1 {
		fmt.Println(c.UsageString())
		return nil
	}

	if evalExpr != "" {
		os.Exit(runSource(interp.New(os.Stdout), evalExpr, "<eval>"))
	}

	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot read %s: %v\n", args[0], err)
			os.Exit(70)
		}
		os.Exit(runSource(interp.New(os.Stdout), string(content), args[0]))
	}

	runREPL()
	return nil
}

// runREPL is the interactive prompt loop: a single Interpreter is reused
// across lines so top-level variable and function bindings persist, but
// a runtime error on one line doesn't end the session — only EOF does.
func runREPL() {
	interpreter := interp.New(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		runSource(interpreter, scanner.Text(), "<stdin>")
	}
}

// runSource runs one unit of source against interpreter: scan, parse,
// resolve, evaluate, reporting the first phase that fails (spec §7) and
// returning the exit code spec §6.2 assigns to it.
func runSource(interpreter *interp.Interpreter, source, filename string) int {
	if traceExec {
		fmt.Fprintf(os.Stderr, "[trace] running %s\n", filename)
	}

	l := lexer.New(source)
	tokens, lexErrs := l.Scan()
	if len(lexErrs) > 0 {
		diags := make([]*errors.Diagnostic, 0, len(lexErrs))
		for _, e := range lexErrs {
			diags = append(diags, errors.New(errors.UnexpectedToken, e.Line, "%s", e.Message))
		}
		reportDiagnostics(diags)
		return 65
	}

	p := parser.New(tokens)
	stmts := p.ParseProgram()
	if len(p.Errors()) > 0 {
		reportDiagnostics(p.Errors())
		return 65
	}

	res := resolver.New()
	res.Resolve(stmts)
	if len(res.Errors()) > 0 {
		reportDiagnostics(res.Errors())
		return 65
	}

	if err := interpreter.Interpret(stmts); err != nil {
		if rte, ok := err.(*interp.RuntimeError); ok {
			reportDiagnostics([]*errors.Diagnostic{rte.Diagnostic()})
		} else {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		return 70
	}
	return 0
}

// reportDiagnostics renders diagnostics per spec §6.3 (one line per
// error to stderr), or as a JSON array when --json is set.
func reportDiagnostics(diags []*errors.Diagnostic) {
	if jsonDiagnostics {
		doc, err := errors.ToJSON(diags)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Fprintln(os.Stderr, doc)
		return
	}
	fmt.Fprint(os.Stderr, errors.FormatAll(diags))
}
