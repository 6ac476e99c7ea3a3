package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information, overridable via -ldflags at build time, the same
// way the teacher's cmd/dwscript/cmd exposes Version/GitCommit/BuildDate.
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "lox",
	Short: "A tree-walking interpreter for the Lox language",
	Long: `lox is a Go implementation of Lox, a small dynamically-typed
object-oriented scripting language with first-class closures, single
inheritance, and runtime reflection on instances.

Run a script:   lox run script.lox
Start the REPL: lox
Inline source:  lox run -e "print 1 + 2;"`,
	Version: Version,
	// The implicit default invocation ("lox" with no subcommand, or
	// "lox script.lox") behaves like "lox run", matching Cobra's
	// root-command-as-default idiom.
	Args: cobra.ArbitraryArgs,
	RunE: func(c *cobra.Command, args []string) error {
		return runRun(c, args)
	},
}

// Execute runs the command tree; its return value becomes main's.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose diagnostic output")
	rootCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading from a file")
	rootCmd.Flags().BoolVar(&jsonDiagnostics, "json", false, "emit diagnostics as JSON instead of plain text")
	rootCmd.Flags().BoolVar(&traceExec, "trace", false, "trace execution to stderr")
}
