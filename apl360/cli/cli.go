package cli

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/calcwerk/apl360"
	"github.com/calcwerk/apl360/apl360/ui/termui"
	"github.com/calcwerk/apl360/evaluator"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "apl360",
	Short: "A calculator for a small APL-derived expression language",
	Long: `Welcome to APL360 V0.1 (experimental)

APL360 evaluates expressions of a small APL-derived language: scalars and
vectors, monadic and dyadic operators with APL glyphs or ASCII spellings,
session variables and 1-based indexing.

APL360 is able to run in interactive mode or evaluate one or more expressions
in batch-mode. If run in interactive mode, it will prompt for user input in a
terminal REPL.

`,
	Run: runCalcCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by apl360.main().
func Execute() {
	if rootCmd.Execute() != nil {
		apl360.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Force run in interactive mode")
	rootCmd.PersistentFlags().StringArrayP("evaluate", "e", nil, "Evaluate expression and print the result")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
}

func runCalcCmd(cmd *cobra.Command, args []string) {
	tracing.Infof("apl360 calculator called")
	intp := evaluator.New()
	if d := apl360.Configuration.Int("eval.maxdepth"); d > 0 {
		intp.SetMaxDepth(d)
	}
	exprs, _ := cmd.PersistentFlags().GetStringArray("evaluate")
	exprs = append(exprs, args...)
	interactive, _ := cmd.PersistentFlags().GetBool("interactive")
	if len(exprs) > 0 {
		batch(cmd, intp, exprs)
		if !interactive {
			apl360.Exit(0)
		}
	}
	repl := &calcREPL{intp: intp}
	repl.BaseREPL = termui.NewBaseREPL("apl360", "0.1 experimental")
	repl.Interpreter = repl
	repl.Helper = func(w io.Writer) {
		displayOperators(w, "")
	}
	repl.Prompt(true)
}

// batch evaluates expressions given on the command line, one result per line.
func batch(cmd *cobra.Command, intp *evaluator.Interpreter, exprs []string) {
	for _, expr := range exprs {
		v, err := interpretLine(intp, expr)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err.Error())
			apl360.Exit(1)
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}
}

// calcREPL runs expressions from the terminal against one interpreter
// session.
type calcREPL struct {
	*termui.BaseREPL
	intp *evaluator.Interpreter
}

// assignPattern splits 'name = expression'. A '==' is a comparison, not an
// assignment.
var assignPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_]*)\s*=([^=].*)?$`)

func (repl *calcREPL) InterpretCommand(command string) {
	command = strings.Trim(command, "\x00")
	stdout, stderr := repl.Outputs()
	if handled := repl.statement(command, stdout); handled {
		return
	}
	v, err := interpretLine(repl.intp, command)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err.Error())
		return
	}
	fmt.Fprintln(stdout, v)
}

// statement handles the administrative statements HELP, ? and vars.
func (repl *calcREPL) statement(command string, out io.Writer) bool {
	words := strings.Fields(command)
	if len(words) == 0 {
		return true
	}
	switch strings.ToLower(words[0]) {
	case "help", "?":
		arg := ""
		if len(words) > 1 {
			arg = words[1]
		}
		displayOperators(out, arg)
		return true
	case "vars":
		displayVariables(out, repl.intp)
		return true
	}
	return false
}

// interpretLine evaluates one line of input, binding a variable if the line
// is an assignment.
func interpretLine(intp *evaluator.Interpreter, line string) (apl360.Value, error) {
	if m := assignPattern.FindStringSubmatch(line); m != nil {
		name := m[1]
		expr := strings.TrimSpace(m[2])
		if expr == "" {
			return nil, apl360.Errorf(apl360.ErrSyntax, "empty expression")
		}
		tracer().P("var", name).Debugf("assignment")
		return intp.Assign(name, expr)
	}
	return intp.Evaluate(line)
}
