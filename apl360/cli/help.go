package cli

import (
	"fmt"
	"io"

	"github.com/calcwerk/apl360/evaluator"
	"github.com/jedib0t/go-pretty/v6/table"
)

// operator help, kept in the order the operators are usually introduced
var monadicHelp = []struct{ op, spellings, help string }{
	{"abs", "| abs", "Absolute value"},
	{"sign", "sign", "Signum: -1, 0, 1"},
	{"recip", "recip", "Reciprocal: 1/x"},
	{"floor", "⌊ floor", "Floor value"},
	{"ceil", "⌈ ceil", "Ceiling value"},
	{"ln", "⍟ ln", "Natural logarithm"},
	{"exp", "e exp", "Exponential (e**x)"},
	{"iota", "⍳ iota", "Iota: 1..n"},
}

var dyadicHelp = []struct{ op, spellings, help string }{
	{"+", "+", "Addition"},
	{"-", "-", "Subtraction"},
	{"×", "× * x", "Multiplication"},
	{"÷", "÷ /", "Division"},
	{"**", "^ **", "Exponentiation"},
	{"mod", "% mod |", "Modulo"},
	{"⌊", "⌊", "Minimum"},
	{"⌈", "⌈", "Maximum"},
	{"==", "==", "Equality comparison"},
}

// displayOperators prints the operator tables, or the description of a
// single operator if one is named.
func displayOperators(w io.Writer, arg string) {
	if arg != "" {
		displayOperator(w, arg)
		return
	}
	io.WriteString(w, `
Enter an expression to evaluate it, or 'A = expression' to bind a variable.

  HELP [op] or ?     Show this message or operator help
  vars               List bound variables
  bye                Quit

Monadic (prefix) operators:

`)
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Operator", "Spellings", "Description"})
	for _, h := range monadicHelp {
		t.AppendRow(table.Row{h.op, h.spellings, h.help})
	}
	io.WriteString(w, t.Render())
	io.WriteString(w, "\n\nDyadic (infix) operators:\n\n")
	t = table.NewWriter()
	t.AppendHeader(table.Row{"Operator", "Spellings", "Description"})
	for _, h := range dyadicHelp {
		t.AppendRow(table.Row{h.op, h.spellings, h.help})
	}
	io.WriteString(w, t.Render())
	io.WriteString(w, "\n")
}

func displayOperator(w io.Writer, arg string) {
	found := false
	for _, h := range monadicHelp {
		if h.op == arg {
			fmt.Fprintf(w, "%s: %s\n", arg, h.help)
			found = true
		}
	}
	for _, h := range dyadicHelp {
		if h.op == arg {
			fmt.Fprintf(w, "%s: %s\n", arg, h.help)
			found = true
		}
	}
	if !found {
		fmt.Fprintf(w, "No help for '%s'\n", arg)
	}
}

// displayVariables prints the session's variable bindings as a table.
func displayVariables(w io.Writer, intp *evaluator.Interpreter) {
	env := intp.Environment()
	if env.Size() == 0 {
		io.WriteString(w, "(no variables bound)\n")
		return
	}
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Variable", "Value"})
	for _, name := range env.Names() {
		v, _ := env.Lookup(name)
		t.AppendRow(table.Row{name, v.String()})
	}
	io.WriteString(w, t.Render())
	io.WriteString(w, "\n")
}
