package evaluator

import (
	"regexp"

	"github.com/calcwerk/apl360"
	"github.com/calcwerk/apl360/grammar"
	"github.com/calcwerk/apl360/variables"
)

// DefaultMaxDepth bounds the recursion of nested index expressions, which are
// evaluated by re-entering the pipeline.
const DefaultMaxDepth = 32

// Interpreter evaluates expressions against a session-scoped variable
// environment. It is not safe for concurrent use.
type Interpreter struct {
	env      *variables.Environment
	maxDepth int
}

// New creates an interpreter with an empty environment.
func New() *Interpreter {
	return &Interpreter{
		env:      variables.New(),
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth overrides the nesting limit for index sub-expressions.
func (intp *Interpreter) SetMaxDepth(n int) {
	if n > 0 {
		intp.maxDepth = n
	}
}

// Environment exposes the interpreter's variable environment.
func (intp *Interpreter) Environment() *variables.Environment {
	return intp.env
}

// Evaluate runs the full pipeline on one expression: index substitution,
// lexing, postfix conversion and stack evaluation.
func (intp *Interpreter) Evaluate(text string) (apl360.Value, error) {
	return intp.eval(text, 0)
}

func (intp *Interpreter) eval(text string, depth int) (apl360.Value, error) {
	if depth >= intp.maxDepth {
		return nil, apl360.Errorf(apl360.ErrDepth, "expression nesting exceeds %d levels", intp.maxDepth)
	}
	resolved, err := intp.resolveIndexes(text, depth)
	if err != nil {
		return nil, err
	}
	tokens, err := grammar.Tokenize(resolved)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, apl360.Errorf(apl360.ErrSyntax, "empty expression")
	}
	tracer().Debugf("evaluating %d token(s)", len(tokens))
	if v, ok := flattenListing(tokens); ok {
		return v, nil
	}
	postfix, err := grammar.ToPostfix(tokens)
	if err != nil {
		return nil, err
	}
	return evalPostfix(postfix, intp.env)
}

// flattenListing recognizes a comma separated listing of numbers and arrays,
// such as '1, 2, 3' or '1, [2, 3]', and folds it into one flat vector. A
// single operand is left alone so that scalars stay scalars.
func flattenListing(tokens []grammar.Token) (apl360.Value, bool) {
	if len(tokens) < 2 {
		return nil, false
	}
	for _, t := range tokens {
		if t.Typ != grammar.Number && t.Typ != grammar.Array {
			return nil, false
		}
	}
	var flat apl360.Vector
	for _, t := range tokens {
		switch t.Typ {
		case grammar.Number:
			s, err := apl360.ParseNumber(t.Lexeme)
			if err != nil {
				return nil, false
			}
			flat = append(flat, s)
		case grammar.Array:
			flat = append(flat, t.Val...)
		}
	}
	return flat, true
}

var identPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Assign evaluates an expression and binds the result to name. The binding
// happens only after successful evaluation, so a failed assignment leaves the
// environment untouched.
func (intp *Interpreter) Assign(name string, text string) (apl360.Value, error) {
	if !identPattern.MatchString(name) {
		return nil, apl360.Errorf(apl360.ErrName, "invalid variable name: %q", name)
	}
	v, err := intp.Evaluate(text)
	if err != nil {
		return nil, err
	}
	intp.env.Bind(name, v)
	return v, nil
}

// Lookup returns the value bound to name, if any.
func (intp *Interpreter) Lookup(name string) (apl360.Value, bool) {
	return intp.env.Lookup(name)
}
