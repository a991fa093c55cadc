package evaluator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/calcwerk/apl360"
)

// Index access is resolved by textual substitution before lexing: each
// indexed reference is replaced by the rendering of the element it selects.
// Bracket indexes may hold arbitrary sub-expressions and may nest; they are
// rewritten innermost first until no bracket remains.

// bracketIndex matches an innermost A[...] reference, i.e. one whose index
// expression contains no further brackets.
var bracketIndex = regexp.MustCompile(`([A-Za-z][A-Za-z0-9_]*)\[([^\[\]]+)\]`)

// callIndex matches the call-style sugar A(3), with a plain integer index.
var callIndex = regexp.MustCompile(`([A-Za-z][A-Za-z0-9_]*)\(([0-9]+)\)`)

// maxIndexPasses caps the substitution loop; each pass removes at least one
// bracket pair, so the cap is only hit on pathological input.
const maxIndexPasses = 100

func (intp *Interpreter) resolveIndexes(text string, depth int) (string, error) {
	for pass := 0; pass < maxIndexPasses; pass++ {
		loc := bracketIndex.FindStringSubmatchIndex(text)
		if loc == nil {
			break
		}
		name := text[loc[2]:loc[3]]
		sub := text[loc[4]:loc[5]]
		idx, err := intp.eval(sub, depth+1)
		if err != nil {
			return "", err
		}
		elem, err := intp.elementAt(name, idx)
		if err != nil {
			return "", err
		}
		tracer().P("var", name).Debugf("index [%s] -> %s", strings.TrimSpace(sub), elem)
		text = text[:loc[0]] + elem.String() + text[loc[1]:]
	}
	for pass := 0; pass < maxIndexPasses; pass++ {
		loc := callIndex.FindStringSubmatchIndex(text)
		if loc == nil {
			break
		}
		name := text[loc[2]:loc[3]]
		n, err := strconv.Atoi(text[loc[4]:loc[5]])
		if err != nil {
			return "", apl360.Errorf(apl360.ErrIndex, "invalid index: %s", text[loc[4]:loc[5]])
		}
		elem, err := intp.elementAt(name, apl360.FromInt(int64(n)))
		if err != nil {
			return "", err
		}
		text = text[:loc[0]] + elem.String() + text[loc[1]:]
	}
	return text, nil
}

// elementAt selects the 1-based element idx of the vector bound to name.
func (intp *Interpreter) elementAt(name string, idx apl360.Value) (apl360.Value, error) {
	v, ok := intp.env.Lookup(name)
	if !ok {
		return nil, apl360.Errorf(apl360.ErrName, "undefined variable: %s", name)
	}
	vec, ok := v.(apl360.Vector)
	if !ok {
		return nil, apl360.Errorf(apl360.ErrIndex, "%s is not a vector", name)
	}
	s, ok := idx.(apl360.Scalar)
	if !ok || !s.IsInteger() {
		return nil, apl360.Errorf(apl360.ErrIndex, "index into %s is not an integer", name)
	}
	n := s.Decimal().IntPart()
	if n < 1 || n > int64(len(vec)) {
		return nil, apl360.Errorf(apl360.ErrIndex, "index %d out of range for %s (length %d)", n, name, len(vec))
	}
	return vec[n-1], nil
}
