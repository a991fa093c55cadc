package evaluator

import (
	"github.com/calcwerk/apl360"
	"github.com/calcwerk/apl360/grammar"
	"github.com/calcwerk/apl360/variables"
	"github.com/emirpasic/gods/stacks/linkedliststack"
)

// evalPostfix walks a postfix token stream left to right against an operand
// stack. Exactly one value must remain at the end; any other count means the
// stream was malformed.
func evalPostfix(postfix []grammar.Token, env *variables.Environment) (apl360.Value, error) {
	operands := linkedliststack.New()
	for _, t := range postfix {
		switch t.Typ {
		case grammar.Number:
			v, err := apl360.ParseNumber(t.Lexeme)
			if err != nil {
				return nil, err
			}
			operands.Push(v)
		case grammar.Array:
			operands.Push(t.Val)
		case grammar.Ident:
			v, ok := env.Lookup(t.Lexeme)
			if !ok {
				return nil, apl360.Errorf(apl360.ErrName, "undefined variable: %s", t.Lexeme)
			}
			operands.Push(v)
		case grammar.Monadic:
			v, err := popOperand(operands, t)
			if err != nil {
				return nil, err
			}
			r, err := applyMonadic(t.Op, v)
			if err != nil {
				return nil, err
			}
			operands.Push(r)
		case grammar.Dyadic:
			b, err := popOperand(operands, t)
			if err != nil {
				return nil, err
			}
			a, err := popOperand(operands, t)
			if err != nil {
				return nil, err
			}
			r, err := applyDyadic(t.Op, a, b)
			if err != nil {
				return nil, err
			}
			operands.Push(r)
		default:
			return nil, apl360.Errorf(apl360.ErrSyntax, "unexpected token in postfix stream: %s", t)
		}
	}
	if operands.Size() != 1 {
		return nil, apl360.Errorf(apl360.ErrSyntax, "malformed expression: %d value(s) left on stack", operands.Size())
	}
	top, _ := operands.Pop()
	return top.(apl360.Value), nil
}

// popOperand pops the top of the operand stack; an empty stack means an
// operator is short of operands.
func popOperand(operands *linkedliststack.Stack, t grammar.Token) (apl360.Value, error) {
	top, ok := operands.Pop()
	if !ok {
		return nil, apl360.Errorf(apl360.ErrSyntax, "missing operand for %q", t.Lexeme)
	}
	return top.(apl360.Value), nil
}

func applyMonadic(op grammar.OpCode, v apl360.Value) (apl360.Value, error) {
	switch op {
	case grammar.OpAbs:
		return apl360.Abs(v)
	case grammar.OpSignum:
		return apl360.Signum(v)
	case grammar.OpRecip:
		return apl360.Reciprocal(v)
	case grammar.OpFloor:
		return apl360.Floor(v)
	case grammar.OpCeil:
		return apl360.Ceiling(v)
	case grammar.OpLn:
		return apl360.Ln(v)
	case grammar.OpExp:
		return apl360.Exp(v)
	case grammar.OpIota:
		return apl360.Iota(v)
	}
	return nil, apl360.Errorf(apl360.ErrSyntax, "not a monadic operator: %s", op)
}

func applyDyadic(op grammar.OpCode, a, b apl360.Value) (apl360.Value, error) {
	switch op {
	case grammar.OpAdd:
		return apl360.Plus(a, b)
	case grammar.OpSub:
		return apl360.Minus(a, b)
	case grammar.OpMul:
		return apl360.Times(a, b)
	case grammar.OpDiv:
		return apl360.Divide(a, b)
	case grammar.OpPow:
		return apl360.Power(a, b)
	case grammar.OpMod:
		return apl360.Mod(a, b)
	case grammar.OpMin:
		return apl360.Min(a, b)
	case grammar.OpMax:
		return apl360.Max(a, b)
	case grammar.OpEqual:
		return apl360.Equal(a, b)
	}
	return nil, apl360.Errorf(apl360.ErrSyntax, "not a dyadic operator: %s", op)
}
