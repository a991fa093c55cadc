package grammar

import (
	"github.com/calcwerk/apl360"
	"github.com/emirpasic/gods/stacks/linkedliststack"
)

// Operator precedence, higher binds tighter. Monadic operators sit above
// everything and are pushed unconditionally: they bind to whatever result
// comes next. Dyadic min/max share the multiplicative level, between the
// additive and exponentiation levels.
func precedence(t Token) int {
	if t.Typ == Monadic {
		return 7
	}
	switch t.Op {
	case OpPow:
		return 6
	case OpMul, OpDiv, OpMod, OpMin, OpMax:
		return 5
	case OpAdd, OpSub:
		return 4
	case OpEqual:
		return 3
	}
	return 0
}

// ToPostfix converts a token stream into postfix (RPN) order using the
// shunting-yard algorithm. All dyadic operators associate left-to-right:
// an incoming operator pops operators of precedence >= its own. Unbalanced
// parentheses are a syntax error.
func ToPostfix(tokens []Token) ([]Token, error) {
	ops := linkedliststack.New()
	output := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		switch t.Typ {
		case Number, Array, Ident:
			output = append(output, t)
		case Monadic:
			ops.Push(t)
		case Dyadic:
			for {
				top, ok := ops.Peek()
				if !ok {
					break
				}
				tt := top.(Token)
				if tt.Typ == LeftParen || precedence(tt) < precedence(t) {
					break
				}
				ops.Pop()
				output = append(output, tt)
			}
			ops.Push(t)
		case LeftParen:
			ops.Push(t)
		case RightParen:
			matched := false
			for !matched {
				top, ok := ops.Pop()
				if !ok {
					return nil, apl360.Errorf(apl360.ErrSyntax, "unmatched ')'")
				}
				tt := top.(Token)
				if tt.Typ == LeftParen {
					matched = true
				} else {
					output = append(output, tt)
				}
			}
		default:
			return nil, apl360.Errorf(apl360.ErrSyntax, "invalid token placement: %s", t)
		}
	}
	for {
		top, ok := ops.Pop()
		if !ok {
			break
		}
		tt := top.(Token)
		if tt.Typ == LeftParen {
			return nil, apl360.Errorf(apl360.ErrSyntax, "unclosed '('")
		}
		output = append(output, tt)
	}
	tracer().Debugf("postfix stream of %d token(s)", len(output))
	return output, nil
}
