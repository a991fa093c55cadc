package grammar

import (
	"fmt"

	"github.com/calcwerk/apl360"
)

// TokType classifies lexer output.
type TokType int8

// Token types produced by the lexer. Operator tokens are already split into
// monadic and dyadic at lex time, so the parser never re-inspects context.
const (
	Undefined TokType = iota
	Number            // numeric literal, unparsed lexeme
	Ident             // identifier: letter followed by word characters
	Array             // array literal, carries its parsed value
	Monadic           // prefix operator
	Dyadic            // infix operator
	LeftParen
	RightParen
)

func (t TokType) String() string {
	switch t {
	case Number:
		return "Number"
	case Ident:
		return "Ident"
	case Array:
		return "Array"
	case Monadic:
		return "Monadic"
	case Dyadic:
		return "Dyadic"
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	}
	return "Undefined"
}

// OpCode enumerates the primitive operations. Dispatch on OpCode is by
// exhaustive switch, not by string lookup.
type OpCode int8

// Operator tags. A surface glyph may map to a monadic and a dyadic tag
// (| is abs or mod, ⌊ is floor or min, ⌈ is ceiling or max).
const (
	NoOp OpCode = iota
	// dyadic
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpPow
	OpMod
	OpMin
	OpMax
	OpEqual
	// monadic
	OpAbs
	OpSignum
	OpRecip
	OpFloor
	OpCeil
	OpLn
	OpExp
	OpIota
)

func (op OpCode) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "subtract"
	case OpMul:
		return "multiply"
	case OpDiv:
		return "divide"
	case OpPow:
		return "power"
	case OpMod:
		return "modulo"
	case OpMin:
		return "minimum"
	case OpMax:
		return "maximum"
	case OpEqual:
		return "equals"
	case OpAbs:
		return "absolute"
	case OpSignum:
		return "signum"
	case OpRecip:
		return "reciprocal"
	case OpFloor:
		return "floor"
	case OpCeil:
		return "ceiling"
	case OpLn:
		return "ln"
	case OpExp:
		return "exp"
	case OpIota:
		return "iota"
	}
	return "no-op"
}

// Token is one lexed unit of input.
type Token struct {
	Typ    TokType
	Lexeme string
	Op     OpCode        // set for Monadic and Dyadic tokens
	Val    apl360.Vector // set for Array tokens
}

func (t Token) String() string {
	if t.Typ == Array {
		return fmt.Sprintf("%s(%s)", t.Typ, t.Val)
	}
	return fmt.Sprintf("%s(%s)", t.Typ, t.Lexeme)
}

// opPair holds the monadic and dyadic readings of an operator lexeme.
// NoOp marks a reading the lexeme does not have.
type opPair struct {
	monadic OpCode
	dyadic  OpCode
}

// operatorKeywords are matched against the input before single operator
// characters, longest spelling first ('e' must come after 'exp').
var operatorKeywords = []string{
	"recip", "floor", "iota", "sign", "ceil", "abs", "mod", "exp", "ln",
	"**", "==", "⍟", "⍳", "⌊", "⌈", "|", "e",
}

// operatorChars are the single-character operator spellings. 'x' doubles
// as a multiplication sign, so no identifier can start with it.
const operatorChars = "+-×*x÷/%^|"

var opsForLexeme = map[string]opPair{
	"+":     {NoOp, OpAdd},
	"-":     {NoOp, OpSub},
	"×":     {NoOp, OpMul},
	"*":     {NoOp, OpMul},
	"x":     {NoOp, OpMul},
	"÷":     {NoOp, OpDiv},
	"/":     {NoOp, OpDiv},
	"^":     {NoOp, OpPow},
	"**":    {NoOp, OpPow},
	"%":     {NoOp, OpMod},
	"mod":   {NoOp, OpMod},
	"==":    {NoOp, OpEqual},
	"abs":   {OpAbs, NoOp},
	"sign":  {OpSignum, NoOp},
	"recip": {OpRecip, NoOp},
	"floor": {OpFloor, NoOp},
	"ceil":  {OpCeil, NoOp},
	"ln":    {OpLn, NoOp},
	"⍟":     {OpLn, NoOp},
	"e":     {OpExp, NoOp},
	"exp":   {OpExp, NoOp},
	"iota":  {OpIota, NoOp},
	"⍳":     {OpIota, NoOp},
	"|":     {OpAbs, OpMod},
	"⌊":     {OpFloor, OpMin},
	"⌈":     {OpCeil, OpMax},
}
