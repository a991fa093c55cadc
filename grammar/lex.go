package grammar

import (
	"strings"
	"unicode"

	"github.com/calcwerk/apl360"
)

// operator marks a not-yet-disambiguated operator token during scanning.
// It never appears in the stream Tokenize returns.
const operator TokType = -1

// Tokenize scans one line of input into a typed token stream. Scanning is a
// character-by-character pass; a second pass settles the monadic/dyadic
// reading of ambiguous operators and folds a prefix minus into a following
// number literal.
func Tokenize(input string) ([]Token, error) {
	raw, err := scan(input)
	if err != nil {
		return nil, err
	}
	tokens, err := retag(raw)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("lexed %d token(s) from %q", len(tokens), input)
	return tokens, nil
}

// scan produces the raw token sequence. Rule order: separators, brackets,
// parens, operator keywords (longest spelling first), single operator
// characters, numbers, identifiers. Keywords outrank identifiers even as
// prefixes, so e.g. "absolute" scans as 'abs' + "olute".
func scan(input string) ([]Token, error) {
	runes := []rune(input)
	var raw []Token
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r) || r == ',':
			i++
		case r == '[':
			end := indexOfRune(runes, ']', i+1)
			if end < 0 {
				return nil, apl360.Errorf(apl360.ErrSyntax, "unclosed '['")
			}
			vec, err := ParseLiteral(string(runes[i+1 : end]))
			if err != nil {
				return nil, err
			}
			raw = append(raw, Token{Typ: Array, Lexeme: string(runes[i : end+1]), Val: vec})
			i = end + 1
		case r == '(':
			end, err := matchParen(runes, i)
			if err != nil {
				return nil, err
			}
			interior := string(runes[i+1 : end])
			if isLiteralContent(interior) {
				vec, err := ParseLiteral(interior)
				if err != nil {
					return nil, err
				}
				raw = append(raw, Token{Typ: Array, Lexeme: string(runes[i : end+1]), Val: vec})
				i = end + 1
			} else {
				raw = append(raw, Token{Typ: LeftParen, Lexeme: "("})
				i++
			}
		case r == ')':
			raw = append(raw, Token{Typ: RightParen, Lexeme: ")"})
			i++
		default:
			if kw := matchKeyword(runes[i:]); kw != "" {
				raw = append(raw, Token{Typ: operator, Lexeme: kw})
				i += len([]rune(kw))
			} else if strings.ContainsRune(operatorChars, r) {
				raw = append(raw, Token{Typ: operator, Lexeme: string(r)})
				i++
			} else if unicode.IsDigit(r) {
				lexeme, next := scanNumber(runes, i)
				raw = append(raw, Token{Typ: Number, Lexeme: lexeme})
				i = next
			} else if isIdentStart(r) {
				lexeme, next := scanIdent(runes, i)
				raw = append(raw, Token{Typ: Ident, Lexeme: lexeme})
				i = next
			} else {
				return nil, apl360.Errorf(apl360.ErrSyntax, "unknown character: %q", r)
			}
		}
	}
	return raw, nil
}

// retag settles operator ambiguity. '|' is monadic exactly when it opens the
// stream or directly follows '(' (the decision the parser relies on); '⌊' and
// '⌈' are dyadic exactly when the previous token can be a left operand. A '-'
// in prefix position followed by a number becomes part of that number.
func retag(raw []Token) ([]Token, error) {
	tokens := make([]Token, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		t := raw[i]
		if t.Typ != operator {
			tokens = append(tokens, t)
			continue
		}
		var prev *Token
		if len(tokens) > 0 {
			prev = &tokens[len(tokens)-1]
		}
		if t.Lexeme == "-" && (prev == nil || !operandLike(*prev)) &&
			i+1 < len(raw) && raw[i+1].Typ == Number {
			tokens = append(tokens, Token{Typ: Number, Lexeme: "-" + raw[i+1].Lexeme})
			i++
			continue
		}
		pair, ok := opsForLexeme[t.Lexeme]
		if !ok {
			return nil, apl360.Errorf(apl360.ErrSyntax, "unknown operator: %q", t.Lexeme)
		}
		typ, op := disambiguate(t.Lexeme, pair, prev)
		tokens = append(tokens, Token{Typ: typ, Lexeme: t.Lexeme, Op: op})
	}
	return tokens, nil
}

func disambiguate(lexeme string, pair opPair, prev *Token) (TokType, OpCode) {
	switch {
	case pair.dyadic == NoOp:
		return Monadic, pair.monadic
	case pair.monadic == NoOp:
		return Dyadic, pair.dyadic
	case lexeme == "|":
		if prev == nil || prev.Typ == LeftParen {
			return Monadic, pair.monadic
		}
		return Dyadic, pair.dyadic
	default: // ⌊ and ⌈
		if prev != nil && operandLike(*prev) {
			return Dyadic, pair.dyadic
		}
		return Monadic, pair.monadic
	}
}

// operandLike reports whether a token can end an operand, i.e. whether an
// operator directly after it reads as infix.
func operandLike(t Token) bool {
	switch t.Typ {
	case Number, Array, Ident, RightParen:
		return true
	}
	return false
}

func matchKeyword(rest []rune) string {
	s := string(rest)
	for _, kw := range operatorKeywords {
		if strings.HasPrefix(s, kw) {
			return kw
		}
	}
	return ""
}

func indexOfRune(runes []rune, r rune, from int) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == r {
			return i
		}
	}
	return -1
}

// matchParen returns the index of the ')' matching the '(' at start,
// counting nested depth.
func matchParen(runes []rune, start int) (int, error) {
	depth := 0
	for i := start; i < len(runes); i++ {
		switch runes[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, apl360.Errorf(apl360.ErrSyntax, "unclosed '('")
}

// isLiteralContent reports whether a parenthesized group consists purely of
// numeric/whitespace/comma content, in which case the whole group is an
// inline array literal rather than precedence grouping.
func isLiteralContent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) && r != '.' && r != '-' && r != ',' {
			return false
		}
	}
	return true
}

func scanNumber(runes []rune, start int) (string, int) {
	i := start
	for i < len(runes) && unicode.IsDigit(runes[i]) {
		i++
	}
	if i+1 < len(runes) && runes[i] == '.' && unicode.IsDigit(runes[i+1]) {
		i++
		for i < len(runes) && unicode.IsDigit(runes[i]) {
			i++
		}
	}
	return string(runes[start:i]), i
}

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r) || r == '_'
}

func scanIdent(runes []rune, start int) (string, int) {
	i := start + 1
	for i < len(runes) && isIdentPart(runes[i]) {
		i++
	}
	return string(runes[start:i]), i
}
