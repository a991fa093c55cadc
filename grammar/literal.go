package grammar

import (
	"sync"

	"github.com/calcwerk/apl360"
	lex "github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Array-literal interiors ("1, 2.5 -3") are scanned by a small lexmachine
// scanner: runs of whitespace/commas separate pieces, every piece must be an
// integer or a float. A catch-all pattern outmatches the number pattern on
// malformed pieces, so errors can name the offending piece as a whole.

const (
	litNumber = iota + 1
	litBad
)

var literalLexer *lex.Lexer
var literalOnce sync.Once
var literalCompileErr error

func initLiteralLexer() {
	literalOnce.Do(func() {
		l := lex.NewLexer()
		l.Add([]byte(`( |\t|\n|\r|,)+`), skipPiece)
		l.Add([]byte(`-?[0-9]+(\.[0-9]+)?`), tokenPiece(litNumber))
		l.Add([]byte(`[^ \t\n\r,]+`), tokenPiece(litBad))
		literalCompileErr = l.Compile()
		literalLexer = l
	})
}

func skipPiece(*lex.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokenPiece(id int) lex.Action {
	return func(s *lex.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// ParseLiteral parses the interior of a bracketed or parenthesized array
// literal into an ordered vector. The first non-numeric piece fails the
// whole literal with a value error naming it.
func ParseLiteral(s string) (apl360.Vector, error) {
	initLiteralLexer()
	if literalCompileErr != nil {
		return nil, apl360.Errorf(apl360.ErrSyntax, "literal scanner unavailable: %v", literalCompileErr)
	}
	scanner, err := literalLexer.Scanner([]byte(s))
	if err != nil {
		return nil, apl360.Errorf(apl360.ErrValue, "invalid array literal %q", s)
	}
	var vec apl360.Vector
	for tok, err, eos := scanner.Next(); !eos; tok, err, eos = scanner.Next() {
		if err != nil {
			return nil, apl360.Errorf(apl360.ErrValue, "invalid array literal %q", s)
		}
		t := tok.(*lex.Token)
		piece := t.Value.(string)
		if t.Type == litBad {
			return nil, apl360.Errorf(apl360.ErrValue, "invalid literal element: %q", piece)
		}
		scalar, perr := apl360.ParseNumber(piece)
		if perr != nil {
			return nil, perr
		}
		vec = append(vec, scalar)
	}
	if len(vec) == 0 {
		return nil, apl360.Errorf(apl360.ErrValue, "empty array literal")
	}
	tracer().Debugf("array literal of %d element(s)", len(vec))
	return vec, nil
}
