package grammar

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestScanSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "apl360.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		input string
		want  string
	}{
		{input: "2+3", want: "Number(2) Dyadic(+) Number(3)"},
		{input: "2 + 3 × 4", want: "Number(2) Dyadic(+) Number(3) Dyadic(×) Number(4)"},
		{input: "(2+3)*4", want: "LeftParen(() Number(2) Dyadic(+) Number(3) RightParen()) Dyadic(*) Number(4)"},
		{input: "iota 5", want: "Monadic(iota) Number(5)"},
		{input: "A+1", want: "Ident(A) Dyadic(+) Number(1)"},
		{input: "2**10", want: "Number(2) Dyadic(**) Number(10)"},
		{input: "1==2", want: "Number(1) Dyadic(==) Number(2)"},
		{input: "3x4", want: "Number(3) Dyadic(x) Number(4)"},
		{input: "e 1", want: "Monadic(e) Number(1)"},
	} {
		tokens, err := Tokenize(x.input)
		if err != nil {
			t.Errorf("test %d: unexpected error: %v", i, err)
			continue
		}
		if s := tokenString(tokens); s != x.want {
			t.Errorf("test %d: %q lexed as\n  %s\nwant\n  %s", i, x.input, s, x.want)
		}
	}
}

func TestScanKeywordPriority(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "apl360.grammar")
	defer teardown()
	//
	// operator keywords outrank identifiers, even as prefixes
	tokens, err := Tokenize("absolute")
	if err != nil {
		t.Fatal(err)
	}
	if s := tokenString(tokens); s != "Monadic(abs) Ident(olute)" {
		t.Errorf("expected 'abs' to split off, got %s", s)
	}
}

func TestScanAmbiguousOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "apl360.grammar")
	defer teardown()
	//
	for i, x := range []struct {
		input string
		want  string
	}{
		{input: "|-5", want: "Monadic(|) Number(-5)"},
		{input: "7|3", want: "Number(7) Dyadic(|) Number(3)"},
		{input: "(|-5)+1", want: "LeftParen(() Monadic(|) Number(-5) RightParen()) Dyadic(+) Number(1)"},
		{input: "⌊2.7", want: "Monadic(⌊) Number(2.7)"},
		{input: "3⌊4", want: "Number(3) Dyadic(⌊) Number(4)"},
		{input: "⌈2.1", want: "Monadic(⌈) Number(2.1)"},
		{input: "A⌈4", want: "Ident(A) Dyadic(⌈) Number(4)"},
		{input: "2-3", want: "Number(2) Dyadic(-) Number(3)"},
		{input: "2+-3", want: "Number(2) Dyadic(+) Number(-3)"},
		{input: "-5", want: "Number(-5)"},
	} {
		tokens, err := Tokenize(x.input)
		if err != nil {
			t.Errorf("test %d: unexpected error: %v", i, err)
			continue
		}
		if s := tokenString(tokens); s != x.want {
			t.Errorf("test %d: %q lexed as\n  %s\nwant\n  %s", i, x.input, s, x.want)
		}
	}
}

func TestScanArrayLiterals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "apl360.grammar")
	defer teardown()
	//
	tokens, err := Tokenize("[1, 2.5, -3]")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 || tokens[0].Typ != Array {
		t.Fatalf("expected a single array token, got %s", tokenString(tokens))
	}
	if s := tokens[0].Val.String(); s != "[1, 2.5, -3]" {
		t.Errorf("unexpected array value: %s", s)
	}
	// a parenthesized group of bare numbers is an array literal too
	tokens, err = Tokenize("(1 2 3)")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 || tokens[0].Typ != Array || len(tokens[0].Val) != 3 {
		t.Errorf("expected (1 2 3) to scan as one array, got %s", tokenString(tokens))
	}
}

func TestScanLiteralGroupRejectsExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "apl360.grammar")
	defer teardown()
	//
	// "(1-2)" is all literal characters, so it is parsed as an array
	// and "1-2" is not a valid element
	if _, err := Tokenize("(1-2)"); err == nil {
		t.Error("expected (1-2) to be rejected as an array literal")
	}
}

func TestScanErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "apl360.grammar")
	defer teardown()
	//
	for i, input := range []string{
		"[1, 2",
		"(1+2",
		"2 @ 3",
		"[1, b, 3]",
	} {
		if _, err := Tokenize(input); err == nil {
			t.Errorf("test %d: expected %q to be rejected", i, input)
		}
	}
}

// --- Helpers ---------------------------------------------------------------

func tokenString(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		if t.Typ == Array {
			parts[i] = "Array" + t.Val.String()
		} else {
			parts[i] = t.String()
		}
	}
	return strings.Join(parts, " ")
}
