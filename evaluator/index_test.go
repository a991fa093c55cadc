package evaluator

import (
	"testing"

	"github.com/calcwerk/apl360"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIndexAccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "apl360.eval")
	defer teardown()
	//
	intp := New()
	if _, err := intp.Assign("A", "10 × iota 5"); err != nil {
		t.Fatal(err)
	}
	for i, x := range []struct {
		input string
		want  string
	}{
		{input: "A[2]", want: "20"},
		{input: "A(2)", want: "20"},
		{input: "A[2] + 1", want: "21"},
		{input: "A[1+1]", want: "20"},
		{input: "A[2] + A[3]", want: "50"},
	} {
		v, err := intp.Evaluate(x.input)
		if err != nil {
			t.Errorf("test %d: %q: unexpected error: %v", i, x.input, err)
			continue
		}
		if v.String() != x.want {
			t.Errorf("test %d: %q evaluated to %s, want %s", i, x.input, v, x.want)
		}
	}
}

func TestNestedIndex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "apl360.eval")
	defer teardown()
	//
	intp := New()
	if _, err := intp.Assign("A", "10 × iota 5"); err != nil {
		t.Fatal(err)
	}
	if _, err := intp.Assign("B", "iota 3"); err != nil {
		t.Fatal(err)
	}
	// inner B[2] resolves to 2 first, then A[2]
	v, err := intp.Evaluate("A[B[2]]")
	if err != nil {
		t.Fatal(err)
	}
	if v.String() != "20" {
		t.Errorf("expected 20, got %s", v)
	}
}

func TestIndexErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "apl360.eval")
	defer teardown()
	//
	intp := New()
	if _, err := intp.Assign("A", "iota 3"); err != nil {
		t.Fatal(err)
	}
	if _, err := intp.Assign("S", "7"); err != nil {
		t.Fatal(err)
	}
	for i, x := range []struct {
		input string
		kind  apl360.ErrKind
	}{
		{input: "A[4]", kind: apl360.ErrIndex},
		{input: "A[0]", kind: apl360.ErrIndex},
		{input: "A[1÷2]", kind: apl360.ErrIndex},
		{input: "A[iota 2]", kind: apl360.ErrIndex},
		{input: "S[1]", kind: apl360.ErrIndex},
		{input: "Z[1]", kind: apl360.ErrName},
		{input: "A[X]", kind: apl360.ErrName},
		{input: "A[1÷0]", kind: apl360.ErrDomain},
	} {
		_, err := intp.Evaluate(x.input)
		if err == nil {
			t.Errorf("test %d: expected %q to fail", i, x.input)
			continue
		}
		if kind, ok := apl360.KindOf(err); !ok || kind != x.kind {
			t.Errorf("test %d: %q: expected %s error, got %v", i, x.input, x.kind, err)
		}
	}
}

func TestIndexDepthLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "apl360.eval")
	defer teardown()
	//
	intp := New()
	if _, err := intp.Assign("A", "iota 3"); err != nil {
		t.Fatal(err)
	}
	intp.SetMaxDepth(1)
	_, err := intp.Evaluate("A[1]")
	if err == nil {
		t.Fatal("expected index nesting to exceed the depth limit")
	}
	if kind, ok := apl360.KindOf(err); !ok || kind != apl360.ErrDepth {
		t.Errorf("expected a depth error, got %v", err)
	}
}
