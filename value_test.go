package apl360

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseNumber(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "apl360")
	defer teardown()
	//
	for i, x := range []struct {
		s    string
		want string
		fail bool
	}{
		{s: "1", want: "1"},
		{s: "-5", want: "-5"},
		{s: "3.50", want: "3.5"},
		{s: "0.25", want: "0.25"},
		{s: "1-2", fail: true},
		{s: ".5", fail: true},
		{s: "1.", fail: true},
		{s: "abc", fail: true},
		{s: "", fail: true},
	} {
		v, err := ParseNumber(x.s)
		if x.fail {
			if err == nil {
				t.Errorf("test %d: expected %q to be rejected", i, x.s)
			}
			continue
		}
		if err != nil {
			t.Errorf("test %d: unexpected error: %v", i, err)
		} else if v.String() != x.want {
			t.Errorf("test %d: expected %s, got %s", i, x.want, v)
		}
	}
}

func TestScalarIntegerForm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "apl360")
	defer teardown()
	//
	a := num(t, "2")
	b := num(t, "3")
	r, err := Plus(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if r.String() != "5" {
		t.Errorf("integer arithmetic should print without a fraction, got %s", r)
	}
	if s, ok := r.(Scalar); !ok || !s.IsInteger() {
		t.Errorf("expected an integral scalar, got %v", r)
	}
}

func TestVectorRendering(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "apl360")
	defer teardown()
	//
	v := vec(t, "1", "2.5", "-3")
	if v.String() != "[1, 2.5, -3]" {
		t.Errorf("unexpected vector rendering: %s", v)
	}
	if v.Type() != VectorType {
		t.Errorf("expected VectorType, got %v", v.Type())
	}
}

func TestFromFloatRejectsNonFinite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "apl360")
	defer teardown()
	//
	inf := 1.0
	for i := 0; i < 400; i++ {
		inf *= 10
	}
	if _, err := FromFloat(inf); err == nil {
		t.Error("expected infinite float to be rejected")
	}
}

func TestErrorKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "apl360")
	defer teardown()
	//
	err := Errorf(ErrDomain, "division by zero")
	if kind, ok := KindOf(err); !ok || kind != ErrDomain {
		t.Errorf("expected domain error kind, got %v", err)
	}
	if _, ok := KindOf(nil); ok {
		t.Error("nil should not carry an error kind")
	}
}
