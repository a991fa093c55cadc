package variables

import (
	"testing"

	"github.com/calcwerk/apl360"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEnvironment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "apl360.vars")
	defer teardown()
	//
	env := New()
	if env.Size() != 0 {
		t.Errorf("new environment should be empty, has %d bindings", env.Size())
	}
	if _, ok := env.Lookup("A"); ok {
		t.Error("lookup in an empty environment should fail")
	}
	env.Bind("A", apl360.FromInt(7))
	v, ok := env.Lookup("A")
	if !ok {
		t.Fatal("expected A to be bound")
	}
	if v.String() != "7" {
		t.Errorf("expected A = 7, got %s", v)
	}
	env.Bind("A", apl360.FromInt(9))
	if v, _ := env.Lookup("A"); v.String() != "9" {
		t.Errorf("rebinding should overwrite, A is %s", v)
	}
	if env.Size() != 1 {
		t.Errorf("expected one binding, have %d", env.Size())
	}
}

func TestEnvironmentNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "apl360.vars")
	defer teardown()
	//
	env := New()
	env.Bind("zz", apl360.FromInt(1))
	env.Bind("A", apl360.FromInt(2))
	env.Bind("mid", apl360.FromInt(3))
	names := env.Names()
	if len(names) != 3 || names[0] != "A" || names[1] != "mid" || names[2] != "zz" {
		t.Errorf("expected sorted names, got %v", names)
	}
}
