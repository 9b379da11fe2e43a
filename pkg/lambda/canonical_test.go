package lambda

import "testing"

func TestCanonicalRenamesBoundVariables(t *testing.T) {
	term, err := Parse("λa.λb.a c")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	got := Canonical(term)
	want := Abs{Arg: "x0", Body: Abs{Arg: "x1", Body: App{Fun: Var{Name: "x0"}, Arg: Var{Name: "c"}}}}
	if got != Term(want) {
		t.Errorf("Canonical(%s) = %s, want %s", term, got, want)
	}
}

func TestCanonicalKeepsBoundNamesOffFreeVariables(t *testing.T) {
	// A free variable literally named x0 must not be conflated with the
	// first canonical binder.
	term, err := Parse("λy.x0")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	got := Canonical(term)
	abs, ok := got.(Abs)
	if !ok {
		t.Fatalf("Canonical(%s) = %s, want an abstraction", term, got)
	}
	if abs.Arg == "x0" {
		t.Errorf("binder collided with the free x0: %s", got)
	}
	if abs.Body != (Var{Name: "x0"}) {
		t.Errorf("free variable was renamed: %s", got)
	}
}

func TestAlphaEq(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"renamed binders are equal", "λx.x", "λy.y", true},
		{"nested renames are equal", "λx.λy.x y", "λa.λb.a b", true},
		{"free variables must match", "λx.a", "λx.b", false},
		{"free and bound differ", "λx.x", "λx.y", false},
		{"structure must match", "λx.x", "λx.x x", false},
		{"shadowing is respected", "λx.λx.x", "λa.λb.b", true},
		{"free x0 is not a bound variable", "λy.x0", "λy.y", false},
		{"free x0 matches itself", "λa.x0", "λb.x0", true},
		{"free marked x0 is kept apart too", "λy._x0", "λy.y", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse(tt.a)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.a, err)
			}
			b, err := Parse(tt.b)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.b, err)
			}
			if got := AlphaEq(a, b); got != tt.want {
				t.Errorf("AlphaEq(%s, %s) = %v, want %v", a, b, got, tt.want)
			}
		})
	}
}
