package lambda

// Church-encoded combinators, built by direct construction rather than
// parsed from source.
var (
	// Identity is λx.x.
	Identity Term = Abs{Arg: "x", Body: Var{Name: "x"}}

	// True selects its first argument: λx.λy.x.
	True Term = Abs{Arg: "x", Body: Abs{Arg: "y", Body: Var{Name: "x"}}}

	// False selects its second argument: λx.λy.y.
	False Term = Abs{Arg: "x", Body: Abs{Arg: "y", Body: Var{Name: "y"}}}

	// Not swaps the branches of a boolean: λp.λa.λb.p b a.
	Not Term = Abs{Arg: "p", Body: Abs{Arg: "a", Body: Abs{Arg: "b", Body: App{
		Fun: App{Fun: Var{Name: "p"}, Arg: Var{Name: "b"}},
		Arg: Var{Name: "a"},
	}}}}

	// And is λp.λq.p q p.
	And Term = Abs{Arg: "p", Body: Abs{Arg: "q", Body: App{
		Fun: App{Fun: Var{Name: "p"}, Arg: Var{Name: "q"}},
		Arg: Var{Name: "p"},
	}}}

	// Or is λp.λq.p p q.
	Or Term = Abs{Arg: "p", Body: Abs{Arg: "q", Body: App{
		Fun: App{Fun: Var{Name: "p"}, Arg: Var{Name: "p"}},
		Arg: Var{Name: "q"},
	}}}

	// Omega is the divergent term (λx.x x)(λx.x x).
	Omega Term = App{Fun: selfApply, Arg: selfApply}
)

var selfApply Term = Abs{Arg: "x", Body: App{Fun: Var{Name: "x"}, Arg: Var{Name: "x"}}}
