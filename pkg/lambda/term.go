package lambda

// FreeVars returns the set of identifiers that occur free in t, i.e. not
// under an abstraction binding the same name.
func FreeVars(t Term) map[string]struct{} {
	free := make(map[string]struct{})
	collectFree(t, free)
	return free
}

func collectFree(t Term, free map[string]struct{}) {
	switch v := t.(type) {
	case Var:
		free[v.Name] = struct{}{}
	case App:
		collectFree(v.Fun, free)
		collectFree(v.Arg, free)
	case Abs:
		inner := FreeVars(v.Body)
		delete(inner, v.Arg)
		for name := range inner {
			free[name] = struct{}{}
		}
	}
}

// freshMarker is prefixed onto a seed until the name is no longer free.
const freshMarker = "_"

// FreshName returns an identifier that is not free in t, derived
// deterministically from seed. The free-variable set is finite, so the
// loop terminates.
func FreshName(seed string, t Term) string {
	free := FreeVars(t)
	name := seed
	for {
		if _, taken := free[name]; !taken {
			return name
		}
		name = freshMarker + name
	}
}
