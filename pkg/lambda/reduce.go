package lambda

import "errors"

// ErrMaxSteps is returned by ReduceWithLimit when the step budget is
// exhausted before a normal form is reached.
var ErrMaxSteps = errors.New("lambda: maximum reduction steps exceeded")

// Stats counts the work performed by a reduction.
type Stats struct {
	Betas uint64
}

// Substitute returns target with every free occurrence of name replaced by
// replacement, renaming binders in target as needed so that free variables
// of replacement are never captured.
func Substitute(name string, replacement, target Term) Term {
	switch v := target.(type) {
	case Var:
		if v.Name == name {
			return replacement
		}
		return v
	case App:
		return App{
			Fun: Substitute(name, replacement, v.Fun),
			Arg: Substitute(name, replacement, v.Arg),
		}
	case Abs:
		if v.Arg == name {
			// The binder shadows name; substitution stops here.
			return v
		}
		if _, captured := FreeVars(replacement)[v.Arg]; captured {
			// Rename the binder first, then substitute into the
			// renamed body. The ordering matters: the renamed
			// binder can no longer capture replacement's free
			// variables.
			fresh := FreshName("x", replacement)
			renamed := Substitute(v.Arg, Var{Name: fresh}, v.Body)
			return Abs{Arg: fresh, Body: Substitute(name, replacement, renamed)}
		}
		return Abs{Arg: v.Arg, Body: Substitute(name, replacement, v.Body)}
	}
	return target
}

// Reduce rewrites t to its normal form under the fixed strategy:
//
//   - an application reduces its function side first; if that yields an
//     abstraction, the argument is substituted as-is (never pre-reduced,
//     and possibly duplicated or discarded unevaluated) and the result is
//     reduced further;
//   - an application whose function side does not reduce to an abstraction
//     is returned with its argument untouched; reduction does not descend
//     into stuck arguments;
//   - abstractions are reduced under the binder;
//   - variables are already normal.
//
// Reduce does not return for divergent terms such as (λx.x x)(λx.x x);
// use ReduceWithLimit to impose a budget.
func Reduce(t Term) Term {
	result, _ := reduce(t, &budget{})
	return result
}

// ReduceWithLimit is Reduce under a step budget. Each beta contraction
// counts as one step; exceeding a non-zero maxSteps aborts with
// ErrMaxSteps. A maxSteps of zero means no limit.
func ReduceWithLimit(t Term, maxSteps uint64) (Term, Stats, error) {
	b := &budget{max: maxSteps}
	result, err := reduce(t, b)
	return result, Stats{Betas: b.betas}, err
}

type budget struct {
	max   uint64
	betas uint64
}

func (b *budget) step() error {
	b.betas++
	if b.max > 0 && b.betas > b.max {
		return ErrMaxSteps
	}
	return nil
}

func reduce(t Term, b *budget) (Term, error) {
	switch v := t.(type) {
	case Var:
		return v, nil
	case Abs:
		body, err := reduce(v.Body, b)
		if err != nil {
			return nil, err
		}
		return Abs{Arg: v.Arg, Body: body}, nil
	case App:
		fun, err := reduce(v.Fun, b)
		if err != nil {
			return nil, err
		}
		abs, ok := fun.(Abs)
		if !ok {
			// Stuck application: the argument is left as-is.
			return App{Fun: fun, Arg: v.Arg}, nil
		}
		if err := b.step(); err != nil {
			return nil, err
		}
		return reduce(Substitute(abs.Arg, v.Arg, abs.Body), b)
	}
	return t, nil
}
