package lambda

import "fmt"

// Term represents a lambda calculus term. It is a closed sum with exactly
// three cases: Var, Abs and App. Terms are immutable values; every
// transformation builds new Terms, and subterms are duplicated structurally
// rather than aliased for mutation.
type Term interface {
	String() string
}

// Var represents a variable occurrence, bound or free.
type Var struct {
	Name string
}

func (v Var) String() string {
	return v.Name
}

// Abs represents a single-parameter abstraction (lambda).
type Abs struct {
	Arg  string
	Body Term
}

func (a Abs) String() string {
	return fmt.Sprintf("(λ%s.%s)", a.Arg, a.Body)
}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (a App) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}
