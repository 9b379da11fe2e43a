package lambda

import "fmt"

// Canonical returns t with bound variables renamed to x0, x1, ... in
// traversal order. Free variables keep their names; a canonical name that
// would collide with one of them is prefixed with the fresh-name marker
// until it is clear, so bound and free names stay disjoint. Two terms are
// alpha equivalent exactly when their canonical forms are structurally
// equal: alpha-equivalent terms share their free-variable set, so they
// dodge the same collisions and canonicalize identically.
func Canonical(t Term) Term {
	c := &canonicalizer{
		bindings: make(map[string]string),
		free:     FreeVars(t),
	}
	return c.walk(t)
}

// AlphaEq reports whether a and b are equal up to renaming of bound
// variables.
func AlphaEq(a, b Term) bool {
	return Canonical(a) == Canonical(b)
}

type canonicalizer struct {
	bindings map[string]string
	free     map[string]struct{}
	next     int
}

func (c *canonicalizer) canonName() string {
	name := fmt.Sprintf("x%d", c.next)
	c.next++
	for {
		if _, taken := c.free[name]; !taken {
			return name
		}
		name = freshMarker + name
	}
}

func (c *canonicalizer) walk(t Term) Term {
	switch v := t.(type) {
	case Var:
		if name, bound := c.bindings[v.Name]; bound {
			return Var{Name: name}
		}
		return v
	case Abs:
		canon := c.canonName()
		// shadowing: save the outer binding, if any
		old, had := c.bindings[v.Arg]
		c.bindings[v.Arg] = canon
		body := c.walk(v.Body)
		if had {
			c.bindings[v.Arg] = old
		} else {
			delete(c.bindings, v.Arg)
		}
		return Abs{Arg: canon, Body: body}
	case App:
		return App{Fun: c.walk(v.Fun), Arg: c.walk(v.Arg)}
	}
	return t
}
