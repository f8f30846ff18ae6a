/*
Package fp collects small helpers for functional programming in Go.

The combinators in this package are deliberately tiny. They are meant to glue
together the predicates and transformers handed to the persistent data structures
of sub-package persistent.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package fp

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Identity returns its argument unchanged.
func Identity[T any](a T) T {
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// Not negates a predicate.
func Not[T any](pred func(T) bool) func(T) bool {
	return func(a T) bool {
		return !pred(a)
	}
}

// And returns a predicate which holds if both p and q hold. q is not
// evaluated if p fails.
func And[T any](p, q func(T) bool) func(T) bool {
	return func(a T) bool {
		return p(a) && q(a)
	}
}
