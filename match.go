package fp

import "fmt"

// --- Pair ------------------------------------------------------------------

// Pair is a tuple of two values of possibly different types.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair (x, y).
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns both components of p.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

// Swap returns (Right, Left).
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{p.Right, p.Left}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Left, p.Right)
}
