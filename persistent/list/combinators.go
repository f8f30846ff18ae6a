package list

import (
	"github.com/linkedfp/fp"
	"github.com/linkedfp/fp/maybe"
)

// Predicate is a function type to test elements of a list.
// Any func(E) bool may be used where a Predicate is expected.
type Predicate[E any] func(E) bool

// Filter returns a list of the elements of l for which pred holds, in their
// original order. pred is called exactly once per element, in order.
func (l List[E]) Filter(pred Predicate[E]) List[E] {
	var elems []E
	for n := l.head; n != nil; n = n.next {
		if pred(n.value) {
			elems = append(elems, n.value)
		}
	}
	return FromSlice(elems)
}

// Partition splits l into the elements satisfying pred and the rest.
// Both lists retain the original order.
func (l List[E]) Partition(pred Predicate[E]) (in List[E], out List[E]) {
	var yes, no []E
	for n := l.head; n != nil; n = n.next {
		if pred(n.value) {
			yes = append(yes, n.value)
		} else {
			no = append(no, n.value)
		}
	}
	return FromSlice(yes), FromSlice(no)
}

// Find returns the first element satisfying pred, or Nothing.
func (l List[E]) Find(pred Predicate[E]) maybe.Maybe[E] {
	for n := l.head; n != nil; n = n.next {
		if pred(n.value) {
			return maybe.Just(n.value)
		}
	}
	return maybe.Nothing[E]()
}

// Any is true if pred holds for at least one element of l.
func (l List[E]) Any(pred Predicate[E]) bool {
	return l.Find(pred).IsJust()
}

// All is true if pred holds for every element of l. All is true
// for the empty list.
func (l List[E]) All(pred Predicate[E]) bool {
	return !l.Any(Predicate[E](fp.Not[E](pred)))
}

// Reverse returns the elements of l in reverse order.
func (l List[E]) Reverse() List[E] {
	r := List[E]{}
	for n := l.head; n != nil; n = n.next {
		r = r.Prepend(n.value)
	}
	return r
}

// AppendAll returns a list of all the elements of l, followed by all the
// elements of other. Neither l nor other are modified; the result shares
// the nodes of other.
func (l List[E]) AppendAll(other List[E]) List[E] {
	return Concat(l, other)
}

// --- Type-changing operations ----------------------------------------------

// Map returns a list with f applied to every element of l. The result has the
// same length as l. f is called exactly once per element, in order.
func Map[E, F any](l List[E], f func(E) F) List[F] {
	elems := make([]F, 0, l.Count())
	for n := l.head; n != nil; n = n.next {
		elems = append(elems, f(n.value))
	}
	return FromSlice(elems)
}

// FlatMap applies f to every element of l, in order, and concatenates the
// resulting lists. Empty sub-lists contribute nothing.
func FlatMap[E, F any](l List[E], f func(E) List[F]) List[F] {
	if l.IsEmpty() {
		return Empty[F]()
	}
	return Concat(Map(l, f).Slice()...)
}

// Flatten concatenates a list of lists.
func Flatten[E any](lists List[List[E]]) List[E] {
	return FlatMap(lists, fp.Identity[List[E]])
}

// Concat concatenates lists, in order. The last list is shared by the result,
// all others are copied.
func Concat[E any](lists ...List[E]) List[E] {
	if len(lists) == 0 {
		return Empty[E]()
	}
	last := lists[len(lists)-1]
	size := 0
	for _, l := range lists[:len(lists)-1] {
		size += l.Count()
	}
	if size == 0 {
		return last
	}
	tracer().Debugf("concatenating %d lists, copying %d elements", len(lists), size)
	elems := make([]E, 0, size)
	for _, l := range lists[:len(lists)-1] {
		elems = l.appendTo(elems)
	}
	result := List[E]{head: build(elems, last.head)}
	assertThat(result.Count() == size+last.Count(), "concatenation lost elements")
	return result
}

// Fold reduces l from the left: f(…f(f(zero, e0), e1)…, en).
func Fold[E, A any](l List[E], zero A, f func(A, E) A) A {
	acc := zero
	for n := l.head; n != nil; n = n.next {
		acc = f(acc, n.value)
	}
	return acc
}

// Zip pairs up elements of a and b at equal positions. The result is as long
// as the shorter one of both lists.
func Zip[A, B any](a List[A], b List[B]) List[fp.Pair[A, B]] {
	var pairs []fp.Pair[A, B]
	for x, y := a.head, b.head; x != nil && y != nil; x, y = x.next, y.next {
		pairs = append(pairs, fp.P(x.value, y.value))
	}
	return FromSlice(pairs)
}
