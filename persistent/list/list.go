package list

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/linkedfp/fp/maybe"
	"github.com/linkedfp/fp/result"
)

// ErrIndexOutOfRange is returned by Get for indices outside [0…Count()-1].
var ErrIndexOutOfRange = errors.New("list index out of range")

// List is an immutable singly-linked list of elements of type E.
// The zero value is the empty list and ready to use.
//
// A List is either empty or a node (head, tail), where tail is a List itself.
// Clients may decompose a list with Match():
//
//	var x int
//	var rest list.List[int]
//	switch m := l.Match(); m {
//	case m.Empty():
//	    …
//	case m.Cons(&x, &rest):
//	    …
//	}
type List[E any] struct {
	head *node[E]
}

// node is a cell of a list. Nodes are never modified after a list referencing
// them has been returned to a client.
type node[E any] struct {
	value E
	next  *node[E]
	size  int // length of the list starting at this node
}

// Empty returns the empty list for element type E. All empty lists of the same
// element type are equal and interchangeable with the zero value List[E]{}.
func Empty[E any]() List[E] {
	return List[E]{}
}

// Of creates a list of the given elements, in order.
func Of[E any](elems ...E) List[E] {
	return FromSlice(elems)
}

// FromSlice creates a list of the elements of s, in order. The list does not
// alias s.
func FromSlice[E any](s []E) List[E] {
	return List[E]{head: build(s, nil)}
}

// build links the elements of s in front of tail, which will be shared.
func build[E any](s []E, tail *node[E]) *node[E] {
	size := 0
	if tail != nil {
		size = tail.size
	}
	for i := len(s) - 1; i >= 0; i-- {
		size++
		tail = &node[E]{value: s[i], next: tail, size: size}
	}
	return tail
}

// --- API -------------------------------------------------------------------

// IsEmpty is true iff l has no elements.
func (l List[E]) IsEmpty() bool {
	return l.head == nil
}

// Count returns the number of elements of l.
func (l List[E]) Count() int {
	if l.head == nil {
		return 0
	}
	return l.head.size
}

// Append returns a new list with all of l's elements, followed by element.
// l is left unchanged.
func (l List[E]) Append(element E) List[E] {
	elems := make([]E, 0, l.Count()+1)
	elems = l.appendTo(elems)
	elems = append(elems, element)
	return FromSlice(elems)
}

// Prepend returns a new list with element as its head and l as its tail.
// The result shares all of l's nodes.
func (l List[E]) Prepend(element E) List[E] {
	return List[E]{head: &node[E]{value: element, next: l.head, size: l.Count() + 1}}
}

// Get returns the element at position index, with 0 denoting the first element.
// If index is negative or not smaller than Count(), Get returns an error wrapping
// ErrIndexOutOfRange. Get traverses the list, i.e. it is O(index).
func (l List[E]) Get(index int) (E, error) {
	if index < 0 || index >= l.Count() {
		var zero E
		tracer().Debugf("list access out of range: %d with length %d", index, l.Count())
		return zero, fmt.Errorf("%w: index %d with length %d", ErrIndexOutOfRange, index, l.Count())
	}
	n := l.head
	for ; index > 0; index-- {
		n = n.next
	}
	return n.value, nil
}

// Nth is a variant of Get which returns Nothing for an index out of range.
func (l List[E]) Nth(index int) maybe.Maybe[E] {
	if x, err := l.Get(index); err == nil {
		return maybe.Just(x)
	}
	return maybe.Nothing[E]()
}

// Lookup is a variant of Get which wraps element and error into a Result.
func (l List[E]) Lookup(index int) result.Result[E] {
	return result.Of(l.Get(index))
}

// Head returns the first element of l, or Nothing if l is empty.
func (l List[E]) Head() maybe.Maybe[E] {
	if l.head == nil {
		return maybe.Nothing[E]()
	}
	return maybe.Just(l.head.value)
}

// Tail returns l without its first element. The tail of the empty list
// is the empty list.
func (l List[E]) Tail() List[E] {
	if l.head == nil {
		return l
	}
	return List[E]{head: l.head.next}
}

// Equal compares two lists element-wise. Lists are equal if they have the
// same length and pairwise equal elements. Elements are compared by the
// element type's own equality: its Equal method if present (nested lists are
// thus compared structurally), Go's == for comparable values (pointers and
// errors compare by identity), and a deep comparison otherwise.
func (l List[E]) Equal(other List[E]) bool {
	return EqualFunc(l, other, elementsEqual[E])
}

// elementsEqual is the element comparison of Equal.
func elementsEqual[E any](a, b E) bool {
	if eq, ok := any(a).(interface{ Equal(E) bool }); ok {
		return eq.Equal(b)
	}
	if eq, ok := equalOperator(any(a), any(b)); ok {
		return eq
	}
	return cmp.Equal(a, b, cmp.Exporter(func(reflect.Type) bool { return true }))
}

// equalOperator applies == to x and y. ok is false if the dynamic values are
// not comparable, e.g. slices or structs holding slices in interface fields.
func equalOperator(x, y interface{}) (eq bool, ok bool) {
	if x == nil || y == nil {
		return x == y, true
	}
	if !reflect.TypeOf(x).Comparable() || !reflect.TypeOf(y).Comparable() {
		return false, false
	}
	defer func() {
		if recover() != nil {
			eq, ok = false, false
		}
	}()
	return x == y, true
}

// EqualFunc compares two lists element-wise, using eq for comparing elements.
func EqualFunc[E any](a, b List[E], eq func(E, E) bool) bool {
	if a.Count() != b.Count() {
		return false
	}
	for x, y := a.head, b.head; x != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}
	return true
}

// ForEach calls f for every element of l, in order.
func (l List[E]) ForEach(f func(E)) {
	for n := l.head; n != nil; n = n.next {
		f(n.value)
	}
}

// Slice returns the elements of l as a newly allocated slice.
func (l List[E]) Slice() []E {
	return l.appendTo(make([]E, 0, l.Count()))
}

func (l List[E]) appendTo(s []E) []E {
	for n := l.head; n != nil; n = n.next {
		s = append(s, n.value)
	}
	return s
}

// String returns a representation of l in the style of fmt's slice format,
// e.g. "[1 2 3]".
func (l List[E]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", n.value)
	}
	b.WriteByte(']')
	return b.String()
}

// --- Matching --------------------------------------------------------------

// Matcher helps decomposing a list into its two possible shapes.
type Matcher[E any] interface {
	Empty() Matcher[E]
	Cons(head *E, tail *List[E]) Matcher[E]
}

// Match returns a matcher for l, see type List.
func (l List[E]) Match() Matcher[E] {
	return matcher[E]{l: l}
}

type matcher[E any] struct {
	l List[E]
}

func (lm matcher[E]) Empty() Matcher[E] {
	if lm.l.head == nil {
		return lm
	}
	return nil
}

func (lm matcher[E]) Cons(head *E, tail *List[E]) Matcher[E] {
	if lm.l.head == nil {
		return nil
	}
	assertThat(head != nil && tail != nil, "cons-pattern requires head and tail variables")
	*head = lm.l.head.value
	*tail = List[E]{head: lm.l.head.next}
	return lm
}
