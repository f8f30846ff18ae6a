/*
Package list implements an immutable persistent singly-linked list.

A list is either empty or a node holding a head element and a tail list.
Every operation returns a new list and leaves the receiver unmodified, so
lists may be shared freely between goroutines without locking.

    l := list.Empty[int]().Append(1).Append(2).Append(3)
    evens := l.Filter(func(n int) bool { return n%2 == 0 })
    strs := list.Map(l, strconv.Itoa)

Tails are shared wherever the structure allows it: Prepend and AppendAll
re-use an existing list as the suffix of the result. Append has to copy the
prefix of the receiver, as nodes are never modified after construction.
Element order always follows append order, i.e. Get(0) is the first element
appended (and still present).

Map and FlatMap change the element type and are therefore package level
functions, as Go methods may not introduce type parameters.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.list'.
func tracer() tracing.Trace {
	return tracing.Select("fp.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("fp.list: "+msg, msgargs...)
		panic(msg)
	}
}
