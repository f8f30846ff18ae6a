package list

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tp "github.com/xlab/treeprint"
)

func TestBuildSizes(t *testing.T) {
	l := Of(1, 2, 3)
	size := 3
	for n := l.head; n != nil; n = n.next {
		if n.size != size {
			t.Errorf("expected node %v to have size %d, has %d", n.value, size, n.size)
		}
		size--
	}
	tail := Of(8, 9)
	n := build([]int{1, 2}, tail.head)
	assert.Equal(t, 4, n.size)
	assert.Equal(t, 0, Empty[int]().Count())
}

func TestPrependShares(t *testing.T) {
	l := Of(2, 3)
	m := l.Prepend(1)
	assert.Same(t, l.head, m.head.next)
	assert.Equal(t, 3, m.Count())
	assert.Same(t, l.head, m.Tail().head)
}

func TestAppendAllShares(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.list")
	defer teardown()
	//
	a, b := Of(1, 2), Of(3, 4, 5)
	c := a.AppendAll(b)
	require.Equal(t, 5, c.Count())
	assert.Same(t, b.head, c.head.next.next)
	assert.NotSame(t, a.head, c.head)
	t.Log(printLists(map[string]List[int]{"a": a, "b": b, "a++b": c}))

	// concatenating with empty prefixes hands out the last list itself
	d := Concat(Empty[int](), Empty[int](), b)
	assert.Same(t, b.head, d.head)
}

func TestAppendCopies(t *testing.T) {
	l := Of(1, 2)
	m := l.Append(3)
	for x, y := l.head, m.head; x != nil; x, y = x.next, y.next {
		assert.NotSame(t, x, y)
	}
	assert.Equal(t, 2, l.head.size)
}

func TestMatchRequiresVariables(t *testing.T) {
	l := Of(1)
	assert.Panics(t, func() {
		l.Match().Cons(nil, nil)
	})
	var x int
	var rest List[int]
	assert.NotPanics(t, func() {
		Empty[int]().Match().Cons(&x, &rest)
	})
}

// --- Print lists -----------------------------------------------------------

// printLists prints the node structure of a set of lists, marking nodes
// which have already been printed as part of another list.
func printLists[E any](lists map[string]List[E]) string {
	printer := tp.New()
	seen := make(map[*node[E]]string)
	for name, l := range lists {
		branch := printer.AddBranch(fmt.Sprintf("%s (len=%d)", name, l.Count()))
		for n := l.head; n != nil; n = n.next {
			if owner, ok := seen[n]; ok {
				branch.AddNode(fmt.Sprintf("%v … shared with %s", n.value, owner))
				break
			}
			seen[n] = name
			branch.AddNode(fmt.Sprintf("%v", n.value))
		}
	}
	return "\n" + printer.String()
}
