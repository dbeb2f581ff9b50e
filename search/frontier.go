package search

import "container/heap"

// entry is a frontier slot: a node and its priority, computed once on push.
type entry[S comparable] struct {
	node     *Node[S]
	priority float64
}

// frontier is a min-heap of entries ordered by priority, then by Seq so
// that equal priorities pop in insertion order.
type frontier[S comparable] []entry[S]

func (f frontier[S]) Len() int { return len(f) }

func (f frontier[S]) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].node.Seq < f[j].node.Seq
}

func (f frontier[S]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier[S]) Push(x any) { *f = append(*f, x.(entry[S])) }

func (f *frontier[S]) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = entry[S]{}
	*f = old[:n-1]

	return item
}

func (f *frontier[S]) push(n *Node[S], priority float64) {
	heap.Push(f, entry[S]{node: n, priority: priority})
}

func (f *frontier[S]) pop() entry[S] {
	return heap.Pop(f).(entry[S])
}

// stateSet is the map-backed Visited implementation owned by one search.
type stateSet[S comparable] map[S]struct{}

func (s stateSet[S]) Contains(x S) bool {
	_, ok := s[x]
	return ok
}

func (s stateSet[S]) Len() int { return len(s) }

func (s stateSet[S]) add(x S) { s[x] = struct{}{} }

// unfiltered reports every state as unvisited while keeping the count.
type unfiltered[S comparable] struct{ stateSet[S] }

func (unfiltered[S]) Contains(S) bool { return false }
