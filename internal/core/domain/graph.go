// Package domain contains the core models of the block pipeline: tables, the block
// dependency graph, per-run task records and the cache decision.
package domain

import (
	"container/heap"
	"iter"
	"strings"

	"go.trai.ch/zerr"
)

// Node is a block as seen by the dependency graph: a key, a display name and the
// keys of its parents in declared order.
type Node struct {
	Key     Key
	Name    string
	Parents []Key
}

// Graph is the dependency graph over a set of blocks.
// Nodes are kept in insertion order, which is used to break ties between blocks
// that have no forced order.
type Graph struct {
	nodes          []Node
	index          map[Key]int
	executionOrder []int
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		index: make(map[Key]int),
	}
}

// AddNode adds a node to the graph.
// It returns an error if a node with the same key already exists.
func (g *Graph) AddNode(n Node) error {
	if _, exists := g.index[n.Key]; exists {
		return zerr.With(zerr.Wrap(ErrBlockAlreadyExists, "duplicate block key"), "block", n.Key.String())
	}
	g.index[n.Key] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.executionOrder = nil
	return nil
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Validate checks that every parent is known and that the graph is acyclic.
// On success it fixes the execution order returned by Walk.
func (g *Graph) Validate() error {
	indeg := make([]int, len(g.nodes))
	children := make([][]int, len(g.nodes))
	for i, n := range g.nodes {
		for _, p := range n.Parents {
			j, ok := g.index[p]
			if !ok {
				err := zerr.With(zerr.Wrap(ErrMissingDependency, "parent is not part of the graph"), "block", n.Name)
				return zerr.With(err, "dependency", p.String())
			}
			indeg[i]++
			children[j] = append(children[j], i)
		}
	}

	ready := &indexHeap{}
	for i, d := range indeg {
		if d == 0 {
			heap.Push(ready, i)
		}
	}

	order := make([]int, 0, len(g.nodes))
	for ready.Len() > 0 {
		i := heap.Pop(ready).(int)
		order = append(order, i)
		for _, c := range children[i] {
			indeg[c]--
			if indeg[c] == 0 {
				heap.Push(ready, c)
			}
		}
	}

	if len(order) != len(g.nodes) {
		return zerr.With(zerr.Wrap(ErrGraphCycle, "blocks cannot be ordered"), "cycle", g.findCycle())
	}
	g.executionOrder = order
	return nil
}

// Sort validates the graph and returns its nodes in execution order.
func (g *Graph) Sort() ([]Node, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	out := make([]Node, 0, len(g.nodes))
	for n := range g.Walk() {
		out = append(out, n)
	}
	return out, nil
}

// Walk returns an iterator that yields nodes in execution order.
// It assumes Validate() has been called and returned nil.
func (g *Graph) Walk() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, i := range g.executionOrder {
			if !yield(g.nodes[i]) {
				return
			}
		}
	}
}

// findCycle walks parent edges depth-first in insertion order and renders the
// first cycle found as "a -> b -> a".
func (g *Graph) findCycle() string {
	state := make([]int, len(g.nodes)) // 0: unvisited, 1: visiting, 2: visited
	var path []int
	var cycle string

	var visit func(u int) bool
	visit = func(u int) bool {
		state[u] = 1
		path = append(path, u)
		for _, p := range g.nodes[u].Parents {
			v := g.index[p]
			if state[v] == 1 {
				cycle = g.renderCycle(path, v)
				return true
			}
			if state[v] == 0 && visit(v) {
				return true
			}
		}
		state[u] = 2
		path = path[:len(path)-1]
		return false
	}

	for i := range g.nodes {
		if state[i] == 0 && visit(i) {
			break
		}
	}
	return cycle
}

func (g *Graph) renderCycle(path []int, start int) string {
	var names []string
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == start {
			for _, idx := range path[i:] {
				names = append(names, g.nodes[idx].Name)
			}
			break
		}
	}
	names = append(names, g.nodes[start].Name)
	return strings.Join(names, " -> ")
}

// indexHeap is a min-heap of insertion indices.
type indexHeap []int

func (h indexHeap) Len() int           { return len(h) }
func (h indexHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h indexHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *indexHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *indexHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
