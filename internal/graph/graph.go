package graph

import (
	"cmp"
	"slices"
)

// Graph is a directed graph. The zero value is not usable; call New.
type Graph[K comparable] struct {
	nodes []K
	index map[K]int
	succ  [][]int
	edges map[[2]int]struct{}
}

// New creates an empty graph.
func New[K comparable]() *Graph[K] {
	return &Graph[K]{
		index: make(map[K]int),
		edges: make(map[[2]int]struct{}),
	}
}

// AddNode adds k if it is not already present.
func (g *Graph[K]) AddNode(k K) {
	g.id(k)
}

func (g *Graph[K]) id(k K) int {
	if i, ok := g.index[k]; ok {
		return i
	}
	i := len(g.nodes)
	g.nodes = append(g.nodes, k)
	g.succ = append(g.succ, nil)
	g.index[k] = i
	return i
}

// AddEdge adds an edge from -> to, creating missing nodes. Adding the same
// edge twice is a no-op.
func (g *Graph[K]) AddEdge(from, to K) {
	f, t := g.id(from), g.id(to)
	e := [2]int{f, t}
	if _, exists := g.edges[e]; exists {
		return
	}
	g.edges[e] = struct{}{}
	g.succ[f] = append(g.succ[f], t)
}

// HasNode reports whether k was added.
func (g *Graph[K]) HasNode(k K) bool {
	_, ok := g.index[k]
	return ok
}

// HasEdge reports whether the edge from -> to exists.
func (g *Graph[K]) HasEdge(from, to K) bool {
	f, ok := g.index[from]
	if !ok {
		return false
	}
	t, ok := g.index[to]
	if !ok {
		return false
	}
	_, exists := g.edges[[2]int{f, t}]
	return exists
}

// Nodes returns all nodes in insertion order.
func (g *Graph[K]) Nodes() []K {
	out := make([]K, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Successors returns the direct successors of k in edge insertion order.
func (g *Graph[K]) Successors(k K) []K {
	i, ok := g.index[k]
	if !ok {
		return nil
	}
	out := make([]K, len(g.succ[i]))
	for j, s := range g.succ[i] {
		out[j] = g.nodes[s]
	}
	return out
}

// Reachable returns every node reachable from start, start included, in
// insertion order. It returns nil if start is not in the graph.
func (g *Graph[K]) Reachable(start K) []K {
	s, ok := g.index[start]
	if !ok {
		return nil
	}

	seen := make([]bool, len(g.nodes))
	seen[s] = true
	stack := []int{s}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, m := range g.succ[n] {
			if !seen[m] {
				seen[m] = true
				stack = append(stack, m)
			}
		}
	}

	var out []K
	for i, ok := range seen {
		if ok {
			out = append(out, g.nodes[i])
		}
	}
	return out
}

// Cycles returns every strongly connected component that contains a cycle.
// Nodes within a component are in insertion order; components are ordered by
// their first node.
func (g *Graph[K]) Cycles() [][]K {
	t := &tarjan[K]{
		g:       g,
		index:   make([]int, len(g.nodes)),
		low:     make([]int, len(g.nodes)),
		onStack: make([]bool, len(g.nodes)),
	}
	for i := range t.index {
		t.index[i] = -1
	}
	for i := range g.nodes {
		if t.index[i] == -1 {
			t.visit(i)
		}
	}

	var out [][]K
	for _, comp := range sortComponents(t.components) {
		if len(comp) == 1 {
			if _, self := g.edges[[2]int{comp[0], comp[0]}]; !self {
				continue
			}
		}
		nodes := make([]K, len(comp))
		for i, n := range comp {
			nodes[i] = g.nodes[n]
		}
		out = append(out, nodes)
	}
	return out
}

type tarjan[K comparable] struct {
	g          *Graph[K]
	counter    int
	index      []int
	low        []int
	onStack    []bool
	stack      []int
	components [][]int
}

func (t *tarjan[K]) visit(v int) {
	t.index[v] = t.counter
	t.low[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.g.succ[v] {
		switch {
		case t.index[w] == -1:
			t.visit(w)
			t.low[v] = min(t.low[v], t.low[w])
		case t.onStack[w]:
			t.low[v] = min(t.low[v], t.index[w])
		}
	}

	if t.low[v] != t.index[v] {
		return
	}

	var comp []int
	for {
		w := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[w] = false
		comp = append(comp, w)
		if w == v {
			break
		}
	}
	t.components = append(t.components, comp)
}

// sortComponents orders node ids inside each component and the components
// themselves by first node id.
func sortComponents(comps [][]int) [][]int {
	for _, c := range comps {
		slices.Sort(c)
	}
	slices.SortFunc(comps, func(a, b []int) int { return cmp.Compare(a[0], b[0]) })
	return comps
}
