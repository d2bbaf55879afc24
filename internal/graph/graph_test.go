package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_Empty(t *testing.T) {
	g := New[string]()

	assert.Empty(t, g.Nodes())
	assert.Empty(t, g.Cycles())
	assert.Nil(t, g.Reachable("Root"))
	assert.Nil(t, g.Successors("Root"))
	assert.False(t, g.HasNode("Root"))
}

func TestGraph_AddEdgeCreatesNodes(t *testing.T) {
	g := New[string]()
	g.AddEdge("Root", "Y")
	g.AddEdge("Root", "Y")
	g.AddEdge("Y", "A")
	g.AddNode("Y")

	assert.Equal(t, []string{"Root", "Y", "A"}, g.Nodes())
	assert.Equal(t, []string{"Y"}, g.Successors("Root"))
	assert.True(t, g.HasEdge("Root", "Y"))
	assert.False(t, g.HasEdge("Y", "Root"))
	assert.False(t, g.HasEdge("Root", "Missing"))
}

func TestGraph_Reachable(t *testing.T) {
	g := New[string]()
	g.AddEdge("Root", "FuncList")
	g.AddEdge("FuncList", "Func")
	g.AddEdge("FuncList", "FuncList'")
	g.AddEdge("FuncList'", "FuncList")
	g.AddEdge("Orphan", "Func")
	g.AddNode("Lonely")

	assert.Equal(t, []string{"Root", "FuncList", "Func", "FuncList'"}, g.Reachable("Root"))
	assert.Equal(t, []string{"Func", "Orphan"}, g.Reachable("Orphan"))
	assert.Equal(t, []string{"Lonely"}, g.Reachable("Lonely"))
}

func TestGraph_Cycles(t *testing.T) {
	testCases := []struct {
		name     string
		edges    [][2]string
		expected [][]string
	}{
		{
			name:     "acyclic",
			edges:    [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}},
			expected: nil,
		},
		{
			name:     "self loop",
			edges:    [][2]string{{"A", "A"}, {"A", "B"}},
			expected: [][]string{{"A"}},
		},
		{
			name:     "mutual recursion",
			edges:    [][2]string{{"Root", "A"}, {"A", "B"}, {"B", "A"}},
			expected: [][]string{{"A", "B"}},
		},
		{
			name: "two components",
			edges: [][2]string{
				{"X", "Y"}, {"Y", "Z"}, {"Z", "X"},
				{"P", "Q"}, {"Q", "P"},
				{"Z", "P"},
			},
			expected: [][]string{{"X", "Y", "Z"}, {"P", "Q"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := New[string]()
			for _, e := range tc.edges {
				g.AddEdge(e[0], e[1])
			}
			require.Equal(t, tc.expected, g.Cycles())
		})
	}
}

func TestGraph_IntKeys(t *testing.T) {
	g := New[int]()
	g.AddEdge(3, 1)
	g.AddEdge(1, 3)

	assert.Equal(t, [][]int{{3, 1}}, g.Cycles())
}
