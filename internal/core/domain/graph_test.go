package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

func node(name string, parents ...string) domain.Node {
	return domain.Node{
		Key:     domain.NewKey(name),
		Name:    name,
		Parents: domain.NewKeys(parents),
	}
}

func names(nodes []domain.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}

func TestGraph_AddNode(t *testing.T) {
	g := domain.NewGraph()

	if err := g.AddNode(node("block1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := g.AddNode(node("block1"))
	if err == nil {
		t.Fatal("expected error when adding duplicate block, got nil")
	}
	if !errors.Is(err, domain.ErrBlockAlreadyExists) {
		t.Errorf("expected ErrBlockAlreadyExists, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if name, ok := zErr.Metadata()["block"].(string); !ok || name != "block1" {
		t.Errorf("expected metadata block=block1, got %v", zErr.Metadata()["block"])
	}
}

func TestGraph_Validate_Cycle(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddNode(node("A", "B")))
	require.NoError(t, g.AddNode(node("B", "A")))

	err := g.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrGraphCycle)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "A -> B -> A", zErr.Metadata()["cycle"])
}

func TestGraph_Validate_SelfCycle(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddNode(node("root")))
	require.NoError(t, g.AddNode(node("loop", "root", "loop")))

	_, err := g.Sort()
	require.ErrorIs(t, err, domain.ErrGraphCycle)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, "loop -> loop", zErr.Metadata()["cycle"])
}

func TestGraph_Validate_MissingDependency(t *testing.T) {
	g := domain.NewGraph()
	require.NoError(t, g.AddNode(node("A", "ghost")))

	err := g.Validate()
	require.ErrorIs(t, err, domain.ErrMissingDependency)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, "ghost", zErr.Metadata()["dependency"])
}

func TestGraph_Walk(t *testing.T) {
	g := domain.NewGraph()
	// A -> B -> C
	// Execution order: C, B, A
	require.NoError(t, g.AddNode(node("A", "B")))
	require.NoError(t, g.AddNode(node("B", "C")))
	require.NoError(t, g.AddNode(node("C")))

	require.NoError(t, g.Validate())

	executed := make([]string, 0, 3)
	for n := range g.Walk() {
		executed = append(executed, n.Name)
	}
	assert.Equal(t, []string{"C", "B", "A"}, executed)
}

func TestGraph_Sort_Diamond(t *testing.T) {
	// Five parents sharing ancestors:
	//
	//        root
	//       /    \
	//      a      b
	//     / \    / \
	//    c   d  e   |
	//     \  |  |  /
	//       sink (parents a, c, d, e, b)
	g := domain.NewGraph()
	require.NoError(t, g.AddNode(node("sink", "a", "c", "d", "e", "b")))
	require.NoError(t, g.AddNode(node("e", "b")))
	require.NoError(t, g.AddNode(node("d", "a")))
	require.NoError(t, g.AddNode(node("c", "a")))
	require.NoError(t, g.AddNode(node("b", "root")))
	require.NoError(t, g.AddNode(node("a", "root")))
	require.NoError(t, g.AddNode(node("root")))

	order, err := g.Sort()
	require.NoError(t, err)
	require.Len(t, order, 7)

	pos := make(map[domain.Key]int, len(order))
	for i, n := range order {
		pos[n.Key] = i
	}
	for _, n := range order {
		for _, p := range n.Parents {
			assert.Less(t, pos[p], pos[n.Key], "%s must come after %s", n.Name, p)
		}
	}
}

func TestGraph_Sort_Deterministic(t *testing.T) {
	build := func() *domain.Graph {
		g := domain.NewGraph()
		require.NoError(t, g.AddNode(node("z")))
		require.NoError(t, g.AddNode(node("m", "z")))
		require.NoError(t, g.AddNode(node("a")))
		require.NoError(t, g.AddNode(node("k", "a", "z")))
		return g
	}

	first, err := build().Sort()
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "m", "a", "k"}, names(first))

	for range 10 {
		again, err := build().Sort()
		require.NoError(t, err)
		assert.Equal(t, names(first), names(again))
	}
}
