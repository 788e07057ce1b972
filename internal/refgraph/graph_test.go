package refgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g := New()
	require.NotNil(t, g)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.IDs())
}

func TestAddNode(t *testing.T) {
	g := New()

	g.AddNode("a")
	assert.Equal(t, 1, g.Len())
	assert.True(t, g.Has("a"))

	g.AddNode("a") // Test idempotency
	assert.Equal(t, 1, g.Len())

	g.AddNode("b")
	assert.Equal(t, []string{"a", "b"}, g.IDs())
}

func TestAddReference(t *testing.T) {
	t.Run("success case", func(t *testing.T) {
		g := New()
		g.AddNode("a")
		g.AddNode("b")
		g.AddNode("c")

		require.NoError(t, g.AddReference("a", "c")) // c references a
		require.NoError(t, g.AddReference("a", "b"))
		require.NoError(t, g.AddReference("a", "c")) // stored once

		by, err := g.ReferencedBy("a")
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "b"}, by)

		by, err = g.ReferencedBy("b")
		require.NoError(t, err)
		assert.Empty(t, by)
	})

	t.Run("error cases", func(t *testing.T) {
		g := New()
		g.AddNode("a")

		assert.ErrorContains(t, g.AddReference("dne", "a"), "referenced node not found")
		assert.ErrorContains(t, g.AddReference("a", "dne"), "referencing node not found")

		_, err := g.ReferencedBy("dne")
		assert.ErrorContains(t, err, "node not found")
	})
}

func TestFromReferences(t *testing.T) {
	refs := []Reference{
		{ID: "A", ReferencedBy: []string{"C"}},
		{ID: "B", ReferencedBy: []string{"A"}},
		{ID: "C", ReferencedBy: []string{}},
	}
	g, err := FromReferences(refs)
	require.NoError(t, err)
	assert.Equal(t, refs, g.References())

	_, err = FromReferences([]Reference{{ID: "A", ReferencedBy: []string{"Z"}}})
	assert.Error(t, err)
}

func TestReferencedBy_ReturnsCopy(t *testing.T) {
	g := New()
	g.AddNode("a")
	g.AddNode("b")
	require.NoError(t, g.AddReference("a", "b"))

	by, err := g.ReferencedBy("a")
	require.NoError(t, err)
	by[0] = "mutated"

	by, err = g.ReferencedBy("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, by)
}
