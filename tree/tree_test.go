package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wacom-Developer/universal-ink-library/identity"
)

func TestMainTreeRegistersNodeURIs(t *testing.T) {
	tr := New(MainTreeName)
	root := tr.NewGroup()
	require.NoError(t, tr.SetRoot(root))

	strokeID := identity.NewRandom()
	ref, err := tr.NewStrokeRef(strokeID, nil)
	require.NoError(t, err)
	require.NoError(t, tr.AddChild(root, ref))

	n := tr.Node(ref)
	assert.NotEmpty(t, n.URI)
	assert.Contains(t, n.URI, "uim:")

	_, _, err = tr.NodeByURI(n.URI)
	assert.NoError(t, err)
}

func TestAttachingAlreadyAttachedNodeFails(t *testing.T) {
	tr := New(MainTreeName)
	root := tr.NewGroup()
	require.NoError(t, tr.SetRoot(root))

	child := tr.NewGroup()
	require.NoError(t, tr.AddChild(root, child))

	other := tr.NewGroup()
	require.NoError(t, tr.AddChild(root, other))

	err := tr.AddChild(other, child)
	assert.Error(t, err)
}

func TestUnregisterCascades(t *testing.T) {
	tr := New(MainTreeName)
	root := tr.NewGroup()
	require.NoError(t, tr.SetRoot(root))
	child := tr.NewGroup()
	require.NoError(t, tr.AddChild(root, child))
	grandchild, err := tr.NewStrokeRef(identity.NewRandom(), nil)
	require.NoError(t, err)
	require.NoError(t, tr.AddChild(child, grandchild))

	removed := tr.Unregister(child)
	assert.Len(t, removed, 2)

	_, _, err = tr.NodeByURI(removed[0])
	assert.Error(t, err)
}

func TestCloneProducesFreshURIs(t *testing.T) {
	tr := New(MainTreeName)
	root := tr.NewGroup()
	require.NoError(t, tr.SetRoot(root))
	strokeID := identity.NewRandom()
	ref, err := tr.NewStrokeRef(strokeID, nil)
	require.NoError(t, err)
	require.NoError(t, tr.AddChild(root, ref))

	newIdx, uriMap, err := tr.Clone(root, true, true)
	require.NoError(t, err)
	assert.NotEqual(t, root, newIdx)
	assert.Len(t, uriMap, 2)
	for old, newURI := range uriMap {
		assert.NotEqual(t, old, newURI)
	}
}

func TestBBoxUnionOfChildren(t *testing.T) {
	tr := New(MainTreeName)
	root := tr.NewGroup()
	require.NoError(t, tr.SetRoot(root))

	s1 := identity.NewRandom()
	s2 := identity.NewRandom()
	r1, _ := tr.NewStrokeRef(s1, nil)
	r2, _ := tr.NewStrokeRef(s2, nil)
	require.NoError(t, tr.AddChild(root, r1))
	require.NoError(t, tr.AddChild(root, r2))

	boxes := map[identity.ID]BBox{
		s1: {MinX: 0, MinY: 0, MaxX: 10, MaxY: 10, Valid: true},
		s2: {MinX: 5, MinY: 5, MaxX: 20, MaxY: 20, Valid: true},
	}
	box := tr.RecomputeBBox(root, func(id identity.ID) (BBox, bool) {
		b, ok := boxes[id]
		return b, ok
	})
	assert.Equal(t, 0.0, box.MinX)
	assert.Equal(t, 20.0, box.MaxX)
}
