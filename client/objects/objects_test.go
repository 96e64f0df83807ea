package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObject struct {
	*BaseObject
	inits, destroys, updates int
}

func newCountingObject(id string, zIndex int) *countingObject {
	return &countingObject{BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex})}
}

func (o *countingObject) Init() error    { o.inits++; return nil }
func (o *countingObject) Destroy() error { o.destroys++; return nil }
func (o *countingObject) Update() error  { o.updates++; return nil }

func ids(children []GameObject) []string {
	out := make([]string, 0, len(children))
	for _, c := range children {
		out = append(out, c.GetID())
	}
	return out
}

func TestSortedZIndexObject_AddChild(t *testing.T) {
	root := NewSortedZIndexObject("root")
	require.NoError(t, root.AddChild("ball", newCountingObject("ball", 20)))
	require.NoError(t, root.AddChild("court", newCountingObject("court", 0)))
	require.NoError(t, root.AddChild("left", newCountingObject("left", 10)))
	require.NoError(t, root.AddChild("right", newCountingObject("right", 10)))

	assert.Equal(t, []string{"court", "left", "right", "ball"}, ids(root.GetChildren()))
	assert.Error(t, root.AddChild("ball", newCountingObject("ball", 0)))
}

func TestSortedZIndexObject_RemoveChild(t *testing.T) {
	root := NewSortedZIndexObject("root")
	child := newCountingObject("child", 0)
	require.NoError(t, root.AddChild("child", child))
	assert.Equal(t, 1, child.inits)
	assert.Equal(t, root, child.GetParent())

	require.NoError(t, root.RemoveChild("child"))
	assert.Equal(t, 1, child.destroys)
	assert.Nil(t, child.GetParent())
	assert.Nil(t, root.GetChild("child"))
	assert.Empty(t, root.GetChildren())
	assert.Error(t, root.RemoveChild("child"))
}

type selfRemovingObject struct {
	*BaseObject
}

func (o *selfRemovingObject) Update() error {
	return o.RemoveFromParent()
}

func TestUpdateTree_ChildRemovesItself(t *testing.T) {
	root := NewSortedZIndexObject("root")
	require.NoError(t, root.AddChild("once", &selfRemovingObject{BaseObject: NewBaseObject("once", nil)}))
	after := newCountingObject("after", 1)
	require.NoError(t, root.AddChild("after", after))

	require.NoError(t, UpdateTree(root))
	assert.Equal(t, []string{"after"}, ids(root.GetChildren()))
	assert.Equal(t, 1, after.updates)
}

func TestDestroyTree(t *testing.T) {
	root := NewBaseObject("root", nil)
	parent := newCountingObject("parent", 0)
	leaf := newCountingObject("leaf", 0)
	require.NoError(t, root.AddChild("parent", parent))
	require.NoError(t, parent.AddChild("leaf", leaf))

	require.NoError(t, DestroyTree(root))
	assert.Equal(t, 1, parent.destroys)
	assert.Equal(t, 1, leaf.destroys)
}
