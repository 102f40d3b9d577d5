package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/lanerunner/internal/core"
)

func TestWorldChildPositionFollowsParent(t *testing.T) {
	w := NewWorld(nil)
	root := w.Spawn(Object{Name: "seg", Local: core.V2(10, 1), Motion: NewMotion(core.Left, 2)})
	child, ok := w.SpawnChild(root, Object{Name: "Landmark", Local: core.V2(3, -1)})
	require.True(t, ok)

	pos, ok := w.Position(child)
	require.True(t, ok)
	assert.Equal(t, core.V2(13, 0), pos)

	w.Update(1)
	pos, _ = w.Position(child)
	assert.Equal(t, core.V2(11, 0), pos)

	found, ok := w.FindChild(root, "Landmark")
	require.True(t, ok)
	assert.Equal(t, child, found)

	_, ok = w.FindChild(root, "Missing")
	assert.False(t, ok)
}

func TestWorldSpawnChildNeedsParent(t *testing.T) {
	w := NewWorld(nil)
	_, ok := w.SpawnChild(42, Object{Name: "orphan"})
	assert.False(t, ok)
	assert.Equal(t, 0, w.Len())
}

func TestWorldDestroyIsRecursive(t *testing.T) {
	w := NewWorld(nil)
	root := w.Spawn(Object{Name: "seg"})
	a, _ := w.SpawnChild(root, Object{Name: "a"})
	b, _ := w.SpawnChild(a, Object{Name: "b"})

	assert.True(t, w.Destroy(root))
	assert.False(t, w.Alive(root))
	assert.False(t, w.Alive(a))
	assert.False(t, w.Alive(b))
	assert.Equal(t, 0, w.Len())
	assert.False(t, w.Destroy(root))
}

func TestWorldDestroyChildUnlinksFromParent(t *testing.T) {
	w := NewWorld(nil)
	root := w.Spawn(Object{Name: "seg"})
	coin, _ := w.SpawnChild(root, Object{Name: "Coin", Tag: TagCoin})

	require.True(t, w.Destroy(coin))
	_, ok := w.FindChild(root, "Coin")
	assert.False(t, ok)
	assert.True(t, w.Alive(root))
}

func TestWorldLifetime(t *testing.T) {
	w := NewWorld(nil)
	short := w.Spawn(Object{Name: "short"})
	long := w.Spawn(Object{Name: "long"})
	forever := w.Spawn(Object{Name: "forever"})
	w.DestroyAfter(short, 1)
	w.DestroyAfter(long, 3)

	w.Update(0.5)
	assert.True(t, w.Alive(short))

	w.Update(0.5)
	assert.False(t, w.Alive(short))
	assert.True(t, w.Alive(long))

	w.Update(2)
	assert.False(t, w.Alive(long))
	assert.True(t, w.Alive(forever))
}

func TestWorldZeroDeltaDoesNothing(t *testing.T) {
	w := NewWorld(nil)
	id := w.Spawn(Object{Local: core.V2(5, 0), Motion: NewMotion(core.Left, 3)})
	w.DestroyAfter(id, 0.1)

	w.Update(0)
	pos, _ := w.Position(id)
	assert.Equal(t, core.V2(5, 0), pos)
	assert.True(t, w.Alive(id))
}

func TestWorldDestroyTagged(t *testing.T) {
	w := NewWorld(nil)
	seg := w.Spawn(Object{Tag: TagSegment})
	w.SpawnChild(seg, Object{Tag: TagCoin})
	w.Spawn(Object{Tag: TagCoin})
	w.Spawn(Object{Tag: TagObstacle})
	keep := w.Spawn(Object{Tag: TagSpawnObstacle})

	n := w.DestroyTagged(RunTags...)
	assert.Equal(t, 3, n)
	assert.True(t, w.Alive(seg))
	assert.True(t, w.Alive(keep))
	assert.Empty(t, w.Tagged(TagCoin))
}

func TestWorldImpulseMovesObject(t *testing.T) {
	w := NewWorld(nil)
	id := w.Spawn(Object{Local: core.V2(0, 0)})
	require.True(t, w.ApplyImpulse(id, core.V2(0, 4)))
	assert.False(t, w.ApplyImpulse(999, core.V2(1, 0)))

	w.Update(0.5)
	pos, _ := w.Position(id)
	assert.Equal(t, core.V2(0, 2), pos)
}

func TestWorldEachInIDOrder(t *testing.T) {
	w := NewWorld(nil)
	for range 20 {
		w.Spawn(Object{})
	}
	var seen []ObjectID
	w.Each(func(obj *Object) { seen = append(seen, obj.ID) })
	require.Len(t, seen, 20)
	for i := 1; i < len(seen); i++ {
		assert.Less(t, seen[i-1], seen[i])
	}
}
