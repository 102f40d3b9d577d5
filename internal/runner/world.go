package runner

import (
	"slices"

	"github.com/charmbracelet/log"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/lanerunner/internal/core"
)

// ObjectID identifies a spawned object. Zero is never a valid ID.
type ObjectID uint64

// Tag classifies objects for contact routing and cleanup.
type Tag string

const (
	TagUntagged        Tag = ""
	TagSegment         Tag = "Segment"
	TagObstacle        Tag = "Obstacle"
	TagSpawnObstacle   Tag = "SpawnObstacle"
	TagCoin            Tag = "Coin"
	TagScoreMultiplier Tag = "ScoreMultiplier"
	TagSpeed           Tag = "Speed"
	TagCube            Tag = "Cube"
)

// RunTags are the tags cleared at the start of every run.
var RunTags = []Tag{TagObstacle, TagCube, TagCoin, TagSpeed, TagScoreMultiplier}

// Object is anything spawned into the world.
// Roots are positioned in world space; children relative to their parent.
type Object struct {
	ID       ObjectID
	Name     string
	Tag      Tag
	Parent   ObjectID
	Local    core.Vec2
	Size     core.Vec2
	Solid    bool      // Solid objects collide; others are triggers
	Velocity core.Vec2 // Free velocity from impulses
	Motion   *Motion   // Constant travel, roots only

	lifetime float64 // Seconds until destruction; 0 means none
	children []ObjectID
}

// World owns every spawned object and destroys them when their lifetime runs out.
type World struct {
	log     *log.Logger
	objects *intmap.Map[ObjectID, *Object]
	nextID  ObjectID
}

// NewWorld creates an empty world.
func NewWorld(logger *log.Logger) *World {
	return &World{
		log:     orDiscard(logger),
		objects: intmap.New[ObjectID, *Object](256),
	}
}

// Spawn adds a root object and returns its ID.
func (w *World) Spawn(obj Object) ObjectID {
	w.nextID++
	obj.ID = w.nextID
	obj.Parent = 0
	obj.children = nil
	w.objects.Put(obj.ID, &obj)
	return obj.ID
}

// SpawnChild adds an object positioned relative to parent.
// Returns false if the parent does not exist.
func (w *World) SpawnChild(parent ObjectID, obj Object) (ObjectID, bool) {
	p, ok := w.objects.Get(parent)
	if !ok {
		return 0, false
	}
	w.nextID++
	obj.ID = w.nextID
	obj.Parent = parent
	obj.Motion = nil
	obj.children = nil
	w.objects.Put(obj.ID, &obj)
	p.children = append(p.children, obj.ID)
	return obj.ID, true
}

// Get returns the object with the given ID.
func (w *World) Get(id ObjectID) (*Object, bool) {
	return w.objects.Get(id)
}

// Alive reports whether the object still exists.
func (w *World) Alive(id ObjectID) bool {
	return id != 0 && w.objects.Has(id)
}

// Len returns the number of live objects.
func (w *World) Len() int {
	return w.objects.Len()
}

// Position returns the world position of an object.
func (w *World) Position(id ObjectID) (core.Vec2, bool) {
	obj, ok := w.objects.Get(id)
	if !ok {
		return core.Vec2{}, false
	}
	pos := obj.Local
	for obj.Parent != 0 {
		parent, ok := w.objects.Get(obj.Parent)
		if !ok {
			break
		}
		pos = pos.Add(parent.Local)
		obj = parent
	}
	return pos, true
}

// FindChild returns the direct child of parent with the given name.
func (w *World) FindChild(parent ObjectID, name string) (ObjectID, bool) {
	p, ok := w.objects.Get(parent)
	if !ok {
		return 0, false
	}
	for _, id := range p.children {
		if child, ok := w.objects.Get(id); ok && child.Name == name {
			return id, true
		}
	}
	return 0, false
}

// DestroyAfter schedules destruction after the given number of seconds.
func (w *World) DestroyAfter(id ObjectID, seconds float64) bool {
	obj, ok := w.objects.Get(id)
	if !ok {
		return false
	}
	obj.lifetime = seconds
	return true
}

// Destroy removes an object and all of its children.
func (w *World) Destroy(id ObjectID) bool {
	obj, ok := w.objects.Get(id)
	if !ok {
		return false
	}
	for _, child := range obj.children {
		w.Destroy(child)
	}
	if parent, ok := w.objects.Get(obj.Parent); ok {
		parent.children = slices.DeleteFunc(parent.children, func(c ObjectID) bool { return c == id })
	}
	w.objects.Del(id)
	return true
}

// DestroyTagged removes every object carrying one of the tags and returns the count.
func (w *World) DestroyTagged(tags ...Tag) int {
	ids := w.collect(func(obj *Object) bool { return slices.Contains(tags, obj.Tag) })
	n := 0
	for _, id := range ids {
		if w.Destroy(id) {
			n++
		}
	}
	return n
}

// ApplyImpulse adds an instantaneous velocity change to an object with unit mass.
func (w *World) ApplyImpulse(id ObjectID, impulse core.Vec2) bool {
	obj, ok := w.objects.Get(id)
	if !ok {
		return false
	}
	obj.Velocity = obj.Velocity.Add(impulse)
	return true
}

// Update integrates motion and runs lifetimes down by dt seconds.
func (w *World) Update(dt float64) {
	if dt <= 0 {
		return
	}
	var expired []ObjectID
	w.objects.ForEach(func(id ObjectID, obj *Object) bool {
		if obj.Motion != nil {
			obj.Local = obj.Local.Add(obj.Motion.Step(dt))
		}
		if obj.Velocity != (core.Vec2{}) {
			obj.Local = obj.Local.Add(obj.Velocity.Scale(dt))
		}
		if obj.lifetime > 0 {
			obj.lifetime -= dt
			if obj.lifetime <= 0 {
				expired = append(expired, id)
			}
		}
		return true
	})
	slices.Sort(expired)
	for _, id := range expired {
		if w.Destroy(id) {
			w.log.Debug("object expired", "id", id)
		}
	}
}

// Each visits every live object in ID order.
func (w *World) Each(fn func(obj *Object)) {
	for _, id := range w.collect(nil) {
		if obj, ok := w.objects.Get(id); ok {
			fn(obj)
		}
	}
}

// Tagged returns the IDs of live objects with the given tag, in ID order.
func (w *World) Tagged(tag Tag) []ObjectID {
	return w.collect(func(obj *Object) bool { return obj.Tag == tag })
}

// Clear removes every object.
func (w *World) Clear() {
	w.objects.Clear()
}

func (w *World) collect(keep func(obj *Object) bool) []ObjectID {
	ids := make([]ObjectID, 0, w.objects.Len())
	w.objects.ForEach(func(id ObjectID, obj *Object) bool {
		if keep == nil || keep(obj) {
			ids = append(ids, id)
		}
		return true
	})
	slices.Sort(ids)
	return ids
}
