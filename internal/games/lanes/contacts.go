package lanes

import (
	"github.com/vovakirdan/lanerunner/internal/core"
	"github.com/vovakirdan/lanerunner/internal/runner"
)

// Detect implements runner.ContactDetector. Only new overlaps are
// reported; an object must separate from the player before it can
// touch again. Events are queued in object ID order.
func (g *Game) Detect(q *runner.ContactQueue) {
	w := g.engine.World
	player := g.engine.Player.Box()
	now := make(map[runner.ObjectID]bool, len(g.touching))

	w.Each(func(obj *runner.Object) {
		if obj.Size == (core.Vec2{}) || obj.Tag == runner.TagSegment {
			return
		}
		pos, _ := w.Position(obj.ID)
		if !player.Overlaps(core.NewBox(pos, obj.Size)) {
			return
		}
		now[obj.ID] = true
		if g.touching[obj.ID] {
			return
		}
		kind := runner.ContactTrigger
		if obj.Solid {
			kind = runner.ContactSolid
		}
		q.Push(runner.ContactEvent{Kind: kind, Tag: obj.Tag, Object: obj.ID, Position: pos})
	})

	g.touching = now
}
