package system

import (
	"github.com/TkmOhara/kero3d/ecs"
	"github.com/TkmOhara/kero3d/ecs/component"
)

// AnimationBindSystem processes animation players the first tick they are
// observed: it assigns the shared clip table, then walks the parent chain
// from the player toward the root and binds the nearest actor ancestor.
//
// An actor is bound at most once; if a second rig appears under the same
// actor later, it still gets the clip table but is never bound. A player
// with no actor ancestor is assigned and then dropped, not retried.
type AnimationBindSystem struct{}

func NewAnimationBindSystem() *AnimationBindSystem {
	return &AnimationBindSystem{}
}

func (s *AnimationBindSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	set := w.Animations()
	if set == nil {
		return
	}

	ecs.ForEach(w, component.AnimationPlayerComponent, func(e ecs.Entity, p *component.AnimationPlayer) {
		if p.Graph != nil {
			return
		}
		p.Graph = set

		cur := e
		for {
			parent, ok := ecs.Get(w, cur, component.ParentComponent)
			if !ok {
				return
			}
			cur = ecs.Entity(parent.Entity)
			if actor, ok := ecs.Get(w, cur, component.ActorComponent); ok {
				if actor.Rig == component.NoEntity {
					actor.Rig = component.EntityRef(e)
				}
				return
			}
		}
	})
}
