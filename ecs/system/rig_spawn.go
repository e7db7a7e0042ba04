package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/TkmOhara/kero3d/ecs"
	"github.com/TkmOhara/kero3d/ecs/component"
)

// RigSpawnSystem stands in for asynchronous scene instantiation. Once an
// actor's model "finishes loading" (its pending delay runs out), the system
// attaches the armature node and its animation player beneath the actor.
// The bind system later discovers the new player as a level-triggered
// event; nothing here awaits anything.
type RigSpawnSystem struct{}

func NewRigSpawnSystem() *RigSpawnSystem {
	return &RigSpawnSystem{}
}

func (s *RigSpawnSystem) Update(w *ecs.World) {
	if w == nil || w.Clock() == nil {
		return
	}
	dt := w.Clock().Delta

	ecs.ForEach(w, component.PendingRigComponent, func(e ecs.Entity, pending *component.PendingRig) {
		pending.Remaining -= dt
		if pending.Remaining > 0 {
			return
		}

		armature := w.CreateEntity()
		armatureTransform := component.NewTransform(mgl64.Vec3{})
		_ = ecs.Add(w, armature, component.ParentComponent, &component.Parent{Entity: component.EntityRef(e)})
		_ = ecs.Add(w, armature, component.TransformComponent, &armatureTransform)

		animPlayer := w.CreateEntity()
		_ = ecs.Add(w, animPlayer, component.ParentComponent, &component.Parent{Entity: component.EntityRef(armature)})
		_ = ecs.Add(w, animPlayer, component.AnimationPlayerComponent, &component.AnimationPlayer{})

		ecs.Remove(w, e, component.PendingRigComponent)
	})
}
