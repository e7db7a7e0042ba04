package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/TkmOhara/kero3d/ecs"
	"github.com/TkmOhara/kero3d/ecs/component"
)

func testAnimationSet() *component.AnimationSet {
	return &component.AnimationSet{Clips: map[component.ClipID]component.Clip{
		component.ClipIdle:  {Name: component.ClipIdle, Length: 2.0},
		component.ClipRun:   {Name: component.ClipRun, Length: 0.8},
		component.ClipJump:  {Name: component.ClipJump, Length: 1.0},
		component.ClipPunch: {Name: component.ClipPunch, Length: 1.2},
	}}
}

func newTestWorld(dt float64) *ecs.World {
	w := ecs.NewWorld()
	w.SetClock(&ecs.Clock{Delta: dt})
	w.SetAnimations(testAnimationSet())
	return w
}

// spawnTestPlayer creates a player actor with an already-bound rig so state
// and driver behavior can be exercised without the spawn/bind systems.
func spawnTestPlayer(w *ecs.World) ecs.Entity {
	e := w.CreateEntity()
	tr := component.NewTransform(mgl64.Vec3{})
	_ = ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{})
	_ = ecs.Add(w, e, component.ActorComponent, &component.Actor{Kind: component.ActorPlayer, Speed: 5.0})
	_ = ecs.Add(w, e, component.InputComponent, &component.Input{})
	_ = ecs.Add(w, e, component.TransformComponent, &tr)
	bindTestRig(w, e)
	return e
}

func spawnTestEnemy(w *ecs.World, pos mgl64.Vec3) ecs.Entity {
	e := w.CreateEntity()
	tr := component.NewTransform(pos)
	_ = ecs.Add(w, e, component.EnemyTagComponent, &component.EnemyTag{})
	_ = ecs.Add(w, e, component.ActorComponent, &component.Actor{Kind: component.ActorEnemy, Speed: 3.5})
	_ = ecs.Add(w, e, component.AIComponent, &component.AI{ChaseRange: 15.0, AttackRange: 1.5})
	_ = ecs.Add(w, e, component.TransformComponent, &tr)
	bindTestRig(w, e)
	return e
}

func bindTestRig(w *ecs.World, owner ecs.Entity) ecs.Entity {
	rig := w.CreateEntity()
	_ = ecs.Add(w, rig, component.ParentComponent, &component.Parent{Entity: component.EntityRef(owner)})
	_ = ecs.Add(w, rig, component.AnimationPlayerComponent, &component.AnimationPlayer{Graph: w.Animations()})
	if actor, ok := ecs.Get(w, owner, component.ActorComponent); ok {
		actor.Rig = component.EntityRef(rig)
	}
	return rig
}

func actorOf(w *ecs.World, e ecs.Entity) *component.Actor {
	actor, _ := ecs.Get(w, e, component.ActorComponent)
	return actor
}

func inputOf(w *ecs.World, e ecs.Entity) *component.Input {
	in, _ := ecs.Get(w, e, component.InputComponent)
	return in
}

func rigOf(w *ecs.World, e ecs.Entity) *component.AnimationPlayer {
	actor := actorOf(w, e)
	if actor == nil || actor.Rig == component.NoEntity {
		return nil
	}
	p, _ := ecs.Get(w, ecs.Entity(actor.Rig), component.AnimationPlayerComponent)
	return p
}

// finishCurrentClip forces the rig's active clip to its end.
func finishCurrentClip(p *component.AnimationPlayer) {
	p.Time = p.Length
	p.Playing = false
}

func approxEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func approxVec3(a, b mgl64.Vec3, tol float64) bool {
	return approxEqual(a.X(), b.X(), tol) &&
		approxEqual(a.Y(), b.Y(), tol) &&
		approxEqual(a.Z(), b.Z(), tol)
}
