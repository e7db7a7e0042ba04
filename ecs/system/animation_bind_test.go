package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/TkmOhara/kero3d/ecs"
	"github.com/TkmOhara/kero3d/ecs/component"
)

// spawnUnboundActor creates a bare player actor with no rig attached.
func spawnUnboundActor(w *ecs.World) ecs.Entity {
	e := w.CreateEntity()
	tr := component.NewTransform(mgl64.Vec3{})
	_ = ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{})
	_ = ecs.Add(w, e, component.ActorComponent, &component.Actor{Kind: component.ActorPlayer, Speed: 5.0})
	_ = ecs.Add(w, e, component.InputComponent, &component.Input{})
	_ = ecs.Add(w, e, component.TransformComponent, &tr)
	return e
}

// attachRig builds actor -> armature -> animation player, the shape the
// spawn system produces, and returns the player entity.
func attachRig(w *ecs.World, owner ecs.Entity) ecs.Entity {
	armature := w.CreateEntity()
	tr := component.NewTransform(mgl64.Vec3{})
	_ = ecs.Add(w, armature, component.ParentComponent, &component.Parent{Entity: component.EntityRef(owner)})
	_ = ecs.Add(w, armature, component.TransformComponent, &tr)

	animPlayer := w.CreateEntity()
	_ = ecs.Add(w, animPlayer, component.ParentComponent, &component.Parent{Entity: component.EntityRef(armature)})
	_ = ecs.Add(w, animPlayer, component.AnimationPlayerComponent, &component.AnimationPlayer{})
	return animPlayer
}

func TestBindWalksToNearestActorAncestor(t *testing.T) {
	w := newTestWorld(0.1)
	actor := spawnUnboundActor(w)
	animPlayer := attachRig(w, actor)

	NewAnimationBindSystem().Update(w)

	if got := actorOf(w, actor).Rig; got != component.EntityRef(animPlayer) {
		t.Fatalf("rig = %v; want the spawned animation player", got)
	}
	p, _ := ecs.Get(w, animPlayer, component.AnimationPlayerComponent)
	if p.Graph != w.Animations() {
		t.Fatalf("player was not assigned the shared clip table")
	}
}

func TestBindIsOncePerActor(t *testing.T) {
	w := newTestWorld(0.1)
	actor := spawnUnboundActor(w)
	first := attachRig(w, actor)

	sys := NewAnimationBindSystem()
	sys.Update(w)

	second := attachRig(w, actor)
	sys.Update(w)

	if got := actorOf(w, actor).Rig; got != component.EntityRef(first) {
		t.Fatalf("rig = %v; want the first player %v to win", got, first)
	}
	p, _ := ecs.Get(w, second, component.AnimationPlayerComponent)
	if p.Graph == nil {
		t.Fatalf("second player should still get the clip table")
	}
}

func TestBindProcessesEachPlayerOnce(t *testing.T) {
	w := newTestWorld(0.1)
	actor := spawnUnboundActor(w)
	attachRig(w, actor)

	sys := NewAnimationBindSystem()
	sys.Update(w)

	// Unbinding by hand must not re-trigger on later ticks; the player is
	// no longer newly observed.
	actorOf(w, actor).Rig = component.NoEntity
	sys.Update(w)

	if got := actorOf(w, actor).Rig; got != component.NoEntity {
		t.Fatalf("already-processed player was bound again to %v", got)
	}
}

func TestBindOrphanPlayerIsAssignedNotBound(t *testing.T) {
	w := newTestWorld(0.1)
	actor := spawnUnboundActor(w)

	orphan := w.CreateEntity()
	_ = ecs.Add(w, orphan, component.AnimationPlayerComponent, &component.AnimationPlayer{})

	NewAnimationBindSystem().Update(w)

	p, _ := ecs.Get(w, orphan, component.AnimationPlayerComponent)
	if p.Graph == nil {
		t.Fatalf("orphan player should still get the clip table")
	}
	if got := actorOf(w, actor).Rig; got != component.NoEntity {
		t.Fatalf("no parent chain, yet actor got rig %v", got)
	}
}

func TestSpawnThenBindPipeline(t *testing.T) {
	const dt = 0.1
	w := newTestWorld(dt)
	actor := spawnUnboundActor(w)
	_ = ecs.Add(w, actor, component.PendingRigComponent, &component.PendingRig{Remaining: 0.25})

	spawn := NewRigSpawnSystem()
	bind := NewAnimationBindSystem()

	for i := 0; i < 2; i++ {
		spawn.Update(w)
		bind.Update(w)
		if got := actorOf(w, actor).Rig; got != component.NoEntity {
			t.Fatalf("tick %d: bound %v before the load delay elapsed", i, got)
		}
	}

	spawn.Update(w)
	bind.Update(w)

	rig := actorOf(w, actor).Rig
	if rig == component.NoEntity {
		t.Fatalf("rig never bound after the load delay")
	}
	if ecs.Has(w, actor, component.PendingRigComponent) {
		t.Fatalf("pending marker should be consumed on spawn")
	}
	parent, ok := ecs.Get(w, ecs.Entity(rig), component.ParentComponent)
	if !ok {
		t.Fatalf("spawned player has no parent link")
	}
	armature, ok := ecs.Get(w, ecs.Entity(parent.Entity), component.ParentComponent)
	if !ok || armature.Entity != component.EntityRef(actor) {
		t.Fatalf("armature does not hang off the actor")
	}
}
