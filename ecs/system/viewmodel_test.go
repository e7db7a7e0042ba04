package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/TkmOhara/kero3d/ecs"
	"github.com/TkmOhara/kero3d/ecs/component"
)

func spawnTestHand(w *ecs.World, side component.HandSide, rest mgl64.Vec3) ecs.Entity {
	e := w.CreateEntity()
	tr := component.NewTransform(rest)
	_ = ecs.Add(w, e, component.HandComponent, &component.Hand{Side: side, Rest: rest})
	_ = ecs.Add(w, e, component.TransformComponent, &tr)
	return e
}

func TestHandTargets(t *testing.T) {
	left := &component.Hand{Side: component.HandLeft, Rest: mgl64.Vec3{-0.25, -0.2, -0.4}}
	right := &component.Hand{Side: component.HandRight, Rest: mgl64.Vec3{0.25, -0.2, -0.4}}
	const elapsed = 0.3

	cases := []struct {
		name  string
		hand  *component.Hand
		state component.ActorState
		want  mgl64.Vec3
	}{
		{
			"idle_breathes_on_y", left, component.StateIdle,
			mgl64.Vec3{-0.25, -0.2 + math.Sin(elapsed*2.0)*0.01, -0.4},
		},
		{
			"run_bobs_left", left, component.StateRunning,
			mgl64.Vec3{-0.25, -0.2 + math.Sin(elapsed*10.0)*0.05, -0.4 + math.Sin(elapsed*10.0)*0.05},
		},
		{
			"run_bobs_right_out_of_phase", right, component.StateRunning,
			mgl64.Vec3{0.25, -0.2 + math.Sin(elapsed*10.0)*0.05, -0.4 + math.Sin(elapsed*10.0+math.Pi)*0.05},
		},
		{
			"punch_extends_right_hand", right, component.StatePunching,
			mgl64.Vec3{0.25, -0.2, -0.4 - math.Abs(math.Sin(elapsed*20.0))*0.3},
		},
		{
			"punch_leaves_left_hand_at_rest", left, component.StatePunching,
			mgl64.Vec3{-0.25, -0.2, -0.4},
		},
		{
			"jumping_rests_both_hands", right, component.StateJumping,
			mgl64.Vec3{0.25, -0.2, -0.4},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := handTarget(c.hand, c.state, elapsed)
			if !approxVec3(got, c.want, 1e-12) {
				t.Fatalf("target = %v; want %v", got, c.want)
			}
		})
	}
}

func TestHandSmoothingFactor(t *testing.T) {
	// rate 10 at dt 0.05 gives a factor of exactly 0.5, so one tick covers
	// half the remaining distance to the target.
	const dt = 0.05
	w := newTestWorld(dt)
	player := spawnTestPlayer(w)
	actorOf(w, player).State = component.StateJumping

	rest := mgl64.Vec3{0.25, -0.2, -0.4}
	hand := spawnTestHand(w, component.HandRight, rest)
	tr, _ := ecs.Get(w, hand, component.TransformComponent)
	tr.Position = mgl64.Vec3{0.25, -0.2, 0.6} // one unit off on z

	NewViewModelSystem().Update(w)

	want := mgl64.Vec3{0.25, -0.2, 0.1}
	if !approxVec3(tr.Position, want, 1e-12) {
		t.Fatalf("position = %v; want %v", tr.Position, want)
	}
}

func TestHandSmoothingOvershootsOnLongTick(t *testing.T) {
	// rate 10 at dt 0.2 gives a factor of 2.0; the blend is deliberately
	// unclamped and lands past the target.
	const dt = 0.2
	w := newTestWorld(dt)
	player := spawnTestPlayer(w)
	actorOf(w, player).State = component.StateJumping

	rest := mgl64.Vec3{0, 0, 0}
	hand := spawnTestHand(w, component.HandRight, rest)
	tr, _ := ecs.Get(w, hand, component.TransformComponent)
	tr.Position = mgl64.Vec3{0, 0, 1}

	NewViewModelSystem().Update(w)

	want := mgl64.Vec3{0, 0, -1}
	if !approxVec3(tr.Position, want, 1e-12) {
		t.Fatalf("position = %v; want overshoot to %v", tr.Position, want)
	}
}

func TestViewModelNoPlayerIsNoop(t *testing.T) {
	w := newTestWorld(0.05)
	hand := spawnTestHand(w, component.HandLeft, mgl64.Vec3{-0.25, -0.2, -0.4})
	tr, _ := ecs.Get(w, hand, component.TransformComponent)
	tr.Position = mgl64.Vec3{1, 2, 3}

	NewViewModelSystem().Update(w)

	if !approxVec3(tr.Position, mgl64.Vec3{1, 2, 3}, 0) {
		t.Fatalf("hands moved without a player, position = %v", tr.Position)
	}
}

func TestViewModelAmbiguousPlayerIsNoop(t *testing.T) {
	w := newTestWorld(0.05)
	spawnTestPlayer(w)
	spawnTestPlayer(w)
	hand := spawnTestHand(w, component.HandLeft, mgl64.Vec3{-0.25, -0.2, -0.4})
	tr, _ := ecs.Get(w, hand, component.TransformComponent)
	tr.Position = mgl64.Vec3{1, 2, 3}

	NewViewModelSystem().Update(w)

	if !approxVec3(tr.Position, mgl64.Vec3{1, 2, 3}, 0) {
		t.Fatalf("hands moved with two players, position = %v", tr.Position)
	}
}
