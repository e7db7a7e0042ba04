package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/TkmOhara/kero3d/ecs"
	"github.com/TkmOhara/kero3d/ecs/component"
)

const (
	rotationSpeed    = 2.0  // rad per unit time per lateral axis unit
	headingBlendRate = 10.0 // slerp factor per second, unclamped
)

// MovementSystem integrates the continuous part of actor motion: yaw from
// the lateral axis, state-gated forward translation for the player, and the
// straight-line seek toward the player for a running enemy.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil || w.Clock() == nil {
		return
	}
	dt := w.Clock().Delta

	var playerPos mgl64.Vec3
	playerFound := false
	if playerEnt, ok := soloPlayer(w); ok {
		if pt, ok := ecs.Get(w, playerEnt, component.TransformComponent); ok {
			playerPos = pt.Position
			playerFound = true
		}
	}

	ecs.ForEach2(w, component.ActorComponent, component.TransformComponent, func(e ecs.Entity, actor *component.Actor, tr *component.Transform) {
		switch actor.Kind {
		case component.ActorPlayer:
			s.movePlayer(w, e, actor, tr, dt)
		case component.ActorEnemy:
			if playerFound {
				s.moveEnemy(actor, tr, playerPos, dt)
			}
		}
	})
}

func (s *MovementSystem) movePlayer(w *ecs.World, e ecs.Entity, actor *component.Actor, tr *component.Transform, dt float64) {
	in, ok := ecs.Get(w, e, component.InputComponent)
	if !ok {
		return
	}

	// Yaw integrates in every state, punching included.
	if rot := -in.MoveX; rot != 0 {
		tr.RotateY(rot * rotationSpeed * dt)
	}

	if actor.State == component.StatePunching {
		return
	}
	if fwd := -in.MoveZ; fwd != 0 {
		tr.Position = tr.Position.Add(tr.Forward().Mul(fwd * actor.Speed * dt))
	}
}

func (s *MovementSystem) moveEnemy(actor *component.Actor, tr *component.Transform, playerPos mgl64.Vec3, dt float64) {
	if actor.State != component.StateRunning {
		return
	}

	dir := playerPos.Sub(tr.Position)
	dir[1] = 0
	if dir.Dot(dir) == 0 {
		return
	}
	dir = dir.Normalize()
	tr.Position = tr.Position.Add(dir.Mul(actor.Speed * dt))

	// Heading blends toward the seek direction. The factor is rate*dt,
	// kept unclamped to match the legacy overshoot under frame hitches.
	target := mgl64.QuatRotate(math.Atan2(dir.X(), dir.Z()), mgl64.Vec3{0, 1, 0})
	tr.Rotation = mgl64.QuatSlerp(tr.Rotation, target, headingBlendRate*dt)
}
