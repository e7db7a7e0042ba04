package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/TkmOhara/kero3d/ecs"
	"github.com/TkmOhara/kero3d/ecs/component"
)

const (
	breatheRate   = 2.0
	breatheAmount = 0.01
	bobRate       = 10.0
	bobAmount     = 0.05
	punchRate     = 20.0
	punchAmount   = 0.3
	smoothingRate = 10.0
)

// ViewModelSystem animates the two first-person hand fragments procedurally
// from elapsed wall time and the player's state, independent of the
// skeletal rig. Hand transforms hold camera-local offsets.
type ViewModelSystem struct{}

func NewViewModelSystem() *ViewModelSystem {
	return &ViewModelSystem{}
}

func (s *ViewModelSystem) Update(w *ecs.World) {
	if w == nil || w.Clock() == nil {
		return
	}
	clock := w.Clock()

	playerEnt, ok := soloPlayer(w)
	if !ok {
		return
	}
	actor, ok := ecs.Get(w, playerEnt, component.ActorComponent)
	if !ok {
		return
	}

	t := clock.Elapsed
	ecs.ForEach2(w, component.HandComponent, component.TransformComponent, func(_ ecs.Entity, hand *component.Hand, tr *component.Transform) {
		target := handTarget(hand, actor.State, t)
		// Same unclamped rate*dt blend as the enemy heading.
		tr.Position = lerpVec3(tr.Position, target, smoothingRate*clock.Delta)
	})
}

func handTarget(hand *component.Hand, state component.ActorState, t float64) mgl64.Vec3 {
	target := hand.Rest
	switch state {
	case component.StateRunning:
		target[1] += math.Sin(t*bobRate) * bobAmount
		phase := 0.0
		if hand.Side == component.HandRight {
			phase = math.Pi
		}
		target[2] += math.Sin(t*bobRate+phase) * bobAmount
	case component.StatePunching:
		// Only the right hand strikes; the motion is a continuous
		// oscillation toward -Z, not a one-shot stroke.
		if hand.Side == component.HandRight {
			target[2] -= math.Abs(math.Sin(t*punchRate)) * punchAmount
		}
	case component.StateJumping:
		// rest pose only
	default:
		target[1] += math.Sin(t*breatheRate) * breatheAmount
	}
	return target
}

func lerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
