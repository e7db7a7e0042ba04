package system

import (
	"github.com/TkmOhara/kero3d/ecs"
	"github.com/TkmOhara/kero3d/ecs/component"
)

// ActorStateSystem advances every actor's state machine once per tick.
// Player transitions come from the input intent; enemy transitions come
// from the AI decision computed earlier in the pipeline.
type ActorStateSystem struct{}

func NewActorStateSystem() *ActorStateSystem {
	return &ActorStateSystem{}
}

func (s *ActorStateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.ActorComponent, func(e ecs.Entity, actor *component.Actor) {
		switch actor.Kind {
		case component.ActorEnemy:
			// The enemy brain owns the whole decision, including the
			// sticky punch exit. No decision yet means no transition.
			if dec, ok := ecs.Get(w, e, component.AIDecisionComponent); ok {
				actor.State = dec.State
			}
		default:
			s.updatePlayer(w, e, actor)
		}
	})
}

func (s *ActorStateSystem) updatePlayer(w *ecs.World, e ecs.Entity, actor *component.Actor) {
	// The finished-clip exit runs before the intent rules so a completed
	// punch or jump re-enters the decision table on the same tick.
	if actor.State == component.StatePunching || actor.State == component.StateJumping {
		if !rigAllFinished(w, actor) {
			return
		}
		actor.State = component.StateIdle
	}

	in, ok := ecs.Get(w, e, component.InputComponent)
	if !ok {
		return
	}

	switch {
	case in.Punch:
		actor.State = component.StatePunching
		w.Events().Push(ecs.Event{Type: ecs.EventPlaySound, Data: ecs.SoundRequest{Name: "punch"}})
	case in.Jump:
		actor.State = component.StateJumping
	case in.Moving():
		actor.State = component.StateRunning
	default:
		actor.State = component.StateIdle
	}
}

// rigAllFinished reports whether the actor's bound clip has played out. An
// unbound or missing rig reads as not finished, so the actor stays in its
// sticky state until the rig shows up.
func rigAllFinished(w *ecs.World, actor *component.Actor) bool {
	if actor.Rig == component.NoEntity {
		return false
	}
	p, ok := ecs.Get(w, ecs.Entity(actor.Rig), component.AnimationPlayerComponent)
	if !ok {
		return false
	}
	return p.AllFinished()
}
