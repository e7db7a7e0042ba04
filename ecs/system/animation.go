package system

import (
	"github.com/TkmOhara/kero3d/ecs"
	"github.com/TkmOhara/kero3d/ecs/component"
)

// AnimationSystem maps each actor's state to a clip selection, applies it
// to the bound rig, then advances every playback head by the tick's delta.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if w == nil || w.Clock() == nil {
		return
	}
	dt := w.Clock().Delta

	ecs.ForEach(w, component.ActorComponent, func(_ ecs.Entity, actor *component.Actor) {
		if actor.Rig == component.NoEntity {
			return
		}
		p, ok := ecs.Get(w, ecs.Entity(actor.Rig), component.AnimationPlayerComponent)
		if !ok || p.Graph == nil {
			return
		}

		choice := p.Graph.Select(actor.Kind, actor.State)
		// Re-issuing play for the already-selected clip would snap the
		// pose back to frame zero every tick.
		if p.IsPlayingClip(choice.Clip) {
			return
		}
		clip, ok := p.Graph.Clips[choice.Clip]
		if !ok {
			return
		}
		p.Play(clip, choice.Loop, choice.Speed)
	})

	ecs.ForEach(w, component.AnimationPlayerComponent, func(_ ecs.Entity, p *component.AnimationPlayer) {
		p.Advance(dt)
	})
}
