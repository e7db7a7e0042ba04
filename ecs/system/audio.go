package system

import (
	"github.com/TkmOhara/kero3d/ecs"
)

// Mixer plays a named one-shot clip. Playback is fire and forget; the
// simulation never observes the result.
type Mixer interface {
	PlayOnce(name string)
}

// AudioSystem drains the tick's sound requests into the mixer.
type AudioSystem struct {
	mixer Mixer
}

func NewAudioSystem(m Mixer) *AudioSystem {
	return &AudioSystem{mixer: m}
}

func (s *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		if evt.Type != ecs.EventPlaySound {
			continue
		}
		req, ok := evt.Data.(ecs.SoundRequest)
		if !ok || s.mixer == nil {
			continue
		}
		s.mixer.PlayOnce(req.Name)
	}
}
