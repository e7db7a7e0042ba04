// Package audio wraps ebiten's audio context in a fire-and-forget one-shot
// mixer.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// Mixer owns the audio context and the decoded one-shot clips.
type Mixer struct {
	ctx   *audio.Context
	clips map[string][]byte
}

func NewMixer() *Mixer {
	return &Mixer{
		ctx:   audio.NewContext(sampleRate),
		clips: make(map[string][]byte),
	}
}

// RegisterWAV decodes a wav file and stores its PCM under name.
func (m *Mixer) RegisterWAV(name string, data []byte) error {
	stream, err := wav.DecodeWithSampleRate(m.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("audio: decode %s: %w", name, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("audio: read %s: %w", name, err)
	}
	m.clips[name] = pcm
	return nil
}

// PlayOnce plays a registered clip once. Unknown names are a no-op; the
// caller never observes playback.
func (m *Mixer) PlayOnce(name string) {
	pcm, ok := m.clips[name]
	if !ok {
		return
	}
	m.ctx.NewPlayerFromBytes(pcm).Play()
}

// PlayLoop starts a registered clip looping indefinitely. Unknown names
// are a no-op.
func (m *Mixer) PlayLoop(name string) {
	pcm, ok := m.clips[name]
	if !ok {
		return
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := m.ctx.NewPlayer(loop)
	if err != nil {
		log.Printf("audio: loop %s: %v", name, err)
		return
	}
	player.Play()
}
