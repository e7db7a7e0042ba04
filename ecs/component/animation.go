package component

import "math"

// ClipID names a skeletal animation clip.
type ClipID string

const (
	ClipIdle  ClipID = "idle"
	ClipRun   ClipID = "run"
	ClipJump  ClipID = "jump"
	ClipPunch ClipID = "punch"
)

// Clip describes one playable clip.
type Clip struct {
	Name   ClipID
	Length float64 // seconds at speed 1.0
}

// Choice is one row of the state -> playback lookup table.
type Choice struct {
	Clip  ClipID
	Loop  bool
	Speed float64
}

// AnimationSet is the clip table shared read-only by every actor.
type AnimationSet struct {
	Clips map[ClipID]Clip
}

// Select maps an actor state to its clip selection. The enemy model ships
// without a jump clip, so enemy Jumping falls back to the idle loop.
func (s *AnimationSet) Select(kind ActorKind, state ActorState) Choice {
	switch state {
	case StateRunning:
		return Choice{Clip: ClipRun, Loop: true, Speed: 1.5}
	case StateJumping:
		if kind == ActorPlayer {
			return Choice{Clip: ClipJump, Loop: false, Speed: 1.0}
		}
		return Choice{Clip: ClipIdle, Loop: true, Speed: 1.0}
	case StatePunching:
		return Choice{Clip: ClipPunch, Loop: false, Speed: 1.0}
	default:
		return Choice{Clip: ClipIdle, Loop: true, Speed: 1.0}
	}
}

// AnimationPlayer is the playback head of one instantiated rig. Graph stays
// nil until the bind system observes the player for the first time.
type AnimationPlayer struct {
	Graph   *AnimationSet
	Current ClipID
	Length  float64
	Time    float64
	Speed   float64
	Loop    bool
	Playing bool
}

// IsPlayingClip reports whether clip is the active selection, whether or
// not it has run out.
func (p *AnimationPlayer) IsPlayingClip(clip ClipID) bool {
	return p.Current == clip
}

// AllFinished reports whether the current non-looping clip has reached its
// end. Looping clips never finish.
func (p *AnimationPlayer) AllFinished() bool {
	return p.Current != "" && !p.Loop && p.Time >= p.Length
}

// Play restarts playback from the beginning of clip.
func (p *AnimationPlayer) Play(clip Clip, loop bool, speed float64) {
	p.Current = clip.Name
	p.Length = clip.Length
	p.Time = 0
	p.Speed = speed
	p.Loop = loop
	p.Playing = true
}

// Advance moves the playback head by dt seconds of wall time.
func (p *AnimationPlayer) Advance(dt float64) {
	if !p.Playing || p.Length <= 0 {
		return
	}
	p.Time += dt * p.Speed
	if p.Time < p.Length {
		return
	}
	if p.Loop {
		p.Time = math.Mod(p.Time, p.Length)
		return
	}
	p.Time = p.Length
	p.Playing = false
}

var AnimationPlayerComponent = NewComponent[AnimationPlayer]()
