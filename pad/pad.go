// Package pad holds the virtual control surface shared between the host UI
// and the simulation tick. It is the only concurrency boundary in the
// module: a UI callback may write it while the input system reads it.
package pad

import "sync"

// State is one snapshot of the pad. Jump and Punch are latches, not edges:
// they stay set until a caller explicitly writes them false again.
type State struct {
	AxisX float64
	AxisY float64
	Jump  bool
	Punch bool
}

// Pad is a single guarded cell with overwrite-latest semantics. No queueing,
// no backpressure. Inject one instance into the input system and hand the
// same instance to whatever writes it.
type Pad struct {
	mu    sync.Mutex
	state State
}

func New() *Pad {
	return &Pad{}
}

// SetAxes overwrites the joystick axes. Values are not range-checked.
func (p *Pad) SetAxes(x, y float64) {
	p.mu.Lock()
	p.state.AxisX = x
	p.state.AxisY = y
	p.mu.Unlock()
}

// SetButtons overwrites both latched buttons. The simulation never clears
// them; a caller that wants an edge must set them false itself.
func (p *Pad) SetButtons(jump, punch bool) {
	p.mu.Lock()
	p.state.Jump = jump
	p.state.Punch = punch
	p.mu.Unlock()
}

// TrySnapshot returns the current state without blocking. When a writer
// holds the lock, ok is false and the caller treats the external
// contribution as absent for this tick.
func (p *Pad) TrySnapshot() (State, bool) {
	if !p.mu.TryLock() {
		return State{}, false
	}
	s := p.state
	p.mu.Unlock()
	return s, true
}
