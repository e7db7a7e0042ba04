package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/TkmOhara/kero3d/ecs"
	"github.com/TkmOhara/kero3d/ecs/component"
	"github.com/TkmOhara/kero3d/pad"
)

// InputSystem aggregates the keyboard and the injected virtual pad into one
// per-tick intent, written to every entity carrying an Input component.
type InputSystem struct {
	pad  *pad.Pad
	keys func() keyState
}

type keyState struct {
	forward      bool
	back         bool
	left         bool
	right        bool
	jumpPressed  bool
	punchPressed bool
}

func NewInputSystem(p *pad.Pad) *InputSystem {
	return &InputSystem{pad: p, keys: readKeyboard}
}

func readKeyboard() keyState {
	return keyState{
		forward:      ebiten.IsKeyPressed(ebiten.KeyW),
		back:         ebiten.IsKeyPressed(ebiten.KeyS),
		left:         ebiten.IsKeyPressed(ebiten.KeyA),
		right:        ebiten.IsKeyPressed(ebiten.KeyD),
		jumpPressed:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		punchPressed: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
}

func (s *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ks := s.keys()

	// A writer holding the pad lock just means no external contribution
	// this tick; the next tick reads it again.
	var ps pad.State
	if s.pad != nil {
		if snap, ok := s.pad.TrySnapshot(); ok {
			ps = snap
		}
	}

	intent := combineIntent(ks, ps)
	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, in *component.Input) {
		*in = intent
	})
}

// combineIntent sums keyboard and pad axes (unclamped) and ORs the edge
// triggered keys with the latched pad buttons.
func combineIntent(ks keyState, ps pad.State) component.Input {
	var in component.Input
	if ks.left {
		in.MoveX -= 1
	}
	if ks.right {
		in.MoveX += 1
	}
	if ks.forward {
		in.MoveZ -= 1
	}
	if ks.back {
		in.MoveZ += 1
	}
	in.MoveX += ps.AxisX
	in.MoveZ += ps.AxisY
	in.Jump = ks.jumpPressed || ps.Jump
	in.Punch = ks.punchPressed || ps.Punch
	return in
}
