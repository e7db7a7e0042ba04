package system

import (
	"testing"

	"github.com/TkmOhara/kero3d/ecs"
	"github.com/TkmOhara/kero3d/ecs/component"
	"github.com/TkmOhara/kero3d/pad"
)

func TestCombineIntent(t *testing.T) {
	cases := []struct {
		name string
		keys keyState
		pad  pad.State
		want component.Input
	}{
		{
			"all_quiet",
			keyState{}, pad.State{},
			component.Input{},
		},
		{
			"keyboard_axes",
			keyState{forward: true, left: true}, pad.State{},
			component.Input{MoveX: -1, MoveZ: -1},
		},
		{
			"opposed_keys_cancel",
			keyState{left: true, right: true, forward: true, back: true}, pad.State{},
			component.Input{},
		},
		{
			"pad_axes_pass_through",
			keyState{}, pad.State{AxisX: 0.5, AxisY: -0.25},
			component.Input{MoveX: 0.5, MoveZ: -0.25},
		},
		{
			"sources_sum_unclamped",
			keyState{right: true, back: true}, pad.State{AxisX: 1, AxisY: 1},
			component.Input{MoveX: 2, MoveZ: 2},
		},
		{
			"buttons_or_together",
			keyState{jumpPressed: true}, pad.State{Punch: true},
			component.Input{Jump: true, Punch: true},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := combineIntent(c.keys, c.pad); got != c.want {
				t.Fatalf("intent = %+v; want %+v", got, c.want)
			}
		})
	}
}

func TestInputSystemWritesIntentToAllReceivers(t *testing.T) {
	w := newTestWorld(0.1)
	a := spawnTestPlayer(w)
	b := w.CreateEntity()
	_ = ecs.Add(w, b, component.InputComponent, &component.Input{MoveX: 9})

	sys := &InputSystem{keys: func() keyState { return keyState{forward: true} }}
	sys.Update(w)

	want := component.Input{MoveZ: -1}
	if got := *inputOf(w, a); got != want {
		t.Fatalf("player intent = %+v; want %+v", got, want)
	}
	in, _ := ecs.Get(w, b, component.InputComponent)
	if *in != want {
		t.Fatalf("second receiver intent = %+v; want %+v", *in, want)
	}
}

func TestPadButtonStaysLatchedAcrossTicks(t *testing.T) {
	w := newTestWorld(0.1)
	player := spawnTestPlayer(w)

	p := pad.New()
	sys := &InputSystem{pad: p, keys: func() keyState { return keyState{} }}

	p.SetButtons(false, true)
	for i := 0; i < 3; i++ {
		sys.Update(w)
		if !inputOf(w, player).Punch {
			t.Fatalf("tick %d: latched punch button dropped", i)
		}
	}

	p.SetButtons(false, false)
	sys.Update(w)
	if inputOf(w, player).Punch {
		t.Fatalf("released punch button still reads pressed")
	}
}

func TestNilPadReadsAsAbsent(t *testing.T) {
	w := newTestWorld(0.1)
	player := spawnTestPlayer(w)

	sys := &InputSystem{keys: func() keyState { return keyState{punchPressed: true} }}
	sys.Update(w)

	in := inputOf(w, player)
	if !in.Punch || in.MoveX != 0 || in.MoveZ != 0 {
		t.Fatalf("intent = %+v; want keyboard-only punch", *in)
	}
}
