package component

// ActorKind distinguishes the two controllable actor flavors.
type ActorKind int

const (
	ActorPlayer ActorKind = iota
	ActorEnemy
)

// ActorState is the combat/locomotion state. Exactly one value holds at any
// time; actors spawn Idle.
type ActorState int

const (
	StateIdle ActorState = iota
	StateRunning
	StateJumping
	StatePunching
)

func (s ActorState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateJumping:
		return "jumping"
	case StatePunching:
		return "punching"
	default:
		return "idle"
	}
}

// ParseActorState maps a state name back to its value.
func ParseActorState(s string) (ActorState, bool) {
	switch s {
	case "idle":
		return StateIdle, true
	case "running":
		return StateRunning, true
	case "jumping":
		return StateJumping, true
	case "punching":
		return StatePunching, true
	}
	return StateIdle, false
}

// EntityRef refers to another entity without depending on the ecs package.
// Zero means unset.
type EntityRef uint64

const NoEntity EntityRef = 0

// Actor is a character with locomotion speed, a state machine, and an
// optionally bound animation player. Rig is written at most once, by the
// bind system, the first tick a matching descendant rig is discovered.
type Actor struct {
	Kind  ActorKind
	Speed float64
	State ActorState
	Rig   EntityRef
}

var ActorComponent = NewComponent[Actor]()
