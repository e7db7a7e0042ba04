package component

import "github.com/go-gl/mathgl/mgl64"

// HandSide tags a first-person rig fragment.
type HandSide int

const (
	HandLeft HandSide = iota
	HandRight
)

// Hand is one first-person hand fragment. The view-model system moves its
// transform procedurally around the fixed rest offset.
type Hand struct {
	Side HandSide
	Rest mgl64.Vec3
}

var HandComponent = NewComponent[Hand]()
