package component

import "github.com/go-gl/mathgl/mgl64"

// Transform holds a position and orientation. Actor transforms are
// world-space; rig fragments parented to the camera treat Position as a
// camera-local offset.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

func NewTransform(pos mgl64.Vec3) Transform {
	return Transform{Position: pos, Rotation: mgl64.QuatIdent()}
}

// Forward returns the facing direction (-Z when unrotated).
func (t *Transform) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{0, 0, -1})
}

// RotateY applies a yaw rotation around the world Y axis.
func (t *Transform) RotateY(angle float64) {
	t.Rotation = mgl64.QuatRotate(angle, mgl64.Vec3{0, 1, 0}).Mul(t.Rotation)
}

var TransformComponent = NewComponent[Transform]()
