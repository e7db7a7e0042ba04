package component

// Input is the per-tick movement/action intent for a controllable actor.
// It is recomputed fresh every tick and never persisted. Axes are the raw
// sum of keyboard and virtual pad contributions, deliberately unclamped:
// both sources active at once add up.
type Input struct {
	MoveX float64
	MoveZ float64
	Jump  bool
	Punch bool
}

// Moving reports whether any movement axis is non-zero.
func (in *Input) Moving() bool {
	return in.MoveX*in.MoveX+in.MoveZ*in.MoveZ > 0
}

var InputComponent = NewComponent[Input]()
