package component

// PendingRig stands in for a model scene that is still instantiating
// asynchronously. When Remaining runs out, the spawn system attaches the
// armature hierarchy with its animation player beneath the owning entity.
type PendingRig struct {
	Remaining float64
}

var PendingRigComponent = NewComponent[PendingRig]()
