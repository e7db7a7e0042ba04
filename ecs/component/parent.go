package component

// Parent links an entity to its scene-graph parent. Chains are acyclic by
// construction; the bind system walks them leaf to root.
type Parent struct {
	Entity EntityRef
}

var ParentComponent = NewComponent[Parent]()
