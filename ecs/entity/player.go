package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/TkmOhara/kero3d/ecs"
	"github.com/TkmOhara/kero3d/ecs/component"
	"github.com/TkmOhara/kero3d/prefabs"
)

// NewPlayer spawns the first-person player actor from its prefab: the actor
// root with a pending rig, plus a camera pivot child carrying the two hand
// fragments.
func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadActorSpec("player.yaml")
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}

	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{})
	_ = ecs.Add(w, e, component.ActorComponent, &component.Actor{
		Kind:  component.ActorPlayer,
		Speed: spec.Speed,
	})
	_ = ecs.Add(w, e, component.InputComponent, &component.Input{})

	tr := spawnTransform(spec.Transform)
	_ = ecs.Add(w, e, component.TransformComponent, &tr)
	_ = ecs.Add(w, e, component.PendingRigComponent, &component.PendingRig{Remaining: spec.Rig.Delay})

	if spec.Camera != nil {
		camera := w.CreateEntity()
		camTr := component.NewTransform(vec3(spec.Camera.Offset))
		_ = ecs.Add(w, camera, component.CameraTagComponent, &component.CameraTag{})
		_ = ecs.Add(w, camera, component.ParentComponent, &component.Parent{Entity: component.EntityRef(e)})
		_ = ecs.Add(w, camera, component.TransformComponent, &camTr)

		for _, h := range spec.Hands {
			side := component.HandLeft
			if h.Side == "right" {
				side = component.HandRight
			}
			rest := vec3(h.Offset)
			hand := w.CreateEntity()
			handTr := component.NewTransform(rest)
			_ = ecs.Add(w, hand, component.ParentComponent, &component.Parent{Entity: component.EntityRef(camera)})
			_ = ecs.Add(w, hand, component.TransformComponent, &handTr)
			_ = ecs.Add(w, hand, component.HandComponent, &component.Hand{Side: side, Rest: rest})
		}
	}

	return e, nil
}

func spawnTransform(spec prefabs.TransformSpec) component.Transform {
	tr := component.NewTransform(vec3(spec.Position))
	if spec.Yaw != 0 {
		tr.RotateY(spec.Yaw)
	}
	return tr
}

func vec3(v prefabs.Vec3Spec) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
