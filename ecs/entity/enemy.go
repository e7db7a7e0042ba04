package entity

import (
	"fmt"

	"github.com/TkmOhara/kero3d/ecs"
	"github.com/TkmOhara/kero3d/ecs/component"
	"github.com/TkmOhara/kero3d/prefabs"
)

// NewEnemy spawns the reactive enemy actor from its prefab.
func NewEnemy(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadActorSpec("enemy.yaml")
	if err != nil {
		return 0, fmt.Errorf("enemy: load spec: %w", err)
	}
	if spec.AI == nil {
		return 0, fmt.Errorf("enemy: spec %s has no ai block", spec.Name)
	}

	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.EnemyTagComponent, &component.EnemyTag{})
	_ = ecs.Add(w, e, component.ActorComponent, &component.Actor{
		Kind:  component.ActorEnemy,
		Speed: spec.Speed,
	})
	_ = ecs.Add(w, e, component.AIComponent, &component.AI{
		ChaseRange:  spec.AI.ChaseRange,
		AttackRange: spec.AI.AttackRange,
		Script:      spec.AI.Script,
	})

	tr := spawnTransform(spec.Transform)
	_ = ecs.Add(w, e, component.TransformComponent, &tr)
	_ = ecs.Add(w, e, component.PendingRigComponent, &component.PendingRig{Remaining: spec.Rig.Delay})

	return e, nil
}
