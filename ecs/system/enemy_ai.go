package system

import (
	"fmt"
	"log"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/TkmOhara/kero3d/ecs"
	"github.com/TkmOhara/kero3d/ecs/component"
	"github.com/TkmOhara/kero3d/prefabs"
)

// EnemyAISystem computes each enemy's desired state from its planar
// distance to the player. If the enemy spec names a tengo script, that
// script makes the decision instead of the built-in thresholds.
//
// Requires exactly one player actor; with zero or several the tick is a
// silent no-op and the enemy keeps its previous decision.
type EnemyAISystem struct {
	brains map[string]*scriptBrain
}

func NewEnemyAISystem() *EnemyAISystem {
	return &EnemyAISystem{brains: make(map[string]*scriptBrain)}
}

func (s *EnemyAISystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	playerEnt, ok := soloPlayer(w)
	if !ok {
		return
	}
	pt, ok := ecs.Get(w, playerEnt, component.TransformComponent)
	if !ok {
		return
	}
	playerPos := pt.Position

	for _, e := range w.Query(
		component.EnemyTagComponent.ID(),
		component.ActorComponent.ID(),
		component.AIComponent.ID(),
		component.TransformComponent.ID(),
	) {
		actor, ok := ecs.Get(w, e, component.ActorComponent)
		if !ok {
			continue
		}
		ai, ok := ecs.Get(w, e, component.AIComponent)
		if !ok {
			continue
		}
		tr, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		distance := planarDistance(tr.Position, playerPos)
		finished := rigAllFinished(w, actor)

		next := s.decide(actor.State, distance, ai, finished)

		if dec, ok := ecs.Get(w, e, component.AIDecisionComponent); ok {
			dec.State = next
		} else {
			_ = ecs.Add(w, e, component.AIDecisionComponent, &component.AIDecision{State: next})
		}
	}
}

func (s *EnemyAISystem) decide(current component.ActorState, distance float64, ai *component.AI, clipFinished bool) component.ActorState {
	if ai.Script != "" {
		if brain := s.brain(ai.Script); brain != nil {
			if next, err := brain.decide(current, distance, ai, clipFinished); err == nil {
				return next
			}
		}
	}
	return decideByDistance(current, distance, ai, clipFinished)
}

// decideByDistance is the built-in reactive decision. A punch in progress
// is sticky; otherwise the attack range wins over the chase range.
func decideByDistance(current component.ActorState, distance float64, ai *component.AI, clipFinished bool) component.ActorState {
	if current == component.StatePunching && !clipFinished {
		return component.StatePunching
	}
	switch {
	case distance < ai.AttackRange:
		return component.StatePunching
	case distance < ai.ChaseRange:
		return component.StateRunning
	default:
		return component.StateIdle
	}
}

// soloPlayer returns the player entity only when exactly one exists. Zero
// or several players make every player-relative query ambiguous, so the
// systems that need one treat that tick as a no-op.
func soloPlayer(w *ecs.World) (ecs.Entity, bool) {
	players := w.Query(component.PlayerTagComponent.ID())
	if len(players) != 1 {
		return 0, false
	}
	return players[0], true
}

// planarDistance is the horizontal-only euclidean distance; height never
// factors into the enemy's decision.
func planarDistance(a, b mgl64.Vec3) float64 {
	dx := b.X() - a.X()
	dz := b.Z() - a.Z()
	return math.Hypot(dx, dz)
}

// brain returns the cached compiled script, loading it on first use. A
// script that fails to load is logged once and disabled.
func (s *EnemyAISystem) brain(name string) *scriptBrain {
	if brain, ok := s.brains[name]; ok {
		return brain
	}
	brain, err := newScriptBrain(name)
	if err != nil {
		log.Printf("ai: load brain %s: %v", name, err)
		brain = nil
	}
	s.brains[name] = brain
	return brain
}

// scriptBrain evaluates a tengo script against the tick's inputs. The
// script assigns next_state; everything else is read-only.
type scriptBrain struct {
	compiled *tengo.Compiled
}

func newScriptBrain(name string) (*scriptBrain, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("ai: load script %s: %w", name, err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	for varName, value := range map[string]any{
		"distance":      0.0,
		"attack_range":  0.0,
		"chase_range":   0.0,
		"state":         "",
		"clip_finished": false,
		"next_state":    "",
	} {
		if err := script.Add(varName, value); err != nil {
			return nil, fmt.Errorf("ai: script %s: add %s: %w", name, varName, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ai: compile script %s: %w", name, err)
	}
	return &scriptBrain{compiled: compiled}, nil
}

func (b *scriptBrain) decide(current component.ActorState, distance float64, ai *component.AI, clipFinished bool) (component.ActorState, error) {
	if err := b.compiled.Set("distance", distance); err != nil {
		return current, err
	}
	if err := b.compiled.Set("attack_range", ai.AttackRange); err != nil {
		return current, err
	}
	if err := b.compiled.Set("chase_range", ai.ChaseRange); err != nil {
		return current, err
	}
	if err := b.compiled.Set("state", current.String()); err != nil {
		return current, err
	}
	if err := b.compiled.Set("clip_finished", clipFinished); err != nil {
		return current, err
	}
	if err := b.compiled.Run(); err != nil {
		return current, err
	}
	next, ok := component.ParseActorState(b.compiled.Get("next_state").String())
	if !ok {
		return current, fmt.Errorf("ai: script returned unknown state %q", b.compiled.Get("next_state").String())
	}
	return next, nil
}
