package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	kaudio "github.com/TkmOhara/kero3d/audio"
	"github.com/TkmOhara/kero3d/ecs"
	"github.com/TkmOhara/kero3d/ecs/component"
	"github.com/TkmOhara/kero3d/ecs/entity"
	"github.com/TkmOhara/kero3d/ecs/system"
	"github.com/TkmOhara/kero3d/pad"
	"github.com/TkmOhara/kero3d/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	world     *ecs.World
	clock     *ecs.Clock
	scheduler *ecs.Scheduler
	pad       *pad.Pad
	padUI     *PadUI
	watcher   *prefabs.Watcher

	player ecs.Entity
	enemy  ecs.Entity
}

func NewGame() (*Game, error) {
	world := ecs.NewWorld()
	clock := &ecs.Clock{}
	world.SetClock(clock)

	animSpec, err := prefabs.LoadAnimationsSpec()
	if err != nil {
		return nil, fmt.Errorf("game: load animations: %w", err)
	}
	world.SetAnimations(buildAnimationSet(animSpec))

	player, err := entity.NewPlayer(world)
	if err != nil {
		return nil, fmt.Errorf("game: spawn player: %w", err)
	}
	enemy, err := entity.NewEnemy(world)
	if err != nil {
		return nil, fmt.Errorf("game: spawn enemy: %w", err)
	}

	controlPad := pad.New()

	mixer := kaudio.NewMixer()
	if b, err := os.ReadFile("assets/sounds/punch.wav"); err == nil {
		if err := mixer.RegisterWAV("punch", b); err != nil {
			log.Printf("game: register punch sound: %v", err)
		}
	} else {
		log.Printf("game: punch sound unavailable: %v", err)
	}
	if b, err := os.ReadFile("assets/sounds/bgm.wav"); err == nil {
		if err := mixer.RegisterWAV("bgm", b); err != nil {
			log.Printf("game: register bgm: %v", err)
		} else {
			mixer.PlayLoop("bgm")
		}
	} else {
		log.Printf("game: bgm unavailable: %v", err)
	}

	// The order is a correctness contract: input/AI before the state
	// machines, state machines before animation application, binding
	// before the driver, driver before the view model.
	scheduler := ecs.NewScheduler(
		system.NewInputSystem(controlPad),
		system.NewEnemyAISystem(),
		system.NewActorStateSystem(),
		system.NewMovementSystem(),
		system.NewRigSpawnSystem(),
		system.NewAnimationBindSystem(),
		system.NewAnimationSystem(),
		system.NewViewModelSystem(),
		system.NewAudioSystem(mixer),
	)

	watcher, err := prefabs.NewWatcher("prefabs")
	if err != nil {
		log.Printf("game: prefab watcher unavailable: %v", err)
		watcher = nil
	}

	g := &Game{
		world:     world,
		clock:     clock,
		scheduler: scheduler,
		pad:       controlPad,
		watcher:   watcher,
		player:    player,
		enemy:     enemy,
	}
	g.padUI = NewPadUI(controlPad)
	return g, nil
}

func buildAnimationSet(spec *prefabs.AnimationsSpec) *component.AnimationSet {
	set := &component.AnimationSet{Clips: make(map[component.ClipID]component.Clip, len(spec.Clips))}
	for _, c := range spec.Clips {
		id := component.ClipID(c.Name)
		set.Clips[id] = component.Clip{Name: id, Length: c.Length}
	}
	return set
}

func (g *Game) Update() error {
	g.drainReloads()
	g.padUI.Update()
	g.clock.Advance(1.0 / float64(ebiten.TPS()))
	g.scheduler.Update(g.world)
	return nil
}

// drainReloads applies prefab edits to the live actors. Only the tunable
// numbers move; states and bindings are left alone.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			reload = true
		default:
			if reload {
				g.applyTuning()
			}
			return
		}
	}
}

func (g *Game) applyTuning() {
	if spec, err := prefabs.LoadActorSpec("player.yaml"); err == nil {
		if actor, ok := ecs.Get(g.world, g.player, component.ActorComponent); ok {
			actor.Speed = spec.Speed
		}
	} else {
		log.Printf("game: reload player spec: %v", err)
	}

	spec, err := prefabs.LoadActorSpec("enemy.yaml")
	if err != nil {
		log.Printf("game: reload enemy spec: %v", err)
		return
	}
	if actor, ok := ecs.Get(g.world, g.enemy, component.ActorComponent); ok {
		actor.Speed = spec.Speed
	}
	if ai, ok := ecs.Get(g.world, g.enemy, component.AIComponent); ok && spec.AI != nil {
		ai.ChaseRange = spec.AI.ChaseRange
		ai.AttackRange = spec.AI.AttackRange
		ai.Script = spec.AI.Script
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	var playerState, enemyState component.ActorState
	if actor, ok := ecs.Get(g.world, g.player, component.ActorComponent); ok {
		playerState = actor.State
	}
	if actor, ok := ecs.Get(g.world, g.enemy, component.ActorComponent); ok {
		enemyState = actor.State
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f\nplayer: %s\nenemy: %s",
		ebiten.ActualFPS(), playerState, enemyState,
	))

	g.padUI.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
