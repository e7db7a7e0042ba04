package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Vec3Spec is a position or offset in actor space.
type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// TransformSpec is the authored spawn pose.
type TransformSpec struct {
	Position Vec3Spec `yaml:"position"`
	Yaw      float64  `yaml:"yaw"`
}

// RigSpec describes the actor's asynchronously instantiating model. Delay
// stands in for scene-load latency in seconds.
type RigSpec struct {
	Delay float64 `yaml:"delay"`
}

// CameraSpec places the first-person camera pivot under the actor.
type CameraSpec struct {
	Offset Vec3Spec `yaml:"offset"`
	LookAt Vec3Spec `yaml:"look_at"`
}

// HandSpec authors one first-person hand fragment.
type HandSpec struct {
	Side   string   `yaml:"side"` // "left" or "right"
	Offset Vec3Spec `yaml:"offset"`
}

// AISpec authors the enemy's reactive tuning. Script optionally names a
// tengo brain under prefabs/scripts.
type AISpec struct {
	ChaseRange  float64 `yaml:"chase_range"`
	AttackRange float64 `yaml:"attack_range"`
	Script      string  `yaml:"script"`
}

// ActorSpec is one spawnable actor prefab.
type ActorSpec struct {
	Name      string        `yaml:"name"`
	Speed     float64       `yaml:"speed"`
	Transform TransformSpec `yaml:"transform"`
	Rig       RigSpec       `yaml:"rig"`
	Camera    *CameraSpec   `yaml:"camera"`
	Hands     []HandSpec    `yaml:"hands"`
	AI        *AISpec       `yaml:"ai"`
}

// ClipSpec names a clip and its authored length in seconds.
type ClipSpec struct {
	Name   string  `yaml:"name"`
	Length float64 `yaml:"length"`
}

// AnimationsSpec is the shared clip table for every actor rig.
type AnimationsSpec struct {
	Clips []ClipSpec `yaml:"clips"`
}

// LoadSpec loads and unmarshals a prefab file into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// LoadActorSpec loads one actor prefab by file name.
func LoadActorSpec(filename string) (*ActorSpec, error) {
	spec, err := LoadSpec[ActorSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadAnimationsSpec loads the shared clip table.
func LoadAnimationsSpec() (*AnimationsSpec, error) {
	spec, err := LoadSpec[AnimationsSpec]("animations.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
