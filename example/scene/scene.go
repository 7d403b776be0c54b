package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/akmonengine/collide"
	"github.com/akmonengine/collide/actor"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

var errInvalidScene = errors.New("invalid scene")

type rotationSpec struct {
	Axis [3]float32 `yaml:"axis"`
	// Angle in degrees
	Angle float32 `yaml:"angle"`
}

type bodySpec struct {
	Name     string        `yaml:"name"`
	Box      *[3]float32   `yaml:"box"`
	Vertices [][3]float32  `yaml:"vertices"`
	Position [3]float32    `yaml:"position"`
	Rotation *rotationSpec `yaml:"rotation"`
	Scale    *[3]float32   `yaml:"scale"`
}

type sceneFile struct {
	Config collide.Config `yaml:"config"`
	Bodies []bodySpec     `yaml:"bodies"`
	Pairs  [][2]string    `yaml:"pairs"`
}

// Scene is a decoded scene file, ready to be handed to a Detector
type Scene struct {
	Config collide.Config
	Pairs  []collide.Pair
	// Names[i] holds the body names of Pairs[i]
	Names [][2]string
}

type body struct {
	collider  actor.Collider
	transform actor.Transform
}

// LoadScene decodes a scene; the config block is applied over collide.DefaultConfig.
func LoadScene(r io.Reader) (*Scene, error) {
	file := sceneFile{Config: collide.DefaultConfig()}

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := file.Config.Validate(); err != nil {
		return nil, err
	}

	bodies := make(map[string]body, len(file.Bodies))
	for _, spec := range file.Bodies {
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: body without a name", errInvalidScene)
		}
		if _, ok := bodies[spec.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate body %q", errInvalidScene, spec.Name)
		}

		b, err := spec.build()
		if err != nil {
			return nil, err
		}
		bodies[spec.Name] = b
	}

	scene := &Scene{Config: file.Config}
	for _, names := range file.Pairs {
		a, ok := bodies[names[0]]
		if !ok {
			return nil, fmt.Errorf("%w: unknown body %q", errInvalidScene, names[0])
		}
		b, ok := bodies[names[1]]
		if !ok {
			return nil, fmt.Errorf("%w: unknown body %q", errInvalidScene, names[1])
		}

		scene.Pairs = append(scene.Pairs, collide.Pair{
			A:          a.collider,
			TransformA: a.transform,
			B:          b.collider,
			TransformB: b.transform,
		})
		scene.Names = append(scene.Names, names)
	}

	return scene, nil
}

func (spec bodySpec) build() (body, error) {
	var collider actor.Collider
	switch {
	case spec.Box != nil && len(spec.Vertices) > 0:
		return body{}, fmt.Errorf("%w: body %q has both box and vertices", errInvalidScene, spec.Name)
	case spec.Box != nil:
		collider = actor.NewBox(mgl32.Vec3(*spec.Box))
	case len(spec.Vertices) > 0:
		vertices := make([]mgl32.Vec3, len(spec.Vertices))
		for i, v := range spec.Vertices {
			vertices[i] = mgl32.Vec3(v)
		}
		collider = actor.NewHull(vertices)
	default:
		return body{}, fmt.Errorf("%w: body %q needs a box or vertices", errInvalidScene, spec.Name)
	}

	transform := actor.NewTransform()
	transform.Position = mgl32.Vec3(spec.Position)
	if spec.Rotation != nil {
		axis := mgl32.Vec3(spec.Rotation.Axis)
		if axis.Len() == 0 {
			return body{}, fmt.Errorf("%w: body %q has a zero rotation axis", errInvalidScene, spec.Name)
		}
		transform.Rotation = mgl32.QuatRotate(mgl32.DegToRad(spec.Rotation.Angle), axis.Normalize())
	}
	if spec.Scale != nil {
		transform.Scale = mgl32.Vec3(*spec.Scale)
	}

	return body{collider: collider, transform: transform}, nil
}
