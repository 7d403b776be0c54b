// Package collide is a narrow-phase collision detector for convex point clouds.
//
// A query runs GJK to decide whether two bodies overlap and, when they do, EPA to
// recover the contact normal and penetration depth.
package collide

import (
	"context"
	"errors"
	"fmt"

	"github.com/akmonengine/collide/actor"
	"github.com/akmonengine/collide/contact"
	"github.com/akmonengine/collide/epa"
	"github.com/akmonengine/collide/gjk"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var (
	// ErrUnsupportedLayout is returned when a collider does not expose a raw vertex list
	ErrUnsupportedLayout = errors.New("collide: unsupported collider layout")
	// ErrEmptyCollider is returned when a collider has no vertices
	ErrEmptyCollider = errors.New("collide: collider has no vertices")
)

// Detector runs pairwise narrow-phase queries.
// It holds no per-query state and is safe for concurrent use.
// Build it with NewDetector: Logger must not be nil.
type Detector struct {
	Settings epa.Settings
	Workers  int
	Logger   *zap.Logger
}

// NewDetector creates a detector from a configuration. A nil logger discards all output.
func NewDetector(config Config, logger *zap.Logger) *Detector {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Detector{
		Settings: config.EPA,
		Workers:  config.Workers,
		Logger:   logger,
	}
}

var defaultDetector = NewDetector(DefaultConfig(), nil)

// Collide tests two colliders with the default detector.
func Collide(a actor.Collider, transformA actor.WorldTransform, b actor.Collider, transformB actor.WorldTransform) (*contact.CollisionInfo, error) {
	return defaultDetector.Collide(a, transformA, b, transformB)
}

// Collide tests whether a and b, placed by their transforms, overlap.
//
// Returns:
//   - nil, nil when the bodies are separated; exact face contact is usually reported as separated
//   - the contact normal (from a toward b) and penetration depth when they overlap
//   - ErrUnsupportedLayout or ErrEmptyCollider before any work is done
//
// When EPA hits its iteration cap the best estimate is returned and a warning is logged.
func (d *Detector) Collide(a actor.Collider, transformA actor.WorldTransform, b actor.Collider, transformB actor.WorldTransform) (*contact.CollisionInfo, error) {
	verticesA, err := vertices(a)
	if err != nil {
		return nil, fmt.Errorf("collider a: %w", err)
	}
	verticesB, err := vertices(b)
	if err != nil {
		return nil, fmt.Errorf("collider b: %w", err)
	}

	bodyA := gjk.NewBody(verticesA, transformA.Mat4())
	bodyB := gjk.NewBody(verticesB, transformB.Mat4())

	// Disjoint bounds cannot hide an overlap; touching bounds still go through GJK
	if !actor.Bounds(bodyA.Vertices, bodyA.Transform).Overlaps(actor.Bounds(bodyB.Vertices, bodyB.Transform)) {
		return nil, nil
	}

	var simplex gjk.Simplex
	if !gjk.GJK(bodyA, bodyB, &simplex) {
		return nil, nil
	}

	info, err := epa.EPA(bodyA, bodyB, &simplex, d.Settings)
	if errors.Is(err, epa.ErrNotConverged) {
		d.Logger.Warn("penetration estimate did not converge",
			zap.Error(err),
			zap.Int("max_iterations", d.Settings.MaxIterations),
			zap.Float32s("normal", info.Normal[:]),
			zap.Float32("depth", info.Depth),
		)
	} else if err != nil {
		return nil, err
	}

	return &info, nil
}

// vertices extracts the local vertex list GJK and EPA work on.
func vertices(collider actor.Collider) ([]mgl32.Vec3, error) {
	layout := collider.Layout()
	if layout.Kind != actor.LayoutVertices {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLayout, layout.Kind)
	}
	if len(layout.Vertices) == 0 {
		return nil, ErrEmptyCollider
	}

	return layout.Vertices, nil
}

// Pair is a candidate pair handed over by a broad phase
type Pair struct {
	A          actor.Collider
	TransformA actor.WorldTransform
	B          actor.Collider
	TransformB actor.WorldTransform
}

// Result is the outcome of one Pair. Info is nil when the bodies do not overlap.
type Result struct {
	Info *contact.CollisionInfo
}

// Colliding reports whether the pair overlaps
func (r Result) Colliding() bool {
	return r.Info != nil
}

// CollidePairs evaluates independent pairs on up to d.Workers goroutines.
// Results are returned in the order of pairs. The first failing pair stops the
// remaining work and its error is returned.
func (d *Detector) CollidePairs(ctx context.Context, pairs []Pair) ([]Result, error) {
	results := make([]Result, len(pairs))

	err := task(ctx, d.Workers, pairs, func(_ context.Context, i int, pair Pair) error {
		info, err := d.Collide(pair.A, pair.TransformA, pair.B, pair.TransformB)
		if err != nil {
			return fmt.Errorf("pair %d: %w", i, err)
		}

		results[i] = Result{Info: info}
		return nil
	})
	if err != nil {
		return nil, err
	}

	collisions := 0
	for _, result := range results {
		if result.Colliding() {
			collisions++
		}
	}
	d.Logger.Debug("pairs evaluated",
		zap.Int("pairs", len(pairs)),
		zap.Int("collisions", collisions),
		zap.Int("workers", d.Workers),
	)

	return results, nil
}
