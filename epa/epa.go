// Package epa implements the Expanding Polytope Algorithm for computing penetration depth.
//
// EPA is run after GJK detects a collision to determine:
//   - Penetration depth (how far shapes overlap)
//   - Contact normal (direction to separate shapes)
//
// The algorithm expands a polytope (starting from GJK's final simplex) toward the boundary
// of the Minkowski difference, finding the face closest to the origin, which gives the
// Minimum Translation Vector (MTV) to separate the shapes.
//
// References:
//   - Van den Bergen: "Proximity Queries and Penetration Depth Computation on 3D Game Objects" (2001)
package epa

import (
	"errors"
	"fmt"

	"github.com/akmonengine/collide/contact"
	"github.com/akmonengine/collide/gjk"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultMaxIterations limits polytope expansion to prevent infinite loops.
	// Typical convergence: fewer than 10 iterations for boxes.
	DefaultMaxIterations = 16

	// DefaultTolerance defines when EPA has converged.
	// If the support point along the closest face's normal is no further than this
	// from the face itself, that face lies on the boundary of the Minkowski difference.
	DefaultTolerance = 0.001

	// DefaultDepthBias is added to the reported depth so that moving the bodies apart by
	// it leaves them strictly separated.
	DefaultDepthBias = 0.001

	// planeEpsilon is the relative slack of the polytope's visibility test.
	planeEpsilon = 1e-5

	polytopeInitialCapacity = 16
)

var (
	// ErrNotConverged is returned alongside the best estimate when the iteration cap is hit
	ErrNotConverged = errors.New("epa: did not converge")
	// ErrInvalidSimplex is returned when the simplex is not a tetrahedron
	ErrInvalidSimplex = errors.New("epa: simplex must hold 4 points")
)

// Settings tunes the expansion loop.
type Settings struct {
	MaxIterations int     `yaml:"max_iterations"`
	Tolerance     float32 `yaml:"tolerance"`
	DepthBias     float32 `yaml:"depth_bias"`
}

// DefaultSettings returns the settings used when none are configured
func DefaultSettings() Settings {
	return Settings{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		DepthBias:     DefaultDepthBias,
	}
}

// EPA computes penetration depth and contact normal for overlapping convex bodies.
//
// Algorithm overview:
//  1. Start with the simplex from GJK (tetrahedron containing the origin)
//  2. Build initial polytope faces from the simplex
//  3. Find the face closest to the origin
//  4. Get the support point in that face's normal direction
//  5. If converged (the support point lies on the face) → done
//  6. Otherwise, expand the polytope by adding the support point
//  7. Repeat from step 3
//
// Returns:
//   - CollisionInfo: outward normal of the closest face of A - B and its distance plus DepthBias
//   - error: ErrInvalidSimplex, or ErrNotConverged together with the best estimate found
//
// Depth is never below DepthBias.
//
// The normal points from body A toward body B: translating B by Normal * Depth separates them.
func EPA(a, b *gjk.Body, simplex *gjk.Simplex, settings Settings) (contact.CollisionInfo, error) {
	polytope := polytopePool.Get().(*Polytope)
	defer polytopePool.Put(polytope)
	polytope.Reset()

	if err := polytope.BuildInitialFaces(simplex); err != nil {
		return contact.CollisionInfo{}, err
	}

	closest := polytope.Closest()

	for i := 0; i < settings.MaxIterations; i++ {
		face := polytope.Normals[closest]

		support := gjk.MinkowskiSupport(a, b, face.Normal)
		distance := support.Dot(face.Normal)

		if mgl32.Abs(distance-face.Distance) <= settings.Tolerance {
			return collisionInfo(face, settings), nil
		}

		polytope.Expand(support)

		closest = polytope.Closest()
		if closest < 0 {
			// Every face saw the support point: only possible on degenerate input
			return collisionInfo(face, settings), fmt.Errorf("%w: polytope collapsed at iteration %d", ErrNotConverged, i+1)
		}

		// Growing a convex polytope never brings its closest face nearer to the origin.
		// If it does, the polytope lost convexity and face is the last estimate to trust.
		if polytope.Normals[closest].Distance < face.Distance-settings.Tolerance {
			return collisionInfo(face, settings), fmt.Errorf("%w: polytope lost convexity at iteration %d", ErrNotConverged, i+1)
		}
	}

	return collisionInfo(polytope.Normals[closest], settings), fmt.Errorf("%w after %d iterations", ErrNotConverged, settings.MaxIterations)
}

// collisionInfo turns a face into a contact. The origin may lie on the face, where
// rounding can leave a slightly negative distance; the depth never goes below the bias.
func collisionInfo(face FaceNormal, settings Settings) contact.CollisionInfo {
	return contact.CollisionInfo{
		Normal: face.Normal,
		Depth:  max(face.Distance, 0) + settings.DepthBias,
	}
}
