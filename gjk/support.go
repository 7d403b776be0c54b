package gjk

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Body is a convex point cloud placed in world space.
// Vertices are borrowed read-only from the caller.
type Body struct {
	Vertices  []mgl32.Vec3
	Transform mgl32.Mat4
}

// NewBody binds local vertices to a world matrix
func NewBody(vertices []mgl32.Vec3, transform mgl32.Mat4) *Body {
	return &Body{Vertices: vertices, Transform: transform}
}

// SupportWorld returns the world-space vertex of the body furthest along direction
func (b *Body) SupportWorld(direction mgl32.Vec3) mgl32.Vec3 {
	return FurthestPoint(direction, b.Vertices, b.Transform)
}

// FurthestPoint maps every vertex through transform and returns the one with the greatest
// projection on direction. On ties the first vertex encountered wins.
//
// vertices must not be empty and must describe a convex set.
func FurthestPoint(direction mgl32.Vec3, vertices []mgl32.Vec3, transform mgl32.Mat4) mgl32.Vec3 {
	maxDistance := float32(-math.MaxFloat32)
	var furthest mgl32.Vec3

	for _, vertex := range vertices {
		point := transform.Mul4x1(vertex.Vec4(1)).Vec3()
		distance := point.Dot(direction)
		if distance > maxDistance {
			maxDistance = distance
			furthest = point
		}
	}

	return furthest
}

// MinkowskiSupport computes a support point in the Minkowski difference (A - B).
//
// Returns:
//
//	Support point: furthestPoint(A, direction) - furthestPoint(B, -direction)
//
// The two bodies intersect if and only if A - B contains the origin.
func MinkowskiSupport(a, b *Body, direction mgl32.Vec3) mgl32.Vec3 {
	supportA := a.SupportWorld(direction)
	supportB := b.SupportWorld(direction.Mul(-1))
	return supportA.Sub(supportB)
}

// SameDirection reports whether two vectors point into the same half-space
func SameDirection(direction, v mgl32.Vec3) bool {
	return direction.Dot(v) > 0
}
