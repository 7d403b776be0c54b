// Package contact holds the result of a narrow-phase query between two convex bodies.
package contact

import "github.com/go-gl/mathgl/mgl32"

// CollisionInfo describes how two overlapping bodies penetrate each other.
//
// Normal is the unit outward normal of the Minkowski difference (A - B) face nearest to
// the origin. Moving B by Normal*Depth, or A by -Normal*Depth, separates the bodies.
// Depth is always positive: it already contains a small bias so that applying it leaves
// the bodies strictly apart.
type CollisionInfo struct {
	Normal mgl32.Vec3
	Depth  float32
}

// Flipped returns the same contact seen from the other body (B against A).
func (c CollisionInfo) Flipped() CollisionInfo {
	return CollisionInfo{
		Normal: c.Normal.Mul(-1),
		Depth:  c.Depth,
	}
}

// Translation is the minimum translation vector to apply to B to resolve the overlap.
func (c CollisionInfo) Translation() mgl32.Vec3 {
	return c.Normal.Mul(c.Depth)
}
