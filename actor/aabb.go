package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Bounds returns the world-space box enclosing vertices once mapped through transform.
// An empty vertex list yields an inverted box that overlaps nothing.
func Bounds(vertices []mgl32.Vec3, transform mgl32.Mat4) AABB {
	inf := float32(math.Inf(1))
	aabb := AABB{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}

	for _, vertex := range vertices {
		point := transform.Mul4x1(vertex.Vec4(1)).Vec3()
		for i := range point {
			aabb.Min[i] = min(aabb.Min[i], point[i])
			aabb.Max[i] = max(aabb.Max[i], point[i])
		}
	}

	return aabb
}

// Overlaps checks if two AABBs overlap.
// Boxes sharing only a face, edge or corner still overlap.
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on all three axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}
