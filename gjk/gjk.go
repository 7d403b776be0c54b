// Package gjk implements the Gilbert-Johnson-Keerthi (GJK) algorithm for collision detection.
//
// GJK detects whether two convex point clouds overlap by testing if their Minkowski difference
// contains the origin. The algorithm grows a simplex toward the origin one support point at a
// time and stops either when a support point fails to pass the origin (no collision) or when
// a tetrahedron encloses it (collision).
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance Between
//     Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D Environments" (2003)
package gjk

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MaxIterations bounds the main loop. Non-degenerate convex inputs terminate well
	// before it; reaching it means the input was degenerate and is reported as no collision.
	MaxIterations = 64
)

// initialDirection is the first search direction of every query
var initialDirection = mgl32.Vec3{1, 0, 0}

// GJK performs collision detection between two convex bodies.
//
// Algorithm overview:
//  1. Get the support point along +X and search back toward the origin
//  2. Get the next support point; if it does not pass the origin → no collision
//  3. Push it and reduce the simplex to the feature closest to the origin
//  4. If a tetrahedron encloses the origin → collision
//
// Touching shapes (origin exactly on the boundary of A - B) are reported as separated:
// the early exit uses dot <= 0.
//
// The simplex is reset and filled in place. On collision it holds the 4 points of the
// enclosing tetrahedron, which EPA uses as its initial polytope.
func GJK(a, b *Body, simplex *Simplex) bool {
	simplex.Reset()

	point := MinkowskiSupport(a, b, initialDirection)
	simplex.Push(point)

	// New direction towards the origin from this first point
	direction := point.Mul(-1)

	for i := 0; i < MaxIterations; i++ {
		point = MinkowskiSupport(a, b, direction)

		// The new point does not pass the origin in the search direction:
		// the origin cannot be reached, therefore no collision.
		if point.Dot(direction) <= 0 {
			return false
		}

		simplex.Push(point)

		if NextSimplex(simplex, &direction) {
			return true
		}
	}

	return false
}

// NextSimplex reduces the simplex to its feature closest to the origin and updates the
// search direction. It returns true only when a tetrahedron encloses the origin.
//
// Behavior by simplex size:
//   - 2 points (line): keep the segment or collapse to its newest point
//   - 3 points (triangle): collapse to an edge, or keep the face and pick its side
//   - 4 points (tetrahedron): collapse to the face the origin is outside of, or stop
func NextSimplex(simplex *Simplex, direction *mgl32.Vec3) bool {
	switch simplex.Size {
	case 2:
		return line(simplex, direction)
	case 3:
		return triangle(simplex, direction)
	case 4:
		return tetrahedron(simplex, direction)
	}
	return false
}

// line handles the segment case (a newest, b oldest).
func line(simplex *Simplex, direction *mgl32.Vec3) bool {
	a := simplex.Points[0]
	b := simplex.Points[1]

	ab := b.Sub(a)
	ao := a.Mul(-1)

	if SameDirection(ab, ao) {
		*direction = towardOrigin(ab, ao)
	} else {
		simplex.Initialize(a)
		*direction = ao
	}

	return false
}

// triangle handles the triangle case (a newest).
func triangle(simplex *Simplex, direction *mgl32.Vec3) bool {
	a := simplex.Points[0]
	b := simplex.Points[1]
	c := simplex.Points[2]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := a.Mul(-1)

	abc := ab.Cross(ac)

	// Collinear points: keep the newest edge
	if abc == (mgl32.Vec3{}) {
		simplex.Initialize(a, b)
		return line(simplex, direction)
	}

	if SameDirection(abc.Cross(ac), ao) {
		if SameDirection(ac, ao) {
			simplex.Initialize(a, c)
			*direction = towardOrigin(ac, ao)
			return false
		}

		simplex.Initialize(a, b)
		return line(simplex, direction)
	}

	if SameDirection(ab.Cross(abc), ao) {
		simplex.Initialize(a, b)
		return line(simplex, direction)
	}

	if SameDirection(abc, ao) {
		*direction = abc
	} else {
		// Below the face: swap the winding so the normal faces the origin
		simplex.Initialize(a, c, b)
		*direction = abc.Mul(-1)
	}

	return false
}

// tetrahedron handles the tetrahedron case (a newest). The origin is tested against the
// three faces that contain a; the face bcd was already known to face the origin.
func tetrahedron(simplex *Simplex, direction *mgl32.Vec3) bool {
	a := simplex.Points[0]
	b := simplex.Points[1]
	c := simplex.Points[2]
	d := simplex.Points[3]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)
	ao := a.Mul(-1)

	abc := ab.Cross(ac)
	acd := ac.Cross(ad)
	adb := ad.Cross(ab)

	// Flat tetrahedron: it cannot enclose anything, go back to its newest face
	if abc.Dot(ad) == 0 {
		simplex.Initialize(a, b, c)
		return triangle(simplex, direction)
	}

	if SameDirection(abc, ao) {
		simplex.Initialize(a, b, c)
		return triangle(simplex, direction)
	}

	if SameDirection(acd, ao) {
		simplex.Initialize(a, c, d)
		return triangle(simplex, direction)
	}

	if SameDirection(adb, ao) {
		simplex.Initialize(a, d, b)
		return triangle(simplex, direction)
	}

	// The origin is inside the tetrahedron
	return true
}

// towardOrigin returns the direction perpendicular to edge that points at the origin.
// When the origin lies on the edge's line the triple product vanishes; any perpendicular
// then lets the simplex grow out of the line.
func towardOrigin(edge, ao mgl32.Vec3) mgl32.Vec3 {
	perp := edge.Cross(ao).Cross(edge)
	if perp != (mgl32.Vec3{}) {
		return perp
	}

	return perpendicular(edge)
}

func perpendicular(v mgl32.Vec3) mgl32.Vec3 {
	perp := v.Cross(mgl32.Vec3{1, 0, 0})
	if perp == (mgl32.Vec3{}) {
		perp = v.Cross(mgl32.Vec3{0, 1, 0})
	}
	return perp
}
