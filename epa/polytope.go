package epa

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/akmonengine/collide/gjk"
	"github.com/go-gl/mathgl/mgl32"
)

// tetrahedronFaces indexes the 4 faces of the GJK tetrahedron
var tetrahedronFaces = [4][3]int{
	{0, 1, 2},
	{0, 3, 1},
	{0, 2, 3},
	{1, 3, 2},
}

// FaceNormal is the unit outward normal of a face and the distance from the origin to its plane.
type FaceNormal struct {
	Normal   mgl32.Vec3
	Distance float32
}

// Edge is an oriented polytope edge, as two indices into Polytope.Vertices.
type Edge [2]int

// Polytope is the convex hull EPA grows inside the Minkowski difference.
//
// Faces and Normals are parallel slices: Normals[i] always describes Faces[i].
// Faces are wound so that (b-a) × (c-a) points outward.
type Polytope struct {
	Vertices []mgl32.Vec3
	Faces    [][3]int
	Normals  []FaceNormal

	// Horizon accumulator, reused across expansions
	edges []Edge
}

// polytopePool avoids reallocating the polytope buffers on every query.
var polytopePool = sync.Pool{
	New: func() interface{} {
		return &Polytope{
			Vertices: make([]mgl32.Vec3, 0, polytopeInitialCapacity),
			Faces:    make([][3]int, 0, polytopeInitialCapacity),
			Normals:  make([]FaceNormal, 0, polytopeInitialCapacity),
			edges:    make([]Edge, 0, polytopeInitialCapacity),
		}
	},
}

// Reset clears the polytope, keeping its buffers.
func (p *Polytope) Reset() {
	p.Vertices = p.Vertices[:0]
	p.Faces = p.Faces[:0]
	p.Normals = p.Normals[:0]
	p.edges = p.edges[:0]
}

// BuildInitialFaces seeds the polytope with the tetrahedron held by the simplex.
// Each face is oriented away from the vertex it does not contain, which stays correct
// even when the origin lies exactly on that face.
func (p *Polytope) BuildInitialFaces(simplex *gjk.Simplex) error {
	if simplex.Size != 4 {
		return fmt.Errorf("%w: got %d points, expected 4", ErrInvalidSimplex, simplex.Size)
	}

	p.Vertices = append(p.Vertices, simplex.Points[:]...)

	for _, face := range tetrahedronFaces {
		// 0+1+2+3 minus the face's indices leaves the opposite vertex
		opposite := p.Vertices[6-face[0]-face[1]-face[2]]

		normal := p.faceNormal(face)
		if normal.Normal.Dot(opposite.Sub(p.Vertices[face[0]])) > 0 {
			face[1], face[2] = face[2], face[1]
			normal = p.faceNormal(face)
		}

		p.addFace(face, normal)
	}

	return nil
}

// faceNormal computes the normal of a face from its winding.
// A zero-area face gets a fallback normal and an infinite distance so it is never
// picked as the closest face.
func (p *Polytope) faceNormal(face [3]int) FaceNormal {
	a := p.Vertices[face[0]]
	b := p.Vertices[face[1]]
	c := p.Vertices[face[2]]

	normal := b.Sub(a).Cross(c.Sub(a))
	if normal.LenSqr() == 0 {
		fallback := mgl32.Vec3{0, 1, 0}
		if a != (mgl32.Vec3{}) {
			fallback = a.Normalize()
		}
		return FaceNormal{Normal: fallback, Distance: math.MaxFloat32}
	}

	normal = normal.Normalize()
	return FaceNormal{Normal: normal, Distance: normal.Dot(a)}
}

func (p *Polytope) addFace(face [3]int, normal FaceNormal) {
	p.Faces = append(p.Faces, face)
	p.Normals = append(p.Normals, normal)
}

// removeFace drops face i by moving the last face into its slot.
// The order of the remaining faces is not preserved.
func (p *Polytope) removeFace(i int) {
	last := len(p.Faces) - 1

	p.Faces[i] = p.Faces[last]
	p.Faces = p.Faces[:last]

	p.Normals[i] = p.Normals[last]
	p.Normals = p.Normals[:last]
}

// Closest returns the index of the face nearest to the origin, the first one on ties.
// Returns -1 if the polytope has no faces.
func (p *Polytope) Closest() int {
	if len(p.Normals) == 0 {
		return -1
	}

	closest := 0
	for i := 1; i < len(p.Normals); i++ {
		if p.Normals[i].Distance < p.Normals[closest].Distance {
			closest = i
		}
	}

	return closest
}

// visible reports whether face i sees the point, i.e. the point lies in front of the
// face's plane by more than epsilon. A point that is coplanar up to rounding must not be
// seen: removing that face would fold the new faces back over its neighbours.
func (p *Polytope) visible(i int, point mgl32.Vec3, epsilon float32) bool {
	a := p.Vertices[p.Faces[i][0]]
	return p.Normals[i].Normal.Dot(point.Sub(a)) > epsilon
}

// addIfUniqueEdge records the edge (a, b) unless its reverse is already recorded, in
// which case both are dropped: the edge was shared by two removed faces and lies
// inside the hole, not on its horizon.
func (p *Polytope) addIfUniqueEdge(a, b int) {
	reverse := slices.Index(p.edges, Edge{b, a})
	if reverse >= 0 {
		p.edges = slices.Delete(p.edges, reverse, reverse+1)
		return
	}

	p.edges = append(p.edges, Edge{a, b})
}

// Expand adds support to the polytope.
//
// Algorithm:
//  1. Remove every face that sees the support point, keeping its edges
//  2. Edges shared by two removed faces cancel out, the rest form the horizon
//  3. Connect each horizon edge to the support point with a new face
//
// Horizon edges keep the winding of the face they came from, so the new faces are
// wound outward as well.
func (p *Polytope) Expand(support mgl32.Vec3) {
	p.edges = p.edges[:0]

	// Rounding grows with the magnitude of the coordinates
	epsilon := planeEpsilon * max(1, support.Len())

	for i := 0; i < len(p.Faces); i++ {
		if !p.visible(i, support, epsilon) {
			continue
		}

		face := p.Faces[i]
		p.addIfUniqueEdge(face[0], face[1])
		p.addIfUniqueEdge(face[1], face[2])
		p.addIfUniqueEdge(face[2], face[0])

		// The swapped-in face has not been tested yet
		p.removeFace(i)
		i--
	}

	index := len(p.Vertices)
	p.Vertices = append(p.Vertices, support)

	for _, edge := range p.edges {
		face := [3]int{edge[0], edge[1], index}
		p.addFace(face, p.faceNormal(face))
	}
}
