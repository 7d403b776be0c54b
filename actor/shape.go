package actor

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LayoutKind represents how a collider exposes its geometry
type LayoutKind int

const (
	LayoutVertices LayoutKind = iota
	LayoutIndexedVertices
	LayoutTriangles
	LayoutIndexedTriangles
)

func (k LayoutKind) String() string {
	switch k {
	case LayoutVertices:
		return "vertices"
	case LayoutIndexedVertices:
		return "indexed-vertices"
	case LayoutTriangles:
		return "triangles"
	case LayoutIndexedTriangles:
		return "indexed-triangles"
	}
	return "unknown"
}

// Triangle is a single triangle in the local space of a collider
type Triangle [3]mgl32.Vec3

// Layout is a read-only view on a collider's geometry.
// Only the fields matching Kind are set.
type Layout struct {
	Kind      LayoutKind
	Vertices  []mgl32.Vec3
	Triangles []Triangle
	Indices   []uint32
}

// Collider is the capability every collidable convex shape must implement
type Collider interface {
	Layout() Layout
}

// Hull is a convex point cloud in local space.
// GJK and EPA only ever need its vertices, never its faces.
type Hull struct {
	Vertices []mgl32.Vec3
}

// NewHull creates a hull from a list of local-space vertices.
// The slice is borrowed, not copied.
func NewHull(vertices []mgl32.Vec3) *Hull {
	return &Hull{Vertices: vertices}
}

// NewBox creates the 8 corners of a box centered on the local origin.
func NewBox(halfExtents mgl32.Vec3) *Hull {
	hx, hy, hz := halfExtents.X(), halfExtents.Y(), halfExtents.Z()

	return &Hull{
		Vertices: []mgl32.Vec3{
			{-hx, -hy, -hz},
			{+hx, -hy, -hz},
			{-hx, +hy, -hz},
			{+hx, +hy, -hz},
			{-hx, -hy, +hz},
			{+hx, -hy, +hz},
			{-hx, +hy, +hz},
			{+hx, +hy, +hz},
		},
	}
}

// NewCube creates an axis-aligned cube with the given side length.
func NewCube(side float32) *Hull {
	half := side / 2
	return NewBox(mgl32.Vec3{half, half, half})
}

func (h *Hull) Layout() Layout {
	return Layout{Kind: LayoutVertices, Vertices: h.Vertices}
}

// Mesh is a render-style collider described by triangles or indexed vertices.
// It is accepted wherever a Collider is, but narrow-phase queries reject it.
type Mesh struct {
	Vertices  []mgl32.Vec3
	Triangles []Triangle
	Indices   []uint32
}

// NewMesh creates an indexed mesh collider.
func NewMesh(vertices []mgl32.Vec3, indices []uint32) *Mesh {
	return &Mesh{Vertices: vertices, Indices: indices}
}

func (m *Mesh) Layout() Layout {
	switch {
	case len(m.Triangles) > 0 && len(m.Indices) > 0:
		return Layout{Kind: LayoutIndexedTriangles, Triangles: m.Triangles, Indices: m.Indices}
	case len(m.Triangles) > 0:
		return Layout{Kind: LayoutTriangles, Triangles: m.Triangles}
	default:
		return Layout{Kind: LayoutIndexedVertices, Vertices: m.Vertices, Indices: m.Indices}
	}
}
