package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// Helper functions
func vec3Equal(a, b mgl32.Vec3, tolerance float32) bool {
	return floatEqual(a.X(), b.X(), tolerance) &&
		floatEqual(a.Y(), b.Y(), tolerance) &&
		floatEqual(a.Z(), b.Z(), tolerance)
}

func floatEqual(a, b, tolerance float32) bool {
	return mgl32.Abs(a-b) < tolerance
}

func TestNewBox(t *testing.T) {
	box := NewBox(mgl32.Vec3{1, 2, 3})

	if len(box.Vertices) != 8 {
		t.Fatalf("expected 8 vertices, got %d", len(box.Vertices))
	}

	seen := make(map[mgl32.Vec3]bool)
	for _, v := range box.Vertices {
		if mgl32.Abs(v.X()) != 1 || mgl32.Abs(v.Y()) != 2 || mgl32.Abs(v.Z()) != 3 {
			t.Errorf("vertex %v is not a corner of the box", v)
		}
		seen[v] = true
	}
	if len(seen) != 8 {
		t.Errorf("expected 8 distinct corners, got %d", len(seen))
	}

	// Corner order is part of the support tie-break
	if box.Vertices[0] != (mgl32.Vec3{-1, -2, -3}) || box.Vertices[7] != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("unexpected corner order: %v", box.Vertices)
	}
}

func TestNewCube(t *testing.T) {
	cube := NewCube(2)

	for _, v := range cube.Vertices {
		if !vec3Equal(mgl32.Vec3{mgl32.Abs(v.X()), mgl32.Abs(v.Y()), mgl32.Abs(v.Z())}, mgl32.Vec3{1, 1, 1}, 1e-6) {
			t.Errorf("vertex %v is not a corner of a side 2 cube", v)
		}
	}
}

func TestLayout(t *testing.T) {
	vertices := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	triangles := []Triangle{{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}}

	tests := []struct {
		name     string
		collider Collider
		expected LayoutKind
	}{
		{
			name:     "hull",
			collider: NewHull(vertices),
			expected: LayoutVertices,
		},
		{
			name:     "indexed mesh",
			collider: NewMesh(vertices, []uint32{0, 1, 2}),
			expected: LayoutIndexedVertices,
		},
		{
			name:     "triangle soup",
			collider: &Mesh{Triangles: triangles},
			expected: LayoutTriangles,
		},
		{
			name:     "indexed triangles",
			collider: &Mesh{Triangles: triangles, Indices: []uint32{0}},
			expected: LayoutIndexedTriangles,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := tt.collider.Layout()
			if layout.Kind != tt.expected {
				t.Errorf("Kind = %v, want %v", layout.Kind, tt.expected)
			}
		})
	}
}

func TestHullLayoutBorrowsVertices(t *testing.T) {
	vertices := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}}
	hull := NewHull(vertices)

	vertices[1] = mgl32.Vec3{5, 0, 0}

	if hull.Layout().Vertices[1] != (mgl32.Vec3{5, 0, 0}) {
		t.Errorf("hull should share the caller's vertex slice")
	}
}

func TestLayoutKindString(t *testing.T) {
	tests := map[LayoutKind]string{
		LayoutVertices:         "vertices",
		LayoutIndexedVertices:  "indexed-vertices",
		LayoutTriangles:        "triangles",
		LayoutIndexedTriangles: "indexed-triangles",
		LayoutKind(42):         "unknown",
	}

	for kind, expected := range tests {
		if kind.String() != expected {
			t.Errorf("String() = %q, want %q", kind.String(), expected)
		}
	}
}
