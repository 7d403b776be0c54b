package gjk

import "github.com/go-gl/mathgl/mgl32"

// Simplex represents a set of 1-4 points in the Minkowski difference space.
// Points[0] is always the most recently added point.
// Size progression: 1 point → 2 points (line) → 3 points (triangle) → 4 points (tetrahedron)
type Simplex struct {
	Points [4]mgl32.Vec3
	Size   int
}

// Reset empties the simplex without touching the backing array
func (s *Simplex) Reset() {
	s.Size = 0
}

// Push inserts a point at the front. Older points shift toward higher indices and
// the oldest one is dropped once 4 are held.
func (s *Simplex) Push(point mgl32.Vec3) {
	s.Points = [4]mgl32.Vec3{point, s.Points[0], s.Points[1], s.Points[2]}
	s.Size = min(s.Size+1, len(s.Points))
}

// Initialize replaces the active points, keeping their order.
// At most 4 points are used.
func (s *Simplex) Initialize(points ...mgl32.Vec3) {
	n := min(len(points), len(s.Points))
	copy(s.Points[:n], points[:n])
	s.Size = n
}

// Active returns the points currently held, newest first
func (s *Simplex) Active() []mgl32.Vec3 {
	return s.Points[:s.Size]
}
