package actor

import "github.com/go-gl/mathgl/mgl32"

// WorldTransform is anything able to place a collider in world space.
// The matrix is only ever applied forward to points.
type WorldTransform interface {
	Mat4() mgl32.Mat4
}

// Transform represents a position, orientation and scale in 3D space
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Translation creates a transform that only moves points by (x, y, z).
func Translation(x, y, z float32) Transform {
	t := NewTransform()
	t.Position = mgl32.Vec3{x, y, z}
	return t
}

// Mat4 returns the homogeneous matrix Translate * Rotate * Scale.
// A zero Rotation is read as identity and a zero Scale as unit scale.
func (t Transform) Mat4() mgl32.Mat4 {
	rotation := t.Rotation
	if rotation == (mgl32.Quat{}) {
		rotation = mgl32.QuatIdent()
	}

	scale := t.Scale
	if scale == (mgl32.Vec3{}) {
		scale = mgl32.Vec3{1, 1, 1}
	}

	translate := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	scaling := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())

	return translate.Mul4(rotation.Mat4()).Mul4(scaling)
}
