package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// ShapeKind tags the variant held by a Shape.
type ShapeKind uint8

const (
	ShapeSphere ShapeKind = iota
	ShapeBox
	ShapeLine
)

// Shape is a tagged union of the three primitives. Box is an
// OBB oriented by the owning body's quaternion; Line is visual only and
// never produces a contact.
type Shape struct {
	Kind ShapeKind

	Radius float32 // Sphere

	HalfExtents rl.Vector3 // Box

	P1, P2 rl.Vector3 // Line, in the owning body's local frame
}

// NewSphere builds a sphere shape of the given radius.
func NewSphere(radius float32) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

// NewBox builds an oriented box shape from half-extents along its local axes.
func NewBox(halfExtents rl.Vector3) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: halfExtents}
}

// NewLine builds a visual-only segment. The contact generator skips any
// pair involving a Line.
func NewLine(p1, p2 rl.Vector3) Shape {
	return Shape{Kind: ShapeLine, P1: p1, P2: p2}
}
