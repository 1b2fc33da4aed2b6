package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// BodyDef describes a body at creation time. Mass of zero produces a
// static body (InverseMass == 0); orientation and inertia are carried
// for completeness but the solver never applies angular impulses.
type BodyDef struct {
	Position        rl.Vector3
	Orientation     rl.Quaternion
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3

	Mass         float32
	CenterOfMass rl.Vector3
	Inertia      rl.Matrix

	Friction    float32
	Restitution float32

	Shape Shape
}

// DefaultBodyDef returns a unit sphere at the origin, at rest, with
// middling friction and restitution.
func DefaultBodyDef() BodyDef {
	return BodyDef{
		Orientation: rl.QuaternionIdentity(),
		Inertia:     rl.MatrixIdentity(),
		Friction:    0.5,
		Restitution: 0.5,
		Shape:       NewSphere(1.0),
	}
}

// Body is the simulated state of a single rigid body. World owns the
// backing slice; callers address a body by the index CreateBody
// returned rather than holding a pointer across a Step call, since the
// slice may be reallocated when new bodies are created.
type Body struct {
	Shape Shape

	Mass         float32
	InverseMass  float32
	CenterOfMass rl.Vector3
	Inertia      rl.Matrix

	Friction    float32
	Restitution float32

	Position        rl.Vector3
	Orientation     rl.Quaternion
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3
}

func newBody(def BodyDef) Body {
	inv := float32(0)
	if def.Mass != 0 {
		inv = 1 / def.Mass
	}
	return Body{
		Shape:           def.Shape,
		Mass:            def.Mass,
		InverseMass:     inv,
		CenterOfMass:    def.CenterOfMass,
		Inertia:         def.Inertia,
		Friction:        def.Friction,
		Restitution:     def.Restitution,
		Position:        def.Position,
		Orientation:     def.Orientation,
		Velocity:        def.Velocity,
		AngularVelocity: def.AngularVelocity,
	}
}

// IsStatic reports whether the body has infinite mass.
func (b *Body) IsStatic() bool {
	return b.InverseMass == 0
}

// LineEndpoints returns the body's segment endpoints in world space,
// for callers that render a Line shape. ok is false for any other
// shape kind, since only Line carries visual-only geometry.
func (b *Body) LineEndpoints() (p1, p2 rl.Vector3, ok bool) {
	if b.Shape.Kind != ShapeLine {
		return rl.Vector3{}, rl.Vector3{}, false
	}
	p1 = rl.Vector3Add(b.Position, rl.Vector3RotateByQuaternion(b.Shape.P1, b.Orientation))
	p2 = rl.Vector3Add(b.Position, rl.Vector3RotateByQuaternion(b.Shape.P2, b.Orientation))
	return p1, p2, true
}
