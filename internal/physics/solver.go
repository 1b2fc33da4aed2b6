package physics

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	velocityIterations = 12
	positionIterations = 10

	baumgarte            = 0.3
	velocitySlop         = 0.003
	restitutionThreshold = -0.5

	positionCorrection = 0.2
	positionSlop       = 0.005
)

// solveVelocities runs the Gauss-Seidel velocity pass: normal impulses
// with Baumgarte bias, then Coulomb friction clamped to the normal
// impulse magnitude. Static bodies (InverseMass == 0) never move.
func (w *World) solveVelocities(dt float32) {
	for iter := 0; iter < velocityIterations; iter++ {
		for i := range w.contacts {
			c := &w.contacts[i]
			a := &w.Bodies[c.BodyA]
			b := &w.Bodies[c.BodyB]

			invMassSum := a.InverseMass + b.InverseMass
			if invMassSum == 0 {
				continue
			}

			penetration := c.Penetration - velocitySlop
			if penetration < 0 {
				penetration = 0
			}

			rv := rl.Vector3Subtract(b.Velocity, a.Velocity)
			vn := rl.Vector3DotProduct(rv, c.Normal)
			if vn > 0 && penetration <= 0 {
				continue
			}

			restitution := float32(0)
			if vn < restitutionThreshold {
				restitution = c.Restitution
			}

			bias := float32(0)
			if dt > 0 {
				bias = baumgarte * penetration / dt
			}

			jn := (-(1+restitution)*vn - bias) / invMassSum
			if jn < 0 {
				jn = 0
			}

			impulse := rl.Vector3Scale(c.Normal, jn)
			a.Velocity = rl.Vector3Subtract(a.Velocity, rl.Vector3Scale(impulse, a.InverseMass))
			b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(impulse, b.InverseMass))

			rv = rl.Vector3Subtract(b.Velocity, a.Velocity)
			tangent := rl.Vector3Subtract(rv, rl.Vector3Scale(c.Normal, rl.Vector3DotProduct(rv, c.Normal)))
			tangentLenSq := rl.Vector3LengthSqr(tangent)
			if tangentLenSq < 1e-12 {
				continue
			}
			tangent = rl.Vector3Scale(tangent, 1/sqrtf(tangentLenSq))

			jt := -rl.Vector3DotProduct(rv, tangent) / invMassSum
			maxFriction := c.Friction * jn
			jt = clampf(jt, -maxFriction, maxFriction)

			friction := rl.Vector3Scale(tangent, jt)
			a.Velocity = rl.Vector3Subtract(a.Velocity, rl.Vector3Scale(friction, a.InverseMass))
			b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(friction, b.InverseMass))
		}
	}
}

// solvePositions nudges overlapping bodies apart along the contact
// normal, proportional to mass share. Run against freshly regenerated
// contacts so each pass sees the geometry the previous pass left
// behind.
func (w *World) solvePositions() {
	for i := range w.contacts {
		c := &w.contacts[i]
		a := &w.Bodies[c.BodyA]
		b := &w.Bodies[c.BodyB]

		invMassSum := a.InverseMass + b.InverseMass
		if invMassSum == 0 {
			continue
		}

		correction := c.Penetration - positionSlop
		if correction < 0 {
			continue
		}

		magnitude := positionCorrection * correction / invMassSum
		shift := rl.Vector3Scale(c.Normal, magnitude)

		a.Position = rl.Vector3Subtract(a.Position, rl.Vector3Scale(shift, a.InverseMass))
		b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(shift, b.InverseMass))
	}
}
