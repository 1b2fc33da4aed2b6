package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// frictionOf combines two surfaces' friction coefficients as the
// geometric mean, the standard Coulomb-cone combination rule.
func frictionOf(a, b *Body) float32 {
	fa := a.Friction
	if fa < 0 {
		fa = 0
	}
	fb := b.Friction
	if fb < 0 {
		fb = 0
	}
	return float32(math.Sqrt(float64(fa) * float64(fb)))
}

func sqrtf(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func combinedRestitution(a, b *Body) float32 {
	if a.Restitution > b.Restitution {
		return a.Restitution
	}
	return b.Restitution
}

// collideSphereSphere tests two spheres and, on overlap, returns a
// contact with the normal pointing from a toward b.
func collideSphereSphere(a, b *Body) (Contact, bool) {
	delta := rl.Vector3Subtract(b.Position, a.Position)
	radiusSum := a.Shape.Radius + b.Shape.Radius
	distSq := rl.Vector3LengthSqr(delta)
	if distSq > radiusSum*radiusSum {
		return Contact{}, false
	}
	dist := sqrtf(distSq)
	normal := normalizeOr(delta, rl.Vector3{Y: 1})
	penetration := radiusSum - dist
	point := rl.Vector3Add(a.Position, rl.Vector3Scale(normal, a.Shape.Radius-penetration/2))

	return Contact{
		Normal:      normal,
		Point:       point,
		Penetration: penetration,
		Friction:    frictionOf(a, b),
		Restitution: combinedRestitution(a, b),
	}, true
}

// collideSphereBox tests a sphere against a box and, on overlap,
// returns a contact with the normal pointing from the sphere toward
// the box. Callers pairing a lower-indexed box with a higher-indexed
// sphere negate the normal after calling this, so that it points from
// the box (BodyA) toward the sphere (BodyB).
func collideSphereBox(sphere, box *Body) (Contact, bool) {
	closest := closestPointOnOBB(sphere.Position, box.Position, box.Orientation, box.Shape.HalfExtents)
	delta := rl.Vector3Subtract(closest, sphere.Position)
	distSq := rl.Vector3LengthSqr(delta)
	radius := sphere.Shape.Radius
	if distSq > radius*radius {
		return Contact{}, false
	}
	dist := sqrtf(distSq)
	normal := normalizeOr(delta, rl.Vector3{Y: 1})
	penetration := radius - dist

	return Contact{
		Normal:      normal,
		Point:       closest,
		Penetration: penetration,
		Friction:    frictionOf(sphere, box),
		Restitution: combinedRestitution(sphere, box),
	}, true
}

// collideBoxBox runs GJK as a cheap rejection test and, only on
// intersection, runs SAT to recover the minimum translation vector.
func collideBoxBox(a, b *Body) (Contact, bool) {
	halfA, halfB := a.Shape.HalfExtents, b.Shape.HalfExtents
	if !gjkBoxBox(a.Position, a.Orientation, halfA, b.Position, b.Orientation, halfB) {
		return Contact{}, false
	}
	axis, depth, ok := satBoxBox(a.Position, a.Orientation, halfA, b.Position, b.Orientation, halfB)
	if !ok {
		return Contact{}, false
	}

	point := rl.Vector3Scale(rl.Vector3Add(a.Position, b.Position), 0.5)
	return Contact{
		Normal:      axis,
		Point:       point,
		Penetration: depth,
		Friction:    frictionOf(a, b),
		Restitution: combinedRestitution(a, b),
	}, true
}
