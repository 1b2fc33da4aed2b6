package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Contact describes an overlap between two bodies. BodyA is always the
// lower index of the pair, BodyB the higher, so that the normal's
// direction convention (A toward B) is unambiguous downstream.
type Contact struct {
	BodyA, BodyB uint32
	Normal       rl.Vector3
	Point        rl.Vector3
	Penetration  float32
	Friction     float32
	Restitution  float32
}

// generateContacts tests every unordered pair of bodies and rebuilds
// w.contacts from scratch. Static-static pairs and any pair touching a
// Line are skipped; Line exists for visualization only.
func (w *World) generateContacts() error {
	w.contacts = w.contacts[:0]
	n := len(w.Bodies)

	for i := 0; i < n; i++ {
		a := &w.Bodies[i]
		if a.Shape.Kind == ShapeLine {
			continue
		}
		for j := i + 1; j < n; j++ {
			b := &w.Bodies[j]
			if b.Shape.Kind == ShapeLine {
				continue
			}
			if a.IsStatic() && b.IsStatic() {
				continue
			}

			c, ok := collidePair(a, b)
			if !ok {
				continue
			}
			c.BodyA = uint32(i)
			c.BodyB = uint32(j)

			if len(w.contacts) == cap(w.contacts) {
				return ErrContactBufferFull
			}
			w.contacts = append(w.contacts, c)
		}
	}
	return nil
}

// collidePair dispatches on shape kind. A lower-indexed box paired with
// a higher-indexed sphere is handled by calling the sphere-first
// detector and then negating its normal, since collideSphereBox always
// reports the normal pointing from the sphere toward the box.
func collidePair(a, b *Body) (Contact, bool) {
	switch {
	case a.Shape.Kind == ShapeSphere && b.Shape.Kind == ShapeSphere:
		return collideSphereSphere(a, b)
	case a.Shape.Kind == ShapeBox && b.Shape.Kind == ShapeBox:
		return collideBoxBox(a, b)
	case a.Shape.Kind == ShapeSphere && b.Shape.Kind == ShapeBox:
		return collideSphereBox(a, b)
	case a.Shape.Kind == ShapeBox && b.Shape.Kind == ShapeSphere:
		c, ok := collideSphereBox(b, a)
		if !ok {
			return Contact{}, false
		}
		c.Normal = rl.Vector3Scale(c.Normal, -1)
		return c, true
	default:
		return Contact{}, false
	}
}
