package physics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// defaultGravity matches Earth surface gravity along -Y.
var defaultGravity = rl.Vector3{Y: -9.81}

// World owns every body and the scratch contact buffer for one
// simulation. Bodies are addressed by the index CreateBody returns;
// holding a *Body across a Step or CreateBody call is unsafe since the
// backing slice may be reallocated.
type World struct {
	Bodies  []Body
	Gravity rl.Vector3

	contacts []Contact
}

// NewWorld creates an empty world with default Earth-like gravity.
func NewWorld() *World {
	return NewWorldWithGravity(defaultGravity)
}

// NewWorldWithGravity creates an empty world with the given gravity.
func NewWorldWithGravity(gravity rl.Vector3) *World {
	return &World{Gravity: gravity}
}

// Close releases the world's body and contact storage. A World is not
// usable after Close.
func (w *World) Close() {
	w.Bodies = nil
	w.contacts = nil
}

// CreateBody appends a new body built from def and returns its index.
func (w *World) CreateBody(def BodyDef) uint32 {
	w.Bodies = append(w.Bodies, newBody(def))
	return uint32(len(w.Bodies) - 1)
}

// ensureContactCapacity reserves enough room for every unordered pair
// of the world's current bodies, so the substep loop below never
// triggers a slice growth mid-step.
func (w *World) ensureContactCapacity() {
	n := len(w.Bodies)
	need := n * (n - 1) / 2
	if cap(w.contacts) < need {
		w.contacts = make([]Contact, 0, need)
	}
}

// Step advances the world by timestep, split into substep equal
// fixed-size slices. Each substep integrates velocities under gravity,
// generates contacts, runs the velocity solver, then integrates
// positions followed by iterative position correction.
func (w *World) Step(timestep float32, substep uint16) error {
	if substep == 0 {
		panic(fmt.Sprintf("physics: substep must be > 0, got %d", substep))
	}

	w.ensureContactCapacity()
	dt := timestep / float32(substep)

	for s := uint16(0); s < substep; s++ {
		w.integrateVelocities(dt)

		if err := w.generateContacts(); err != nil {
			return err
		}
		w.solveVelocities(dt)

		if err := w.integratePositions(dt); err != nil {
			return err
		}
	}
	return nil
}

func (w *World) integrateVelocities(dt float32) {
	for i := range w.Bodies {
		b := &w.Bodies[i]
		if b.IsStatic() {
			continue
		}
		b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(w.Gravity, dt))
	}
}

func (w *World) integratePositions(dt float32) error {
	for i := range w.Bodies {
		b := &w.Bodies[i]
		if b.IsStatic() {
			continue
		}
		b.Position = rl.Vector3Add(b.Position, rl.Vector3Scale(b.Velocity, dt))
	}

	for p := 0; p < positionIterations; p++ {
		if err := w.generateContacts(); err != nil {
			return err
		}
		w.solvePositions()
	}
	return nil
}
