package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestSolveVelocitiesSeparatesApproachingSpheres(t *testing.T) {
	w := NewWorldWithGravity(rl.Vector3{})
	a := sphereBody(rl.Vector3{X: -0.99}, 1, 1)
	a.Velocity = rl.Vector3{X: 1}
	b := sphereBody(rl.Vector3{X: 0.99}, 1, 1)
	b.Velocity = rl.Vector3{X: -1}
	w.Bodies = append(w.Bodies, a, b)

	w.ensureContactCapacity()
	err := w.generateContacts()
	assert.NoError(t, err)
	assert.Len(t, w.contacts, 1)

	w.solveVelocities(1.0 / 60)

	assert.Less(t, w.Bodies[0].Velocity.X, float32(1))
	assert.Greater(t, w.Bodies[1].Velocity.X, float32(-1))
}

func TestGenerateContactsSkipsStaticStaticPair(t *testing.T) {
	w := NewWorldWithGravity(rl.Vector3{})
	a := sphereBody(rl.Vector3{}, 1, 0)
	b := sphereBody(rl.Vector3{X: 1}, 1, 0)
	w.Bodies = append(w.Bodies, a, b)

	w.ensureContactCapacity()
	err := w.generateContacts()
	assert.NoError(t, err)
	assert.Empty(t, w.contacts)
}

func TestSolvePositionsPushesOverlapApartProportionalToMass(t *testing.T) {
	w := NewWorldWithGravity(rl.Vector3{})
	a := sphereBody(rl.Vector3{X: -0.4}, 1, 1)
	b := sphereBody(rl.Vector3{X: 0.4}, 1, 0)
	w.Bodies = append(w.Bodies, a, b)

	w.ensureContactCapacity()
	assert.NoError(t, w.generateContacts())
	w.solvePositions()

	assert.Less(t, w.Bodies[0].Position.X, float32(-0.4))
	assert.Equal(t, float32(0.4), w.Bodies[1].Position.X)
}
