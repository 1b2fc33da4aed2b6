package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBodyReturnsStableIndices(t *testing.T) {
	w := NewWorld()
	first := w.CreateBody(DefaultBodyDef())
	second := w.CreateBody(DefaultBodyDef())

	assert.Equal(t, uint32(0), first)
	assert.Equal(t, uint32(1), second)
	assert.Len(t, w.Bodies, 2)
}

func TestStepPanicsOnZeroSubstep(t *testing.T) {
	w := NewWorld()
	w.CreateBody(DefaultBodyDef())

	assert.Panics(t, func() {
		_ = w.Step(1.0/60, 0)
	})
}

func TestStepAppliesGravityToDynamicBody(t *testing.T) {
	w := NewWorldWithGravity(rl.Vector3{Y: -10})
	def := DefaultBodyDef()
	def.Mass = 1
	def.Position = rl.Vector3{Y: 10}
	w.CreateBody(def)

	err := w.Step(1.0/60, 1)
	require.NoError(t, err)
	assert.Less(t, w.Bodies[0].Velocity.Y, float32(0))
	assert.Less(t, w.Bodies[0].Position.Y, float32(10))
}

func TestStepLeavesStaticBodyMotionless(t *testing.T) {
	w := NewWorldWithGravity(rl.Vector3{Y: -10})
	def := DefaultBodyDef()
	def.Position = rl.Vector3{Y: 5}
	w.CreateBody(def)

	err := w.Step(1.0/60, 4)
	require.NoError(t, err)
	assert.Equal(t, float32(5), w.Bodies[0].Position.Y)
	assert.Equal(t, rl.Vector3{}, w.Bodies[0].Velocity)
}

func TestStepRestsSphereOnStaticFloorBox(t *testing.T) {
	w := NewWorldWithGravity(rl.Vector3{Y: -9.81})

	floorDef := DefaultBodyDef()
	floorDef.Shape = NewBox(rl.Vector3{X: 50, Y: 0.5, Z: 50})
	floorDef.Position = rl.Vector3{Y: -0.5}
	floorDef.Friction = 0.5
	w.CreateBody(floorDef)

	ballDef := DefaultBodyDef()
	ballDef.Mass = 1
	ballDef.Shape = NewSphere(1)
	ballDef.Position = rl.Vector3{Y: 1.05}
	ballDef.Friction = 0.5
	w.CreateBody(ballDef)

	for i := 0; i < 120; i++ {
		require.NoError(t, w.Step(1.0/60, 4))
	}

	ball := w.Bodies[1]
	assert.InDelta(t, 1.0, ball.Position.Y, 0.05)
	assert.InDelta(t, 0.0, ball.Velocity.Y, 0.5)
}

func TestEnsureContactCapacityReservesForPairCount(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 5; i++ {
		w.CreateBody(DefaultBodyDef())
	}
	w.ensureContactCapacity()
	assert.GreaterOrEqual(t, cap(w.contacts), 5*4/2)
}

func TestCloseClearsWorld(t *testing.T) {
	w := NewWorld()
	w.CreateBody(DefaultBodyDef())
	w.Close()
	assert.Empty(t, w.Bodies)
}
