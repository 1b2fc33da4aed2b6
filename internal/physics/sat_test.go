package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestSATBoxBoxAxisAlignedOverlap(t *testing.T) {
	id := rl.QuaternionIdentity()
	half := rl.Vector3{X: 1, Y: 1, Z: 1}

	axis, depth, ok := satBoxBox(rl.Vector3{}, id, half, rl.Vector3{X: 1.5}, id, half)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, depth, 1e-4)
	assert.InDelta(t, 1.0, axis.X, 1e-4)
}

func TestSATBoxBoxSeparatingAxis(t *testing.T) {
	id := rl.QuaternionIdentity()
	half := rl.Vector3{X: 1, Y: 1, Z: 1}

	_, _, ok := satBoxBox(rl.Vector3{}, id, half, rl.Vector3{X: 10}, id, half)
	assert.False(t, ok)
}

func TestSATBoxBoxStackedVertically(t *testing.T) {
	id := rl.QuaternionIdentity()
	half := rl.Vector3{X: 1, Y: 1, Z: 1}

	axis, depth, ok := satBoxBox(rl.Vector3{}, id, half, rl.Vector3{Y: 1.9}, id, half)
	assert.True(t, ok)
	assert.InDelta(t, 0.1, depth, 1e-4)
	assert.InDelta(t, 1.0, axis.Y, 1e-4)
}
