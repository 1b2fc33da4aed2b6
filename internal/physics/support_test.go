package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestSupportBoxAxisAligned(t *testing.T) {
	center := rl.Vector3{X: 1, Y: 2, Z: 3}
	half := rl.Vector3{X: 1, Y: 1, Z: 1}
	orient := rl.QuaternionIdentity()

	got := supportBox(center, orient, half, rl.Vector3{X: 1})
	assert.InDelta(t, 2.0, got.X, 1e-5)
	assert.InDelta(t, 2.0, got.Y, 1e-5)
	assert.InDelta(t, 3.0, got.Z, 1e-5)
}

func TestClosestPointOnOBBOutsideClampsToSurface(t *testing.T) {
	center := rl.Vector3{}
	half := rl.Vector3{X: 1, Y: 1, Z: 1}
	orient := rl.QuaternionIdentity()

	got := closestPointOnOBB(rl.Vector3{X: 5}, center, orient, half)
	if got.X != 1 {
		t.Errorf("expected clamp to X=1, got %v", got)
	}
}

func TestNormalizeOrFallback(t *testing.T) {
	fallback := rl.Vector3{Y: 1}
	got := normalizeOr(rl.Vector3{}, fallback)
	assert.Equal(t, fallback, got)

	got = normalizeOr(rl.Vector3{X: 3}, fallback)
	assert.InDelta(t, 1.0, got.X, 1e-5)
}
