package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestGJKBoxBoxOverlapping(t *testing.T) {
	id := rl.QuaternionIdentity()
	half := rl.Vector3{X: 1, Y: 1, Z: 1}

	ok := gjkBoxBox(rl.Vector3{}, id, half, rl.Vector3{X: 1.5}, id, half)
	if !ok {
		t.Error("expected overlapping boxes to intersect")
	}
}

func TestGJKBoxBoxSeparated(t *testing.T) {
	id := rl.QuaternionIdentity()
	half := rl.Vector3{X: 1, Y: 1, Z: 1}

	ok := gjkBoxBox(rl.Vector3{}, id, half, rl.Vector3{X: 10}, id, half)
	if ok {
		t.Error("expected distant boxes not to intersect")
	}
}

func TestGJKBoxBoxRotatedOverlapping(t *testing.T) {
	id := rl.QuaternionIdentity()
	half := rl.Vector3{X: 1, Y: 1, Z: 1}
	rotated := rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, 0.7)

	ok := gjkBoxBox(rl.Vector3{}, id, half, rl.Vector3{X: 1.9}, rotated, half)
	if !ok {
		t.Error("expected overlapping rotated boxes to intersect")
	}
}
