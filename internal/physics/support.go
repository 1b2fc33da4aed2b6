package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// worldAxes returns a box's local X, Y, Z axes rotated into world space.
func worldAxes(orientation rl.Quaternion) [3]rl.Vector3 {
	return [3]rl.Vector3{
		rl.Vector3RotateByQuaternion(rl.Vector3{X: 1}, orientation),
		rl.Vector3RotateByQuaternion(rl.Vector3{Y: 1}, orientation),
		rl.Vector3RotateByQuaternion(rl.Vector3{Z: 1}, orientation),
	}
}

// supportBox returns the OBB vertex farthest along dir, the Minkowski
// support function used by GJK.
func supportBox(center rl.Vector3, orientation rl.Quaternion, halfExtents rl.Vector3, dir rl.Vector3) rl.Vector3 {
	axes := worldAxes(orientation)
	extents := [3]float32{halfExtents.X, halfExtents.Y, halfExtents.Z}
	result := center
	for i := 0; i < 3; i++ {
		sign := float32(1)
		if rl.Vector3DotProduct(axes[i], dir) < 0 {
			sign = -1
		}
		result = rl.Vector3Add(result, rl.Vector3Scale(axes[i], extents[i]*sign))
	}
	return result
}

// closestPointOnOBB projects point into the box's local frame, clamps
// each coordinate to the half-extent, and rotates the result back out.
func closestPointOnOBB(point, center rl.Vector3, orientation rl.Quaternion, halfExtents rl.Vector3) rl.Vector3 {
	inv := rl.QuaternionInvert(orientation)
	local := rl.Vector3RotateByQuaternion(rl.Vector3Subtract(point, center), inv)
	local.X = clampf(local.X, -halfExtents.X, halfExtents.X)
	local.Y = clampf(local.Y, -halfExtents.Y, halfExtents.Y)
	local.Z = clampf(local.Z, -halfExtents.Z, halfExtents.Z)
	return rl.Vector3Add(center, rl.Vector3RotateByQuaternion(local, orientation))
}

// normalizeOr returns v normalized, or fallback if v is shorter than 1e-6.
func normalizeOr(v, fallback rl.Vector3) rl.Vector3 {
	lenSq := rl.Vector3LengthSqr(v)
	if lenSq > 1e-12 {
		return rl.Vector3Scale(v, 1/float32(math.Sqrt(float64(lenSq))))
	}
	return fallback
}
